package controllers

import (
	"net/http"

	"github.com/google/uuid"

	"github.com/nmoralesv/shopdesk-backend/api/middleware"
	pkgerrors "github.com/nmoralesv/shopdesk-backend/pkg/errors"
)

// sellerFromRequest resolves the authenticated seller id seeded by the
// auth middleware.
func sellerFromRequest(r *http.Request) (uuid.UUID, error) {
	raw := middleware.SellerIDFromContext(r.Context())
	if raw == "" {
		return uuid.Nil, pkgerrors.New(pkgerrors.CodeUnauthorized, "seller context missing")
	}
	sellerID, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid seller id")
	}
	return sellerID, nil
}
