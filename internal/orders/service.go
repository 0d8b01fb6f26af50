package orders

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/nmoralesv/shopdesk-backend/pkg/db/models"
	"github.com/nmoralesv/shopdesk-backend/pkg/enums"
	pkgerrors "github.com/nmoralesv/shopdesk-backend/pkg/errors"
	"github.com/nmoralesv/shopdesk-backend/pkg/pagination"
)

type orderRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*models.Order, error)
	List(ctx context.Context, params listOrdersParams) ([]models.Order, *pagination.Cursor, error)
	FindInRange(ctx context.Context, sellerID uuid.UUID, start, end time.Time, status *enums.OrderStatus) ([]models.Order, error)
}

// ListParams carries the query surface of the order list endpoint.
type ListParams struct {
	Limit  int
	Cursor string
	Status string
}

// Service exposes seller-scoped order reads.
type Service interface {
	List(ctx context.Context, sellerID uuid.UUID, params ListParams) (*OrderList, error)
	GetByID(ctx context.Context, sellerID, orderID uuid.UUID) (*OrderDTO, error)
}

type service struct {
	repo orderRepository
}

// NewService wires order dependencies.
func NewService(repo orderRepository) (Service, error) {
	if repo == nil {
		return nil, fmt.Errorf("order repository required")
	}
	return &service{repo: repo}, nil
}

func (s *service) List(ctx context.Context, sellerID uuid.UUID, params ListParams) (*OrderList, error) {
	if sellerID == uuid.Nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "seller id required")
	}

	query := listOrdersParams{
		SellerID: sellerID,
		Limit:    params.Limit,
	}
	if params.Status != "" {
		status, err := enums.ParseOrderStatus(params.Status)
		if err != nil {
			return nil, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid status filter")
		}
		query.Status = &status
	}
	if params.Cursor != "" {
		cursor, err := pagination.ParseCursor(params.Cursor)
		if err != nil {
			return nil, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid cursor")
		}
		query.Cursor = cursor
	}

	rows, next, err := s.repo.List(ctx, query)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "list orders")
	}

	cursor := ""
	if next != nil {
		cursor = pagination.EncodeCursor(*next)
	}
	return &OrderList{
		Items:  FromModels(rows),
		Cursor: cursor,
	}, nil
}

func (s *service) GetByID(ctx context.Context, sellerID, orderID uuid.UUID) (*OrderDTO, error) {
	order, err := s.repo.FindByID(ctx, orderID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "order not found")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load order")
	}
	if order.SellerID != sellerID {
		return nil, pkgerrors.New(pkgerrors.CodeNotFound, "order not found")
	}
	return FromModel(order), nil
}
