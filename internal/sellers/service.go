package sellers

import (
	"context"
	"errors"
	"fmt"
	"path"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/nmoralesv/shopdesk-backend/pkg/db/models"
	pkgerrors "github.com/nmoralesv/shopdesk-backend/pkg/errors"
)

type sellerRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*models.Seller, error)
	Update(ctx context.Context, seller *models.Seller) error
}

type avatarSigner interface {
	SignedURL(bucket, object, contentType string, expires time.Duration) (string, error)
}

// Service exposes seller profile operations.
type Service interface {
	GetProfile(ctx context.Context, sellerID uuid.UUID) (*SellerDTO, error)
	UpdateProfile(ctx context.Context, sellerID uuid.UUID, input UpdateProfileInput) (*SellerDTO, error)
	CompleteProfile(ctx context.Context, sellerID uuid.UUID, input CompleteProfileInput) (*SellerDTO, error)
	PresignAvatarUpload(ctx context.Context, sellerID uuid.UUID, input PresignAvatarInput) (*PresignAvatarOutput, error)
}

type service struct {
	repo      sellerRepository
	signer    avatarSigner
	bucket    string
	uploadTTL time.Duration
}

// NewService builds a seller service with the provided repository and GCS signer.
func NewService(repo sellerRepository, signer avatarSigner, bucket string, uploadTTL time.Duration) (Service, error) {
	if repo == nil {
		return nil, fmt.Errorf("seller repository required")
	}
	if signer == nil {
		return nil, fmt.Errorf("gcs signer required")
	}
	if bucket == "" {
		return nil, fmt.Errorf("gcs bucket required")
	}
	if uploadTTL <= 0 {
		return nil, fmt.Errorf("upload ttl must be positive")
	}
	return &service{
		repo:      repo,
		signer:    signer,
		bucket:    bucket,
		uploadTTL: uploadTTL,
	}, nil
}

// UpdateProfileInput captures the allowed profile fields for mutation.
type UpdateProfileInput struct {
	StoreName     *string
	StoreLocation *string
	Phone         *string
	AvatarURL     *string
}

// CompleteProfileInput holds the store details required to finish onboarding.
type CompleteProfileInput struct {
	StoreName     string
	StoreLocation string
	Phone         *string
}

// PresignAvatarInput models the payload required to request an upload URL.
type PresignAvatarInput struct {
	FileName    string
	ContentType string
}

// PresignAvatarOutput contains the data returned for a direct avatar upload.
type PresignAvatarOutput struct {
	GCSKey       string    `json:"gcs_key"`
	SignedPUTURL string    `json:"signed_put_url"`
	ContentType  string    `json:"content_type"`
	ExpiresAt    time.Time `json:"expires_at"`
}

var allowedAvatarMimes = map[string]string{
	"image/png":  ".png",
	"image/jpeg": ".jpg",
	"image/webp": ".webp",
}

func (s *service) GetProfile(ctx context.Context, sellerID uuid.UUID) (*SellerDTO, error) {
	seller, err := s.loadSeller(ctx, sellerID)
	if err != nil {
		return nil, err
	}
	return FromModel(seller), nil
}

func (s *service) UpdateProfile(ctx context.Context, sellerID uuid.UUID, input UpdateProfileInput) (*SellerDTO, error) {
	seller, err := s.loadSeller(ctx, sellerID)
	if err != nil {
		return nil, err
	}

	if input.StoreName != nil {
		name := strings.TrimSpace(*input.StoreName)
		if name == "" {
			return nil, pkgerrors.New(pkgerrors.CodeValidation, "store name cannot be empty")
		}
		seller.StoreName = name
	}
	if input.StoreLocation != nil {
		seller.StoreLocation = cloneStringPtr(input.StoreLocation)
	}
	if input.Phone != nil {
		seller.Phone = cloneStringPtr(input.Phone)
	}
	if input.AvatarURL != nil {
		seller.AvatarURL = cloneStringPtr(input.AvatarURL)
	}

	if err := s.repo.Update(ctx, seller); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "update seller")
	}
	return FromModel(seller), nil
}

func (s *service) CompleteProfile(ctx context.Context, sellerID uuid.UUID, input CompleteProfileInput) (*SellerDTO, error) {
	storeName := strings.TrimSpace(input.StoreName)
	if storeName == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "store name is required")
	}

	seller, err := s.loadSeller(ctx, sellerID)
	if err != nil {
		return nil, err
	}
	if seller.ProfileComplete {
		return nil, pkgerrors.New(pkgerrors.CodeConflict, "profile already complete")
	}

	seller.StoreName = storeName
	if location := strings.TrimSpace(input.StoreLocation); location != "" {
		seller.StoreLocation = &location
	}
	if input.Phone != nil {
		seller.Phone = cloneStringPtr(input.Phone)
	}
	seller.ProfileComplete = true

	if err := s.repo.Update(ctx, seller); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "complete seller profile")
	}
	return FromModel(seller), nil
}

func (s *service) PresignAvatarUpload(ctx context.Context, sellerID uuid.UUID, input PresignAvatarInput) (*PresignAvatarOutput, error) {
	ext, ok := allowedAvatarMimes[input.ContentType]
	if !ok {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "unsupported avatar content type").
			WithDetails(map[string]any{"content_type": input.ContentType})
	}

	if _, err := s.loadSeller(ctx, sellerID); err != nil {
		return nil, err
	}

	if named := path.Ext(input.FileName); named != "" {
		ext = strings.ToLower(named)
	}
	gcsKey := fmt.Sprintf("avatars/%s/%s%s", sellerID, uuid.NewString(), ext)

	expiresAt := time.Now().Add(s.uploadTTL)
	signedURL, err := s.signer.SignedURL(s.bucket, gcsKey, input.ContentType, s.uploadTTL)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "sign avatar upload url")
	}

	return &PresignAvatarOutput{
		GCSKey:       gcsKey,
		SignedPUTURL: signedURL,
		ContentType:  input.ContentType,
		ExpiresAt:    expiresAt,
	}, nil
}

func (s *service) loadSeller(ctx context.Context, sellerID uuid.UUID) (*models.Seller, error) {
	seller, err := s.repo.FindByID(ctx, sellerID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "seller not found")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load seller")
	}
	return seller, nil
}

func cloneStringPtr(value *string) *string {
	if value == nil {
		return nil
	}
	cpy := *value
	return &cpy
}
