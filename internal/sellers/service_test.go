package sellers

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/nmoralesv/shopdesk-backend/pkg/db/models"
	pkgerrors "github.com/nmoralesv/shopdesk-backend/pkg/errors"
)

type stubSellerRepo struct {
	sellers map[uuid.UUID]*models.Seller
	updated *models.Seller
	findErr error
}

func (s *stubSellerRepo) FindByID(ctx context.Context, id uuid.UUID) (*models.Seller, error) {
	if s.findErr != nil {
		return nil, s.findErr
	}
	seller, ok := s.sellers[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	cpy := *seller
	return &cpy, nil
}

func (s *stubSellerRepo) Update(ctx context.Context, seller *models.Seller) error {
	s.updated = seller
	s.sellers[seller.ID] = seller
	return nil
}

type stubSigner struct {
	lastObject      string
	lastContentType string
	err             error
}

func (s *stubSigner) SignedURL(bucket, object, contentType string, expires time.Duration) (string, error) {
	if s.err != nil {
		return "", s.err
	}
	s.lastObject = object
	s.lastContentType = contentType
	return "https://storage.googleapis.com/" + bucket + "/" + object + "?sig", nil
}

func newTestService(t *testing.T, repo *stubSellerRepo, signer *stubSigner) Service {
	t.Helper()
	svc, err := NewService(repo, signer, "bucket", 15*time.Minute)
	if err != nil {
		t.Fatalf("new service: %v", err)
	}
	return svc
}

func seedSeller(repo *stubSellerRepo, complete bool) *models.Seller {
	seller := &models.Seller{
		ID:              uuid.New(),
		Email:           "merchant@example.com",
		StoreName:       "Original Goods",
		ProfileComplete: complete,
		IsActive:        true,
	}
	repo.sellers[seller.ID] = seller
	return seller
}

func TestGetProfileNotFound(t *testing.T) {
	repo := &stubSellerRepo{sellers: map[uuid.UUID]*models.Seller{}}
	svc := newTestService(t, repo, &stubSigner{})

	_, err := svc.GetProfile(context.Background(), uuid.New())
	typed := pkgerrors.As(err)
	if typed == nil || typed.Code() != pkgerrors.CodeNotFound {
		t.Fatalf("expected not found error, got %v", err)
	}
}

func TestUpdateProfileAppliesPartialFields(t *testing.T) {
	repo := &stubSellerRepo{sellers: map[uuid.UUID]*models.Seller{}}
	seller := seedSeller(repo, true)
	svc := newTestService(t, repo, &stubSigner{})

	location := "Austin, TX"
	avatar := "avatars/x/y.png"
	dto, err := svc.UpdateProfile(context.Background(), seller.ID, UpdateProfileInput{
		StoreLocation: &location,
		AvatarURL:     &avatar,
	})
	if err != nil {
		t.Fatalf("update profile: %v", err)
	}
	if dto.StoreName != "Original Goods" {
		t.Fatalf("store name should be untouched, got %q", dto.StoreName)
	}
	if dto.StoreLocation == nil || *dto.StoreLocation != location {
		t.Fatal("store location not applied")
	}
	if dto.AvatarURL == nil || *dto.AvatarURL != avatar {
		t.Fatal("avatar url not applied")
	}
}

func TestUpdateProfileRejectsEmptyStoreName(t *testing.T) {
	repo := &stubSellerRepo{sellers: map[uuid.UUID]*models.Seller{}}
	seller := seedSeller(repo, true)
	svc := newTestService(t, repo, &stubSigner{})

	empty := "   "
	_, err := svc.UpdateProfile(context.Background(), seller.ID, UpdateProfileInput{StoreName: &empty})
	typed := pkgerrors.As(err)
	if typed == nil || typed.Code() != pkgerrors.CodeValidation {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func TestCompleteProfile(t *testing.T) {
	repo := &stubSellerRepo{sellers: map[uuid.UUID]*models.Seller{}}
	seller := seedSeller(repo, false)
	seller.StoreName = ""
	repo.sellers[seller.ID] = seller
	svc := newTestService(t, repo, &stubSigner{})

	dto, err := svc.CompleteProfile(context.Background(), seller.ID, CompleteProfileInput{
		StoreName:     "Finished Goods",
		StoreLocation: "Tulsa, OK",
	})
	if err != nil {
		t.Fatalf("complete profile: %v", err)
	}
	if !dto.ProfileComplete {
		t.Fatal("expected profile_complete true")
	}
	if dto.StoreName != "Finished Goods" {
		t.Fatalf("unexpected store name %q", dto.StoreName)
	}

	// second attempt conflicts
	_, err = svc.CompleteProfile(context.Background(), seller.ID, CompleteProfileInput{StoreName: "Again"})
	typed := pkgerrors.As(err)
	if typed == nil || typed.Code() != pkgerrors.CodeConflict {
		t.Fatalf("expected conflict error, got %v", err)
	}
}

func TestPresignAvatarUpload(t *testing.T) {
	repo := &stubSellerRepo{sellers: map[uuid.UUID]*models.Seller{}}
	seller := seedSeller(repo, true)
	signer := &stubSigner{}
	svc := newTestService(t, repo, signer)

	out, err := svc.PresignAvatarUpload(context.Background(), seller.ID, PresignAvatarInput{
		FileName:    "photo.PNG",
		ContentType: "image/png",
	})
	if err != nil {
		t.Fatalf("presign: %v", err)
	}
	if !strings.HasPrefix(out.GCSKey, "avatars/"+seller.ID.String()+"/") {
		t.Fatalf("unexpected object key %q", out.GCSKey)
	}
	if !strings.HasSuffix(out.GCSKey, ".png") {
		t.Fatalf("expected .png suffix, got %q", out.GCSKey)
	}
	if signer.lastContentType != "image/png" {
		t.Fatalf("unexpected content type passed to signer %q", signer.lastContentType)
	}
	if out.SignedPUTURL == "" {
		t.Fatal("expected signed url")
	}

	if _, err := svc.PresignAvatarUpload(context.Background(), seller.ID, PresignAvatarInput{ContentType: "application/pdf"}); err == nil {
		t.Fatal("expected unsupported content type error")
	}
}
