package sellers

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/nmoralesv/shopdesk-backend/pkg/db/models"
)

// Repository handles seller persistence.
type Repository struct {
	db *gorm.DB
}

// NewRepository binds a GORM DB to seller operations.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// Create persists a new seller row.
func (r *Repository) Create(ctx context.Context, dto CreateSellerDTO) (*models.Seller, error) {
	seller := dto.ToModel()
	if err := r.db.WithContext(ctx).Create(seller).Error; err != nil {
		return nil, err
	}
	return seller, nil
}

// FindByID loads a seller by its UUID.
func (r *Repository) FindByID(ctx context.Context, id uuid.UUID) (*models.Seller, error) {
	var seller models.Seller
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&seller).Error; err != nil {
		return nil, err
	}
	return &seller, nil
}

// FindByEmail loads a seller by normalized email.
func (r *Repository) FindByEmail(ctx context.Context, email string) (*models.Seller, error) {
	var seller models.Seller
	if err := r.db.WithContext(ctx).
		Where("email = ?", strings.ToLower(strings.TrimSpace(email))).
		First(&seller).Error; err != nil {
		return nil, err
	}
	return &seller, nil
}

// Update saves the provided seller.
func (r *Repository) Update(ctx context.Context, seller *models.Seller) error {
	if seller == nil {
		return fmt.Errorf("seller is required")
	}
	return r.db.WithContext(ctx).Save(seller).Error
}

// TouchLastLogin stamps the last_login_at column.
func (r *Repository) TouchLastLogin(ctx context.Context, id uuid.UUID, at time.Time) error {
	return r.db.WithContext(ctx).
		Model(&models.Seller{}).
		Where("id = ?", id).
		Update("last_login_at", at).Error
}
