package sellers

import (
	"time"

	"github.com/google/uuid"

	"github.com/nmoralesv/shopdesk-backend/pkg/db/models"
)

// SellerDTO exposes safe account data in API responses.
type SellerDTO struct {
	ID              uuid.UUID  `json:"id"`
	Email           string     `json:"email"`
	StoreName       string     `json:"store_name"`
	StoreLocation   *string    `json:"store_location,omitempty"`
	Phone           *string    `json:"phone,omitempty"`
	AvatarURL       *string    `json:"avatar_url,omitempty"`
	ProfileComplete bool       `json:"profile_complete"`
	LastLoginAt     *time.Time `json:"last_login_at,omitempty"`
	CreatedAt       time.Time  `json:"created_at"`
	UpdatedAt       time.Time  `json:"updated_at"`
}

// CreateSellerDTO holds creation-time data for a new seller account.
type CreateSellerDTO struct {
	Email        string
	PasswordHash string
	StoreName    string
}

// FromModel maps the persisted seller into a DTO.
func FromModel(m *models.Seller) *SellerDTO {
	if m == nil {
		return nil
	}
	return &SellerDTO{
		ID:              m.ID,
		Email:           m.Email,
		StoreName:       m.StoreName,
		StoreLocation:   m.StoreLocation,
		Phone:           m.Phone,
		AvatarURL:       m.AvatarURL,
		ProfileComplete: m.ProfileComplete,
		LastLoginAt:     m.LastLoginAt,
		CreatedAt:       m.CreatedAt,
		UpdatedAt:       m.UpdatedAt,
	}
}

// ToModel prepares the GORM model from creation DTO.
func (c CreateSellerDTO) ToModel() *models.Seller {
	return &models.Seller{
		ID:              uuid.New(),
		Email:           c.Email,
		PasswordHash:    c.PasswordHash,
		StoreName:       c.StoreName,
		ProfileComplete: c.StoreName != "",
		IsActive:        true,
	}
}
