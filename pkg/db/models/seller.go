package models

import (
	"time"

	"github.com/google/uuid"
)

// Seller represents the canonical merchant account.
type Seller struct {
	ID              uuid.UUID  `gorm:"column:id;type:uuid;default:gen_random_uuid();primaryKey"`
	Email           string     `gorm:"type:text;not null;uniqueIndex"`
	PasswordHash    string     `gorm:"column:password_hash;not null"`
	StoreName       string     `gorm:"column:store_name;not null;default:''"`
	StoreLocation   *string    `gorm:"column:store_location"`
	Phone           *string    `gorm:"column:phone"`
	AvatarURL       *string    `gorm:"column:avatar_url"`
	ProfileComplete bool       `gorm:"column:profile_complete;not null;default:false"`
	IsActive        bool       `gorm:"column:is_active;not null;default:true"`
	LastLoginAt     *time.Time `gorm:"column:last_login_at"`
	CreatedAt       time.Time  `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt       time.Time  `gorm:"column:updated_at;autoUpdateTime"`
}
