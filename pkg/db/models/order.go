package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/nmoralesv/shopdesk-backend/pkg/enums"
)

// Order represents a customer purchase recorded against a seller.
type Order struct {
	ID            uuid.UUID         `gorm:"column:id;type:uuid;default:gen_random_uuid();primaryKey"`
	SellerID      uuid.UUID         `gorm:"column:seller_id;type:uuid;not null;index"`
	CustomerName  string            `gorm:"column:customer_name;not null"`
	CustomerEmail string            `gorm:"column:customer_email;not null"`
	TotalAmount   decimal.Decimal   `gorm:"column:total_amount;type:numeric(12,2);not null"`
	Status        enums.OrderStatus `gorm:"column:status;type:order_status;not null;default:'active'"`
	Notes         *string           `gorm:"column:notes"`
	Items         []OrderItem       `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
	CreatedAt     time.Time         `gorm:"column:created_at;autoCreateTime;index"`
	UpdatedAt     time.Time         `gorm:"column:updated_at;autoUpdateTime"`
}
