package orders

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/nmoralesv/shopdesk-backend/pkg/db/models"
	"github.com/nmoralesv/shopdesk-backend/pkg/enums"
)

// OrderDTO exposes a seller order with its line items.
type OrderDTO struct {
	ID            uuid.UUID         `json:"id"`
	CustomerName  string            `json:"customer_name"`
	CustomerEmail string            `json:"customer_email"`
	TotalAmount   decimal.Decimal   `json:"total_amount"`
	Status        enums.OrderStatus `json:"status"`
	Notes         *string           `json:"notes,omitempty"`
	Items         []OrderItemDTO    `json:"items"`
	CreatedAt     time.Time         `json:"created_at"`
	UpdatedAt     time.Time         `json:"updated_at"`
}

// OrderItemDTO is the product snapshot captured on each order line.
type OrderItemDTO struct {
	ID        uuid.UUID       `json:"id"`
	ProductID *uuid.UUID      `json:"product_id,omitempty"`
	Name      string          `json:"name"`
	Price     decimal.Decimal `json:"price"`
	Quantity  int             `json:"quantity"`
}

// OrderList wraps a page of orders with the cursor for the next page.
type OrderList struct {
	Items  []OrderDTO `json:"items"`
	Cursor string     `json:"cursor"`
}

// FromModel maps a persisted order into a DTO.
func FromModel(m *models.Order) *OrderDTO {
	if m == nil {
		return nil
	}
	items := make([]OrderItemDTO, 0, len(m.Items))
	for _, item := range m.Items {
		items = append(items, OrderItemDTO{
			ID:        item.ID,
			ProductID: item.ProductID,
			Name:      item.Name,
			Price:     item.Price,
			Quantity:  item.Quantity,
		})
	}
	return &OrderDTO{
		ID:            m.ID,
		CustomerName:  m.CustomerName,
		CustomerEmail: m.CustomerEmail,
		TotalAmount:   m.TotalAmount,
		Status:        m.Status,
		Notes:         m.Notes,
		Items:         items,
		CreatedAt:     m.CreatedAt,
		UpdatedAt:     m.UpdatedAt,
	}
}

// FromModels maps an order slice into DTOs.
func FromModels(rows []models.Order) []OrderDTO {
	out := make([]OrderDTO, 0, len(rows))
	for i := range rows {
		out = append(out, *FromModel(&rows[i]))
	}
	return out
}
