package analytics

import "github.com/shopspring/decimal"

// DailyStats aggregates a seller's orders for one UTC calendar day.
type DailyStats struct {
	Date            string          `json:"date"`
	Orders          int             `json:"orders"`
	Revenue         decimal.Decimal `json:"revenue"`
	CompletedOrders int             `json:"completed_orders"`
}

// WeeklyStats aggregates seven consecutive daily buckets. The trailing
// group may cover fewer days when the range is not a multiple of seven.
type WeeklyStats struct {
	StartDate       string          `json:"start_date"`
	Orders          int             `json:"orders"`
	Revenue         decimal.Decimal `json:"revenue"`
	CompletedOrders int             `json:"completed_orders"`
}

// MonthlyStats aggregates daily buckets sharing a "YYYY-MM" key.
type MonthlyStats struct {
	Month           string          `json:"month"`
	Orders          int             `json:"orders"`
	Revenue         decimal.Decimal `json:"revenue"`
	CompletedOrders int             `json:"completed_orders"`
}

// OrderStats summarizes a seller's orders over an arbitrary range.
type OrderStats struct {
	TotalOrders       int             `json:"total_orders"`
	TotalRevenue      decimal.Decimal `json:"total_revenue"`
	CompletedOrders   int             `json:"completed_orders"`
	ActiveOrders      int             `json:"active_orders"`
	CancelledOrders   int             `json:"cancelled_orders"`
	AverageOrderValue decimal.Decimal `json:"average_order_value"`
}

// Summary is the dashboard headline card: catalog size plus order
// activity over the trailing thirty days.
type Summary struct {
	TotalProducts   int             `json:"total_products"`
	TotalInventory  int             `json:"total_inventory"`
	ActiveOrders    int             `json:"active_orders"`
	CompletedOrders int             `json:"completed_orders"`
	TotalRevenue    decimal.Decimal `json:"total_revenue"`
}
