package analytics

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"

	"github.com/nmoralesv/shopdesk-backend/pkg/db/models"
	"github.com/nmoralesv/shopdesk-backend/pkg/enums"
	pkgerrors "github.com/nmoralesv/shopdesk-backend/pkg/errors"
)

// timeNowUTC is swapped in tests to pin the summary window.
var timeNowUTC = func() time.Time { return time.Now().UTC() }

const summaryWindowDays = 30

type orderFinder interface {
	FindInRange(ctx context.Context, sellerID uuid.UUID, start, end time.Time, status *enums.OrderStatus) ([]models.Order, error)
}

type productLister interface {
	ListBySeller(ctx context.Context, sellerID uuid.UUID) ([]models.Product, error)
}

// Service computes order trend reports and the dashboard summary. All
// aggregation happens in-process over rows fetched for the requested
// range; nothing is persisted.
type Service interface {
	DailyTrends(ctx context.Context, sellerID uuid.UUID, start, end time.Time) ([]DailyStats, error)
	WeeklyTrends(ctx context.Context, sellerID uuid.UUID, start, end time.Time) ([]WeeklyStats, error)
	MonthlyTrends(ctx context.Context, sellerID uuid.UUID, start, end time.Time) ([]MonthlyStats, error)
	OrderStats(ctx context.Context, sellerID uuid.UUID, start, end time.Time) (*OrderStats, error)
	DashboardSummary(ctx context.Context, sellerID uuid.UUID) (*Summary, error)
}

type service struct {
	orders   orderFinder
	products productLister
}

// NewService wires the analytics read models.
func NewService(orders orderFinder, products productLister) (Service, error) {
	if orders == nil {
		return nil, fmt.Errorf("order finder required")
	}
	if products == nil {
		return nil, fmt.Errorf("product lister required")
	}
	return &service{orders: orders, products: products}, nil
}

// dayStart truncates t to the start of its UTC calendar day.
func dayStart(t time.Time) time.Time {
	t = t.UTC()
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// resolveRange normalizes a request range to UTC day bounds. The
// returned window is half-open: [first, next) where next is the day
// after the last requested day.
func resolveRange(start, end time.Time) (first, next time.Time, days int, err error) {
	first = dayStart(start)
	last := dayStart(end)
	if last.Before(first) {
		return time.Time{}, time.Time{}, 0, pkgerrors.New(pkgerrors.CodeValidation, "end date before start date")
	}
	days = int(last.Sub(first).Hours()/24) + 1
	return first, last.AddDate(0, 0, 1), days, nil
}

func (s *service) DailyTrends(ctx context.Context, sellerID uuid.UUID, start, end time.Time) ([]DailyStats, error) {
	first, next, days, err := resolveRange(start, end)
	if err != nil {
		return nil, err
	}

	buckets := make([]DailyStats, days)
	for i := range buckets {
		buckets[i] = DailyStats{
			Date:    first.AddDate(0, 0, i).Format("2006-01-02"),
			Revenue: decimal.Zero,
		}
	}

	rows, err := s.orders.FindInRange(ctx, sellerID, first, next, nil)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "fetch orders for daily trends")
	}

	for _, order := range rows {
		idx := int(order.CreatedAt.UTC().Sub(first) / (24 * time.Hour))
		if idx < 0 || idx >= days {
			continue
		}
		buckets[idx].Orders++
		buckets[idx].Revenue = buckets[idx].Revenue.Add(order.TotalAmount)
		if order.Status == enums.OrderStatusCompleted {
			buckets[idx].CompletedOrders++
		}
	}
	return buckets, nil
}

func (s *service) WeeklyTrends(ctx context.Context, sellerID uuid.UUID, start, end time.Time) ([]WeeklyStats, error) {
	daily, err := s.DailyTrends(ctx, sellerID, start, end)
	if err != nil {
		return nil, err
	}

	weeks := make([]WeeklyStats, 0, (len(daily)+6)/7)
	for i, day := range daily {
		if i%7 == 0 {
			weeks = append(weeks, WeeklyStats{
				StartDate: day.Date,
				Revenue:   decimal.Zero,
			})
		}
		week := &weeks[len(weeks)-1]
		week.Orders += day.Orders
		week.Revenue = week.Revenue.Add(day.Revenue)
		week.CompletedOrders += day.CompletedOrders
	}
	return weeks, nil
}

func (s *service) MonthlyTrends(ctx context.Context, sellerID uuid.UUID, start, end time.Time) ([]MonthlyStats, error) {
	daily, err := s.DailyTrends(ctx, sellerID, start, end)
	if err != nil {
		return nil, err
	}

	months := make([]MonthlyStats, 0, 2)
	index := make(map[string]int, 2)
	for _, day := range daily {
		key := day.Date[:7]
		pos, ok := index[key]
		if !ok {
			pos = len(months)
			index[key] = pos
			months = append(months, MonthlyStats{
				Month:   key,
				Revenue: decimal.Zero,
			})
		}
		months[pos].Orders += day.Orders
		months[pos].Revenue = months[pos].Revenue.Add(day.Revenue)
		months[pos].CompletedOrders += day.CompletedOrders
	}
	return months, nil
}

func (s *service) OrderStats(ctx context.Context, sellerID uuid.UUID, start, end time.Time) (*OrderStats, error) {
	first, next, _, err := resolveRange(start, end)
	if err != nil {
		return nil, err
	}

	rows, err := s.orders.FindInRange(ctx, sellerID, first, next, nil)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "fetch orders for stats")
	}
	return foldOrderStats(rows), nil
}

func foldOrderStats(rows []models.Order) *OrderStats {
	stats := &OrderStats{
		TotalRevenue:      decimal.Zero,
		AverageOrderValue: decimal.Zero,
	}
	for _, order := range rows {
		stats.TotalOrders++
		stats.TotalRevenue = stats.TotalRevenue.Add(order.TotalAmount)
		switch order.Status {
		case enums.OrderStatusCompleted:
			stats.CompletedOrders++
		case enums.OrderStatusActive:
			stats.ActiveOrders++
		case enums.OrderStatusCancelled:
			stats.CancelledOrders++
		}
	}
	if stats.TotalOrders > 0 {
		stats.AverageOrderValue = stats.TotalRevenue.
			Div(decimal.NewFromInt(int64(stats.TotalOrders))).
			Round(2)
	}
	return stats
}

func (s *service) DashboardSummary(ctx context.Context, sellerID uuid.UUID) (*Summary, error) {
	now := timeNowUTC()
	windowStart := now.AddDate(0, 0, -summaryWindowDays)

	var (
		productRows []models.Product
		orderRows   []models.Order
	)
	group, groupCtx := errgroup.WithContext(ctx)
	group.Go(func() error {
		rows, err := s.products.ListBySeller(groupCtx, sellerID)
		if err != nil {
			return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "fetch products for summary")
		}
		productRows = rows
		return nil
	})
	group.Go(func() error {
		rows, err := s.orders.FindInRange(groupCtx, sellerID, windowStart, now, nil)
		if err != nil {
			return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "fetch orders for summary")
		}
		orderRows = rows
		return nil
	})
	if err := group.Wait(); err != nil {
		return nil, err
	}

	summary := &Summary{
		TotalProducts: len(productRows),
		TotalRevenue:  decimal.Zero,
	}
	for _, product := range productRows {
		summary.TotalInventory += product.Quantity
	}
	for _, order := range orderRows {
		summary.TotalRevenue = summary.TotalRevenue.Add(order.TotalAmount)
		switch order.Status {
		case enums.OrderStatusActive:
			summary.ActiveOrders++
		case enums.OrderStatusCompleted:
			summary.CompletedOrders++
		}
	}
	return summary, nil
}
