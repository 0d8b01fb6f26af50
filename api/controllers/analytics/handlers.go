package analytics

import (
	"context"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/nmoralesv/shopdesk-backend/api/middleware"
	"github.com/nmoralesv/shopdesk-backend/api/responses"
	"github.com/nmoralesv/shopdesk-backend/internal/analytics"
	pkgerrors "github.com/nmoralesv/shopdesk-backend/pkg/errors"
	"github.com/nmoralesv/shopdesk-backend/pkg/logger"
	"github.com/nmoralesv/shopdesk-backend/pkg/metrics"
)

func sellerFromRequest(r *http.Request) (uuid.UUID, error) {
	raw := middleware.SellerIDFromContext(r.Context())
	if raw == "" {
		return uuid.Nil, pkgerrors.New(pkgerrors.CodeUnauthorized, "seller context missing")
	}
	sellerID, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid seller id")
	}
	return sellerID, nil
}

// rangedReport adapts one ranged analytics call into an HTTP handler
// and records its timing under the given report name.
func rangedReport[T any](
	report string,
	service analytics.Service,
	reportMetrics *metrics.ReportMetrics,
	logg *logger.Logger,
	compute func(ctx context.Context, svc analytics.Service, sellerID uuid.UUID, start, end time.Time) (T, error),
) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if service == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "analytics service unavailable"))
			return
		}

		sellerID, err := sellerFromRequest(r)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		start, end, err := resolveAnalyticsRange(r, timeNowUTC())
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		began := time.Now()
		result, err := compute(r.Context(), service, sellerID, start, end)
		if err != nil {
			reportMetrics.IncFailure(report)
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		reportMetrics.ObserveReport(report, time.Since(began))

		responses.WriteSuccess(w, result)
	}
}

// DailyTrends serves per-day order counts and revenue for a range.
func DailyTrends(service analytics.Service, reportMetrics *metrics.ReportMetrics, logg *logger.Logger) http.HandlerFunc {
	return rangedReport("daily", service, reportMetrics, logg,
		func(ctx context.Context, svc analytics.Service, sellerID uuid.UUID, start, end time.Time) ([]analytics.DailyStats, error) {
			return svc.DailyTrends(ctx, sellerID, start, end)
		})
}

// WeeklyTrends serves seven-day groupings of the daily series.
func WeeklyTrends(service analytics.Service, reportMetrics *metrics.ReportMetrics, logg *logger.Logger) http.HandlerFunc {
	return rangedReport("weekly", service, reportMetrics, logg,
		func(ctx context.Context, svc analytics.Service, sellerID uuid.UUID, start, end time.Time) ([]analytics.WeeklyStats, error) {
			return svc.WeeklyTrends(ctx, sellerID, start, end)
		})
}

// MonthlyTrends serves calendar-month groupings of the daily series.
func MonthlyTrends(service analytics.Service, reportMetrics *metrics.ReportMetrics, logg *logger.Logger) http.HandlerFunc {
	return rangedReport("monthly", service, reportMetrics, logg,
		func(ctx context.Context, svc analytics.Service, sellerID uuid.UUID, start, end time.Time) ([]analytics.MonthlyStats, error) {
			return svc.MonthlyTrends(ctx, sellerID, start, end)
		})
}

// OrderStats serves range totals with per-status counts and AOV.
func OrderStats(service analytics.Service, reportMetrics *metrics.ReportMetrics, logg *logger.Logger) http.HandlerFunc {
	return rangedReport("stats", service, reportMetrics, logg,
		func(ctx context.Context, svc analytics.Service, sellerID uuid.UUID, start, end time.Time) (*analytics.OrderStats, error) {
			return svc.OrderStats(ctx, sellerID, start, end)
		})
}

// DashboardSummary serves the trailing-thirty-day headline card.
func DashboardSummary(service analytics.Service, reportMetrics *metrics.ReportMetrics, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if service == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "analytics service unavailable"))
			return
		}

		sellerID, err := sellerFromRequest(r)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		began := time.Now()
		summary, err := service.DashboardSummary(r.Context(), sellerID)
		if err != nil {
			reportMetrics.IncFailure("summary")
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		reportMetrics.ObserveReport("summary", time.Since(began))

		responses.WriteSuccess(w, summary)
	}
}
