package routes

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/nmoralesv/shopdesk-backend/api/controllers"
	analyticscontrollers "github.com/nmoralesv/shopdesk-backend/api/controllers/analytics"
	"github.com/nmoralesv/shopdesk-backend/api/middleware"
	"github.com/nmoralesv/shopdesk-backend/internal/analytics"
	"github.com/nmoralesv/shopdesk-backend/internal/auth"
	"github.com/nmoralesv/shopdesk-backend/internal/orders"
	"github.com/nmoralesv/shopdesk-backend/internal/products"
	"github.com/nmoralesv/shopdesk-backend/internal/sellers"
	"github.com/nmoralesv/shopdesk-backend/pkg/auth/session"
	"github.com/nmoralesv/shopdesk-backend/pkg/config"
	"github.com/nmoralesv/shopdesk-backend/pkg/db"
	"github.com/nmoralesv/shopdesk-backend/pkg/logger"
	"github.com/nmoralesv/shopdesk-backend/pkg/metrics"
	"github.com/nmoralesv/shopdesk-backend/pkg/redis"
	"github.com/nmoralesv/shopdesk-backend/pkg/storage/gcs"
)

// Dependencies carries everything the router wires into handlers.
type Dependencies struct {
	Config         *config.Config
	Logger         *logger.Logger
	DBPinger       db.Pinger
	RedisPinger    redis.Pinger
	GCSPinger      gcs.Pinger
	SessionChecker session.AccessSessionChecker
	HTTPMetrics    *metrics.HTTPMetrics
	ReportMetrics  *metrics.ReportMetrics

	AuthService      auth.Service
	SellerService    sellers.Service
	ProductService   products.Service
	OrderService     orders.Service
	AnalyticsService analytics.Service
}

func NewRouter(deps Dependencies) http.Handler {
	cfg := deps.Config
	logg := deps.Logger

	r := chi.NewRouter()
	r.Use(
		middleware.Recoverer(logg),
		middleware.RequestID(logg),
		middleware.Logging(logg),
		middleware.Metrics(deps.HTTPMetrics),
		middleware.CORS(),
	)

	r.Route("/health", func(r chi.Router) {
		r.Get("/live", controllers.HealthLive(cfg))
		r.Get("/ready", controllers.HealthReady(cfg, logg, deps.DBPinger, deps.RedisPinger, deps.GCSPinger))
	})

	r.Handle("/metrics", promhttp.Handler())

	r.Route("/api/v1/auth", func(r chi.Router) {
		r.Post("/register", controllers.AuthRegister(deps.AuthService, logg))
		r.Post("/login", controllers.AuthLogin(deps.AuthService, logg))
		r.Post("/logout", controllers.AuthLogout(deps.AuthService, cfg.JWT, logg))
		r.Post("/refresh", controllers.AuthRefresh(deps.AuthService, logg))
	})

	r.Route("/api/v1", func(r chi.Router) {
		r.Use(middleware.Auth(cfg.JWT, deps.SessionChecker, logg))

		r.Route("/sellers/me", func(r chi.Router) {
			r.Get("/", controllers.SellerProfile(deps.SellerService, logg))
			r.Put("/", controllers.SellerUpdate(deps.SellerService, logg))
			r.Post("/complete", controllers.SellerCompleteProfile(deps.SellerService, logg))
			r.Post("/avatar/presign", controllers.SellerAvatarPresign(deps.SellerService, logg))
		})

		r.Route("/products", func(r chi.Router) {
			r.Get("/", controllers.ProductList(deps.ProductService, logg))
			r.Post("/", controllers.ProductCreate(deps.ProductService, logg))
			r.Patch("/{productId}", controllers.ProductUpdate(deps.ProductService, logg))
			r.Delete("/{productId}", controllers.ProductDelete(deps.ProductService, logg))
		})

		r.Route("/orders", func(r chi.Router) {
			r.Get("/", controllers.OrderList(deps.OrderService, logg))
			r.Get("/{orderId}", controllers.OrderDetail(deps.OrderService, logg))
		})

		r.Route("/analytics", func(r chi.Router) {
			r.Get("/daily", analyticscontrollers.DailyTrends(deps.AnalyticsService, deps.ReportMetrics, logg))
			r.Get("/weekly", analyticscontrollers.WeeklyTrends(deps.AnalyticsService, deps.ReportMetrics, logg))
			r.Get("/monthly", analyticscontrollers.MonthlyTrends(deps.AnalyticsService, deps.ReportMetrics, logg))
			r.Get("/stats", analyticscontrollers.OrderStats(deps.AnalyticsService, deps.ReportMetrics, logg))
			r.Get("/summary", analyticscontrollers.DashboardSummary(deps.AnalyticsService, deps.ReportMetrics, logg))
		})
	})

	return r
}
