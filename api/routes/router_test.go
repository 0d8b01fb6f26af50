package routes

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/nmoralesv/shopdesk-backend/internal/analytics"
	"github.com/nmoralesv/shopdesk-backend/internal/auth"
	"github.com/nmoralesv/shopdesk-backend/internal/orders"
	"github.com/nmoralesv/shopdesk-backend/internal/products"
	"github.com/nmoralesv/shopdesk-backend/internal/sellers"
	pkgauth "github.com/nmoralesv/shopdesk-backend/pkg/auth"
	"github.com/nmoralesv/shopdesk-backend/pkg/config"
	"github.com/nmoralesv/shopdesk-backend/pkg/logger"
	"github.com/nmoralesv/shopdesk-backend/pkg/metrics"
)

type stubAuthService struct {
	response *auth.AuthResponse
	refresh  *auth.RefreshResponse
	err      error
}

func (s *stubAuthService) Register(ctx context.Context, req auth.RegisterRequest) (*auth.AuthResponse, error) {
	return s.response, s.err
}

func (s *stubAuthService) Login(ctx context.Context, req auth.LoginRequest) (*auth.AuthResponse, error) {
	return s.response, s.err
}

func (s *stubAuthService) Logout(ctx context.Context, accessID string) error {
	return s.err
}

func (s *stubAuthService) Refresh(ctx context.Context, req auth.RefreshRequest) (*auth.RefreshResponse, error) {
	return s.refresh, s.err
}

type stubSellerService struct {
	profile *sellers.SellerDTO
	presign *sellers.PresignAvatarOutput
	err     error
}

func (s *stubSellerService) GetProfile(ctx context.Context, sellerID uuid.UUID) (*sellers.SellerDTO, error) {
	return s.profile, s.err
}

func (s *stubSellerService) UpdateProfile(ctx context.Context, sellerID uuid.UUID, input sellers.UpdateProfileInput) (*sellers.SellerDTO, error) {
	return s.profile, s.err
}

func (s *stubSellerService) CompleteProfile(ctx context.Context, sellerID uuid.UUID, input sellers.CompleteProfileInput) (*sellers.SellerDTO, error) {
	return s.profile, s.err
}

func (s *stubSellerService) PresignAvatarUpload(ctx context.Context, sellerID uuid.UUID, input sellers.PresignAvatarInput) (*sellers.PresignAvatarOutput, error) {
	return s.presign, s.err
}

type stubProductService struct {
	items   []products.ProductDTO
	created *products.ProductDTO
	err     error

	lastSeller uuid.UUID
}

func (s *stubProductService) List(ctx context.Context, sellerID uuid.UUID) ([]products.ProductDTO, error) {
	s.lastSeller = sellerID
	return s.items, s.err
}

func (s *stubProductService) Create(ctx context.Context, sellerID uuid.UUID, input products.CreateProductInput) (*products.ProductDTO, error) {
	s.lastSeller = sellerID
	return s.created, s.err
}

func (s *stubProductService) Update(ctx context.Context, sellerID, productID uuid.UUID, input products.UpdateProductInput) (*products.ProductDTO, error) {
	s.lastSeller = sellerID
	return s.created, s.err
}

func (s *stubProductService) Delete(ctx context.Context, sellerID, productID uuid.UUID) error {
	s.lastSeller = sellerID
	return s.err
}

type stubOrderService struct {
	list   *orders.OrderList
	detail *orders.OrderDTO
	err    error
}

func (s *stubOrderService) List(ctx context.Context, sellerID uuid.UUID, params orders.ListParams) (*orders.OrderList, error) {
	return s.list, s.err
}

func (s *stubOrderService) GetByID(ctx context.Context, sellerID, orderID uuid.UUID) (*orders.OrderDTO, error) {
	return s.detail, s.err
}

type stubAnalyticsService struct {
	daily   []analytics.DailyStats
	summary *analytics.Summary
	err     error
}

func (s *stubAnalyticsService) DailyTrends(ctx context.Context, sellerID uuid.UUID, start, end time.Time) ([]analytics.DailyStats, error) {
	return s.daily, s.err
}

func (s *stubAnalyticsService) WeeklyTrends(ctx context.Context, sellerID uuid.UUID, start, end time.Time) ([]analytics.WeeklyStats, error) {
	return nil, s.err
}

func (s *stubAnalyticsService) MonthlyTrends(ctx context.Context, sellerID uuid.UUID, start, end time.Time) ([]analytics.MonthlyStats, error) {
	return nil, s.err
}

func (s *stubAnalyticsService) OrderStats(ctx context.Context, sellerID uuid.UUID, start, end time.Time) (*analytics.OrderStats, error) {
	return nil, s.err
}

func (s *stubAnalyticsService) DashboardSummary(ctx context.Context, sellerID uuid.UUID) (*analytics.Summary, error) {
	return s.summary, s.err
}

type stubPinger struct {
	err error
}

func (s *stubPinger) Ping(ctx context.Context) error {
	return s.err
}

type stubSessionChecker struct {
	active bool
	err    error
}

func (s *stubSessionChecker) HasSession(ctx context.Context, accessID string) (bool, error) {
	return s.active, s.err
}

func testConfig() *config.Config {
	return &config.Config{
		App: config.AppConfig{
			Env:  "test",
			Port: "8080",
		},
		JWT: config.JWTConfig{
			Secret:            "router-test-secret",
			Issuer:            "shopdesk-test",
			ExpirationMinutes: 15,
		},
	}
}

type routerFixture struct {
	cfg       *config.Config
	sessions  *stubSessionChecker
	products  *stubProductService
	orders    *stubOrderService
	analytics *stubAnalyticsService
	handler   http.Handler
}

func newTestRouter(t *testing.T) *routerFixture {
	t.Helper()

	cfg := testConfig()
	logg := logger.New(logger.Options{ServiceName: "router-test", Output: io.Discard})

	f := &routerFixture{
		cfg:      cfg,
		sessions: &stubSessionChecker{active: true},
		products: &stubProductService{items: []products.ProductDTO{
			{ID: uuid.New(), Name: "Widget", Price: decimal.NewFromInt(5)},
		}},
		orders:    &stubOrderService{list: &orders.OrderList{Items: []orders.OrderDTO{}}},
		analytics: &stubAnalyticsService{summary: &analytics.Summary{TotalRevenue: decimal.Zero}},
	}

	f.handler = NewRouter(Dependencies{
		Config:         cfg,
		Logger:         logg,
		DBPinger:       &stubPinger{},
		RedisPinger:    &stubPinger{},
		GCSPinger:      &stubPinger{},
		SessionChecker: f.sessions,
		HTTPMetrics:    metrics.NewHTTPMetrics(nil),
		ReportMetrics:  metrics.NewReportMetrics(nil),

		AuthService: &stubAuthService{
			response: &auth.AuthResponse{AccessToken: "a", RefreshToken: "r", Seller: &sellers.SellerDTO{}},
			refresh:  &auth.RefreshResponse{AccessToken: "a2", RefreshToken: "r2"},
		},
		SellerService:    &stubSellerService{profile: &sellers.SellerDTO{}},
		ProductService:   f.products,
		OrderService:     f.orders,
		AnalyticsService: f.analytics,
	})
	return f
}

func buildToken(t *testing.T, cfg *config.Config, sellerID uuid.UUID) string {
	t.Helper()
	token, err := pkgauth.MintAccessToken(cfg.JWT, time.Now().UTC(), pkgauth.AccessTokenPayload{
		SellerID: sellerID,
		Email:    "seller@example.com",
	})
	if err != nil {
		t.Fatalf("mint token: %v", err)
	}
	return token
}

func TestRouterHealthEndpoints(t *testing.T) {
	f := newTestRouter(t)

	for _, path := range []string{"/health/live", "/health/ready"} {
		resp := httptest.NewRecorder()
		f.handler.ServeHTTP(resp, httptest.NewRequest(http.MethodGet, path, nil))
		if resp.Code != http.StatusOK {
			t.Fatalf("expected 200 for %s, got %d: %s", path, resp.Code, resp.Body.String())
		}
	}
}

func TestRouterMetricsEndpoint(t *testing.T) {
	f := newTestRouter(t)

	resp := httptest.NewRecorder()
	f.handler.ServeHTTP(resp, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.Code)
	}
}

func TestRouterAuthRoutesArePublic(t *testing.T) {
	f := newTestRouter(t)

	body := `{"email":"seller@example.com","password":"hunter2hunter2"}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/register", strings.NewReader(body))
	resp := httptest.NewRecorder()
	f.handler.ServeHTTP(resp, req)

	if resp.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", resp.Code, resp.Body.String())
	}

	req = httptest.NewRequest(http.MethodPost, "/api/v1/auth/login", strings.NewReader(body))
	resp = httptest.NewRecorder()
	f.handler.ServeHTTP(resp, req)

	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", resp.Code, resp.Body.String())
	}
}

func TestRouterRejectsMissingToken(t *testing.T) {
	f := newTestRouter(t)

	for _, path := range []string{
		"/api/v1/sellers/me",
		"/api/v1/products",
		"/api/v1/orders",
		"/api/v1/analytics/summary",
	} {
		resp := httptest.NewRecorder()
		f.handler.ServeHTTP(resp, httptest.NewRequest(http.MethodGet, path, nil))
		if resp.Code != http.StatusUnauthorized {
			t.Fatalf("expected 401 for %s, got %d", path, resp.Code)
		}
	}
}

func TestRouterAcceptsValidToken(t *testing.T) {
	f := newTestRouter(t)
	sellerID := uuid.New()
	token := buildToken(t, f.cfg, sellerID)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/products", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	resp := httptest.NewRecorder()
	f.handler.ServeHTTP(resp, req)

	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", resp.Code, resp.Body.String())
	}
	if f.products.lastSeller != sellerID {
		t.Fatalf("expected seller %s from token, got %s", sellerID, f.products.lastSeller)
	}

	var body struct {
		Data []products.ProductDTO `json:"data"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if len(body.Data) != 1 {
		t.Fatalf("unexpected payload %+v", body.Data)
	}
}

func TestRouterRejectsRevokedSession(t *testing.T) {
	f := newTestRouter(t)
	f.sessions.active = false
	token := buildToken(t, f.cfg, uuid.New())

	req := httptest.NewRequest(http.MethodGet, "/api/v1/orders", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	resp := httptest.NewRecorder()
	f.handler.ServeHTTP(resp, req)

	if resp.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", resp.Code)
	}
}

func TestRouterAnalyticsRoutes(t *testing.T) {
	f := newTestRouter(t)
	token := buildToken(t, f.cfg, uuid.New())

	for _, path := range []string{
		"/api/v1/analytics/daily?preset=7d",
		"/api/v1/analytics/weekly?preset=30d",
		"/api/v1/analytics/monthly?preset=90d",
		"/api/v1/analytics/stats?preset=7d",
		"/api/v1/analytics/summary",
	} {
		req := httptest.NewRequest(http.MethodGet, path, nil)
		req.Header.Set("Authorization", "Bearer "+token)
		resp := httptest.NewRecorder()
		f.handler.ServeHTTP(resp, req)
		if resp.Code != http.StatusOK {
			t.Fatalf("expected 200 for %s, got %d: %s", path, resp.Code, resp.Body.String())
		}
	}
}
