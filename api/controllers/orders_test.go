package controllers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/nmoralesv/shopdesk-backend/api/middleware"
	ordersvc "github.com/nmoralesv/shopdesk-backend/internal/orders"
	pkgerrors "github.com/nmoralesv/shopdesk-backend/pkg/errors"
	"github.com/nmoralesv/shopdesk-backend/pkg/pagination"
)

type stubOrderService struct {
	list   *ordersvc.OrderList
	detail *ordersvc.OrderDTO
	err    error

	lastSeller uuid.UUID
	lastOrder  uuid.UUID
	lastParams ordersvc.ListParams
}

func (s *stubOrderService) List(ctx context.Context, sellerID uuid.UUID, params ordersvc.ListParams) (*ordersvc.OrderList, error) {
	s.lastSeller = sellerID
	s.lastParams = params
	return s.list, s.err
}

func (s *stubOrderService) GetByID(ctx context.Context, sellerID, orderID uuid.UUID) (*ordersvc.OrderDTO, error) {
	s.lastSeller = sellerID
	s.lastOrder = orderID
	return s.detail, s.err
}

func TestOrderListPassesQueryParams(t *testing.T) {
	sellerID := uuid.New()
	stub := &stubOrderService{list: &ordersvc.OrderList{Items: []ordersvc.OrderDTO{}}}
	handler := OrderList(stub, testLogger())

	req := httptest.NewRequest(http.MethodGet, "/api/v1/orders?status=completed&limit=10&cursor=abc", nil)
	req = req.WithContext(middleware.WithSellerID(req.Context(), sellerID.String()))
	resp := httptest.NewRecorder()
	handler.ServeHTTP(resp, req)

	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", resp.Code, resp.Body.String())
	}
	if stub.lastSeller != sellerID {
		t.Fatalf("expected seller %s, got %s", sellerID, stub.lastSeller)
	}
	if stub.lastParams.Status != "completed" || stub.lastParams.Limit != 10 || stub.lastParams.Cursor != "abc" {
		t.Fatalf("unexpected params %+v", stub.lastParams)
	}
}

func TestOrderListDefaultsLimit(t *testing.T) {
	stub := &stubOrderService{list: &ordersvc.OrderList{}}
	handler := OrderList(stub, testLogger())

	req := httptest.NewRequest(http.MethodGet, "/api/v1/orders", nil)
	req = req.WithContext(middleware.WithSellerID(req.Context(), uuid.NewString()))
	resp := httptest.NewRecorder()
	handler.ServeHTTP(resp, req)

	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.Code)
	}
	if stub.lastParams.Limit != pagination.DefaultLimit {
		t.Fatalf("expected default limit %d, got %d", pagination.DefaultLimit, stub.lastParams.Limit)
	}
}

func TestOrderListRejectsOutOfRangeLimit(t *testing.T) {
	stub := &stubOrderService{}
	handler := OrderList(stub, testLogger())

	req := httptest.NewRequest(http.MethodGet, "/api/v1/orders?limit=500", nil)
	req = req.WithContext(middleware.WithSellerID(req.Context(), uuid.NewString()))
	resp := httptest.NewRecorder()
	handler.ServeHTTP(resp, req)

	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", resp.Code)
	}
}

func TestOrderDetail(t *testing.T) {
	sellerID := uuid.New()
	orderID := uuid.New()
	stub := &stubOrderService{detail: &ordersvc.OrderDTO{ID: orderID}}

	router := chi.NewRouter()
	router.Get("/api/v1/orders/{orderId}", OrderDetail(stub, testLogger()))

	req := httptest.NewRequest(http.MethodGet, "/api/v1/orders/"+orderID.String(), nil)
	req = req.WithContext(middleware.WithSellerID(req.Context(), sellerID.String()))
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.Code)
	}
	if stub.lastOrder != orderID || stub.lastSeller != sellerID {
		t.Fatalf("unexpected lookup seller=%s order=%s", stub.lastSeller, stub.lastOrder)
	}
}

func TestOrderDetailRejectsBadID(t *testing.T) {
	stub := &stubOrderService{}
	router := chi.NewRouter()
	router.Get("/api/v1/orders/{orderId}", OrderDetail(stub, testLogger()))

	req := httptest.NewRequest(http.MethodGet, "/api/v1/orders/not-a-uuid", nil)
	req = req.WithContext(middleware.WithSellerID(req.Context(), uuid.NewString()))
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", resp.Code)
	}
}

func TestOrderDetailMapsNotFound(t *testing.T) {
	stub := &stubOrderService{err: pkgerrors.New(pkgerrors.CodeNotFound, "order not found")}
	router := chi.NewRouter()
	router.Get("/api/v1/orders/{orderId}", OrderDetail(stub, testLogger()))

	req := httptest.NewRequest(http.MethodGet, "/api/v1/orders/"+uuid.NewString(), nil)
	req = req.WithContext(middleware.WithSellerID(req.Context(), uuid.NewString()))
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", resp.Code)
	}
}
