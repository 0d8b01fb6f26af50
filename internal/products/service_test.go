package products

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/nmoralesv/shopdesk-backend/pkg/db/models"
	pkgerrors "github.com/nmoralesv/shopdesk-backend/pkg/errors"
)

type stubProductRepo struct {
	rows map[uuid.UUID]*models.Product
}

func newStubProductRepo() *stubProductRepo {
	return &stubProductRepo{rows: map[uuid.UUID]*models.Product{}}
}

func (s *stubProductRepo) Create(ctx context.Context, product *models.Product) (*models.Product, error) {
	if product.ID == uuid.Nil {
		product.ID = uuid.New()
	}
	s.rows[product.ID] = product
	return product, nil
}

func (s *stubProductRepo) FindByID(ctx context.Context, id uuid.UUID) (*models.Product, error) {
	product, ok := s.rows[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	cpy := *product
	return &cpy, nil
}

func (s *stubProductRepo) ListBySeller(ctx context.Context, sellerID uuid.UUID) ([]models.Product, error) {
	var out []models.Product
	for _, product := range s.rows {
		if product.SellerID == sellerID {
			out = append(out, *product)
		}
	}
	return out, nil
}

func (s *stubProductRepo) Update(ctx context.Context, product *models.Product) error {
	s.rows[product.ID] = product
	return nil
}

func (s *stubProductRepo) Delete(ctx context.Context, id uuid.UUID) error {
	delete(s.rows, id)
	return nil
}

func newTestService(t *testing.T, repo productRepository) Service {
	t.Helper()
	svc, err := NewService(repo)
	if err != nil {
		t.Fatalf("new service: %v", err)
	}
	return svc
}

func TestCreateValidatesAndRounds(t *testing.T) {
	repo := newStubProductRepo()
	svc := newTestService(t, repo)
	sellerID := uuid.New()

	dto, err := svc.Create(context.Background(), sellerID, CreateProductInput{
		Name:     "  Widget  ",
		Price:    decimal.RequireFromString("9.999"),
		Quantity: 4,
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if dto.Name != "Widget" {
		t.Fatalf("expected trimmed name, got %q", dto.Name)
	}
	if !dto.Price.Equal(decimal.RequireFromString("10.00")) {
		t.Fatalf("expected price rounded to 10.00, got %s", dto.Price)
	}

	cases := []CreateProductInput{
		{Name: "", Price: decimal.NewFromInt(1)},
		{Name: "X", Price: decimal.NewFromInt(-1)},
		{Name: "X", Price: decimal.NewFromInt(1), Quantity: -2},
	}
	for _, input := range cases {
		_, err := svc.Create(context.Background(), sellerID, input)
		typed := pkgerrors.As(err)
		if typed == nil || typed.Code() != pkgerrors.CodeValidation {
			t.Fatalf("expected validation error for %+v, got %v", input, err)
		}
	}
}

func TestUpdateEnforcesOwnership(t *testing.T) {
	repo := newStubProductRepo()
	svc := newTestService(t, repo)
	owner := uuid.New()
	intruder := uuid.New()

	created, err := svc.Create(context.Background(), owner, CreateProductInput{
		Name:  "Widget",
		Price: decimal.NewFromInt(5),
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	quantity := 9
	if _, err := svc.Update(context.Background(), intruder, created.ID, UpdateProductInput{Quantity: &quantity}); err == nil {
		t.Fatal("expected foreign product to read as not found")
	} else if typed := pkgerrors.As(err); typed == nil || typed.Code() != pkgerrors.CodeNotFound {
		t.Fatalf("expected not found, got %v", err)
	}

	updated, err := svc.Update(context.Background(), owner, created.ID, UpdateProductInput{Quantity: &quantity})
	if err != nil {
		t.Fatalf("owner update: %v", err)
	}
	if updated.Quantity != 9 {
		t.Fatalf("expected quantity 9, got %d", updated.Quantity)
	}
}

func TestDeleteEnforcesOwnership(t *testing.T) {
	repo := newStubProductRepo()
	svc := newTestService(t, repo)
	owner := uuid.New()

	created, err := svc.Create(context.Background(), owner, CreateProductInput{
		Name:  "Widget",
		Price: decimal.NewFromInt(5),
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	if err := svc.Delete(context.Background(), uuid.New(), created.ID); err == nil {
		t.Fatal("expected delete by non-owner to fail")
	}
	if err := svc.Delete(context.Background(), owner, created.ID); err != nil {
		t.Fatalf("owner delete: %v", err)
	}
	if _, err := repo.FindByID(context.Background(), created.ID); err == nil {
		t.Fatal("expected product removed")
	}
}
