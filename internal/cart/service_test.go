package cart

import (
	"context"
	"io"
	"testing"

	"github.com/shopvista/storefront-backend/internal/catalog"
	"github.com/shopvista/storefront-backend/pkg/db/models"
	pkgerrors "github.com/shopvista/storefront-backend/pkg/errors"
	"github.com/shopvista/storefront-backend/pkg/logger"
)

type memoryStore struct {
	carts    map[string]Cart
	loadErr  error
	saveErr  error
	saves    int
	lastSave Cart
}

func newMemoryStore() *memoryStore {
	return &memoryStore{carts: map[string]Cart{}}
}

func (m *memoryStore) Load(ctx context.Context, cartID string) (Cart, error) {
	if m.loadErr != nil {
		return Cart{}, m.loadErr
	}
	return m.carts[cartID], nil
}

func (m *memoryStore) Save(ctx context.Context, cartID string, c Cart) error {
	if m.saveErr != nil {
		return m.saveErr
	}
	m.saves++
	m.lastSave = c
	m.carts[cartID] = c
	return nil
}

func (m *memoryStore) Clear(ctx context.Context, cartID string) error {
	delete(m.carts, cartID)
	return nil
}

type stubCatalog struct {
	products map[int64]models.Product
}

func (s *stubCatalog) List(ctx context.Context, filters catalog.Filters) ([]catalog.ProductDTO, error) {
	return nil, nil
}

func (s *stubCatalog) Get(ctx context.Context, id int64) (*catalog.ProductDTO, error) {
	return nil, pkgerrors.New(pkgerrors.CodeNotFound, "product not found")
}

func (s *stubCatalog) Snapshot(ctx context.Context, id int64) (*models.Product, error) {
	p, ok := s.products[id]
	if !ok {
		return nil, pkgerrors.New(pkgerrors.CodeNotFound, "product not found")
	}
	return &p, nil
}

func newTestService(t *testing.T, store Store) Service {
	t.Helper()

	cat := &stubCatalog{products: map[int64]models.Product{
		1: {ID: 1, Name: "Wireless Headphones", PriceCents: 9999, Image: "headphones.jpg"},
		2: {ID: 2, Name: "Running Shoes", PriceCents: 5999, Image: "shoes.jpg"},
	}}
	svc, err := NewService(ServiceParams{
		Store:         store,
		Catalog:       cat,
		ShippingCents: 599,
		Logger:        logger.New(logger.Options{ServiceName: "test", Output: io.Discard}),
	})
	if err != nil {
		t.Fatalf("new service: %v", err)
	}
	return svc
}

func TestNewServiceValidatesDeps(t *testing.T) {
	t.Parallel()

	_, err := NewService(ServiceParams{})
	if err == nil {
		t.Fatal("expected error for missing deps")
	}
}

func TestAddItemDenormalizesProduct(t *testing.T) {
	t.Parallel()

	store := newMemoryStore()
	svc := newTestService(t, store)

	got, err := svc.AddItem(context.Background(), "c1", 1)
	if err != nil {
		t.Fatalf("add item: %v", err)
	}
	if len(got.Items) != 1 {
		t.Fatalf("expected 1 line, got %d", len(got.Items))
	}
	line := got.Items[0]
	if line.ProductID != 1 || line.Name != "Wireless Headphones" || line.PriceCents != 9999 || line.Quantity != 1 {
		t.Fatalf("unexpected line: %+v", line)
	}
	if store.saves != 1 {
		t.Fatalf("expected cart persisted once, got %d saves", store.saves)
	}
}

func TestAddItemBumpsExistingLine(t *testing.T) {
	t.Parallel()

	store := newMemoryStore()
	svc := newTestService(t, store)

	if _, err := svc.AddItem(context.Background(), "c1", 1); err != nil {
		t.Fatalf("first add: %v", err)
	}
	got, err := svc.AddItem(context.Background(), "c1", 1)
	if err != nil {
		t.Fatalf("second add: %v", err)
	}
	if len(got.Items) != 1 || got.Items[0].Quantity != 2 {
		t.Fatalf("expected single line with quantity 2, got %+v", got.Items)
	}
}

func TestAddItemUnknownProduct(t *testing.T) {
	t.Parallel()

	store := newMemoryStore()
	svc := newTestService(t, store)

	_, err := svc.AddItem(context.Background(), "c1", 999)
	if typed := pkgerrors.As(err); typed == nil || typed.Code() != pkgerrors.CodeNotFound {
		t.Fatalf("expected not-found error, got %v", err)
	}
	if store.saves != 0 {
		t.Fatal("failed add must not persist")
	}
}

func TestAddItemPreservesInsertionOrder(t *testing.T) {
	t.Parallel()

	store := newMemoryStore()
	svc := newTestService(t, store)

	mustAdd(t, svc, "c1", 1)
	mustAdd(t, svc, "c1", 2)
	got := mustAdd(t, svc, "c1", 1)

	if len(got.Items) != 2 || got.Items[0].ProductID != 1 || got.Items[1].ProductID != 2 {
		t.Fatalf("expected insertion order preserved, got %+v", got.Items)
	}
}

func TestIncreaseQuantityBumpsLineInPlace(t *testing.T) {
	t.Parallel()

	store := newMemoryStore()
	svc := newTestService(t, store)

	mustAdd(t, svc, "c1", 1)
	mustAdd(t, svc, "c1", 2)

	got, err := svc.IncreaseQuantity(context.Background(), "c1", 1)
	if err != nil {
		t.Fatalf("increase: %v", err)
	}
	if len(got.Items) != 2 {
		t.Fatalf("expected 2 lines, got %+v", got.Items)
	}
	if got.Items[0].ProductID != 1 || got.Items[0].Quantity != 2 {
		t.Fatalf("expected first line {1, qty 2}, got %+v", got.Items[0])
	}
	if got.Items[1].ProductID != 2 || got.Items[1].Quantity != 1 {
		t.Fatalf("expected second line {2, qty 1}, got %+v", got.Items[1])
	}
	if store.lastSave.Items[0].Quantity != 2 {
		t.Fatalf("increment must be persisted, got %+v", store.lastSave.Items)
	}
}

func TestIncreaseQuantityMissingLine(t *testing.T) {
	t.Parallel()

	store := newMemoryStore()
	svc := newTestService(t, store)

	_, err := svc.IncreaseQuantity(context.Background(), "c1", 1)
	if typed := pkgerrors.As(err); typed == nil || typed.Code() != pkgerrors.CodeNotFound {
		t.Fatalf("expected not-found error, got %v", err)
	}
}

func TestDecreaseQuantityRemovesLineAtZero(t *testing.T) {
	t.Parallel()

	store := newMemoryStore()
	svc := newTestService(t, store)

	mustAdd(t, svc, "c1", 1)
	mustAdd(t, svc, "c1", 2)

	got, err := svc.DecreaseQuantity(context.Background(), "c1", 1)
	if err != nil {
		t.Fatalf("decrease: %v", err)
	}
	if len(got.Items) != 1 || got.Items[0].ProductID != 2 {
		t.Fatalf("expected line removed at quantity zero, got %+v", got.Items)
	}
}

func TestSetQuantity(t *testing.T) {
	t.Parallel()

	store := newMemoryStore()
	svc := newTestService(t, store)
	mustAdd(t, svc, "c1", 1)

	_, err := svc.SetQuantity(context.Background(), "c1", 2, 3)
	if typed := pkgerrors.As(err); typed == nil || typed.Code() != pkgerrors.CodeNotFound {
		t.Fatalf("expected not-found error for missing line, got %v", err)
	}

	got, err := svc.SetQuantity(context.Background(), "c1", 1, 5)
	if err != nil {
		t.Fatalf("set quantity: %v", err)
	}
	if got.Items[0].Quantity != 5 {
		t.Fatalf("expected quantity 5, got %d", got.Items[0].Quantity)
	}
}

func TestSetQuantityBelowOneRemovesLine(t *testing.T) {
	t.Parallel()

	store := newMemoryStore()
	svc := newTestService(t, store)
	mustAdd(t, svc, "c1", 1)

	got, err := svc.SetQuantity(context.Background(), "c1", 1, 0)
	if err != nil {
		t.Fatalf("set quantity: %v", err)
	}
	if len(got.Items) != 0 {
		t.Fatalf("expected line removed, got %+v", got.Items)
	}
}

func TestRemoveItemIsIdempotent(t *testing.T) {
	t.Parallel()

	store := newMemoryStore()
	svc := newTestService(t, store)
	mustAdd(t, svc, "c1", 1)

	got, err := svc.RemoveItem(context.Background(), "c1", 1)
	if err != nil {
		t.Fatalf("remove: %v", err)
	}
	if len(got.Items) != 0 {
		t.Fatalf("expected empty cart, got %+v", got.Items)
	}

	saves := store.saves
	if _, err := svc.RemoveItem(context.Background(), "c1", 1); err != nil {
		t.Fatalf("second remove: %v", err)
	}
	if store.saves != saves {
		t.Fatal("removing a missing line must not persist")
	}
}

func TestClearDropsSlot(t *testing.T) {
	t.Parallel()

	store := newMemoryStore()
	svc := newTestService(t, store)

	mustAdd(t, svc, "c1", 1)
	mustAdd(t, svc, "c1", 2)

	got, err := svc.Clear(context.Background(), "c1")
	if err != nil {
		t.Fatalf("clear: %v", err)
	}
	if len(got.Items) != 0 {
		t.Fatalf("expected empty cart, got %+v", got.Items)
	}

	after, err := svc.Get(context.Background(), "c1")
	if err != nil {
		t.Fatalf("get after clear: %v", err)
	}
	if len(after.Items) != 0 {
		t.Fatalf("cleared slot must load empty, got %+v", after.Items)
	}
}

func TestSummaryPricing(t *testing.T) {
	t.Parallel()

	store := newMemoryStore()
	store.carts["c1"] = Cart{Items: []LineItem{
		{ProductID: 1, PriceCents: 1000, Quantity: 2},
		{ProductID: 2, PriceCents: 500, Quantity: 3},
	}}
	svc := newTestService(t, store)

	sum, err := svc.Summary(context.Background(), "c1")
	if err != nil {
		t.Fatalf("summary: %v", err)
	}
	if sum.SubtotalCents != 3500 || sum.ShippingCents != 599 || sum.TotalCents != 4099 {
		t.Fatalf("unexpected totals: %+v", sum)
	}
	if sum.Subtotal != "35.00" || sum.Shipping != "5.99" || sum.Total != "40.99" {
		t.Fatalf("unexpected formatted totals: %+v", sum)
	}
	if sum.TotalItems != 5 {
		t.Fatalf("expected 5 total items, got %d", sum.TotalItems)
	}
}

func TestSummaryEmptyCartStillChargesShipping(t *testing.T) {
	t.Parallel()

	store := newMemoryStore()
	svc := newTestService(t, store)

	sum, err := svc.Summary(context.Background(), "c1")
	if err != nil {
		t.Fatalf("summary: %v", err)
	}
	if sum.SubtotalCents != 0 {
		t.Fatalf("empty cart subtotal must be zero, got %d", sum.SubtotalCents)
	}
	if sum.ShippingCents != 599 || sum.TotalCents != 599 {
		t.Fatalf("shipping is a flat charge, got %+v", sum)
	}
	if sum.Shipping != "5.99" || sum.Total != "5.99" {
		t.Fatalf("unexpected formatted totals: %+v", sum)
	}
	if sum.Items == nil {
		t.Fatal("summary items must serialize as an empty array")
	}
}

func TestTotalItemCount(t *testing.T) {
	t.Parallel()

	store := newMemoryStore()
	svc := newTestService(t, store)

	mustAdd(t, svc, "c1", 1)
	mustAdd(t, svc, "c1", 1)
	mustAdd(t, svc, "c1", 2)

	count, err := svc.TotalItemCount(context.Background(), "c1")
	if err != nil {
		t.Fatalf("count: %v", err)
	}
	if count != 3 {
		t.Fatalf("expected count 3, got %d", count)
	}
}

func TestGetRecoversFromCorruptSlot(t *testing.T) {
	t.Parallel()

	store := newMemoryStore()
	store.loadErr = pkgerrors.Wrap(pkgerrors.CodeInternal, ErrCorruptSlot, "invalid character")
	svc := newTestService(t, store)

	got, err := svc.Get(context.Background(), "c1")
	if err != nil {
		t.Fatalf("expected recovery, got %v", err)
	}
	if len(got.Items) != 0 {
		t.Fatalf("expected empty cart after recovery, got %+v", got.Items)
	}
	if store.saves != 1 {
		t.Fatalf("expected empty cart persisted, got %d saves", store.saves)
	}
}

func TestGetRequiresCartID(t *testing.T) {
	t.Parallel()

	svc := newTestService(t, newMemoryStore())

	_, err := svc.Get(context.Background(), "")
	if typed := pkgerrors.As(err); typed == nil || typed.Code() != pkgerrors.CodeValidation {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func mustAdd(t *testing.T, svc Service, cartID string, productID int64) Cart {
	t.Helper()

	got, err := svc.AddItem(context.Background(), cartID, productID)
	if err != nil {
		t.Fatalf("add item %d: %v", productID, err)
	}
	return got
}
