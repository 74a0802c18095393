package catalog

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/shopvista/storefront-backend/pkg/db/models"
	pkgerrors "github.com/shopvista/storefront-backend/pkg/errors"
)

// ProductDTO is the catalog payload returned to clients.
type ProductDTO struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	PriceCents  int64  `json:"price_cents"`
	Price       string `json:"price"`
	Category    string `json:"category"`
	Image       string `json:"image"`
	Description string `json:"description"`
}

// Service exposes read access to the catalog.
type Service interface {
	List(ctx context.Context, filters Filters) ([]ProductDTO, error)
	Get(ctx context.Context, id int64) (*ProductDTO, error)
	Snapshot(ctx context.Context, id int64) (*models.Product, error)
}

type lister interface {
	ListOrdered(ctx context.Context) ([]models.Product, error)
}

type service struct {
	products []models.Product
	byID     map[int64]models.Product
}

// NewService loads the seeded catalog once and serves all reads from the
// ordered in-memory snapshot. The catalog never changes after boot, so no
// refresh path exists.
func NewService(ctx context.Context, repo lister) (Service, error) {
	if repo == nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "catalog repository is required")
	}

	products, err := repo.ListOrdered(ctx)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load catalog")
	}
	if len(products) == 0 {
		return nil, pkgerrors.New(pkgerrors.CodeInternal, "catalog is empty; did seeding run?")
	}

	byID := make(map[int64]models.Product, len(products))
	for _, p := range products {
		byID[p.ID] = p
	}

	return &service{products: products, byID: byID}, nil
}

// List applies the filters over the catalog in canonical order.
func (s *service) List(ctx context.Context, filters Filters) ([]ProductDTO, error) {
	matched := Filter(s.products, filters)
	out := make([]ProductDTO, 0, len(matched))
	for _, p := range matched {
		out = append(out, toDTO(p))
	}
	return out, nil
}

// Get returns a single product or not-found.
func (s *service) Get(ctx context.Context, id int64) (*ProductDTO, error) {
	p, ok := s.byID[id]
	if !ok {
		return nil, pkgerrors.New(pkgerrors.CodeNotFound, "product not found")
	}
	dto := toDTO(p)
	return &dto, nil
}

// Snapshot returns the raw product record for cart denormalization.
func (s *service) Snapshot(ctx context.Context, id int64) (*models.Product, error) {
	p, ok := s.byID[id]
	if !ok {
		return nil, pkgerrors.New(pkgerrors.CodeNotFound, "product not found")
	}
	copy := p
	return &copy, nil
}

func toDTO(p models.Product) ProductDTO {
	return ProductDTO{
		ID:          p.ID,
		Name:        p.Name,
		PriceCents:  p.PriceCents,
		Price:       decimal.New(p.PriceCents, -2).StringFixed(2),
		Category:    p.Category.String(),
		Image:       p.Image,
		Description: p.Description,
	}
}
