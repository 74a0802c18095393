package catalog

import (
	"context"
	"embed"
	"encoding/json"
	"fmt"

	"go.uber.org/multierr"
	"gorm.io/gorm"

	"github.com/shopvista/storefront-backend/pkg/db"
	"github.com/shopvista/storefront-backend/pkg/db/models"
	pkgerrors "github.com/shopvista/storefront-backend/pkg/errors"
	"github.com/shopvista/storefront-backend/pkg/logger"
)

//go:embed seed/products.json
var seedFS embed.FS

const seedPath = "seed/products.json"

// ParseSeed decodes and validates the embedded catalog. Validation failures
// are accumulated so a broken seed reports every problem at once.
func ParseSeed() ([]models.Product, error) {
	raw, err := seedFS.ReadFile(seedPath)
	if err != nil {
		return nil, fmt.Errorf("read catalog seed: %w", err)
	}

	var products []models.Product
	if err := json.Unmarshal(raw, &products); err != nil {
		return nil, fmt.Errorf("decode catalog seed: %w", err)
	}
	if len(products) == 0 {
		return nil, fmt.Errorf("catalog seed is empty")
	}

	var verr error
	seenIDs := map[int64]struct{}{}
	seenPositions := map[int]struct{}{}
	for i, p := range products {
		if p.ID <= 0 {
			verr = multierr.Append(verr, fmt.Errorf("seed[%d]: id must be positive", i))
		}
		if _, dup := seenIDs[p.ID]; dup {
			verr = multierr.Append(verr, fmt.Errorf("seed[%d]: duplicate id %d", i, p.ID))
		}
		seenIDs[p.ID] = struct{}{}
		if _, dup := seenPositions[p.Position]; dup {
			verr = multierr.Append(verr, fmt.Errorf("seed[%d]: duplicate position %d", i, p.Position))
		}
		seenPositions[p.Position] = struct{}{}
		if p.Name == "" {
			verr = multierr.Append(verr, fmt.Errorf("seed[%d]: name is required", i))
		}
		if p.PriceCents < 0 {
			verr = multierr.Append(verr, fmt.Errorf("seed[%d]: price must be non-negative", i))
		}
		if !p.Category.IsValid() {
			verr = multierr.Append(verr, fmt.Errorf("seed[%d]: unknown category %q", i, p.Category))
		}
	}
	if verr != nil {
		return nil, fmt.Errorf("catalog seed invalid: %w", verr)
	}

	return products, nil
}

// Seed writes the embedded catalog into the database inside one transaction.
// Existing rows are replaced so restarts converge on the shipped catalog.
func Seed(ctx context.Context, client *db.Client, logg *logger.Logger) error {
	products, err := ParseSeed()
	if err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "parse catalog seed")
	}

	repo := NewRepository(client.DB())
	if err := client.WithTx(ctx, func(tx *gorm.DB) error {
		return repo.WithTx(tx).UpsertAll(ctx, products)
	}); err != nil {
		if db.IsUniqueViolation(err, "idx_products_position") {
			return pkgerrors.Wrap(pkgerrors.CodeConflict, err, "seed positions collide with existing rows")
		}
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "seed catalog")
	}

	if logg != nil {
		ctx = logg.WithField(ctx, "products", len(products))
		logg.Info(ctx, "catalog seeded")
	}
	return nil
}
