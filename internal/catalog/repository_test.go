package catalog

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/shopvista/storefront-backend/pkg/db/models"
)

func setupCatalogTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open("file::memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	schema := `
CREATE TABLE IF NOT EXISTS products (
  id INTEGER PRIMARY KEY,
  position INTEGER NOT NULL UNIQUE,
  name TEXT NOT NULL,
  price_cents INTEGER NOT NULL,
  category TEXT NOT NULL,
  image TEXT NOT NULL,
  description TEXT NOT NULL,
  created_at DATETIME,
  updated_at DATETIME
);`
	require.NoError(t, db.Exec(schema).Error)
	return db
}

func TestRepositoryUpsertAndListOrdered(t *testing.T) {
	db := setupCatalogTestDB(t)
	repo := NewRepository(db)
	ctx := context.Background()

	seed := []models.Product{
		{ID: 2, Position: 2, Name: "Smart Watch", PriceCents: 19999, Category: "electronics", Image: "watch.jpg", Description: "Fitness tracking"},
		{ID: 1, Position: 1, Name: "Wireless Headphones", PriceCents: 9999, Category: "electronics", Image: "headphones.jpg", Description: "Noise cancelling"},
	}
	require.NoError(t, repo.UpsertAll(ctx, seed))

	listed, err := repo.ListOrdered(ctx)
	require.NoError(t, err)
	require.Len(t, listed, 2)
	assert.Equal(t, int64(1), listed[0].ID)
	assert.Equal(t, int64(2), listed[1].ID)

	// Re-seeding with changed fields converges instead of duplicating.
	seed[0].PriceCents = 17999
	require.NoError(t, repo.UpsertAll(ctx, seed))

	listed, err = repo.ListOrdered(ctx)
	require.NoError(t, err)
	require.Len(t, listed, 2)
	assert.Equal(t, int64(17999), listed[1].PriceCents)
}

func TestRepositoryFindByID(t *testing.T) {
	db := setupCatalogTestDB(t)
	repo := NewRepository(db)
	ctx := context.Background()

	require.NoError(t, repo.UpsertAll(ctx, []models.Product{
		{ID: 1, Position: 1, Name: "Wireless Headphones", PriceCents: 9999, Category: "electronics", Image: "headphones.jpg", Description: "Noise cancelling"},
	}))

	found, err := repo.FindByID(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, "Wireless Headphones", found.Name)

	_, err = repo.FindByID(ctx, 42)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestSeedEndToEnd(t *testing.T) {
	db := setupCatalogTestDB(t)
	repo := NewRepository(db)
	ctx := context.Background()

	products, err := ParseSeed()
	require.NoError(t, err)
	require.NoError(t, repo.UpsertAll(ctx, products))

	listed, err := repo.ListOrdered(ctx)
	require.NoError(t, err)
	require.Len(t, listed, len(products))

	svc, err := NewService(ctx, repo)
	require.NoError(t, err)

	dtos, err := svc.List(ctx, Filters{Category: "electronics"})
	require.NoError(t, err)
	assert.NotEmpty(t, dtos)
	for _, dto := range dtos {
		assert.Equal(t, "electronics", dto.Category)
	}
}
