package models

import (
	"time"

	"github.com/shopvista/storefront-backend/pkg/enums"
)

// Product is a catalog listing. Rows are written once by the seeder at boot
// and treated as immutable afterwards.
type Product struct {
	ID          int64                 `gorm:"column:id;primaryKey" json:"id"`
	Position    int                   `gorm:"column:position;not null;uniqueIndex" json:"position"`
	Name        string                `gorm:"column:name;not null" json:"name"`
	PriceCents  int64                 `gorm:"column:price_cents;not null" json:"price_cents"`
	Category    enums.ProductCategory `gorm:"column:category;not null;index" json:"category"`
	Image       string                `gorm:"column:image;not null" json:"image"`
	Description string                `gorm:"column:description;not null" json:"description"`
	CreatedAt   time.Time             `gorm:"column:created_at;autoCreateTime" json:"-"`
	UpdatedAt   time.Time             `gorm:"column:updated_at;autoUpdateTime" json:"-"`
}

// TableName pins the table used by migrations.
func (Product) TableName() string {
	return "products"
}
