package catalog

import (
	"strings"

	"github.com/shopvista/storefront-backend/pkg/db/models"
	"github.com/shopvista/storefront-backend/pkg/enums"
)

// Filters describe the supported browse knobs. Category accepts the "all"
// wildcard (or empty) or an exact category label; Query is matched
// case-insensitively as a substring of the product name or description.
type Filters struct {
	Category string `json:"category,omitempty"`
	Query    string `json:"q,omitempty"`
}

// Filter returns the subsequence of products matching the filters, preserving
// the input order. It is pure: same inputs always yield the same output.
func Filter(products []models.Product, filters Filters) []models.Product {
	category := strings.TrimSpace(filters.Category)
	wildcard := category == "" || category == enums.CategoryAll
	query := strings.TrimSpace(strings.ToLower(filters.Query))

	out := make([]models.Product, 0, len(products))
	for _, p := range products {
		if !wildcard && p.Category.String() != category {
			continue
		}
		if query != "" && !matchesQuery(p, query) {
			continue
		}
		out = append(out, p)
	}
	return out
}

func matchesQuery(p models.Product, query string) bool {
	return strings.Contains(strings.ToLower(p.Name), query) ||
		strings.Contains(strings.ToLower(p.Description), query)
}
