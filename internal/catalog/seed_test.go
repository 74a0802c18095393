package catalog

import "testing"

func TestParseSeedLoadsCatalog(t *testing.T) {
	products, err := ParseSeed()
	if err != nil {
		t.Fatalf("parse seed: %v", err)
	}
	if len(products) != 8 {
		t.Fatalf("expected 8 seed products, got %d", len(products))
	}

	for i, p := range products {
		if p.Position != i+1 {
			t.Fatalf("seed positions must be contiguous; product %d has position %d", p.ID, p.Position)
		}
		if !p.Category.IsValid() {
			t.Fatalf("product %d carries unknown category %q", p.ID, p.Category)
		}
		if p.PriceCents <= 0 {
			t.Fatalf("product %d has non-positive price", p.ID)
		}
	}

	if products[0].Name != "Wireless Headphones" || products[0].PriceCents != 9999 {
		t.Fatalf("unexpected first product: %+v", products[0])
	}
}
