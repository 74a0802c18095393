package controllers

import (
	"net/http"

	"github.com/shopvista/storefront-backend/api/responses"
	"github.com/shopvista/storefront-backend/api/validators"
	"github.com/shopvista/storefront-backend/internal/catalog"
	"github.com/shopvista/storefront-backend/pkg/enums"
	pkgerrors "github.com/shopvista/storefront-backend/pkg/errors"
	"github.com/shopvista/storefront-backend/pkg/logger"
)

// ProductList serves the filtered catalog. Category and text filters
// compose; both default to the full catalog.
func ProductList(svc catalog.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "catalog service unavailable"))
			return
		}

		category := validators.ParseQueryString(r, "category", enums.CategoryAll)
		if category != enums.CategoryAll {
			if _, err := enums.ParseProductCategory(category); err != nil {
				responses.WriteError(r.Context(), logg, w,
					pkgerrors.Wrap(pkgerrors.CodeValidation, err, "unknown product category").WithDetails(map[string]any{"category": category}))
				return
			}
		}

		filters := catalog.Filters{
			Category: category,
			Query:    validators.SanitizeString(r.URL.Query().Get("q"), 100),
		}

		products, err := svc.List(r.Context(), filters)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, map[string]any{
			"products": products,
			"count":    len(products),
		})
	}
}

// ProductDetail serves a single catalog product by ID.
func ProductDetail(svc catalog.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "catalog service unavailable"))
			return
		}

		productID, err := validators.ParsePathID(r, "productId")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		product, err := svc.Get(r.Context(), productID)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, product)
	}
}
