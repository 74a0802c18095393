package middleware

import (
	"net/http"

	"github.com/google/uuid"

	"github.com/shopvista/storefront-backend/api/responses"
	pkgerrors "github.com/shopvista/storefront-backend/pkg/errors"
	"github.com/shopvista/storefront-backend/pkg/logger"
)

const cartIDHeader = "X-Cart-Id"

// CartID resolves the caller's cart slot. A first-time caller gets a
// fresh identifier minted for them; the response header always carries
// the identifier the request was served under so clients can persist it.
func CartID(logg *logger.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			cartID := r.Header.Get(cartIDHeader)
			if cartID == "" {
				cartID = uuid.NewString()
			} else if _, err := uuid.Parse(cartID); err != nil {
				responses.WriteError(r.Context(), logg, w,
					pkgerrors.Wrap(pkgerrors.CodeValidation, err, "cart id must be a valid uuid"))
				return
			}

			w.Header().Set(cartIDHeader, cartID)

			ctx := WithCartID(r.Context(), cartID)
			if logg != nil {
				ctx = logg.WithCartID(ctx, cartID)
			}

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
