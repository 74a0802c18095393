package middleware

import (
	"net/http"

	"github.com/go-chi/cors"
)

// CORS returns middleware that applies the API's allowed origin policy.
// The storefront frontend runs on a separate origin and persists its
// cart identifier client-side, so X-Cart-Id must survive the preflight.
func CORS(allowedOrigins []string) func(http.Handler) http.Handler {
	if len(allowedOrigins) == 0 {
		allowedOrigins = []string{"http://localhost:3000"}
	}
	return cors.New(cors.Options{
		AllowedOrigins:   allowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Content-Type", "X-Cart-Id", "X-Request-Id", "X-Requested-With"},
		ExposedHeaders:   []string{"X-Cart-Id", "X-Request-Id"},
		AllowCredentials: false,
		MaxAge:           300,
	}).Handler
}
