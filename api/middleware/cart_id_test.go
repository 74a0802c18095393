package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
)

func TestCartIDMintsIdentifierWhenMissing(t *testing.T) {
	t.Parallel()

	var seen string
	handler := CartID(nil)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = CartIDFromContext(r.Context())
	}))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/cart", nil))

	if seen == "" {
		t.Fatal("expected cart id in context")
	}
	if _, err := uuid.Parse(seen); err != nil {
		t.Fatalf("minted cart id is not a uuid: %v", err)
	}
	if rec.Header().Get("X-Cart-Id") != seen {
		t.Fatal("response header must echo the cart id")
	}
}

func TestCartIDKeepsClientIdentifier(t *testing.T) {
	t.Parallel()

	want := uuid.NewString()
	var seen string
	handler := CartID(nil)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = CartIDFromContext(r.Context())
	}))

	req := httptest.NewRequest(http.MethodGet, "/api/v1/cart", nil)
	req.Header.Set("X-Cart-Id", want)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if seen != want {
		t.Fatalf("expected cart id %s, got %s", want, seen)
	}
}

func TestCartIDRejectsMalformedIdentifier(t *testing.T) {
	t.Parallel()

	handler := CartID(nil)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("handler must not run for a malformed cart id")
	}))

	req := httptest.NewRequest(http.MethodGet, "/api/v1/cart", nil)
	req.Header.Set("X-Cart-Id", "not-a-uuid")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("unexpected status: %d", rec.Code)
	}
}
