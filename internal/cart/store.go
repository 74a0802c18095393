package cart

import (
	"context"
	"encoding/json"
	"time"

	pkgerrors "github.com/shopvista/storefront-backend/pkg/errors"
	"github.com/shopvista/storefront-backend/pkg/redis"
)

// ErrCorruptSlot marks a cart payload that no longer decodes. Callers
// recover by resetting the slot to an empty cart.
var ErrCorruptSlot = pkgerrors.New(pkgerrors.CodeInternal, "cart slot payload is corrupt")

// Store persists one serialized cart per cart ID.
type Store interface {
	Load(ctx context.Context, cartID string) (Cart, error)
	Save(ctx context.Context, cartID string, c Cart) error
	Clear(ctx context.Context, cartID string) error
}

type slotClient interface {
	GetBytes(ctx context.Context, key string) ([]byte, bool, error)
	Set(ctx context.Context, key string, value any, ttl time.Duration) error
	Del(ctx context.Context, keys ...string) error
	CartKey(cartID string) string
}

// RedisStore keeps each cart as a JSON array of line items in a single
// Redis key.
type RedisStore struct {
	client slotClient
	ttl    time.Duration
}

var _ slotClient = (*redis.Client)(nil)

// NewRedisStore builds a cart store over the shared Redis client.
func NewRedisStore(client slotClient, ttl time.Duration) (*RedisStore, error) {
	if client == nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "redis client is required")
	}
	if ttl < 0 {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "cart ttl must be non-negative")
	}
	return &RedisStore{client: client, ttl: ttl}, nil
}

// Load reads and decodes the cart slot. A missing slot is an empty cart.
func (s *RedisStore) Load(ctx context.Context, cartID string) (Cart, error) {
	payload, ok, err := s.client.GetBytes(ctx, s.client.CartKey(cartID))
	if err != nil {
		return Cart{}, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load cart slot")
	}
	if !ok || len(payload) == 0 {
		return Cart{}, nil
	}

	var items []LineItem
	if err := json.Unmarshal(payload, &items); err != nil {
		return Cart{}, pkgerrors.Wrap(pkgerrors.CodeInternal, ErrCorruptSlot, err.Error())
	}
	return Cart{Items: items}, nil
}

// Save serializes the full cart and overwrites the slot.
func (s *RedisStore) Save(ctx context.Context, cartID string, c Cart) error {
	items := c.Items
	if items == nil {
		items = []LineItem{}
	}
	payload, err := json.Marshal(items)
	if err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "encode cart")
	}
	if err := s.client.Set(ctx, s.client.CartKey(cartID), payload, s.ttl); err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "save cart slot")
	}
	return nil
}

// Clear drops the cart slot entirely.
func (s *RedisStore) Clear(ctx context.Context, cartID string) error {
	if err := s.client.Del(ctx, s.client.CartKey(cartID)); err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "clear cart slot")
	}
	return nil
}
