package cart

import (
	"context"
	"errors"
	"testing"
	"time"
)

type fakeSlotClient struct {
	data map[string][]byte
}

func newFakeSlotClient() *fakeSlotClient {
	return &fakeSlotClient{data: map[string][]byte{}}
}

func (f *fakeSlotClient) GetBytes(ctx context.Context, key string) ([]byte, bool, error) {
	payload, ok := f.data[key]
	return payload, ok, nil
}

func (f *fakeSlotClient) Set(ctx context.Context, key string, value any, ttl time.Duration) error {
	f.data[key] = value.([]byte)
	return nil
}

func (f *fakeSlotClient) Del(ctx context.Context, keys ...string) error {
	for _, key := range keys {
		delete(f.data, key)
	}
	return nil
}

func (f *fakeSlotClient) CartKey(cartID string) string {
	return "sf:cart:" + cartID
}

func TestRedisStoreRoundTrip(t *testing.T) {
	t.Parallel()

	store, err := NewRedisStore(newFakeSlotClient(), 0)
	if err != nil {
		t.Fatalf("new store: %v", err)
	}

	want := Cart{Items: []LineItem{
		{ProductID: 1, Name: "Wireless Headphones", PriceCents: 9999, Quantity: 2},
		{ProductID: 2, Name: "Running Shoes", PriceCents: 5999, Quantity: 1},
	}}
	if err := store.Save(context.Background(), "c1", want); err != nil {
		t.Fatalf("save: %v", err)
	}

	got, err := store.Load(context.Background(), "c1")
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(got.Items) != 2 || got.Items[0] != want.Items[0] || got.Items[1] != want.Items[1] {
		t.Fatalf("round trip mismatch: %+v", got.Items)
	}
}

func TestRedisStoreMissingSlotIsEmptyCart(t *testing.T) {
	t.Parallel()

	store, err := NewRedisStore(newFakeSlotClient(), 0)
	if err != nil {
		t.Fatalf("new store: %v", err)
	}

	got, err := store.Load(context.Background(), "missing")
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(got.Items) != 0 {
		t.Fatalf("expected empty cart, got %+v", got.Items)
	}
}

func TestRedisStoreCorruptPayload(t *testing.T) {
	t.Parallel()

	client := newFakeSlotClient()
	client.data["sf:cart:c1"] = []byte("{not json")
	store, err := NewRedisStore(client, 0)
	if err != nil {
		t.Fatalf("new store: %v", err)
	}

	_, err = store.Load(context.Background(), "c1")
	if !errors.Is(err, ErrCorruptSlot) {
		t.Fatalf("expected corrupt slot error, got %v", err)
	}
}

func TestRedisStoreClear(t *testing.T) {
	t.Parallel()

	client := newFakeSlotClient()
	store, err := NewRedisStore(client, 0)
	if err != nil {
		t.Fatalf("new store: %v", err)
	}

	if err := store.Save(context.Background(), "c1", Cart{Items: []LineItem{{ProductID: 1, Quantity: 1}}}); err != nil {
		t.Fatalf("save: %v", err)
	}
	if err := store.Clear(context.Background(), "c1"); err != nil {
		t.Fatalf("clear: %v", err)
	}
	if _, ok := client.data["sf:cart:c1"]; ok {
		t.Fatal("expected slot deleted")
	}
}

func TestNewRedisStoreValidation(t *testing.T) {
	t.Parallel()

	if _, err := NewRedisStore(nil, 0); err == nil {
		t.Fatal("expected error for nil client")
	}
	if _, err := NewRedisStore(newFakeSlotClient(), -time.Second); err == nil {
		t.Fatal("expected error for negative ttl")
	}
}
