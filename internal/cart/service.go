package cart

import (
	"context"
	"errors"
	"time"

	"github.com/shopvista/storefront-backend/internal/catalog"
	pkgerrors "github.com/shopvista/storefront-backend/pkg/errors"
	"github.com/shopvista/storefront-backend/pkg/logger"
	"github.com/shopvista/storefront-backend/pkg/metrics"
)

// ServiceParams groups dependencies for the cart service.
type ServiceParams struct {
	Store         Store
	Catalog       catalog.Service
	ShippingCents int64
	Logger        *logger.Logger
	Metrics       *metrics.CartMetrics
}

// Service exposes business rules for cart management. Every mutation
// loads the slot, rewrites it in memory and persists the full cart back.
type Service interface {
	Get(ctx context.Context, cartID string) (Cart, error)
	AddItem(ctx context.Context, cartID string, productID int64) (Cart, error)
	IncreaseQuantity(ctx context.Context, cartID string, productID int64) (Cart, error)
	DecreaseQuantity(ctx context.Context, cartID string, productID int64) (Cart, error)
	SetQuantity(ctx context.Context, cartID string, productID int64, quantity int64) (Cart, error)
	RemoveItem(ctx context.Context, cartID string, productID int64) (Cart, error)
	Clear(ctx context.Context, cartID string) (Cart, error)
	Summary(ctx context.Context, cartID string) (Summary, error)
	TotalItemCount(ctx context.Context, cartID string) (int64, error)
}

type service struct {
	store         Store
	catalog       catalog.Service
	shippingCents int64
	logg          *logger.Logger
	metrics       *metrics.CartMetrics
}

// NewService builds a cart service with the required dependencies.
func NewService(params ServiceParams) (Service, error) {
	if params.Store == nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "cart store is required")
	}
	if params.Catalog == nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "catalog service is required")
	}
	if params.ShippingCents < 0 {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "shipping charge must be non-negative")
	}
	if params.Logger == nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "logger is required")
	}
	if params.Metrics == nil {
		params.Metrics = metrics.NewCartMetrics(nil)
	}
	return &service{
		store:         params.Store,
		catalog:       params.Catalog,
		shippingCents: params.ShippingCents,
		logg:          params.Logger,
		metrics:       params.Metrics,
	}, nil
}

// Get returns the current cart for the slot.
func (s *service) Get(ctx context.Context, cartID string) (Cart, error) {
	return s.instrumented(ctx, "get", cartID, func(c Cart) (Cart, bool, error) {
		return c, false, nil
	})
}

// AddItem appends a new line for the product or bumps an existing one.
func (s *service) AddItem(ctx context.Context, cartID string, productID int64) (Cart, error) {
	return s.instrumented(ctx, "add_item", cartID, func(c Cart) (Cart, bool, error) {
		if idx := c.indexOf(productID); idx >= 0 {
			c.Items[idx].Quantity++
			return c, true, nil
		}

		product, err := s.catalog.Snapshot(ctx, productID)
		if err != nil {
			return c, false, err
		}
		c.Items = append(c.Items, LineItem{
			ProductID:  product.ID,
			Name:       product.Name,
			PriceCents: product.PriceCents,
			Image:      product.Image,
			Quantity:   1,
		})
		return c, true, nil
	})
}

// IncreaseQuantity bumps an existing line by one.
func (s *service) IncreaseQuantity(ctx context.Context, cartID string, productID int64) (Cart, error) {
	return s.instrumented(ctx, "increase_quantity", cartID, func(c Cart) (Cart, bool, error) {
		idx := c.indexOf(productID)
		if idx < 0 {
			return c, false, pkgerrors.New(pkgerrors.CodeNotFound, "cart item not found")
		}
		c.Items[idx].Quantity++
		return c, true, nil
	})
}

// DecreaseQuantity lowers an existing line by one. A line that reaches
// zero is removed from the cart.
func (s *service) DecreaseQuantity(ctx context.Context, cartID string, productID int64) (Cart, error) {
	return s.instrumented(ctx, "decrease_quantity", cartID, func(c Cart) (Cart, bool, error) {
		idx := c.indexOf(productID)
		if idx < 0 {
			return c, false, pkgerrors.New(pkgerrors.CodeNotFound, "cart item not found")
		}
		c.Items[idx].Quantity--
		if c.Items[idx].Quantity <= 0 {
			c.Items = append(c.Items[:idx], c.Items[idx+1:]...)
		}
		return c, true, nil
	})
}

// SetQuantity replaces the quantity of an existing line. A value below
// one removes the line instead of leaving an empty row behind.
func (s *service) SetQuantity(ctx context.Context, cartID string, productID int64, quantity int64) (Cart, error) {
	return s.instrumented(ctx, "set_quantity", cartID, func(c Cart) (Cart, bool, error) {
		idx := c.indexOf(productID)
		if idx < 0 {
			return c, false, pkgerrors.New(pkgerrors.CodeNotFound, "cart item not found")
		}
		if quantity < 1 {
			c.Items = append(c.Items[:idx], c.Items[idx+1:]...)
			return c, true, nil
		}
		c.Items[idx].Quantity = quantity
		return c, true, nil
	})
}

// RemoveItem drops the line for the product regardless of prior state.
func (s *service) RemoveItem(ctx context.Context, cartID string, productID int64) (Cart, error) {
	return s.instrumented(ctx, "remove_item", cartID, func(c Cart) (Cart, bool, error) {
		idx := c.indexOf(productID)
		if idx < 0 {
			return c, false, nil
		}
		c.Items = append(c.Items[:idx], c.Items[idx+1:]...)
		return c, true, nil
	})
}

// Clear drops the cart slot entirely. The next load sees an empty cart.
func (s *service) Clear(ctx context.Context, cartID string) (Cart, error) {
	start := time.Now()
	s.metrics.IncOp("clear")

	if cartID == "" {
		s.metrics.IncFailure("clear")
		return Cart{}, pkgerrors.New(pkgerrors.CodeValidation, "cart id is required")
	}
	if err := s.store.Clear(ctx, cartID); err != nil {
		s.metrics.IncFailure("clear")
		return Cart{}, err
	}

	s.metrics.ObserveDuration("clear", time.Since(start))
	return Cart{}, nil
}

// Summary returns the priced projection of the cart.
func (s *service) Summary(ctx context.Context, cartID string) (Summary, error) {
	c, err := s.Get(ctx, cartID)
	if err != nil {
		return Summary{}, err
	}
	return Summarize(c, s.shippingCents), nil
}

// TotalItemCount returns the quantity-weighted item count.
func (s *service) TotalItemCount(ctx context.Context, cartID string) (int64, error) {
	c, err := s.Get(ctx, cartID)
	if err != nil {
		return 0, err
	}
	return c.TotalItems(), nil
}

// instrumented runs one cart operation with metrics and corrupt-slot
// recovery around it. The mutate callback reports whether the cart must
// be persisted back.
func (s *service) instrumented(ctx context.Context, op, cartID string, mutate func(Cart) (Cart, bool, error)) (Cart, error) {
	start := time.Now()
	s.metrics.IncOp(op)

	current, err := s.load(ctx, cartID)
	if err != nil {
		s.metrics.IncFailure(op)
		return Cart{}, err
	}

	updated, dirty, err := mutate(current)
	if err != nil {
		s.metrics.IncFailure(op)
		return Cart{}, err
	}

	if dirty {
		if err := s.store.Save(ctx, cartID, updated); err != nil {
			s.metrics.IncFailure(op)
			return Cart{}, err
		}
	}

	s.metrics.ObserveDuration(op, time.Since(start))
	return updated, nil
}

// load reads the slot, recovering from a corrupt payload by resetting
// it to an empty cart.
func (s *service) load(ctx context.Context, cartID string) (Cart, error) {
	if cartID == "" {
		return Cart{}, pkgerrors.New(pkgerrors.CodeValidation, "cart id is required")
	}

	current, err := s.store.Load(ctx, cartID)
	if err == nil {
		return current, nil
	}
	if !errors.Is(err, ErrCorruptSlot) {
		return Cart{}, err
	}

	s.logg.Warn(s.logg.WithCartID(ctx, cartID), "resetting corrupt cart slot")
	empty := Cart{}
	if saveErr := s.store.Save(ctx, cartID, empty); saveErr != nil {
		return Cart{}, saveErr
	}
	return empty, nil
}
