package cart

import (
	"context"
	"fmt"

	"go.uber.org/zap"
)

// API is the slice of the remote client the cart service needs.
type API interface {
	Get(ctx context.Context) (Cart, error)
	UpdateItemQuantity(ctx context.Context, productID string, qty int) error
	RemoveItem(ctx context.Context, productID string) error
}

// Service mutates the backend cart and hands back the reloaded copy.
// Mutations are confirmed-only: the backend is updated first, then the cart
// is refetched. Racing mutations are not locked against; the last response
// to settle wins.
type Service struct {
	api API
	log *zap.Logger
}

func NewService(api API, log *zap.Logger) *Service {
	if log == nil {
		log = zap.NewNop()
	}
	return &Service{api: api, log: log}
}

// Load fetches the current cart.
func (s *Service) Load(ctx context.Context) (Cart, error) {
	return s.api.Get(ctx)
}

// ChangeQuantity replaces an item's quantity. A target quantity of zero or
// less means removal, which must be confirmed first; when the confirmation
// is declined the cart is returned unchanged.
func (s *Service) ChangeQuantity(ctx context.Context, productID string, newQty int, confirmRemoval func() bool) (Cart, error) {
	if newQty <= 0 {
		if confirmRemoval == nil || !confirmRemoval() {
			s.log.Debug("removal declined", zap.String("product_id", productID))
			return s.api.Get(ctx)
		}
		return s.Remove(ctx, productID)
	}

	if err := s.api.UpdateItemQuantity(ctx, productID, newQty); err != nil {
		return Cart{}, fmt.Errorf("update quantity for %s: %w", productID, err)
	}
	s.log.Info("updated quantity", zap.String("product_id", productID), zap.Int("qty", newQty))
	return s.api.Get(ctx)
}

// Remove deletes a line item, then reloads.
func (s *Service) Remove(ctx context.Context, productID string) (Cart, error) {
	if err := s.api.RemoveItem(ctx, productID); err != nil {
		return Cart{}, fmt.Errorf("remove %s: %w", productID, err)
	}
	s.log.Info("removed item", zap.String("product_id", productID))
	return s.api.Get(ctx)
}
