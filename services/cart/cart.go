package cart

import (
	"context"
	"fmt"

	"vaxportal/models"
	"vaxportal/utils"
)

// CartService manages the per-user vaccine cart. The cart lives in the
// durable store so it survives page reloads and is cleared on a successful
// checkout.
type CartService interface {
	Get(ctx context.Context, userID string) (*models.Cart, error)
	AddItem(ctx context.Context, userID string, item models.CartItem) (*models.Cart, error)
	RemoveItem(ctx context.Context, userID, itemID string) (*models.Cart, error)
	Clear(ctx context.Context, userID string) error
}

// DefaultCartService implements CartService on the typed store.
type DefaultCartService struct {
	Store utils.KVStore
}

// Get loads the user's cart. A missing or unreadable blob yields an empty
// cart.
func (s *DefaultCartService) Get(ctx context.Context, userID string) (*models.Cart, error) {
	var cart models.Cart
	if _, err := s.Store.Get(ctx, utils.CartKey(userID), &cart); err != nil {
		return nil, fmt.Errorf("failed to load cart: %w", err)
	}
	return &cart, nil
}

// AddItem appends a line item and persists the cart.
func (s *DefaultCartService) AddItem(ctx context.Context, userID string, item models.CartItem) (*models.Cart, error) {
	cart, err := s.Get(ctx, userID)
	if err != nil {
		return nil, err
	}
	if err := cart.Add(item); err != nil {
		return nil, err
	}
	if err := s.save(ctx, userID, cart); err != nil {
		return nil, err
	}
	return cart, nil
}

// RemoveItem deletes a line item and persists the cart. Removing an absent
// item is not an error.
func (s *DefaultCartService) RemoveItem(ctx context.Context, userID, itemID string) (*models.Cart, error) {
	cart, err := s.Get(ctx, userID)
	if err != nil {
		return nil, err
	}
	if !cart.Remove(itemID) {
		return cart, nil
	}
	if err := s.save(ctx, userID, cart); err != nil {
		return nil, err
	}
	return cart, nil
}

// Clear drops the stored cart entirely.
func (s *DefaultCartService) Clear(ctx context.Context, userID string) error {
	if err := s.Store.Clear(ctx, utils.CartKey(userID)); err != nil {
		return fmt.Errorf("failed to clear cart: %w", err)
	}
	return nil
}

func (s *DefaultCartService) save(ctx context.Context, userID string, cart *models.Cart) error {
	if err := s.Store.Set(ctx, utils.CartKey(userID), cart, 0); err != nil {
		return fmt.Errorf("failed to store cart: %w", err)
	}
	return nil
}
