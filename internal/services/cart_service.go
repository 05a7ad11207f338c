package services

import (
	"fmt"

	"freshherbal/internal/models"
	"freshherbal/internal/repositories"
)

// CartService owns the shopper's current cart. Every mutation is a
// read-modify-write of the persisted item list, so the store stays the
// single source of truth.
type CartService struct {
	store repositories.BlobStore
}

// NewCartService creates a new CartService.
func NewCartService(store repositories.BlobStore) *CartService {
	return &CartService{
		store: store,
	}
}

// Items returns the current cart contents. A cart that was never
// persisted is an empty cart, not an error.
func (s *CartService) Items() ([]models.LineItem, error) {
	var items []models.LineItem
	if _, err := s.store.Load(repositories.CartKey, &items); err != nil {
		return nil, fmt.Errorf("failed to load cart: %w", err)
	}
	if items == nil {
		items = []models.LineItem{}
	}
	return items, nil
}

// AddItem merges an item into the cart. If a line with the same ID
// already exists its quantity is incremented, otherwise the item is
// appended. Quantities are clamped to [1,99], never rejected.
func (s *CartService) AddItem(item models.LineItem) ([]models.LineItem, error) {
	items, err := s.Items()
	if err != nil {
		return nil, err
	}

	quantity := item.Quantity
	if quantity < 1 {
		quantity = 1
	}

	merged := false
	for i := range items {
		if items[i].ID == item.ID {
			items[i].Quantity = models.ClampQuantity(items[i].Quantity + quantity)
			merged = true
			break
		}
	}
	if !merged {
		item.Quantity = models.ClampQuantity(quantity)
		items = append(items, item)
	}

	if err := s.save(items); err != nil {
		return nil, err
	}
	return items, nil
}

// RemoveItem removes the line with the given ID. Removing an absent ID
// is a no-op.
func (s *CartService) RemoveItem(id string) ([]models.LineItem, error) {
	items, err := s.Items()
	if err != nil {
		return nil, err
	}

	filtered := items[:0]
	for _, item := range items {
		if item.ID != id {
			filtered = append(filtered, item)
		}
	}

	if err := s.save(filtered); err != nil {
		return nil, err
	}
	return filtered, nil
}

// SetQuantity sets the quantity of the line with the given ID.
// Non-positive values default to 1 and everything is clamped to [1,99].
// Setting an absent ID is a no-op.
func (s *CartService) SetQuantity(id string, quantity int) ([]models.LineItem, error) {
	items, err := s.Items()
	if err != nil {
		return nil, err
	}

	if quantity < 1 {
		quantity = 1
	}
	for i := range items {
		if items[i].ID == id {
			items[i].Quantity = models.ClampQuantity(quantity)
			break
		}
	}

	if err := s.save(items); err != nil {
		return nil, err
	}
	return items, nil
}

// AdjustQuantity adds delta to the quantity of the line with the given
// ID, clamping the result. Adjusting an absent ID is a no-op.
func (s *CartService) AdjustQuantity(id string, delta int) ([]models.LineItem, error) {
	items, err := s.Items()
	if err != nil {
		return nil, err
	}

	for i := range items {
		if items[i].ID == id {
			items[i].Quantity = models.ClampQuantity(items[i].Quantity + delta)
			break
		}
	}

	if err := s.save(items); err != nil {
		return nil, err
	}
	return items, nil
}

// Clear empties the cart. The storage key stays present with an empty
// list; the cart is emptied, never deleted.
func (s *CartService) Clear() error {
	return s.save([]models.LineItem{})
}

// Totals computes the derived monetary figures for the current cart.
func (s *CartService) Totals() (models.CartTotals, error) {
	items, err := s.Items()
	if err != nil {
		return models.CartTotals{}, err
	}
	return models.ComputeTotals(items), nil
}

func (s *CartService) save(items []models.LineItem) error {
	if err := s.store.Save(repositories.CartKey, items); err != nil {
		return fmt.Errorf("failed to save cart: %w", err)
	}
	return nil
}
