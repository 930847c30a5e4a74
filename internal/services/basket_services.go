package services

import (
	"context"

	"github.com/ReshephInayat/Full-Stack-Ecommerce-Website/internal/basket"
	"github.com/ReshephInayat/Full-Stack-Ecommerce-Website/internal/model"
)

// BasketStorage is the durable store behind the basket: every mutation
// is written back synchronously so a reload never loses contents.
type BasketStorage interface {
	Load(ctx context.Context, buyerID string) (*basket.Basket, error)
	Save(ctx context.Context, buyerID string, b *basket.Basket) error
}

type BasketService struct {
	Store BasketStorage
}

func NewBasketService(s BasketStorage) *BasketService {
	return &BasketService{Store: s}
}

// Get returns the buyer's basket (empty when nothing was ever added).
func (s *BasketService) Get(ctx context.Context, buyerID string) (*basket.Basket, error) {
	return s.Store.Load(ctx, buyerID)
}

// AddItem adds the product snapshot to the basket and persists it.
func (s *BasketService) AddItem(ctx context.Context, buyerID string, p model.ProductRef) (*basket.Basket, error) {
	b, err := s.Store.Load(ctx, buyerID)
	if err != nil {
		return nil, err
	}
	b.Add(p)
	if err := s.Store.Save(ctx, buyerID, b); err != nil {
		return nil, err
	}
	return b, nil
}

// RemoveItem decrements (or deletes) the entry for productID and
// persists the result. Removing an absent product is a no-op.
func (s *BasketService) RemoveItem(ctx context.Context, buyerID, productID string) (*basket.Basket, error) {
	b, err := s.Store.Load(ctx, buyerID)
	if err != nil {
		return nil, err
	}
	b.Remove(productID)
	if err := s.Store.Save(ctx, buyerID, b); err != nil {
		return nil, err
	}
	return b, nil
}

// Clear empties the basket and persists the empty state.
func (s *BasketService) Clear(ctx context.Context, buyerID string) error {
	b, err := s.Store.Load(ctx, buyerID)
	if err != nil {
		return err
	}
	b.Clear()
	return s.Store.Save(ctx, buyerID, b)
}
