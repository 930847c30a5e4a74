package services

import (
	"context"

	"github.com/ReshephInayat/Full-Stack-Ecommerce-Website/internal/basket"
	"github.com/ReshephInayat/Full-Stack-Ecommerce-Website/internal/model"

	"github.com/google/uuid"
)

type CheckoutService struct {
	Gateway PaymentGateway
}

func NewCheckoutService(g PaymentGateway) *CheckoutService {
	return &CheckoutService{Gateway: g}
}

// CreateSession validates the basket payload and requests a hosted
// checkout session, returning the redirect URL.
//
// Validation covers ALL items before any external call: every item whose
// snapshotted price is missing or non-positive ends up in the
// ValidationError, so the caller gets the complete rejection reason.
func (s *CheckoutService) CreateSession(ctx context.Context, items []basket.Item, md model.CheckoutMetadata) (string, error) {
	if len(items) == 0 {
		return "", ErrEmptyBasket
	}

	var offending []string
	for _, it := range items {
		if it.Product.Price <= 0 {
			name := it.Product.Name
			if name == "" {
				name = it.Product.ID
			}
			offending = append(offending, name)
		}
	}
	if len(offending) > 0 {
		return "", &ValidationError{Products: offending}
	}

	// one order number per checkout attempt, never reused
	if md.OrderNumber == "" {
		md.OrderNumber = uuid.NewString()
	}

	url, err := s.Gateway.CreateCheckoutSession(ctx, items, md)
	if err != nil {
		return "", &ProviderError{Op: "create checkout session", Err: err}
	}
	return url, nil
}
