package services

import (
	"context"

	"github.com/ReshephInayat/Full-Stack-Ecommerce-Website/internal/basket"
	"github.com/ReshephInayat/Full-Stack-Ecommerce-Website/internal/model"
)

// PaymentGateway is the hosted payment provider: checkout sessions are
// created against it, webhook payloads are authenticated by it, and
// per-item detail for a completed session is fetched back from it.
type PaymentGateway interface {
	CreateCheckoutSession(ctx context.Context, items []basket.Item, md model.CheckoutMetadata) (string, error)
	VerifyEvent(payload []byte, signature string) (*model.WebhookEvent, error)
	ListLineItems(ctx context.Context, sessionID string) ([]model.SessionLineItem, error)
}
