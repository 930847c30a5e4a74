package services

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/ReshephInayat/Full-Stack-Ecommerce-Website/internal/model"
)

// OrderStore is the durable order record store. CreateOrder must be
// conditional on the checkout session id: a duplicate delivery writes
// nothing and reports created=false.
type OrderStore interface {
	CreateOrder(ctx context.Context, o *model.Order) (bool, error)
	GetByCheckoutSessionID(ctx context.Context, sessionID string) (*model.Order, error)
	MarkConfirmationSent(ctx context.Context, orderID int64) error
}

// PaymentService runs the webhook pipeline: verify, finalize, notify.
// Each stage is safe to retry; provider delivery is at-least-once.
type PaymentService struct {
	Gateway PaymentGateway
	Orders  OrderStore
	Mailer  EmailSender
}

func NewPaymentService(g PaymentGateway, orders OrderStore, mailer EmailSender) *PaymentService {
	return &PaymentService{Gateway: g, Orders: orders, Mailer: mailer}
}

// HandleWebhook processes one signed provider event.
//
// Signature verification happens before any field of the payload is
// interpreted; a failure is ErrInvalidSignature and nothing else runs.
// Event kinds other than checkout completion are acknowledged no-ops.
// Completed checkouts are finalized into an order exactly once and the
// confirmation email is sent at most once; a failed send surfaces a
// NotificationError so the provider redelivers, and the redelivery
// short-circuits at the idempotency check and retries only the email.
func (s *PaymentService) HandleWebhook(ctx context.Context, payload []byte, signature string) error {
	event, err := s.Gateway.VerifyEvent(payload, signature)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidSignature, err)
	}

	if event.Type != model.EventCheckoutCompleted {
		return nil
	}

	order, err := s.finalizeOrder(ctx, event.Session)
	if err != nil {
		return err
	}

	if order.ConfirmationSent {
		return nil
	}
	if err := s.Mailer.SendOrderConfirmation(ctx, order); err != nil {
		log.Printf("confirmation email failed: order=%s session=%s err=%v",
			order.OrderNumber, order.CheckoutSessionID, err)
		return &NotificationError{OrderNumber: order.OrderNumber, Err: err}
	}
	return s.Orders.MarkConfirmationSent(ctx, order.OrderID)
}

// finalizeOrder materializes the order for a completed session. The
// provider's reported total is authoritative (it already reflects any
// discount codes); client-side sums are never trusted here.
func (s *PaymentService) finalizeOrder(ctx context.Context, sess *model.CheckoutSession) (*model.Order, error) {
	existing, err := s.Orders.GetByCheckoutSessionID(ctx, sess.ID)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return existing, nil
	}

	sessionItems, err := s.Gateway.ListLineItems(ctx, sess.ID)
	if err != nil {
		return nil, &ProviderError{Op: "list session line items", Err: err}
	}

	lineItems := make([]model.OrderLineItem, 0, len(sessionItems))
	for _, li := range sessionItems {
		lineItems = append(lineItems, model.OrderLineItem{
			ProductID: li.ProductID,
			Name:      li.Name,
			ImageURL:  li.ImageURL,
			Quantity:  li.Quantity,
			UnitPrice: minorToMajor(li.UnitAmount),
		})
	}

	order := &model.Order{
		OrderNumber:       sess.Metadata.OrderNumber,
		CheckoutSessionID: sess.ID,
		PaymentIntentID:   sess.PaymentIntentID,
		CustomerName:      sess.Metadata.CustomerName,
		CustomerEmail:     sess.Metadata.CustomerEmail,
		BuyerID:           sess.Metadata.BuyerID,
		Currency:          sess.Currency,
		AmountDiscount:    minorToMajor(sess.AmountDiscount),
		TotalPrice:        minorToMajor(sess.AmountTotal),
		Status:            model.OrderStatusPaid,
		OrderDate:         time.Now().UTC(),
		LineItems:         lineItems,
	}

	created, err := s.Orders.CreateOrder(ctx, order)
	if err != nil {
		return nil, err
	}
	if !created {
		// lost a race with a concurrent delivery of the same event
		existing, err := s.Orders.GetByCheckoutSessionID(ctx, sess.ID)
		if err != nil {
			return nil, err
		}
		if existing == nil {
			return nil, fmt.Errorf("order for session %s vanished after conflicting insert", sess.ID)
		}
		return existing, nil
	}
	log.Printf("order created: order=%s session=%s total=%.2f %s",
		order.OrderNumber, order.CheckoutSessionID, order.TotalPrice, order.Currency)
	return order, nil
}

func minorToMajor(v int64) float64 {
	return float64(v) / 100
}
