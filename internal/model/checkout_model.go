package model

// CheckoutMetadata travels with the checkout session as opaque provider
// metadata and comes back verbatim on the webhook. OrderNumber is the
// correlation key for the whole pipeline: generated once per checkout
// attempt, never reused.
type CheckoutMetadata struct {
	OrderNumber   string `json:"order_number"`
	CustomerName  string `json:"customer_name"`
	CustomerEmail string `json:"customer_email"`
	BuyerID       string `json:"buyer_id"`
}

// CheckoutSession is the verified, completed provider session as seen by
// the webhook pipeline. Amounts are in minor units as reported by the
// provider (authoritative, discounts already applied).
type CheckoutSession struct {
	ID              string
	PaymentIntentID string
	Currency        string
	AmountTotal     int64
	AmountDiscount  int64
	Metadata        CheckoutMetadata
}

// SessionLineItem is one expanded provider line item. ProductID is the
// content-store id round-tripped through provider product metadata at
// session-creation time.
type SessionLineItem struct {
	ProductID  string
	Name       string
	ImageURL   string
	Quantity   int
	UnitAmount int64
}

// WebhookEvent is a signature-verified provider event. Session is only
// populated for completed-checkout events.
type WebhookEvent struct {
	Type    string
	Session *CheckoutSession
}

// EventCheckoutCompleted is the only event kind that triggers order
// finalization; everything else is acknowledged and ignored.
const EventCheckoutCompleted = "checkout.session.completed"
