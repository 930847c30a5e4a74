package model

import "time"

// Order statuses. Orders are created directly in "paid" by the webhook
// pipeline; other states exist for provider-side refunds/disputes.
const (
	OrderStatusPaid     = "paid"
	OrderStatusRefunded = "refunded"
)

// Order is the durable record of a completed purchase, created exactly
// once per completed checkout session.
type Order struct {
	OrderID           int64           `json:"orderid"`
	OrderNumber       string          `json:"ordernumber"`
	CheckoutSessionID string          `json:"checkout_session_id"`
	PaymentIntentID   string          `json:"payment_intent_id,omitempty"`
	CustomerName      string          `json:"customer_name"`
	CustomerEmail     string          `json:"customer_email"`
	BuyerID           string          `json:"buyer_id"`
	Currency          string          `json:"currency"`
	AmountDiscount    float64         `json:"amount_discount"`
	TotalPrice        float64         `json:"totalprice"`
	Status            string          `json:"status"`
	OrderDate         time.Time       `json:"orderdate"`
	ConfirmationSent  bool            `json:"confirmation_sent"`
	LineItems         []OrderLineItem `json:"line_items"`
}

// OrderLineItem is one purchased product with its quantity and the unit
// price actually charged (minor units converted back to major).
type OrderLineItem struct {
	OrderItemID int64   `json:"orderitemid,omitempty"`
	ProductID   string  `json:"product_id"`
	Name        string  `json:"name"`
	ImageURL    string  `json:"image,omitempty"`
	Quantity    int     `json:"quantity"`
	UnitPrice   float64 `json:"unit_price"`
}
