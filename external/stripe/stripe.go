package stripe

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"os"

	"github.com/ReshephInayat/Full-Stack-Ecommerce-Website/internal/basket"
	"github.com/ReshephInayat/Full-Stack-Ecommerce-Website/internal/model"

	stripe "github.com/stripe/stripe-go/v79"
	"github.com/stripe/stripe-go/v79/checkout/session"
	"github.com/stripe/stripe-go/v79/customer"
	"github.com/stripe/stripe-go/v79/webhook"
)

// Gateway talks to Stripe: hosted checkout sessions out, signed webhook
// events in.
type Gateway struct {
	webhookSecret string
	baseURL       string
	currency      string
}

func NewGateway() (*Gateway, error) {
	key := os.Getenv("STRIPE_SECRET_KEY")
	if key == "" {
		return nil, errors.New("STRIPE_SECRET_KEY not set")
	}
	secret := os.Getenv("STRIPE_WEBHOOK_SECRET")
	if secret == "" {
		return nil, errors.New("STRIPE_WEBHOOK_SECRET not set")
	}
	baseURL := os.Getenv("BASE_URL")
	if baseURL == "" {
		baseURL = "http://localhost:8080"
	}
	currency := os.Getenv("CHECKOUT_CURRENCY")
	if currency == "" {
		currency = "usd"
	}

	stripe.Key = key
	return &Gateway{
		webhookSecret: secret,
		baseURL:       baseURL,
		currency:      currency,
	}, nil
}

// CreateCheckoutSession builds the hosted session from the basket
// payload. Line items are rebuilt here at round(price*100) minor units;
// client-supplied totals are never forwarded. The content-store product
// id rides along as provider product metadata so the webhook can map the
// line items back.
func (g *Gateway) CreateCheckoutSession(ctx context.Context, items []basket.Item, md model.CheckoutMetadata) (string, error) {
	customerID, err := g.findCustomerByEmail(ctx, md.CustomerEmail)
	if err != nil {
		return "", err
	}

	successURL := fmt.Sprintf("%s/success?session_id={CHECKOUT_SESSION_ID}&orderNumber=%s", g.baseURL, md.OrderNumber)
	cancelURL := g.baseURL + "/basket"

	params := &stripe.CheckoutSessionParams{
		Mode:                stripe.String(string(stripe.CheckoutSessionModePayment)),
		AllowPromotionCodes: stripe.Bool(true),
		SuccessURL:          stripe.String(successURL),
		CancelURL:           stripe.String(cancelURL),
	}
	params.Context = ctx
	if customerID != "" {
		params.Customer = stripe.String(customerID)
	} else {
		params.CustomerCreation = stripe.String(string(stripe.CheckoutSessionCustomerCreationAlways))
		params.CustomerEmail = stripe.String(md.CustomerEmail)
	}

	// metadata comes back verbatim on the webhook
	params.AddMetadata("order_number", md.OrderNumber)
	params.AddMetadata("customer_name", md.CustomerName)
	params.AddMetadata("customer_email", md.CustomerEmail)
	params.AddMetadata("buyer_id", md.BuyerID)

	for _, it := range items {
		productData := &stripe.CheckoutSessionLineItemPriceDataProductDataParams{
			Name:        stripe.String(it.Product.Name),
			Description: stripe.String("PRODUCT ID: " + it.Product.ID),
			Metadata:    map[string]string{"id": it.Product.ID},
		}
		if it.Product.ImageURL != "" {
			productData.Images = stripe.StringSlice([]string{it.Product.ImageURL})
		}
		params.LineItems = append(params.LineItems, &stripe.CheckoutSessionLineItemParams{
			Quantity: stripe.Int64(int64(it.Quantity)),
			PriceData: &stripe.CheckoutSessionLineItemPriceDataParams{
				Currency:    stripe.String(g.currency),
				UnitAmount:  stripe.Int64(int64(math.Round(it.Product.Price * 100))),
				ProductData: productData,
			},
		})
	}

	sess, err := session.New(params)
	if err != nil {
		return "", err
	}
	return sess.URL, nil
}

// VerifyEvent authenticates the raw webhook payload against the signing
// secret before any field is interpreted.
func (g *Gateway) VerifyEvent(payload []byte, signature string) (*model.WebhookEvent, error) {
	event, err := webhook.ConstructEvent(payload, signature, g.webhookSecret)
	if err != nil {
		return nil, err
	}

	out := &model.WebhookEvent{Type: string(event.Type)}
	if out.Type != model.EventCheckoutCompleted {
		return out, nil
	}

	var sess stripe.CheckoutSession
	if err := json.Unmarshal(event.Data.Raw, &sess); err != nil {
		return nil, fmt.Errorf("unmarshal checkout session: %w", err)
	}

	cs := &model.CheckoutSession{
		ID:          sess.ID,
		Currency:    string(sess.Currency),
		AmountTotal: sess.AmountTotal,
		Metadata: model.CheckoutMetadata{
			OrderNumber:   sess.Metadata["order_number"],
			CustomerName:  sess.Metadata["customer_name"],
			CustomerEmail: sess.Metadata["customer_email"],
			BuyerID:       sess.Metadata["buyer_id"],
		},
	}
	if sess.PaymentIntent != nil {
		cs.PaymentIntentID = sess.PaymentIntent.ID
	}
	if sess.TotalDetails != nil {
		cs.AmountDiscount = sess.TotalDetails.AmountDiscount
	}
	out.Session = cs
	return out, nil
}

// ListLineItems expands the per-item detail for a completed session. The
// session object alone does not carry product identity; the id planted
// in product metadata at session creation comes back here.
func (g *Gateway) ListLineItems(ctx context.Context, sessionID string) ([]model.SessionLineItem, error) {
	params := &stripe.CheckoutSessionListLineItemsParams{
		Session: stripe.String(sessionID),
	}
	params.Context = ctx
	params.AddExpand("data.price.product")

	var out []model.SessionLineItem
	iter := session.ListLineItems(params)
	for iter.Next() {
		li := iter.LineItem()
		item := model.SessionLineItem{
			Quantity: int(li.Quantity),
		}
		if li.Price != nil {
			item.UnitAmount = li.Price.UnitAmount
			if p := li.Price.Product; p != nil {
				item.ProductID = p.Metadata["id"]
				item.Name = p.Name
				if len(p.Images) > 0 {
					item.ImageURL = p.Images[0]
				}
			}
		}
		out = append(out, item)
	}
	if err := iter.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func (g *Gateway) findCustomerByEmail(ctx context.Context, email string) (string, error) {
	params := &stripe.CustomerListParams{
		Email: stripe.String(email),
	}
	params.Context = ctx
	params.Limit = stripe.Int64(1)

	iter := customer.List(params)
	if iter.Next() {
		return iter.Customer().ID, nil
	}
	if err := iter.Err(); err != nil {
		return "", err
	}
	return "", nil
}
