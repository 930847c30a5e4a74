package services

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ReshephInayat/Full-Stack-Ecommerce-Website/internal/basket"
	"github.com/ReshephInayat/Full-Stack-Ecommerce-Website/internal/model"
)

type fakeWebhookGateway struct {
	verifyErr error
	event     *model.WebhookEvent

	lineItems []model.SessionLineItem
	listErr   error
	listCalls int
}

func (f *fakeWebhookGateway) CreateCheckoutSession(context.Context, []basket.Item, model.CheckoutMetadata) (string, error) {
	panic("not used")
}

func (f *fakeWebhookGateway) VerifyEvent([]byte, string) (*model.WebhookEvent, error) {
	if f.verifyErr != nil {
		return nil, f.verifyErr
	}
	return f.event, nil
}

func (f *fakeWebhookGateway) ListLineItems(context.Context, string) ([]model.SessionLineItem, error) {
	f.listCalls++
	if f.listErr != nil {
		return nil, f.listErr
	}
	return f.lineItems, nil
}

type fakeOrderStore struct {
	bySession map[string]*model.Order
	nextID    int64
}

func newFakeOrderStore() *fakeOrderStore {
	return &fakeOrderStore{bySession: map[string]*model.Order{}}
}

func (f *fakeOrderStore) CreateOrder(_ context.Context, o *model.Order) (bool, error) {
	if _, ok := f.bySession[o.CheckoutSessionID]; ok {
		return false, nil
	}
	f.nextID++
	o.OrderID = f.nextID
	stored := *o
	f.bySession[o.CheckoutSessionID] = &stored
	return true, nil
}

func (f *fakeOrderStore) GetByCheckoutSessionID(_ context.Context, sessionID string) (*model.Order, error) {
	o, ok := f.bySession[sessionID]
	if !ok {
		return nil, nil
	}
	cp := *o
	return &cp, nil
}

func (f *fakeOrderStore) MarkConfirmationSent(_ context.Context, orderID int64) error {
	for _, o := range f.bySession {
		if o.OrderID == orderID {
			o.ConfirmationSent = true
		}
	}
	return nil
}

type fakeMailer struct {
	sendErr error
	sent    []string
}

func (f *fakeMailer) SendOrderConfirmation(_ context.Context, order *model.Order) error {
	if f.sendErr != nil {
		return f.sendErr
	}
	f.sent = append(f.sent, order.OrderNumber)
	return nil
}

func completedEvent() *model.WebhookEvent {
	return &model.WebhookEvent{
		Type: model.EventCheckoutCompleted,
		Session: &model.CheckoutSession{
			ID:              "cs_123",
			PaymentIntentID: "pi_123",
			Currency:        "usd",
			AmountTotal:     2500,
			AmountDiscount:  0,
			Metadata: model.CheckoutMetadata{
				OrderNumber:   "order-1",
				CustomerName:  "Ada",
				CustomerEmail: "ada@example.com",
				BuyerID:       "buyer-1",
			},
		},
	}
}

func sessionLineItems() []model.SessionLineItem {
	return []model.SessionLineItem{
		{ProductID: "a", Name: "Sneakers", Quantity: 2, UnitAmount: 1000},
		{ProductID: "b", Name: "Socks", Quantity: 1, UnitAmount: 500},
	}
}

func TestHandleWebhookRejectsBadSignature(t *testing.T) {
	gw := &fakeWebhookGateway{verifyErr: errors.New("bad signature")}
	store := newFakeOrderStore()
	mailer := &fakeMailer{}
	svc := NewPaymentService(gw, store, mailer)

	err := svc.HandleWebhook(context.Background(), []byte("{}"), "sig")
	assert.ErrorIs(t, err, ErrInvalidSignature)
	assert.Empty(t, store.bySession)
	assert.Empty(t, mailer.sent)
}

func TestHandleWebhookIgnoresOtherEventKinds(t *testing.T) {
	gw := &fakeWebhookGateway{event: &model.WebhookEvent{Type: "payment_intent.created"}}
	store := newFakeOrderStore()
	mailer := &fakeMailer{}
	svc := NewPaymentService(gw, store, mailer)

	require.NoError(t, svc.HandleWebhook(context.Background(), []byte("{}"), "sig"))
	assert.Empty(t, store.bySession)
	assert.Empty(t, mailer.sent)
	assert.Zero(t, gw.listCalls)
}

func TestHandleWebhookFinalizesOrder(t *testing.T) {
	gw := &fakeWebhookGateway{event: completedEvent(), lineItems: sessionLineItems()}
	store := newFakeOrderStore()
	mailer := &fakeMailer{}
	svc := NewPaymentService(gw, store, mailer)

	require.NoError(t, svc.HandleWebhook(context.Background(), []byte("{}"), "sig"))

	order := store.bySession["cs_123"]
	require.NotNil(t, order)
	assert.Equal(t, "order-1", order.OrderNumber)
	assert.Equal(t, "pi_123", order.PaymentIntentID)
	assert.Equal(t, model.OrderStatusPaid, order.Status)
	assert.InDelta(t, 25.00, order.TotalPrice, 1e-9)
	assert.Zero(t, order.AmountDiscount)

	require.Len(t, order.LineItems, 2)
	assert.Equal(t, "a", order.LineItems[0].ProductID)
	assert.Equal(t, 2, order.LineItems[0].Quantity)
	assert.InDelta(t, 10.00, order.LineItems[0].UnitPrice, 1e-9)
	assert.Equal(t, "b", order.LineItems[1].ProductID)
	assert.Equal(t, 1, order.LineItems[1].Quantity)
	assert.InDelta(t, 5.00, order.LineItems[1].UnitPrice, 1e-9)

	assert.Equal(t, []string{"order-1"}, mailer.sent)
	assert.True(t, order.ConfirmationSent)
}

func TestHandleWebhookDuplicateDeliveryIsNoOp(t *testing.T) {
	gw := &fakeWebhookGateway{event: completedEvent(), lineItems: sessionLineItems()}
	store := newFakeOrderStore()
	mailer := &fakeMailer{}
	svc := NewPaymentService(gw, store, mailer)

	require.NoError(t, svc.HandleWebhook(context.Background(), []byte("{}"), "sig"))
	require.NoError(t, svc.HandleWebhook(context.Background(), []byte("{}"), "sig"))

	assert.Len(t, store.bySession, 1)
	// confirmation sent exactly once, line items expanded exactly once
	assert.Equal(t, []string{"order-1"}, mailer.sent)
	assert.Equal(t, 1, gw.listCalls)
}

func TestHandleWebhookRetriesOnlyEmailAfterSendFailure(t *testing.T) {
	gw := &fakeWebhookGateway{event: completedEvent(), lineItems: sessionLineItems()}
	store := newFakeOrderStore()
	mailer := &fakeMailer{sendErr: errors.New("smtp down")}
	svc := NewPaymentService(gw, store, mailer)

	err := svc.HandleWebhook(context.Background(), []byte("{}"), "sig")
	var ne *NotificationError
	require.ErrorAs(t, err, &ne)

	// order persisted despite the failed send
	order := store.bySession["cs_123"]
	require.NotNil(t, order)
	assert.False(t, order.ConfirmationSent)

	// provider redelivers, mail transport recovered: only the email runs
	mailer.sendErr = nil
	require.NoError(t, svc.HandleWebhook(context.Background(), []byte("{}"), "sig"))
	assert.Len(t, store.bySession, 1)
	assert.Equal(t, 1, gw.listCalls)
	assert.Equal(t, []string{"order-1"}, mailer.sent)
	assert.True(t, store.bySession["cs_123"].ConfirmationSent)
}

func TestHandleWebhookSurfacesLineItemFailure(t *testing.T) {
	gw := &fakeWebhookGateway{event: completedEvent(), listErr: errors.New("provider down")}
	store := newFakeOrderStore()
	mailer := &fakeMailer{}
	svc := NewPaymentService(gw, store, mailer)

	err := svc.HandleWebhook(context.Background(), []byte("{}"), "sig")
	var pe *ProviderError
	require.ErrorAs(t, err, &pe)
	assert.Empty(t, store.bySession)
	assert.Empty(t, mailer.sent)
}
