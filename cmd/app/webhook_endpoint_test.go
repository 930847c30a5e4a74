package main

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ReshephInayat/Full-Stack-Ecommerce-Website/internal/basket"
	"github.com/ReshephInayat/Full-Stack-Ecommerce-Website/internal/model"
	"github.com/ReshephInayat/Full-Stack-Ecommerce-Website/internal/services"
)

type stubGateway struct {
	verifyErr error
	event     *model.WebhookEvent
	items     []model.SessionLineItem
	listErr   error
}

func (s *stubGateway) CreateCheckoutSession(context.Context, []basket.Item, model.CheckoutMetadata) (string, error) {
	panic("not used")
}

func (s *stubGateway) VerifyEvent([]byte, string) (*model.WebhookEvent, error) {
	if s.verifyErr != nil {
		return nil, s.verifyErr
	}
	return s.event, nil
}

func (s *stubGateway) ListLineItems(context.Context, string) ([]model.SessionLineItem, error) {
	return s.items, s.listErr
}

type stubOrderStore struct {
	orders map[string]*model.Order
}

func (s *stubOrderStore) CreateOrder(_ context.Context, o *model.Order) (bool, error) {
	if _, ok := s.orders[o.CheckoutSessionID]; ok {
		return false, nil
	}
	o.OrderID = int64(len(s.orders) + 1)
	s.orders[o.CheckoutSessionID] = o
	return true, nil
}

func (s *stubOrderStore) GetByCheckoutSessionID(_ context.Context, id string) (*model.Order, error) {
	return s.orders[id], nil
}

func (s *stubOrderStore) MarkConfirmationSent(context.Context, int64) error { return nil }

type stubMailer struct{ err error }

func (s *stubMailer) SendOrderConfirmation(context.Context, *model.Order) error { return s.err }

func postWebhook(t *testing.T, svc *services.PaymentService) *httptest.ResponseRecorder {
	t.Helper()
	e := echo.New()
	registerWebhookRoutes(e.Group("/store"), svc)

	req := httptest.NewRequest(http.MethodPost, "/store/webhook", strings.NewReader(`{"type":"x"}`))
	req.Header.Set("Stripe-Signature", "t=1,v1=abc")
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func TestWebhookEndpointBadSignatureIs400(t *testing.T) {
	svc := services.NewPaymentService(
		&stubGateway{verifyErr: errors.New("nope")},
		&stubOrderStore{orders: map[string]*model.Order{}},
		&stubMailer{},
	)
	rec := postWebhook(t, svc)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "error")
}

func TestWebhookEndpointProcessingFailureIs500(t *testing.T) {
	svc := services.NewPaymentService(
		&stubGateway{
			event:   &model.WebhookEvent{Type: model.EventCheckoutCompleted, Session: &model.CheckoutSession{ID: "cs_1"}},
			listErr: errors.New("provider down"),
		},
		&stubOrderStore{orders: map[string]*model.Order{}},
		&stubMailer{},
	)
	rec := postWebhook(t, svc)
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}

func TestWebhookEndpointAcknowledgesCompletion(t *testing.T) {
	store := &stubOrderStore{orders: map[string]*model.Order{}}
	svc := services.NewPaymentService(
		&stubGateway{
			event: &model.WebhookEvent{
				Type: model.EventCheckoutCompleted,
				Session: &model.CheckoutSession{
					ID:          "cs_1",
					Currency:    "usd",
					AmountTotal: 2500,
					Metadata:    model.CheckoutMetadata{OrderNumber: "order-1"},
				},
			},
			items: []model.SessionLineItem{{ProductID: "a", Name: "Sneakers", Quantity: 2, UnitAmount: 1000}},
		},
		store,
		&stubMailer{},
	)
	rec := postWebhook(t, svc)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"received": true}`, rec.Body.String())
	assert.Len(t, store.orders, 1)
}

func TestWebhookEndpointIgnoresUnknownEvents(t *testing.T) {
	store := &stubOrderStore{orders: map[string]*model.Order{}}
	svc := services.NewPaymentService(
		&stubGateway{event: &model.WebhookEvent{Type: "invoice.paid"}},
		store,
		&stubMailer{},
	)
	rec := postWebhook(t, svc)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"received": true}`, rec.Body.String())
	assert.Empty(t, store.orders)
}
