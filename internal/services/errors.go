package services

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrInvalidSignature rejects a webhook whose payload cannot be
	// authenticated. The sender is not trusted, so there is no retry.
	ErrInvalidSignature = errors.New("webhook signature verification failed")

	ErrEmptyBasket = errors.New("basket is empty")
)

// ValidationError rejects a checkout before any external call is made.
// Products lists every offending item, not just the first.
type ValidationError struct {
	Products []string
}

func (e *ValidationError) Error() string {
	return "item missing price: " + strings.Join(e.Products, ", ")
}

// ProviderError wraps a failed payment-provider call. On the checkout
// path it aborts with no side effects; on the webhook path it turns into
// a 5xx so the provider redelivers.
type ProviderError struct {
	Op  string
	Err error
}

func (e *ProviderError) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *ProviderError) Unwrap() error { return e.Err }

// NotificationError reports a failed confirmation send for an order that
// is already persisted. The order stays; only the email is retried.
type NotificationError struct {
	OrderNumber string
	Err         error
}

func (e *NotificationError) Error() string {
	return fmt.Sprintf("confirmation email for order %s failed: %v", e.OrderNumber, e.Err)
}

func (e *NotificationError) Unwrap() error { return e.Err }
