package main

import (
	"errors"
	"io"
	"net/http"

	"github.com/ReshephInayat/Full-Stack-Ecommerce-Website/internal/services"

	"github.com/labstack/echo/v4"
)

// registerWebhookRoutes mounts the payment-provider callback.
// No auth: the raw body is authenticated by its signature instead.
//
//	POST /webhook -> {"received": true} on success or no-op,
//	                 400 on signature failure (no retry),
//	                 500 on processing failure (provider redelivers)
func registerWebhookRoutes(g *echo.Group, ps *services.PaymentService) {
	g.POST("/webhook", func(c echo.Context) error {
		payload, err := io.ReadAll(c.Request().Body)
		if err != nil {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": "unreadable body"})
		}
		signature := c.Request().Header.Get("Stripe-Signature")

		if err := ps.HandleWebhook(c.Request().Context(), payload, signature); err != nil {
			if errors.Is(err, services.ErrInvalidSignature) {
				return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
			}
			return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
		}

		return c.JSON(http.StatusOK, map[string]bool{"received": true})
	})
}
