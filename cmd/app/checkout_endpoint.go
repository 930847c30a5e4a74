package main

import (
	"errors"
	"net/http"

	"github.com/ReshephInayat/Full-Stack-Ecommerce-Website/internal/basket"
	"github.com/ReshephInayat/Full-Stack-Ecommerce-Website/internal/middleware"
	"github.com/ReshephInayat/Full-Stack-Ecommerce-Website/internal/model"
	"github.com/ReshephInayat/Full-Stack-Ecommerce-Website/internal/services"

	"github.com/labstack/echo/v4"
)

type checkoutRequest struct {
	Items    []basket.Item          `json:"items"`
	Metadata model.CheckoutMetadata `json:"metadata"`
}

// registerCheckoutRoutes mounts checkout initiation.
//
//	POST /checkout -> {"url": "..."} redirect to the hosted payment page
func registerCheckoutRoutes(g *echo.Group, cs *services.CheckoutService) {
	ck := g.Group("/checkout")
	ck.Use(middleware.JWTMiddleware())

	ck.POST("", func(c echo.Context) error {
		cl := middleware.GetClaims(c)
		if cl == nil {
			return c.JSON(http.StatusUnauthorized, map[string]string{"error": "unauthenticated"})
		}

		var req checkoutRequest
		if err := c.Bind(&req); err != nil {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid payload"})
		}

		// buyer identity always comes from the verified token
		req.Metadata.BuyerID = cl.BuyerID
		if req.Metadata.CustomerEmail == "" {
			req.Metadata.CustomerEmail = cl.Email
		}
		if req.Metadata.CustomerName == "" {
			req.Metadata.CustomerName = cl.Name
		}

		url, err := cs.CreateSession(c.Request().Context(), req.Items, req.Metadata)
		if err != nil {
			var ve *services.ValidationError
			var pe *services.ProviderError
			switch {
			case errors.As(err, &ve), errors.Is(err, services.ErrEmptyBasket):
				return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
			case errors.As(err, &pe):
				return c.JSON(http.StatusBadGateway, map[string]string{"error": err.Error()})
			default:
				return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
			}
		}

		return c.JSON(http.StatusOK, map[string]string{"url": url})
	})
}
