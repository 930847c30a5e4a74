package main

import (
	"net/http"

	"github.com/ReshephInayat/Full-Stack-Ecommerce-Website/internal/middleware"
	"github.com/ReshephInayat/Full-Stack-Ecommerce-Website/internal/services"

	"github.com/labstack/echo/v4"
)

// registerOrderRoutes mounts the buyer's order history.
//
//	GET /orders -> the buyer's orders, newest first
func registerOrderRoutes(g *echo.Group, os *services.OrderService) {
	p := g.Group("/orders")
	p.Use(middleware.JWTMiddleware())

	p.GET("", func(c echo.Context) error {
		cl := middleware.GetClaims(c)
		if cl == nil {
			return c.JSON(http.StatusUnauthorized, map[string]string{
				"error": "unauthenticated",
			})
		}

		orders, err := os.ListForBuyer(c.Request().Context(), cl.BuyerID)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, map[string]string{
				"error": err.Error(),
			})
		}
		return c.JSON(http.StatusOK, orders)
	})
}
