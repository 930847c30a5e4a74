package main

import (
	"net/http"

	"github.com/ReshephInayat/Full-Stack-Ecommerce-Website/internal/basket"
	"github.com/ReshephInayat/Full-Stack-Ecommerce-Website/internal/middleware"
	"github.com/ReshephInayat/Full-Stack-Ecommerce-Website/internal/model"
	"github.com/ReshephInayat/Full-Stack-Ecommerce-Website/internal/services"

	"github.com/labstack/echo/v4"
)

type addBasketItemRequest struct {
	Product model.ProductRef `json:"product"`
}

type basketResponse struct {
	Items []basket.Item `json:"items"`
	Total float64       `json:"total"`
}

func toBasketResponse(b *basket.Basket) basketResponse {
	return basketResponse{
		Items: b.GroupedItems(),
		Total: b.TotalPrice(),
	}
}

// registerBasketRoutes mounts the basket API. All routes require a
// buyer token; the basket is keyed by the buyer account id.
func registerBasketRoutes(g *echo.Group, bs *services.BasketService) {
	b := g.Group("/basket")
	b.Use(middleware.JWTMiddleware())

	b.GET("", func(c echo.Context) error {
		cl := middleware.GetClaims(c)
		if cl == nil {
			return c.JSON(http.StatusUnauthorized, map[string]string{"error": "unauthenticated"})
		}

		bk, err := bs.Get(c.Request().Context(), cl.BuyerID)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
		}
		return c.JSON(http.StatusOK, toBasketResponse(bk))
	})

	b.POST("/items", func(c echo.Context) error {
		cl := middleware.GetClaims(c)
		if cl == nil {
			return c.JSON(http.StatusUnauthorized, map[string]string{"error": "unauthenticated"})
		}

		var req addBasketItemRequest
		if err := c.Bind(&req); err != nil {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid payload"})
		}
		if req.Product.ID == "" {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": "product id is required"})
		}

		bk, err := bs.AddItem(c.Request().Context(), cl.BuyerID, req.Product)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
		}
		return c.JSON(http.StatusOK, toBasketResponse(bk))
	})

	b.DELETE("/items/:productId", func(c echo.Context) error {
		cl := middleware.GetClaims(c)
		if cl == nil {
			return c.JSON(http.StatusUnauthorized, map[string]string{"error": "unauthenticated"})
		}

		bk, err := bs.RemoveItem(c.Request().Context(), cl.BuyerID, c.Param("productId"))
		if err != nil {
			return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
		}
		return c.JSON(http.StatusOK, toBasketResponse(bk))
	})

	b.DELETE("", func(c echo.Context) error {
		cl := middleware.GetClaims(c)
		if cl == nil {
			return c.JSON(http.StatusUnauthorized, map[string]string{"error": "unauthenticated"})
		}

		if err := bs.Clear(c.Request().Context(), cl.BuyerID); err != nil {
			return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
		}
		return c.JSON(http.StatusOK, map[string]string{"status": "cleared"})
	})
}
