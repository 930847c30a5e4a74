package main

import (
	"net/http"

	"github.com/ReshephInayat/Full-Stack-Ecommerce-Website/internal/services"

	"github.com/labstack/echo/v4"
)

// registerSaleRoutes mounts the sale-banner lookup.
//
//	GET /sales/:couponCode -> active campaign for the code, 404 otherwise
func registerSaleRoutes(g *echo.Group, ss *services.SaleService) {
	g.GET("/sales/:couponCode", func(c echo.Context) error {
		sale, err := ss.ActiveByCoupon(c.Request().Context(), c.Param("couponCode"))
		if err != nil {
			return c.JSON(http.StatusInternalServerError, map[string]string{
				"error": err.Error(),
			})
		}
		if sale == nil {
			return c.JSON(http.StatusNotFound, map[string]string{
				"error": "no active sale for this coupon",
			})
		}
		return c.JSON(http.StatusOK, sale)
	})
}
