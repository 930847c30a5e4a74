package main

import (
	"net/http"
	"strconv"

	"github.com/ReshephInayat/Full-Stack-Ecommerce-Website/internal/services"

	"github.com/labstack/echo/v4"
)

// registerProductRoutes mounts the catalog read API.
//
// Public:
//
//	GET /products                     -> list (pagination via ?limit=&offset=)
//	GET /products/:slug               -> get by slug
//	GET /categories/:slug/products    -> list by category
func registerProductRoutes(g *echo.Group, ps *services.ProductService) {
	g.GET("/products", func(c echo.Context) error {
		limit, _ := strconv.Atoi(c.QueryParam("limit"))
		offset, _ := strconv.Atoi(c.QueryParam("offset"))

		list, err := ps.List(c.Request().Context(), limit, offset)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, map[string]string{
				"error": err.Error(),
			})
		}
		return c.JSON(http.StatusOK, list)
	})

	g.GET("/products/:slug", func(c echo.Context) error {
		p, err := ps.GetBySlug(c.Request().Context(), c.Param("slug"))
		if err != nil {
			return c.JSON(http.StatusNotFound, map[string]string{
				"error": err.Error(),
			})
		}
		return c.JSON(http.StatusOK, p)
	})

	g.GET("/categories/:slug/products", func(c echo.Context) error {
		list, err := ps.ListByCategory(c.Request().Context(), c.Param("slug"))
		if err != nil {
			return c.JSON(http.StatusInternalServerError, map[string]string{
				"error": err.Error(),
			})
		}
		return c.JSON(http.StatusOK, list)
	})
}
