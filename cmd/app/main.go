package main

import (
	"context"
	"log"
	"os"

	"github.com/ReshephInayat/Full-Stack-Ecommerce-Website/external/resend"
	"github.com/ReshephInayat/Full-Stack-Ecommerce-Website/external/stripe"

	"github.com/ReshephInayat/Full-Stack-Ecommerce-Website/internal/cache"
	"github.com/ReshephInayat/Full-Stack-Ecommerce-Website/internal/db"
	"github.com/ReshephInayat/Full-Stack-Ecommerce-Website/internal/repository"
	"github.com/ReshephInayat/Full-Stack-Ecommerce-Website/internal/services"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
)

func main() {
	ctx := context.Background()

	// ======================
	// INFRA
	// ======================
	pool, err := db.Connect(ctx)
	if err != nil {
		log.Fatal(err)
	}
	defer pool.Close()

	redisClient, err := cache.Connect(ctx)
	if err != nil {
		log.Fatal(err)
	}
	defer redisClient.Close()

	// ======================
	// EXTERNALS
	// ======================
	gateway, err := stripe.NewGateway()
	if err != nil {
		log.Fatal(err)
	}

	mailFrom := os.Getenv("EMAIL_FROM")
	if mailFrom == "" {
		mailFrom = "Storefront<onboarding@resend.dev>"
	}
	mailer, err := resend.NewResendMailer(os.Getenv("RESEND_API_KEY"), mailFrom)
	if err != nil {
		log.Fatal(err)
	}

	// ======================
	// REPOSITORIES
	// ======================
	productRepo := repository.NewProductRepository(pool)
	saleRepo := repository.NewSaleRepository(pool)
	orderRepo := repository.NewOrderRepository(pool)
	basketRepo := repository.NewBasketRepository(redisClient)

	// ======================
	// SERVICES
	// ======================
	productSvc := services.NewProductService(productRepo)
	saleSvc := services.NewSaleService(saleRepo)
	basketSvc := services.NewBasketService(basketRepo)
	checkoutSvc := services.NewCheckoutService(gateway)
	paymentSvc := services.NewPaymentService(gateway, orderRepo, mailer)
	orderSvc := services.NewOrderService(orderRepo)

	// ======================
	// ECHO
	// ======================
	e := echo.New()
	e.Use(echomw.Logger())
	e.Use(echomw.Recover())

	api := e.Group("/store")

	// ======================
	// ROUTES (ONLY REGISTRATION)
	// ======================
	registerProductRoutes(api, productSvc)
	registerSaleRoutes(api, saleSvc)
	registerBasketRoutes(api, basketSvc)
	registerCheckoutRoutes(api, checkoutSvc)
	registerWebhookRoutes(api, paymentSvc)
	registerOrderRoutes(api, orderSvc)

	// ======================
	// SERVER
	// ======================
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	e.Logger.Fatal(e.Start(":" + port))
}
