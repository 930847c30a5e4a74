package services

import (
	"context"

	"github.com/ReshephInayat/Full-Stack-Ecommerce-Website/internal/model"
)

type EmailSender interface {
	SendOrderConfirmation(ctx context.Context, order *model.Order) error
}
