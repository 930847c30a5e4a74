package services

import (
	"context"

	"github.com/ReshephInayat/Full-Stack-Ecommerce-Website/internal/model"
	"github.com/ReshephInayat/Full-Stack-Ecommerce-Website/internal/repository"
)

type OrderService struct {
	Repo *repository.OrderRepository
}

func NewOrderService(r *repository.OrderRepository) *OrderService {
	return &OrderService{Repo: r}
}

// ListForBuyer returns the buyer's order history, newest first.
func (s *OrderService) ListForBuyer(ctx context.Context, buyerID string) ([]model.Order, error) {
	return s.Repo.ListByBuyer(ctx, buyerID)
}
