package services

import (
	"context"

	"github.com/ReshephInayat/Full-Stack-Ecommerce-Website/internal/model"
	"github.com/ReshephInayat/Full-Stack-Ecommerce-Website/internal/repository"
)

type SaleService struct {
	Repo *repository.SaleRepository
}

func NewSaleService(r *repository.SaleRepository) *SaleService {
	return &SaleService{Repo: r}
}

// ActiveByCoupon returns the running campaign for a coupon code, nil
// when there is none.
func (s *SaleService) ActiveByCoupon(ctx context.Context, couponCode string) (*model.Sale, error) {
	return s.Repo.GetActiveByCoupon(ctx, couponCode)
}
