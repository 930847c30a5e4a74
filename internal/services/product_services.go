package services

import (
	"context"

	"github.com/ReshephInayat/Full-Stack-Ecommerce-Website/internal/model"
	"github.com/ReshephInayat/Full-Stack-Ecommerce-Website/internal/repository"
)

type ProductService struct {
	Repo *repository.ProductRepository
}

func NewProductService(r *repository.ProductRepository) *ProductService {
	return &ProductService{Repo: r}
}

func (s *ProductService) List(ctx context.Context, limit, offset int) ([]model.Product, error) {
	return s.Repo.List(ctx, limit, offset)
}

func (s *ProductService) GetBySlug(ctx context.Context, slug string) (*model.Product, error) {
	return s.Repo.GetBySlug(ctx, slug)
}

func (s *ProductService) ListByCategory(ctx context.Context, category string) ([]model.Product, error) {
	return s.Repo.ListByCategory(ctx, category)
}
