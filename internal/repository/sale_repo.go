package repository

import (
	"context"
	"errors"

	"github.com/ReshephInayat/Full-Stack-Ecommerce-Website/internal/model"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type SaleRepository struct {
	DB *pgxpool.Pool
}

func NewSaleRepository(db *pgxpool.Pool) *SaleRepository {
	return &SaleRepository{DB: db}
}

// GetActiveByCoupon returns the currently running sale for a coupon
// code, or nil when no campaign matches.
func (r *SaleRepository) GetActiveByCoupon(ctx context.Context, couponCode string) (*model.Sale, error) {
	query := `
		SELECT saleid, title, description, couponcode, discountamount,
		       validfrom, validuntil, isactive
		FROM sales
		WHERE couponcode=$1 AND isactive AND validfrom <= now() AND validuntil >= now()
		ORDER BY validfrom DESC LIMIT 1
	`
	var s model.Sale
	var description *string
	err := r.DB.QueryRow(ctx, query, couponCode).Scan(
		&s.SaleID, &s.Title, &description, &s.CouponCode, &s.DiscountAmount,
		&s.ValidFrom, &s.ValidUntil, &s.IsActive,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	if description != nil {
		s.Description = *description
	}
	return &s, nil
}
