package repository

import (
	"context"
	"errors"

	"github.com/ReshephInayat/Full-Stack-Ecommerce-Website/internal/model"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type ProductRepository struct {
	DB *pgxpool.Pool
}

func NewProductRepository(db *pgxpool.Pool) *ProductRepository {
	return &ProductRepository{DB: db}
}

const productColumns = `productid, name, slug, description, price, imageurl, stock, categories, created_at`

// List returns catalog products ordered by name (pagination via limit/offset).
func (r *ProductRepository) List(ctx context.Context, limit, offset int) ([]model.Product, error) {
	if limit <= 0 || limit > 100 {
		limit = 50
	}
	if offset < 0 {
		offset = 0
	}
	query := `SELECT ` + productColumns + ` FROM products ORDER BY name LIMIT $1 OFFSET $2`
	rows, err := r.DB.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanProducts(rows)
}

// GetBySlug returns a single product or an error when absent.
func (r *ProductRepository) GetBySlug(ctx context.Context, slug string) (*model.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products WHERE slug=$1`
	p, err := scanProduct(r.DB.QueryRow(ctx, query, slug))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, errors.New("product not found")
	}
	return p, err
}

// ListByCategory returns products carrying the given category slug.
func (r *ProductRepository) ListByCategory(ctx context.Context, category string) ([]model.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products WHERE $1 = ANY(categories) ORDER BY name`
	rows, err := r.DB.Query(ctx, query, category)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanProducts(rows)
}

func scanProduct(row pgx.Row) (*model.Product, error) {
	var p model.Product
	var description, image *string
	if err := row.Scan(&p.ID, &p.Name, &p.Slug, &description, &p.Price, &image, &p.Stock, &p.Categories, &p.CreatedAt); err != nil {
		return nil, err
	}
	if description != nil {
		p.Description = *description
	}
	if image != nil {
		p.ImageURL = *image
	}
	return &p, nil
}

func scanProducts(rows pgx.Rows) ([]model.Product, error) {
	out := []model.Product{}
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, *p)
	}
	return out, rows.Err()
}
