package model

import "time"

// Product is a catalog entry owned by the content store.
type Product struct {
	ID          string     `json:"id"`
	Name        string     `json:"name"`
	Slug        string     `json:"slug"`
	Description string     `json:"description,omitempty"`
	Price       float64    `json:"price"`
	ImageURL    string     `json:"image,omitempty"`
	Stock       *int       `json:"stock,omitempty"` // nil = unconstrained
	Categories  []string   `json:"categories,omitempty"`
	CreatedAt   *time.Time `json:"created_at,omitempty"`
}

// ProductRef is the snapshot of a product captured into the basket at
// add time. Price here is the price at the moment the item was added,
// never re-fetched at checkout.
type ProductRef struct {
	ID       string  `json:"id"`
	Name     string  `json:"name"`
	Slug     string  `json:"slug,omitempty"`
	Price    float64 `json:"price"`
	ImageURL string  `json:"image,omitempty"`
	Stock    *int    `json:"stock,omitempty"`
}

// Ref returns the basket snapshot for a product.
func (p *Product) Ref() ProductRef {
	return ProductRef{
		ID:       p.ID,
		Name:     p.Name,
		Slug:     p.Slug,
		Price:    p.Price,
		ImageURL: p.ImageURL,
		Stock:    p.Stock,
	}
}
