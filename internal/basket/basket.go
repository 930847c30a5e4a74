package basket

import (
	"github.com/ReshephInayat/Full-Stack-Ecommerce-Website/internal/model"
)

// Item is one basket entry: a product snapshot plus a quantity >= 1.
type Item struct {
	Product  model.ProductRef `json:"product"`
	Quantity int              `json:"quantity"`
}

// Basket holds the buyer's selected products in insertion order. There
// is never more than one entry per product id; adding an already-present
// product increments its quantity instead.
type Basket struct {
	Items []Item `json:"items"`
}

// New returns an empty basket.
func New() *Basket {
	return &Basket{Items: []Item{}}
}

// Add appends the product with quantity 1, or increments the existing
// entry. Always succeeds.
func (b *Basket) Add(p model.ProductRef) {
	for i := range b.Items {
		if b.Items[i].Product.ID == p.ID {
			b.Items[i].Quantity++
			return
		}
	}
	b.Items = append(b.Items, Item{Product: p, Quantity: 1})
}

// Remove decrements the entry for productID, deleting it when the
// quantity reaches zero. Removing an absent product is a no-op.
func (b *Basket) Remove(productID string) {
	for i := range b.Items {
		if b.Items[i].Product.ID != productID {
			continue
		}
		if b.Items[i].Quantity > 1 {
			b.Items[i].Quantity--
		} else {
			b.Items = append(b.Items[:i], b.Items[i+1:]...)
		}
		return
	}
}

// Clear empties the basket unconditionally.
func (b *Basket) Clear() {
	b.Items = []Item{}
}

// ItemCount returns the current quantity for a product, 0 if absent.
func (b *Basket) ItemCount(productID string) int {
	for i := range b.Items {
		if b.Items[i].Product.ID == productID {
			return b.Items[i].Quantity
		}
	}
	return 0
}

// GroupedItems returns the basket entries, one per distinct product, in
// insertion order. Grouping is already enforced by Add, so this is the
// canonical read used by the basket page and checkout.
func (b *Basket) GroupedItems() []Item {
	out := make([]Item, len(b.Items))
	copy(out, b.Items)
	return out
}

// TotalPrice sums price-at-add times quantity over all entries.
func (b *Basket) TotalPrice() float64 {
	var total float64
	for i := range b.Items {
		total += b.Items[i].Product.Price * float64(b.Items[i].Quantity)
	}
	return total
}
