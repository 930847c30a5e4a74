package model

import "time"

// Sale is a promotional campaign (banner + coupon code). The discount
// itself is applied by the payment provider via promotion codes; this
// record only drives the storefront banner.
type Sale struct {
	SaleID         int64     `json:"saleid"`
	Title          string    `json:"title"`
	Description    string    `json:"description,omitempty"`
	CouponCode     string    `json:"couponcode"`
	DiscountAmount float64   `json:"discountamount"`
	ValidFrom      time.Time `json:"validfrom"`
	ValidUntil     time.Time `json:"validuntil"`
	IsActive       bool      `json:"isactive"`
}
