package model

import "time"

type CartItem struct {
	ID         int64     `json:"-" db:"id"`
	UserID     int64     `json:"-" db:"user_id"`
	ListingID  int64     `json:"-" db:"listing_id"`
	ListingUid string    `json:"listingUid" db:"listing_uid"`
	Title      string    `json:"title" db:"title"`
	Quantity   int       `json:"quantity" db:"quantity"`
	Tenure     int       `json:"tenure" db:"tenure"`
	BasePrice  float64   `json:"basePrice" db:"price_per_month"`
	CreatedAt  time.Time `json:"-" db:"created_at"`

	// Derived, not persisted.
	MonthlyRent float64 `json:"monthlyRent" db:"-"`
	LineTotal   float64 `json:"lineTotal" db:"-"`
}

type CartItemRequest struct {
	ListingUid string `json:"productId" validate:"required"`
	Quantity   int    `json:"quantity" validate:"required,min=1"`
	Tenure     int    `json:"tenure" validate:"required"`
}

type CartTotals struct {
	Subtotal        float64 `json:"subtotal"`
	PromoCode       string  `json:"promoCode,omitempty"`
	PromoDiscount   float64 `json:"promoDiscount"`
	StudentDiscount float64 `json:"studentDiscount"`
	VAT             float64 `json:"vat"`
	Total           float64 `json:"total"`
}

type Cart struct {
	Items  []CartItem `json:"items"`
	Totals CartTotals `json:"totals"`
}

type Favorite struct {
	ID         int64     `json:"-" db:"id"`
	UserID     int64     `json:"-" db:"user_id"`
	ListingID  int64     `json:"-" db:"listing_id"`
	ListingUid string    `json:"listingUid" db:"listing_uid"`
	Title      string    `json:"title" db:"title"`
	BasePrice  float64   `json:"pricePerMonth" db:"price_per_month"`
	Status     string    `json:"status" db:"status"`
	CreatedAt  time.Time `json:"createdAt" db:"created_at"`
}
