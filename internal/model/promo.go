package model

import "time"

type DiscountType string

const (
	DiscountPercentage DiscountType = "percentage"
	DiscountFixed      DiscountType = "fixed"
)

type PromoCode struct {
	ID            int64        `json:"id" db:"id"`
	Code          string       `json:"code" db:"code"`
	DiscountType  DiscountType `json:"type" db:"discount_type"`
	DiscountValue float64      `json:"discount" db:"discount_value"`
	ExpiresAt     *time.Time   `json:"expiresAt,omitempty" db:"expires_at"`
	IsActive      bool         `json:"isActive" db:"is_active"`
	UsageCount    int64        `json:"usageCount" db:"usage_count"`
	CreatedAt     time.Time    `json:"createdAt" db:"created_at"`
}

type PromoCodeRequest struct {
	Code          string       `json:"code" validate:"required"`
	DiscountType  DiscountType `json:"type" validate:"required,oneof=percentage fixed"`
	DiscountValue float64      `json:"discount" validate:"required,gt=0"`
	ExpiresAt     *time.Time   `json:"expiresAt"`
}
