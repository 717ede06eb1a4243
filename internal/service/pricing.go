package service

import (
	"math"

	"github.com/sajilorent/rental-service/internal/errs"
	"github.com/sajilorent/rental-service/internal/model"
)

// Pricing rules. All amounts are whole currency units (NPR); derived
// prices are rounded to the nearest unit.
const (
	VATRate            = 0.13
	StudentDiscountPct = 10.0

	sixMonthOff    = 0.08
	twelveMonthOff = 0.15

	MaxListingImages = 5
)

func ValidTenure(months int) bool {
	return months == 3 || months == 6 || months == 12
}

// TenurePrice returns the discounted monthly price for a tenure tier.
func TenurePrice(base float64, months int) (float64, error) {
	if base <= 0 {
		return 0, errs.ErrValidation
	}
	switch months {
	case 3:
		return base, nil
	case 6:
		return math.Round(base * (1 - sixMonthOff)), nil
	case 12:
		return math.Round(base * (1 - twelveMonthOff)), nil
	}
	return 0, errs.ErrValidation
}

// TenurePricing derives the per-tier monthly prices for a listing.
func TenurePricing(base float64, options []int) (model.PriceTiers, error) {
	tiers := make(model.PriceTiers, len(options))
	for _, months := range options {
		price, err := TenurePrice(base, months)
		if err != nil {
			return nil, err
		}
		tiers[months] = price
	}
	return tiers, nil
}

// VATTotal applies the fixed 13% VAT.
func VATTotal(amount float64) (vat, total float64, err error) {
	if amount <= 0 {
		return 0, 0, errs.ErrValidation
	}
	vat = math.Round(amount * VATRate)
	return vat, amount + vat, nil
}

// DiscountedSubtotal applies percentage discounts. Promo and student
// percentages sum additively; the combined rate is capped at 100%.
func DiscountedSubtotal(subtotal, promoPct float64, student bool) float64 {
	pct := promoPct
	if student {
		pct += StudentDiscountPct
	}
	if pct > 100 {
		pct = 100
	}
	return subtotal - subtotal*pct/100
}

// ApplyFixedDiscount subtracts a fixed amount with a floor of zero.
func ApplyFixedDiscount(subtotal, amount float64) float64 {
	if amount >= subtotal {
		return 0
	}
	return subtotal - amount
}

// InitialListingStatus implements the price-tier auto-approval rule:
// listings at or above the moderation threshold await admin review.
func InitialListingStatus(pricePerMonth float64) model.ListingStatus {
	if pricePerMonth >= model.ModerationThreshold {
		return model.ListingPending
	}
	return model.ListingActive
}
