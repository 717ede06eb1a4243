package service

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/sajilorent/rental-service/internal/errs"
	"github.com/sajilorent/rental-service/internal/model"
)

func TestTenurePrice(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name    string
		base    float64
		months  int
		want    float64
		wantErr bool
	}{
		{name: "3 months is base", base: 5000, months: 3, want: 5000},
		{name: "6 months off", base: 5000, months: 6, want: 4600},
		{name: "12 months off", base: 5000, months: 12, want: 4250},
		{name: "rounding", base: 1111, months: 6, want: 1022},
		{name: "invalid tenure", base: 5000, months: 4, wantErr: true},
		{name: "zero base", base: 0, months: 3, wantErr: true},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got, err := TenurePrice(tt.base, tt.months)
			if tt.wantErr {
				require.ErrorIs(t, err, errs.ErrValidation)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tt.want, got)
		})
	}
}

func TestTenurePricing(t *testing.T) {
	t.Parallel()
	tiers, err := TenurePricing(10000, []int{3, 6, 12})
	require.NoError(t, err)
	require.Equal(t, model.PriceTiers{3: 10000, 6: 9200, 12: 8500}, tiers)

	_, err = TenurePricing(10000, []int{3, 5})
	require.ErrorIs(t, err, errs.ErrValidation)
}

func TestVATTotal(t *testing.T) {
	t.Parallel()
	vat, total, err := VATTotal(10000)
	require.NoError(t, err)
	require.Equal(t, 1300.0, vat)
	require.Equal(t, 11300.0, total)

	_, _, err = VATTotal(0)
	require.ErrorIs(t, err, errs.ErrValidation)
}

func TestDiscountedSubtotal(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name     string
		subtotal float64
		promoPct float64
		student  bool
		want     float64
	}{
		{name: "no discounts", subtotal: 10000, want: 10000},
		{name: "promo only", subtotal: 10000, promoPct: 15, want: 8500},
		{name: "student only", subtotal: 10000, student: true, want: 9000},
		{name: "promo and student stack", subtotal: 10000, promoPct: 15, student: true, want: 7500},
		{name: "combined rate capped at 100", subtotal: 10000, promoPct: 95, student: true, want: 0},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			require.Equal(t, tt.want, DiscountedSubtotal(tt.subtotal, tt.promoPct, tt.student))
		})
	}
}

func TestApplyFixedDiscount(t *testing.T) {
	t.Parallel()
	require.Equal(t, 4500.0, ApplyFixedDiscount(5000, 500))
	require.Equal(t, 0.0, ApplyFixedDiscount(500, 500))
	require.Equal(t, 0.0, ApplyFixedDiscount(300, 500))
}

func TestInitialListingStatus(t *testing.T) {
	t.Parallel()
	require.Equal(t, model.ListingActive, InitialListingStatus(9999))
	require.Equal(t, model.ListingPending, InitialListingStatus(10000))
	require.Equal(t, model.ListingPending, InitialListingStatus(15000))
}

func TestValidTenure(t *testing.T) {
	t.Parallel()
	for _, months := range []int{3, 6, 12} {
		require.True(t, ValidTenure(months))
	}
	for _, months := range []int{0, 1, 4, 24, -3} {
		require.False(t, ValidTenure(months))
	}
}
