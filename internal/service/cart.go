package service

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/sajilorent/rental-service/internal/errs"
	"github.com/sajilorent/rental-service/internal/model"
	"github.com/sajilorent/rental-service/internal/repository"
)

type Cart struct {
	log      *zap.Logger
	carts    repository.CartRepository
	listings repository.ListingRepository
	promos   repository.PromoRepository
	students repository.StudentRepository
}

func NewCartService(
	carts repository.CartRepository,
	listings repository.ListingRepository,
	promos repository.PromoRepository,
	students repository.StudentRepository,
	log *zap.Logger,
) *Cart {
	return &Cart{
		log:      log,
		carts:    carts,
		listings: listings,
		promos:   promos,
		students: students,
	}
}

func (s *Cart) Upsert(ctx context.Context, userID int64, req model.CartItemRequest) error {
	if !ValidTenure(req.Tenure) {
		return errs.ErrValidation
	}
	listing, err := s.listings.GetByUid(ctx, req.ListingUid)
	if err != nil {
		return err
	}
	if listing.Status != model.ListingActive {
		return errs.ErrUnavailable
	}
	return s.carts.Upsert(ctx, userID, listing.ID, req.Quantity, req.Tenure)
}

func (s *Cart) Remove(ctx context.Context, userID int64, listingUid string) error {
	return s.carts.Delete(ctx, userID, listingUid)
}

// Get prices the cart: tenure-tier line totals, then percentage
// discounts (promo + student, additive), then fixed promo amounts,
// then VAT on what remains.
func (s *Cart) Get(ctx context.Context, userID int64, promoCode string) (model.Cart, error) {
	items, err := s.carts.ListByUser(ctx, userID)
	if err != nil {
		return model.Cart{}, err
	}

	var subtotal float64
	for i := range items {
		monthly, err := TenurePrice(items[i].BasePrice, items[i].Tenure)
		if err != nil {
			return model.Cart{}, err
		}
		items[i].MonthlyRent = monthly
		items[i].LineTotal = monthly * float64(items[i].Quantity) * float64(items[i].Tenure)
		subtotal += items[i].LineTotal
	}

	totals := model.CartTotals{Subtotal: subtotal}

	student, err := s.students.IsVerified(ctx, userID)
	if err != nil {
		return model.Cart{}, err
	}

	var promoPct, promoFixed float64
	if promoCode != "" {
		promo, err := s.resolvePromo(ctx, promoCode)
		if err != nil {
			return model.Cart{}, err
		}
		totals.PromoCode = promo.Code
		if promo.DiscountType == model.DiscountPercentage {
			promoPct = promo.DiscountValue
		} else {
			promoFixed = promo.DiscountValue
		}
	}

	pctDiscounted := DiscountedSubtotal(subtotal, promoPct, student)
	if student {
		totals.StudentDiscount = subtotal * StudentDiscountPct / 100
	}
	discounted := ApplyFixedDiscount(pctDiscounted, promoFixed)
	totals.PromoDiscount = subtotal*promoPct/100 + (pctDiscounted - discounted)

	if discounted > 0 {
		vat, total, err := VATTotal(discounted)
		if err != nil {
			return model.Cart{}, err
		}
		totals.VAT = vat
		totals.Total = total
	}

	return model.Cart{Items: items, Totals: totals}, nil
}

// ApplyPromo validates the code against the cart and counts the use.
func (s *Cart) ApplyPromo(ctx context.Context, userID int64, promoCode string) (model.CartTotals, error) {
	cart, err := s.Get(ctx, userID, promoCode)
	if err != nil {
		return model.CartTotals{}, err
	}
	promo, err := s.promos.GetByCode(ctx, promoCode)
	if err != nil {
		return model.CartTotals{}, err
	}
	if err := s.promos.IncrementUsage(ctx, promo.ID); err != nil {
		s.log.Error("promo usage", zap.String("code", promoCode), zap.Error(err))
	}
	return cart.Totals, nil
}

func (s *Cart) resolvePromo(ctx context.Context, code string) (model.PromoCode, error) {
	promo, err := s.promos.GetByCode(ctx, code)
	if err != nil {
		return model.PromoCode{}, err
	}
	if !promo.IsActive {
		return model.PromoCode{}, errs.ErrValidation
	}
	if promo.ExpiresAt != nil && time.Now().After(*promo.ExpiresAt) {
		return model.PromoCode{}, errs.ErrValidation
	}
	return promo, nil
}
