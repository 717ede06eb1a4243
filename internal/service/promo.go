package service

import (
	"context"

	"go.uber.org/zap"

	"github.com/sajilorent/rental-service/internal/errs"
	"github.com/sajilorent/rental-service/internal/model"
	"github.com/sajilorent/rental-service/internal/repository"
)

type Promo struct {
	log  *zap.Logger
	repo repository.PromoRepository
}

func NewPromoService(repo repository.PromoRepository, log *zap.Logger) *Promo {
	return &Promo{
		log:  log,
		repo: repo,
	}
}

func (s *Promo) Create(ctx context.Context, req model.PromoCodeRequest) (model.PromoCode, error) {
	if err := validatePromo(req); err != nil {
		return model.PromoCode{}, err
	}
	return s.repo.Create(ctx, model.PromoCode{
		Code:          req.Code,
		DiscountType:  req.DiscountType,
		DiscountValue: req.DiscountValue,
		ExpiresAt:     req.ExpiresAt,
		IsActive:      true,
	})
}

func (s *Promo) Update(ctx context.Context, id int64, req model.PromoCodeRequest) (model.PromoCode, error) {
	if err := validatePromo(req); err != nil {
		return model.PromoCode{}, err
	}
	return s.repo.Update(ctx, id, req)
}

func (s *Promo) SetActive(ctx context.Context, id int64, active bool) error {
	return s.repo.SetActive(ctx, id, active)
}

func (s *Promo) List(ctx context.Context) ([]model.PromoCode, error) {
	return s.repo.List(ctx)
}

func validatePromo(req model.PromoCodeRequest) error {
	if req.DiscountType == model.DiscountPercentage && req.DiscountValue > 100 {
		return errs.ErrValidation
	}
	return nil
}
