package repository

import (
	"context"
	"database/sql"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/jmoiron/sqlx"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/sajilorent/rental-service/internal/errs"
	"github.com/sajilorent/rental-service/internal/model"
)

type PromoRepository interface {
	Create(ctx context.Context, promo model.PromoCode) (model.PromoCode, error)
	Update(ctx context.Context, id int64, req model.PromoCodeRequest) (model.PromoCode, error)
	SetActive(ctx context.Context, id int64, active bool) error
	List(ctx context.Context) ([]model.PromoCode, error)
	GetByCode(ctx context.Context, code string) (model.PromoCode, error)
	IncrementUsage(ctx context.Context, id int64) error
}

type promoRepository struct {
	db  *sqlx.DB
	log *zap.Logger
}

func NewPromoRepository(db *sqlx.DB, log *zap.Logger) *promoRepository {
	return &promoRepository{
		db:  db,
		log: log.Named("repo"),
	}
}

func (r *promoRepository) Create(ctx context.Context, promo model.PromoCode) (model.PromoCode, error) {
	q, args, err := qb.Insert(promoTableName).
		Columns("code", "discount_type", "discount_value", "expires_at", "is_active").
		Values(promo.Code, promo.DiscountType, promo.DiscountValue, promo.ExpiresAt, promo.IsActive).
		Suffix("returning *").
		ToSql()
	if err != nil {
		return model.PromoCode{}, err
	}
	var created model.PromoCode
	if err := r.db.GetContext(ctx, &created, q, args...); err != nil {
		if isUniqueViolation(err) {
			return model.PromoCode{}, errs.ErrConflict
		}
		return model.PromoCode{}, err
	}
	return created, nil
}

func (r *promoRepository) Update(ctx context.Context, id int64, req model.PromoCodeRequest) (model.PromoCode, error) {
	q, args, err := qb.Update(promoTableName).
		Set("code", req.Code).
		Set("discount_type", req.DiscountType).
		Set("discount_value", req.DiscountValue).
		Set("expires_at", req.ExpiresAt).
		Where(sq.Eq{"id": id}).
		Suffix("returning *").
		ToSql()
	if err != nil {
		return model.PromoCode{}, err
	}
	var promo model.PromoCode
	if err := r.db.GetContext(ctx, &promo, q, args...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.PromoCode{}, errs.ErrNotFound
		}
		if isUniqueViolation(err) {
			return model.PromoCode{}, errs.ErrConflict
		}
		return model.PromoCode{}, err
	}
	return promo, nil
}

func (r *promoRepository) SetActive(ctx context.Context, id int64, active bool) error {
	q, args, err := qb.Update(promoTableName).
		Set("is_active", active).
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return err
	}
	res, err := r.db.ExecContext(ctx, q, args...)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return errs.ErrNotFound
	}
	return nil
}

func (r *promoRepository) List(ctx context.Context) ([]model.PromoCode, error) {
	q, args, err := qb.Select("*").
		From(promoTableName).
		OrderBy("created_at desc").
		ToSql()
	if err != nil {
		return nil, err
	}
	var items []model.PromoCode
	if err := r.db.SelectContext(ctx, &items, q, args...); err != nil {
		return nil, err
	}
	return items, nil
}

func (r *promoRepository) GetByCode(ctx context.Context, code string) (model.PromoCode, error) {
	q, args, err := qb.Select("*").
		From(promoTableName).
		Where(sq.Eq{"code": code}).
		Limit(1).
		ToSql()
	if err != nil {
		return model.PromoCode{}, err
	}
	var promo model.PromoCode
	if err := r.db.GetContext(ctx, &promo, q, args...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.PromoCode{}, errs.ErrNotFound
		}
		return model.PromoCode{}, err
	}
	return promo, nil
}

func (r *promoRepository) IncrementUsage(ctx context.Context, id int64) error {
	q := fmt.Sprintf(`update %s set usage_count = usage_count + 1 where id = $1`, promoTableName)
	_, err := r.db.ExecContext(ctx, q, id)
	return err
}
