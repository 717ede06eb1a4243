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

type SellerRepository interface {
	GetStats(ctx context.Context, sellerID int64) (model.Seller, error)
	IncrementListings(ctx context.Context, sellerID int64) error
	IncrementRentals(ctx context.Context, sellerID int64) error
	AddEarnings(ctx context.Context, sellerID int64, amount float64) error
}

type sellerRepository struct {
	db  *sqlx.DB
	log *zap.Logger
}

func NewSellerRepository(db *sqlx.DB, log *zap.Logger) *sellerRepository {
	return &sellerRepository{
		db:  db,
		log: log.Named("repo"),
	}
}

func (r *sellerRepository) GetStats(ctx context.Context, sellerID int64) (model.Seller, error) {
	q, args, err := qb.Select("user_id", "shop_name", "total_listings", "total_rentals", "total_earnings").
		From(sellersTableName).
		Where(sq.Eq{"user_id": sellerID}).
		ToSql()
	if err != nil {
		return model.Seller{}, err
	}
	var seller model.Seller
	if err := r.db.GetContext(ctx, &seller, q, args...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.Seller{}, errs.ErrNotFound
		}
		return model.Seller{}, err
	}
	return seller, nil
}

func (r *sellerRepository) IncrementListings(ctx context.Context, sellerID int64) error {
	q := fmt.Sprintf(`update %s set total_listings = total_listings + 1 where user_id = $1`, sellersTableName)
	_, err := r.db.ExecContext(ctx, q, sellerID)
	return err
}

func (r *sellerRepository) IncrementRentals(ctx context.Context, sellerID int64) error {
	q := fmt.Sprintf(`update %s set total_rentals = total_rentals + 1 where user_id = $1`, sellersTableName)
	_, err := r.db.ExecContext(ctx, q, sellerID)
	return err
}

func (r *sellerRepository) AddEarnings(ctx context.Context, sellerID int64, amount float64) error {
	q := fmt.Sprintf(`update %s set total_earnings = total_earnings + $2 where user_id = $1`, sellersTableName)
	_, err := r.db.ExecContext(ctx, q, sellerID, amount)
	return err
}
