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

type CartRepository interface {
	Upsert(ctx context.Context, userID, listingID int64, quantity, tenure int) error
	ListByUser(ctx context.Context, userID int64) ([]model.CartItem, error)
	Delete(ctx context.Context, userID int64, listingUid string) error
	DeleteTx(ctx context.Context, tx *sqlx.Tx, userID, listingID int64) error
}

type cartRepository struct {
	db  *sqlx.DB
	log *zap.Logger
}

func NewCartRepository(db *sqlx.DB, log *zap.Logger) *cartRepository {
	return &cartRepository{
		db:  db,
		log: log.Named("repo"),
	}
}

func (r *cartRepository) Upsert(ctx context.Context, userID, listingID int64, quantity, tenure int) error {
	q := fmt.Sprintf(`insert into %s (user_id, listing_id, quantity, tenure)
	values ($1, $2, $3, $4)
	on conflict (user_id, listing_id)
	do update set quantity = excluded.quantity, tenure = excluded.tenure`, cartTableName)
	_, err := r.db.ExecContext(ctx, q, userID, listingID, quantity, tenure)
	return err
}

func (r *cartRepository) ListByUser(ctx context.Context, userID int64) ([]model.CartItem, error) {
	q, args, err := qb.Select("c.id", "c.user_id", "c.listing_id", "c.quantity", "c.tenure", "c.created_at",
		"l.listing_uid", "l.title", "l.price_per_month").
		From(cartTableName + " c").
		Join(fmt.Sprintf("%s l on l.id = c.listing_id", listingsTableName)).
		Where(sq.Eq{"c.user_id": userID}).
		OrderBy("c.created_at").
		ToSql()
	if err != nil {
		return nil, err
	}
	var items []model.CartItem
	if err := r.db.SelectContext(ctx, &items, q, args...); err != nil {
		return nil, err
	}
	return items, nil
}

func (r *cartRepository) Delete(ctx context.Context, userID int64, listingUid string) error {
	q := fmt.Sprintf(`delete from %s c
	using %s l
	where l.id = c.listing_id and c.user_id = $1 and l.listing_uid = $2`,
		cartTableName, listingsTableName)
	res, err := r.db.ExecContext(ctx, q, userID, listingUid)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return errs.ErrNotFound
	}
	return nil
}

func (r *cartRepository) DeleteTx(ctx context.Context, tx *sqlx.Tx, userID, listingID int64) error {
	q, args, err := qb.Delete(cartTableName).
		Where(sq.Eq{"user_id": userID, "listing_id": listingID}).
		ToSql()
	if err != nil {
		return err
	}
	// A missing cart row is fine: checkout is not required to go through the cart.
	if _, err := tx.ExecContext(ctx, q, args...); err != nil && !errors.Is(err, sql.ErrNoRows) {
		return err
	}
	return nil
}
