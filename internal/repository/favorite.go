package repository

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/jmoiron/sqlx"
	"go.uber.org/zap"

	"github.com/sajilorent/rental-service/internal/model"
)

type FavoriteRepository interface {
	Toggle(ctx context.Context, userID, listingID int64) (favorited bool, err error)
	ListByUser(ctx context.Context, userID int64) ([]model.Favorite, error)
}

type favoriteRepository struct {
	db  *sqlx.DB
	log *zap.Logger
}

func NewFavoriteRepository(db *sqlx.DB, log *zap.Logger) *favoriteRepository {
	return &favoriteRepository{
		db:  db,
		log: log.Named("repo"),
	}
}

// Toggle removes the favorite when present, inserts it otherwise.
func (r *favoriteRepository) Toggle(ctx context.Context, userID, listingID int64) (bool, error) {
	del, args, err := qb.Delete(favoritesTableName).
		Where(sq.Eq{"user_id": userID, "listing_id": listingID}).
		ToSql()
	if err != nil {
		return false, err
	}
	res, err := r.db.ExecContext(ctx, del, args...)
	if err != nil {
		return false, err
	}
	if n, _ := res.RowsAffected(); n > 0 {
		return false, nil
	}

	ins, args, err := qb.Insert(favoritesTableName).
		Columns("user_id", "listing_id").
		Values(userID, listingID).
		ToSql()
	if err != nil {
		return false, err
	}
	if _, err := r.db.ExecContext(ctx, ins, args...); err != nil {
		if isUniqueViolation(err) {
			// Lost a race with a concurrent toggle; treat as favorited.
			return true, nil
		}
		return false, err
	}
	return true, nil
}

func (r *favoriteRepository) ListByUser(ctx context.Context, userID int64) ([]model.Favorite, error) {
	q, args, err := qb.Select("f.id", "f.user_id", "f.listing_id", "f.created_at",
		"l.listing_uid", "l.title", "l.price_per_month", "l.status").
		From(favoritesTableName + " f").
		Join(fmt.Sprintf("%s l on l.id = f.listing_id", listingsTableName)).
		Where(sq.Eq{"f.user_id": userID}).
		OrderBy("f.created_at desc").
		ToSql()
	if err != nil {
		return nil, err
	}
	var items []model.Favorite
	if err := r.db.SelectContext(ctx, &items, q, args...); err != nil {
		return nil, err
	}
	return items, nil
}
