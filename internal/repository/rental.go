package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/jmoiron/sqlx"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/sajilorent/rental-service/internal/errs"
	"github.com/sajilorent/rental-service/internal/model"
)

//go:generate go run github.com/golang/mock/mockgen -source=rental.go -destination=mocks/mock_rental.go

type RentalRepository interface {
	Insert(ctx context.Context, tx *sqlx.Tx, rental model.Rental) (model.Rental, error)
	GetByUid(ctx context.Context, rentalUid string) (model.Rental, error)
	ListByUser(ctx context.Context, userID int64, page, size int) (model.ListRentals, error)
	List(ctx context.Context, page, size int) (model.ListRentals, error)
	UpdateStatus(ctx context.Context, rentalUid string, status model.RentalStatus) (model.Rental, error)
	Renew(ctx context.Context, tx *sqlx.Tx, rentalUid string, endDate time.Time) (model.Rental, error)
}

type rentalRepository struct {
	db  *sqlx.DB
	log *zap.Logger
}

func NewRentalRepository(db *sqlx.DB, log *zap.Logger) *rentalRepository {
	return &rentalRepository{
		db:  db,
		log: log.Named("repo"),
	}
}

func (r *rentalRepository) Insert(ctx context.Context, tx *sqlx.Tx, rental model.Rental) (model.Rental, error) {
	q, args, err := qb.Insert(rentalsTableName).
		Columns("rental_uid", "user_id", "listing_id", "listing_uid", "seller_id", "status",
			"tenure", "monthly_rent", "total_amount", "start_date", "end_date",
			"full_name", "phone", "street", "city", "ward", "postal_code", "payment_method").
		Values(rental.RentalUid, rental.UserID, rental.ListingID, rental.ListingUid, rental.SellerID, rental.Status,
			rental.Tenure, rental.MonthlyRent, rental.TotalAmount, rental.StartDate, rental.EndDate,
			rental.FullName, rental.Phone, rental.Street, rental.City, rental.Ward, rental.PostalCode, rental.PaymentMethod).
		Suffix("returning *").
		ToSql()
	if err != nil {
		return model.Rental{}, err
	}
	var created model.Rental
	if err := tx.GetContext(ctx, &created, q, args...); err != nil {
		r.log.Error("InsertRental", zap.String("q", q), zap.Error(err))
		return model.Rental{}, err
	}
	return created, nil
}

func (r *rentalRepository) GetByUid(ctx context.Context, rentalUid string) (model.Rental, error) {
	q, args, err := qb.Select("*").
		From(rentalsTableName).
		Where(sq.Eq{"rental_uid": rentalUid}).
		Limit(1).
		ToSql()
	if err != nil {
		return model.Rental{}, err
	}
	var rental model.Rental
	if err := r.db.GetContext(ctx, &rental, q, args...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.Rental{}, errs.ErrNotFound
		}
		return model.Rental{}, err
	}
	return rental, nil
}

func (r *rentalRepository) ListByUser(ctx context.Context, userID int64, page, size int) (model.ListRentals, error) {
	q := qb.Select("*").
		From(rentalsTableName).
		Where(sq.Eq{"user_id": userID}).
		OrderBy("created_at desc")
	if page != 0 && size != 0 {
		q = q.Limit(uint64(size)).Offset(uint64((page - 1) * size))
	}
	query, args, err := q.ToSql()
	if err != nil {
		return model.ListRentals{}, err
	}
	var items []model.Rental
	if err := r.db.SelectContext(ctx, &items, query, args...); err != nil {
		return model.ListRentals{}, err
	}
	return model.ListRentals{
		Paging: model.Paging{Page: page, PageSize: size, TotalElements: len(items)},
		Items:  items,
	}, nil
}

func (r *rentalRepository) List(ctx context.Context, page, size int) (model.ListRentals, error) {
	q := qb.Select("*").
		From(rentalsTableName).
		OrderBy("created_at desc")
	if page != 0 && size != 0 {
		q = q.Limit(uint64(size)).Offset(uint64((page - 1) * size))
	}
	query, args, err := q.ToSql()
	if err != nil {
		return model.ListRentals{}, err
	}
	var items []model.Rental
	if err := r.db.SelectContext(ctx, &items, query, args...); err != nil {
		return model.ListRentals{}, err
	}
	return model.ListRentals{
		Paging: model.Paging{Page: page, PageSize: size, TotalElements: len(items)},
		Items:  items,
	}, nil
}

func (r *rentalRepository) UpdateStatus(ctx context.Context, rentalUid string, status model.RentalStatus) (model.Rental, error) {
	q, args, err := qb.Update(rentalsTableName).
		Set("status", status).
		Set("updated_at", sq.Expr("now()")).
		Where(sq.Eq{"rental_uid": rentalUid}).
		Suffix("returning *").
		ToSql()
	if err != nil {
		return model.Rental{}, err
	}
	var rental model.Rental
	if err := r.db.GetContext(ctx, &rental, q, args...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.Rental{}, errs.ErrNotFound
		}
		return model.Rental{}, err
	}
	return rental, nil
}

// Renew pushes end_date out by the rental's own tenure and forces the
// rental back to active. The stored total amount is left untouched;
// renewal billing goes through a separate payment row.
func (r *rentalRepository) Renew(ctx context.Context, tx *sqlx.Tx, rentalUid string, endDate time.Time) (model.Rental, error) {
	q := fmt.Sprintf(`update %s
	set end_date = $2,
	    status = 'active',
	    updated_at = now()
	where rental_uid = $1
	returning *`, rentalsTableName)

	var rental model.Rental
	if err := tx.GetContext(ctx, &rental, q, rentalUid, endDate); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.Rental{}, errs.ErrNotFound
		}
		return model.Rental{}, err
	}
	return rental, nil
}
