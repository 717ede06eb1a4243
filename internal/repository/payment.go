package repository

import (
	"context"
	"database/sql"

	sq "github.com/Masterminds/squirrel"
	"github.com/jmoiron/sqlx"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/sajilorent/rental-service/internal/errs"
	"github.com/sajilorent/rental-service/internal/model"
)

//go:generate go run github.com/golang/mock/mockgen -source=payment.go -destination=mocks/mock_payment.go

type PaymentRepository interface {
	InsertTx(ctx context.Context, tx *sqlx.Tx, payment model.Payment) (model.Payment, error)
	Insert(ctx context.Context, payment model.Payment) (model.Payment, error)
	UpdateStatus(ctx context.Context, paymentUid string, userID int64, status model.PaymentStatus, gatewayRef string) (model.Payment, error)
	ListByUser(ctx context.Context, userID int64) ([]model.Payment, error)
}

type paymentRepository struct {
	db  *sqlx.DB
	log *zap.Logger
}

func NewPaymentRepository(db *sqlx.DB, log *zap.Logger) *paymentRepository {
	return &paymentRepository{
		db:  db,
		log: log.Named("repo"),
	}
}

func insertPaymentQuery(payment model.Payment) (string, []interface{}, error) {
	return qb.Insert(paymentsTableName).
		Columns("payment_uid", "rental_id", "user_id", "amount", "method", "status", "gateway_ref").
		Values(payment.PaymentUid, payment.RentalID, payment.UserID, payment.Amount,
			payment.Method, payment.Status, payment.GatewayRef).
		Suffix("returning *").
		ToSql()
}

func (r *paymentRepository) InsertTx(ctx context.Context, tx *sqlx.Tx, payment model.Payment) (model.Payment, error) {
	q, args, err := insertPaymentQuery(payment)
	if err != nil {
		return model.Payment{}, err
	}
	var created model.Payment
	if err := tx.GetContext(ctx, &created, q, args...); err != nil {
		return model.Payment{}, err
	}
	return created, nil
}

func (r *paymentRepository) Insert(ctx context.Context, payment model.Payment) (model.Payment, error) {
	q, args, err := insertPaymentQuery(payment)
	if err != nil {
		return model.Payment{}, err
	}
	var created model.Payment
	if err := r.db.GetContext(ctx, &created, q, args...); err != nil {
		return model.Payment{}, err
	}
	return created, nil
}

func (r *paymentRepository) UpdateStatus(ctx context.Context, paymentUid string, userID int64, status model.PaymentStatus, gatewayRef string) (model.Payment, error) {
	q, args, err := qb.Update(paymentsTableName).
		Set("status", status).
		Set("gateway_ref", gatewayRef).
		Where(sq.Eq{"payment_uid": paymentUid, "user_id": userID}).
		Suffix("returning *").
		ToSql()
	if err != nil {
		return model.Payment{}, err
	}
	var payment model.Payment
	if err := r.db.GetContext(ctx, &payment, q, args...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.Payment{}, errs.ErrNotFound
		}
		return model.Payment{}, err
	}
	return payment, nil
}

func (r *paymentRepository) ListByUser(ctx context.Context, userID int64) ([]model.Payment, error) {
	q, args, err := qb.Select("*").
		From(paymentsTableName).
		Where(sq.Eq{"user_id": userID}).
		OrderBy("created_at desc").
		ToSql()
	if err != nil {
		return nil, err
	}
	var items []model.Payment
	if err := r.db.SelectContext(ctx, &items, q, args...); err != nil {
		return nil, err
	}
	return items, nil
}
