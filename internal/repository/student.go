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

type StudentRepository interface {
	Submit(ctx context.Context, userID int64, req model.StudentVerificationRequest) (model.StudentVerification, error)
	GetByUser(ctx context.Context, userID int64) (model.StudentVerification, error)
	Review(ctx context.Context, id int64, status model.StudentVerificationStatus) (model.StudentVerification, error)
	ListPending(ctx context.Context) ([]model.StudentVerification, error)
	IsVerified(ctx context.Context, userID int64) (bool, error)
}

type studentRepository struct {
	db  *sqlx.DB
	log *zap.Logger
}

func NewStudentRepository(db *sqlx.DB, log *zap.Logger) *studentRepository {
	return &studentRepository{
		db:  db,
		log: log.Named("repo"),
	}
}

func (r *studentRepository) Submit(ctx context.Context, userID int64, req model.StudentVerificationRequest) (model.StudentVerification, error) {
	q, args, err := qb.Insert(studentsTableName).
		Columns("user_id", "institution", "document_url", "status").
		Values(userID, req.Institution, req.DocumentURL, model.StudentPending).
		Suffix("returning *").
		ToSql()
	if err != nil {
		return model.StudentVerification{}, err
	}
	var created model.StudentVerification
	if err := r.db.GetContext(ctx, &created, q, args...); err != nil {
		if isUniqueViolation(err) {
			return model.StudentVerification{}, errs.ErrConflict
		}
		return model.StudentVerification{}, err
	}
	return created, nil
}

func (r *studentRepository) GetByUser(ctx context.Context, userID int64) (model.StudentVerification, error) {
	q, args, err := qb.Select("*").
		From(studentsTableName).
		Where(sq.Eq{"user_id": userID}).
		Limit(1).
		ToSql()
	if err != nil {
		return model.StudentVerification{}, err
	}
	var sv model.StudentVerification
	if err := r.db.GetContext(ctx, &sv, q, args...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.StudentVerification{}, errs.ErrNotFound
		}
		return model.StudentVerification{}, err
	}
	return sv, nil
}

func (r *studentRepository) Review(ctx context.Context, id int64, status model.StudentVerificationStatus) (model.StudentVerification, error) {
	q, args, err := qb.Update(studentsTableName).
		Set("status", status).
		Set("reviewed_at", sq.Expr("now()")).
		Where(sq.Eq{"id": id}).
		Suffix("returning *").
		ToSql()
	if err != nil {
		return model.StudentVerification{}, err
	}
	var sv model.StudentVerification
	if err := r.db.GetContext(ctx, &sv, q, args...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.StudentVerification{}, errs.ErrNotFound
		}
		return model.StudentVerification{}, err
	}
	return sv, nil
}

func (r *studentRepository) ListPending(ctx context.Context) ([]model.StudentVerification, error) {
	q, args, err := qb.Select("*").
		From(studentsTableName).
		Where(sq.Eq{"status": model.StudentPending}).
		OrderBy("created_at").
		ToSql()
	if err != nil {
		return nil, err
	}
	var items []model.StudentVerification
	if err := r.db.SelectContext(ctx, &items, q, args...); err != nil {
		return nil, err
	}
	return items, nil
}

func (r *studentRepository) IsVerified(ctx context.Context, userID int64) (bool, error) {
	q := `select count(*) from student_verifications where user_id = $1 and status = 'approved'`
	var count int
	if err := r.db.QueryRowContext(ctx, q, userID).Scan(&count); err != nil {
		return false, err
	}
	return count > 0, nil
}
