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

type UserRepository interface {
	Create(ctx context.Context, user model.User, shopName string) (model.User, error)
	GetByUsername(ctx context.Context, username string) (model.User, error)
	GetByID(ctx context.Context, id int64) (model.User, error)
	List(ctx context.Context, page, size int) (model.ListUsers, error)
}

type userRepository struct {
	db  *sqlx.DB
	log *zap.Logger
}

func NewUserRepository(db *sqlx.DB, log *zap.Logger) *userRepository {
	return &userRepository{
		db:  db,
		log: log.Named("repo"),
	}
}

// Create inserts the user and, for sellers, the seller profile row in one
// transaction.
func (r *userRepository) Create(ctx context.Context, user model.User, shopName string) (model.User, error) {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return model.User{}, err
	}
	defer tx.Rollback() //nolint:errcheck

	q, args, err := qb.Insert(usersTableName).
		Columns("user_uid", "username", "email", "password_hash", "role").
		Values(user.UserUid, user.Username, user.Email, user.PasswordHash, user.Role).
		Suffix("returning *").
		ToSql()
	if err != nil {
		return model.User{}, err
	}
	var created model.User
	if err := tx.GetContext(ctx, &created, q, args...); err != nil {
		if isUniqueViolation(err) {
			return model.User{}, errs.ErrConflict
		}
		return model.User{}, err
	}

	if created.Role == "seller" {
		ins, args, err := qb.Insert(sellersTableName).
			Columns("user_id", "shop_name").
			Values(created.ID, shopName).
			ToSql()
		if err != nil {
			return model.User{}, err
		}
		if _, err := tx.ExecContext(ctx, ins, args...); err != nil {
			return model.User{}, err
		}
	}

	if err := tx.Commit(); err != nil {
		return model.User{}, err
	}
	return created, nil
}

func (r *userRepository) GetByUsername(ctx context.Context, username string) (model.User, error) {
	q, args, err := qb.Select("*").
		From(usersTableName).
		Where(sq.Eq{"username": username}).
		Limit(1).
		ToSql()
	if err != nil {
		return model.User{}, err
	}
	var user model.User
	if err := r.db.GetContext(ctx, &user, q, args...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.User{}, errs.ErrNotFound
		}
		return model.User{}, err
	}
	return user, nil
}

func (r *userRepository) GetByID(ctx context.Context, id int64) (model.User, error) {
	q, args, err := qb.Select("*").
		From(usersTableName).
		Where(sq.Eq{"id": id}).
		Limit(1).
		ToSql()
	if err != nil {
		return model.User{}, err
	}
	var user model.User
	if err := r.db.GetContext(ctx, &user, q, args...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.User{}, errs.ErrNotFound
		}
		return model.User{}, err
	}
	return user, nil
}

func (r *userRepository) List(ctx context.Context, page, size int) (model.ListUsers, error) {
	q := qb.Select("*").
		From(usersTableName).
		OrderBy("created_at desc")
	if page != 0 && size != 0 {
		q = q.Limit(uint64(size)).Offset(uint64((page - 1) * size))
	}
	query, args, err := q.ToSql()
	if err != nil {
		return model.ListUsers{}, err
	}
	var items []model.User
	if err := r.db.SelectContext(ctx, &items, query, args...); err != nil {
		return model.ListUsers{}, err
	}
	return model.ListUsers{
		Paging: model.Paging{Page: page, PageSize: size, TotalElements: len(items)},
		Items:  items,
	}, nil
}
