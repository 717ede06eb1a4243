package repository

import (
	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pkg/errors"
)

const (
	usersTableName     = `users`
	sellersTableName   = `sellers`
	listingsTableName  = `listings`
	rentalsTableName   = `rentals`
	cartTableName      = `cart_items`
	favoritesTableName = `favorites`
	paymentsTableName  = `payments`
	promoTableName     = `promo_codes`
	studentsTableName  = `student_verifications`
	messagesTableName  = `messages`
)

var qb = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation
}
