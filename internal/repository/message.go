package repository

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/jmoiron/sqlx"
	"go.uber.org/zap"

	"github.com/sajilorent/rental-service/internal/model"
)

type MessageRepository interface {
	Insert(ctx context.Context, msg model.Message) (model.Message, error)
	ListByListing(ctx context.Context, listingID, participantID int64) ([]model.Message, error)
}

type messageRepository struct {
	db  *sqlx.DB
	log *zap.Logger
}

func NewMessageRepository(db *sqlx.DB, log *zap.Logger) *messageRepository {
	return &messageRepository{
		db:  db,
		log: log.Named("repo"),
	}
}

func (r *messageRepository) Insert(ctx context.Context, msg model.Message) (model.Message, error) {
	q, args, err := qb.Insert(messagesTableName).
		Columns("listing_id", "sender_id", "recipient_id", "body").
		Values(msg.ListingID, msg.SenderID, msg.RecipientID, msg.Body).
		Suffix("returning id, listing_id, sender_id, recipient_id, body, created_at").
		ToSql()
	if err != nil {
		return model.Message{}, err
	}
	var created model.Message
	if err := r.db.GetContext(ctx, &created, q, args...); err != nil {
		return model.Message{}, err
	}
	created.ListingUid = msg.ListingUid
	return created, nil
}

func (r *messageRepository) ListByListing(ctx context.Context, listingID, participantID int64) ([]model.Message, error) {
	q, args, err := qb.Select("m.id", "m.listing_id", "m.sender_id", "m.recipient_id", "m.body", "m.created_at",
		"l.listing_uid").
		From(messagesTableName + " m").
		Join(fmt.Sprintf("%s l on l.id = m.listing_id", listingsTableName)).
		Where(sq.Eq{"m.listing_id": listingID}).
		Where(sq.Or{sq.Eq{"m.sender_id": participantID}, sq.Eq{"m.recipient_id": participantID}}).
		OrderBy("m.created_at").
		ToSql()
	if err != nil {
		return nil, err
	}
	var items []model.Message
	if err := r.db.SelectContext(ctx, &items, q, args...); err != nil {
		return nil, err
	}
	return items, nil
}
