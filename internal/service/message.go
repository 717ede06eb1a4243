package service

import (
	"context"

	"go.uber.org/zap"

	"github.com/sajilorent/rental-service/internal/errs"
	"github.com/sajilorent/rental-service/internal/model"
	"github.com/sajilorent/rental-service/internal/repository"
	"github.com/sajilorent/rental-service/pkg/auth"
)

type Message struct {
	log      *zap.Logger
	repo     repository.MessageRepository
	listings repository.ListingRepository
}

func NewMessageService(repo repository.MessageRepository, listings repository.ListingRepository, log *zap.Logger) *Message {
	return &Message{
		log:      log,
		repo:     repo,
		listings: listings,
	}
}

// Send delivers a message about a listing. A renter's message defaults
// to the listing's seller; the seller must name the recipient.
func (s *Message) Send(ctx context.Context, actor auth.Actor, listingUid string, req model.SendMessageRequest) (model.Message, error) {
	listing, err := s.listings.GetByUid(ctx, listingUid)
	if err != nil {
		return model.Message{}, err
	}

	recipientID := req.RecipientID
	if recipientID == 0 {
		recipientID = listing.SellerID
	}
	if recipientID == actor.UserID {
		return model.Message{}, errs.ErrValidation
	}
	// Only the seller and a counterparty talk on a listing thread.
	if actor.UserID != listing.SellerID && recipientID != listing.SellerID {
		return model.Message{}, errs.ErrValidation
	}

	return s.repo.Insert(ctx, model.Message{
		ListingID:   listing.ID,
		ListingUid:  listing.ListingUid,
		SenderID:    actor.UserID,
		RecipientID: recipientID,
		Body:        req.Body,
	})
}

func (s *Message) Conversation(ctx context.Context, actor auth.Actor, listingUid string) ([]model.Message, error) {
	listing, err := s.listings.GetByUid(ctx, listingUid)
	if err != nil {
		return nil, err
	}
	return s.repo.ListByListing(ctx, listing.ID, actor.UserID)
}
