package service

import (
	"context"

	"go.uber.org/zap"

	"github.com/sajilorent/rental-service/internal/model"
	"github.com/sajilorent/rental-service/internal/repository"
)

// Stats maintains per-seller counters fed by marketplace events.
type Stats struct {
	log     *zap.Logger
	sellers repository.SellerRepository
}

func NewStatsService(sellers repository.SellerRepository, log *zap.Logger) *Stats {
	return &Stats{
		log:     log,
		sellers: sellers,
	}
}

func (s *Stats) Apply(ctx context.Context, event model.SellerEvent) error {
	switch event.Type {
	case model.EventListingCreated:
		return s.sellers.IncrementListings(ctx, event.SellerID)
	case model.EventRentalCreated:
		return s.sellers.IncrementRentals(ctx, event.SellerID)
	case model.EventRentalReturned:
		return s.sellers.AddEarnings(ctx, event.SellerID, event.Amount)
	default:
		s.log.Warn("unknown seller event", zap.String("type", event.Type))
		return nil
	}
}

func (s *Stats) Seller(ctx context.Context, sellerID int64) (model.Seller, error) {
	return s.sellers.GetStats(ctx, sellerID)
}
