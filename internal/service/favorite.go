package service

import (
	"context"

	"go.uber.org/zap"

	"github.com/sajilorent/rental-service/internal/model"
	"github.com/sajilorent/rental-service/internal/repository"
)

type Favorite struct {
	log      *zap.Logger
	repo     repository.FavoriteRepository
	listings repository.ListingRepository
}

func NewFavoriteService(repo repository.FavoriteRepository, listings repository.ListingRepository, log *zap.Logger) *Favorite {
	return &Favorite{
		log:      log,
		repo:     repo,
		listings: listings,
	}
}

// Toggle flips the favorite flag, reporting the new state.
func (s *Favorite) Toggle(ctx context.Context, userID int64, listingUid string) (bool, error) {
	listing, err := s.listings.GetByUid(ctx, listingUid)
	if err != nil {
		return false, err
	}
	return s.repo.Toggle(ctx, userID, listing.ID)
}

func (s *Favorite) ListByUser(ctx context.Context, userID int64) ([]model.Favorite, error) {
	return s.repo.ListByUser(ctx, userID)
}
