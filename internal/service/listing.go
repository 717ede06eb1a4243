package service

import (
	"context"
	"fmt"
	"io"
	"path"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/sajilorent/rental-service/internal/cache"
	"github.com/sajilorent/rental-service/internal/errs"
	"github.com/sajilorent/rental-service/internal/model"
	"github.com/sajilorent/rental-service/internal/repository"
)

// Uploader stores listing image bytes and returns a public URL.
type Uploader interface {
	Upload(ctx context.Context, key, contentType string, body io.Reader) (string, error)
}

type Listing struct {
	log       *zap.Logger
	repo      repository.ListingRepository
	views     *cache.Views
	images    Uploader
	publisher EventPublisher
}

func NewListingService(repo repository.ListingRepository, views *cache.Views, images Uploader, publisher EventPublisher, log *zap.Logger) *Listing {
	return &Listing{
		log:       log,
		repo:      repo,
		views:     views,
		images:    images,
		publisher: publisher,
	}
}

func (s *Listing) Create(ctx context.Context, sellerID int64, req model.CreateListingRequest) (model.Listing, error) {
	if req.PricePerMonth <= 0 {
		return model.Listing{}, errs.ErrValidation
	}
	if !req.Category.Valid() {
		return model.Listing{}, errs.ErrValidation
	}
	if len(req.Images) > MaxListingImages {
		return model.Listing{}, errs.ErrValidation
	}

	options := req.TenureOptions
	if len(options) == 0 {
		options = []int{3, 6, 12}
	}
	for _, months := range options {
		if !ValidTenure(months) {
			return model.Listing{}, errs.ErrValidation
		}
	}
	pricing, err := TenurePricing(req.PricePerMonth, options)
	if err != nil {
		return model.Listing{}, err
	}

	listing := model.Listing{
		ListingUid:    uuid.New().String(),
		SellerID:      sellerID,
		Title:         req.Title,
		Description:   req.Description,
		Category:      req.Category,
		PricePerMonth: req.PricePerMonth,
		TenureOptions: model.IntList(options),
		TenurePricing: pricing,
		Tags:          model.StringList(req.Tags),
		DeliveryZones: model.StringList(req.DeliveryZones),
		Images:        model.StringList(req.Images),
		Status:        InitialListingStatus(req.PricePerMonth),
	}

	created, err := s.repo.Create(ctx, listing)
	if err != nil {
		return model.Listing{}, err
	}

	if err := s.publisher.Publish(model.SellerEvent{
		Type:     model.EventListingCreated,
		SellerID: sellerID,
	}); err != nil {
		s.log.Error("publish listing.created", zap.Error(err))
	}
	return created, nil
}

func (s *Listing) Browse(ctx context.Context, filter model.ListingFilter) (model.ListListings, error) {
	return s.repo.List(ctx, filter)
}

// Get returns a listing for public display, counting the view.
func (s *Listing) Get(ctx context.Context, listingUid string) (model.Listing, error) {
	listing, err := s.repo.GetByUid(ctx, listingUid)
	if err != nil {
		return model.Listing{}, err
	}
	if err := s.views.Incr(ctx, listingUid); err != nil {
		s.log.Warn("view counter", zap.String("listingUid", listingUid), zap.Error(err))
	}
	listing.Views += s.views.Pending(ctx, listingUid)
	return listing, nil
}

func (s *Listing) Approve(ctx context.Context, listingUid string) (model.Listing, error) {
	return s.repo.SetStatus(ctx, listingUid, model.ListingActive)
}

func (s *Listing) Reject(ctx context.Context, listingUid string) (model.Listing, error) {
	return s.repo.SetStatus(ctx, listingUid, model.ListingRejected)
}

// toggledStatus flips active<->paused; every other status stays put.
func toggledStatus(status model.ListingStatus) model.ListingStatus {
	switch status {
	case model.ListingActive:
		return model.ListingPaused
	case model.ListingPaused:
		return model.ListingActive
	default:
		return status
	}
}

func (s *Listing) ToggleStatus(ctx context.Context, listingUid string, sellerID int64) (model.Listing, error) {
	listing, err := s.repo.GetByUid(ctx, listingUid)
	if err != nil {
		return model.Listing{}, err
	}
	if listing.SellerID != sellerID {
		return model.Listing{}, errs.ErrNotFound
	}
	next := toggledStatus(listing.Status)
	if next == listing.Status {
		return listing, nil
	}
	return s.repo.SetSellerStatus(ctx, listingUid, sellerID, listing.Status, next)
}

func (s *Listing) Update(ctx context.Context, listingUid string, sellerID int64, req model.UpdateListingRequest) (model.Listing, error) {
	if req.PricePerMonth != nil && *req.PricePerMonth <= 0 {
		return model.Listing{}, errs.ErrValidation
	}
	return s.repo.Update(ctx, listingUid, sellerID, req)
}

func (s *Listing) Delete(ctx context.Context, listingUid string) error {
	return s.repo.Delete(ctx, listingUid)
}

func (s *Listing) SellerListings(ctx context.Context, sellerID int64, page, size int) (model.ListListings, error) {
	return s.repo.List(ctx, model.ListingFilter{SellerID: sellerID, Page: page, Size: size})
}

func (s *Listing) AddImage(ctx context.Context, listingUid string, sellerID int64, filename, contentType string, body io.Reader) (model.Listing, error) {
	key := fmt.Sprintf("listings/%s/%s%s", listingUid, uuid.New().String(), path.Ext(filename))
	url, err := s.images.Upload(ctx, key, contentType, body)
	if err != nil {
		return model.Listing{}, err
	}
	return s.repo.AppendImage(ctx, listingUid, sellerID, url, MaxListingImages)
}

// FlushViews folds buffered view counts into the listings table.
func (s *Listing) FlushViews(ctx context.Context) {
	deltas, err := s.views.Drain(ctx)
	if err != nil {
		s.log.Error("drain views", zap.Error(err))
	}
	for listingUid, delta := range deltas {
		if err := s.repo.AddViews(ctx, listingUid, delta); err != nil {
			s.log.Error("flush views", zap.String("listingUid", listingUid), zap.Error(err))
		}
	}
}
