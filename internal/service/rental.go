package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"go.uber.org/zap"

	"github.com/sajilorent/rental-service/internal/errs"
	"github.com/sajilorent/rental-service/internal/model"
	"github.com/sajilorent/rental-service/internal/repository"
	"github.com/sajilorent/rental-service/pkg/auth"
)

type Rental struct {
	log       *zap.Logger
	db        *sqlx.DB
	rentals   repository.RentalRepository
	listings  repository.ListingRepository
	carts     repository.CartRepository
	payments  repository.PaymentRepository
	publisher EventPublisher
}

func NewRentalService(
	db *sqlx.DB,
	rentals repository.RentalRepository,
	listings repository.ListingRepository,
	carts repository.CartRepository,
	payments repository.PaymentRepository,
	publisher EventPublisher,
	log *zap.Logger,
) *Rental {
	return &Rental{
		log:       log,
		db:        db,
		rentals:   rentals,
		listings:  listings,
		carts:     carts,
		payments:  payments,
		publisher: publisher,
	}
}

// Create books a listing. The listing lock, rental insert, cart cleanup
// and initial payment all commit atomically so concurrent checkouts of
// the same listing cannot interleave.
func (s *Rental) Create(ctx context.Context, userID int64, req model.CreateRentalRequest) (model.Rental, error) {
	if !ValidTenure(req.Tenure) {
		return model.Rental{}, errs.ErrValidation
	}
	if !req.PaymentMethod.Valid() {
		return model.Rental{}, errs.ErrValidation
	}

	tx, err := s.db.BeginTxx(ctx, nil)
	if err != nil {
		return model.Rental{}, err
	}
	defer tx.Rollback() //nolint:errcheck

	listing, err := s.listings.GetForUpdate(ctx, tx, req.ListingUid)
	if err != nil {
		return model.Rental{}, err
	}
	if listing.Status != model.ListingActive {
		return model.Rental{}, errs.ErrUnavailable
	}

	monthlyRent, err := TenurePrice(listing.PricePerMonth, req.Tenure)
	if err != nil {
		return model.Rental{}, err
	}

	now := time.Now().UTC()
	rental := model.Rental{
		RentalUid:     uuid.New().String(),
		UserID:        userID,
		ListingID:     &listing.ID,
		ListingUid:    listing.ListingUid,
		SellerID:      listing.SellerID,
		Status:        model.RentalBooked,
		Tenure:        req.Tenure,
		MonthlyRent:   monthlyRent,
		TotalAmount:   monthlyRent * float64(req.Tenure),
		StartDate:     now,
		EndDate:       now.AddDate(0, req.Tenure, 0),
		FullName:      req.Address.FullName,
		Phone:         req.Address.Phone,
		Street:        req.Address.Street,
		City:          req.Address.City,
		Ward:          req.Address.Ward,
		PostalCode:    req.Address.PostalCode,
		PaymentMethod: req.PaymentMethod,
	}

	created, err := s.rentals.Insert(ctx, tx, rental)
	if err != nil {
		return model.Rental{}, err
	}
	if err := s.listings.IncrementRents(ctx, tx, listing.ID); err != nil {
		return model.Rental{}, err
	}
	if err := s.carts.DeleteTx(ctx, tx, userID, listing.ID); err != nil {
		return model.Rental{}, err
	}

	_, total, err := VATTotal(created.TotalAmount)
	if err != nil {
		return model.Rental{}, err
	}
	if _, err := s.payments.InsertTx(ctx, tx, model.Payment{
		PaymentUid: uuid.New().String(),
		RentalID:   created.ID,
		UserID:     userID,
		Amount:     total,
		Method:     req.PaymentMethod,
		Status:     model.PaymentInitiated,
	}); err != nil {
		return model.Rental{}, err
	}

	if err := tx.Commit(); err != nil {
		return model.Rental{}, err
	}

	if err := s.publisher.Publish(model.SellerEvent{
		Type:     model.EventRentalCreated,
		SellerID: created.SellerID,
	}); err != nil {
		s.log.Error("publish rental.created", zap.Error(err))
	}
	return created, nil
}

func (s *Rental) Get(ctx context.Context, rentalUid string, actor auth.Actor) (model.Rental, error) {
	rental, err := s.rentals.GetByUid(ctx, rentalUid)
	if err != nil {
		return model.Rental{}, err
	}
	if !canAccessRental(rental, actor) {
		return model.Rental{}, errs.ErrNotFound
	}
	return rental, nil
}

func (s *Rental) ListByUser(ctx context.Context, userID int64, page, size int) (model.ListRentals, error) {
	return s.rentals.ListByUser(ctx, userID, page, size)
}

func (s *Rental) AdminList(ctx context.Context, page, size int) (model.ListRentals, error) {
	return s.rentals.List(ctx, page, size)
}

// UpdateStatus assigns any valid status; no transition graph is
// enforced so admins and sellers keep override flexibility.
func (s *Rental) UpdateStatus(ctx context.Context, rentalUid string, actor auth.Actor, status model.RentalStatus) (model.Rental, error) {
	if !status.Valid() {
		return model.Rental{}, errs.ErrValidation
	}
	rental, err := s.rentals.GetByUid(ctx, rentalUid)
	if err != nil {
		return model.Rental{}, err
	}
	if !canAccessRental(rental, actor) {
		return model.Rental{}, errs.ErrNotFound
	}

	updated, err := s.rentals.UpdateStatus(ctx, rentalUid, status)
	if err != nil {
		return model.Rental{}, err
	}

	if status == model.RentalReturned && rental.Status != model.RentalReturned {
		if err := s.publisher.Publish(model.SellerEvent{
			Type:     model.EventRentalReturned,
			SellerID: updated.SellerID,
			Amount:   updated.TotalAmount,
		}); err != nil {
			s.log.Error("publish rental.returned", zap.Error(err))
		}
	}
	return updated, nil
}

// Renew extends the rental by its own tenure and records the renewal
// charge as a fresh payment; the original total amount is untouched.
// The extension and the payment row commit together.
func (s *Rental) Renew(ctx context.Context, rentalUid string, actor auth.Actor) (model.Rental, error) {
	rental, err := s.rentals.GetByUid(ctx, rentalUid)
	if err != nil {
		return model.Rental{}, err
	}
	if rental.UserID != actor.UserID && !actor.IsAdmin() {
		return model.Rental{}, errs.ErrNotFound
	}

	tx, err := s.db.BeginTxx(ctx, nil)
	if err != nil {
		return model.Rental{}, err
	}
	defer tx.Rollback() //nolint:errcheck

	renewed, err := s.rentals.Renew(ctx, tx, rentalUid, rental.EndDate.AddDate(0, rental.Tenure, 0))
	if err != nil {
		return model.Rental{}, err
	}

	_, total, err := VATTotal(renewed.MonthlyRent * float64(renewed.Tenure))
	if err != nil {
		return model.Rental{}, err
	}
	if _, err := s.payments.InsertTx(ctx, tx, model.Payment{
		PaymentUid: uuid.New().String(),
		RentalID:   renewed.ID,
		UserID:     renewed.UserID,
		Amount:     total,
		Method:     renewed.PaymentMethod,
		Status:     model.PaymentInitiated,
	}); err != nil {
		return model.Rental{}, err
	}

	if err := tx.Commit(); err != nil {
		return model.Rental{}, err
	}
	return renewed, nil
}

func canAccessRental(rental model.Rental, actor auth.Actor) bool {
	return rental.UserID == actor.UserID ||
		rental.SellerID == actor.UserID ||
		actor.IsAdmin()
}
