package handler

import (
	"context"
	"io"

	"github.com/sajilorent/rental-service/internal/model"
	"github.com/sajilorent/rental-service/internal/service"
	"github.com/sajilorent/rental-service/pkg/auth"
)

//go:generate go run github.com/golang/mock/mockgen -source=service.go -destination=mocks/mock.go

type AuthService interface {
	Register(ctx context.Context, req model.RegisterRequest) (model.User, error)
	Login(ctx context.Context, req model.AuthRequest) (model.AuthResponse, error)
}

type ListingService interface {
	Create(ctx context.Context, sellerID int64, req model.CreateListingRequest) (model.Listing, error)
	Browse(ctx context.Context, filter model.ListingFilter) (model.ListListings, error)
	Get(ctx context.Context, listingUid string) (model.Listing, error)
	Approve(ctx context.Context, listingUid string) (model.Listing, error)
	Reject(ctx context.Context, listingUid string) (model.Listing, error)
	ToggleStatus(ctx context.Context, listingUid string, sellerID int64) (model.Listing, error)
	Update(ctx context.Context, listingUid string, sellerID int64, req model.UpdateListingRequest) (model.Listing, error)
	Delete(ctx context.Context, listingUid string) error
	SellerListings(ctx context.Context, sellerID int64, page, size int) (model.ListListings, error)
	AddImage(ctx context.Context, listingUid string, sellerID int64, filename, contentType string, body io.Reader) (model.Listing, error)
}

type RentalService interface {
	Create(ctx context.Context, userID int64, req model.CreateRentalRequest) (model.Rental, error)
	Get(ctx context.Context, rentalUid string, actor auth.Actor) (model.Rental, error)
	ListByUser(ctx context.Context, userID int64, page, size int) (model.ListRentals, error)
	AdminList(ctx context.Context, page, size int) (model.ListRentals, error)
	UpdateStatus(ctx context.Context, rentalUid string, actor auth.Actor, status model.RentalStatus) (model.Rental, error)
	Renew(ctx context.Context, rentalUid string, actor auth.Actor) (model.Rental, error)
}

type CartService interface {
	Upsert(ctx context.Context, userID int64, req model.CartItemRequest) error
	Remove(ctx context.Context, userID int64, listingUid string) error
	Get(ctx context.Context, userID int64, promoCode string) (model.Cart, error)
	ApplyPromo(ctx context.Context, userID int64, promoCode string) (model.CartTotals, error)
}

type FavoriteService interface {
	Toggle(ctx context.Context, userID int64, listingUid string) (bool, error)
	ListByUser(ctx context.Context, userID int64) ([]model.Favorite, error)
}

type PromoService interface {
	Create(ctx context.Context, req model.PromoCodeRequest) (model.PromoCode, error)
	Update(ctx context.Context, id int64, req model.PromoCodeRequest) (model.PromoCode, error)
	SetActive(ctx context.Context, id int64, active bool) error
	List(ctx context.Context) ([]model.PromoCode, error)
}

type PaymentService interface {
	Confirm(ctx context.Context, paymentUid string, userID int64, gatewayRef string) (model.Payment, error)
	ListByUser(ctx context.Context, userID int64) ([]model.Payment, error)
}

type StudentService interface {
	Submit(ctx context.Context, userID int64, req model.StudentVerificationRequest) (model.StudentVerification, error)
	StatusFor(ctx context.Context, userID int64) (model.StudentVerification, error)
	Review(ctx context.Context, id int64, status model.StudentVerificationStatus) (model.StudentVerification, error)
	ListPending(ctx context.Context) ([]model.StudentVerification, error)
}

type MessageService interface {
	Send(ctx context.Context, actor auth.Actor, listingUid string, req model.SendMessageRequest) (model.Message, error)
	Conversation(ctx context.Context, actor auth.Actor, listingUid string) ([]model.Message, error)
}

type StatsService interface {
	Apply(ctx context.Context, event model.SellerEvent) error
	Seller(ctx context.Context, sellerID int64) (model.Seller, error)
}

type AdminService interface {
	ListUsers(ctx context.Context, page, size int) (model.ListUsers, error)
}

var (
	_ AuthService     = (*service.Auth)(nil)
	_ ListingService  = (*service.Listing)(nil)
	_ RentalService   = (*service.Rental)(nil)
	_ CartService     = (*service.Cart)(nil)
	_ FavoriteService = (*service.Favorite)(nil)
	_ PromoService    = (*service.Promo)(nil)
	_ PaymentService  = (*service.Payment)(nil)
	_ StudentService  = (*service.Student)(nil)
	_ MessageService  = (*service.Message)(nil)
	_ StatsService    = (*service.Stats)(nil)
	_ AdminService    = (*service.Admin)(nil)
)
