package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/sajilorent/rental-service/internal/errs"
	"github.com/sajilorent/rental-service/pkg/auth"
	md "github.com/sajilorent/rental-service/pkg/middleware"
	"github.com/sajilorent/rental-service/pkg/validate"
)

type Handler struct {
	authSvc     AuthService
	listingSvc  ListingService
	rentalSvc   RentalService
	cartSvc     CartService
	favoriteSvc FavoriteService
	promoSvc    PromoService
	paymentSvc  PaymentService
	studentSvc  StudentService
	messageSvc  MessageService
	statsSvc    StatsService
	adminSvc    AdminService

	authCfg auth.Config
	log     *zap.Logger
}

type Services struct {
	Auth     AuthService
	Listing  ListingService
	Rental   RentalService
	Cart     CartService
	Favorite FavoriteService
	Promo    PromoService
	Payment  PaymentService
	Student  StudentService
	Message  MessageService
	Stats    StatsService
	Admin    AdminService
}

func New(svc Services, authCfg auth.Config, log *zap.Logger) *Handler {
	return &Handler{
		authSvc:     svc.Auth,
		listingSvc:  svc.Listing,
		rentalSvc:   svc.Rental,
		cartSvc:     svc.Cart,
		favoriteSvc: svc.Favorite,
		promoSvc:    svc.Promo,
		paymentSvc:  svc.Payment,
		studentSvc:  svc.Student,
		messageSvc:  svc.Message,
		statsSvc:    svc.Stats,
		adminSvc:    svc.Admin,
		authCfg:     authCfg,
		log:         log,
	}
}

func (h *Handler) NewRouter() *echo.Echo {
	e := echo.New()
	const (
		baseRPS = 10
		apiRPS  = 100
	)
	e.Use(middleware.RecoverWithConfig(middleware.RecoverConfig{
		StackSize: 4 << 10, // 4 KB
	}))
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{http.MethodGet, http.MethodOptions, http.MethodHead, http.MethodPut, http.MethodPatch, http.MethodPost, http.MethodDelete},
		AllowCredentials: true,
	}))

	base := e.Group("", md.NewRateLimiter(baseRPS))
	base.GET("/manage/health", h.Health)

	e.Validator = validate.NewCustomValidator()

	api := e.Group("/api/v1",
		middleware.RequestLoggerWithConfig(md.RequestLoggerConfig(h.log)),
		middleware.RequestID(),
		md.NewRateLimiter(apiRPS),
	)

	api.POST("/auth/register", h.Register)
	api.POST("/auth/login", h.Login)
	api.GET("/listings", h.BrowseListings)
	api.GET("/listings/:listingUid", h.GetListing)

	authed := api.Group("", md.JwtAuthentication(h.authCfg))

	authed.POST("/rentals", h.CreateRental)
	authed.GET("/rentals", h.GetRentals)
	authed.GET("/rentals/:rentalUid", h.GetRental)
	authed.PATCH("/rentals/:rentalUid/status", h.UpdateRentalStatus)
	authed.POST("/rentals/:rentalUid/renew", h.RenewRental)

	authed.GET("/cart", h.GetCart)
	authed.POST("/cart/items", h.UpsertCartItem)
	authed.DELETE("/cart/items/:listingUid", h.RemoveCartItem)
	authed.POST("/cart/apply-promo", h.ApplyPromo)

	authed.POST("/favorites/:listingUid", h.ToggleFavorite)
	authed.GET("/favorites", h.GetFavorites)

	authed.POST("/student-verifications", h.SubmitStudentVerification)
	authed.GET("/student-verifications/me", h.GetStudentVerification)

	authed.POST("/listings/:listingUid/messages", h.SendMessage)
	authed.GET("/listings/:listingUid/messages", h.GetMessages)

	authed.POST("/payments/:paymentUid/confirm", h.ConfirmPayment)
	authed.GET("/payments", h.GetPayments)

	seller := authed.Group("/seller", md.RequireRole(auth.RoleSeller, auth.RoleAdmin))
	seller.POST("/listings", h.CreateListing)
	seller.GET("/listings", h.SellerListings)
	seller.PUT("/listings/:listingUid", h.UpdateListing)
	seller.POST("/listings/:listingUid/toggle-status", h.ToggleListingStatus)
	seller.POST("/listings/:listingUid/images", h.UploadListingImage)
	seller.GET("/stats", h.SellerStats)

	admin := authed.Group("/admin", md.RequireRole(auth.RoleAdmin))
	admin.GET("/listings", h.AdminListings)
	admin.POST("/listings/:listingUid/approve", h.ApproveListing)
	admin.POST("/listings/:listingUid/reject", h.RejectListing)
	admin.DELETE("/listings/:listingUid", h.DeleteListing)
	admin.GET("/rentals", h.AdminRentals)
	admin.GET("/users", h.AdminUsers)
	admin.POST("/promos", h.CreatePromo)
	admin.GET("/promos", h.GetPromos)
	admin.PUT("/promos/:id", h.UpdatePromo)
	admin.PATCH("/promos/:id/active", h.SetPromoActive)
	admin.GET("/student-verifications", h.PendingStudentVerifications)
	admin.POST("/student-verifications/:id/review", h.ReviewStudentVerification)

	return e
}

func (h *Handler) Health(c echo.Context) error {
	return c.String(http.StatusOK, "OK")
}

// httpCode maps service sentinel errors onto HTTP statuses.
func httpCode(err error) int {
	switch {
	case errors.Is(err, errs.ErrValidation), errors.Is(err, errs.ErrUnavailable):
		return http.StatusBadRequest
	case errors.Is(err, errs.ErrCredentials):
		return http.StatusUnauthorized
	case errors.Is(err, errs.ErrForbidden):
		return http.StatusForbidden
	case errors.Is(err, errs.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, errs.ErrConflict):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

func httpError(err error) *echo.HTTPError {
	return echo.NewHTTPError(httpCode(err), err.Error())
}

func actorFrom(c echo.Context) (auth.Actor, error) {
	return auth.FromContext(c.Request().Context())
}
