package handler_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/sajilorent/rental-service/internal/errs"
	"github.com/sajilorent/rental-service/internal/handler"
	"github.com/sajilorent/rental-service/internal/model"
	"github.com/sajilorent/rental-service/pkg/auth"
	"github.com/sajilorent/rental-service/pkg/validate"

	service_mocks "github.com/sajilorent/rental-service/internal/handler/mocks"
)

func TestHandler_CreateRental(t *testing.T) {
	t.Parallel()
	renter := auth.Actor{UserID: 11, Username: "anita", Role: auth.RoleRenter}

	type response struct {
		expectedCode int
		expectedBody string
	}
	type mockBehavior func(r *service_mocks.MockRentalService)

	var tests = []struct {
		name         string
		body         string
		mockBehavior mockBehavior
		response     response
	}{
		{
			name: "ok",
			body: `{"productId":"83575e12-7ce0-48ee-9931-51919ff3c9ee","tenure":6,"address":{"fullName":"Anita Shrestha","phone":"9841000000","street":"Lazimpat Road","city":"Kathmandu"},"paymentMethod":"esewa"}`,
			mockBehavior: func(r *service_mocks.MockRentalService) {
				r.EXPECT().
					Create(gomock.Any(), int64(11), model.CreateRentalRequest{
						ListingUid: "83575e12-7ce0-48ee-9931-51919ff3c9ee",
						Tenure:     6,
						Address: model.DeliveryAddress{
							FullName: "Anita Shrestha",
							Phone:    "9841000000",
							Street:   "Lazimpat Road",
							City:     "Kathmandu",
						},
						PaymentMethod: model.MethodEsewa,
					}).
					Return(model.Rental{
						RentalUid:     "b4e1b26a-8b1a-4b0a-8f61-6d48c2a7f9a3",
						UserID:        11,
						ListingUid:    "83575e12-7ce0-48ee-9931-51919ff3c9ee",
						SellerID:      7,
						Status:        model.RentalBooked,
						Tenure:        6,
						MonthlyRent:   4600,
						TotalAmount:   27600,
						FullName:      "Anita Shrestha",
						Phone:         "9841000000",
						Street:        "Lazimpat Road",
						City:          "Kathmandu",
						PaymentMethod: model.MethodEsewa,
					}, nil)
			},
			response: response{
				expectedCode: http.StatusCreated,
				expectedBody: `{"rentalUid":"b4e1b26a-8b1a-4b0a-8f61-6d48c2a7f9a3","userId":11,"listingUid":"83575e12-7ce0-48ee-9931-51919ff3c9ee","sellerId":7,"status":"booked","tenure":6,"monthlyRent":4600,"totalAmount":27600,"startDate":"0001-01-01T00:00:00Z","endDate":"0001-01-01T00:00:00Z","fullName":"Anita Shrestha","phone":"9841000000","street":"Lazimpat Road","city":"Kathmandu","ward":"","postalCode":"","paymentMethod":"esewa","createdAt":"0001-01-01T00:00:00Z","updatedAt":"0001-01-01T00:00:00Z"}`,
			},
		},
		{
			name:         "err. productId required",
			body:         `{"tenure":6,"address":{"fullName":"Anita Shrestha","phone":"9841000000","street":"Lazimpat Road","city":"Kathmandu"},"paymentMethod":"esewa"}`,
			mockBehavior: func(r *service_mocks.MockRentalService) {},
			response: response{
				expectedCode: http.StatusBadRequest,
				expectedBody: `{"message":"Key: 'CreateRentalRequest.ListingUid' Error:Field validation for 'ListingUid' failed on the 'required' tag"}`,
			},
		},
		{
			name: "err. listing unavailable",
			body: `{"productId":"83575e12-7ce0-48ee-9931-51919ff3c9ee","tenure":6,"address":{"fullName":"Anita Shrestha","phone":"9841000000","street":"Lazimpat Road","city":"Kathmandu"},"paymentMethod":"esewa"}`,
			mockBehavior: func(r *service_mocks.MockRentalService) {
				r.EXPECT().
					Create(gomock.Any(), int64(11), gomock.Any()).
					Return(model.Rental{}, errs.ErrUnavailable)
			},
			response: response{
				expectedCode: http.StatusBadRequest,
				expectedBody: `{"message":"listing is not available"}`,
			},
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			c := gomock.NewController(t)
			defer c.Finish()
			svc := service_mocks.NewMockRentalService(c)
			log := zap.NewExample().Named("test")
			h := handler.New(handler.Services{Rental: svc}, auth.Config{}, log)

			e := echo.New()
			e.Validator = validate.NewCustomValidator()
			e.POST("/rentals", h.CreateRental, withActor(renter))

			r := httptest.NewRequest(http.MethodPost, "/rentals", strings.NewReader(tt.body))
			r.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
			w := httptest.NewRecorder()

			tt.mockBehavior(svc)
			e.ServeHTTP(w, r)

			require.Equal(t, tt.response.expectedCode, w.Code)
			require.Equal(t, tt.response.expectedBody, strings.Trim(w.Body.String(), "\n"))
		})
	}
}

func TestHandler_UpdateRentalStatus(t *testing.T) {
	t.Parallel()
	renter := auth.Actor{UserID: 11, Username: "anita", Role: auth.RoleRenter}

	type response struct {
		expectedCode int
		expectedBody string
	}
	type mockBehavior func(r *service_mocks.MockRentalService)

	var tests = []struct {
		name         string
		body         string
		mockBehavior mockBehavior
		response     response
	}{
		{
			name: "ok. returned",
			body: `{"status":"returned"}`,
			mockBehavior: func(r *service_mocks.MockRentalService) {
				r.EXPECT().
					UpdateStatus(gomock.Any(), "b4e1b26a-8b1a-4b0a-8f61-6d48c2a7f9a3", renter, model.RentalReturned).
					Return(model.Rental{
						RentalUid:   "b4e1b26a-8b1a-4b0a-8f61-6d48c2a7f9a3",
						UserID:      11,
						ListingUid:  "83575e12-7ce0-48ee-9931-51919ff3c9ee",
						SellerID:    7,
						Status:      model.RentalReturned,
						Tenure:      6,
						MonthlyRent: 4600,
						TotalAmount: 27600,
					}, nil)
			},
			response: response{
				expectedCode: http.StatusOK,
				expectedBody: `{"rentalUid":"b4e1b26a-8b1a-4b0a-8f61-6d48c2a7f9a3","userId":11,"listingUid":"83575e12-7ce0-48ee-9931-51919ff3c9ee","sellerId":7,"status":"returned","tenure":6,"monthlyRent":4600,"totalAmount":27600,"startDate":"0001-01-01T00:00:00Z","endDate":"0001-01-01T00:00:00Z","fullName":"","phone":"","street":"","city":"","ward":"","postalCode":"","paymentMethod":"","createdAt":"0001-01-01T00:00:00Z","updatedAt":"0001-01-01T00:00:00Z"}`,
			},
		},
		{
			name: "err. bad status",
			body: `{"status":"finished"}`,
			mockBehavior: func(r *service_mocks.MockRentalService) {
				r.EXPECT().
					UpdateStatus(gomock.Any(), "b4e1b26a-8b1a-4b0a-8f61-6d48c2a7f9a3", renter, model.RentalStatus("finished")).
					Return(model.Rental{}, errs.ErrValidation)
			},
			response: response{
				expectedCode: http.StatusBadRequest,
				expectedBody: `{"message":"invalid request"}`,
			},
		},
		{
			name: "err. not found",
			body: `{"status":"cancelled"}`,
			mockBehavior: func(r *service_mocks.MockRentalService) {
				r.EXPECT().
					UpdateStatus(gomock.Any(), "b4e1b26a-8b1a-4b0a-8f61-6d48c2a7f9a3", renter, model.RentalCancelled).
					Return(model.Rental{}, errs.ErrNotFound)
			},
			response: response{
				expectedCode: http.StatusNotFound,
				expectedBody: `{"message":"not found"}`,
			},
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			c := gomock.NewController(t)
			defer c.Finish()
			svc := service_mocks.NewMockRentalService(c)
			log := zap.NewExample().Named("test")
			h := handler.New(handler.Services{Rental: svc}, auth.Config{}, log)

			e := echo.New()
			e.Validator = validate.NewCustomValidator()
			e.PATCH("/rentals/:rentalUid/status", h.UpdateRentalStatus, withActor(renter))

			r := httptest.NewRequest(http.MethodPatch,
				"/rentals/b4e1b26a-8b1a-4b0a-8f61-6d48c2a7f9a3/status", strings.NewReader(tt.body))
			r.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
			w := httptest.NewRecorder()

			tt.mockBehavior(svc)
			e.ServeHTTP(w, r)

			require.Equal(t, tt.response.expectedCode, w.Code)
			require.Equal(t, tt.response.expectedBody, strings.Trim(w.Body.String(), "\n"))
		})
	}
}
