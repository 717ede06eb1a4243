package handler_test

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/sajilorent/rental-service/internal/errs"
	"github.com/sajilorent/rental-service/internal/handler"
	"github.com/sajilorent/rental-service/internal/model"
	"github.com/sajilorent/rental-service/pkg/auth"
	"github.com/sajilorent/rental-service/pkg/validate"

	service_mocks "github.com/sajilorent/rental-service/internal/handler/mocks"
)

func withActor(actor auth.Actor) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			ctx := auth.SetAuthContext(c.Request().Context(), actor)
			c.SetRequest(c.Request().WithContext(ctx))
			return next(c)
		}
	}
}

func TestHandler_GetListing(t *testing.T) {
	t.Parallel()
	type response struct {
		expectedCode int
		expectedBody string
	}
	type mockBehavior func(r *service_mocks.MockListingService, listingUid string)

	var tests = []struct {
		name         string
		listingUid   string
		mockBehavior mockBehavior
		response     response
	}{
		{
			name:       "ok",
			listingUid: "83575e12-7ce0-48ee-9931-51919ff3c9ee",
			mockBehavior: func(r *service_mocks.MockListingService, listingUid string) {
				r.EXPECT().
					Get(context.Background(), listingUid).
					Return(model.Listing{
						ListingUid:    listingUid,
						SellerID:      7,
						Title:         "Oak dining table",
						Description:   "Solid oak, seats six",
						Category:      model.CategoryFurniture,
						PricePerMonth: 5000,
						TenureOptions: model.IntList{3, 6, 12},
						TenurePricing: model.PriceTiers{3: 5000, 6: 4600, 12: 4250},
						Tags:          model.StringList{"wood"},
						DeliveryZones: model.StringList{"kathmandu"},
						Images:        model.StringList{},
						Status:        model.ListingActive,
						Views:         10,
						Rents:         2,
					}, nil)
			},
			response: response{
				expectedCode: http.StatusOK,
				expectedBody: `{"listingUid":"83575e12-7ce0-48ee-9931-51919ff3c9ee","sellerId":7,"title":"Oak dining table","description":"Solid oak, seats six","category":"furniture","pricePerMonth":5000,"tenureOptions":[3,6,12],"tenurePricing":{"12":4250,"3":5000,"6":4600},"tags":["wood"],"deliveryZones":["kathmandu"],"images":[],"status":"active","views":10,"rents":2,"createdAt":"0001-01-01T00:00:00Z","updatedAt":"0001-01-01T00:00:00Z"}`,
			},
		},
		{
			name:       "err. not found",
			listingUid: "2e3ed5a1-5ad9-4d5e-bd22-0e8cd1af2bf1",
			mockBehavior: func(r *service_mocks.MockListingService, listingUid string) {
				r.EXPECT().
					Get(context.Background(), listingUid).
					Return(model.Listing{}, errs.ErrNotFound)
			},
			response: response{
				expectedCode: http.StatusNotFound,
				expectedBody: `{"message":"not found"}`,
			},
		},
		{
			name:       "err. internal",
			listingUid: "2e3ed5a1-5ad9-4d5e-bd22-0e8cd1af2bf1",
			mockBehavior: func(r *service_mocks.MockListingService, listingUid string) {
				r.EXPECT().
					Get(context.Background(), listingUid).
					Return(model.Listing{}, errors.New("db internal"))
			},
			response: response{
				expectedCode: http.StatusInternalServerError,
				expectedBody: `{"message":"db internal"}`,
			},
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			c := gomock.NewController(t)
			defer c.Finish()
			svc := service_mocks.NewMockListingService(c)
			log := zap.NewExample().Named("test")
			h := handler.New(handler.Services{Listing: svc}, auth.Config{}, log)

			e := echo.New()
			e.Validator = validate.NewCustomValidator()
			e.GET("/listings/:listingUid", h.GetListing)

			r := httptest.NewRequest(http.MethodGet, "/listings/"+tt.listingUid, http.NoBody)
			r.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
			w := httptest.NewRecorder()

			tt.mockBehavior(svc, tt.listingUid)
			e.ServeHTTP(w, r)

			require.Equal(t, tt.response.expectedCode, w.Code)
			require.Equal(t, tt.response.expectedBody, strings.Trim(w.Body.String(), "\n"))
		})
	}
}

func TestHandler_CreateListing(t *testing.T) {
	t.Parallel()
	seller := auth.Actor{UserID: 7, Username: "shop", Role: auth.RoleSeller}

	type response struct {
		expectedCode int
		expectedBody string
	}
	type mockBehavior func(r *service_mocks.MockListingService)

	var tests = []struct {
		name         string
		body         string
		mockBehavior mockBehavior
		response     response
	}{
		{
			name: "ok",
			body: `{"title":"Washing machine","description":"Front load, 7kg","category":"appliances","pricePerMonth":3000}`,
			mockBehavior: func(r *service_mocks.MockListingService) {
				r.EXPECT().
					Create(gomock.Any(), int64(7), model.CreateListingRequest{
						Title:         "Washing machine",
						Description:   "Front load, 7kg",
						Category:      model.CategoryAppliances,
						PricePerMonth: 3000,
					}).
					Return(model.Listing{
						ListingUid:    "6bdcb9a6-9e02-4a43-bc3a-d0f1f9e6f9d0",
						SellerID:      7,
						Title:         "Washing machine",
						Description:   "Front load, 7kg",
						Category:      model.CategoryAppliances,
						PricePerMonth: 3000,
						TenureOptions: model.IntList{3, 6, 12},
						TenurePricing: model.PriceTiers{3: 3000, 6: 2760, 12: 2550},
						Tags:          model.StringList{},
						DeliveryZones: model.StringList{},
						Images:        model.StringList{},
						Status:        model.ListingActive,
					}, nil)
			},
			response: response{
				expectedCode: http.StatusCreated,
				expectedBody: `{"listingUid":"6bdcb9a6-9e02-4a43-bc3a-d0f1f9e6f9d0","sellerId":7,"title":"Washing machine","description":"Front load, 7kg","category":"appliances","pricePerMonth":3000,"tenureOptions":[3,6,12],"tenurePricing":{"12":2550,"3":3000,"6":2760},"tags":[],"deliveryZones":[],"images":[],"status":"active","views":0,"rents":0,"createdAt":"0001-01-01T00:00:00Z","updatedAt":"0001-01-01T00:00:00Z"}`,
			},
		},
		{
			name:         "err. title required",
			body:         `{"description":"no title","category":"appliances","pricePerMonth":3000}`,
			mockBehavior: func(r *service_mocks.MockListingService) {},
			response: response{
				expectedCode: http.StatusBadRequest,
				expectedBody: `{"message":"Key: 'CreateListingRequest.Title' Error:Field validation for 'Title' failed on the 'required' tag"}`,
			},
		},
		{
			name: "err. invalid tenure option",
			body: `{"title":"Washing machine","description":"Front load, 7kg","category":"appliances","pricePerMonth":3000,"tenureOptions":[4]}`,
			mockBehavior: func(r *service_mocks.MockListingService) {
				r.EXPECT().
					Create(gomock.Any(), int64(7), model.CreateListingRequest{
						Title:         "Washing machine",
						Description:   "Front load, 7kg",
						Category:      model.CategoryAppliances,
						PricePerMonth: 3000,
						TenureOptions: []int{4},
					}).
					Return(model.Listing{}, errs.ErrValidation)
			},
			response: response{
				expectedCode: http.StatusBadRequest,
				expectedBody: `{"message":"invalid request"}`,
			},
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			c := gomock.NewController(t)
			defer c.Finish()
			svc := service_mocks.NewMockListingService(c)
			log := zap.NewExample().Named("test")
			h := handler.New(handler.Services{Listing: svc}, auth.Config{}, log)

			e := echo.New()
			e.Validator = validate.NewCustomValidator()
			e.POST("/seller/listings", h.CreateListing, withActor(seller))

			r := httptest.NewRequest(http.MethodPost, "/seller/listings", strings.NewReader(tt.body))
			r.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
			w := httptest.NewRecorder()

			tt.mockBehavior(svc)
			e.ServeHTTP(w, r)

			require.Equal(t, tt.response.expectedCode, w.Code)
			require.Equal(t, tt.response.expectedBody, strings.Trim(w.Body.String(), "\n"))
		})
	}
}

func TestHandler_BrowseListings(t *testing.T) {
	t.Parallel()
	c := gomock.NewController(t)
	defer c.Finish()
	svc := service_mocks.NewMockListingService(c)
	log := zap.NewExample().Named("test")
	h := handler.New(handler.Services{Listing: svc}, auth.Config{}, log)

	e := echo.New()
	e.Validator = validate.NewCustomValidator()
	e.GET("/listings", h.BrowseListings)

	svc.EXPECT().
		Browse(context.Background(), model.ListingFilter{
			Category: "furniture",
			Search:   "table",
			MaxPrice: 8000,
			Status:   model.ListingActive,
			Page:     1,
			Size:     20,
		}).
		Return(model.ListListings{
			Paging: model.Paging{Page: 1, PageSize: 20, TotalElements: 0},
			Items:  []model.Listing{},
		}, nil)

	r := httptest.NewRequest(http.MethodGet,
		fmt.Sprintf("/listings?category=%s&search=%s&maxPrice=%d&page=%d&size=%d", "furniture", "table", 8000, 1, 20), http.NoBody)
	w := httptest.NewRecorder()
	e.ServeHTTP(w, r)

	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t, `{"page":1,"pageSize":20,"totalElements":0,"items":[]}`, strings.Trim(w.Body.String(), "\n"))
}
