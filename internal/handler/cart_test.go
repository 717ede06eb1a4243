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

func TestHandler_GetCart(t *testing.T) {
	t.Parallel()
	renter := auth.Actor{UserID: 11, Username: "anita", Role: auth.RoleRenter}

	c := gomock.NewController(t)
	defer c.Finish()
	svc := service_mocks.NewMockCartService(c)
	log := zap.NewExample().Named("test")
	h := handler.New(handler.Services{Cart: svc}, auth.Config{}, log)

	e := echo.New()
	e.Validator = validate.NewCustomValidator()
	e.GET("/cart", h.GetCart, withActor(renter))

	svc.EXPECT().
		Get(gomock.Any(), int64(11), "DASHAIN15").
		Return(model.Cart{
			Items: []model.CartItem{},
			Totals: model.CartTotals{
				Subtotal:      10000,
				PromoCode:     "DASHAIN15",
				PromoDiscount: 1500,
				VAT:           1105,
				Total:         9605,
			},
		}, nil)

	r := httptest.NewRequest(http.MethodGet, "/cart?promo=DASHAIN15", http.NoBody)
	w := httptest.NewRecorder()
	e.ServeHTTP(w, r)

	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t,
		`{"items":[],"totals":{"subtotal":10000,"promoCode":"DASHAIN15","promoDiscount":1500,"studentDiscount":0,"vat":1105,"total":9605}}`,
		strings.Trim(w.Body.String(), "\n"))
}

func TestHandler_ApplyPromo(t *testing.T) {
	t.Parallel()
	renter := auth.Actor{UserID: 11, Username: "anita", Role: auth.RoleRenter}

	type response struct {
		expectedCode int
		expectedBody string
	}
	type mockBehavior func(r *service_mocks.MockCartService)

	var tests = []struct {
		name         string
		body         string
		mockBehavior mockBehavior
		response     response
	}{
		{
			name: "ok",
			body: `{"code":"DASHAIN15"}`,
			mockBehavior: func(r *service_mocks.MockCartService) {
				r.EXPECT().
					ApplyPromo(gomock.Any(), int64(11), "DASHAIN15").
					Return(model.CartTotals{
						Subtotal:      10000,
						PromoCode:     "DASHAIN15",
						PromoDiscount: 1500,
						VAT:           1105,
						Total:         9605,
					}, nil)
			},
			response: response{
				expectedCode: http.StatusOK,
				expectedBody: `{"subtotal":10000,"promoCode":"DASHAIN15","promoDiscount":1500,"studentDiscount":0,"vat":1105,"total":9605}`,
			},
		},
		{
			name: "err. expired code",
			body: `{"code":"OLDPROMO"}`,
			mockBehavior: func(r *service_mocks.MockCartService) {
				r.EXPECT().
					ApplyPromo(gomock.Any(), int64(11), "OLDPROMO").
					Return(model.CartTotals{}, errs.ErrValidation)
			},
			response: response{
				expectedCode: http.StatusBadRequest,
				expectedBody: `{"message":"invalid request"}`,
			},
		},
		{
			name:         "err. code required",
			body:         `{}`,
			mockBehavior: func(r *service_mocks.MockCartService) {},
			response: response{
				expectedCode: http.StatusBadRequest,
				expectedBody: `{"message":"Key: 'applyPromoRequest.Code' Error:Field validation for 'Code' failed on the 'required' tag"}`,
			},
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			c := gomock.NewController(t)
			defer c.Finish()
			svc := service_mocks.NewMockCartService(c)
			log := zap.NewExample().Named("test")
			h := handler.New(handler.Services{Cart: svc}, auth.Config{}, log)

			e := echo.New()
			e.Validator = validate.NewCustomValidator()
			e.POST("/cart/apply-promo", h.ApplyPromo, withActor(renter))

			r := httptest.NewRequest(http.MethodPost, "/cart/apply-promo", strings.NewReader(tt.body))
			r.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
			w := httptest.NewRecorder()

			tt.mockBehavior(svc)
			e.ServeHTTP(w, r)

			require.Equal(t, tt.response.expectedCode, w.Code)
			require.Equal(t, tt.response.expectedBody, strings.Trim(w.Body.String(), "\n"))
		})
	}
}
