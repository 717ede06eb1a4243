package service

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/golang/mock/gomock"
	"github.com/jmoiron/sqlx"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/sajilorent/rental-service/internal/errs"
	"github.com/sajilorent/rental-service/internal/model"
	mock_repository "github.com/sajilorent/rental-service/internal/repository/mocks"
	"github.com/sajilorent/rental-service/pkg/auth"
)

func newRentalMockDB(t *testing.T) (*sqlx.DB, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() }) //nolint:errcheck
	return sqlx.NewDb(db, "sqlmock"), mock
}

func TestRental_Renew(t *testing.T) {
	t.Parallel()

	const rentalUid = "1b2c3d4e-aaaa-4bbb-8ccc-9ddd0eee1fff"
	start := time.Date(2026, time.January, 15, 0, 0, 0, 0, time.UTC)
	rental := model.Rental{
		ID:            42,
		RentalUid:     rentalUid,
		UserID:        7,
		SellerID:      3,
		Status:        model.RentalActive,
		Tenure:        6,
		MonthlyRent:   4600,
		TotalAmount:   27600,
		StartDate:     start,
		EndDate:       start.AddDate(0, 6, 0),
		PaymentMethod: model.MethodEsewa,
	}
	actor := auth.Actor{UserID: 7, Username: "ramesh", Role: auth.RoleRenter}

	t.Run("extends by tenure and charges vat-inclusive rent", func(t *testing.T) {
		t.Parallel()
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		db, dbMock := newRentalMockDB(t)
		rentals := mock_repository.NewMockRentalRepository(ctrl)
		payments := mock_repository.NewMockPaymentRepository(ctrl)

		wantEnd := rental.EndDate.AddDate(0, rental.Tenure, 0)
		renewed := rental
		renewed.Status = model.RentalActive
		renewed.EndDate = wantEnd

		dbMock.ExpectBegin()
		rentals.EXPECT().GetByUid(gomock.Any(), rentalUid).Return(rental, nil)
		rentals.EXPECT().Renew(gomock.Any(), gomock.Any(), rentalUid, wantEnd).Return(renewed, nil)
		payments.EXPECT().InsertTx(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ *sqlx.Tx, payment model.Payment) (model.Payment, error) {
				// 4600*6 = 27600, plus 13% VAT.
				require.Equal(t, float64(31188), payment.Amount)
				require.Equal(t, int64(42), payment.RentalID)
				require.Equal(t, model.MethodEsewa, payment.Method)
				require.Equal(t, model.PaymentInitiated, payment.Status)
				return payment, nil
			})
		dbMock.ExpectCommit()

		svc := NewRentalService(db, rentals, nil, nil, payments, nil, zap.NewNop())
		got, err := svc.Renew(context.Background(), rentalUid, actor)
		require.NoError(t, err)
		require.Equal(t, model.RentalActive, got.Status)
		require.Equal(t, wantEnd, got.EndDate)
		require.Equal(t, rental.TotalAmount, got.TotalAmount)
		require.NoError(t, dbMock.ExpectationsWereMet())
	})

	t.Run("payment write failure rolls back", func(t *testing.T) {
		t.Parallel()
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		db, dbMock := newRentalMockDB(t)
		rentals := mock_repository.NewMockRentalRepository(ctrl)
		payments := mock_repository.NewMockPaymentRepository(ctrl)

		dbMock.ExpectBegin()
		rentals.EXPECT().GetByUid(gomock.Any(), rentalUid).Return(rental, nil)
		rentals.EXPECT().Renew(gomock.Any(), gomock.Any(), rentalUid, gomock.Any()).Return(rental, nil)
		payments.EXPECT().InsertTx(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(model.Payment{}, errors.New("insert payment"))
		dbMock.ExpectRollback()

		svc := NewRentalService(db, rentals, nil, nil, payments, nil, zap.NewNop())
		_, err := svc.Renew(context.Background(), rentalUid, actor)
		require.Error(t, err)
		require.NoError(t, dbMock.ExpectationsWereMet())
	})

	t.Run("not the renter", func(t *testing.T) {
		t.Parallel()
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		db, _ := newRentalMockDB(t)
		rentals := mock_repository.NewMockRentalRepository(ctrl)
		rentals.EXPECT().GetByUid(gomock.Any(), rentalUid).Return(rental, nil)

		svc := NewRentalService(db, rentals, nil, nil, nil, nil, zap.NewNop())
		_, err := svc.Renew(context.Background(), rentalUid, auth.Actor{UserID: 99, Role: auth.RoleRenter})
		require.ErrorIs(t, err, errs.ErrNotFound)
	})
}
