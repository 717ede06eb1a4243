package service

import (
	"context"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/sajilorent/rental-service/internal/errs"
	"github.com/sajilorent/rental-service/internal/model"
	mock_repository "github.com/sajilorent/rental-service/internal/repository/mocks"
)

func TestListing_ToggleStatus(t *testing.T) {
	t.Parallel()

	const (
		listingUid = "8f7e3c1a-1111-4222-8333-944455566677"
		sellerID   = int64(7)
	)

	tests := []struct {
		name       string
		status     model.ListingStatus
		next       model.ListingStatus
		writes     bool
		wantStatus model.ListingStatus
	}{
		{
			name:       "active pauses",
			status:     model.ListingActive,
			next:       model.ListingPaused,
			writes:     true,
			wantStatus: model.ListingPaused,
		},
		{
			name:       "paused reactivates",
			status:     model.ListingPaused,
			next:       model.ListingActive,
			writes:     true,
			wantStatus: model.ListingActive,
		},
		{
			name:       "pending unchanged",
			status:     model.ListingPending,
			wantStatus: model.ListingPending,
		},
		{
			name:       "rejected unchanged",
			status:     model.ListingRejected,
			wantStatus: model.ListingRejected,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			repo := mock_repository.NewMockListingRepository(ctrl)
			listing := model.Listing{ListingUid: listingUid, SellerID: sellerID, Status: tt.status}
			repo.EXPECT().GetByUid(gomock.Any(), listingUid).Return(listing, nil)
			if tt.writes {
				toggled := listing
				toggled.Status = tt.next
				repo.EXPECT().
					SetSellerStatus(gomock.Any(), listingUid, sellerID, tt.status, tt.next).
					Return(toggled, nil)
			}

			svc := NewListingService(repo, nil, nil, nil, zap.NewNop())
			got, err := svc.ToggleStatus(context.Background(), listingUid, sellerID)
			require.NoError(t, err)
			require.Equal(t, tt.wantStatus, got.Status)
		})
	}

	t.Run("not owned", func(t *testing.T) {
		t.Parallel()
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		repo := mock_repository.NewMockListingRepository(ctrl)
		repo.EXPECT().GetByUid(gomock.Any(), listingUid).
			Return(model.Listing{ListingUid: listingUid, SellerID: sellerID + 1, Status: model.ListingActive}, nil)

		svc := NewListingService(repo, nil, nil, nil, zap.NewNop())
		_, err := svc.ToggleStatus(context.Background(), listingUid, sellerID)
		require.ErrorIs(t, err, errs.ErrNotFound)
	})
}

func TestListing_ApproveIdempotent(t *testing.T) {
	t.Parallel()
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	const listingUid = "8f7e3c1a-1111-4222-8333-944455566677"
	active := model.Listing{ListingUid: listingUid, Status: model.ListingActive}

	repo := mock_repository.NewMockListingRepository(ctrl)
	// Approve sets active unconditionally; a second approve on an
	// already-active listing is the same write with the same result.
	repo.EXPECT().SetStatus(gomock.Any(), listingUid, model.ListingActive).Return(active, nil).Times(2)

	svc := NewListingService(repo, nil, nil, nil, zap.NewNop())
	for i := 0; i < 2; i++ {
		got, err := svc.Approve(context.Background(), listingUid)
		require.NoError(t, err)
		require.Equal(t, model.ListingActive, got.Status)
	}
}
