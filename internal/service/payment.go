package service

import (
	"context"

	"go.uber.org/zap"

	"github.com/sajilorent/rental-service/internal/model"
	"github.com/sajilorent/rental-service/internal/repository"
)

type Payment struct {
	log  *zap.Logger
	repo repository.PaymentRepository
}

func NewPaymentService(repo repository.PaymentRepository, log *zap.Logger) *Payment {
	return &Payment{
		log:  log,
		repo: repo,
	}
}

// Confirm flips an initiated payment to completed. Gateways are mocked;
// the gateway reference is taken from the caller as-is.
func (s *Payment) Confirm(ctx context.Context, paymentUid string, userID int64, gatewayRef string) (model.Payment, error) {
	return s.repo.UpdateStatus(ctx, paymentUid, userID, model.PaymentCompleted, gatewayRef)
}

func (s *Payment) ListByUser(ctx context.Context, userID int64) ([]model.Payment, error) {
	return s.repo.ListByUser(ctx, userID)
}
