package service

import (
	"context"

	"go.uber.org/zap"

	"github.com/sajilorent/rental-service/internal/errs"
	"github.com/sajilorent/rental-service/internal/model"
	"github.com/sajilorent/rental-service/internal/repository"
)

type Student struct {
	log  *zap.Logger
	repo repository.StudentRepository
}

func NewStudentService(repo repository.StudentRepository, log *zap.Logger) *Student {
	return &Student{
		log:  log,
		repo: repo,
	}
}

func (s *Student) Submit(ctx context.Context, userID int64, req model.StudentVerificationRequest) (model.StudentVerification, error) {
	return s.repo.Submit(ctx, userID, req)
}

func (s *Student) StatusFor(ctx context.Context, userID int64) (model.StudentVerification, error) {
	return s.repo.GetByUser(ctx, userID)
}

func (s *Student) Review(ctx context.Context, id int64, status model.StudentVerificationStatus) (model.StudentVerification, error) {
	if status != model.StudentApproved && status != model.StudentRejected {
		return model.StudentVerification{}, errs.ErrValidation
	}
	return s.repo.Review(ctx, id, status)
}

func (s *Student) ListPending(ctx context.Context) ([]model.StudentVerification, error) {
	return s.repo.ListPending(ctx)
}
