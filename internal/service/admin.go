package service

import (
	"context"

	"go.uber.org/zap"

	"github.com/sajilorent/rental-service/internal/model"
	"github.com/sajilorent/rental-service/internal/repository"
)

type Admin struct {
	log   *zap.Logger
	users repository.UserRepository
}

func NewAdminService(users repository.UserRepository, log *zap.Logger) *Admin {
	return &Admin{
		log:   log,
		users: users,
	}
}

func (s *Admin) ListUsers(ctx context.Context, page, size int) (model.ListUsers, error) {
	return s.users.List(ctx, page, size)
}
