package service

import (
	"context"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"github.com/sajilorent/rental-service/internal/errs"
	"github.com/sajilorent/rental-service/internal/model"
	"github.com/sajilorent/rental-service/internal/repository"
	"github.com/sajilorent/rental-service/pkg/auth"
)

type Auth struct {
	log   *zap.Logger
	users repository.UserRepository
	cfg   auth.Config
}

func NewAuthService(users repository.UserRepository, cfg auth.Config, log *zap.Logger) *Auth {
	return &Auth{
		log:   log,
		users: users,
		cfg:   cfg,
	}
}

func (s *Auth) Register(ctx context.Context, req model.RegisterRequest) (model.User, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return model.User{}, err
	}
	user := model.User{
		UserUid:      uuid.New().String(),
		Username:     req.Username,
		Email:        req.Email,
		PasswordHash: string(hash),
		Role:         req.Role,
	}
	return s.users.Create(ctx, user, req.ShopName)
}

func (s *Auth) Login(ctx context.Context, req model.AuthRequest) (model.AuthResponse, error) {
	user, err := s.users.GetByUsername(ctx, req.Username)
	if err != nil {
		return model.AuthResponse{}, errs.ErrCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		return model.AuthResponse{}, errs.ErrCredentials
	}

	token, expiresAt, err := auth.NewToken(s.cfg, user.ID, user.Username, user.Role)
	if err != nil {
		return model.AuthResponse{}, err
	}
	return model.AuthResponse{
		AccessToken: token,
		ExpiresIn:   int(expiresAt.Unix()),
	}, nil
}
