package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/poselab/pose-backend/entity"
	"github.com/poselab/pose-backend/infra"
	"github.com/poselab/pose-backend/repository"
	"github.com/poselab/pose-backend/utils"
)

// AuthService handles signup, login and account deletion.
type AuthService struct {
	repo      *repository.Repository
	videos    *VideoService
	logger    *infra.LoggerClient
	jwtSecret []byte
	jwtExpire time.Duration
}

func NewAuthService(repo *repository.Repository, videos *VideoService, logger *infra.LoggerClient, jwtSecret []byte, jwtExpire time.Duration) *AuthService {
	return &AuthService{
		repo:      repo,
		videos:    videos,
		logger:    logger,
		jwtSecret: jwtSecret,
		jwtExpire: jwtExpire,
	}
}

func (s *AuthService) Signup(ctx context.Context, userID, password, email string) error {
	exists, err := s.repo.UserRepo.ExistsByUserID(userID)
	if err != nil {
		return err
	}
	if exists {
		return ErrConflict
	}

	hashed, err := utils.HashPassword(password)
	if err != nil {
		return err
	}

	user := &entity.User{
		ID:       uuid.New(),
		UserID:   userID,
		Password: hashed,
		Email:    email,
	}

	if err := s.repo.UserRepo.Create(user); err != nil {
		return err
	}

	s.logger.InfoWithContextf(ctx, "[Auth] Created user %s", userID)
	return nil
}

// Login verifies the credentials and issues a signed token. Unknown user and
// wrong password are reported identically.
func (s *AuthService) Login(ctx context.Context, userID, password string) (string, error) {
	user, err := s.repo.UserRepo.GetByUserID(userID)
	if err != nil {
		return "", err
	}
	if user == nil {
		return "", ErrBadCredentials
	}

	if !utils.CheckPassword(user.Password, password) {
		return "", ErrBadCredentials
	}

	token, err := utils.GenerateToken(userID, s.jwtSecret, s.jwtExpire)
	if err != nil {
		return "", err
	}

	s.logger.InfoWithContextf(ctx, "[Auth] Issued token for user %s", userID)
	return token, nil
}

// DeleteAccount cascades through the user's videos, frames and storage objects.
func (s *AuthService) DeleteAccount(ctx context.Context, userID string) error {
	deleted, err := s.videos.DeleteUser(ctx, userID)
	if err != nil {
		return err
	}
	if !deleted {
		return ErrNotFound
	}
	return nil
}
