package usecase

import (
	"context"

	"user-service/internal/userservice/domain"

	"go.uber.org/zap"
)

// UserService implements the business logic behind user creation.
// There is no store yet, so an accepted user is only acknowledged.
type UserService struct {
	logger *zap.Logger
}

// NewUserService creates a new user service
func NewUserService(logger *zap.Logger) *UserService {
	return &UserService{logger: logger}
}

// CreateUser accepts an already validated user.
func (s *UserService) CreateUser(ctx context.Context, user *domain.User) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.logger.Info("user accepted",
		zap.String("username", user.Username().String()),
		zap.String("email_domain", user.Email().Domain()),
	)
	return nil
}
