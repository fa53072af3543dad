package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/restauranthjort/hjort-api/internal/config"
	"github.com/restauranthjort/hjort-api/internal/domain"
	"github.com/restauranthjort/hjort-api/internal/pkg/jwthelper"
	"github.com/restauranthjort/hjort-api/internal/repository"
)

type AdminUserRepository interface {
	FindByUsername(ctx context.Context, username string) (domain.AdminUser, error)
}

type AuthService struct {
	repo AdminUserRepository
	conf *config.AuthConfig
	now  func() time.Time
}

func NewAuthService(repo AdminUserRepository, conf *config.AuthConfig) *AuthService {
	return &AuthService{
		repo: repo,
		conf: conf,
		now:  time.Now,
	}
}

// Authenticate verifies the submitted credentials and returns a signed
// bearer token. Unknown username and wrong password fail with the identical
// error so the response leaks nothing about which part was wrong.
func (s *AuthService) Authenticate(ctx context.Context, username, password string) (string, error) {
	user, err := s.repo.FindByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return "", domain.ErrInvalidCredentials
		}

		return "", fmt.Errorf("s.repo.FindByUsername -> %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return "", domain.ErrInvalidCredentials
	}

	token, err := jwthelper.GenerateToken([]byte(s.conf.SigningKey), s.conf.Issuer, s.conf.Audience, user.ID, s.now())
	if err != nil {
		return "", fmt.Errorf("jwthelper.GenerateToken -> %w", err)
	}

	return token, nil
}
