package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/restauranthjort/hjort-api/internal/domain"
	"github.com/restauranthjort/hjort-api/internal/repository/dao"
)

var (
	ErrNotFound      = dao.ErrNotFound
	ErrUsernameTaken = dao.ErrUsernameTaken
)

type AdminUserDAO interface {
	FindByUsername(ctx context.Context, username string) (dao.AdminUser, error)
	Insert(ctx context.Context, user dao.AdminUser) error
}

type AdminUserRepository struct {
	dao AdminUserDAO
}

func NewAdminUserRepository(dao AdminUserDAO) *AdminUserRepository {
	return &AdminUserRepository{
		dao: dao,
	}
}

func (r *AdminUserRepository) FindByUsername(ctx context.Context, username string) (domain.AdminUser, error) {
	found, err := r.dao.FindByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, dao.ErrNotFound) {
			return domain.AdminUser{}, ErrNotFound
		}

		return domain.AdminUser{}, fmt.Errorf("r.dao.FindByUsername -> %w", err)
	}

	return domain.AdminUser{
		ID:           found.ID,
		Username:     found.Username,
		PasswordHash: found.PasswordHash,
		Email:        found.Email,
		FirstName:    found.FirstName,
		LastName:     found.LastName,
	}, nil
}

func (r *AdminUserRepository) Create(ctx context.Context, user domain.AdminUser) error {
	err := r.dao.Insert(ctx, dao.AdminUser{
		Username:     user.Username,
		PasswordHash: user.PasswordHash,
		Email:        user.Email,
		FirstName:    user.FirstName,
		LastName:     user.LastName,
	})
	if err != nil {
		if errors.Is(err, dao.ErrUsernameTaken) {
			return ErrUsernameTaken
		}

		return fmt.Errorf("r.dao.Insert -> %w", err)
	}

	return nil
}
