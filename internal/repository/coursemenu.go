package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/restauranthjort/hjort-api/internal/domain"
	"github.com/restauranthjort/hjort-api/internal/repository/dao"
)

type CourseMenuDAO interface {
	FindAll(ctx context.Context) ([]dao.CourseMenu, error)
	Exists(ctx context.Context, id uint) (bool, error)
	Update(ctx context.Context, menu dao.CourseMenu) error
}

type CourseMenuRepository struct {
	dao CourseMenuDAO
}

func NewCourseMenuRepository(dao CourseMenuDAO) *CourseMenuRepository {
	return &CourseMenuRepository{
		dao: dao,
	}
}

func (r *CourseMenuRepository) FindAll(ctx context.Context) ([]domain.CourseMenu, error) {
	found, err := r.dao.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("r.dao.FindAll -> %w", err)
	}

	menus := make([]domain.CourseMenu, 0, len(found))
	for _, m := range found {
		menus = append(menus, r.daoToDomain(m))
	}

	return menus, nil
}

func (r *CourseMenuRepository) Exists(ctx context.Context, id uint) (bool, error) {
	exists, err := r.dao.Exists(ctx, id)
	if err != nil {
		return false, fmt.Errorf("r.dao.Exists -> %w", err)
	}

	return exists, nil
}

func (r *CourseMenuRepository) Update(ctx context.Context, menu domain.CourseMenu) error {
	err := r.dao.Update(ctx, dao.CourseMenu{
		ID:       menu.ID,
		Title:    menu.Title,
		PriceTot: menu.PriceTot,
	})
	if err != nil {
		if errors.Is(err, dao.ErrNotFound) {
			return ErrNotFound
		}

		return fmt.Errorf("r.dao.Update -> %w", err)
	}

	return nil
}

func (r *CourseMenuRepository) daoToDomain(m dao.CourseMenu) domain.CourseMenu {
	return domain.CourseMenu{
		ID:       m.ID,
		Title:    m.Title,
		PriceTot: m.PriceTot,
	}
}
