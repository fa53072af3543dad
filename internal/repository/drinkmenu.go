package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/restauranthjort/hjort-api/internal/domain"
	"github.com/restauranthjort/hjort-api/internal/repository/dao"
)

type DrinkMenuDAO interface {
	FindAll(ctx context.Context) ([]dao.DrinkMenu, error)
	Exists(ctx context.Context, id uint) (bool, error)
	Update(ctx context.Context, menu dao.DrinkMenu) error
}

type DrinkMenuRepository struct {
	dao DrinkMenuDAO
}

func NewDrinkMenuRepository(dao DrinkMenuDAO) *DrinkMenuRepository {
	return &DrinkMenuRepository{
		dao: dao,
	}
}

func (r *DrinkMenuRepository) FindAll(ctx context.Context) ([]domain.DrinkMenu, error) {
	found, err := r.dao.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("r.dao.FindAll -> %w", err)
	}

	menus := make([]domain.DrinkMenu, 0, len(found))
	for _, m := range found {
		menus = append(menus, r.daoToDomain(m))
	}

	return menus, nil
}

func (r *DrinkMenuRepository) Exists(ctx context.Context, id uint) (bool, error) {
	exists, err := r.dao.Exists(ctx, id)
	if err != nil {
		return false, fmt.Errorf("r.dao.Exists -> %w", err)
	}

	return exists, nil
}

func (r *DrinkMenuRepository) Update(ctx context.Context, menu domain.DrinkMenu) error {
	err := r.dao.Update(ctx, dao.DrinkMenu{
		ID:       menu.ID,
		Title:    menu.Title,
		Subtitle: menu.Subtitle,
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

func (r *DrinkMenuRepository) daoToDomain(m dao.DrinkMenu) domain.DrinkMenu {
	return domain.DrinkMenu{
		ID:       m.ID,
		Title:    m.Title,
		Subtitle: m.Subtitle,
		PriceTot: m.PriceTot,
	}
}
