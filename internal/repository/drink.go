package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/restauranthjort/hjort-api/internal/domain"
	"github.com/restauranthjort/hjort-api/internal/repository/dao"
)

type DrinkDAO interface {
	FindAllByDrinkMenuID(ctx context.Context, drinkMenuID uint) ([]dao.Drink, error)
	Insert(ctx context.Context, drink dao.Drink) error
	Update(ctx context.Context, drink dao.Drink) error
	Delete(ctx context.Context, id uint) error
	Exists(ctx context.Context, id uint) (bool, error)
}

type DrinkRepository struct {
	dao DrinkDAO
}

func NewDrinkRepository(dao DrinkDAO) *DrinkRepository {
	return &DrinkRepository{
		dao: dao,
	}
}

func (r *DrinkRepository) FindAllByDrinkMenuID(ctx context.Context, drinkMenuID uint) ([]domain.Drink, error) {
	found, err := r.dao.FindAllByDrinkMenuID(ctx, drinkMenuID)
	if err != nil {
		return nil, fmt.Errorf("r.dao.FindAllByDrinkMenuID -> %w", err)
	}

	drinks := make([]domain.Drink, 0, len(found))
	for _, d := range found {
		drinks = append(drinks, r.daoToDomain(d))
	}

	return drinks, nil
}

func (r *DrinkRepository) Create(ctx context.Context, drink domain.Drink) error {
	err := r.dao.Insert(ctx, dao.Drink{
		DrinkMenuID: drink.DrinkMenuID,
		Name:        drink.Name,
	})
	if err != nil {
		return fmt.Errorf("r.dao.Insert -> %w", err)
	}

	return nil
}

func (r *DrinkRepository) Update(ctx context.Context, drink domain.Drink) error {
	err := r.dao.Update(ctx, dao.Drink{
		ID:   drink.ID,
		Name: drink.Name,
	})
	if err != nil {
		if errors.Is(err, dao.ErrNotFound) {
			return ErrNotFound
		}

		return fmt.Errorf("r.dao.Update -> %w", err)
	}

	return nil
}

func (r *DrinkRepository) Delete(ctx context.Context, id uint) error {
	err := r.dao.Delete(ctx, id)
	if err != nil {
		if errors.Is(err, dao.ErrNotFound) {
			return ErrNotFound
		}

		return fmt.Errorf("r.dao.Delete -> %w", err)
	}

	return nil
}

func (r *DrinkRepository) Exists(ctx context.Context, id uint) (bool, error) {
	exists, err := r.dao.Exists(ctx, id)
	if err != nil {
		return false, fmt.Errorf("r.dao.Exists -> %w", err)
	}

	return exists, nil
}

func (r *DrinkRepository) daoToDomain(d dao.Drink) domain.Drink {
	return domain.Drink{
		ID:          d.ID,
		DrinkMenuID: d.DrinkMenuID,
		Name:        d.Name,
	}
}
