package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/restauranthjort/hjort-api/internal/domain"
	"github.com/restauranthjort/hjort-api/internal/repository"
)

type DrinkRepository interface {
	FindAllByDrinkMenuID(ctx context.Context, drinkMenuID uint) ([]domain.Drink, error)
	Create(ctx context.Context, drink domain.Drink) error
	Update(ctx context.Context, drink domain.Drink) error
	Delete(ctx context.Context, id uint) error
	Exists(ctx context.Context, id uint) (bool, error)
}

// DrinkMenuExistenceChecker guards drink creation against dangling menu ids.
type DrinkMenuExistenceChecker interface {
	Exists(ctx context.Context, id uint) (bool, error)
}

type DrinkService struct {
	repo     DrinkRepository
	menuRepo DrinkMenuExistenceChecker
}

func NewDrinkService(repo DrinkRepository, menuRepo DrinkMenuExistenceChecker) *DrinkService {
	return &DrinkService{
		repo:     repo,
		menuRepo: menuRepo,
	}
}

func (s *DrinkService) GetAllDrinksByDrinkMenuID(ctx context.Context, drinkMenuID uint) ([]domain.Drink, error) {
	drinks, err := s.repo.FindAllByDrinkMenuID(ctx, drinkMenuID)
	if err != nil {
		return nil, fmt.Errorf("s.repo.FindAllByDrinkMenuID -> %w", err)
	}

	return drinks, nil
}

func (s *DrinkService) CreateDrink(ctx context.Context, drink domain.Drink) error {
	menuExists, err := s.menuRepo.Exists(ctx, drink.DrinkMenuID)
	if err != nil {
		return fmt.Errorf("s.menuRepo.Exists -> %w", err)
	}
	if !menuExists {
		return domain.ErrInvalidDrinkMenuID
	}

	if err := s.repo.Create(ctx, drink); err != nil {
		return fmt.Errorf("s.repo.Create -> %w", err)
	}

	return nil
}

func (s *DrinkService) UpdateDrink(ctx context.Context, drink domain.Drink) error {
	exists, err := s.repo.Exists(ctx, drink.ID)
	if err != nil {
		return fmt.Errorf("s.repo.Exists -> %w", err)
	}
	if !exists {
		return domain.ErrInvalidDrinkID
	}

	if err := s.repo.Update(ctx, drink); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return domain.ErrInvalidDrinkID
		}

		return fmt.Errorf("s.repo.Update -> %w", err)
	}

	return nil
}

func (s *DrinkService) DeleteDrink(ctx context.Context, id uint) error {
	exists, err := s.repo.Exists(ctx, id)
	if err != nil {
		return fmt.Errorf("s.repo.Exists -> %w", err)
	}
	if !exists {
		return domain.ErrInvalidDrinkID
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return domain.ErrInvalidDrinkID
		}

		return fmt.Errorf("s.repo.Delete -> %w", err)
	}

	return nil
}
