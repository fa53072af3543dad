package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/restauranthjort/hjort-api/internal/cache"
	"github.com/restauranthjort/hjort-api/internal/domain"
	"github.com/restauranthjort/hjort-api/internal/repository"
)

type DrinkMenuRepository interface {
	FindAll(ctx context.Context) ([]domain.DrinkMenu, error)
	Exists(ctx context.Context, id uint) (bool, error)
	Update(ctx context.Context, menu domain.DrinkMenu) error
}

type DrinkMenuService struct {
	repo  DrinkMenuRepository
	cache MenuCache
}

func NewDrinkMenuService(repo DrinkMenuRepository, cache MenuCache) *DrinkMenuService {
	return &DrinkMenuService{
		repo:  repo,
		cache: cache,
	}
}

func (s *DrinkMenuService) GetAllDrinkMenus(ctx context.Context) ([]domain.DrinkMenu, error) {
	var cached []domain.DrinkMenu
	if cacheGet(ctx, s.cache, cache.DrinkMenusKey(), &cached) {
		return cached, nil
	}

	menus, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("s.repo.FindAll -> %w", err)
	}

	cacheSet(ctx, s.cache, cache.DrinkMenusKey(), menus)

	return menus, nil
}

func (s *DrinkMenuService) UpdateDrinkMenu(ctx context.Context, menu domain.DrinkMenu) error {
	exists, err := s.repo.Exists(ctx, menu.ID)
	if err != nil {
		return fmt.Errorf("s.repo.Exists -> %w", err)
	}
	if !exists {
		return domain.ErrInvalidDrinkMenuID
	}

	if err := s.repo.Update(ctx, menu); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return domain.ErrInvalidDrinkMenuID
		}

		return fmt.Errorf("s.repo.Update -> %w", err)
	}

	cacheInvalidate(ctx, s.cache, cache.DrinkMenusKey())

	return nil
}
