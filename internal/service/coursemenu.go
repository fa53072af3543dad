package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/restauranthjort/hjort-api/internal/cache"
	"github.com/restauranthjort/hjort-api/internal/domain"
	"github.com/restauranthjort/hjort-api/internal/repository"
)

type CourseMenuRepository interface {
	FindAll(ctx context.Context) ([]domain.CourseMenu, error)
	Exists(ctx context.Context, id uint) (bool, error)
	Update(ctx context.Context, menu domain.CourseMenu) error
}

type CourseMenuService struct {
	repo  CourseMenuRepository
	cache MenuCache
}

func NewCourseMenuService(repo CourseMenuRepository, cache MenuCache) *CourseMenuService {
	return &CourseMenuService{
		repo:  repo,
		cache: cache,
	}
}

func (s *CourseMenuService) GetAllCourseMenus(ctx context.Context) ([]domain.CourseMenu, error) {
	var cached []domain.CourseMenu
	if cacheGet(ctx, s.cache, cache.CourseMenusKey(), &cached) {
		return cached, nil
	}

	menus, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("s.repo.FindAll -> %w", err)
	}

	cacheSet(ctx, s.cache, cache.CourseMenusKey(), menus)

	return menus, nil
}

// UpdateCourseMenu rewrites the menu matching menu.ID. The id must reference
// an existing row; a row deleted concurrently between the check and the
// write surfaces as the same invalid-id error.
func (s *CourseMenuService) UpdateCourseMenu(ctx context.Context, menu domain.CourseMenu) error {
	exists, err := s.repo.Exists(ctx, menu.ID)
	if err != nil {
		return fmt.Errorf("s.repo.Exists -> %w", err)
	}
	if !exists {
		return domain.ErrInvalidCourseMenuID
	}

	if err := s.repo.Update(ctx, menu); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return domain.ErrInvalidCourseMenuID
		}

		return fmt.Errorf("s.repo.Update -> %w", err)
	}

	cacheInvalidate(ctx, s.cache, cache.CourseMenusKey())

	return nil
}
