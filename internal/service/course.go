package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/restauranthjort/hjort-api/internal/domain"
	"github.com/restauranthjort/hjort-api/internal/repository"
)

type CourseRepository interface {
	FindAllByCourseMenuID(ctx context.Context, courseMenuID uint) ([]domain.Course, error)
	Create(ctx context.Context, course domain.Course) error
	Update(ctx context.Context, course domain.Course) error
	Delete(ctx context.Context, id uint) error
	Exists(ctx context.Context, id uint) (bool, error)
}

// CourseMenuExistenceChecker guards course creation against dangling menu ids.
type CourseMenuExistenceChecker interface {
	Exists(ctx context.Context, id uint) (bool, error)
}

type CourseService struct {
	repo     CourseRepository
	menuRepo CourseMenuExistenceChecker
}

func NewCourseService(repo CourseRepository, menuRepo CourseMenuExistenceChecker) *CourseService {
	return &CourseService{
		repo:     repo,
		menuRepo: menuRepo,
	}
}

func (s *CourseService) GetAllCoursesByCourseMenuID(ctx context.Context, courseMenuID uint) ([]domain.Course, error) {
	courses, err := s.repo.FindAllByCourseMenuID(ctx, courseMenuID)
	if err != nil {
		return nil, fmt.Errorf("s.repo.FindAllByCourseMenuID -> %w", err)
	}

	return courses, nil
}

func (s *CourseService) CreateCourse(ctx context.Context, course domain.Course) error {
	menuExists, err := s.menuRepo.Exists(ctx, course.CourseMenuID)
	if err != nil {
		return fmt.Errorf("s.menuRepo.Exists -> %w", err)
	}
	if !menuExists {
		return domain.ErrInvalidCourseMenuID
	}

	if err := s.repo.Create(ctx, course); err != nil {
		return fmt.Errorf("s.repo.Create -> %w", err)
	}

	return nil
}

func (s *CourseService) UpdateCourse(ctx context.Context, course domain.Course) error {
	exists, err := s.repo.Exists(ctx, course.ID)
	if err != nil {
		return fmt.Errorf("s.repo.Exists -> %w", err)
	}
	if !exists {
		return domain.ErrInvalidCourseID
	}

	if err := s.repo.Update(ctx, course); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return domain.ErrInvalidCourseID
		}

		return fmt.Errorf("s.repo.Update -> %w", err)
	}

	return nil
}

func (s *CourseService) DeleteCourse(ctx context.Context, id uint) error {
	exists, err := s.repo.Exists(ctx, id)
	if err != nil {
		return fmt.Errorf("s.repo.Exists -> %w", err)
	}
	if !exists {
		return domain.ErrInvalidCourseID
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return domain.ErrInvalidCourseID
		}

		return fmt.Errorf("s.repo.Delete -> %w", err)
	}

	return nil
}
