package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/restauranthjort/hjort-api/internal/domain"
	"github.com/restauranthjort/hjort-api/internal/repository/dao"
)

type CourseDAO interface {
	FindAllByCourseMenuID(ctx context.Context, courseMenuID uint) ([]dao.Course, error)
	Insert(ctx context.Context, course dao.Course) error
	Update(ctx context.Context, course dao.Course) error
	Delete(ctx context.Context, id uint) error
	Exists(ctx context.Context, id uint) (bool, error)
}

type CourseRepository struct {
	dao CourseDAO
}

func NewCourseRepository(dao CourseDAO) *CourseRepository {
	return &CourseRepository{
		dao: dao,
	}
}

func (r *CourseRepository) FindAllByCourseMenuID(ctx context.Context, courseMenuID uint) ([]domain.Course, error) {
	found, err := r.dao.FindAllByCourseMenuID(ctx, courseMenuID)
	if err != nil {
		return nil, fmt.Errorf("r.dao.FindAllByCourseMenuID -> %w", err)
	}

	courses := make([]domain.Course, 0, len(found))
	for _, c := range found {
		courses = append(courses, r.daoToDomain(c))
	}

	return courses, nil
}

func (r *CourseRepository) Create(ctx context.Context, course domain.Course) error {
	err := r.dao.Insert(ctx, dao.Course{
		CourseMenuID: course.CourseMenuID,
		Name:         course.Name,
		Type:         course.Type,
	})
	if err != nil {
		return fmt.Errorf("r.dao.Insert -> %w", err)
	}

	return nil
}

func (r *CourseRepository) Update(ctx context.Context, course domain.Course) error {
	err := r.dao.Update(ctx, dao.Course{
		ID:   course.ID,
		Name: course.Name,
		Type: course.Type,
	})
	if err != nil {
		if errors.Is(err, dao.ErrNotFound) {
			return ErrNotFound
		}

		return fmt.Errorf("r.dao.Update -> %w", err)
	}

	return nil
}

func (r *CourseRepository) Delete(ctx context.Context, id uint) error {
	err := r.dao.Delete(ctx, id)
	if err != nil {
		if errors.Is(err, dao.ErrNotFound) {
			return ErrNotFound
		}

		return fmt.Errorf("r.dao.Delete -> %w", err)
	}

	return nil
}

func (r *CourseRepository) Exists(ctx context.Context, id uint) (bool, error) {
	exists, err := r.dao.Exists(ctx, id)
	if err != nil {
		return false, fmt.Errorf("r.dao.Exists -> %w", err)
	}

	return exists, nil
}

func (r *CourseRepository) daoToDomain(c dao.Course) domain.Course {
	return domain.Course{
		ID:           c.ID,
		CourseMenuID: c.CourseMenuID,
		Name:         c.Name,
		Type:         c.Type,
	}
}
