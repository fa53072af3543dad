package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/restauranthjort/hjort-api/internal/domain"
	"github.com/restauranthjort/hjort-api/internal/repository"
)

type fakeCourseRepository struct {
	courses    []domain.Course
	createErr  error
	updateErr  error
	deleteErr  error
	created    []domain.Course
	lastUpdate domain.Course
	deletedIDs []uint
}

func (r *fakeCourseRepository) FindAllByCourseMenuID(_ context.Context, courseMenuID uint) ([]domain.Course, error) {
	var matched []domain.Course
	for _, course := range r.courses {
		if course.CourseMenuID == courseMenuID {
			matched = append(matched, course)
		}
	}

	return matched, nil
}

func (r *fakeCourseRepository) Create(_ context.Context, course domain.Course) error {
	if r.createErr != nil {
		return r.createErr
	}
	r.created = append(r.created, course)

	return nil
}

func (r *fakeCourseRepository) Update(_ context.Context, course domain.Course) error {
	if r.updateErr != nil {
		return r.updateErr
	}
	r.lastUpdate = course

	return nil
}

func (r *fakeCourseRepository) Delete(_ context.Context, id uint) error {
	if r.deleteErr != nil {
		return r.deleteErr
	}
	r.deletedIDs = append(r.deletedIDs, id)

	return nil
}

func (r *fakeCourseRepository) Exists(_ context.Context, id uint) (bool, error) {
	for _, course := range r.courses {
		if course.ID == id {
			return true, nil
		}
	}

	return false, nil
}

type fakeExistenceChecker struct {
	existing map[uint]bool
}

func (c *fakeExistenceChecker) Exists(_ context.Context, id uint) (bool, error) {
	return c.existing[id], nil
}

func TestCourseService_GetAllCoursesByCourseMenuID(t *testing.T) {
	repo := &fakeCourseRepository{
		courses: []domain.Course{
			{ID: 1, CourseMenuID: 1, Name: "Scallop", Type: domain.CourseTypeStarter},
			{ID: 2, CourseMenuID: 1, Name: "Venison", Type: domain.CourseTypeMain},
			{ID: 3, CourseMenuID: 2, Name: "Sorbet", Type: domain.CourseTypeDessert},
		},
	}
	svc := NewCourseService(repo, &fakeExistenceChecker{})

	courses, err := svc.GetAllCoursesByCourseMenuID(context.Background(), 1)
	require.NoError(t, err)

	assert.Len(t, courses, 2)
	for _, course := range courses {
		assert.Equal(t, uint(1), course.CourseMenuID)
	}
}

func TestCourseService_CreateCourse(t *testing.T) {
	repo := &fakeCourseRepository{}
	svc := NewCourseService(repo, &fakeExistenceChecker{existing: map[uint]bool{1: true}})

	course := domain.Course{CourseMenuID: 1, Name: "Venison", Type: domain.CourseTypeMain}
	err := svc.CreateCourse(context.Background(), course)
	require.NoError(t, err)

	require.Len(t, repo.created, 1)
	assert.Equal(t, course, repo.created[0])
}

func TestCourseService_CreateCourse_UnknownMenu(t *testing.T) {
	repo := &fakeCourseRepository{}
	svc := NewCourseService(repo, &fakeExistenceChecker{})

	err := svc.CreateCourse(context.Background(), domain.Course{CourseMenuID: 99, Name: "Venison", Type: domain.CourseTypeMain})

	assert.ErrorIs(t, err, domain.ErrInvalidCourseMenuID)
	assert.Empty(t, repo.created)
}

func TestCourseService_UpdateCourse(t *testing.T) {
	repo := &fakeCourseRepository{
		courses: []domain.Course{{ID: 1, CourseMenuID: 1, Name: "Scallop", Type: domain.CourseTypeStarter}},
	}
	svc := NewCourseService(repo, &fakeExistenceChecker{})

	updated := domain.Course{ID: 1, Name: "King Scallop", Type: domain.CourseTypeStarter}
	err := svc.UpdateCourse(context.Background(), updated)
	require.NoError(t, err)

	assert.Equal(t, updated, repo.lastUpdate)
}

func TestCourseService_UpdateCourse_UnknownID(t *testing.T) {
	svc := NewCourseService(&fakeCourseRepository{}, &fakeExistenceChecker{})

	err := svc.UpdateCourse(context.Background(), domain.Course{ID: 99, Name: "Ghost", Type: domain.CourseTypeMain})

	assert.ErrorIs(t, err, domain.ErrInvalidCourseID)
}

func TestCourseService_UpdateCourse_DeletedConcurrently(t *testing.T) {
	repo := &fakeCourseRepository{
		courses:   []domain.Course{{ID: 1, CourseMenuID: 1, Name: "Scallop", Type: domain.CourseTypeStarter}},
		updateErr: repository.ErrNotFound,
	}
	svc := NewCourseService(repo, &fakeExistenceChecker{})

	err := svc.UpdateCourse(context.Background(), domain.Course{ID: 1, Name: "King Scallop", Type: domain.CourseTypeStarter})

	assert.ErrorIs(t, err, domain.ErrInvalidCourseID)
}

func TestCourseService_DeleteCourse(t *testing.T) {
	repo := &fakeCourseRepository{
		courses: []domain.Course{{ID: 1, CourseMenuID: 1, Name: "Scallop", Type: domain.CourseTypeStarter}},
	}
	svc := NewCourseService(repo, &fakeExistenceChecker{})

	err := svc.DeleteCourse(context.Background(), 1)
	require.NoError(t, err)

	assert.Equal(t, []uint{1}, repo.deletedIDs)
}

func TestCourseService_DeleteCourse_UnknownID(t *testing.T) {
	repo := &fakeCourseRepository{}
	svc := NewCourseService(repo, &fakeExistenceChecker{})

	err := svc.DeleteCourse(context.Background(), 99)

	assert.ErrorIs(t, err, domain.ErrInvalidCourseID)
	assert.Empty(t, repo.deletedIDs)
}
