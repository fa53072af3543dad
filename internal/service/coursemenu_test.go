package service

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/restauranthjort/hjort-api/internal/cache"
	"github.com/restauranthjort/hjort-api/internal/domain"
	"github.com/restauranthjort/hjort-api/internal/repository"
)

// fakeMenuCache is an in-memory MenuCache shared by the menu service tests.
type fakeMenuCache struct {
	store   map[string][]byte
	err     error
	deleted []string
}

func newFakeMenuCache() *fakeMenuCache {
	return &fakeMenuCache{
		store: map[string][]byte{},
	}
}

func (c *fakeMenuCache) GetJSON(_ context.Context, key string, dest interface{}) (bool, error) {
	if c.err != nil {
		return false, c.err
	}

	payload, ok := c.store[key]
	if !ok {
		return false, nil
	}

	return true, json.Unmarshal(payload, dest)
}

func (c *fakeMenuCache) SetJSON(_ context.Context, key string, v interface{}) error {
	if c.err != nil {
		return c.err
	}

	payload, err := json.Marshal(v)
	if err != nil {
		return err
	}
	c.store[key] = payload

	return nil
}

func (c *fakeMenuCache) Delete(_ context.Context, keys ...string) error {
	if c.err != nil {
		return c.err
	}

	for _, key := range keys {
		delete(c.store, key)
		c.deleted = append(c.deleted, key)
	}

	return nil
}

type fakeCourseMenuRepository struct {
	menus      []domain.CourseMenu
	findErr    error
	existsErr  error
	updateErr  error
	findCalls  int
	lastUpdate domain.CourseMenu
}

func (r *fakeCourseMenuRepository) FindAll(_ context.Context) ([]domain.CourseMenu, error) {
	r.findCalls++
	if r.findErr != nil {
		return nil, r.findErr
	}

	return r.menus, nil
}

func (r *fakeCourseMenuRepository) Exists(_ context.Context, id uint) (bool, error) {
	if r.existsErr != nil {
		return false, r.existsErr
	}

	for _, menu := range r.menus {
		if menu.ID == id {
			return true, nil
		}
	}

	return false, nil
}

func (r *fakeCourseMenuRepository) Update(_ context.Context, menu domain.CourseMenu) error {
	if r.updateErr != nil {
		return r.updateErr
	}
	r.lastUpdate = menu

	return nil
}

func TestCourseMenuService_GetAllCourseMenus(t *testing.T) {
	menus := []domain.CourseMenu{
		{ID: 1, Title: "3 courses", PriceTot: 425},
		{ID: 2, Title: "5 courses", PriceTot: 595},
	}
	repo := &fakeCourseMenuRepository{menus: menus}
	menuCache := newFakeMenuCache()
	svc := NewCourseMenuService(repo, menuCache)

	got, err := svc.GetAllCourseMenus(context.Background())
	require.NoError(t, err)
	assert.Equal(t, menus, got)
	assert.Equal(t, 1, repo.findCalls)

	// Second read is served from the cache.
	got, err = svc.GetAllCourseMenus(context.Background())
	require.NoError(t, err)
	assert.Equal(t, menus, got)
	assert.Equal(t, 1, repo.findCalls)
}

func TestCourseMenuService_GetAllCourseMenus_CacheFailureFallsBack(t *testing.T) {
	menus := []domain.CourseMenu{{ID: 1, Title: "3 courses", PriceTot: 425}}
	repo := &fakeCourseMenuRepository{menus: menus}
	menuCache := newFakeMenuCache()
	menuCache.err = errors.New("redis down")
	svc := NewCourseMenuService(repo, menuCache)

	got, err := svc.GetAllCourseMenus(context.Background())
	require.NoError(t, err)
	assert.Equal(t, menus, got)
}

func TestCourseMenuService_GetAllCourseMenus_NoCache(t *testing.T) {
	menus := []domain.CourseMenu{{ID: 1, Title: "3 courses", PriceTot: 425}}
	repo := &fakeCourseMenuRepository{menus: menus}
	svc := NewCourseMenuService(repo, nil)

	got, err := svc.GetAllCourseMenus(context.Background())
	require.NoError(t, err)
	assert.Equal(t, menus, got)
}

func TestCourseMenuService_UpdateCourseMenu(t *testing.T) {
	repo := &fakeCourseMenuRepository{menus: []domain.CourseMenu{{ID: 1, Title: "3 courses", PriceTot: 425}}}
	menuCache := newFakeMenuCache()
	svc := NewCourseMenuService(repo, menuCache)

	// Warm the cache, then update; the cached list must be dropped.
	_, err := svc.GetAllCourseMenus(context.Background())
	require.NoError(t, err)

	updated := domain.CourseMenu{ID: 1, Title: "4 courses", PriceTot: 495}
	err = svc.UpdateCourseMenu(context.Background(), updated)
	require.NoError(t, err)

	assert.Equal(t, updated, repo.lastUpdate)
	assert.Contains(t, menuCache.deleted, cache.CourseMenusKey())
	assert.NotContains(t, menuCache.store, cache.CourseMenusKey())
}

func TestCourseMenuService_UpdateCourseMenu_UnknownID(t *testing.T) {
	repo := &fakeCourseMenuRepository{}
	svc := NewCourseMenuService(repo, nil)

	err := svc.UpdateCourseMenu(context.Background(), domain.CourseMenu{ID: 99, Title: "ghost", PriceTot: 100})

	assert.ErrorIs(t, err, domain.ErrInvalidCourseMenuID)
}

// A row deleted between the existence check and the write reports the same
// invalid-id error as a row that never existed.
func TestCourseMenuService_UpdateCourseMenu_DeletedConcurrently(t *testing.T) {
	repo := &fakeCourseMenuRepository{
		menus:     []domain.CourseMenu{{ID: 1, Title: "3 courses", PriceTot: 425}},
		updateErr: repository.ErrNotFound,
	}
	svc := NewCourseMenuService(repo, nil)

	err := svc.UpdateCourseMenu(context.Background(), domain.CourseMenu{ID: 1, Title: "4 courses", PriceTot: 495})

	assert.ErrorIs(t, err, domain.ErrInvalidCourseMenuID)
}
