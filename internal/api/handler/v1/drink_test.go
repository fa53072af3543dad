package v1

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/restauranthjort/hjort-api/internal/domain"
)

type fakeDrinkService struct {
	drinks     []domain.Drink
	createErr  error
	updateErr  error
	deleteErr  error
	created    []domain.Drink
	lastUpdate domain.Drink
	deletedIDs []uint
}

func (s *fakeDrinkService) GetAllDrinksByDrinkMenuID(_ context.Context, _ uint) ([]domain.Drink, error) {
	return s.drinks, nil
}

func (s *fakeDrinkService) CreateDrink(_ context.Context, drink domain.Drink) error {
	if s.createErr != nil {
		return s.createErr
	}
	s.created = append(s.created, drink)

	return nil
}

func (s *fakeDrinkService) UpdateDrink(_ context.Context, drink domain.Drink) error {
	if s.updateErr != nil {
		return s.updateErr
	}
	s.lastUpdate = drink

	return nil
}

func (s *fakeDrinkService) DeleteDrink(_ context.Context, id uint) error {
	if s.deleteErr != nil {
		return s.deleteErr
	}
	s.deletedIDs = append(s.deletedIDs, id)

	return nil
}

func newDrinkRouter(svc DrinkService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	handler := NewDrinkHandler(svc)
	router.GET("/api/public/drink/:drinkMenuID", handler.HandleGetDrinksByDrinkMenuID)
	router.POST("/api/protected/drink", handler.HandleCreateDrink)
	router.PUT("/api/protected/drink/:id", handler.HandleUpdateDrink)
	router.DELETE("/api/protected/drink/:id", handler.HandleDeleteDrink)

	return router
}

func TestDrinkHandler_HandleGetDrinksByDrinkMenuID(t *testing.T) {
	svc := &fakeDrinkService{
		drinks: []domain.Drink{
			{ID: 1, DrinkMenuID: 1, Name: "Riesling"},
		},
	}
	router := newDrinkRouter(svc)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/public/drink/1", nil)
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `[{"id":1,"drinkMenuId":1,"name":"Riesling"}]`, w.Body.String())
}

func TestDrinkHandler_HandleGetDrinksByDrinkMenuID_BadID(t *testing.T) {
	router := newDrinkRouter(&fakeDrinkService{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/public/drink/zero", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestDrinkHandler_HandleCreateDrink(t *testing.T) {
	svc := &fakeDrinkService{}
	router := newDrinkRouter(svc)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/protected/drink", strings.NewReader(`{"drinkMenuId":1,"name":"Mead"}`))
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusCreated, w.Code)
	require.Len(t, svc.created, 1)
	assert.Equal(t, domain.Drink{DrinkMenuID: 1, Name: "Mead"}, svc.created[0])
}

func TestDrinkHandler_HandleCreateDrink_UnknownMenu(t *testing.T) {
	svc := &fakeDrinkService{createErr: domain.ErrInvalidDrinkMenuID}
	router := newDrinkRouter(svc)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/protected/drink", strings.NewReader(`{"drinkMenuId":99,"name":"Mead"}`))
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.JSONEq(t, `{"field":"id","message":"The drink menu with this id does not exist!"}`, w.Body.String())
}

func TestDrinkHandler_HandleCreateDrink_BadInput(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{
			name: "missing name",
			body: `{"drinkMenuId":1}`,
		},
		{
			name: "missing menu id",
			body: `{"name":"Mead"}`,
		},
		{
			name: "name too long",
			body: `{"drinkMenuId":1,"name":"` + strings.Repeat("x", 201) + `"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := &fakeDrinkService{}
			router := newDrinkRouter(svc)

			w := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodPost, "/api/protected/drink", strings.NewReader(tt.body))
			router.ServeHTTP(w, req)

			assert.Equal(t, http.StatusBadRequest, w.Code)
			assert.Empty(t, svc.created)
		})
	}
}

func TestDrinkHandler_HandleUpdateDrink(t *testing.T) {
	svc := &fakeDrinkService{}
	router := newDrinkRouter(svc)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPut, "/api/protected/drink/2", strings.NewReader(`{"name":"Sparkling Mead"}`))
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusNoContent, w.Code)
	assert.Equal(t, domain.Drink{ID: 2, Name: "Sparkling Mead"}, svc.lastUpdate)
}

func TestDrinkHandler_HandleDeleteDrink(t *testing.T) {
	svc := &fakeDrinkService{}
	router := newDrinkRouter(svc)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodDelete, "/api/protected/drink/3", nil)
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusNoContent, w.Code)
	assert.Equal(t, []uint{3}, svc.deletedIDs)
}

func TestDrinkHandler_HandleDeleteDrink_UnknownID(t *testing.T) {
	svc := &fakeDrinkService{deleteErr: domain.ErrInvalidDrinkID}
	router := newDrinkRouter(svc)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodDelete, "/api/protected/drink/99", nil)
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.JSONEq(t, `{"field":"id","message":"The drink with this id does not exist!"}`, w.Body.String())
}
