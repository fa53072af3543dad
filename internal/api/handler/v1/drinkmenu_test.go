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

type fakeDrinkMenuService struct {
	menus      []domain.DrinkMenu
	getErr     error
	updateErr  error
	lastUpdate domain.DrinkMenu
}

func (s *fakeDrinkMenuService) GetAllDrinkMenus(_ context.Context) ([]domain.DrinkMenu, error) {
	return s.menus, s.getErr
}

func (s *fakeDrinkMenuService) UpdateDrinkMenu(_ context.Context, menu domain.DrinkMenu) error {
	if s.updateErr != nil {
		return s.updateErr
	}
	s.lastUpdate = menu

	return nil
}

func newDrinkMenuRouter(svc DrinkMenuService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	handler := NewDrinkMenuHandler(svc)
	router.GET("/api/public/drink-menu", handler.HandleGetDrinkMenus)
	router.PUT("/api/protected/drink-menu/:id", handler.HandleUpdateDrinkMenu)

	return router
}

func TestDrinkMenuHandler_HandleGetDrinkMenus(t *testing.T) {
	svc := &fakeDrinkMenuService{
		menus: []domain.DrinkMenu{
			{ID: 1, Title: "Wine pairing", Subtitle: "3 glasses", PriceTot: 325},
			{ID: 2, Title: "Juice pairing", Subtitle: "3 glasses", PriceTot: 225},
		},
	}
	router := newDrinkMenuRouter(svc)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/public/drink-menu", nil)
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `[
		{"id":1,"title":"Wine pairing","subtitle":"3 glasses","priceTot":325},
		{"id":2,"title":"Juice pairing","subtitle":"3 glasses","priceTot":225}
	]`, w.Body.String())
}

func TestDrinkMenuHandler_HandleUpdateDrinkMenu(t *testing.T) {
	svc := &fakeDrinkMenuService{}
	router := newDrinkMenuRouter(svc)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPut, "/api/protected/drink-menu/1", strings.NewReader(`{"title":"Wine pairing","subtitle":"5 glasses","priceTot":495}`))
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusNoContent, w.Code)
	assert.Equal(t, domain.DrinkMenu{ID: 1, Title: "Wine pairing", Subtitle: "5 glasses", PriceTot: 495}, svc.lastUpdate)
}

func TestDrinkMenuHandler_HandleUpdateDrinkMenu_UnknownID(t *testing.T) {
	svc := &fakeDrinkMenuService{updateErr: domain.ErrInvalidDrinkMenuID}
	router := newDrinkMenuRouter(svc)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPut, "/api/protected/drink-menu/99", strings.NewReader(`{"title":"ghost","subtitle":"none","priceTot":100}`))
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.JSONEq(t, `{"field":"id","message":"The drink menu with this id does not exist!"}`, w.Body.String())
}

func TestDrinkMenuHandler_HandleUpdateDrinkMenu_BadInput(t *testing.T) {
	tests := []struct {
		name   string
		target string
		body   string
	}{
		{
			name:   "id not a number",
			target: "/api/protected/drink-menu/abc",
			body:   `{"title":"Wine pairing","subtitle":"3 glasses","priceTot":325}`,
		},
		{
			name:   "id zero",
			target: "/api/protected/drink-menu/0",
			body:   `{"title":"Wine pairing","subtitle":"3 glasses","priceTot":325}`,
		},
		{
			name:   "price zero",
			target: "/api/protected/drink-menu/1",
			body:   `{"title":"Wine pairing","subtitle":"3 glasses","priceTot":0}`,
		},
		{
			name:   "title too long",
			target: "/api/protected/drink-menu/1",
			body:   `{"title":"` + strings.Repeat("x", 51) + `","subtitle":"3 glasses","priceTot":325}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := &fakeDrinkMenuService{}
			router := newDrinkMenuRouter(svc)

			w := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodPut, tt.target, strings.NewReader(tt.body))
			router.ServeHTTP(w, req)

			assert.Equal(t, http.StatusBadRequest, w.Code)
			assert.Zero(t, svc.lastUpdate)
		})
	}
}
