package v1

import (
	"context"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/restauranthjort/hjort-api/internal/api/handler/v1/request"
	"github.com/restauranthjort/hjort-api/internal/api/handler/v1/response"
	"github.com/restauranthjort/hjort-api/internal/domain"
)

type DrinkMenuService interface {
	GetAllDrinkMenus(ctx context.Context) ([]domain.DrinkMenu, error)
	UpdateDrinkMenu(ctx context.Context, menu domain.DrinkMenu) error
}

type DrinkMenuHandler struct {
	svc DrinkMenuService
}

func NewDrinkMenuHandler(svc DrinkMenuService) *DrinkMenuHandler {
	return &DrinkMenuHandler{
		svc: svc,
	}
}

// HandleGetDrinkMenus godoc
// @Summary      List all drink menus
// @Tags         drink-menu
// @Produce      json
// @Success      200      {array}    domain.DrinkMenu
// @Failure      500      {object}   response.Err
// @Router       /public/drink-menu [get]
func (h *DrinkMenuHandler) HandleGetDrinkMenus(ctx *gin.Context) {
	menus, err := h.svc.GetAllDrinkMenus(ctx.Request.Context())
	if err != nil {
		err = fmt.Errorf("v1.HandleGetDrinkMenus -> h.svc.GetAllDrinkMenus -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	ctx.JSON(http.StatusOK, menus)
}

// HandleUpdateDrinkMenu godoc
// @Summary      Update a drink menu
// @Tags         drink-menu
// @Security     BearerAuth
// @Produce      json
// @Param        id        path      int true "drink menu ID"
// @Param        request   body      request.UpdateDrinkMenuRequest true "request body"
// @Success      204
// @Failure      400      {object}   response.Err
// @Failure      401
// @Failure      500      {object}   response.Err
// @Router       /protected/drink-menu/{id} [put]
func (h *DrinkMenuHandler) HandleUpdateDrinkMenu(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	req := request.UpdateDrinkMenuRequest{}
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	if err := req.Validate(); err != nil {
		response.RenderValidationErr(ctx, err)

		return
	}

	err := h.svc.UpdateDrinkMenu(ctx.Request.Context(), domain.DrinkMenu{
		ID:       id,
		Title:    req.Title,
		Subtitle: req.Subtitle,
		PriceTot: req.PriceTot,
	})
	if err != nil {
		renderServiceErr(ctx, fmt.Errorf("v1.HandleUpdateDrinkMenu -> h.svc.UpdateDrinkMenu -> %w", err))

		return
	}

	ctx.Status(http.StatusNoContent)
}
