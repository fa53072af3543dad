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

type DrinkService interface {
	GetAllDrinksByDrinkMenuID(ctx context.Context, drinkMenuID uint) ([]domain.Drink, error)
	CreateDrink(ctx context.Context, drink domain.Drink) error
	UpdateDrink(ctx context.Context, drink domain.Drink) error
	DeleteDrink(ctx context.Context, id uint) error
}

type DrinkHandler struct {
	svc DrinkService
}

func NewDrinkHandler(svc DrinkService) *DrinkHandler {
	return &DrinkHandler{
		svc: svc,
	}
}

// HandleGetDrinksByDrinkMenuID godoc
// @Summary      List drinks of a drink menu
// @Tags         drink
// @Produce      json
// @Param        drinkMenuID   path   int true "drink menu ID"
// @Success      200      {array}    domain.Drink
// @Failure      400      {object}   response.Err
// @Failure      500      {object}   response.Err
// @Router       /public/drink/{drinkMenuID} [get]
func (h *DrinkHandler) HandleGetDrinksByDrinkMenuID(ctx *gin.Context) {
	drinkMenuID, ok := parseIDParam(ctx, "drinkMenuID")
	if !ok {
		return
	}

	drinks, err := h.svc.GetAllDrinksByDrinkMenuID(ctx.Request.Context(), drinkMenuID)
	if err != nil {
		err = fmt.Errorf("v1.HandleGetDrinksByDrinkMenuID -> h.svc.GetAllDrinksByDrinkMenuID -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	ctx.JSON(http.StatusOK, drinks)
}

// HandleCreateDrink godoc
// @Summary      Create a drink
// @Tags         drink
// @Security     BearerAuth
// @Produce      json
// @Param        request   body      request.CreateDrinkRequest true "request body"
// @Success      201
// @Failure      400      {object}   response.Err
// @Failure      401
// @Failure      500      {object}   response.Err
// @Router       /protected/drink [post]
func (h *DrinkHandler) HandleCreateDrink(ctx *gin.Context) {
	req := request.CreateDrinkRequest{}
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	if err := req.Validate(); err != nil {
		response.RenderValidationErr(ctx, err)

		return
	}

	err := h.svc.CreateDrink(ctx.Request.Context(), domain.Drink{
		DrinkMenuID: req.DrinkMenuID,
		Name:        req.Name,
	})
	if err != nil {
		renderServiceErr(ctx, fmt.Errorf("v1.HandleCreateDrink -> h.svc.CreateDrink -> %w", err))

		return
	}

	ctx.Status(http.StatusCreated)
}

// HandleUpdateDrink godoc
// @Summary      Update a drink
// @Tags         drink
// @Security     BearerAuth
// @Produce      json
// @Param        id        path      int true "drink ID"
// @Param        request   body      request.UpdateDrinkRequest true "request body"
// @Success      204
// @Failure      400      {object}   response.Err
// @Failure      401
// @Failure      500      {object}   response.Err
// @Router       /protected/drink/{id} [put]
func (h *DrinkHandler) HandleUpdateDrink(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	req := request.UpdateDrinkRequest{}
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	if err := req.Validate(); err != nil {
		response.RenderValidationErr(ctx, err)

		return
	}

	err := h.svc.UpdateDrink(ctx.Request.Context(), domain.Drink{
		ID:   id,
		Name: req.Name,
	})
	if err != nil {
		renderServiceErr(ctx, fmt.Errorf("v1.HandleUpdateDrink -> h.svc.UpdateDrink -> %w", err))

		return
	}

	ctx.Status(http.StatusNoContent)
}

// HandleDeleteDrink godoc
// @Summary      Delete a drink
// @Tags         drink
// @Security     BearerAuth
// @Produce      json
// @Param        id   path   int true "drink ID"
// @Success      204
// @Failure      400      {object}   response.Err
// @Failure      401
// @Failure      500      {object}   response.Err
// @Router       /protected/drink/{id} [delete]
func (h *DrinkHandler) HandleDeleteDrink(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	if err := h.svc.DeleteDrink(ctx.Request.Context(), id); err != nil {
		renderServiceErr(ctx, fmt.Errorf("v1.HandleDeleteDrink -> h.svc.DeleteDrink -> %w", err))

		return
	}

	ctx.Status(http.StatusNoContent)
}
