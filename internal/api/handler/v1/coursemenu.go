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

type CourseMenuService interface {
	GetAllCourseMenus(ctx context.Context) ([]domain.CourseMenu, error)
	UpdateCourseMenu(ctx context.Context, menu domain.CourseMenu) error
}

type CourseMenuHandler struct {
	svc CourseMenuService
}

func NewCourseMenuHandler(svc CourseMenuService) *CourseMenuHandler {
	return &CourseMenuHandler{
		svc: svc,
	}
}

// HandleGetCourseMenus godoc
// @Summary      List all course menus
// @Tags         course-menu
// @Produce      json
// @Success      200      {array}    domain.CourseMenu
// @Failure      500      {object}   response.Err
// @Router       /public/course-menu [get]
func (h *CourseMenuHandler) HandleGetCourseMenus(ctx *gin.Context) {
	menus, err := h.svc.GetAllCourseMenus(ctx.Request.Context())
	if err != nil {
		err = fmt.Errorf("v1.HandleGetCourseMenus -> h.svc.GetAllCourseMenus -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	ctx.JSON(http.StatusOK, menus)
}

// HandleUpdateCourseMenu godoc
// @Summary      Update a course menu
// @Tags         course-menu
// @Security     BearerAuth
// @Produce      json
// @Param        id        path      int true "course menu ID"
// @Param        request   body      request.UpdateCourseMenuRequest true "request body"
// @Success      204
// @Failure      400      {object}   response.Err
// @Failure      401
// @Failure      500      {object}   response.Err
// @Router       /protected/course-menu/{id} [put]
func (h *CourseMenuHandler) HandleUpdateCourseMenu(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	req := request.UpdateCourseMenuRequest{}
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	if err := req.Validate(); err != nil {
		response.RenderValidationErr(ctx, err)

		return
	}

	err := h.svc.UpdateCourseMenu(ctx.Request.Context(), domain.CourseMenu{
		ID:       id,
		Title:    req.Title,
		PriceTot: req.PriceTot,
	})
	if err != nil {
		renderServiceErr(ctx, fmt.Errorf("v1.HandleUpdateCourseMenu -> h.svc.UpdateCourseMenu -> %w", err))

		return
	}

	ctx.Status(http.StatusNoContent)
}
