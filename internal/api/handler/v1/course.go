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

type CourseService interface {
	GetAllCoursesByCourseMenuID(ctx context.Context, courseMenuID uint) ([]domain.Course, error)
	CreateCourse(ctx context.Context, course domain.Course) error
	UpdateCourse(ctx context.Context, course domain.Course) error
	DeleteCourse(ctx context.Context, id uint) error
}

type CourseHandler struct {
	svc CourseService
}

func NewCourseHandler(svc CourseService) *CourseHandler {
	return &CourseHandler{
		svc: svc,
	}
}

// HandleGetCoursesByCourseMenuID godoc
// @Summary      List courses of a course menu
// @Tags         course
// @Produce      json
// @Param        courseMenuID   path   int true "course menu ID"
// @Success      200      {array}    domain.Course
// @Failure      400      {object}   response.Err
// @Failure      500      {object}   response.Err
// @Router       /public/course/{courseMenuID} [get]
func (h *CourseHandler) HandleGetCoursesByCourseMenuID(ctx *gin.Context) {
	courseMenuID, ok := parseIDParam(ctx, "courseMenuID")
	if !ok {
		return
	}

	courses, err := h.svc.GetAllCoursesByCourseMenuID(ctx.Request.Context(), courseMenuID)
	if err != nil {
		err = fmt.Errorf("v1.HandleGetCoursesByCourseMenuID -> h.svc.GetAllCoursesByCourseMenuID -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	ctx.JSON(http.StatusOK, courses)
}

// HandleCreateCourse godoc
// @Summary      Create a course
// @Tags         course
// @Security     BearerAuth
// @Produce      json
// @Param        request   body      request.CreateCourseRequest true "request body"
// @Success      201
// @Failure      400      {object}   response.Err
// @Failure      401
// @Failure      500      {object}   response.Err
// @Router       /protected/course [post]
func (h *CourseHandler) HandleCreateCourse(ctx *gin.Context) {
	req := request.CreateCourseRequest{}
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	if err := req.Validate(); err != nil {
		response.RenderValidationErr(ctx, err)

		return
	}

	err := h.svc.CreateCourse(ctx.Request.Context(), domain.Course{
		CourseMenuID: req.CourseMenuID,
		Name:         req.Name,
		Type:         req.Type,
	})
	if err != nil {
		renderServiceErr(ctx, fmt.Errorf("v1.HandleCreateCourse -> h.svc.CreateCourse -> %w", err))

		return
	}

	ctx.Status(http.StatusCreated)
}

// HandleUpdateCourse godoc
// @Summary      Update a course
// @Tags         course
// @Security     BearerAuth
// @Produce      json
// @Param        id        path      int true "course ID"
// @Param        request   body      request.UpdateCourseRequest true "request body"
// @Success      204
// @Failure      400      {object}   response.Err
// @Failure      401
// @Failure      500      {object}   response.Err
// @Router       /protected/course/{id} [put]
func (h *CourseHandler) HandleUpdateCourse(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	req := request.UpdateCourseRequest{}
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	if err := req.Validate(); err != nil {
		response.RenderValidationErr(ctx, err)

		return
	}

	err := h.svc.UpdateCourse(ctx.Request.Context(), domain.Course{
		ID:   id,
		Name: req.Name,
		Type: req.Type,
	})
	if err != nil {
		renderServiceErr(ctx, fmt.Errorf("v1.HandleUpdateCourse -> h.svc.UpdateCourse -> %w", err))

		return
	}

	ctx.Status(http.StatusNoContent)
}

// HandleDeleteCourse godoc
// @Summary      Delete a course
// @Tags         course
// @Security     BearerAuth
// @Produce      json
// @Param        id   path   int true "course ID"
// @Success      204
// @Failure      400      {object}   response.Err
// @Failure      401
// @Failure      500      {object}   response.Err
// @Router       /protected/course/{id} [delete]
func (h *CourseHandler) HandleDeleteCourse(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	if err := h.svc.DeleteCourse(ctx.Request.Context(), id); err != nil {
		renderServiceErr(ctx, fmt.Errorf("v1.HandleDeleteCourse -> h.svc.DeleteCourse -> %w", err))

		return
	}

	ctx.Status(http.StatusNoContent)
}
