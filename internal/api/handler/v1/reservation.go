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

type ReservationService interface {
	GetAllReservations(ctx context.Context) ([]domain.Reservation, error)
	CreateReservation(ctx context.Context, reservation domain.Reservation, reservationDate string) error
	DeleteReservation(ctx context.Context, id uint) error
}

type ReservationHandler struct {
	svc ReservationService
}

func NewReservationHandler(svc ReservationService) *ReservationHandler {
	return &ReservationHandler{
		svc: svc,
	}
}

// HandleGetReservations godoc
// @Summary      List all reservations, earliest reservation date first
// @Tags         reservation
// @Security     BearerAuth
// @Produce      json
// @Success      200      {array}    domain.Reservation
// @Failure      401
// @Failure      500      {object}   response.Err
// @Router       /protected/reservations [get]
func (h *ReservationHandler) HandleGetReservations(ctx *gin.Context) {
	reservations, err := h.svc.GetAllReservations(ctx.Request.Context())
	if err != nil {
		err = fmt.Errorf("v1.HandleGetReservations -> h.svc.GetAllReservations -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	ctx.JSON(http.StatusOK, reservations)
}

// HandleCreateReservation godoc
// @Summary      Create a reservation
// @Tags         reservation
// @Produce      json
// @Param        request   body      request.CreateReservationRequest true "request body"
// @Success      201
// @Failure      400      {object}   response.Err
// @Failure      500      {object}   response.Err
// @Router       /public/reservations [post]
func (h *ReservationHandler) HandleCreateReservation(ctx *gin.Context) {
	req := request.CreateReservationRequest{}
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	if err := req.Validate(); err != nil {
		response.RenderValidationErr(ctx, err)

		return
	}

	reservation := domain.Reservation{
		FirstName:   req.FirstName,
		LastName:    req.LastName,
		PhoneNumber: req.PhoneNumber,
		Email:       req.Email,
		Message:     req.Message,
		GuestAmount: req.GuestAmount,
	}
	if err := h.svc.CreateReservation(ctx.Request.Context(), reservation, req.ReservationDate); err != nil {
		renderServiceErr(ctx, fmt.Errorf("v1.HandleCreateReservation -> h.svc.CreateReservation -> %w", err))

		return
	}

	ctx.Status(http.StatusCreated)
}

// HandleDeleteReservation godoc
// @Summary      Delete a reservation
// @Tags         reservation
// @Security     BearerAuth
// @Produce      json
// @Param        id   path   int true "reservation ID"
// @Success      204
// @Failure      400      {object}   response.Err
// @Failure      401
// @Failure      500      {object}   response.Err
// @Router       /protected/reservations/{id} [delete]
func (h *ReservationHandler) HandleDeleteReservation(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	if err := h.svc.DeleteReservation(ctx.Request.Context(), id); err != nil {
		renderServiceErr(ctx, fmt.Errorf("v1.HandleDeleteReservation -> h.svc.DeleteReservation -> %w", err))

		return
	}

	ctx.Status(http.StatusNoContent)
}
