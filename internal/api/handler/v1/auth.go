package v1

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/restauranthjort/hjort-api/internal/api/handler/v1/request"
	"github.com/restauranthjort/hjort-api/internal/api/handler/v1/response"
	"github.com/restauranthjort/hjort-api/internal/domain"
)

type AuthService interface {
	Authenticate(ctx context.Context, username, password string) (string, error)
}

type AuthHandler struct {
	svc AuthService
}

func NewAuthHandler(svc AuthService) *AuthHandler {
	return &AuthHandler{
		svc: svc,
	}
}

// HandleLogin godoc
// @Summary      Authenticate the admin user
// @Tags         admin
// @Produce      json
// @Param        request   body      request.LoginRequest true "request body"
// @Success      200      {object}   response.LoginResponse
// @Failure      400      {object}   response.Err
// @Failure      401      {object}   response.Err
// @Failure      500      {object}   response.Err
// @Router       /admin/login [post]
func (h *AuthHandler) HandleLogin(ctx *gin.Context) {
	req := request.LoginRequest{}
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	if err := req.Validate(); err != nil {
		response.RenderValidationErr(ctx, err)

		return
	}

	token, err := h.svc.Authenticate(ctx.Request.Context(), req.Username, req.Password)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidCredentials) {
			response.RenderErr(ctx, response.ErrWrongCredentials(domain.ErrInvalidCredentials))

			return
		}

		err = fmt.Errorf("v1.HandleLogin -> h.svc.Authenticate -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	ctx.JSON(http.StatusOK, response.LoginResponse{
		Token: token,
	})
}
