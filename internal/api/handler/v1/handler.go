package v1

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/restauranthjort/hjort-api/internal/api/handler/v1/response"
	"github.com/restauranthjort/hjort-api/internal/domain"
)

// HandleHealthcheck godoc
// @Summary      Healthcheck
// @Produce      plain
// @Success      200 {string} string "ok"
// @Router       / [get]
func HandleHealthcheck(ctx *gin.Context) {
	ctx.String(http.StatusOK, "ok")
}

func parseIDParam(ctx *gin.Context, name string) (uint, bool) {
	id, err := strconv.ParseUint(ctx.Param(name), 10, 32)
	if err != nil || id == 0 {
		response.RenderErr(ctx, response.ErrBadRequest(fmt.Errorf("%v must be a positive integer", name)))

		return 0, false
	}

	return uint(id), true
}

// renderServiceErr maps a service failure to the transport: domain errors
// become 400 with their field/message, everything else an opaque 500.
func renderServiceErr(ctx *gin.Context, err error) {
	var derr *domain.Error
	if errors.As(err, &derr) {
		response.RenderErr(ctx, response.ErrDomain(derr))

		return
	}

	response.RenderErr(ctx, response.ErrInternalServerError(err))
}
