package response

import (
	"errors"
	"net/http"
	"sort"

	"github.com/gin-gonic/gin"
	validation "github.com/go-ozzo/ozzo-validation"
	"go.uber.org/zap"

	"github.com/restauranthjort/hjort-api/internal/domain"
)

// Err is the body every failed request renders: the field the failure refers
// to and a human-readable message. Internal detail stays in the log.
type Err struct {
	Field   string `json:"field"`
	Message string `json:"message"`

	statusCode int
	err        error
}

func ErrBadRequest(err error) *Err {
	return &Err{
		Field:      "body",
		Message:    err.Error(),
		statusCode: http.StatusBadRequest,
		err:        err,
	}
}

func ErrDomain(derr *domain.Error) *Err {
	return &Err{
		Field:      derr.Field,
		Message:    derr.Message,
		statusCode: http.StatusBadRequest,
		err:        derr,
	}
}

func ErrWrongCredentials(derr *domain.Error) *Err {
	return &Err{
		Field:      derr.Field,
		Message:    derr.Message,
		statusCode: http.StatusUnauthorized,
		err:        derr,
	}
}

// ErrInternalServerError hides the cause from the client; the wrapped error
// is logged with full detail instead.
func ErrInternalServerError(err error) *Err {
	return &Err{
		Field:      "server",
		Message:    "Internal Server Error",
		statusCode: http.StatusInternalServerError,
		err:        err,
	}
}

func RenderErr(ctx *gin.Context, e *Err) {
	if e.statusCode >= http.StatusInternalServerError {
		zap.L().Error("request failed", zap.String("path", ctx.FullPath()), zap.Error(e.err))
	}

	ctx.AbortWithStatusJSON(e.statusCode, e)
}

// RenderValidationErr renders ozzo validation failures as a list of field
// errors, one entry per offending field.
func RenderValidationErr(ctx *gin.Context, err error) {
	var verrs validation.Errors
	if !errors.As(err, &verrs) {
		RenderErr(ctx, ErrBadRequest(err))

		return
	}

	out := make([]*Err, 0, len(verrs))
	for field, ferr := range verrs {
		out = append(out, &Err{Field: field, Message: ferr.Error()})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Field < out[j].Field })

	ctx.AbortWithStatusJSON(http.StatusBadRequest, out)
}
