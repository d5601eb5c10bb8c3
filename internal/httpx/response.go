package httpx

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/inkwell-dev/inkwell/internal/apperr"
)

// Envelope is the shape of every response this API sends.
type Envelope struct {
	Success bool        `json:"success"`
	Message string      `json:"message"`
	Data    interface{} `json:"data,omitempty"`
	Error   interface{} `json:"error,omitempty"`
	Meta    interface{} `json:"meta,omitempty"`
}

func OK(ctx *gin.Context, data interface{}, message string) {
	ctx.JSON(http.StatusOK, Envelope{Success: true, Message: message, Data: data})
}

func OKWithMeta(ctx *gin.Context, data interface{}, message string, meta interface{}) {
	ctx.JSON(http.StatusOK, Envelope{Success: true, Message: message, Data: data, Meta: meta})
}

func Created(ctx *gin.Context, data interface{}, message string) {
	ctx.JSON(http.StatusCreated, Envelope{Success: true, Message: message, Data: data})
}

// Error is the single place application errors become HTTP statuses.
// Internal detail is logged here and never serialized to the client.
func Error(ctx *gin.Context, err error) {
	status, message := statusFor(err)

	if status == http.StatusInternalServerError {
		log.Printf("[ERROR 500] %s %s: %v", ctx.Request.Method, ctx.Request.URL.Path, err)
		message = "Internal server error"
	}

	ctx.JSON(status, Envelope{Success: false, Message: message})
}

// Abort writes a failure envelope and stops the middleware chain.
func Abort(ctx *gin.Context, status int, message string) {
	ctx.AbortWithStatusJSON(status, Envelope{Success: false, Message: message})
}

func statusFor(err error) (int, string) {
	var appErr *apperr.Error
	if !errors.As(err, &appErr) {
		return http.StatusInternalServerError, "Internal server error"
	}

	switch appErr.Kind {
	case apperr.KindValidation:
		return http.StatusBadRequest, appErr.Message
	case apperr.KindAuthentication:
		return http.StatusUnauthorized, appErr.Message
	case apperr.KindNotFound:
		return http.StatusNotFound, appErr.Message
	case apperr.KindForbidden:
		return http.StatusForbidden, appErr.Message
	default:
		return http.StatusInternalServerError, "Internal server error"
	}
}
