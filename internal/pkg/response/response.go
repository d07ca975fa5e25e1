package response

import (
	"errors"
	log "log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/goccy/go-json"
	"github.com/pramanandasarkar02/toolsai/internal/api/dto"
	"github.com/pramanandasarkar02/toolsai/internal/service"
)

const (
	Ok                  = http.StatusOK
	BadRequest          = http.StatusBadRequest
	Unauthorized        = http.StatusUnauthorized
	Forbidden           = http.StatusForbidden
	NotFound            = http.StatusNotFound
	Conflict            = http.StatusConflict
	InternalServerError = http.StatusInternalServerError
)

// Success wraps a payload in the standard envelope.
func Success(ctx *gin.Context, data interface{}) {
	ctx.JSON(http.StatusOK, dto.Response{
		Success: true,
		Data:    data,
	})
}

// SuccessMsg wraps a payload with an explicit message.
func SuccessMsg(ctx *gin.Context, message string, data interface{}) {
	ctx.JSON(http.StatusOK, dto.Response{
		Success: true,
		Message: message,
		Data:    data,
	})
}

// Created wraps a payload for resource creation.
func Created(ctx *gin.Context, message string, data interface{}) {
	ctx.JSON(http.StatusCreated, dto.Response{
		Success: true,
		Message: message,
		Data:    data,
	})
}

// Fail emits an error envelope with the given status.
func Fail(c *gin.Context, status int, message string) {
	c.JSON(status, dto.Response{
		Success: false,
		Message: message,
		Data:    nil,
	})
}

// Error translates a service error into the response taxonomy.
func Error(c *gin.Context, err error) {
	var ve validator.ValidationErrors
	if errors.As(err, &ve) {
		Fail(c, BadRequest, "validation failed: "+ve.Error())
		return
	}

	var unmarshalTypeError *json.UnmarshalTypeError
	if errors.As(err, &unmarshalTypeError) {
		Fail(c, BadRequest, "malformed request body")
		return
	}

	status, ok := service.ErrorMap[err]
	if !ok {
		status = InternalServerError
		log.ErrorContext(c.Request.Context(), "unhandled error", "err", err)
		Fail(c, status, "internal server error")
		return
	}
	Fail(c, status, err.Error())
}
