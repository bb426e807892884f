package middleware

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/campusdb/registrar/internal/app/models/dto"
	"github.com/campusdb/registrar/internal/pkg/apperrors"
	"github.com/campusdb/registrar/internal/pkg/logger"
)

// HandleAPIError maps service errors to HTTP responses. Messages on the
// wire come from the error classes in apperrors; raw store errors never
// reach the client.
func HandleAPIError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, apperrors.ErrResourceNotFound):
		c.JSON(http.StatusNotFound, dto.NewErrorResponse(dto.ErrorCodeResourceNotFound, err.Error()))
		return
	case errors.Is(err, apperrors.ErrConstraintViolation):
		c.JSON(http.StatusBadRequest, dto.NewErrorResponse(dto.ErrorCodeConstraintViolation, err.Error()))
		return
	case errors.Is(err, apperrors.ErrValidationFailed):
		c.JSON(http.StatusBadRequest, dto.NewErrorResponse(dto.ErrorCodeValidationFailed, err.Error()))
		return
	case errors.Is(err, apperrors.ErrBadRequest):
		c.JSON(http.StatusBadRequest, dto.NewErrorResponse(dto.ErrorCodeValidationFailed, err.Error()))
		return
	case errors.Is(err, apperrors.ErrStoreUnavailable):
		c.JSON(http.StatusInternalServerError, dto.NewErrorResponse(dto.ErrorCodeStoreUnavailable, "Database unavailable"))
		return
	default:
		logger.Error().Err(err).
			Str("path", c.Request.URL.Path).
			Str("method", c.Request.Method).
			Msg("Unhandled error")
		c.JSON(http.StatusInternalServerError, dto.NewErrorResponse(dto.ErrorCodeInternalServer, "Internal server error"))
		return
	}
}

// NoRouteHandler responds to requests for unknown paths.
func NoRouteHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusNotFound, dto.NewErrorResponse(dto.ErrorCodeResourceNotFound, "Invalid endpoint"))
	}
}

// MethodNotAllowedHandler responds when the path exists but the method
// does not.
func MethodNotAllowedHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusMethodNotAllowed, dto.NewErrorResponse(dto.ErrorCodeMethodNotAllowed, "Method not allowed"))
	}
}
