package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	"github.com/campusdb/registrar/internal/app/models/dto"
	"github.com/campusdb/registrar/internal/middleware"
)

// parseIDParam reads a numeric path parameter. On failure it writes a 400
// response and reports false; the handler must return immediately.
func parseIDParam(ctx *gin.Context, name string) (int64, bool) {
	id, err := strconv.ParseInt(ctx.Param(name), 10, 64)
	if err != nil || id <= 0 {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(dto.ErrorCodeValidationFailed, "Invalid "+name).
			WithDetails(name+" must be a positive number"))
		return 0, false
	}
	return id, true
}

// bindJSON binds and validates a request body. On failure it writes a 400
// response and reports false.
func bindJSON(ctx *gin.Context, obj interface{}) bool {
	if err := ctx.ShouldBindJSON(obj); err != nil {
		var fieldErrors validator.ValidationErrors
		if errors.As(err, &fieldErrors) {
			return middleware.ValidateStruct(ctx, obj)
		}
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(dto.ErrorCodeValidationFailed, "Invalid request data").
			WithDetails(err.Error()))
		return false
	}
	return true
}
