package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	"github.com/campusdb/registrar/internal/app/models/dto"
)

var validate = newValidator()

// newValidator reads the same "binding" tags gin uses, so a struct fails
// here exactly when ShouldBindJSON would reject it.
func newValidator() *validator.Validate {
	v := validator.New()
	v.SetTagName("binding")
	return v
}

// ValidateStruct runs validator tags against obj and, on failure, writes
// a 400 response with a readable message per failed field. Reports
// whether validation passed.
func ValidateStruct(c *gin.Context, obj interface{}) bool {
	err := validate.Struct(obj)
	if err == nil {
		return true
	}

	details := ""
	if fieldErrors, ok := err.(validator.ValidationErrors); ok {
		for i, fe := range fieldErrors {
			if i > 0 {
				details += "; "
			}
			details += formatValidationError(fe)
		}
	} else {
		details = err.Error()
	}

	c.JSON(http.StatusBadRequest, dto.NewErrorResponse(dto.ErrorCodeValidationFailed, "Invalid request data").
		WithDetails(details))
	return false
}

// formatValidationError creates a human-readable validation error message
func formatValidationError(e validator.FieldError) string {
	switch e.Tag() {
	case "required":
		return e.Field() + " is required"
	case "gt", "gte", "min":
		return e.Field() + " must be at least " + e.Param()
	case "lt", "lte", "max":
		return e.Field() + " must be at most " + e.Param()
	case "email":
		return e.Field() + " must be a valid email address"
	case "oneof":
		return e.Field() + " must be one of: " + e.Param()
	case "datetime":
		return e.Field() + " must match format " + e.Param()
	default:
		return e.Field() + " validation failed: " + e.Tag()
	}
}
