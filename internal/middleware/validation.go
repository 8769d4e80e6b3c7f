package middleware

import (
	"errors"
	"net/http"
	"reflect"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/yigit/facultyroster/internal/app/models/dto"
)

var validate = validator.New()

// ValidatedBodyKey is the context key under which ValidateRequest stores the body
const ValidatedBodyKey = "validatedBody"

// ValidateRequest validates a request body against the provided model. newObj
// must return a fresh pointer on every call, since requests run concurrently.
func ValidateRequest(newObj func() interface{}) gin.HandlerFunc {
	return func(c *gin.Context) {
		obj := newObj()
		if err := c.ShouldBindJSON(obj); err != nil {
			var verrs validator.ValidationErrors
			var errorDetail *dto.ErrorDetail
			if errors.As(err, &verrs) {
				errorDetail = HandleValidationError(err)
			} else {
				errorDetail = dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid request format").
					WithDetails(err.Error())
			}
			c.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
			c.Abort()
			return
		}

		value := reflect.ValueOf(obj)
		if value.Kind() == reflect.Ptr {
			value = value.Elem()
		}

		if err := validate.Struct(value.Interface()); err != nil {
			errorDetail := HandleValidationError(err)
			c.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
			c.Abort()
			return
		}

		c.Set(ValidatedBodyKey, obj)
		c.Next()
	}
}

// HandleValidationError converts validator errors into an ErrorDetail listing
// each failing field.
func HandleValidationError(err error) *dto.ErrorDetail {
	detail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Validation failed")

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return detail.WithDetails(err.Error())
	}

	fields := dto.NewValidationErrors()
	for _, e := range verrs {
		fields.AddError(e.Field(), formatValidationError(e))
	}
	if len(verrs) == 1 {
		detail.WithField(verrs[0].Field())
	}
	return detail.WithDetails(fields.Errors)
}

// formatValidationError creates a human-readable validation error message
func formatValidationError(e validator.FieldError) string {
	switch e.Tag() {
	case "required":
		return e.Field() + " is required"
	case "min":
		return e.Field() + " must be at least " + e.Param()
	case "max":
		return e.Field() + " must be at most " + e.Param()
	case "oneof":
		return e.Field() + " must be one of: " + e.Param()
	case "uuid":
		return e.Field() + " must be a valid UUID"
	default:
		return e.Field() + " validation failed: " + e.Tag()
	}
}
