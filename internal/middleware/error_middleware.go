package middleware

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/yigit/facultyroster/internal/app/models/dto"
	"github.com/yigit/facultyroster/internal/pkg/apperrors"
	"github.com/yigit/facultyroster/internal/pkg/logger"
)

// HandleAPIError handles common API errors and returns appropriate responses
func HandleAPIError(c *gin.Context, err error) {
	status, detail := errorDetailFor(err)
	if status >= http.StatusInternalServerError {
		logger.Error().Err(err).Str("path", c.Request.URL.Path).Msg("Request failed")
	}

	c.JSON(status, dto.APIResponse{
		Success:   false,
		Error:     detail,
		Timestamp: time.Now(),
	})
}

// errorDetailFor maps an error to an HTTP status and error detail. Roster
// errors carry their message and details through to the client.
func errorDetailFor(err error) (int, *dto.ErrorDetail) {
	switch {
	case errors.Is(err, apperrors.ErrMalformedDegree):
		return http.StatusBadRequest, withCustomDetails(
			dto.NewErrorDetail(dto.ErrorCodeMalformedDegree, messageOf(err, "Degree description is malformed")), err)
	case errors.Is(err, apperrors.ErrMalformedRow):
		return http.StatusUnprocessableEntity, withCustomDetails(
			dto.NewErrorDetail(dto.ErrorCodeMalformedRow, messageOf(err, "Roster row is malformed")), err)
	case errors.Is(err, apperrors.ErrSourceRead):
		return http.StatusBadGateway, withCustomDetails(
			dto.NewErrorDetail(dto.ErrorCodeSourceRead, "Roster source could not be read"), err)
	case errors.Is(err, apperrors.ErrRosterNotLoaded):
		return http.StatusServiceUnavailable,
			dto.NewErrorDetail(dto.ErrorCodeRosterNotLoaded, "Roster has not been loaded yet").WithSeverity(dto.ErrorSeverityWarning)
	case errors.Is(err, apperrors.ErrInstructorNotFound):
		return http.StatusNotFound, dto.NewErrorDetail(dto.ErrorCodeResourceNotFound, "Instructor not found")
	case errors.Is(err, apperrors.ErrDepartmentNotFound):
		return http.StatusNotFound, dto.NewErrorDetail(dto.ErrorCodeResourceNotFound, "Department not found")
	case errors.Is(err, apperrors.ErrResourceNotFound):
		return http.StatusNotFound, dto.NewErrorDetail(dto.ErrorCodeResourceNotFound, "Resource not found")
	case errors.Is(err, apperrors.ErrValidationFailed):
		return http.StatusBadRequest, dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Validation failed").WithDetails(err.Error())
	case errors.Is(err, apperrors.ErrBadRequest):
		return http.StatusBadRequest, dto.NewErrorDetail(dto.ErrorCodeResourceInvalid, messageOf(err, "Bad request"))
	default:
		return http.StatusInternalServerError, dto.NewErrorDetail(dto.ErrorCodeInternalServer, "Internal server error")
	}
}

// messageOf returns the message of a CustomError in err's chain, or fallback
func messageOf(err error, fallback string) string {
	var ce *apperrors.CustomError
	if errors.As(err, &ce) && ce.Message != "" {
		return ce.Message
	}
	return fallback
}

func withCustomDetails(detail *dto.ErrorDetail, err error) *dto.ErrorDetail {
	var ce *apperrors.CustomError
	if errors.As(err, &ce) && len(ce.Details) > 0 {
		return detail.WithDetails(ce.Details)
	}
	return detail
}
