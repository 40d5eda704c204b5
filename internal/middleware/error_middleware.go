package middleware

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/campushq/studentportal/internal/app/models/dto"
	"github.com/campushq/studentportal/internal/pkg/apperrors"
	"github.com/campushq/studentportal/internal/pkg/logger"
)

// HandleAPIError maps application errors onto the standard error
// envelope. Controllers funnel every service error through here.
func HandleAPIError(c *gin.Context, err error) {
	var custom *apperrors.CustomError
	message := ""
	field := ""
	if errors.As(err, &custom) {
		message = custom.Message
		field = custom.Field
	}

	detail := func(code dto.ErrorCode, fallback string) *dto.ErrorDetail {
		if message == "" {
			message = fallback
		}
		d := dto.NewErrorDetail(code, message)
		if field != "" {
			d = d.WithField(field)
		}
		return d
	}

	switch {
	case errors.Is(err, apperrors.ErrPageNotFound),
		errors.Is(err, apperrors.ErrCourseNotFound),
		errors.Is(err, apperrors.ErrProfileNotFound),
		errors.Is(err, apperrors.ErrUserNotFound),
		errors.Is(err, apperrors.ErrLibraryItemMissing),
		errors.Is(err, apperrors.ErrHomePageNotFound),
		errors.Is(err, apperrors.ErrResourceNotFound):
		c.JSON(http.StatusNotFound, dto.NewErrorResponse(detail(dto.ErrorCodeResourceNotFound, "Resource not found")))

	case errors.Is(err, apperrors.ErrInvalidCredentials):
		c.JSON(http.StatusUnauthorized, dto.NewErrorResponse(detail(dto.ErrorCodeInvalidCredentials, "Invalid credentials")))

	case errors.Is(err, apperrors.ErrTokenExpired):
		c.JSON(http.StatusUnauthorized, dto.NewErrorResponse(detail(dto.ErrorCodeExpiredToken, "Token expired")))

	case errors.Is(err, apperrors.ErrTokenInvalid):
		c.JSON(http.StatusUnauthorized, dto.NewErrorResponse(detail(dto.ErrorCodeInvalidToken, "Invalid token")))

	case errors.Is(err, apperrors.ErrAccountDisabled):
		c.JSON(http.StatusForbidden, dto.NewErrorResponse(detail(dto.ErrorCodeForbidden, "Account is disabled")))

	case errors.Is(err, apperrors.ErrStaffOnly),
		errors.Is(err, apperrors.ErrPermissionDenied):
		c.JSON(http.StatusForbidden, dto.NewErrorResponse(detail(dto.ErrorCodeForbidden, "Permission denied")))

	case errors.Is(err, apperrors.ErrUsernameAlreadyExists),
		errors.Is(err, apperrors.ErrAlreadyEnrolled),
		errors.Is(err, apperrors.ErrConflict):
		c.JSON(http.StatusConflict, dto.NewErrorResponse(detail(dto.ErrorCodeResourceAlreadyExists, "Resource already exists")))

	case errors.Is(err, apperrors.ErrPasswordMismatch),
		errors.Is(err, apperrors.ErrValidationFailed),
		errors.Is(err, apperrors.ErrBadRequest):
		c.JSON(http.StatusBadRequest, dto.NewErrorResponse(detail(dto.ErrorCodeValidationFailed, "Validation failed")))

	default:
		logger.Error().Err(err).Str("path", c.Request.URL.Path).Msg("Unhandled error")
		c.JSON(http.StatusInternalServerError, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeInternalServer, "Internal server error")))
	}
}
