package middleware

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yigit/hrmslite/internal/app/models/dto"
	"github.com/yigit/hrmslite/internal/pkg/apperrors"
	"github.com/yigit/hrmslite/internal/pkg/logger"
)

// HandleAPIError handles common API errors and returns appropriate responses
func HandleAPIError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, apperrors.ErrResourceNotFound):
		c.JSON(http.StatusNotFound, dto.NewErrorResponse(dto.ErrorCodeResourceNotFound,
			apperrors.Message(err, "Resource not found")))
	case errors.Is(err, apperrors.ErrConflict):
		c.JSON(http.StatusConflict, dto.NewErrorResponse(dto.ErrorCodeResourceAlreadyExists,
			apperrors.Message(err, "Resource already exists")))
	case errors.Is(err, apperrors.ErrValidationFailed):
		c.JSON(http.StatusUnprocessableEntity, dto.NewErrorResponse(dto.ErrorCodeValidationFailed,
			apperrors.Message(err, "Validation failed")))
	default:
		logger.Error().
			Err(err).
			Str("requestID", RequestID(c)).
			Str("method", c.Request.Method).
			Str("path", c.Request.URL.Path).
			Msg("Unhandled error while serving request")
		c.JSON(http.StatusInternalServerError, dto.NewErrorResponse(dto.ErrorCodeInternalServer, "Internal server error"))
	}
}
