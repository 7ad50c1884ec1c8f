package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yigit/hrmslite/internal/app/models/dto"
)

// HandleValidationError responds 422 with one entry per rejected field.
func HandleValidationError(c *gin.Context, err error) {
	c.JSON(http.StatusUnprocessableEntity, dto.HandleValidationError(err))
}

// HandleInvalidParam responds 422 for a malformed path or query parameter.
func HandleInvalidParam(c *gin.Context, field, message string) {
	c.JSON(http.StatusUnprocessableEntity,
		dto.NewErrorResponse(dto.ErrorCodeValidationFailed, message).
			WithFieldErrors([]dto.FieldError{{Field: field, Message: message}}))
}
