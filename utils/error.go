package utils

import (
	"errors"
	"net/http"

	"maidly/services/scheduling"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ErrorResponse defines the structure of error responses
type ErrorResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Details string `json:"details,omitempty"`
}

// ErrorHandler is a middleware to catch panics and return structured errors
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if err := recover(); err != nil {
				GetLogger().Error("Unhandled panic", zap.Any("error", err))

				c.JSON(http.StatusInternalServerError, ErrorResponse{
					Message: "Internal Server Error",
					Details: "An unexpected error occurred. Please try again later.",
				})
				c.Abort()
			}
		}()
		c.Next()
	}
}

// JSONError sends a standardized JSON error response
func JSONError(c *gin.Context, status int, message string, details string) {
	GetLogger().Warn(message, zap.String("details", details))
	c.JSON(status, ErrorResponse{Success: false, Message: message, Details: details})
}

// RespondServiceError maps the scheduling error taxonomy to transport
// status codes: ValidationError 400, NotFoundError 404, ConflictError 409,
// everything else 500.
func RespondServiceError(c *gin.Context, err error) {
	var (
		validationErr *scheduling.ValidationError
		notFoundErr   *scheduling.NotFoundError
		conflictErr   *scheduling.ConflictError
	)
	switch {
	case errors.As(err, &validationErr):
		JSONError(c, http.StatusBadRequest, validationErr.Message, "")
	case errors.As(err, &notFoundErr):
		JSONError(c, http.StatusNotFound, notFoundErr.Message, "")
	case errors.As(err, &conflictErr):
		JSONError(c, http.StatusConflict, conflictErr.Message, "")
	default:
		JSONError(c, http.StatusInternalServerError, "Internal server error", err.Error())
	}
}
