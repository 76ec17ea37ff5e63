package middleware

import (
	"errors"
	"net/http"

	"go-futurehire-backend/internal/delivery/http/response"
	"go-futurehire-backend/pkg/apperror"
	"go-futurehire-backend/pkg/logger"

	"github.com/gin-gonic/gin"
)

// ErrorHandler translates errors appended to the context into the closed
// boundary taxonomy. Raw internal error text never reaches the client.
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) > 0 {
			err := c.Errors.Last().Err
			var appErr *apperror.AppError
			if errors.As(err, &appErr) {
				if appErr.Err != nil {
					logger.Log.Error("Request failed", "code", appErr.Code, "error", appErr.Err)
				}
				response.Error(c, appErr.Code, appErr.Message, nil)
			} else {
				logger.Log.Error("Unhandled error", "error", err)
				response.Error(c, http.StatusInternalServerError, "An unexpected error occurred. Please try again later.", nil)
			}
		}
	}
}
