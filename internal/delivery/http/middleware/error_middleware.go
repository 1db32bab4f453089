package middleware

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"opportunity-match-backend/internal/delivery/http/response"
	"opportunity-match-backend/pkg/apperror"
	"opportunity-match-backend/pkg/logger"
)

// ErrorHandler translates errors attached to the context into the JSON
// envelope. AppErrors keep their code and message; anything else is logged
// server-side and masked as a 500 so internals never leak to clients.
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) > 0 {
			err := c.Errors.Last().Err
			var appErr *apperror.AppError
			if errors.As(err, &appErr) {
				response.Error(c, appErr.Code, appErr.Message, nil)
			} else {
				logger.Log.Error("unhandled request error", "path", c.FullPath(), "error", err)
				response.Error(c, http.StatusInternalServerError, "An unexpected error occurred. Please try again later.", nil)
			}
		}
	}
}
