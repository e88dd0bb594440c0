package middleware

import (
	"net/http"

	"github.com/shri8977/FUTURE-FS-01/internal/delivery/http/response"
	"github.com/shri8977/FUTURE-FS-01/pkg/apperror"
	"github.com/shri8977/FUTURE-FS-01/pkg/logger"

	"github.com/gin-gonic/gin"
)

func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		// Check if there are errors appended to the context
		if len(c.Errors) == 0 || c.Writer.Written() {
			return
		}

		err := c.Errors.Last().Err
		if appErr, ok := apperror.As(err); ok {
			if appErr.Err != nil {
				logger.Log.Warn("Request failed", "request_id", c.GetString("RequestID"), "status", appErr.Code, "error", appErr.Err)
			}
			response.Error(c, appErr.Code, appErr.Message, nil)
			return
		}

		// SECURITY: Never expose internal error details to clients.
		// Log the actual error server-side for debugging, but send a
		// generic message to the user to prevent information disclosure.
		logger.Log.Error("Internal Server Error", "request_id", c.GetString("RequestID"), "error", err)
		response.Error(c, http.StatusInternalServerError, "An unexpected error occurred. Please try again later.", nil)
	}
}
