package middleware

import (
	"errors"
	"net/http"

	"placement-portal-backend/internal/delivery/http/response"
	"placement-portal-backend/internal/domain"
	"placement-portal-backend/pkg/apperror"
	"placement-portal-backend/pkg/logger"

	"github.com/gin-gonic/gin"
)

// ErrorHandler renders the last error a handler attached with c.Error.
// With exposeInternal the raw cause of a 500 is sent back to the client.
func ErrorHandler(exposeInternal bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 || c.Writer.Written() {
			return
		}

		err := c.Errors.Last().Err
		var appErr *apperror.AppError
		if errors.As(err, &appErr) && appErr.Code != http.StatusInternalServerError {
			response.Error(c, appErr.Code, appErr.Message, appErr.Details)
			return
		}

		cause := err
		if appErr != nil && appErr.Err != nil {
			cause = appErr.Err
		}
		logger.Log.Error("internal server error",
			"error", cause,
			"path", c.Request.URL.Path,
			"request_id", c.GetString(string(domain.KeyRequestID)),
		)

		var detail interface{}
		if exposeInternal {
			detail = cause.Error()
		}
		response.Error(c, http.StatusInternalServerError, "Internal Server Error", detail)
	}
}
