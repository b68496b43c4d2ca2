package middleware

import (
	"context"
	"strconv"

	"placement-portal-backend/internal/domain"
	"placement-portal-backend/pkg/apperror"
	"placement-portal-backend/pkg/logger"

	"github.com/gin-gonic/gin"
)

// UploadGate is satisfied by security.UploadLimiter.
type UploadGate interface {
	AllowUpload(ctx context.Context, ip string, userID int64) (bool, int, error)
}

// UploadLimit must run after AuthMiddleware so the user id is known.
// Limiter errors reject the upload.
func UploadLimit(gate UploadGate) gin.HandlerFunc {
	return func(c *gin.Context) {
		allowed, retryAfter, err := gate.AllowUpload(c.Request.Context(), c.ClientIP(), CurrentIdentity(c).ID)
		if err != nil {
			logger.Log.Warn("upload limiter failed", "error", err, "request_id", c.GetString(string(domain.KeyRequestID)))
		}
		if !allowed {
			c.Header("Retry-After", strconv.Itoa(retryAfter))
			logRateLimitTriggered(c)
			c.Error(apperror.TooManyRequests("Too many uploads. Please try again later."))
			c.Abort()
			return
		}
		c.Next()
	}
}
