package middleware

import (
	"strings"

	"placement-portal-backend/internal/domain"
	"placement-portal-backend/pkg/apperror"
	"placement-portal-backend/pkg/security"

	"github.com/gin-gonic/gin"
)

// TokenCookie carries the session token for browser clients.
const TokenCookie = "token"

// AuthMiddleware accepts the token cookie or a bearer header and stores the
// caller's identity on the context.
func AuthMiddleware(authUC domain.AuthUsecase) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString, _ := c.Cookie(TokenCookie)
		if tokenString == "" {
			if header := c.GetHeader("Authorization"); strings.HasPrefix(header, "Bearer ") {
				tokenString = strings.TrimSpace(strings.TrimPrefix(header, "Bearer "))
			}
		}

		identity, err := authUC.Verify(c.Request.Context(), tokenString)
		if err != nil {
			logDenied(c, security.EventUnauthorizedAccess, "invalid_token")
			c.Error(err)
			c.Abort()
			return
		}

		c.Set(string(domain.KeyUserID), identity.ID)
		c.Set(string(domain.KeyUserEmail), identity.Email)
		c.Set(string(domain.KeyUserRole), identity.Role)

		c.Next()
	}
}

// RequireRecruiter admits recruiters and admins only.
func RequireRecruiter() gin.HandlerFunc {
	return func(c *gin.Context) {
		role, _ := c.Get(string(domain.KeyUserRole))
		if r, ok := role.(domain.Role); !ok || !r.CanRecruit() {
			logDenied(c, security.EventForbiddenAccess, "role")
			c.Error(apperror.Forbidden("Recruiter access required"))
			c.Abort()
			return
		}
		c.Next()
	}
}

// CurrentIdentity reads what AuthMiddleware stored.
func CurrentIdentity(c *gin.Context) domain.Identity {
	id, _ := c.Get(string(domain.KeyUserID))
	role, _ := c.Get(string(domain.KeyUserRole))
	identity := domain.Identity{Email: c.GetString(string(domain.KeyUserEmail))}
	identity.ID, _ = id.(int64)
	identity.Role, _ = role.(domain.Role)
	return identity
}

func logDenied(c *gin.Context, event security.EventType, reason string) {
	logger := security.DefaultLogger()
	if logger == nil {
		return
	}
	logger.Log(c.Request.Context(), security.SecurityEvent{
		Event:     event,
		IP:        c.ClientIP(),
		UserAgent: c.GetHeader("User-Agent"),
		RequestID: c.GetString(string(domain.KeyRequestID)),
		Details: map[string]interface{}{
			"path":   c.FullPath(),
			"reason": reason,
		},
	})
}
