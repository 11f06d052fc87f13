package middleware

import (
	"net/http"
	"strings"

	"locotraq/internal/domain/entities"
	"locotraq/internal/usecase"

	"github.com/gin-gonic/gin"
)

const sessionContextKey = "admin_session"

// BearerToken extracts the bearer token from the Authorization header, or
// returns an empty string when the header is absent or malformed.
func BearerToken(c *gin.Context) string {
	header := c.GetHeader("Authorization")
	const prefix = "Bearer "
	if !strings.HasPrefix(header, prefix) {
		return ""
	}
	return strings.TrimSpace(header[len(prefix):])
}

// SessionFrom returns the session stored by RequireSession. The zero session
// means the middleware did not run on this route.
func SessionFrom(c *gin.Context) entities.Session {
	if v, ok := c.Get(sessionContextKey); ok {
		if s, ok := v.(entities.Session); ok {
			return s
		}
	}
	return entities.Session{}
}

// RequireSession guards admin routes. A missing or expired token aborts the
// request with a 401 envelope before any handler runs.
func RequireSession(auth usecase.IAuthUseCase) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := BearerToken(c)
		if token == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"success": false,
				"code":    "UNAUTHORIZED",
				"error":   "Missing bearer token",
			})
			return
		}

		session, err := auth.Resolve(c.Request.Context(), token)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"success": false,
				"code":    "UNAUTHORIZED",
				"error":   "Session expired or not found",
			})
			return
		}

		c.Set(sessionContextKey, session)
		c.Next()
	}
}
