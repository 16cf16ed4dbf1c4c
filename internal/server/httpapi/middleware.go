package httpapi

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/JayatheerthP/OraBank/internal/logging"
	"github.com/JayatheerthP/OraBank/internal/server/auth"
)

// principalKey is the gin context key carrying the authenticated user id.
const principalKey = "authenticatedUserID"

const bearerPrefix = "Bearer "

// AuthContext inspects the Authorization header and, when it carries a valid
// bearer token, stores the authenticated user id in the request context.
// Missing or invalid tokens never abort the pipeline: the request simply
// continues unauthenticated, and RequireAuth does the rejecting on protected
// routes.
func AuthContext(tokens *auth.TokenService, logger logging.Logger) gin.HandlerFunc {
	log := logger.With("module", "auth_middleware")

	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if !strings.HasPrefix(header, bearerPrefix) {
			c.Next()
			return
		}

		token := strings.TrimPrefix(header, bearerPrefix)
		if !tokens.Validate(c.Request.Context(), token) {
			log.Warn(c.Request.Context(), "invalid or expired bearer token")
			c.Next()
			return
		}

		userID, err := tokens.ExtractUserID(token)
		if err != nil {
			log.Error(c.Request.Context(), "failed to extract user id from validated token",
				"error", err.Error())
			c.Next()
			return
		}

		c.Set(principalKey, userID)
		c.Next()
	}
}

// RequireAuth rejects requests that carry no authenticated principal.
func RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		if _, ok := c.Get(principalKey); !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"error":  "authentication required",
				"status": http.StatusText(http.StatusUnauthorized),
			})
			return
		}
		c.Next()
	}
}

// authenticatedUser returns the principal established by AuthContext, if any.
func authenticatedUser(c *gin.Context) (uuid.UUID, bool) {
	v, ok := c.Get(principalKey)
	if !ok {
		return uuid.Nil, false
	}
	id, ok := v.(uuid.UUID)
	return id, ok
}
