package middleware

import (
	"net/http"
	"strings"
	"time"

	"linkpage-app/config"
	"linkpage-app/internal/domain/session"

	"github.com/gin-gonic/gin"
)

const sessionKey = "session"

// AuthMiddleware parses the bearer token into an explicit Session value and
// gates on its validity once, here, instead of re-decoding downstream.
func AuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		jwtKey := []byte(config.JWT_SECRET)
		if len(jwtKey) == 0 {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "JWT secret not configured"})
			c.Abort()
			return
		}

		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Authorization header missing"})
			c.Abort()
			return
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString == authHeader {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Bearer token malformed"})
			c.Abort()
			return
		}

		sess, err := session.Parse(tokenString, jwtKey)
		if err != nil || !sess.Valid(time.Now()) {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid or expired token"})
			c.Abort()
			return
		}

		c.Set(sessionKey, sess)
		c.Set("user_id", sess.UserID)
		c.Set("email", sess.Email)
		c.Set("role", sess.Role)
		c.Next()
	}
}

// CurrentSession returns the Session placed by AuthMiddleware.
func CurrentSession(c *gin.Context) (session.Session, bool) {
	v, ok := c.Get(sessionKey)
	if !ok {
		return session.Session{}, false
	}
	sess, ok := v.(session.Session)
	return sess, ok
}

// RequireRole guards a route group behind a single role.
func RequireRole(role string) gin.HandlerFunc {
	return func(c *gin.Context) {
		value, exists := c.Get("role")
		if !exists {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Role not found in token"})
			c.Abort()
			return
		}

		if value != role {
			c.JSON(http.StatusForbidden, gin.H{"error": "Access denied"})
			c.Abort()
			return
		}

		c.Next()
	}
}
