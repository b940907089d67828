package auth

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

const (
	contextUserIDKey = "user_id"
	contextEmailKey  = "user_email"
)

// validates the Bearer token and stores the user's identity on the
// request context
func AuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "authorization header required"})
			return
		}

		token, ok := strings.CutPrefix(authHeader, "Bearer ")
		if !ok || token == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid authorization header format"})
			return
		}

		claims, err := ValidateJWT(token)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid or expired token"})
			return
		}

		c.Set(contextUserIDKey, claims.UserID)
		c.Set(contextEmailKey, claims.Email)

		c.Next()
	}
}

// extracts the authenticated user's ID set by AuthMiddleware
func GetUserID(c *gin.Context) (string, bool) {
	userID, exists := c.Get(contextUserIDKey)

	if !exists {
		return "", false
	}

	return userID.(string), true
}
