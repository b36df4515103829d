package auth

import (
	"net/http"
	"strings"

	"chaugames/backend/pkg/jwt"

	"github.com/gin-gonic/gin"
)

// Context keys set by the middlewares for downstream handlers.
const (
	ContextUserID    = "userID"
	ContextUserEmail = "userEmail"
)

// AuthMiddleware creates a gin middleware that requires a valid bearer token
// and exposes the principal's id and email to handlers.
func AuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, ok := claimsFromHeader(c.GetHeader("Authorization"))
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}

		c.Set(ContextUserID, claims.UserID)
		c.Set(ContextUserEmail, claims.Email)
		c.Next()
	}
}

func claimsFromHeader(authHeader string) (*jwt.Claims, bool) {
	parts := strings.Split(authHeader, " ")
	if len(parts) != 2 || parts[0] != "Bearer" {
		return nil, false
	}

	claims, err := jwt.ParseToken(parts[1])
	if err != nil {
		return nil, false
	}
	return claims, true
}
