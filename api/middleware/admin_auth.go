package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"giftwise/auth"
	"giftwise/config"
)

// AdminOnly admits requests carrying a valid token whose role is admin or
// whose email is on the configured admin list.
func AdminOnly(jwtManager *auth.JWTManager) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := auth.ExtractBearerToken(c)
		if err != nil {
			auth.AbortWithUnauthorized(c, err)
			return
		}

		claims, err := jwtManager.Parse(token)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid_token"})
			return
		}

		if claims.Role != auth.RoleAdmin && !config.IsAdminEmail(claims.Email) {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "admin_only"})
			return
		}

		c.Next()
	}
}
