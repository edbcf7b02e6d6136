package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"giftwise/auth"
)

// requireUser resolves the caller's claims from the Authorization header and
// aborts with 401 when it cannot. Every protected handler goes through this
// before touching any resource.
func requireUser(c *gin.Context, jwtManager *auth.JWTManager) (auth.Claims, bool) {
	token, err := auth.ExtractBearerToken(c)
	if err != nil {
		auth.AbortWithUnauthorized(c, err)
		return auth.Claims{}, false
	}

	claims, err := jwtManager.Parse(token)
	if err != nil {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid_token"})
		return auth.Claims{}, false
	}

	return claims, true
}
