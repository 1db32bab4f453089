package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"opportunity-match-backend/internal/delivery/http/response"
	"opportunity-match-backend/internal/domain"
	"opportunity-match-backend/pkg/auth"
)

// AuthMiddleware verifies the session token issued at login and stores the
// caller's identity on the context. Only token-backed routes (/me) use it;
// the marketplace operations identify actors through their payloads.
func AuthMiddleware(tokens *auth.TokenManager) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if !strings.HasPrefix(authHeader, "Bearer ") {
			response.Error(c, http.StatusUnauthorized, "Authorization header required", nil)
			c.Abort()
			return
		}
		tokenString := strings.TrimPrefix(authHeader, "Bearer ")

		claims, err := tokens.Parse(tokenString)
		if err != nil {
			response.Error(c, http.StatusUnauthorized, "Invalid token", nil)
			c.Abort()
			return
		}

		c.Set(string(domain.KeyAccountID), claims.Subject)
		c.Set(string(domain.KeyEmail), claims.Email)
		c.Set(string(domain.KeyRole), claims.Role)
		c.Next()
	}
}
