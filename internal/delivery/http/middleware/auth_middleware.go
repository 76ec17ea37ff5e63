package middleware

import (
	"errors"
	"net/http"
	"strings"

	"go-futurehire-backend/internal/delivery/http/response"
	"go-futurehire-backend/internal/domain"
	"go-futurehire-backend/pkg/auth"

	"github.com/gin-gonic/gin"
)

// AuthMiddleware is the gate in front of every protected route. It is a pure
// function of the Authorization header, the clock, and the signing secret: no
// store lookup happens here and nothing downstream re-parses the header.
func AuthMiddleware(tokens *auth.TokenManager) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			response.Error(c, http.StatusUnauthorized, "Authorization header required", nil)
			c.Abort()
			return
		}

		tokenString := strings.TrimSpace(strings.TrimPrefix(authHeader, "Bearer "))
		if tokenString == "" || tokenString == authHeader {
			response.Error(c, http.StatusUnauthorized, "Bearer token required", nil)
			c.Abort()
			return
		}

		userID, err := tokens.Verify(tokenString)
		if err != nil {
			if errors.Is(err, auth.ErrTokenExpired) {
				response.Error(c, http.StatusUnauthorized, "Token expired", nil)
			} else {
				response.Error(c, http.StatusUnauthorized, "Invalid token", nil)
			}
			c.Abort()
			return
		}

		c.Set(string(domain.KeyUserID), userID)
		c.Next()
	}
}
