package middleware_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"go-futurehire-backend/internal/delivery/http/middleware"
	"go-futurehire-backend/internal/domain"
	"go-futurehire-backend/pkg/auth"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func newGateRouter(t *testing.T, tokens *auth.TokenManager) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.GET("/protected", middleware.AuthMiddleware(tokens), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"user_id": c.GetString(string(domain.KeyUserID))})
	})
	return router
}

func TestAuthMiddleware(t *testing.T) {
	tokens, err := auth.NewTokenManager("test-secret", time.Hour)
	assert.NoError(t, err)
	router := newGateRouter(t, tokens)

	validToken, err := tokens.Issue("user-1")
	assert.NoError(t, err)

	expiring, err := auth.NewTokenManager("test-secret", -time.Minute)
	assert.NoError(t, err)
	expiredToken, err := expiring.Issue("user-1")
	assert.NoError(t, err)

	otherSecret, err := auth.NewTokenManager("other-secret", time.Hour)
	assert.NoError(t, err)
	foreignToken, err := otherSecret.Issue("user-1")
	assert.NoError(t, err)

	cases := []struct {
		name        string
		header      string
		wantStatus  int
		wantMessage string
	}{
		{"missing header", "", http.StatusUnauthorized, "Authorization header required"},
		{"no bearer prefix", validToken, http.StatusUnauthorized, "Bearer token required"},
		{"empty bearer", "Bearer ", http.StatusUnauthorized, "Bearer token required"},
		{"garbage token", "Bearer not-a-jwt", http.StatusUnauthorized, "Invalid token"},
		{"wrong secret", "Bearer " + foreignToken, http.StatusUnauthorized, "Invalid token"},
		{"expired token", "Bearer " + expiredToken, http.StatusUnauthorized, "Token expired"},
		{"valid token", "Bearer " + validToken, http.StatusOK, ""},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/protected", nil)
			if tc.header != "" {
				req.Header.Set("Authorization", tc.header)
			}
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, req)

			assert.Equal(t, tc.wantStatus, rec.Code)

			var body map[string]interface{}
			assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
			if tc.wantStatus == http.StatusOK {
				assert.Equal(t, "user-1", body["user_id"])
			} else {
				assert.Equal(t, tc.wantMessage, body["message"])
			}
		})
	}
}
