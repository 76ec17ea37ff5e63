package v1

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"go-futurehire-backend/internal/domain"
	"go-futurehire-backend/pkg/validation"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
)

type stubAuthUsecase struct{}

func (stubAuthUsecase) Signup(_ context.Context, input domain.SignupInput) (*domain.AuthResult, error) {
	return &domain.AuthResult{
		Token: "signed-token",
		User:  &domain.User{ID: "user-1", Name: input.Name, Email: input.Email},
	}, nil
}

func (stubAuthUsecase) Login(_ context.Context, email, _ string) (*domain.AuthResult, error) {
	return &domain.AuthResult{
		Token: "signed-token",
		User:  &domain.User{ID: "user-1", Email: email},
	}, nil
}

func newAuthRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		validation.RegisterValidators(v)
	}
	router := gin.New()
	NewAuthHandler(router.Group("/v1"), stubAuthUsecase{})
	return router
}

func TestSignupResponds200(t *testing.T) {
	router := newAuthRouter(t)

	payload := `{"name":"Priya Sharma","email":"priya@example.com","password":"secret123"}`
	req := httptest.NewRequest(http.MethodPost, "/v1/auth/signup", strings.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)

	var body map[string]interface{}
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, true, body["success"])
	data, _ := body["data"].(map[string]interface{})
	assert.Equal(t, "signed-token", data["token"])
}

func TestLoginResponds200(t *testing.T) {
	router := newAuthRouter(t)

	payload := `{"email":"priya@example.com","password":"secret123"}`
	req := httptest.NewRequest(http.MethodPost, "/v1/auth/login", strings.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
}
