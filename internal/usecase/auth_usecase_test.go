package usecase_test

import (
	"context"
	"errors"
	"net/http"
	"sync"
	"testing"
	"time"

	"go-futurehire-backend/internal/domain"
	"go-futurehire-backend/internal/usecase"
	"go-futurehire-backend/pkg/apperror"
	"go-futurehire-backend/pkg/auth"

	"github.com/stretchr/testify/assert"
	"golang.org/x/crypto/bcrypt"
)

func newAuthUsecase(t *testing.T, store domain.UserRepository) (domain.AuthUsecase, *auth.TokenManager) {
	t.Helper()
	tokens, err := auth.NewTokenManager("test-secret", time.Hour)
	assert.NoError(t, err)
	hasher := auth.NewPasswordHasher(bcrypt.MinCost)
	return usecase.NewAuthUsecase(store, hasher, tokens), tokens
}

func TestSignup_IssuesVerifiableToken(t *testing.T) {
	store := newFakeUserStore()
	uc, tokens := newAuthUsecase(t, store)

	result, err := uc.Signup(context.Background(), domain.SignupInput{
		Name:     "Priya Sharma",
		Email:    "Priya.Sharma@Example.com",
		Password: "secret123",
	})
	assert.NoError(t, err)
	assert.NotEmpty(t, result.Token)
	assert.Equal(t, "priya.sharma@example.com", result.User.Email)

	subject, err := tokens.Verify(result.Token)
	assert.NoError(t, err)
	assert.Equal(t, result.User.ID, subject)

	// The stored hash is not the plaintext.
	stored, err := store.GetByID(context.Background(), result.User.ID)
	assert.NoError(t, err)
	assert.NotEqual(t, "secret123", stored.PasswordHash)
}

func TestSignup_DuplicateEmailConflicts(t *testing.T) {
	store := newFakeUserStore()
	uc, _ := newAuthUsecase(t, store)

	input := domain.SignupInput{Name: "Priya", Email: "priya@example.com", Password: "secret123"}
	_, err := uc.Signup(context.Background(), input)
	assert.NoError(t, err)

	_, err = uc.Signup(context.Background(), input)
	var appErr *apperror.AppError
	assert.True(t, errors.As(err, &appErr))
	assert.Equal(t, http.StatusConflict, appErr.Code)
}

func TestSignup_EmailCaseCollides(t *testing.T) {
	store := newFakeUserStore()
	uc, _ := newAuthUsecase(t, store)

	_, err := uc.Signup(context.Background(), domain.SignupInput{Name: "A", Email: "user@example.com", Password: "secret123"})
	assert.NoError(t, err)

	_, err = uc.Signup(context.Background(), domain.SignupInput{Name: "B", Email: "USER@EXAMPLE.COM", Password: "secret123"})
	var appErr *apperror.AppError
	assert.True(t, errors.As(err, &appErr))
	assert.Equal(t, http.StatusConflict, appErr.Code)
}

func TestLogin_Success(t *testing.T) {
	store := newFakeUserStore()
	uc, tokens := newAuthUsecase(t, store)

	signup, err := uc.Signup(context.Background(), domain.SignupInput{Name: "Priya", Email: "priya@example.com", Password: "secret123"})
	assert.NoError(t, err)

	result, err := uc.Login(context.Background(), "PRIYA@example.com", "secret123")
	assert.NoError(t, err)
	assert.Equal(t, signup.User.ID, result.User.ID)

	subject, err := tokens.Verify(result.Token)
	assert.NoError(t, err)
	assert.Equal(t, signup.User.ID, subject)
}

func TestLogin_FailuresAreIndistinguishable(t *testing.T) {
	store := newFakeUserStore()
	uc, _ := newAuthUsecase(t, store)

	_, err := uc.Signup(context.Background(), domain.SignupInput{Name: "Priya", Email: "priya@example.com", Password: "secret123"})
	assert.NoError(t, err)

	_, wrongPassword := uc.Login(context.Background(), "priya@example.com", "wrong-password")
	_, unknownEmail := uc.Login(context.Background(), "nobody@example.com", "secret123")

	var wpErr, ueErr *apperror.AppError
	assert.True(t, errors.As(wrongPassword, &wpErr))
	assert.True(t, errors.As(unknownEmail, &ueErr))
	assert.Equal(t, http.StatusUnauthorized, wpErr.Code)
	assert.Equal(t, wpErr.Code, ueErr.Code)
	assert.Equal(t, wpErr.Message, ueErr.Message)
}

func TestSignup_ConcurrentSameEmail(t *testing.T) {
	store := newFakeUserStore()
	uc, _ := newAuthUsecase(t, store)

	const racers = 20
	var wg sync.WaitGroup
	errs := make([]error, racers)
	for i := 0; i < racers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, errs[i] = uc.Signup(context.Background(), domain.SignupInput{
				Name:     "Racer",
				Email:    "racer@example.com",
				Password: "secret123",
			})
		}(i)
	}
	wg.Wait()

	successes, conflicts := 0, 0
	for _, err := range errs {
		if err == nil {
			successes++
			continue
		}
		var appErr *apperror.AppError
		if errors.As(err, &appErr) && appErr.Code == http.StatusConflict {
			conflicts++
		}
	}
	assert.Equal(t, 1, successes)
	assert.Equal(t, racers-1, conflicts)
}
