package usecase

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"

	"go-futurehire-backend/internal/domain"
	"go-futurehire-backend/pkg/apperror"
	"go-futurehire-backend/pkg/auth"

	"github.com/google/uuid"
)

// dummyHash is compared against on the unknown-email path so a login failure
// costs the same whether or not the email exists.
const dummyHash = "$2a$10$N9qo8uLOickgx2ZMRZoMyeIjZAgcfl7p92ldGxad68LJZdL17lhWy"

const invalidCredentialsMsg = "Invalid credentials"

type authUsecase struct {
	userRepo domain.UserRepository
	hasher   *auth.PasswordHasher
	tokens   *auth.TokenManager
}

func NewAuthUsecase(userRepo domain.UserRepository, hasher *auth.PasswordHasher, tokens *auth.TokenManager) domain.AuthUsecase {
	return &authUsecase{userRepo: userRepo, hasher: hasher, tokens: tokens}
}

func (u *authUsecase) Signup(ctx context.Context, input domain.SignupInput) (*domain.AuthResult, error) {
	hash, err := u.hasher.Hash(input.Password)
	if err != nil {
		return nil, apperror.Internal(err)
	}

	user := &domain.User{
		ID:           uuid.NewString(),
		Name:         strings.TrimSpace(input.Name),
		Email:        normalizeEmail(input.Email),
		Mobile:       strings.TrimSpace(input.Mobile),
		PasswordHash: hash,
		CreatedAt:    time.Now(),
	}

	// Uniqueness is decided by the store's constraint: of two racing signups
	// with the same email, exactly one insert succeeds.
	if err := u.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}

	token, err := u.tokens.Issue(user.ID)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	return &domain.AuthResult{Token: token, User: user}, nil
}

func (u *authUsecase) Login(ctx context.Context, email, password string) (*domain.AuthResult, error) {
	user, err := u.userRepo.GetByEmail(ctx, normalizeEmail(email))
	if err != nil {
		var appErr *apperror.AppError
		if errors.As(err, &appErr) && appErr.Code == http.StatusNotFound {
			// Burn a bcrypt compare so unknown email and wrong password are
			// indistinguishable in both response and timing.
			u.hasher.Verify(password, dummyHash)
			return nil, apperror.Unauthorized(invalidCredentialsMsg)
		}
		return nil, err
	}

	if !u.hasher.Verify(password, user.PasswordHash) {
		return nil, apperror.Unauthorized(invalidCredentialsMsg)
	}

	token, err := u.tokens.Issue(user.ID)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	return &domain.AuthResult{Token: token, User: user}, nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
