package domain

import (
	"context"
	"time"
)

// User is the durable identity record. PasswordHash is secret material and is
// never serialized outward.
type User struct {
	ID             string                 `json:"id"`
	Name           string                 `json:"name"`
	Email          string                 `json:"email"`
	Mobile         string                 `json:"mobile,omitempty"`
	PasswordHash   string                 `json:"-"`
	Preferences    map[string]interface{} `json:"preferences,omitempty"`
	ResumeAnalysis AnalysisResult         `json:"resume_analysis,omitempty"`
	CreatedAt      time.Time              `json:"created_at"`
}

// AttemptResult is the score plus the answers that produced it.
type AttemptResult struct {
	Score   int   `json:"score"`
	Answers []int `json:"answers"`
}

// TestAttempt is one scoring event. Immutable once appended; history ordering
// is insertion order.
type TestAttempt struct {
	ID          int64         `json:"id"`
	TestID      string        `json:"test_id"`
	Result      AttemptResult `json:"result"`
	SubmittedAt time.Time     `json:"submitted_at"`
}

// AnalysisResult holds the findings of a resume evaluation. The shape is owned
// by the analyzer; the record only replaces it wholesale.
type AnalysisResult map[string]interface{}

type UserRepository interface {
	// Create inserts the user; duplicate email fails with a conflict error,
	// enforced atomically by the store's uniqueness constraint.
	Create(ctx context.Context, user *User) error
	GetByID(ctx context.Context, id string) (*User, error)
	GetByEmail(ctx context.Context, email string) (*User, error)
	// AppendTestAttempt atomically appends without rewriting the history.
	AppendTestAttempt(ctx context.Context, userID string, attempt *TestAttempt) error
	GetTestHistory(ctx context.Context, userID string) ([]TestAttempt, error)
	// ReplaceResumeAnalysis atomically overwrites the stored analysis;
	// concurrent writers race with last-write-wins.
	ReplaceResumeAnalysis(ctx context.Context, userID string, analysis AnalysisResult) error
}

type SignupInput struct {
	Name     string
	Email    string
	Mobile   string
	Password string
}

// AuthResult is a freshly issued token plus the identity it belongs to.
type AuthResult struct {
	Token string `json:"token"`
	User  *User  `json:"user"`
}

type AuthUsecase interface {
	Signup(ctx context.Context, input SignupInput) (*AuthResult, error)
	Login(ctx context.Context, email, password string) (*AuthResult, error)
}

type UserUsecase interface {
	GetProfile(ctx context.Context) (*User, error)
	GetTestHistory(ctx context.Context) ([]TestAttempt, error)
	ExportTestHistory(ctx context.Context) ([]byte, error)
}
