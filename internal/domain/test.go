package domain

import "context"

type Question struct {
	Question string   `json:"question"`
	Options  []string `json:"options"`
	Answer   int      `json:"answer"` // index into Options
}

type Test struct {
	ID         string     `json:"id"`
	Title      string     `json:"title"`
	Difficulty string     `json:"difficulty"`
	Questions  []Question `json:"questions"`
	TimeLimit  int        `json:"time_limit"` // minutes
}

type TestRepository interface {
	Fetch(ctx context.Context) ([]Test, error)
	GetByID(ctx context.Context, id string) (*Test, error)
	Create(ctx context.Context, test *Test) error
}

type TestUsecase interface {
	Fetch(ctx context.Context) ([]Test, error)
	GetByID(ctx context.Context, id string) (*Test, error)
	// Submit scores the answers and appends a TestAttempt to the identity
	// resolved from the context. The identity never comes from the payload.
	Submit(ctx context.Context, testID string, answers []int) (*TestAttempt, error)
}
