package domain

import "context"

type HigherStudy struct {
	ID              string                   `json:"id"`
	Name            string                   `json:"name"`
	Benefits        string                   `json:"benefits"`
	Courses         []map[string]interface{} `json:"courses"`
	AfterCompletion map[string]interface{}   `json:"after_completion"`
}

type HigherStudyRepository interface {
	Fetch(ctx context.Context) ([]HigherStudy, error)
	GetByID(ctx context.Context, id string) (*HigherStudy, error)
	Create(ctx context.Context, study *HigherStudy) error
}

type HigherStudyUsecase interface {
	Fetch(ctx context.Context) ([]HigherStudy, error)
	GetByID(ctx context.Context, id string) (*HigherStudy, error)
}
