package domain

import "context"

type LearningResources struct {
	Free []string `json:"free"`
	Paid []string `json:"paid"`
}

type Skill struct {
	ID                string                   `json:"id"`
	Category          string                   `json:"category"` // technical, communication, soft
	Name              string                   `json:"name"`
	LearningResources LearningResources        `json:"learning_resources"`
	Tests             []map[string]interface{} `json:"tests"`
}

type SkillRepository interface {
	Fetch(ctx context.Context) ([]Skill, error)
	FetchByCategory(ctx context.Context, category string) ([]Skill, error)
	Create(ctx context.Context, skill *Skill) error
}

type SkillUsecase interface {
	Fetch(ctx context.Context) ([]Skill, error)
	FetchByCategory(ctx context.Context, category string) ([]Skill, error)
}
