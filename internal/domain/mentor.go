package domain

import "context"

type Mentor struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	Experience   string `json:"experience"`
	Domain       string `json:"domain"`
	Availability string `json:"availability"`
	Pricing      int    `json:"pricing"`
	IsPaid       bool   `json:"is_paid"`
}

type MentorRepository interface {
	Fetch(ctx context.Context) ([]Mentor, error)
	Create(ctx context.Context, mentor *Mentor) error
}

type MentorUsecase interface {
	Fetch(ctx context.Context) ([]Mentor, error)
}
