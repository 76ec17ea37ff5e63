package domain

import "context"

type Course struct {
	ID       string   `json:"id"`
	Title    string   `json:"title"`
	Icon     string   `json:"icon"`
	Color    string   `json:"color"`
	Desc     string   `json:"desc"`
	Playlist []string `json:"playlist"`
	Notes    []string `json:"notes"`
	Roadmap  []string `json:"roadmap"`
}

type CourseRepository interface {
	Fetch(ctx context.Context) ([]Course, error)
	GetByID(ctx context.Context, id string) (*Course, error)
	Create(ctx context.Context, course *Course) error
}

type CourseUsecase interface {
	Fetch(ctx context.Context) ([]Course, error)
	GetByID(ctx context.Context, id string) (*Course, error)
}
