package domain

import "context"

type FresherRole struct {
	Role   string   `json:"role"`
	Salary string   `json:"salary"`
	Skills []string `json:"skills"`
}

type Company struct {
	ID             string                 `json:"id"`
	Name           string                 `json:"name"`
	Type           string                 `json:"type"` // Service / Product
	Est            int                    `json:"est"`
	HQ             string                 `json:"hq"`
	Role           string                 `json:"role"`
	Pkg            string                 `json:"pkg"`
	History        string                 `json:"history"`
	Branches       []string               `json:"branches"`
	HiringPattern  map[string]interface{} `json:"hiring_pattern"`
	RequiredSkills []string               `json:"required_skills"`
	FresherRoles   []FresherRole          `json:"fresher_roles"`
	InternshipURL  string                 `json:"internship_url"`
}

type CompanyRepository interface {
	Fetch(ctx context.Context) ([]Company, error)
	GetByID(ctx context.Context, id string) (*Company, error)
	Create(ctx context.Context, company *Company) error
}

type CompanyUsecase interface {
	Fetch(ctx context.Context) ([]Company, error)
	GetByID(ctx context.Context, id string) (*Company, error)
}
