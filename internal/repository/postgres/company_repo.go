package postgres

import (
	"context"
	"encoding/json"
	"errors"

	"go-futurehire-backend/internal/domain"
	"go-futurehire-backend/pkg/apperror"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/lib/pq"
)

type companyRepo struct {
	db *pgxpool.Pool
}

func NewCompanyRepository(db *pgxpool.Pool) domain.CompanyRepository {
	return &companyRepo{db: db}
}

const companyColumns = `id, name, type, est, hq, role, pkg, history, branches,
       COALESCE(hiring_pattern, '{}'::jsonb),
       required_skills,
       COALESCE(fresher_roles, '[]'::jsonb),
       internship_url`

func (r *companyRepo) Fetch(ctx context.Context) ([]domain.Company, error) {
	rows, err := r.db.Query(ctx, `SELECT `+companyColumns+` FROM companies ORDER BY name`)
	if err != nil {
		return nil, storeErr(err)
	}
	defer rows.Close()

	var companies []domain.Company
	for rows.Next() {
		company, err := scanCompany(rows)
		if err != nil {
			return nil, err
		}
		companies = append(companies, *company)
	}
	if err := rows.Err(); err != nil {
		return nil, storeErr(err)
	}
	return companies, nil
}

func (r *companyRepo) GetByID(ctx context.Context, id string) (*domain.Company, error) {
	row := r.db.QueryRow(ctx, `SELECT `+companyColumns+` FROM companies WHERE id = $1`, id)
	company, err := scanCompany(row)
	if err != nil {
		var appErr *apperror.AppError
		if errors.As(err, &appErr) {
			return nil, err
		}
		return nil, storeErr(err)
	}
	return company, nil
}

func (r *companyRepo) Create(ctx context.Context, company *domain.Company) error {
	hiring, err := json.Marshal(company.HiringPattern)
	if err != nil {
		return apperror.Internal(err)
	}
	roles, err := json.Marshal(company.FresherRoles)
	if err != nil {
		return apperror.Internal(err)
	}

	query := `INSERT INTO companies (id, name, type, est, hq, role, pkg, history, branches, hiring_pattern, required_skills, fresher_roles, internship_url)
              VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)`
	_, err = r.db.Exec(ctx, query,
		company.ID, company.Name, company.Type, company.Est, company.HQ, company.Role,
		company.Pkg, company.History, pq.Array(company.Branches), hiring,
		pq.Array(company.RequiredSkills), roles, company.InternshipURL,
	)
	if err != nil {
		return storeErr(err)
	}
	return nil
}

func scanCompany(row pgx.Row) (*domain.Company, error) {
	var c domain.Company
	var branches, requiredSkills []string
	var hiringJSON, rolesJSON []byte
	err := row.Scan(
		&c.ID, &c.Name, &c.Type, &c.Est, &c.HQ, &c.Role, &c.Pkg, &c.History,
		pq.Array(&branches), &hiringJSON, pq.Array(&requiredSkills), &rolesJSON,
		&c.InternshipURL,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperror.NotFound("Company not found")
		}
		return nil, err
	}
	c.Branches = branches
	c.RequiredSkills = requiredSkills
	if len(hiringJSON) > 0 {
		if err := json.Unmarshal(hiringJSON, &c.HiringPattern); err != nil {
			return nil, apperror.Internal(err)
		}
	}
	if len(rolesJSON) > 0 {
		if err := json.Unmarshal(rolesJSON, &c.FresherRoles); err != nil {
			return nil, apperror.Internal(err)
		}
	}
	return &c, nil
}
