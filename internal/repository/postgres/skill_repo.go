package postgres

import (
	"context"
	"encoding/json"

	"go-futurehire-backend/internal/domain"
	"go-futurehire-backend/pkg/apperror"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type skillRepo struct {
	db *pgxpool.Pool
}

func NewSkillRepository(db *pgxpool.Pool) domain.SkillRepository {
	return &skillRepo{db: db}
}

const skillColumns = `id, category, name,
       COALESCE(learning_resources, '{}'::jsonb),
       COALESCE(tests, '[]'::jsonb)`

func (r *skillRepo) Fetch(ctx context.Context) ([]domain.Skill, error) {
	rows, err := r.db.Query(ctx, `SELECT `+skillColumns+` FROM skills ORDER BY category, name`)
	if err != nil {
		return nil, storeErr(err)
	}
	defer rows.Close()
	return collectSkills(rows)
}

func (r *skillRepo) FetchByCategory(ctx context.Context, category string) ([]domain.Skill, error) {
	rows, err := r.db.Query(ctx, `SELECT `+skillColumns+` FROM skills WHERE category = $1 ORDER BY name`, category)
	if err != nil {
		return nil, storeErr(err)
	}
	defer rows.Close()
	return collectSkills(rows)
}

func (r *skillRepo) Create(ctx context.Context, skill *domain.Skill) error {
	resources, err := json.Marshal(skill.LearningResources)
	if err != nil {
		return apperror.Internal(err)
	}
	tests, err := json.Marshal(skill.Tests)
	if err != nil {
		return apperror.Internal(err)
	}

	query := `INSERT INTO skills (id, category, name, learning_resources, tests)
              VALUES ($1, $2, $3, $4, $5)`
	_, err = r.db.Exec(ctx, query, skill.ID, skill.Category, skill.Name, resources, tests)
	if err != nil {
		return storeErr(err)
	}
	return nil
}

func collectSkills(rows pgx.Rows) ([]domain.Skill, error) {
	var skills []domain.Skill
	for rows.Next() {
		var s domain.Skill
		var resourcesJSON, testsJSON []byte
		if err := rows.Scan(&s.ID, &s.Category, &s.Name, &resourcesJSON, &testsJSON); err != nil {
			return nil, storeErr(err)
		}
		if len(resourcesJSON) > 0 {
			if err := json.Unmarshal(resourcesJSON, &s.LearningResources); err != nil {
				return nil, apperror.Internal(err)
			}
		}
		if len(testsJSON) > 0 {
			if err := json.Unmarshal(testsJSON, &s.Tests); err != nil {
				return nil, apperror.Internal(err)
			}
		}
		skills = append(skills, s)
	}
	if err := rows.Err(); err != nil {
		return nil, storeErr(err)
	}
	return skills, nil
}
