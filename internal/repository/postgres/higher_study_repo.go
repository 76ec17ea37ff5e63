package postgres

import (
	"context"
	"encoding/json"
	"errors"

	"go-futurehire-backend/internal/domain"
	"go-futurehire-backend/pkg/apperror"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type higherStudyRepo struct {
	db *pgxpool.Pool
}

func NewHigherStudyRepository(db *pgxpool.Pool) domain.HigherStudyRepository {
	return &higherStudyRepo{db: db}
}

const higherStudyColumns = `id, name, benefits,
       COALESCE(courses, '[]'::jsonb),
       COALESCE(after_completion, '{}'::jsonb)`

func (r *higherStudyRepo) Fetch(ctx context.Context) ([]domain.HigherStudy, error) {
	rows, err := r.db.Query(ctx, `SELECT `+higherStudyColumns+` FROM higher_studies ORDER BY name`)
	if err != nil {
		return nil, storeErr(err)
	}
	defer rows.Close()

	var studies []domain.HigherStudy
	for rows.Next() {
		study, err := scanHigherStudy(rows)
		if err != nil {
			return nil, storeErr(err)
		}
		studies = append(studies, *study)
	}
	if err := rows.Err(); err != nil {
		return nil, storeErr(err)
	}
	return studies, nil
}

func (r *higherStudyRepo) GetByID(ctx context.Context, id string) (*domain.HigherStudy, error) {
	study, err := scanHigherStudy(r.db.QueryRow(ctx, `SELECT `+higherStudyColumns+` FROM higher_studies WHERE id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperror.NotFound("Higher study program not found")
		}
		return nil, storeErr(err)
	}
	return study, nil
}

func (r *higherStudyRepo) Create(ctx context.Context, study *domain.HigherStudy) error {
	courses, err := json.Marshal(study.Courses)
	if err != nil {
		return apperror.Internal(err)
	}
	after, err := json.Marshal(study.AfterCompletion)
	if err != nil {
		return apperror.Internal(err)
	}

	query := `INSERT INTO higher_studies (id, name, benefits, courses, after_completion)
              VALUES ($1, $2, $3, $4, $5)`
	_, err = r.db.Exec(ctx, query, study.ID, study.Name, study.Benefits, courses, after)
	if err != nil {
		return storeErr(err)
	}
	return nil
}

func scanHigherStudy(row pgx.Row) (*domain.HigherStudy, error) {
	var s domain.HigherStudy
	var coursesJSON, afterJSON []byte
	err := row.Scan(&s.ID, &s.Name, &s.Benefits, &coursesJSON, &afterJSON)
	if err != nil {
		return nil, err
	}
	if len(coursesJSON) > 0 {
		if err := json.Unmarshal(coursesJSON, &s.Courses); err != nil {
			return nil, apperror.Internal(err)
		}
	}
	if len(afterJSON) > 0 {
		if err := json.Unmarshal(afterJSON, &s.AfterCompletion); err != nil {
			return nil, apperror.Internal(err)
		}
	}
	return &s, nil
}
