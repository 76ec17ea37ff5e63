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

type testRepo struct {
	db *pgxpool.Pool
}

func NewTestRepository(db *pgxpool.Pool) domain.TestRepository {
	return &testRepo{db: db}
}

const testColumns = `id, title, difficulty, COALESCE(questions, '[]'::jsonb), time_limit`

func (r *testRepo) Fetch(ctx context.Context) ([]domain.Test, error) {
	rows, err := r.db.Query(ctx, `SELECT `+testColumns+` FROM tests ORDER BY title`)
	if err != nil {
		return nil, storeErr(err)
	}
	defer rows.Close()

	var tests []domain.Test
	for rows.Next() {
		test, err := scanTest(rows)
		if err != nil {
			return nil, storeErr(err)
		}
		tests = append(tests, *test)
	}
	if err := rows.Err(); err != nil {
		return nil, storeErr(err)
	}
	return tests, nil
}

func (r *testRepo) GetByID(ctx context.Context, id string) (*domain.Test, error) {
	test, err := scanTest(r.db.QueryRow(ctx, `SELECT `+testColumns+` FROM tests WHERE id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperror.NotFound("Test not found")
		}
		return nil, storeErr(err)
	}
	return test, nil
}

func (r *testRepo) Create(ctx context.Context, test *domain.Test) error {
	questions, err := json.Marshal(test.Questions)
	if err != nil {
		return apperror.Internal(err)
	}

	query := `INSERT INTO tests (id, title, difficulty, questions, time_limit)
              VALUES ($1, $2, $3, $4, $5)`
	_, err = r.db.Exec(ctx, query, test.ID, test.Title, test.Difficulty, questions, test.TimeLimit)
	if err != nil {
		return storeErr(err)
	}
	return nil
}

func scanTest(row pgx.Row) (*domain.Test, error) {
	var t domain.Test
	var questionsJSON []byte
	err := row.Scan(&t.ID, &t.Title, &t.Difficulty, &questionsJSON, &t.TimeLimit)
	if err != nil {
		return nil, err
	}
	if len(questionsJSON) > 0 {
		if err := json.Unmarshal(questionsJSON, &t.Questions); err != nil {
			return nil, apperror.Internal(err)
		}
	}
	return &t, nil
}
