package postgres

import (
	"context"

	"go-futurehire-backend/internal/domain"

	"github.com/jackc/pgx/v5/pgxpool"
)

type mentorRepo struct {
	db *pgxpool.Pool
}

func NewMentorRepository(db *pgxpool.Pool) domain.MentorRepository {
	return &mentorRepo{db: db}
}

func (r *mentorRepo) Fetch(ctx context.Context) ([]domain.Mentor, error) {
	query := `SELECT id, name, experience, domain, availability, pricing, is_paid
              FROM mentors ORDER BY name`
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, storeErr(err)
	}
	defer rows.Close()

	var mentors []domain.Mentor
	for rows.Next() {
		var m domain.Mentor
		if err := rows.Scan(&m.ID, &m.Name, &m.Experience, &m.Domain, &m.Availability, &m.Pricing, &m.IsPaid); err != nil {
			return nil, storeErr(err)
		}
		mentors = append(mentors, m)
	}
	if err := rows.Err(); err != nil {
		return nil, storeErr(err)
	}
	return mentors, nil
}

func (r *mentorRepo) Create(ctx context.Context, mentor *domain.Mentor) error {
	query := `INSERT INTO mentors (id, name, experience, domain, availability, pricing, is_paid)
              VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.db.Exec(ctx, query,
		mentor.ID, mentor.Name, mentor.Experience, mentor.Domain,
		mentor.Availability, mentor.Pricing, mentor.IsPaid,
	)
	if err != nil {
		return storeErr(err)
	}
	return nil
}
