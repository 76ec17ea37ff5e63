package postgres

import (
	"context"
	"errors"

	"go-futurehire-backend/internal/domain"
	"go-futurehire-backend/pkg/apperror"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/lib/pq"
)

type courseRepo struct {
	db *pgxpool.Pool
}

func NewCourseRepository(db *pgxpool.Pool) domain.CourseRepository {
	return &courseRepo{db: db}
}

const courseColumns = `id, title, icon, color, description, playlist, notes, roadmap`

func (r *courseRepo) Fetch(ctx context.Context) ([]domain.Course, error) {
	rows, err := r.db.Query(ctx, `SELECT `+courseColumns+` FROM courses ORDER BY title`)
	if err != nil {
		return nil, storeErr(err)
	}
	defer rows.Close()

	var courses []domain.Course
	for rows.Next() {
		course, err := scanCourse(rows)
		if err != nil {
			return nil, storeErr(err)
		}
		courses = append(courses, *course)
	}
	if err := rows.Err(); err != nil {
		return nil, storeErr(err)
	}
	return courses, nil
}

func (r *courseRepo) GetByID(ctx context.Context, id string) (*domain.Course, error) {
	course, err := scanCourse(r.db.QueryRow(ctx, `SELECT `+courseColumns+` FROM courses WHERE id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperror.NotFound("Course not found")
		}
		return nil, storeErr(err)
	}
	return course, nil
}

func (r *courseRepo) Create(ctx context.Context, course *domain.Course) error {
	query := `INSERT INTO courses (id, title, icon, color, description, playlist, notes, roadmap)
              VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := r.db.Exec(ctx, query,
		course.ID, course.Title, course.Icon, course.Color, course.Desc,
		pq.Array(course.Playlist), pq.Array(course.Notes), pq.Array(course.Roadmap),
	)
	if err != nil {
		return storeErr(err)
	}
	return nil
}

func scanCourse(row pgx.Row) (*domain.Course, error) {
	var c domain.Course
	var playlist, notes, roadmap []string
	err := row.Scan(
		&c.ID, &c.Title, &c.Icon, &c.Color, &c.Desc,
		pq.Array(&playlist), pq.Array(&notes), pq.Array(&roadmap),
	)
	if err != nil {
		return nil, err
	}
	c.Playlist = playlist
	c.Notes = notes
	c.Roadmap = roadmap
	return &c, nil
}
