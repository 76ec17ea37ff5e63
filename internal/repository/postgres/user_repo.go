package postgres

import (
	"context"
	"encoding/json"
	"errors"

	"go-futurehire-backend/internal/domain"
	"go-futurehire-backend/pkg/apperror"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PostgreSQL error codes
const (
	pgUniqueViolation = "23505"
)

type userRepo struct {
	db *pgxpool.Pool
}

func NewUserRepository(db *pgxpool.Pool) domain.UserRepository {
	return &userRepo{db: db}
}

// Create inserts the identity. Email uniqueness is enforced by the unique
// index on lower(email): two racing signups resolve at the store, one insert
// wins and the other reports a conflict.
func (r *userRepo) Create(ctx context.Context, user *domain.User) error {
	prefs, err := json.Marshal(user.Preferences)
	if err != nil {
		return apperror.Internal(err)
	}

	query := `INSERT INTO users (id, name, email, mobile, password_hash, preferences, created_at)
              VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err = r.db.Exec(ctx, query,
		user.ID, user.Name, user.Email, user.Mobile, user.PasswordHash, prefs, user.CreatedAt,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation {
			return apperror.Conflict("User with this email already exists")
		}
		return storeErr(err)
	}
	return nil
}

func (r *userRepo) GetByID(ctx context.Context, id string) (*domain.User, error) {
	query := `SELECT id, name, email, mobile, password_hash,
                     COALESCE(preferences, '{}'::jsonb),
                     COALESCE(resume_analysis, 'null'::jsonb),
                     created_at
              FROM users WHERE id = $1`
	return r.scanUser(r.db.QueryRow(ctx, query, id))
}

func (r *userRepo) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	query := `SELECT id, name, email, mobile, password_hash,
                     COALESCE(preferences, '{}'::jsonb),
                     COALESCE(resume_analysis, 'null'::jsonb),
                     created_at
              FROM users WHERE email = $1`
	return r.scanUser(r.db.QueryRow(ctx, query, email))
}

func (r *userRepo) scanUser(row pgx.Row) (*domain.User, error) {
	var user domain.User
	var prefsJSON, analysisJSON []byte
	err := row.Scan(
		&user.ID, &user.Name, &user.Email, &user.Mobile, &user.PasswordHash,
		&prefsJSON, &analysisJSON, &user.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperror.NotFound("User not found")
		}
		return nil, storeErr(err)
	}
	if len(prefsJSON) > 0 {
		if err := json.Unmarshal(prefsJSON, &user.Preferences); err != nil {
			return nil, apperror.Internal(err)
		}
	}
	if len(analysisJSON) > 0 {
		if err := json.Unmarshal(analysisJSON, &user.ResumeAnalysis); err != nil {
			return nil, apperror.Internal(err)
		}
	}
	return &user, nil
}

// AppendTestAttempt is a single INSERT: concurrent appends to the same
// identity serialize at the store and none are lost or rewritten.
func (r *userRepo) AppendTestAttempt(ctx context.Context, userID string, attempt *domain.TestAttempt) error {
	result, err := json.Marshal(attempt.Result)
	if err != nil {
		return apperror.Internal(err)
	}

	query := `INSERT INTO test_attempts (user_id, test_id, result, submitted_at)
              VALUES ($1, $2, $3, $4) RETURNING id`
	err = r.db.QueryRow(ctx, query, userID, attempt.TestID, result, attempt.SubmittedAt).Scan(&attempt.ID)
	if err != nil {
		return storeErr(err)
	}
	return nil
}

func (r *userRepo) GetTestHistory(ctx context.Context, userID string) ([]domain.TestAttempt, error) {
	query := `SELECT id, test_id, result, submitted_at FROM test_attempts
              WHERE user_id = $1 ORDER BY id`
	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		return nil, storeErr(err)
	}
	defer rows.Close()

	var history []domain.TestAttempt
	for rows.Next() {
		var attempt domain.TestAttempt
		var resultJSON []byte
		if err := rows.Scan(&attempt.ID, &attempt.TestID, &resultJSON, &attempt.SubmittedAt); err != nil {
			return nil, storeErr(err)
		}
		if len(resultJSON) > 0 {
			if err := json.Unmarshal(resultJSON, &attempt.Result); err != nil {
				return nil, apperror.Internal(err)
			}
		}
		history = append(history, attempt)
	}
	if err := rows.Err(); err != nil {
		return nil, storeErr(err)
	}
	return history, nil
}

// ReplaceResumeAnalysis overwrites the whole jsonb value in one UPDATE:
// racing writers finish last-write-wins with no partial state observable.
func (r *userRepo) ReplaceResumeAnalysis(ctx context.Context, userID string, analysis domain.AnalysisResult) error {
	payload, err := json.Marshal(analysis)
	if err != nil {
		return apperror.Internal(err)
	}

	tag, err := r.db.Exec(ctx, `UPDATE users SET resume_analysis = $2 WHERE id = $1`, userID, payload)
	if err != nil {
		return storeErr(err)
	}
	if tag.RowsAffected() == 0 {
		return apperror.NotFound("User not found")
	}
	return nil
}

// storeErr keeps raw storage errors out of the boundary taxonomy: database
// faults surface as retryable unavailability, everything else as internal.
func storeErr(err error) error {
	var appErr *apperror.AppError
	if errors.As(err, &appErr) {
		return err
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return apperror.Internal(err)
	}
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return apperror.Internal(err)
	}
	// Connection-level failure: transient, caller may retry
	return apperror.Unavailable(err)
}
