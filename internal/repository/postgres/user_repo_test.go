package postgres

import (
	"errors"
	"net/http"
	"testing"
	"time"

	"go-futurehire-backend/pkg/apperror"

	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
)

// stubRow satisfies pgx.Row for scan-level tests without a database.
type stubRow struct {
	values []interface{}
	err    error
}

func (r stubRow) Scan(dest ...any) error {
	if r.err != nil {
		return r.err
	}
	for i, d := range dest {
		switch v := d.(type) {
		case *string:
			*v = r.values[i].(string)
		case *[]byte:
			*v = r.values[i].([]byte)
		case *time.Time:
			*v = r.values[i].(time.Time)
		}
	}
	return nil
}

func userRow(prefs, analysis []byte) stubRow {
	return stubRow{values: []interface{}{
		"user-1", "Priya", "priya@example.com", "", "$2a$10$hash", prefs, analysis, time.Now(),
	}}
}

func TestScanUser(t *testing.T) {
	repo := &userRepo{}

	t.Run("valid jsonb columns", func(t *testing.T) {
		user, err := repo.scanUser(userRow([]byte(`{"theme":"dark"}`), []byte(`{"score":72}`)))
		assert.NoError(t, err)
		assert.Equal(t, "dark", user.Preferences["theme"])
		assert.Equal(t, float64(72), user.ResumeAnalysis["score"])
	})

	t.Run("null analysis column", func(t *testing.T) {
		user, err := repo.scanUser(userRow([]byte(`{}`), []byte(`null`)))
		assert.NoError(t, err)
		assert.Nil(t, user.ResumeAnalysis)
	})

	t.Run("corrupt preferences surface as internal error", func(t *testing.T) {
		_, err := repo.scanUser(userRow([]byte(`{not json`), []byte(`null`)))
		var appErr *apperror.AppError
		assert.True(t, errors.As(err, &appErr))
		assert.Equal(t, http.StatusInternalServerError, appErr.Code)
	})

	t.Run("corrupt analysis surfaces as internal error", func(t *testing.T) {
		_, err := repo.scanUser(userRow([]byte(`{}`), []byte(`[truncated`)))
		var appErr *apperror.AppError
		assert.True(t, errors.As(err, &appErr))
		assert.Equal(t, http.StatusInternalServerError, appErr.Code)
	})

	t.Run("no rows maps to not found", func(t *testing.T) {
		_, err := repo.scanUser(stubRow{err: pgx.ErrNoRows})
		var appErr *apperror.AppError
		assert.True(t, errors.As(err, &appErr))
		assert.Equal(t, http.StatusNotFound, appErr.Code)
	})
}

func TestStoreErrKeepsBoundaryErrors(t *testing.T) {
	conflict := apperror.Conflict("User with this email already exists")
	assert.Equal(t, error(conflict), storeErr(conflict))
}
