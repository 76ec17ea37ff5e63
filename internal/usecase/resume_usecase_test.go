package usecase_test

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"testing"

	"go-futurehire-backend/internal/domain"
	"go-futurehire-backend/internal/usecase"
	"go-futurehire-backend/pkg/apperror"

	"github.com/stretchr/testify/assert"
)

var pdfSample = []byte("%PDF-1.4\n1 0 obj\n<< /Type /Catalog >>\nendobj\ntrailer\n%%EOF")

func TestAnalyze_StoresFileAndReplacesAnalysis(t *testing.T) {
	store := newFakeUserStore()
	assert.NoError(t, store.Create(context.Background(), &domain.User{ID: "user-1", Email: "u@example.com"}))

	files := &fakeFileStore{}
	findings := map[string]interface{}{"score": 72, "strengths": []string{"Projects section"}}
	uc := usecase.NewResumeUsecase(store, files, &fixedAnalyzer{findings: findings})

	analysis, err := uc.Analyze(authedContext("user-1"), "resume.pdf", pdfSample)
	assert.NoError(t, err)
	assert.Equal(t, 72, analysis["score"])

	// Stored under a generated key, not the client-supplied name.
	assert.Len(t, files.keys, 1)
	assert.NotEqual(t, "resume.pdf", files.keys[0])
	assert.True(t, strings.HasSuffix(files.keys[0], ".pdf"))

	user, err := store.GetByID(context.Background(), "user-1")
	assert.NoError(t, err)
	assert.Equal(t, domain.AnalysisResult(findings), user.ResumeAnalysis)
}

func TestAnalyze_SecondUploadOverwrites(t *testing.T) {
	store := newFakeUserStore()
	assert.NoError(t, store.Create(context.Background(), &domain.User{ID: "user-1", Email: "u@example.com"}))
	files := &fakeFileStore{}

	first := usecase.NewResumeUsecase(store, files, &fixedAnalyzer{findings: map[string]interface{}{"score": 40, "gaps": []string{"No projects"}}})
	_, err := first.Analyze(authedContext("user-1"), "old.pdf", pdfSample)
	assert.NoError(t, err)

	second := usecase.NewResumeUsecase(store, files, &fixedAnalyzer{findings: map[string]interface{}{"score": 85}})
	_, err = second.Analyze(authedContext("user-1"), "new.pdf", pdfSample)
	assert.NoError(t, err)

	user, err := store.GetByID(context.Background(), "user-1")
	assert.NoError(t, err)
	assert.Equal(t, 85, user.ResumeAnalysis["score"])
	// Replaced wholesale: no leftover fields from the first analysis.
	_, hasGaps := user.ResumeAnalysis["gaps"]
	assert.False(t, hasGaps)
}

func TestAnalyze_RequiresIdentity(t *testing.T) {
	store := newFakeUserStore()
	uc := usecase.NewResumeUsecase(store, &fakeFileStore{}, &fixedAnalyzer{})

	_, err := uc.Analyze(context.Background(), "resume.pdf", pdfSample)
	var appErr *apperror.AppError
	assert.True(t, errors.As(err, &appErr))
	assert.Equal(t, http.StatusUnauthorized, appErr.Code)
}

func TestAnalyze_RejectsSpoofedUpload(t *testing.T) {
	store := newFakeUserStore()
	assert.NoError(t, store.Create(context.Background(), &domain.User{ID: "user-1", Email: "u@example.com"}))
	files := &fakeFileStore{}
	uc := usecase.NewResumeUsecase(store, files, &fixedAnalyzer{})

	_, err := uc.Analyze(authedContext("user-1"), "resume.pdf", []byte{0x89, 0x50, 0x4E, 0x47, 0x0D, 0x0A, 0x1A, 0x0A})
	var appErr *apperror.AppError
	assert.True(t, errors.As(err, &appErr))
	assert.Equal(t, http.StatusBadRequest, appErr.Code)

	// Nothing reached storage and nothing was recorded.
	assert.Empty(t, files.keys)
	user, _ := store.GetByID(context.Background(), "user-1")
	assert.Nil(t, user.ResumeAnalysis)
}
