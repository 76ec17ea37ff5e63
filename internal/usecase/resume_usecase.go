package usecase

import (
	"context"
	"path/filepath"
	"strings"

	"go-futurehire-backend/internal/domain"
	"go-futurehire-backend/pkg/apperror"
	"go-futurehire-backend/pkg/logger"
	"go-futurehire-backend/pkg/resume"
	"go-futurehire-backend/pkg/storage"

	"github.com/google/uuid"
)

type resumeUsecase struct {
	userRepo domain.UserRepository
	files    storage.FileStore
	analyzer resume.Analyzer
}

func NewResumeUsecase(userRepo domain.UserRepository, files storage.FileStore, analyzer resume.Analyzer) domain.ResumeUsecase {
	return &resumeUsecase{userRepo: userRepo, files: files, analyzer: analyzer}
}

func (u *resumeUsecase) Analyze(ctx context.Context, filename string, data []byte) (domain.AnalysisResult, error) {
	userID, ok := domain.IdentityFromContext(ctx)
	if !ok {
		return nil, apperror.Unauthorized("User not authenticated")
	}

	validation := resume.Validate(filename, data)
	if !validation.Valid {
		return nil, apperror.BadRequest(validation.Error)
	}

	// Stored under a generated key; client-supplied names never hit storage.
	key := uuid.NewString() + strings.ToLower(filepath.Ext(filename))
	if err := u.files.Save(ctx, key, data, validation.DetectedMIME); err != nil {
		logger.Log.Error("Failed to store resume file", "error", err)
		return nil, apperror.Internal(err)
	}

	findings, err := u.analyzer.Analyze(ctx, filename, data)
	if err != nil {
		return nil, apperror.Internal(err)
	}

	analysis := domain.AnalysisResult(findings)
	if err := u.userRepo.ReplaceResumeAnalysis(ctx, userID, analysis); err != nil {
		return nil, err
	}
	return analysis, nil
}
