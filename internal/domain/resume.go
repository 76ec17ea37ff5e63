package domain

import "context"

type ResumeUsecase interface {
	// Analyze validates and stores the uploaded file, runs the analyzer, and
	// replaces the identity's stored analysis wholesale.
	Analyze(ctx context.Context, filename string, data []byte) (AnalysisResult, error)
}
