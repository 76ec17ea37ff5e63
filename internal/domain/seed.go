package domain

import "context"

type SeedUsecase interface {
	// Seed loads the demo reference dataset. Intended for fresh environments.
	Seed(ctx context.Context) error
}
