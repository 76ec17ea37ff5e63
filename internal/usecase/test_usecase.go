package usecase

import (
	"context"
	"time"

	"go-futurehire-backend/internal/domain"
	"go-futurehire-backend/pkg/apperror"
)

type testUsecase struct {
	testRepo domain.TestRepository
	userRepo domain.UserRepository
}

func NewTestUsecase(testRepo domain.TestRepository, userRepo domain.UserRepository) domain.TestUsecase {
	return &testUsecase{testRepo: testRepo, userRepo: userRepo}
}

func (u *testUsecase) Fetch(ctx context.Context) ([]domain.Test, error) {
	return u.testRepo.Fetch(ctx)
}

func (u *testUsecase) GetByID(ctx context.Context, id string) (*domain.Test, error) {
	return u.testRepo.GetByID(ctx, id)
}

func (u *testUsecase) Submit(ctx context.Context, testID string, answers []int) (*domain.TestAttempt, error) {
	// Identity comes from the verified token only, never from the payload.
	userID, ok := domain.IdentityFromContext(ctx)
	if !ok {
		return nil, apperror.Unauthorized("User not authenticated")
	}

	test, err := u.testRepo.GetByID(ctx, testID)
	if err != nil {
		return nil, err
	}

	attempt := &domain.TestAttempt{
		TestID: testID,
		Result: domain.AttemptResult{
			Score:   Score(test.Questions, answers),
			Answers: answers,
		},
		SubmittedAt: time.Now(),
	}

	if err := u.userRepo.AppendTestAttempt(ctx, userID, attempt); err != nil {
		return nil, err
	}
	return attempt, nil
}

// Score is the percentage of questions whose submitted option index matches
// the stored answer, rounded down. Missing or extra answers count as wrong.
func Score(questions []domain.Question, answers []int) int {
	if len(questions) == 0 {
		return 0
	}
	correct := 0
	for i, q := range questions {
		if i < len(answers) && answers[i] == q.Answer {
			correct++
		}
	}
	return correct * 100 / len(questions)
}
