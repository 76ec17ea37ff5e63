package usecase_test

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"sync"
	"testing"

	"go-futurehire-backend/internal/domain"
	"go-futurehire-backend/internal/usecase"
	"go-futurehire-backend/pkg/apperror"

	"github.com/stretchr/testify/assert"
)

func quicksortTest() *domain.Test {
	return &domain.Test{
		ID:         "test-1",
		Title:      "Data Structures Basics",
		Difficulty: "medium",
		Questions: []domain.Question{
			{Question: "Average time complexity of quicksort?", Options: []string{"O(n)", "O(n log n)", "O(n^2)", "O(log n)"}, Answer: 1},
			{Question: "Which structure is LIFO?", Options: []string{"Queue", "Stack", "Heap", "Tree"}, Answer: 1},
		},
		TimeLimit: 30,
	}
}

func TestScore(t *testing.T) {
	questions := quicksortTest().Questions

	cases := []struct {
		name    string
		answers []int
		want    int
	}{
		{"all correct", []int{1, 1}, 100},
		{"half correct", []int{1, 0}, 50},
		{"none correct", []int{0, 0}, 0},
		{"missing answers count as wrong", []int{1}, 50},
		{"extra answers ignored", []int{1, 1, 3, 2}, 100},
		{"empty submission", nil, 0},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, usecase.Score(questions, tc.answers))
		})
	}

	assert.Equal(t, 0, usecase.Score(nil, []int{1, 2}))
}

func TestScore_RoundsDown(t *testing.T) {
	questions := []domain.Question{
		{Answer: 0}, {Answer: 0}, {Answer: 0},
	}
	// 1 of 3 correct = 33.33..., floored.
	assert.Equal(t, 33, usecase.Score(questions, []int{0, 1, 1}))
}

func TestSubmit_RequiresIdentity(t *testing.T) {
	store := newFakeUserStore()
	uc := usecase.NewTestUsecase(newFakeTestRepo(quicksortTest()), store)

	_, err := uc.Submit(context.Background(), "test-1", []int{1, 1})
	var appErr *apperror.AppError
	assert.True(t, errors.As(err, &appErr))
	assert.Equal(t, http.StatusUnauthorized, appErr.Code)
}

func TestSubmit_UnknownTest(t *testing.T) {
	store := newFakeUserStore()
	user := &domain.User{ID: "user-1", Email: "u@example.com"}
	assert.NoError(t, store.Create(context.Background(), user))
	uc := usecase.NewTestUsecase(newFakeTestRepo(), store)

	_, err := uc.Submit(authedContext("user-1"), "missing", []int{1})
	var appErr *apperror.AppError
	assert.True(t, errors.As(err, &appErr))
	assert.Equal(t, http.StatusNotFound, appErr.Code)
}

func TestSubmit_AppendsToHistory(t *testing.T) {
	store := newFakeUserStore()
	assert.NoError(t, store.Create(context.Background(), &domain.User{ID: "user-1", Email: "u@example.com"}))
	uc := usecase.NewTestUsecase(newFakeTestRepo(quicksortTest()), store)

	attempt, err := uc.Submit(authedContext("user-1"), "test-1", []int{1, 0})
	assert.NoError(t, err)
	assert.Equal(t, 50, attempt.Result.Score)
	assert.Equal(t, []int{1, 0}, attempt.Result.Answers)

	history, err := store.GetTestHistory(context.Background(), "user-1")
	assert.NoError(t, err)
	assert.Len(t, history, 1)
	assert.Equal(t, "test-1", history[0].TestID)
}

func TestSubmit_ConcurrentAppendsLoseNothing(t *testing.T) {
	store := newFakeUserStore()
	assert.NoError(t, store.Create(context.Background(), &domain.User{ID: "user-1", Email: "u@example.com"}))
	uc := usecase.NewTestUsecase(newFakeTestRepo(quicksortTest()), store)

	const submissions = 50
	var wg sync.WaitGroup
	for i := 0; i < submissions; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, err := uc.Submit(authedContext("user-1"), "test-1", []int{i % 4, 1})
			assert.NoError(t, err)
		}(i)
	}
	wg.Wait()

	history, err := store.GetTestHistory(context.Background(), "user-1")
	assert.NoError(t, err)
	assert.Len(t, history, submissions)

	seen := make(map[int64]bool)
	for _, attempt := range history {
		assert.False(t, seen[attempt.ID], "duplicate attempt id %d", attempt.ID)
		seen[attempt.ID] = true
	}
}

func TestReplaceResumeAnalysis_ConcurrentWritersNeverInterleave(t *testing.T) {
	store := newFakeUserStore()
	assert.NoError(t, store.Create(context.Background(), &domain.User{ID: "user-1", Email: "u@example.com"}))

	const writers = 20
	var wg sync.WaitGroup
	for i := 0; i < writers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			analysis := domain.AnalysisResult{
				"writer": i,
				"score":  i * 5,
				"tag":    fmt.Sprintf("analysis-%d", i),
			}
			assert.NoError(t, store.ReplaceResumeAnalysis(context.Background(), "user-1", analysis))
		}(i)
	}
	wg.Wait()

	// Last write wins: the surviving analysis is one writer's blob in full,
	// never a mix of fields from different writers.
	user, err := store.GetByID(context.Background(), "user-1")
	assert.NoError(t, err)
	writer, ok := user.ResumeAnalysis["writer"].(int)
	assert.True(t, ok)
	assert.Equal(t, writer*5, user.ResumeAnalysis["score"])
	assert.Equal(t, fmt.Sprintf("analysis-%d", writer), user.ResumeAnalysis["tag"])
}
