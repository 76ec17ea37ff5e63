package usecase_test

import (
	"context"
	"sync"

	"go-futurehire-backend/internal/domain"
	"go-futurehire-backend/pkg/apperror"
)

// fakeUserStore mirrors the store contract in memory: uniqueness, append and
// replace are each atomic under the mutex, the way the SQL primitives are.
// testify mocks cannot exercise races, hence the hand-rolled fake.
type fakeUserStore struct {
	mu      sync.Mutex
	users   map[string]*domain.User
	byEmail map[string]string
	history map[string][]domain.TestAttempt
}

func newFakeUserStore() *fakeUserStore {
	return &fakeUserStore{
		users:   make(map[string]*domain.User),
		byEmail: make(map[string]string),
		history: make(map[string][]domain.TestAttempt),
	}
}

func (s *fakeUserStore) Create(_ context.Context, user *domain.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, exists := s.byEmail[user.Email]; exists {
		return apperror.Conflict("User with this email already exists")
	}
	copied := *user
	s.users[user.ID] = &copied
	s.byEmail[user.Email] = user.ID
	return nil
}

func (s *fakeUserStore) GetByID(_ context.Context, id string) (*domain.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	user, ok := s.users[id]
	if !ok {
		return nil, apperror.NotFound("User not found")
	}
	copied := *user
	return &copied, nil
}

func (s *fakeUserStore) GetByEmail(_ context.Context, email string) (*domain.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	id, ok := s.byEmail[email]
	if !ok {
		return nil, apperror.NotFound("User not found")
	}
	copied := *s.users[id]
	return &copied, nil
}

func (s *fakeUserStore) AppendTestAttempt(_ context.Context, userID string, attempt *domain.TestAttempt) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.users[userID]; !ok {
		return apperror.NotFound("User not found")
	}
	attempt.ID = int64(len(s.history[userID]) + 1)
	s.history[userID] = append(s.history[userID], *attempt)
	return nil
}

func (s *fakeUserStore) GetTestHistory(_ context.Context, userID string) ([]domain.TestAttempt, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	history := make([]domain.TestAttempt, len(s.history[userID]))
	copy(history, s.history[userID])
	return history, nil
}

func (s *fakeUserStore) ReplaceResumeAnalysis(_ context.Context, userID string, analysis domain.AnalysisResult) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	user, ok := s.users[userID]
	if !ok {
		return apperror.NotFound("User not found")
	}
	user.ResumeAnalysis = analysis
	return nil
}

// fakeTestRepo serves a fixed set of tests.
type fakeTestRepo struct {
	tests map[string]*domain.Test
}

func newFakeTestRepo(tests ...*domain.Test) *fakeTestRepo {
	m := make(map[string]*domain.Test)
	for _, t := range tests {
		m[t.ID] = t
	}
	return &fakeTestRepo{tests: m}
}

func (r *fakeTestRepo) Fetch(_ context.Context) ([]domain.Test, error) {
	var tests []domain.Test
	for _, t := range r.tests {
		tests = append(tests, *t)
	}
	return tests, nil
}

func (r *fakeTestRepo) GetByID(_ context.Context, id string) (*domain.Test, error) {
	t, ok := r.tests[id]
	if !ok {
		return nil, apperror.NotFound("Test not found")
	}
	copied := *t
	return &copied, nil
}

func (r *fakeTestRepo) Create(_ context.Context, test *domain.Test) error {
	r.tests[test.ID] = test
	return nil
}

// fakeFileStore records saved keys.
type fakeFileStore struct {
	mu   sync.Mutex
	keys []string
}

func (s *fakeFileStore) Save(_ context.Context, key string, _ []byte, _ string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.keys = append(s.keys, key)
	return nil
}

// fixedAnalyzer returns the findings it was built with.
type fixedAnalyzer struct {
	findings map[string]interface{}
}

func (a *fixedAnalyzer) Analyze(_ context.Context, _ string, _ []byte) (map[string]interface{}, error) {
	return a.findings, nil
}

func authedContext(userID string) context.Context {
	return context.WithValue(context.Background(), domain.KeyUserID, userID)
}
