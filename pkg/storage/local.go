package storage

import (
	"context"
	"os"
	"path/filepath"
)

// LocalStore writes files under a directory on disk. Used when no
// S3-compatible provider is configured.
type LocalStore struct {
	dir string
}

func NewLocalStore(dir string) (*LocalStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	return &LocalStore{dir: dir}, nil
}

func (s *LocalStore) Save(_ context.Context, key string, data []byte, _ string) error {
	// key is a generated uuid-based name, never client input
	return os.WriteFile(filepath.Join(s.dir, filepath.Base(key)), data, 0o644)
}
