package storage

import "context"

// FileStore persists uploaded resume files. The stored key is opaque to the
// rest of the system; the user record never references it directly.
type FileStore interface {
	Save(ctx context.Context, key string, data []byte, contentType string) error
}
