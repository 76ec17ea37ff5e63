package domain

import "context"

type CtxKey string

const (
	KeyUserID    CtxKey = "UserID"
	KeyRequestID CtxKey = "RequestID"
)

// IdentityFromContext returns the authenticated identity id set by the auth
// gate. It accepts both the typed key (plain context.WithValue) and the string
// key (gin's Keys map, where Value lookups are string-typed).
func IdentityFromContext(ctx context.Context) (string, bool) {
	if id, ok := ctx.Value(KeyUserID).(string); ok && id != "" {
		return id, true
	}
	if id, ok := ctx.Value(string(KeyUserID)).(string); ok && id != "" {
		return id, true
	}
	return "", false
}
