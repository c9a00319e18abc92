// Package ctxutil carries the per-request identity and request ID through
// context values.
package ctxutil

import (
	"context"
	"log/slog"
)

type ctxKey int

const (
	userIDKey ctxKey = iota
	requestIDKey
)

// WithUserID binds the acting CRM user to ctx.
func WithUserID(ctx context.Context, id int64) context.Context {
	return context.WithValue(ctx, userIDKey, id)
}

// UserIDFromCtx reports the acting user. Non-positive IDs count as absent.
func UserIDFromCtx(ctx context.Context) (int64, bool) {
	if id, ok := ctx.Value(userIDKey).(int64); ok && id > 0 {
		return id, true
	}
	return 0, false
}

func WithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, requestIDKey, id)
}

// RequestIDFromCtx returns "" when no request ID was set.
func RequestIDFromCtx(ctx context.Context) string {
	id, _ := ctx.Value(requestIDKey).(string)
	return id
}

// LogAttrs returns request_id and user_id attributes for whichever of the
// two are present in ctx.
func LogAttrs(ctx context.Context) []slog.Attr {
	attrs := make([]slog.Attr, 0, 2)
	if id := RequestIDFromCtx(ctx); id != "" {
		attrs = append(attrs, slog.String("request_id", id))
	}
	if id, ok := UserIDFromCtx(ctx); ok {
		attrs = append(attrs, slog.Int64("user_id", id))
	}
	return attrs
}
