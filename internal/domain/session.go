package domain

import "context"

type contextKey string

const SessionContextKey contextKey = "session_id"

func WithSessionID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, SessionContextKey, id)
}

func SessionIDFromContext(ctx context.Context) (string, bool) {
	id, ok := ctx.Value(SessionContextKey).(string)
	return id, ok && id != ""
}
