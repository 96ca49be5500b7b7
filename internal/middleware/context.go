package middleware

import (
	"context"

	"github.com/kryva/kryva/internal/identity"
)

type ctxKey int

const (
	sessionKey ctxKey = iota
	requestIDKey
)

func InjectSession(ctx context.Context, s identity.Session) context.Context {
	return context.WithValue(ctx, sessionKey, s)
}

// SessionFromContext returns the session set by JWT, or the zero session.
func SessionFromContext(ctx context.Context) identity.Session {
	s, _ := ctx.Value(sessionKey).(identity.Session)
	return s
}

func InjectRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, requestIDKey, id)
}

func RequestIDFromContext(ctx context.Context) string {
	v, _ := ctx.Value(requestIDKey).(string)
	return v
}
