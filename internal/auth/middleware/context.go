package auth

import "context"

type ctxKey string

const ctxKeySession ctxKey = "session"

func WithSubject(ctx context.Context, sessionID string) context.Context {
	return context.WithValue(ctx, ctxKeySession, sessionID)
}

// SubjectFromContext returns the session id set by JWTMiddleware.
func SubjectFromContext(ctx context.Context) string {
	if v := ctx.Value(ctxKeySession); v != nil {
		if s, ok := v.(string); ok {
			return s
		}
	}
	return ""
}
