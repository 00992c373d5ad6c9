// Package requestcontext carries per-request values (request id, client ip, admin session)
// through context.Context.
package requestcontext

import (
	"context"

	"soloparent/pkg/domain"
)

type (
	requestIDKey struct{}
	clientIPKey  struct{}
	sessionKey   struct{}
)

func WithRequestID(ctx context.Context, requestID string) context.Context {
	return context.WithValue(ctx, requestIDKey{}, requestID)
}

// RequestID returns the request id or "" when none was attached.
func RequestID(ctx context.Context) string {
	if v, ok := ctx.Value(requestIDKey{}).(string); ok {
		return v
	}
	return ""
}

func WithClientIP(ctx context.Context, ip string) context.Context {
	return context.WithValue(ctx, clientIPKey{}, ip)
}

func ClientIP(ctx context.Context) string {
	if v, ok := ctx.Value(clientIPKey{}).(string); ok {
		return v
	}
	return ""
}

func WithSession(ctx context.Context, s domain.Session) context.Context {
	return context.WithValue(ctx, sessionKey{}, s)
}

// Session returns the authenticated admin session, or a zero Session.
func Session(ctx context.Context) domain.Session {
	if v, ok := ctx.Value(sessionKey{}).(domain.Session); ok {
		return v
	}
	return domain.Session{}
}
