package logger

import (
	"context"
	"log/slog"
)

type contextKey string

const (
	requestIDKey contextKey = "request_id"
	userIDKey    contextKey = "user_id"
)

// WithRequestID stores the request ID in the context.
func WithRequestID(ctx context.Context, requestID string) context.Context {
	return context.WithValue(ctx, requestIDKey, requestID)
}

// WithUserID stores the authenticated user ID in the context.
func WithUserID(ctx context.Context, userID uint) context.Context {
	return context.WithValue(ctx, userIDKey, userID)
}

// GetRequestID extracts the request ID, or "" when absent.
func GetRequestID(ctx context.Context) string {
	if requestID, ok := ctx.Value(requestIDKey).(string); ok {
		return requestID
	}
	return ""
}

// GetUserID extracts the user ID, or 0 when absent.
func GetUserID(ctx context.Context) uint {
	if userID, ok := ctx.Value(userIDKey).(uint); ok {
		return userID
	}
	return 0
}

// fromContext enriches the global logger with whatever identifiers the
// context carries.
func fromContext(ctx context.Context) *slog.Logger {
	l := GetLogger()
	if id := GetRequestID(ctx); id != "" {
		l = l.With("request_id", id)
	}
	if id := GetUserID(ctx); id != 0 {
		l = l.With("user_id", id)
	}
	return l
}

// CtxDebug logs a debug message enriched with context identifiers.
func CtxDebug(ctx context.Context, msg string, args ...any) {
	fromContext(ctx).Debug(msg, args...)
}

// CtxInfo logs an info message enriched with context identifiers.
func CtxInfo(ctx context.Context, msg string, args ...any) {
	fromContext(ctx).Info(msg, args...)
}

// CtxWarn logs a warning enriched with context identifiers.
func CtxWarn(ctx context.Context, msg string, args ...any) {
	fromContext(ctx).Warn(msg, args...)
}

// CtxError logs an error message enriched with context identifiers.
func CtxError(ctx context.Context, msg string, args ...any) {
	fromContext(ctx).Error(msg, args...)
}

// CtxWithError logs msg with the error attached as a field.
func CtxWithError(ctx context.Context, msg string, err error, args ...any) {
	fromContext(ctx).With("error", err).Error(msg, args...)
}
