package session

import (
	"context"
	"log/slog"
)

type storageContextKey struct{}

// WithStorage adds a storage to the context
func WithStorage(ctx context.Context, s *Storage) context.Context {
	return context.WithValue(ctx, storageContextKey{}, s)
}

// FromContext retrieves a storage from the context
func FromContext(ctx context.Context) (*Storage, bool) {
	s, ok := ctx.Value(storageContextKey{}).(*Storage)
	return s, ok
}

// MustFromContext retrieves a storage from the context or panics
func MustFromContext(ctx context.Context) *Storage {
	s, ok := FromContext(ctx)
	if !ok {
		panic("session: not found in context")
	}
	return s
}

// IDFromContext retrieves the started session id from the storage in context
func IDFromContext(ctx context.Context) (string, bool) {
	s, ok := FromContext(ctx)
	if !ok {
		return "", false
	}
	id, err := s.ID()
	if err != nil {
		return "", false
	}
	return id, true
}

// LoggerExtractor returns a logger ContextExtractor that adds the session id
func LoggerExtractor() func(ctx context.Context) (slog.Attr, bool) {
	return func(ctx context.Context) (slog.Attr, bool) {
		if id, ok := IDFromContext(ctx); ok {
			return slog.String("session_id", id), true
		}
		return slog.Attr{}, false
	}
}
