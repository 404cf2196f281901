package session

import (
	"log/slog"
	"net/http"

	"github.com/dmitrymomot/kvsession/pkg/logger"
)

// HostFunc builds the host framework for one request
type HostFunc func(w http.ResponseWriter, r *http.Request) Host

// ErrorHandler writes the response when a session cannot be set up or started.
type ErrorHandler func(w http.ResponseWriter, r *http.Request, err error)

// DefaultErrorHandler answers with a plain 500.
func DefaultErrorHandler(w http.ResponseWriter, _ *http.Request, _ error) {
	http.Error(w, "Session error", http.StatusInternalServerError)
}

type middlewareOptions struct {
	storage []Option
	onError ErrorHandler
}

// MiddlewareOption configures Middleware and HostMiddleware.
type MiddlewareOption func(*middlewareOptions)

// WithStorageOptions applies opts to every per-request Storage.
func WithStorageOptions(opts ...Option) MiddlewareOption {
	return func(m *middlewareOptions) {
		m.storage = append(m.storage, opts...)
	}
}

// WithErrorHandler replaces DefaultErrorHandler. Nil is ignored.
func WithErrorHandler(h ErrorHandler) MiddlewareOption {
	return func(m *middlewareOptions) {
		if h != nil {
			m.onError = h
		}
	}
}

// Middleware starts a Storage for every request, backed by client and
// carrying the session id through transport, and stores it in the request context.
func Middleware(client Client, transport Transport, opts ...MiddlewareOption) func(http.Handler) http.Handler {
	return HostMiddleware(client, func(w http.ResponseWriter, r *http.Request) Host {
		return NewHTTPHost(w, r, transport)
	}, opts...)
}

// HostMiddleware is like Middleware but lets the caller build the host.
func HostMiddleware(client Client, newHost HostFunc, opts ...MiddlewareOption) func(http.Handler) http.Handler {
	mo := middlewareOptions{onError: DefaultErrorHandler}
	for _, opt := range opts {
		opt(&mo)
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			s, err := New(client, newHost(w, r), mo.storage...)
			if err == nil {
				err = s.Start(r.Context())
			}
			if err != nil {
				if s != nil {
					s.logger.ErrorContext(r.Context(), "session start failed", logger.Error(err))
				} else {
					slog.ErrorContext(r.Context(), "session setup failed", logger.Error(err))
				}
				mo.onError(w, r, err)
				return
			}

			next.ServeHTTP(w, r.WithContext(WithStorage(r.Context(), s)))
		})
	}
}
