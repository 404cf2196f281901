package api

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/dmitrymomot/kvsession/pkg/httpserver"
	"github.com/dmitrymomot/kvsession/pkg/requestid"
	"github.com/dmitrymomot/kvsession/pkg/session"
)

const defaultMaxBodyBytes = 1 << 20

// Deps wires the router to a session backend.
type Deps struct {
	Client    session.Client
	Transport session.Transport
	Logger    *slog.Logger

	// SessionOptions are applied to every per-request Storage.
	SessionOptions []session.Option
	// HostOptions configure the per-request HTTPHost, e.g. the id generator.
	HostOptions []session.HostOption

	// Checks back /health/ready.
	Checks       []httpserver.Check
	ReadyTimeout time.Duration

	// MaxBodyBytes limits attribute payloads (default 1 MiB).
	MaxBodyBytes int64
}

// NewRouter builds the HTTP surface:
//
//	GET    /health/live
//	GET    /health/ready
//	GET    /session
//	DELETE /session
//	GET    /session/attributes/{key}
//	PUT    /session/attributes/{key}
//	DELETE /session/attributes/{key}
func NewRouter(d Deps) http.Handler {
	if d.Logger == nil {
		d.Logger = slog.New(slog.DiscardHandler)
	}
	if d.MaxBodyBytes <= 0 {
		d.MaxBodyBytes = defaultMaxBodyBytes
	}

	h := &handlers{log: d.Logger, maxBody: d.MaxBodyBytes}

	// attribute values travel as raw JSON, so the codec is pinned
	opts := append(append([]session.Option{}, d.SessionOptions...),
		session.WithCodec(session.JSONCodec{}),
		session.WithLogger(d.Logger),
	)

	r := chi.NewRouter()
	r.Use(requestid.Middleware, RequestLogger(d.Logger))

	r.Get("/health/live", httpserver.LivenessHandler())
	r.Get("/health/ready", httpserver.ReadinessHandler(d.Logger, d.ReadyTimeout, d.Checks...))

	r.Route("/session", func(r chi.Router) {
		r.Use(session.HostMiddleware(d.Client, func(w http.ResponseWriter, r *http.Request) session.Host {
			return session.NewHTTPHost(w, r, d.Transport, d.HostOptions...)
		}, session.WithStorageOptions(opts...), session.WithErrorHandler(h.sessionFailed)))

		r.Get("/", h.getSession)
		r.Delete("/", h.destroySession)
		r.Get("/attributes/{key}", h.getAttribute)
		r.Put("/attributes/{key}", h.putAttribute)
		r.Delete("/attributes/{key}", h.deleteAttribute)
	})

	r.NotFound(func(w http.ResponseWriter, _ *http.Request) {
		writeError(w, ErrNotFound)
	})

	return r
}
