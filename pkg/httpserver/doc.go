// Package httpserver runs the kvsessiond HTTP surface with graceful shutdown,
// env-driven timeouts and health probes.
//
// Server binds its listener inside Run, so a bad address is reported as
// ErrStart right away, then serves until the context is cancelled, an
// interrupt or TERM signal arrives, or Shutdown is called. Shutdown is bounded
// by the shutdown timeout and is safe to call more than once.
//
// LivenessHandler and ReadinessHandler back /health/live and /health/ready.
// Readiness runs named Check values, typically the session store ping, under
// the request context with an optional deadline.
//
// # Usage
//
//	r := chi.NewRouter()
//	r.Get("/health/live", httpserver.LivenessHandler())
//	r.Get("/health/ready", httpserver.ReadinessHandler(log, 2*time.Second,
//	    httpserver.Check{Name: "redis", Fn: redis.Healthcheck(rdb)},
//	))
//
//	srv := httpserver.NewFromConfig(cfg, httpserver.WithLogger(log))
//	if err := srv.Run(ctx, r); err != nil {
//	    log.Error("server stopped", logger.Error(err))
//	}
//
// # Errors
//
// Listen and serve failures are joined with ErrStart, shutdown failures with
// ErrShutdown. A second Run on the same Server returns ErrAlreadyRunning.
package httpserver
