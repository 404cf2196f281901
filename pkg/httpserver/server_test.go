package httpserver_test

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/kvsession/pkg/httpserver"
)

// startServer runs srv in the background and waits for the start hook.
func startServer(t *testing.T, ctx context.Context, handler http.Handler, opts ...httpserver.Option) (*httpserver.Server, <-chan error) {
	t.Helper()
	started := make(chan struct{})
	opts = append([]httpserver.Option{
		httpserver.WithAddr("127.0.0.1:0"),
		httpserver.WithShutdownTimeout(100 * time.Millisecond),
		httpserver.WithStartHook(func(*slog.Logger) { close(started) }),
	}, opts...)

	srv := httpserver.New(opts...)
	done := make(chan error, 1)
	go func() { done <- srv.Run(ctx, handler) }()

	select {
	case <-started:
	case err := <-done:
		require.FailNow(t, "server exited early", "%v", err)
	case <-time.After(2 * time.Second):
		require.FailNow(t, "server did not start")
	}
	return srv, done
}

func waitDone(t *testing.T, done <-chan error) {
	t.Helper()
	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(2 * time.Second):
		require.Fail(t, "run did not finish")
	}
}

func TestRun_ServesUntilCancelled(t *testing.T) {
	t.Parallel()
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	srv, done := startServer(t, ctx, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	}))

	resp, err := http.Get("http://" + srv.Addr())
	require.NoError(t, err)
	require.NoError(t, resp.Body.Close())
	assert.Equal(t, http.StatusTeapot, resp.StatusCode)

	cancel()
	waitDone(t, done)
	assert.NoError(t, srv.Shutdown(context.Background()))
}

func TestShutdown(t *testing.T) {
	t.Parallel()
	var stopped atomic.Int32
	srv, done := startServer(t, context.Background(), http.NewServeMux(),
		httpserver.WithStopHook(func(*slog.Logger) { stopped.Add(1) }),
	)

	require.NoError(t, srv.Shutdown(context.Background()))
	require.NoError(t, srv.Shutdown(context.Background()))
	waitDone(t, done)
	assert.Equal(t, int32(1), stopped.Load())
}

func TestShutdown_BeforeRun(t *testing.T) {
	assert.NoError(t, httpserver.New().Shutdown(context.Background()))
}

func TestRun_Errors(t *testing.T) {
	t.Parallel()

	t.Run("invalid address", func(t *testing.T) {
		srv := httpserver.New(httpserver.WithAddr(":invalid"))
		err := srv.Run(context.Background(), http.NewServeMux())
		assert.ErrorIs(t, err, httpserver.ErrStart)
	})

	t.Run("already running", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		srv, done := startServer(t, ctx, http.NewServeMux())

		err := srv.Run(context.Background(), http.NewServeMux())
		assert.ErrorIs(t, err, httpserver.ErrStart)
		assert.ErrorIs(t, err, httpserver.ErrAlreadyRunning)

		cancel()
		waitDone(t, done)
	})
}

func TestOptionsApply(t *testing.T) {
	t.Parallel()
	l := slog.New(slog.NewTextHandler(io.Discard, nil))
	hs := &http.Server{}
	gotLogger := make(chan *slog.Logger, 1)

	srv, done := startServer(t, context.Background(), nil,
		httpserver.WithServer(hs),
		httpserver.WithReadTimeout(time.Second),
		httpserver.WithWriteTimeout(2*time.Second),
		httpserver.WithIdleTimeout(3*time.Second),
		httpserver.WithLogger(l),
		httpserver.WithStartHook(func(lg *slog.Logger) { gotLogger <- lg }),
	)

	assert.Equal(t, time.Second, hs.ReadTimeout)
	assert.Equal(t, 2*time.Second, hs.WriteTimeout)
	assert.Equal(t, 3*time.Second, hs.IdleTimeout)
	assert.NotNil(t, hs.Handler)
	assert.Same(t, l, <-gotLogger)

	require.NoError(t, srv.Shutdown(context.Background()))
	waitDone(t, done)
}

func TestNewFromConfig(t *testing.T) {
	t.Parallel()
	srv := httpserver.NewFromConfig(httpserver.Config{Addr: "127.0.0.1:9999"})
	assert.Equal(t, "127.0.0.1:9999", srv.Addr())

	assert.Equal(t, ":8080", httpserver.NewFromConfig(httpserver.Config{}).Addr())
}

func TestOptionPanics(t *testing.T) {
	t.Parallel()
	tests := map[string]func(){
		"addr":       func() { httpserver.WithAddr("") },
		"read":       func() { httpserver.WithReadTimeout(-time.Second) },
		"write":      func() { httpserver.WithWriteTimeout(-time.Second) },
		"idle":       func() { httpserver.WithIdleTimeout(-time.Second) },
		"shutdown":   func() { httpserver.WithShutdownTimeout(-time.Second) },
		"server":     func() { httpserver.WithServer(nil) },
		"start hook": func() { httpserver.WithStartHook(nil) },
		"stop hook":  func() { httpserver.WithStopHook(nil) },
	}
	for name, fn := range tests {
		t.Run(name, func(t *testing.T) {
			assert.Panics(t, fn)
		})
	}
	assert.NotPanics(t, func() { httpserver.WithLogger(nil) })
}
