package httpserver_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/kvsession/pkg/httpserver"
)

func TestLivenessHandler(t *testing.T) {
	w := httptest.NewRecorder()
	httpserver.LivenessHandler()(w, httptest.NewRequest(http.MethodGet, "/health/live", nil))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "ALIVE", w.Body.String())
}

func TestReadinessHandler(t *testing.T) {
	ok := httpserver.Check{Name: "memory", Fn: func(context.Context) error { return nil }}
	down := httpserver.Check{Name: "redis", Fn: func(context.Context) error { return errors.New("connection refused") }}

	t.Run("all pass", func(t *testing.T) {
		w := httptest.NewRecorder()
		httpserver.ReadinessHandler(nil, time.Second, ok)(w, httptest.NewRequest(http.MethodGet, "/health/ready", nil))
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "READY", w.Body.String())
	})

	t.Run("one fails", func(t *testing.T) {
		w := httptest.NewRecorder()
		httpserver.ReadinessHandler(nil, time.Second, ok, down)(w, httptest.NewRequest(http.MethodGet, "/health/ready", nil))
		assert.Equal(t, http.StatusServiceUnavailable, w.Code)
		assert.Equal(t, "NOT_READY", w.Body.String())
	})

	t.Run("deadline applied", func(t *testing.T) {
		var hasDeadline bool
		probe := httpserver.Check{Name: "pg", Fn: func(ctx context.Context) error {
			_, hasDeadline = ctx.Deadline()
			return nil
		}}
		w := httptest.NewRecorder()
		httpserver.ReadinessHandler(nil, time.Second, probe)(w, httptest.NewRequest(http.MethodGet, "/health/ready", nil))
		assert.True(t, hasDeadline)
	})
}
