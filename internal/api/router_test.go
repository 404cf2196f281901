package api_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/kvsession/internal/api"
	"github.com/dmitrymomot/kvsession/pkg/httpserver"
	"github.com/dmitrymomot/kvsession/pkg/requestid"
	"github.com/dmitrymomot/kvsession/pkg/session"
)

const tokenHeader = "X-Session-Token"

type apiClient struct {
	t       *testing.T
	handler http.Handler
	token   string
}

func newAPI(t *testing.T, client session.Client, checks ...httpserver.Check) *apiClient {
	t.Helper()
	handler := api.NewRouter(api.Deps{
		Client:         client,
		Transport:      session.NewHeaderTransport(tokenHeader),
		SessionOptions: []session.Option{session.WithPrefix("api")},
		Checks:         checks,
	})
	return &apiClient{t: t, handler: handler}
}

func (c *apiClient) do(method, path, body string) *httptest.ResponseRecorder {
	c.t.Helper()
	var r *http.Request
	if body != "" {
		r = httptest.NewRequest(method, path, strings.NewReader(body))
	} else {
		r = httptest.NewRequest(method, path, nil)
	}
	if c.token != "" {
		r.Header.Set(tokenHeader, "Bearer "+c.token)
	}

	w := httptest.NewRecorder()
	c.handler.ServeHTTP(w, r)

	if issued := strings.TrimPrefix(w.Header().Get(tokenHeader), "Bearer "); issued != "" {
		c.token = issued
	}
	return w
}

func errorCode(t *testing.T, w *httptest.ResponseRecorder) string {
	t.Helper()
	var body struct {
		Error struct {
			Code string `json:"code"`
		} `json:"error"`
	}
	require.NoError(t, json.NewDecoder(w.Body).Decode(&body))
	return body.Error.Code
}

func TestSessionLifecycle(t *testing.T) {
	store := session.NewMemoryClient()
	c := newAPI(t, store)

	w := c.do(http.MethodGet, "/session", "")
	require.Equal(t, http.StatusOK, w.Code)
	var sess struct {
		ID string `json:"id"`
	}
	require.NoError(t, json.NewDecoder(w.Body).Decode(&sess))
	require.NotEmpty(t, sess.ID)
	assert.Equal(t, sess.ID, c.token)

	w = c.do(http.MethodGet, "/session/attributes/cart", "")
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "not_found", errorCode(t, w))

	w = c.do(http.MethodPut, "/session/attributes/cart", `[1, 2, 3]`)
	require.Equal(t, http.StatusNoContent, w.Code)

	raw, err := store.Get(context.Background(), "api:"+sess.ID+":cart")
	require.NoError(t, err)
	assert.Equal(t, `[1,2,3]`, string(raw))

	w = c.do(http.MethodGet, "/session/attributes/cart", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `[1,2,3]`, w.Body.String())
	assert.Contains(t, w.Header().Get("Content-Type"), "application/json")

	require.Equal(t, http.StatusNoContent, c.do(http.MethodPut, "/session/attributes/user", `{"name":"ann"}`).Code)

	w = c.do(http.MethodDelete, "/session/attributes/cart", "")
	assert.Equal(t, http.StatusNoContent, w.Code)
	w = c.do(http.MethodDelete, "/session/attributes/cart", "")
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = c.do(http.MethodDelete, "/session", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"removed":1}`, w.Body.String())
	assert.Zero(t, store.Len())
}

func TestSessionIsolation(t *testing.T) {
	store := session.NewMemoryClient()
	alice := newAPI(t, store)
	bob := newAPI(t, store)

	require.Equal(t, http.StatusNoContent, alice.do(http.MethodPut, "/session/attributes/role", `"admin"`).Code)
	bob.do(http.MethodGet, "/session", "")
	require.NotEqual(t, alice.token, bob.token)

	assert.Equal(t, http.StatusNotFound, bob.do(http.MethodGet, "/session/attributes/role", "").Code)

	w := alice.do(http.MethodGet, "/session/attributes/role", "")
	assert.JSONEq(t, `"admin"`, w.Body.String())
}

func TestAttributeValidation(t *testing.T) {
	c := newAPI(t, session.NewMemoryClient())

	w := c.do(http.MethodPut, "/session/attributes/bad:key", `1`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "invalid_attribute_key", errorCode(t, w))

	w = c.do(http.MethodPut, "/session/attributes/cart", `{not json`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "invalid_json", errorCode(t, w))

	w = c.do(http.MethodPut, "/session/attributes/big", `"`+strings.Repeat("x", 2<<20)+`"`)
	assert.Equal(t, http.StatusRequestEntityTooLarge, w.Code)
}

type brokenClient struct{}

func (brokenClient) Get(context.Context, string) ([]byte, error)  { return nil, errors.New("down") }
func (brokenClient) Set(context.Context, string, []byte) error    { return errors.New("down") }
func (brokenClient) Delete(context.Context, string) (bool, error) { return false, errors.New("down") }

func TestBackendFailures(t *testing.T) {
	c := newAPI(t, brokenClient{})

	w := c.do(http.MethodPut, "/session/attributes/cart", `1`)
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)

	w = c.do(http.MethodGet, "/session/attributes/cart", "")
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)

	w = c.do(http.MethodDelete, "/session", "")
	assert.Equal(t, http.StatusNotImplemented, w.Code)
	assert.Equal(t, "not_implemented", errorCode(t, w))
}

func TestHealth(t *testing.T) {
	healthy := newAPI(t, session.NewMemoryClient(), httpserver.Check{
		Name: "memory", Fn: func(context.Context) error { return nil },
	})
	w := healthy.do(http.MethodGet, "/health/live", "")
	assert.Equal(t, http.StatusOK, w.Code)
	w = healthy.do(http.MethodGet, "/health/ready", "")
	assert.Equal(t, http.StatusOK, w.Code)

	down := newAPI(t, session.NewMemoryClient(), httpserver.Check{
		Name: "redis", Fn: func(context.Context) error { return errors.New("refused") },
	})
	w = down.do(http.MethodGet, "/health/ready", "")
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
}

func TestRequestID(t *testing.T) {
	c := newAPI(t, session.NewMemoryClient())

	w := c.do(http.MethodGet, "/health/live", "")
	assert.NotEmpty(t, w.Header().Get(requestid.Header))

	r := httptest.NewRequest(http.MethodGet, "/health/live", nil)
	r.Header.Set(requestid.Header, "req-123")
	w = httptest.NewRecorder()
	c.handler.ServeHTTP(w, r)
	assert.Equal(t, "req-123", w.Header().Get(requestid.Header))

	r = httptest.NewRequest(http.MethodGet, "/health/live", nil)
	r.Header.Set(requestid.Header, "bad id!")
	w = httptest.NewRecorder()
	c.handler.ServeHTTP(w, r)
	assert.NotEqual(t, "bad id!", w.Header().Get(requestid.Header))
}

func TestSessionStartFailure(t *testing.T) {
	handler := api.NewRouter(api.Deps{
		Client:    session.NewMemoryClient(),
		Transport: session.NewHeaderTransport(tokenHeader),
		HostOptions: []session.HostOption{session.WithIDGenerator(func() (string, error) {
			return "", errors.New("no entropy")
		})},
	})

	w := httptest.NewRecorder()
	handler.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/session", nil))

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, w.Header().Get("Content-Type"), "application/json")
	assert.Equal(t, "session_start_failed", errorCode(t, w))
}

func TestNotFound(t *testing.T) {
	c := newAPI(t, session.NewMemoryClient())
	w := c.do(http.MethodGet, "/nope", "")
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "not_found", errorCode(t, w))
}
