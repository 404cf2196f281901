package session

import (
	"net/http"
	"strings"
	"time"
)

// HeaderTransport implements Transport using HTTP headers.
// The header name is fixed at construction; the session name is ignored.
type HeaderTransport struct {
	headerName string
	prefix     string
}

// NewHeaderTransport creates a new header-based transport
func NewHeaderTransport(headerName string, opts ...HeaderOption) *HeaderTransport {
	t := &HeaderTransport{
		headerName: headerName,
		prefix:     "Bearer ",
	}

	for _, opt := range opts {
		opt(t)
	}

	return t
}

// HeaderOption is a functional option for HeaderTransport
type HeaderOption func(*HeaderTransport)

// WithHeaderPrefix sets a custom prefix for the header value
func WithHeaderPrefix(prefix string) HeaderOption {
	return func(t *HeaderTransport) {
		t.prefix = prefix
	}
}

// GetToken extracts the session id from the header
func (t *HeaderTransport) GetToken(r *http.Request, _ string) (string, error) {
	value := r.Header.Get(t.headerName)
	if value == "" {
		return "", ErrTokenNotFound
	}

	if t.prefix != "" {
		value = strings.TrimPrefix(value, t.prefix)
	}

	return value, nil
}

// SetToken sends the session id in the response header
func (t *HeaderTransport) SetToken(w http.ResponseWriter, _, token string, params CookieParams) error {
	w.Header().Set(t.headerName, t.prefix+token)

	if params.Lifetime > 0 {
		w.Header().Set(t.headerName+"-Expires", time.Now().Add(params.Lifetime).Format(time.RFC3339))
	}

	return nil
}

// ClearToken removes the session header from the response
func (t *HeaderTransport) ClearToken(w http.ResponseWriter, _ string, _ CookieParams) error {
	w.Header().Del(t.headerName)
	w.Header().Del(t.headerName + "-Expires")
	return nil
}
