package session

import (
	"context"
	"net/http"
)

// HTTPHost implements Host for a single HTTP request/response pair.
// The session id travels through a Transport; a fresh id is issued
// when the request carries none or carries an unusable one.
type HTTPHost struct {
	w         http.ResponseWriter
	r         *http.Request
	transport Transport
	generate  IDGenerator

	name     string
	defaults CookieParams
	params   CookieParams

	id      string
	started bool
	issued  bool
}

// HostOption is a functional option for HTTPHost
type HostOption func(*HTTPHost)

// WithIDGenerator sets the session id generator. Nil generators are ignored.
func WithIDGenerator(gen IDGenerator) HostOption {
	return func(h *HTTPHost) {
		if gen != nil {
			h.generate = gen
		}
	}
}

// WithCookieDefaults overrides the cookie defaults reported by the transport
func WithCookieDefaults(p CookieParams) HostOption {
	return func(h *HTTPHost) {
		h.defaults = p
	}
}

// NewHTTPHost creates a host bound to w and r
func NewHTTPHost(w http.ResponseWriter, r *http.Request, transport Transport, opts ...HostOption) *HTTPHost {
	h := &HTTPHost{
		w:         w,
		r:         r,
		transport: transport,
		generate:  RandomID,
		name:      DefaultName,
		defaults:  CookieParams{Path: "/", HTTPOnly: true},
	}

	if dp, ok := transport.(DefaultsProvider); ok {
		h.defaults = dp.CookieDefaults()
	}

	for _, opt := range opts {
		opt(h)
	}

	h.params = h.defaults
	return h
}

// Start loads the session id from the request or issues a new one.
func (h *HTTPHost) Start(_ context.Context) error {
	if h.started {
		return nil
	}
	if h.transport == nil {
		return ErrNoTransport
	}

	token, err := h.transport.GetToken(h.r, h.name)
	if err != nil || validateID(token) != nil {
		token, err = h.generate()
		if err != nil {
			return err
		}
		if err := h.transport.SetToken(h.w, h.name, token, h.params); err != nil {
			return err
		}
		h.issued = true
	}

	h.id = token
	h.started = true
	return nil
}

// ID returns the session id, empty before Start
func (h *HTTPHost) ID() string {
	return h.id
}

// CookieDefaults returns the framework cookie defaults
func (h *HTTPHost) CookieDefaults() CookieParams {
	return h.defaults
}

// SetName sets the session cookie name
func (h *HTTPHost) SetName(name string) {
	h.name = name
}

// Name returns the session cookie name
func (h *HTTPHost) Name() string {
	return h.name
}

// SetCookieParams sets the attributes used when the session cookie is emitted
func (h *HTTPHost) SetCookieParams(p CookieParams) {
	h.params = p
}

// Issued reports whether Start generated a new session id
func (h *HTTPHost) Issued() bool {
	return h.issued
}

// Clear removes the session id from the response and resets the host
func (h *HTTPHost) Clear() error {
	if h.transport == nil {
		return ErrNoTransport
	}
	h.id = ""
	h.started = false
	return h.transport.ClearToken(h.w, h.name, h.params)
}
