package session

import (
	"context"
	"time"
)

// CookieParams are the cookie attributes the host framework emits with the session cookie.
type CookieParams struct {
	Lifetime time.Duration
	Path     string
	Domain   string
	Secure   bool
	HTTPOnly bool
}

// Host is the web framework side of a session: it establishes the session,
// owns the session id and emits the cookie.
type Host interface {
	// Start establishes or loads the session
	Start(ctx context.Context) error

	// ID returns the current session id, empty before Start
	ID() string

	// CookieDefaults returns the framework cookie defaults
	CookieDefaults() CookieParams

	// SetName registers the session cookie name
	SetName(name string)
}

// CookieConfigurer is an optional interface for hosts that accept
// the merged cookie attributes before Start.
type CookieConfigurer interface {
	SetCookieParams(p CookieParams)
}
