package session

import "net/http"

// Transport defines how session ids are carried between client and server.
// name is the session name registered through Host.SetName.
type Transport interface {
	// GetToken extracts the session id from the request
	GetToken(r *http.Request, name string) (string, error)

	// SetToken sends the session id in the response
	SetToken(w http.ResponseWriter, name, token string, params CookieParams) error

	// ClearToken removes the session id from the response. params are the
	// ones the token was set with.
	ClearToken(w http.ResponseWriter, name string, params CookieParams) error
}

// DefaultsProvider is an optional interface for transports that know
// the framework cookie defaults.
type DefaultsProvider interface {
	CookieDefaults() CookieParams
}
