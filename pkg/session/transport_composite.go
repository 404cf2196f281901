package session

import "net/http"

// CompositeTransport tries multiple transports in order
type CompositeTransport struct {
	transports []Transport
}

// NewCompositeTransport creates a composite transport that tries multiple transports
func NewCompositeTransport(transports ...Transport) *CompositeTransport {
	return &CompositeTransport{
		transports: transports,
	}
}

// GetToken extracts session id from first successful transport
func (t *CompositeTransport) GetToken(r *http.Request, name string) (string, error) {
	for _, transport := range t.transports {
		token, err := transport.GetToken(r, name)
		if err == nil && token != "" {
			return token, nil
		}
	}
	return "", ErrTokenNotFound
}

// SetToken sends session id via all configured transports
func (t *CompositeTransport) SetToken(w http.ResponseWriter, name, token string, params CookieParams) error {
	var lastErr error
	for _, transport := range t.transports {
		if err := transport.SetToken(w, name, token, params); err != nil {
			lastErr = err
		}
	}
	return lastErr
}

// ClearToken removes session id from all configured transports
func (t *CompositeTransport) ClearToken(w http.ResponseWriter, name string, params CookieParams) error {
	var lastErr error
	for _, transport := range t.transports {
		if err := transport.ClearToken(w, name, params); err != nil {
			lastErr = err
		}
	}
	return lastErr
}

// CookieDefaults returns the defaults of the first transport that provides them
func (t *CompositeTransport) CookieDefaults() CookieParams {
	for _, transport := range t.transports {
		if dp, ok := transport.(DefaultsProvider); ok {
			return dp.CookieDefaults()
		}
	}
	return CookieParams{Path: "/", HTTPOnly: true}
}
