package session

import (
	"net/http"
	"time"

	"github.com/dmitrymomot/kvsession/pkg/cookie"
)

// CookieTransport implements Transport using encrypted cookies, or signed
// ones when built with NewSignedCookieTransport.
type CookieTransport struct {
	cookieMgr *cookie.Manager
	options   []cookie.Option
	signed    bool
}

// NewCookieTransport creates a cookie-based transport. opts are applied after
// the session cookie params, so they can pin attributes such as SameSite.
func NewCookieTransport(cookieMgr *cookie.Manager, opts ...cookie.Option) *CookieTransport {
	return &CookieTransport{
		cookieMgr: cookieMgr,
		options:   opts,
	}
}

// NewSignedCookieTransport is like NewCookieTransport but stores the session id
// readable and HMAC signed instead of encrypted.
func NewSignedCookieTransport(cookieMgr *cookie.Manager, opts ...cookie.Option) *CookieTransport {
	t := NewCookieTransport(cookieMgr, opts...)
	t.signed = true
	return t
}

// GetToken extracts the session id from the cookie
func (t *CookieTransport) GetToken(r *http.Request, name string) (string, error) {
	get := t.cookieMgr.GetEncrypted
	if t.signed {
		get = t.cookieMgr.GetSigned
	}
	token, err := get(r, name)
	if err != nil {
		return "", ErrTokenNotFound
	}
	return token, nil
}

// SetToken stores the session id in a cookie built from params.
// A zero lifetime produces a browser-session cookie.
func (t *CookieTransport) SetToken(w http.ResponseWriter, name, token string, params CookieParams) error {
	opts := []cookie.Option{
		cookie.WithMaxAge(int(params.Lifetime / time.Second)),
		cookie.WithHTTPOnly(params.HTTPOnly),
		cookie.WithSecure(params.Secure),
	}
	if params.Path != "" {
		opts = append(opts, cookie.WithPath(params.Path))
	}
	if params.Domain != "" {
		opts = append(opts, cookie.WithDomain(params.Domain))
	}

	opts = append(opts, t.options...)

	if t.signed {
		return t.cookieMgr.SetSigned(w, name, token, opts...)
	}
	return t.cookieMgr.SetEncrypted(w, name, token, opts...)
}

// ClearToken removes the session cookie
func (t *CookieTransport) ClearToken(w http.ResponseWriter, name string, params CookieParams) error {
	var opts []cookie.Option
	if params.Path != "" {
		opts = append(opts, cookie.WithPath(params.Path))
	}
	if params.Domain != "" {
		opts = append(opts, cookie.WithDomain(params.Domain))
	}
	t.cookieMgr.Delete(w, name, opts...)
	return nil
}

// CookieDefaults returns the cookie manager defaults as session cookie params
func (t *CookieTransport) CookieDefaults() CookieParams {
	d := t.cookieMgr.Defaults()
	return CookieParams{
		Lifetime: time.Duration(d.MaxAge) * time.Second,
		Path:     d.Path,
		Domain:   d.Domain,
		Secure:   d.Secure,
		HTTPOnly: d.HttpOnly,
	}
}
