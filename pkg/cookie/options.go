package cookie

import "net/http"

// Options are the attributes written with a cookie.
type Options struct {
	Path     string
	Domain   string
	MaxAge   int // seconds; 0 means a browser-session cookie, negative deletes
	Secure   bool
	HttpOnly bool
	SameSite http.SameSite
}

type Option func(*Options)

func WithPath(path string) Option { return func(o *Options) { o.Path = path } }
func WithDomain(domain string) Option { return func(o *Options) { o.Domain = domain } }
func WithMaxAge(seconds int) Option { return func(o *Options) { o.MaxAge = seconds } }
func WithSecure(secure bool) Option { return func(o *Options) { o.Secure = secure } }
func WithHTTPOnly(httpOnly bool) Option { return func(o *Options) { o.HttpOnly = httpOnly } }
func WithSameSite(s http.SameSite) Option { return func(o *Options) { o.SameSite = s } }

// applyOptions returns base with opts applied; base is passed by value and stays untouched.
func applyOptions(base Options, opts []Option) Options {
	for _, opt := range opts {
		opt(&base)
	}
	return base
}
