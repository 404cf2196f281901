package session

import (
	"log/slog"
	"time"
)

// Option is a functional option for configuring the Storage.
// Options are applied after the host cookie defaults and take precedence over them.
type Option func(*Storage)

// WithName sets the session cookie name
func WithName(name string) Option {
	return func(s *Storage) {
		s.config.Name = name
	}
}

// WithPrefix sets the storage key namespace
func WithPrefix(prefix string) Option {
	return func(s *Storage) {
		s.config.Prefix = prefix
	}
}

// WithoutPrefix disables key namespacing, keys become "id:attr"
func WithoutPrefix() Option {
	return WithPrefix("")
}

// WithLifetime sets the cookie lifetime passed to the host
func WithLifetime(d time.Duration) Option {
	return func(s *Storage) {
		s.config.Lifetime = d
	}
}

// WithPath sets the cookie path passed to the host
func WithPath(path string) Option {
	return func(s *Storage) {
		s.config.Path = path
	}
}

// WithDomain sets the cookie domain passed to the host
func WithDomain(domain string) Option {
	return func(s *Storage) {
		s.config.Domain = domain
	}
}

// WithSecure sets the cookie Secure flag passed to the host
func WithSecure(secure bool) Option {
	return func(s *Storage) {
		s.config.Secure = secure
	}
}

// WithHTTPOnly sets the cookie HttpOnly flag passed to the host
func WithHTTPOnly(httpOnly bool) Option {
	return func(s *Storage) {
		s.config.HTTPOnly = httpOnly
	}
}

// WithConfig replaces the whole configuration, including cookie attributes,
// so the host cookie defaults are discarded. Use ConfigOptions to overlay
// only the fields cfg sets. The captured session id is never taken from cfg.
func WithConfig(cfg Config) Option {
	return func(s *Storage) {
		cfg.ID = ""
		s.config = cfg
	}
}

// WithCodec sets the value serializer. Nil codecs are ignored.
func WithCodec(codec Codec) Option {
	return func(s *Storage) {
		if codec != nil {
			s.codec = codec
		}
	}
}

// WithLogger sets the logger. Nil loggers are ignored.
func WithLogger(l *slog.Logger) Option {
	return func(s *Storage) {
		if l != nil {
			s.logger = l
		}
	}
}
