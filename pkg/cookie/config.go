package cookie

import (
	"net/http"
	"strings"
)

// Config is the env-populated cookie manager configuration.
// Secrets is a comma separated list; the first entry is the active key.
type Config struct {
	Secrets  string        `env:"COOKIE_SECRETS" envDefault:""`
	Path     string        `env:"COOKIE_PATH" envDefault:"/"`
	Domain   string        `env:"COOKIE_DOMAIN" envDefault:""`
	MaxAge   int           `env:"COOKIE_MAX_AGE" envDefault:"0"`
	Secure   bool          `env:"COOKIE_SECURE" envDefault:"false"`
	HttpOnly bool          `env:"COOKIE_HTTP_ONLY" envDefault:"true"`
	SameSite http.SameSite `env:"COOKIE_SAME_SITE" envDefault:"2"` // 2 = http.SameSiteLaxMode
}

// DefaultConfig mirrors the envDefault tags.
func DefaultConfig() Config {
	return Config{
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	}
}

// NewFromConfig creates a Manager from cfg. HttpOnly and Secure are taken
// as-is, other zero fields keep the manager defaults.
func NewFromConfig(cfg Config, opts ...Option) (*Manager, error) {
	secrets := strings.FieldsFunc(cfg.Secrets, func(r rune) bool { return r == ',' })
	for i := range secrets {
		secrets[i] = strings.TrimSpace(secrets[i])
	}

	base := []Option{
		WithSecure(cfg.Secure),
		WithHTTPOnly(cfg.HttpOnly),
	}
	if cfg.Path != "" {
		base = append(base, WithPath(cfg.Path))
	}
	if cfg.Domain != "" {
		base = append(base, WithDomain(cfg.Domain))
	}
	if cfg.MaxAge != 0 {
		base = append(base, WithMaxAge(cfg.MaxAge))
	}
	if cfg.SameSite != 0 {
		base = append(base, WithSameSite(cfg.SameSite))
	}

	return New(secrets, append(base, opts...)...)
}
