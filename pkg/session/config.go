package session

import "time"

const (
	// DefaultName is the cookie/session name used when none is configured.
	DefaultName = "_SESS"

	// DefaultPrefix is the namespace segment prepended to every storage key.
	DefaultPrefix = "session"
)

// Config holds the adapter configuration.
// Cookie attributes are handed to the host framework and not enforced here.
type Config struct {
	// Name is the session cookie name (default: "_SESS")
	Name string `env:"SESSION_NAME" envDefault:"_SESS"`

	// Prefix is the storage key namespace (default: "session").
	// An empty prefix produces keys of the form "id:attr".
	Prefix string `env:"SESSION_PREFIX" envDefault:"session"`

	Lifetime time.Duration `env:"SESSION_LIFETIME" envDefault:"0s"`
	Path     string        `env:"SESSION_PATH" envDefault:"/"`
	Domain   string        `env:"SESSION_DOMAIN" envDefault:""`
	Secure   bool          `env:"SESSION_SECURE" envDefault:"false"`
	HTTPOnly bool          `env:"SESSION_HTTP_ONLY" envDefault:"true"`

	// ID is the captured session id. Populated by Storage.Start.
	ID string `env:"-"`
}

// DefaultConfig returns the base configuration before host cookie defaults are merged.
func DefaultConfig() Config {
	return Config{
		Name:   DefaultName,
		Prefix: DefaultPrefix,
	}
}

// CookieParams returns the cookie attributes of the configuration.
func (c Config) CookieParams() CookieParams {
	return CookieParams{
		Lifetime: c.Lifetime,
		Path:     c.Path,
		Domain:   c.Domain,
		Secure:   c.Secure,
		HTTPOnly: c.HTTPOnly,
	}
}

// withCookieDefaults overlays host cookie defaults onto the configuration.
func (c Config) withCookieDefaults(p CookieParams) Config {
	c.Lifetime = p.Lifetime
	c.Path = p.Path
	c.Domain = p.Domain
	c.Secure = p.Secure
	c.HTTPOnly = p.HTTPOnly
	return c
}

// ConfigOptions turns cfg into Options that only override the host cookie
// defaults where cfg sets a value. The prefix is always taken from cfg, so an
// empty Prefix disables namespacing.
func ConfigOptions(cfg Config) []Option {
	opts := make([]Option, 0, 7)

	if cfg.Name != "" {
		opts = append(opts, WithName(cfg.Name))
	}
	opts = append(opts, WithPrefix(cfg.Prefix))
	if cfg.Lifetime > 0 {
		opts = append(opts, WithLifetime(cfg.Lifetime))
	}
	if cfg.Path != "" {
		opts = append(opts, WithPath(cfg.Path))
	}
	if cfg.Domain != "" {
		opts = append(opts, WithDomain(cfg.Domain))
	}
	if cfg.Secure {
		opts = append(opts, WithSecure(true))
	}
	if cfg.HTTPOnly {
		opts = append(opts, WithHTTPOnly(true))
	}

	return opts
}

// NewFromConfig creates a new Storage from the provided Config, see ConfigOptions.
func NewFromConfig(client Client, host Host, cfg Config, opts ...Option) (*Storage, error) {
	return New(client, host, append(ConfigOptions(cfg), opts...)...)
}
