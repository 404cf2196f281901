package logger

import (
	"fmt"
	"io"
	"log/slog"
	"os"
)

// Environment names the deployment environment recorded on every record.
type Environment string

const (
	Development Environment = "development"
	Staging     Environment = "staging"
	Production  Environment = "production"
)

// Format represents logger output format.
type Format string

const (
	FormatJSON Format = "json"
	FormatText Format = "text"
)

// envDefaults are the level and format each environment starts from.
var envDefaults = map[Environment]struct {
	level  slog.Level
	format Format
}{
	Development: {slog.LevelDebug, FormatText},
	Staging:     {slog.LevelInfo, FormatJSON},
	Production:  {slog.LevelInfo, FormatJSON},
}

// Option configures logger creation.
type Option func(*config)

func WithLevel(l slog.Level) Option {
	return func(c *config) { c.level = l }
}

// WithFormat sets the output format. Unknown formats panic at startup.
func WithFormat(f Format) Option {
	if f != FormatJSON && f != FormatText {
		panic(fmt.Errorf("invalid log format %q: must be %q or %q", f, FormatJSON, FormatText))
	}
	return func(c *config) { c.format = f }
}

func WithTextFormatter() Option { return WithFormat(FormatText) }
func WithJSONFormatter() Option { return WithFormat(FormatJSON) }

// WithOutput sets the destination writer. Nil is ignored.
func WithOutput(w io.Writer) Option {
	return func(c *config) {
		if w != nil {
			c.output = w
		}
	}
}

// WithHandlerOptions replaces the slog handler options, including the level.
func WithHandlerOptions(opts *slog.HandlerOptions) Option {
	return func(c *config) {
		if opts != nil {
			c.handlerOptions = opts
		}
	}
}

// WithAttr adds static attributes to every record.
func WithAttr(attrs ...slog.Attr) Option {
	return func(c *config) { c.attrs = append(c.attrs, attrs...) }
}

// WithContextExtractors registers functions that pull attributes such as the
// session or request id from the context of each record.
func WithContextExtractors(extractors ...ContextExtractor) Option {
	return func(c *config) { c.extractors = append(c.extractors, extractors...) }
}

// WithEnvironment applies the defaults of env and, when service is set, tags
// records with the service name and environment. "prod" and "stage" are
// accepted aliases. Anything unknown is treated as development.
func WithEnvironment(env string, service string) Option {
	e := Environment(env)
	switch env {
	case "prod":
		e = Production
	case "stage":
		e = Staging
	}
	if _, ok := envDefaults[e]; !ok {
		e = Development
	}

	return func(c *config) {
		d := envDefaults[e]
		c.level = d.level
		c.format = d.format
		if service == "" {
			return
		}
		c.attrs = append(c.attrs,
			slog.String("service", service),
			slog.String("env", string(e)),
		)
	}
}

func WithDevelopment(service string) Option { return WithEnvironment(string(Development), service) }
func WithStaging(service string) Option     { return WithEnvironment(string(Staging), service) }
func WithProduction(service string) Option  { return WithEnvironment(string(Production), service) }

func SetAsDefault(l *slog.Logger) {
	slog.SetDefault(l)
}

type config struct {
	level          slog.Level
	format         Format
	output         io.Writer
	attrs          []slog.Attr
	handlerOptions *slog.HandlerOptions
	extractors     []ContextExtractor
}

// New creates a slog.Logger. Without options it writes JSON at INFO to stdout.
func New(opts ...Option) *slog.Logger {
	cfg := &config{
		level:  slog.LevelInfo,
		format: FormatJSON,
		output: os.Stdout,
	}
	for _, opt := range opts {
		opt(cfg)
	}

	handlerOpts := cfg.handlerOptions
	if handlerOpts == nil {
		handlerOpts = &slog.HandlerOptions{Level: cfg.level}
	}

	var handler slog.Handler = slog.NewJSONHandler(cfg.output, handlerOpts)
	if cfg.format == FormatText {
		handler = slog.NewTextHandler(cfg.output, handlerOpts)
	}
	if len(cfg.attrs) > 0 {
		handler = handler.WithAttrs(cfg.attrs)
	}

	return slog.New(NewLogHandlerDecorator(handler, cfg.extractors...))
}
