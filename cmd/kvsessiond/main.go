// Command kvsessiond serves session attributes over HTTP, persisted in the
// key-value backend selected by KVSESSION_BACKEND.
package main

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/dmitrymomot/kvsession/internal/api"
	"github.com/dmitrymomot/kvsession/pkg/config"
	"github.com/dmitrymomot/kvsession/pkg/cookie"
	"github.com/dmitrymomot/kvsession/pkg/httpserver"
	"github.com/dmitrymomot/kvsession/pkg/logger"
	"github.com/dmitrymomot/kvsession/pkg/requestid"
	"github.com/dmitrymomot/kvsession/pkg/session"
)

type appConfig struct {
	Backend      string        `env:"KVSESSION_BACKEND" envDefault:"memory"`     // memory, redis, postgres or mongo
	Transport    string        `env:"KVSESSION_TRANSPORT" envDefault:"cookie"`   // cookie, header or both
	TokenHeader  string        `env:"KVSESSION_TOKEN_HEADER" envDefault:"X-Session-Token"`
	CookieMode   string        `env:"KVSESSION_COOKIE_MODE" envDefault:"encrypted"` // encrypted or signed
	IDFormat     string        `env:"KVSESSION_ID_FORMAT" envDefault:"random"`   // random or uuid
	ReadyTimeout time.Duration `env:"KVSESSION_READY_TIMEOUT" envDefault:"2s"`
	MaxBodyBytes int64         `env:"KVSESSION_MAX_BODY_BYTES" envDefault:"1048576"`
}

var (
	errUnknownTransport  = errors.New("unknown session transport")
	errUnknownCookieMode = errors.New("unknown session cookie mode")
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx); err != nil {
		slog.Error("kvsessiond stopped", logger.Error(err))
		os.Exit(1)
	}
}

func run(ctx context.Context) error {
	var logCfg logger.Config
	if err := config.Load(&logCfg); err != nil {
		return err
	}
	log := logger.NewFromConfig(logCfg,
		logger.WithContextExtractors(requestid.LoggerExtractor(), session.LoggerExtractor()),
	)
	logger.SetAsDefault(log)

	var cfg appConfig
	if err := config.Load(&cfg); err != nil {
		return err
	}

	var sessCfg session.Config
	if err := config.Load(&sessCfg); err != nil {
		return err
	}

	backend, err := openBackend(ctx, cfg.Backend, log)
	if err != nil {
		return err
	}
	defer backend.close()

	transport, err := newTransport(cfg)
	if err != nil {
		return err
	}

	var srvCfg httpserver.Config
	if err := config.Load(&srvCfg); err != nil {
		return err
	}

	router := api.NewRouter(api.Deps{
		Client:         backend.client,
		Transport:      transport,
		Logger:         log,
		SessionOptions: session.ConfigOptions(sessCfg),
		HostOptions:    hostOptions(cfg),
		Checks:         []httpserver.Check{backend.check},
		ReadyTimeout:   cfg.ReadyTimeout,
		MaxBodyBytes:   cfg.MaxBodyBytes,
	})

	log.InfoContext(ctx, "starting kvsessiond",
		logger.Backend(cfg.Backend),
		slog.String("transport", cfg.Transport),
		slog.String("prefix", sessCfg.Prefix),
	)

	return httpserver.NewFromConfig(srvCfg, httpserver.WithLogger(log)).Run(ctx, router)
}

func newTransport(cfg appConfig) (session.Transport, error) {
	header := func() session.Transport { return session.NewHeaderTransport(cfg.TokenHeader) }
	cookies := func() (session.Transport, error) {
		var cookieCfg cookie.Config
		if err := config.Load(&cookieCfg); err != nil {
			return nil, err
		}
		mgr, err := cookie.NewFromConfig(cookieCfg)
		if err != nil {
			return nil, err
		}
		switch cfg.CookieMode {
		case "", "encrypted":
			return session.NewCookieTransport(mgr), nil
		case "signed":
			return session.NewSignedCookieTransport(mgr), nil
		default:
			return nil, errors.Join(errUnknownCookieMode, errors.New(cfg.CookieMode))
		}
	}

	switch cfg.Transport {
	case "header":
		return header(), nil
	case "cookie":
		return cookies()
	case "both":
		c, err := cookies()
		if err != nil {
			return nil, err
		}
		return session.NewCompositeTransport(header(), c), nil
	default:
		return nil, errors.Join(errUnknownTransport, errors.New(cfg.Transport))
	}
}

func hostOptions(cfg appConfig) []session.HostOption {
	if cfg.IDFormat == "uuid" {
		return []session.HostOption{session.WithIDGenerator(session.UUIDGenerator)}
	}
	return nil
}
