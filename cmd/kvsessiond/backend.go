package main

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/dmitrymomot/kvsession/pkg/config"
	"github.com/dmitrymomot/kvsession/pkg/httpserver"
	"github.com/dmitrymomot/kvsession/pkg/logger"
	"github.com/dmitrymomot/kvsession/pkg/mongo"
	"github.com/dmitrymomot/kvsession/pkg/pg"
	"github.com/dmitrymomot/kvsession/pkg/redis"
	"github.com/dmitrymomot/kvsession/pkg/session"
)

// backend is an opened session store with its readiness probe.
type backend struct {
	client session.Client
	check  httpserver.Check
	close  func()
}

// openBackend connects the store named by KVSESSION_BACKEND. Each backend
// reads its own env configuration, so only the selected one needs settings.
func openBackend(ctx context.Context, name string, log *slog.Logger) (*backend, error) {
	log = log.With(logger.Backend(name))

	switch name {
	case "memory":
		client := session.NewMemoryClient()
		return &backend{
			client: client,
			check:  httpserver.Check{Name: name, Fn: func(context.Context) error { return nil }},
			close:  func() {},
		}, nil

	case "redis":
		var cfg redis.Config
		if err := config.Load(&cfg); err != nil {
			return nil, err
		}
		rdb, err := redis.Connect(ctx, cfg)
		if err != nil {
			return nil, err
		}
		log.InfoContext(ctx, "connected to redis")
		return &backend{
			client: redis.NewClientFromConfig(rdb, cfg),
			check:  httpserver.Check{Name: name, Fn: redis.Healthcheck(rdb)},
			close:  func() { _ = rdb.Close() },
		}, nil

	case "postgres":
		var cfg pg.Config
		if err := config.Load(&cfg); err != nil {
			return nil, err
		}
		pool, err := pg.Connect(ctx, cfg)
		if err != nil {
			return nil, err
		}
		if err := pg.Migrate(ctx, pool, cfg, log); err != nil {
			pool.Close()
			return nil, err
		}
		client, err := pg.NewClientFromConfig(pool, cfg)
		if err != nil {
			pool.Close()
			return nil, err
		}
		log.InfoContext(ctx, "connected to postgres")
		return &backend{
			client: client,
			check:  httpserver.Check{Name: name, Fn: pg.Healthcheck(pool)},
			close:  pool.Close,
		}, nil

	case "mongo":
		var cfg mongo.Config
		if err := config.Load(&cfg); err != nil {
			return nil, err
		}
		coll, err := mongo.NewCollection(ctx, cfg)
		if err != nil {
			return nil, err
		}
		mc := coll.Database().Client()
		log.InfoContext(ctx, "connected to mongo")
		return &backend{
			client: mongo.NewClient(coll),
			check:  httpserver.Check{Name: name, Fn: mongo.Healthcheck(mc)},
			close:  func() { _ = mc.Disconnect(context.Background()) },
		}, nil
	}

	return nil, fmt.Errorf("unknown backend %q: want memory, redis, postgres or mongo", name)
}
