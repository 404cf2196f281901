// Package pg stores session entries in PostgreSQL using the pgx/v5 driver.
//
// It provides:
//
//   - Config, populated from environment variables via github.com/caarlos0/env.
//   - Connect, which opens a *pgxpool.Pool and retries with a growing delay
//     until the database becomes available.
//   - Migrate, which applies the embedded goose migrations creating the
//     kvsession_entries table (key TEXT PRIMARY KEY, value BYTEA, updated_at).
//   - Client, implementing session.Client and session.PrefixDeleter with one
//     statement per operation: SELECT, INSERT ... ON CONFLICT DO UPDATE,
//     DELETE and DELETE ... WHERE starts_with(key, $1).
//   - Healthcheck for readiness probes.
//
// # Usage
//
//	var cfg pg.Config
//	if err := config.Load(&cfg); err != nil {
//	    panic(err)
//	}
//
//	pool, err := pg.Connect(ctx, cfg)
//	if err != nil {
//	    panic(err)
//	}
//	defer pool.Close()
//
//	if err := pg.Migrate(ctx, pool, cfg, slog.Default()); err != nil {
//	    panic(err)
//	}
//
//	client, err := pg.NewClientFromConfig(pool, cfg)
//
// Table names are validated as plain or schema-qualified identifiers because
// they are interpolated into the statements.
package pg
