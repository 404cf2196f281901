// Package redis connects to Redis and adapts go-redis to the session store
// contract.
//
// The package wraps the go-redis client and adds:
//
//   - Connect, which pings the server with retries using Config.
//   - Client, a key-value adapter implementing session.Client and
//     session.PrefixDeleter. GET, SET (no expiration) and DEL map one to one,
//     DeletePrefix walks the keyspace with SCAN MATCH.
//   - Healthcheck for readiness probes.
//
// Config fields are populated from environment variables via
// github.com/caarlos0/env.
//
// # Usage
//
//	cfg := redis.Config{
//	    ConnectionURL:  "redis://localhost:6379/0",
//	    RetryAttempts:  3,
//	    RetryInterval:  5 * time.Second,
//	    ConnectTimeout: 30 * time.Second,
//	}
//
//	rdb, err := redis.Connect(ctx, cfg)
//	if err != nil {
//	    // handle error, probably terminate the application
//	}
//	defer rdb.Close()
//
//	client := redis.NewClientFromConfig(rdb, cfg)
//	r.Use(session.Middleware(client, transport))
//
// # Errors
//
// Sentinel errors (e.g. ErrRedisNotReady) are combined with the underlying
// go-redis errors using errors.Join, so errors.Is works on both.
package redis
