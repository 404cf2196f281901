package redis

import (
	"context"
	"errors"
	"strings"
	"sync/atomic"

	"github.com/redis/go-redis/v9"
)

const defaultScanBatchSize = 1000

// Client adapts a go-redis client to the session store contract.
// Values are written without expiration.
type Client struct {
	db            redis.UniversalClient
	scanBatchSize int64
}

// ClientOption configures a Client
type ClientOption func(*Client)

// WithScanBatchSize sets the COUNT hint used by DeletePrefix
func WithScanBatchSize(n int) ClientOption {
	return func(c *Client) {
		if n > 0 {
			c.scanBatchSize = int64(n)
		}
	}
}

// NewClient wraps an established go-redis client.
func NewClient(db redis.UniversalClient, opts ...ClientOption) *Client {
	c := &Client{
		db:            db,
		scanBatchSize: defaultScanBatchSize,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// NewClientFromConfig wraps db using the scan settings from cfg.
func NewClientFromConfig(db redis.UniversalClient, cfg Config) *Client {
	return NewClient(db, WithScanBatchSize(cfg.ScanBatchSize))
}

// Get returns nil, nil for missing keys (redis.Nil).
func (c *Client) Get(ctx context.Context, key string) ([]byte, error) {
	val, err := c.db.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return val, nil
}

// Set stores value under key with no expiration.
func (c *Client) Set(ctx context.Context, key string, value []byte) error {
	return c.db.Set(ctx, key, value, 0).Err()
}

// Delete removes key and reports whether it existed.
func (c *Client) Delete(ctx context.Context, key string) (bool, error) {
	n, err := c.db.Del(ctx, key).Result()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

// DeletePrefix removes every key starting with prefix.
// Keys are found with SCAN so Redis is never blocked by KEYS. Cluster and ring
// clients are scanned on every master or shard, because SCAN only walks the
// node that serves it.
func (c *Client) DeletePrefix(ctx context.Context, prefix string) (int64, error) {
	pattern := escapeGlob(prefix) + "*"

	var removed atomic.Int64
	eachNode := func(ctx context.Context, node *redis.Client) error {
		n, err := c.scanDelete(ctx, node, pattern, false)
		removed.Add(n)
		return err
	}

	switch db := c.db.(type) {
	case *redis.ClusterClient:
		// keys of one session hash to different slots, so each DEL carries one key
		err := db.ForEachMaster(ctx, func(ctx context.Context, node *redis.Client) error {
			n, err := c.scanDelete(ctx, node, pattern, true)
			removed.Add(n)
			return err
		})
		return removed.Load(), err
	case *redis.Ring:
		err := db.ForEachShard(ctx, eachNode)
		return removed.Load(), err
	default:
		return c.scanDelete(ctx, c.db, pattern, false)
	}
}

func (c *Client) scanDelete(ctx context.Context, db redis.Cmdable, pattern string, perKey bool) (int64, error) {
	var (
		cursor  uint64
		removed int64
	)
	for {
		batch, next, err := db.Scan(ctx, cursor, pattern, c.scanBatchSize).Result()
		if err != nil {
			return removed, err
		}

		if len(batch) > 0 {
			n, err := deleteKeys(ctx, db, batch, perKey)
			removed += n
			if err != nil {
				return removed, err
			}
		}

		cursor = next
		if cursor == 0 {
			return removed, nil
		}
	}
}

func deleteKeys(ctx context.Context, db redis.Cmdable, keys []string, perKey bool) (int64, error) {
	if !perKey {
		return db.Del(ctx, keys...).Result()
	}

	cmds, err := db.Pipelined(ctx, func(p redis.Pipeliner) error {
		for _, key := range keys {
			p.Del(ctx, key)
		}
		return nil
	})

	var removed int64
	for _, cmd := range cmds {
		if del, ok := cmd.(*redis.IntCmd); ok {
			removed += del.Val()
		}
	}
	return removed, err
}

// Conn returns the underlying Redis client for advanced operations.
func (c *Client) Conn() redis.UniversalClient {
	return c.db
}

// Close terminates the Redis connection.
func (c *Client) Close() error {
	return c.db.Close()
}

var globReplacer = strings.NewReplacer(
	`\`, `\\`,
	`*`, `\*`,
	`?`, `\?`,
	`[`, `\[`,
	`]`, `\]`,
)

// escapeGlob quotes the characters SCAN MATCH treats as pattern syntax.
func escapeGlob(s string) string {
	return globReplacer.Replace(s)
}
