package pg

import (
	"context"
	"errors"
	"fmt"
	"regexp"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// DefaultTable is created by Migrate.
const DefaultTable = "kvsession_entries"

var tableNameRe = regexp.MustCompile(`^[a-zA-Z_][a-zA-Z0-9_]*(\.[a-zA-Z_][a-zA-Z0-9_]*)?$`)

// DB is the subset of pgxpool.Pool, pgx.Conn and pgx.Tx used by Client.
type DB interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// Client stores session entries as rows of a key/value table.
type Client struct {
	db DB

	getSQL          string
	setSQL          string
	deleteSQL       string
	deletePrefixSQL string
}

// NewClient creates a Client over table. An empty table selects DefaultTable.
// Tables other than DefaultTable must share its schema.
func NewClient(db DB, table string) (*Client, error) {
	if table == "" {
		table = DefaultTable
	}
	if !tableNameRe.MatchString(table) {
		return nil, fmt.Errorf("%w: %q", ErrInvalidTableName, table)
	}

	return &Client{
		db:              db,
		getSQL:          fmt.Sprintf(`SELECT value FROM %s WHERE key = $1`, table),
		setSQL:          fmt.Sprintf(`INSERT INTO %s (key, value, updated_at) VALUES ($1, $2, now()) ON CONFLICT (key) DO UPDATE SET value = EXCLUDED.value, updated_at = now()`, table),
		deleteSQL:       fmt.Sprintf(`DELETE FROM %s WHERE key = $1`, table),
		deletePrefixSQL: fmt.Sprintf(`DELETE FROM %s WHERE starts_with(key, $1)`, table),
	}, nil
}

// NewClientFromConfig creates a Client over cfg.Table.
func NewClientFromConfig(db DB, cfg Config) (*Client, error) {
	return NewClient(db, cfg.Table)
}

// Get returns nil, nil when no row exists for key.
func (c *Client) Get(ctx context.Context, key string) ([]byte, error) {
	var value []byte
	if err := c.db.QueryRow(ctx, c.getSQL, key).Scan(&value); err != nil {
		if IsNotFoundError(err) {
			return nil, nil
		}
		return nil, err
	}
	if value == nil {
		value = []byte{}
	}
	return value, nil
}

// Set inserts or replaces the row for key.
func (c *Client) Set(ctx context.Context, key string, value []byte) error {
	if value == nil {
		value = []byte{}
	}
	_, err := c.db.Exec(ctx, c.setSQL, key, value)
	return err
}

// Delete removes the row for key and reports whether it existed.
func (c *Client) Delete(ctx context.Context, key string) (bool, error) {
	tag, err := c.db.Exec(ctx, c.deleteSQL, key)
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}

// DeletePrefix removes every row whose key starts with prefix.
func (c *Client) DeletePrefix(ctx context.Context, prefix string) (int64, error) {
	if prefix == "" {
		return 0, errors.New("pg: empty prefix")
	}
	tag, err := c.db.Exec(ctx, c.deletePrefixSQL, prefix)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}
