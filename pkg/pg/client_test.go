package pg_test

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/kvsession/pkg/pg"
	"github.com/dmitrymomot/kvsession/pkg/session"
)

var (
	_ session.Client        = (*pg.Client)(nil)
	_ session.PrefixDeleter = (*pg.Client)(nil)
)

// fakeDB emulates the key/value table by dispatching on the statement verb.
type fakeDB struct {
	mu      sync.Mutex
	rows    map[string][]byte
	queries []string
	err     error
}

func newFakeDB() *fakeDB {
	return &fakeDB{rows: make(map[string][]byte)}
}

func (db *fakeDB) Exec(_ context.Context, sql string, args ...any) (pgconn.CommandTag, error) {
	db.mu.Lock()
	defer db.mu.Unlock()
	db.queries = append(db.queries, sql)

	if db.err != nil {
		return pgconn.CommandTag{}, db.err
	}

	key := args[0].(string)
	switch {
	case strings.HasPrefix(sql, "INSERT"):
		db.rows[key] = append([]byte{}, args[1].([]byte)...)
		return pgconn.NewCommandTag("INSERT 0 1"), nil
	case strings.Contains(sql, "starts_with"):
		var n int
		for k := range db.rows {
			if strings.HasPrefix(k, key) {
				delete(db.rows, k)
				n++
			}
		}
		return pgconn.NewCommandTag(fmt.Sprintf("DELETE %d", n)), nil
	case strings.HasPrefix(sql, "DELETE"):
		if _, ok := db.rows[key]; !ok {
			return pgconn.NewCommandTag("DELETE 0"), nil
		}
		delete(db.rows, key)
		return pgconn.NewCommandTag("DELETE 1"), nil
	}
	return pgconn.CommandTag{}, fmt.Errorf("unexpected statement: %s", sql)
}

func (db *fakeDB) QueryRow(_ context.Context, sql string, args ...any) pgx.Row {
	db.mu.Lock()
	defer db.mu.Unlock()
	db.queries = append(db.queries, sql)

	if db.err != nil {
		return fakeRow{err: db.err}
	}
	val, ok := db.rows[args[0].(string)]
	if !ok {
		return fakeRow{err: pgx.ErrNoRows}
	}
	return fakeRow{value: val}
}

type fakeRow struct {
	value []byte
	err   error
}

func (r fakeRow) Scan(dest ...any) error {
	if r.err != nil {
		return r.err
	}
	*dest[0].(*[]byte) = append([]byte{}, r.value...)
	return nil
}

func TestNewClient(t *testing.T) {
	t.Run("default table", func(t *testing.T) {
		db := newFakeDB()
		client, err := pg.NewClient(db, "")
		require.NoError(t, err)

		_, err = client.Get(context.Background(), "k")
		require.NoError(t, err)
		assert.Contains(t, db.queries[0], "FROM kvsession_entries")
	})

	t.Run("schema qualified table", func(t *testing.T) {
		db := newFakeDB()
		client, err := pg.NewClientFromConfig(db, pg.Config{Table: "app.sessions"})
		require.NoError(t, err)

		require.NoError(t, client.Set(context.Background(), "k", []byte("v")))
		assert.Contains(t, db.queries[0], "INSERT INTO app.sessions")
	})

	for _, table := range []string{"1table", "bad-name", "t; DROP TABLE x", "a.b.c"} {
		t.Run("rejects "+table, func(t *testing.T) {
			_, err := pg.NewClient(newFakeDB(), table)
			assert.ErrorIs(t, err, pg.ErrInvalidTableName)
		})
	}
}

func TestClient_Operations(t *testing.T) {
	ctx := context.Background()
	db := newFakeDB()
	client, err := pg.NewClient(db, "")
	require.NoError(t, err)

	val, err := client.Get(ctx, "session:abc:cart")
	require.NoError(t, err)
	assert.Nil(t, val)

	require.NoError(t, client.Set(ctx, "session:abc:cart", []byte(`[1,2,3]`)))
	require.NoError(t, client.Set(ctx, "session:abc:cart", []byte(`[4]`)))

	val, err = client.Get(ctx, "session:abc:cart")
	require.NoError(t, err)
	assert.Equal(t, `[4]`, string(val))

	existed, err := client.Delete(ctx, "session:abc:cart")
	require.NoError(t, err)
	assert.True(t, existed)

	existed, err = client.Delete(ctx, "session:abc:cart")
	require.NoError(t, err)
	assert.False(t, existed)

	require.NoError(t, client.Set(ctx, "session:abc:a", []byte("1")))
	require.NoError(t, client.Set(ctx, "session:abc:b", []byte("1")))
	require.NoError(t, client.Set(ctx, "session:abcd:a", []byte("1")))

	removed, err := client.DeletePrefix(ctx, "session:abc:")
	require.NoError(t, err)
	assert.Equal(t, int64(2), removed)
	assert.Len(t, db.rows, 1)

	_, err = client.DeletePrefix(ctx, "")
	assert.Error(t, err)
}

func TestClient_Errors(t *testing.T) {
	ctx := context.Background()
	boom := errors.New("connection reset")
	db := newFakeDB()
	db.err = boom
	client, err := pg.NewClient(db, "")
	require.NoError(t, err)

	_, err = client.Get(ctx, "k")
	assert.ErrorIs(t, err, boom)
	assert.ErrorIs(t, client.Set(ctx, "k", nil), boom)
	_, err = client.Delete(ctx, "k")
	assert.ErrorIs(t, err, boom)
	_, err = client.DeletePrefix(ctx, "k")
	assert.ErrorIs(t, err, boom)
}

type pingFunc func(context.Context) error

func (f pingFunc) Ping(ctx context.Context) error { return f(ctx) }

func TestHealthcheck(t *testing.T) {
	ok := pg.Healthcheck(pingFunc(func(context.Context) error { return nil }))
	assert.NoError(t, ok(context.Background()))

	failing := pg.Healthcheck(pingFunc(func(context.Context) error { return errors.New("down") }))
	assert.ErrorIs(t, failing(context.Background()), pg.ErrHealthcheckFailed)
}

func TestConnect_InvalidConfig(t *testing.T) {
	_, err := pg.Connect(context.Background(), pg.Config{})
	assert.ErrorIs(t, err, pg.ErrEmptyConnectionString)

	_, err = pg.Connect(context.Background(), pg.Config{ConnectionString: "postgres://%zz"})
	assert.ErrorIs(t, err, pg.ErrFailedToParseDBConfig)
}

func TestErrorHelpers(t *testing.T) {
	assert.True(t, pg.IsNotFoundError(fmt.Errorf("wrap: %w", pgx.ErrNoRows)))
	assert.False(t, pg.IsNotFoundError(nil))
	assert.True(t, pg.IsUndefinedTableError(&pgconn.PgError{Code: "42P01"}))
	assert.False(t, pg.IsUndefinedTableError(errors.New("other")))
}
