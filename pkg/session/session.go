package session

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"sync/atomic"

	"github.com/dmitrymomot/kvsession/pkg/logger"
)

// Storage persists session attributes in a key-value store.
// Every attribute lives under BuildKey(prefix, id, attr) and every
// Read, Write and Remove issues exactly one store command.
//
// A Storage belongs to one session context (typically one request).
// The started flag is per instance, so concurrent requests never share it.
type Storage struct {
	client Client
	host   Host
	codec  Codec
	logger *slog.Logger

	mu      sync.Mutex
	config  Config
	started atomic.Bool
}

// New creates a Storage. The configuration is built from the base defaults,
// overlaid with the host cookie defaults and finally with opts.
// The resulting name is registered with the host.
func New(client Client, host Host, opts ...Option) (*Storage, error) {
	if client == nil {
		return nil, ErrNoClient
	}
	if host == nil {
		return nil, ErrNoHost
	}

	s := &Storage{
		client: client,
		host:   host,
		codec:  JSONCodec{},
		logger: slog.New(slog.DiscardHandler),
		config: DefaultConfig().withCookieDefaults(host.CookieDefaults()),
	}

	for _, opt := range opts {
		opt(s)
	}

	host.SetName(s.config.Name)
	if cc, ok := host.(CookieConfigurer); ok {
		cc.SetCookieParams(s.config.CookieParams())
	}

	return s, nil
}

// Start establishes the session through the host and captures its id.
// Calling Start on an already started Storage is a no-op.
func (s *Storage) Start(ctx context.Context) error {
	if s.started.Load() {
		return nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.started.Load() {
		return nil
	}

	if err := s.host.Start(ctx); err != nil {
		return fmt.Errorf("session: start host: %w", err)
	}

	id := s.host.ID()
	if err := validateID(id); err != nil {
		return err
	}

	s.config.ID = id
	s.started.Store(true)

	s.logger.DebugContext(ctx, "session started", logger.SessionID(id))
	return nil
}

// IsStarted reports whether Start has captured a session id
func (s *Storage) IsStarted() bool {
	return s.started.Load()
}

// ID returns the captured session id
func (s *Storage) ID() (string, error) {
	if !s.started.Load() {
		return "", ErrNotStarted
	}
	return s.config.ID, nil
}

// Config returns a copy of the effective configuration
func (s *Storage) Config() Config {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.config
}

// Key returns the storage key for attr in the current session
func (s *Storage) Key(attr string) (string, error) {
	id, err := s.ID()
	if err != nil {
		return "", err
	}
	if err := validateAttr(attr); err != nil {
		return "", err
	}
	return BuildKey(s.config.Prefix, id, attr), nil
}

// Read loads attr into dst. It reports false and leaves dst untouched
// when the store has no value for the key.
func (s *Storage) Read(ctx context.Context, attr string, dst any) (bool, error) {
	key, err := s.Key(attr)
	if err != nil {
		return false, err
	}

	data, err := s.client.Get(ctx, key)
	if err != nil {
		s.logger.ErrorContext(ctx, "session read failed", logger.StorageKey(key), logger.Error(err))
		return false, errors.Join(ErrStore, err)
	}
	if data == nil {
		return false, nil
	}

	if err := s.codec.Unmarshal(data, dst); err != nil {
		return false, errors.Join(ErrDecode, err)
	}

	s.logger.DebugContext(ctx, "session attribute read", logger.StorageKey(key))
	return true, nil
}

// Write serializes value and stores it under attr.
// Store failures are returned, never discarded.
func (s *Storage) Write(ctx context.Context, attr string, value any) error {
	key, err := s.Key(attr)
	if err != nil {
		return err
	}

	data, err := s.codec.Marshal(value)
	if err != nil {
		return errors.Join(ErrEncode, err)
	}

	if err := s.client.Set(ctx, key, data); err != nil {
		s.logger.ErrorContext(ctx, "session write failed", logger.StorageKey(key), logger.Error(err))
		return errors.Join(ErrStore, err)
	}

	s.logger.DebugContext(ctx, "session attribute written", logger.StorageKey(key))
	return nil
}

// Remove deletes attr and reports whether a value was removed
func (s *Storage) Remove(ctx context.Context, attr string) (bool, error) {
	key, err := s.Key(attr)
	if err != nil {
		return false, err
	}

	removed, err := s.client.Delete(ctx, key)
	if err != nil {
		s.logger.ErrorContext(ctx, "session remove failed", logger.StorageKey(key), logger.Error(err))
		return false, errors.Join(ErrStore, err)
	}

	s.logger.DebugContext(ctx, "session attribute removed", logger.StorageKey(key), slog.Bool("removed", removed))
	return removed, nil
}

// Destroy removes every attribute of the current session.
// Requires a client implementing PrefixDeleter.
func (s *Storage) Destroy(ctx context.Context) (int64, error) {
	id, err := s.ID()
	if err != nil {
		return 0, err
	}

	pd, ok := s.client.(PrefixDeleter)
	if !ok {
		return 0, ErrUnsupported
	}

	prefix := BuildKey(s.config.Prefix, id, "")
	removed, err := pd.DeletePrefix(ctx, prefix)
	if err != nil {
		s.logger.ErrorContext(ctx, "session destroy failed", logger.SessionID(id), logger.Error(err))
		return 0, errors.Join(ErrStore, err)
	}

	s.logger.DebugContext(ctx, "session destroyed", logger.SessionID(id), slog.Int64("removed", removed))
	return removed, nil
}

// Get reads attr as T and returns def when the store has no value for it.
func Get[T any](ctx context.Context, s *Storage, attr string, def T) (T, error) {
	var v T
	found, err := s.Read(ctx, attr, &v)
	if err != nil {
		return def, err
	}
	if !found {
		return def, nil
	}
	return v, nil
}
