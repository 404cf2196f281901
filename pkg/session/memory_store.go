package session

import (
	"context"
	"strings"
	"sync"
)

// MemoryClient implements Client using an in-process map.
// Useful for tests and single-instance development setups.
type MemoryClient struct {
	mu   sync.RWMutex
	data map[string][]byte
}

// NewMemoryClient creates a new in-memory store client
func NewMemoryClient() *MemoryClient {
	return &MemoryClient{
		data: make(map[string][]byte),
	}
}

// Get returns a copy of the stored payload, nil on a miss
func (m *MemoryClient) Get(_ context.Context, key string) ([]byte, error) {
	m.mu.RLock()
	val, exists := m.data[key]
	m.mu.RUnlock()

	if !exists {
		return nil, nil
	}

	out := make([]byte, len(val))
	copy(out, val)
	return out, nil
}

// Set stores a copy of value under key
func (m *MemoryClient) Set(_ context.Context, key string, value []byte) error {
	stored := make([]byte, len(value))
	copy(stored, value)

	m.mu.Lock()
	m.data[key] = stored
	m.mu.Unlock()
	return nil
}

// Delete removes key and reports whether it existed
func (m *MemoryClient) Delete(_ context.Context, key string) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	_, exists := m.data[key]
	delete(m.data, key)
	return exists, nil
}

// DeletePrefix removes every key starting with prefix
func (m *MemoryClient) DeletePrefix(_ context.Context, prefix string) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	var removed int64
	for key := range m.data {
		if strings.HasPrefix(key, prefix) {
			delete(m.data, key)
			removed++
		}
	}
	return removed, nil
}

// Len returns the number of stored keys
func (m *MemoryClient) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.data)
}
