package store

import (
	"context"
	"sync"

	"investwise-api/internal/models"
)

// MemoryBackend keeps records in process memory. Contents are lost on restart.
type MemoryBackend struct {
	mu    sync.RWMutex
	items map[string][]byte
}

func NewMemoryBackend() *MemoryBackend {
	return &MemoryBackend{items: make(map[string][]byte)}
}

func (m *MemoryBackend) Put(_ context.Context, kind Kind, userID string, payload []byte) error {
	stored := make([]byte, len(payload))
	copy(stored, payload)

	m.mu.Lock()
	defer m.mu.Unlock()
	m.items[cacheKey(kind, userID)] = stored
	return nil
}

func (m *MemoryBackend) Get(_ context.Context, kind Kind, userID string) ([]byte, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	payload, ok := m.items[cacheKey(kind, userID)]
	if !ok {
		return nil, models.ErrNotFound
	}
	out := make([]byte, len(payload))
	copy(out, payload)
	return out, nil
}

func (m *MemoryBackend) Ping(context.Context) error { return nil }

func (m *MemoryBackend) Close() error { return nil }
