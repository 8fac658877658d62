package cache

import (
	"context"
	"sync"
	"time"
)

// Memory is a process-local vector cache. Expired entries are deleted only
// when read again; there is no background sweep.
type Memory struct {
	ttl time.Duration
	now func() time.Time

	mu      sync.Mutex
	entries map[string]memoryEntry
}

type memoryEntry struct {
	vector     []float64
	capturedAt time.Time
}

func NewMemory(ttl time.Duration) *Memory {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &Memory{
		ttl:     ttl,
		now:     time.Now,
		entries: make(map[string]memoryEntry),
	}
}

func (m *Memory) Get(_ context.Context, key string) ([]float64, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()

	e, ok := m.entries[key]
	if !ok {
		return nil, false
	}
	if m.now().Sub(e.capturedAt) >= m.ttl {
		delete(m.entries, key)
		return nil, false
	}
	return e.vector, true
}

func (m *Memory) Put(_ context.Context, key string, vec []float64) {
	if key == "" || len(vec) == 0 {
		return
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.entries[key] = memoryEntry{vector: vec, capturedAt: m.now()}
}

func (m *Memory) Evict(_ context.Context, key string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.entries, key)
}

// Len reports the number of stored entries, expired ones included.
func (m *Memory) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.entries)
}
