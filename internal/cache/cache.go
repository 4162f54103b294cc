// Package cache holds the in-process listing cache.
package cache

import (
	"strings"
	"sync"
	"time"
)

type entry struct {
	value     any
	expiresAt time.Time
}

// Memory is a process-local key/value store with per-entry expiration.
// Expired entries are treated as absent on read; they stay in the map until
// the key is set or invalidated again.
//
// Every invalidation bumps a generation counter. Readers that fill the cache
// after a slow fetch use SetIfGeneration so a listing computed before a write
// can never be stored after that write's invalidation.
type Memory struct {
	mu         sync.RWMutex
	items      map[string]entry
	generation uint64
	now        func() time.Time
}

// Opt configures a Memory cache.
type Opt func(*Memory)

// WithClock replaces time.Now.
func WithClock(now func() time.Time) Opt {
	return func(m *Memory) {
		m.now = now
	}
}

// NewMemory creates an empty cache.
func NewMemory(opts ...Opt) *Memory {
	m := &Memory{
		items: make(map[string]entry),
		now:   time.Now,
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Get returns the value stored under key if it has not expired.
func (m *Memory) Get(key string) (any, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	e, ok := m.items[key]
	if !ok || !m.now().Before(e.expiresAt) {
		return nil, false
	}
	return e.value, true
}

// Set stores value under key, resetting its expiry to now+ttl.
func (m *Memory) Set(key string, value any, ttl time.Duration) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.items[key] = entry{value: value, expiresAt: m.now().Add(ttl)}
}

// Generation returns the current invalidation generation.
func (m *Memory) Generation() uint64 {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return m.generation
}

// SetIfGeneration stores value only when no invalidation happened since gen
// was read. It reports whether the value was stored.
func (m *Memory) SetIfGeneration(key string, value any, ttl time.Duration, gen uint64) bool {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.generation != gen {
		return false
	}
	m.items[key] = entry{value: value, expiresAt: m.now().Add(ttl)}
	return true
}

// Invalidate removes key immediately. Removing an absent key is a no-op
// apart from advancing the generation.
func (m *Memory) Invalidate(key string) {
	m.mu.Lock()
	defer m.mu.Unlock()

	delete(m.items, key)
	m.generation++
}

// InvalidatePrefix removes every key starting with prefix.
func (m *Memory) InvalidatePrefix(prefix string) {
	m.mu.Lock()
	defer m.mu.Unlock()

	for key := range m.items {
		if strings.HasPrefix(key, prefix) {
			delete(m.items, key)
		}
	}
	m.generation++
}
