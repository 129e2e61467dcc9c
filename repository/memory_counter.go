package repository

import (
	"context"
	"sync"
	"time"
)

const cleanupInterval = 30 * time.Minute

type counter struct {
	count   int64
	expires time.Time
}

// MemoryCounter is a CounterRepository for a single process.
type MemoryCounter struct {
	mu          sync.Mutex
	counters    map[string]*counter
	now         func() time.Time
	stopCleanup chan struct{}
	stopOnce    sync.Once
}

func NewMemoryCounter() *MemoryCounter {
	m := &MemoryCounter{
		counters:    make(map[string]*counter),
		now:         time.Now,
		stopCleanup: make(chan struct{}),
	}
	go m.cleanupLoop()
	return m
}

func (m *MemoryCounter) Increment(_ context.Context, key string, ttl time.Duration) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	now := m.now()
	c, exists := m.counters[key]
	if !exists || !now.Before(c.expires) {
		c = &counter{expires: now.Add(ttl)}
		m.counters[key] = c
	}
	c.count++
	return c.count, nil
}

func (m *MemoryCounter) cleanupLoop() {
	ticker := time.NewTicker(cleanupInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			m.cleanup()
		case <-m.stopCleanup:
			return
		}
	}
}

func (m *MemoryCounter) cleanup() {
	m.mu.Lock()
	defer m.mu.Unlock()

	now := m.now()
	for key, c := range m.counters {
		if !now.Before(c.expires) {
			delete(m.counters, key)
		}
	}
}

func (m *MemoryCounter) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.counters)
}

// Stop ends the background cleanup. It is safe to call more than once.
func (m *MemoryCounter) Stop() {
	m.stopOnce.Do(func() { close(m.stopCleanup) })
}
