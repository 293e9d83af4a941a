package memory

import (
	"sync"
	"time"
)

const defaultCleanupInterval = 5 * time.Minute

type entry struct {
	value     any
	expiresAt time.Time
}

// Cache is an in-memory TTL cache. Safe for concurrent use.
type Cache struct {
	mu       sync.RWMutex
	entries  map[string]entry
	stopChan chan struct{}
	stopOnce sync.Once
}

func New() *Cache {
	return NewWithInterval(defaultCleanupInterval)
}

// NewWithInterval lets callers pick how often expired entries are swept.
func NewWithInterval(cleanupInterval time.Duration) *Cache {
	if cleanupInterval <= 0 {
		cleanupInterval = defaultCleanupInterval
	}
	c := &Cache{
		entries:  make(map[string]entry),
		stopChan: make(chan struct{}),
	}
	go c.cleanup(cleanupInterval)
	return c
}

func (c *Cache) Get(key string) (any, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	e, ok := c.entries[key]
	if !ok || time.Now().After(e.expiresAt) {
		return nil, false
	}
	return e.value, true
}

func (c *Cache) Set(key string, value any, ttl time.Duration) {
	c.mu.Lock()
	c.entries[key] = entry{value: value, expiresAt: time.Now().Add(ttl)}
	c.mu.Unlock()
}

func (c *Cache) Delete(key string) {
	c.mu.Lock()
	delete(c.entries, key)
	c.mu.Unlock()
}

// Stop terminates the background sweeper. Safe to call more than once.
func (c *Cache) Stop() {
	c.stopOnce.Do(func() { close(c.stopChan) })
}

func (c *Cache) cleanup(interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-c.stopChan:
			return
		case <-ticker.C:
			c.removeExpired()
		}
	}
}

func (c *Cache) removeExpired() {
	c.mu.Lock()
	defer c.mu.Unlock()

	now := time.Now()
	for k, e := range c.entries {
		if now.After(e.expiresAt) {
			delete(c.entries, k)
		}
	}
}
