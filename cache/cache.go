// Package cache implements the evaluation cache (C6): memoization keyed
// on a canonical rendering of an expression, sound only for closed
// sub-expressions (§4.6). The guarded-map shape is grounded on the
// "conductor" workflow expression evaluator's
// map[string]*vm.Program cache behind a sync.RWMutex — reused here even
// though this engine documents itself as single-threaded (§5): the lock
// costs nothing in the single-threaded case and protects any host that
// violates that assumption without changing observable semantics.
package cache

import (
	"sync"

	"github.com/riverside/logicengine/value"
)

// Cache memoizes Value results keyed by a canonical expression string.
type Cache struct {
	mu      sync.RWMutex
	entries map[string]value.Value
	enabled bool
}

// New creates a Cache with caching enabled, matching the engine's default
// (§6: "enable_caching(bool) — default on").
func New() *Cache {
	return &Cache{entries: make(map[string]value.Value), enabled: true}
}

// Enable toggles lookups. Disabling also empties storage (§4.6).
func (c *Cache) Enable(enabled bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.enabled = enabled
	if !enabled {
		c.entries = make(map[string]value.Value)
	}
}

// Enabled reports the current toggle state.
func (c *Cache) Enabled() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.enabled
}

// Clear empties storage without changing the enabled toggle.
func (c *Cache) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries = make(map[string]value.Value)
}

// Get looks up key. The bool result also reports the current enabled
// state so callers don't need a separate Enabled() check on the hot path.
func (c *Cache) Get(key string) (value.Value, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if !c.enabled {
		return nil, false
	}
	v, ok := c.entries[key]
	return v, ok
}

// Put stores v under key, a no-op when caching is disabled.
func (c *Cache) Put(key string, v value.Value) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if !c.enabled {
		return
	}
	c.entries[key] = v
}
