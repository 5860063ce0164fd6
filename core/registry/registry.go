package registry

import "sync"

// Registry is a thread-safe key-value store with per-key locking.
// Extension registries (api, cmd, cron, graphql) store their module lists
// here and lock the key once applied, making them immutable after startup.
type Registry struct {
	mu     sync.RWMutex
	values map[string]interface{}
	locked map[string]bool
}

// GlobalRegistry is the process-wide registry instance.
var GlobalRegistry = NewRegistry()

func NewRegistry() *Registry {
	return &Registry{
		values: make(map[string]interface{}),
		locked: make(map[string]bool),
	}
}

// GetGlobal returns the value stored under key.
func (r *Registry) GetGlobal(key string) (interface{}, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	v, ok := r.values[key]
	return v, ok
}

// SetGlobal stores a value under key. No-op if the key is locked.
func (r *Registry) SetGlobal(key string, value interface{}) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.locked[key] {
		return
	}
	r.values[key] = value
}

// Lock makes a key immutable.
func (r *Registry) Lock(key string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.locked[key] = true
}

// IsLocked reports whether a key is locked.
func (r *Registry) IsLocked(key string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.locked[key]
}

// UnlockForTesting unlocks a key so tests can re-register modules.
func (r *Registry) UnlockForTesting(key string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.locked, key)
}
