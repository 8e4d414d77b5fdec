package types

import "sync"

// Registry caches layouts by spelling. It is safe for concurrent use.
type Registry struct {
	mu      sync.RWMutex
	layouts map[string]Layout
}

// NewRegistry creates an empty layout cache
func NewRegistry() *Registry {
	return &Registry{
		layouts: make(map[string]Layout),
	}
}

// Lookup returns the layout of a spelling, computing it on first use
func (r *Registry) Lookup(spelling string) Layout {
	r.mu.RLock()
	layout, ok := r.layouts[spelling]
	r.mu.RUnlock()
	if ok {
		return layout
	}

	layout = Of(spelling)

	r.mu.Lock()
	r.layouts[spelling] = layout
	r.mu.Unlock()
	return layout
}

// Len returns the number of cached spellings
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.layouts)
}
