package terminology

import (
	"fmt"
	"sort"
	"sync"
)

// Registry indexes value sets by canonical URL. The default registry holds
// the built-in value sets; callers may add value sets loaded at runtime.
type Registry struct {
	mu        sync.RWMutex
	valueSets map[string]*ValueSet
}

// NewRegistry creates an empty Registry.
func NewRegistry() *Registry {
	return &Registry{valueSets: make(map[string]*ValueSet)}
}

var (
	defaultOnce     sync.Once
	defaultRegistry *Registry
)

// Default returns a registry preloaded with every built-in value set.
func Default() *Registry {
	defaultOnce.Do(func() {
		defaultRegistry = NewRegistry()
		for _, vs := range Builtin() {
			_ = defaultRegistry.Add(vs)
		}
	})
	return defaultRegistry
}

// Add registers a value set, replacing any with the same URL.
func (r *Registry) Add(vs *ValueSet) error {
	if vs == nil || vs.URL == "" {
		return fmt.Errorf("terminology: value set is nil or has no URL")
	}
	vs.index()
	r.mu.Lock()
	defer r.mu.Unlock()
	r.valueSets[vs.URL] = vs
	return nil
}

// Get returns a value set by canonical URL. A trailing "|version" is ignored.
func (r *Registry) Get(url string) (*ValueSet, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	vs, ok := r.valueSets[stripVersion(url)]
	return vs, ok
}

// URLs returns the registered canonical URLs, sorted.
func (r *Registry) URLs() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]string, 0, len(r.valueSets))
	for u := range r.valueSets {
		out = append(out, u)
	}
	sort.Strings(out)
	return out
}

// Len returns the number of registered value sets.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.valueSets)
}
