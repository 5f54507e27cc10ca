package core

import (
	"fmt"
	"sort"
	"sync"
)

// Factory builds the modules available under a registered name. A
// factory may return more than one module; all of them are loaded
// together.
type Factory func(c *Calculator) ([]*Module, error)

// Registry manages module factory registration and lookup. It provides
// thread-safe access so module packages can register themselves from
// init functions.
type Registry struct {
	factories map[string]Factory
	mu        sync.RWMutex
}

// GlobalRegistry is the default registry instance that the built-in
// module packages register themselves with.
var GlobalRegistry = NewRegistry()

// NewRegistry creates an empty factory registry.
func NewRegistry() *Registry {
	return &Registry{factories: make(map[string]Factory)}
}

// Register adds a factory under name. Empty names, nil factories and
// duplicate names are rejected.
func (r *Registry) Register(name string, factory Factory) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if name == "" {
		return fmt.Errorf("module factory name cannot be empty")
	}
	if factory == nil {
		return fmt.Errorf("module factory %q is nil", name)
	}
	if _, exists := r.factories[name]; exists {
		return fmt.Errorf("module factory %q is already registered", name)
	}
	r.factories[name] = factory
	return nil
}

// Lookup returns the factory registered under name.
func (r *Registry) Lookup(name string) (Factory, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	factory, ok := r.factories[name]
	return factory, ok
}

// Names returns all registered factory names, sorted.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.factories))
	for name := range r.factories {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// RegisterFactory registers a factory with the global registry.
func RegisterFactory(name string, factory Factory) error {
	return GlobalRegistry.Register(name, factory)
}
