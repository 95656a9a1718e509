package storage

import (
	"fmt"
	"sort"
	"sync"
)

// UnknownBackendError is returned when a configured backend name has no
// registered factory
type UnknownBackendError struct {
	Name       string
	Registered []string
}

func (e *UnknownBackendError) Error() string {
	return fmt.Sprintf("storage backend %q not registered (have %v)", e.Name, e.Registered)
}

// Registry manages available storage backends
type Registry struct {
	mu       sync.RWMutex
	backends map[string]BackendFactory
}

// NewRegistry creates a new backend registry
func NewRegistry() *Registry {
	return &Registry{
		backends: make(map[string]BackendFactory),
	}
}

// Register adds a new backend factory to the registry
func (r *Registry) Register(name string, factory BackendFactory) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.backends[name]; exists {
		return fmt.Errorf("backend %s already registered", name)
	}

	r.backends[name] = factory
	return nil
}

// Lookup returns the factory registered under name
func (r *Registry) Lookup(name string) (BackendFactory, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	factory, exists := r.backends[name]
	if !exists {
		return nil, &UnknownBackendError{Name: name, Registered: r.names()}
	}
	return factory, nil
}

// List returns all registered backend names, sorted
func (r *Registry) List() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.names()
}

// names lists the registered backends; callers hold r.mu
func (r *Registry) names() []string {
	names := make([]string, 0, len(r.backends))
	for name := range r.backends {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Global registry instance
var defaultRegistry = NewRegistry()

// Register adds a backend to the global registry
func Register(name string, factory BackendFactory) error {
	return defaultRegistry.Register(name, factory)
}

// ListBackends returns all registered backend names from the global registry
func ListBackends() []string {
	return defaultRegistry.List()
}
