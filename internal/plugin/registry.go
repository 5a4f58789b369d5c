package plugin

import (
	"fmt"
	"sync"
)

// Registry holds plugins by name, remembering registration order.
type Registry struct {
	mu      sync.RWMutex
	plugins map[string]Plugin
	order   []string
}

// NewRegistry creates a new empty plugin registry.
func NewRegistry() *Registry {
	return &Registry{
		plugins: make(map[string]Plugin),
	}
}

// Register adds a plugin to the registry.
// Returns an error if a plugin with the same name already exists.
func (r *Registry) Register(plugin Plugin) error {
	if plugin == nil {
		return fmt.Errorf("cannot register nil plugin")
	}

	metadata := plugin.Metadata()
	if err := metadata.Validate(); err != nil {
		return fmt.Errorf("invalid plugin metadata: %w", err)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if existing, exists := r.plugins[metadata.Name]; exists {
		return fmt.Errorf("plugin %s already registered as %s", metadata.Name, existing.Metadata())
	}

	r.plugins[metadata.Name] = plugin
	r.order = append(r.order, metadata.Name)
	return nil
}

// MustRegister is Register for static wiring; it panics on error.
func (r *Registry) MustRegister(plugins ...Plugin) *Registry {
	for _, p := range plugins {
		if err := r.Register(p); err != nil {
			panic(err)
		}
	}
	return r
}

// Get retrieves a plugin by name.
func (r *Registry) Get(name string) (Plugin, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	plugin, ok := r.plugins[name]
	if !ok {
		return nil, fmt.Errorf("plugin %s not found", name)
	}
	return plugin, nil
}

// Has checks if a plugin with the given name exists.
func (r *Registry) Has(name string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()

	_, ok := r.plugins[name]
	return ok
}

// List returns all registered plugins in registration order.
func (r *Registry) List() []Plugin {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]Plugin, 0, len(r.order))
	for _, name := range r.order {
		result = append(result, r.plugins[name])
	}
	return result
}

// Names returns the registered plugin names in registration order.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return append([]string(nil), r.order...)
}

// Count returns the number of registered plugins.
func (r *Registry) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return len(r.plugins)
}
