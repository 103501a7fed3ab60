// Package feature: the kind → factory registry.
// Concrete kinds self-register in their init functions; the persistence
// codec reconstructs features through Build. The registry is written at
// process start (init time) and read-only afterwards, so a plain map with a
// mutex around writes is sufficient.

package feature

import (
	"fmt"
	"sync"
)

// Params carries the persisted parameter mapping into a factory.
// Missing parameters fall back to the kind's documented defaults.
type Params map[string]float64

// Get returns the named parameter, or def when absent.
func (p Params) Get(name string, def float64) float64 {
	if v, ok := p[name]; ok {
		return v
	}

	return def
}

// Factory constructs a Feature of one kind from its persisted parameters.
type Factory func(p Params) (Feature, error)

var (
	registryMu sync.Mutex
	registry   = make(map[string]Factory)
)

// Register binds a kind name to its factory. Each concrete kind calls this
// once from its own init. Registering the same name twice returns
// ErrKindRegistered (first registration wins).
func Register(kind string, factory Factory) error {
	registryMu.Lock()
	defer registryMu.Unlock()

	if _, ok := registry[kind]; ok {
		return fmt.Errorf("%q: %w", kind, ErrKindRegistered)
	}
	registry[kind] = factory

	return nil
}

// MustRegister is Register for init-time use; it panics on a duplicate name,
// which is a programmer error, not a runtime condition.
func MustRegister(kind string, factory Factory) {
	if err := Register(kind, factory); err != nil {
		panic(err)
	}
}

// Build reconstructs a Feature from a persisted kind name and parameters.
// Returns ErrUnknownKind when no factory is registered for the name.
func Build(kind string, p Params) (Feature, error) {
	registryMu.Lock()
	factory, ok := registry[kind]
	registryMu.Unlock()
	if !ok {
		return nil, fmt.Errorf("%q: %w", kind, ErrUnknownKind)
	}

	return factory(p)
}

// Registered reports whether a factory exists for the kind name.
func Registered(kind string) bool {
	registryMu.Lock()
	defer registryMu.Unlock()
	_, ok := registry[kind]

	return ok
}
