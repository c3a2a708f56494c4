package mapper

import (
	"fmt"
	"sort"
	"sync"

	"json-mapper/value"
)

// Registry holds named custom functions that specs loaded from documents
// can reference by name ("custom: fullName").
type Registry struct {
	mu    sync.RWMutex
	funcs map[string]CustomFunc
}

// NewRegistry creates a new empty registry.
func NewRegistry() *Registry {
	return &Registry{
		funcs: make(map[string]CustomFunc),
	}
}

// DefaultRegistry returns a registry with the built-in functions:
//
//   - identity: the source object itself
//   - keys: the source object's keys as an array of strings
func DefaultRegistry() *Registry {
	r := NewRegistry()
	r.funcs["identity"] = identity
	r.funcs["keys"] = keys

	return r
}

// Register adds fn under name, replacing any previous function.
func (r *Registry) Register(name string, fn CustomFunc) error {
	if name == "" {
		return fmt.Errorf("%w: custom function name is empty", ErrInvalidArgument)
	}

	if fn == nil {
		return fmt.Errorf("%w: custom function %q is nil", ErrInvalidArgument, name)
	}

	r.mu.Lock()
	r.funcs[name] = fn
	r.mu.Unlock()

	return nil
}

// Get returns the function registered under name, or nil if not found.
// A nil registry has no functions.
func (r *Registry) Get(name string) CustomFunc {
	if r == nil {
		return nil
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	return r.funcs[name]
}

// Has returns true if a function with the given name exists.
func (r *Registry) Has(name string) bool {
	return r.Get(name) != nil
}

// Names returns all function names, sorted.
func (r *Registry) Names() []string {
	if r == nil {
		return nil
	}

	r.mu.RLock()
	names := make([]string, 0, len(r.funcs))

	for name := range r.funcs {
		names = append(names, name)
	}
	r.mu.RUnlock()

	sort.Strings(names)

	return names
}

func identity(source value.Value) (value.Value, error) {
	return source, nil
}

func keys(source value.Value) (value.Value, error) {
	obj, ok := source.(*value.Object)
	if !ok {
		return nil, nil
	}

	names := obj.Keys()
	out := make(value.Array, len(names))

	for i, k := range names {
		out[i] = value.String(k)
	}

	return out, nil
}
