package registry

import (
	"errors"
	"fmt"
	"sort"
	"sync"

	"github.com/nfrund/formdocs/internal/config"
)

// ErrAlreadyRegistered is returned by Provide when a key is taken.
var ErrAlreadyRegistered = errors.New("service already registered")

// Key is a type-safe key for registering and retrieving services. The string
// value is a unique identifier such as "core.content".
type Key[T any] string

// Registry lets the server and modules share services at startup. It is safe
// for concurrent use.
type Registry struct {
	services sync.Map
	cfg      config.Provider
}

// New creates a new registry with the application's configuration provider.
func New(cfg config.Provider) *Registry {
	return &Registry{
		cfg: cfg,
	}
}

// Config returns the configuration provider stored in the registry.
func (r *Registry) Config() config.Provider {
	return r.cfg
}

// Set registers value under key, replacing any previous value. Tests use it
// to swap in fakes.
func Set[T any](r *Registry, key Key[T], value T) {
	r.services.Store(string(key), value)
}

// Provide registers value under key and fails if the key is already taken,
// which catches two modules claiming the same service.
func Provide[T any](r *Registry, key Key[T], value T) error {
	if _, loaded := r.services.LoadOrStore(string(key), value); loaded {
		return fmt.Errorf("%w: %s", ErrAlreadyRegistered, string(key))
	}
	return nil
}

// Get retrieves a service from the registry by its key.
func Get[T any](r *Registry, key Key[T]) (T, bool) {
	val, ok := r.services.Load(string(key))
	if !ok {
		var zero T
		return zero, false
	}
	result, ok := val.(T)
	return result, ok
}

// MustGet retrieves a service or panics if not found. Modules use it while
// booting, where a missing core service is a wiring bug.
func MustGet[T any](r *Registry, key Key[T]) T {
	val, ok := Get(r, key)
	if !ok {
		panic(fmt.Sprintf("service not found for key: %s (registered: %v)", string(key), r.Keys()))
	}
	return val
}

// Keys returns the registered keys, sorted.
func (r *Registry) Keys() []string {
	var keys []string
	r.services.Range(func(k, _ any) bool {
		keys = append(keys, k.(string))
		return true
	})
	sort.Strings(keys)
	return keys
}
