package flame

import (
	"fmt"
	"reflect"
	"sync"
)

type registration struct {
	class Class
	obj   *Object
}

var (
	registry   = make(map[string]registration)
	registryMu sync.RWMutex
)

// Use returns the process-wide singleton for c, decorating it on first use.
// Singletons are keyed by class name and live until Reset. A different Class
// claiming a name that is already registered fails with ErrClassConflict.
func Use(c Class, opts ...Option) (*Object, error) {
	name := c.Name()

	// Fast path: read-lock cache check
	registryMu.RLock()
	if cached, ok := registry[name]; ok {
		registryMu.RUnlock()
		return cached.lookup(c)
	}
	registryMu.RUnlock()

	// Slow path: decorate and cache with write-lock
	registryMu.Lock()
	defer registryMu.Unlock()

	// Double-check pattern
	if cached, ok := registry[name]; ok {
		return cached.lookup(c)
	}

	obj, err := Flame(c, opts...)
	if err != nil {
		return nil, err
	}

	registry[name] = registration{class: c, obj: obj}
	return obj, nil
}

func (r registration) lookup(c Class) (*Object, error) {
	if !sameClass(r.class, c) {
		return nil, fmt.Errorf("%w: %s", ErrClassConflict, c.Name())
	}
	return r.obj, nil
}

// sameClass reports whether a and b are the same Class value. Classes of a
// non-comparable type only match themselves by type and are treated as
// distinct.
func sameClass(a, b Class) bool {
	ta, tb := reflect.TypeOf(a), reflect.TypeOf(b)
	if ta != tb || !ta.Comparable() {
		return false
	}
	return a == b
}

// Reset clears the singleton registry.
// This is primarily useful for test isolation.
func Reset() {
	registryMu.Lock()
	defer registryMu.Unlock()
	registry = make(map[string]registration)
}
