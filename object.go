package flame

import (
	"fmt"
	"sort"
	"sync"
)

// Object is an instance of a Class: a named table of attributes.
//
// Objects are safe for concurrent use. Flame rewrites the table once during
// decoration; afterwards calls only read it.
type Object struct {
	class string

	mu    sync.RWMutex
	attrs map[string]any
}

// NewObject returns an empty instance of the named class.
func NewObject(class string) *Object {
	return &Object{
		class: class,
		attrs: make(map[string]any),
	}
}

// Class returns the name of the class this object was built from.
func (o *Object) Class() string {
	return o.class
}

// Set binds name to value, replacing any previous binding.
// A *Method missing its Name or Qualname is stored as a copy with both
// derived from the class and attribute names.
func (o *Object) Set(name string, value any) {
	if m, ok := value.(*Method); ok {
		value = withMetadata(m, o.class, name)
	}
	o.mu.Lock()
	defer o.mu.Unlock()
	o.attrs[name] = value
}

// Get returns the value bound to name.
func (o *Object) Get(name string) (any, bool) {
	o.mu.RLock()
	defer o.mu.RUnlock()
	v, ok := o.attrs[name]
	return v, ok
}

// Names returns the attribute names in sorted order.
func (o *Object) Names() []string {
	o.mu.RLock()
	names := make([]string, 0, len(o.attrs))
	for name := range o.attrs {
		names = append(names, name)
	}
	o.mu.RUnlock()
	sort.Strings(names)
	return names
}

// Method returns the attribute bound to name if it is a *Method.
func (o *Object) Method(name string) (*Method, bool) {
	v, ok := o.Get(name)
	if !ok {
		return nil, false
	}
	m, ok := v.(*Method)
	return m, ok
}

// Call invokes the callable attribute bound to name.
// Errors returned by the callable are passed through unchanged.
func (o *Object) Call(name string, args []any, kwargs Kwargs) (any, error) {
	v, ok := o.Get(name)
	if !ok {
		return nil, fmt.Errorf("%w: %s.%s", ErrNoAttribute, o.class, name)
	}
	c, ok := v.(Callable)
	if !ok {
		return nil, fmt.Errorf("%w: %s.%s", ErrNotCallable, o.class, name)
	}
	return c.Call(args, kwargs)
}

// String implements fmt.Stringer.
func (o *Object) String() string {
	return "<" + o.class + " object>"
}
