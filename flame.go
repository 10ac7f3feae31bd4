package flame

import (
	"context"
	"strings"
	"time"
)

// Option configures Flame.
type Option func(*options)

type options struct {
	ctx context.Context
}

// WithContext sets the context used for emitted signals.
func WithContext(ctx context.Context) Option {
	return func(o *options) {
		o.ctx = ctx
	}
}

// Flame constructs the single instance of c and replaces each callable,
// non-special attribute with an interceptor that coerces annotated keyword
// arguments before calling the original.
//
// Attribute names are enumerated once. Anything set on the object after
// Flame returns is left alone. Each call builds a fresh instance; the result
// is owned by the caller.
func Flame(c Class, opts ...Option) (*Object, error) {
	cfg := options{ctx: context.Background()}
	for _, opt := range opts {
		opt(&cfg)
	}

	start := time.Now()
	obj, err := c.New()
	if err != nil {
		return nil, err
	}

	wrapped := 0
	for _, name := range obj.Names() {
		value, _ := obj.Get(name)
		original, ok := value.(Callable)
		if !ok || isSpecial(name) {
			continue
		}

		m := wrap(cfg.ctx, obj.Class(), name, original)
		obj.Set(name, m)
		wrapped++
		emitMethodWrapped(cfg.ctx, obj.Class(), name, len(m.Annotations()))
	}

	emitDecorated(cfg.ctx, obj.Class(), wrapped, time.Since(start))
	return obj, nil
}

// MustFlame is like Flame but panics on error. It is meant for package-level
// variable initialization.
func MustFlame(c Class, opts ...Option) *Object {
	obj, err := Flame(c, opts...)
	if err != nil {
		panic("flame: " + c.Name() + ": " + err.Error())
	}
	return obj
}

// isSpecial reports whether name is reserved (double underscore prefix and
// suffix).
func isSpecial(name string) bool {
	return strings.HasPrefix(name, "__") && strings.HasSuffix(name, "__")
}
