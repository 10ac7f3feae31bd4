package flame

import (
	"context"
	"time"
)

// wrap builds the interceptor for one callable attribute. It is a separate
// function so every interceptor closes over its own original and plan.
func wrap(ctx context.Context, class, name string, original Callable) *Method {
	m := asMethod(class, name, original)
	plan := planFor(m)

	return &Method{
		Name:     m.Name,
		Qualname: m.Qualname,
		Doc:      m.Doc,
		Params:   m.Params,
		wrapped:  m,
		Body: func(args []any, kwargs Kwargs) (any, error) {
			start := time.Now()
			coerced, err := plan.apply(kwargs)
			if err != nil {
				return nil, err
			}
			emitCallCoerced(ctx, class, m.Name, len(plan.params), time.Since(start))
			return m.Call(args, coerced)
		},
	}
}

// asMethod returns c as a *Method. Callables without method metadata are
// treated as methods with no declared parameters.
func asMethod(class, name string, c Callable) *Method {
	if m, ok := c.(*Method); ok {
		return withMetadata(m, class, name)
	}
	return &Method{
		Name:     name,
		Qualname: class + "." + name,
		Body:     c.Call,
	}
}

// withMetadata returns m with Name and Qualname filled in for the attribute
// name on class. A method missing either is copied; m itself is never
// modified.
func withMetadata(m *Method, class, name string) *Method {
	if m.Name != "" && m.Qualname != "" {
		return m
	}
	cp := *m
	if cp.Name == "" {
		cp.Name = name
	}
	if cp.Qualname == "" {
		cp.Qualname = class + "." + name
	}
	return &cp
}
