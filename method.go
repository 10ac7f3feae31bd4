package flame

import "fmt"

// ParamKind describes how a parameter may be passed.
type ParamKind int

const (
	// PositionalOrKeyword parameters may be passed either way.
	PositionalOrKeyword ParamKind = iota

	// PositionalOnly parameters are only passed in args.
	PositionalOnly

	// KeywordOnly parameters are only passed in kwargs. Only their defaults
	// feed the coercion fallback.
	KeywordOnly
)

// String returns the kind name.
func (k ParamKind) String() string {
	switch k {
	case PositionalOnly:
		return "positional-only"
	case KeywordOnly:
		return "keyword-only"
	default:
		return "positional-or-keyword"
	}
}

// Param describes one parameter of a Method.
type Param struct {
	Name string
	Kind ParamKind

	// Annotation coerces the raw value. Nil means the parameter is passed
	// through untouched.
	Annotation Coercer

	// Default is the raw default value, meaningful when HasDefault is set.
	Default    any
	HasDefault bool
}

// Keyword declares a keyword-only parameter with an annotation and a default.
func Keyword(name string, annotation Coercer, def any) Param {
	return Param{
		Name:       name,
		Kind:       KeywordOnly,
		Annotation: annotation,
		Default:    def,
		HasDefault: true,
	}
}

// Positional declares an un-annotated positional-or-keyword parameter.
func Positional(name string) Param {
	return Param{Name: name}
}

// Method is a callable attribute carrying the metadata the interceptor needs:
// its name, its parameter list and its body.
type Method struct {
	Name     string
	Qualname string
	Doc      string
	Params   []Param
	Body     Func

	// wrapped is the original method when this one is an interceptor.
	wrapped *Method
}

// Call invokes the method body. A method without a body fails with ErrNoBody.
func (m *Method) Call(args []any, kwargs Kwargs) (any, error) {
	if m.Body == nil {
		return nil, fmt.Errorf("%w: %s", ErrNoBody, m.Qualname)
	}
	return m.Body(args, kwargs)
}

// Annotations maps each annotated parameter to its Coercer.
func (m *Method) Annotations() map[string]Coercer {
	out := make(map[string]Coercer)
	for _, p := range m.Params {
		if p.Annotation != nil {
			out[p.Name] = p.Annotation
		}
	}
	return out
}

// Defaults maps each keyword-only parameter that declares a default to the
// raw default value.
func (m *Method) Defaults() map[string]any {
	out := make(map[string]any)
	for _, p := range m.Params {
		if p.Kind == KeywordOnly && p.HasDefault {
			out[p.Name] = p.Default
		}
	}
	return out
}

// Unwrap returns the method an interceptor was built from, or nil when m is
// not an interceptor.
func (m *Method) Unwrap() *Method {
	return m.wrapped
}

// String implements fmt.Stringer.
func (m *Method) String() string {
	name := m.Qualname
	if name == "" {
		name = m.Name
	}
	return "<method " + name + ">"
}
