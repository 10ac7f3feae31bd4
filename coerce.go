package flame

import "sort"

// Coerce returns a copy of kwargs in which every annotated parameter holds its
// coerced value. The raw input is the caller's value when present, otherwise
// the parameter's default. Keywords without an annotation are copied as-is.
//
// A missing default fails with a *ConfigError even when the caller supplied
// the keyword. A Coercer error is returned unchanged.
func Coerce(annotations map[string]Coercer, defaults map[string]any, kwargs Kwargs) (Kwargs, error) {
	return newCoercionPlan("", annotations, defaults).apply(kwargs)
}

// coercionPlan is the per-method coercion state captured at decoration time.
// It is immutable after construction.
type coercionPlan struct {
	method string
	params []paramPlan
}

// paramPlan describes how to coerce a single keyword.
type paramPlan struct {
	name       string
	annotation Coercer
	def        any
	hasDefault bool
}

func newCoercionPlan(method string, annotations map[string]Coercer, defaults map[string]any) *coercionPlan {
	plan := &coercionPlan{
		method: method,
		params: make([]paramPlan, 0, len(annotations)),
	}
	for name, annotation := range annotations {
		def, ok := defaults[name]
		plan.params = append(plan.params, paramPlan{
			name:       name,
			annotation: annotation,
			def:        def,
			hasDefault: ok,
		})
	}
	sort.Slice(plan.params, func(i, j int) bool {
		return plan.params[i].name < plan.params[j].name
	})
	return plan
}

// planFor builds the coercion plan of m.
func planFor(m *Method) *coercionPlan {
	name := m.Qualname
	if name == "" {
		name = m.Name
	}
	return newCoercionPlan(name, m.Annotations(), m.Defaults())
}

// apply coerces kwargs according to the plan. The input map is not modified.
func (p *coercionPlan) apply(kwargs Kwargs) (Kwargs, error) {
	out := make(Kwargs, len(kwargs)+len(p.params))
	for k, v := range kwargs {
		out[k] = v
	}

	for _, pp := range p.params {
		if !pp.hasDefault {
			return nil, newConfigError(ErrMissingDefault, p.method, pp.name)
		}

		raw, ok := kwargs[pp.name]
		if !ok {
			raw = pp.def
		}

		value, err := pp.annotation.Coerce(raw)
		if err != nil {
			return nil, err
		}
		out[pp.name] = value
	}

	return out, nil
}
