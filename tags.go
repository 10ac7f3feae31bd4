package flame

import (
	"fmt"
	"reflect"
	"sync"
	"unicode"
	"unicode/utf8"

	"github.com/zoobzio/sentinel"
)

func init() {
	// Register parameter tags with sentinel
	sentinel.Tag("kw")
	sentinel.Tag("coerce")
	sentinel.Tag("default")
}

// typeParams is the cached parameter declaration of a struct type.
type typeParams struct {
	typeName string
	params   []Param
	fields   []fieldBinding
}

// fieldBinding maps a keyword to the struct field it binds into.
type fieldBinding struct {
	kw    string
	name  string
	index []int
	typ   reflect.Type
}

var paramCache sync.Map // reflect.Type -> *typeParams

// Params declares keyword-only parameters from the fields of struct T:
//
//	type AddParams struct {
//	    Count int    `kw:"count" coerce:"int" default:"0"`
//	    Label string `kw:"label"`
//	    Skip  bool   `kw:"-"`
//	}
//
// The kw tag names the keyword; without it the field name with a lowercase
// first letter is used, and "-" skips the field. The coerce tag names a
// registered coercer (see Lookup). The default tag holds the raw default,
// which the coercer converts like any caller-supplied string.
func Params[T any]() ([]Param, error) {
	tp, err := paramsFor[T]()
	if err != nil {
		return nil, err
	}
	return append([]Param(nil), tp.params...), nil
}

// Bind fills a T from kwargs, matching keywords to fields as Params does.
// Values are assigned directly when assignable and converted when
// convertible; anything else fails with ErrBind. Missing and nil keywords
// leave the field at its zero value.
func Bind[T any](kwargs Kwargs) (T, error) {
	var out T
	tp, err := paramsFor[T]()
	if err != nil {
		return out, err
	}

	rv := reflect.ValueOf(&out).Elem()
	for _, fb := range tp.fields {
		v, ok := kwargs[fb.kw]
		if !ok || v == nil {
			continue
		}
		val := reflect.ValueOf(v)
		field := rv.FieldByIndex(fb.index)
		switch {
		case val.Type().AssignableTo(fb.typ):
			field.Set(val)
		case val.Type().ConvertibleTo(fb.typ) && convertible(val.Kind(), fb.typ.Kind()):
			field.Set(val.Convert(fb.typ))
		default:
			return out, fmt.Errorf("%w: field %s.%s (%s) cannot hold %T", ErrBind, tp.typeName, fb.name, fb.typ, v)
		}
	}
	return out, nil
}

// Typed builds a method whose parameters are declared by struct T and whose
// body receives the coerced keywords bound into a T.
func Typed[T any](name string, body func(args []any, params T) (any, error)) (*Method, error) {
	params, err := Params[T]()
	if err != nil {
		return nil, err
	}
	return &Method{
		Name:   name,
		Params: params,
		Body: func(args []any, kwargs Kwargs) (any, error) {
			p, err := Bind[T](kwargs)
			if err != nil {
				return nil, err
			}
			return body(args, p)
		},
	}, nil
}

// paramsFor returns the cached declaration for T, building it on first use.
func paramsFor[T any]() (*typeParams, error) {
	typ := reflect.TypeFor[T]()
	if cached, ok := paramCache.Load(typ); ok {
		return cached.(*typeParams), nil
	}
	if typ.Kind() != reflect.Struct {
		return nil, newConfigError(ErrInvalidTag, typ.String(), "")
	}

	tp, err := buildParams(sentinel.Scan[T]())
	if err != nil {
		return nil, err
	}

	actual, _ := paramCache.LoadOrStore(typ, tp)
	return actual.(*typeParams), nil
}

// buildParams turns scanned struct metadata into parameter declarations.
func buildParams(meta sentinel.Metadata) (*typeParams, error) {
	tp := &typeParams{typeName: meta.TypeName}

	for _, field := range meta.Fields {
		kw := field.Tags["kw"]
		if kw == "-" {
			continue
		}
		if kw == "" {
			kw = lowerFirst(field.Name)
		}

		p := Param{Name: kw, Kind: KeywordOnly}

		if name, ok := field.Tags["coerce"]; ok {
			c, err := Lookup(name)
			if err != nil {
				return nil, newConfigError(ErrInvalidTag, meta.TypeName, kw)
			}
			p.Annotation = c
		}

		if def, ok := field.Tags["default"]; ok {
			p.Default = def
			p.HasDefault = true
		}

		tp.params = append(tp.params, p)
		tp.fields = append(tp.fields, fieldBinding{
			kw:    kw,
			name:  field.Name,
			index: field.Index,
			typ:   field.ReflectType,
		})
	}

	return tp, nil
}

// convertible rejects the numeric-to-string conversions reflect allows
// (int 65 becoming "A").
func convertible(from, to reflect.Kind) bool {
	if to != reflect.String {
		return true
	}
	return from == reflect.String || from == reflect.Slice
}

func lowerFirst(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError {
		return s
	}
	return string(unicode.ToLower(r)) + s[size:]
}
