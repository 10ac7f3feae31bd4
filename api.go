// Package flame turns a class definition into a process-wide singleton whose
// methods coerce their keyword arguments before running.
//
// A class is described explicitly: its zero-argument constructor builds an
// Object, an attribute table holding data values and callables. Flame
// constructs that Object exactly once and replaces every public callable
// attribute with an interceptor. The interceptor runs each annotated keyword
// argument through the parameter's Coercer, falling back to the declared
// default when the caller left it out, and then calls the original body.
//
// # Basic Usage
//
//	var Counter = flame.MustFlame(flame.Define("Counter", func(o *flame.Object) error {
//	    o.Set("add", &flame.Method{
//	        Name: "add",
//	        Params: []flame.Param{
//	            flame.Keyword("count", flame.Int(), 0),
//	        },
//	        Body: func(args []any, kw flame.Kwargs) (any, error) {
//	            return kw["count"].(int) + 1, nil
//	        },
//	    })
//	    return nil
//	}))
//
//	Counter.Call("add", nil, flame.Kwargs{"count": "5"}) // 6
//	Counter.Call("add", nil, nil)                         // 1
//
// # Defaults
//
// The default of an annotated parameter is never used as-is: it is the raw
// input to the Coercer whenever the caller does not supply the keyword. Write
// defaults in the representation the Coercer accepts.
//
// # Special Names
//
// Attributes named like __init__ (double underscore prefix and suffix) are
// never wrapped, callable or not.
//
// # Errors
//
// Nothing is caught, retried or translated. A construction error comes back
// from Flame unchanged, a Coercer error comes back from the call unchanged,
// and an annotated parameter without a keyword default surfaces as a
// *ConfigError wrapping ErrMissingDefault on the first call.
//
// # Coercers
//
// Built-in coercers:
//
//   - Int, Int64, Float, Bool, String, Duration, Time - scalar conversion
//   - Decode[T](codec) - unmarshal a string or []byte with a Codec
//   - Hash(algo) - argon2, bcrypt, sha256, sha512
//   - Mask(type) - email, ssn, phone, card, ip, name
//   - Seal(enc), Open(enc) - AES-GCM encryption and decryption
//
// # Codec Providers
//
// The following codecs are available as subpackages:
//
//   - json - JSON encoding (application/json)
//   - xml - XML encoding (application/xml)
//   - yaml - YAML encoding (application/yaml)
//   - msgpack - MessagePack encoding (application/msgpack)
//   - bson - BSON encoding (application/bson)
package flame

// Kwargs holds the keyword arguments of a single call.
type Kwargs map[string]any

// Func is the calling convention shared by every method body.
type Func func(args []any, kwargs Kwargs) (any, error)

// Call invokes f, making Func a Callable.
func (f Func) Call(args []any, kwargs Kwargs) (any, error) {
	return f(args, kwargs)
}

// Callable is implemented by every attribute value that can be invoked.
// Values stored in an Object that do not implement it are data attributes.
type Callable interface {
	Call(args []any, kwargs Kwargs) (any, error)
}

// Coercer converts the raw input of a parameter into the value the method
// body receives.
type Coercer interface {
	Coerce(raw any) (any, error)
}

// CoerceFunc adapts an ordinary function to the Coercer interface.
type CoerceFunc func(raw any) (any, error)

// Coerce calls f(raw).
func (f CoerceFunc) Coerce(raw any) (any, error) {
	return f(raw)
}

// Class is a definition that can build a fresh Object with no arguments.
type Class interface {
	// Name returns the class name used in qualnames, signals and the registry.
	Name() string

	// New constructs a new instance. Errors are returned to Flame unchanged.
	New() (*Object, error)
}

// Definer is implemented by Go types that describe their own attribute table.
// Use it with ClassOf.
type Definer interface {
	// Define populates o. The receiver is a freshly allocated zero value.
	Define(o *Object) error
}
