package flame

import (
	"errors"
	"fmt"
)

// Sentinel errors for programmatic error handling.
// Use errors.Is() to check for these error types.
var (
	// ErrMissingDefault indicates an annotated parameter has no keyword default
	// to fall back on.
	ErrMissingDefault = errors.New("missing keyword default")

	// ErrNoAttribute indicates an object has no attribute with the given name.
	ErrNoAttribute = errors.New("no such attribute")

	// ErrNotCallable indicates the attribute exists but cannot be called.
	ErrNotCallable = errors.New("attribute is not callable")

	// ErrInvalidTag indicates a struct tag has an invalid format or value.
	ErrInvalidTag = errors.New("invalid tag")

	// ErrUnknownCoercer indicates a coercer name is not registered.
	ErrUnknownCoercer = errors.New("unknown coercer")

	// ErrUnsupportedInput indicates a coercer cannot accept the raw value's type.
	ErrUnsupportedInput = errors.New("unsupported input")

	// ErrUnmarshal indicates a codec failed to decode the raw value.
	ErrUnmarshal = errors.New("unmarshal failed")

	// ErrBind indicates a coerced value cannot be assigned to a struct field.
	ErrBind = errors.New("bind failed")

	// ErrClassConflict indicates a different class already holds the name in
	// the singleton registry.
	ErrClassConflict = errors.New("class name already registered")

	// ErrNoBody indicates a method was called without a body.
	ErrNoBody = errors.New("method has no body")
)

// ConfigError represents a method declaration error.
// It wraps a sentinel error with the method and parameter involved.
type ConfigError struct {
	Err    error  // Underlying sentinel error (ErrMissingDefault, ErrInvalidTag, ...)
	Method string // Qualified method or type name
	Param  string // Parameter name
}

func (e *ConfigError) Error() string {
	if e.Method != "" && e.Param != "" {
		return fmt.Sprintf("%s for parameter %q (method %s)", e.Err.Error(), e.Param, e.Method)
	}
	if e.Param != "" {
		return fmt.Sprintf("%s for parameter %q", e.Err.Error(), e.Param)
	}
	if e.Method != "" {
		return fmt.Sprintf("%s (method %s)", e.Err.Error(), e.Method)
	}
	return e.Err.Error()
}

func (e *ConfigError) Unwrap() error {
	return e.Err
}

// CodecError represents a decode failure inside a Decode coercer.
type CodecError struct {
	Err         error  // Underlying sentinel error (ErrUnmarshal)
	ContentType string // Codec content type
	Cause       error  // Original error from the codec
}

func (e *CodecError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s (%s): %v", e.Err.Error(), e.ContentType, e.Cause)
	}
	return fmt.Sprintf("%s (%s)", e.Err.Error(), e.ContentType)
}

func (e *CodecError) Unwrap() error {
	return e.Err
}

// newConfigError creates a ConfigError for a parameter declaration problem.
func newConfigError(sentinel error, method, param string) error {
	return &ConfigError{
		Err:    sentinel,
		Method: method,
		Param:  param,
	}
}

// newCodecError creates a CodecError for decode failures.
func newCodecError(contentType string, cause error) error {
	return &CodecError{
		Err:         ErrUnmarshal,
		ContentType: contentType,
		Cause:       cause,
	}
}
