// Package testing provides test utilities for flame.
package testing

import (
	"sync"

	"github.com/zoobzio/flame"
)

// Call is one invocation seen by a Recorder.
type Call struct {
	Args   []any
	Kwargs flame.Kwargs
}

// Recorder is a method body that records what it was called with.
// It is safe for concurrent use.
type Recorder struct {
	mu    sync.Mutex
	calls []Call
}

// Body is a flame.Func recording each call and returning the received kwargs.
func (r *Recorder) Body(args []any, kwargs flame.Kwargs) (any, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.calls = append(r.calls, Call{Args: args, Kwargs: kwargs})
	return kwargs, nil
}

// Calls returns a copy of the recorded calls.
func (r *Recorder) Calls() []Call {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]Call(nil), r.calls...)
}

// Last returns the most recent call. ok is false when nothing was recorded.
func (r *Recorder) Last() (call Call, ok bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if len(r.calls) == 0 {
		return Call{}, false
	}
	return r.calls[len(r.calls)-1], true
}

// CounterClass returns a class with a single method add(*, count: int = 0)
// whose body is rec.Body, plus a data attribute and a special method.
func CounterClass(rec *Recorder) flame.Class {
	return flame.Define("Counter", func(o *flame.Object) error {
		o.Set("add", &flame.Method{
			Name:   "add",
			Doc:    "Record the coerced count.",
			Params: []flame.Param{flame.Keyword("count", flame.Int(), 0)},
			Body:   rec.Body,
		})
		o.Set("step", 1)
		o.Set("__str__", flame.Func(func([]any, flame.Kwargs) (any, error) {
			return "Counter", nil
		}))
		return nil
	})
}

// TestKey returns a valid 32-byte AES key for testing.
func TestKey() []byte {
	return []byte("32-byte-key-for-aes-256-encrypt!")
}

// TestEncryptor returns an AES encryptor configured for testing.
func TestEncryptor() flame.Encryptor {
	enc, err := flame.AES(TestKey())
	if err != nil {
		panic(err)
	}
	return enc
}
