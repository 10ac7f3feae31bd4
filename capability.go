package flame

import (
	"fmt"
	"sync"
)

// Names of the built-in coercers, usable in `coerce:"..."` struct tags.
const (
	CoerceInt      = "int"
	CoerceInt64    = "int64"
	CoerceFloat    = "float"
	CoerceBool     = "bool"
	CoerceString   = "str"
	CoerceBytes    = "bytes"
	CoerceDuration = "duration"
	CoerceTime     = "time"
	CoerceAny      = "any"
)

var (
	coercers   = builtinCoercers()
	coercersMu sync.RWMutex
)

// builtinCoercers returns the default named coercer registry.
func builtinCoercers() map[string]Coercer {
	named := map[string]Coercer{
		CoerceInt:      Int(),
		CoerceInt64:    Int64(),
		CoerceFloat:    Float(),
		CoerceBool:     Bool(),
		CoerceString:   String(),
		CoerceBytes:    Bytes(),
		CoerceDuration: Duration(),
		CoerceTime:     Time(),
		CoerceAny:      Identity(),
	}
	for _, algo := range []HashAlgo{HashArgon2, HashBcrypt, HashSHA256, HashSHA512} {
		named["hash."+string(algo)] = Hash(algo)
	}
	for mt := range maskers {
		named["mask."+string(mt)] = Mask(mt)
	}
	return named
}

// Register makes c available under name, replacing any previous coercer.
// Safe for concurrent use.
func Register(name string, c Coercer) {
	coercersMu.Lock()
	defer coercersMu.Unlock()
	coercers[name] = c
}

// Lookup returns the coercer registered under name.
func Lookup(name string) (Coercer, error) {
	coercersMu.RLock()
	defer coercersMu.RUnlock()
	c, ok := coercers[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownCoercer, name)
	}
	return c, nil
}

// IsValidCoercer returns true if a coercer is registered under name.
func IsValidCoercer(name string) bool {
	coercersMu.RLock()
	defer coercersMu.RUnlock()
	_, ok := coercers[name]
	return ok
}
