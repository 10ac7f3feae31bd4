package flame

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cast"
)

// Int returns a coercer converting the raw value to int.
// Strings are trimmed and parsed as base 10, so "08" is 8 while "0x10" and
// "abc" fail. Other inputs go through cast, which turns nil into 0.
func Int() Coercer {
	return CoerceFunc(func(raw any) (any, error) {
		if s, ok := raw.(string); ok {
			n, err := parseDecimal(s, strconv.IntSize)
			return int(n), err
		}
		return cast.ToIntE(raw)
	})
}

// Int64 returns a coercer converting the raw value to int64.
// Strings are parsed like Int.
func Int64() Coercer {
	return CoerceFunc(func(raw any) (any, error) {
		if s, ok := raw.(string); ok {
			return parseDecimal(s, 64)
		}
		return cast.ToInt64E(raw)
	})
}

func parseDecimal(s string, bitSize int) (int64, error) {
	n, err := strconv.ParseInt(strings.TrimSpace(s), 10, bitSize)
	if err != nil {
		return 0, fmt.Errorf("unable to cast %q to int: %w", s, err)
	}
	return n, nil
}

// Float returns a coercer converting the raw value to float64.
func Float() Coercer {
	return CoerceFunc(func(raw any) (any, error) {
		return cast.ToFloat64E(raw)
	})
}

// Bool returns a coercer converting the raw value to bool.
// Accepts the strconv.ParseBool spellings as well as numbers.
func Bool() Coercer {
	return CoerceFunc(func(raw any) (any, error) {
		return cast.ToBoolE(raw)
	})
}

// String returns a coercer converting the raw value to string.
func String() Coercer {
	return CoerceFunc(func(raw any) (any, error) {
		return cast.ToStringE(raw)
	})
}

// Duration returns a coercer converting the raw value to time.Duration.
// Strings use time.ParseDuration syntax; bare numbers are nanoseconds.
func Duration() Coercer {
	return CoerceFunc(func(raw any) (any, error) {
		return cast.ToDurationE(raw)
	})
}

// Time returns a coercer converting the raw value to time.Time.
// Strings are parsed against the common RFC3339 and date layouts.
func Time() Coercer {
	return CoerceFunc(func(raw any) (any, error) {
		return cast.ToTimeE(raw)
	})
}

// Bytes returns a coercer converting a string or []byte to []byte.
func Bytes() Coercer {
	return CoerceFunc(func(raw any) (any, error) {
		return toBytes(raw)
	})
}

// Identity returns a coercer that passes the raw value through.
// It marks a parameter as annotated without changing its value, which makes
// the default fallback apply.
func Identity() Coercer {
	return CoerceFunc(func(raw any) (any, error) {
		return raw, nil
	})
}

// toBytes accepts the raw forms every byte-oriented coercer understands.
func toBytes(raw any) ([]byte, error) {
	switch v := raw.(type) {
	case []byte:
		return v, nil
	case string:
		return []byte(v), nil
	default:
		return nil, fmt.Errorf("%w: %T", ErrUnsupportedInput, raw)
	}
}
