package flame

import (
	"errors"
	"testing"
	"time"
)

func TestScalarCoercers(t *testing.T) {
	tests := []struct {
		name string
		c    Coercer
		raw  any
		want any
	}{
		{"int from string", Int(), "5", 5},
		{"int leading zero", Int(), "08", 8},
		{"int surrounding space", Int(), " 5\n", 5},
		{"int signed", Int(), "-12", -12},
		{"int from int", Int(), 0, 0},
		{"int from nil", Int(), nil, 0},
		{"int from float", Int(), 5.9, 5},
		{"int64 from string", Int64(), "9000000000", int64(9000000000)},
		{"int64 leading zero", Int64(), " 010 ", int64(10)},
		{"float from string", Float(), "2.5", 2.5},
		{"bool from string", Bool(), "true", true},
		{"bool from int", Bool(), 0, false},
		{"string from int", String(), 42, "42"},
		{"duration from string", Duration(), "1m30s", 90 * time.Second},
		{"identity", Identity(), "raw", "raw"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.c.Coerce(tt.raw)
			if err != nil {
				t.Fatalf("Coerce(%v) error: %v", tt.raw, err)
			}
			if got != tt.want {
				t.Errorf("Coerce(%v) = %#v, want %#v", tt.raw, got, tt.want)
			}
		})
	}
}

func TestScalarCoercers_Reject(t *testing.T) {
	tests := []struct {
		name string
		c    Coercer
		raw  any
	}{
		{"int", Int(), "abc"},
		{"int hex", Int(), "0x10"},
		{"int octal prefix", Int(), "0o17"},
		{"int fraction", Int(), "1.5"},
		{"int64 hex", Int64(), "0x10"},
		{"float", Float(), "two"},
		{"bool", Bool(), "maybe"},
		{"duration", Duration(), "soon"},
		{"time", Time(), "not a time"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := tt.c.Coerce(tt.raw); err == nil {
				t.Errorf("Coerce(%q) should fail", tt.raw)
			}
		})
	}
}

func TestTime(t *testing.T) {
	got, err := Time().Coerce("2024-03-01T10:00:00Z")
	if err != nil {
		t.Fatal(err)
	}
	want := time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)
	if !got.(time.Time).Equal(want) {
		t.Errorf("Coerce() = %v, want %v", got, want)
	}
}

func TestBytes(t *testing.T) {
	got, err := Bytes().Coerce("abc")
	if err != nil {
		t.Fatal(err)
	}
	if string(got.([]byte)) != "abc" {
		t.Errorf("Coerce(\"abc\") = %v", got)
	}

	if _, err := Bytes().Coerce(12); !errors.Is(err, ErrUnsupportedInput) {
		t.Errorf("Coerce(12) error = %v, want ErrUnsupportedInput", err)
	}
}
