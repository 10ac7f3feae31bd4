package bson

import (
	"errors"
	"testing"

	"github.com/zoobzio/flame"
)

type document struct {
	ID    string `bson:"_id"`
	Count int    `bson:"count"`
}

func TestContentType(t *testing.T) {
	c := New()
	if c.ContentType() != "application/bson" {
		t.Errorf("ContentType() = %q, want %q", c.ContentType(), "application/bson")
	}
}

func TestDecode(t *testing.T) {
	data, err := New().Marshal(document{ID: "abc", Count: 7})
	if err != nil {
		t.Fatalf("Marshal() error: %v", err)
	}

	got, err := Decode[document]().Coerce(data)
	if err != nil {
		t.Fatalf("Coerce() error: %v", err)
	}
	if d := got.(document); d.ID != "abc" || d.Count != 7 {
		t.Errorf("Coerce() = %+v, want {abc 7}", d)
	}
}

func TestDecode_Invalid(t *testing.T) {
	_, err := Decode[document]().Coerce([]byte{0x01, 0x02})
	if !errors.Is(err, flame.ErrUnmarshal) {
		t.Errorf("Coerce() error = %v, want ErrUnmarshal", err)
	}
}
