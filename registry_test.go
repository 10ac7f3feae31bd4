package flame_test

import (
	"errors"
	"testing"

	"github.com/zoobzio/flame"
)

func countingClass(name string, built *int) flame.Class {
	return flame.Define(name, func(o *flame.Object) error {
		*built++
		o.Set("noop", flame.Func(func([]any, flame.Kwargs) (any, error) { return nil, nil }))
		return nil
	})
}

func TestUse_Caching(t *testing.T) {
	flame.Reset()

	built := 0
	cls := countingClass("Cached", &built)

	o1, err := flame.Use(cls)
	if err != nil {
		t.Fatalf("Use() error: %v", err)
	}
	o2, err := flame.Use(cls)
	if err != nil {
		t.Fatalf("Use() error: %v", err)
	}

	if o1 != o2 {
		t.Error("Use() should return the cached singleton")
	}
	if built != 1 {
		t.Errorf("class constructed %d times, want 1", built)
	}
}

func TestUse_Error(t *testing.T) {
	flame.Reset()

	cause := errors.New("cannot build")
	cls := flame.Define("Failing", func(*flame.Object) error { return cause })

	if _, err := flame.Use(cls); err != cause {
		t.Errorf("Use() error = %v, want %v", err, cause)
	}

	ok := flame.Define("Failing", nil)
	if _, err := flame.Use(ok); err != nil {
		t.Errorf("failed decoration should not be cached: %v", err)
	}
}

func TestReset(t *testing.T) {
	built := 0
	cls := countingClass("Resettable", &built)

	o1, _ := flame.Use(cls)
	flame.Reset()
	o2, _ := flame.Use(cls)

	if o1 == o2 {
		t.Error("Reset() should clear the registry, new singleton expected")
	}
}

func TestUse_NameConflict(t *testing.T) {
	flame.Reset()
	t.Cleanup(flame.Reset)

	first := flame.Define("Svc", func(o *flame.Object) error {
		o.Set("x", 1)
		return nil
	})
	second := flame.Define("Svc", func(o *flame.Object) error {
		o.Set("y", 2)
		return nil
	})

	a, err := flame.Use(first)
	if err != nil {
		t.Fatalf("Use(first) error: %v", err)
	}
	b, err := flame.Use(second)
	if !errors.Is(err, flame.ErrClassConflict) {
		t.Fatalf("Use(second) error = %v, want ErrClassConflict", err)
	}
	if b != nil {
		t.Error("Use(second) should not return the first class's object")
	}

	again, err := flame.Use(first)
	if err != nil || again != a {
		t.Errorf("Use(first) again = %v, %v, want cached singleton", again, err)
	}
}

func TestUse_ClassOfShared(t *testing.T) {
	flame.Reset()
	t.Cleanup(flame.Reset)

	a, err := flame.Use(flame.ClassOf[greeter]())
	if err != nil {
		t.Fatalf("Use() error: %v", err)
	}
	b, err := flame.Use(flame.ClassOf[greeter]())
	if err != nil {
		t.Fatalf("Use() error: %v", err)
	}
	if a != b {
		t.Error("ClassOf for the same type should share one singleton")
	}
}
