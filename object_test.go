package flame

import (
	"errors"
	"sync"
	"testing"
)

func TestObject_Names(t *testing.T) {
	o := NewObject("Thing")
	o.Set("zeta", 1)
	o.Set("alpha", 2)
	o.Set("__init__", Func(func([]any, Kwargs) (any, error) { return nil, nil }))

	got := o.Names()
	want := []string{"__init__", "alpha", "zeta"}
	if len(got) != len(want) {
		t.Fatalf("Names() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Names()[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestObject_SetAssignsQualname(t *testing.T) {
	o := NewObject("Thing")
	m := &Method{Name: "run"}
	o.Set("run", m)

	got, _ := o.Method("run")
	if got.Qualname != "Thing.run" {
		t.Errorf("Qualname = %q, want Thing.run", got.Qualname)
	}
	if m.Qualname != "" {
		t.Errorf("caller's method modified: Qualname = %q", m.Qualname)
	}

	kept := &Method{Name: "run", Qualname: "Other.run"}
	o.Set("alias", kept)
	if got, _ := o.Method("alias"); got != kept {
		t.Error("method with full metadata should be stored as is")
	}
}

func TestObject_SetSharedMethod(t *testing.T) {
	shared := &Method{Body: func([]any, Kwargs) (any, error) { return nil, nil }}
	a := NewObject("A")
	b := NewObject("B")
	a.Set("run", shared)
	b.Set("go", shared)

	ma, _ := a.Method("run")
	mb, _ := b.Method("go")
	if ma.Qualname != "A.run" || ma.Name != "run" {
		t.Errorf("A method = %s (%s)", ma.Qualname, ma.Name)
	}
	if mb.Qualname != "B.go" || mb.Name != "go" {
		t.Errorf("B method = %s (%s)", mb.Qualname, mb.Name)
	}
	if shared.Name != "" || shared.Qualname != "" {
		t.Errorf("shared method modified: %+v", shared)
	}
}

func TestObject_CallWithoutBody(t *testing.T) {
	obj, err := Flame(Define("Hollow", func(o *Object) error {
		o.Set("m", &Method{Name: "m"})
		o.Set("k", &Method{Params: []Param{Keyword("n", Int(), "1")}})
		return nil
	}))
	if err != nil {
		t.Fatal(err)
	}

	for _, name := range []string{"m", "k"} {
		if _, err := obj.Call(name, nil, nil); !errors.Is(err, ErrNoBody) {
			t.Errorf("Call(%s) error = %v, want ErrNoBody", name, err)
		}
	}
}

func TestObject_Call(t *testing.T) {
	o := NewObject("Thing")
	o.Set("size", 3)
	o.Set("echo", Func(func(args []any, _ Kwargs) (any, error) { return args[0], nil }))

	out, err := o.Call("echo", []any{"hi"}, nil)
	if err != nil || out != "hi" {
		t.Errorf("Call(echo) = %v, %v", out, err)
	}

	if _, err := o.Call("missing", nil, nil); !errors.Is(err, ErrNoAttribute) {
		t.Errorf("Call(missing) error = %v, want ErrNoAttribute", err)
	}
	if _, err := o.Call("size", nil, nil); !errors.Is(err, ErrNotCallable) {
		t.Errorf("Call(size) error = %v, want ErrNotCallable", err)
	}
}

func TestObject_Method(t *testing.T) {
	o := NewObject("Thing")
	o.Set("data", "x")
	o.Set("fn", Func(func([]any, Kwargs) (any, error) { return nil, nil }))

	if _, ok := o.Method("data"); ok {
		t.Error("Method(data) should be false")
	}
	if _, ok := o.Method("fn"); ok {
		t.Error("Method(fn) should be false for a plain Func")
	}
	if _, ok := o.Method("nope"); ok {
		t.Error("Method(nope) should be false")
	}
}

func TestObject_String(t *testing.T) {
	if s := NewObject("Thing").String(); s != "<Thing object>" {
		t.Errorf("String() = %q", s)
	}
}

func TestObject_ConcurrentCalls(t *testing.T) {
	obj, err := Flame(Define("Adder", func(o *Object) error {
		o.Set("add", &Method{
			Params: []Param{Keyword("n", Int(), "1")},
			Body: func(_ []any, kw Kwargs) (any, error) {
				return kw["n"].(int) + 1, nil
			},
		})
		return nil
	}))
	if err != nil {
		t.Fatal(err)
	}

	var wg sync.WaitGroup
	errs := make(chan error, 50)
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			out, err := obj.Call("add", nil, Kwargs{"n": "41"})
			if err != nil {
				errs <- err
				return
			}
			if out != 42 {
				errs <- errors.New("unexpected result")
			}
		}()
	}
	wg.Wait()
	close(errs)

	for err := range errs {
		t.Error(err)
	}
}

func TestParamKind_String(t *testing.T) {
	tests := map[ParamKind]string{
		PositionalOrKeyword: "positional-or-keyword",
		PositionalOnly:      "positional-only",
		KeywordOnly:         "keyword-only",
	}
	for k, want := range tests {
		if got := k.String(); got != want {
			t.Errorf("%d.String() = %q, want %q", k, got, want)
		}
	}
}

func TestMethod_AnnotationsAndDefaults(t *testing.T) {
	m := &Method{Params: []Param{
		Positional("x"),
		Keyword("count", Int(), 0),
		{Name: "pos", Annotation: Int(), Default: 1, HasDefault: true},
		{Name: "flag", Kind: KeywordOnly},
	}}

	ann := m.Annotations()
	if len(ann) != 2 || ann["count"] == nil || ann["pos"] == nil {
		t.Errorf("Annotations() = %v", ann)
	}

	defs := m.Defaults()
	if len(defs) != 1 || defs["count"] != 0 {
		t.Errorf("Defaults() = %v, want only keyword-only count", defs)
	}
}
