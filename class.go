package flame

import "reflect"

// classDef is a Class built from a name and an initializer.
type classDef struct {
	name string
	init func(o *Object) error
}

// Define returns a Class whose zero-argument constructor creates an empty
// Object and passes it to init. A nil init yields an object with no
// attributes.
func Define(name string, init func(o *Object) error) Class {
	return &classDef{name: name, init: init}
}

func (c *classDef) Name() string { return c.name }

func (c *classDef) New() (*Object, error) {
	o := NewObject(c.name)
	if c.init == nil {
		return o, nil
	}
	if err := c.init(o); err != nil {
		return nil, err
	}
	return o, nil
}

// typeClass is a Class backed by a Go type implementing Definer. It is a
// comparable value, so every ClassOf[T]() result for one T is the same Class.
type typeClass[T any, PT interface {
	*T
	Definer
}] struct {
	name string
}

// ClassOf returns a Class for the Go type T. Construction allocates a zero T
// and lets *T define the attribute table, so methods can close over the
// receiver's state:
//
//	type Greeter struct{ greeting string }
//
//	func (g *Greeter) Define(o *flame.Object) error {
//	    g.greeting = "hello"
//	    o.Set("greet", &flame.Method{Name: "greet", Body: g.greet})
//	    return nil
//	}
//
//	var greeter = flame.MustFlame(flame.ClassOf[Greeter]())
func ClassOf[T any, PT interface {
	*T
	Definer
}]() Class {
	return typeClass[T, PT]{name: reflect.TypeFor[T]().Name()}
}

func (c typeClass[T, PT]) Name() string { return c.name }

func (c typeClass[T, PT]) New() (*Object, error) {
	o := NewObject(c.name)
	receiver := PT(new(T))
	if err := receiver.Define(o); err != nil {
		return nil, err
	}
	return o, nil
}
