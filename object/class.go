package object

import (
	"fmt"
	"sort"
)

// Class represents a user-defined class of the analyzed program.
type Class struct {
	name  string
	bases []*Class
	attrs map[string]Object
}

func NewClass(name string, bases ...*Class) *Class {
	return &Class{name: name, bases: bases, attrs: map[string]Object{}}
}

// Register adds or replaces one class attribute (a method or a class
// variable).
func (c *Class) Register(name string, value Object) *Class {
	c.attrs[name] = value
	return c
}

func (c *Class) Name() string {
	return c.name
}

func (c *Class) Bases() []*Class {
	return c.bases
}

func (c *Class) Type() Type {
	return CLASS
}

func (c *Class) Inspect() string {
	return fmt.Sprintf("<class %s>", Repr(c.name))
}

func (c *Class) String() string {
	return c.Inspect()
}

func (c *Class) Interface() interface{} {
	return c
}

func (c *Class) Equals(other Object) bool {
	return c == other
}

// AttrNames returns the names defined on the class and all its bases.
func (c *Class) AttrNames() []string {
	seen := map[string]bool{}
	c.collectAttrNames(seen)
	names := make([]string, 0, len(seen))
	for name := range seen {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func (c *Class) collectAttrNames(seen map[string]bool) {
	for name := range c.attrs {
		seen[name] = true
	}
	for _, base := range c.bases {
		base.collectAttrNames(seen)
	}
}

// GetAttr resolves name on the class and then on its bases, depth first.
func (c *Class) GetAttr(name string) (Object, bool) {
	if value, ok := c.attrs[name]; ok {
		return value, ok
	}
	for _, base := range c.bases {
		if value, ok := base.GetAttr(name); ok {
			return value, ok
		}
	}
	return nil, false
}

func (c *Class) IsTruthy() bool {
	return true
}

// Instance represents an instance of a user-defined class. Its attribute
// access and representation can be backed by hooks supplied when the
// instance was captured, which mirror the arbitrary code an instance of
// the analyzed program may run during introspection. Callers must go
// through the fallible helpers in introspect.go for untrusted instances.
type Instance struct {
	class  *Class
	attrs  map[string]Object
	reprFn func() string
}

func NewInstance(class *Class) *Instance {
	return &Instance{class: class, attrs: map[string]Object{}}
}

// WithRepr installs a custom representation hook. The hook may panic; the
// panic is contained by SafeInspect.
func (i *Instance) WithRepr(fn func() string) *Instance {
	i.reprFn = fn
	return i
}

// Set stores one instance attribute.
func (i *Instance) Set(name string, value Object) *Instance {
	i.attrs[name] = value
	return i
}

func (i *Instance) Class() *Class {
	return i.class
}

func (i *Instance) Type() Type {
	return Type(i.class.name)
}

func (i *Instance) Inspect() string {
	if i.reprFn != nil {
		return i.reprFn()
	}
	return fmt.Sprintf("<%s object>", i.class.name)
}

func (i *Instance) Interface() interface{} {
	return i
}

func (i *Instance) Equals(other Object) bool {
	return i == other
}

// AttrNames returns the instance's own attribute names followed by those
// of its class hierarchy.
func (i *Instance) AttrNames() []string {
	seen := map[string]bool{}
	for name := range i.attrs {
		seen[name] = true
	}
	i.class.collectAttrNames(seen)
	names := make([]string, 0, len(seen))
	for name := range seen {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func (i *Instance) GetAttr(name string) (Object, bool) {
	if value, ok := i.attrs[name]; ok {
		return value, ok
	}
	return i.class.GetAttr(name)
}

func (i *Instance) IsTruthy() bool {
	return true
}
