package object

import (
	"fmt"
	"sort"
)

// Module represents an imported module of the analyzed program: a named
// collection of attributes. Import analysis searches those attribute names
// for typo suggestions.
type Module struct {
	name  string
	file  string
	attrs map[string]Object
}

func NewModule(name string) *Module {
	return &Module{name: name, attrs: map[string]Object{}}
}

// WithFile records the path of the file the module was loaded from.
func (m *Module) WithFile(file string) *Module {
	m.file = file
	return m
}

// Register adds or replaces one attribute.
func (m *Module) Register(name string, value Object) *Module {
	m.attrs[name] = value
	return m
}

func (m *Module) Name() string {
	return m.name
}

func (m *Module) File() string {
	return m.file
}

func (m *Module) Type() Type {
	return MODULE
}

func (m *Module) Inspect() string {
	if m.file != "" {
		return fmt.Sprintf("<module %s from %s>", Repr(m.name), Repr(m.file))
	}
	return fmt.Sprintf("<module %s>", Repr(m.name))
}

func (m *Module) String() string {
	return m.Inspect()
}

func (m *Module) Interface() interface{} {
	return m
}

func (m *Module) Equals(other Object) bool {
	return m == other
}

func (m *Module) AttrNames() []string {
	names := make([]string, 0, len(m.attrs))
	for name := range m.attrs {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func (m *Module) GetAttr(name string) (Object, bool) {
	value, ok := m.attrs[name]
	return value, ok
}

func (m *Module) IsTruthy() bool {
	return true
}
