// Package scope inspects the variables that were visible to a failed
// program: the locals and globals of each frame, the builtin namespace,
// and small expressions evaluated against those values. It also searches
// the visible names for likely typos.
package scope

import "github.com/cloudcmds/clarify/object"

// Namespace is an insertion-ordered mapping of names to objects. Order
// matters: variables are displayed in the order the program defined them.
type Namespace struct {
	names  []string
	values map[string]object.Object
}

func NewNamespace() *Namespace {
	return &Namespace{values: map[string]object.Object{}}
}

// Set stores value under name, keeping the first-seen order of names.
func (ns *Namespace) Set(name string, value object.Object) *Namespace {
	if _, ok := ns.values[name]; !ok {
		ns.names = append(ns.names, name)
	}
	ns.values[name] = value
	return ns
}

// Get returns the object stored under name, if any.
func (ns *Namespace) Get(name string) (object.Object, bool) {
	value, ok := ns.values[name]
	return value, ok
}

// Has reports whether name is defined.
func (ns *Namespace) Has(name string) bool {
	_, ok := ns.values[name]
	return ok
}

// Names returns all defined names in insertion order.
func (ns *Namespace) Names() []string {
	return ns.names
}

// Len returns the number of defined names.
func (ns *Namespace) Len() int {
	return len(ns.names)
}
