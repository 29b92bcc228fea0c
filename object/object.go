// Package object models the runtime values of the analyzed program.
//
// Values captured from a failed program are wrapped as object.Object so that
// the analysis code can display them, search their attributes for typo
// suggestions, and evaluate small expressions against them, without ever
// assuming that introspection is safe: user-defined objects can misbehave
// when their attributes or representations are computed, so all deep
// inspection goes through the fallible helpers in introspect.go.
//
// An object.Object interface value is often type asserted to a specific
// object type, such as *object.Str:
//
//	switch obj := obj.(type) {
//	case *object.Str:
//		// do something with obj.Value()
//	case *object.Float:
//		// do something with obj.Value()
//	}
package object

// Type of an object as a string. The names match the type names the
// analyzed language itself would report.
type Type string

// Type constants
const (
	BOOL     Type = "bool"
	BUILTIN  Type = "builtin_function_or_method"
	CLASS    Type = "type"
	COMPLEX  Type = "complex"
	DICT     Type = "dict"
	FLOAT    Type = "float"
	FUNCTION Type = "function"
	INT      Type = "int"
	LIST     Type = "list"
	MODULE   Type = "module"
	NONE     Type = "NoneType"
	STR      Type = "str"
	TUPLE    Type = "tuple"
)

var (
	None  = &NoneType{}
	True  = &Bool{value: true}
	False = &Bool{value: false}
)

// Object is the interface implemented by all value types.
type Object interface {
	// Type of the object.
	Type() Type

	// Inspect returns the representation of the object, as the analyzed
	// language would print it. For user-defined objects this may run
	// arbitrary code; call SafeInspect instead when the object is not
	// trusted.
	Inspect() string

	// Interface converts the given object to a native Go value.
	Interface() interface{}

	// Equals returns true if the given object is equal to this object.
	Equals(other Object) bool

	// AttrNames returns the names of the object's attributes, in a stable
	// order. For user-defined objects this may run arbitrary code; call
	// TryAttrNames instead when the object is not trusted.
	AttrNames() []string

	// GetAttr returns the attribute with the given name from this object.
	GetAttr(name string) (Object, bool)

	// IsTruthy returns true if the object is considered "truthy".
	IsTruthy() bool
}

// Container is implemented by types that support the [key] operator and
// have a length. It is what the restricted expression evaluator relies on,
// and what index and key analysis use to describe valid ranges.
type Container interface {
	Object

	// Len returns the number of items in the container.
	Len() int

	// GetItem implements the [key] operator for a container type.
	GetItem(key Object) (Object, error)
}

// NewBool returns either the True or the False singleton.
func NewBool(value bool) *Bool {
	if value {
		return True
	}
	return False
}
