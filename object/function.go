package object

import (
	"fmt"
	"strings"
)

// Function describes a user-defined function of the analyzed program. The
// body is not carried: analysis only needs the signature, to explain
// argument errors and to detect a method called without self.
type Function struct {
	name        string
	params      []string
	defaults    map[string]Object
	doc         string
	qualifiedBy string
}

func NewFunction(name string, params []string) *Function {
	return &Function{name: name, params: params}
}

// WithDefault records a default value for one parameter.
func (f *Function) WithDefault(param string, value Object) *Function {
	if f.defaults == nil {
		f.defaults = map[string]Object{}
	}
	f.defaults[param] = value
	return f
}

// WithDoc attaches the function's documentation string.
func (f *Function) WithDoc(doc string) *Function {
	f.doc = doc
	return f
}

// BoundTo marks the function as defined on the named class. A function
// bound to a class is a method, which matters when it is looked up on the
// class itself rather than on an instance.
func (f *Function) BoundTo(class string) *Function {
	f.qualifiedBy = class
	return f
}

func (f *Function) Name() string {
	return f.name
}

func (f *Function) Params() []string {
	return f.params
}

func (f *Function) Default(param string) (Object, bool) {
	value, ok := f.defaults[param]
	return value, ok
}

func (f *Function) Doc() string {
	return f.doc
}

// IsMethod reports whether the function is defined on a class and takes
// self as its first parameter.
func (f *Function) IsMethod() bool {
	return f.qualifiedBy != "" && len(f.params) > 0 && f.params[0] == "self"
}

func (f *Function) Type() Type {
	return FUNCTION
}

func (f *Function) Inspect() string {
	if f.qualifiedBy != "" {
		return fmt.Sprintf("<function %s.%s>", f.qualifiedBy, f.name)
	}
	return fmt.Sprintf("<function %s>", f.name)
}

func (f *Function) String() string {
	return f.Inspect()
}

// Signature renders the function header, e.g. "f(a, b=1)".
func (f *Function) Signature() string {
	parts := make([]string, 0, len(f.params))
	for _, param := range f.params {
		if value, ok := f.defaults[param]; ok {
			parts = append(parts, param+"="+SafeInspect(value))
		} else {
			parts = append(parts, param)
		}
	}
	return f.name + "(" + strings.Join(parts, ", ") + ")"
}

func (f *Function) Interface() interface{} {
	return f
}

func (f *Function) Equals(other Object) bool {
	return f == other
}

func (f *Function) AttrNames() []string {
	return []string{"__doc__", "__name__"}
}

func (f *Function) GetAttr(name string) (Object, bool) {
	switch name {
	case "__name__":
		return NewStr(f.name), true
	case "__doc__":
		if f.doc == "" {
			return None, true
		}
		return NewStr(f.doc), true
	}
	return nil, false
}

func (f *Function) IsTruthy() bool {
	return true
}
