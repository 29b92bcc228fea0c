package object

import "fmt"

// BuiltinFunc is the Go signature of a builtin function.
type BuiltinFunc func(args ...Object) (Object, error)

// Builtin wraps a Go function and implements Object. A nil fn is allowed:
// it marks a function known by name only, carried for display and typo
// suggestions rather than for calling.
type Builtin struct {
	name string
	fn   BuiltinFunc
	doc  string
}

func NewBuiltin(name string, fn BuiltinFunc) *Builtin {
	return &Builtin{name: name, fn: fn}
}

// WithDoc attaches a one line description, used when a builtin shadowing
// warning or a suggestion wants to say what the function does.
func (b *Builtin) WithDoc(doc string) *Builtin {
	b.doc = doc
	return b
}

func (b *Builtin) Name() string {
	return b.name
}

func (b *Builtin) Doc() string {
	return b.doc
}

// Call invokes the underlying Go function.
func (b *Builtin) Call(args ...Object) (Object, error) {
	if b.fn == nil {
		return nil, fmt.Errorf("%s is not callable during analysis", b.name)
	}
	return b.fn(args...)
}

func (b *Builtin) Type() Type {
	return BUILTIN
}

func (b *Builtin) Inspect() string {
	return fmt.Sprintf("<built-in function %s>", b.name)
}

func (b *Builtin) String() string {
	return b.Inspect()
}

func (b *Builtin) Interface() interface{} {
	return b.fn
}

func (b *Builtin) Equals(other Object) bool {
	return b == other
}

func (b *Builtin) AttrNames() []string {
	return nil
}

func (b *Builtin) GetAttr(name string) (Object, bool) {
	return nil, false
}

func (b *Builtin) IsTruthy() bool {
	return true
}
