package scope

import "github.com/cloudcmds/clarify/object"

// Frame is a snapshot of one call frame of the failed program.
type Frame struct {
	// FuncName is the name of the executing function, or "<module>" for
	// module level code.
	FuncName string

	// Filename of the source file the frame was executing.
	Filename string

	// Lineno is the 1-indexed line the frame had reached.
	Lineno int

	// Back is the enclosing frame, nil for the outermost one.
	Back *Frame

	locals   *Namespace
	globals  *Namespace
	builtins *Namespace
}

// NewFrame creates a frame snapshot. Locals and globals start empty.
func NewFrame(funcName, filename string, lineno int) *Frame {
	return &Frame{
		FuncName: funcName,
		Filename: filename,
		Lineno:   lineno,
		locals:   NewNamespace(),
		globals:  NewNamespace(),
	}
}

// WithLocal records one local variable.
func (f *Frame) WithLocal(name string, value object.Object) *Frame {
	f.locals.Set(name, value)
	return f
}

// WithGlobal records one global variable.
func (f *Frame) WithGlobal(name string, value object.Object) *Frame {
	f.globals.Set(name, value)
	return f
}

// WithBack links the enclosing frame.
func (f *Frame) WithBack(back *Frame) *Frame {
	f.Back = back
	return f
}

// WithBuiltins overrides the builtin namespace visible to the frame.
// Without an override the default builtin namespace is used.
func (f *Frame) WithBuiltins(builtins *Namespace) *Frame {
	f.builtins = builtins
	return f
}

// Locals returns the frame's local variables.
func (f *Frame) Locals() *Namespace {
	return f.locals
}

// Globals returns the frame's global variables.
func (f *Frame) Globals() *Namespace {
	return f.globals
}

// Builtins returns the builtin namespace visible to the frame.
func (f *Frame) Builtins() *Namespace {
	if f.builtins != nil {
		return f.builtins
	}
	return DefaultBuiltins
}

// IsModuleLevel reports whether the frame is executing module level code.
func (f *Frame) IsModuleLevel() bool {
	return f.FuncName == "<module>"
}
