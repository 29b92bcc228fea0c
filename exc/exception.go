package exc

import (
	"fmt"

	"github.com/cloudcmds/clarify/object"
	"github.com/cloudcmds/clarify/scope"
)

// Exception describes one raised exception of the analyzed program: its
// type, message, the frame stack that was active when it was raised, and,
// for syntax errors, the location details of the offending code.
type Exception struct {
	Type *Type

	// message is the stringified error message. It may be empty when the
	// exception carries only a value (KeyError does this).
	message string

	// value is the payload the exception was raised with, when one was
	// captured. For KeyError this is the missing key.
	value object.Object

	// Frames is the call stack at the point of the raise, outermost
	// frame first.
	Frames []*scope.Frame

	// Syntax error details. Lineno and EndLineno are 1-indexed rows;
	// Offset and EndOffset are 1-indexed columns, following the
	// conventions of the analyzed language. Zero means absent.
	Filename  string
	Lineno    int
	Offset    int
	EndLineno int
	EndOffset int
	Text      string
}

// New creates an exception with a formatted message.
func New(typ *Type, format string, args ...interface{}) *Exception {
	return &Exception{Type: typ, message: fmt.Sprintf(format, args...)}
}

// NewWithValue creates an exception carrying a value instead of a
// message. The message is derived from the value on demand, with the
// derivation guarded against misbehaving representations.
func NewWithValue(typ *Type, value object.Object) *Exception {
	return &Exception{Type: typ, value: value}
}

// WithFrames attaches the captured call stack, outermost frame first.
func (e *Exception) WithFrames(frames ...*scope.Frame) *Exception {
	e.Frames = frames
	return e
}

// Value returns the payload the exception was raised with, if any.
func (e *Exception) Value() (object.Object, bool) {
	return e.value, e.value != nil
}

// SafeMessage returns the exception message. When the exception carries a
// value rather than a message, the value's representation is computed
// here, with failures contained.
func (e *Exception) SafeMessage() string {
	if e.message != "" {
		return e.message
	}
	if e.value != nil {
		return object.SafeInspect(e.value)
	}
	return ""
}

// Error implements the error interface.
func (e *Exception) Error() string {
	message := e.SafeMessage()
	if message == "" {
		return e.Type.Name
	}
	return fmt.Sprintf("%s: %s", e.Type.Name, message)
}

// IsSyntaxError reports whether the exception belongs to the SyntaxError
// branch, which is analyzed from source text rather than from frames.
func (e *Exception) IsSyntaxError() bool {
	return e.Type.IsSubclassOf(SyntaxError)
}

// CurrentFrame returns the innermost frame, where the exception was
// raised.
func (e *Exception) CurrentFrame() *scope.Frame {
	if len(e.Frames) == 0 {
		return nil
	}
	return e.Frames[len(e.Frames)-1]
}
