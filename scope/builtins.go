package scope

import (
	"fmt"

	"github.com/cloudcmds/clarify/object"
)

func errWrongArgs(name string, want, got int) error {
	return fmt.Errorf("%s() takes exactly %d argument (%d given)", name, want, got)
}

func errNoLen(obj object.Object) error {
	return fmt.Errorf("object of type '%s' has no len()", obj.Type())
}

func errBadOperand(name string, obj object.Object) error {
	return fmt.Errorf("bad operand type for %s(): '%s'", name, obj.Type())
}

// DefaultBuiltins is the builtin namespace of the analyzed language. The
// functions are carried by name for lookup and typo suggestions; only the
// handful analysis itself needs (len, abs) have implementations.
var DefaultBuiltins = buildDefaultBuiltins()

var builtinNames = []string{
	"abs", "all", "any", "ascii", "bin", "bool", "bytearray", "bytes",
	"callable", "chr", "classmethod", "compile", "complex", "delattr",
	"dict", "dir", "divmod", "enumerate", "eval", "exec", "filter",
	"float", "format", "frozenset", "getattr", "globals", "hasattr",
	"hash", "help", "hex", "id", "input", "int", "isinstance",
	"issubclass", "iter", "len", "list", "locals", "map", "max",
	"memoryview", "min", "next", "object", "oct", "open", "ord", "pow",
	"print", "property", "range", "repr", "reversed", "round", "set",
	"setattr", "slice", "sorted", "staticmethod", "str", "sum", "super",
	"tuple", "type", "vars", "zip",
}

func buildDefaultBuiltins() *Namespace {
	ns := NewNamespace()
	for _, name := range builtinNames {
		ns.Set(name, object.NewBuiltin(name, nil))
	}
	ns.Set("len", object.NewBuiltin("len", func(args ...object.Object) (object.Object, error) {
		if len(args) != 1 {
			return nil, errWrongArgs("len", 1, len(args))
		}
		length, ok, err := object.TryLen(args[0])
		if err != nil {
			return nil, err
		}
		if !ok {
			return nil, errNoLen(args[0])
		}
		return object.NewInt(int64(length)), nil
	}).WithDoc("Return the number of items in a container."))
	ns.Set("abs", object.NewBuiltin("abs", func(args ...object.Object) (object.Object, error) {
		if len(args) != 1 {
			return nil, errWrongArgs("abs", 1, len(args))
		}
		switch arg := args[0].(type) {
		case *object.Int:
			if arg.Value() < 0 {
				return object.NewInt(-arg.Value()), nil
			}
			return arg, nil
		case *object.Float:
			if arg.Value() < 0 {
				return object.NewFloat(-arg.Value()), nil
			}
			return arg, nil
		}
		return nil, errBadOperand("abs", args[0])
	}).WithDoc("Return the absolute value of a number."))
	// Exception types are names too: "NameError" resolving in the builtin
	// namespace matters when a program shadows one.
	for _, name := range exceptionNames {
		ns.Set(name, object.NewBuiltin(name, nil))
	}
	return ns
}

var exceptionNames = []string{
	"ArithmeticError", "AssertionError", "AttributeError", "BaseException",
	"EOFError", "Exception", "FileNotFoundError", "FloatingPointError",
	"ImportError", "IndentationError", "IndexError", "KeyError",
	"KeyboardInterrupt", "LookupError", "MemoryError",
	"ModuleNotFoundError", "NameError", "NotImplementedError", "OSError",
	"OverflowError", "PermissionError", "RecursionError", "RuntimeError",
	"StopIteration", "SyntaxError", "SystemExit", "TabError", "TypeError",
	"UnboundLocalError", "ValueError", "ZeroDivisionError",
}
