// Package exc defines the exception types of the analyzed language and the
// record describing one raised exception.
package exc

// Type is one exception type. Types form a single-inheritance tree rooted
// at BaseException; generic explanations walk the tree from the raised
// type towards the root.
type Type struct {
	Name   string
	Parent *Type
}

// IsSubclassOf reports whether t equals other or inherits from it.
func (t *Type) IsSubclassOf(other *Type) bool {
	for current := t; current != nil; current = current.Parent {
		if current == other {
			return true
		}
	}
	return false
}

// Lineage returns the type and its ancestors, nearest first, up to and
// including BaseException.
func (t *Type) Lineage() []*Type {
	var lineage []*Type
	for current := t; current != nil; current = current.Parent {
		lineage = append(lineage, current)
	}
	return lineage
}

// IsWarning reports whether the type belongs to the warning branch of the
// tree rather than the error branch.
func (t *Type) IsWarning() bool {
	return t.IsSubclassOf(Warning)
}

func (t *Type) String() string {
	return t.Name
}

// The builtin exception types.
var (
	BaseException     = &Type{Name: "BaseException"}
	SystemExit        = &Type{Name: "SystemExit", Parent: BaseException}
	KeyboardInterrupt = &Type{Name: "KeyboardInterrupt", Parent: BaseException}
	ExceptionType     = &Type{Name: "Exception", Parent: BaseException}

	ArithmeticError    = &Type{Name: "ArithmeticError", Parent: ExceptionType}
	ZeroDivisionError  = &Type{Name: "ZeroDivisionError", Parent: ArithmeticError}
	OverflowError      = &Type{Name: "OverflowError", Parent: ArithmeticError}
	FloatingPointError = &Type{Name: "FloatingPointError", Parent: ArithmeticError}

	AssertionError = &Type{Name: "AssertionError", Parent: ExceptionType}
	AttributeError = &Type{Name: "AttributeError", Parent: ExceptionType}
	EOFError       = &Type{Name: "EOFError", Parent: ExceptionType}

	ImportError         = &Type{Name: "ImportError", Parent: ExceptionType}
	ModuleNotFoundError = &Type{Name: "ModuleNotFoundError", Parent: ImportError}

	LookupError = &Type{Name: "LookupError", Parent: ExceptionType}
	IndexError  = &Type{Name: "IndexError", Parent: LookupError}
	KeyError    = &Type{Name: "KeyError", Parent: LookupError}

	MemoryError = &Type{Name: "MemoryError", Parent: ExceptionType}

	NameError         = &Type{Name: "NameError", Parent: ExceptionType}
	UnboundLocalError = &Type{Name: "UnboundLocalError", Parent: NameError}

	OSError           = &Type{Name: "OSError", Parent: ExceptionType}
	FileNotFoundError = &Type{Name: "FileNotFoundError", Parent: OSError}
	PermissionError   = &Type{Name: "PermissionError", Parent: OSError}

	RuntimeError        = &Type{Name: "RuntimeError", Parent: ExceptionType}
	RecursionError      = &Type{Name: "RecursionError", Parent: RuntimeError}
	NotImplementedError = &Type{Name: "NotImplementedError", Parent: RuntimeError}

	StopIteration = &Type{Name: "StopIteration", Parent: ExceptionType}

	SyntaxError      = &Type{Name: "SyntaxError", Parent: ExceptionType}
	IndentationError = &Type{Name: "IndentationError", Parent: SyntaxError}
	TabError         = &Type{Name: "TabError", Parent: IndentationError}

	TypeError  = &Type{Name: "TypeError", Parent: ExceptionType}
	ValueError = &Type{Name: "ValueError", Parent: ExceptionType}

	Warning            = &Type{Name: "Warning", Parent: ExceptionType}
	DeprecationWarning = &Type{Name: "DeprecationWarning", Parent: Warning}
	RuntimeWarning     = &Type{Name: "RuntimeWarning", Parent: Warning}
	SyntaxWarning      = &Type{Name: "SyntaxWarning", Parent: Warning}
	UserWarning        = &Type{Name: "UserWarning", Parent: Warning}
)

var builtinTypes = []*Type{
	BaseException, SystemExit, KeyboardInterrupt, ExceptionType,
	ArithmeticError, ZeroDivisionError, OverflowError, FloatingPointError,
	AssertionError, AttributeError, EOFError,
	ImportError, ModuleNotFoundError,
	LookupError, IndexError, KeyError,
	MemoryError,
	NameError, UnboundLocalError,
	OSError, FileNotFoundError, PermissionError,
	RuntimeError, RecursionError, NotImplementedError,
	StopIteration,
	SyntaxError, IndentationError, TabError,
	TypeError, ValueError,
	Warning, DeprecationWarning, RuntimeWarning, SyntaxWarning, UserWarning,
}

var typesByName = func() map[string]*Type {
	m := make(map[string]*Type, len(builtinTypes))
	for _, t := range builtinTypes {
		m[t.Name] = t
	}
	return m
}()

// Lookup finds a builtin exception type by name.
func Lookup(name string) (*Type, bool) {
	t, ok := typesByName[name]
	return t, ok
}

// Types returns all builtin exception types.
func Types() []*Type {
	return builtinTypes
}
