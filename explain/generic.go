package explain

import (
	"fmt"
	"strings"

	"github.com/cloudcmds/clarify/exc"
)

// noInformation is used when nothing at all is known about a type.
const noInformation = "No information is known about this exception.\n"

// generic descriptions are independent of any particular occurrence; they
// answer "what does this kind of error mean" in one short paragraph.
var generic = map[*exc.Type]string{
	exc.ExceptionType: "Most built-in exceptions are derived from `Exception`.\n" +
		"All user-defined exceptions should also be derived from this class.\n",
	exc.BaseException: "`BaseException` is the base class for all built-in exceptions.\n" +
		"It is not meant to be directly inherited by user-defined classes.\n",
	exc.ArithmeticError: "`ArithmeticError` is the base class for those built-in exceptions\n" +
		"that are raised for various arithmetic errors.\n",
	exc.AssertionError: "The keyword `assert` is used in statements of the form\n" +
		"`assert condition`, to confirm that `condition` is not `False`,\n" +
		"nor equivalent to `False` such as an empty list.\n\n" +
		"If `condition` is `False` or equivalent, an `AssertionError` is raised.\n",
	exc.AttributeError: "An `AttributeError` occurs when the code contains something like\n" +
		"    `object.x`\n" +
		"and `x` is not a method or attribute (variable) belonging to `object`.\n",
	exc.EOFError: "An `EOFError` is raised when the `input()` function hits\n" +
		"an end-of-file condition (EOF) without reading any data.\n",
	exc.FileNotFoundError: "A `FileNotFoundError` exception indicates that you\n" +
		"are trying to open a file that cannot be found.\n" +
		"This could be because you misspelled the name of the file.\n",
	exc.ImportError: "An `ImportError` exception indicates that a certain object could not\n" +
		"be imported from a module or package. Most often, this is\n" +
		"because the name of the object is not spelled correctly.\n",
	exc.IndentationError: "An `IndentationError` occurs when a given line of code is\n" +
		"not indented (aligned vertically with other lines) as expected.\n",
	exc.IndexError: "An `IndexError` occurs when you try to get an item from a list,\n" +
		"a tuple, or a similar object (sequence), and use an index which\n" +
		"does not exist; typically, this happens because the index you give\n" +
		"is greater than the length of the sequence.\n",
	exc.KeyError: "A `KeyError` is raised when a value is not found as a\n" +
		"key in a dict or in a similar object.\n",
	exc.LookupError: "`LookupError` is the base class for the exceptions that are raised\n" +
		"when a key or index used on a mapping or sequence is invalid.\n",
	exc.MemoryError: "Like the name indicates, a `MemoryError` occurs when the\n" +
		"interpreter runs out of memory. This can happen if you create an\n" +
		"object that is too big, like a list with too many items.\n",
	exc.ModuleNotFoundError: "A `ModuleNotFoundError` exception indicates that you\n" +
		"are trying to import a module that cannot be found.\n" +
		"This could be because you misspelled the name of the module\n" +
		"or because it is not installed on your computer.\n",
	exc.NameError: "A `NameError` exception indicates that a variable or\n" +
		"function name is not known.\n" +
		"Most often, this is because there is a spelling mistake.\n" +
		"However, sometimes it is because the name is used\n" +
		"before being defined or given a value.\n",
	exc.OSError: "An `OSError` exception is usually raised by the Operating System\n" +
		"to indicate that an operation is not allowed or that\n" +
		"a resource is not available.\n",
	exc.OverflowError: "An `OverflowError` is raised when the result of an arithmetic operation\n" +
		"is too large to be handled by the computer's processor.\n",
	exc.RecursionError: "A `RecursionError` is raised when a function calls itself,\n" +
		"directly or indirectly, too many times.\n" +
		"It almost always indicates that you made an error in your code\n" +
		"and that your program would never stop.\n",
	exc.RuntimeError: "A `RuntimeError` is raised when an error is detected that doesn't fall\n" +
		"in any of the more specific exception types.\n",
	exc.StopIteration: "`StopIteration` is raised to indicate that an iterator has no more\n" +
		"item to provide when its `__next__` method is called by\n" +
		"the `next()` builtin function.\n",
	exc.SyntaxError: "A `SyntaxError` occurs when the interpreter cannot understand your code.\n",
	exc.TabError: "A `TabError` indicates that you have used both spaces\n" +
		"and tab characters to indent your code.\n" +
		"This is not allowed; the recommendation is to always use spaces\n" +
		"to indent your code.\n",
	exc.TypeError: "A `TypeError` is usually caused by trying\n" +
		"to combine two incompatible types of objects,\n" +
		"by calling a function with the wrong type of object,\n" +
		"or by trying to do an operation not allowed on a given type of object.\n",
	exc.ValueError: "A `ValueError` indicates that a function or an operation\n" +
		"received an argument of the right type, but an inappropriate value.\n",
	exc.UnboundLocalError: "Variables that are used inside a function are known as\n" +
		"local variables. Before they are used, they must be assigned a value.\n" +
		"A variable that is used before it is assigned a value is assumed to\n" +
		"be defined outside that function; it is known as a `global`\n" +
		"(or sometimes `nonlocal`) variable. You cannot assign a value to such\n" +
		"a global variable inside a function without first indicating that\n" +
		"this is a global variable, otherwise you will see\n" +
		"an `UnboundLocalError`.\n",
	exc.ZeroDivisionError: "A `ZeroDivisionError` occurs when you are attempting to divide a value\n" +
		"by zero either directly or by using some other mathematical operation.\n",
	exc.UserWarning:   "`UserWarning` is the default category for warnings.\n",
	exc.SyntaxWarning: "`SyntaxWarning` often indicates that your code will likely not give\n" + "the result you expect.\n",
	exc.DeprecationWarning: "`DeprecationWarning` indicates that some feature you are using is\n" +
		"scheduled to be removed and should no longer be used.\n",
	exc.Warning: "`Warning` is the base class of all warning categories.\n" +
		"Unlike exceptions, warnings do not stop the running program.\n",
}

// RegisterGeneric adds a generic description for one exception type. A
// type can only be described once; redefining an existing entry is
// reported so library conflicts surface early.
func RegisterGeneric(typ *exc.Type, description string) error {
	if existing, ok := generic[typ]; ok {
		return fmt.Errorf("a description of %s already exists: %s", typ.Name, existing)
	}
	generic[typ] = description
	return nil
}

// GenericExplanation returns the one-paragraph description of an
// exception type. A type without its own entry borrows the entry of its
// closest described ancestor, with a note about the subclass
// relationship; the root Exception and BaseException entries are only
// used when no other ancestor is described.
func GenericExplanation(typ *exc.Type) string {
	if description, ok := generic[typ]; ok {
		return description
	}
	lineage := typ.Lineage()
	parent := describedAncestor(lineage, false)
	if parent == nil {
		parent = describedAncestor(lineage, true)
	}
	if parent == nil {
		return noInformation
	}

	var out strings.Builder
	if typ.IsWarning() {
		fmt.Fprintf(&out, "A warning of type `%s` is a subclass of `%s`.\n",
			typ.Name, parent.Name)
	} else {
		fmt.Fprintf(&out, "An exception of type `%s` is a subclass of `%s`.\n",
			typ.Name, parent.Name)
	}
	fmt.Fprintf(&out, "Nothing more specific is known about `%s`.\n", typ.Name)

	tree := lineageNamesUpTo(lineage, parent)
	if len(tree) > 2 {
		fmt.Fprintf(&out, "The inheritance is as follows:\n\n    %s\n",
			strings.Join(tree, " -> "))
	}
	out.WriteString("\n")
	out.WriteString(generic[parent])
	return out.String()
}

func describedAncestor(lineage []*exc.Type, allowRoots bool) *exc.Type {
	for _, ancestor := range lineage[1:] {
		if !allowRoots && (ancestor == exc.ExceptionType || ancestor == exc.BaseException) {
			continue
		}
		if _, ok := generic[ancestor]; ok {
			return ancestor
		}
	}
	return nil
}

func lineageNamesUpTo(lineage []*exc.Type, parent *exc.Type) []string {
	var names []string
	for _, ancestor := range lineage {
		names = append(names, ancestor.Name)
		if ancestor == parent {
			break
		}
	}
	return names
}
