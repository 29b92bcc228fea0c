package runtimeerrors

import (
	"fmt"

	"github.com/cloudcmds/clarify/cause"
	"github.com/cloudcmds/clarify/exc"
	"github.com/cloudcmds/clarify/object"
	"github.com/cloudcmds/clarify/scope"
	"github.com/cloudcmds/clarify/traceback"
	"github.com/dlclark/regexp2"
)

var typeErrorRules = []Rule{
	{Name: "unsupported-operand-types", Apply: unsupportedOperandTypes},
	{Name: "can-only-concatenate", Apply: canOnlyConcatenate},
	{Name: "object-not-callable", Apply: objectNotCallable},
	{Name: "object-not-subscriptable", Apply: objectNotSubscriptable},
	{Name: "missing-positional-arguments", Apply: missingPositionalArguments},
}

var unsupportedOperandRe = regexp2.MustCompile(
	`unsupported operand type\(s\) for (.+): '(.*)' and '(.*)'`, 0)

func unsupportedOperandTypes(e *exc.Exception, data *traceback.TracebackData) cause.Info {
	match, err := unsupportedOperandRe.FindStringMatch(e.SafeMessage())
	if err != nil || match == nil {
		return cause.Info{}
	}
	operator := match.GroupByNumber(1).String()
	left := match.GroupByNumber(2).String()
	right := match.GroupByNumber(3).String()

	info := cause.Of(
		"You tried to use the operator `%s` with two incompatible kinds of\n"+
			"objects: one of type `%s` and one of type `%s`.\n",
		operator, left, right)

	if operator == "+" && (left == "str") != (right == "str") {
		other := left
		if other == "str" {
			other = right
		}
		info.Cause += fmt.Sprintf(
			"A string and a `%s` cannot be added together. Either convert the\n"+
				"`%s` with `str()`, or convert the string to a number first.\n",
			other, other)
		info.Suggest = fmt.Sprintf("Did you forget to convert the `%s` with `str()`?\n", other)
	}
	return info
}

var concatenateRe = regexp2.MustCompile(`can only concatenate str \(not "(.*)"\) to str`, 0)

func canOnlyConcatenate(e *exc.Exception, data *traceback.TracebackData) cause.Info {
	other, ok := firstGroup(concatenateRe, e.SafeMessage())
	if !ok {
		return cause.Info{}
	}
	return cause.Of(
		"You tried to add an object of type `%s` to a string.\n"+
			"Only strings can be added to strings; convert the `%s` with\n"+
			"`str()` first, or convert the string to a number.\n", other, other).
		WithSuggest("Did you forget to convert the `%s` with `str()`?\n", other)
}

var notCallableRe = regexp2.MustCompile(`'(.*)' object is not callable`, 0)

func objectNotCallable(e *exc.Exception, data *traceback.TracebackData) cause.Info {
	typeName, ok := firstGroup(notCallableRe, e.SafeMessage())
	if !ok {
		return cause.Info{}
	}
	info := cause.Of(
		"You used parentheses `(...)` after an object of type `%s`,\n"+
			"as though it were a function, but a `%s` cannot be called.\n",
		typeName, typeName)
	switch typeName {
	case "list", "tuple", "dict", "str":
		info.Cause += "Perhaps you meant square brackets `[...]` to get an item,\n" +
			"or a comma is missing before the parenthesis.\n"
		info.Suggest = "Did you mean `[...]` instead of `(...)`?\n"
	}
	return info
}

var notSubscriptableRe = regexp2.MustCompile(`'(.*)' object is not subscriptable`, 0)

func objectNotSubscriptable(e *exc.Exception, data *traceback.TracebackData) cause.Info {
	typeName, ok := firstGroup(notSubscriptableRe, e.SafeMessage())
	if !ok {
		return cause.Info{}
	}
	info := cause.Of(
		"You used square brackets `[...]` after an object of type `%s`,\n"+
			"but a `%s` cannot be indexed that way.\n", typeName, typeName)
	if typeName == "function" || typeName == "builtin_function_or_method" {
		info.Cause += "Perhaps you meant to call the function using parentheses `(...)`.\n"
		info.Suggest = "Did you mean `(...)` instead of `[...]`?\n"
	}
	return info
}

var missingArgumentsRe = regexp2.MustCompile(
	`(\w+)\(\) missing (\d+) required positional argument`, 0)

func missingPositionalArguments(e *exc.Exception, data *traceback.TracebackData) cause.Info {
	match, err := missingArgumentsRe.FindStringMatch(e.SafeMessage())
	if err != nil || match == nil {
		return cause.Info{}
	}
	funcName := match.GroupByNumber(1).String()
	count := match.GroupByNumber(2).String()

	info := cause.Of(
		"You called `%s` without supplying %s of the arguments it requires.\n",
		funcName, count)

	if fn := findFunction(funcName, data.CurrentFrame()); fn != nil {
		info.Cause += fmt.Sprintf("The full signature is `%s`.\n", fn.Signature())
	}
	return info
}

func findFunction(name string, frame *scope.Frame) *object.Function {
	value, ok := scope.GetObjectFromName(name, frame)
	if !ok {
		return nil
	}
	fn, isFunction := value.(*object.Function)
	if !isFunction {
		return nil
	}
	return fn
}
