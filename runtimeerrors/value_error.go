package runtimeerrors

import (
	"strconv"

	"github.com/cloudcmds/clarify/cause"
	"github.com/cloudcmds/clarify/exc"
	"github.com/cloudcmds/clarify/traceback"
	"github.com/dlclark/regexp2"
)

var valueErrorRules = []Rule{
	{Name: "invalid-literal-for-int", Apply: invalidLiteralForInt},
	{Name: "not-enough-values-to-unpack", Apply: notEnoughValuesToUnpack},
	{Name: "too-many-values-to-unpack", Apply: tooManyValuesToUnpack},
	{Name: "math-domain-error", Apply: mathDomainError},
}

var invalidLiteralRe = regexp2.MustCompile(
	`invalid literal for int\(\) with base (\d+): '(.*)'`, 0)

func invalidLiteralForInt(e *exc.Exception, data *traceback.TracebackData) cause.Info {
	match, err := invalidLiteralRe.FindStringMatch(e.SafeMessage())
	if err != nil || match == nil {
		return cause.Info{}
	}
	base := match.GroupByNumber(1).String()
	text := match.GroupByNumber(2).String()

	info := cause.Of(
		"`int()` cannot convert the string `'%s'` into an integer\n"+
			"using base %s.\n", text, base)

	if _, parseErr := strconv.ParseFloat(text, 64); parseErr == nil {
		info.Cause += "The string does represent a number, but not an integer.\n" +
			"Convert it with `float()` first, or use `int(float(...))`.\n"
		info.Suggest = "Did you mean `float('" + text + "')`?\n"
	}
	return info
}

var notEnoughValuesRe = regexp2.MustCompile(
	`not enough values to unpack \(expected (\d+), got (\d+)\)`, 0)

func notEnoughValuesToUnpack(e *exc.Exception, data *traceback.TracebackData) cause.Info {
	match, err := notEnoughValuesRe.FindStringMatch(e.SafeMessage())
	if err != nil || match == nil {
		return cause.Info{}
	}
	return cause.Of(
		"You are unpacking a sequence into %s separate variables, but the\n"+
			"sequence only contains %s items.\n",
		match.GroupByNumber(1).String(), match.GroupByNumber(2).String())
}

var tooManyValuesRe = regexp2.MustCompile(`too many values to unpack \(expected (\d+)\)`, 0)

func tooManyValuesToUnpack(e *exc.Exception, data *traceback.TracebackData) cause.Info {
	expected, ok := firstGroup(tooManyValuesRe, e.SafeMessage())
	if !ok {
		return cause.Info{}
	}
	return cause.Of(
		"You are unpacking a sequence into %s separate variables, but the\n"+
			"sequence contains more items than that.\n", expected)
}

func mathDomainError(e *exc.Exception, data *traceback.TracebackData) cause.Info {
	if e.SafeMessage() != "math domain error" {
		return cause.Info{}
	}
	return cause.Of(
		"You gave a mathematical function an argument outside its domain,\n" +
			"that is, a value for which the function is not defined.\n" +
			"For example, `sqrt` cannot take a negative number.\n")
}
