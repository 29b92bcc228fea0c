package runtimeerrors

import (
	"fmt"
	"strings"

	"github.com/cloudcmds/clarify/cause"
	"github.com/cloudcmds/clarify/exc"
	"github.com/cloudcmds/clarify/object"
	"github.com/cloudcmds/clarify/scope"
	"github.com/cloudcmds/clarify/traceback"
	"github.com/dlclark/regexp2"
)

var nameErrorRules = []Rule{
	{Name: "name-not-defined", Apply: nameNotDefined},
	{Name: "free-variable", Apply: freeVariable},
}

var unboundLocalRules = []Rule{
	{Name: "local-before-assignment", Apply: localBeforeAssignment},
}

var nameNotDefinedRe = regexp2.MustCompile(`name '(.*)' is not defined`, 0)

func nameNotDefined(e *exc.Exception, data *traceback.TracebackData) cause.Info {
	name, ok := firstGroup(nameNotDefinedRe, e.SafeMessage())
	if !ok {
		return cause.Info{}
	}
	frame := data.CurrentFrame()
	info := cause.Of("In your program, no object with the name `%s` exists.\n", name)

	// j (or i) alone often means the imaginary unit.
	if name == "i" || name == "j" {
		info.Cause += "However, `" + name + "` is sometimes intended to mean the imaginary\n" +
			"unit of complex numbers, which is written `1j`.\n"
		return info.WithSuggest("Did you mean `1j`?\n")
	}

	if hint := missingSelf(name, frame); !hint.Empty() {
		info.Cause += hint.Cause
		info.Suggest = hint.Suggest
		return info
	}

	if module, known := knownModules[name]; known {
		info.Cause += fmt.Sprintf(
			"A module named `%s` exists; perhaps you forgot to import it.\n",
			module.Name())
		return info.WithSuggest("Did you forget to import `%s`?\n", module.Name())
	}

	if matches := scope.GetSimilarWords(name, keywords); len(matches) == 1 {
		info.Cause += fmt.Sprintf(
			"`%s` is a keyword; perhaps you misspelled it.\n", matches[0])
		return info.WithSuggest("Did you mean `%s`?\n", matches[0])
	}

	similar := scope.GetSimilarNames(name, frame)
	if !similar.Empty() {
		info.Cause += formatSimilarNames(name, similar)
		if similar.Best != "" {
			info.Suggest = fmt.Sprintf("Did you mean `%s`?\n", similar.Best)
		}
	}
	return info
}

// missingSelf recognizes a method body using a bare name for something
// that exists as an attribute of self.
func missingSelf(name string, frame *scope.Frame) cause.Info {
	if frame == nil {
		return cause.Info{}
	}
	self, ok := frame.Locals().Get("self")
	if !ok {
		return cause.Info{}
	}
	if !object.HasAttr(self, name) {
		return cause.Info{}
	}
	return cause.Of(
		"The object `self` has an attribute named `%s`.\n"+
			"Perhaps you should have written `self.%s` instead of `%s`.\n",
		name, name, name).
		WithSuggest("Did you forget to add `self.`?\n")
}

func formatSimilarNames(name string, similar *scope.SimilarNames) string {
	all := similar.All()
	if len(all) == 1 {
		where := "local"
		switch {
		case len(similar.Globals) == 1:
			where = "global"
		case len(similar.Builtins) == 1:
			where = "builtin"
		}
		return fmt.Sprintf("The similar name `%s` was found in the %s scope.\n",
			all[0], where)
	}
	var out strings.Builder
	fmt.Fprintf(&out,
		"Instead of writing `%s`, perhaps you meant one of the following:\n", name)
	if len(similar.Locals) > 0 {
		fmt.Fprintf(&out, "*   Local scope: %s\n", backtickJoin(similar.Locals))
	}
	if len(similar.Globals) > 0 {
		fmt.Fprintf(&out, "*   Global scope: %s\n", backtickJoin(similar.Globals))
	}
	if len(similar.Builtins) > 0 {
		fmt.Fprintf(&out, "*   Builtins: %s\n", backtickJoin(similar.Builtins))
	}
	return out.String()
}

func backtickJoin(names []string) string {
	quoted := make([]string, 0, len(names))
	for _, name := range names {
		quoted = append(quoted, "`"+name+"`")
	}
	return strings.Join(quoted, ", ")
}

var keywords = []string{
	"and", "as", "assert", "async", "await", "break", "class",
	"continue", "def", "del", "elif", "else", "except", "finally",
	"for", "from", "global", "if", "import", "in", "is", "lambda",
	"nonlocal", "not", "or", "pass", "raise", "return", "try",
	"while", "with", "yield", "True", "False", "None",
}

var freeVariableRe = regexp2.MustCompile(`free variable '(.*)' referenced before assignment`, 0)

func freeVariable(e *exc.Exception, data *traceback.TracebackData) cause.Info {
	name, ok := firstGroup(freeVariableRe, e.SafeMessage())
	if !ok {
		return cause.Info{}
	}
	return cause.Of(
		"In your program, `%s` is a variable defined in an enclosing function.\n"+
			"It was used before the enclosing function assigned it a value.\n", name)
}

var unboundLocalRe = regexp2.MustCompile(
	`(?:local variable|cannot access local variable) '(.*)'`, 0)

func localBeforeAssignment(e *exc.Exception, data *traceback.TracebackData) cause.Info {
	name, ok := firstGroup(unboundLocalRe, e.SafeMessage())
	if !ok {
		return cause.Info{}
	}
	frame := data.CurrentFrame()
	info := cause.Of(
		"The variable `%s` is assigned somewhere in the function where the\n"+
			"error occurred, which makes it local to that function. It was used\n"+
			"before that assignment ran.\n", name)

	scopes := scope.GetDefinitionScopes(name, frame)
	for _, where := range scopes {
		switch where {
		case "global":
			info.Cause += fmt.Sprintf(
				"A global variable named `%s` exists. To use it inside the\n"+
					"function, add `global %s` at the beginning of the function.\n",
				name, name)
			info.Suggest = fmt.Sprintf(
				"Did you forget to add `global %s`?\n", name)
		case "nonlocal":
			info.Cause += fmt.Sprintf(
				"A variable named `%s` exists in an enclosing function. To use\n"+
					"it here, add `nonlocal %s` at the beginning of the function.\n",
				name, name)
			if info.Suggest == "" {
				info.Suggest = fmt.Sprintf(
					"Did you forget to add `nonlocal %s`?\n", name)
			}
		}
	}
	return info
}

// firstGroup runs a single-group regular expression against text.
func firstGroup(re *regexp2.Regexp, text string) (string, bool) {
	match, err := re.FindStringMatch(text)
	if err != nil || match == nil {
		return "", false
	}
	return match.GroupByNumber(1).String(), true
}
