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

var importErrorRules = []Rule{
	{Name: "cannot-import-name", Apply: cannotImportName},
}

var moduleNotFoundRules = []Rule{
	{Name: "no-module-named", Apply: noModuleNamed},
}

var cannotImportRe = regexp2.MustCompile(`cannot import name '(.*)' from '(.*)'`, 0)

func cannotImportName(e *exc.Exception, data *traceback.TracebackData) cause.Info {
	match, err := cannotImportRe.FindStringMatch(e.SafeMessage())
	if err != nil || match == nil {
		return cause.Info{}
	}
	name := match.GroupByNumber(1).String()
	moduleName := match.GroupByNumber(2).String()

	info := cause.Of(
		"The object that could not be imported is `%s`.\n"+
			"The module named `%s` has no object with that name.\n",
		name, moduleName)

	module, known := knownModules[moduleName]
	if !known {
		return info
	}
	attrs, attrErr := object.TryAttrNames(module)
	if attrErr != nil {
		return info
	}
	similar := scope.GetSimilarWords(name, attrs)
	switch len(similar) {
	case 0:
	case 1:
		info.Cause += fmt.Sprintf(
			"The module `%s` does contain an object named `%s`;\n"+
				"perhaps that is what you meant.\n", moduleName, similar[0])
		info.Suggest = fmt.Sprintf("Did you mean `%s`?\n", similar[0])
	default:
		info.Cause += fmt.Sprintf(
			"Among the objects of the module `%s`, the names most\n"+
				"similar to `%s` are: %s.\n",
			moduleName, name, backtickJoin(similar))
	}
	return info
}

var noModuleRe = regexp2.MustCompile(`No module named '(.*)'`, 0)

func noModuleNamed(e *exc.Exception, data *traceback.TracebackData) cause.Info {
	name, ok := firstGroup(noModuleRe, e.SafeMessage())
	if !ok {
		return cause.Info{}
	}
	info := cause.Of("No module named `%s` can be imported.\n", name)
	similar := scope.GetSimilarWords(name, moduleNames())
	if len(similar) == 1 {
		info.Cause += fmt.Sprintf(
			"A module named `%s` exists; perhaps you misspelled its name.\n",
			similar[0])
		info.Suggest = fmt.Sprintf("Did you mean `%s`?\n", similar[0])
	} else if len(similar) > 1 {
		info.Cause += fmt.Sprintf(
			"Perhaps you meant one of the following modules: %s.\n",
			backtickJoin(similar))
	}
	return info
}
