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

var attributeErrorRules = []Rule{
	{Name: "module-has-no-attribute", Apply: moduleHasNoAttribute},
	{Name: "none-has-no-attribute", Apply: noneHasNoAttribute},
	{Name: "object-has-no-attribute", Apply: objectHasNoAttribute},
}

var moduleAttrRe = regexp2.MustCompile(`module '(.*)' has no attribute '(.*)'`, 0)

func moduleHasNoAttribute(e *exc.Exception, data *traceback.TracebackData) cause.Info {
	match, err := moduleAttrRe.FindStringMatch(e.SafeMessage())
	if err != nil || match == nil {
		return cause.Info{}
	}
	moduleName := match.GroupByNumber(1).String()
	attr := match.GroupByNumber(2).String()

	info := cause.Of(
		"The module named `%s` has no attribute named `%s`.\n",
		moduleName, attr)

	module, known := knownModules[moduleName]
	if !known {
		if value, ok := scope.GetObjectFromName(moduleName, data.CurrentFrame()); ok {
			if m, isModule := value.(*object.Module); isModule {
				module = m
				known = true
			}
		}
	}
	if !known {
		return info
	}
	attrs, attrErr := object.TryAttrNames(module)
	if attrErr != nil {
		return info
	}
	similar := scope.GetSimilarWords(attr, attrs)
	if len(similar) == 1 {
		info.Cause += fmt.Sprintf(
			"However, it does have an attribute named `%s`.\n", similar[0])
		info.Suggest = fmt.Sprintf("Did you mean `%s`?\n", similar[0])
	} else if len(similar) > 1 {
		info.Cause += fmt.Sprintf(
			"The names of its attributes most similar to `%s` are: %s.\n",
			attr, backtickJoin(similar))
	}
	return info
}

var noneAttrRe = regexp2.MustCompile(`'NoneType' object has no attribute '(.*)'`, 0)

func noneHasNoAttribute(e *exc.Exception, data *traceback.TracebackData) cause.Info {
	attr, ok := firstGroup(noneAttrRe, e.SafeMessage())
	if !ok {
		return cause.Info{}
	}
	return cause.Of(
		"You are treating `None` as if it were an object with an attribute\n"+
			"named `%s`. Often this happens when a function that returns no\n"+
			"value (that is, returns `None`) is used as though it returned an\n"+
			"actual object.\n", attr)
}

var objectAttrRe = regexp2.MustCompile(`'(.*)' object has no attribute '(.*)'`, 0)

func objectHasNoAttribute(e *exc.Exception, data *traceback.TracebackData) cause.Info {
	match, err := objectAttrRe.FindStringMatch(e.SafeMessage())
	if err != nil || match == nil {
		return cause.Info{}
	}
	typeName := match.GroupByNumber(1).String()
	attr := match.GroupByNumber(2).String()

	info := cause.Of(
		"The object of type `%s` has no attribute named `%s`.\n",
		typeName, attr)

	target := findObjectOfType(typeName, data)
	if target == nil {
		return info
	}
	attrs, attrErr := object.TryAttrNames(target)
	if attrErr != nil || len(attrs) == 0 {
		return info
	}
	similar := scope.GetSimilarWords(attr, attrs)
	if len(similar) == 1 {
		info.Cause += fmt.Sprintf(
			"However, it does have an attribute named `%s`.\n", similar[0])
		info.Suggest = fmt.Sprintf("Did you mean `%s`?\n", similar[0])
	} else if len(similar) > 1 {
		info.Cause += fmt.Sprintf(
			"The names of its attributes most similar to `%s` are: %s.\n",
			attr, backtickJoin(similar))
	}
	return info
}

// findObjectOfType looks on the offending line for a variable whose type
// matches the one named in the message.
func findObjectOfType(typeName string, data *traceback.TracebackData) object.Object {
	frame := data.CurrentFrame()
	if frame == nil {
		return nil
	}
	for _, named := range scope.GetAllObjects(data.BadLine, frame).All() {
		if string(named.Object.Type()) == typeName {
			return named.Object
		}
	}
	return nil
}
