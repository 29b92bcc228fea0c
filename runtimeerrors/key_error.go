package runtimeerrors

import (
	"fmt"
	"strings"

	"github.com/cloudcmds/clarify/cause"
	"github.com/cloudcmds/clarify/exc"
	"github.com/cloudcmds/clarify/object"
	"github.com/cloudcmds/clarify/scope"
	"github.com/cloudcmds/clarify/traceback"
)

var keyErrorRules = []Rule{
	{Name: "missing-key", Apply: missingKey},
}

func missingKey(e *exc.Exception, data *traceback.TracebackData) cause.Info {
	key := missingKeyText(e)
	if key == "" {
		return cause.Info{}
	}
	frame := data.CurrentFrame()
	name, container, _ := findSubscript(data.BadLine, frame)
	dict, isDict := container.(*object.Dict)
	if !isDict {
		return cause.Of("The key %s was not found.\n", key)
	}

	info := cause.Of(
		"The key %s was not found in the dict `%s`.\n", key, name)

	plain := strings.Trim(key, `'"`)

	// A quoted key matching the name of a variable suggests the quotes
	// were not intended.
	if value, ok := scope.GetObjectFromName(plain, frame); ok && plain != key {
		if _, found := dict.Get(value); found {
			info.Cause += fmt.Sprintf(
				"A variable named `%s` exists and its value is a key of `%s`.\n"+
					"Perhaps you meant to write `%s[%s]`, without quotes.\n",
				plain, name, name, plain)
			return info.WithSuggest("Did you mean `%s[%s]`?\n", name, plain)
		}
	}

	similar := scope.GetSimilarWords(plain, dict.StringKeys())
	if len(similar) == 1 {
		info.Cause += fmt.Sprintf(
			"However, `%s` does contain the key `'%s'`.\n", name, similar[0])
		info.Suggest = fmt.Sprintf("Did you mean `'%s'`?\n", similar[0])
	} else if len(similar) > 1 {
		info.Cause += fmt.Sprintf(
			"The keys of `%s` most similar to %s are: %s.\n",
			name, key, backtickJoin(similar))
	}
	return info
}

// missingKeyText recovers the representation of the missing key, either
// from the value the exception was raised with or from its message.
func missingKeyText(e *exc.Exception) string {
	if value, ok := e.Value(); ok {
		return object.SafeInspect(value)
	}
	return strings.TrimSpace(e.SafeMessage())
}
