package runtimeerrors

import (
	"fmt"
	"strconv"

	"github.com/cloudcmds/clarify/cause"
	"github.com/cloudcmds/clarify/exc"
	"github.com/cloudcmds/clarify/object"
	"github.com/cloudcmds/clarify/scope"
	"github.com/cloudcmds/clarify/tokenizer"
	"github.com/cloudcmds/clarify/traceback"
	"github.com/dlclark/regexp2"
)

var indexErrorRules = []Rule{
	{Name: "index-out-of-range", Apply: indexOutOfRange},
	{Name: "assignment-index-out-of-range", Apply: assignmentIndexOutOfRange},
}

var indexOutOfRangeRe = regexp2.MustCompile(`(list|tuple|range|string|str) index out of range`, 0)

func indexOutOfRange(e *exc.Exception, data *traceback.TracebackData) cause.Info {
	kind, ok := firstGroup(indexOutOfRangeRe, e.SafeMessage())
	if !ok {
		return cause.Info{}
	}
	return describeBadIndex(kind, data, false)
}

var assignmentIndexRe = regexp2.MustCompile(`(list|array) assignment index out of range`, 0)

func assignmentIndexOutOfRange(e *exc.Exception, data *traceback.TracebackData) cause.Info {
	kind, ok := firstGroup(assignmentIndexRe, e.SafeMessage())
	if !ok {
		return cause.Info{}
	}
	return describeBadIndex(kind, data, true)
}

func describeBadIndex(kind string, data *traceback.TracebackData, assignment bool) cause.Info {
	verb := "get"
	if assignment {
		verb = "assign"
	}
	name, container, indexText := findSubscript(data.BadLine, data.CurrentFrame())
	if container == nil {
		return cause.Of(
			"You have tried to %s an item from a %s using an index that is\n"+
				"not within its valid range.\n", verb, kind)
	}
	length, hasLen, err := object.TryLen(container)
	if !hasLen || err != nil {
		return cause.Of(
			"You have tried to %s an item from `%s`, a %s, using an index\n"+
				"that is not within its valid range.\n", verb, name, kind)
	}
	if length == 0 {
		return cause.Of(
			"You have tried to %s an item from `%s`, a %s which contains no item.\n",
			verb, name, kind)
	}

	info := cause.Of(
		"You have tried to %s the item with index `%s` of `%s`,\n"+
			"a %s of length %d. The valid index values of `%s` are\n"+
			"integers ranging from `-%d` to `%d`.\n",
		verb, indexText, name, kind, length, name, length, length-1)

	if index, parseErr := strconv.ParseInt(indexText, 10, 64); parseErr == nil &&
		index == int64(length) {
		info.Cause += fmt.Sprintf(
			"Remember: the first item of a %s is not at index 1 but at index 0.\n",
			kind)
		info.Suggest = fmt.Sprintf("Remember: the first item of `%s` is at index 0.\n", name)
	}
	return info
}

// findSubscript locates the first subscripted name on the line and
// resolves both the container and the text of the index.
func findSubscript(line string, frame *scope.Frame) (string, object.Object, string) {
	tokens := tokenizer.GetSignificantTokens(line)
	for index, tok := range tokens {
		if !tok.IsIdentifier() || index+1 >= len(tokens) || !tokens[index+1].Is("[") {
			continue
		}
		if index > 0 && tokens[index-1].Is(".") {
			continue
		}
		container, ok := scope.GetObjectFromName(tok.String, frame)
		if !ok {
			continue
		}
		indexText := ""
		for _, inner := range tokens[index+2:] {
			if inner.Is("]") {
				break
			}
			indexText += inner.String
		}
		// A name used as the index is resolved so the message can show
		// the actual number.
		if value, err := scope.Evaluate(indexText, frame); err == nil {
			if number, isInt := value.(*object.Int); isInt {
				indexText = number.Inspect()
			}
		}
		return tok.String, container, indexText
	}
	return "", nil, ""
}
