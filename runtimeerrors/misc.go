package runtimeerrors

import (
	"fmt"
	"strings"

	"github.com/cloudcmds/clarify/cause"
	"github.com/cloudcmds/clarify/exc"
	"github.com/cloudcmds/clarify/traceback"
)

var overflowRules = []Rule{
	{Name: "result-too-large", Apply: resultTooLarge},
}

func resultTooLarge(e *exc.Exception, data *traceback.TracebackData) cause.Info {
	message := e.SafeMessage()
	if !strings.Contains(message, "too large") && message != "math range error" {
		return cause.Info{}
	}
	return cause.Of(
		"The result of the computation is too large to be represented\n" +
			"by the kind of number used to hold it.\n")
}

var recursionRules = []Rule{
	{Name: "recursion-depth-exceeded", Apply: recursionDepthExceeded},
}

func recursionDepthExceeded(e *exc.Exception, data *traceback.TracebackData) cause.Info {
	if !strings.Contains(e.SafeMessage(), "maximum recursion depth exceeded") {
		return cause.Info{}
	}
	info := cause.Of(
		"A function kept calling itself (or functions kept calling each\n" +
			"other) without ever reaching a condition that stops the calls.\n" +
			"Check that the base case of the recursion can be reached.\n")
	if data.SuppressedFrames > 0 {
		info.Cause += fmt.Sprintf(
			"%d repeated calls were omitted from the traceback shown.\n",
			data.SuppressedFrames)
	}
	return info
}
