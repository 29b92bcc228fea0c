package runtimeerrors

import (
	"testing"

	"github.com/cloudcmds/clarify/cause"
	"github.com/cloudcmds/clarify/exc"
	"github.com/cloudcmds/clarify/object"
	"github.com/cloudcmds/clarify/scope"
	"github.com/cloudcmds/clarify/sourcecache"
	"github.com/cloudcmds/clarify/traceback"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// harvest registers source under a synthetic filename, points a frame at
// the given line, and harvests the exception.
func harvest(e *exc.Exception, filename, source string, lineno int, frame *scope.Frame) *traceback.TracebackData {
	sourcecache.Add(filename, source)
	frame.Filename = filename
	frame.Lineno = lineno
	return traceback.New(e.WithFrames(frame))
}

func TestIndexOutOfRange(t *testing.T) {
	frame := scope.NewFrame("<module>", "", 0).
		WithLocal("a", object.NewList([]object.Object{
			object.NewInt(1), object.NewInt(2), object.NewInt(3),
		}))
	e := exc.New(exc.IndexError, "list index out of range")
	data := harvest(e, "<idx>", "x = a[3]\n", 1, frame)

	info, err := Analyze(data)
	require.NoError(t, err)
	assert.Contains(t, info.Cause, "a list of length 3")
	assert.Contains(t, info.Cause, "from `-3` to `2`")
	assert.Contains(t, info.Suggest, "index 0")
}

func TestTupleIndexOutOfRange(t *testing.T) {
	frame := scope.NewFrame("<module>", "", 0).
		WithLocal("a", object.NewTuple([]object.Object{
			object.NewInt(1), object.NewInt(2), object.NewInt(3),
		}))
	e := exc.New(exc.IndexError, "tuple index out of range")
	data := harvest(e, "<idx-tuple>", "x = a[3]\n", 1, frame)

	info, err := Analyze(data)
	require.NoError(t, err)
	assert.Contains(t, info.Cause, "a tuple of length 3")
	assert.Contains(t, info.Cause, "from `-3` to `2`")
}

func TestIndexViaVariable(t *testing.T) {
	frame := scope.NewFrame("<module>", "", 0).
		WithLocal("a", object.NewList([]object.Object{object.NewInt(1)})).
		WithLocal("n", object.NewInt(4))
	e := exc.New(exc.IndexError, "list index out of range")
	data := harvest(e, "<idx-var>", "x = a[n]\n", 1, frame)

	info, err := Analyze(data)
	require.NoError(t, err)
	assert.Contains(t, info.Cause, "index `4`")
}

func TestZeroDivisionExpression(t *testing.T) {
	frame := scope.NewFrame("<module>", "", 0).
		WithLocal("a", object.NewInt(7)).
		WithLocal("b", object.NewInt(0))
	e := exc.New(exc.ZeroDivisionError, "integer division or modulo by zero")
	data := harvest(e, "<div>", "c = a % b\n", 1, frame)

	info, err := Analyze(data)
	require.NoError(t, err)
	assert.Contains(t, info.Cause, "modulo")
	assert.Contains(t, info.Cause, "equal to zero: `b`")
}

func TestZeroDivisionLiteral(t *testing.T) {
	frame := scope.NewFrame("<module>", "", 0)
	e := exc.New(exc.ZeroDivisionError, "division by zero")
	data := harvest(e, "<div-lit>", "c = 1 / 0\n", 1, frame)

	info, err := Analyze(data)
	require.NoError(t, err)
	assert.Contains(t, info.Cause, "literal number `0`")
}

func TestNameErrorMissingSelf(t *testing.T) {
	point := object.NewInstance(object.NewClass("Point")).
		Set("color", object.NewStr("red"))
	frame := scope.NewFrame("draw", "", 0).WithLocal("self", point)
	e := exc.New(exc.NameError, "name 'color' is not defined")
	data := harvest(e, "<self>", "print(color)\n", 1, frame)

	info, err := Analyze(data)
	require.NoError(t, err)
	assert.Contains(t, info.Suggest, "self.")
	assert.Contains(t, info.Cause, "self.color")
}

func TestNameErrorSimilarName(t *testing.T) {
	frame := scope.NewFrame("<module>", "", 0).
		WithLocal("counter", object.NewInt(1))
	e := exc.New(exc.NameError, "name 'countr' is not defined")
	data := harvest(e, "<similar>", "print(countr)\n", 1, frame)

	info, err := Analyze(data)
	require.NoError(t, err)
	assert.Contains(t, info.Suggest, "counter")
}

func TestNameErrorImaginaryUnit(t *testing.T) {
	frame := scope.NewFrame("<module>", "", 0)
	e := exc.New(exc.NameError, "name 'j' is not defined")
	data := harvest(e, "<imag>", "x = 2 * j\n", 1, frame)

	info, err := Analyze(data)
	require.NoError(t, err)
	assert.Contains(t, info.Suggest, "1j")
}

func TestUnboundLocalSuggestsGlobal(t *testing.T) {
	frame := scope.NewFrame("f", "", 0).
		WithGlobal("total", object.NewInt(10))
	e := exc.New(exc.UnboundLocalError,
		"local variable 'total' referenced before assignment")
	data := harvest(e, "<unbound>", "total = total + 1\n", 1, frame)

	info, err := Analyze(data)
	require.NoError(t, err)
	assert.Contains(t, info.Suggest, "global total")
}

func TestCannotImportName(t *testing.T) {
	frame := scope.NewFrame("<module>", "", 0)
	e := exc.New(exc.ImportError, "cannot import name 'bsin' from 'math'")
	data := harvest(e, "<imp>", "from math import bsin\n", 1, frame)

	info, err := Analyze(data)
	require.NoError(t, err)
	assert.Contains(t, info.Cause, "`asin`")
	assert.Contains(t, info.Cause, "`sin`")
}

func TestModuleNotFound(t *testing.T) {
	frame := scope.NewFrame("<module>", "", 0)
	e := exc.New(exc.ModuleNotFoundError, "No module named 'maths'")
	data := harvest(e, "<mod>", "import maths\n", 1, frame)

	info, err := Analyze(data)
	require.NoError(t, err)
	assert.Contains(t, info.Suggest, "math")
}

func TestAttributeErrorSimilar(t *testing.T) {
	frame := scope.NewFrame("<module>", "", 0).
		WithLocal("items", object.NewList(nil))
	e := exc.New(exc.AttributeError, "'list' object has no attribute 'apend'")
	data := harvest(e, "<attr>", "items.apend(1)\n", 1, frame)

	info, err := Analyze(data)
	require.NoError(t, err)
	assert.Contains(t, info.Suggest, "append")
}

func TestKeyErrorSimilarKey(t *testing.T) {
	d := object.NewDict()
	d.Set(object.NewStr("name"), object.NewStr("Ada"))
	frame := scope.NewFrame("<module>", "", 0).WithLocal("person", d)
	e := exc.NewWithValue(exc.KeyError, object.NewStr("nme"))
	data := harvest(e, "<key>", "x = person['nme']\n", 1, frame)

	info, err := Analyze(data)
	require.NoError(t, err)
	assert.Contains(t, info.Suggest, "'name'")
}

func TestTypeErrorStrPlusInt(t *testing.T) {
	frame := scope.NewFrame("<module>", "", 0)
	e := exc.New(exc.TypeError, "unsupported operand type(s) for +: 'int' and 'str'")
	data := harvest(e, "<plus>", "x = 1 + 'a'\n", 1, frame)

	info, err := Analyze(data)
	require.NoError(t, err)
	assert.Contains(t, info.Suggest, "str()")
}

func TestNoInformationSentinel(t *testing.T) {
	frame := scope.NewFrame("<module>", "", 0)
	e := exc.New(exc.AssertionError, "something went wrong")
	data := harvest(e, "<noinfo>", "assert False\n", 1, frame)

	info, err := Analyze(data)
	require.NoError(t, err)
	assert.True(t, IsNoInformation(info))
}

func TestRulesRunInRegistrationOrder(t *testing.T) {
	AddRule(exc.EOFError, "first", func(e *exc.Exception, data *traceback.TracebackData) cause.Info {
		return cause.Of("first matching rule\n")
	})
	AddRule(exc.EOFError, "second", func(e *exc.Exception, data *traceback.TracebackData) cause.Info {
		return cause.Of("second matching rule\n")
	})
	defer delete(customRules, exc.EOFError)

	frame := scope.NewFrame("<module>", "", 0)
	e := exc.New(exc.EOFError, "EOF when reading a line")
	data := harvest(e, "<order>", "s = input()\n", 1, frame)

	info, err := Analyze(data)
	require.NoError(t, err)
	assert.Equal(t, "first matching rule\n", info.Cause,
		"overlapping rules resolve by registration order")
}

func TestCustomRuleAndPanicBarrier(t *testing.T) {
	AddRule(exc.ValueError, "panicky", func(e *exc.Exception, data *traceback.TracebackData) cause.Info {
		panic("rule exploded")
	})
	AddRule(exc.ValueError, "custom", func(e *exc.Exception, data *traceback.TracebackData) cause.Info {
		if e.SafeMessage() == "my library error" {
			return cause.Of("library specific cause\n")
		}
		return cause.Info{}
	})
	defer delete(customRules, exc.ValueError)

	frame := scope.NewFrame("<module>", "", 0)
	e := exc.New(exc.ValueError, "my library error")
	data := harvest(e, "<custom>", "x = 1\n", 1, frame)

	info, err := Analyze(data)
	require.Error(t, err, "the panicking rule is reported")
	assert.Equal(t, "library specific cause\n", info.Cause)
}
