package traceback

import (
	"testing"

	"github.com/cloudcmds/clarify/exc"
	"github.com/cloudcmds/clarify/scope"
	"github.com/cloudcmds/clarify/sourcecache"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func harvestAt(t *testing.T, e *exc.Exception, filename, source string, lineno int) *TracebackData {
	t.Helper()
	sourcecache.Add(filename, source)
	frame := scope.NewFrame("<module>", filename, lineno)
	return New(e.WithFrames(frame))
}

func TestNarrowNameError(t *testing.T) {
	e := exc.New(exc.NameError, "name 'countr' is not defined")
	data := harvestAt(t, e, "<narrow-name>", "total = counter + countr\n", 1)

	assert.Equal(t, "countr", data.Node)
	assert.Equal(t, Span{Start: 18, End: 24}, data.NodeSpan)
}

func TestNarrowUnboundLocal(t *testing.T) {
	e := exc.New(exc.UnboundLocalError,
		"local variable 'total' referenced before assignment")
	data := harvestAt(t, e, "<narrow-unbound>", "x = total + 1\n", 1)

	assert.Equal(t, "total", data.Node)
	assert.Equal(t, Span{Start: 4, End: 9}, data.NodeSpan)
}

func TestNarrowSubscript(t *testing.T) {
	e := exc.New(exc.IndexError, "list index out of range")
	data := harvestAt(t, e, "<narrow-idx>", "x = a[n] + 1\n", 1)

	assert.Equal(t, "a[n]", data.Node)
	assert.Equal(t, Span{Start: 4, End: 8}, data.NodeSpan)
}

func TestNarrowAttribute(t *testing.T) {
	e := exc.New(exc.AttributeError, "'list' object has no attribute 'apend'")
	data := harvestAt(t, e, "<narrow-attr>", "items.apend(1)\n", 1)

	assert.Equal(t, "items.apend", data.Node)
	assert.Equal(t, Span{Start: 0, End: 11}, data.NodeSpan)
}

func TestNarrowDivision(t *testing.T) {
	e := exc.New(exc.ZeroDivisionError, "integer division or modulo by zero")
	data := harvestAt(t, e, "<narrow-div>", "c = a % b\n", 1)

	assert.Equal(t, "a % b", data.Node)
	assert.Equal(t, Span{Start: 4, End: 9}, data.NodeSpan)
}

func TestNarrowFallsBackToLine(t *testing.T) {
	// No heuristic recognizes the shape; Node stays empty and BadLine
	// remains the only location information.
	e := exc.New(exc.OSError, "disk unreachable")
	data := harvestAt(t, e, "<narrow-none>", "x = open('f')\n", 1)

	assert.Empty(t, data.Node)
	assert.Equal(t, "x = open('f')", data.BadLine)
}

func TestNarrowStoppedCall(t *testing.T) {
	sourcecache.Add("<narrow-call>", "result = inner() + 1\nx = 1/0\n")
	outer := scope.NewFrame("<module>", "<narrow-call>", 1)
	inner := scope.NewFrame("inner", "<narrow-call>", 2)
	e := exc.New(exc.ZeroDivisionError, "division by zero").WithFrames(outer, inner)

	data := New(e)
	require.Equal(t, "result = inner() + 1", data.ProgramStoppedLine)
	assert.Equal(t, "inner()", data.ProgramStoppedNode)
	assert.Equal(t, Span{Start: 9, End: 16}, data.ProgramStoppedNodeSpan)

	// The raised line is narrowed independently.
	assert.Equal(t, "1/0", data.Node)
}
