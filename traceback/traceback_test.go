package traceback

import (
	"fmt"
	"testing"

	"github.com/cloudcmds/clarify/exc"
	"github.com/cloudcmds/clarify/scope"
	"github.com/cloudcmds/clarify/sourcecache"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTrimFramesBothEnds(t *testing.T) {
	wrapper := scope.NewFrame("run", "<clarify-internal>", 10)
	outer := scope.NewFrame("<module>", "script", 1)
	inner := scope.NewFrame("f", "script", 5)
	reraise := scope.NewFrame("handle", "<clarify-internal>", 20)

	e := exc.New(exc.ValueError, "boom").WithFrames(wrapper, outer, inner, reraise)
	data := New(e)

	require.Len(t, data.Frames, 2)
	assert.Same(t, outer, data.Frames[0])
	assert.Same(t, inner, data.CurrentFrame())
}

func TestTrimFramesKeepsInnermost(t *testing.T) {
	first := scope.NewFrame("run", "<clarify-internal>", 1)
	second := scope.NewFrame("eval", "<clarify-internal>", 2)

	e := exc.New(exc.MemoryError, "out of memory").WithFrames(first, second)
	data := New(e)

	require.Len(t, data.Frames, 1)
	assert.Same(t, second, data.Frames[0])
}

func TestRecursionCompression(t *testing.T) {
	frames := make([]*scope.Frame, 12)
	for i := range frames {
		frames[i] = scope.NewFrame("spin", "script", i+1)
	}
	e := exc.New(exc.RecursionError, "maximum recursion depth exceeded").
		WithFrames(frames...)
	data := New(e)

	require.Len(t, data.Frames, 8)
	assert.Equal(t, 4, data.SuppressedFrames)
	assert.Same(t, frames[0], data.Frames[0])
	assert.Same(t, frames[11], data.CurrentFrame())
}

func TestBadLineAndProgramStoppedLine(t *testing.T) {
	sourcecache.Add("<tb>", "inner()\nx = 1/0\n")
	outer := scope.NewFrame("<module>", "<tb>", 1)
	inner := scope.NewFrame("inner", "<tb>", 2)
	e := exc.New(exc.ZeroDivisionError, "division by zero").WithFrames(outer, inner)

	data := New(e)
	assert.Equal(t, "x = 1/0", data.BadLine)
	assert.Equal(t, "inner()", data.ProgramStoppedLine)
	assert.Same(t, outer, data.ProgramStoppedFrame())
}

func TestSyntaxDetailDefaults(t *testing.T) {
	sourcecache.Add("<tb-syntax>", "x = [1, 2\n")
	e := exc.New(exc.SyntaxError, "'[' was never closed")
	e.Filename = "<tb-syntax>"
	e.Lineno = 1
	e.Offset = 5

	data := New(e)
	assert.Equal(t, 1, e.EndLineno)
	assert.Equal(t, 6, e.EndOffset)
	assert.Equal(t, "x = [1, 2", e.Text)
	assert.Equal(t, "x = [1, 2", data.BadLine)
	require.NotNil(t, data.Statement)
	assert.Nil(t, data.Frames)
}

func TestExcludeExtraPattern(t *testing.T) {
	pattern := fmt.Sprintf("<runner-%d>", len(excludePatterns))
	Exclude(pattern)
	defer func() { excludePatterns = excludePatterns[:len(excludePatterns)-1] }()

	runner := scope.NewFrame("main", pattern, 1)
	user := scope.NewFrame("<module>", "script", 3)
	e := exc.New(exc.TypeError, "bad").WithFrames(runner, user)

	data := New(e)
	require.Len(t, data.Frames, 1)
	assert.Same(t, user, data.Frames[0])
}
