// Package traceback turns a raised exception into the data every later
// analysis step works from: the relevant frames, the line where the
// exception was raised, and the line where the program stopped.
package traceback

import (
	"strings"

	"github.com/cloudcmds/clarify/exc"
	"github.com/cloudcmds/clarify/scope"
	"github.com/cloudcmds/clarify/sourcecache"
	"github.com/cloudcmds/clarify/syntaxerrors"
)

// excludePatterns lists filename fragments whose frames belong to
// machinery rather than to the user's program. Such frames are removed
// from both ends of the stack, never from the middle.
var excludePatterns = []string{
	"<clarify-internal>",
}

// Exclude registers a filename fragment to trim from tracebacks. Embedding
// applications add their own runner files here.
func Exclude(pattern string) {
	excludePatterns = append(excludePatterns, pattern)
}

// recursionHead and recursionTail bound the frames kept for a
// RecursionError, whose stack is otherwise thousands of copies of the
// same few frames.
const (
	recursionHead = 4
	recursionTail = 4
)

// TracebackData is the harvested view of one exception.
type TracebackData struct {
	Exc *exc.Exception

	// Frames is the trimmed stack, outermost first. It is never empty
	// when the exception carried frames.
	Frames []*scope.Frame

	// SuppressedFrames counts middle frames dropped from a recursive
	// stack.
	SuppressedFrames int

	// Filename and BadLine locate and quote the code that raised the
	// exception.
	Filename string
	BadLine  string

	// Node narrows BadLine to the sub-expression that raised the
	// exception, when a heuristic for the exception type identifies
	// one. It is empty otherwise; consumers fall back to the whole
	// line. NodeSpan is its byte range of columns within BadLine.
	Node     string
	NodeSpan Span

	// ProgramStoppedFilename and ProgramStoppedLine quote the outermost
	// user code, the statement whose execution led to everything else.
	ProgramStoppedFilename string
	ProgramStoppedLine     string

	// ProgramStoppedNode narrows ProgramStoppedLine to the call that
	// left that line, found independently of Node.
	ProgramStoppedNode     string
	ProgramStoppedNodeSpan Span

	// Statement is the reconstructed statement for syntax errors, nil
	// otherwise.
	Statement *syntaxerrors.Statement
}

// New harvests e. Frames from excluded files are trimmed from both ends
// of the stack; for syntax errors the offending statement is
// reconstructed from source.
func New(e *exc.Exception) *TracebackData {
	data := &TracebackData{Exc: e}

	if e.IsSyntaxError() {
		normalizeSyntaxDetails(e)
		data.Filename = e.Filename
		data.BadLine = e.Text
		if data.BadLine == "" {
			data.BadLine = sourcecache.GetLine(e.Filename, e.Lineno)
		}
		data.Statement = syntaxerrors.NewStatement(e)
		return data
	}

	data.Frames = trimFrames(e.Frames)
	if e.Type == exc.RecursionError {
		data.Frames, data.SuppressedFrames = compressRecursion(data.Frames)
	}
	if last := lastFrame(data.Frames); last != nil {
		data.Filename = last.Filename
		data.BadLine = sourcecache.GetLine(last.Filename, last.Lineno)
	}
	if len(data.Frames) > 0 {
		first := data.Frames[0]
		data.ProgramStoppedFilename = first.Filename
		data.ProgramStoppedLine = sourcecache.GetLine(first.Filename, first.Lineno)
	}
	if data.BadLine != "" {
		if node, span, ok := narrowExpression(e, data.BadLine); ok {
			data.Node = node
			data.NodeSpan = span
		}
	}
	if data.ProgramStoppedLine != "" && len(data.Frames) > 1 {
		if node, span, ok := narrowCall(data.ProgramStoppedLine, data.Frames[1].FuncName); ok {
			data.ProgramStoppedNode = node
			data.ProgramStoppedNodeSpan = span
		}
	}
	return data
}

// CurrentFrame returns the frame where the exception was raised.
func (data *TracebackData) CurrentFrame() *scope.Frame {
	return lastFrame(data.Frames)
}

// ProgramStoppedFrame returns the outermost kept frame.
func (data *TracebackData) ProgramStoppedFrame() *scope.Frame {
	if len(data.Frames) == 0 {
		return nil
	}
	return data.Frames[0]
}

func lastFrame(frames []*scope.Frame) *scope.Frame {
	if len(frames) == 0 {
		return nil
	}
	return frames[len(frames)-1]
}

// trimFrames removes excluded frames from the beginning and the end of
// the stack. When every frame is excluded the innermost one is kept: an
// explanation with a wrong location beats one with no location, and a
// MemoryError raised inside machinery still happened somewhere.
func trimFrames(frames []*scope.Frame) []*scope.Frame {
	if len(frames) == 0 {
		return nil
	}
	start := 0
	for start < len(frames) && isExcluded(frames[start].Filename) {
		start++
	}
	end := len(frames)
	for end > start && isExcluded(frames[end-1].Filename) {
		end--
	}
	if start >= end {
		return frames[len(frames)-1:]
	}
	return frames[start:end]
}

func isExcluded(filename string) bool {
	for _, pattern := range excludePatterns {
		if strings.Contains(filename, pattern) {
			return true
		}
	}
	return false
}

// compressRecursion keeps the head and tail of a recursive stack.
func compressRecursion(frames []*scope.Frame) ([]*scope.Frame, int) {
	if len(frames) <= recursionHead+recursionTail {
		return frames, 0
	}
	kept := make([]*scope.Frame, 0, recursionHead+recursionTail)
	kept = append(kept, frames[:recursionHead]...)
	kept = append(kept, frames[len(frames)-recursionTail:]...)
	return kept, len(frames) - recursionHead - recursionTail
}

// normalizeSyntaxDetails fills in absent end positions: a missing end
// row means the error spans a single row, and a missing end column means
// a single character.
func normalizeSyntaxDetails(e *exc.Exception) {
	if e.Lineno == 0 {
		return
	}
	if e.EndLineno == 0 {
		e.EndLineno = e.Lineno
	}
	if e.Offset > 0 && e.EndOffset == 0 {
		e.EndOffset = e.Offset + 1
	}
	if e.Text == "" {
		e.Text = sourcecache.GetLine(e.Filename, e.Lineno)
	}
}
