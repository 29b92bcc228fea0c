// Package explain assembles the final explanation record for one
// exception: the generic description of its type, the specific cause
// determined by the rule registries, and the source and variable
// excerpts a formatter needs to display it.
package explain

import (
	"fmt"
	"strings"

	"github.com/cloudcmds/clarify/exc"
	"github.com/cloudcmds/clarify/internal/diag"
	"github.com/cloudcmds/clarify/runtimeerrors"
	"github.com/cloudcmds/clarify/scope"
	"github.com/cloudcmds/clarify/traceback"
	"github.com/gofrs/uuid"
)

// Explanation is the compiled record for one exception occurrence. Empty
// fields mean the corresponding information could not be determined;
// formatters skip them.
type Explanation struct {
	// ID identifies the occurrence. Recompiling in another language
	// produces a new record with the same ID.
	ID uuid.UUID

	// Lang is the display language the record was compiled for.
	Lang string

	// Message is the original error line, "TypeName: message".
	Message string

	// Generic describes what this kind of exception means, independently
	// of the occurrence.
	Generic string

	// Cause and Suggest are the occurrence-specific analysis.
	Cause   string
	Suggest string

	// Where the exception was raised.
	RaisedHeader string
	RaisedSource string

	// Highlight is a marker line aligned under RaisedSource, carets
	// under the sub-expression or tokens the analysis narrowed the
	// error down to. Empty when the whole line is the best answer.
	Highlight string

	// Where the program stopped, when that differs from where the
	// exception was raised.
	LastCallHeader string
	LastCallSource string

	// VarInfo lists the values of the variables appearing on the bad
	// line, one per line.
	VarInfo string

	// Warnings are remarks about the program that are not the cause of
	// the error, such as a shadowed builtin.
	Warnings []string

	// SuppressedFrames counts the repeated frames omitted from a
	// recursive stack.
	SuppressedFrames int
}

// Section is one named part of an explanation, in display order.
type Section struct {
	Name string
	Text string
}

// Sections returns the non-empty parts of the record in the order a
// formatter should display them.
func (ex *Explanation) Sections() []Section {
	all := []Section{
		{"message", ex.Message},
		{"generic", ex.Generic},
		{"cause", ex.Cause},
		{"suggest", ex.Suggest},
		{"last_call_header", ex.LastCallHeader},
		{"last_call_source", ex.LastCallSource},
		{"raised_header", ex.RaisedHeader},
		{"raised_source", ex.RaisedSource},
		{"highlight", ex.Highlight},
		{"var_info", ex.VarInfo},
	}
	sections := make([]Section, 0, len(all)+len(ex.Warnings))
	for _, section := range all {
		if section.Text != "" {
			sections = append(sections, section)
		}
	}
	for _, warning := range ex.Warnings {
		sections = append(sections, Section{"warning", warning})
	}
	return sections
}

// Compiler produces the explanation record for a single exception. The
// traceback is harvested once, on the first Compile; Recompile renders
// again from the retained data, so it stays usable after the frames of
// the failed call are gone.
type Compiler struct {
	id     uuid.UUID
	exc    *exc.Exception
	data   *traceback.TracebackData
	record *Explanation
}

func NewCompiler(e *exc.Exception) *Compiler {
	return &Compiler{id: uuid.Must(uuid.NewV4()), exc: e}
}

// Compiled reports whether the record has been produced at least once.
func (c *Compiler) Compiled() bool {
	return c.record != nil
}

// Compile harvests the exception (once) and assembles the record.
func (c *Compiler) Compile(lang string) *Explanation {
	if c.data == nil {
		c.data = traceback.New(c.exc)
	}
	c.record = c.render(lang)
	return c.record
}

// Recompile renders the record again, typically for another display
// language, reusing the data captured by the first Compile.
func (c *Compiler) Recompile(lang string) *Explanation {
	if c.record != nil && c.record.Lang == lang {
		return c.record
	}
	return c.Compile(lang)
}

func (c *Compiler) render(lang string) *Explanation {
	e := c.exc
	record := &Explanation{
		ID:               c.id,
		Lang:             lang,
		Message:          e.Error() + "\n",
		Generic:          GenericExplanation(e.Type),
		SuppressedFrames: c.data.SuppressedFrames,
	}

	if e.IsSyntaxError() {
		c.renderSyntax(record)
	} else {
		c.renderRuntime(record)
	}
	return record
}

func (c *Compiler) renderSyntax(record *Explanation) {
	st := c.data.Statement
	if st == nil {
		return
	}
	info := st.Analyze()
	record.Cause = info.Cause
	record.Suggest = info.Suggest
	if st.Linenumber > 0 {
		record.RaisedHeader = fmt.Sprintf(
			"A `%s` occurred on line %d of file '%s'.\n",
			c.exc.Type.Name, st.Linenumber, st.Filename)
	}
	record.RaisedSource = st.BadLine
	if record.RaisedSource == "" {
		record.RaisedSource = st.EntireStatement
	}
	if tokens := st.HighlightedTokens; len(tokens) > 0 && record.RaisedSource == st.BadLine {
		first := tokens[0]
		last := tokens[len(tokens)-1]
		record.Highlight = caretLine(first.Start.Col, last.End.Col)
	}
}

// caretLine marks the columns [start, end) of the source line quoted just
// above it.
func caretLine(start, end int) string {
	if start < 0 || end <= start {
		return ""
	}
	return strings.Repeat(" ", start) + strings.Repeat("^", end-start)
}

func (c *Compiler) renderRuntime(record *Explanation) {
	info, err := runtimeerrors.Analyze(c.data)
	if err != nil {
		diag.Log().Debug().Err(err).
			Str("exception", c.exc.Type.Name).
			Msg("rule failures during analysis")
	}
	record.Cause = info.Cause
	record.Suggest = info.Suggest

	frame := c.data.CurrentFrame()
	if frame == nil {
		return
	}
	record.RaisedHeader = fmt.Sprintf(
		"Exception raised on line %d of file '%s'.\n",
		frame.Lineno, frame.Filename)
	record.RaisedSource = c.data.BadLine
	if c.data.Node != "" {
		record.Highlight = caretLine(c.data.NodeSpan.Start, c.data.NodeSpan.End)
	}

	if stopped := c.data.ProgramStoppedFrame(); stopped != nil && stopped != frame {
		record.LastCallHeader = fmt.Sprintf(
			"Execution stopped on line %d of file '%s'.\n",
			stopped.Lineno, stopped.Filename)
		record.LastCallSource = c.data.ProgramStoppedLine
	}

	record.VarInfo = scope.FormatVarInfo(scope.GetAllObjects(c.data.BadLine, frame))
	for _, name := range scope.FindRenamedBuiltins(frame) {
		record.Warnings = append(record.Warnings,
			fmt.Sprintf("Warning: you have redefined the builtin `%s`.\n", name))
	}
}
