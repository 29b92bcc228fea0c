// Package format renders a compiled explanation as text. It is the last
// step before the user's terminal; everything it prints was decided
// earlier by the analysis.
package format

import (
	"strings"

	"github.com/cloudcmds/clarify/explain"
	"github.com/fatih/color"
)

// Formatter renders explanation records, optionally with ANSI colors.
type Formatter struct {
	// UseColor enables ANSI color codes in output.
	UseColor bool
}

// NewFormatter creates a formatter.
func NewFormatter(useColor bool) *Formatter {
	return &Formatter{UseColor: useColor}
}

// Colors used for the different sections.
var (
	colorMessage  = color.New(color.FgRed, color.Bold)
	colorLocation = color.New(color.FgCyan)
	colorSuggest  = color.New(color.FgYellow)
	colorWarning  = color.New(color.FgYellow, color.Bold)
)

// Format renders the record. Sections the analysis could not fill are
// skipped, never shown as placeholders.
func (f *Formatter) Format(record *explain.Explanation) string {
	var b strings.Builder

	f.writeBlock(&b, colorMessage, record.Message)

	if record.Generic != "" {
		b.WriteString(record.Generic)
		b.WriteString("\n")
	}

	if record.Suggest != "" {
		f.writeBlock(&b, colorSuggest, record.Suggest)
	}

	if record.Cause != "" {
		b.WriteString("Likely cause:\n")
		b.WriteString(indent(record.Cause))
		b.WriteString("\n")
	}

	f.writeLocation(&b, record.LastCallHeader, record.LastCallSource, "", "")
	f.writeLocation(&b, record.RaisedHeader, record.RaisedSource, record.Highlight, record.VarInfo)

	for _, warning := range record.Warnings {
		f.writeBlock(&b, colorWarning, warning)
	}
	return b.String()
}

func (f *Formatter) writeBlock(b *strings.Builder, c *color.Color, text string) {
	if text == "" {
		return
	}
	if f.UseColor {
		b.WriteString(c.Sprint(text))
	} else {
		b.WriteString(text)
	}
	b.WriteString("\n")
}

func (f *Formatter) writeLocation(b *strings.Builder, header, source, highlight, varInfo string) {
	if header == "" {
		return
	}
	if f.UseColor {
		b.WriteString(colorLocation.Sprint(header))
	} else {
		b.WriteString(header)
	}
	if source != "" {
		b.WriteString("\n")
		b.WriteString(indent(source))
		if highlight != "" {
			b.WriteString(indent(highlight))
		}
	}
	if varInfo != "" {
		b.WriteString("\n")
		b.WriteString(varInfo)
		b.WriteString("\n")
	}
	b.WriteString("\n")
}

// indent prefixes every non-empty line with four spaces. Text from the
// analysis already ends in a newline; the result does too.
func indent(text string) string {
	lines := strings.Split(strings.TrimRight(text, "\n"), "\n")
	for i, line := range lines {
		if line != "" {
			lines[i] = "    " + line
		}
	}
	return strings.Join(lines, "\n") + "\n"
}
