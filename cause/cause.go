// Package cause defines the result type shared by every analysis rule.
package cause

import "fmt"

// Info is the outcome of one analysis rule: an explanation of what went
// wrong and, when a concrete fix can be guessed, a short suggestion.
// The zero value means the rule did not apply.
type Info struct {
	// Cause explains in plain language why the error occurred.
	Cause string

	// Suggest is a one line hint, usually phrased as a question, shown
	// before the full explanation. Optional.
	Suggest string
}

// Empty reports whether the rule produced nothing.
func (i Info) Empty() bool {
	return i.Cause == "" && i.Suggest == ""
}

// Of builds an Info with a formatted cause and no suggestion.
func Of(format string, args ...interface{}) Info {
	return Info{Cause: fmt.Sprintf(format, args...)}
}

// WithSuggest returns a copy of the Info with a formatted suggestion.
func (i Info) WithSuggest(format string, args ...interface{}) Info {
	i.Suggest = fmt.Sprintf(format, args...)
	return i
}

// Prepend returns a copy of the Info with text inserted before the cause.
func (i Info) Prepend(text string) Info {
	i.Cause = text + i.Cause
	return i
}
