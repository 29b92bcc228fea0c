package syntaxerrors

import (
	"testing"

	"github.com/cloudcmds/clarify/exc"
	"github.com/cloudcmds/clarify/sourcecache"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func syntaxError(filename, source, message string, lineno, offset int) *exc.Exception {
	sourcecache.Add(filename, source)
	e := exc.New(exc.SyntaxError, "%s", message)
	e.Filename = filename
	e.Lineno = lineno
	e.Offset = offset
	return e
}

func TestStatementSingleLine(t *testing.T) {
	e := syntaxError("<test-single>", "a = 1\npass = 2\nb = 3\n", "invalid syntax", 2, 6)
	st := NewStatement(e)

	assert.Equal(t, "pass = 2\n", st.EntireStatement)
	require.NotNil(t, st.BadToken)
	assert.Equal(t, "=", st.BadToken.String)
	assert.Equal(t, "pass", st.PrevToken.String)
	assert.Equal(t, "2", st.NextToken.String)
	assert.Len(t, st.AllStatements, 2)
}

func TestStatementSpansBrackets(t *testing.T) {
	source := "a = (1,\n     2,\n     3)\nb = 4\n"
	e := syntaxError("<test-brackets>", source, "invalid syntax", 2, 6)
	st := NewStatement(e)

	assert.Equal(t, "a = (1,\n     2,\n     3)\n", st.EntireStatement)
	assert.Empty(t, st.StatementBrackets, "all brackets matched")
}

func TestStatementBadTokenAtOffset(t *testing.T) {
	source := "a = {'a': 1, 'b': 2 'c': 3,}\n"
	e := syntaxError("<test-comma>", source, "invalid syntax", 1, 21)
	st := NewStatement(e)

	require.NotNil(t, st.BadToken)
	assert.Equal(t, "'c'", st.BadToken.String)
	assert.Equal(t, "2", st.PrevToken.String)
}

func TestStatementHighlightsErrorSpan(t *testing.T) {
	// A multi-column error span highlights every token it covers: here
	// the two values with the missing comma between them.
	source := "a = {'a': 1, 'b': 2 'c': 3,}\n"
	e := syntaxError("<test-span>", source, "invalid syntax", 1, 19)
	e.EndOffset = 24
	st := NewStatement(e)

	require.NotNil(t, st.BadToken)
	assert.Equal(t, "2", st.BadToken.String)

	var highlighted []string
	for _, tok := range st.HighlightedTokens {
		highlighted = append(highlighted, tok.String)
	}
	assert.Equal(t, []string{"2", "'c'"}, highlighted)
}

func TestStatementDefaultsToLastToken(t *testing.T) {
	e := syntaxError("<test-last>", "for i in range(3)\n", "expected ':'", 1, 18)
	st := NewStatement(e)

	require.NotNil(t, st.BadToken)
	assert.Equal(t, ")", st.BadToken.String)
	assert.Equal(t, st.LastToken, st.BadToken)
	assert.Equal(t, Meaningless, st.NextToken)
}

func TestStatementUnclosedBracket(t *testing.T) {
	source := "a = [1, 2\nb = 3\n"
	e := syntaxError("<test-unclosed>", source, "'[' was never closed", 1, 5)
	st := NewStatement(e)

	require.NotEmpty(t, st.BeginBrackets)
	assert.Equal(t, "[", st.BeginBrackets[0].String)
	assert.Equal(t, []string{"["}, st.StatementBrackets)
}

func TestStatementUnmatchedClosingBracket(t *testing.T) {
	e := syntaxError("<test-unmatched>", "a = (1, 2]\n", "invalid syntax", 1, 10)
	st := NewStatement(e)

	require.NotNil(t, st.EndBracket)
	assert.Equal(t, "]", st.EndBracket.String)
}

func TestConsoleBracketsAreClosed(t *testing.T) {
	source := "if x == (1\n"
	e := syntaxError("<clarify-console-1>", source, "invalid syntax", 1, 11)
	st := NewStatement(e)

	require.True(t, st.UsingConsole)
	last := st.Tokens[len(st.Tokens)-1]
	assert.Equal(t, "):", last.String, "brackets closed and colon added for the block keyword")
}

func TestStatementFallsBackToPreviousStatement(t *testing.T) {
	// The reported line holds nothing meaningful; the previous statement
	// is used instead.
	source := "a = 1\n\n"
	e := syntaxError("<test-blank>", source, "invalid syntax", 2, 1)
	st := NewStatement(e)
	require.NotEmpty(t, st.Tokens)
}
