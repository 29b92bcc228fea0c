package syntaxerrors

import (
	"testing"

	"github.com/cloudcmds/clarify/cause"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAnalyzeMissingComma(t *testing.T) {
	source := "a = {'a': 1, 'b': 2 'c': 3,}\n"
	e := syntaxError("<analyze-comma>", source, "invalid syntax", 1, 21)
	info := NewStatement(e).Analyze()

	require.False(t, info.Empty())
	assert.Contains(t, info.Suggest, "comma")
	assert.Contains(t, info.Cause, "'c'")
}

func TestAnalyzeAssignToKeywordMessage(t *testing.T) {
	e := syntaxError("<analyze-none>", "None = 1\n", "cannot assign to None", 1, 1)
	info := NewStatement(e).Analyze()

	assert.Contains(t, info.Suggest, "You cannot assign a value to `None`")
	assert.Contains(t, info.Cause, "constant")
}

func TestAnalyzeAssignToKeywordStatement(t *testing.T) {
	e := syntaxError("<analyze-pass>", "pass = 1\n", "invalid syntax", 1, 6)
	info := NewStatement(e).Analyze()

	assert.Contains(t, info.Cause, "keyword `pass`")
}

func TestAnalyzeUnterminatedString(t *testing.T) {
	e := syntaxError("<analyze-eol>", "a = 'hello\n",
		"unterminated string literal (detected at line 1)", 1, 5)
	info := NewStatement(e).Analyze()

	assert.Contains(t, info.Suggest, "closing quote")
}

func TestAnalyzeNeverClosedBracket(t *testing.T) {
	e := syntaxError("<analyze-open>", "a = [1, 2\nb = 3\n", "'[' was never closed", 1, 5)
	info := NewStatement(e).Analyze()

	assert.Contains(t, info.Cause, "square bracket")
	assert.Contains(t, info.Cause, "line 1")
}

func TestAnalyzePrintStatement(t *testing.T) {
	e := syntaxError("<analyze-print>", "print 'hello'\n",
		"Missing parentheses in call to 'print'. Did you mean print(...)?", 1, 1)
	info := NewStatement(e).Analyze()

	assert.Contains(t, info.Suggest, "print('hello')")
}

func TestAnalyzeMissingColon(t *testing.T) {
	e := syntaxError("<analyze-colon>", "for i in range(3)\n", "invalid syntax", 1, 18)
	info := NewStatement(e).Analyze()

	assert.Contains(t, info.Suggest, "colon")
}

func TestAnalyzeExpectedColonNote(t *testing.T) {
	e := syntaxError("<analyze-colon-note>", "for i in range(3)\n", "expected ':'", 1, 18)
	info := NewStatement(e).Analyze()

	assert.Contains(t, info.Cause, "expected a colon")
}

func TestAnalyzeUnknownFallback(t *testing.T) {
	e := syntaxError("<analyze-unknown>", "x ==== y\n", "invalid syntax", 1, 4)
	info := NewStatement(e).Analyze()

	assert.Contains(t, info.Cause, "cannot guess the likely cause")
}

func TestAnalyzeCustomRuleWinsAndPanicIsContained(t *testing.T) {
	AddRule("panicky", func(st *Statement) cause.Info {
		panic("rule exploded")
	})
	AddRule("custom-match", func(st *Statement) cause.Info {
		if st.Message == "my library error" {
			return cause.Of("library specific cause\n")
		}
		return cause.Info{}
	})
	defer func() { customRules = nil }()

	e := syntaxError("<analyze-custom>", "x = 1\n", "my library error", 1, 1)
	info := NewStatement(e).Analyze()
	assert.Equal(t, "library specific cause\n", info.Cause)
}

func TestAnalyzeFancyQuotes(t *testing.T) {
	e := syntaxError("<analyze-quote>", "a = “hello”\n",
		"invalid character '“' (U+201C)", 1, 5)
	info := NewStatement(e).Analyze()

	assert.Contains(t, info.Cause, "word processor")
}
