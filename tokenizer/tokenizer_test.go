package tokenizer

import (
	"testing"

	"github.com/cloudcmds/clarify/token"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRoundTrip(t *testing.T) {
	sources := []string{
		"",
		"a = 1\n",
		"a = 1",
		"a  =   1   # comment\n",
		"if True:\n    x = 1\n",
		"if True:\n\tx = 1\n\ty = 2\n",
		"a = (1,\n     2,\n     3)\n",
		"a = 1 + \\\n    2\n",
		"x = 'hello'\ny = \"world\"\n",
		"s = '''multi\nline\nstring'''\n",
		"def f():\n    pass\n\n\n",
		"a = {'a': 1, 'b': 2 'c': 3,}\n",
		"x = 1\n   \t",
		"   \n",
		"# only a comment\n",
		"a = [1, 2,\n\n     3]\n",
		"x = 10_000\ny = 0x1f\nz = 1.5e-3\n",
		"while x < 10 :\n    x += 1\n",
	}
	for _, source := range sources {
		tokens := Tokenize(source)
		assert.Equal(t, source, Untokenize(tokens), "source: %q", source)
	}
}

func TestRoundTripMalformed(t *testing.T) {
	// Malformed sources must still be reconstructed exactly.
	sources := []string{
		"s = '''never closed\nmore text\n",
		"s = '''never closed",
		"x = 'unterminated\ny = 1\n",
		"a = $ 1\n", // invalid character
		"a = (1, 2\n",
	}
	for _, source := range sources {
		tokens := Tokenize(source)
		assert.Equal(t, source, Untokenize(tokens), "source: %q", source)
	}
}

func TestUnclosedTripleQuotedString(t *testing.T) {
	source := "s = '''never closed\nsecond line\n"
	tokens := Tokenize(source)
	require.NotEmpty(t, tokens)

	var unclosed []*token.Token
	for _, tok := range tokens {
		if tok.IsUnclosedString() {
			unclosed = append(unclosed, tok)
		}
	}
	require.Len(t, unclosed, 2)
	assert.Equal(t, 1, unclosed[0].Start.Row)
	assert.Equal(t, 4, unclosed[0].Start.Col)
	assert.Equal(t, 2, unclosed[1].Start.Row)
	assert.Equal(t, "second line\n", unclosed[1].String)
	assert.Equal(t, source, Untokenize(tokens))
}

func TestStringContinuation(t *testing.T) {
	// A backslash-newline inside a single-quoted string continues the
	// literal on the next physical line; that is a string, not an
	// unclosed one.
	source := "s = 'ab\\\ncd'\nx = 1\n"
	tokens := Tokenize(source)
	assert.Equal(t, source, Untokenize(tokens))

	var str *token.Token
	for _, tok := range tokens {
		require.False(t, tok.IsUnclosedString())
		if tok.IsString() {
			str = tok
		}
	}
	require.NotNil(t, str)
	assert.Equal(t, "'ab\\\ncd'", str.String)
	assert.Equal(t, 1, str.Start.Row)
	assert.Equal(t, 4, str.Start.Col)
	assert.Equal(t, 2, str.End.Row)
	assert.Equal(t, 3, str.End.Col)
}

func TestStringContinuationUnterminated(t *testing.T) {
	// The continuation chain breaks on a line with no closing quote; the
	// pieces are unclosed-string tokens and the round trip still holds.
	sources := []string{
		"s = 'ab\\\ncd\ny = 2\n",
		"s = 'ab\\\ncd\\\n",
		"s = 'ab\\\n",
	}
	for _, source := range sources {
		tokens := Tokenize(source)
		assert.Equal(t, source, Untokenize(tokens), "source: %q", source)
	}
}

func TestTokenTypes(t *testing.T) {
	tokens := GetSignificantTokens("total = price * 2  # doubled")
	require.Len(t, tokens, 5)
	assert.Equal(t, token.NAME, tokens[0].Type)
	assert.Equal(t, "total", tokens[0].String)
	assert.Equal(t, token.OP, tokens[1].Type)
	assert.Equal(t, token.NAME, tokens[2].Type)
	assert.Equal(t, token.OP, tokens[3].Type)
	assert.Equal(t, token.NUMBER, tokens[4].Type)
}

func TestPositions(t *testing.T) {
	tokens := GetSignificantTokens("x = 42")
	require.Len(t, tokens, 3)
	x := tokens[0]
	assert.Equal(t, 1, x.Start.Row)
	assert.Equal(t, 0, x.Start.Col)
	assert.Equal(t, 1, x.End.Col)
	answer := tokens[2]
	assert.Equal(t, 4, answer.Start.Col)
	assert.Equal(t, 6, answer.End.Col)
}

func TestIndentDedent(t *testing.T) {
	source := "if x:\n    y = 1\nz = 2\n"
	tokens := Tokenize(source)
	var indents, dedents int
	for _, tok := range tokens {
		switch tok.Type {
		case token.INDENT:
			indents++
		case token.DEDENT:
			dedents++
		}
	}
	assert.Equal(t, 1, indents)
	assert.Equal(t, 1, dedents)
	assert.Equal(t, source, Untokenize(tokens))
}

func TestNewlineInsideBrackets(t *testing.T) {
	source := "a = [1,\n2]\nb = 3\n"
	tokens := Tokenize(source)
	var newlines, nls int
	for _, tok := range tokens {
		switch tok.Type {
		case token.NEWLINE:
			newlines++
		case token.NL:
			nls++
		}
	}
	assert.Equal(t, 2, newlines, "one per logical statement")
	assert.Equal(t, 1, nls, "the line break inside the brackets")
}

func TestGetLines(t *testing.T) {
	lines := GetLines("a = 1\nb = 2\n")
	require.GreaterOrEqual(t, len(lines), 2)
	assert.Equal(t, "a", lines[0][0].String)
	assert.Equal(t, "b", lines[1][0].String)
}

func TestFindSubstringIndex(t *testing.T) {
	assert.Equal(t, 2, FindSubstringIndex("a = b + c", "b + c"))
	assert.Equal(t, 0, FindSubstringIndex("a = b", "a  =  b"))
	assert.Equal(t, -1, FindSubstringIndex("a = b", "c"))
}

func TestStripComment(t *testing.T) {
	assert.Equal(t, "x = 1\n", StripComment("x = 1# note\n"))
}

func TestDedentIndent(t *testing.T) {
	tokens := Tokenize("    x = 1\n")
	dedented := Dedent(tokens, 4)
	assert.Equal(t, "x = 1\n", Untokenize(dedented))
	indented := Indent(Tokenize("x = 1\n"), 2, false)
	assert.Equal(t, "  x = 1\n", Untokenize(indented))
}

func TestTokenizeNeverEmptyForContent(t *testing.T) {
	tokens := Tokenize("x")
	require.NotEmpty(t, tokens)
	assert.Equal(t, "x", tokens[0].String)
}
