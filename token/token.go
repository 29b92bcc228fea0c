// Package token defines the lexical tokens used when analyzing source code
// that failed at compile time or runtime.
//
// Unlike tokens produced for normal compilation, these tokens are designed
// for lossless source reconstruction: each token records its exact start and
// end position as well as the full physical line it was found on, so that a
// token list can be turned back into the original source text, whitespace
// included.
package token

import (
	"strconv"
	"strings"
	"unicode"
)

// Type describes the type of a token as a string.
type Type string

// Token types
const (
	NAME            Type = "NAME"
	NUMBER          Type = "NUMBER"
	STRING          Type = "STRING"
	OP              Type = "OP"
	COMMENT         Type = "COMMENT"
	NEWLINE         Type = "NEWLINE" // logical end of statement
	NL              Type = "NL"      // non-logical newline (blank line or inside brackets)
	INDENT          Type = "INDENT"
	DEDENT          Type = "DEDENT"
	ENDMARKER       Type = "ENDMARKER"
	ERRORTOKEN      Type = "ERRORTOKEN"
	UNCLOSED_STRING Type = "UNCLOSED_STRING"
)

// Position points to a particular location in an input string.
// Rows are 1-indexed, columns are 0-indexed, matching the conventions
// of the host interpreter's own tokenizer.
type Position struct {
	Row int
	Col int
}

// Token represents one token lexed from the input source code.
//
// Tokens are mutable. Statement analysis occasionally rewrites the String
// field of a token (for example to synthesize closing brackets) and then
// reconstructs a transformed source with Untokenize.
type Token struct {
	Type   Type
	String string
	Start  Position
	End    Position
	// Line is the entire physical line of code where the token was found,
	// including the trailing newline if present.
	Line string
}

// Keywords of the host language.
var keywords = map[string]bool{
	"and": true, "as": true, "assert": true, "async": true, "await": true,
	"break": true, "class": true, "continue": true, "def": true, "del": true,
	"elif": true, "else": true, "except": true, "finally": true, "for": true,
	"from": true, "global": true, "if": true, "import": true, "in": true,
	"is": true, "lambda": true, "nonlocal": true, "not": true, "or": true,
	"pass": true, "raise": true, "return": true, "try": true, "while": true,
	"with": true, "yield": true,
	"True": true, "False": true, "None": true,
}

// IsKeyword reports whether s is a reserved keyword of the host language.
func IsKeyword(s string) bool {
	return keywords[s] || s == "..." || s == "__debug__"
}

// New returns a new token with the given attributes.
func New(typ Type, s string, start, end Position, line string) *Token {
	return &Token{Type: typ, String: s, Start: start, End: end, Line: line}
}

// Copy returns a copy of the token which can be mutated independently.
func (t *Token) Copy() *Token {
	c := *t
	return &c
}

// Is reports whether the token's string is exactly s. Analysis code
// compares tokens against literal strings constantly, so this mirrors the
// convenience of direct string comparison.
func (t *Token) Is(s string) bool {
	return t.String == s
}

// IsComment reports whether the token is a comment.
func (t *Token) IsComment() bool {
	return t.Type == COMMENT
}

// IsIdentifier reports whether the token is a valid identifier,
// excluding keywords.
func (t *Token) IsIdentifier() bool {
	if t.Type != NAME || t.String == "" || t.IsKeyword() {
		return false
	}
	for i, r := range t.String {
		if i == 0 && !unicode.IsLetter(r) && r != '_' {
			return false
		}
		if i > 0 && !unicode.IsLetter(r) && !unicode.IsDigit(r) && r != '_' {
			return false
		}
	}
	return true
}

// IsName reports whether the token is of type NAME (identifier or keyword).
func (t *Token) IsName() bool {
	return t.Type == NAME
}

// IsKeyword reports whether the token is a reserved keyword.
func (t *Token) IsKeyword() bool {
	return IsKeyword(t.String)
}

// IsNumber reports whether the token represents a number of any kind.
func (t *Token) IsNumber() bool {
	return t.Type == NUMBER
}

// IsInteger reports whether the token represents an integer literal.
func (t *Token) IsInteger() bool {
	if !t.IsNumber() {
		return false
	}
	_, err := strconv.ParseInt(t.String, 0, 64)
	return err == nil
}

// IsFloat reports whether the token represents a float literal.
func (t *Token) IsFloat() bool {
	if !t.IsNumber() || t.IsInteger() {
		return false
	}
	_, err := strconv.ParseFloat(t.String, 64)
	return err == nil
}

// IsOperator reports whether the token is of type OP.
func (t *Token) IsOperator() bool {
	return t.Type == OP
}

// IsString reports whether the token is a string literal.
func (t *Token) IsString() bool {
	return t.Type == STRING
}

// IsUnclosedString reports whether the token is part of an unterminated
// string literal, synthesized by the tokenizer so that reconstruction of
// malformed source still succeeds.
func (t *Token) IsUnclosedString() bool {
	return t.Type == UNCLOSED_STRING
}

// IsError reports whether the token is an error token.
func (t *Token) IsError() bool {
	return t.Type == ERRORTOKEN
}

// IsSpace reports whether the token indicates a change in indentation,
// the end of a line, or the end of the source (INDENT, DEDENT, NEWLINE,
// NL, ENDMARKER). Spaces and tabs between tokens on a line are not tokens
// themselves.
func (t *Token) IsSpace() bool {
	switch t.Type {
	case INDENT, DEDENT, NEWLINE, NL, ENDMARKER:
		return true
	}
	return false
}

// IsMeaningful reports whether the token carries content relevant to
// statement analysis: not whitespace-like, not a comment.
func (t *Token) IsMeaningful() bool {
	return strings.TrimSpace(t.String) != "" && !t.IsComment()
}

// ImmediatelyBefore reports whether the token ends exactly where other
// starts, with no intervening space.
func (t *Token) ImmediatelyBefore(other *Token) bool {
	if other == nil {
		return false
	}
	return t.End.Row == other.Start.Row && t.End.Col == other.Start.Col
}

// ImmediatelyAfter reports whether the token starts exactly where other
// ends, with no intervening space.
func (t *Token) ImmediatelyAfter(other *Token) bool {
	if other == nil {
		return false
	}
	return other.ImmediatelyBefore(t)
}

// IsAssignment reports whether op is an assignment or augmented
// assignment operator.
func IsAssignment(op string) bool {
	switch op {
	case "=", "+=", "-=", "*=", "@=", "/=", "//=", "%=", "**=",
		">>=", "<<=", "&=", "^=", "|=", ":=":
		return true
	}
	return false
}

// IsBitwise reports whether op is a bitwise operator.
func IsBitwise(op string) bool {
	switch op {
	case "^", "&", "|", "<<", ">>", "~":
		return true
	}
	return false
}

// IsComparison reports whether op is a comparison operator.
func IsComparison(op string) bool {
	switch op {
	case "<", ">", "<=", ">=", "==", "!=":
		return true
	}
	return false
}

// IsMathOp reports whether op can be used as a binary operator in a
// mathematical operation.
func IsMathOp(op string) bool {
	switch op {
	case "+", "-", "*", "**", "@", "/", "//", "%":
		return true
	}
	return false
}

// IsOperatorString reports whether op is, or could be part of, an
// assignment, mathematical, bitwise or comparison operator.
func IsOperatorString(op string) bool {
	return IsAssignment(op) || IsBitwise(op) || IsComparison(op) ||
		IsMathOp(op) || op == "!" || op == ":"
}

// MatchingBrackets reports whether open and close form a matched
// bracket pair.
func MatchingBrackets(open, close string) bool {
	switch open {
	case "(":
		return close == ")"
	case "[":
		return close == "]"
	case "{":
		return close == "}"
	}
	return false
}

// OpenBracket reports whether s is one of ( [ {.
func OpenBracket(s string) bool {
	return s == "(" || s == "[" || s == "{"
}

// CloseBracket reports whether s is one of ) ] }.
func CloseBracket(s string) bool {
	return s == ")" || s == "]" || s == "}"
}
