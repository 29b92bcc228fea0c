// Package tokenizer turns source text of the host language into a list of
// tokens and back. It is not the interpreter's own lexer: it is built for
// error analysis, where the source is often malformed. Tokenize never fails;
// for input the lexer cannot understand it produces error or synthetic
// tokens and keeps going, and Untokenize(Tokenize(source)) reconstructs the
// original source exactly, including whitespace, for valid and most invalid
// input.
package tokenizer

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/cloudcmds/clarify/token"
)

// operators, longest first so that greedy matching picks the full operator.
var operators = []string{
	"**=", "//=", ">>=", "<<=", "...",
	"**", "//", ">>", "<<", "<=", ">=", "==", "!=", "->", ":=",
	"+=", "-=", "*=", "/=", "%=", "@=", "&=", "|=", "^=",
	"(", ")", "[", "]", "{", "}", ",", ":", ".", ";", "@",
	"=", "+", "-", "*", "/", "%", "&", "|", "^", "~", "<", ">", "!",
}

// stringPrefixes are the letters that may precede a quote character.
const stringPrefixes = "rbfuRBFU"

type lexer struct {
	lines  []string // physical lines, each including its "\n" except possibly the last
	tokens []*token.Token

	row      int // index into lines
	col      int
	depth    int  // open bracket nesting
	contLine bool // previous physical line ended with a backslash continuation
	indents  []int
	atEOF    bool
}

// Tokenize transforms source into a list of tokens. It never returns an
// error: whatever could be tokenized is returned, and un-lexable trailing
// content (such as an unterminated triple-quoted string) is represented by
// synthetic tokens so that Untokenize can still reconstruct the source.
func Tokenize(source string) []*token.Token {
	lx := &lexer{lines: splitLines(source), indents: []int{0}}
	lx.run()
	tokens := lx.tokens

	// The final safety net: if reconstruction does not give back the
	// original source and the difference is pure trailing whitespace
	// (a last line of spaces or tabs with no newline is invisible to the
	// line scanner), patch the last token to carry the missing text.
	if rebuilt := Untokenize(tokens); rebuilt != source {
		tokens = fixTrailingWhitespace(source, rebuilt, tokens)
	}
	return tokens
}

// splitLines splits source into physical lines, each retaining its
// trailing newline. A trailing segment without a newline is kept as-is.
func splitLines(source string) []string {
	if source == "" {
		return nil
	}
	var lines []string
	start := 0
	for i := 0; i < len(source); i++ {
		if source[i] == '\n' {
			lines = append(lines, source[start:i+1])
			start = i + 1
		}
	}
	if start < len(source) {
		lines = append(lines, source[start:])
	}
	return lines
}

func (lx *lexer) emit(typ token.Type, s string, start, end token.Position, line string) {
	lx.tokens = append(lx.tokens, token.New(typ, s, start, end, line))
}

func (lx *lexer) line() string {
	return lx.lines[lx.row]
}

// pos returns the current position, converting the 0-indexed row to the
// 1-indexed convention used by error reports.
func (lx *lexer) pos() token.Position {
	return token.Position{Row: lx.row + 1, Col: lx.col}
}

func (lx *lexer) run() {
	for lx.row < len(lx.lines) {
		if lx.depth == 0 && !lx.contLine {
			if done := lx.startLogicalLine(); done {
				continue
			}
		}
		lx.contLine = false
		lx.scanLine()
	}
	lx.finish()
}

// startLogicalLine handles indentation and blank or comment-only lines.
// It returns true if the whole physical line was consumed.
func (lx *lexer) startLogicalLine() bool {
	line := lx.line()
	indent := 0
	for indent < len(line) && (line[indent] == ' ' || line[indent] == '\t') {
		indent++
	}
	rest := line[indent:]
	trimmed := strings.TrimRight(rest, "\n")

	if trimmed == "" || strings.HasPrefix(trimmed, "#") {
		// Blank line or comment-only line: no indentation change.
		lx.col = indent
		if strings.HasPrefix(trimmed, "#") {
			start := lx.pos()
			lx.col += len(trimmed)
			lx.emit(token.COMMENT, trimmed, start, lx.pos(), line)
		}
		lx.emitLineEnd(token.NL)
		return true
	}

	top := lx.indents[len(lx.indents)-1]
	if indent > top {
		lx.emit(token.INDENT, line[:indent],
			token.Position{Row: lx.row + 1, Col: 0},
			token.Position{Row: lx.row + 1, Col: indent}, line)
		lx.indents = append(lx.indents, indent)
	}
	for indent < lx.indents[len(lx.indents)-1] {
		lx.indents = lx.indents[:len(lx.indents)-1]
		lx.emit(token.DEDENT, "",
			token.Position{Row: lx.row + 1, Col: indent},
			token.Position{Row: lx.row + 1, Col: indent}, line)
	}
	lx.col = indent
	return false
}

// emitLineEnd emits the end-of-line token and advances to the next
// physical line. At end of input, where the line has no trailing newline,
// the token string is empty so reconstruction stays exact.
func (lx *lexer) emitLineEnd(typ token.Type) {
	line := lx.line()
	start := lx.pos()
	s := ""
	if strings.HasSuffix(line, "\n") {
		s = "\n"
	}
	lx.emit(typ, s, start, token.Position{Row: lx.row + 1, Col: start.Col + len(s)}, line)
	lx.row++
	lx.col = 0
}

// scanLine scans tokens on the current physical line starting at lx.col.
func (lx *lexer) scanLine() {
	line := lx.line()
	for {
		// Skip intra-line whitespace; it is recovered by Untokenize
		// from the recorded line text.
		for lx.col < len(line) && (line[lx.col] == ' ' || line[lx.col] == '\t') {
			lx.col++
		}
		if lx.col >= len(line) {
			// Line with content but no newline at EOF.
			lx.emitLineEnd(lx.lineEndType())
			return
		}
		c := line[lx.col]
		r, _ := utf8.DecodeRuneInString(line[lx.col:])
		switch {
		case c == '\n':
			lx.emitLineEnd(lx.lineEndType())
			return
		case c == '\\' && lx.col == len(strings.TrimRight(line, "\n"))-1:
			// Backslash continuation: the logical line continues on
			// the next physical line. The backslash-newline itself is
			// not a token; Untokenize recovers it from the line text.
			lx.contLine = true
			lx.row++
			lx.col = 0
			return
		case c == '#':
			start := lx.pos()
			text := strings.TrimRight(line[lx.col:], "\n")
			lx.col += len(text)
			lx.emit(token.COMMENT, text, start, lx.pos(), line)
		case isNameStart(r) && !lx.isStringPrefix():
			lx.scanName()
		case lx.isStringPrefix() || c == '"' || c == '\'':
			if done := lx.scanString(); done {
				return
			}
		case c >= '0' && c <= '9', c == '.' && lx.col+1 < len(line) && isDigit(line[lx.col+1]):
			lx.scanNumber()
		default:
			lx.scanOperator()
		}
		line = lx.line()
	}
}

func (lx *lexer) lineEndType() token.Type {
	if lx.depth > 0 {
		return token.NL
	}
	return token.NEWLINE
}

func isNameStart(r rune) bool {
	return unicode.IsLetter(r) || r == '_'
}

func isNameChar(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r) || r == '_'
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

// isStringPrefix reports whether the current position begins a string
// literal with prefix letters, such as r"..." or f'...'.
func (lx *lexer) isStringPrefix() bool {
	line := lx.line()
	i := lx.col
	n := 0
	for i < len(line) && n < 2 && strings.ContainsRune(stringPrefixes, rune(line[i])) {
		i++
		n++
	}
	return n > 0 && i < len(line) && (line[i] == '"' || line[i] == '\'')
}

func (lx *lexer) scanName() {
	line := lx.line()
	start := lx.pos()
	runes := []rune(line[lx.col:])
	i := 0
	for i < len(runes) && isNameChar(runes[i]) {
		i++
	}
	s := string(runes[:i])
	lx.col += len(s)
	lx.emit(token.NAME, s, start, lx.pos(), line)
}

func (lx *lexer) scanNumber() {
	line := lx.line()
	start := lx.pos()
	i := lx.col
	seenExp := false
	for i < len(line) {
		c := line[i]
		switch {
		case isDigit(c), c == '_', c == '.':
			i++
		case c == 'x' || c == 'X' || c == 'o' || c == 'O' || c == 'b' || c == 'B':
			if i == lx.col+1 && line[lx.col] == '0' {
				i++
			} else if isHexDigit(c) {
				i++
			} else {
				goto done
			}
		case isHexDigit(c):
			// Valid inside 0x literals; also consumes e/E exponents.
			if (c == 'e' || c == 'E') && !strings.HasPrefix(line[lx.col:], "0x") &&
				!strings.HasPrefix(line[lx.col:], "0X") {
				seenExp = true
			}
			i++
		case (c == '+' || c == '-') && seenExp && (line[i-1] == 'e' || line[i-1] == 'E'):
			i++
		case c == 'j' || c == 'J':
			i++
			goto done
		default:
			goto done
		}
	}
done:
	s := line[lx.col:i]
	lx.col = i
	lx.emit(token.NUMBER, s, start, lx.pos(), line)
}

func isHexDigit(c byte) bool {
	return (c >= 'a' && c <= 'f') || (c >= 'A' && c <= 'F')
}

// scanString scans a string literal, including multi-line triple-quoted
// strings. It returns true if it consumed through end of the current line
// handling (multi-line or unterminated cases) and the caller should stop
// scanning this line.
func (lx *lexer) scanString() bool {
	line := lx.line()
	startRow := lx.row
	startCol := lx.col
	start := lx.pos()

	i := lx.col
	for i < len(line) && strings.ContainsRune(stringPrefixes, rune(line[i])) {
		i++
	}
	quote := string(line[i])
	triple := strings.HasPrefix(line[i:], quote+quote+quote)
	if triple {
		quote = quote + quote + quote
	}
	body := i + len(quote)

	if !triple {
		// Single-quoted string: must terminate on this physical line,
		// unless a backslash-newline continuation carries the literal
		// onto the next one. That is valid source, not an unclosed
		// string.
		row, j := startRow, body
		for row < len(lx.lines) {
			cur := lx.lines[row]
			continued := false
			for j < len(cur) {
				if cur[j] == '\\' && j+1 < len(cur) {
					if cur[j+1] == '\n' {
						continued = true
					}
					j += 2
					continue
				}
				if string(cur[j]) == quote {
					endCol := j + 1
					if row == startRow {
						s := line[lx.col:endCol]
						lx.col = endCol
						lx.emit(token.STRING, s, start, lx.pos(), line)
						return false
					}
					var sb strings.Builder
					for r := startRow; r <= row; r++ {
						sb.WriteString(lx.lines[r])
					}
					s := sliceSpan(lx.lines, startRow, startCol, row, endCol)
					lx.row = row
					lx.col = endCol
					lx.emit(token.STRING, s, start,
						token.Position{Row: row + 1, Col: endCol}, sb.String())
					return false
				}
				if cur[j] == '\n' {
					break
				}
				j++
			}
			if continued && j >= len(cur) {
				row++
				j = 0
				continue
			}
			break
		}
		return lx.emitUnclosedString(startRow, startCol, row, start)
	}

	// Triple-quoted string: scan forward across physical lines.
	row, j := startRow, body
	for row < len(lx.lines) {
		cur := lx.lines[row]
		for j < len(cur) {
			if cur[j] == '\\' && j+1 < len(cur) {
				j += 2
				continue
			}
			if strings.HasPrefix(cur[j:], quote) {
				// Terminated. The token string and line both span
				// every physical line from start to here.
				endCol := j + len(quote)
				var sb strings.Builder
				for r := startRow; r <= row; r++ {
					sb.WriteString(lx.lines[r])
				}
				full := sb.String()
				s := sliceSpan(lx.lines, startRow, startCol, row, endCol)
				lx.row = row
				lx.col = endCol
				lx.emit(token.STRING, s, start,
					token.Position{Row: row + 1, Col: endCol}, full)
				return false
			}
			j++
		}
		row++
		j = 0
	}

	// Unterminated triple-quoted string reaching EOF: emit one synthetic
	// token per physical line so that positions stay exact.
	first := strings.TrimRight(line[startCol:], "\n")
	if strings.HasSuffix(line, "\n") {
		first = line[startCol:]
	}
	lx.emit(token.UNCLOSED_STRING, first, start,
		token.Position{Row: startRow + 1, Col: startCol + len(first)}, line)
	for r := startRow + 1; r < len(lx.lines); r++ {
		content := lx.lines[r]
		lx.emit(token.UNCLOSED_STRING, content,
			token.Position{Row: r + 1, Col: 0},
			token.Position{Row: r + 1, Col: len(content)}, content)
	}
	lx.row = len(lx.lines)
	lx.col = 0
	lx.atEOF = true
	return true
}

// emitUnclosedString records an unterminated single-quoted string ending
// on row. When continuations carried the literal across physical lines
// before it broke, one synthetic token per line is emitted, each without
// its trailing backslash-newline so that reconstruction stays exact.
func (lx *lexer) emitUnclosedString(startRow, startCol, row int, start token.Position) bool {
	if row == startRow {
		line := lx.line()
		s := strings.TrimRight(line[lx.col:], "\n")
		lx.col += len(s)
		lx.emit(token.UNCLOSED_STRING, s, start, lx.pos(), line)
		lx.emitLineEnd(lx.lineEndType())
		return true
	}
	first := lx.lines[startRow]
	content := strings.TrimSuffix(first[startCol:], "\\\n")
	lx.emit(token.UNCLOSED_STRING, content, start,
		token.Position{Row: startRow + 1, Col: startCol + len(content)}, first)
	for r := startRow + 1; r < row && r < len(lx.lines); r++ {
		cur := lx.lines[r]
		content = strings.TrimSuffix(cur, "\\\n")
		lx.emit(token.UNCLOSED_STRING, content,
			token.Position{Row: r + 1, Col: 0},
			token.Position{Row: r + 1, Col: len(content)}, cur)
	}
	if row >= len(lx.lines) {
		lx.row = len(lx.lines)
		lx.col = 0
		lx.atEOF = true
		return true
	}
	content = strings.TrimRight(lx.lines[row], "\n")
	lx.row = row
	lx.col = 0
	if content != "" {
		lx.emit(token.UNCLOSED_STRING, content,
			token.Position{Row: row + 1, Col: 0},
			token.Position{Row: row + 1, Col: len(content)}, lx.lines[row])
		lx.col = len(content)
	}
	lx.emitLineEnd(lx.lineEndType())
	return true
}

// sliceSpan extracts the text between (startRow,startCol) and (endRow,endCol).
func sliceSpan(lines []string, startRow, startCol, endRow, endCol int) string {
	if startRow == endRow {
		return lines[startRow][startCol:endCol]
	}
	var sb strings.Builder
	sb.WriteString(lines[startRow][startCol:])
	for r := startRow + 1; r < endRow; r++ {
		sb.WriteString(lines[r])
	}
	sb.WriteString(lines[endRow][:endCol])
	return sb.String()
}

func (lx *lexer) scanOperator() {
	line := lx.line()
	start := lx.pos()
	rest := line[lx.col:]
	for _, op := range operators {
		if strings.HasPrefix(rest, op) {
			lx.col += len(op)
			lx.emit(token.OP, op, start, lx.pos(), line)
			switch {
			case token.OpenBracket(op):
				lx.depth++
			case token.CloseBracket(op):
				if lx.depth > 0 {
					lx.depth--
				}
			}
			return
		}
	}
	// Unknown character: record it as an error token and move on.
	r := []rune(rest)[0]
	s := string(r)
	lx.col += len(s)
	lx.emit(token.ERRORTOKEN, s, start, lx.pos(), line)
}

// finish emits closing DEDENT tokens and the ENDMARKER.
func (lx *lexer) finish() {
	row := len(lx.lines) + 1
	for len(lx.indents) > 1 {
		lx.indents = lx.indents[:len(lx.indents)-1]
		lx.emit(token.DEDENT, "",
			token.Position{Row: row, Col: 0},
			token.Position{Row: row, Col: 0}, "")
	}
	lx.emit(token.ENDMARKER, "",
		token.Position{Row: row, Col: 0},
		token.Position{Row: row, Col: 0}, "")
}

// fixTrailingWhitespace patches the final token when the source ends with
// whitespace that produced no token of its own (a last line consisting only
// of spaces or tabs, with no newline). Without this, that whitespace would
// be lost and the round-trip property would not hold.
func fixTrailingWhitespace(source, rebuilt string, tokens []*token.Token) []*token.Token {
	if len(tokens) == 0 || len(rebuilt) >= len(source) {
		return tokens
	}
	remaining := source[len(rebuilt):]
	if strings.TrimLeft(remaining, " \t") != "" {
		// The difference is not pure whitespace; nothing safe to do.
		return tokens
	}
	last := tokens[len(tokens)-1]
	last.String = remaining
	last.End = token.Position{Row: last.Start.Row, Col: last.Start.Col + len(remaining)}
	last.Line = remaining
	return tokens
}
