package tokenizer

import (
	"strings"

	"github.com/cloudcmds/clarify/token"
)

// Untokenize returns source code based on tokens.
//
// Spacing between tokens is recovered from the line text recorded on each
// token, so multiple spaces, tab characters and escaped newlines present in
// the original source all survive the round trip:
// Untokenize(Tokenize(source)) == source.
func Untokenize(tokens []*token.Token) string {
	var words []string
	previousLine := ""
	lastRow := 0
	lastCol := -1
	var lastMeaningfulType token.Type

	for _, tok := range tokens {
		// Preserve escaped newlines.
		if lastMeaningfulType != token.COMMENT &&
			tok.Start.Row > lastRow &&
			(strings.HasSuffix(previousLine, "\\\n") || strings.HasSuffix(previousLine, "\\")) {
			trimmed := strings.TrimRight(previousLine, " \t\n\\")
			words = append(words, previousLine[len(trimmed):])
		}

		// Preserve spacing.
		if tok.Start.Row > lastRow {
			lastCol = 0
		}
		if tok.Start.Col > lastCol && lastCol <= len(tok.Line) {
			end := tok.Start.Col
			if end > len(tok.Line) {
				end = len(tok.Line)
			}
			words = append(words, tok.Line[lastCol:end])
		}

		words = append(words, tok.String)

		previousLine = tok.Line
		lastRow = tok.End.Row
		lastCol = tok.End.Col
		if !tok.IsSpace() {
			lastMeaningfulType = tok.Type
		}
	}
	return strings.Join(words, "")
}

// GetSignificantTokens tokenizes source and drops comments and all
// space-like tokens, keeping only tokens relevant to analysis.
func GetSignificantTokens(source string) []*token.Token {
	return RemoveMeaningless(Tokenize(source))
}

// RemoveMeaningless returns the tokens that are neither space-like
// nor comments.
func RemoveMeaningless(tokens []*token.Token) []*token.Token {
	var out []*token.Token
	for _, tok := range tokens {
		if !tok.IsMeaningful() {
			continue
		}
		out = append(out, tok)
	}
	return out
}

// GetLines tokenizes source and groups the tokens by the source row on
// which they start.
func GetLines(source string) [][]*token.Token {
	tokens := Tokenize(source)
	if len(tokens) == 0 {
		return [][]*token.Token{{}}
	}
	var lines [][]*token.Token
	currentRow := -1
	var line []*token.Token
	for _, tok := range tokens {
		if tok.Start.Row != currentRow {
			currentRow = tok.Start.Row
			if len(line) > 0 {
				lines = append(lines, line)
			}
			line = nil
		}
		line = append(line, tok)
	}
	lines = append(lines, line)
	return lines
}

// StripComment removes comments from a line of source. The cut is made on
// the raw line text: reconstruction via Untokenize would fill the gap left
// by a removed comment token back in from the recorded line.
func StripComment(line string) string {
	for _, tok := range Tokenize(line) {
		if !tok.IsComment() {
			continue
		}
		rest := ""
		if strings.HasSuffix(line, "\n") {
			rest = "\n"
		}
		return line[:strings.Index(line, tok.String)] + rest
	}
	return line
}

// FindSubstringIndex determines whether the significant tokens of substring
// appear as a subsequence of the significant tokens of main. If so, the
// index of the first matching token is returned, otherwise -1. The search
// compares token strings, not characters, so spacing differences are
// irrelevant.
func FindSubstringIndex(main, substring string) int {
	mainTokens := GetSignificantTokens(main)
	subTokens := GetSignificantTokens(substring)
	if len(subTokens) == 0 || len(subTokens) > len(mainTokens) {
		return -1
	}
	for index := 0; index+len(subTokens) <= len(mainTokens); index++ {
		if mainTokens[index].String != subTokens[0].String {
			continue
		}
		found := true
		for i, sub := range subTokens {
			if mainTokens[index+i].String != sub.String {
				found = false
				break
			}
		}
		if found {
			return index
		}
	}
	return -1
}

// Dedent produces the token list for the same code with the first nb
// characters removed from the line, by reconstructing and re-tokenizing.
func Dedent(tokens []*token.Token, nb int) []*token.Token {
	line := Untokenize(tokens)
	if nb > len(line) {
		nb = len(line)
	}
	return Tokenize(line[nb:])
}

// Indent produces the token list for the same code with nb space
// characters (or tab characters, if tab is true) inserted at the
// beginning of the line.
func Indent(tokens []*token.Token, nb int, tab bool) []*token.Token {
	line := Untokenize(tokens)
	pad := strings.Repeat(" ", nb)
	if tab {
		pad = strings.Repeat("\t", nb)
	}
	return Tokenize(pad + line)
}
