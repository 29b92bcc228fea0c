// Package syntaxerrors analyzes syntax errors: it reconstructs the
// complete statement surrounding the reported location and searches a set
// of ordered rules for a likely cause.
package syntaxerrors

import (
	"strings"

	"github.com/cloudcmds/clarify/exc"
	"github.com/cloudcmds/clarify/sourcecache"
	"github.com/cloudcmds/clarify/token"
	"github.com/cloudcmds/clarify/tokenizer"
)

// Meaningless stands in for the neighbour of a bad token that has no
// neighbour on that side. Analysis code can then look at prev and next
// tokens unconditionally; every comparison against Meaningless fails.
var Meaningless = token.New(token.ENDMARKER, "", token.Position{}, token.Position{}, "")

// Statement gathers everything the syntax rules need about the statement
// where a syntax error was reported.
//
// A "complete statement" is the smallest run of consecutive lines that
// contains the reported line together with matching pairs of brackets.
// The statement is kept as the full token list (StatementTokens), from
// which the source can be reconstructed, and as the meaningful tokens
// only (Tokens), which is what the analysis works on.
type Statement struct {
	Filename      string
	Linenumber    int
	Message       string
	Offset        int
	EndOffset     int
	EndLinenumber int

	// BadLine is the line of code reported with the error.
	BadLine string

	// EntireStatement is the reconstructed source of the whole statement.
	EntireStatement string

	// StatementTokens holds every token of the statement, spacing
	// included. Tokens holds only the meaningful ones.
	StatementTokens []*token.Token
	Tokens          []*token.Token

	// AllStatements lists each individual statement seen up to and
	// including the problem statement.
	AllStatements [][]*token.Token

	// BadToken is the token at the reported offset. PrevToken and
	// NextToken are its meaningful neighbours, Meaningless at the edges.
	BadToken      *token.Token
	BadTokenIndex int
	PrevToken     *token.Token
	NextToken     *token.Token

	FirstToken *token.Token
	LastToken  *token.Token
	NbTokens   int

	// HighlightedTokens holds every token inside a multi-column error
	// span; nil when the span covers at most one character.
	HighlightedTokens []*token.Token

	// StatementBrackets tracks open brackets not yet closed anywhere in
	// the statement. BeginBrackets are the unclosed ones seen before the
	// bad token. EndBracket is a closing bracket with nothing to match.
	StatementBrackets []string
	BeginBrackets     []*token.Token
	EndBracket        *token.Token

	// UsingConsole marks code typed at an interactive prompt, where an
	// incomplete statement is normal rather than an error in itself.
	UsingConsole bool

	// FStringError marks errors raised inside formatted string literals,
	// which report synthetic positions.
	FStringError bool

	highlightEnabled bool
}

// Tokens that normally begin a statement and cannot occur inside
// brackets. When one of them is flagged as the bad token inside an open
// bracket, the real problem is almost certainly that the bracket was
// never closed.
var shouldBeginStatement = map[string]bool{
	"async": true, "await": true, "class": true, "def": true,
	"return": true, "elif": true, "import": true, "try": true,
	"except": true, "finally": true, "with": true, "while": true,
	"yield": true,
}

// Keywords that open a block and therefore need a trailing colon when a
// console statement is completed on the user's behalf.
var blockKeywords = map[string]bool{
	"class": true, "def": true, "if": true, "elif": true,
	"while": true, "for": true, "except": true, "with": true,
}

// NewStatement reconstructs the statement surrounding the syntax error
// described by e. The source is taken from the cache under e.Filename,
// falling back to the reported line.
func NewStatement(e *exc.Exception) *Statement {
	st := &Statement{
		Filename:      e.Filename,
		Linenumber:    e.Lineno,
		Message:       e.SafeMessage(),
		Offset:        e.Offset,
		EndOffset:     e.EndOffset,
		EndLinenumber: e.EndLineno,
		BadLine:       e.Text,
	}
	st.EntireStatement = st.BadLine
	st.FStringError = st.Filename == "<fstring>" || strings.Contains(st.Message, "f-string")
	st.UsingConsole = strings.HasPrefix(st.Filename, "<clarify")
	st.highlightEnabled = st.Offset > 0 && st.EndOffset > 0 && st.EndOffset-st.Offset > 1

	if st.Linenumber > 0 {
		st.analyze()
	}
	if len(st.Tokens) > 0 {
		st.assignIndividualTokenValues()
	}
	return st
}

func (st *Statement) analyze() {
	st.obtainStatement(st.sourceTokens())
	st.Tokens = st.removeMeaninglessTokens()

	// A statement made only of spacing carries nothing to analyze; walk
	// back to the last statement that does.
	if len(st.Tokens) == 0 {
		for index := len(st.AllStatements) - 1; index > 0; index-- {
			st.StatementTokens = st.AllStatements[index]
			st.Tokens = st.removeMeaninglessTokens()
			if len(st.Tokens) > 0 {
				break
			}
		}
		if len(st.Tokens) == 0 {
			st.Tokens = tokenizer.Tokenize("Internal_error")[:1]
		}
	}

	st.EntireStatement = tokenizer.Untokenize(st.StatementTokens)

	// At an interactive prompt an error can be flagged before the user
	// had a chance to close their brackets. Close them here, so that the
	// rules see the statement the user was in the middle of writing.
	if st.UsingConsole && len(st.StatementBrackets) > 0 && st.EndBracket == nil {
		closing := ""
		for index := len(st.StatementBrackets) - 1; index >= 0; index-- {
			switch st.StatementBrackets[index] {
			case "(":
				closing += ")"
			case "[":
				closing += "]"
			default:
				closing += "}"
			}
		}
		if blockKeywords[st.Tokens[0].String] {
			closing += ":"
		}
		last := st.Tokens[len(st.Tokens)-1].Copy()
		last.Start.Row++
		last.String = closing
		last.Line = closing
		st.Tokens = append(st.Tokens, last)
	}
}

// sourceTokens tokenizes the whole source the error was found in.
func (st *Statement) sourceTokens() []*token.Token {
	source := sourcecache.GetSource(st.Filename)
	if strings.TrimSpace(source) == "" {
		source = st.BadLine
		if source == "" {
			source = "\n"
		}
	}
	return tokenizer.Tokenize(source)
}

// obtainStatement scans the source for the statement containing the
// reported line. Most often that is a single line of code; it spans
// several lines when brackets are left open across them or lines end
// with an escaped newline.
func (st *Statement) obtainStatement(sourceTokens []*token.Token) {
	previousRow := -1
	var previousToken *token.Token
	continuationLine := false

scan:
	for _, tok := range sourceTokens {
		if tok.Start.Row > st.Linenumber && !continuationLine &&
			len(st.StatementBrackets) == 0 {
			break
		}

		// A new statement starts on a new row once every bracket of the
		// previous one is matched, unless the previous line ended with
		// an escaped newline.
		if tok.Start.Row > previousRow {
			if previousToken != nil {
				continuationLine = strings.HasSuffix(previousToken.Line, "\\\n")
			}
			if tok.Start.Row <= st.Linenumber && len(st.StatementBrackets) == 0 {
				if len(st.StatementTokens) > 0 {
					st.AllStatements = append(st.AllStatements, st.StatementTokens)
				}
				st.StatementTokens = nil
				st.BeginBrackets = nil
			}
			previousRow = tok.Start.Row
		}

		st.StatementTokens = append(st.StatementTokens, tok)

		// The reported offset sometimes matches the beginning of a
		// token and sometimes its end, so both bounds are accepted.
		if len(st.HighlightedTokens) > 0 {
			if st.Linenumber == tok.Start.Row &&
				(st.Offset < tok.End.Col && (tok.End.Col < st.EndOffset || st.EndOffset == 0)) &&
				strings.TrimSpace(tok.String) != "" {
				st.HighlightedTokens = append(st.HighlightedTokens, tok)
			}
		} else if tok.Start.Row == st.Linenumber &&
			tok.Start.Col <= st.Offset && st.Offset <= tok.End.Col &&
			st.BadToken == nil && strings.TrimSpace(tok.String) != "" {
			st.BadToken = tok
			if st.BadToken.IsComment() {
				st.BadToken = st.PrevToken
			}
			if st.highlightEnabled {
				st.HighlightedTokens = append(st.HighlightedTokens, st.BadToken)
			}
		} else if tok.IsMeaningful() && st.BadToken == nil {
			st.PrevToken = tok
		}

		previousToken = tok

		if st.BadToken != nil && shouldBeginStatement[st.BadToken.String] &&
			st.BadToken != st.StatementTokens[0] && len(st.StatementBrackets) > 0 {
			// Almost certainly an unclosed bracket.
			break
		}

		switch {
		case token.OpenBracket(tok.String):
			st.StatementBrackets = append(st.StatementBrackets, tok.String)
			if st.BadToken == nil || st.BadToken == tok {
				st.BeginBrackets = append(st.BeginBrackets, tok)
			}
		case token.CloseBracket(tok.String):
			st.EndBracket = tok
			if len(st.StatementBrackets) == 0 {
				break scan
			}
			open := st.StatementBrackets[len(st.StatementBrackets)-1]
			if !token.MatchingBrackets(open, tok.String) {
				break scan
			}
			st.StatementBrackets = st.StatementBrackets[:len(st.StatementBrackets)-1]
			if len(st.BeginBrackets) > 0 && st.BadToken == nil {
				st.BeginBrackets = st.BeginBrackets[:len(st.BeginBrackets)-1]
			}
			st.EndBracket = nil
		}
	}

	if len(st.StatementTokens) > 0 {
		lastLine := tokenizer.Untokenize(st.StatementTokens)
		if strings.TrimSpace(lastLine) != "" {
			st.AllStatements = append(st.AllStatements, st.StatementTokens)
		} else if len(st.AllStatements) > 0 {
			st.StatementTokens = st.AllStatements[len(st.AllStatements)-1]
		}
	}
}

// removeMeaninglessTokens filters the statement down to its meaningful
// tokens and records the bad token's index among them.
func (st *Statement) removeMeaninglessTokens() []*token.Token {
	var tokens []*token.Token
	for _, tok := range st.StatementTokens {
		if !tok.IsMeaningful() {
			continue
		}
		if tok == st.BadToken {
			st.BadTokenIndex = len(tokens)
		}
		tokens = append(tokens, tok)
	}
	return tokens
}

// assignIndividualTokenValues fills in the first, last, previous and next
// tokens once the meaningful token list is final.
func (st *Statement) assignIndividualTokenValues() {
	st.NbTokens = len(st.Tokens)
	st.FirstToken = st.Tokens[0]
	st.LastToken = st.Tokens[st.NbTokens-1]

	if st.BadToken == nil {
		st.BadToken = st.LastToken
		st.BadTokenIndex = st.NbTokens - 1
		if st.BadTokenIndex > 0 {
			st.PrevToken = st.Tokens[st.BadTokenIndex-1]
		}
	}
	if st.BadTokenIndex == 0 {
		st.PrevToken = Meaningless
	} else if st.PrevToken == nil {
		st.PrevToken = st.Tokens[st.BadTokenIndex-1]
	}

	if st.BadToken != st.LastToken && st.BadTokenIndex+1 < st.NbTokens {
		st.NextToken = st.Tokens[st.BadTokenIndex+1]
	} else {
		st.NextToken = Meaningless
	}
}
