package traceback

import (
	"strings"

	"github.com/cloudcmds/clarify/exc"
	"github.com/cloudcmds/clarify/token"
	"github.com/cloudcmds/clarify/tokenizer"
)

// Span is a half-open byte range of columns on a source line.
type Span struct {
	Start int
	End   int
}

// narrowExpression locates the sub-expression of line most likely to have
// raised e, using what the exception type implies about the shape of the
// failing code: a NameError points at the unknown name, an IndexError at
// the subscript, a ZeroDivisionError at the operands around the division.
// It reports false when no heuristic applies; callers then fall back to
// the whole line.
func narrowExpression(e *exc.Exception, line string) (string, Span, bool) {
	tokens := tokenizer.GetSignificantTokens(line)
	if len(tokens) == 0 {
		return "", Span{}, false
	}
	message := e.SafeMessage()
	switch {
	case e.Type.IsSubclassOf(exc.NameError):
		name, ok := firstQuoted(message)
		if !ok {
			return "", Span{}, false
		}
		return nameSpan(tokens, name)
	case e.Type == exc.AttributeError:
		attr, ok := lastQuoted(message)
		if !ok {
			return "", Span{}, false
		}
		return attributeSpan(line, tokens, attr)
	case e.Type == exc.IndexError, e.Type == exc.KeyError:
		return subscriptSpan(line, tokens)
	case e.Type == exc.TypeError && strings.Contains(message, "not subscriptable"):
		return subscriptSpan(line, tokens)
	case e.Type == exc.TypeError && strings.Contains(message, "not callable"):
		return callSpan(line, tokens, "")
	case e.Type == exc.ZeroDivisionError:
		return divisionSpan(line, tokens)
	}
	return "", Span{}, false
}

// narrowCall locates the call to funcName on line, the call through which
// execution left the line for the next frame.
func narrowCall(line, funcName string) (string, Span, bool) {
	if line == "" || funcName == "" {
		return "", Span{}, false
	}
	return callSpan(line, tokenizer.GetSignificantTokens(line), funcName)
}

// firstQuoted extracts the first single-quoted fragment of a message.
func firstQuoted(message string) (string, bool) {
	start := strings.IndexByte(message, '\'')
	if start < 0 {
		return "", false
	}
	rest := message[start+1:]
	end := strings.IndexByte(rest, '\'')
	if end < 0 {
		return "", false
	}
	return rest[:end], true
}

// lastQuoted extracts the last single-quoted fragment of a message.
func lastQuoted(message string) (string, bool) {
	end := strings.LastIndexByte(message, '\'')
	if end <= 0 {
		return "", false
	}
	start := strings.LastIndexByte(message[:end], '\'')
	if start < 0 {
		return "", false
	}
	return message[start+1 : end], true
}

func nameSpan(tokens []*token.Token, name string) (string, Span, bool) {
	for i, tok := range tokens {
		if !tok.IsIdentifier() || tok.String != name {
			continue
		}
		// An attribute of the same name is a different thing.
		if i > 0 && tokens[i-1].Is(".") {
			continue
		}
		return tok.String, Span{Start: tok.Start.Col, End: tok.End.Col}, true
	}
	return "", Span{}, false
}

func attributeSpan(line string, tokens []*token.Token, attr string) (string, Span, bool) {
	for i := 2; i < len(tokens); i++ {
		if !tokens[i].IsIdentifier() || tokens[i].String != attr || !tokens[i-1].Is(".") {
			continue
		}
		start := primaryStart(tokens, i-2)
		if start < 0 {
			continue
		}
		return slice(line, tokens[start].Start.Col, tokens[i].End.Col)
	}
	return "", Span{}, false
}

func subscriptSpan(line string, tokens []*token.Token) (string, Span, bool) {
	for i := 0; i+1 < len(tokens); i++ {
		if !tokens[i].IsIdentifier() || !tokens[i+1].Is("[") {
			continue
		}
		if i > 0 && tokens[i-1].Is(".") {
			continue
		}
		closing := matchForward(tokens, i+1)
		if closing < 0 {
			continue
		}
		return slice(line, tokens[i].Start.Col, tokens[closing].End.Col)
	}
	return "", Span{}, false
}

func callSpan(line string, tokens []*token.Token, funcName string) (string, Span, bool) {
	for i := 0; i+1 < len(tokens); i++ {
		if !tokens[i].IsIdentifier() || !tokens[i+1].Is("(") {
			continue
		}
		if funcName != "" && tokens[i].String != funcName {
			continue
		}
		start := primaryStart(tokens, i)
		if start < 0 {
			start = i
		}
		closing := matchForward(tokens, i+1)
		if closing < 0 {
			continue
		}
		return slice(line, tokens[start].Start.Col, tokens[closing].End.Col)
	}
	return "", Span{}, false
}

func divisionSpan(line string, tokens []*token.Token) (string, Span, bool) {
	for i := 1; i+1 < len(tokens); i++ {
		if !tokens[i].Is("/") && !tokens[i].Is("//") && !tokens[i].Is("%") {
			continue
		}
		start := i - 1
		if !tokens[start].IsNumber() {
			start = primaryStart(tokens, start)
		}
		if start < 0 {
			continue
		}
		if !tokens[i+1].IsNumber() && !tokens[i+1].IsIdentifier() {
			continue
		}
		end := i + 1
		for end+2 < len(tokens) && tokens[end+1].Is(".") && tokens[end+2].IsIdentifier() {
			end += 2
		}
		if end+1 < len(tokens) && tokens[end+1].Is("[") {
			if closing := matchForward(tokens, end+1); closing >= 0 {
				end = closing
			}
		}
		return slice(line, tokens[start].Start.Col, tokens[end].End.Col)
	}
	return "", Span{}, false
}

// primaryStart walks left from idx to the start of the primary expression
// ending there: an identifier, possibly reached through attribute and
// subscript trailers. Returns -1 when the tokens do not form one.
func primaryStart(tokens []*token.Token, idx int) int {
	for idx >= 0 {
		tok := tokens[idx]
		switch {
		case tok.Is("]"), tok.Is(")"), tok.Is("}"):
			open := matchBackward(tokens, idx)
			if open < 0 {
				return -1
			}
			if open == 0 || (!tokens[open-1].IsIdentifier() &&
				!tokens[open-1].Is("]") && !tokens[open-1].Is(")")) {
				return open
			}
			idx = open - 1
		case tok.IsIdentifier():
			if idx >= 2 && tokens[idx-1].Is(".") {
				idx -= 2
				continue
			}
			return idx
		default:
			return -1
		}
	}
	return -1
}

func matchForward(tokens []*token.Token, open int) int {
	depth := 0
	for i := open; i < len(tokens); i++ {
		switch {
		case token.OpenBracket(tokens[i].String):
			depth++
		case token.CloseBracket(tokens[i].String):
			depth--
			if depth == 0 {
				return i
			}
		}
	}
	return -1
}

func matchBackward(tokens []*token.Token, closing int) int {
	depth := 0
	for i := closing; i >= 0; i-- {
		switch {
		case token.CloseBracket(tokens[i].String):
			depth++
		case token.OpenBracket(tokens[i].String):
			depth--
			if depth == 0 {
				return i
			}
		}
	}
	return -1
}

func slice(line string, start, end int) (string, Span, bool) {
	if start < 0 || end > len(line) || end <= start {
		return "", Span{}, false
	}
	return line[start:end], Span{Start: start, End: end}, true
}
