package scope

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/cloudcmds/clarify/object"
	"github.com/cloudcmds/clarify/token"
	"github.com/cloudcmds/clarify/tokenizer"
)

// NamedObject pairs the textual form of a name or expression with the
// object it referred to.
type NamedObject struct {
	Name   string
	Object object.Object
}

// ObjectsInfo collects everything nameable on one line of code, split by
// where each name was found.
type ObjectsInfo struct {
	Locals      []NamedObject
	Globals     []NamedObject
	Builtins    []NamedObject
	Expressions []NamedObject
}

// All returns locals, globals, builtins and expressions as a single list,
// in that order.
func (info *ObjectsInfo) All() []NamedObject {
	var all []NamedObject
	all = append(all, info.Locals...)
	all = append(all, info.Globals...)
	all = append(all, info.Builtins...)
	all = append(all, info.Expressions...)
	return all
}

// Empty reports whether nothing at all was identified.
func (info *ObjectsInfo) Empty() bool {
	return len(info.Locals) == 0 && len(info.Globals) == 0 &&
		len(info.Builtins) == 0 && len(info.Expressions) == 0
}

// GetObjectFromName resolves a bare name the way the failed program would
// have: locals first, then globals, then builtins.
func GetObjectFromName(name string, frame *Frame) (object.Object, bool) {
	if frame == nil {
		return nil, false
	}
	if value, ok := frame.Locals().Get(name); ok {
		return value, true
	}
	if value, ok := frame.Globals().Get(name); ok {
		return value, true
	}
	return frame.Builtins().Get(name)
}

// GetAllObjects identifies the variables and small expressions present on
// one line of code and resolves them against the given frame. Identifiers
// appearing as attribute names after a dot are not looked up on their own.
func GetAllObjects(line string, frame *Frame) *ObjectsInfo {
	info := &ObjectsInfo{}
	if frame == nil {
		return info
	}
	tokens := tokenizer.GetSignificantTokens(line)
	seen := map[string]bool{}

	for index, tok := range tokens {
		if !tok.IsIdentifier() {
			continue
		}
		if index > 0 && tokens[index-1].Is(".") {
			continue
		}
		name := tok.String
		if !seen[name] {
			seen[name] = true
			if value, ok := frame.Locals().Get(name); ok {
				info.Locals = append(info.Locals, NamedObject{Name: name, Object: value})
			} else if value, ok := frame.Globals().Get(name); ok {
				info.Globals = append(info.Globals, NamedObject{Name: name, Object: value})
			} else if value, ok := frame.Builtins().Get(name); ok {
				info.Builtins = append(info.Builtins, NamedObject{Name: name, Object: value})
			}
		}
		expr, next := collectExpression(tokens, index)
		if next > index+1 && !seen[expr] {
			seen[expr] = true
			if value, err := Evaluate(expr, frame); err == nil {
				info.Expressions = append(info.Expressions, NamedObject{Name: expr, Object: value})
			}
		}
	}
	return info
}

// collectExpression gathers an identifier followed by attribute and
// subscript trailers, returning the textual expression and the index of
// the first token past it.
func collectExpression(tokens []*token.Token, start int) (string, int) {
	var parts []string
	parts = append(parts, tokens[start].String)
	index := start + 1
	for index < len(tokens) {
		switch {
		case tokens[index].Is(".") && index+1 < len(tokens) && tokens[index+1].IsIdentifier():
			parts = append(parts, ".", tokens[index+1].String)
			index += 2
		case tokens[index].Is("["):
			closing, text, ok := simpleSubscript(tokens, index)
			if !ok {
				return strings.Join(parts, ""), index
			}
			parts = append(parts, "[", text, "]")
			index = closing + 1
		default:
			return strings.Join(parts, ""), index
		}
	}
	return strings.Join(parts, ""), index
}

// simpleSubscript recognizes [literal] or [name] starting at the opening
// bracket and returns the index of the closing bracket.
func simpleSubscript(tokens []*token.Token, open int) (int, string, bool) {
	index := open + 1
	text := ""
	if index < len(tokens) && tokens[index].Is("-") {
		text = "-"
		index++
	}
	if index >= len(tokens) {
		return 0, "", false
	}
	tok := tokens[index]
	if !tok.IsNumber() && !tok.IsString() && !(text == "" && tok.IsIdentifier()) {
		return 0, "", false
	}
	text += tok.String
	index++
	if index >= len(tokens) || !tokens[index].Is("]") {
		return 0, "", false
	}
	return index, text, true
}

// Evaluate resolves a restricted expression against a frame: a name
// followed by any number of attribute accesses and subscripts whose index
// is a literal or a bare name. Nothing is called and nothing is written,
// so evaluation cannot change the state being analyzed.
func Evaluate(expr string, frame *Frame) (object.Object, error) {
	tokens := tokenizer.GetSignificantTokens(expr)
	if len(tokens) == 0 {
		return nil, fmt.Errorf("empty expression")
	}
	if !tokens[0].IsIdentifier() {
		return nil, fmt.Errorf("expression must start with a name, not %q", tokens[0].String)
	}
	current, ok := GetObjectFromName(tokens[0].String, frame)
	if !ok {
		return nil, fmt.Errorf("name '%s' is not defined", tokens[0].String)
	}
	index := 1
	for index < len(tokens) {
		switch {
		case tokens[index].Is(".") && index+1 < len(tokens) && tokens[index+1].IsIdentifier():
			value, found, err := object.TryGetAttr(current, tokens[index+1].String)
			if err != nil {
				return nil, err
			}
			if !found {
				return nil, fmt.Errorf("'%s' object has no attribute '%s'",
					current.Type(), tokens[index+1].String)
			}
			current = value
			index += 2
		case tokens[index].Is("["):
			closing, text, ok := simpleSubscript(tokens, index)
			if !ok {
				return nil, fmt.Errorf("unsupported subscript in %q", expr)
			}
			key, err := subscriptKey(text, frame)
			if err != nil {
				return nil, err
			}
			value, err := object.TryGetItem(current, key)
			if err != nil {
				return nil, err
			}
			current = value
			index = closing + 1
		default:
			return nil, fmt.Errorf("unsupported expression near %q", tokens[index].String)
		}
	}
	return current, nil
}

// subscriptKey converts the text inside a subscript into an object:
// an integer literal, a string literal, or a name resolved in the frame.
func subscriptKey(text string, frame *Frame) (object.Object, error) {
	if value, err := strconv.ParseInt(text, 0, 64); err == nil {
		return object.NewInt(value), nil
	}
	if len(text) >= 2 && (text[0] == '\'' || text[0] == '"') {
		if unquoted, err := strconv.Unquote(`"` + text[1:len(text)-1] + `"`); err == nil {
			return object.NewStr(unquoted), nil
		}
		return object.NewStr(text[1 : len(text)-1]), nil
	}
	if value, ok := GetObjectFromName(text, frame); ok {
		return value, nil
	}
	return nil, fmt.Errorf("name '%s' is not defined", text)
}
