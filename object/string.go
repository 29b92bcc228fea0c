package object

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
)

// Str wraps string and implements Object and Container. Indexing and
// length operate on code points, as in the analyzed language.
type Str struct {
	value string
}

func NewStr(value string) *Str {
	return &Str{value: value}
}

func (s *Str) Value() string {
	return s.value
}

func (s *Str) Type() Type {
	return STR
}

func (s *Str) Inspect() string {
	return Repr(s.value)
}

func (s *Str) String() string {
	return s.value
}

func (s *Str) Interface() interface{} {
	return s.value
}

func (s *Str) Equals(other Object) bool {
	if other, ok := other.(*Str); ok {
		return s.value == other.value
	}
	return false
}

// Method names of the str type. Only the names are carried: they exist so
// that typo analysis can suggest "did you mean startswith" without the
// methods themselves being callable here.
var strMethods = []string{
	"capitalize", "casefold", "center", "count", "encode", "endswith",
	"expandtabs", "find", "format", "format_map", "index", "isalnum",
	"isalpha", "isascii", "isdecimal", "isdigit", "isidentifier", "islower",
	"isnumeric", "isprintable", "isspace", "istitle", "isupper", "join",
	"ljust", "lower", "lstrip", "maketrans", "partition", "removeprefix",
	"removesuffix", "replace", "rfind", "rindex", "rjust", "rpartition",
	"rsplit", "rstrip", "split", "splitlines", "startswith", "strip",
	"swapcase", "title", "translate", "upper", "zfill",
}

func (s *Str) AttrNames() []string {
	return strMethods
}

func (s *Str) GetAttr(name string) (Object, bool) {
	i := sort.SearchStrings(strMethods, name)
	if i < len(strMethods) && strMethods[i] == name {
		return NewBuiltin(name, nil), true
	}
	return nil, false
}

func (s *Str) IsTruthy() bool {
	return s.value != ""
}

func (s *Str) Len() int {
	return len([]rune(s.value))
}

func (s *Str) GetItem(key Object) (Object, error) {
	index, ok := key.(*Int)
	if !ok {
		return nil, fmt.Errorf("string indices must be integers, not %s", key.Type())
	}
	runes := []rune(s.value)
	idx, err := resolveIndex(index.value, len(runes))
	if err != nil {
		return nil, fmt.Errorf("string index out of range")
	}
	return NewStr(string(runes[idx])), nil
}

// Repr renders a Go string the way the analyzed language represents one:
// single quotes preferred, double quotes when the text itself contains a
// single quote but no double quote.
func Repr(value string) string {
	quoted := strconv.Quote(value)
	if strings.Contains(value, "'") && !strings.Contains(value, `"`) {
		return quoted
	}
	inner := quoted[1 : len(quoted)-1]
	inner = strings.ReplaceAll(inner, `\"`, `"`)
	inner = strings.ReplaceAll(inner, "'", `\'`)
	return "'" + inner + "'"
}

// resolveIndex converts a possibly negative index into a concrete offset,
// or fails when the index falls outside -length .. length-1.
func resolveIndex(index int64, length int) (int, error) {
	idx := index
	if idx < 0 {
		idx += int64(length)
	}
	if idx < 0 || idx >= int64(length) {
		return 0, fmt.Errorf("index %d out of range for length %d", index, length)
	}
	return int(idx), nil
}
