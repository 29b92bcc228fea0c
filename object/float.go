package object

import (
	"math"
	"strconv"
	"strings"
)

// Float wraps float64 and implements Object.
type Float struct {
	value float64
}

func NewFloat(value float64) *Float {
	return &Float{value: value}
}

func (f *Float) Value() float64 {
	return f.value
}

func (f *Float) Type() Type {
	return FLOAT
}

func (f *Float) Inspect() string {
	return formatFloat(f.value)
}

func (f *Float) String() string {
	return f.Inspect()
}

func (f *Float) Interface() interface{} {
	return f.value
}

func (f *Float) Equals(other Object) bool {
	switch other := other.(type) {
	case *Float:
		return f.value == other.value
	case *Int:
		return f.value == float64(other.value)
	}
	return false
}

func (f *Float) AttrNames() []string {
	return nil
}

func (f *Float) GetAttr(name string) (Object, bool) {
	return nil, false
}

func (f *Float) IsTruthy() bool {
	return f.value != 0
}

func (f *Float) IsZero() bool {
	return f.value == 0
}

// formatFloat renders a float the way the analyzed language prints one:
// whole values keep a trailing ".0" so they remain visibly floats.
func formatFloat(value float64) string {
	if math.IsInf(value, 1) {
		return "inf"
	}
	if math.IsInf(value, -1) {
		return "-inf"
	}
	if math.IsNaN(value) {
		return "nan"
	}
	s := strconv.FormatFloat(value, 'g', -1, 64)
	if !strings.ContainsAny(s, ".eE") {
		s += ".0"
	}
	return s
}
