package object

import "strconv"

// Int wraps int64 and implements Object.
type Int struct {
	value int64
}

func NewInt(value int64) *Int {
	return &Int{value: value}
}

func (i *Int) Value() int64 {
	return i.value
}

func (i *Int) Type() Type {
	return INT
}

func (i *Int) Inspect() string {
	return strconv.FormatInt(i.value, 10)
}

func (i *Int) String() string {
	return i.Inspect()
}

func (i *Int) Interface() interface{} {
	return i.value
}

func (i *Int) Equals(other Object) bool {
	switch other := other.(type) {
	case *Int:
		return i.value == other.value
	case *Float:
		return float64(i.value) == other.value
	case *Bool:
		return i.value == other.asInt()
	}
	return false
}

func (i *Int) AttrNames() []string {
	return nil
}

func (i *Int) GetAttr(name string) (Object, bool) {
	return nil, false
}

func (i *Int) IsTruthy() bool {
	return i.value != 0
}

// IsZero reports whether the value is exactly zero. Division analysis
// treats int and float zeros alike.
func (i *Int) IsZero() bool {
	return i.value == 0
}
