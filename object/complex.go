package object

// Complex wraps complex128 and implements Object.
type Complex struct {
	value complex128
}

func NewComplex(value complex128) *Complex {
	return &Complex{value: value}
}

func (c *Complex) Value() complex128 {
	return c.value
}

func (c *Complex) Type() Type {
	return COMPLEX
}

func (c *Complex) Inspect() string {
	if real(c.value) == 0 {
		return formatFloat(imag(c.value)) + "j"
	}
	s := "(" + formatFloat(real(c.value))
	if imag(c.value) >= 0 {
		s += "+"
	}
	return s + formatFloat(imag(c.value)) + "j)"
}

func (c *Complex) Interface() interface{} {
	return c.value
}

func (c *Complex) Equals(other Object) bool {
	if other, ok := other.(*Complex); ok {
		return c.value == other.value
	}
	return false
}

func (c *Complex) AttrNames() []string {
	return []string{"conjugate", "imag", "real"}
}

func (c *Complex) GetAttr(name string) (Object, bool) {
	switch name {
	case "real":
		return NewFloat(real(c.value)), true
	case "imag":
		return NewFloat(imag(c.value)), true
	}
	return nil, false
}

func (c *Complex) IsTruthy() bool {
	return c.value != 0
}

func (c *Complex) IsZero() bool {
	return c.value == 0
}
