package object

// Bool wraps bool and implements Object. Only two instances exist: the
// True and False singletons.
type Bool struct {
	value bool
}

func (b *Bool) Value() bool {
	return b.value
}

func (b *Bool) Type() Type {
	return BOOL
}

func (b *Bool) Inspect() string {
	if b.value {
		return "True"
	}
	return "False"
}

func (b *Bool) String() string {
	return b.Inspect()
}

func (b *Bool) Interface() interface{} {
	return b.value
}

func (b *Bool) asInt() int64 {
	if b.value {
		return 1
	}
	return 0
}

func (b *Bool) Equals(other Object) bool {
	switch other := other.(type) {
	case *Bool:
		return b.value == other.value
	case *Int:
		return b.asInt() == other.value
	}
	return false
}

func (b *Bool) AttrNames() []string {
	return nil
}

func (b *Bool) GetAttr(name string) (Object, bool) {
	return nil, false
}

func (b *Bool) IsTruthy() bool {
	return b.value
}
