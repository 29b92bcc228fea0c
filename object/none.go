package object

// NoneType is the type of the None singleton.
type NoneType struct{}

func (n *NoneType) Type() Type {
	return NONE
}

func (n *NoneType) Inspect() string {
	return "None"
}

func (n *NoneType) String() string {
	return "None"
}

func (n *NoneType) Interface() interface{} {
	return nil
}

func (n *NoneType) Equals(other Object) bool {
	_, ok := other.(*NoneType)
	return ok
}

func (n *NoneType) AttrNames() []string {
	return nil
}

func (n *NoneType) GetAttr(name string) (Object, bool) {
	return nil, false
}

func (n *NoneType) IsTruthy() bool {
	return false
}
