package object

import (
	"fmt"
	"strings"
)

// Tuple wraps a fixed slice of Objects and implements Object and Container.
type Tuple struct {
	items []Object
}

func NewTuple(items []Object) *Tuple {
	return &Tuple{items: items}
}

func (t *Tuple) Items() []Object {
	return t.items
}

func (t *Tuple) Type() Type {
	return TUPLE
}

func (t *Tuple) Inspect() string {
	var out strings.Builder
	out.WriteString("(")
	for i, item := range t.items {
		if i > 0 {
			out.WriteString(", ")
		}
		out.WriteString(item.Inspect())
	}
	if len(t.items) == 1 {
		out.WriteString(",")
	}
	out.WriteString(")")
	return out.String()
}

func (t *Tuple) Interface() interface{} {
	items := make([]interface{}, 0, len(t.items))
	for _, item := range t.items {
		items = append(items, item.Interface())
	}
	return items
}

func (t *Tuple) Equals(other Object) bool {
	otherTuple, ok := other.(*Tuple)
	if !ok || len(t.items) != len(otherTuple.items) {
		return false
	}
	for i, item := range t.items {
		if !item.Equals(otherTuple.items[i]) {
			return false
		}
	}
	return true
}

func (t *Tuple) AttrNames() []string {
	return []string{"count", "index"}
}

func (t *Tuple) GetAttr(name string) (Object, bool) {
	if name == "count" || name == "index" {
		return NewBuiltin(name, nil), true
	}
	return nil, false
}

func (t *Tuple) IsTruthy() bool {
	return len(t.items) > 0
}

func (t *Tuple) Len() int {
	return len(t.items)
}

func (t *Tuple) GetItem(key Object) (Object, error) {
	index, ok := key.(*Int)
	if !ok {
		return nil, fmt.Errorf("tuple indices must be integers, not %s", key.Type())
	}
	idx, err := resolveIndex(index.value, len(t.items))
	if err != nil {
		return nil, fmt.Errorf("tuple index out of range")
	}
	return t.items[idx], nil
}
