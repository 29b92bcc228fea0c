package object

import (
	"fmt"
	"strings"
)

// List wraps a slice of Objects and implements Object and Container.
type List struct {
	items []Object
}

func NewList(items []Object) *List {
	return &List{items: items}
}

func (l *List) Items() []Object {
	return l.items
}

func (l *List) Type() Type {
	return LIST
}

func (l *List) Inspect() string {
	var out strings.Builder
	out.WriteString("[")
	for i, item := range l.items {
		if i > 0 {
			out.WriteString(", ")
		}
		out.WriteString(item.Inspect())
	}
	out.WriteString("]")
	return out.String()
}

func (l *List) Interface() interface{} {
	items := make([]interface{}, 0, len(l.items))
	for _, item := range l.items {
		items = append(items, item.Interface())
	}
	return items
}

func (l *List) Equals(other Object) bool {
	otherList, ok := other.(*List)
	if !ok || len(l.items) != len(otherList.items) {
		return false
	}
	for i, item := range l.items {
		if !item.Equals(otherList.items[i]) {
			return false
		}
	}
	return true
}

var listMethods = []string{
	"append", "clear", "copy", "count", "extend", "index", "insert",
	"pop", "remove", "reverse", "sort",
}

func (l *List) AttrNames() []string {
	return listMethods
}

func (l *List) GetAttr(name string) (Object, bool) {
	for _, method := range listMethods {
		if method == name {
			return NewBuiltin(name, nil), true
		}
	}
	return nil, false
}

func (l *List) IsTruthy() bool {
	return len(l.items) > 0
}

func (l *List) Len() int {
	return len(l.items)
}

func (l *List) GetItem(key Object) (Object, error) {
	index, ok := key.(*Int)
	if !ok {
		return nil, fmt.Errorf("list indices must be integers, not %s", key.Type())
	}
	idx, err := resolveIndex(index.value, len(l.items))
	if err != nil {
		return nil, fmt.Errorf("list index out of range")
	}
	return l.items[idx], nil
}
