package object

import (
	"fmt"
	"strings"
)

// Dict is an insertion-ordered mapping and implements Object and Container.
// Entries keep the order in which they were set, matching the iteration
// order of the analyzed language's dictionaries.
type Dict struct {
	entries []dictEntry
}

type dictEntry struct {
	key   Object
	value Object
}

func NewDict() *Dict {
	return &Dict{}
}

// Set stores value under key, replacing an existing entry with an equal key.
func (d *Dict) Set(key, value Object) {
	for i, entry := range d.entries {
		if entry.key.Equals(key) {
			d.entries[i].value = value
			return
		}
	}
	d.entries = append(d.entries, dictEntry{key: key, value: value})
}

// Get returns the value stored under key, if any.
func (d *Dict) Get(key Object) (Object, bool) {
	for _, entry := range d.entries {
		if entry.key.Equals(key) {
			return entry.value, true
		}
	}
	return nil, false
}

// Keys returns the keys in insertion order.
func (d *Dict) Keys() []Object {
	keys := make([]Object, 0, len(d.entries))
	for _, entry := range d.entries {
		keys = append(keys, entry.key)
	}
	return keys
}

// StringKeys returns the values of all keys that are strings, in insertion
// order. Key typo analysis only compares string keys.
func (d *Dict) StringKeys() []string {
	var keys []string
	for _, entry := range d.entries {
		if key, ok := entry.key.(*Str); ok {
			keys = append(keys, key.value)
		}
	}
	return keys
}

func (d *Dict) Type() Type {
	return DICT
}

func (d *Dict) Inspect() string {
	var out strings.Builder
	out.WriteString("{")
	for i, entry := range d.entries {
		if i > 0 {
			out.WriteString(", ")
		}
		out.WriteString(entry.key.Inspect())
		out.WriteString(": ")
		out.WriteString(entry.value.Inspect())
	}
	out.WriteString("}")
	return out.String()
}

func (d *Dict) Interface() interface{} {
	result := make(map[interface{}]interface{}, len(d.entries))
	for _, entry := range d.entries {
		result[entry.key.Interface()] = entry.value.Interface()
	}
	return result
}

func (d *Dict) Equals(other Object) bool {
	otherDict, ok := other.(*Dict)
	if !ok || len(d.entries) != len(otherDict.entries) {
		return false
	}
	for _, entry := range d.entries {
		value, found := otherDict.Get(entry.key)
		if !found || !entry.value.Equals(value) {
			return false
		}
	}
	return true
}

var dictMethods = []string{
	"clear", "copy", "fromkeys", "get", "items", "keys", "pop",
	"popitem", "setdefault", "update", "values",
}

func (d *Dict) AttrNames() []string {
	return dictMethods
}

func (d *Dict) GetAttr(name string) (Object, bool) {
	for _, method := range dictMethods {
		if method == name {
			return NewBuiltin(name, nil), true
		}
	}
	return nil, false
}

func (d *Dict) IsTruthy() bool {
	return len(d.entries) > 0
}

func (d *Dict) Len() int {
	return len(d.entries)
}

func (d *Dict) GetItem(key Object) (Object, error) {
	if value, found := d.Get(key); found {
		return value, nil
	}
	return nil, fmt.Errorf("key %s not found", SafeInspect(key))
}
