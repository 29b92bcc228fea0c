package object

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInspect(t *testing.T) {
	tests := []struct {
		obj  Object
		want string
	}{
		{NewInt(42), "42"},
		{NewFloat(2.5), "2.5"},
		{NewFloat(3), "3.0"},
		{NewComplex(1i), "1.0j"},
		{NewComplex(2 + 3i), "(2.0+3.0j)"},
		{True, "True"},
		{False, "False"},
		{None, "None"},
		{NewStr("hello"), "'hello'"},
		{NewStr("it's"), `"it's"`},
		{NewList([]Object{NewInt(1), NewStr("a")}), "[1, 'a']"},
		{NewTuple([]Object{NewInt(1)}), "(1,)"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, tt.obj.Inspect())
	}
}

func TestDictOrderAndLookup(t *testing.T) {
	d := NewDict()
	d.Set(NewStr("b"), NewInt(2))
	d.Set(NewStr("a"), NewInt(1))
	d.Set(NewStr("b"), NewInt(3))

	assert.Equal(t, 2, d.Len())
	assert.Equal(t, []string{"b", "a"}, d.StringKeys())

	value, found := d.Get(NewStr("b"))
	require.True(t, found)
	assert.True(t, value.Equals(NewInt(3)))

	assert.Equal(t, "{'b': 3, 'a': 1}", d.Inspect())
}

func TestContainerIndexing(t *testing.T) {
	list := NewList([]Object{NewInt(10), NewInt(20), NewInt(30)})

	item, err := list.GetItem(NewInt(-1))
	require.NoError(t, err)
	assert.True(t, item.Equals(NewInt(30)))

	_, err = list.GetItem(NewInt(3))
	require.Error(t, err)

	_, err = list.GetItem(NewStr("x"))
	require.Error(t, err)

	s := NewStr("héllo")
	assert.Equal(t, 5, s.Len())
	item, err = s.GetItem(NewInt(1))
	require.NoError(t, err)
	assert.Equal(t, "é", item.(*Str).Value())
}

func TestEquality(t *testing.T) {
	assert.True(t, NewInt(1).Equals(NewFloat(1)))
	assert.True(t, True.Equals(NewInt(1)))
	assert.False(t, NewInt(1).Equals(NewStr("1")))
	assert.True(t, NewList([]Object{NewInt(1)}).Equals(NewList([]Object{NewInt(1)})))
}

func TestClassAttrResolution(t *testing.T) {
	base := NewClass("Base").Register("greet", NewFunction("greet", []string{"self"}).BoundTo("Base"))
	child := NewClass("Child", base).Register("extra", NewInt(1))
	inst := NewInstance(child).Set("color", NewStr("red"))

	names := inst.AttrNames()
	assert.Contains(t, names, "color")
	assert.Contains(t, names, "extra")
	assert.Contains(t, names, "greet")

	greet, ok := inst.GetAttr("greet")
	require.True(t, ok)
	fn, ok := greet.(*Function)
	require.True(t, ok)
	assert.True(t, fn.IsMethod())
}

func TestSafeInspectContainsPanic(t *testing.T) {
	cls := NewClass("Broken")
	inst := NewInstance(cls).WithRepr(func() string {
		panic("boom")
	})

	result, err := TryInspect(inst)
	require.Error(t, err)
	assert.Equal(t, "<Broken object (repr failed)>", result)

	// The one-value form never fails.
	assert.Equal(t, "<Broken object (repr failed)>", SafeInspect(inst))
}

func TestTryLenAndGetItem(t *testing.T) {
	length, ok, err := TryLen(NewStr("abc"))
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, 3, length)

	_, ok, err = TryLen(NewInt(3))
	require.NoError(t, err)
	assert.False(t, ok)

	_, err = TryGetItem(NewInt(3), NewInt(0))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not subscriptable")
}

func TestFunctionSignature(t *testing.T) {
	fn := NewFunction("move", []string{"self", "dx", "dy"}).
		WithDefault("dy", NewInt(0)).
		BoundTo("Point")
	assert.Equal(t, "move(self, dx, dy=0)", fn.Signature())
	assert.Equal(t, "<function Point.move>", fn.Inspect())
}

func TestModuleAttrs(t *testing.T) {
	mod := NewModule("math").
		Register("sin", NewBuiltin("sin", nil)).
		Register("pi", NewFloat(3.141592653589793))
	assert.Equal(t, []string{"pi", "sin"}, mod.AttrNames())
	_, found := mod.GetAttr("cos")
	assert.False(t, found)
}
