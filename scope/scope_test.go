package scope

import (
	"testing"

	"github.com/cloudcmds/clarify/object"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetObjectFromName(t *testing.T) {
	frame := NewFrame("f", "example.py", 3).
		WithLocal("a", object.NewInt(1)).
		WithGlobal("b", object.NewInt(2))

	a, ok := GetObjectFromName("a", frame)
	require.True(t, ok)
	assert.True(t, a.Equals(object.NewInt(1)))

	_, ok = GetObjectFromName("print", frame)
	assert.True(t, ok, "builtins are visible")

	_, ok = GetObjectFromName("missing", frame)
	assert.False(t, ok)
}

func TestLocalsShadowGlobals(t *testing.T) {
	frame := NewFrame("f", "example.py", 1).
		WithLocal("x", object.NewInt(10)).
		WithGlobal("x", object.NewInt(20))
	x, ok := GetObjectFromName("x", frame)
	require.True(t, ok)
	assert.True(t, x.Equals(object.NewInt(10)))
}

func TestGetAllObjects(t *testing.T) {
	point := object.NewInstance(object.NewClass("Point")).
		Set("x", object.NewInt(3))
	frame := NewFrame("move", "example.py", 7).
		WithLocal("p", point).
		WithLocal("items", object.NewList([]object.Object{object.NewInt(5)})).
		WithGlobal("total", object.NewInt(9))

	info := GetAllObjects("total = p.x + items[0] + len(items)", frame)

	localNames := namesOf(info.Locals)
	assert.Equal(t, []string{"p", "items"}, localNames)
	assert.Equal(t, []string{"total"}, namesOf(info.Globals))
	assert.Equal(t, []string{"len"}, namesOf(info.Builtins))

	exprNames := namesOf(info.Expressions)
	assert.Contains(t, exprNames, "p.x")
	assert.Contains(t, exprNames, "items[0]")
	// The attribute name alone must not appear as a variable.
	assert.NotContains(t, localNames, "x")
}

func namesOf(objects []NamedObject) []string {
	var names []string
	for _, named := range objects {
		names = append(names, named.Name)
	}
	return names
}

func TestEvaluate(t *testing.T) {
	inner := object.NewDict()
	inner.Set(object.NewStr("color"), object.NewStr("red"))
	frame := NewFrame("f", "example.py", 1).
		WithLocal("d", inner).
		WithLocal("key", object.NewStr("color")).
		WithLocal("items", object.NewList([]object.Object{
			object.NewInt(1), object.NewInt(2),
		}))

	value, err := Evaluate("d['color']", frame)
	require.NoError(t, err)
	assert.Equal(t, "red", value.(*object.Str).Value())

	value, err = Evaluate("d[key]", frame)
	require.NoError(t, err)
	assert.Equal(t, "red", value.(*object.Str).Value())

	value, err = Evaluate("items[-1]", frame)
	require.NoError(t, err)
	assert.True(t, value.Equals(object.NewInt(2)))

	_, err = Evaluate("items[5]", frame)
	require.Error(t, err)

	// Calls are never evaluated.
	_, err = Evaluate("len(items)", frame)
	require.Error(t, err)

	_, err = Evaluate("missing", frame)
	require.Error(t, err)
}

func TestGetDefinitionScopes(t *testing.T) {
	outer := NewFrame("outer", "example.py", 1).
		WithLocal("x", object.NewInt(1))
	inner := NewFrame("inner", "example.py", 5).WithBack(outer)

	assert.Equal(t, []string{"nonlocal"}, GetDefinitionScopes("x", inner))

	// When the enclosing frame's value is the very same object as the
	// global, the name is reported as global only.
	shared := object.NewList(nil)
	outer2 := NewFrame("outer", "example.py", 1).WithLocal("y", shared)
	inner2 := NewFrame("inner", "example.py", 5).
		WithGlobal("y", shared).
		WithBack(outer2)
	assert.Equal(t, []string{"global"}, GetDefinitionScopes("y", inner2))

	// A different object of the same name is nonlocal.
	outer3 := NewFrame("outer", "example.py", 1).
		WithLocal("z", object.NewList(nil))
	inner3 := NewFrame("inner", "example.py", 5).
		WithGlobal("z", object.NewList(nil)).
		WithBack(outer3)
	assert.Equal(t, []string{"global", "nonlocal"}, GetDefinitionScopes("z", inner3))
}

func TestGetVariablesByScope(t *testing.T) {
	shared := object.NewList(nil)
	module := NewFrame("<module>", "example.py", 1).
		WithLocal("m", object.NewInt(9))
	outer := NewFrame("outer", "example.py", 3).
		WithLocal("x", object.NewInt(1)).
		WithLocal("y", object.NewStr("outer")).
		WithBack(module)
	middle := NewFrame("middle", "example.py", 5).
		WithLocal("y", object.NewStr("middle")).
		WithLocal("g", shared).
		WithBack(outer)
	inner := NewFrame("inner", "example.py", 7).
		WithLocal("y", object.NewStr("inner")).
		WithGlobal("g", shared).
		WithBack(middle)

	assert.Equal(t, []string{"y"}, namesOf(GetVariablesByScope(inner, "local")))
	assert.Equal(t, []string{"g"}, namesOf(GetVariablesByScope(inner, "global")))

	// The y of inner shadows both enclosing ones, g is the very same
	// object as the global, and module level locals are the globals, so
	// only x remains nonlocal.
	assert.Equal(t, []string{"x"}, namesOf(GetVariablesByScope(inner, "nonlocal")))

	assert.Nil(t, GetVariablesByScope(nil, "local"))
	assert.Nil(t, GetVariablesByScope(inner, "builtin"))
}

func TestSimplifyRepr(t *testing.T) {
	assert.Equal(t,
		"<function f>",
		SimplifyRepr("<function f at 0x7f2c3d9e5040>", 0))
	assert.Equal(t, "short", SimplifyRepr("short", 10))

	long := "[0, 1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14, 15, 16, 17, 18, 19]"
	simplified := SimplifyRepr(long, 20)
	assert.Len(t, simplified, 24)
	assert.Equal(t, "]", simplified[len(simplified)-1:])
	assert.Contains(t, simplified, "...")
}

func TestFormatVarInfo(t *testing.T) {
	frame := NewFrame("f", "example.py", 1).
		WithLocal("a", object.NewInt(3)).
		WithLocal("word", object.NewStr("hello"))
	info := GetAllObjects("a + word", frame)
	text := FormatVarInfo(info)
	assert.Contains(t, text, "    a = 3")
	assert.Contains(t, text, "    word = 'hello'")
}

func TestGetSimilarWords(t *testing.T) {
	words := []string{"alpha", "alpah", "beta", "gamma", "alphabet"}
	assert.Equal(t, []string{"alpah"}, GetSimilarWords("alpha", words))

	// Transpositions count as one edit.
	assert.Equal(t, []string{"true"}, GetSimilarWords("ture", []string{"true", "trust"}))

	// Too short to search.
	assert.Nil(t, GetSimilarWords("i", []string{"in", "id"}))

	// Nothing close enough.
	assert.Nil(t, GetSimilarWords("zebra", []string{"apple", "pear"}))

	// Distant candidates are excluded, close ones all kept.
	similar := GetSimilarWords("alpha2", []string{"alpha1", "alpha3", "totally_unrelated"})
	assert.ElementsMatch(t, []string{"alpha1", "alpha3"}, similar)
}

func TestGetSimilarNames(t *testing.T) {
	frame := NewFrame("f", "example.py", 1).
		WithLocal("counter", object.NewInt(0)).
		WithGlobal("countess", object.NewStr(""))

	similar := GetSimilarNames("countr", frame)
	assert.Contains(t, similar.Locals, "counter")
	assert.Equal(t, "counter", similar.Best)

	// Misspellings of len are matched even though len is too short for
	// the normal similarity window.
	similar = GetSimilarNames("lenght", NewFrame("f", "example.py", 1))
	assert.Contains(t, similar.Builtins, "len")
}

func TestDamerauLevenshteinEarlyExit(t *testing.T) {
	_, ok := damerauLevenshtein("abcdefgh", "zyxwvuts", 2)
	assert.False(t, ok)

	distance, ok := damerauLevenshtein("kitten", "sitting", 3)
	require.True(t, ok)
	assert.Equal(t, 3, distance)
}
