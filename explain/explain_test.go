package explain

import (
	"strings"
	"testing"

	"github.com/cloudcmds/clarify/exc"
	"github.com/cloudcmds/clarify/object"
	"github.com/cloudcmds/clarify/scope"
	"github.com/cloudcmds/clarify/sourcecache"
	"github.com/gofrs/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenericExplanationExact(t *testing.T) {
	text := GenericExplanation(exc.ZeroDivisionError)
	assert.Contains(t, text, "divide a value")
}

func TestGenericExplanationSubclassWalk(t *testing.T) {
	text := GenericExplanation(exc.FloatingPointError)
	assert.Contains(t, text, "`FloatingPointError` is a subclass of `ArithmeticError`")
	assert.Contains(t, text, "arithmetic errors")
}

func TestGenericExplanationSkipsRoots(t *testing.T) {
	// NotImplementedError has RuntimeError between itself and Exception;
	// the walk must stop there, not at Exception.
	text := GenericExplanation(exc.NotImplementedError)
	assert.Contains(t, text, "subclass of `RuntimeError`")
	assert.NotContains(t, text, "subclass of `Exception`")
}

func TestGenericExplanationRootFallback(t *testing.T) {
	text := GenericExplanation(exc.SystemExit)
	assert.Contains(t, text, "`SystemExit` is a subclass of `BaseException`")
}

func TestGenericExplanationWarningPhrasing(t *testing.T) {
	text := GenericExplanation(exc.RuntimeWarning)
	assert.Contains(t, text, "A warning of type `RuntimeWarning`")
}

func TestGenericExplanationInheritanceTree(t *testing.T) {
	base := &exc.Type{Name: "StorageError", Parent: exc.LookupError}
	leaf := &exc.Type{Name: "ShardMissing", Parent: base}
	text := GenericExplanation(leaf)
	assert.Contains(t, text, "subclass of `LookupError`")
	assert.Contains(t, text, "ShardMissing -> StorageError -> LookupError")
}

func TestRegisterGeneric(t *testing.T) {
	custom := &exc.Type{Name: "GridError", Parent: exc.ExceptionType}
	require.NoError(t, RegisterGeneric(custom, "A `GridError` means the grid is invalid.\n"))
	defer delete(generic, custom)

	assert.Contains(t, GenericExplanation(custom), "grid is invalid")
	assert.Error(t, RegisterGeneric(custom, "again"))
}

func compileNameError(t *testing.T) (*Compiler, *Explanation) {
	t.Helper()
	sourcecache.Add("<explain>", "total = counter + countr\n")
	frame := scope.NewFrame("<module>", "<explain>", 1).
		WithLocal("counter", object.NewInt(3))
	e := exc.New(exc.NameError, "name 'countr' is not defined").WithFrames(frame)
	compiler := NewCompiler(e)
	return compiler, compiler.Compile("en")
}

func TestCompileRuntimeRecord(t *testing.T) {
	_, record := compileNameError(t)

	assert.Equal(t, "NameError: name 'countr' is not defined\n", record.Message)
	assert.Contains(t, record.Generic, "spelling mistake")
	assert.Contains(t, record.Suggest, "counter")
	assert.Contains(t, record.RaisedHeader, "line 1 of file '<explain>'")
	assert.Equal(t, "total = counter + countr", record.RaisedSource)
	assert.Equal(t, strings.Repeat(" ", 18)+"^^^^^^", record.Highlight,
		"carets mark the unknown name")
	assert.Contains(t, record.VarInfo, "counter = 3")
	assert.NotEqual(t, uuid.Nil, record.ID)
}

func TestRecompileKeepsIdentity(t *testing.T) {
	compiler, record := compileNameError(t)
	assert.True(t, compiler.Compiled())

	again := compiler.Recompile("en")
	assert.Same(t, record, again, "same language reuses the record")

	french := compiler.Recompile("fr")
	assert.Equal(t, record.ID, french.ID)
	assert.Equal(t, "fr", french.Lang)
	assert.Equal(t, record.Cause, french.Cause)
}

func TestCompileSyntaxRecord(t *testing.T) {
	sourcecache.Add("<explain-syntax>", "if x\n    pass\n")
	e := exc.New(exc.SyntaxError, "expected ':'")
	e.Filename = "<explain-syntax>"
	e.Lineno = 1
	e.Offset = 5

	record := NewCompiler(e).Compile("en")
	assert.Contains(t, record.RaisedHeader, "`SyntaxError` occurred on line 1")
	assert.NotEmpty(t, record.Cause)
}

func TestCompileSyntaxHighlight(t *testing.T) {
	sourcecache.Add("<explain-span>", "a = {'a': 1, 'b': 2 'c': 3,}\n")
	e := exc.New(exc.SyntaxError, "invalid syntax")
	e.Filename = "<explain-span>"
	e.Lineno = 1
	e.Offset = 19
	e.EndOffset = 24

	record := NewCompiler(e).Compile("en")
	assert.Equal(t, "a = {'a': 1, 'b': 2 'c': 3,}", record.RaisedSource)
	assert.Equal(t, strings.Repeat(" ", 18)+"^^^^^", record.Highlight,
		"carets span both highlighted tokens")
}

func TestSessionHistory(t *testing.T) {
	session := NewSession()
	sourcecache.Add("<hist>", "x = 1/0\ny = a\n")
	frame1 := scope.NewFrame("<module>", "<hist>", 1)
	first := session.Explain(exc.New(exc.ZeroDivisionError, "division by zero").WithFrames(frame1))
	frame2 := scope.NewFrame("<module>", "<hist>", 2)
	second := session.Explain(exc.New(exc.NameError, "name 'a' is not defined").WithFrames(frame2))

	require.Equal(t, 2, session.Len())
	latest, ok := session.Latest()
	require.True(t, ok)
	assert.Equal(t, second.ID, latest.ID)
	older, ok := session.Record(1)
	require.True(t, ok)
	assert.Equal(t, first.ID, older.ID)

	session.Back()
	latest, ok = session.Latest()
	require.True(t, ok)
	assert.Equal(t, first.ID, latest.ID)

	session.Reset()
	assert.Equal(t, 0, session.Len())
	_, ok = session.Latest()
	assert.False(t, ok)
}

func TestSessionHistoryBound(t *testing.T) {
	session := NewSession().WithHistorySize(2)
	sourcecache.Add("<bound>", "x = 1/0\n")
	for i := 0; i < 5; i++ {
		frame := scope.NewFrame("<module>", "<bound>", 1)
		session.Explain(exc.New(exc.ZeroDivisionError, "division by zero").WithFrames(frame))
	}
	assert.Equal(t, 2, session.Len())
}

func TestSessionLanguageSwitch(t *testing.T) {
	session := NewSession()
	sourcecache.Add("<lang>", "x = 1/0\n")
	frame := scope.NewFrame("<module>", "<lang>", 1)
	record := session.Explain(exc.New(exc.ZeroDivisionError, "division by zero").WithFrames(frame))
	assert.Equal(t, "en", record.Lang)

	session.SetLang("fr")
	latest, ok := session.Latest()
	require.True(t, ok)
	assert.Equal(t, "fr", latest.Lang)
	assert.Equal(t, record.ID, latest.ID)
}
