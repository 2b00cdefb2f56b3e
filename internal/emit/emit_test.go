package emit

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ctoks/ctoks/internal/chunk"
	"github.com/ctoks/ctoks/internal/combine"
	"github.com/ctoks/ctoks/internal/config"
	"github.com/ctoks/ctoks/internal/lang"
	"github.com/ctoks/ctoks/internal/scope"
	"github.com/ctoks/ctoks/internal/tokenize"
)

func analyze(t *testing.T, src string, lf lang.Flags) *chunk.Workspace {
	t.Helper()
	ws := chunk.NewWorkspace("test.src", []byte(src), lf, config.Default())
	tokenize.Run(ws)
	tokenize.Cleanup(ws)
	combine.BraceCleanup(ws)
	combine.FixSymbols(ws)
	combine.CombineLabels(ws)
	scope.Assign(ws)
	return ws
}

func find(entries []Entry, ident string) []Entry {
	var out []Entry
	for _, e := range entries {
		if e.Identifier == ident {
			out = append(out, e)
		}
	}
	return out
}

func one(t *testing.T, entries []Entry, ident string) Entry {
	t.Helper()
	got := find(entries, ident)
	require.Len(t, got, 1, "occurrences of %q", ident)
	return got[0]
}

func TestFunctionDefinition(t *testing.T) {
	ws := analyze(t, "int foo(int a, int b) { return a+b; }", lang.C)
	entries := Entries(ws)

	foo := one(t, entries, "foo")
	assert.Equal(t, Function, foo.Entity)
	assert.Equal(t, Def, foo.Role)
	assert.Equal(t, "<global>", foo.Scope)
	assert.Equal(t, 1, foo.Line)
	assert.Equal(t, 5, foo.ColStart)

	as := find(entries, "a")
	require.Len(t, as, 2)
	assert.Equal(t, Var, as[0].Entity)
	assert.Equal(t, Def, as[0].Role)
	assert.Equal(t, "<global>:foo()", as[0].Scope)
	assert.Equal(t, 13, as[0].ColStart)
	assert.Equal(t, Identifier, as[1].Entity)
	assert.Equal(t, Ref, as[1].Role)
	assert.Equal(t, "<global>:foo(){}", as[1].Scope)

	bs := find(entries, "b")
	require.Len(t, bs, 2)
	assert.Equal(t, Var, bs[0].Entity)
	assert.Equal(t, Def, bs[0].Role)
	assert.Equal(t, 20, bs[0].ColStart)

	// Keyword types never index.
	assert.Empty(t, find(entries, "int"))
}

func TestTypedefStruct(t *testing.T) {
	ws := analyze(t, "typedef struct S { int x; } S_t;", lang.C)
	entries := Entries(ws)

	s := one(t, entries, "S")
	assert.Equal(t, Struct, s.Entity)
	assert.Equal(t, Def, s.Role)
	assert.Equal(t, "<global>", s.Scope)

	x := one(t, entries, "x")
	assert.Equal(t, Var, x.Entity)
	assert.Equal(t, Def, x.Role)
	assert.Equal(t, "<global>:S", x.Scope)

	st := one(t, entries, "S_t")
	assert.Equal(t, StructType, st.Entity)
	assert.Equal(t, Def, st.Role)
	assert.Equal(t, "<global>", st.Scope)
}

func TestNamespaceClassMethod(t *testing.T) {
	ws := analyze(t, "namespace N { class C { void m(); }; }", lang.CPP)
	entries := Entries(ws)

	n := one(t, entries, "N")
	assert.Equal(t, Namespace, n.Entity)
	assert.Equal(t, Def, n.Role)

	c := one(t, entries, "C")
	assert.Equal(t, Class, c.Entity)
	assert.Equal(t, Def, c.Role)
	assert.Equal(t, "<global>:N", c.Scope)

	m := one(t, entries, "m")
	assert.Equal(t, Function, m.Entity)
	assert.Equal(t, Decl, m.Role)
	assert.Equal(t, "<global>:N:C", m.Scope)
}

func TestMacroFunction(t *testing.T) {
	ws := analyze(t, "#define ADD(a,b) ((a)+(b))\n#define LIMIT 10\n", lang.C)
	entries := Entries(ws)

	add := one(t, entries, "ADD")
	assert.Equal(t, MacroFunction, add.Entity)
	assert.Equal(t, Def, add.Role)
	assert.Equal(t, "<global>", add.Scope)

	limit := one(t, entries, "LIMIT")
	assert.Equal(t, Macro, limit.Entity)
	assert.Equal(t, Def, limit.Role)
}

func TestFunctionPointerVariable(t *testing.T) {
	ws := analyze(t, "int (*fp)(int) = 0;", lang.C)
	entries := Entries(ws)

	fp := one(t, entries, "fp")
	assert.Equal(t, Var, fp.Entity)
	assert.Equal(t, Def, fp.Role)
	assert.Equal(t, "<global>", fp.Scope)
}

func TestObjCInterface(t *testing.T) {
	ws := analyze(t, "@interface Foo : NSObject\n- (void)bar:(int)x;\n@end\n", lang.OC)
	entries := Entries(ws)

	foo := one(t, entries, "Foo")
	assert.Equal(t, Class, foo.Entity)
	assert.Equal(t, Def, foo.Role)

	bar := one(t, entries, "bar")
	assert.Equal(t, Function, bar.Entity)
	assert.Equal(t, Decl, bar.Role)
	assert.Contains(t, bar.Scope, "Foo")

	x := one(t, entries, "x")
	assert.Equal(t, Var, x.Entity)
	assert.Equal(t, Def, x.Role)
	assert.Contains(t, x.Scope, "bar()")
}

func TestEnumValues(t *testing.T) {
	ws := analyze(t, "enum color { RED, GREEN, BLUE };", lang.C)
	entries := Entries(ws)

	c := one(t, entries, "color")
	assert.Equal(t, Enum, c.Entity)
	assert.Equal(t, Def, c.Role)

	for _, name := range []string{"RED", "GREEN", "BLUE"} {
		v := one(t, entries, name)
		assert.Equal(t, EnumVal, v.Entity, name)
		assert.Equal(t, Def, v.Role, name)
	}
}

func TestFunctionTypedef(t *testing.T) {
	ws := analyze(t, "typedef int (*handler_t)(void *);", lang.C)
	entries := Entries(ws)

	h := one(t, entries, "handler_t")
	assert.Equal(t, FunctionType, h.Entity)
	assert.Equal(t, Def, h.Role)
}

func TestPunctuatorsNeverIndex(t *testing.T) {
	ws := analyze(t, "int a = b + c * d;", lang.C)
	for _, e := range Entries(ws) {
		assert.False(t, strings.ContainsAny(e.Identifier, "+*=;"),
			"punctuator %q leaked into the index", e.Identifier)
	}
}

func TestTypeReference(t *testing.T) {
	ws := analyze(t, "typedef int myint;\nmyint v;\n", lang.C)
	entries := Entries(ws)

	ms := find(entries, "myint")
	require.Len(t, ms, 2)
	assert.Equal(t, Type, ms[0].Entity)
	assert.Equal(t, Def, ms[0].Role)
	assert.Equal(t, Type, ms[1].Entity)
	assert.Equal(t, Ref, ms[1].Role)

	v := one(t, entries, "v")
	assert.Equal(t, Var, v.Entity)
	assert.Equal(t, Def, v.Role)
}

func TestDump(t *testing.T) {
	ws := analyze(t, "int x;", lang.C)
	var sb strings.Builder
	require.NoError(t, Dump(ws, &sb))
	out := sb.String()
	assert.Contains(t, out, "TYPE")
	assert.Contains(t, out, "WORD")
	assert.Contains(t, out, "<global>")
	assert.Contains(t, out, "VAR_DEF")
}
