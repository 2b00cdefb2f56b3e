package combine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ctoks/ctoks/internal/chunk"
	"github.com/ctoks/ctoks/internal/config"
	"github.com/ctoks/ctoks/internal/lang"
	"github.com/ctoks/ctoks/internal/tokenize"
)

// classify runs the full pre-scope chain on one source snippet.
func classify(t *testing.T, src string, lf lang.Flags) *chunk.Workspace {
	t.Helper()
	ws := chunk.NewWorkspace("test.src", []byte(src), lf, config.Default())
	tokenize.Run(ws)
	tokenize.Cleanup(ws)
	BraceCleanup(ws)
	FixSymbols(ws)
	CombineLabels(ws)
	return ws
}

func findText(ws *chunk.Workspace, text string) *chunk.Chunk {
	for pc := ws.Chunks.Head(); pc != nil; pc = pc.Next(chunk.NavAll) {
		if pc.Text == text {
			return pc
		}
	}
	return nil
}

func findAll(ws *chunk.Workspace, text string) []*chunk.Chunk {
	var out []*chunk.Chunk
	for pc := ws.Chunks.Head(); pc != nil; pc = pc.Next(chunk.NavAll) {
		if pc.Text == text {
			out = append(out, pc)
		}
	}
	return out
}

func TestLevels(t *testing.T) {
	ws := classify(t, "void f(void) { if (x) { y(); } }", lang.C)

	for pc := ws.Chunks.Head(); pc != nil; pc = pc.Next(chunk.NavAll) {
		assert.GreaterOrEqual(t, pc.Level, 0)
		assert.GreaterOrEqual(t, pc.BraceLevel, 0)
		if pc.Kind.IsOpen() {
			match := pc.SkipToMatch(chunk.NavAll)
			require.NotNil(t, match, "unmatched %s at %d:%d", pc.Kind, pc.OrigLine, pc.OrigCol)
			assert.Equal(t, pc.Level, match.Level)
			for in := pc.Next(chunk.NavAll); in != match; in = in.Next(chunk.NavAll) {
				assert.Greater(t, in.Level, pc.Level)
			}
		}
	}
}

func TestFunctionDef(t *testing.T) {
	ws := classify(t, "int foo(int a, int b) { return a+b; }", lang.C)

	foo := findText(ws, "foo")
	require.NotNil(t, foo)
	assert.Equal(t, chunk.FuncDef, foo.Kind)

	// The function paren pair carries the function kind as parent.
	open := foo.NextNNL(chunk.NavAll)
	assert.Equal(t, chunk.FParenOpen, open.Kind)
	assert.Equal(t, chunk.FuncDef, open.ParentKind)

	a := findAll(ws, "a")
	require.Len(t, a, 2)
	assert.NotZero(t, a[0].Flags&chunk.VarDef, "param is a var def")
	assert.Zero(t, a[1].Flags&chunk.VarDef, "body use is a plain ref")
	assert.NotZero(t, a[0].Flags&chunk.InFcnDef)
}

func TestFunctionProtoVsCall(t *testing.T) {
	ws := classify(t, "int foo(int);\nvoid bar(void) { foo(1); }", lang.C)

	foos := findAll(ws, "foo")
	require.Len(t, foos, 2)
	assert.Equal(t, chunk.FuncProto, foos[0].Kind)
	assert.Equal(t, chunk.FuncCall, foos[1].Kind)
	assert.Equal(t, chunk.FuncDef, findText(ws, "bar").Kind)
}

func TestCCast(t *testing.T) {
	ws := classify(t, "x = (uint8_t)y;", lang.C)
	open := findText(ws, "(")
	require.NotNil(t, open)
	assert.Equal(t, chunk.CCast, open.ParentKind)
	assert.Equal(t, chunk.Type, findText(ws, "uint8_t").Kind)
}

func TestCCastAllCaps(t *testing.T) {
	ws := classify(t, "a = (BYTE)-1;", lang.C)
	assert.Equal(t, chunk.CCast, findText(ws, "(").ParentKind)
}

func TestNotACast(t *testing.T) {
	// "(x)" followed by ';' is grouping, not a cast.
	ws := classify(t, "a = (x);", lang.C)
	assert.NotEqual(t, chunk.CCast, findText(ws, "(").ParentKind)
}

func TestCppCastVsFunction(t *testing.T) {
	ws := classify(t, "a = int(5.6);", lang.CPP)
	i := findText(ws, "int")
	assert.Equal(t, chunk.CppCast, i.Kind)

	ws = classify(t, "int(foo)(void);", lang.CPP)
	i = findText(ws, "int")
	assert.NotEqual(t, chunk.CppCast, i.Kind)
}

func TestTypedefStruct(t *testing.T) {
	ws := classify(t, "typedef struct S { int x; } S_t;", lang.C)

	s := findText(ws, "S")
	require.NotNil(t, s)
	assert.Equal(t, chunk.Type, s.Kind)
	assert.Equal(t, chunk.Struct, s.ParentKind)
	assert.NotZero(t, s.Flags&chunk.Def)

	st := findText(ws, "S_t")
	require.NotNil(t, st)
	assert.Equal(t, chunk.Type, st.Kind)
	assert.Equal(t, chunk.Typedef, st.ParentKind)
	assert.NotZero(t, st.Flags&chunk.TypedefStruct)

	x := findText(ws, "x")
	assert.NotZero(t, x.Flags&chunk.VarDef)
	assert.NotZero(t, x.Flags&chunk.InTypedef)
}

func TestFunctionTypedef(t *testing.T) {
	ws := classify(t, "typedef int (*handler_t)(void *);", lang.C)
	h := findText(ws, "handler_t")
	require.NotNil(t, h)
	assert.Equal(t, chunk.FuncType, h.Kind)
}

func TestFunctionPointerVar(t *testing.T) {
	ws := classify(t, "int (*fp)(int) = 0;", lang.C)
	fp := findText(ws, "fp")
	require.NotNil(t, fp)
	assert.Equal(t, chunk.FuncVar, fp.Kind)
	assert.NotZero(t, fp.Flags&chunk.VarDef)
}

func TestEnumBody(t *testing.T) {
	ws := classify(t, "enum color { RED, GREEN = 2, BLUE };", lang.C)

	c := findText(ws, "color")
	require.NotNil(t, c)
	assert.Equal(t, chunk.Type, c.Kind)
	assert.Equal(t, chunk.Enum, c.ParentKind)
	assert.NotZero(t, c.Flags&chunk.Def)

	for _, name := range []string{"RED", "GREEN", "BLUE"} {
		v := findText(ws, name)
		require.NotNil(t, v, name)
		assert.NotZero(t, v.Flags&chunk.InEnum, name)
	}
}

func TestStructVariable(t *testing.T) {
	ws := classify(t, "struct point { int x; int y; } origin;", lang.C)
	o := findText(ws, "origin")
	require.NotNil(t, o)
	assert.NotZero(t, o.Flags&chunk.VarDef)
}

func TestVarDefsAndDecls(t *testing.T) {
	ws := classify(t, "extern int outside;\nstatic long inside;\nint a = 1, b;", lang.C)

	out := findText(ws, "outside")
	assert.NotZero(t, out.Flags&chunk.VarDecl)
	assert.Zero(t, out.Flags&chunk.VarDef)

	in := findText(ws, "inside")
	assert.NotZero(t, in.Flags&chunk.VarDef)
	assert.NotZero(t, in.Flags&chunk.Static)

	assert.NotZero(t, findText(ws, "a").Flags&chunk.VarDef)
	assert.NotZero(t, findText(ws, "b").Flags&chunk.VarDef)
}

func TestStarDisambiguation(t *testing.T) {
	ws := classify(t, "void f(void) { int *p; x = a * b; y = *p; }", lang.C)

	stars := findAll(ws, "*")
	require.Len(t, stars, 3)
	assert.Equal(t, chunk.PtrType, stars[0].Kind)
	assert.Equal(t, chunk.Arith, stars[1].Kind)
	assert.Equal(t, chunk.Deref, stars[2].Kind)
}

func TestAmpDisambiguation(t *testing.T) {
	ws := classify(t, "void f(void) { q = a & b; g(&v); }", lang.C)
	amps := findAll(ws, "&")
	require.Len(t, amps, 2)
	assert.Equal(t, chunk.Arith, amps[0].Kind)
	assert.Equal(t, chunk.Addr, amps[1].Kind)
}

func TestNamespaceAndClass(t *testing.T) {
	ws := classify(t, "namespace N { class C { void m(); }; }", lang.CPP)

	n := findText(ws, "N")
	require.NotNil(t, n)
	assert.Equal(t, chunk.Namespace, n.ParentKind)
	assert.NotZero(t, n.Flags&chunk.Def)

	c := findText(ws, "C")
	require.NotNil(t, c)
	assert.Equal(t, chunk.Type, c.Kind)
	assert.Equal(t, chunk.Class, c.ParentKind)
	assert.NotZero(t, c.Flags&chunk.Def)

	m := findText(ws, "m")
	require.NotNil(t, m)
	assert.Equal(t, chunk.FuncProto, m.Kind)
	assert.NotZero(t, m.Flags&chunk.InClass)
}

func TestConstructor(t *testing.T) {
	ws := classify(t, "class Foo { Foo(int x); ~Foo(); };", lang.CPP)

	foos := findAll(ws, "Foo")
	require.Len(t, foos, 3)
	assert.Equal(t, chunk.FuncClass, foos[1].Kind, "constructor")
	assert.Equal(t, chunk.FuncClass, foos[2].Kind, "destructor")
	assert.Equal(t, chunk.Destructor, foos[2].ParentKind)

	tilde := findText(ws, "~")
	require.NotNil(t, tilde)
	assert.Equal(t, chunk.Destructor, tilde.Kind)
}

func TestCppTemplate(t *testing.T) {
	ws := classify(t, "template <class T> class Box { T item; };", lang.CPP)

	tpl := findText(ws, "template")
	open := tpl.NextNNL(chunk.NavAll)
	assert.Equal(t, chunk.AngleOpen, open.Kind)
	assert.Equal(t, chunk.Template, open.ParentKind)

	// 'class' inside the angles becomes a type keyword.
	classes := findAll(ws, "class")
	require.Len(t, classes, 2)
	assert.Equal(t, chunk.Type, classes[0].Kind)
	assert.Equal(t, chunk.Class, classes[1].Kind)
}

func TestDTemplate(t *testing.T) {
	ws := classify(t, "template Pair(T1, T2) { T1 first; T2 second; }", lang.D)

	name := findText(ws, "Pair")
	require.NotNil(t, name)
	assert.Equal(t, chunk.Type, name.Kind)
	assert.Equal(t, chunk.Template, name.ParentKind)

	// Type names from the parameter list are retyped in the body.
	firsts := findAll(ws, "T1")
	require.Len(t, firsts, 2)
	assert.Equal(t, chunk.Type, firsts[1].Kind)
}

func TestDConstCast(t *testing.T) {
	ws := classify(t, "x = const(T)*p;", lang.D)
	c := findText(ws, "const")
	require.NotNil(t, c)
	assert.Equal(t, chunk.DCast, c.Kind)
	star := findText(ws, "*")
	assert.Equal(t, chunk.Deref, star.Kind)
}

func TestLambda(t *testing.T) {
	ws := classify(t, "auto f = [](int x) { return x; };", lang.CPP)

	opens := findAll(ws, "[")
	require.NotEmpty(t, opens)
	assert.Equal(t, chunk.Lambda, opens[0].ParentKind)

	x := findAll(ws, "x")
	require.Len(t, x, 2)
	assert.NotZero(t, x[0].Flags&chunk.VarDef, "lambda param")
}

func TestLabels(t *testing.T) {
	ws := classify(t, "void f(void) {\nq = a ? b : c;\nswitch (n) { case 1: break; default: break; }\nout: return;\n}", lang.C)

	colons := findAll(ws, ":")
	require.Len(t, colons, 4)
	assert.Equal(t, chunk.CondColon, colons[0].Kind)
	assert.Equal(t, chunk.CaseColon, colons[1].Kind)
	assert.Equal(t, chunk.CaseColon, colons[2].Kind)
	assert.Equal(t, chunk.LabelColon, colons[3].Kind)
}

func TestBitfieldColon(t *testing.T) {
	ws := classify(t, "struct flags { unsigned a : 1; unsigned b : 2; };", lang.C)
	colons := findAll(ws, ":")
	require.Len(t, colons, 2)
	assert.Equal(t, chunk.BitColon, colons[0].Kind)
	assert.Equal(t, chunk.BitColon, colons[1].Kind)
}

func TestOCMessageSend(t *testing.T) {
	ws := classify(t, "void f(void) { [obj doThing: x withArg: y]; }", lang.OC)

	obj := findText(ws, "obj")
	require.NotNil(t, obj)
	assert.Equal(t, chunk.OCMsgClass, obj.Kind)
	assert.Equal(t, chunk.OCMsgFunc, findText(ws, "doThing").Kind)
	assert.Equal(t, chunk.OCMsgName, findText(ws, "withArg").Kind)

	open := findText(ws, "[")
	assert.Equal(t, chunk.OCMsg, open.ParentKind)
}

func TestOCInterface(t *testing.T) {
	ws := classify(t, "@interface Foo : NSObject\n- (void)bar:(int)x;\n@end", lang.OC)

	foo := findText(ws, "Foo")
	require.NotNil(t, foo)
	assert.Equal(t, chunk.Type, foo.Kind)
	assert.Equal(t, chunk.OCClass, foo.ParentKind)
	assert.NotZero(t, foo.Flags&chunk.Def)

	bar := findText(ws, "bar")
	require.NotNil(t, bar)
	assert.Equal(t, chunk.OCMsgSpec, bar.Kind)
	assert.NotZero(t, bar.Flags&chunk.Proto)

	x := findText(ws, "x")
	require.NotNil(t, x)
	assert.NotZero(t, x.Flags&chunk.VarDef)
}

func TestOCBlockVar(t *testing.T) {
	ws := classify(t, "void (^blk)(int) = 0;", lang.OC)
	blk := findText(ws, "blk")
	require.NotNil(t, blk)
	assert.Equal(t, chunk.FuncVar, blk.Kind)
}

func TestCSProperty(t *testing.T) {
	ws := classify(t, "class P { int Count { get; set; } }", lang.CS)
	count := findText(ws, "Count")
	require.NotNil(t, count)
	assert.Equal(t, chunk.CSProperty, count.Kind)
}

func TestCSSquareStmt(t *testing.T) {
	ws := classify(t, "[assembly: AssemblyTitle]\nclass C { }", lang.CS)
	open := findText(ws, "[")
	require.NotNil(t, open)
	assert.Equal(t, chunk.CSSqStmt, open.ParentKind)
	colon := findText(ws, ":")
	assert.Equal(t, chunk.CSSqColon, colon.Kind)
}

func TestPawnVirtualSemicolons(t *testing.T) {
	ws := classify(t, "new x = 1\nnew y = 2\n", lang.Pawn)
	count := 0
	for pc := ws.Chunks.Head(); pc != nil; pc = pc.Next(chunk.NavAll) {
		if pc.Kind == chunk.VSemicolon {
			count++
		}
	}
	assert.Equal(t, 2, count)
}

func TestWrapCollapse(t *testing.T) {
	ws := classify(t, "x = 1;", lang.C)
	// Build a FUNC_WRAP sequence by hand; the sweep collapses it.
	w := ws.Chunks.Append(&chunk.Chunk{Kind: chunk.FuncWrap, Text: "WRAP", OrigLine: 2, OrigCol: 1})
	ws.Chunks.Append(&chunk.Chunk{Kind: chunk.ParenOpen, Text: "(", OrigLine: 2})
	ws.Chunks.Append(&chunk.Chunk{Kind: chunk.Word, Text: "name", OrigLine: 2})
	ws.Chunks.Append(&chunk.Chunk{Kind: chunk.ParenClose, Text: ")", OrigLine: 2})
	before := ws.Chunks.Len()

	FixSymbols(ws)
	assert.Equal(t, chunk.Function, w.Kind)
	assert.Equal(t, "WRAP(name)", w.Text)
	assert.Equal(t, before-3, ws.Chunks.Len())
}

func TestClassifierConverges(t *testing.T) {
	src := "typedef struct S { int x; } S_t;\nint foo(int a) { return a; }\n"
	ws := classify(t, src, lang.C)

	var kinds []chunk.Kind
	for pc := ws.Chunks.Head(); pc != nil; pc = pc.Next(chunk.NavAll) {
		kinds = append(kinds, pc.Kind)
	}

	FixSymbols(ws)
	CombineLabels(ws)

	i := 0
	for pc := ws.Chunks.Head(); pc != nil; pc = pc.Next(chunk.NavAll) {
		require.Less(t, i, len(kinds))
		assert.Equal(t, kinds[i], pc.Kind, "kind changed on re-run at index %d (%q)", i, pc.Text)
		i++
	}
	assert.Equal(t, len(kinds), i)
}
