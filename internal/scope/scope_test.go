package scope

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ctoks/ctoks/internal/chunk"
	"github.com/ctoks/ctoks/internal/combine"
	"github.com/ctoks/ctoks/internal/config"
	"github.com/ctoks/ctoks/internal/lang"
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
	Assign(ws)
	return ws
}

func scopesOf(ws *chunk.Workspace, text string) []string {
	var out []string
	for pc := ws.Chunks.Head(); pc != nil; pc = pc.Next(chunk.NavAll) {
		if pc.Text == text {
			out = append(out, pc.Scope)
		}
	}
	return out
}

func TestScopeTotality(t *testing.T) {
	ws := analyze(t, "#define N 10\nint g;\nstatic int s;\nint f(int a) { return a+g; }", lang.C)
	for pc := ws.Chunks.Head(); pc != nil; pc = pc.Next(chunk.NavAll) {
		assert.NotEmpty(t, pc.Scope, "empty scope on %q (%s)", pc.Text, pc.Kind)
	}
}

func TestFunctionScopes(t *testing.T) {
	ws := analyze(t, "int foo(int a, int b) { return a+b; }", lang.C)

	assert.Equal(t, []string{"<global>"}, scopesOf(ws, "foo"))
	assert.Equal(t, []string{"<global>:foo()", "<global>:foo(){}"}, scopesOf(ws, "a"))
	assert.Equal(t, []string{"<global>:foo()", "<global>:foo(){}"}, scopesOf(ws, "b"))
}

func TestStructScopes(t *testing.T) {
	ws := analyze(t, "typedef struct S { int x; } S_t;", lang.C)

	assert.Equal(t, []string{"<global>"}, scopesOf(ws, "S"))
	assert.Equal(t, []string{"<global>:S"}, scopesOf(ws, "x"))
	assert.Equal(t, []string{"<global>"}, scopesOf(ws, "S_t"))
}

func TestNestedScopes(t *testing.T) {
	ws := analyze(t, "namespace N { class C { void m(); }; }", lang.CPP)

	assert.Equal(t, []string{"<global>"}, scopesOf(ws, "N"))
	assert.Equal(t, []string{"<global>:N"}, scopesOf(ws, "C"))
	assert.Equal(t, []string{"<global>:N:C"}, scopesOf(ws, "m"))
}

func TestQualifiedDefinitionPrefix(t *testing.T) {
	ws := analyze(t, "void Engine::draw(int n) { n++; }", lang.CPP)

	draw := scopesOf(ws, "draw")
	require.Len(t, draw, 1)
	assert.Equal(t, "<global>", draw[0])

	ns := scopesOf(ws, "n")
	require.Len(t, ns, 2)
	assert.Equal(t, "<global>:Engine:draw()", ns[0])
	assert.Equal(t, "<global>:Engine:draw(){}", ns[1])
}

func TestPreprocAndStaticScopes(t *testing.T) {
	ws := analyze(t, "#define MAX(a,b) ((a)>(b)?(a):(b))\nstatic int hidden;\n", lang.C)

	assert.Equal(t, []string{"<global>"}, scopesOf(ws, "MAX"))
	// Macro parameters live in the preprocessor scope.
	aScopes := scopesOf(ws, "a")
	require.NotEmpty(t, aScopes)
	for _, s := range aScopes {
		assert.Equal(t, "<preproc>", s)
	}
	assert.Equal(t, []string{"<local>"}, scopesOf(ws, "hidden"))
}
