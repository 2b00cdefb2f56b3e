package tokenize

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ctoks/ctoks/internal/chunk"
	"github.com/ctoks/ctoks/internal/config"
	"github.com/ctoks/ctoks/internal/lang"
)

func scan(t *testing.T, src string, lf lang.Flags) *chunk.Workspace {
	t.Helper()
	ws := chunk.NewWorkspace("test.src", []byte(src), lf, config.Default())
	Run(ws)
	return ws
}

// kindsOf flattens the list to its chunk kinds, skipping NEWLINE chunks
// (NL_CONT line continuations are kept).
func kindsOf(ws *chunk.Workspace) []chunk.Kind {
	var out []chunk.Kind
	for pc := ws.Chunks.Head(); pc != nil; pc = pc.Next(chunk.NavAll) {
		if pc.Kind == chunk.Newline {
			continue
		}
		out = append(out, pc.Kind)
	}
	return out
}

func textsOf(ws *chunk.Workspace) []string {
	var out []string
	for pc := ws.Chunks.Head(); pc != nil; pc = pc.Next(chunk.NavAll) {
		if pc.IsNewline() {
			continue
		}
		out = append(out, pc.Text)
	}
	return out
}

func TestBasicTokens(t *testing.T) {
	ws := scan(t, "int x = 42;", lang.C)
	assert.Equal(t, []chunk.Kind{
		chunk.Type, chunk.Word, chunk.Assign, chunk.Number, chunk.Semicolon,
	}, kindsOf(ws))
	assert.Equal(t, []string{"int", "x", "=", "42", ";"}, textsOf(ws))
}

func TestPositions(t *testing.T) {
	ws := scan(t, "int foo(int a)", lang.C)
	var foo, a *chunk.Chunk
	for pc := ws.Chunks.Head(); pc != nil; pc = pc.Next(chunk.NavAll) {
		switch pc.Text {
		case "foo":
			foo = pc
		case "a":
			a = pc
		}
	}
	require.NotNil(t, foo)
	require.NotNil(t, a)
	assert.Equal(t, 1, foo.OrigLine)
	assert.Equal(t, 5, foo.OrigCol)
	assert.Equal(t, 8, foo.OrigColEnd)
	assert.Equal(t, 13, a.OrigCol)
}

func TestComments(t *testing.T) {
	ws := scan(t, "a // line\nb /* block\nstill */ c", lang.C)
	assert.Equal(t, []string{"a", "b", "c"}, textsOf(ws))
}

func TestDNestedComment(t *testing.T) {
	ws := scan(t, "a /+ outer /+ inner +/ tail +/ b", lang.D)
	assert.Equal(t, []string{"a", "b"}, textsOf(ws))
}

func TestNumbers(t *testing.T) {
	cases := map[string]chunk.Kind{
		"42":          chunk.Number,
		"0x1F":        chunk.Number,
		"0b1010_1111": chunk.Number,
		"0755":        chunk.Number,
		"1ULL":        chunk.Number,
		"1.5":         chunk.NumberFP,
		".5":          chunk.NumberFP,
		"1e10":        chunk.NumberFP,
		"1.5e+10f":    chunk.NumberFP,
		"0x1.8p3":     chunk.NumberFP,
		"3.14m":       chunk.NumberFP,
	}
	for src, want := range cases {
		ws := scan(t, src, lang.C)
		head := ws.Chunks.Head()
		require.NotNil(t, head, src)
		assert.Equal(t, want, head.Kind, src)
		assert.Equal(t, src, head.Text, src)
	}
}

func TestStrings(t *testing.T) {
	ws := scan(t, `char *s = "hi \"quoted\"";`, lang.C)
	kinds := kindsOf(ws)
	assert.Contains(t, kinds, chunk.String)
	assert.Contains(t, textsOf(ws), `"hi \"quoted\""`)
}

func TestWideString(t *testing.T) {
	ws := scan(t, `L"wide" L'c'`, lang.CPP)
	assert.Equal(t, []string{`L"wide"`, `L'c'`}, textsOf(ws))
}

func TestRawString(t *testing.T) {
	ws := scan(t, `R"tag(raw "stuff" )fake)tag"`, lang.CPP)
	texts := textsOf(ws)
	require.Len(t, texts, 1)
	assert.Equal(t, `R"tag(raw "stuff" )fake)tag"`, texts[0])
	assert.Equal(t, chunk.String, ws.Chunks.Head().Kind)
}

func TestRawStringPrefixes(t *testing.T) {
	for _, src := range []string{`u8R"(x)"`, `uR"(x)"`, `UR"(x)"`, `u8"x"`, `u"x"`, `U"x"`} {
		ws := scan(t, src, lang.CPP)
		texts := textsOf(ws)
		require.Len(t, texts, 1, src)
		assert.Equal(t, src, texts[0], src)
	}
}

func TestCSVerbatimString(t *testing.T) {
	ws := scan(t, `@"path\to ""x"" end" @if`, lang.CS)
	texts := textsOf(ws)
	require.Len(t, texts, 2)
	assert.Equal(t, `@"path\to ""x"" end"`, texts[0])
	// @-escaped identifiers never become keywords.
	assert.Equal(t, "@if", texts[1])
	assert.Equal(t, chunk.Word, ws.Chunks.Tail().Kind)
}

func TestPawnStrings(t *testing.T) {
	ws := scan(t, `\"packed" !"unpacked"`, lang.Pawn)
	texts := textsOf(ws)
	require.Len(t, texts, 2)
	assert.Equal(t, `\"packed"`, texts[0])
	assert.Equal(t, `!"unpacked"`, texts[1])
}

func TestDStrings(t *testing.T) {
	for _, src := range []string{"r\"wysiwyg\"", "x\"0A1B\"", "`backtick`"} {
		ws := scan(t, src, lang.D)
		texts := textsOf(ws)
		require.Len(t, texts, 1, src)
		assert.Equal(t, chunk.String, ws.Chunks.Head().Kind, src)
	}
}

func TestOCLiterals(t *testing.T) {
	ws := scan(t, `@"str" @'c' @42`, lang.OC)
	texts := textsOf(ws)
	require.Len(t, texts, 3)
	assert.Equal(t, `@"str"`, texts[0])
	assert.Equal(t, `@'c'`, texts[1])
	assert.Equal(t, `@42`, texts[2])
}

func TestFormatSpecifierSuffixBacksOut(t *testing.T) {
	ws := scan(t, `"%08"PRIx32 "str"s`, lang.CPP)
	texts := textsOf(ws)
	require.Len(t, texts, 3)
	assert.Equal(t, `"%08"`, texts[0])
	// PRI/SCN format macros stay separate identifiers...
	assert.Equal(t, `PRIx32`, texts[1])
	// ...while ordinary user-defined literal suffixes are consumed.
	assert.Equal(t, `"str"s`, texts[2])
}

func TestLineContinuation(t *testing.T) {
	ws := scan(t, "a \\\nb", lang.C)
	kinds := kindsOf(ws)
	assert.Equal(t, []chunk.Kind{chunk.Word, chunk.NlCont, chunk.Word}, kinds)
}

func TestPreprocessor(t *testing.T) {
	ws := scan(t, "#define FOO 1\n#define ADD(a,b) a+b\nint x;", lang.C)

	var foo, add *chunk.Chunk
	for pc := ws.Chunks.Head(); pc != nil; pc = pc.Next(chunk.NavAll) {
		switch pc.Text {
		case "FOO":
			foo = pc
		case "ADD":
			add = pc
		}
	}
	require.NotNil(t, foo)
	require.NotNil(t, add)
	assert.Equal(t, chunk.Macro, foo.Kind)
	assert.Equal(t, chunk.MacroFunc, add.Kind)
	assert.NotZero(t, foo.Flags&chunk.InPreproc)

	// The trailing declaration is outside the preprocessor.
	tail := ws.Chunks.Tail()
	assert.Zero(t, tail.Flags&chunk.InPreproc)
}

func TestIncludeString(t *testing.T) {
	ws := scan(t, "#include <stdio.h>\n", lang.C)
	assert.Contains(t, textsOf(ws), "<stdio.h>")
}

func TestKeywordResolution(t *testing.T) {
	ws := scan(t, "while (x) return;", lang.C)
	head := ws.Chunks.Head()
	assert.Equal(t, chunk.While, head.Kind)
	assert.NotZero(t, head.Flags&chunk.Keyword)
}

func TestKeywordsAreLanguageFiltered(t *testing.T) {
	// 'class' is not a C keyword.
	assert.Equal(t, chunk.Word, FindKeywordType("class", chunk.None, lang.C))
	assert.Equal(t, chunk.Class, FindKeywordType("class", chunk.None, lang.CPP))
	// 'define' only matches right after '#'.
	assert.Equal(t, chunk.Word, FindKeywordType("define", chunk.None, lang.C))
	assert.Equal(t, chunk.PPDefine, FindKeywordType("define", chunk.Preproc, lang.C))
}

func TestPunctuatorLongestMatch(t *testing.T) {
	ws := scan(t, "a <<= b >>= c; x <<y;", lang.C)
	texts := textsOf(ws)
	assert.Contains(t, texts, "<<=")
	assert.Contains(t, texts, ">>=")
	assert.Contains(t, texts, "<<")
}

func TestUnknownByte(t *testing.T) {
	ws := scan(t, "a ` b", lang.C)
	kinds := kindsOf(ws)
	assert.Equal(t, []chunk.Kind{chunk.Word, chunk.Unknown, chunk.Word}, kinds)
}

func TestUnterminatedStringRunsToEOF(t *testing.T) {
	ws := scan(t, `"never closed`, lang.C)
	texts := textsOf(ws)
	require.Len(t, texts, 1)
	assert.Equal(t, `"never closed`, texts[0])
}

func TestTSquareCollapse(t *testing.T) {
	ws := scan(t, "int a[] ;", lang.C)
	Cleanup(ws)
	assert.Contains(t, kindsOf(ws), chunk.TSquare)
}

func TestTemplateAngleDemotion(t *testing.T) {
	ws := scan(t, "if (a < b && c > d) {}", lang.CPP)
	Cleanup(ws)
	for pc := ws.Chunks.Head(); pc != nil; pc = pc.Next(chunk.NavAll) {
		assert.NotEqual(t, chunk.AngleOpen, pc.Kind, "lone '<' must not stay an angle")
	}

	ws = scan(t, "vector<int> v;", lang.CPP)
	Cleanup(ws)
	kinds := kindsOf(ws)
	assert.Contains(t, kinds, chunk.AngleOpen)
	assert.Contains(t, kinds, chunk.AngleClose)
}

func TestShiftSplitInsideTemplate(t *testing.T) {
	ws := scan(t, "vector<vector<int>> v;", lang.CPP)
	Cleanup(ws)
	closes := 0
	for pc := ws.Chunks.Head(); pc != nil; pc = pc.Next(chunk.NavAll) {
		if pc.Kind == chunk.AngleClose {
			closes++
		}
	}
	assert.Equal(t, 2, closes)
}

func TestRoundTripIdentifiers(t *testing.T) {
	src := "static int add(int a, int b) { return a + b; }"
	ws := scan(t, src, lang.C)
	want := []string{"static", "int", "add", "int", "a", "int", "b", "return", "a", "b"}
	var got []string
	for pc := ws.Chunks.Head(); pc != nil; pc = pc.Next(chunk.NavAll) {
		if pc.IsWord() {
			got = append(got, pc.Text)
		}
	}
	assert.Equal(t, want, got)
}
