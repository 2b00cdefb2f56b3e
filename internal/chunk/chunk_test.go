package chunk

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mk(k Kind, text string) *Chunk {
	return &Chunk{Kind: k, Text: text}
}

func TestListInsertDelete(t *testing.T) {
	var l List
	a := l.Append(mk(Word, "a"))
	c := l.Append(mk(Word, "c"))
	b := l.InsertAfter(mk(Word, "b"), a)

	assert.Equal(t, 3, l.Len())
	assert.Same(t, b, a.Next(NavAll))
	assert.Same(t, c, b.Next(NavAll))
	assert.Same(t, b, c.Prev(NavAll))

	x := l.InsertBefore(mk(Word, "x"), a)
	assert.Same(t, x, l.Head())
	assert.Same(t, a, x.Next(NavAll))

	l.Delete(b)
	assert.Equal(t, 3, l.Len())
	assert.Same(t, c, a.Next(NavAll))
	assert.Same(t, a, c.Prev(NavAll))
	assert.Same(t, c, l.Tail())
}

func TestSkipToMatch(t *testing.T) {
	var l List
	open := l.Append(&Chunk{Kind: ParenOpen, Text: "(", Level: 0})
	inner := l.Append(&Chunk{Kind: ParenOpen, Text: "(", Level: 1})
	l.Append(&Chunk{Kind: Word, Text: "x", Level: 2})
	innerClose := l.Append(&Chunk{Kind: ParenClose, Text: ")", Level: 1})
	outerClose := l.Append(&Chunk{Kind: ParenClose, Text: ")", Level: 0})

	assert.Same(t, outerClose, open.SkipToMatch(NavAll))
	assert.Same(t, innerClose, inner.SkipToMatch(NavAll))
	assert.Same(t, open, outerClose.SkipToMatchRev(NavAll))

	// A non-delimiter is returned unchanged; an unmatched open is nil.
	w := mk(Word, "w")
	assert.Same(t, w, w.SkipToMatch(NavAll))

	var l2 List
	lone := l2.Append(&Chunk{Kind: BraceOpen, Text: "{"})
	assert.Nil(t, lone.SkipToMatch(NavAll))
}

func TestPreprocNav(t *testing.T) {
	var l List
	a := l.Append(&Chunk{Kind: Word, Text: "a"})
	pp := l.Append(&Chunk{Kind: Macro, Text: "M", Flags: InPreproc})
	b := l.Append(&Chunk{Kind: Word, Text: "b"})

	// Outside a preprocessor, NavPreproc skips preproc chunks.
	assert.Same(t, b, a.Next(NavPreproc))
	// Inside one, it refuses to leave.
	assert.Nil(t, pp.Next(NavPreproc))
	require.Same(t, pp, a.Next(NavAll))
}

func TestNextNNL(t *testing.T) {
	var l List
	a := l.Append(mk(Word, "a"))
	l.Append(mk(Newline, "\n"))
	l.Append(mk(NlCont, "\\\n"))
	b := l.Append(mk(Word, "b"))

	assert.Same(t, b, a.NextNNL(NavAll))
	assert.Same(t, a, b.PrevNNL(NavAll))
}

func TestFlagsString(t *testing.T) {
	f := InPreproc | VarDef | Keyword
	assert.Equal(t, "IN_PREPROC,VAR_DEF,KEYWORD", f.String())
	assert.Equal(t, "", Flags(0).String())
}

func TestKindNames(t *testing.T) {
	assert.Equal(t, "FPAREN_OPEN", FParenOpen.String())
	assert.Equal(t, "FUNC_DEF", FuncDef.String())
	// Every delimiter close is exactly open+1.
	assert.Equal(t, ParenClose, ParenOpen+1)
	assert.Equal(t, SParenClose, SParenOpen+1)
	assert.Equal(t, FParenClose, FParenOpen+1)
	assert.Equal(t, TParenClose, TParenOpen+1)
	assert.Equal(t, AngleClose, AngleOpen+1)
	assert.Equal(t, SquareClose, SquareOpen+1)
	assert.Equal(t, BraceClose, BraceOpen+1)
	assert.Equal(t, VBraceClose, VBraceOpen+1)
}
