package tokenize

import (
	"github.com/ctoks/ctoks/internal/chunk"
	"github.com/ctoks/ctoks/internal/lang"
)

// Punctuator is one matched operator/delimiter spelling.
type Punctuator struct {
	Tag   string
	Kind  chunk.Kind
	Flags lang.Flags
}

// punctuators is ordered longest-first within each leading byte so the
// scanner's 4-byte window always takes the longest match.
var punctuators = []Punctuator{
	{">>>=", chunk.Assign, lang.D | lang.Java | lang.Pawn | lang.ECMA},
	{"!<>=", chunk.Compare, lang.D},

	{"<<=", chunk.Assign, lang.All},
	{">>=", chunk.Assign, lang.All},
	{">>>", chunk.Arith, lang.D | lang.Java | lang.Pawn | lang.ECMA},
	{"...", chunk.Ellipsis, lang.AllC},
	{"->*", chunk.Member, lang.CPP | lang.D},
	{"!<>", chunk.Compare, lang.D},
	{"!<=", chunk.Compare, lang.D},
	{"!>=", chunk.Compare, lang.D},
	{"<>=", chunk.Compare, lang.D},
	{"===", chunk.Compare, lang.ECMA},
	{"!==", chunk.Compare, lang.ECMA},

	{"<<", chunk.Arith, lang.All},
	{">>", chunk.Arith, lang.All},
	{"==", chunk.Compare, lang.All},
	{"!=", chunk.Compare, lang.All},
	{"<=", chunk.Compare, lang.All},
	{">=", chunk.Compare, lang.All},
	{"&&", chunk.Bool, lang.All},
	{"||", chunk.Bool, lang.All},
	{"++", chunk.IncDecAfter, lang.All},
	{"--", chunk.IncDecAfter, lang.All},
	{"+=", chunk.Assign, lang.All},
	{"-=", chunk.Assign, lang.All},
	{"*=", chunk.Assign, lang.All},
	{"/=", chunk.Assign, lang.All},
	{"%=", chunk.Assign, lang.All},
	{"&=", chunk.Assign, lang.All},
	{"|=", chunk.Assign, lang.All},
	{"^=", chunk.Assign, lang.All},
	{"~=", chunk.Assign, lang.D},
	{"->", chunk.Member, lang.AllC},
	{"::", chunk.DCMember, lang.CPP | lang.CS | lang.D | lang.Vala | lang.ECMA},
	{"##", chunk.Arith, lang.AllC | lang.PP},
	{"=>", chunk.Lambda, lang.CS | lang.D | lang.Vala | lang.ECMA},
	{"..", chunk.Ellipsis, lang.D | lang.Pawn},
	{"!<", chunk.Compare, lang.D},
	{"!>", chunk.Compare, lang.D},
	{"<>", chunk.Compare, lang.D},
	{"??", chunk.Bool, lang.CS},

	{"{", chunk.BraceOpen, lang.All},
	{"}", chunk.BraceClose, lang.All},
	{"(", chunk.ParenOpen, lang.All},
	{")", chunk.ParenClose, lang.All},
	{"[", chunk.SquareOpen, lang.All},
	{"]", chunk.SquareClose, lang.All},
	{"<", chunk.AngleOpen, lang.All},
	{">", chunk.AngleClose, lang.All},
	{";", chunk.Semicolon, lang.All},
	{":", chunk.Colon, lang.All},
	{",", chunk.Comma, lang.All},
	{"=", chunk.Assign, lang.All},
	{"?", chunk.Question, lang.All},
	{"!", chunk.Not, lang.All},
	{"~", chunk.Inv, lang.All},
	{"*", chunk.Star, lang.All},
	{"&", chunk.Amp, lang.All},
	{"+", chunk.Plus, lang.All},
	{"-", chunk.Minus, lang.All},
	{"/", chunk.Arith, lang.All},
	{"%", chunk.Arith, lang.All},
	{"|", chunk.Arith, lang.All},
	{"^", chunk.Caret, lang.All},
	{".", chunk.Member, lang.All},
	{"#", chunk.Pound, lang.All},
	{"@", chunk.OCAt, lang.OC},
	{"\\", chunk.Unknown, lang.Pawn},
}

// FindPunctuator returns the longest punctuator matching the head of the
// 1-4 byte window, filtered by language, or nil.
func FindPunctuator(window string, flags lang.Flags) *Punctuator {
	var best *Punctuator
	for i := range punctuators {
		p := &punctuators[i]
		if p.Flags&flags == 0 {
			continue
		}
		if len(p.Tag) > len(window) || window[:len(p.Tag)] != p.Tag {
			continue
		}
		if best == nil || len(p.Tag) > len(best.Tag) {
			best = p
		}
	}
	return best
}
