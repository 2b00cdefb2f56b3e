package combine

import (
	"strings"

	"github.com/ctoks/ctoks/internal/chunk"
)

func isUcase(s string) bool {
	return s != "" && s == strings.ToUpper(s)
}

// fixCasts decides whether a plain paren pair is a C cast. The content
// may only be type-ish tokens with at most one bare word; ambiguous
// single-word casts fall back to the ALL-CAPS and '_t' conventions and
// the class of the token after the close paren.
func fixCasts(start *chunk.Chunk) {
	prev := start.PrevNNL(chunk.NavAll)
	if prev.Is(chunk.PPDefined) {
		return
	}

	var last *chunk.Chunk
	count := 0
	wordCount := 0
	doubtful := false

	pc := start.NextNNL(chunk.NavAll)
	first := pc
	for pc != nil && (pc.IsTypeish() || pc.Kind == chunk.Word ||
		pc.Kind == chunk.Star || pc.Kind == chunk.Amp) {
		if pc.Kind == chunk.Word {
			wordCount++
		} else if pc.Kind == chunk.DCMember {
			wordCount--
		}
		last = pc
		pc = pc.NextNNL(chunk.NavAll)
		count++
	}

	if pc == nil || pc.Kind != chunk.ParenClose || prev.Is(chunk.OCClass) {
		return
	}
	if wordCount > 1 {
		return
	}
	parenClose := pc

	switch {
	case last != nil && (last.Kind == chunk.Star || last.Kind == chunk.PtrType ||
		last.Kind == chunk.Type):
		// Trailing star or known type: a cast for sure.
	case count == 1:
		// "(word)" - guess from naming conventions.
		txt := last.Text
		if len(txt) > 3 && strings.HasSuffix(txt, "_t") {
			// likely a type
		} else if isUcase(txt) {
			// likely a type
		} else {
			doubtful = true
		}

		pc = parenClose.NextNNL(chunk.NavAll)
		after := pc
		for {
			after = after.NextNNL(chunk.NavAll)
			if after == nil || after.Kind != chunk.ParenOpen {
				break
			}
		}
		if after == nil {
			return
		}

		nope := false
		switch {
		case pc.IsStar() || pc.IsAddr():
			// '*' and '&' are ambiguous: literals after them refute.
			if after.Kind == chunk.Number || after.Kind == chunk.NumberFP ||
				after.Kind == chunk.String || doubtful {
				nope = true
			}
		case pc.Is(chunk.Minus):
			// (UINT8)-1 is fine, (foo)-"str" is not.
			if after.Kind == chunk.String || doubtful {
				nope = true
			}
		case pc.Is(chunk.Plus):
			// (UINT8)+1 needs a number.
			if (after.Kind != chunk.Number && after.Kind != chunk.NumberFP) || doubtful {
				nope = true
			}
		default:
			switch pc.Kind {
			case chunk.Number, chunk.NumberFP, chunk.Word, chunk.Type,
				chunk.ParenOpen, chunk.String, chunk.Sizeof,
				chunk.FuncCall, chunk.FuncCallUser, chunk.Function,
				chunk.BraceOpen:
				// plausible operand
			default:
				return
			}
		}
		if nope {
			return
		}
	default:
		return
	}

	// A 'cast' followed by ';', ',' or ')' isn't one.
	pc = parenClose.NextNNL(chunk.NavAll)
	if pc.IsSemicolon() || pc.Is(chunk.Comma) || pc.IsParenClose() {
		return
	}

	start.ParentKind = chunk.CCast
	parenClose.ParentKind = chunk.CCast
	for pc = first; pc != nil && pc != parenClose; pc = pc.NextNNL(chunk.NavAll) {
		pc.ParentKind = chunk.CCast
		makeType(pc)
	}

	// The cast operand starts an expression.
	pc = parenClose.NextNNL(chunk.NavAll)
	if pc != nil {
		pc.Flags |= chunk.ExprStart
		if pc.IsOpeningBrace() {
			setParenParent(pc, start.ParentKind)
		}
	}
}

// fixTypeCast marks the angle contents of dynamic_cast<...>(...) as a
// type and parents the call parens.
func fixTypeCast(start *chunk.Chunk) {
	pc := start.NextNNL(chunk.NavAll)
	if !pc.Is(chunk.AngleOpen) {
		return
	}
	for {
		pc = pc.NextNNL(chunk.NavAll)
		if pc == nil || pc.Level < start.Level {
			return
		}
		if pc.Level == start.Level && pc.Kind == chunk.AngleClose {
			pc = pc.NextNNL(chunk.NavAll)
			if pc.IsText("(") {
				setParenParent(pc, chunk.TypeCast)
			}
			return
		}
		makeType(pc)
	}
}
