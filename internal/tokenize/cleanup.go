package tokenize

import (
	"github.com/ctoks/ctoks/internal/chunk"
	"github.com/ctoks/ctoks/internal/lang"
)

// Cleanup resolves simple token sequences that need no level info:
// '[' ']' pairs collapse to TSQUARE, contextual keywords settle, '<>'
// pairs that cannot open a template demote to comparisons, and the
// Objective-C class markers get their parents.
func Cleanup(ws *chunk.Workspace) {
	collapseTSquare(ws)

	for pc := ws.Chunks.Head(); pc != nil; pc = pc.Next(chunk.NavAll) {
		next := pc.NextNNL(chunk.NavAll)

		switch pc.Kind {
		case chunk.Enum:
			// 'enum class' scopes the enum body name.
			if next.Is(chunk.Class) {
				next.Kind = chunk.EnumClass
			}

		case chunk.Extern:
			// 'extern "C"', 'extern (C)' and 'extern X {' stay EXTERN; a
			// plain storage class becomes a qualifier.
			if next != nil && !next.Is(chunk.String) && !next.Is(chunk.ParenOpen) {
				if nn := next.NextNNL(chunk.NavAll); !nn.Is(chunk.BraceOpen) {
					pc.Kind = chunk.Qualifier
				}
			}

		case chunk.Operator:
			// The spelling after 'operator' is the operator value, not
			// an arithmetic token.
			if next != nil && next.Kind != chunk.ParenOpen {
				wasSquare := next.Kind == chunk.SquareOpen
				next.Kind = chunk.OperatorVal
				next.ParentKind = chunk.Operator
				// 'operator []' arrives as two chunks.
				if nn := next.NextNNL(chunk.NavAll); wasSquare && nn.Is(chunk.SquareClose) {
					nn.Kind = chunk.OperatorVal
					nn.ParentKind = chunk.Operator
				}
			}

		case chunk.OCClass:
			// '@protocol Foo' re-parents; '@interface'/'@implementation'
			// keep OC_CLASS and the class walker does the rest.
			if ws.Lang.Has(lang.OC) && pc.Text == "@protocol" {
				pc.ParentKind = chunk.OCProtocol
			}

		case chunk.GetSet:
			// 'get'/'set' are only accessors directly inside a property
			// body; anywhere else they are plain identifiers.
			if !isGetSetContext(pc) {
				pc.Kind = chunk.Word
				pc.Flags &^= chunk.Keyword
			}

		case chunk.Word:
			// Embedded SQL: EXEC SQL [BEGIN|END] ... ;
			if pc.Text == "EXEC" && next.IsText("SQL") {
				markExecSQL(pc, next)
			}

		case chunk.AngleOpen:
			ok, splits := couldBeTemplate(ws, pc)
			if !ok {
				pc.Kind = chunk.Compare
			} else {
				// '>>' consumed as two template closes splits in place.
				for _, sp := range splits {
					splitShiftClose(ws, sp)
				}
			}

		case chunk.AngleClose:
			if pc.Flags&chunk.Punctuator != 0 && pc.ParentKind == chunk.None &&
				!hasOpenAngleBefore(pc) {
				pc.Kind = chunk.Compare
			}
		}
	}
}

// collapseTSquare joins adjacent '[' ']' into one TSQUARE chunk.
func collapseTSquare(ws *chunk.Workspace) {
	for pc := ws.Chunks.Head(); pc != nil; pc = pc.Next(chunk.NavAll) {
		if pc.Kind != chunk.SquareOpen {
			continue
		}
		next := pc.Next(chunk.NavAll)
		if next.Is(chunk.SquareClose) && next.OrigLine == pc.OrigLine &&
			next.OrigCol == pc.OrigColEnd {
			pc.Kind = chunk.TSquare
			pc.Text = "[]"
			pc.OrigColEnd = next.OrigColEnd
			ws.Chunks.Delete(next)
		}
	}
}

// isGetSetContext accepts get/set right after '{' or '}' or ';' inside
// a brace body, i.e. the only places a C# accessor can start.
func isGetSetContext(pc *chunk.Chunk) bool {
	prev := pc.PrevNNL(chunk.NavAll)
	if prev == nil {
		return false
	}
	switch prev.Kind {
	case chunk.BraceOpen, chunk.BraceClose, chunk.Semicolon, chunk.SquareClose:
		return true
	}
	return false
}

// markExecSQL classifies EXEC SQL statements; the word after SQL picks
// BEGIN/END, everything else is generic EXEC.
func markExecSQL(exec, sql *chunk.Chunk) {
	exec.Kind = chunk.SQLExec
	third := sql.NextNNL(chunk.NavAll)
	if third != nil {
		switch third.Text {
		case "BEGIN":
			exec.Kind = chunk.SQLBegin
		case "END":
			exec.Kind = chunk.SQLEnd
		}
	}
}

// couldBeTemplate decides whether a '<' may open a template argument
// list: the language must have templates/generics, the previous chunk
// must be able to name a template, and a matching '>' must appear
// before a ';' or an unbalanced close.
func couldBeTemplate(ws *chunk.Workspace, po *chunk.Chunk) (bool, []*chunk.Chunk) {
	if !ws.Lang.Has(lang.CPP | lang.CS | lang.D | lang.Java | lang.Vala | lang.OC | lang.ECMA) {
		return false, nil
	}
	prev := po.PrevNNL(chunk.NavAll)
	if prev == nil {
		return false, nil
	}
	switch prev.Kind {
	case chunk.Word, chunk.Type, chunk.OperatorVal, chunk.Template, chunk.TypeCast, chunk.Qualifier:
	default:
		return false, nil
	}

	var splits []*chunk.Chunk
	depth := 1
	for pc := po.Next(chunk.NavAll); pc != nil; pc = pc.Next(chunk.NavAll) {
		if !chunk.SamePreproc(po, pc) {
			break
		}
		switch pc.Kind {
		case chunk.AngleOpen:
			depth++
		case chunk.AngleClose:
			depth--
			if depth == 0 {
				return true, splits
			}
		case chunk.Arith:
			// '>>' closes two template levels in C++11 and later.
			if pc.Text == ">>" {
				depth -= 2
				splits = append(splits, pc)
				if depth <= 0 {
					return true, splits
				}
			}
		case chunk.Semicolon, chunk.BraceOpen, chunk.BraceClose,
			chunk.ParenClose, chunk.SquareClose:
			return false, nil
		case chunk.Bool, chunk.Question, chunk.Assign:
			// These never appear bare in a template argument list.
			return false, nil
		case chunk.String, chunk.StringMulti:
			return false, nil
		}
	}
	return false, nil
}

// splitShiftClose turns one '>>' chunk into two ANGLE_CLOSE chunks.
func splitShiftClose(ws *chunk.Workspace, pc *chunk.Chunk) {
	pc.Kind = chunk.AngleClose
	pc.Text = ">"
	end := pc.OrigColEnd
	pc.OrigColEnd = pc.OrigCol + 1

	nc := *pc
	nc.OrigCol = pc.OrigCol + 1
	nc.OrigColEnd = end
	ws.AddAfter(&nc, pc)
}

// hasOpenAngleBefore scans backward on the same statement for an
// unmatched ANGLE_OPEN.
func hasOpenAngleBefore(pc *chunk.Chunk) bool {
	depth := 0
	for p := pc.Prev(chunk.NavAll); p != nil; p = p.Prev(chunk.NavAll) {
		switch p.Kind {
		case chunk.AngleClose:
			depth++
		case chunk.AngleOpen:
			if depth == 0 {
				return true
			}
			depth--
		case chunk.Semicolon, chunk.BraceOpen, chunk.BraceClose:
			return false
		}
	}
	return false
}
