package combine

import (
	"github.com/ctoks/ctoks/internal/chunk"
)

// handleCSSquareStmt processes C# '[assembly: xxx]' / '[Attribute()]'
// square statements; the chunk after the close restarts a statement.
func handleCSSquareStmt(os *chunk.Chunk) {
	cs := os.Next(chunk.NavAll)
	for cs != nil && cs.Level > os.Level {
		cs = cs.Next(chunk.NavAll)
	}
	if !cs.Is(chunk.SquareClose) {
		return
	}

	os.ParentKind = chunk.CSSqStmt
	cs.ParentKind = chunk.CSSqStmt

	for tmp := os.Next(chunk.NavAll); tmp != nil && tmp != cs; tmp = tmp.Next(chunk.NavAll) {
		tmp.ParentKind = chunk.CSSqStmt
		if tmp.Kind == chunk.Colon {
			tmp.Kind = chunk.CSSqColon
		}
	}

	if tmp := cs.NextNNL(chunk.NavAll); tmp != nil {
		tmp.Flags |= chunk.StmtStart | chunk.ExprStart
	}
}

// handleCSProperty marks the brace body of a C# property and walks
// backward over the name and type.
func handleCSProperty(bro *chunk.Chunk) {
	setParenParent(bro, chunk.CSProperty)

	didProp := false
	pc := bro
	for {
		pc = pc.PrevNNL(chunk.NavAll)
		if pc == nil {
			break
		}
		if pc.Level == bro.Level {
			if !didProp && (pc.Kind == chunk.Word || pc.Kind == chunk.This) {
				pc.Kind = chunk.CSProperty
				didProp = true
			} else {
				pc.ParentKind = chunk.CSProperty
				makeType(pc)
			}
			if pc.Flags&chunk.StmtStart != 0 {
				break
			}
		}
	}
}
