package combine

import (
	"log/slog"

	"github.com/ctoks/ctoks/internal/chunk"
	"github.com/ctoks/ctoks/internal/lang"
)

// fixTypedef walks a typedef to its ';', flags everything IN_TYPEDEF,
// detects function typedefs by an intermediate "(...)(", and marks the
// rightmost type token as the alias name. Struct/union/enum aliases get
// the matching TYPEDEF_* flag for the indexer.
func fixTypedef(ws *chunk.Workspace, start *chunk.Chunk) {
	var theType *chunk.Chunk
	var lastOp *chunk.Chunk

	next := start
	for {
		next = next.NextNNL(chunk.NavPreproc)
		if next == nil || next.Level < start.Level {
			break
		}
		next.Flags |= chunk.InTypedef
		if start.Level != next.Level {
			continue
		}
		if next.IsSemicolon() {
			next.ParentKind = chunk.Typedef
			break
		}
		if next.Kind == chunk.Attribute {
			break
		}
		if ws.Lang.Has(lang.D) && next.Kind == chunk.Assign {
			next.ParentKind = chunk.Typedef
			break
		}
		makeType(next)
		if next.Kind == chunk.Type {
			theType = next
		}
		next.Flags &^= chunk.VarDef
		if next.IsText("(") {
			lastOp = next
		}
	}

	if lastOp != nil {
		// Function typedef: the inner parens hold the name.
		flagParens(ws, lastOp, 0, chunk.FParenOpen, chunk.Typedef, false)
		fixFcnDefParams(ws, lastOp)

		theType = lastOp.PrevNNL(chunk.NavPreproc)
		if theType.IsParenClose() {
			markFunctionType(ws, theType)
			theType = theType.PrevNNL(chunk.NavPreproc)
		} else {
			// "typedef <ret> func(params);"
			theType.Kind = chunk.FuncType
		}
		theType.ParentKind = chunk.Typedef
		return
	}

	next = start.NextNNL(chunk.NavPreproc)
	if next == nil {
		return
	}
	if next.Kind != chunk.Enum && next.Kind != chunk.Struct && next.Kind != chunk.Union {
		if theType != nil {
			theType.ParentKind = chunk.Typedef
			slog.Debug("combine.typedef", "name", theType.Text, "line", theType.OrigLine)
		}
		return
	}

	tag := next.Kind

	// The next chunk is either the tag name or the open brace.
	next = next.NextNNL(chunk.NavPreproc)
	if next == nil {
		return
	}
	if next.Kind == chunk.Type {
		next = next.NextNNL(chunk.NavPreproc)
	}
	if next.Is(chunk.BraceOpen) {
		next.ParentKind = tag
		if close := next.NextKind(chunk.BraceClose, next.Level, chunk.NavPreproc); close != nil {
			close.ParentKind = tag
		}
	}

	if theType != nil {
		theType.ParentKind = chunk.Typedef
		switch tag {
		case chunk.Struct:
			theType.Flags |= chunk.TypedefStruct
		case chunk.Union:
			theType.Flags |= chunk.TypedefUnion
		case chunk.Enum:
			theType.Flags |= chunk.TypedefEnum
		}
	}
}

// fixEnumStructUnion handles an enum/struct/union tag: names the body,
// flags DEF/PROTO/REF, and marks trailing declarator words as variables.
func fixEnumStructUnion(ws *chunk.Workspace, pc *chunk.Chunk) {
	flags := chunk.VarDef
	inFcnParen := pc.Flags & chunk.InFcnDef

	// Casts were already resolved.
	if pc.ParentKind == chunk.CCast {
		return
	}

	var prev *chunk.Chunk
	next := pc.NextNNL(chunk.NavAll)
	if next.Is(chunk.EnumClass) {
		next = next.NextNNL(chunk.NavAll)
	}
	if next.Is(chunk.Word) {
		makeType(next)
	}
	if next.Is(chunk.Type) {
		next.ParentKind = pc.Kind
		prev = next
		next = next.NextNNL(chunk.NavAll)

		if next == nil {
			return
		}
		if ws.Lang.Has(lang.Pawn) && next.Kind == chunk.ParenOpen {
			next = setParenParent(next, chunk.Enum)
		} else if pc.Kind == chunk.Enum && next.Kind == chunk.Colon {
			// enum TYPE : INT_TYPE {
			next = next.NextNNL(chunk.NavAll)
			if next != nil {
				makeType(next)
				next = next.NextNNL(chunk.NavAll)
			}
		}
	}

	if next.Is(chunk.BraceOpen) {
		bodyFlag := chunk.InStruct
		if pc.Kind == chunk.Enum {
			bodyFlag = chunk.InEnum
		}
		flagParens(ws, next, bodyFlag, chunk.None, chunk.None, false)

		if pc.Kind == chunk.Union || pc.Kind == chunk.Struct {
			markStructUnionBody(next)
		}

		next.ParentKind = pc.Kind
		next = next.NextKind(chunk.BraceClose, pc.Level, chunk.NavAll)
		flags |= chunk.VarInline
		if next != nil {
			next.ParentKind = pc.Kind
			next = next.NextNNL(chunk.NavAll)
		}
		if prev != nil {
			prev.Flags |= chunk.Def
		}
		prev = nil
	} else if prev != nil {
		if next.IsSemicolon() {
			prev.Flags |= chunk.Proto
		} else {
			prev.Flags |= chunk.Ref
		}
	}

	if next == nil || next.Kind == chunk.ParenClose {
		return
	}

	if !next.IsSemicolon() {
		if ws.Lang.Has(lang.Pawn) {
			// Pawn needs no semicolon after an enum.
			return
		}
		if ws.Lang.Has(lang.D) {
			// Neither does D; normalize with a virtual one.
			next = addVSemiAfter(ws, next.PrevNNL(chunk.NavAll))
		}
	}

	// Either a ';' or declarator words follow.
	for next != nil && !next.IsSemicolon() && next.Kind != chunk.Assign &&
		(inFcnParen^(next.Flags&chunk.InFcnDef)) == 0 {
		if next.Level == pc.Level {
			if next.Kind == chunk.Word {
				next.Flags |= flags
			}
			if next.Kind == chunk.Star {
				next.Kind = chunk.PtrType
			}
			// A comma in a function param list ends the walk.
			if (next.Kind == chunk.Comma || next.Kind == chunk.FParenClose) &&
				next.Flags&(chunk.InFcnDef|chunk.InFcnCall) != 0 {
				return
			}
		}
		next = next.NextNNL(chunk.NavAll)
	}

	if next != nil && prev == nil && next.Kind == chunk.Semicolon &&
		next.ParentKind == chunk.None {
		next.ParentKind = pc.Kind
	}
}

// markStructUnionBody walks the body braces; everything in there is
// either a variable definition or a method (handled elsewhere).
func markStructUnionBody(start *chunk.Chunk) {
	pc := start
	for pc != nil && pc.Level >= start.Level &&
		!(pc.Level == start.Level && pc.Kind == chunk.BraceClose) {
		if pc.Kind == chunk.BraceOpen || pc.Kind == chunk.BraceClose ||
			pc.Kind == chunk.Semicolon {
			pc = pc.NextNNL(chunk.NavAll)
			if pc == nil {
				break
			}
		}
		if pc.Kind == chunk.Align {
			pc = skipAlign(pc)
		} else {
			pc = fixVarDef(pc)
		}
	}
}

// skipAlign steps over "align(x)" or "align(x):".
func skipAlign(start *chunk.Chunk) *chunk.Chunk {
	pc := start
	if pc.Kind == chunk.Align {
		pc = pc.NextNNL(chunk.NavAll)
		if pc.Is(chunk.ParenOpen) {
			pc = pc.NextKind(chunk.ParenClose, pc.Level, chunk.NavAll)
			pc = pc.NextNNL(chunk.NavAll)
			if pc.Is(chunk.Colon) {
				pc = pc.NextNNL(chunk.NavAll)
			}
		}
	}
	return pc
}
