package combine

import (
	"log/slog"

	"github.com/ctoks/ctoks/internal/chunk"
	"github.com/ctoks/ctoks/internal/lang"
)

// stackMatch reports whether pc's text matches any collected name.
func stackMatch(cs []*chunk.Chunk, pc *chunk.Chunk) bool {
	for _, tmp := range cs {
		if pc.Text == tmp.Text {
			return true
		}
	}
	return false
}

// markCppConstructor marks a detected constructor/destructor: its
// parameters, the initializer list up to the body brace, and the
// DEF/PROTO flag on the function chunk itself.
func markCppConstructor(ws *chunk.Workspace, pc *chunk.Chunk) {
	tmp := pc.PrevNNL(chunk.NavAll)
	if tmp.Is(chunk.Inv) {
		tmp.Kind = chunk.Destructor
		pc.ParentKind = chunk.Destructor
	}

	parenOpen := skipTemplateNext(pc.NextNNL(chunk.NavAll))
	if !parenOpen.IsText("(") {
		slog.Warn("combine.ctor.noparen", "file", ws.Filename,
			"line", pc.OrigLine, "name", pc.Text)
		return
	}

	fixFcnDefParams(ws, parenOpen)
	flagParens(ws, parenOpen, chunk.InFcnCall, chunk.FParenOpen, chunk.FuncClass, false)

	// Scan to the brace open, flagging the initializer list.
	tmp = parenOpen
	hitColon := false
	for tmp != nil && tmp.Kind != chunk.BraceOpen && !tmp.IsSemicolon() {
		tmp.Flags |= chunk.InConstArgs
		tmp = tmp.NextNNL(chunk.NavAll)
		if tmp.IsText(":") && tmp.Level == parenOpen.Level {
			tmp.Kind = chunk.ConstrColon
			hitColon = true
		}
		if hitColon && (tmp.IsParenOpen() || tmp.IsOpeningBrace()) &&
			tmp.Level == parenOpen.Level {
			v := skipTemplatePrev(tmp.PrevNNL(chunk.NavAll))
			if v != nil && (v.Kind == chunk.Type || v.Kind == chunk.Word) {
				v.Kind = chunk.FuncCtorVar
				flagParens(ws, tmp, chunk.InFcnCall, chunk.FParenOpen, chunk.FuncCtorVar, false)
			}
		}
	}
	if tmp.Is(chunk.BraceOpen) {
		setParenParent(tmp, chunk.FuncClass)
		pc.Flags |= chunk.Def
	} else {
		pc.Flags |= chunk.Proto
	}
}

// markClassCtor scans a class/struct body for members whose name
// matches the class and marks them constructors; everything else in the
// body gets IN_CLASS, and the base-class list gets IN_CLASS_BASE.
func markClassCtor(ws *chunk.Workspace, start *chunk.Chunk) {
	pclass := start.NextNNL(chunk.NavPreproc)
	if pclass == nil || (pclass.Kind != chunk.Type && pclass.Kind != chunk.Word) {
		return
	}

	next := pclass.NextNNL(chunk.NavPreproc)
	for next != nil && (next.Kind == chunk.Type || next.Kind == chunk.Word ||
		next.Kind == chunk.DCMember) {
		pclass = next
		next = next.NextNNL(chunk.NavPreproc)
	}

	pc := pclass.NextNNL(chunk.NavPreproc)
	level := pclass.BraceLevel + 1

	if pc == nil {
		return
	}

	cs := []*chunk.Chunk{pclass}

	// D template classes: "class foo(T) { ... }".
	if ws.Lang.Has(lang.D) && next.Is(chunk.ParenOpen) {
		next.ParentKind = chunk.Template
		next = getDTemplateTypes(&cs, next)
		if next.Is(chunk.ParenClose) {
			next.ParentKind = chunk.Template
		}
	}

	// Find the open brace; a semicolon means a forward declaration.
	var flags chunk.Flags
	for pc != nil && pc.Kind != chunk.BraceOpen {
		if pc.IsText(":") {
			pc.Kind = chunk.ClassColon
			flags |= chunk.InClassBase
		}
		if pc.IsSemicolon() {
			pclass.Flags |= chunk.Proto
			return
		}
		pc.Flags |= flags
		pc = pc.NextNNL(chunk.NavPreproc)
	}
	if pc == nil {
		return
	}

	pclass.Flags |= chunk.Def

	setParenParent(pc, start.Kind)

	pc = pc.NextNNL(chunk.NavPreproc)
	for pc != nil {
		pc.Flags |= chunk.InClass

		if pc.BraceLevel > level || pc.Flags&chunk.InPreproc != 0 {
			pc = pc.NextNNL(chunk.NavAll)
			continue
		}

		if pc.Kind == chunk.BraceClose && pc.BraceLevel < level {
			pc = pc.NextNNL(chunk.NavPreproc)
			if pc.Is(chunk.Semicolon) {
				pc.ParentKind = start.Kind
			}
			return
		}

		next = pc.NextNNL(chunk.NavPreproc)
		if stackMatch(cs, pc) {
			if next != nil && next.IsText("(") {
				pc.Kind = chunk.FuncClass
				markCppConstructor(ws, pc)
			} else {
				makeType(pc)
			}
		}
		pc = next
	}
}

// markNamespace flags the namespace name (DEF, or REF for 'using
// namespace') and parents the body braces.
func markNamespace(ws *chunk.Workspace, pns *chunk.Chunk) {
	isUsing := false
	if pc := pns.PrevNNL(chunk.NavAll); pc.Is(chunk.Using) {
		isUsing = true
		pns.ParentKind = chunk.Using
	}

	pc := pns.NextNNL(chunk.NavAll)
	if pc.Is(chunk.Word) {
		if isUsing {
			pc.Flags |= chunk.Ref
		} else {
			pc.Flags |= chunk.Def
		}
	}
	for pc != nil {
		pc.ParentKind = chunk.Namespace
		if pc.Kind != chunk.BraceOpen {
			if pc.Kind == chunk.Semicolon {
				if isUsing {
					pc.ParentKind = chunk.Using
				}
				return
			}
			pc = pc.NextNNL(chunk.NavAll)
			continue
		}
		flagParens(ws, pc, chunk.InNamespace, chunk.None, chunk.Namespace, false)
		return
	}
}
