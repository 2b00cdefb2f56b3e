package combine

import (
	"log/slog"

	"github.com/ctoks/ctoks/internal/chunk"
)

func isOCBlock(pc *chunk.Chunk) bool {
	if pc == nil {
		return false
	}
	switch pc.ParentKind {
	case chunk.OCBlockType, chunk.OCBlockExpr, chunk.OCBlockArg, chunk.OCBlock:
		return true
	}
	if pc.Kind == chunk.OCBlockCaret {
		return true
	}
	if n := pc.Next(chunk.NavAll); n.Is(chunk.OCBlockCaret) {
		return true
	}
	if p := pc.Prev(chunk.NavAll); p.Is(chunk.OCBlockCaret) {
		return true
	}
	return false
}

// handleOCClass processes '@interface'/'@implementation'/'@protocol'
// through '@end': protocol lists, class colons, scope markers, and
// instance-variable brace blocks.
func handleOCClass(pc *chunk.Chunk) {
	hitScope := false
	doPL := 1

	if pc.ParentKind == chunk.OCProtocol {
		tmp := pc.NextNNL(chunk.NavAll)
		if tmp.IsSemicolon() {
			// Forward protocol declaration.
			tmp.ParentKind = pc.ParentKind
			return
		}
	}

	// The class name itself.
	if name := pc.NextNNL(chunk.NavAll); name.Is(chunk.Word) || name.Is(chunk.Type) {
		name.Kind = chunk.Type
		name.ParentKind = chunk.OCClass
		name.Flags |= chunk.Def
	}

	tmp := pc
	for {
		tmp = tmp.NextNNL(chunk.NavAll)
		if tmp == nil || tmp.Kind == chunk.OCEnd {
			break
		}
		if doPL == 1 && tmp.IsText("<") {
			tmp.Kind = chunk.AngleOpen
			tmp.ParentKind = chunk.OCProtoList
			doPL = 2
		}
		if doPL == 2 && tmp.IsText(">") {
			tmp.Kind = chunk.AngleClose
			tmp.ParentKind = chunk.OCProtoList
			doPL = 0
		}
		switch {
		case tmp.Kind == chunk.BraceOpen:
			doPL = 0
			tmp.ParentKind = chunk.OCClass
			tmp = tmp.NextKind(chunk.BraceClose, tmp.Level, chunk.NavAll)
			if tmp == nil {
				return
			}
			tmp.ParentKind = chunk.OCClass
		case tmp.Kind == chunk.Colon:
			if hitScope {
				tmp.Kind = chunk.OCColon
			} else {
				tmp.Kind = chunk.ClassColon
				tmp.ParentKind = chunk.OCClass
			}
		case tmp.IsText("-") || tmp.IsText("+"):
			doPL = 0
			// A method scope marker starts a line, or follows the
			// superclass/protocol-list section directly.
			prev := tmp.Prev(chunk.NavAll)
			if prev.IsNewline() || prev.Is(chunk.Word) || prev.Is(chunk.Type) ||
				prev.Is(chunk.BraceClose) || prev.Is(chunk.AngleClose) ||
				prev.IsSemicolon() {
				tmp.Kind = chunk.OCScope
				tmp.Flags |= chunk.StmtStart
				hitScope = true
			}
		}
		if doPL == 2 {
			tmp.ParentKind = chunk.OCProtoList
		}
	}

	if tmp.Is(chunk.BraceOpen) {
		tmp = tmp.NextKind(chunk.BraceClose, tmp.Level, chunk.NavAll)
		if tmp != nil {
			tmp.ParentKind = chunk.OCClass
		}
	}
}

// handleOCBlockLiteral marks '^ RTYPE ( ARGS ) { ... }' blocks.
func handleOCBlockLiteral(ws *chunk.Workspace, pc *chunk.Chunk) {
	prev := pc.PrevNNL(chunk.NavAll)
	next := pc.NextNNL(chunk.NavAll)
	if prev == nil || next == nil {
		return
	}

	var apo, bbo *chunk.Chunk

	for tmp := next; tmp != nil; tmp = tmp.NextNNL(chunk.NavAll) {
		if tmp.Level < pc.Level || tmp.Kind == chunk.Semicolon {
			break
		}
		if tmp.Level == pc.Level {
			if tmp.IsParenOpen() {
				apo = tmp
			}
			if tmp.Kind == chunk.BraceOpen {
				bbo = tmp
				break
			}
		}
	}

	bbc := bbo.SkipToMatch(chunk.NavAll)
	if bbo == nil || bbc == nil {
		return
	}

	pc.Kind = chunk.OCBlockCaret
	pc.ParentKind = chunk.OCBlockExpr

	// Optional argument list.
	var lbp *chunk.Chunk
	if apo != nil {
		if apc := apo.SkipToMatch(chunk.NavAll); apc.IsParenClose() {
			flagParens(ws, apo, chunk.OCAType, chunk.FParenOpen, chunk.OCBlockExpr, true)
			fixFcnDefParams(ws, apo)
		}
		lbp = apo.PrevNNL(chunk.NavAll)
	} else {
		lbp = bbo.PrevNNL(chunk.NavAll)
	}

	// Optional return type between '^' and the args/braces.
	for lbp != nil && lbp != pc {
		makeType(lbp)
		lbp.Flags |= chunk.OCRType
		lbp.ParentKind = chunk.OCBlockExpr
		lbp = lbp.PrevNNL(chunk.NavAll)
	}

	bbo.ParentKind = chunk.OCBlockExpr
	bbc.ParentKind = chunk.OCBlockExpr
}

// handleOCBlockType marks 'RTYPE (^LABEL)(ARGS)' block types, which
// read exactly like C function pointers with '^' for '*'.
func handleOCBlockType(ws *chunk.Workspace, pc *chunk.Chunk) {
	if pc == nil || pc.Flags&chunk.InTypedef != 0 {
		return
	}

	tpo := pc.PrevNNL(chunk.NavAll)
	if !tpo.IsParenOpen() {
		return
	}
	tpc := tpo.SkipToMatch(chunk.NavAll)
	if tpc == nil {
		return
	}
	nam := tpc.PrevNNL(chunk.NavAll)
	apo := tpc.NextNNL(chunk.NavAll)
	apc := apo.SkipToMatch(chunk.NavAll)
	if !apc.IsParenClose() {
		return
	}

	aft := apc.NextNNL(chunk.NavAll)
	var pt chunk.Kind
	switch {
	case nam.IsText("^"):
		nam.Kind = chunk.PtrType
		pt = chunk.FuncType
	case aft.Is(chunk.Assign) || aft.Is(chunk.Semicolon):
		nam.Kind = chunk.FuncVar
		pt = chunk.FuncVar
	default:
		nam.Kind = chunk.FuncType
		pt = chunk.FuncType
	}
	pc.Kind = chunk.PtrType
	pc.ParentKind = pt
	tpo.Kind = chunk.TParenOpen
	tpo.ParentKind = pt
	tpc.Kind = chunk.TParenClose
	tpc.ParentKind = pt
	apo.Kind = chunk.FParenOpen
	apo.ParentKind = chunk.FuncProto
	apc.Kind = chunk.FParenClose
	apc.ParentKind = chunk.FuncProto
	fixFcnDefParams(ws, apo)
	markFunctionReturnType(nam, tpo.PrevNNL(chunk.NavAll), pt)
}

// handleOCMdType marks a parenthesized type in a message declaration.
// Returns the chunk after the close paren.
func handleOCMdType(parenOpen *chunk.Chunk, ptype chunk.Kind, flags chunk.Flags) (*chunk.Chunk, bool) {
	if !parenOpen.IsParenOpen() {
		return parenOpen, false
	}
	parenClose := parenOpen.SkipToMatch(chunk.NavAll)
	if parenClose == nil {
		return parenOpen, false
	}

	parenOpen.ParentKind = ptype
	parenOpen.Flags |= flags
	parenClose.ParentKind = ptype
	parenClose.Flags |= flags

	for cur := parenOpen.NextNNL(chunk.NavAll); cur != nil && cur != parenClose; cur = cur.NextNNL(chunk.NavAll) {
		cur.Flags |= flags
		makeType(cur)
	}
	return parenClose.NextNNL(chunk.NavAll), true
}

// handleOCMessageDecl processes '-(TYPE) name[:(TYPE)arg ...]' specs
// and declarations.
func handleOCMessageDecl(pc *chunk.Chunk) {
	// Spec ends on ';', decl has a brace body.
	tmp := pc
	for {
		tmp = tmp.Next(chunk.NavAll)
		if tmp == nil {
			return
		}
		if tmp.Level < pc.Level {
			return
		}
		if tmp.Kind == chunk.Semicolon || tmp.Kind == chunk.BraceOpen {
			break
		}
	}
	pt := chunk.OCMsgDecl
	if tmp.Kind == chunk.Semicolon {
		pt = chunk.OCMsgSpec
	}

	pc.Kind = chunk.OCScope
	pc.ParentKind = pt

	// Return type.
	tmp, ok := handleOCMdType(pc.NextNNL(chunk.NavAll), pt, chunk.OCRType)
	if !ok {
		return
	}
	if !tmp.Is(chunk.Word) {
		return
	}

	label := tmp
	tmp.Kind = pt
	tmp.ParentKind = pt
	if pt == chunk.OCMsgDecl {
		tmp.Flags |= chunk.Def
	} else {
		tmp.Flags |= chunk.Proto
	}
	pc2 := tmp.NextNNL(chunk.NavAll)
	if pc2 == nil {
		return
	}

	// A colon introduces the argument list.
	if pc2.Kind == chunk.Colon || pc2.Kind == chunk.OCColon {
		pc2 = label
		for {
			if pc2.Is(chunk.Word) || pc2.Is(pt) {
				// Optional label before the colon.
				pc2.ParentKind = pt
				pc2 = pc2.NextNNL(chunk.NavAll)
			}
			if !pc2.IsText(":") {
				break
			}
			pc2.Kind = chunk.OCColon
			pc2.ParentKind = pt
			pc2 = pc2.NextNNL(chunk.NavAll)

			var did bool
			tmp, did = handleOCMdType(pc2, pt, chunk.OCAType)
			if !did {
				slog.Warn("combine.ocmsg.badtype",
					"line", pc2.OrigLine, "col", pc2.OrigCol)
				break
			}
			pc2 = tmp
			if pc2 == nil {
				return
			}
			// The argument name.
			pc2.Flags |= chunk.VarDef
			pc2 = pc2.NextNNL(chunk.NavAll)
			if pc2 == nil {
				return
			}
		}
	}

	if pc2.Is(chunk.BraceOpen) {
		pc2.ParentKind = pt
		if pc2 = pc2.SkipToMatch(chunk.NavAll); pc2 != nil {
			pc2.ParentKind = pt
		}
	} else if pc2.Is(chunk.Semicolon) {
		pc2.ParentKind = pt
	}
}

// handleOCMessageSend marks '[receiver selector: arg ...]' message
// sends: the receiver, the selector words, and named-parameter colons.
func handleOCMessageSend(ws *chunk.Workspace, os *chunk.Chunk) {
	cs := os.Next(chunk.NavAll)
	for cs != nil && cs.Level > os.Level {
		cs = cs.Next(chunk.NavAll)
	}
	if !cs.Is(chunk.SquareClose) {
		return
	}

	tmp := cs.NextNNL(chunk.NavAll)
	if tmp.IsSemicolon() {
		tmp.ParentKind = chunk.OCMsg
	}

	os.ParentKind = chunk.OCMsg
	os.Flags |= chunk.InOCMsg
	cs.ParentKind = chunk.OCMsg
	cs.Flags |= chunk.InOCMsg

	// The receiver: a word, another send, or a function call.
	tmp = os.NextNNL(chunk.NavAll)
	if tmp == nil {
		return
	}
	switch {
	case tmp.Kind == chunk.SquareOpen:
		tmp = tmp.SkipToMatch(chunk.NavAll)
	case tmp.Kind != chunk.Word && tmp.Kind != chunk.Type && tmp.Kind != chunk.This:
		slog.Debug("combine.ocmsg.receiver",
			"line", tmp.OrigLine, "text", tmp.Text)
		return
	default:
		tt := tmp.NextNNL(chunk.NavAll)
		if tt.IsParenOpen() {
			tmp.Kind = chunk.FuncCall
			tmp = setParenParent(tt, chunk.FuncCall).PrevNNL(chunk.NavAll)
		} else {
			tmp.Kind = chunk.OCMsgClass
		}
	}
	if tmp == nil {
		return
	}

	// '<protocol>' after the receiver.
	tmp = tmp.NextNNL(chunk.NavAll)
	if tmp.IsText("<") {
		ao := tmp
		ac := ao.NextText(">", ao.Level, chunk.NavAll)
		if ac != nil {
			ao.Kind = chunk.AngleOpen
			ao.ParentKind = chunk.OCProtoList
			ac.Kind = chunk.AngleClose
			ac.ParentKind = chunk.OCProtoList
			for t := ao.Next(chunk.NavAll); t != nil && t != ac; t = t.Next(chunk.NavAll) {
				t.Level++
				t.ParentKind = chunk.OCProtoList
			}
			tmp = ac.NextNNL(chunk.NavAll)
		}
	}

	if tmp != nil && (tmp.Kind == chunk.Word || tmp.Kind == chunk.Type) {
		tmp.Kind = chunk.OCMsgFunc
	}

	var prev *chunk.Chunk
	for t := os.Next(chunk.NavAll); t != nil && t != cs; t = t.Next(chunk.NavAll) {
		t.Flags |= chunk.InOCMsg
		if t.Level == cs.Level+1 && t.Kind == chunk.Colon {
			t.Kind = chunk.OCColon
			if prev != nil && (prev.Kind == chunk.Word || prev.Kind == chunk.Type) {
				// A named parameter, unless the name is an operand.
				pp := prev.Prev(chunk.NavAll)
				if pp != nil && pp.Kind != chunk.OCColon &&
					pp.Kind != chunk.Arith && pp.Kind != chunk.Caret {
					prev.Kind = chunk.OCMsgName
					t.ParentKind = chunk.OCMsgName
				}
			}
		}
		prev = t
	}
}
