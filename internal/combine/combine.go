package combine

import (
	"log/slog"

	"github.com/ctoks/ctoks/internal/chunk"
	"github.com/ctoks/ctoks/internal/lang"
)

// makeType coerces a chunk into its type-fragment reading:
// WORD -> TYPE, '*' -> PTR_TYPE, '&' -> BYREF.
func makeType(pc *chunk.Chunk) {
	if pc == nil {
		return
	}
	switch {
	case pc.Kind == chunk.Word:
		pc.Kind = chunk.Type
	case pc.IsStar():
		pc.Kind = chunk.PtrType
	case pc.IsAddr():
		pc.Kind = chunk.ByRef
	}
}

// flagParens flags everything between an open paren and its match,
// optionally retyping the pair and setting parents. Returns the chunk
// after the close paren, or nil when the paren is unmatched.
func flagParens(ws *chunk.Workspace, po *chunk.Chunk, flags chunk.Flags,
	openKind, parentKind chunk.Kind, parentAll bool) *chunk.Chunk {

	parenClose := po.SkipToMatch(chunk.NavPreproc)
	if parenClose == nil {
		slog.Warn("combine.unmatched", "file", ws.Filename,
			"line", po.OrigLine, "col", po.OrigCol, "text", po.Text)
		return nil
	}

	if po != parenClose {
		if flags != 0 || (parentAll && parentKind != chunk.None) {
			for pc := po.Next(chunk.NavPreproc); pc != nil && pc != parenClose; pc = pc.Next(chunk.NavPreproc) {
				pc.Flags |= flags
				if parentAll {
					pc.ParentKind = parentKind
				}
			}
		}
		if openKind != chunk.None {
			po.Kind = openKind
			parenClose.Kind = openKind + 1
		}
		if parentKind != chunk.None {
			po.ParentKind = parentKind
			parenClose.ParentKind = parentKind
		}
	}
	return parenClose.NextNNL(chunk.NavPreproc)
}

// setParenParent sets the parent on an open delimiter and its match and
// returns the chunk after the close.
func setParenParent(start *chunk.Chunk, parent chunk.Kind) *chunk.Chunk {
	end := start.SkipToMatch(chunk.NavPreproc)
	if end != nil {
		start.ParentKind = parent
		end.ParentKind = parent
	}
	return end.NextNNL(chunk.NavPreproc)
}

// chunkEndsType scans backward to see whether pc ends a type
// declaration: a run of words/types/stars reaching a statement boundary.
func chunkEndsType(pc *chunk.Chunk) bool {
	cnt := 0
	lastLval := false

	for ; pc != nil; pc = pc.PrevNNL(chunk.NavAll) {
		switch {
		case pc.Kind == chunk.Word || pc.Kind == chunk.Type ||
			pc.Kind == chunk.PtrType || pc.Kind == chunk.Struct ||
			pc.Kind == chunk.DCMember || pc.Kind == chunk.Qualifier:
			cnt++
			lastLval = pc.Flags&chunk.LValue != 0
			continue
		case pc.IsSemicolon() || pc.Kind == chunk.Typedef ||
			pc.Kind == chunk.BraceOpen || pc.Kind == chunk.BraceClose ||
			(pc.Kind == chunk.SParenOpen && lastLval):
			return cnt > 0
		}
		return false
	}
	// Start of file counts as a boundary.
	return true
}

// skipDCMember advances to the last word of an A::B::c chain.
func skipDCMember(start *chunk.Chunk) *chunk.Chunk {
	if start == nil {
		return nil
	}
	pc := start
	next := pc
	if pc.Kind != chunk.DCMember {
		next = pc.NextNNL(chunk.NavAll)
	}
	for next.Is(chunk.DCMember) {
		pc = next.NextNNL(chunk.NavAll)
		next = pc.NextNNL(chunk.NavAll)
	}
	return pc
}

// FixSymbols is the multi-sweep classifier entry point. It runs after
// BraceCleanup and before label combining.
func FixSymbols(ws *chunk.Workspace) {
	markDefineExpressions(ws)

	// Sweep 1: collapse wrapped names, mark lvalues.
	for pc := ws.Chunks.Head(); pc != nil; pc = pc.NextNNL(chunk.NavAll) {
		if pc.Kind == chunk.FuncWrap || pc.Kind == chunk.TypeWrap {
			handleWrap(ws, pc)
		}
		if pc.Kind == chunk.Assign {
			markLValue(pc)
		}
	}

	// Sweep 2: contextual rewrites on every chunk.
	var dummy chunk.Chunk
	pc := ws.Chunks.Head()
	if pc.IsNewline() {
		pc = pc.NextNNL(chunk.NavAll)
	}
	for pc != nil {
		prev := pc.PrevNNL(chunk.NavPreproc)
		if prev == nil {
			prev = &dummy
		}
		next := pc.NextNNL(chunk.NavPreproc)
		if next == nil {
			next = &dummy
		}
		doSymbolCheck(ws, prev, pc, next)
		pc = pc.NextNNL(chunk.NavAll)
	}

	// Sweep 4: variable definitions, now that function parens are known.
	pc = ws.Chunks.Head()
	squareLevel := -1
	for pc != nil {
		// No variable definitions inside [ ].
		if squareLevel < 0 {
			if pc.Kind == chunk.SquareOpen {
				squareLevel = pc.Level
			}
		} else if pc.Level <= squareLevel {
			squareLevel = -1
		}

		if squareLevel < 0 &&
			pc.Flags&chunk.StmtStart != 0 &&
			(pc.Kind == chunk.Qualifier || pc.Kind == chunk.Type || pc.Kind == chunk.Word) &&
			pc.ParentKind != chunk.Enum &&
			pc.Flags&chunk.InEnum == 0 {
			pc = fixVarDef(pc)
		} else {
			pc = pc.NextNNL(chunk.NavAll)
		}
	}
}

// markLValue walks backward from an assignment flagging the left side.
func markLValue(pc *chunk.Chunk) {
	if pc.Flags&chunk.InPreproc != 0 {
		return
	}
	for prev := pc.PrevNNL(chunk.NavAll); prev != nil; prev = prev.PrevNNL(chunk.NavAll) {
		if prev.Level < pc.Level ||
			prev.Kind == chunk.Assign || prev.Kind == chunk.Comma ||
			prev.Kind == chunk.Bool || prev.IsSemicolon() ||
			prev.IsText("(") || prev.IsText("{") || prev.IsText("[") ||
			prev.Flags&chunk.InPreproc != 0 {
			break
		}
		prev.Flags |= chunk.LValue
		if prev.Level == pc.Level && prev.IsText("&") {
			makeType(prev)
		}
	}
}

// markDefineExpressions marks expression starts inside macro bodies,
// where the normal statement machinery never ran.
func markDefineExpressions(ws *chunk.Workspace) {
	inDefine := false
	first := true
	prev := ws.Chunks.Head()

	for pc := ws.Chunks.Head(); pc != nil; pc = pc.Next(chunk.NavAll) {
		if !inDefine {
			if pc.Kind == chunk.PPDefine || pc.Kind == chunk.PPIf || pc.Kind == chunk.PPElse {
				inDefine = true
				first = true
			}
		} else {
			if pc.Flags&chunk.InPreproc == 0 || pc.Kind == chunk.Preproc {
				inDefine = false
			} else if pc.Kind != chunk.Macro &&
				(first || exprStartsAfter(prev.Kind) || prev.IsSemicolon()) {
				pc.Flags |= chunk.ExprStart
				first = false
			}
		}
		prev = pc
	}
}

func exprStartsAfter(k chunk.Kind) bool {
	switch k {
	case chunk.ParenOpen, chunk.FParenOpen, chunk.SParenOpen,
		chunk.BraceOpen, chunk.Arith, chunk.Caret, chunk.Assign,
		chunk.Compare, chunk.Return, chunk.Goto, chunk.Continue,
		chunk.Comma, chunk.Colon, chunk.Question:
		return true
	}
	return false
}

// doSymbolCheck applies the ordered contextual rewrite rules to pc.
// prev and next are never nil (a dummy stands in at the edges).
func doSymbolCheck(ws *chunk.Workspace, prev, pc, next *chunk.Chunk) {
	// Objective-C boxed literals: @(...) @{...} @[...].
	if pc.Kind == chunk.OCAt {
		switch next.Kind {
		case chunk.ParenOpen, chunk.BraceOpen, chunk.SquareOpen:
			flagParens(ws, next, chunk.OCBoxed, next.Kind, chunk.OCAt, false)
		default:
			next.ParentKind = chunk.OCAt
		}
	}

	// D 'const(T)' cast.
	if ws.Lang.Has(lang.D) && pc.Kind == chunk.Qualifier &&
		pc.IsText("const") && next.Kind == chunk.ParenOpen {
		pc.Kind = chunk.DCast
		setParenParent(next, pc.Kind)
	}

	if next.Kind == chunk.ParenOpen &&
		(pc.Kind == chunk.DCast || pc.Kind == chunk.Delegate || pc.Kind == chunk.Align) {
		tmp := setParenParent(next, pc.Kind)

		// D cast: the operand's leading operator is unary.
		if pc.Kind == chunk.DCast && tmp != nil {
			switch tmp.Kind {
			case chunk.Star:
				tmp.Kind = chunk.Deref
			case chunk.Amp:
				tmp.Kind = chunk.Addr
			case chunk.Minus:
				tmp.Kind = chunk.Neg
			case chunk.Plus:
				tmp.Kind = chunk.Pos
			}
		}

		// Delegate: prior words form the return type, the name after
		// the close paren is a variable.
		if pc.Kind == chunk.Delegate {
			if tmp != nil {
				tmp.ParentKind = chunk.Delegate
				if tmp.Level == tmp.BraceLevel {
					tmp.Flags |= chunk.VarDef
				}
			}
			for t := pc.PrevNNL(chunk.NavAll); t != nil; t = t.PrevNNL(chunk.NavAll) {
				if t.IsSemicolon() || t.Kind == chunk.BraceOpen || t.Kind == chunk.VBraceOpen {
					break
				}
				makeType(t)
			}
		}

		if pc.Kind == chunk.Align && tmp != nil {
			if tmp.Kind == chunk.BraceOpen {
				setParenParent(tmp, pc.Kind)
			} else if tmp.Kind == chunk.Colon {
				tmp.ParentKind = pc.Kind
			}
		}
	}

	// D invariant() blocks; bare 'invariant' is a qualifier.
	if pc.Kind == chunk.Invariant {
		if next.Kind == chunk.ParenOpen {
			next.ParentKind = pc.Kind
			for tmp := next.Next(chunk.NavAll); tmp != nil; tmp = tmp.Next(chunk.NavAll) {
				if tmp.Kind == chunk.ParenClose {
					tmp.ParentKind = pc.Kind
					break
				}
				makeType(tmp)
			}
		} else {
			pc.Kind = chunk.Qualifier
		}
	}

	if prev.Kind == chunk.BraceOpen &&
		(pc.Kind == chunk.GetSet || pc.Kind == chunk.GetSetEmpty) {
		flagParens(ws, prev, 0, chunk.None, chunk.GetSet, false)
	}

	// Objective-C messages, declarations, and block literals.
	if ws.Lang.Has(lang.OC) {
		if pc.Flags&chunk.StmtStart != 0 &&
			(pc.IsText("-") || pc.IsText("+")) && next.IsText("(") {
			handleOCMessageDecl(pc)
		}
		if pc.Flags&chunk.ExprStart != 0 {
			if pc.Kind == chunk.SquareOpen {
				handleOCMessageSend(ws, pc)
			}
			if pc.Kind == chunk.Caret {
				handleOCBlockLiteral(ws, pc)
			}
		}
	}

	// C# attributes and properties.
	if ws.Lang.Has(lang.CS) {
		if pc.Flags&chunk.ExprStart != 0 && pc.Kind == chunk.SquareOpen {
			handleCSSquareStmt(pc)
		}
		if next.Kind == chunk.BraceOpen && next.ParentKind == chunk.None &&
			(pc.Kind == chunk.SquareClose || pc.Kind == chunk.Word) {
			handleCSProperty(next)
		}
	}

	// C++11 lambdas: a '[' not preceded by an identifier.
	if ws.Lang.Has(lang.CPP) &&
		(pc.Kind == chunk.SquareOpen || pc.Kind == chunk.TSquare) &&
		(prev.Len() == 0 || !chunk.IsKw1(prev.Text[0])) {
		handleCppLambda(ws, pc)
	}

	// Array assignment bodies: x = [ ... ] / x = { ... }.
	if pc.Kind == chunk.Assign && next.Kind == chunk.SquareOpen {
		setParenParent(next, chunk.Assign)
	}

	if pc.Kind == chunk.Assert {
		handleJavaAssert(pc)
	}

	if pc.Kind == chunk.Annotation {
		if tmp := pc.NextNNL(chunk.NavAll); tmp.IsParenOpen() {
			setParenParent(tmp, chunk.Annotation)
		}
	}

	// A '[]' in C#, D, and Vala only follows a type.
	if pc.Kind == chunk.TSquare && ws.Lang.Has(lang.D|lang.CS|lang.Vala) {
		if prev.Kind == chunk.Word {
			prev.Kind = chunk.Type
		}
		if next.Kind == chunk.Word {
			next.Flags |= chunk.VarDef
		}
	}

	if pc.Kind == chunk.SQLExec || pc.Kind == chunk.SQLBegin || pc.Kind == chunk.SQLEnd {
		markSQLWords(pc)
	}

	if pc.Kind == chunk.ProtoWrap {
		handleProtoWrap(ws, pc)
	}

	if pc.Kind == chunk.Typedef {
		fixTypedef(ws, pc)
	}
	if pc.Kind == chunk.Enum || pc.Kind == chunk.Struct || pc.Kind == chunk.Union {
		fixEnumStructUnion(ws, pc)
	}

	if pc.Kind == chunk.Extern {
		if next.IsParenOpen() {
			// extern (C) ...  D-style linkage block
			tmp := flagParens(ws, next, 0, chunk.None, chunk.Extern, true)
			if tmp.Is(chunk.BraceOpen) {
				setParenParent(tmp, chunk.Extern)
			}
		} else {
			// extern "C" {...}
			next.ParentKind = chunk.Extern
			tmp := next.NextNNL(chunk.NavAll)
			if tmp.Is(chunk.BraceOpen) {
				setParenParent(tmp, chunk.Extern)
			}
		}
	}

	if pc.Kind == chunk.Template {
		if ws.Lang.Has(lang.D) {
			handleDTemplate(pc)
		} else {
			handleCppTemplate(pc)
		}
	}

	if pc.Kind == chunk.Word && next.Kind == chunk.AngleOpen &&
		next.ParentKind == chunk.Template {
		markTemplateFunc(ws, pc, next)
	}

	if pc.Kind == chunk.SquareClose && next.Kind == chunk.ParenOpen {
		flagParens(ws, next, 0, chunk.FParenOpen, chunk.None, false)
	}

	if pc.Kind == chunk.TypeCast {
		fixTypeCast(pc)
	}

	if pc.ParentKind == chunk.Assign &&
		(pc.Kind == chunk.BraceOpen || pc.Kind == chunk.SquareOpen) {
		// Everything in here is inside an array assignment.
		flagParens(ws, pc, chunk.InArrayAssign, pc.Kind, chunk.None, false)
	}

	if pc.Kind == chunk.DTemplate {
		setParenParent(next, pc.Kind)
	}

	// A word before an open paren is a function of some sort.
	if next.Kind == chunk.ParenOpen {
		tmp := next.NextNNL(chunk.NavPreproc)
		if ws.Lang.Has(lang.OC) && tmp.Is(chunk.Caret) {
			handleOCBlockType(ws, tmp)
		} else if pc.Kind == chunk.Word || pc.Kind == chunk.OperatorVal {
			pc.Kind = chunk.Function
		} else if pc.Kind == chunk.Type {
			// TYPE(...) is a functional cast unless the close paren is
			// followed by '(' (function type) or the parens are empty.
			tmp = next.NextKind(chunk.ParenClose, next.Level, chunk.NavAll)
			if tmp != nil {
				tmp = tmp.Next(chunk.NavAll)
			}
			if tmp.Is(chunk.ParenOpen) {
				pc.Kind = chunk.Function
			} else if pc.ParentKind == chunk.None && pc.Flags&chunk.InTypedef == 0 {
				tmp = next.NextNNL(chunk.NavPreproc)
				if tmp.Is(chunk.ParenClose) {
					pc.Kind = chunk.Function
				} else {
					pc.Kind = chunk.CppCast
					setParenParent(next, chunk.CppCast)
				}
			}
		} else if pc.Kind == chunk.Attribute {
			flagParens(ws, next, 0, chunk.FParenOpen, chunk.Attribute, false)
		}
	}

	if ws.Lang.Has(lang.Pawn) {
		if pc.Kind == chunk.Function && pc.BraceLevel > 0 {
			pc.Kind = chunk.FuncCall
		}
		if pc.Kind == chunk.State && next.Kind == chunk.ParenOpen {
			setParenParent(next, pc.Kind)
		}
	} else {
		if pc.Kind == chunk.Function &&
			(pc.ParentKind == chunk.OCBlockExpr || !isOCBlock(pc)) {
			markFunction(ws, pc)
		}
	}

	// C99 designated initializer members: { .x = 1, .y = 2 }.
	if pc.Kind == chunk.Member &&
		(prev.Kind == chunk.Comma || prev.Kind == chunk.BraceOpen) {
		pc.Kind = chunk.C99Member
		next.ParentKind = chunk.C99Member
	}

	// Function parens and trailing braces.
	if pc.Kind == chunk.FuncDef || pc.Kind == chunk.FuncCall ||
		pc.Kind == chunk.FuncCallUser || pc.Kind == chunk.FuncProto {
		tmp := next
		if tmp.Kind == chunk.SquareOpen {
			tmp = setParenParent(tmp, pc.Kind)
		} else if tmp.Kind == chunk.TSquare || tmp.ParentKind == chunk.Operator {
			tmp = tmp.NextNNL(chunk.NavPreproc)
		}
		if tmp != nil && tmp.IsParenOpen() {
			tmp = flagParens(ws, tmp, 0, chunk.FParenOpen, pc.Kind, false)
			if tmp != nil {
				if tmp.Kind == chunk.BraceOpen {
					if pc.Flags&chunk.InConstArgs == 0 {
						setParenParent(tmp, pc.Kind)
					}
				} else if tmp.IsSemicolon() && pc.Kind == chunk.FuncProto {
					tmp.ParentKind = pc.Kind
				}
			}
		}
	}

	// catch (...) parameters.
	if pc.Kind == chunk.Catch && next.Kind == chunk.SParenOpen {
		fixFcnDefParams(ws, next)
	}

	if pc.Kind == chunk.Throw && prev.Kind == chunk.FParenClose {
		pc.ParentKind = prev.ParentKind
		if next.Kind == chunk.ParenOpen {
			setParenParent(next, chunk.Throw)
		}
	}

	// "for_each_entry(xxx) { }" -- braces of a call-like macro.
	if pc.Kind == chunk.BraceOpen && prev.Kind == chunk.FParenClose &&
		(prev.ParentKind == chunk.FuncCall || prev.ParentKind == chunk.FuncCallUser) &&
		pc.Flags&chunk.InConstArgs == 0 {
		setParenParent(pc, chunk.FuncCall)
	}

	// ")(" outside special contexts means a function type.
	if next != nil &&
		pc.Flags&(chunk.InTypedef|chunk.InTemplate) == 0 &&
		pc.ParentKind != chunk.CppCast && pc.ParentKind != chunk.CCast &&
		pc.Flags&chunk.InPreproc == 0 &&
		!isOCBlock(pc) &&
		pc.ParentKind != chunk.OCMsgDecl && pc.ParentKind != chunk.OCMsgSpec &&
		pc.IsText(")") && next.IsText("(") {
		if ws.Lang.Has(lang.D) {
			flagParens(ws, next, 0, chunk.FParenOpen, chunk.FuncCall, false)
		} else {
			markFunctionType(ws, pc)
		}
	}

	if (pc.Kind == chunk.Class || pc.Kind == chunk.Struct) &&
		pc.Level == pc.BraceLevel {
		// C structs have no constructors to hunt for.
		if pc.Kind != chunk.Struct || !ws.Lang.Has(lang.C) || ws.Lang.Has(lang.CPP) {
			markClassCtor(ws, pc)
		}
	}

	if pc.Kind == chunk.OCClass {
		handleOCClass(pc)
	}

	if pc.Kind == chunk.Namespace {
		markNamespace(ws, pc)
	}

	// Cast detection for plain paren pairs (not in D).
	if !ws.Lang.Has(lang.D) {
		if pc.Kind == chunk.ParenOpen &&
			(pc.ParentKind == chunk.None || pc.ParentKind == chunk.OCMsg ||
				pc.ParentKind == chunk.OCBlockExpr) &&
			castOperandKind(next.Kind) &&
			prev.Kind != chunk.Sizeof && prev.ParentKind != chunk.Operator {
			fixCasts(pc)
		}
	}

	// Expression starts force the unary reading.
	if pc.Flags&chunk.ExprStart != 0 {
		switch pc.Kind {
		case chunk.Star:
			if prev.Kind == chunk.AngleClose {
				pc.Kind = chunk.PtrType
			} else {
				pc.Kind = chunk.Deref
			}
		case chunk.Minus:
			pc.Kind = chunk.Neg
		case chunk.Plus:
			pc.Kind = chunk.Pos
		case chunk.IncDecAfter:
			pc.Kind = chunk.IncDecBefore
		case chunk.Amp:
			pc.Kind = chunk.Addr
		case chunk.Caret:
			if ws.Lang.Has(lang.OC) {
				handleOCBlockLiteral(ws, pc)
			}
		}
	}

	// Variable definitions that start with struct/enum/union/class.
	if pc.Flags&chunk.InTypedef == 0 &&
		prev.ParentKind != chunk.CppCast &&
		prev.Flags&chunk.InFcnDef == 0 &&
		(pc.Kind == chunk.Struct || pc.Kind == chunk.Union ||
			pc.Kind == chunk.Class || pc.Kind == chunk.Enum) {
		tmp := skipDCMember(next)
		if tmp != nil && (tmp.Kind == chunk.Type || tmp.Kind == chunk.Word) {
			tmp.ParentKind = pc.Kind
			tmp.Kind = chunk.Type
			tmp = tmp.NextNNL(chunk.NavAll)
		}
		if tmp.Is(chunk.BraceOpen) {
			tmp = tmp.SkipToMatch(chunk.NavAll)
			tmp = tmp.NextNNL(chunk.NavAll)
		}
		if tmp != nil && (tmp.IsStar() || tmp.IsAddr() || tmp.Kind == chunk.Word) {
			markVariableDefinition(tmp, chunk.VarDef)
		}
	}

	if pc.Kind == chunk.OCProperty {
		tmp := pc.NextNNL(chunk.NavAll)
		if tmp.IsParenOpen() {
			tmp = tmp.SkipToMatch(chunk.NavAll).NextNNL(chunk.NavAll)
		}
		fixVarDef(tmp)
	}

	// Macro-function parens become call parens.
	if pc.Kind == chunk.MacroFunc {
		flagParens(ws, next, chunk.InFcnCall, chunk.FParenOpen, chunk.MacroFunc, false)
	}

	if pc.Kind == chunk.MacroOpen || pc.Kind == chunk.MacroElse || pc.Kind == chunk.MacroClose {
		if next.Kind == chunk.ParenOpen {
			flagParens(ws, next, 0, chunk.FParenOpen, pc.Kind, false)
		}
	}

	if pc.Kind == chunk.Delete && next.Kind == chunk.TSquare {
		next.ParentKind = chunk.Delete
	}

	// '*' : pointer type, dereference, or multiplication.
	if pc.Kind == chunk.Star {
		switch {
		case next.IsParenClose() || next.Kind == chunk.Comma:
			pc.Kind = chunk.PtrType
		case ws.Lang.Has(lang.OC) && next.Kind == chunk.Star:
			// Pointer-to-pointer in OC message declarations.
			pc.Kind = chunk.PtrType
			pc.ParentKind = prev.ParentKind
			next.Kind = chunk.PtrType
			next.ParentKind = pc.ParentKind
		case prev.Kind == chunk.Sizeof || prev.Kind == chunk.Delete:
			pc.Kind = chunk.Deref
		case (prev.Kind == chunk.Word && chunkEndsType(prev)) ||
			prev.Kind == chunk.DCMember || prev.Kind == chunk.PtrType:
			pc.Kind = chunk.PtrType
		case next.Kind == chunk.SquareOpen:
			pc.Kind = chunk.PtrType
		default:
			// Punctuators other than close parens imply a deref; a
			// close paren may end a cast or a macro call.
			if prev.Flags&chunk.Punctuator != 0 &&
				(!prev.IsParenClose() || prev.ParentKind == chunk.MacroFunc) &&
				prev.Kind != chunk.SquareClose &&
				prev.Kind != chunk.DCMember {
				pc.Kind = chunk.Deref
			} else {
				pc.Kind = chunk.Arith
			}
		}
	}

	// '&' : by-reference, address-of, or bitwise AND.
	if pc.Kind == chunk.Amp {
		switch {
		case prev.Kind == chunk.Delete:
			pc.Kind = chunk.Addr
		case prev.Kind == chunk.Type:
			pc.Kind = chunk.ByRef
		default:
			pc.Kind = chunk.Arith
			if prev.Kind == chunk.Word {
				if tmp := prev.PrevNNL(chunk.NavAll); tmp != nil &&
					(tmp.IsSemicolon() || tmp.Kind == chunk.BraceOpen ||
						tmp.Kind == chunk.Qualifier) {
					prev.Kind = chunk.Type
					pc.Kind = chunk.Addr
				}
			}
		}
	}

	if pc.Kind == chunk.Minus || pc.Kind == chunk.Plus {
		switch {
		case prev.Kind == chunk.Pos || prev.Kind == chunk.Neg:
			if pc.Kind == chunk.Minus {
				pc.Kind = chunk.Neg
			} else {
				pc.Kind = chunk.Pos
			}
		case prev.Kind == chunk.OCClass:
			if pc.Kind == chunk.Minus {
				pc.Kind = chunk.Neg
			} else {
				pc.Kind = chunk.Pos
			}
		default:
			pc.Kind = chunk.Arith
		}
	}
}

// castOperandKind lists the kinds that may open a cast's type list.
func castOperandKind(k chunk.Kind) bool {
	switch k {
	case chunk.Word, chunk.Type, chunk.Struct, chunk.Qualifier,
		chunk.Member, chunk.DCMember, chunk.Enum, chunk.Union:
		return true
	}
	return false
}

// markSQLWords tags identifiers in an EXEC SQL statement and bumps the
// level of a BEGIN...END block.
func markSQLWords(pc *chunk.Chunk) {
	var tmp *chunk.Chunk
	for tmp = pc.Next(chunk.NavAll); tmp != nil; tmp = tmp.Next(chunk.NavAll) {
		tmp.ParentKind = pc.Kind
		if tmp.Kind == chunk.Word {
			tmp.Kind = chunk.SQLWord
		}
		if tmp.Kind == chunk.Semicolon {
			break
		}
	}
	if pc.Kind != chunk.SQLBegin || tmp == nil || tmp.Kind != chunk.Semicolon {
		return
	}
	for tmp = tmp.Next(chunk.NavAll); tmp != nil && tmp.Kind != chunk.SQLEnd; tmp = tmp.Next(chunk.NavAll) {
		tmp.Level++
	}
}
