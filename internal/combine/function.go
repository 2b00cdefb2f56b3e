package combine

import (
	"log/slog"

	"github.com/ctoks/ctoks/internal/chunk"
	"github.com/ctoks/ctoks/internal/lang"
)

// skipTemplateNext steps over <...> given the ANGLE_OPEN.
func skipTemplateNext(angOpen *chunk.Chunk) *chunk.Chunk {
	if angOpen.Is(chunk.AngleOpen) {
		pc := angOpen.NextKind(chunk.AngleClose, angOpen.Level, chunk.NavAll)
		return pc.NextNNL(chunk.NavAll)
	}
	return angOpen
}

// skipTemplatePrev steps back over <...> given the ANGLE_CLOSE.
func skipTemplatePrev(angClose *chunk.Chunk) *chunk.Chunk {
	if angClose.Is(chunk.AngleClose) {
		pc := angClose.PrevKind(chunk.AngleOpen, angClose.Level, chunk.NavAll)
		return pc.PrevNNL(chunk.NavAll)
	}
	return angClose
}

// skipAttributeNext steps over __attribute__((...)).
func skipAttributeNext(attr *chunk.Chunk) *chunk.Chunk {
	if attr.Is(chunk.Attribute) {
		pc := attr.Next(chunk.NavAll)
		if pc.Is(chunk.FParenOpen) {
			pc = attr.NextKind(chunk.FParenClose, attr.Level, chunk.NavAll)
			return pc.NextNNL(chunk.NavAll)
		}
		return pc
	}
	return attr
}

// skipAttributePrev steps back over __attribute__((...)) given the
// closing FPAREN with an ATTRIBUTE parent.
func skipAttributePrev(fpClose *chunk.Chunk) *chunk.Chunk {
	if fpClose != nil && fpClose.Kind == chunk.FParenClose &&
		fpClose.ParentKind == chunk.Attribute {
		pc := fpClose.PrevKind(chunk.Attribute, fpClose.Level, chunk.NavAll)
		return pc.PrevNNL(chunk.NavAll)
	}
	return fpClose
}

// markFunctionReturnType walks backward from pc marking the return type
// fragments of theType's function, adjusting DEF/DECL for extern and
// STATIC for static.
func markFunctionReturnType(theType, pc *chunk.Chunk, parent chunk.Kind) {
	for pc != nil {
		if (!pc.IsTypeish() && pc.Kind != chunk.Operator &&
			pc.Kind != chunk.Word && pc.Kind != chunk.Addr) ||
			pc.Flags&chunk.InPreproc != 0 {
			break
		}
		if pc.Kind == chunk.Qualifier {
			if pc.IsText("extern") {
				if theType.Flags&chunk.VarDef != 0 {
					theType.Flags &^= chunk.VarDef
					theType.Flags |= chunk.VarDecl
				}
			} else if pc.IsText("static") {
				theType.Flags |= chunk.Static
			}
		}
		if parent != chunk.None {
			pc.ParentKind = parent
		}
		makeType(pc)
		pc = pc.PrevNNL(chunk.NavAll)
	}
}

// markFunctionType handles "T (*name)(args)" and the OC caret form,
// starting from the close paren of the name parens. Returns whether a
// function type was processed; failures re-flag the following parens as
// a call.
func markFunctionType(ws *chunk.Workspace, pc *chunk.Chunk) bool {
	starCount := 0
	wordCount := 0
	var ptrCnk, varCnk *chunk.Chunk
	anon := false

	// The name: a single word, or '^' for an anonymous OC block type.
	varCnk = pc.PrevNNL(chunk.NavAll)
	if !varCnk.IsWord() {
		if ws.Lang.Has(lang.OC) && varCnk.IsText("^") &&
			varCnk.PrevNNL(chunk.NavAll).IsParenOpen() {
			anon = true
		} else {
			return fnTypeBail(ws, pc)
		}
	}

	apo := pc.NextNNL(chunk.NavAll)
	apc := apo.SkipToMatch(chunk.NavAll)
	if !apo.IsParenOpen() || apc == nil {
		return fnTypeBail(ws, pc)
	}
	aft := apc.NextNNL(chunk.NavAll)
	var pt chunk.Kind
	switch {
	case aft.Is(chunk.BraceOpen):
		pt = chunk.FuncDef
	case aft.Is(chunk.Semicolon) || aft.Is(chunk.Assign):
		pt = chunk.FuncProto
	default:
		return fnTypeBail(ws, pc)
	}
	ptp := chunk.FuncVar
	if pc.Flags&chunk.InTypedef != 0 {
		ptp = chunk.FuncType
	}

	// At most one star and one word may precede the close paren.
	tmp := pc
	for {
		tmp = tmp.PrevNNL(chunk.NavAll)
		if tmp == nil {
			break
		}
		if tmp.IsStar() || tmp.Is(chunk.PtrType) || tmp.Is(chunk.Caret) {
			starCount++
			ptrCnk = tmp
		} else if tmp.IsWord() || tmp.Kind == chunk.Word || tmp.Kind == chunk.Type {
			wordCount++
		} else if tmp.Kind == chunk.DCMember {
			wordCount = 0
		} else if tmp.IsText("(") {
			break
		} else {
			return fnTypeBail(ws, pc)
		}
	}

	if starCount > 1 || wordCount > 1 || starCount+wordCount == 0 {
		return fnTypeBail(ws, pc)
	}
	if tmp == nil || !chunkEndsType(tmp.PrevNNL(chunk.NavAll)) {
		return fnTypeBail(ws, pc)
	}

	if ptrCnk != nil {
		ptrCnk.Kind = chunk.PtrType
	}
	if !anon {
		if pc.Flags&chunk.InTypedef != 0 {
			varCnk.Kind = chunk.FuncType
		} else {
			varCnk.Kind = chunk.FuncVar
			varCnk.Flags |= chunk.VarDef
		}
	}
	pc.Kind = chunk.TParenClose
	pc.ParentKind = ptp

	apo.Kind = chunk.FParenOpen
	apo.ParentKind = pt
	apc.Kind = chunk.FParenClose
	apc.ParentKind = pt
	fixFcnDefParams(ws, apo)

	if aft.IsSemicolon() {
		if aft.Flags&chunk.InTypedef != 0 {
			aft.ParentKind = chunk.Typedef
		} else {
			aft.ParentKind = chunk.FuncVar
		}
	} else if aft.Is(chunk.BraceOpen) {
		flagParens(ws, aft, 0, chunk.None, pt, false)
	}

	// Step back to the inner open paren and mark the return type.
	tmp = pc
	for {
		tmp = tmp.PrevNNL(chunk.NavAll)
		if tmp == nil {
			break
		}
		if len(tmp.Text) > 0 && tmp.Text[0] == '(' {
			if pc.Flags&chunk.InTypedef == 0 {
				tmp.Flags |= chunk.VarDef
			}
			tmp.Kind = chunk.TParenOpen
			tmp.ParentKind = ptp

			tmp = tmp.PrevNNL(chunk.NavAll)
			if tmp != nil {
				switch tmp.Kind {
				case chunk.Function, chunk.FuncCall, chunk.FuncCallUser,
					chunk.FuncDef, chunk.FuncProto:
					tmp.Kind = chunk.Type
					tmp.Flags &^= chunk.VarDef
				}
			}
			markFunctionReturnType(varCnk, tmp, ptp)
			break
		}
	}
	return true
}

func fnTypeBail(ws *chunk.Workspace, pc *chunk.Chunk) bool {
	tmp := pc.NextNNL(chunk.NavAll)
	if tmp.IsParenOpen() {
		flagParens(ws, tmp, 0, chunk.FParenOpen, chunk.FuncCall, false)
	}
	return false
}

// markVariableStack resolves one parameter from the collected words:
// the last word is the name, the rest are its type.
func markVariableStack(cs *[]*chunk.Chunk) {
	stack := *cs
	if len(stack) == 0 {
		return
	}
	varName := stack[len(stack)-1]
	stack = stack[:len(stack)-1]

	// "A::b" keeps the qualified chain intact for the next round.
	if p := varName.Prev(chunk.NavAll); p.Is(chunk.DCMember) {
		*cs = append(stack, varName)
		return
	}

	wordCnt := 0
	for _, wordType := range stack {
		if wordType.Kind == chunk.Word || wordType.Kind == chunk.Type {
			wordType.Kind = chunk.Type
			wordType.Flags |= chunk.VarType
		}
		wordCnt++
	}

	if varName.Kind == chunk.Word {
		if wordCnt > 0 {
			varName.Flags |= chunk.VarDef
		} else {
			varName.Kind = chunk.Type
			varName.Flags |= chunk.VarType
		}
	}
	*cs = stack[:0]
}

// fixFcnDefParams marks parameter names and types between the matched
// parens. A start that isn't an open paren advances to one first; a
// missing paren is a no-op.
func fixFcnDefParams(ws *chunk.Workspace, start *chunk.Chunk) {
	for start != nil && !start.IsParenOpen() {
		start = start.NextNNL(chunk.NavAll)
	}
	if start == nil {
		return
	}

	var cs []*chunk.Chunk
	level := start.Level + 1

	pc := start
	for {
		pc = pc.NextNNL(chunk.NavAll)
		if pc == nil || pc.Level < level {
			break
		}
		if pc.Level > level {
			continue
		}
		switch {
		case pc.IsStar():
			pc.Kind = chunk.PtrType
			cs = append(cs, pc)
		case pc.Kind == chunk.Amp || (ws.Lang.Has(lang.CPP) && pc.IsText("&&")):
			pc.Kind = chunk.ByRef
			cs = append(cs, pc)
		case pc.Kind == chunk.TypeWrap:
			cs = append(cs, pc)
		case pc.Kind == chunk.Word || pc.Kind == chunk.Type:
			cs = append(cs, pc)
		case pc.Kind == chunk.Comma || pc.Kind == chunk.Assign:
			markVariableStack(&cs)
			if pc.Kind == chunk.Assign {
				// Default value assignment.
				pc.ParentKind = chunk.FuncProto
			}
		}
	}
	markVariableStack(&cs)
}

// skipToNextStatement advances to the chunk that ends the statement.
func skipToNextStatement(pc *chunk.Chunk) *chunk.Chunk {
	for pc != nil && !pc.IsSemicolon() &&
		pc.Kind != chunk.BraceOpen && pc.Kind != chunk.BraceClose {
		pc = pc.NextNNL(chunk.NavAll)
	}
	return pc
}

// skipExpression skips to the comma or semicolon at the same level.
func skipExpression(start *chunk.Chunk) *chunk.Chunk {
	pc := start
	for pc != nil && pc.Level >= start.Level {
		if pc.Level == start.Level &&
			(pc.IsSemicolon() || pc.Kind == chunk.Comma) {
			return pc
		}
		pc = pc.NextNNL(chunk.NavAll)
	}
	return pc
}

// fixVarDef inspects a possible variable definition at a statement
// start: a prefix of words/types/stars followed by the name.
func fixVarDef(start *chunk.Chunk) *chunk.Chunk {
	pc := start
	var cs []*chunk.Chunk
	flags := chunk.VarDef

	for pc != nil && (pc.Kind == chunk.Type || pc.Kind == chunk.Word ||
		pc.Kind == chunk.Qualifier || pc.Kind == chunk.DCMember ||
		pc.Kind == chunk.Member || pc.IsAddr() || pc.IsStar()) {
		cs = append(cs, pc)

		if pc.Kind == chunk.Qualifier {
			if pc.IsText("extern") {
				flags &^= chunk.VarDef
				flags |= chunk.VarDecl
			} else if pc.IsText("static") {
				flags |= chunk.Static
			}
		}

		pc = pc.NextNNL(chunk.NavAll)
		pc = skipTemplateNext(pc)
		pc = skipAttributeNext(pc)
	}
	end := pc

	if end == nil {
		return nil
	}

	// Function defs are handled elsewhere.
	if len(cs) <= 1 || end.Kind == chunk.FuncDef || end.Kind == chunk.FuncProto ||
		end.Kind == chunk.FuncClass || end.Kind == chunk.Operator {
		return skipToNextStatement(end)
	}

	refIdx := len(cs) - 1

	// "char *Engine::name" - walk the :: chain back to the type part.
	if len(cs) >= 3 && (cs[len(cs)-2].Kind == chunk.Member ||
		cs[len(cs)-2].Kind == chunk.DCMember) {
		idx := len(cs) - 2
		for idx > 0 {
			tmp1 := cs[idx]
			if tmp1.Kind != chunk.DCMember && tmp1.Kind != chunk.Member {
				break
			}
			idx--
			tmp2 := cs[idx]
			if tmp2.Kind != chunk.Word && tmp2.Kind != chunk.Type {
				break
			}
			if tmp1.Kind == chunk.DCMember {
				makeType(tmp2)
			}
			idx--
		}
		refIdx = idx + 1
	}

	// No type part found.
	if refIdx <= 0 {
		return skipToNextStatement(end)
	}

	for _, tmp := range cs[:len(cs)-1] {
		makeType(tmp)
		tmp.Flags |= chunk.VarType
	}

	markVariableDefinition(cs[len(cs)-1], flags)
	if end.Kind == chunk.Comma {
		return end.NextNNL(chunk.NavAll)
	}
	return skipToNextStatement(end)
}

// markVariableDefinition flags the declarator names from start to the
// terminating semicolon, skipping initializers and array bounds.
func markVariableDefinition(start *chunk.Chunk, flags chunk.Flags) *chunk.Chunk {
	if start == nil {
		return nil
	}
	pc := start
	for pc != nil && !pc.IsSemicolon() && pc.Level == start.Level {
		switch {
		case pc.Kind == chunk.Word || pc.Kind == chunk.FuncCtorVar:
			if pc.Flags&chunk.InEnum == 0 {
				pc.Flags |= flags
			}
		case pc.IsStar():
			pc.Kind = chunk.PtrType
		case pc.IsAddr():
			pc.Kind = chunk.ByRef
		case pc.Kind == chunk.SquareOpen || pc.Kind == chunk.Assign:
			pc = skipExpression(pc)
			continue
		}
		pc = pc.NextNNL(chunk.NavAll)
	}
	return pc
}

// canBeFullParam reports whether the chunks in [start, end) could be a
// formal parameter: qualifiers/aggregates/ellipsis say yes outright,
// two words with a type say yes, a trailing '*' or '&' says yes.
func canBeFullParam(ws *chunk.Workspace, start, end *chunk.Chunk) bool {
	wordCnt := 0
	typeCount := 0

	var pc *chunk.Chunk
	for pc = start; pc != nil && pc != end; pc = pc.NextNNL(chunk.NavPreproc) {
		switch pc.Kind {
		case chunk.Qualifier, chunk.Struct, chunk.Enum, chunk.Union, chunk.Typename:
			return true
		case chunk.Word, chunk.Type:
			wordCnt++
			if pc.Kind == chunk.Type {
				typeCount++
			}
		case chunk.Member, chunk.DCMember:
			if wordCnt > 0 {
				wordCnt--
			}
		case chunk.Assign:
			// Default values end the check.
			goto done
		case chunk.AngleOpen:
			return true
		case chunk.Ellipsis:
			return true
		case chunk.TSquare:
			// ignore
		default:
			switch {
			case pc != start && (pc.IsStar() || pc.IsAddr()):
				// fine in a parameter
			case wordCnt == 0 && pc.Kind == chunk.ParenOpen:
				// Old-school proto param "(type)" or "(type)[]".
				tmp1 := pc.SkipToMatch(chunk.NavPreproc)
				if tmp1 == nil {
					return false
				}
				tmp2 := tmp1.NextNNL(chunk.NavPreproc)
				if !tmp2.Is(chunk.Comma) && !tmp2.IsParenClose() {
					return false
				}
				pc = tmp1
				wordCnt = 1
				typeCount = 1
			case (wordCnt == 1 || wordCnt == typeCount) && pc.Kind == chunk.ParenOpen:
				// Func proto param: 'void (*name)' or 'void (*name)(params)'.
				tmp1 := pc.NextNNL(chunk.NavPreproc)
				tmp2 := tmp1.NextNNL(chunk.NavPreproc)
				tmp3 := tmp2.NextNNL(chunk.NavPreproc)
				if !tmp3.IsText(")") || !tmp1.IsText("*") || tmp2 == nil || tmp2.Kind != chunk.Word {
					return false
				}
				tmp1 = tmp3.NextNNL(chunk.NavPreproc)
				if tmp1.IsText("(") {
					tmp3 = tmp1.SkipToMatch(chunk.NavPreproc)
				}
				pc = tmp3
				wordCnt = 1
				typeCount = 1
			case wordCnt == 1 && pc.Kind == chunk.SquareOpen:
				pc = pc.SkipToMatch(chunk.NavPreproc)
			case wordCnt == 1 && ws.Lang.Has(lang.CPP) && pc.IsText("&&"):
				// move reference
			default:
				return false
			}
		}
	}
done:

	last := pc.PrevNNL(chunk.NavAll)
	if last.IsStar() || last.IsAddr() {
		return true
	}
	return (wordCnt >= 2 && typeCount >= 1) || (wordCnt == 1 && typeCount == 1)
}

// markFunction decides what a FUNCTION chunk really is: definition,
// prototype, call, constructor variable, or function variable/type.
func markFunction(ws *chunk.Workspace, pc *chunk.Chunk) {
	prev := pc.PrevNNLNP(chunk.NavAll)
	next := pc.NextNNLNP(chunk.NavAll)
	if next == nil {
		return
	}

	var semi *chunk.Chunk

	// operator functions: what's before the keyword decides.
	if pc.ParentKind == chunk.Operator {
		pcOp := pc.PrevKind(chunk.Operator, pc.Level, chunk.NavAll)
		if pcOp != nil && pcOp.Flags&chunk.ExprStart != 0 {
			pc.Kind = chunk.FuncCall
		}
		if ws.Lang.Has(lang.CPP) {
			tmp := pc
			for {
				tmp = tmp.PrevNNL(chunk.NavAll)
				if tmp == nil {
					break
				}
				if tmp.Kind == chunk.BraceClose || tmp.Kind == chunk.Semicolon {
					break
				}
				if tmp.Kind == chunk.Assign {
					pc.Kind = chunk.FuncCall
					break
				}
				if tmp.Kind == chunk.Template {
					pc.Kind = chunk.FuncDef
					break
				}
				if tmp.Kind == chunk.BraceOpen {
					if tmp.ParentKind == chunk.FuncDef {
						pc.Kind = chunk.FuncCall
					}
					if tmp.ParentKind == chunk.Class || tmp.ParentKind == chunk.Struct {
						pc.Kind = chunk.FuncDef
					}
					break
				}
			}
			if tmp != nil && pc.Kind != chunk.FuncCall {
				// Mark the return type.
				for t := tmp.NextNNL(chunk.NavAll); t != nil && t != pc; t = t.NextNNL(chunk.NavAll) {
					makeType(t)
				}
			}
		}
	}

	if next.IsStar() || next.IsAddr() {
		next = next.NextNNLNP(chunk.NavAll)
		if next == nil {
			return
		}
	}

	// Constructor initializer-list arguments become ctor variables.
	if pc.Flags&chunk.InConstArgs != 0 {
		pc.Kind = chunk.FuncCtorVar
		next = skipTemplateNext(next)
		if next != nil {
			flagParens(ws, next, 0, chunk.FParenOpen, pc.Kind, true)
		}
		return
	}

	next = skipTemplateNext(next)
	next = skipAttributeNext(next)
	if next == nil {
		return
	}

	parenOpen := pc.NextText("(", pc.Level, chunk.NavAll)
	parenClose := parenOpen.NextText(")", pc.Level, chunk.NavAll)
	if parenOpen == nil || parenClose == nil {
		slog.Debug("combine.function.noparens",
			"file", ws.Filename, "name", pc.Text, "line", pc.OrigLine)
		return
	}

	// "MYTYPE (*func)(void)" vs chained calls "f(a)(b)(c)".
	tmp := parenClose.NextNNL(chunk.NavAll)
	if tmp.IsText("(") {
		tmp1 := next.NextNNL(chunk.NavAll)
		// Skip a leading class/namespace chain: "T (F::*A)();".
		for tmp1 != nil {
			tmp2 := tmp1.NextNNL(chunk.NavAll)
			if !tmp1.IsWord() || !tmp2.Is(chunk.DCMember) {
				break
			}
			tmp1 = tmp2.NextNNL(chunk.NavAll)
		}
		tmp2 := tmp1.NextNNL(chunk.NavAll)
		var tmp3 *chunk.Chunk
		if tmp2.IsText(")") {
			tmp3 = tmp2
			tmp2 = nil
		} else {
			tmp3 = tmp2.NextNNL(chunk.NavAll)
		}

		if tmp3.IsText(")") &&
			(tmp1.IsStar() || (ws.Lang.Has(lang.OC) && tmp1.Is(chunk.Caret))) &&
			(tmp2 == nil || tmp2.Kind == chunk.Word) {
			if tmp2 != nil {
				tmp2.Kind = chunk.FuncVar
				flagParens(ws, parenOpen, 0, chunk.ParenOpen, chunk.FuncVar, false)
			} else {
				flagParens(ws, parenOpen, 0, chunk.ParenOpen, chunk.FuncType, false)
			}
			pc.Kind = chunk.Type
			tmp1.Kind = chunk.PtrType
			pc.Flags &^= chunk.VarDef
			if tmp2 != nil {
				tmp2.Flags |= chunk.VarDef
			}
			flagParens(ws, tmp, 0, chunk.FParenOpen, chunk.FuncProto, false)
			fixFcnDefParams(ws, tmp)
			return
		}
	}

	// Assume a call until proven otherwise.
	if pc.Kind == chunk.Function {
		if pc.ParentKind == chunk.Operator {
			pc.Kind = chunk.FuncDef
		} else {
			pc.Kind = chunk.FuncCall
		}
	}

	// C++ class functions: "Type::Type(...)" and "~Type()".
	if pc.Kind == chunk.FuncClass ||
		(prev != nil && (prev.Kind == chunk.DCMember || prev.Kind == chunk.Inv)) {
		var destr *chunk.Chunk
		if prev.Is(chunk.Inv) {
			prev.Kind = chunk.Destructor
			pc.Kind = chunk.FuncClass
			pc.ParentKind = chunk.Destructor
			destr = prev
			prev = prev.PrevNNLNP(chunk.NavAll)
		}

		if prev.Is(chunk.DCMember) {
			prev = prev.PrevNNLNP(chunk.NavAll)
			prev = skipTemplatePrev(prev)
			prev = skipAttributePrev(prev)
			if prev != nil && (prev.Kind == chunk.Word || prev.Kind == chunk.Type) {
				if pc.Text == prev.Text {
					pc.Kind = chunk.FuncClass
					slog.Debug("combine.ctor", "name", prev.Text,
						"destructor", destr != nil, "line", pc.OrigLine)
					markCppConstructor(ws, pc)
					return
				}
				prev = prev.PrevNNLNP(chunk.NavAll)
			}
		}
	}

	// Call vs. proto/def: only at brace level (or wrapped in a macro).
	if pc.Kind == chunk.FuncCall &&
		(pc.Level == pc.BraceLevel || pc.Level == 1) &&
		pc.Flags&chunk.InArrayAssign == 0 {
		isaDef := false
		hitStar := false

		p := prev
		for p != nil {
			if p.Flags&chunk.InPreproc != 0 {
				p = p.PrevNNLNP(chunk.NavAll)
				continue
			}

			// Attributes slip between the type and the name.
			if p.Kind == chunk.FParenClose && p.ParentKind == chunk.Attribute {
				p = skipAttributePrev(p)
				continue
			}

			// const(TYPE) before the name settles it.
			if p.Kind == chunk.ParenClose && p.ParentKind == chunk.DCast {
				isaDef = true
				break
			}

			// Skip the word before a '.' or '::'.
			if p.Kind == chunk.DCMember || p.Kind == chunk.Member {
				p = p.PrevNNLNP(chunk.NavAll)
				if p == nil || (p.Kind != chunk.Word && p.Kind != chunk.Type &&
					p.Kind != chunk.This) {
					pc.Kind = chunk.FuncCall
					isaDef = false
					break
				}
				p = p.PrevNNLNP(chunk.NavAll)
				continue
			}

			if p.Kind == chunk.Type || p.Kind == chunk.Word {
				if !hitStar {
					isaDef = true
					break
				}
				isaDef = true
			}

			if p.IsAddr() || p.IsStar() {
				hitStar = true
			}

			if p.Kind != chunk.Operator && p.Kind != chunk.TSquare &&
				p.Kind != chunk.AngleClose && p.Kind != chunk.Qualifier &&
				p.Kind != chunk.Type && p.Kind != chunk.Word &&
				!p.IsAddr() && !p.IsStar() {
				// Certain tokens never precede a proto or def.
				switch p.Kind {
				case chunk.Arith, chunk.Assign, chunk.Comma, chunk.String,
					chunk.StringMulti, chunk.Number, chunk.NumberFP:
					isaDef = false
				}
				break
			}

			if p.Kind == chunk.AngleClose {
				p = skipTemplatePrev(p)
			} else {
				p = p.PrevNNLNP(chunk.NavAll)
			}
		}

		if isaDef && p != nil &&
			((p.IsParenClose() && p.ParentKind != chunk.DCast) ||
				p.Kind == chunk.Assign || p.Kind == chunk.Return) {
			isaDef = false
		}
		if isaDef {
			pc.Kind = chunk.FuncDef
			if p == nil {
				p = ws.Chunks.Head()
			}
			for t := p; t != nil && t != pc; t = t.NextNNL(chunk.NavAll) {
				makeType(t)
			}
		}
	}

	if pc.Kind != chunk.FuncDef {
		tmp = flagParens(ws, next, chunk.InFcnCall, chunk.FParenOpen, chunk.FuncCall, false)
		if tmp.Is(chunk.BraceOpen) {
			setParenParent(tmp, pc.Kind)
		}
		return
	}

	// Def or proto: scan past the close paren for '{' or ';'.
	tmp = parenClose
	for {
		tmp = tmp.NextNNL(chunk.NavAll)
		if tmp == nil {
			break
		}
		if tmp.Level < pc.Level {
			// No semicolon: guess prototype.
			pc.Kind = chunk.FuncProto
			break
		}
		if tmp.Level != pc.Level {
			continue
		}
		if tmp.Kind == chunk.BraceOpen {
			break
		}
		if tmp.IsSemicolon() {
			semi = tmp
			pc.Kind = chunk.FuncProto
			break
		}
		if tmp.Kind == chunk.Comma {
			pc.Kind = chunk.FuncCtorVar
			break
		}
	}

	// C++ "prototypes" at function scope are often constructor
	// variables; verify the parameter list.
	if ws.Lang.Has(lang.CPP) && pc.Kind == chunk.FuncProto &&
		pc.ParentKind != chunk.Operator {
		isParam := true
		ref := parenOpen.NextNNL(chunk.NavAll)
		t := ref
		for t != nil && t != parenClose {
			t2 := t.NextNNL(chunk.NavAll)
			if t.Kind == chunk.Comma && t.Level == parenOpen.Level+1 {
				if !canBeFullParam(ws, ref, t) {
					isParam = false
					break
				}
				ref = t2
			}
			t = t2
		}
		if isParam && ref != t {
			if !canBeFullParam(ws, ref, t) {
				isParam = false
			}
		}
		if !isParam {
			pc.Kind = chunk.FuncCtorVar
		} else if pc.BraceLevel > 0 {
			brOpen := pc.PrevKind(chunk.BraceOpen, pc.BraceLevel-1, chunk.NavAll)
			if brOpen != nil && brOpen.ParentKind != chunk.Extern &&
				brOpen.ParentKind != chunk.Namespace {
				p := pc.PrevNNL(chunk.NavAll)
				if !p.IsText("*") && !p.IsText("&") &&
					brOpen.ParentKind != chunk.Class &&
					brOpen.ParentKind != chunk.Struct {
					pc.Kind = chunk.FuncCtorVar
				}
			}
		}
	}

	if semi != nil {
		semi.ParentKind = pc.Kind
	}

	flagParens(ws, parenOpen, chunk.InFcnDef, chunk.FParenOpen, pc.Kind, false)

	if pc.Kind == chunk.FuncCtorVar {
		pc.Flags |= chunk.VarDef
		return
	}

	if next.Kind == chunk.TSquare {
		next = next.NextNNL(chunk.NavAll)
		if next == nil {
			return
		}
	}

	fixFcnDefParams(ws, next)
	markFunctionReturnType(pc, pc.PrevNNL(chunk.NavAll), pc.Kind)

	if pc.Kind == chunk.FuncDef {
		tmp = parenClose.NextNNL(chunk.NavPreproc)
		if tmp.Is(chunk.BraceOpen) {
			tmp.ParentKind = chunk.FuncDef
			if tmp = tmp.SkipToMatch(chunk.NavAll); tmp != nil {
				tmp.ParentKind = chunk.FuncDef
			}
		}
	}
}
