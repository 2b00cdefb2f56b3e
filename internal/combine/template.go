package combine

import (
	"github.com/ctoks/ctoks/internal/chunk"
)

// handleCppTemplate parents the <...> after 'template', converts
// class/struct inside the angles to types, and lets the declaration
// after the close angle inherit the template parent.
func handleCppTemplate(pc *chunk.Chunk) {
	tmp := pc.NextNNL(chunk.NavAll)
	if !tmp.Is(chunk.AngleOpen) {
		return
	}
	tmp.ParentKind = chunk.Template
	level := tmp.Level

	for {
		tmp = tmp.Next(chunk.NavAll)
		if tmp == nil {
			break
		}
		if tmp.Kind == chunk.Class || tmp.Kind == chunk.Struct {
			tmp.Kind = chunk.Type
		} else if tmp.Kind == chunk.AngleClose && tmp.Level == level {
			tmp.ParentKind = chunk.Template
			break
		}
	}
	if tmp != nil {
		tmp = tmp.NextNNL(chunk.NavAll)
		if tmp != nil && (tmp.Kind == chunk.Class || tmp.Kind == chunk.Struct) {
			tmp.ParentKind = chunk.Template
			if tmp = tmp.NextKind(chunk.Semicolon, tmp.Level, chunk.NavAll); tmp != nil {
				tmp.ParentKind = chunk.Template
			}
		}
	}
}

// getDTemplateTypes collects the type names of a D template parameter
// list into cs and returns the close paren.
func getDTemplateTypes(cs *[]*chunk.Chunk, openParen *chunk.Chunk) *chunk.Chunk {
	tmp := openParen
	maybeType := true

	for {
		tmp = tmp.NextNNL(chunk.NavAll)
		if tmp == nil || tmp.Level <= openParen.Level {
			break
		}
		if tmp.Kind == chunk.Type || tmp.Kind == chunk.Word {
			if maybeType {
				makeType(tmp)
				*cs = append(*cs, tmp)
			}
			maybeType = false
		} else if tmp.Kind == chunk.Comma {
			maybeType = true
		}
	}
	return tmp
}

// handleDTemplate processes "template NAME ( TYPELIST ) { BODY }":
// NAME becomes a type, the parens and braces parent to TEMPLATE, and
// each TYPELIST name inside the body is retyped.
func handleDTemplate(pc *chunk.Chunk) {
	name := pc.NextNNL(chunk.NavAll)
	po := name.NextNNL(chunk.NavAll)
	// The name may already have been retyped by an earlier sweep.
	if name == nil || (name.Kind != chunk.Word && name.Kind != chunk.Type) {
		return
	}
	if !po.Is(chunk.ParenOpen) {
		return
	}

	name.Kind = chunk.Type
	name.ParentKind = chunk.Template
	po.ParentKind = chunk.Template

	var cs []*chunk.Chunk
	tmp := getDTemplateTypes(&cs, po)
	if !tmp.Is(chunk.ParenClose) {
		return
	}
	tmp.ParentKind = chunk.Template

	tmp = tmp.NextNNL(chunk.NavAll)
	if !tmp.Is(chunk.BraceOpen) {
		return
	}
	tmp.ParentKind = chunk.Template
	po = tmp

	for {
		tmp = tmp.NextNNL(chunk.NavAll)
		if tmp == nil || tmp.Level <= po.Level {
			break
		}
		if tmp.Kind == chunk.Word && stackMatch(cs, tmp) {
			tmp.Kind = chunk.Type
		}
	}
	if tmp.Is(chunk.BraceClose) {
		tmp.ParentKind = chunk.Template
	}
}

// markTemplateFunc classifies "name<...>" by what follows the close
// angle: '(' makes it a function (call or def), a word makes it a
// variable definition with a templated type.
func markTemplateFunc(ws *chunk.Workspace, pc, pcNext *chunk.Chunk) {
	angleClose := pcNext.NextKind(chunk.AngleClose, pc.Level, chunk.NavAll)
	if angleClose == nil {
		return
	}
	after := angleClose.NextNNL(chunk.NavAll)
	if after == nil {
		return
	}
	if after.IsText("(") {
		if angleClose.Flags&chunk.InFcnCall != 0 {
			pc.Kind = chunk.FuncCall
			flagParens(ws, after, chunk.InFcnCall, chunk.FParenOpen, chunk.FuncCall, false)
		} else {
			// Might be a def; markFunction sorts it out.
			pc.Kind = chunk.FuncCall
			markFunction(ws, pc)
		}
	} else if after.Kind == chunk.Word {
		pc.Kind = chunk.Type
		pc.Flags |= chunk.VarType
		after.Flags |= chunk.VarDef
	}
}

// handleCppLambda verifies and marks '[...](...){...}' (with optional
// '-> type'). A TSQUARE '[]' splits into two chunks so the capture list
// has real delimiters; the new ']' is inserted directly after the
// current '[', so it is the next chunk the caller's walk visits.
func handleCppLambda(ws *chunk.Workspace, sqO *chunk.Chunk) {
	sqC := sqO
	if sqO.Kind == chunk.SquareOpen {
		if sqC = sqO.SkipToMatch(chunk.NavAll); sqC == nil {
			return
		}
	}

	paO := sqC.NextNNL(chunk.NavAll)
	if !paO.Is(chunk.ParenOpen) {
		return
	}
	paC := paO.SkipToMatch(chunk.NavAll)
	if paC == nil {
		return
	}

	brO := paC.NextNNL(chunk.NavAll)
	if brO.IsText("mutable") {
		brO = brO.NextNNL(chunk.NavAll)
	}
	var ret *chunk.Chunk
	if brO.IsText("->") {
		ret = brO
		brO = brO.NextKind(chunk.BraceOpen, brO.Level, chunk.NavAll)
	}
	if !brO.Is(chunk.BraceOpen) {
		return
	}
	brC := brO.SkipToMatch(chunk.NavAll)
	if brC == nil {
		return
	}

	if sqO.Kind == chunk.TSquare {
		// Split '[]' into '[' and ']'.
		nc := *sqO
		sqO.Kind = chunk.SquareOpen
		sqO.Text = "["
		sqO.OrigColEnd = sqO.OrigCol + 1

		nc.Kind = chunk.SquareClose
		nc.Text = "]"
		nc.OrigCol++
		sqC = ws.AddAfter(&nc, sqO)
	}
	sqO.ParentKind = chunk.Lambda
	sqC.ParentKind = chunk.Lambda
	paO.Kind = chunk.FParenOpen
	paO.ParentKind = chunk.Lambda
	paC.Kind = chunk.FParenClose
	paC.ParentKind = chunk.Lambda
	brO.ParentKind = chunk.Lambda
	brC.ParentKind = chunk.Lambda

	if ret != nil {
		ret.Kind = chunk.LambdaRet
		for t := ret.NextNNL(chunk.NavAll); t != nil && t != brO; t = t.NextNNL(chunk.NavAll) {
			makeType(t)
		}
	}

	fixFcnDefParams(ws, paO)
}
