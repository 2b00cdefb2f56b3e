package combine

import (
	"github.com/ctoks/ctoks/internal/chunk"
)

// handleWrap collapses FUNC_WRAP(name) / TYPE_WRAP(name) into a single
// synthesized chunk; the wrapper parens and name are deleted.
func handleWrap(ws *chunk.Workspace, pc *chunk.Chunk) {
	opp := pc.Next(chunk.NavAll)
	name := opp.Next(chunk.NavAll)
	clp := name.Next(chunk.NavAll)

	if clp == nil || opp.Kind != chunk.ParenOpen ||
		(name.Kind != chunk.Word && name.Kind != chunk.Type) ||
		clp.Kind != chunk.ParenClose {
		return
	}

	pc.Text += "(" + name.Text + ")"
	if pc.Kind == chunk.FuncWrap {
		pc.Kind = chunk.Function
	} else {
		pc.Kind = chunk.Type
	}
	pc.OrigColEnd = pc.OrigCol + pc.Len()

	ws.Chunks.Delete(opp)
	ws.Chunks.Delete(name)
	ws.Chunks.Delete(clp)
}

// handleProtoWrap treats "RETTYPE PROTO_WRAP(NAME, PARAMS);" as a
// function prototype (or definition when braces follow).
func handleProtoWrap(ws *chunk.Workspace, pc *chunk.Chunk) {
	opp := pc.NextNNL(chunk.NavAll)
	name := opp.NextNNL(chunk.NavAll)
	tmp := name.NextNNL(chunk.NavAll).NextNNL(chunk.NavAll)
	clp := opp.SkipToMatch(chunk.NavAll)
	cma := clp.NextNNL(chunk.NavAll)

	if opp == nil || name == nil || clp == nil || cma == nil || tmp == nil ||
		(name.Kind != chunk.Word && name.Kind != chunk.Type) ||
		tmp.Kind != chunk.ParenOpen || opp.Kind != chunk.ParenOpen {
		return
	}
	switch cma.Kind {
	case chunk.Semicolon:
		pc.Kind = chunk.FuncProto
	case chunk.BraceOpen:
		pc.Kind = chunk.FuncDef
	default:
		return
	}
	opp.ParentKind = pc.Kind
	clp.ParentKind = pc.Kind

	tmp.ParentKind = chunk.ProtoWrap
	fixFcnDefParams(ws, tmp)
	if tmp = tmp.SkipToMatch(chunk.NavAll); tmp != nil {
		tmp.ParentKind = chunk.ProtoWrap
	}

	// The return type sits before the wrapper.
	tmp = pc
	for {
		tmp = tmp.PrevNNL(chunk.NavAll)
		if tmp == nil {
			break
		}
		if !tmp.IsTypeish() && tmp.Kind != chunk.Operator &&
			tmp.Kind != chunk.Word && tmp.Kind != chunk.Addr {
			break
		}
		tmp.ParentKind = pc.Kind
		makeType(tmp)
	}
}

// handleJavaAssert parents the optional ':' and the ';' of
// "assert EXP1 [: EXP2];".
func handleJavaAssert(pc *chunk.Chunk) {
	didColon := false
	for tmp := pc.Next(chunk.NavAll); tmp != nil; tmp = tmp.Next(chunk.NavAll) {
		if tmp.Level != pc.Level {
			continue
		}
		if !didColon && tmp.Kind == chunk.Colon {
			didColon = true
			tmp.ParentKind = pc.Kind
		}
		if tmp.Kind == chunk.Semicolon {
			tmp.ParentKind = pc.Kind
			break
		}
	}
}
