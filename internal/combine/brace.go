// Package combine runs the passes that rewrite token kinds in place:
// level tracking, the symbol classifier sweeps, and label resolution.
package combine

import (
	"log/slog"

	"github.com/ctoks/ctoks/internal/chunk"
	"github.com/ctoks/ctoks/internal/lang"
)

// frame is one snapshot of the nesting counters, saved around
// preprocessor conditional branches so '#else' re-parses from the state
// the matching '#if' saw.
type frame struct {
	level      int
	braceLevel int
}

// BraceCleanup assigns level, brace level and pp level to every chunk,
// rewrites control-flow parens to SPAREN, and marks statement and
// expression starts. Open delimiters carry the pre-increment value and
// closes the matching one, so open.Level == close.Level.
func BraceCleanup(ws *chunk.Workspace) {
	assignLevels(ws)
	markSParens(ws)
	if ws.Lang.Has(lang.Pawn) {
		pawnVirtualSemicolons(ws)
		pawnVirtualBraces(ws)
	}
	markStmtStarts(ws)
}

func assignLevels(ws *chunk.Workspace) {
	var (
		cur      frame
		ifStack  []frame
		ppLevel  int
		inPPLine bool
		saved    frame
	)

	for pc := ws.Chunks.Head(); pc != nil; pc = pc.Next(chunk.NavAll) {
		if pc.Kind == chunk.Preproc {
			// Preprocessor lines get their own counters so unbalanced
			// directive bodies never skew the main frame.
			saved = cur
			inPPLine = true
		}
		if inPPLine && !pc.IsPreproc() {
			cur = saved
			inPPLine = false
		}

		switch pc.Kind {
		case chunk.PPIf:
			ifStack = append(ifStack, saved)
			pc.PPLevel = ppLevel
			ppLevel++
		case chunk.PPElse:
			// Re-parse the branch from the state the '#if' saw.
			if n := len(ifStack); n > 0 {
				saved = ifStack[n-1]
			}
			pc.PPLevel = ppLevel
		case chunk.PPEndif:
			if n := len(ifStack); n > 0 {
				ifStack = ifStack[:n-1]
			}
			if ppLevel > 0 {
				ppLevel--
			}
			pc.PPLevel = ppLevel
		default:
			pc.PPLevel = ppLevel
		}

		switch {
		case pc.Kind.IsOpen():
			pc.Level = cur.level
			pc.BraceLevel = cur.braceLevel
			cur.level++
			if pc.Kind == chunk.BraceOpen || pc.Kind == chunk.VBraceOpen {
				cur.braceLevel++
			}
		case pc.Kind.IsClose():
			if cur.level > 0 {
				cur.level--
			}
			if (pc.Kind == chunk.BraceClose || pc.Kind == chunk.VBraceClose) &&
				cur.braceLevel > 0 {
				cur.braceLevel--
			}
			pc.Level = cur.level
			pc.BraceLevel = cur.braceLevel
		default:
			pc.Level = cur.level
			pc.BraceLevel = cur.braceLevel
		}
	}
}

// sparenParent reports whether k is a keyword whose parens are
// statement-control.
func sparenParent(k chunk.Kind) bool {
	switch k {
	case chunk.If, chunk.ElseIf, chunk.For, chunk.Switch, chunk.While,
		chunk.WhileOfDo, chunk.Catch, chunk.Invariant:
		return true
	}
	return false
}

func markSParens(ws *chunk.Workspace) {
	for pc := ws.Chunks.Head(); pc != nil; pc = pc.Next(chunk.NavAll) {
		switch pc.Kind {
		case chunk.Else:
			// 'else if' chains re-use the IF machinery.
			if next := pc.NextNNL(chunk.NavPreproc); next.Is(chunk.If) {
				next.Kind = chunk.ElseIf
			}
		case chunk.While:
			// 'while' right after the close brace of a do body.
			if prev := pc.PrevNNL(chunk.NavPreproc); prev.IsClosingBrace() {
				open := prev.SkipToMatchRev(chunk.NavPreproc)
				if open != nil {
					if before := open.PrevNNL(chunk.NavPreproc); before.Is(chunk.Do) {
						pc.Kind = chunk.WhileOfDo
					}
				}
			}
		}

		if !sparenParent(pc.Kind) {
			continue
		}
		po := pc.NextNNL(chunk.NavPreproc)
		if !po.Is(chunk.ParenOpen) {
			continue
		}
		close := po.SkipToMatch(chunk.NavPreproc)
		if close == nil {
			slog.Warn("combine.unmatched", "file", ws.Filename,
				"line", po.OrigLine, "col", po.OrigCol, "text", po.Text)
			continue
		}
		po.Kind = chunk.SParenOpen
		close.Kind = chunk.SParenClose
		po.ParentKind = pc.Kind
		close.ParentKind = pc.Kind

		flags := chunk.InSParen
		if pc.Kind == chunk.For {
			flags |= chunk.InFor
		}
		for t := po.Next(chunk.NavPreproc); t != nil && t != close; t = t.Next(chunk.NavPreproc) {
			t.Flags |= flags
		}
	}
}

// markStmtStarts flags the chunk that begins each statement and each
// expression. The classifier keys several unary/binary decisions and
// the Objective-C handlers off these bits.
func markStmtStarts(ws *chunk.Workspace) {
	stmtExpect := true
	exprExpect := true

	for pc := ws.Chunks.Head(); pc != nil; pc = pc.Next(chunk.NavAll) {
		if pc.IsNewline() || pc.IsPreproc() {
			continue
		}

		if !pc.IsClosingBrace() && !pc.IsParenClose() &&
			pc.Kind != chunk.SquareClose && pc.Kind != chunk.AngleClose {
			if stmtExpect {
				pc.Flags |= chunk.StmtStart | chunk.ExprStart
			} else if exprExpect {
				pc.Flags |= chunk.ExprStart
			}
		}
		stmtExpect = false
		exprExpect = false

		switch pc.Kind {
		case chunk.Semicolon, chunk.VSemicolon,
			chunk.BraceOpen, chunk.BraceClose,
			chunk.VBraceOpen, chunk.VBraceClose,
			chunk.SParenClose,
			chunk.CaseColon, chunk.LabelColon,
			chunk.Do, chunk.Else, chunk.Try, chunk.Finally,
			chunk.OCEnd:
			stmtExpect = true
			exprExpect = true
		case chunk.ParenOpen, chunk.SParenOpen, chunk.FParenOpen,
			chunk.SquareOpen, chunk.TSquare,
			chunk.Assign, chunk.Arith, chunk.Bool, chunk.Compare,
			chunk.Caret, chunk.Question, chunk.Colon, chunk.Comma,
			chunk.Return, chunk.Case, chunk.Goto, chunk.Not,
			chunk.Star, chunk.Amp, chunk.Plus, chunk.Minus:
			exprExpect = true
		}
	}
}

// pawnVirtualSemicolons terminates PAWN statements that legally omit
// the ';' with a virtual semicolon at end of line.
func pawnVirtualSemicolons(ws *chunk.Workspace) {
	for pc := ws.Chunks.Head(); pc != nil; pc = pc.Next(chunk.NavAll) {
		if pc.Kind != chunk.Newline || pc.IsPreproc() {
			continue
		}
		prev := pc.PrevNNL(chunk.NavAll)
		if prev == nil || prev.IsPreproc() {
			continue
		}
		if needsPawnVSemi(prev) {
			addVSemiAfter(ws, prev)
		}
	}
}

func needsPawnVSemi(prev *chunk.Chunk) bool {
	if prev.IsSemicolon() || prev.Flags&chunk.Punctuator != 0 {
		// Lines ending on an operator continue on the next line.
		switch prev.Kind {
		case chunk.ParenClose, chunk.SquareClose, chunk.TSquare:
			return true
		}
		return false
	}
	switch prev.Kind {
	case chunk.Word, chunk.Number, chunk.NumberFP, chunk.String,
		chunk.Type, chunk.IncDecAfter, chunk.Break, chunk.Continue,
		chunk.Return:
		return true
	}
	return false
}

// addVSemiAfter inserts a virtual semicolon after pc.
func addVSemiAfter(ws *chunk.Workspace, pc *chunk.Chunk) *chunk.Chunk {
	vs := chunk.Chunk{
		Kind:       chunk.VSemicolon,
		OrigLine:   pc.OrigLine,
		OrigCol:    pc.OrigColEnd,
		OrigColEnd: pc.OrigColEnd,
		Level:      pc.Level,
		BraceLevel: pc.BraceLevel,
		PPLevel:    pc.PPLevel,
	}
	return ws.AddAfter(&vs, pc)
}

// pawnVirtualBraces wraps unbraced control-flow bodies in virtual
// braces so statement structure is uniform for the later passes.
func pawnVirtualBraces(ws *chunk.Workspace) {
	for pc := ws.Chunks.Head(); pc != nil; pc = pc.Next(chunk.NavAll) {
		if pc.Kind != chunk.SParenClose && pc.Kind != chunk.Else && pc.Kind != chunk.Do {
			continue
		}
		body := pc.NextNNL(chunk.NavPreproc)
		if body == nil || body.IsOpeningBrace() ||
			body.Kind == chunk.If || body.Kind == chunk.ElseIf {
			continue
		}
		// Find the statement end: the terminating (virtual) semicolon.
		end := body
		for end != nil && !end.IsSemicolon() {
			if end.Level < body.Level {
				break
			}
			end = end.Next(chunk.NavPreproc)
		}
		if end == nil || !end.IsSemicolon() {
			continue
		}

		vo := chunk.Chunk{
			Kind: chunk.VBraceOpen, ParentKind: pc.ParentKind,
			OrigLine: body.OrigLine, OrigCol: body.OrigCol,
			OrigColEnd: body.OrigCol,
			Level:      body.Level, BraceLevel: body.BraceLevel,
			PPLevel: body.PPLevel,
		}
		open := ws.AddBefore(&vo, body)
		vc := chunk.Chunk{
			Kind: chunk.VBraceClose, ParentKind: pc.ParentKind,
			OrigLine: end.OrigLine, OrigCol: end.OrigColEnd,
			OrigColEnd: end.OrigColEnd,
			Level:      open.Level, BraceLevel: open.BraceLevel,
			PPLevel: end.PPLevel,
		}
		ws.AddAfter(&vc, end)

		// Contents ride one level deeper, matching real braces.
		for t := open.Next(chunk.NavAll); t != nil && !t.Is(chunk.VBraceClose); t = t.Next(chunk.NavAll) {
			t.Level++
			t.BraceLevel++
		}
	}
}
