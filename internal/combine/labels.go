package combine

import (
	"log/slog"

	"github.com/ctoks/ctoks/internal/chunk"
	"github.com/ctoks/ctoks/internal/lang"
)

// CombineLabels resolves every bare COLON into its contextual kind:
// ternary, case, class, label, bit-field, for-range, dictionary, or
// message colon. Runs after FixSymbols.
func CombineLabels(ws *chunk.Workspace) {
	questionCount := 0
	hitCase := false
	hitClass := false

	prev := ws.Chunks.Head()
	if prev == nil {
		return
	}
	cur := prev.Next(chunk.NavAll)
	if cur == nil {
		return
	}
	next := cur.Next(chunk.NavAll)

	for next != nil {
		if next.Flags&chunk.InOCMsg == 0 &&
			(next.Kind == chunk.Class || next.Kind == chunk.OCClass ||
				next.Kind == chunk.Template) {
			hitClass = true
		}
		if next.IsSemicolon() || next.Kind == chunk.BraceOpen {
			hitClass = false
		}

		switch next.Kind {
		case chunk.Question:
			questionCount++

		case chunk.Case:
			if cur.Kind == chunk.Goto {
				// "goto case x;"
				next.Kind = chunk.Qualifier
			} else {
				hitCase = true
			}

		case chunk.Colon:
			if cur.Kind == chunk.Default {
				cur.Kind = chunk.Case
				hitCase = true
			}
			switch {
			case questionCount > 0:
				next.Kind = chunk.CondColon
				questionCount--

			case hitCase:
				hitCase = false
				next.Kind = chunk.CaseColon
				if tmp := next.NextNNL(chunk.NavAll); tmp.Is(chunk.BraceOpen) {
					tmp.ParentKind = chunk.Case
					if tmp = tmp.NextKind(chunk.BraceClose, tmp.Level, chunk.NavAll); tmp != nil {
						tmp.ParentKind = chunk.Case
					}
				}

			default:
				resolveColon(ws, prev, cur, next, hitClass)
			}
		}

		prev = cur
		cur = next
		next = cur.Next(chunk.NavAll)
	}
}

// resolveColon handles the colons that are neither ternary nor case.
func resolveColon(ws *chunk.Workspace, prev, cur, next *chunk.Chunk, hitClass bool) {
	nextPrev := next.PrevNNL(chunk.NavAll)

	switch {
	case ws.Lang.Has(lang.Pawn):
		if cur.Kind == chunk.Word || cur.Kind == chunk.BraceClose {
			newKind := chunk.Tag
			tmp := next.Next(chunk.NavAll)
			if prev.IsNewline() && tmp.IsNewline() {
				newKind = chunk.Label
				next.Kind = chunk.LabelColon
			} else {
				next.Kind = chunk.TagColon
			}
			if cur.Kind == chunk.Word {
				cur.Kind = newKind
			}
		}

	case next.Flags&chunk.InArrayAssign != 0:
		next.Kind = chunk.DArrayColon

	case next.Flags&chunk.InFor != 0:
		next.Kind = chunk.ForColon

	case next.Flags&chunk.OCBoxed != 0:
		next.Kind = chunk.OCDictColon

	case cur.Kind == chunk.Word:
		tmp := next.Next(chunk.NavPreproc)
		switch {
		case prev.IsNewline() && (tmp == nil || tmp.Kind != chunk.Number):
			cur.Kind = chunk.Label
			next.Kind = chunk.LabelColon
		case next.Flags&chunk.InFcnCall != 0:
			// Macro-ish call argument; assume a label of some sort.
			next.Kind = chunk.LabelColon
		default:
			next.Kind = chunk.BitColon
			for tmp = next.Next(chunk.NavAll); tmp != nil; tmp = tmp.Next(chunk.NavAll) {
				if tmp.Kind == chunk.Semicolon {
					break
				}
				if tmp.Kind == chunk.Colon {
					tmp.Kind = chunk.BitColon
				}
			}
		}

	case nextPrev.Is(chunk.FParenClose):
		// Member initializer list after a signature.
		next.Kind = chunk.ClassColon

	case next.Level > next.BraceLevel:
		// Inside parens; leave it.

	case cur.Kind == chunk.Type:
		next.Kind = chunk.BitColon

	case cur.Kind == chunk.Enum || cur.Kind == chunk.Private ||
		cur.Kind == chunk.Qualifier || cur.ParentKind == chunk.Align:
		// Bit field, access specifier, or align; leave it.

	case cur.Kind == chunk.AngleClose || hitClass:
		// Template parameter list; leave it.

	case cur.ParentKind == chunk.SQLExec:
		// SQL variable name; leave it.

	case next.ParentKind == chunk.Assert:
		// Java assert separator; leave it.

	default:
		if tmp := next.NextNNL(chunk.NavAll); tmp != nil &&
			(tmp.Kind == chunk.Base || tmp.Kind == chunk.This) {
			// C# "base:"/"this:" constructor forwarding; leave it.
		} else {
			slog.Warn("combine.colon.unexpected", "file", ws.Filename,
				"line", next.OrigLine, "col", next.OrigCol,
				"nparent", next.ParentKind.String(),
				"cparent", cur.ParentKind.String())
		}
	}
}
