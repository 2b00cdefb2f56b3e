// Package scope attaches a qualified scope path to every chunk.
//
// Definitions of namable entities (namespaces, classes, functions)
// stamp their subordinate regions: parameter lists carry a "name()"
// decoration and function bodies "name(){}", so references inside a
// body read like "Outer:Inner:draw(){}". Inner definitions accumulate
// the outer decorated scopes as prefixes.
package scope

import (
	"strings"

	"github.com/ctoks/ctoks/internal/chunk"
)

// Assign walks the annotated chunk list and fills every Scope field.
// After it runs no chunk has an empty scope.
func Assign(ws *chunk.Workspace) {
	for pc := ws.Chunks.Head(); pc != nil; pc = pc.Next(chunk.NavAll) {
		switch {
		// Namespace definition: the body inherits the name.
		case pc.Kind == chunk.Word && pc.ParentKind == chunk.Namespace &&
			pc.Flags&chunk.Def != 0:
			name := prefixChain(pc) + pc.Text
			if open := pc.NextNNL(chunk.NavPreproc); open.Is(chunk.BraceOpen) {
				markRegion(open, name)
			}

		// Function prototype: only the parameter region exists.
		case pc.Kind == chunk.FuncProto:
			name := prefixChain(pc) + pc.Text
			if open := pc.NextNNL(chunk.NavPreproc); open.Is(chunk.FParenOpen) {
				markRegion(open, name+"()")
			}

		// Function definition: parameters, then the body.
		case pc.Kind == chunk.FuncDef || pc.Kind == chunk.FuncClass:
			name := prefixChain(pc) + pc.Text
			open := pc.NextNNL(chunk.NavPreproc)
			if !open.Is(chunk.FParenOpen) {
				break
			}
			close := markRegion(open, name+"()")
			if close == nil {
				break
			}
			if body := nextBraceOpen(close); body != nil {
				markRegion(body, name+"(){}")
			}

		// Objective-C class: everything through '@end' is inside it.
		case pc.Kind == chunk.Type && pc.Flags&chunk.Def != 0 &&
			pc.ParentKind == chunk.OCClass:
			markUntil(pc, pc.Text, chunk.OCEnd)

		// Objective-C method: the selector's argument span.
		case (pc.Kind == chunk.OCMsgSpec || pc.Kind == chunk.OCMsgDecl) &&
			pc.Flags&(chunk.Def|chunk.Proto) != 0:
			markUntil(pc, pc.Text+"()", chunk.Semicolon, chunk.BraceClose)

		// Class/struct/union/enum definition: the brace body.
		case pc.Kind == chunk.Type && pc.Flags&chunk.Def != 0 &&
			(pc.ParentKind == chunk.Class || pc.ParentKind == chunk.Struct ||
				pc.ParentKind == chunk.Union || pc.ParentKind == chunk.Enum):
			name := prefixChain(pc) + pc.Text
			if body := nextBraceOpen(pc); body != nil {
				markRegion(body, name)
			}
		}
	}

	// Whatever is left gets the catch-all scopes.
	for pc := ws.Chunks.Head(); pc != nil; pc = pc.Next(chunk.NavAll) {
		base := "<global>"
		switch {
		case pc.Kind == chunk.Macro || pc.Kind == chunk.MacroFunc:
			// Macro definitions index globally even though they sit in
			// a preprocessor line.
		case pc.Flags&chunk.Static != 0:
			base = "<local>"
		case pc.Flags&chunk.InPreproc != 0:
			base = "<preproc>"
		}
		if pc.Scope == "" {
			pc.Scope = base
		} else {
			pc.Scope = base + ":" + pc.Scope
		}
	}
}

// prefixChain resolves "A::B::name" qualifications, outermost first,
// returning "A:B:" or "".
func prefixChain(pc *chunk.Chunk) string {
	var parts []string
	prev := pc.PrevNNL(chunk.NavPreproc)
	for prev.Is(chunk.DCMember) {
		owner := prev.PrevNNL(chunk.NavPreproc)
		if owner == nil || (owner.Kind != chunk.Type && owner.Kind != chunk.Word) {
			break
		}
		parts = append(parts, owner.Text)
		prev = owner.PrevNNL(chunk.NavPreproc)
	}
	if len(parts) == 0 {
		return ""
	}
	var sb strings.Builder
	for i := len(parts) - 1; i >= 0; i-- {
		sb.WriteString(parts[i])
		sb.WriteByte(':')
	}
	return sb.String()
}

// markRegion appends label to the scope of every non-punctuator
// non-keyword chunk between open and its match. Returns the close
// chunk, or nil when the delimiter is unmatched.
func markRegion(open *chunk.Chunk, label string) *chunk.Chunk {
	closeKind := open.Kind + 1
	for pc := open.Next(chunk.NavPreproc); pc != nil; pc = pc.Next(chunk.NavPreproc) {
		if pc.Kind == closeKind && pc.Level == open.Level {
			return pc
		}
		if pc.IsNewline() || pc.Flags&(chunk.Punctuator|chunk.Keyword) != 0 {
			continue
		}
		if pc.Scope == "" {
			pc.Scope = label
		} else {
			pc.Scope += ":" + label
		}
	}
	return nil
}

// markUntil appends label to every eligible chunk after pc up to (not
// including) the first chunk of any stop kind at pc's level.
func markUntil(pc *chunk.Chunk, label string, stops ...chunk.Kind) {
	for t := pc.Next(chunk.NavPreproc); t != nil; t = t.Next(chunk.NavPreproc) {
		if t.Level <= pc.Level {
			for _, stop := range stops {
				if t.Kind == stop {
					return
				}
			}
		}
		if t.IsNewline() || t.Flags&(chunk.Punctuator|chunk.Keyword) != 0 {
			continue
		}
		if t.Scope == "" {
			t.Scope = label
		} else {
			t.Scope += ":" + label
		}
	}
}

// nextBraceOpen finds the body brace of a definition, skipping
// qualifiers, base-class lists and initializer lists, and giving up at
// the end of the statement.
func nextBraceOpen(pc *chunk.Chunk) *chunk.Chunk {
	for t := pc.NextNNL(chunk.NavPreproc); t != nil; t = t.NextNNL(chunk.NavPreproc) {
		if t.Kind == chunk.BraceOpen {
			return t
		}
		if t.IsSemicolon() || t.Kind == chunk.BraceClose {
			return nil
		}
	}
	return nil
}
