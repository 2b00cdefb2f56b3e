package chunk

// Chunk is one lexical atom: position, kind, flags, text, and the
// scope string filled in by the scope pass.
type Chunk struct {
	next *Chunk
	prev *Chunk

	Kind       Kind
	ParentKind Kind

	OrigLine   int // 1-based
	OrigCol    int // 1-based
	OrigColEnd int

	Flags Flags

	Level      int // nesting over (), [], {}, <>
	BraceLevel int // nesting over braces (real and virtual) only
	PPLevel    int // #if nesting

	Text  string
	Scope string
}

// Nav selects how navigation treats preprocessor chunks.
type Nav int

const (
	// NavAll returns the true next/prev chunk.
	NavAll Nav = iota
	// NavPreproc stays on one side of the preprocessor boundary: outside
	// a preprocessor it skips preproc chunks, inside it refuses to leave.
	NavPreproc
)

// Len returns the byte length of the chunk text.
func (c *Chunk) Len() int { return len(c.Text) }

// Is reports whether the chunk is non-nil and has the given kind.
func (c *Chunk) Is(k Kind) bool { return c != nil && c.Kind == k }

// IsText reports whether the chunk text equals s.
func (c *Chunk) IsText(s string) bool { return c != nil && c.Text == s }

// IsNewline matches NEWLINE and NL_CONT.
func (c *Chunk) IsNewline() bool {
	return c != nil && (c.Kind == Newline || c.Kind == NlCont)
}

// IsSemicolon matches real and virtual semicolons.
func (c *Chunk) IsSemicolon() bool {
	return c != nil && (c.Kind == Semicolon || c.Kind == VSemicolon)
}

// IsPreproc reports whether the chunk carries the IN_PREPROC flag.
func (c *Chunk) IsPreproc() bool {
	return c != nil && c.Flags&InPreproc != 0
}

// IsParenOpen matches any of the open paren kinds.
func (c *Chunk) IsParenOpen() bool {
	if c == nil {
		return false
	}
	switch c.Kind {
	case ParenOpen, SParenOpen, FParenOpen, TParenOpen:
		return true
	}
	return false
}

// IsParenClose matches any of the close paren kinds.
func (c *Chunk) IsParenClose() bool {
	if c == nil {
		return false
	}
	switch c.Kind {
	case ParenClose, SParenClose, FParenClose, TParenClose:
		return true
	}
	return false
}

// IsOpeningBrace matches real and virtual open braces.
func (c *Chunk) IsOpeningBrace() bool {
	return c != nil && (c.Kind == BraceOpen || c.Kind == VBraceOpen)
}

// IsClosingBrace matches real and virtual close braces.
func (c *Chunk) IsClosingBrace() bool {
	return c != nil && (c.Kind == BraceClose || c.Kind == VBraceClose)
}

// IsVBrace matches virtual braces.
func (c *Chunk) IsVBrace() bool {
	return c != nil && (c.Kind == VBraceOpen || c.Kind == VBraceClose)
}

// IsStar matches a lone '*' that is not an operator token.
func (c *Chunk) IsStar() bool {
	return c != nil && len(c.Text) == 1 && c.Text[0] == '*' && c.Kind != OperatorVal
}

// IsAddr matches BYREF or a lone '&' that is not an operator token.
func (c *Chunk) IsAddr() bool {
	return c != nil && (c.Kind == ByRef ||
		(len(c.Text) == 1 && c.Text[0] == '&' && c.Kind != OperatorVal))
}

// IsWord reports whether the chunk text starts like an identifier.
func (c *Chunk) IsWord() bool {
	return c != nil && len(c.Text) >= 1 && IsKw1(c.Text[0])
}

// IsTypeish matches the kinds that can appear inside a type expression.
func (c *Chunk) IsTypeish() bool {
	if c == nil {
		return false
	}
	switch c.Kind {
	case Type, PtrType, ByRef, DCMember, Qualifier, Struct, Enum, Union:
		return true
	}
	return false
}

// SamePreproc reports whether both chunks are on the same side of the
// preprocessor boundary (nil counts as same).
func SamePreproc(a, b *Chunk) bool {
	return a == nil || b == nil || (a.Flags&InPreproc) == (b.Flags&InPreproc)
}
