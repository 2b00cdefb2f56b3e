package chunk

// List is the doubly-linked chunk sequence for one file. The linked form
// is load-bearing: classifier sweeps insert virtual braces and split
// square brackets mid-iteration.
type List struct {
	head *Chunk
	tail *Chunk
	n    int
}

// Head returns the first chunk or nil.
func (l *List) Head() *Chunk { return l.head }

// Tail returns the last chunk or nil.
func (l *List) Tail() *Chunk { return l.tail }

// Len returns the number of chunks.
func (l *List) Len() int { return l.n }

// Append adds pc at the end of the list.
func (l *List) Append(pc *Chunk) *Chunk {
	pc.next = nil
	pc.prev = l.tail
	if l.tail != nil {
		l.tail.next = pc
	} else {
		l.head = pc
	}
	l.tail = pc
	l.n++
	return pc
}

// InsertAfter adds pc immediately after ref. A nil ref appends.
func (l *List) InsertAfter(pc *Chunk, ref *Chunk) *Chunk {
	if ref == nil || ref == l.tail {
		return l.Append(pc)
	}
	pc.prev = ref
	pc.next = ref.next
	ref.next.prev = pc
	ref.next = pc
	l.n++
	return pc
}

// InsertBefore adds pc immediately before ref. A nil ref appends.
func (l *List) InsertBefore(pc *Chunk, ref *Chunk) *Chunk {
	if ref == nil {
		return l.Append(pc)
	}
	pc.next = ref
	pc.prev = ref.prev
	if ref.prev != nil {
		ref.prev.next = pc
	} else {
		l.head = pc
	}
	ref.prev = pc
	l.n++
	return pc
}

// Delete unlinks pc. The caller must not keep navigating from pc.
func (l *List) Delete(pc *Chunk) {
	if pc.prev != nil {
		pc.prev.next = pc.next
	} else {
		l.head = pc.next
	}
	if pc.next != nil {
		pc.next.prev = pc.prev
	} else {
		l.tail = pc.prev
	}
	pc.next = nil
	pc.prev = nil
	l.n--
}

// Next returns the following chunk honoring the nav mode.
func (c *Chunk) Next(nav Nav) *Chunk {
	if c == nil {
		return nil
	}
	pc := c.next
	if nav == NavPreproc && pc != nil {
		if c.Flags&InPreproc != 0 {
			// Can't leave a preprocessor by navigating.
			if pc.Flags&InPreproc == 0 {
				return nil
			}
		} else {
			for pc != nil && pc.Flags&InPreproc != 0 {
				pc = pc.next
			}
		}
	}
	return pc
}

// Prev returns the preceding chunk honoring the nav mode.
func (c *Chunk) Prev(nav Nav) *Chunk {
	if c == nil {
		return nil
	}
	pc := c.prev
	if nav == NavPreproc && pc != nil {
		if c.Flags&InPreproc != 0 {
			if pc.Flags&InPreproc == 0 {
				return nil
			}
		} else {
			for pc != nil && pc.Flags&InPreproc != 0 {
				pc = pc.prev
			}
		}
	}
	return pc
}

// NextNNL returns the next non-newline chunk.
func (c *Chunk) NextNNL(nav Nav) *Chunk {
	pc := c.Next(nav)
	for pc != nil && pc.IsNewline() {
		pc = pc.Next(nav)
	}
	return pc
}

// PrevNNL returns the previous non-newline chunk.
func (c *Chunk) PrevNNL(nav Nav) *Chunk {
	pc := c.Prev(nav)
	for pc != nil && pc.IsNewline() {
		pc = pc.Prev(nav)
	}
	return pc
}

// NextNNLNP returns the next non-newline non-preproc chunk.
func (c *Chunk) NextNNLNP(nav Nav) *Chunk {
	pc := c.Next(nav)
	for pc != nil && (pc.IsNewline() || pc.IsPreproc()) {
		pc = pc.Next(nav)
	}
	return pc
}

// PrevNNLNP returns the previous non-newline non-preproc chunk.
func (c *Chunk) PrevNNLNP(nav Nav) *Chunk {
	pc := c.Prev(nav)
	for pc != nil && (pc.IsNewline() || pc.IsPreproc()) {
		pc = pc.Prev(nav)
	}
	return pc
}

// NextKind scans forward for a chunk of the given kind. A level >= 0
// additionally requires a matching level.
func (c *Chunk) NextKind(k Kind, level int, nav Nav) *Chunk {
	for pc := c.Next(nav); pc != nil; pc = pc.Next(nav) {
		if pc.Kind == k && (level < 0 || pc.Level == level) {
			return pc
		}
	}
	return nil
}

// PrevKind scans backward for a chunk of the given kind at the level.
func (c *Chunk) PrevKind(k Kind, level int, nav Nav) *Chunk {
	for pc := c.Prev(nav); pc != nil; pc = pc.Prev(nav) {
		if pc.Kind == k && (level < 0 || pc.Level == level) {
			return pc
		}
	}
	return nil
}

// NextText scans forward for a chunk with the given text at the level.
func (c *Chunk) NextText(s string, level int, nav Nav) *Chunk {
	for pc := c.Next(nav); pc != nil; pc = pc.Next(nav) {
		if pc.Text == s && (level < 0 || pc.Level == level) {
			return pc
		}
	}
	return nil
}

// SkipToMatch returns the matching close delimiter for an open delimiter
// (the close kind is open+1, at the same level). Non-open chunks are
// returned unchanged; nil means no match was found.
func (c *Chunk) SkipToMatch(nav Nav) *Chunk {
	if c != nil && c.Kind.IsOpen() {
		return c.NextKind(c.Kind+1, c.Level, nav)
	}
	return c
}

// SkipToMatchRev returns the matching open delimiter for a close one.
func (c *Chunk) SkipToMatchRev(nav Nav) *Chunk {
	if c != nil && c.Kind.IsClose() {
		return c.PrevKind(c.Kind-1, c.Level, nav)
	}
	return c
}
