package chunk

import (
	"github.com/ctoks/ctoks/internal/config"
	"github.com/ctoks/ctoks/internal/lang"
)

// Workspace is the per-file context carried through every pipeline stage.
// It owns the chunk list exclusively; nothing in it is shared between
// concurrently processed files.
type Workspace struct {
	Filename string
	Data     []byte
	Lang     lang.Flags
	Cfg      config.Config

	Chunks List
}

// NewWorkspace builds a workspace for one file.
func NewWorkspace(filename string, data []byte, lf lang.Flags, cfg config.Config) *Workspace {
	return &Workspace{
		Filename: filename,
		Data:     data,
		Lang:     lf,
		Cfg:      cfg,
	}
}

// AddTail appends a copy of the chunk template to the list.
func (w *Workspace) AddTail(tmpl *Chunk) *Chunk {
	pc := *tmpl
	return w.Chunks.Append(&pc)
}

// AddAfter inserts a copy of the chunk template after ref, inheriting
// ref's copy flags the same way the tokenizer does for fresh chunks.
func (w *Workspace) AddAfter(tmpl *Chunk, ref *Chunk) *Chunk {
	pc := *tmpl
	if ref != nil {
		pc.Flags |= ref.Flags & CopyFlags
	}
	return w.Chunks.InsertAfter(&pc, ref)
}

// AddBefore inserts a copy of the chunk template before ref.
func (w *Workspace) AddBefore(tmpl *Chunk, ref *Chunk) *Chunk {
	pc := *tmpl
	if ref != nil {
		pc.Flags |= ref.Flags & CopyFlags
	}
	return w.Chunks.InsertBefore(&pc, ref)
}
