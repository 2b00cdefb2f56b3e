// Package pipeline orchestrates per-file analysis and index writes.
// Files are processed in parallel (the core is pure per file); the
// store is written sequentially, one transaction per file.
package pipeline

import (
	"context"
	"encoding/hex"
	"fmt"
	"log/slog"
	"os"
	"runtime"
	"time"

	"github.com/zeebo/xxh3"
	"golang.org/x/sync/errgroup"

	"github.com/ctoks/ctoks/internal/chunk"
	"github.com/ctoks/ctoks/internal/combine"
	"github.com/ctoks/ctoks/internal/config"
	"github.com/ctoks/ctoks/internal/emit"
	"github.com/ctoks/ctoks/internal/lang"
	"github.com/ctoks/ctoks/internal/scope"
	"github.com/ctoks/ctoks/internal/store"
	"github.com/ctoks/ctoks/internal/tokenize"
)

// Pipeline drives indexing of a file set into one store.
type Pipeline struct {
	Store      *store.Store
	Cfg        config.Config
	ForcedLang lang.Flags // overrides extension inference when non-zero
}

// New creates a Pipeline.
func New(s *store.Store, cfg config.Config, forced lang.Flags) *Pipeline {
	return &Pipeline{Store: s, Cfg: cfg, ForcedLang: forced}
}

// Digest returns the hex xxh3-128 digest of data.
func Digest(data []byte) string {
	sum := xxh3.Hash128(data).Bytes()
	return hex.EncodeToString(sum[:])
}

// Process runs the full analysis chain on one workspace: tokenize,
// cleanup, brace tracking, symbol classification, labels, scopes.
// It never fails; glitches are logged and the pipeline completes.
func Process(ws *chunk.Workspace) {
	tokenize.Run(ws)
	tokenize.Cleanup(ws)
	combine.BraceCleanup(ws)
	combine.FixSymbols(ws)
	combine.CombineLabels(ws)
	scope.Assign(ws)
}

// Analyze reads, processes, and projects one file without touching the
// store. Used by the dump command and tests.
func (p *Pipeline) Analyze(path string) (*chunk.Workspace, []emit.Entry, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, nil, fmt.Errorf("read source: %w", err)
	}
	lf := p.ForcedLang
	if lf == lang.None {
		lf = lang.FromFilename(path)
	}
	ws := chunk.NewWorkspace(path, data, lf, p.Cfg)
	Process(ws)
	return ws, emit.Entries(ws), nil
}

// fileResult is the output of the parallel analysis stage.
type fileResult struct {
	Path    string
	Digest  string
	Entries []emit.Entry
	Err     error
}

// Run indexes the given files. Analysis runs on all CPU cores; store
// writes happen sequentially afterwards, each file under its own
// transaction. A cancelled context stops cleanly between files; a
// cancelled file writes nothing.
func (p *Pipeline) Run(ctx context.Context, files []string) error {
	if len(files) == 0 {
		return nil
	}
	start := time.Now()
	slog.Info("pipeline.start", "files", len(files))

	results := make([]*fileResult, len(files))
	numWorkers := runtime.NumCPU()
	if numWorkers > len(files) {
		numWorkers = len(files)
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(numWorkers)
	for i, path := range files {
		g.Go(func() error {
			if gctx.Err() != nil {
				return gctx.Err()
			}
			results[i] = p.analyzeOne(path)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	indexed := 0
	for _, r := range results {
		if r == nil {
			continue
		}
		if err := ctx.Err(); err != nil {
			return err
		}
		if r.Err != nil {
			slog.Warn("pipeline.file.err", "path", r.Path, "err", r.Err)
			continue
		}
		wrote, err := p.writeOne(r)
		if err != nil {
			return fmt.Errorf("index %s: %w", r.Path, err)
		}
		if wrote {
			indexed++
		}
	}

	slog.Info("pipeline.done", "files", len(files), "indexed", indexed,
		"elapsed", time.Since(start))
	return nil
}

// analyzeOne is the pure per-file stage: read, digest, classify.
func (p *Pipeline) analyzeOne(path string) *fileResult {
	r := &fileResult{Path: path}
	data, err := os.ReadFile(path)
	if err != nil {
		r.Err = err
		return r
	}
	r.Digest = Digest(data)

	lf := p.ForcedLang
	if lf == lang.None {
		lf = lang.FromFilename(path)
	}
	slog.Debug("pipeline.file", "path", path, "lang", lf.String())

	ws := chunk.NewWorkspace(path, data, lf, p.Cfg)
	Process(ws)
	r.Entries = emit.Entries(ws)
	return r
}

// writeOne persists one analyzed file under a single transaction.
// Returns false when the stored digest already matches.
func (p *Pipeline) writeOne(r *fileResult) (bool, error) {
	wrote := false
	err := p.Store.WithTransaction(func(tx *store.Store) error {
		needed, fileID, err := tx.PrepareForFile(r.Path, r.Digest)
		if err != nil {
			return err
		}
		if !needed {
			return nil
		}
		wrote = true
		return tx.InsertEntries(fileID, r.Entries)
	})
	return wrote, err
}
