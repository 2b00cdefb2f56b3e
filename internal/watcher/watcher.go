// Package watcher re-indexes files when they change on disk.
package watcher

import (
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/ctoks/ctoks/internal/lang"
)

const debounce = 500 * time.Millisecond

// IndexFunc is the callback invoked with the batch of changed files.
type IndexFunc func(ctx context.Context, files []string) error

// Watcher watches directory roots recursively and triggers re-indexing
// of changed source files, batched over a debounce window.
type Watcher struct {
	roots   []string
	indexFn IndexFunc
}

// New creates a Watcher over the given roots.
func New(roots []string, indexFn IndexFunc) *Watcher {
	return &Watcher{roots: roots, indexFn: indexFn}
}

// Run blocks until ctx is cancelled.
func (w *Watcher) Run(ctx context.Context) error {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer fsw.Close()

	for _, root := range w.roots {
		if err := addRecursive(fsw, root); err != nil {
			return err
		}
	}

	pending := make(map[string]bool)
	var timer *time.Timer
	var timerC <-chan time.Time

	flush := func() {
		files := make([]string, 0, len(pending))
		for f := range pending {
			files = append(files, f)
		}
		pending = make(map[string]bool)
		timerC = nil
		if len(files) == 0 {
			return
		}
		slog.Info("watcher.reindex", "files", len(files))
		if err := w.indexFn(ctx, files); err != nil {
			slog.Warn("watcher.reindex.err", "err", err)
		}
	}

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()

		case ev, ok := <-fsw.Events:
			if !ok {
				return nil
			}
			if ev.Op&fsnotify.Create != 0 {
				if info, err := os.Stat(ev.Name); err == nil && info.IsDir() {
					_ = addRecursive(fsw, ev.Name)
					continue
				}
			}
			if ev.Op&(fsnotify.Write|fsnotify.Create) == 0 {
				continue
			}
			if !indexable(ev.Name) {
				continue
			}
			pending[ev.Name] = true
			if timer == nil {
				timer = time.NewTimer(debounce)
			} else {
				timer.Reset(debounce)
			}
			timerC = timer.C

		case <-timerC:
			flush()

		case err, ok := <-fsw.Errors:
			if !ok {
				return nil
			}
			slog.Warn("watcher.err", "err", err)
		}
	}
}

func indexable(path string) bool {
	base := filepath.Base(path)
	for _, ext := range lang.Extensions() {
		if strings.HasSuffix(base, ext) {
			return true
		}
	}
	return false
}

func addRecursive(fsw *fsnotify.Watcher, root string) error {
	return filepath.Walk(root, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return nil
		}
		if info.IsDir() {
			if strings.HasPrefix(info.Name(), ".") && path != root {
				return filepath.SkipDir
			}
			return fsw.Add(path)
		}
		return nil
	})
}
