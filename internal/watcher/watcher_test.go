package watcher

import (
	"context"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"
)

func TestIndexable(t *testing.T) {
	cases := map[string]bool{
		"/tmp/a.c":       true,
		"/tmp/b.cpp":     true,
		"/tmp/Main.java": true,
		"/tmp/view.mm":   true,
		"/tmp/x.txt":     false,
		"/tmp/Makefile":  false,
	}
	for path, want := range cases {
		if got := indexable(path); got != want {
			t.Errorf("indexable(%q) = %v, want %v", path, got, want)
		}
	}
}

func TestWatcherTriggersOnWrite(t *testing.T) {
	dir := t.TempDir()

	var mu sync.Mutex
	var got []string
	done := make(chan struct{})

	w := New([]string{dir}, func(ctx context.Context, files []string) error {
		mu.Lock()
		got = append(got, files...)
		mu.Unlock()
		select {
		case <-done:
		default:
			close(done)
		}
		return nil
	})

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	go func() { _ = w.Run(ctx) }()

	// Give the watcher a moment to register before writing.
	time.Sleep(200 * time.Millisecond)
	path := filepath.Join(dir, "new.c")
	if err := os.WriteFile(path, []byte("int x;\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	select {
	case <-done:
	case <-ctx.Done():
		t.Fatal("watcher never fired")
	}

	mu.Lock()
	defer mu.Unlock()
	found := false
	for _, f := range got {
		if filepath.Base(f) == "new.c" {
			found = true
		}
	}
	if !found {
		t.Errorf("expected new.c in %v", got)
	}
}
