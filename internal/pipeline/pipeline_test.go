package pipeline

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/ctoks/ctoks/internal/config"
	"github.com/ctoks/ctoks/internal/emit"
	"github.com/ctoks/ctoks/internal/lang"
	"github.com/ctoks/ctoks/internal/store"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
	return path
}

func TestRunIndexesFiles(t *testing.T) {
	dir := t.TempDir()
	cPath := writeFile(t, dir, "main.c",
		"int add(int a, int b) { return a+b; }\nint add(int, int);\n")

	s, err := store.OpenMemory()
	if err != nil {
		t.Fatalf("OpenMemory: %v", err)
	}
	defer s.Close()

	p := New(s, config.Default(), lang.None)
	if err := p.Run(context.Background(), []string{cPath}); err != nil {
		t.Fatalf("Run: %v", err)
	}

	defs, err := s.Lookup("add", emit.Def)
	if err != nil {
		t.Fatalf("Lookup: %v", err)
	}
	if len(defs) != 1 {
		t.Fatalf("expected 1 def of add, got %d", len(defs))
	}
	if defs[0].Entity != "FUNCTION" {
		t.Errorf("expected FUNCTION, got %s", defs[0].Entity)
	}

	decls, err := s.Lookup("add", emit.Decl)
	if err != nil {
		t.Fatalf("Lookup decls: %v", err)
	}
	if len(decls) != 1 {
		t.Fatalf("expected 1 decl of add, got %d", len(decls))
	}
}

func TestRunSkipsUnchanged(t *testing.T) {
	dir := t.TempDir()
	cPath := writeFile(t, dir, "x.c", "int v;\n")

	s, err := store.OpenMemory()
	if err != nil {
		t.Fatalf("OpenMemory: %v", err)
	}
	defer s.Close()

	p := New(s, config.Default(), lang.None)
	if err := p.Run(context.Background(), []string{cPath}); err != nil {
		t.Fatalf("first run: %v", err)
	}
	if err := p.Run(context.Background(), []string{cPath}); err != nil {
		t.Fatalf("second run: %v", err)
	}

	// No duplicate rows after the no-op second run.
	defs, err := s.Lookup("v", emit.Def)
	if err != nil {
		t.Fatalf("Lookup: %v", err)
	}
	if len(defs) != 1 {
		t.Fatalf("expected 1 def of v, got %d", len(defs))
	}

	// A content change re-indexes.
	writeFile(t, dir, "x.c", "int v;\nint w;\n")
	if err := p.Run(context.Background(), []string{cPath}); err != nil {
		t.Fatalf("third run: %v", err)
	}
	defs, _ = s.Lookup("w", emit.Def)
	if len(defs) != 1 {
		t.Fatalf("expected def of w after change, got %d", len(defs))
	}
	defs, _ = s.Lookup("v", emit.Def)
	if len(defs) != 1 {
		t.Fatalf("expected still 1 def of v, got %d", len(defs))
	}
}

func TestRunCancelled(t *testing.T) {
	dir := t.TempDir()
	cPath := writeFile(t, dir, "y.c", "int q;\n")

	s, err := store.OpenMemory()
	if err != nil {
		t.Fatalf("OpenMemory: %v", err)
	}
	defer s.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	p := New(s, config.Default(), lang.None)
	if err := p.Run(ctx, []string{cPath}); err == nil {
		t.Fatal("expected error from cancelled context")
	}

	// Nothing was written.
	defs, _ := s.Lookup("q", emit.Def)
	if len(defs) != 0 {
		t.Fatalf("cancelled run wrote %d rows", len(defs))
	}
}

func TestLanguageOverride(t *testing.T) {
	dir := t.TempDir()
	// A .c extension forced to C++.
	path := writeFile(t, dir, "odd.c", "namespace N { }\n")

	s, err := store.OpenMemory()
	if err != nil {
		t.Fatalf("OpenMemory: %v", err)
	}
	defer s.Close()

	p := New(s, config.Default(), lang.CPP)
	if err := p.Run(context.Background(), []string{path}); err != nil {
		t.Fatalf("Run: %v", err)
	}
	defs, err := s.Lookup("N", emit.Def)
	if err != nil {
		t.Fatalf("Lookup: %v", err)
	}
	if len(defs) != 1 || defs[0].Entity != "NAMESPACE" {
		t.Fatalf("namespace not indexed under forced C++: %+v", defs)
	}
}

func TestDigestStable(t *testing.T) {
	d1 := Digest([]byte("hello"))
	d2 := Digest([]byte("hello"))
	d3 := Digest([]byte("world"))
	if d1 != d2 {
		t.Error("digest not deterministic")
	}
	if d1 == d3 {
		t.Error("digest collision on different content")
	}
	if len(d1) != 32 {
		t.Errorf("expected 128-bit hex digest, got %d chars", len(d1))
	}
}

func TestAnalyzeDoesNotTouchStore(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "z.c", "int r;\n")

	p := New(nil, config.Default(), lang.None)
	ws, entries, err := p.Analyze(path)
	if err != nil {
		t.Fatalf("Analyze: %v", err)
	}
	if ws.Chunks.Len() == 0 {
		t.Fatal("empty chunk list")
	}
	if len(entries) == 0 {
		t.Fatal("no entries")
	}
}
