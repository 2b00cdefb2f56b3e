package discover

import (
	"context"
	"os"
	"path/filepath"
	"testing"
)

func touch(t *testing.T, path string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte("int x;\n"), 0o644); err != nil {
		t.Fatal(err)
	}
}

func names(files []string) map[string]bool {
	out := make(map[string]bool, len(files))
	for _, f := range files {
		out[filepath.Base(f)] = true
	}
	return out
}

func TestDiscoverFiltersByExtension(t *testing.T) {
	dir := t.TempDir()
	touch(t, filepath.Join(dir, "a.c"))
	touch(t, filepath.Join(dir, "b.cpp"))
	touch(t, filepath.Join(dir, "sub", "c.java"))
	touch(t, filepath.Join(dir, "README.md"))
	touch(t, filepath.Join(dir, "script.py"))

	files, err := Discover(context.Background(), dir, nil)
	if err != nil {
		t.Fatalf("Discover: %v", err)
	}
	got := names(files)
	for _, want := range []string{"a.c", "b.cpp", "c.java"} {
		if !got[want] {
			t.Errorf("missing %s in %v", want, files)
		}
	}
	if got["README.md"] || got["script.py"] {
		t.Errorf("non-source files leaked: %v", files)
	}
}

func TestDiscoverSkipsIgnoredDirs(t *testing.T) {
	dir := t.TempDir()
	touch(t, filepath.Join(dir, "keep.c"))
	touch(t, filepath.Join(dir, ".git", "skip.c"))
	touch(t, filepath.Join(dir, "node_modules", "skip2.c"))
	touch(t, filepath.Join(dir, "build", "skip3.c"))

	files, err := Discover(context.Background(), dir, nil)
	if err != nil {
		t.Fatalf("Discover: %v", err)
	}
	if len(files) != 1 || filepath.Base(files[0]) != "keep.c" {
		t.Errorf("unexpected files: %v", files)
	}
}

func TestDiscoverIgnoreFile(t *testing.T) {
	dir := t.TempDir()
	touch(t, filepath.Join(dir, "keep.c"))
	touch(t, filepath.Join(dir, "gen", "generated.c"))
	touch(t, filepath.Join(dir, "legacy.c"))
	if err := os.WriteFile(filepath.Join(dir, ".ctoksignore"),
		[]byte("# generated code\ngen/**\nlegacy.c\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	files, err := Discover(context.Background(), dir, nil)
	if err != nil {
		t.Fatalf("Discover: %v", err)
	}
	got := names(files)
	if !got["keep.c"] {
		t.Errorf("keep.c missing: %v", files)
	}
	if got["generated.c"] || got["legacy.c"] {
		t.Errorf("ignored files leaked: %v", files)
	}
}

func TestDiscoverPlainFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "odd.weird")
	touch(t, path)

	// Explicit file arguments bypass extension filtering.
	files, err := Discover(context.Background(), path, nil)
	if err != nil {
		t.Fatalf("Discover: %v", err)
	}
	if len(files) != 1 || files[0] != path {
		t.Errorf("unexpected: %v", files)
	}
}

func TestDiscoverCancelled(t *testing.T) {
	dir := t.TempDir()
	touch(t, filepath.Join(dir, "a.c"))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := Discover(ctx, dir, nil); err == nil {
		t.Fatal("expected context error")
	}
}
