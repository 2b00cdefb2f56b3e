package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefault(t *testing.T) {
	cfg := Default()
	if cfg.InputTabSize != 8 {
		t.Errorf("tab size: got %d, want 8", cfg.InputTabSize)
	}
	if cfg.StringEscapeChar != '\\' {
		t.Errorf("escape char: got %q", cfg.StringEscapeChar)
	}
	if cfg.StringEscapeChar2 != 0 {
		t.Errorf("escape char 2 should default off, got %q", cfg.StringEscapeChar2)
	}
}

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg != Default() {
		t.Errorf("expected defaults, got %+v", cfg)
	}
}

func TestLoadOverrides(t *testing.T) {
	path := filepath.Join(t.TempDir(), "ctoks.yaml")
	data := "input_tab_size: 4\nstring_escape_char: \"^\"\nstring_escape_char2: \"\\\"\"\n"
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.InputTabSize != 4 {
		t.Errorf("tab size: got %d, want 4", cfg.InputTabSize)
	}
	if cfg.StringEscapeChar != '^' {
		t.Errorf("escape char: got %q", cfg.StringEscapeChar)
	}
	if cfg.StringEscapeChar2 != '"' {
		t.Errorf("escape char 2: got %q", cfg.StringEscapeChar2)
	}
}

func TestLoadBadYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(path, []byte("input_tab_size: [not an int\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); err == nil {
		t.Fatal("expected parse error")
	}
}
