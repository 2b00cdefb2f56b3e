// Package discover walks directory roots and returns indexable source
// files, honoring ignore patterns.
package discover

import (
	"bufio"
	"context"
	"os"
	"path/filepath"
	"strings"

	"github.com/bmatcuk/doublestar/v4"

	"github.com/ctoks/ctoks/internal/lang"
)

// ignoreDirs are directory names always skipped during discovery.
var ignoreDirs = map[string]bool{
	".cache": true, ".git": true, ".hg": true, ".idea": true,
	".svn": true, ".tmp": true, ".vs": true, ".vscode": true,
	"bin": true, "build": true, "dist": true, "node_modules": true,
	"obj": true, "out": true, "target": true, "tmp": true, "vendor": true,
}

// Options configures file discovery.
type Options struct {
	// IgnoreFile names a file of doublestar glob patterns (one per
	// line, '#' comments). Defaults to <root>/.ctoksignore.
	IgnoreFile string
}

// loadIgnoreFile reads glob patterns, one per line.
func loadIgnoreFile(path string) []string {
	f, err := os.Open(path)
	if err != nil {
		return nil
	}
	defer f.Close()

	var patterns []string
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		patterns = append(patterns, line)
	}
	return patterns
}

// ignored matches a name or relative path against the extra patterns.
func ignored(name, rel string, patterns []string) bool {
	for _, pat := range patterns {
		if ok, _ := doublestar.Match(pat, name); ok {
			return true
		}
		if ok, _ := doublestar.Match(pat, filepath.ToSlash(rel)); ok {
			return true
		}
	}
	return false
}

// hasKnownExtension filters by the language extension table.
func hasKnownExtension(name string) bool {
	for _, ext := range lang.Extensions() {
		if strings.HasSuffix(name, ext) {
			return true
		}
	}
	return false
}

// Discover walks root and returns all source files with a recognized
// extension. A root that is a plain file is returned as-is, without
// extension filtering.
func Discover(ctx context.Context, root string, opts *Options) ([]string, error) {
	root, err := filepath.Abs(root)
	if err != nil {
		return nil, err
	}

	info, err := os.Stat(root)
	if err != nil {
		return nil, err
	}
	if !info.IsDir() {
		return []string{root}, nil
	}

	ignoreFile := filepath.Join(root, ".ctoksignore")
	if opts != nil && opts.IgnoreFile != "" {
		ignoreFile = opts.IgnoreFile
	}
	patterns := loadIgnoreFile(ignoreFile)

	var files []string
	err = filepath.Walk(root, func(path string, info os.FileInfo, walkErr error) error {
		if err := ctx.Err(); err != nil {
			return err
		}
		if walkErr != nil {
			return filepath.SkipDir
		}
		rel, _ := filepath.Rel(root, path)

		if info.IsDir() {
			if path != root && (ignoreDirs[info.Name()] || ignored(info.Name(), rel, patterns)) {
				return filepath.SkipDir
			}
			return nil
		}
		if ignored(info.Name(), rel, patterns) {
			return nil
		}
		if hasKnownExtension(info.Name()) {
			files = append(files, path)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return files, nil
}
