package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/ctoks/ctoks/internal/discover"
	"github.com/ctoks/ctoks/internal/pipeline"
)

var flagFileList string

var indexCmd = &cobra.Command{
	Use:   "index [paths...]",
	Short: "Index source files or directories",
	Long: `Index walks the given files and directories, analyzes every source
file with a recognized extension, and records identifier occurrences
in the index database. Unchanged files (by content digest) are
skipped; entries of vanished files are pruned first.`,
	RunE: runIndex,
}

func init() {
	indexCmd.Flags().StringVarP(&flagFileList, "file-list", "F", "",
		"read files to process from file, one per line ('-' is stdin)")
}

// readFileList parses an -F file list: one path per line, blank lines
// and '#' comments skipped.
func readFileList(path string) ([]string, error) {
	var r io.Reader
	if path == "-" {
		r = os.Stdin
	} else {
		f, err := os.Open(path)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		r = f
	}
	var files []string
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		files = append(files, strings.ReplaceAll(line, "\\", "/"))
	}
	return files, sc.Err()
}

func runIndex(cmd *cobra.Command, args []string) error {
	if len(args) == 0 && flagFileList == "" {
		return fmt.Errorf("nothing to index: pass paths or -F <list>")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	lf, err := forcedLang()
	if err != nil {
		return err
	}

	var files []string
	for _, root := range args {
		found, err := discover.Discover(ctx, root, nil)
		if err != nil {
			return fmt.Errorf("discover %s: %w", root, err)
		}
		files = append(files, found...)
	}
	if flagFileList != "" {
		listed, err := readFileList(flagFileList)
		if err != nil {
			return fmt.Errorf("read file list: %w", err)
		}
		files = append(files, listed...)
	}

	s, err := openStore()
	if err != nil {
		return err
	}
	defer s.Close()

	if _, err := s.PruneMissing(func(path string) bool {
		_, statErr := os.Stat(path)
		return statErr == nil
	}); err != nil {
		return fmt.Errorf("prune index: %w", err)
	}

	return pipeline.New(s, cfg, lf).Run(ctx, files)
}
