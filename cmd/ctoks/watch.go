package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/ctoks/ctoks/internal/discover"
	"github.com/ctoks/ctoks/internal/pipeline"
	"github.com/ctoks/ctoks/internal/watcher"
)

var watchCmd = &cobra.Command{
	Use:   "watch [paths...]",
	Short: "Index paths, then re-index on file changes",
	Long: `Watch performs an initial index of the given directories, then keeps
running and re-indexes any source file that changes. Stop with Ctrl-C.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runWatch,
}

func runWatch(cmd *cobra.Command, args []string) error {
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

	s, err := openStore()
	if err != nil {
		return err
	}
	defer s.Close()

	p := pipeline.New(s, cfg, lf)

	var files []string
	for _, root := range args {
		found, err := discover.Discover(ctx, root, nil)
		if err != nil {
			return fmt.Errorf("discover %s: %w", root, err)
		}
		files = append(files, found...)
	}
	if err := p.Run(ctx, files); err != nil {
		return err
	}

	w := watcher.New(args, func(ctx context.Context, changed []string) error {
		return p.Run(ctx, changed)
	})
	if err := w.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	return nil
}
