package main

import (
	"github.com/spf13/cobra"

	"github.com/ctoks/ctoks/internal/emit"
	"github.com/ctoks/ctoks/internal/pipeline"
)

var dumpCmd = &cobra.Command{
	Use:   "dump <file>",
	Short: "Dump the classified token stream of one file",
	Long: `Dump analyzes a single file and prints every token with its kind,
parent kind, scope, column range, nesting levels, text, and flags.
Nothing is written to the index.`,
	Args: cobra.ExactArgs(1),
	RunE: runDump,
}

func runDump(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	lf, err := forcedLang()
	if err != nil {
		return err
	}

	p := pipeline.New(nil, cfg, lf)
	ws, _, err := p.Analyze(args[0])
	if err != nil {
		return err
	}
	return emit.Dump(ws, cmd.OutOrStdout())
}
