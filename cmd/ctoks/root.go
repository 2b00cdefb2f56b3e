package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/ctoks/ctoks/internal/config"
	"github.com/ctoks/ctoks/internal/lang"
	"github.com/ctoks/ctoks/internal/store"
)

var (
	flagDB       string
	flagLang     string
	flagConfig   string
	flagLogLevel string
)

var rootCmd = &cobra.Command{
	Use:   "ctoks",
	Short: "A symbol indexer for C-family languages",
	Long: `ctoks tokenizes and classifies C, C++, Objective-C, C#, D, Java,
Pawn, Vala and ECMAScript sources and records every identifier
occurrence (definition, declaration, reference) with its qualified
scope in a SQLite index.`,
	Version:       version,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return setupLogging(flagLogLevel)
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagDB, "db", "TOKS", "index database file")
	rootCmd.PersistentFlags().StringVarP(&flagLang, "lang", "l", "",
		"language override: C, CPP, D, CS, JAVA, VALA, PAWN, OC, OC+, ECMA")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "YAML config file")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "warn",
		"log level: debug, info, warn, error")

	rootCmd.AddCommand(indexCmd)
	rootCmd.AddCommand(lookupCmd)
	rootCmd.AddCommand(dumpCmd)
	rootCmd.AddCommand(watchCmd)
	rootCmd.AddCommand(versionCmd)
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "ctoks %s\n", version)
	},
}

func setupLogging(level string) error {
	var lv slog.Level
	if err := lv.UnmarshalText([]byte(level)); err != nil {
		return fmt.Errorf("bad log level %q: %w", level, err)
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr,
		&slog.HandlerOptions{Level: lv})))
	return nil
}

// loadConfig applies the config file over the defaults.
func loadConfig() (config.Config, error) {
	return config.Load(flagConfig)
}

// forcedLang parses the --lang override.
func forcedLang() (lang.Flags, error) {
	if flagLang == "" {
		return lang.None, nil
	}
	lf := lang.FromTag(flagLang)
	if lf == lang.None {
		return lang.None, fmt.Errorf("unknown language %q", flagLang)
	}
	return lf, nil
}

// openStore opens the index named by --db.
func openStore() (*store.Store, error) {
	s, err := store.Open(flagDB)
	if err != nil {
		return nil, fmt.Errorf("open index %s: %w", flagDB, err)
	}
	return s, nil
}
