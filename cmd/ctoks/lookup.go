package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ctoks/ctoks/internal/emit"
)

var (
	flagRefs  bool
	flagDefs  bool
	flagDecls bool
)

var lookupCmd = &cobra.Command{
	Use:   "lookup <identifier>",
	Short: "Look up an identifier in the index",
	Long: `Lookup prints every indexed occurrence of the identifier. The name
may contain '?' and '*' wildcards. Without role flags all three roles
are shown.`,
	Args: cobra.ExactArgs(1),
	RunE: runLookup,
}

func init() {
	lookupCmd.Flags().BoolVar(&flagRefs, "refs", false, "show only references")
	lookupCmd.Flags().BoolVar(&flagDefs, "defs", false, "show only definitions")
	lookupCmd.Flags().BoolVar(&flagDecls, "decls", false, "show only declarations")
}

func runLookup(cmd *cobra.Command, args []string) error {
	refs, defs, decls := flagRefs, flagDefs, flagDecls
	if !refs && !defs && !decls {
		refs, defs, decls = true, true, true
	}

	s, err := openStore()
	if err != nil {
		return err
	}
	defer s.Close()

	roles := make([]emit.Role, 0, 3)
	if decls {
		roles = append(roles, emit.Decl)
	}
	if defs {
		roles = append(roles, emit.Def)
	}
	if refs {
		roles = append(roles, emit.Ref)
	}

	out := cmd.OutOrStdout()
	for _, role := range roles {
		rows, err := s.Lookup(args[0], role)
		if err != nil {
			return err
		}
		for _, r := range rows {
			fmt.Fprintf(out, "%s:%d:%d:%d %s %s %s %s\n",
				r.Path, r.Line, r.ColStart, r.ColEnd,
				r.Scope, r.Entity, r.Role, r.Identifier)
		}
	}
	return nil
}
