package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func main() {
	root := &cobra.Command{
		Use:   "golisp",
		Short: "A Lisp-like expression language translated to Go",
		Long: "golisp translates Lisp-like expressions into Go expression fragments.\n" +
			"Run with no subcommand to start the interactive REPL.",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRepl(false)
		},
	}

	root.AddCommand(newReplCmd(), newRunCmd(), newCheckCmd(), newExamplesCmd())

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
