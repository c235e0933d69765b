package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"golisp/pkg/lisp"
)

func newRunCmd() *cobra.Command {
	var verbose bool
	cmd := &cobra.Command{
		Use:   "run <file>",
		Short: "Translate a file of expressions",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runFile(args[0], verbose)
		},
	}
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "show verbose output")
	return cmd
}

func runFile(path string, verbose bool) error {
	content, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading %q: %w", path, err)
	}

	if verbose {
		fmt.Printf("Reading file: %s\n", path)
		fmt.Printf("File contains %d lines\n", len(strings.Split(string(content), "\n")))
	}

	translated := 0
	for i, line := range strings.Split(string(content), "\n") {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" || strings.HasPrefix(trimmed, ";") {
			continue
		}
		code, err := lisp.TranslateSource(trimmed)
		if err != nil {
			return fmt.Errorf("line %d: %w", i+1, err)
		}
		out, err := lisp.Gofmt(code)
		if err != nil {
			return fmt.Errorf("line %d: %w", i+1, err)
		}
		fmt.Printf("%s\n  => %s\n", trimmed, out)
		translated++
	}

	if translated == 0 {
		fmt.Println("No expressions found in file")
		return nil
	}
	fmt.Printf("Translated %d expressions\n", translated)
	return nil
}
