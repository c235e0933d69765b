package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
)

func newCheckCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "check <file>",
		Short: "Validate syntax without translating",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return checkFile(args[0])
		},
	}
}

// issue is a single finding from the per-line scan.
type issue struct {
	Line    int
	Warning bool
	Msg     string
}

func checkFile(path string) error {
	content, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading %q: %w", path, err)
	}

	fmt.Printf("Checking syntax in: %s\n", path)

	issues := checkLines(string(content))
	errs, warns := 0, 0
	for _, is := range issues {
		if is.Warning {
			fmt.Printf("warning: line %d: %s\n", is.Line, is.Msg)
			warns++
		} else {
			fmt.Printf("error: line %d: %s\n", is.Line, is.Msg)
			errs++
		}
	}

	if errs == 0 && warns == 0 {
		fmt.Println("Syntax check passed, no issues found")
		return nil
	}
	fmt.Printf("\nSummary: %d errors, %d warnings\n", errs, warns)
	if errs > 0 {
		os.Exit(1)
	}
	return nil
}

// checkLines runs a shallow per-line scan: each non-empty, non-comment line
// must balance its parentheses and brackets, and should start with an
// opening delimiter. Lines that never open a delimiter are flagged as
// warnings, not errors.
func checkLines(content string) []issue {
	var issues []issue
	for i, line := range strings.Split(content, "\n") {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" || strings.HasPrefix(trimmed, ";") {
			continue
		}

		parens, brackets := 0, 0
		inString := false
		escaped := false
		for _, r := range trimmed {
			if inString {
				switch {
				case escaped:
					escaped = false
				case r == '\\':
					escaped = true
				case r == '"':
					inString = false
				}
				continue
			}
			switch r {
			case '"':
				inString = true
			case '(':
				parens++
			case ')':
				parens--
			case '[':
				brackets++
			case ']':
				brackets--
			}
		}

		switch {
		case inString:
			issues = append(issues, issue{Line: i + 1, Msg: "unterminated string: " + trimmed})
		case parens > 0:
			issues = append(issues, issue{Line: i + 1, Msg: "unclosed parenthesis: " + trimmed})
		case parens < 0:
			issues = append(issues, issue{Line: i + 1, Msg: "unmatched closing parenthesis: " + trimmed})
		case brackets > 0:
			issues = append(issues, issue{Line: i + 1, Msg: "unclosed bracket: " + trimmed})
		case brackets < 0:
			issues = append(issues, issue{Line: i + 1, Msg: "unmatched closing bracket: " + trimmed})
		case !strings.HasPrefix(trimmed, "(") && !strings.HasPrefix(trimmed, "["):
			issues = append(issues, issue{Line: i + 1, Warning: true, Msg: "possible invalid syntax: " + trimmed})
		}
	}
	return issues
}
