package lisp

import (
	"bytes"
	"fmt"
	"go/format"
	"go/parser"
	"go/token"
)

// Gofmt validates that a generated fragment is a single Go expression and
// pretty-prints it with the host toolchain's formatter. Every successful
// expansion must pass this: the output boundary is one expression-shaped
// fragment, never a sequence of declarations.
func Gofmt(c Code) (string, error) {
	node, err := parser.ParseExpr(string(c))
	if err != nil {
		return "", fmt.Errorf("generated fragment is not a single expression: %w", err)
	}
	var buf bytes.Buffer
	if err := format.Node(&buf, token.NewFileSet(), node); err != nil {
		return "", fmt.Errorf("formatting generated fragment: %w", err)
	}
	return buf.String(), nil
}
