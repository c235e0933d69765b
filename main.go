package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"golisp/pkg/lisp"
)

func main() {
	inPath := flag.String("in", "", "input lisp file path, translated line by line")
	outPath := flag.String("out", "", "output file path (default: input with .go.txt extension)")
	expr := flag.String("expr", "", "translate a single expression and print the result")
	raw := flag.Bool("raw", false, "print fragments exactly as generated, without formatting")
	flag.Parse()

	if *expr != "" && *inPath != "" {
		fmt.Fprintln(os.Stderr, "use either -expr or -in, not both")
		os.Exit(2)
	}

	if *expr != "" {
		out, err := translate(*expr, *raw)
		if err != nil {
			fmt.Fprintf(os.Stderr, "translation failed: %v\n", err)
			os.Exit(1)
		}
		fmt.Println(out)
		return
	}

	if *inPath == "" {
		fmt.Fprintln(os.Stderr, "nothing to do: provide -in <file> to translate a file, or -expr <text> for one expression")
		flag.Usage()
		os.Exit(2)
	}

	source, err := os.ReadFile(*inPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to read input file %q: %v\n", *inPath, err)
		os.Exit(1)
	}

	fragments, err := translateLines(string(source), *raw)
	if err != nil {
		fmt.Fprintf(os.Stderr, "translation failed: %v\n", err)
		os.Exit(1)
	}

	output := *outPath
	if output == "" {
		output = defaultOutputPath(*inPath)
	}
	if err := os.WriteFile(output, []byte(strings.Join(fragments, "\n\n")+"\n"), 0o644); err != nil {
		fmt.Fprintf(os.Stderr, "failed to write output file %q: %v\n", output, err)
		os.Exit(1)
	}
	fmt.Printf("translated %d expressions -> %s\n", len(fragments), output)
}

// translateLines turns each non-empty, non-comment line into one fragment.
func translateLines(source string, raw bool) ([]string, error) {
	var fragments []string
	for i, line := range strings.Split(source, "\n") {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" || strings.HasPrefix(trimmed, ";") {
			continue
		}
		out, err := translate(trimmed, raw)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", i+1, err)
		}
		fragments = append(fragments, out)
	}
	return fragments, nil
}

func translate(src string, raw bool) (string, error) {
	code, err := lisp.TranslateSource(src)
	if err != nil {
		return "", err
	}
	if raw {
		return string(code), nil
	}
	return lisp.Gofmt(code)
}

func defaultOutputPath(inPath string) string {
	ext := filepath.Ext(inPath)
	if ext == "" {
		return inPath + ".go.txt"
	}
	return strings.TrimSuffix(inPath, ext) + ".go.txt"
}
