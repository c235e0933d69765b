package lisp

import (
	"errors"
	"reflect"
	"testing"
)

func TestTokenize(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected []Token
		wantErr  bool
	}{
		{
			name:  "Empty",
			input: "",
			expected: []Token{
				{Type: EOF, Lexeme: "", Line: 1},
			},
		},
		{
			name:  "Delimiters And Operators",
			input: "( ) [ ] , + - * / = < > %",
			expected: []Token{
				{Type: LPAREN, Lexeme: "(", Line: 1},
				{Type: RPAREN, Lexeme: ")", Line: 1},
				{Type: LBRACKET, Lexeme: "[", Line: 1},
				{Type: RBRACKET, Lexeme: "]", Line: 1},
				{Type: COMMA, Lexeme: ",", Line: 1},
				{Type: PLUS, Lexeme: "+", Line: 1},
				{Type: MINUS, Lexeme: "-", Line: 1},
				{Type: STAR, Lexeme: "*", Line: 1},
				{Type: SLASH, Lexeme: "/", Line: 1},
				{Type: EQ, Lexeme: "=", Line: 1},
				{Type: LT, Lexeme: "<", Line: 1},
				{Type: GT, Lexeme: ">", Line: 1},
				{Type: PERCENT, Lexeme: "%", Line: 1},
				{Type: EOF, Lexeme: "", Line: 1},
			},
		},
		{
			name:  "Simple Form",
			input: "(+ 1 2)",
			expected: []Token{
				{Type: LPAREN, Lexeme: "(", Line: 1},
				{Type: PLUS, Lexeme: "+", Line: 1},
				{Type: INT, Lexeme: "1", Line: 1},
				{Type: INT, Lexeme: "2", Line: 1},
				{Type: RPAREN, Lexeme: ")", Line: 1},
				{Type: EOF, Lexeme: "", Line: 1},
			},
		},
		{
			name:  "Identifiers And Reserved Words",
			input: "if let do while try defn some_name",
			expected: []Token{
				{Type: IDENT, Lexeme: "if", Line: 1},
				{Type: IDENT, Lexeme: "let", Line: 1},
				{Type: IDENT, Lexeme: "do", Line: 1},
				{Type: IDENT, Lexeme: "while", Line: 1},
				{Type: IDENT, Lexeme: "try", Line: 1},
				{Type: IDENT, Lexeme: "defn", Line: 1},
				{Type: IDENT, Lexeme: "some_name", Line: 1},
				{Type: EOF, Lexeme: "", Line: 1},
			},
		},
		{
			name:  "Literals",
			input: `42 3.14 "yes" 'a' true false`,
			expected: []Token{
				{Type: INT, Lexeme: "42", Line: 1},
				{Type: FLOAT, Lexeme: "3.14", Line: 1},
				{Type: STRING, Lexeme: `"yes"`, Line: 1},
				{Type: CHAR, Lexeme: "'a'", Line: 1},
				{Type: IDENT, Lexeme: "true", Line: 1},
				{Type: IDENT, Lexeme: "false", Line: 1},
				{Type: EOF, Lexeme: "", Line: 1},
			},
		},
		{
			name:  "Hyphenated Identifier",
			input: "(with-vars [x] x)",
			expected: []Token{
				{Type: LPAREN, Lexeme: "(", Line: 1},
				{Type: IDENT, Lexeme: "with-vars", Line: 1},
				{Type: LBRACKET, Lexeme: "[", Line: 1},
				{Type: IDENT, Lexeme: "x", Line: 1},
				{Type: RBRACKET, Lexeme: "]", Line: 1},
				{Type: IDENT, Lexeme: "x", Line: 1},
				{Type: RPAREN, Lexeme: ")", Line: 1},
				{Type: EOF, Lexeme: "", Line: 1},
			},
		},
		{
			name:  "Minus With Spacing Stays An Operator",
			input: "a - b",
			expected: []Token{
				{Type: IDENT, Lexeme: "a", Line: 1},
				{Type: MINUS, Lexeme: "-", Line: 1},
				{Type: IDENT, Lexeme: "b", Line: 1},
				{Type: EOF, Lexeme: "", Line: 1},
			},
		},
		{
			name:  "Minus Before Number Is Not Joined",
			input: "x-1",
			expected: []Token{
				{Type: IDENT, Lexeme: "x", Line: 1},
				{Type: MINUS, Lexeme: "-", Line: 1},
				{Type: INT, Lexeme: "1", Line: 1},
				{Type: EOF, Lexeme: "", Line: 1},
			},
		},
		{
			name:  "Lines",
			input: "(\n1\n)",
			expected: []Token{
				{Type: LPAREN, Lexeme: "(", Line: 1},
				{Type: INT, Lexeme: "1", Line: 2},
				{Type: RPAREN, Lexeme: ")", Line: 3},
				{Type: EOF, Lexeme: "", Line: 3},
			},
		},
		{
			name:  "Comments Are Skipped",
			input: "// leading comment\n42",
			expected: []Token{
				{Type: INT, Lexeme: "42", Line: 2},
				{Type: EOF, Lexeme: "", Line: 2},
			},
		},
		{
			name:    "Unexpected Character",
			input:   "(+ 1 @)",
			wantErr: true,
		},
		{
			name:    "Unterminated String",
			input:   `(str "abc`,
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tokens, err := Tokenize(tt.input)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("Tokenize(%q) expected error, got %v", tt.input, tokens)
				}
				var serr *SyntaxError
				if !errors.As(err, &serr) {
					t.Fatalf("Tokenize(%q) error is %T, want *SyntaxError", tt.input, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("Tokenize(%q) failed: %v", tt.input, err)
			}
			if !reflect.DeepEqual(tokens, tt.expected) {
				t.Errorf("Tokenize(%q)\n got: %v\nwant: %v", tt.input, tokens, tt.expected)
			}
		})
	}
}

func TestTokenizeDeterministic(t *testing.T) {
	const input = `(let [x 3 y 4] (str "sum: " (+ x y)))`
	first, err := Tokenize(input)
	if err != nil {
		t.Fatalf("Tokenize failed: %v", err)
	}
	second, err := Tokenize(input)
	if err != nil {
		t.Fatalf("Tokenize failed: %v", err)
	}
	if !reflect.DeepEqual(first, second) {
		t.Errorf("Tokenize is not deterministic:\n%v\n%v", first, second)
	}
}
