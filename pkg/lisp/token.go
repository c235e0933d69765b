package lisp

import (
	"fmt"
	"strings"
	"text/scanner"
)

// TokenType identifies the category of a token handed to the Parser.
type TokenType int

const (
	EOF TokenType = iota // sentinel: end of input

	// Literals and identifiers
	IDENT  // symbol name, including the reserved words (if, let, do, while, try)
	INT    // integer literal
	FLOAT  // floating-point literal
	STRING // string literal "..."
	CHAR   // character literal '...'

	// Paired delimiters
	LPAREN   // (
	RPAREN   // )
	LBRACKET // [
	RBRACKET // ]

	// Punctuation
	COMMA // , (only meaningful inside a capture list)

	// Operators
	PLUS    // +
	MINUS   // -
	STAR    // *
	SLASH   // /
	EQ      // =
	LT      // <
	GT      // >
	PERCENT // %
)

var tokenNames = [...]string{
	EOF:      "EOF",
	IDENT:    "IDENT",
	INT:      "INT",
	FLOAT:    "FLOAT",
	STRING:   "STRING",
	CHAR:     "CHAR",
	LPAREN:   "LPAREN",
	RPAREN:   "RPAREN",
	LBRACKET: "LBRACKET",
	RBRACKET: "RBRACKET",
	COMMA:    "COMMA",
	PLUS:     "PLUS",
	MINUS:    "MINUS",
	STAR:     "STAR",
	SLASH:    "SLASH",
	EQ:       "EQ",
	LT:       "LT",
	GT:       "GT",
	PERCENT:  "PERCENT",
}

func (tt TokenType) String() string {
	if int(tt) >= 0 && int(tt) < len(tokenNames) {
		return tokenNames[tt]
	}
	return fmt.Sprintf("TokenType(%d)", int(tt))
}

// Token is a single lexical unit produced by Tokenize.
type Token struct {
	Type   TokenType
	Lexeme string // the exact source text that was matched
	Line   int    // 1-based source line
}

func (t Token) String() string {
	return fmt.Sprintf("%-8s %-14q  line %d", t.Type, t.Lexeme, t.Line)
}

// operatorRunes maps the fixed operator runes to their token types.
var operatorRunes = map[rune]TokenType{
	'+': PLUS,
	'-': MINUS,
	'*': STAR,
	'/': SLASH,
	'=': EQ,
	'<': LT,
	'>': GT,
	'%': PERCENT,
}

// rawToken is one unit straight out of text/scanner, before hyphen joining.
type rawToken struct {
	r      rune
	text   string
	line   int
	offset int
}

// Tokenize runs the host toolchain's scanner (text/scanner) over src and
// adapts its output to the flat token slice the Parser consumes, including
// the final EOF token. The engine defines no scanning rules of its own:
// identifier, number, string and character recognition, and comment
// skipping, are all the scanner's. The only tokens accepted beyond those
// are the paired delimiters, the comma, and the fixed operator runes;
// anything else is a SyntaxError at the offending position.
//
// Hyphenated names like with-vars come out of the scanner as three tokens.
// A joining pass glues IDENT "-" IDENT back into one IDENT, but only when
// the pieces are byte-adjacent, so (- a b) and (dec x) keep their minus.
func Tokenize(src string) ([]Token, error) {
	var sc scanner.Scanner
	sc.Init(strings.NewReader(src))
	sc.Mode = scanner.ScanIdents | scanner.ScanInts | scanner.ScanFloats |
		scanner.ScanChars | scanner.ScanStrings | scanner.ScanComments | scanner.SkipComments

	var scanErr *SyntaxError
	sc.Error = func(s *scanner.Scanner, msg string) {
		if scanErr == nil {
			scanErr = &SyntaxError{Line: s.Pos().Line, Msg: msg}
		}
	}

	var raws []rawToken
	for {
		r := sc.Scan()
		if scanErr != nil {
			return nil, scanErr
		}
		if r == scanner.EOF {
			break
		}
		raws = append(raws, rawToken{r: r, text: sc.TokenText(), line: sc.Position.Line, offset: sc.Position.Offset})
	}
	eofLine := sc.Pos().Line

	var tokens []Token
	for i := 0; i < len(raws); i++ {
		t := raws[i]
		switch t.r {
		case scanner.Ident:
			name := t.text
			end := t.offset + len(t.text)
			for i+2 < len(raws) &&
				raws[i+1].r == '-' && raws[i+1].offset == end &&
				raws[i+2].r == scanner.Ident && raws[i+2].offset == end+1 {
				name += "-" + raws[i+2].text
				end += 1 + len(raws[i+2].text)
				i += 2
			}
			tokens = append(tokens, Token{Type: IDENT, Lexeme: name, Line: t.line})
		case scanner.Int:
			tokens = append(tokens, Token{Type: INT, Lexeme: t.text, Line: t.line})
		case scanner.Float:
			tokens = append(tokens, Token{Type: FLOAT, Lexeme: t.text, Line: t.line})
		case scanner.String:
			tokens = append(tokens, Token{Type: STRING, Lexeme: t.text, Line: t.line})
		case scanner.Char:
			tokens = append(tokens, Token{Type: CHAR, Lexeme: t.text, Line: t.line})
		case '(':
			tokens = append(tokens, Token{Type: LPAREN, Lexeme: "(", Line: t.line})
		case ')':
			tokens = append(tokens, Token{Type: RPAREN, Lexeme: ")", Line: t.line})
		case '[':
			tokens = append(tokens, Token{Type: LBRACKET, Lexeme: "[", Line: t.line})
		case ']':
			tokens = append(tokens, Token{Type: RBRACKET, Lexeme: "]", Line: t.line})
		case ',':
			tokens = append(tokens, Token{Type: COMMA, Lexeme: ",", Line: t.line})
		default:
			if tt, ok := operatorRunes[t.r]; ok {
				tokens = append(tokens, Token{Type: tt, Lexeme: t.text, Line: t.line})
				continue
			}
			return nil, &SyntaxError{Line: t.line, Msg: fmt.Sprintf("unexpected character %q", t.text)}
		}
	}
	tokens = append(tokens, Token{Type: EOF, Lexeme: "", Line: eofLine})
	return tokens, nil
}
