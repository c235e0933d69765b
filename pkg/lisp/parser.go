package lisp

import "fmt"

// SyntaxError reports input that does not match any grammar alternative,
// or an unclosed delimiter. It is always fatal to the current invocation
// and is never recovered from internally.
type SyntaxError struct {
	Line int
	Msg  string
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("line %d: %s", e.Line, e.Msg)
}

// Parser consumes the flat token slice produced by Tokenize and builds one
// Expr, leaving the position immediately after it.
//
// Grammar (first matching alternative wins):
//
//	expr = "(" expr* ")"                   -> List
//	     | "[" expr* "]"                   -> Vector
//	     | "+" | "-" | "*" | "/"
//	     | "=" | "<" | ">" | "%"           -> Operator
//	     | INT | FLOAT | STRING | CHAR
//	     | "true" | "false"                -> Literal
//	     | IDENT                           -> Symbol
type Parser struct {
	tokens []Token
	pos    int
}

func NewParser(tokens []Token) *Parser {
	return &Parser{tokens: tokens}
}

// Parse builds a single expression from tokens and requires the whole
// input to be consumed.
func Parse(tokens []Token) (Expr, error) {
	p := NewParser(tokens)
	expr, err := p.parseExpr()
	if err != nil {
		return nil, err
	}
	if tok := p.peek(); tok.Type != EOF {
		return nil, p.errorf(tok, "unexpected %s %q after expression", tok.Type, tok.Lexeme)
	}
	return expr, nil
}

// peek returns the current token without consuming it.
func (p *Parser) peek() Token {
	if p.pos >= len(p.tokens) {
		return Token{Type: EOF}
	}
	return p.tokens[p.pos]
}

// advance consumes and returns the current token.
func (p *Parser) advance() Token {
	tok := p.peek()
	if p.pos < len(p.tokens) {
		p.pos++
	}
	return tok
}

func (p *Parser) errorf(tok Token, format string, args ...any) *SyntaxError {
	return &SyntaxError{Line: tok.Line, Msg: fmt.Sprintf(format, args...)}
}

// operatorText maps operator token types back to their source spelling.
var operatorText = map[TokenType]string{
	PLUS:    "+",
	MINUS:   "-",
	STAR:    "*",
	SLASH:   "/",
	EQ:      "=",
	LT:      "<",
	GT:      ">",
	PERCENT: "%",
}

// parseExpr parses one expression starting at the current token.
func (p *Parser) parseExpr() (Expr, error) {
	tok := p.advance()
	switch tok.Type {
	case LPAREN:
		items, err := p.parseSequence(RPAREN, tok)
		if err != nil {
			return nil, err
		}
		return &List{Items: items}, nil
	case LBRACKET:
		items, err := p.parseSequence(RBRACKET, tok)
		if err != nil {
			return nil, err
		}
		return &Vector{Items: items}, nil
	case PLUS, MINUS, STAR, SLASH, EQ, LT, GT, PERCENT:
		return &Operator{Sym: operatorText[tok.Type]}, nil
	case INT, FLOAT, STRING, CHAR:
		return &Literal{Lexeme: tok.Lexeme}, nil
	case IDENT:
		// Booleans arrive as plain identifiers from the scanner.
		if tok.Lexeme == "true" || tok.Lexeme == "false" {
			return &Literal{Lexeme: tok.Lexeme}, nil
		}
		return &Symbol{Name: tok.Lexeme}, nil
	default:
		return nil, p.errorf(tok, "unexpected %s %q", tok.Type, tok.Lexeme)
	}
}

// parseSequence parses zero or more expressions until the closing
// delimiter. Hitting EOF first reports the unclosed opener.
func (p *Parser) parseSequence(closer TokenType, open Token) ([]Expr, error) {
	var items []Expr
	for {
		switch p.peek().Type {
		case closer:
			p.advance()
			return items, nil
		case EOF:
			return nil, p.errorf(open, "unclosed %q", open.Lexeme)
		}
		item, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}
}
