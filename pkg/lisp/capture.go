package lisp

// ExpandWithCaptures is the outer entry point for embedded use. It accepts
// either the variable-capture wrapper form
//
//	[ident, ident, ...] expr
//
// or a plain expression. The wrapper rebinds each named identifier to
// itself before the body, so the generated code keeps referencing the
// enclosing scope's variables by their literal names. When the input does
// not match the wrapper shape it is reparsed as a plain expression with no
// captures.
func ExpandWithCaptures(tokens []Token) (Code, error) {
	if names, rest, ok := captureList(tokens); ok {
		p := NewParser(rest)
		if expr, err := p.parseExpr(); err == nil && p.peek().Type == EOF {
			body, err := Expand(expr)
			if err != nil {
				return "", err
			}
			return captureBlock(names, []Code{body}), nil
		}
	}

	expr, err := Parse(tokens)
	if err != nil {
		return "", err
	}
	return Expand(expr)
}

// TranslateSource tokenizes src and expands it through the capture-aware
// entry point. This is the one-call surface the CLI and driver use.
func TranslateSource(src string) (Code, error) {
	tokens, err := Tokenize(src)
	if err != nil {
		return "", err
	}
	return ExpandWithCaptures(tokens)
}

// captureList recognizes "[" IDENT ("," IDENT)* "]" followed by at least
// one more token, reporting ok=false otherwise. A bracketed form without
// commas or without a trailing expression is a plain Vector literal, not a
// capture list.
func captureList(tokens []Token) (names []string, rest []Token, ok bool) {
	i := 0
	if i >= len(tokens) || tokens[i].Type != LBRACKET {
		return nil, nil, false
	}
	i++
	for {
		if i >= len(tokens) || tokens[i].Type != IDENT {
			return nil, nil, false
		}
		names = append(names, tokens[i].Lexeme)
		i++
		if i < len(tokens) && tokens[i].Type == COMMA {
			i++
			continue
		}
		break
	}
	if i >= len(tokens) || tokens[i].Type != RBRACKET {
		return nil, nil, false
	}
	i++
	if i >= len(tokens) || tokens[i].Type == EOF {
		return nil, nil, false
	}
	return names, tokens[i:], true
}
