package lisp

import "strings"

//  Expression nodes

// Expr is a fully parsed expression node. A tree is built once by the
// Parser, consumed once by Expand, and never mutated afterwards; child
// order is significant everywhere (argument order, statement order).
type Expr interface {
	exprNode()
	String() string
}

// Symbol is an identifier, including the reserved words that double as
// operation names (if, let, do, while, try). Whether the name is a
// recognized operation is decided at expansion time, not here.
type Symbol struct {
	Name string
}

func (*Symbol) exprNode()        {}
func (s *Symbol) String() string { return s.Name }

// Literal is an atomic constant: integer, float, string, boolean or
// character. The lexeme is kept verbatim so the generated code reproduces
// the literal exactly as it was written.
type Literal struct {
	Lexeme string
}

func (*Literal) exprNode()        {}
func (l *Literal) String() string { return l.Lexeme }

// Operator is one of the fixed punctuation operators (+ - * / = < > %).
// As the head of a List it dispatches exactly like a Symbol.
type Operator struct {
	Sym string
}

func (*Operator) exprNode()        {}
func (o *Operator) String() string { return o.Sym }

// List is a parenthesized form: a special form when its head names an
// entry in the operation table, otherwise a plain call. An empty List is
// a valid value and expands to the unit value.
type List struct {
	Items []Expr
}

func (*List) exprNode()        {}
func (l *List) String() string { return "(" + joinExprs(l.Items) + ")" }

// Vector is a bracketed literal collection.
type Vector struct {
	Items []Expr
}

func (*Vector) exprNode()        {}
func (v *Vector) String() string { return "[" + joinExprs(v.Items) + "]" }

func joinExprs(items []Expr) string {
	parts := make([]string, len(items))
	for i, item := range items {
		parts[i] = item.String()
	}
	return strings.Join(parts, " ")
}
