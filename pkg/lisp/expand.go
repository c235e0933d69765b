package lisp

import (
	"fmt"
	"strings"
)

// Code is a generated Go expression fragment, suitable for splicing into an
// enclosing function body. Expansion never evaluates anything: the fragment
// is handed to a separate compilation stage. Expanding the same Expr twice
// produces an identical fragment.
type Code string

// ExpansionError reports a recognized operation invoked with the wrong
// number or shape of arguments. It is diagnosed before any code is
// produced and is always fatal to the invocation.
type ExpansionError struct {
	Op  string
	Msg string
}

func (e *ExpansionError) Error() string {
	return fmt.Sprintf("cannot expand %q: %s", e.Op, e.Msg)
}

func expansionErrorf(op, format string, args ...any) *ExpansionError {
	return &ExpansionError{Op: op, Msg: fmt.Sprintf(format, args...)}
}

// arity is the allowed argument count for a table operation. max < 0 means
// unbounded.
type arity struct {
	min, max int
}

func (a arity) check(n int) bool {
	return n >= a.min && (a.max < 0 || n <= a.max)
}

func (a arity) describe() string {
	switch {
	case a.min == a.max:
		return fmt.Sprintf("exactly %d %s", a.min, plural(a.min))
	case a.max < 0:
		return fmt.Sprintf("at least %d %s", a.min, plural(a.min))
	case a.max == a.min+1:
		return fmt.Sprintf("%d or %d arguments", a.min, a.max)
	default:
		return fmt.Sprintf("between %d and %d arguments", a.min, a.max)
	}
}

func plural(n int) string {
	if n == 1 {
		return "argument"
	}
	return "arguments"
}

// operations is the arity table for every recognized operation. Names that
// are absent fall back to a plain call with any number of arguments.
var operations = map[string]arity{
	"+": {0, -1},
	"-": {1, -1},
	"*": {0, -1},
	"/": {2, -1},

	"=":      {2, 2},
	"eq":     {2, 2},
	"<":      {2, 2},
	">":      {2, 2},
	"gte":    {2, 2},
	"lte":    {2, 2},
	"ne":     {2, 2},
	"%":      {2, 2},
	"modulo": {2, 2},

	"and": {2, -1},
	"or":  {2, -1},
	"not": {1, 1},

	"if":        {2, 3},
	"let":       {2, -1},
	"do":        {0, -1},
	"while":     {2, 2},
	"dotimes":   {3, 3},
	"try":       {1, 2},
	"with-vars": {2, -1},

	"defn": {3, -1},
	"call": {1, -1},

	"first": {1, 1},
	"rest":  {1, 1},
	"cons":  {2, 2},
	"count": {1, 1},

	"str": {0, -1},

	"min": {2, -1},
	"max": {2, -1},
	"abs": {1, 1},
	"inc": {1, 1},
	"dec": {1, 1},

	"zero": {1, 1},
	"pos":  {1, 1},
	"neg":  {1, 1},
	"even": {1, 1},
	"odd":  {1, 1},

	"println": {1, -1},
}

// opSlots maps an operator used as a first-class value to the
// conventionally-named function slot the consuming scope is expected to
// supply.
var opSlots = map[string]string{
	"+":  "opPlus",
	"-":  "opMinus",
	"*":  "opMul",
	"/":  "opDiv",
	"=":  "opEq",
	"<":  "opLt",
	">":  "opGt",
	">=": "opGte",
	"<=": "opLte",
	"!=": "opNe",
	"%":  "opMod",
}

// Expand translates an Expr tree into an equivalent Go expression fragment.
// Total structural recursion: every recursive call descends into a child.
// Block-shaped forms become immediately-invoked func literals since Go has
// no block expressions; unit is rendered as nil.
func Expand(e Expr) (Code, error) {
	switch n := e.(type) {
	case *Symbol:
		return Code(n.Name), nil
	case *Literal:
		return Code(n.Lexeme), nil
	case *Operator:
		if slot, ok := opSlots[n.Sym]; ok {
			return Code(slot), nil
		}
		return "", expansionErrorf(n.Sym, "unknown operator")
	case *Vector:
		if len(n.Items) == 0 {
			return "lisprt.Vec[int]()", nil
		}
		elems, err := expandAll(n.Items)
		if err != nil {
			return "", err
		}
		return Code("lisprt.Vec(" + joinCodes(elems) + ")"), nil
	case *List:
		if len(n.Items) == 0 {
			return "nil", nil
		}
		head, args := n.Items[0], n.Items[1:]
		switch h := head.(type) {
		case *Symbol:
			return expandOperation(h.Name, args)
		case *Operator:
			return expandOperation(h.Sym, args)
		default:
			callee, err := Expand(head)
			if err != nil {
				return "", err
			}
			codes, err := expandAll(args)
			if err != nil {
				return "", err
			}
			return Code(fmt.Sprintf("%s(%s)", callee, joinCodes(codes))), nil
		}
	default:
		return "", fmt.Errorf("unsupported expression node %T", e)
	}
}

// expandAll expands every argument in order.
func expandAll(args []Expr) ([]Code, error) {
	codes := make([]Code, len(args))
	for i, a := range args {
		c, err := Expand(a)
		if err != nil {
			return nil, err
		}
		codes[i] = c
	}
	return codes, nil
}

func joinCodes(codes []Code) string {
	parts := make([]string, len(codes))
	for i, c := range codes {
		parts[i] = string(c)
	}
	return strings.Join(parts, ", ")
}

// expandOperation dispatches a List whose head is a Symbol or Operator.
// Arity is validated up front through the operations table so violations
// surface as ExpansionErrors before any code is produced; per-operation
// shape checks (binding vectors, parameter lists) follow inside each case.
func expandOperation(op string, args []Expr) (Code, error) {
	if ar, ok := operations[op]; ok && !ar.check(len(args)) {
		return "", expansionErrorf(op, "requires %s, got %d", ar.describe(), len(args))
	}

	switch op {
	// Arithmetic. Folds keep the identity term, exactly like the
	// generated shape documents: 0 + (a) + (b), 1 * (a) * (b).
	case "+":
		codes, err := expandAll(args)
		if err != nil {
			return "", err
		}
		switch len(codes) {
		case 0:
			return "0", nil
		case 1:
			return codes[0], nil
		}
		result := "0"
		for _, c := range codes {
			result = fmt.Sprintf("%s + (%s)", result, c)
		}
		return Code(result), nil

	case "-":
		codes, err := expandAll(args)
		if err != nil {
			return "", err
		}
		if len(codes) == 1 {
			return Code(fmt.Sprintf("-(%s)", codes[0])), nil
		}
		result := fmt.Sprintf("(%s)", codes[0])
		for _, c := range codes[1:] {
			result = fmt.Sprintf("%s - (%s)", result, c)
		}
		return Code(result), nil

	case "*":
		codes, err := expandAll(args)
		if err != nil {
			return "", err
		}
		switch len(codes) {
		case 0:
			return "1", nil
		case 1:
			return codes[0], nil
		}
		result := "1"
		for _, c := range codes {
			result = fmt.Sprintf("%s * (%s)", result, c)
		}
		return Code(result), nil

	case "/":
		codes, err := expandAll(args)
		if err != nil {
			return "", err
		}
		result := fmt.Sprintf("(%s)", codes[0])
		for _, c := range codes[1:] {
			result = fmt.Sprintf("%s / (%s)", result, c)
		}
		return Code(result), nil

	// Comparisons
	case "=", "eq":
		return expandBinary(args, "==")
	case "<":
		return expandBinary(args, "<")
	case ">":
		return expandBinary(args, ">")
	case "gte":
		return expandBinary(args, ">=")
	case "lte":
		return expandBinary(args, "<=")
	case "ne":
		return expandBinary(args, "!=")
	case "%", "modulo":
		return expandBinary(args, "%")

	// Boolean logic
	case "and":
		codes, err := expandAll(args)
		if err != nil {
			return "", err
		}
		result := "true"
		for _, c := range codes {
			result = fmt.Sprintf("(%s) && (%s)", result, c)
		}
		return Code(result), nil

	case "or":
		codes, err := expandAll(args)
		if err != nil {
			return "", err
		}
		result := "false"
		for _, c := range codes {
			result = fmt.Sprintf("(%s) || (%s)", result, c)
		}
		return Code(result), nil

	case "not":
		c, err := Expand(args[0])
		if err != nil {
			return "", err
		}
		return Code(fmt.Sprintf("!(%s)", c)), nil

	// Control flow
	case "if":
		codes, err := expandAll(args)
		if err != nil {
			return "", err
		}
		if len(codes) == 2 {
			return Code(fmt.Sprintf("func() any { if (%s) { return %s }; return nil }()",
				codes[0], codes[1])), nil
		}
		return Code(fmt.Sprintf("func() any { if (%s) { return %s }; return %s }()",
			codes[0], codes[1], codes[2])), nil

	case "let":
		return expandLet(op, args)

	case "do":
		codes, err := expandAll(args)
		if err != nil {
			return "", err
		}
		if len(codes) == 0 {
			return "nil", nil
		}
		var b strings.Builder
		b.WriteString("func() any { ")
		writeBody(&b, codes)
		b.WriteString(" }()")
		return Code(b.String()), nil

	case "while":
		cond, err := Expand(args[0])
		if err != nil {
			return "", err
		}
		body, err := Expand(args[1])
		if err != nil {
			return "", err
		}
		return Code(fmt.Sprintf("func() any { var result any; for (%s) { result = %s }; return result }()",
			cond, body)), nil

	case "dotimes":
		v, ok := args[0].(*Symbol)
		if !ok {
			return "", expansionErrorf(op, "loop variable must be a symbol, got %s", args[0])
		}
		count, err := Expand(args[1])
		if err != nil {
			return "", err
		}
		body, err := Expand(args[2])
		if err != nil {
			return "", err
		}
		return Code(fmt.Sprintf("func() any { for %s := 0; %s < (%s); %s++ { var _ any = %s }; return nil }()",
			v.Name, v.Name, count, v.Name, body)), nil

	// Error recovery: emit the catch-and-recover pattern at the generated
	// code's boundary. Without a fallback the panic value is re-raised.
	case "try":
		body, err := Expand(args[0])
		if err != nil {
			return "", err
		}
		if len(args) == 2 {
			fallback, err := Expand(args[1])
			if err != nil {
				return "", err
			}
			return Code(fmt.Sprintf("func() (res any) { defer func() { if r := recover(); r != nil { res = %s } }(); res = %s; return }()",
				fallback, body)), nil
		}
		return Code(fmt.Sprintf("func() (res any) { defer func() { if r := recover(); r != nil { panic(r) } }(); res = %s; return }()",
			body)), nil

	case "with-vars":
		vec, ok := args[0].(*Vector)
		if !ok {
			return "", expansionErrorf(op, "requires a vector of variable names, got %s", args[0])
		}
		names := make([]string, len(vec.Items))
		for i, v := range vec.Items {
			sym, ok := v.(*Symbol)
			if !ok {
				return "", expansionErrorf(op, "variable %d must be a symbol, got %s", i+1, v)
			}
			names[i] = sym.Name
		}
		body, err := expandAll(args[1:])
		if err != nil {
			return "", err
		}
		return captureBlock(names, body), nil

	// Functions
	case "defn":
		return expandDefn(op, args)

	case "call":
		fn, err := Expand(args[0])
		if err != nil {
			return "", err
		}
		codes, err := expandAll(args[1:])
		if err != nil {
			return "", err
		}
		return Code(fmt.Sprintf("(%s)(%s)", fn, joinCodes(codes))), nil

	// Collections. The helpers are generic, so any ordered collection
	// expression is accepted, not just Vector literals.
	case "first":
		c, err := Expand(args[0])
		if err != nil {
			return "", err
		}
		return Code(fmt.Sprintf("lisprt.First(%s)", c)), nil

	case "rest":
		c, err := Expand(args[0])
		if err != nil {
			return "", err
		}
		return Code(fmt.Sprintf("lisprt.Rest(%s)", c)), nil

	case "cons":
		elem, err := Expand(args[0])
		if err != nil {
			return "", err
		}
		coll, err := Expand(args[1])
		if err != nil {
			return "", err
		}
		return Code(fmt.Sprintf("lisprt.Cons(%s, %s)", elem, coll)), nil

	case "count":
		c, err := Expand(args[0])
		if err != nil {
			return "", err
		}
		return Code(fmt.Sprintf("len(%s)", c)), nil

	// Strings
	case "str":
		if len(args) == 0 {
			return `""`, nil
		}
		codes, err := expandAll(args)
		if err != nil {
			return "", err
		}
		return Code(fmt.Sprintf("lisprt.Str(%s)", joinCodes(codes))), nil

	// Math utilities
	case "min", "max":
		codes, err := expandAll(args)
		if err != nil {
			return "", err
		}
		result := fmt.Sprintf("(%s)", codes[0])
		for _, c := range codes[1:] {
			result = fmt.Sprintf("%s(%s, %s)", op, result, c)
		}
		return Code(result), nil

	case "abs":
		c, err := Expand(args[0])
		if err != nil {
			return "", err
		}
		return Code(fmt.Sprintf("lisprt.Abs(int((%s)))", c)), nil

	case "inc":
		c, err := Expand(args[0])
		if err != nil {
			return "", err
		}
		return Code(fmt.Sprintf("(%s) + 1", c)), nil

	case "dec":
		c, err := Expand(args[0])
		if err != nil {
			return "", err
		}
		return Code(fmt.Sprintf("(%s) - 1", c)), nil

	// Predicates
	case "zero":
		return expandPredicate(args, "(%s) == 0")
	case "pos":
		return expandPredicate(args, "(%s) > 0")
	case "neg":
		return expandPredicate(args, "(%s) < 0")
	case "even":
		return expandPredicate(args, "(%s) %% 2 == 0")
	case "odd":
		return expandPredicate(args, "(%s) %% 2 != 0")

	// Debug printing
	case "println":
		codes, err := expandAll(args)
		if err != nil {
			return "", err
		}
		return Code(fmt.Sprintf("lisprt.Println(%s)", joinCodes(codes))), nil

	default:
		// Not a recognized operation: plain call name(args...).
		codes, err := expandAll(args)
		if err != nil {
			return "", err
		}
		return Code(fmt.Sprintf("%s(%s)", op, joinCodes(codes))), nil
	}
}

func expandBinary(args []Expr, goOp string) (Code, error) {
	left, err := Expand(args[0])
	if err != nil {
		return "", err
	}
	right, err := Expand(args[1])
	if err != nil {
		return "", err
	}
	return Code(fmt.Sprintf("(%s) %s (%s)", left, goOp, right)), nil
}

func expandPredicate(args []Expr, format string) (Code, error) {
	c, err := Expand(args[0])
	if err != nil {
		return "", err
	}
	return Code(fmt.Sprintf(format, c)), nil
}

// expandLet generates sequential bindings: each pair opens a fresh scope so
// a later binding may shadow an earlier one (Go rejects same-scope
// redeclaration). Bindings use the literal source names, no renaming, so
// shadowing of enclosing-scope names is preserved. Every binding is
// followed by a blank assignment to keep unused bindings legal.
func expandLet(op string, args []Expr) (Code, error) {
	vec, ok := args[0].(*Vector)
	if !ok {
		return "", expansionErrorf(op, "requires a vector of bindings, got %s", args[0])
	}
	if len(vec.Items)%2 != 0 {
		return "", expansionErrorf(op, "binding vector needs an even number of elements, got %d", len(vec.Items))
	}

	var b strings.Builder
	b.WriteString("func() any { ")
	opened := 0
	for i := 0; i < len(vec.Items); i += 2 {
		sym, ok := vec.Items[i].(*Symbol)
		if !ok {
			return "", expansionErrorf(op, "binding name must be a symbol, got %s", vec.Items[i])
		}
		val, err := Expand(vec.Items[i+1])
		if err != nil {
			return "", err
		}
		if i > 0 {
			b.WriteString("{ ")
			opened++
		}
		fmt.Fprintf(&b, "%s := (%s); _ = %s; ", sym.Name, val, sym.Name)
	}

	body, err := expandAll(args[1:])
	if err != nil {
		return "", err
	}
	writeBody(&b, body)
	b.WriteString(strings.Repeat(" }", opened))
	b.WriteString(" }()")
	return Code(b.String()), nil
}

// expandDefn produces a named callable with every parameter and the return
// value fixed to int, binds it under its name and yields it as the value.
func expandDefn(op string, args []Expr) (Code, error) {
	name, ok := args[0].(*Symbol)
	if !ok {
		return "", expansionErrorf(op, "requires a symbol name, got %s: (defn name [params] body)", args[0])
	}
	vec, ok := args[1].(*Vector)
	if !ok {
		return "", expansionErrorf(op, "requires a parameter vector, got %s: (defn name [params] body)", args[1])
	}

	decls := make([]string, len(vec.Items))
	types := make([]string, len(vec.Items))
	for i, p := range vec.Items {
		sym, ok := p.(*Symbol)
		if !ok {
			return "", expansionErrorf(op, "parameter %d must be a symbol, got %s", i+1, p)
		}
		decls[i] = sym.Name + " int"
		types[i] = "int"
	}

	body, err := expandAll(args[2:])
	if err != nil {
		return "", err
	}

	var b strings.Builder
	fmt.Fprintf(&b, "func() func(%s) int { %s := func(%s) int { ",
		strings.Join(types, ", "), name.Name, strings.Join(decls, ", "))
	writeBody(&b, body)
	fmt.Fprintf(&b, " }; return %s }()", name.Name)
	return Code(b.String()), nil
}

// writeBody emits the body forms of a block: all but the last are
// evaluated and discarded, the last is returned.
func writeBody(b *strings.Builder, body []Code) {
	for _, c := range body[:len(body)-1] {
		fmt.Fprintf(b, "var _ any = %s; ", c)
	}
	fmt.Fprintf(b, "return %s", body[len(body)-1])
}

// captureBlock rebinds each name to itself (the capture marker), keeps the
// binding referenced, then evaluates the body forms in order and yields
// the last one.
func captureBlock(names []string, body []Code) Code {
	var b strings.Builder
	b.WriteString("func() any { ")
	for _, n := range names {
		fmt.Fprintf(&b, "%s := %s; _ = %s; ", n, n, n)
	}
	writeBody(&b, body)
	b.WriteString(" }()")
	return Code(b.String())
}
