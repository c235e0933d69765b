// Package lisprt holds the runtime support functions referenced by
// generated code: the collection and string forms that have no
// single-token Go equivalent. The helpers are generic so any ordered
// collection expression works, not just literal vectors.
package lisprt

import (
	"fmt"
	"strings"
)

// Vec builds an ordered collection from its arguments, preserving order.
func Vec[T any](xs ...T) []T {
	v := make([]T, len(xs))
	copy(v, xs)
	return v
}

// First returns the first element, or the zero value when v is empty.
func First[T any](v []T) T {
	if len(v) == 0 {
		var zero T
		return zero
	}
	return v[0]
}

// Rest returns all elements but the first as a new collection. Inputs with
// fewer than two elements yield an empty collection.
func Rest[T any](v []T) []T {
	if len(v) <= 1 {
		return []T{}
	}
	out := make([]T, len(v)-1)
	copy(out, v[1:])
	return out
}

// Cons prepends x to a copy of v.
func Cons[T any](x T, v []T) []T {
	out := make([]T, 0, len(v)+1)
	out = append(out, x)
	return append(out, v...)
}

// Str concatenates the string form of each argument with no separator.
func Str(parts ...any) string {
	var b strings.Builder
	for _, p := range parts {
		fmt.Fprintf(&b, "%v", p)
	}
	return b.String()
}

// Abs returns the absolute value of n.
func Abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}

// Println debug-prints its arguments and yields the unit value, so a print
// can sit anywhere an expression is expected.
func Println(vals ...any) any {
	fmt.Println(vals...)
	return nil
}
