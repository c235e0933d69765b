package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newExamplesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "examples",
		Short: "Show syntax examples",
		Run: func(cmd *cobra.Command, args []string) {
			showExamples()
		},
	}
}

func showExamples() {
	fmt.Println("Syntax examples:")
	fmt.Println()

	fmt.Println("Basic arithmetic:")
	fmt.Println("  (+ 1 2 3)           ; Addition: 6")
	fmt.Println("  (- 10 3 2)          ; Subtraction: 5")
	fmt.Println("  (* 2 3 4)           ; Multiplication: 24")
	fmt.Println("  (/ 12 3)            ; Division: 4")
	fmt.Println()

	fmt.Println("Comparisons:")
	fmt.Println("  (= 5 5)             ; Equality: true")
	fmt.Println("  (< 3 7)             ; Less than: true")
	fmt.Println("  (> 7 3)             ; Greater than: true")
	fmt.Println("  (gte 5 5)           ; Greater than or equal: true")
	fmt.Println("  (lte 3 7)           ; Less than or equal: true")
	fmt.Println("  (ne 3 7)            ; Not equal: true")
	fmt.Println()

	fmt.Println("Boolean logic:")
	fmt.Println("  (and true false)    ; Logical AND: false")
	fmt.Println("  (or false true)     ; Logical OR: true")
	fmt.Println("  (not false)         ; Logical NOT: true")
	fmt.Println()

	fmt.Println("Control flow:")
	fmt.Println(`  (if (> 5 3) "yes" "no")               ; Conditional`)
	fmt.Println("  (let [x 5 y 10] (+ x y))              ; Local bindings: 15")
	fmt.Println("  (do (println 1) (+ 2 3))              ; Sequence, yields last: 5")
	fmt.Println("  (while (< x 10) (inc x))              ; Loop while condition holds")
	fmt.Println("  (dotimes i 3 (println i))             ; Counted loop")
	fmt.Println("  (try (/ 10 0) -1)                     ; Recover with fallback")
	fmt.Println()

	fmt.Println("Strings:")
	fmt.Println(`  (str "hello" " " "world")             ; Concatenation`)
	fmt.Println(`  (str "Answer: " 42)                   ; Mixed types`)
	fmt.Println()

	fmt.Println("Lists/vectors:")
	fmt.Println("  [1 2 3 4]           ; Vector literal")
	fmt.Println("  (first [1 2 3])     ; First element: 1")
	fmt.Println("  (rest [1 2 3])      ; Rest: [2, 3]")
	fmt.Println("  (count [1 2 3 4])   ; Count: 4")
	fmt.Println("  (cons 0 [1 2 3])    ; Prepend: [0, 1, 2, 3]")
	fmt.Println()

	fmt.Println("Functions:")
	fmt.Println("  (defn square [x] (* x x))             ; Define function")
	fmt.Println("  (call square 5)                       ; Call function: 25")
	fmt.Println()

	fmt.Println("Complex examples:")
	fmt.Println("  (+ (* 2 3) (/ 8 2))                   ; Nested: 10")
	fmt.Println(`  (if (> (+ 2 3) 4) "big" "small")      ; Complex condition`)
	fmt.Println("  (let [x 10 y 5] (* x (- x y)))        ; Local vars: 50")
	fmt.Println()

	fmt.Println("Variable capture (in embedding code):")
	fmt.Println("  [x] (+ x 10)        ; Rebinds x from the enclosing scope")
	fmt.Println("  [x, y] (* x y)      ; Multiple captures")
	fmt.Println()

	fmt.Println("Math utilities:")
	fmt.Println("  (min 5 3 8)         ; Minimum value: 3")
	fmt.Println("  (max 1 9 4)         ; Maximum value: 9")
	fmt.Println("  (abs (- 7))         ; Absolute value: 7")
	fmt.Println("  (modulo 10 3)       ; Modulo operation: 1")
	fmt.Println("  (inc 5)             ; Increment: 6")
	fmt.Println("  (dec 10)            ; Decrement: 9")
	fmt.Println()

	fmt.Println("Predicates:")
	fmt.Println("  (zero 0)            ; Is zero: true")
	fmt.Println("  (pos 5)             ; Is positive: true")
	fmt.Println("  (neg (- 3))         ; Is negative: true")
	fmt.Println("  (even 4)            ; Is even: true")
	fmt.Println("  (odd 3)             ; Is odd: true")
	fmt.Println()

	fmt.Println("Try these in the REPL.")
}
