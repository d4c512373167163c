// Package valuepair provides ValuePair, a two-field numeric fixture used when
// testing language-tooling clients.
package valuepair

import (
	"fmt"
	"io"
	"os"

	"golang.org/x/exp/constraints"
)

// Number is any integer or floating-point type.
type Number interface {
	constraints.Integer | constraints.Float
}

// printed is the fixed sequence written by PrintValues.
var printed = [...]int{0, 1, 2, 3}

// ValuePair holds two numeric values.
type ValuePair[T Number] struct {
	a T
	b T
}

// New returns a ValuePair holding a and b. No validation is performed.
func New[T Number](a, b T) ValuePair[T] {
	return ValuePair[T]{a: a, b: b}
}

// A returns the first value.
func (p ValuePair[T]) A() T { return p.a }

// B returns the second value.
func (p ValuePair[T]) B() T { return p.b }

// Add returns a + b. Integer overflow wraps.
func (p ValuePair[T]) Add() T {
	return p.a + p.b
}

// PrintValues writes 0, 1, 2 and 3 to standard output, one per line.
// It does not read the stored values.
func (p ValuePair[T]) PrintValues() {
	_ = p.FprintValues(os.Stdout)
}

// FprintValues is PrintValues against w.
func (p ValuePair[T]) FprintValues(w io.Writer) error {
	for _, v := range printed {
		if _, err := fmt.Fprintln(w, v); err != nil {
			return err
		}
	}
	return nil
}

// Values returns the sequence PrintValues writes.
func Values() []int {
	out := make([]int, len(printed))
	copy(out, printed[:])
	return out
}
