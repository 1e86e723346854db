// Package myclass holds the sample class: arithmetic dispatch on an
// operator tag, and list helpers built on iterators.
package myclass

import (
	"fmt"
	"io"
	"iter"

	"golang.org/x/exp/constraints"
)

const (
	OpAdd = "+"
	OpSub = "-"
)

type Number interface {
	constraints.Integer | constraints.Float
}

type MyClass[N Number] struct{}

func New[N Number]() *MyClass[N] {
	return &MyClass[N]{}
}

// CalcSum delegates to Frobulate with the add tag.
func (c *MyClass[N]) CalcSum(x, y N) (N, error) {
	return c.Frobulate(OpAdd, x, y)
}

func (*MyClass[N]) Frobulate(op string, x, y N) (N, error) {
	switch op {
	case OpAdd:
		return x + y, nil
	case OpSub:
		return x - y, nil
	}

	return 0, &ArgumentError{Op: "frobulate", Arg: op}
}

// WalkList writes one "index: i strg: v" line per pair of seq.
func WalkList[V any](w io.Writer, seq iter.Seq2[int, V]) error {
	for i, strg := range seq {
		if _, err := fmt.Fprintf(w, "index: %d strg: %v\n", i, strg); err != nil {
			return err
		}
	}

	return nil
}

// ApplyMap returns mapfn(n) for every n of seq accepted by filterfn.
// A nil filterfn accepts everything. The result is never nil.
func ApplyMap[T, U any](seq iter.Seq[T], mapfn func(T) U, filterfn func(T) bool) []U {
	out := make([]U, 0)
	for n := range seq {
		if filterfn != nil && !filterfn(n) {
			continue
		}

		out = append(out, mapfn(n))
	}

	return out
}
