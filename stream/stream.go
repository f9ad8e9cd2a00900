// Package stream provides an iteration protocol for borrowed, short-lived
// items: each yielded value may alias memory owned by the iterator itself
// and is invalidated the moment the iterator advances.
//
// A conventional iterator must hand out self-contained items, which for
// byte-oriented parsing means copying every record out of the I/O buffer.
// The protocol here trades that flexibility for the ability to yield views
// into a shared internal buffer with no per-item allocation.
//
// Go expresses the "valid for one step only" rule natively through
// range-over-func loops: Values adapts an Iterator into an iter.Seq whose
// items are scoped to a single execution of the loop body, the iterator
// expression is evaluated exactly once, and break exits early. Callers that
// do need to retain items own the copy instead: see Cloned and Collect.
package stream

import (
	"bytes"
	"iter"
)

// Iterator yields successive items whose validity is scoped to the Next
// call that produced them. Calling Next again, or mutating the iterator in
// any other way, invalidates the previously returned item.
//
// Next reports ok=false when the iteration is finished; after that every
// further call must keep returning ok=false.
type Iterator[T any] interface {
	Next() (item T, ok bool)
}

// Func adapts a plain function to the Iterator interface.
type Func[T any] func() (T, bool)

// Next implements Iterator.
func (f Func[T]) Next() (T, bool) { return f() }

// Values returns an iter.Seq driving it. The sequence is single-use, like
// the iterator beneath it: ranging over it a second time continues where
// the first loop stopped rather than restarting.
func Values[T any](it Iterator[T]) iter.Seq[T] {
	return func(yield func(T) bool) {
		for {
			v, ok := it.Next()
			if !ok {
				return
			}

			if !yield(v) {
				return
			}
		}
	}
}

// Cloned returns a sequence yielding an owned copy of every item in seq,
// for callers that must retain items past their loop iteration.
func Cloned[T ~[]byte](seq iter.Seq[T]) iter.Seq[T] {
	return func(yield func(T) bool) {
		for v := range seq {
			if !yield(T(bytes.Clone(v))) {
				return
			}
		}
	}
}

// Collect drains it and returns owned copies of all remaining items.
func Collect[T ~[]byte](it Iterator[T]) []T {
	var out []T
	for v := range Cloned(Values(it)) {
		out = append(out, v)
	}

	return out
}
