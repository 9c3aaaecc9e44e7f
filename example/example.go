// Package example builds the representative example values attached to schemas.
//
// An example sequence is an [iter.Seq]: finite, deterministic and restartable.
// Nothing is cached; ranging over a sequence twice runs its producer twice and
// yields the same values in the same order.
//
//	ints := example.Of(1, 2, 3)
//	pairs := example.Zip(ints, example.Of("a", "b"), func(i int, s string) string {
//		return fmt.Sprint(i, s)
//	})
//	example.Collect(pairs) // ["1a", "2b"]
package example

import (
	"iter"
	"slices"
)

// Of returns a sequence yielding values in order.
func Of[T any](values ...T) iter.Seq[T] {
	return func(yield func(T) bool) {
		for _, v := range values {
			if !yield(v) {
				return
			}
		}
	}
}

// Empty returns a sequence without values.
func Empty[T any]() iter.Seq[T] {
	return func(func(T) bool) {}
}

// Chain concatenates sequences. It is the union of their alternatives.
func Chain[T any](seqs ...iter.Seq[T]) iter.Seq[T] {
	return func(yield func(T) bool) {
		for _, seq := range seqs {
			if seq == nil {
				continue
			}
			for v := range seq {
				if !yield(v) {
					return
				}
			}
		}
	}
}

// Map transforms every value of seq.
func Map[T, U any](seq iter.Seq[T], f func(T) U) iter.Seq[U] {
	return func(yield func(U) bool) {
		if seq == nil {
			return
		}
		for v := range seq {
			if !yield(f(v)) {
				return
			}
		}
	}
}

// Filter keeps the values for which keep returns true.
func Filter[T any](seq iter.Seq[T], keep func(T) bool) iter.Seq[T] {
	return func(yield func(T) bool) {
		if seq == nil {
			return
		}
		for v := range seq {
			if keep(v) && !yield(v) {
				return
			}
		}
	}
}

// Zip pairs up the values of a and b and combines each pair with f.
// The result is as long as the shorter input.
func Zip[A, B, R any](a iter.Seq[A], b iter.Seq[B], f func(A, B) R) iter.Seq[R] {
	return func(yield func(R) bool) {
		if a == nil || b == nil {
			return
		}
		nextB, stop := iter.Pull(b)
		defer stop()
		for va := range a {
			vb, ok := nextB()
			if !ok {
				return
			}
			if !yield(f(va, vb)) {
				return
			}
		}
	}
}

// Take yields at most n values of seq.
func Take[T any](seq iter.Seq[T], n int) iter.Seq[T] {
	return func(yield func(T) bool) {
		if seq == nil || n <= 0 {
			return
		}
		i := 0
		for v := range seq {
			if !yield(v) {
				return
			}
			i++
			if i >= n {
				return
			}
		}
	}
}

// Cycle repeats seq until n values were produced. An empty seq yields nothing.
func Cycle[T any](seq iter.Seq[T], n int) iter.Seq[T] {
	return func(yield func(T) bool) {
		if seq == nil {
			return
		}
		produced := 0
		for produced < n {
			seen := false
			for v := range seq {
				seen = true
				if !yield(v) {
					return
				}
				produced++
				if produced >= n {
					return
				}
			}
			if !seen {
				return
			}
		}
	}
}

// Any erases the element type of seq.
func Any[T any](seq iter.Seq[T]) iter.Seq[any] {
	return Map(seq, func(v T) any { return v })
}

// Collect gathers the values of seq into a slice. A nil seq yields nil.
func Collect[T any](seq iter.Seq[T]) []T {
	if seq == nil {
		return nil
	}
	return slices.Collect(seq)
}

// First returns the first value of seq.
func First[T any](seq iter.Seq[T]) (T, bool) {
	if seq != nil {
		for v := range seq {
			return v, true
		}
	}
	var zero T
	return zero, false
}
