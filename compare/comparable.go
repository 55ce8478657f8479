// Package compare provides utilities for comparing values.
//
// Besides the Comparable interface used for equality, it defines the ordering
// vocabulary shared by the sorted and staticmap packages: a LessFunc is a
// strict weak order, and an EqualFunc is an equivalence predicate.
package compare

import (
	"cmp"

	"facette.io/natsort"
)

// Comparable is a generic interface for types that can compare themselves for equality.
// Types implementing this interface must provide their own Equals method that determines
// whether two values are equal according to the type's semantics.
type Comparable[T any] interface {
	Equals(other T) bool
}

// Equals compares two values using the Comparable interface.
// It delegates to the Equals method of the first argument.
func Equals[T any](a Comparable[T], b T) bool {
	return a.Equals(b)
}

// LessFunc reports whether a orders strictly before b. Implementations must be
// a strict weak order: irreflexive, transitive, and with transitive
// incomparability. Sorting and searching with anything else gives undefined
// (but memory-safe) results.
type LessFunc[T any] func(a, b T) bool

// EqualFunc reports whether two values should be considered equal.
type EqualFunc[A, B any] func(a A, b B) bool

// Ordered returns the natural "<" ordering for any cmp.Ordered type.
func Ordered[T cmp.Ordered]() LessFunc[T] {
	return cmp.Less[T]
}

// Reverse flips an ordering, so that Reverse(less)(a, b) == less(b, a).
func Reverse[T any](less LessFunc[T]) LessFunc[T] {
	return func(a, b T) bool {
		return less(b, a)
	}
}

// ByKey lifts an ordering on keys to an ordering on whole elements, using
// proj to pull the key out of each element. Only the projected keys are
// compared; the rest of the element never influences the result.
//
// Example:
//
//	type pair struct{ k int; v string }
//	less := compare.ByKey(func(p pair) int { return p.k }, compare.Ordered[int]())
func ByKey[E any, K any](proj func(E) K, less LessFunc[K]) LessFunc[E] {
	return func(a, b E) bool {
		return less(proj(a), proj(b))
	}
}

// Equivalent derives the equivalence relation induced by a strict weak order:
// two values are equivalent when neither orders before the other.
func Equivalent[T any](less LessFunc[T]) EqualFunc[T, T] {
	return func(a, b T) bool {
		return !less(a, b) && !less(b, a)
	}
}

// Natural orders strings the way a person would, treating runs of digits as
// numbers ("file2" < "file10").
//
// natsort.Compare reports true in both directions for strings that only differ
// in leading zeros (and for identical strings), and false in both directions
// when one side is empty, so those ties fall back to byte order. The only
// equivalent pairs left are identical strings, which keeps it consistent
// with ==.
func Natural(a, b string) bool {
	if a == b {
		return false
	}

	if a == "" || b == "" {
		return a < b
	}

	before := natsort.Compare(a, b)
	if before && natsort.Compare(b, a) {
		return a < b
	}

	return before
}
