// Package sortable provides sortable wrapper types for primitive types to implement comparison interfaces.
package sortable

import (
	"github.com/amp-labs/staticmap/compare"
)

type Sortable[T any] interface {
	compare.Comparable[T]

	LessThan(other T) bool
}

// Less adapts a Sortable type's LessThan method to a compare.LessFunc, so that
// sortable keys can be handed to anything that takes an explicit ordering.
func Less[T Sortable[T]]() compare.LessFunc[T] {
	return func(a, b T) bool {
		return a.LessThan(b)
	}
}

// Equal adapts a Sortable type's Equals method to a compare.EqualFunc.
func Equal[T Sortable[T]]() compare.EqualFunc[T, T] {
	return func(a, b T) bool {
		return a.Equals(b)
	}
}
