package sorted

import (
	"cmp"
	"fmt"
	"iter"
	"slices"
	"strings"

	"github.com/amp-labs/staticmap/compare"
	"github.com/amp-labs/staticmap/errors"
	"github.com/amp-labs/staticmap/zero"
)

// Vector is a fixed-length sequence kept in the order it was built with.
// The zero Vector is empty and ready to use.
type Vector[T any] struct {
	items []T
}

// New returns a Vector holding a sorted copy of items. The caller's slice is
// not modified and may be reused.
func New[T any](less compare.LessFunc[T], items ...T) Vector[T] {
	if len(items) == 0 {
		return Vector[T]{}
	}

	owned := slices.Clone(items)
	Sort(owned, less)

	return Vector[T]{items: owned}
}

// NewOrdered is New using the natural ordering of T.
func NewOrdered[T cmp.Ordered](items ...T) Vector[T] {
	return New(compare.Ordered[T](), items...)
}

// FromSorted wraps items that the caller has already sorted, after checking
// that they really are. The check is a single linear pass, so this is the
// cheap way to load data that was sorted ahead of time (for example by code
// generation). Like New, it keeps its own copy of items.
func FromSorted[T any](less compare.LessFunc[T], items ...T) (Vector[T], error) {
	if idx := FirstUnsorted(items, less); idx >= 0 {
		return Vector[T]{}, fmt.Errorf("%w: item %d orders before item %d", errors.ErrNotSorted, idx, idx-1)
	}

	return Vector[T]{items: slices.Clone(items)}, nil
}

// Len returns the number of items.
func (v Vector[T]) Len() int {
	return len(v.items)
}

// Get returns the item at index i, or an error wrapping
// errors.ErrIndexOutOfRange when i is outside [0, Len()).
func (v Vector[T]) Get(i int) (T, error) { //nolint:ireturn
	if i < 0 || i >= len(v.items) {
		return zero.Value[T](), errors.IndexOutOfRange(i, len(v.items))
	}

	return v.items[i], nil
}

// At returns the item at index i. It panics with an error wrapping
// errors.ErrIndexOutOfRange when i is outside [0, Len()), which is every
// index of an empty Vector.
func (v Vector[T]) At(i int) T { //nolint:ireturn
	item, err := v.Get(i)
	if err != nil {
		panic(err)
	}

	return item
}

// LowerBound returns the index of the first item for which before reports
// false. See the package-level LowerBound for the contract on before.
func (v Vector[T]) LowerBound(before func(T) bool) int {
	return LowerBound(v.items, before)
}

// All iterates over index/item pairs in order.
func (v Vector[T]) All() iter.Seq2[int, T] {
	return slices.All(v.items)
}

// Values iterates over the items in order.
func (v Vector[T]) Values() iter.Seq[T] {
	return slices.Values(v.items)
}

// Clone returns a copy of the items that the caller is free to modify.
func (v Vector[T]) Clone() []T {
	return slices.Clone(v.items)
}

// String renders the items as [a b c].
func (v Vector[T]) String() string {
	var sb strings.Builder

	sb.WriteByte('[')

	for i, item := range v.items {
		if i > 0 {
			sb.WriteByte(' ')
		}

		fmt.Fprint(&sb, item)
	}

	sb.WriteByte(']')

	return sb.String()
}
