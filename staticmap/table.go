package staticmap

import (
	"cmp"
	"iter"
	"strings"

	"github.com/amp-labs/staticmap/compare"
	"github.com/amp-labs/staticmap/optional"
	"github.com/amp-labs/staticmap/sortable"
	"github.com/amp-labs/staticmap/sorted"
)

// Table is an immutable lookup table whose entries are kept sorted by key.
type Table[K comparable, V any] struct {
	less    compare.LessFunc[K]
	entries sorted.Vector[Entry[K, V]]
}

// New builds a Table from entries, ordering keys with less. The entries slice
// is copied, so the caller may reuse it.
func New[K comparable, V any](less compare.LessFunc[K], entries ...Entry[K, V]) *Table[K, V] {
	return &Table[K, V]{
		less:    less,
		entries: sorted.New(byKey[K, V](less), entries...),
	}
}

// NewOrdered builds a Table whose keys use their natural "<" ordering.
func NewOrdered[K cmp.Ordered, V any](entries ...Entry[K, V]) *Table[K, V] {
	return New(compare.Ordered[K](), entries...)
}

// NewSortable builds a Table whose keys are ordered by their LessThan method.
func NewSortable[K interface {
	comparable
	sortable.Sortable[K]
}, V any](entries ...Entry[K, V],
) *Table[K, V] {
	return New(sortable.Less[K](), entries...)
}

// FromSorted builds a Table from entries that are already in key order under
// less. The order is verified, not re-established: unsorted input yields an
// error wrapping errors.ErrNotSorted.
func FromSorted[K comparable, V any](less compare.LessFunc[K], entries ...Entry[K, V]) (*Table[K, V], error) {
	vec, err := sorted.FromSorted(byKey[K, V](less), entries...)
	if err != nil {
		return nil, err
	}

	return &Table[K, V]{less: less, entries: vec}, nil
}

// MustFromSorted is FromSorted, panicking on unsorted input. It is meant for
// package-level variables in generated code, where the input is known good.
func MustFromSorted[K comparable, V any](less compare.LessFunc[K], entries ...Entry[K, V]) *Table[K, V] {
	table, err := FromSorted(less, entries...)
	if err != nil {
		panic(err)
	}

	return table
}

// FromMap builds a Table from a Go map literal.
func FromMap[K comparable, V any](less compare.LessFunc[K], m map[K]V) *Table[K, V] {
	entries := make([]Entry[K, V], 0, len(m))

	for k, v := range m {
		entries = append(entries, E(k, v))
	}

	return New(less, entries...)
}

func byKey[K any, V any](less compare.LessFunc[K]) compare.LessFunc[Entry[K, V]] {
	return compare.ByKey(func(e Entry[K, V]) K { return e.Key }, less)
}

// Len returns the number of entries.
func (t *Table[K, V]) Len() int {
	return t.entries.Len()
}

// Less returns the key ordering the table was built with.
func (t *Table[K, V]) Less() compare.LessFunc[K] {
	return t.less
}

// LowerBound returns the position of the first entry whose key is not less
// than key, or Len() when there is none.
func (t *Table[K, V]) LowerBound(key K) int {
	return t.entries.LowerBound(func(e Entry[K, V]) bool {
		return t.less(e.Key, key)
	})
}

// Find looks key up. The result is present only when an entry's key is == key;
// otherwise it is None, whose Get yields the zero value of V.
func (t *Table[K, V]) Find(key K) optional.Value[V] {
	switch n := t.entries.Len(); n {
	case 0:
		return optional.None[V]()
	case 1:
		// One candidate: equality alone decides.
		if e := t.entries.At(0); e.Key == key {
			return optional.Some(e.Value)
		}

		return optional.None[V]()
	default:
		idx := t.LowerBound(key)
		if idx == n {
			return optional.None[V]()
		}

		if e := t.entries.At(idx); e.Key == key {
			return optional.Some(e.Value)
		}

		return optional.None[V]()
	}
}

// Get is Find in comma-ok form. On a miss the value is the zero value of V.
func (t *Table[K, V]) Get(key K) (V, bool) { //nolint:ireturn
	return t.Find(key).Get()
}

// GetOrElse returns the value stored for key, or dflt when key is absent.
func (t *Table[K, V]) GetOrElse(key K, dflt V) V { //nolint:ireturn
	return t.Find(key).GetOrElse(dflt)
}

// Contains reports whether key is present.
func (t *Table[K, V]) Contains(key K) bool {
	return t.Find(key).NonEmpty()
}

// Entry returns the entry at position i in key order, or an error wrapping
// errors.ErrIndexOutOfRange when i is outside [0, Len()).
func (t *Table[K, V]) Entry(i int) (Entry[K, V], error) {
	return t.entries.Get(i)
}

// At returns the entry at position i in key order. It panics with an error
// wrapping errors.ErrIndexOutOfRange when i is outside [0, Len()); on an empty
// table every index panics.
func (t *Table[K, V]) At(i int) Entry[K, V] {
	return t.entries.At(i)
}

// All iterates over key/value pairs in ascending key order.
func (t *Table[K, V]) All() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		for e := range t.entries.Values() {
			if !yield(e.Key, e.Value) {
				return
			}
		}
	}
}

// Entries iterates over the entries in ascending key order.
func (t *Table[K, V]) Entries() iter.Seq[Entry[K, V]] {
	return t.entries.Values()
}

// Keys iterates over the keys in ascending order.
func (t *Table[K, V]) Keys() iter.Seq[K] {
	return func(yield func(K) bool) {
		for e := range t.entries.Values() {
			if !yield(e.Key) {
				return
			}
		}
	}
}

// Values iterates over the values in ascending key order.
func (t *Table[K, V]) Values() iter.Seq[V] {
	return func(yield func(V) bool) {
		for e := range t.entries.Values() {
			if !yield(e.Value) {
				return
			}
		}
	}
}

// String renders the table as {k1: v1, k2: v2}.
func (t *Table[K, V]) String() string {
	var sb strings.Builder

	sb.WriteByte('{')

	for i, e := range t.entries.All() {
		if i > 0 {
			sb.WriteString(", ")
		}

		sb.WriteString(e.String())
	}

	sb.WriteByte('}')

	return sb.String()
}

// Equal reports whether a and b have the same length and eq holds for every
// pair of entries at the same position. The tables' own key orderings play no
// part beyond having determined those positions. Tables of different lengths
// are never equal.
func Equal[K1 comparable, V1 any, K2 comparable, V2 any](
	a *Table[K1, V1], b *Table[K2, V2], eq compare.EqualFunc[Entry[K1, V1], Entry[K2, V2]],
) bool {
	if a.Len() != b.Len() {
		return false
	}

	for i := range a.Len() {
		if !eq(a.At(i), b.At(i)) {
			return false
		}
	}

	return true
}

// EqualKeys is Equal with an equality predicate that compares keys only.
func EqualKeys[K comparable, V1 any, V2 any](a *Table[K, V1], b *Table[K, V2]) bool {
	return Equal(a, b, func(x Entry[K, V1], y Entry[K, V2]) bool {
		return x.Key == y.Key
	})
}
