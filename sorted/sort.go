package sorted

import (
	"github.com/amp-labs/staticmap/assert"
	"github.com/amp-labs/staticmap/compare"
)

// Sort orders items in place so that no element is less than its predecessor.
//
// It is a partition-exchange sort: each round partitions a range around its
// middle element and then handles the two sides independently. The smaller
// side is sorted recursively and the larger side by looping, which bounds the
// recursion depth to O(log n). Ranges of fewer than two elements are left
// alone, so less is never called for them.
//
// The sort is not stable.
func Sort[T any](items []T, less compare.LessFunc[T]) {
	lo, hi := 0, len(items)-1

	for lo < hi {
		pivot := Partition(items, lo, hi, less)
		assert.True(lo <= pivot && pivot <= hi, "pivot %d escaped [%d, %d]", pivot, lo, hi)

		if pivot-lo < hi-pivot {
			Sort(items[lo:pivot], less)

			lo = pivot + 1
		} else {
			Sort(items[pivot+1:hi+1], less)

			hi = pivot - 1
		}
	}
}

// Partition rearranges items[lo..hi] (inclusive) around the element found at
// the middle index and returns that element's final position p. Afterwards
// every element in items[lo:p] is less than items[p], and no element in
// items[p+1:hi+1] is.
//
// The pivot is parked at hi while the range is scanned left to right; each
// element that orders before it is swapped into the growing "less" prefix.
// Finally the pivot is swapped into the slot just past that prefix.
func Partition[T any](items []T, lo, hi int, less compare.LessFunc[T]) int {
	assert.InRange(lo, 0, hi)
	assert.InRange(hi, lo, len(items)-1)

	mid := lo + (hi-lo)/2
	items[mid], items[hi] = items[hi], items[mid]

	store := lo

	for i := lo; i < hi; i++ {
		if less(items[i], items[hi]) {
			items[i], items[store] = items[store], items[i]
			store++
		}
	}

	items[store], items[hi] = items[hi], items[store]

	return store
}

// IsSorted reports whether items is in non-descending order under less, i.e.
// no element orders before its predecessor.
func IsSorted[T any](items []T, less compare.LessFunc[T]) bool {
	return FirstUnsorted(items, less) < 0
}

// FirstUnsorted returns the smallest index i such that items[i] orders before
// items[i-1], or -1 when items is sorted.
func FirstUnsorted[T any](items []T, less compare.LessFunc[T]) int {
	for i := 1; i < len(items); i++ {
		if less(items[i], items[i-1]) {
			return i
		}
	}

	return -1
}

// LowerBound returns the first index in the sorted slice whose element is not
// before the search target, or len(items) when every element is. The target
// is described by before, which must report true exactly for the elements
// that order strictly before it; on a sorted slice those form a prefix.
//
// The search keeps a cursor and the count of candidates remaining to its
// right, halving the count on every probe.
func LowerBound[T any](items []T, before func(T) bool) int {
	first, count := 0, len(items)

	for count > 0 {
		step := count / 2
		mid := first + step

		if before(items[mid]) {
			first = mid + 1
			count -= step + 1
		} else {
			count = step
		}
	}

	return first
}
