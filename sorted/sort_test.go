package sorted_test

import (
	"math/rand/v2"
	"slices"
	"testing"

	"github.com/amp-labs/staticmap/compare"
	"github.com/amp-labs/staticmap/sorted"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type pair struct {
	key   int
	value int
}

var byKey = compare.ByKey(func(p pair) int { return p.key }, compare.Ordered[int]())

func TestSort(t *testing.T) {
	t.Parallel()

	t.Run("empty", func(t *testing.T) {
		t.Parallel()

		var items []int
		sorted.Sort(items, compare.Ordered[int]())
		assert.Empty(t, items)
	})

	t.Run("single item never compares", func(t *testing.T) {
		t.Parallel()

		items := []int{42}
		sorted.Sort(items, func(a, b int) bool {
			t.Fatal("less must not be called for a single item")

			return false
		})
		assert.Equal(t, []int{42}, items)
	})

	t.Run("small input", func(t *testing.T) {
		t.Parallel()

		items := []int{3, 6, 1, 8}
		sorted.Sort(items, compare.Ordered[int]())
		assert.Equal(t, []int{1, 3, 6, 8}, items)
	})

	t.Run("already sorted", func(t *testing.T) {
		t.Parallel()

		items := []int{1, 2, 3, 4, 5, 6, 7}
		sorted.Sort(items, compare.Ordered[int]())
		assert.Equal(t, []int{1, 2, 3, 4, 5, 6, 7}, items)
	})

	t.Run("reverse sorted", func(t *testing.T) {
		t.Parallel()

		items := []int{9, 8, 7, 6, 5, 4, 3, 2, 1, 0}
		sorted.Sort(items, compare.Ordered[int]())
		assert.Equal(t, []int{0, 1, 2, 3, 4, 5, 6, 7, 8, 9}, items)
	})

	t.Run("duplicates", func(t *testing.T) {
		t.Parallel()

		items := []int{5, 1, 5, 3, 1, 5, 2}
		sorted.Sort(items, compare.Ordered[int]())
		assert.Equal(t, []int{1, 1, 2, 3, 5, 5, 5}, items)
	})

	t.Run("all equal", func(t *testing.T) {
		t.Parallel()

		items := []int{4, 4, 4, 4, 4}
		sorted.Sort(items, compare.Ordered[int]())
		assert.Equal(t, []int{4, 4, 4, 4, 4}, items)
	})

	t.Run("custom ordering", func(t *testing.T) {
		t.Parallel()

		items := []int{3, 6, 1, 8}
		sorted.Sort(items, compare.Reverse(compare.Ordered[int]()))
		assert.Equal(t, []int{8, 6, 3, 1}, items)
	})

	t.Run("pairs by key", func(t *testing.T) {
		t.Parallel()

		items := []pair{{3, 1}, {6, 2}, {1, 0}, {8, 3}}
		sorted.Sort(items, byKey)
		assert.Equal(t, []pair{{1, 0}, {3, 1}, {6, 2}, {8, 3}}, items)
	})

	t.Run("random inputs agree with slices.Sort", func(t *testing.T) {
		t.Parallel()

		rng := rand.New(rand.NewPCG(1, 2)) //nolint:gosec

		for n := range 200 {
			items := make([]int, n)
			for i := range items {
				items[i] = rng.IntN(50)
			}

			want := slices.Clone(items)
			slices.Sort(want)

			sorted.Sort(items, compare.Ordered[int]())
			require.Equal(t, want, items, "n=%d", n)
		}
	})
}

func TestPartition(t *testing.T) {
	t.Parallel()

	items := []int{7, 2, 9, 4, 1}
	less := compare.Ordered[int]()

	// The middle element (9) is the pivot and ends up last.
	p := sorted.Partition(items, 0, len(items)-1, less)
	require.Equal(t, 4, p)
	assert.Equal(t, 9, items[p])

	for _, v := range items[:p] {
		assert.True(t, less(v, items[p]))
	}

	items = []int{5, 8, 3, 6, 2, 7, 4}
	p = sorted.Partition(items, 0, len(items)-1, less)
	assert.Equal(t, 6, items[p])

	for _, v := range items[:p] {
		assert.True(t, less(v, 6))
	}

	for _, v := range items[p+1:] {
		assert.False(t, less(v, 6))
	}
}

func TestPartition_InvalidRange(t *testing.T) {
	t.Parallel()

	less := compare.Ordered[int]()

	assert.PanicsWithValue(t, "index 2 outside [0, 1]", func() {
		sorted.Partition([]int{1, 2}, 0, 2, less)
	})
	assert.PanicsWithValue(t, "index 1 outside [0, 0]", func() {
		sorted.Partition([]int{1, 2}, 1, 0, less)
	})
	assert.PanicsWithValue(t, "index -1 outside [0, 1]", func() {
		sorted.Partition([]int{1, 2}, -1, 1, less)
	})
}

func TestIsSorted(t *testing.T) {
	t.Parallel()

	less := compare.Ordered[int]()

	assert.True(t, sorted.IsSorted([]int{}, less))
	assert.True(t, sorted.IsSorted([]int{1}, less))
	assert.True(t, sorted.IsSorted([]int{1, 1, 2}, less))
	assert.False(t, sorted.IsSorted([]int{2, 1}, less))

	assert.Equal(t, -1, sorted.FirstUnsorted([]int{1, 2, 3}, less))
	assert.Equal(t, 2, sorted.FirstUnsorted([]int{1, 3, 2}, less))
}

func TestLowerBound(t *testing.T) {
	t.Parallel()

	items := []int{1, 3, 3, 5, 8}

	before := func(target int) func(int) bool {
		return func(v int) bool { return v < target }
	}

	assert.Equal(t, 0, sorted.LowerBound(items, before(0)))
	assert.Equal(t, 0, sorted.LowerBound(items, before(1)))
	assert.Equal(t, 1, sorted.LowerBound(items, before(2)))
	assert.Equal(t, 1, sorted.LowerBound(items, before(3)), "first of equal run")
	assert.Equal(t, 3, sorted.LowerBound(items, before(4)))
	assert.Equal(t, 4, sorted.LowerBound(items, before(8)))
	assert.Equal(t, 5, sorted.LowerBound(items, before(9)), "past the end")
	assert.Equal(t, 0, sorted.LowerBound([]int{}, before(9)))
}
