package sortable_test

import (
	"testing"

	"github.com/amp-labs/staticmap/sortable"
	"github.com/stretchr/testify/assert"
)

func TestInt(t *testing.T) {
	t.Parallel()

	assert.True(t, sortable.Int(1).LessThan(2))
	assert.False(t, sortable.Int(2).LessThan(1))
	assert.True(t, sortable.Int(7).Equals(7))
	assert.False(t, sortable.Int(7).Equals(8))
}

func TestByte(t *testing.T) {
	t.Parallel()

	assert.True(t, sortable.Byte('a').LessThan('b'))
	assert.False(t, sortable.Byte('b').LessThan('a'))
	assert.True(t, sortable.Byte('x').Equals('x'))
}

func TestString(t *testing.T) {
	t.Parallel()

	assert.True(t, sortable.String("item10").LessThan("item9"), "plain strings compare bytewise")
	assert.True(t, sortable.String("a").Equals("a"))
}

func TestNaturalString(t *testing.T) {
	t.Parallel()

	assert.True(t, sortable.NaturalString("item9").LessThan("item10"))
	assert.False(t, sortable.NaturalString("item10").LessThan("item9"))
	assert.False(t, sortable.NaturalString("item9").LessThan("item9"))
	assert.True(t, sortable.NaturalString("item9").Equals("item9"))
}

func TestLessAndEqual(t *testing.T) {
	t.Parallel()

	less := sortable.Less[sortable.Int]()
	equal := sortable.Equal[sortable.Int]()

	assert.True(t, less(1, 2))
	assert.False(t, less(2, 2))
	assert.True(t, equal(2, 2))
	assert.False(t, equal(1, 2))
}
