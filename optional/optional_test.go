package optional

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSome(t *testing.T) {
	t.Parallel()

	opt := Some(42)
	assert.True(t, opt.NonEmpty())
	assert.False(t, opt.Empty())

	val, ok := opt.Get()
	assert.True(t, ok)
	assert.Equal(t, 42, val)
}

func TestNone(t *testing.T) {
	t.Parallel()

	opt := None[int]()
	assert.False(t, opt.NonEmpty())
	assert.True(t, opt.Empty())

	val, ok := opt.Get()
	assert.False(t, ok)
	assert.Equal(t, 0, val) // zero value
}

func TestZeroValueIsNone(t *testing.T) {
	t.Parallel()

	var opt Value[string]

	assert.True(t, opt.Empty())
	assert.Equal(t, "None", opt.String())
}

func TestSomeOfZeroValue(t *testing.T) {
	t.Parallel()

	opt := Some(0)

	val, ok := opt.Get()
	assert.True(t, ok, "a stored zero value is still present")
	assert.Equal(t, 0, val)
}

func TestGetOrPanic(t *testing.T) {
	t.Parallel()

	t.Run("Some", func(t *testing.T) {
		t.Parallel()

		assert.Equal(t, 42, Some(42).GetOrPanic())
	})

	t.Run("None", func(t *testing.T) {
		t.Parallel()

		assert.Panics(t, func() {
			None[int]().GetOrPanic()
		})
	})
}

func TestGetOrElse(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 42, Some(42).GetOrElse(99))
	assert.Equal(t, 99, None[int]().GetOrElse(99))
}

func TestAll(t *testing.T) {
	t.Parallel()

	var got []int
	for v := range Some(7).All() {
		got = append(got, v)
	}

	assert.Equal(t, []int{7}, got)

	for range None[int]().All() {
		t.Fatal("None must not yield")
	}
}

func TestEquals(t *testing.T) {
	t.Parallel()

	eq := func(a, b int) bool { return a == b }

	assert.True(t, Some(1).Equals(Some(1), eq))
	assert.False(t, Some(1).Equals(Some(2), eq))
	assert.False(t, Some(1).Equals(None[int](), eq))
	assert.True(t, None[int]().Equals(None[int](), eq))
}

func TestString(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "Some(hello)", Some("hello").String())
	assert.Equal(t, "None", None[string]().String())
}

func TestMap(t *testing.T) {
	t.Parallel()

	double := func(v int) int { return v * 2 }

	assert.Equal(t, 10, Map(Some(5), double).GetOrElse(0))
	assert.True(t, Map(None[int](), double).Empty())
}
