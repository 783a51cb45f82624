package dataset

import (
	"math"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerate_Deterministic(t *testing.T) {
	spec := Spec{Pattern: Random, Size: 50, Min: DefaultMin, Max: DefaultMax, Seed: 99}
	a, err := Generate(spec)
	require.NoError(t, err)
	b, err := Generate(spec)
	require.NoError(t, err)
	assert.Equal(t, a, b)

	spec.Seed = 100
	c, err := Generate(spec)
	require.NoError(t, err)
	assert.NotEqual(t, a, c)
}

func TestGenerate_Patterns(t *testing.T) {
	for _, p := range Patterns() {
		arr, err := Generate(Spec{Pattern: p, Size: 40, Min: 10, Max: 400, Seed: 1})
		require.NoError(t, err, p)
		require.Len(t, arr, 40, p)
		for _, v := range arr {
			assert.GreaterOrEqual(t, v, 10, p)
			assert.LessOrEqual(t, v, 400, p)
		}
		switch p {
		case Sorted:
			assert.True(t, sort.IntsAreSorted(arr))
		case Reversed:
			assert.True(t, sort.IsSorted(sort.Reverse(sort.IntSlice(arr))))
		case FewUnique:
			seen := map[int]bool{}
			for _, v := range arr {
				seen[v] = true
			}
			assert.LessOrEqual(t, len(seen), 4)
		}
	}
}

func TestGenerate_Invalid(t *testing.T) {
	_, err := Generate(Spec{Pattern: Random, Size: MaxSize + 1, Min: 1, Max: 2})
	assert.ErrorIs(t, err, ErrSize)

	_, err = Generate(Spec{Pattern: Random, Size: 3, Min: 5, Max: 2})
	assert.ErrorIs(t, err, ErrBounds)

	_, err = Generate(Spec{Pattern: "zigzag", Size: 3, Min: 1, Max: 2})
	assert.ErrorIs(t, err, ErrPattern)

	assert.NotPanics(t, func() {
		_, err = Generate(Spec{Pattern: Random, Size: 4, Min: 0, Max: math.MaxInt})
	})
	assert.ErrorIs(t, err, ErrBounds)

	_, err = Generate(Spec{Pattern: FewUnique, Size: 4, Min: MaxValue + 1, Max: MaxValue + 2})
	assert.ErrorIs(t, err, ErrBounds)

	arr, err := Generate(Spec{Pattern: Random, Size: 4, Min: 0, Max: MaxValue})
	require.NoError(t, err)
	for _, v := range arr {
		assert.LessOrEqual(t, v, MaxValue)
	}
}

func TestParseArray(t *testing.T) {
	arr, err := ParseArray("5, 1,4 2\t8")
	require.NoError(t, err)
	assert.Equal(t, []int{5, 1, 4, 2, 8}, arr)

	arr, err = ParseArray("")
	require.NoError(t, err)
	assert.Empty(t, arr)

	_, err = ParseArray("1,two,3")
	assert.ErrorIs(t, err, ErrParse)

	_, err = ParseArray("1,-2")
	assert.ErrorIs(t, err, ErrBounds)

	_, err = ParseArray("1,100000000000000000")
	assert.ErrorIs(t, err, ErrBounds)
}

func TestParseInt(t *testing.T) {
	assert.Equal(t, 42, ParseInt(" 42 ", 7))
	assert.Equal(t, 7, ParseInt("", 7))
	assert.Equal(t, 7, ParseInt("forty", 7))
}

func TestClamp(t *testing.T) {
	assert.Equal(t, 1, Clamp(-5, 1, 10))
	assert.Equal(t, 10, Clamp(50, 1, 10))
	assert.Equal(t, 4, Clamp(4, 1, 10))
}

func TestPickTarget(t *testing.T) {
	arr := []int{3, 9, 27}
	assert.Contains(t, arr, PickTarget(arr, 5, -1))
	assert.Equal(t, -1, PickTarget(nil, 5, -1))
}
