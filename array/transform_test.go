package array

import (
	"strconv"
	"testing"

	"github.com/a-peyrard/luarray/fn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMap(t *testing.T) {
	t.Run("it should map every element keeping order", func(t *testing.T) {
		// GIVEN
		arr := New(1, 4, 9)

		// WHEN
		doubled := arr.Map(func(v int, _ int, _ *Array[int]) int { return v * 2 })

		// THEN
		assert.Equal(t, []int{2, 8, 18}, doubled.ToSlice())
		assert.Equal(t, []int{1, 4, 9}, arr.ToSlice())
	})

	t.Run("it should map to another element type", func(t *testing.T) {
		// GIVEN
		arr := New(1, 2, 3)

		// WHEN
		labels := Map(arr, func(v int, i int, _ *Array[int]) string {
			return strconv.Itoa(i) + ":" + strconv.Itoa(v*v)
		})

		// THEN
		assert.Equal(t, []string{"1:1", "2:4", "3:9"}, labels.ToSlice())
	})
}

func TestFilter(t *testing.T) {
	t.Run("it should keep matching elements in order", func(t *testing.T) {
		// GIVEN
		arr := New("spray", "elite", "exuberant", "destruction", "present")

		// WHEN
		long := arr.Filter(func(v string, _ int, _ *Array[string]) bool { return len(v) > 6 })

		// THEN
		assert.Equal(t, []string{"exuberant", "destruction", "present"}, long.ToSlice())
		assert.Equal(t, 5, arr.Len())
	})

	t.Run("it should return an empty array when nothing matches", func(t *testing.T) {
		// GIVEN / WHEN
		none := New(1, 2).Filter(func(int, int, *Array[int]) bool { return false })

		// THEN
		assert.True(t, none.IsEmpty())
	})
}

func TestSlice(t *testing.T) {
	arr := New("a", "b", "c", "d", "e")

	testCases := []struct {
		name     string
		bounds   []int
		expected []string
	}{
		{name: "no bounds copies everything", bounds: nil, expected: []string{"a", "b", "c", "d", "e"}},
		{name: "start only", bounds: []int{3}, expected: []string{"c", "d", "e"}},
		{name: "half-open range", bounds: []int{2, 4}, expected: []string{"b", "c"}},
		{name: "negative end", bounds: []int{3, -1}, expected: []string{"c", "d"}},
		{name: "negative start", bounds: []int{-2}, expected: []string{"d", "e"}},
		{name: "start past the end", bounds: []int{6}, expected: []string{}},
		{name: "end before start", bounds: []int{4, 2}, expected: []string{}},
		{name: "bounds clamped", bounds: []int{-10, 10}, expected: []string{"a", "b", "c", "d", "e"}},
		{name: "zero start", bounds: []int{0, 2}, expected: []string{"a"}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			// WHEN
			result := arr.Slice(tc.bounds...)

			// THEN
			assert.Equal(t, tc.expected, result.ToSlice())
		})
	}

	t.Run("it should return a new array", func(t *testing.T) {
		// WHEN
		copied := arr.Slice()
		copied.Push("f")

		// THEN
		assert.NotSame(t, arr, copied)
		assert.Equal(t, 5, arr.Len())
	})
}

func TestConcat(t *testing.T) {
	t.Run("it should expand sequence-like arguments and append scalars", func(t *testing.T) {
		// GIVEN
		arr := New(1, 2)

		// WHEN
		result := arr.Concat(New(3, 4), []string{"five"}, 6, "seven")

		// THEN
		assert.Equal(t, []any{1, 2, 3, 4, "five", 6, "seven"}, result.ToSlice())
	})

	t.Run("it should only expand one level", func(t *testing.T) {
		// GIVEN
		nested := New(3)

		// WHEN
		result := New(1).Concat(Of(2, nested))

		// THEN
		assert.Equal(t, []any{1, 2, nested}, result.ToSlice())
	})

	t.Run("it should return a copy without arguments", func(t *testing.T) {
		// GIVEN
		arr := Of(1, 2)

		// WHEN
		result := arr.Concat()

		// THEN
		assert.NotSame(t, arr, result)
		assert.True(t, arr.Equal(result))
	})

	t.Run("it should concatenate typed arrays", func(t *testing.T) {
		// GIVEN / WHEN
		result := New(1).ConcatArrays(New(2, 3), New[int](), New(4))

		// THEN
		assert.Equal(t, []int{1, 2, 3, 4}, result.ToSlice())
	})
}

func TestToReversed(t *testing.T) {
	t.Run("it should reverse into a new array", func(t *testing.T) {
		// GIVEN
		arr := New(1, 2, 3)

		// WHEN
		reversed := arr.ToReversed()

		// THEN
		assert.Equal(t, []int{3, 2, 1}, reversed.ToSlice())
		assert.Equal(t, []int{1, 2, 3}, arr.ToSlice())
	})
}

func TestWith(t *testing.T) {
	t.Run("it should replace one element in a copy", func(t *testing.T) {
		// GIVEN
		arr := New(1, 2, 3)

		// WHEN
		result, err := arr.With(2, 20)

		// THEN
		require.NoError(t, err)
		assert.Equal(t, []int{1, 20, 3}, result.ToSlice())
		assert.Equal(t, []int{1, 2, 3}, arr.ToSlice())
	})

	t.Run("it should accept negative positions", func(t *testing.T) {
		// GIVEN / WHEN
		result, err := New(1, 2, 3).With(-1, 30)

		// THEN
		require.NoError(t, err)
		assert.Equal(t, []int{1, 2, 30}, result.ToSlice())
	})

	t.Run("it should fail out of range", func(t *testing.T) {
		for _, pos := range []int{0, 4, -4} {
			_, err := New(1, 2, 3).With(pos, 0)
			assert.ErrorIs(t, err, ErrIndexOutOfRange, "position %d", pos)
		}
	})

	t.Run("it should panic out of range with MustWith", func(t *testing.T) {
		assert.Panics(t, func() {
			New(1).MustWith(2, 0)
		})
	})
}

func TestFlat(t *testing.T) {
	t.Run("it should flatten one level by default", func(t *testing.T) {
		// GIVEN
		arr := Of(1, Of(2, Of(3, Of(4))))

		// WHEN
		result := arr.Flat()

		// THEN
		require.Equal(t, 3, result.Len())
		assert.Equal(t, 1, result.items[0])
		assert.Equal(t, 2, result.items[1])
		assert.Equal(t, "3,4", result.items[2].(*Array[any]).Join())
	})

	t.Run("it should flatten up to the given depth", func(t *testing.T) {
		// GIVEN
		arr := Of(1, Of(2, Of(3, Of(4))))

		// WHEN
		result := arr.Flat(3)

		// THEN
		assert.Equal(t, []any{1, 2, 3, 4}, result.ToSlice())
	})

	t.Run("it should not expand with a depth of zero", func(t *testing.T) {
		// GIVEN
		nested := []int{2}
		arr := Of(1, nested)

		// WHEN
		result := arr.Flat(0)

		// THEN
		assert.Equal(t, []any{1, nested}, result.ToSlice())
	})

	t.Run("it should expand go slices but not strings", func(t *testing.T) {
		// GIVEN / WHEN
		result := Of("ab", []string{"c", "d"}).Flat()

		// THEN
		assert.Equal(t, []any{"ab", "c", "d"}, result.ToSlice())
	})

	t.Run("it should stop on self references", func(t *testing.T) {
		// GIVEN
		arr := Of(1)
		arr.Push(arr)

		// WHEN
		result := arr.Flat(100)

		// THEN
		require.Equal(t, 2, result.Len())
		assert.Same(t, arr, result.items[1])
	})
}

func TestFlatMap(t *testing.T) {
	t.Run("it should map then flatten one level", func(t *testing.T) {
		// GIVEN
		arr := New("it's Sunny", "in", "")

		// WHEN
		result := arr.FlatMap(func(v string, _ int, _ *Array[string]) any {
			return MustFrom(v).Filter(func(c any, _ int, _ *Array[any]) bool { return c != " " })
		})

		// THEN
		assert.Equal(t, "i,t,',s,S,u,n,n,y,i,n", result.Join())
	})

	t.Run("it should drop empty results", func(t *testing.T) {
		// GIVEN
		arr := New(1, 2, 3, 4)

		// WHEN
		result := arr.FlatMap(func(v int, _ int, _ *Array[int]) any {
			if v%2 == 0 {
				return []int{}
			}
			return []int{v, v}
		})

		// THEN
		assert.Equal(t, []any{1, 1, 3, 3}, result.ToSlice())
	})

	t.Run("it should keep scalar results", func(t *testing.T) {
		// GIVEN / WHEN
		result := New(1, 2).FlatMap(func(v int, _ int, _ *Array[int]) any {
			return Of(v, Of(v * 10))
		})

		// THEN
		require.Equal(t, 4, result.Len())
		assert.Equal(t, 1, result.items[0])
		assert.True(t, IsInstance(result.items[1]))
	})

	t.Run("it should concatenate typed slices", func(t *testing.T) {
		// GIVEN / WHEN
		result := FlatMap(New(1, 2, 3), func(v int, _ int, _ *Array[int]) []int {
			return make([]int, v)
		})

		// THEN
		assert.Equal(t, 6, result.Len())
	})
}

func TestToSortedAndToSpliced(t *testing.T) {
	t.Run("it should sort a copy", func(t *testing.T) {
		// GIVEN
		arr := New(3, 1, 2)

		// WHEN
		sorted := arr.ToSorted(fn.ReverseComparator(fn.Ordered[int]))

		// THEN
		assert.Equal(t, []int{3, 2, 1}, sorted.ToSlice())
		assert.Equal(t, []int{3, 1, 2}, arr.ToSlice())
	})

	t.Run("it should splice a copy", func(t *testing.T) {
		// GIVEN
		arr := New("Jan", "Mar", "Apr", "May")

		// WHEN
		spliced := arr.ToSpliced(2, 0, "Feb")

		// THEN
		assert.Equal(t, []string{"Jan", "Feb", "Mar", "Apr", "May"}, spliced.ToSlice())
		assert.Equal(t, 4, arr.Len())
	})
}
