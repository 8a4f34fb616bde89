package array

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAt(t *testing.T) {
	arr := New("a", "b", "c")

	testCases := []struct {
		name     string
		pos      int
		expected string
		found    bool
	}{
		{name: "first", pos: 1, expected: "a", found: true},
		{name: "last", pos: 3, expected: "c", found: true},
		{name: "negative last", pos: -1, expected: "c", found: true},
		{name: "negative first", pos: -3, expected: "a", found: true},
		{name: "zero", pos: 0, found: false},
		{name: "past the end", pos: 4, found: false},
		{name: "before the start", pos: -4, found: false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			// WHEN
			v, ok := arr.At(tc.pos)

			// THEN
			assert.Equal(t, tc.found, ok)
			assert.Equal(t, tc.expected, v)
		})
	}
}

func TestIndexOf(t *testing.T) {
	t.Run("it should return the first matching position", func(t *testing.T) {
		assert.Equal(t, 1, New(2, 5, 9, 2).IndexOf(2))
		assert.Equal(t, 3, New(2, 5, 9, 2).IndexOf(9))
	})

	t.Run("it should return -1 on a miss", func(t *testing.T) {
		assert.Equal(t, -1, New(2, 5, 9, 2).IndexOf(7))
		assert.Equal(t, -1, New[int]().IndexOf(7))
	})

	t.Run("it should start the search at from", func(t *testing.T) {
		assert.Equal(t, 4, New(2, 5, 9, 2).IndexOf(2, 2))
		assert.Equal(t, 4, New(2, 5, 9, 2).IndexOf(2, -1))
		assert.Equal(t, 1, New(2, 5, 9, 2).IndexOf(2, -10))
		assert.Equal(t, -1, New(2, 5, 9, 2).IndexOf(2, 5))
	})

	t.Run("it should find zero values and nil", func(t *testing.T) {
		assert.Equal(t, 2, New(1, 0, 3).IndexOf(0))
		assert.Equal(t, 2, New("a", "").IndexOf(""))
		assert.Equal(t, 3, Of(1, false, nil).IndexOf(nil))
		assert.Equal(t, 2, Of(1, false, nil).IndexOf(false))
	})

	t.Run("it should compare nested containers by reference", func(t *testing.T) {
		// GIVEN
		nested := []int{1, 2}
		arr := Of([]int{1, 2}, nested)

		// WHEN / THEN
		assert.Equal(t, 2, arr.IndexOf(nested))
		assert.Equal(t, -1, arr.IndexOf([]int{1, 2}))
	})

	t.Run("it should not match values of different types", func(t *testing.T) {
		assert.Equal(t, -1, Of(1, 2).IndexOf(int64(1)))
	})
}

func TestLastIndexOf(t *testing.T) {
	t.Run("it should return the last matching position", func(t *testing.T) {
		assert.Equal(t, 4, New(2, 5, 9, 2).LastIndexOf(2))
	})

	t.Run("it should search backward from from", func(t *testing.T) {
		assert.Equal(t, 1, New(2, 5, 9, 2).LastIndexOf(2, 2))
		assert.Equal(t, 1, New(2, 5, 9, 2).LastIndexOf(2, -2))
		assert.Equal(t, 4, New(2, 5, 9, 2).LastIndexOf(2, 10))
	})

	t.Run("it should miss when from resolves before the first element", func(t *testing.T) {
		assert.Equal(t, -1, New(2, 5, 9, 2).LastIndexOf(2, -5))
		assert.Equal(t, -1, New(2, 5, 9, 2).LastIndexOf(2, 0))
	})
}

func TestIncludes(t *testing.T) {
	t.Run("it should report presence", func(t *testing.T) {
		assert.True(t, New("a", "b").Includes("b"))
		assert.False(t, New("a", "b").Includes("c"))
		assert.False(t, New("a", "b").Includes("a", 2))
	})
}

func TestFind(t *testing.T) {
	arr := New(5, 12, 8, 130, 44)
	isBig := func(v int, _ int, _ *Array[int]) bool { return v > 10 }
	isHuge := func(v int, _ int, _ *Array[int]) bool { return v > 1000 }

	t.Run("it should find the first match", func(t *testing.T) {
		v, ok := arr.Find(isBig)
		assert.True(t, ok)
		assert.Equal(t, 12, v)
		assert.Equal(t, 2, arr.FindIndex(isBig))
	})

	t.Run("it should find the last match", func(t *testing.T) {
		v, ok := arr.FindLast(isBig)
		assert.True(t, ok)
		assert.Equal(t, 44, v)
		assert.Equal(t, 5, arr.FindLastIndex(isBig))
	})

	t.Run("it should return the miss sentinels", func(t *testing.T) {
		v, ok := arr.Find(isHuge)
		assert.False(t, ok)
		assert.Zero(t, v)
		assert.Equal(t, -1, arr.FindIndex(isHuge))

		_, ok = arr.FindLast(isHuge)
		assert.False(t, ok)
		assert.Equal(t, -1, arr.FindLastIndex(isHuge))
	})

	t.Run("it should pass positions and the array to the predicate", func(t *testing.T) {
		// GIVEN
		var positions []int

		// WHEN
		arr.FindLastIndex(func(_ int, i int, a *Array[int]) bool {
			assert.Same(t, arr, a)
			positions = append(positions, i)
			return false
		})

		// THEN
		assert.Equal(t, []int{5, 4, 3, 2, 1}, positions)
	})
	t.Run("it should not visit elements pushed by the predicate", func(t *testing.T) {
		// GIVEN
		growing := New(1, 2)
		calls := 0

		// WHEN
		index := growing.FindIndex(func(v int, _ int, a *Array[int]) bool {
			calls++
			a.Push(v)
			return false
		})

		// THEN
		assert.Equal(t, -1, index)
		assert.Equal(t, 2, calls)
		assert.Equal(t, []int{1, 2, 1, 2}, growing.ToSlice())
	})

	t.Run("it should stop when the predicate shrinks the array", func(t *testing.T) {
		// GIVEN
		shrinking := New(1, 2, 3)
		var visited []int

		// WHEN
		_, ok := shrinking.Find(func(v int, _ int, a *Array[int]) bool {
			visited = append(visited, v)
			a.Pop()
			return false
		})

		// THEN
		assert.False(t, ok)
		assert.Equal(t, []int{1, 2}, visited)
	})
}
