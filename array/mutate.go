package array

import (
	"fmt"
	"sort"

	"github.com/a-peyrard/luarray/fn"
)

// Push appends items at the end of the array and returns the new length.
func (a *Array[T]) Push(items ...T) int {
	a.items = append(a.items, items...)
	return len(a.items)
}

// Pop removes and returns the last element. The boolean is false on an empty array.
func (a *Array[T]) Pop() (T, bool) {
	var zero T
	if len(a.items) == 0 {
		return zero, false
	}
	last := a.items[len(a.items)-1]
	a.items[len(a.items)-1] = zero
	a.items = a.items[:len(a.items)-1]
	return last, true
}

// Shift removes and returns the first element. The boolean is false on an empty array.
func (a *Array[T]) Shift() (T, bool) {
	var zero T
	if len(a.items) == 0 {
		return zero, false
	}
	first := a.items[0]
	a.items[0] = zero
	a.items = a.items[1:]
	return first, true
}

// Unshift inserts items at the beginning of the array and returns the new length.
func (a *Array[T]) Unshift(items ...T) int {
	grown := make([]T, 0, len(items)+len(a.items))
	grown = append(grown, items...)
	a.items = append(grown, a.items...)
	return len(a.items)
}

// Set replaces the element at pos in place.
func (a *Array[T]) Set(pos int, value T) error {
	resolved, ok := position(pos, len(a.items))
	if !ok {
		return fmt.Errorf("unable to set position %d of array of length %d: %w", pos, len(a.items), ErrIndexOutOfRange)
	}
	a.items[resolved-1] = value
	return nil
}

// Fill overwrites the range [start, end) with value and returns the receiver.
func (a *Array[T]) Fill(value T, bounds ...int) *Array[T] {
	start, end := span(len(a.items), bounds)
	for i := start; i < end; i++ {
		a.items[i-1] = value
	}
	return a
}

// CopyWithin copies the range [start, end) over the elements starting at target,
// without changing the length, and returns the receiver. Overlapping ranges are safe.
func (a *Array[T]) CopyWithin(target int, bounds ...int) *Array[T] {
	length := len(a.items)
	to := clamp(target, length)
	start, end := span(length, bounds)

	staged := make([]T, end-start)
	copy(staged, a.items[start-1:end-1])
	for k, v := range staged {
		if to+k > length {
			break
		}
		a.items[to+k-1] = v
	}
	return a
}

// Splice removes deleteCount elements starting at start, inserts items in their place
// and returns the removed elements. A negative deleteCount removes nothing.
func (a *Array[T]) Splice(start, deleteCount int, items ...T) *Array[T] {
	length := len(a.items)
	from := clamp(start, length) - 1
	count := max(0, min(deleteCount, length-from))

	removed := New(a.items[from : from+count]...)

	rebuilt := make([]T, 0, length-count+len(items))
	rebuilt = append(rebuilt, a.items[:from]...)
	rebuilt = append(rebuilt, items...)
	rebuilt = append(rebuilt, a.items[from+count:]...)
	a.items = rebuilt

	return removed
}

// SpliceFrom removes every element from start to the end and returns them.
func (a *Array[T]) SpliceFrom(start int) *Array[T] {
	return a.Splice(start, len(a.items))
}

// Sort sorts the array in place and returns it. Without comparator, elements are
// ordered by DefaultCompare. The sort is stable.
func (a *Array[T]) Sort(comparator ...fn.Comparator[T]) *Array[T] {
	compare := func(x, y T) fn.ComparisonResult {
		return DefaultCompare(x, y)
	}
	if len(comparator) > 0 && comparator[0] != nil {
		compare = comparator[0]
	}
	sort.SliceStable(a.items, func(i, j int) bool {
		return compare(a.items[i], a.items[j]) == fn.Less
	})
	return a
}

// Reverse reverses the array in place and returns it.
func (a *Array[T]) Reverse() *Array[T] {
	for i, j := 0, len(a.items)-1; i < j; i, j = i+1, j-1 {
		a.items[i], a.items[j] = a.items[j], a.items[i]
	}
	return a
}
