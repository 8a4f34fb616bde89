package array

import (
	"github.com/a-peyrard/luarray/slices"
)

type (
	// Array is an ordered, mutable container addressed by 1-based positions.
	//
	// The zero value is an empty array ready to use. Arrays are shared by pointer:
	// assigning an *Array to another variable aliases the same storage.
	Array[T any] struct {
		items []T
	}

	// Sequence is implemented by every *Array, whatever its element type.
	//
	// It cannot be implemented outside this package, so it tags values built by this
	// package. Foreign containers are recognized through Indexable instead.
	Sequence interface {
		Len() int

		elements() []any
	}

	// Callback is invoked with an element, its position and the array being traversed.
	Callback[T any, R any] func(element T, index int, arr *Array[T]) R

	// Predicate is a Callback answering a yes/no question about an element.
	Predicate[T any] func(element T, index int, arr *Array[T]) bool

	// Reducer folds an element into an accumulator.
	Reducer[T any, A any] func(acc A, element T, index int, arr *Array[T]) A
)

// New creates an array holding the given elements, in order.
func New[T any](elements ...T) *Array[T] {
	items := make([]T, len(elements))
	copy(items, elements)
	return &Array[T]{items: items}
}

// Of creates a heterogeneous array holding the given elements, in order.
func Of(elements ...any) *Array[any] {
	return New(elements...)
}

// FromSlice creates an array holding a copy of the given slice.
func FromSlice[T any](s []T) *Array[T] {
	return New(s...)
}

// Len returns the number of elements.
func (a *Array[T]) Len() int {
	return len(a.items)
}

// IsEmpty returns true if the array holds no element.
func (a *Array[T]) IsEmpty() bool {
	return len(a.items) == 0
}

// ToSlice returns a copy of the elements as a plain slice.
func (a *Array[T]) ToSlice() []T {
	out := make([]T, len(a.items))
	copy(out, a.items)
	return out
}

// Clone returns a shallow copy of the array.
func (a *Array[T]) Clone() *Array[T] {
	return New(a.items...)
}

// Equal reports whether both arrays hold the same elements in the same order,
// comparing elements the way IndexOf does.
func (a *Array[T]) Equal(other *Array[T]) bool {
	if a == other {
		return true
	}
	if other == nil || len(a.items) != len(other.items) {
		return false
	}
	for i := range a.items {
		if !same(a.items[i], other.items[i]) {
			return false
		}
	}
	return true
}

func (a *Array[T]) elements() []any {
	return slices.Map(a.items, func(v T) any { return v })
}
