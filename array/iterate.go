package array

import (
	"fmt"
	"iter"
)

// Reduce folds the array from left to right. Without an initial value, the first
// element seeds the accumulator and folding starts at the second one.
func (a *Array[T]) Reduce(reducer Reducer[T, T], initial ...T) (T, error) {
	if len(initial) > 0 {
		return Fold(a, reducer, initial[0]), nil
	}
	if len(a.items) == 0 {
		var zero T
		return zero, fmt.Errorf("unable to reduce: %w", ErrEmptyReduce)
	}
	acc := a.items[0]
	for i := 2; i <= len(a.items); i++ {
		acc = reducer(acc, a.items[i-1], i, a)
	}
	return acc, nil
}

// ReduceRight is Reduce folding from right to left.
func (a *Array[T]) ReduceRight(reducer Reducer[T, T], initial ...T) (T, error) {
	if len(initial) > 0 {
		return FoldRight(a, reducer, initial[0]), nil
	}
	if len(a.items) == 0 {
		var zero T
		return zero, fmt.Errorf("unable to reduce right: %w", ErrEmptyReduce)
	}
	last := len(a.items)
	acc := a.items[last-1]
	for i := last - 1; i >= 1; i-- {
		acc = reducer(acc, a.items[i-1], i, a)
	}
	return acc, nil
}

// Fold folds the elements of a from left to right into an accumulator of any type.
func Fold[T any, A any](a *Array[T], reducer Reducer[T, A], initial A) A {
	acc := initial
	for i, v := range a.items {
		acc = reducer(acc, v, i+1, a)
	}
	return acc
}

// FoldRight folds the elements of a from right to left into an accumulator of any type.
func FoldRight[T any, A any](a *Array[T], reducer Reducer[T, A], initial A) A {
	acc := initial
	for i := len(a.items); i >= 1; i-- {
		acc = reducer(acc, a.items[i-1], i, a)
	}
	return acc
}

// Every reports whether all elements match the predicate. It stops at the first miss.
func (a *Array[T]) Every(predicate Predicate[T]) bool {
	for i, v := range a.items {
		if !predicate(v, i+1, a) {
			return false
		}
	}
	return true
}

// Some reports whether any element matches the predicate. It stops at the first match.
func (a *Array[T]) Some(predicate Predicate[T]) bool {
	return a.FindIndex(predicate) != -1
}

// ForEach calls consumer for every element, in order. Elements added by consumer
// are not visited.
func (a *Array[T]) ForEach(consumer func(element T, index int, arr *Array[T])) {
	for i, n := 1, len(a.items); i <= min(n, len(a.items)); i++ {
		consumer(a.items[i-1], i, a)
	}
}

// Entries returns a single-pass iterator over (position, element) pairs.
//
// Ranging over it a second time yields nothing; breaking out of a range and ranging
// again resumes after the last yielded pair. Call Entries again to start over.
func (a *Array[T]) Entries() iter.Seq2[int, T] {
	next := 1
	return func(yield func(int, T) bool) {
		for next <= len(a.items) {
			pos := next
			next++
			if !yield(pos, a.items[pos-1]) {
				return
			}
		}
	}
}

// Keys returns a single-pass iterator over positions. See Entries.
func (a *Array[T]) Keys() iter.Seq[int] {
	entries := a.Entries()
	return func(yield func(int) bool) {
		for pos := range entries {
			if !yield(pos) {
				return
			}
		}
	}
}

// Values returns a single-pass iterator over elements. See Entries.
func (a *Array[T]) Values() iter.Seq[T] {
	entries := a.Entries()
	return func(yield func(T) bool) {
		for _, v := range entries {
			if !yield(v) {
				return
			}
		}
	}
}
