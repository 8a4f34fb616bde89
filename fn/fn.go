package fn

import (
	"cmp"

	"github.com/maruel/natural"
)

// ComparisonResult represents the result of comparing two values.
type ComparisonResult int

const (
	Equal   ComparisonResult = 0
	Less    ComparisonResult = -1
	Greater ComparisonResult = 1
)

// Comparator represents a function that compares two values of type T.
type Comparator[T any] func(i1 T, i2 T) ComparisonResult

// ReverseComparator returns a comparator that reverses the order of the given comparator.
func ReverseComparator[T any](comparator Comparator[T]) Comparator[T] {
	return func(i1 T, i2 T) ComparisonResult {
		return comparator(i2, i1)
	}
}

// FromLess builds a comparator out of a strict "less than" function.
func FromLess[T any](less func(i1 T, i2 T) bool) Comparator[T] {
	return func(i1 T, i2 T) ComparisonResult {
		switch {
		case less(i1, i2):
			return Less
		case less(i2, i1):
			return Greater
		default:
			return Equal
		}
	}
}

// Ordered compares two ordered values with their natural operators.
func Ordered[T cmp.Ordered](i1 T, i2 T) ComparisonResult {
	return ComparisonResult(cmp.Compare(i1, i2))
}

// Natural compares strings in natural order, digits being compared as numbers.
func Natural(s1 string, s2 string) ComparisonResult {
	return FromLess(natural.Less)(s1, s2)
}

// TriConsumer represents a function that accepts three input arguments and returns no result.
type TriConsumer[T1 any, T2 any, T3 any] func(t1 T1, t2 T2, t3 T3)

// AllTriConsumer creates a tri-consumer that will execute all the given tri-consumers.
func AllTriConsumer[A any, B any, C any](consumers ...TriConsumer[A, B, C]) TriConsumer[A, B, C] {
	return func(a A, b B, c C) {
		for _, consumer := range consumers {
			consumer(a, b, c)
		}
	}
}
