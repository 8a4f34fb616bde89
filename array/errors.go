package array

import "errors"

var (
	// ErrNilSource is returned by From when no source is given.
	ErrNilSource = errors.New("source cannot be nil")

	// ErrIndexOutOfRange is returned when a position does not address an element.
	ErrIndexOutOfRange = errors.New("index out of range")

	// ErrEmptyReduce is returned when reducing an empty array without an initial value.
	ErrEmptyReduce = errors.New("reduce of empty array with no initial value")

	// ErrScalarMerge is returned by Merge when neither operand is sequence-like.
	ErrScalarMerge = errors.New("at least one operand must be sequence-like")
)
