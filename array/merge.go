package array

import "fmt"

// Merge is the concatenation operator: two sequence-like operands are merged element
// wise, and a scalar operand is appended or prepended depending on its side.
// Merging two scalars is an error.
func Merge(left, right any) (*Array[any], error) {
	l, r := classify(left), classify(right)
	switch {
	case l.sequenceLike() && r.sequenceLike():
		return &Array[any]{items: append(l.elements(), r.elements()...)}, nil
	case l.sequenceLike():
		return &Array[any]{items: append(l.elements(), right)}, nil
	case r.sequenceLike():
		return &Array[any]{items: append([]any{left}, r.elements()...)}, nil
	default:
		return nil, fmt.Errorf("unable to merge %T with %T: %w", left, right, ErrScalarMerge)
	}
}
