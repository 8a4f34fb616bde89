// Package option contains utility to use the variadic options pattern
package option

// Option represents a function that modifies options of type T.
type Option[T any] func(opts *T)

// Build applies a series of options on top of the given defaults and returns the result.
// The defaults are copied, so a shared defaults value is never modified.
func Build[T any](defaults T, opts ...Option[T]) T {
	for _, opt := range opts {
		if opt != nil {
			opt(&defaults)
		}
	}
	return defaults
}
