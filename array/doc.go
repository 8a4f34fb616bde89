// Package array provides Array, an ordered mutable container with the method set of
// JavaScript's Array, laid out the way Lua tables are: positions are 1-based and a
// negative position counts back from the end (-1 is the last element).
//
// Ranges are half-open [start, end). Out-of-range bounds are clamped for Slice, Fill,
// CopyWithin and Splice, At returns a miss, and With/Set fail with ErrIndexOutOfRange.
//
// Methods that return *Array allocate a new array unless they are documented as
// mutating the receiver. An Array is not safe for concurrent use, and mutating it
// while ranging over Entries, Keys or Values is the caller's responsibility.
package array
