package array

// resolve maps a negative position onto the array, -1 being the last element.
// Non-negative positions are returned as is.
func resolve(pos, length int) int {
	if pos < 0 {
		return length + pos + 1
	}
	return pos
}

// clamp resolves a range boundary and keeps it within [1, length+1].
func clamp(pos, length int) int {
	pos = resolve(pos, length)
	if pos < 1 {
		return 1
	}
	if pos > length+1 {
		return length + 1
	}
	return pos
}

// span turns optional start and end boundaries into the half-open range [start, end).
// Missing boundaries default to the whole array; end never precedes start.
func span(length int, bounds []int) (start, end int) {
	start, end = 1, length+1
	if len(bounds) > 0 {
		start = clamp(bounds[0], length)
	}
	if len(bounds) > 1 {
		end = clamp(bounds[1], length)
	}
	if end < start {
		end = start
	}
	return start, end
}

// position resolves pos and reports whether it addresses an element.
func position(pos, length int) (int, bool) {
	pos = resolve(pos, length)
	return pos, pos >= 1 && pos <= length
}
