package common

import "strings"

// UnknownStr is returned by String methods for out-of-range enum values.
const UnknownStr = "unknown"

// IsEmpty returns true if the slice is empty.
func IsEmpty[S ~[]E, E any](s S) bool {
	return len(s) == 0
}

// Single returns the only element of the slice and true,
// or the zero value and false if the slice does not have exactly one element.
func Single[S ~[]E, E any](s S) (E, bool) {
	if len(s) != 1 {
		var zero E
		return zero, false
	}

	return s[0], true
}

// JoinFunc formats every element with fn and joins the results with sep.
func JoinFunc[S ~[]E, E any](s S, sep string, fn func(E) string) string {
	parts := make([]string, len(s))
	for i, e := range s {
		parts[i] = fn(e)
	}

	return strings.Join(parts, sep)
}
