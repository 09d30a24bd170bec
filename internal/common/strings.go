package common

import (
	"slices"
	"strings"
)

// UnknownStr is returned by String methods for out-of-range values.
const UnknownStr = "unknown"

// SortChars returns s with its characters in ascending byte order.
func SortChars(s string) string {
	b := []byte(s)
	slices.Sort(b)

	return string(b)
}

// IsSortedChars reports whether the characters of s are already in
// ascending byte order.
func IsSortedChars(s string) bool {
	return slices.IsSorted([]byte(s))
}

// UnionChars returns the sorted set union of the characters of all inputs.
// Characters repeated inside a single input are kept once.
func UnionChars(parts ...string) string {
	var b []byte
	for _, p := range parts {
		for i := 0; i < len(p); i++ {
			if !slices.Contains(b, p[i]) {
				b = append(b, p[i])
			}
		}
	}

	slices.Sort(b)

	return string(b)
}

// ContainsChar reports whether c occurs in s.
func ContainsChar(s string, c string) bool {
	return c != "" && strings.Contains(s, c)
}
