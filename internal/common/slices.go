package common

// IsEmpty returns true if the slice is empty.
func IsEmpty[S ~[]E, E any](s S) bool {
	return len(s) == 0
}

// Combinations returns every k-element subset of s, preserving the relative
// order of s inside each subset. Subsets are emitted in lexicographic order
// of their indices: for [a b c] and k=2 that is [a b], [a c], [b c].
func Combinations[S ~[]E, E any](s S, k int) [][]E {
	if k <= 0 || k > len(s) {
		return nil
	}

	var (
		result [][]E
		idx    = make([]int, k)
	)

	for i := range idx {
		idx[i] = i
	}

	for {
		combo := make([]E, k)
		for i, j := range idx {
			combo[i] = s[j]
		}

		result = append(result, combo)

		// Advance the rightmost index that still has room.
		i := k - 1
		for i >= 0 && idx[i] == len(s)-k+i {
			i--
		}

		if i < 0 {
			return result
		}

		idx[i]++
		for j := i + 1; j < k; j++ {
			idx[j] = idx[j-1] + 1
		}
	}
}

// Subsets returns every non-empty subset of s ordered by size first and
// then by index order within a size.
func Subsets[S ~[]E, E any](s S) [][]E {
	var result [][]E
	for k := 1; k <= len(s); k++ {
		result = append(result, Combinations(s, k)...)
	}

	return result
}
