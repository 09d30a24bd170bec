package common

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCombinations(t *testing.T) {
	tests := []struct {
		name     string
		in       []string
		k        int
		expected [][]string
	}{
		{
			name:     "singles",
			in:       []string{"a", "b", "c"},
			k:        1,
			expected: [][]string{{"a"}, {"b"}, {"c"}},
		},
		{
			name:     "pairs",
			in:       []string{"a", "b", "c"},
			k:        2,
			expected: [][]string{{"a", "b"}, {"a", "c"}, {"b", "c"}},
		},
		{
			name:     "all",
			in:       []string{"a", "b", "c"},
			k:        3,
			expected: [][]string{{"a", "b", "c"}},
		},
		{
			name: "k too large",
			in:   []string{"a"},
			k:    2,
		},
		{
			name: "zero",
			in:   []string{"a"},
			k:    0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Combinations(tt.in, tt.k))
		})
	}
}

func TestSubsets(t *testing.T) {
	got := Subsets([]int{0, 1, 2})
	assert.Equal(t, [][]int{{0}, {1}, {2}, {0, 1}, {0, 2}, {1, 2}, {0, 1, 2}}, got)
	assert.Empty(t, Subsets([]int{}))
}

func TestIsEmpty(t *testing.T) {
	assert.True(t, IsEmpty([]string(nil)))
	assert.True(t, IsEmpty([]int{}))
	assert.False(t, IsEmpty([]string{"x"}))
}

func TestCharHelpers(t *testing.T) {
	assert.Equal(t, "123", SortChars("312"))
	assert.Equal(t, "", SortChars(""))
	assert.True(t, IsSortedChars("124"))
	assert.True(t, IsSortedChars(""))
	assert.False(t, IsSortedChars("41"))
	assert.Equal(t, "1234", UnionChars("41", "3", "24"))
	assert.Equal(t, "4", UnionChars("44"))
	assert.True(t, ContainsChar("14", "4"))
	assert.False(t, ContainsChar("14", "3"))
	assert.False(t, ContainsChar("14", ""))
}
