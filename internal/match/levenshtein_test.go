package match

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLevenshtein(t *testing.T) {
	tests := []struct {
		a        string
		b        string
		expected int
	}{
		// Identical strings
		{"", "", 0},
		{"Klass", "Klass", 0},

		// Empty vs non-empty
		{"", "abc", 3},
		{"abc", "", 3},

		// Single character operations
		{"Klas", "Klass", 1},  // insertion
		{"Klass", "Klas", 1},  // deletion
		{"Klass", "Class", 1}, // substitution

		// Multiple operations
		{"kitten", "sitting", 3},
		{"saturday", "sunday", 3},

		// Case-sensitive
		{"KLASS", "klass", 5},
		{"MyList", "myList", 1},
	}

	for _, tt := range tests {
		t.Run(tt.a+"_"+tt.b, func(t *testing.T) {
			result := Levenshtein(tt.a, tt.b)
			if result != tt.expected {
				t.Errorf("Levenshtein(%q, %q) = %d, want %d", tt.a, tt.b, result, tt.expected)
			}

			// Verify symmetry
			resultReverse := Levenshtein(tt.b, tt.a)
			if result != resultReverse {
				t.Errorf("Levenshtein symmetry failed: (%q, %q) = %d, (%q, %q) = %d",
					tt.a, tt.b, result, tt.b, tt.a, resultReverse)
			}
		})
	}
}

func TestSimilarity(t *testing.T) {
	assert.InDelta(t, 1.0, Similarity("", ""), 1e-9)
	assert.InDelta(t, 1.0, Similarity("KLASS", "klass"), 1e-9)
	assert.InDelta(t, 0.8, Similarity("Klas", "Klass"), 1e-9)
	assert.InDelta(t, 0.0, Similarity("abc", "xyz"), 1e-9)
}

func TestSuggest(t *testing.T) {
	candidates := []string{"Klass", "List", "Klasses", "Klass", "Map", "Klaus"}

	got := Suggest("Klas", candidates, 2)
	assert.Equal(t, []string{"Klass", "Klaus"}, got)

	assert.Empty(t, Suggest("Widget", candidates, 3))
	assert.Equal(t, []string{"Klas"}, Suggest("Klass", []string{"Klass", "Klas"}, 0))
}
