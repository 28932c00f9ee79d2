// Package parser turns raw request text into the word co-occurrence
// graph consumed by the ranking computation. It handles request
// validation, tokenization, and window-based edge building.
package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTokenize(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected []string
	}{
		{
			name:     "simple sentence",
			input:    "Graphs rank words",
			expected: []string{"graphs", "rank", "words"},
		},
		{
			name:     "punctuation separates tokens",
			input:    "rank, then re-rank!",
			expected: []string{"rank", "then", "re", "rank"},
		},
		{
			name:     "digits are kept",
			input:    "version 2 beats version 1",
			expected: []string{"version", "2", "beats", "version", "1"},
		},
		{
			name:     "mixed case is lowered",
			input:    "TextRank TEXTRANK textrank",
			expected: []string{"textrank", "textrank", "textrank"},
		},
		{
			name:     "unicode letters survive",
			input:    "naïve café",
			expected: []string{"naïve", "café"},
		},
		{
			name:     "whitespace only",
			input:    " \n\t ",
			expected: []string{},
		},
		{
			name:     "empty input",
			input:    "",
			expected: []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Tokenize(tt.input))
		})
	}
}

func TestRemoveStopWords(t *testing.T) {
	t.Run("filters function words", func(t *testing.T) {
		tokens := []string{"the", "graph", "is", "a", "ranking", "substrate"}

		filtered := RemoveStopWords(tokens)

		assert.Equal(t, []string{"graph", "ranking", "substrate"}, filtered)
	})

	t.Run("keeps content words untouched", func(t *testing.T) {
		tokens := []string{"weighted", "directed", "graph"}

		filtered := RemoveStopWords(tokens)

		assert.Equal(t, tokens, filtered)
	})

	t.Run("empty input yields empty output", func(t *testing.T) {
		assert.Empty(t, RemoveStopWords(nil))
	})
}
