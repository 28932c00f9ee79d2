// Package parser turns raw request text into the word co-occurrence
// graph consumed by the ranking computation. It handles request
// validation, tokenization, and window-based edge building.
package parser

import (
	"strings"
	"unicode"
)

// Tokenize splits text into lowercase word tokens. Any run of
// characters that are not letters or digits separates tokens.
func Tokenize(text string) []string {
	fields := strings.FieldsFunc(text, func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})

	tokens := make([]string, 0, len(fields))
	for _, field := range fields {
		tokens = append(tokens, strings.ToLower(field))
	}
	return tokens
}

// RemoveStopWords filters common English function words out of the
// token stream so they do not dominate the co-occurrence graph.
func RemoveStopWords(tokens []string) []string {
	filtered := make([]string, 0, len(tokens))
	for _, token := range tokens {
		if _, ok := stopWords[token]; ok {
			continue
		}
		filtered = append(filtered, token)
	}
	return filtered
}
