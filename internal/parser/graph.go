// Package parser turns raw request text into the word co-occurrence
// graph consumed by the ranking computation. It handles request
// validation, tokenization, and window-based edge building.
package parser

import (
	"github.com/jhrcook/textrank/internal/graph"
)

type tokenPair struct {
	from string
	to   string
}

// BuildGraph slides a window over the token stream and records every
// token pair that co-occurs inside it, in both directions. Counts are
// accumulated here and fed to the graph once per pair, because the
// graph overwrites edge weights instead of accumulating them. Pairs
// are inserted in first-seen order so the graph's canonical orderings
// are reproducible for a given input.
func BuildGraph(tokens []string, windowSize int, g *graph.Graph[string]) {
	if windowSize < 2 {
		windowSize = 2
	}

	counts := make(map[tokenPair]float64)
	order := make([]tokenPair, 0)

	record := func(from, to string) {
		pair := tokenPair{from: from, to: to}
		if _, seen := counts[pair]; !seen {
			order = append(order, pair)
		}
		counts[pair]++
	}

	for i, token := range tokens {
		end := min(i+windowSize, len(tokens))
		for j := i + 1; j < end; j++ {
			if token == tokens[j] {
				continue
			}
			record(token, tokens[j])
			record(tokens[j], token)
		}
	}

	for _, pair := range order {
		g.AddEdge(pair.from, pair.to, counts[pair])
	}
}
