// Package rank runs the iterative TextRank computation over a built
// graph. It only reads the graph's query surface and never mutates it.
package rank

import (
	"math"

	"github.com/jhrcook/textrank/internal/graph"
)

// DefaultMaxIterations bounds the power iteration when convergence is
// slow for the configured threshold.
const DefaultMaxIterations = 100

// Result holds the outcome of a ranking run.
type Result[T comparable] struct {
	Scores     map[T]float64
	Iterations int
	Converged  bool
}

// Run iterates the ranking formula until the largest score change drops
// below the graph's convergence threshold or maxIterations is reached.
// A maxIterations of zero or below falls back to DefaultMaxIterations.
//
// Scores are seeded from the graph's stored node scores. Each node's
// new score is (1-d) + d * sum over inbound neighbors j of
// (weight(j,node) / totalWeightFrom(j)) * score(j), with d the graph's
// damping factor. Nodes and neighbors are visited in the graph's
// insertion orders, so results are reproducible across runs.
func Run[T comparable](g *graph.Graph[T], maxIterations int) Result[T] {
	if maxIterations <= 0 {
		maxIterations = DefaultMaxIterations
	}

	nodes := g.Nodes()
	damping := g.Damping()
	threshold := g.ConvergenceThreshold()

	scores := make(map[T]float64, len(nodes))
	for _, node := range nodes {
		scores[node] = g.Score(node)
	}

	result := Result[T]{Scores: scores}
	if len(nodes) == 0 {
		result.Converged = true
		return result
	}

	for iter := 0; iter < maxIterations; iter++ {
		next := make(map[T]float64, len(nodes))
		maxDelta := 0.0

		for _, node := range nodes {
			sum := 0.0
			for _, j := range g.NodesPointingTo(node) {
				total := g.TotalEdgeWeightFrom(j)
				if total <= 0 {
					continue
				}
				sum += g.EdgeWeight(j, node) / total * scores[j]
			}

			next[node] = (1 - damping) + damping*sum

			delta := math.Abs(next[node] - scores[node])
			if delta > maxDelta {
				maxDelta = delta
			}
		}

		scores = next
		result.Scores = scores
		result.Iterations = iter + 1

		if maxDelta < threshold {
			result.Converged = true
			break
		}
	}

	return result
}
