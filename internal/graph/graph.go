// Package graph provides the weighted directed graph that the ranking
// algorithm runs on. It tracks node scores, adjacency, and per-node
// aggregates, all built incrementally through edge insertion.
package graph

import (
	"fmt"
	"strings"
)

const (
	DefaultStartingScore        = 0.15
	DefaultDamping              = 0.85
	DefaultConvergenceThreshold = 0.001
)

// Graph is a directed weighted graph keyed by any comparable node id.
// Nodes are created lazily the first time they appear as an edge
// endpoint. All queries are total: unknown ids return zero values.
//
// The graph is not safe for concurrent mutation; callers must finish
// inserting edges before querying from multiple goroutines.
type Graph[T comparable] struct {
	startingScore        float64
	damping              float64
	convergenceThreshold float64

	scores   map[T]float64
	order    []T
	inbound  map[T][]T
	outbound map[T][]T
	weights  map[T]map[T]float64
	edges    int
}

// Edge is one directed weighted edge, used for snapshots and dumps.
type Edge[T comparable] struct {
	From   T
	To     T
	Weight float64
}

// New returns an empty graph with the default ranking parameters.
func New[T comparable]() *Graph[T] {
	return NewWithParameters[T](DefaultStartingScore, DefaultDamping, DefaultConvergenceThreshold)
}

// NewWithParameters returns an empty graph carrying explicit ranking
// parameters. The graph stores them for its ranking consumer; they do
// not affect edge insertion or queries.
func NewWithParameters[T comparable](startingScore, damping, convergenceThreshold float64) *Graph[T] {
	return &Graph[T]{
		startingScore:        startingScore,
		damping:              damping,
		convergenceThreshold: convergenceThreshold,
		scores:               make(map[T]float64),
		inbound:              make(map[T][]T),
		outbound:             make(map[T][]T),
		weights:              make(map[T]map[T]float64),
	}
}

// AddEdge inserts or updates the directed edge from -> to. A weight of
// zero or below is silently ignored with no side effects. Re-inserting
// an existing pair overwrites its weight without duplicating adjacency
// entries or inflating the outbound degree. Self-loops are allowed.
func (g *Graph[T]) AddEdge(from, to T, weight float64) {
	if weight <= 0 {
		return
	}

	g.ensureNode(from)
	g.ensureNode(to)

	if !contains(g.inbound[to], from) {
		g.inbound[to] = append(g.inbound[to], from)
		g.outbound[from] = append(g.outbound[from], to)
		g.edges++
	}

	if g.weights[from] == nil {
		g.weights[from] = make(map[T]float64)
	}
	g.weights[from][to] = weight
}

// ensureNode registers the node with the starting score on first touch.
// Existing nodes keep their score.
func (g *Graph[T]) ensureNode(node T) {
	if _, ok := g.scores[node]; ok {
		return
	}
	g.scores[node] = g.startingScore
	g.order = append(g.order, node)
}

// EdgeWeight returns the stored weight for the ordered pair, or 0 if
// the pair has no edge.
func (g *Graph[T]) EdgeWeight(from, to T) float64 {
	return g.weights[from][to]
}

// NodesPointingTo returns the distinct sources with an edge into node,
// in first-seen order. Callers that need reproducible floating-point
// sums should iterate in this order.
func (g *Graph[T]) NodesPointingTo(node T) []T {
	return g.inbound[node]
}

// NumberOfLinksFrom returns the count of distinct destinations reached
// from node, or 0 if the node has no outbound edges.
func (g *Graph[T]) NumberOfLinksFrom(node T) int {
	return len(g.outbound[node])
}

// TotalEdgeWeightFrom returns the sum of all outbound edge weights from
// node, summed in the first-seen order of destinations.
func (g *Graph[T]) TotalEdgeWeightFrom(node T) float64 {
	total := 0.0
	for _, to := range g.outbound[node] {
		total += g.weights[node][to]
	}
	return total
}

// NumberOfNodes returns the count of nodes that have appeared as an
// edge endpoint.
func (g *Graph[T]) NumberOfNodes() int {
	return len(g.scores)
}

// NumberOfEdges returns the count of distinct directed edges.
func (g *Graph[T]) NumberOfEdges() int {
	return g.edges
}

// Nodes returns all node ids in insertion order.
func (g *Graph[T]) Nodes() []T {
	return g.order
}

// Score returns the node's current score, or 0 for unknown ids.
func (g *Graph[T]) Score(node T) float64 {
	return g.scores[node]
}

// StartingScore returns the score assigned to newly created nodes.
func (g *Graph[T]) StartingScore() float64 {
	return g.startingScore
}

// Damping returns the damping factor stored for the ranking consumer.
func (g *Graph[T]) Damping() float64 {
	return g.damping
}

// ConvergenceThreshold returns the stored convergence threshold.
func (g *Graph[T]) ConvergenceThreshold() float64 {
	return g.convergenceThreshold
}

// Edges returns a snapshot of every directed edge, ordered by source
// insertion order and then destination insertion order.
func (g *Graph[T]) Edges() []Edge[T] {
	edges := make([]Edge[T], 0, g.edges)
	for _, from := range g.order {
		for _, to := range g.outbound[from] {
			edges = append(edges, Edge[T]{From: from, To: to, Weight: g.weights[from][to]})
		}
	}
	return edges
}

// String formats the edge list, one edge per line. Diagnostic only.
func (g *Graph[T]) String() string {
	var b strings.Builder
	for _, e := range g.Edges() {
		fmt.Fprintf(&b, "%v -> %v (%g)\n", e.From, e.To, e.Weight)
	}
	return b.String()
}

func contains[T comparable](list []T, v T) bool {
	for _, item := range list {
		if item == v {
			return true
		}
	}
	return false
}
