// Package models defines the wire-level data structures for the API.
// It includes the ranked graph representation and request types.
package models

type Graph struct {
	Nodes []Node `json:"nodes"`
	Edges []Edge `json:"edges"`
	Stats *Stats `json:"stats,omitempty"`
}

type Node struct {
	ID    string  `json:"id"`
	Score float64 `json:"score"`
}

type Edge struct {
	Source string  `json:"source"`
	Target string  `json:"target"`
	Weight float64 `json:"weight"`
}

type Stats struct {
	TotalNodes int  `json:"total_nodes"`
	TotalEdges int  `json:"total_edges"`
	Iterations int  `json:"iterations"`
	Converged  bool `json:"converged"`
}

type Keyword struct {
	Text  string  `json:"text"`
	Score float64 `json:"score"`
}

type RankResponse struct {
	Keywords []Keyword `json:"keywords"`
	Graph    Graph     `json:"graph"`
}
