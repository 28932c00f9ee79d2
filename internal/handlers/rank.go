// Package handlers provides the HTTP request handlers for the API
// endpoints, including response formatting and error handling.
package handlers

import (
	"encoding/json"
	"io"
	"log"
	"net/http"
	"sort"

	"github.com/jhrcook/textrank/internal/config"
	"github.com/jhrcook/textrank/internal/graph"
	"github.com/jhrcook/textrank/internal/models"
	"github.com/jhrcook/textrank/internal/parser"
	"github.com/jhrcook/textrank/internal/rank"
)

// RankHandler returns the handler for POST /rank. Request options
// override the configured defaults field by field.
func RankHandler(cfg *config.Config) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
			return
		}

		body, err := io.ReadAll(r.Body)
		if err != nil {
			http.Error(w, "Failed to read body", http.StatusBadRequest)
			return
		}

		defer r.Body.Close()

		req, err := parser.ParseRequest(body)
		if err != nil {
			http.Error(w, "Invalid request: "+err.Error(), http.StatusBadRequest)
			return
		}

		opts := effectiveOptions(cfg, req.Options)

		tokens := parser.Tokenize(req.Text)
		if !opts.KeepStopWords {
			tokens = parser.RemoveStopWords(tokens)
		}

		g := graph.NewWithParameters[string](opts.StartingScore, opts.Damping, opts.ConvergenceThreshold)
		parser.BuildGraph(tokens, opts.WindowSize, g)

		result := rank.Run(g, opts.MaxIterations)

		w.Header().Set("Content-Type", "application/json")

		encoder := json.NewEncoder(w)
		if r.URL.Query().Get("pretty") == "true" {
			encoder.SetIndent("", "  ")
		}

		if err := encoder.Encode(buildResponse(g, result)); err != nil {
			log.Printf("Error encoding response: %v", err)
		}
	}
}

func effectiveOptions(cfg *config.Config, overrides *models.RankOptions) models.RankOptions {
	opts := models.RankOptions{
		StartingScore:        cfg.StartingScore,
		Damping:              cfg.Damping,
		ConvergenceThreshold: cfg.ConvergenceThreshold,
		WindowSize:           cfg.WindowSize,
		MaxIterations:        cfg.MaxIterations,
	}

	if overrides == nil {
		return opts
	}

	if overrides.StartingScore > 0 {
		opts.StartingScore = overrides.StartingScore
	}
	if overrides.Damping > 0 && overrides.Damping < 1 {
		opts.Damping = overrides.Damping
	}
	if overrides.ConvergenceThreshold > 0 {
		opts.ConvergenceThreshold = overrides.ConvergenceThreshold
	}
	if overrides.WindowSize >= 2 {
		opts.WindowSize = overrides.WindowSize
	}
	if overrides.MaxIterations > 0 {
		opts.MaxIterations = overrides.MaxIterations
	}
	opts.KeepStopWords = overrides.KeepStopWords

	return opts
}

func buildResponse(g *graph.Graph[string], result rank.Result[string]) models.RankResponse {
	nodes := make([]models.Node, 0, g.NumberOfNodes())
	keywords := make([]models.Keyword, 0, g.NumberOfNodes())
	for _, id := range g.Nodes() {
		nodes = append(nodes, models.Node{ID: id, Score: result.Scores[id]})
		keywords = append(keywords, models.Keyword{Text: id, Score: result.Scores[id]})
	}

	sort.Slice(keywords, func(i, j int) bool {
		if keywords[i].Score != keywords[j].Score {
			return keywords[i].Score > keywords[j].Score
		}
		return keywords[i].Text < keywords[j].Text
	})

	edges := make([]models.Edge, 0, g.NumberOfEdges())
	for _, e := range g.Edges() {
		edges = append(edges, models.Edge{Source: e.From, Target: e.To, Weight: e.Weight})
	}

	return models.RankResponse{
		Keywords: keywords,
		Graph: models.Graph{
			Nodes: nodes,
			Edges: edges,
			Stats: &models.Stats{
				TotalNodes: g.NumberOfNodes(),
				TotalEdges: g.NumberOfEdges(),
				Iterations: result.Iterations,
				Converged:  result.Converged,
			},
		},
	}
}
