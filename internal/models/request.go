// Package models defines the wire-level data structures for the API.
// It includes the ranked graph representation and request types.
package models

type RankRequest struct {
	Text    string       `json:"text"`
	Options *RankOptions `json:"options,omitempty"`
}

// RankOptions overrides the configured defaults for a single request.
// Zero values mean "use the configured default".
type RankOptions struct {
	StartingScore        float64 `json:"starting_score,omitempty"`
	Damping              float64 `json:"damping,omitempty"`
	ConvergenceThreshold float64 `json:"convergence_threshold,omitempty"`
	WindowSize           int     `json:"window_size,omitempty"`
	MaxIterations        int     `json:"max_iterations,omitempty"`
	KeepStopWords        bool    `json:"keep_stop_words,omitempty"`
}
