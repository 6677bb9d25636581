package entity

import "time"

// SearchMetrics describes the work done to choose one computer move.
type SearchMetrics struct {
	NodesVisited int           `json:"nodes_visited"`
	MaxDepth     int           `json:"max_depth"`
	Elapsed      time.Duration `json:"elapsed_ns"`
	Moves        int           `json:"moves"`
}

// Move is a strategy decision.
type Move struct {
	Cell    int            `json:"cell"`
	Metrics *SearchMetrics `json:"metrics,omitempty"`
}
