// Package motif derives a higher-order hypergraph from a directed relation
// by enumerating four-vertex motifs: two distinct source ("prey") vertices
// that share two common target ("predator") vertices. Each found motif
// becomes one 4-vertex hyperedge.
package motif

import (
	"errors"
	"fmt"
)

// ErrInvalidInput is the sentinel for caller contract violations. Every
// BuildError unwraps to it.
var ErrInvalidInput = errors.New("motif: invalid input")

// Edge is one directed link from a source vertex to a target vertex
// (prey -> predator in the food-web reading). Indices are 1-based.
type Edge struct {
	From int `json:"from"`
	To   int `json:"to"`
}

// Motif is one enumerated 4-vertex pattern. P1 and P2 are the source pair
// with P1 < P2; T1 and T2 are the shared targets, in the stored order of
// out[P1]. The field order is the canonical emission order; no dedup is
// applied across {T1,T2} orderings.
type Motif struct {
	P1 int `json:"p1"`
	P2 int `json:"p2"`
	T1 int `json:"t1"`
	T2 int `json:"t2"`
}

// Vertices returns the motif as an ordered hyperedge vertex list.
func (m Motif) Vertices() []int {
	return []int{m.P1, m.P2, m.T1, m.T2}
}

// Config controls motif enumeration.
type Config struct {
	Workers int `json:"workers"` // parallel source-vertex partitions; <= 1 runs serial
}

// DefaultConfig returns the single-threaded baseline configuration.
func DefaultConfig() Config {
	return Config{
		Workers: 1,
	}
}

// BuildStats reports what one enumeration did.
type BuildStats struct {
	Universe      int   `json:"universe"`       // declared vertex range [1, M]
	Edges         int   `json:"edges"`          // unique directed edges after dedup
	Sources       int   `json:"sources"`        // vertices with at least one out-edge
	EligiblePairs int   `json:"eligible_pairs"` // sum over sources of C(out-degree, 2)
	Motifs        int   `json:"motifs"`         // emitted 4-tuples
	Workers       int   `json:"workers"`        // partitions actually used
	RuntimeMS     int64 `json:"runtime_ms"`
}

// BuildResult carries the enumerated motifs in emission order plus stats.
type BuildResult struct {
	Motifs []Motif    `json:"motifs"`
	Stats  BuildStats `json:"stats"`
}

// Hyperedges returns the motifs as 4-vertex hyperedge lists, in emission
// order.
func (br *BuildResult) Hyperedges() [][]int {
	edges := make([][]int, len(br.Motifs))
	for i, m := range br.Motifs {
		edges[i] = m.Vertices()
	}
	return edges
}

// BuildError represents a motif construction failure. All build failures are
// caller contract violations, so BuildError unwraps to ErrInvalidInput.
type BuildError struct {
	Stage   string `json:"stage"` // "adjacency", "enumerate"
	Message string `json:"message"`
	Details string `json:"details,omitempty"`
}

func (be BuildError) Error() string {
	if be.Details != "" {
		return fmt.Sprintf("motif error in %s: %s (details: %s)", be.Stage, be.Message, be.Details)
	}
	return fmt.Sprintf("motif error in %s: %s", be.Stage, be.Message)
}

func (be BuildError) Unwrap() error { return ErrInvalidInput }
