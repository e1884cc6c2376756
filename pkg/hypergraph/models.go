package hypergraph

import (
	"errors"
	"fmt"
)

// LabelMissing is substituted when an entity has no entry in a label source map.
const LabelMissing = "missing"

// ClusterUnassigned marks a vertex with no cluster assignment. It is the only
// sentinel used anywhere, including the persisted .gt file.
const ClusterUnassigned = -1

// ErrInvalidInput is the sentinel for caller contract violations. All
// ValidationError values unwrap to it, so errors.Is(err, ErrInvalidInput)
// identifies the whole class.
var ErrInvalidInput = errors.New("hypergraph: invalid input")

// Hypergraph is the assembled in-memory representation handed to the writer.
// Every vertex and cluster index is 1-based; slice position i holds the entry
// for index i+1.
type Hypergraph struct {
	Edges        [][]int  `json:"edges"`                   // ordered vertex index lists, length >= 2
	VertexLabels []string `json:"vertex_labels"`           // label per vertex, index order
	EdgeLabels   []string `json:"edge_labels,omitempty"`   // label per edge, edge order (optional)
	Clusters     []int    `json:"clusters,omitempty"`      // cluster id per vertex, index order (optional)
	ClusterNames []string `json:"cluster_names,omitempty"` // name per cluster id, cluster order (optional)
}

// VertexCount returns the number of vertices.
func (hg *Hypergraph) VertexCount() int { return len(hg.VertexLabels) }

// EdgeCount returns the number of edges/hyperedges.
func (hg *Hypergraph) EdgeCount() int { return len(hg.Edges) }

// Validate checks internal consistency before writing: every edge endpoint
// must fall in [1, VertexCount] and optional sequences must match the vertex
// and edge counts they annotate.
func (hg *Hypergraph) Validate() error {
	n := hg.VertexCount()
	for i, edge := range hg.Edges {
		if len(edge) < 2 {
			return ValidationError{
				Field:   "edges",
				Message: fmt.Sprintf("edge %d has %d vertices, need at least 2", i+1, len(edge)),
			}
		}
		for _, v := range edge {
			if v < 1 || v > n {
				return ValidationError{
					Field:   "edges",
					Message: fmt.Sprintf("edge %d references vertex outside [1, %d]", i+1, n),
					Value:   fmt.Sprintf("%d", v),
				}
			}
		}
	}
	if hg.Clusters != nil && len(hg.Clusters) != n {
		return ValidationError{
			Field:   "clusters",
			Message: fmt.Sprintf("have %d cluster assignments for %d vertices", len(hg.Clusters), n),
		}
	}
	if hg.EdgeLabels != nil && len(hg.EdgeLabels) != len(hg.Edges) {
		return ValidationError{
			Field:   "edge_labels",
			Message: fmt.Sprintf("have %d edge labels for %d edges", len(hg.EdgeLabels), len(hg.Edges)),
		}
	}
	return nil
}

// ValidationError represents a caller contract violation detected before or
// during assembly.
type ValidationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
	Value   string `json:"value,omitempty"`
}

func (ve ValidationError) Error() string {
	if ve.Value != "" {
		return fmt.Sprintf("validation error in field '%s': %s (value: %s)", ve.Field, ve.Message, ve.Value)
	}
	return fmt.Sprintf("validation error in field '%s': %s", ve.Field, ve.Message)
}

func (ve ValidationError) Unwrap() error { return ErrInvalidInput }
