package hypergraph

import (
	"gonum.org/v1/gonum/graph/simple"
	"gonum.org/v1/gonum/graph/topo"
	"gonum.org/v1/gonum/stat"
)

// GraphStats summarizes an assembled hypergraph for reporting. Pairwise
// figures come from the clique expansion, so a k-vertex hyperedge counts as
// k*(k-1)/2 potential edges (shared pairs collapse).
type GraphStats struct {
	Vertices      int     `json:"vertices"`
	Hyperedges    int     `json:"hyperedges"`
	PairwiseEdges int     `json:"pairwise_edges"`
	AvgDegree     float64 `json:"avg_degree"`
	MaxDegree     int     `json:"max_degree"`
	Components    int     `json:"components"`
	Isolated      int     `json:"isolated"`
}

// ToSimple expands the hypergraph into a gonum undirected graph: every
// vertex becomes a node and every hyperedge a clique over its members.
// Repeated pairs collapse; a member listed twice in one edge adds no
// self-loop.
func ToSimple(hg *Hypergraph) *simple.UndirectedGraph {
	g := simple.NewUndirectedGraph()
	for i := 1; i <= hg.VertexCount(); i++ {
		g.AddNode(simple.Node(i))
	}
	for _, edge := range hg.Edges {
		for i := 0; i < len(edge); i++ {
			for j := i + 1; j < len(edge); j++ {
				if edge[i] == edge[j] {
					continue
				}
				g.SetEdge(simple.Edge{F: simple.Node(edge[i]), T: simple.Node(edge[j])})
			}
		}
	}
	return g
}

// Summarize computes GraphStats over the clique expansion.
func Summarize(hg *Hypergraph) GraphStats {
	g := ToSimple(hg)

	stats := GraphStats{
		Vertices:      hg.VertexCount(),
		Hyperedges:    hg.EdgeCount(),
		PairwiseEdges: g.Edges().Len(),
	}

	degrees := make([]float64, 0, hg.VertexCount())
	for i := 1; i <= hg.VertexCount(); i++ {
		deg := g.From(int64(i)).Len()
		degrees = append(degrees, float64(deg))
		if deg > stats.MaxDegree {
			stats.MaxDegree = deg
		}
		if deg == 0 {
			stats.Isolated++
		}
	}
	if len(degrees) > 0 {
		stats.AvgDegree = stat.Mean(degrees, nil)
	}

	stats.Components = len(topo.ConnectedComponents(g))
	return stats
}
