package motif

import "fmt"

// Adjacency holds the forward and reverse adjacency of a directed relation
// over the vertex range [1, universe]. Target lists keep insertion order and
// are deduplicated on insert, so duplicate input edges collapse and
// iteration is reproducible. Built once, read-only afterward; safe to share
// across goroutines after construction.
type Adjacency struct {
	universe int
	out      map[int][]int
	in       map[int][]int
	outSet   map[int]map[int]struct{}
	edges    int
}

// NewAdjacency creates an empty adjacency over [1, universe].
func NewAdjacency(universe int) (*Adjacency, error) {
	if universe < 1 {
		return nil, BuildError{
			Stage:   "adjacency",
			Message: "universe size must be at least 1",
			Details: fmt.Sprintf("got %d", universe),
		}
	}
	return &Adjacency{
		universe: universe,
		out:      make(map[int][]int),
		in:       make(map[int][]int),
		outSet:   make(map[int]map[int]struct{}),
	}, nil
}

// BuildAdjacency scans edges once into a new adjacency. Any endpoint outside
// [1, universe] fails the whole build.
func BuildAdjacency(universe int, edges []Edge) (*Adjacency, error) {
	adj, err := NewAdjacency(universe)
	if err != nil {
		return nil, err
	}
	for _, e := range edges {
		if err := adj.AddEdge(e.From, e.To); err != nil {
			return nil, err
		}
	}
	return adj, nil
}

// AddEdge records the directed edge from -> to. Duplicate edges are ignored.
// Endpoints outside [1, universe] are a caller contract violation; the edge
// is never clamped or truncated.
func (a *Adjacency) AddEdge(from, to int) error {
	if from < 1 || from > a.universe {
		return BuildError{
			Stage:   "adjacency",
			Message: fmt.Sprintf("source vertex outside declared range [1, %d]", a.universe),
			Details: fmt.Sprintf("edge (%d, %d)", from, to),
		}
	}
	if to < 1 || to > a.universe {
		return BuildError{
			Stage:   "adjacency",
			Message: fmt.Sprintf("target vertex outside declared range [1, %d]", a.universe),
			Details: fmt.Sprintf("edge (%d, %d)", from, to),
		}
	}

	targets, exists := a.outSet[from]
	if !exists {
		targets = make(map[int]struct{})
		a.outSet[from] = targets
	}
	if _, dup := targets[to]; dup {
		return nil
	}
	targets[to] = struct{}{}
	a.out[from] = append(a.out[from], to)
	a.in[to] = append(a.in[to], from)
	a.edges++
	return nil
}

// Universe returns the declared vertex range bound M.
func (a *Adjacency) Universe() int { return a.universe }

// EdgeCount returns the number of unique directed edges.
func (a *Adjacency) EdgeCount() int { return a.edges }

// Out returns the targets of from, in insertion order. The returned slice is
// the adjacency's own backing array; callers must not modify it.
func (a *Adjacency) Out(from int) []int { return a.out[from] }

// In returns the sources pointing at to, in insertion order. Same aliasing
// caveat as Out.
func (a *Adjacency) In(to int) []int { return a.in[to] }

// HasEdge reports whether the directed edge from -> to was recorded.
func (a *Adjacency) HasEdge(from, to int) bool {
	_, ok := a.outSet[from][to]
	return ok
}

// SourceCount returns the number of vertices with at least one out-edge.
func (a *Adjacency) SourceCount() int { return len(a.out) }
