package hypergraph

import "fmt"

// Assembler builds one hyperedge per group from category-partitioned member
// lists. Categories are declared once, in a fixed order; category i (0-based)
// corresponds to cluster id i+1, and hyperedge members are concatenated in
// declared category order, never in map iteration order.
//
// Members are capped per category: only the first memberCap entries of each
// category list are kept, in input order. A memberCap of 0 or less keeps all
// members.
type Assembler struct {
	registry   *VertexRegistry
	categories []string
	categoryID map[string]int // category name -> cluster id (1-based)
	memberCap  int

	edges        [][]int
	groupKeys    []string       // group key per edge, in edge order
	clusterOf    map[string]int // member key -> cluster id, first categorization wins
	memberCounts map[string]int // retained members per category, capped

	groupsSkipped int
}

// NewAssembler creates an assembler over the given category order and member
// cap. The category list must be non-empty and duplicate-free.
func NewAssembler(categories []string, memberCap int) (*Assembler, error) {
	if len(categories) == 0 {
		return nil, ValidationError{Field: "categories", Message: "at least one category is required"}
	}
	categoryID := make(map[string]int, len(categories))
	for i, cat := range categories {
		if _, dup := categoryID[cat]; dup {
			return nil, ValidationError{Field: "categories", Message: "duplicate category", Value: cat}
		}
		categoryID[cat] = i + 1
	}
	return &Assembler{
		registry:     NewVertexRegistry(),
		categories:   categories,
		categoryID:   categoryID,
		memberCap:    memberCap,
		clusterOf:    make(map[string]int),
		memberCounts: make(map[string]int),
	}, nil
}

// Registry exposes the registry the assembler assigns vertex indices with.
func (a *Assembler) Registry() *VertexRegistry { return a.registry }

// AddGroup assembles the hyperedge for one group. members maps category name
// to the member keys seen for that category, in input order. A members key
// naming a category the assembler was not declared with is a contract
// violation. Groups whose capped member union has fewer than two vertices are
// skipped (a hyperedge needs at least two endpoints).
func (a *Assembler) AddGroup(groupKey string, members map[string][]string) error {
	for cat := range members {
		if _, known := a.categoryID[cat]; !known {
			return ValidationError{
				Field:   "members",
				Message: fmt.Sprintf("unknown category in group '%s'", groupKey),
				Value:   cat,
			}
		}
	}

	total := 0
	for _, cat := range a.categories {
		total += a.capped(len(members[cat]))
	}
	if total < 2 {
		a.groupsSkipped++
		return nil
	}

	edge := make([]int, 0, total)
	for _, cat := range a.categories {
		list := members[cat]
		keep := a.capped(len(list))
		for _, memberKey := range list[:keep] {
			idx := a.registry.IDFor(memberKey)
			if _, seen := a.clusterOf[memberKey]; !seen {
				a.clusterOf[memberKey] = a.categoryID[cat]
			}
			edge = append(edge, idx)
		}
		a.memberCounts[cat] += keep
	}

	a.edges = append(a.edges, edge)
	a.groupKeys = append(a.groupKeys, groupKey)
	return nil
}

func (a *Assembler) capped(n int) int {
	if a.memberCap > 0 && n > a.memberCap {
		return a.memberCap
	}
	return n
}

// GroupsSkipped returns how many groups were dropped for having fewer than
// two capped members. Members of skipped groups never enter the registry.
func (a *Assembler) GroupsSkipped() int { return a.groupsSkipped }

// MemberCounts returns the number of retained member slots per category,
// summed over assembled groups. The returned map is the assembler's own.
func (a *Assembler) MemberCounts() map[string]int { return a.memberCounts }

// Build resolves labels and cluster assignments into a Hypergraph.
// memberLabels and groupLabels translate member and group keys to display
// labels; absent entries fall back to LabelMissing. Vertices that were capped
// out of every group never entered the registry and so do not appear.
func (a *Assembler) Build(memberLabels, groupLabels map[string]string) *Hypergraph {
	clusters := make([]int, a.registry.Len())
	for i, key := range a.registry.Keys() {
		if id, ok := a.clusterOf[key]; ok {
			clusters[i] = id
		} else {
			clusters[i] = ClusterUnassigned
		}
	}

	edgeLabels := make([]string, len(a.groupKeys))
	for i, key := range a.groupKeys {
		edgeLabels[i] = a.registry.LabelFor(key, groupLabels, LabelMissing)
	}

	names := make([]string, len(a.categories))
	copy(names, a.categories)

	return &Hypergraph{
		Edges:        a.edges,
		VertexLabels: a.registry.Labels(memberLabels, LabelMissing),
		EdgeLabels:   edgeLabels,
		Clusters:     clusters,
		ClusterNames: names,
	}
}
