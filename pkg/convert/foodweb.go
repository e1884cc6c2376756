package convert

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/gilchrisn/hypergraph-dataset-service/pkg/dataset"
	"github.com/gilchrisn/hypergraph-dataset-service/pkg/hypergraph"
	"github.com/gilchrisn/hypergraph-dataset-service/pkg/motif"
)

// FoodWebStats summarizes one food-web conversion run
type FoodWebStats struct {
	LinksRead      int   `json:"links_read"`
	LinksKept      int   `json:"links_kept"`
	LinksDropped   int   `json:"links_dropped"`
	Excluded       int   `json:"excluded"`
	VerticesBefore int   `json:"vertices_before"`
	VerticesAfter  int   `json:"vertices_after"`
	PairwiseEdges  int   `json:"pairwise_edges"`
	EligiblePairs  int   `json:"eligible_pairs"`
	Motifs         int   `json:"motifs"`
	Workers        int   `json:"workers"`
	RuntimeMS      int64 `json:"runtime_ms"`
}

// FoodWebResult contains both converted graphs and run statistics. Pairwise
// keeps every retained predation record, including repeats; Motifs holds the
// shared-prey hyperedges enumerated over the deduplicated adjacency.
type FoodWebResult struct {
	Pairwise *hypergraph.Hypergraph
	Motifs   *hypergraph.Hypergraph
	Graph    hypergraph.GraphStats
	Stats    FoodWebStats
}

// ConvertFoodWeb runs the food-web conversion end to end: read the predation
// records and compartment labels, drop links touching excluded compartments,
// remap the survivors onto dense indices, write the pairwise file family
// under the configured prefix, then enumerate shared-prey motifs and write
// them as a second family under "<prefix>_motifs".
func ConvertFoodWeb(ctx context.Context, config *Config, logger zerolog.Logger) (*FoodWebResult, error) {
	start := time.Now()

	logger.Info().
		Str("links", config.LinksFile()).
		Str("labels", config.LabelsFile()).
		Ints("exclude", config.Exclude()).
		Int("workers", config.Workers()).
		Msg("Starting food-web conversion")

	if config.LinksFile() == "" {
		return nil, hypergraph.ValidationError{Field: "foodweb.links_file", Message: "input path is required"}
	}
	if config.LabelsFile() == "" {
		return nil, hypergraph.ValidationError{Field: "foodweb.labels_file", Message: "input path is required"}
	}

	links, err := dataset.ReadLinks(config.LinksFile())
	if err != nil {
		return nil, fmt.Errorf("failed to read links: %w", err)
	}
	labels, err := dataset.ReadCompartmentLabels(config.LabelsFile())
	if err != nil {
		return nil, fmt.Errorf("failed to read labels: %w", err)
	}

	universe := len(labels)
	if universe < 1 {
		return nil, hypergraph.ValidationError{
			Field:   "foodweb.labels_file",
			Message: "labels file defines no compartments",
			Value:   config.LabelsFile(),
		}
	}
	if declared := config.Universe(); declared > 0 && declared != universe {
		return nil, hypergraph.ValidationError{
			Field:   "foodweb.universe",
			Message: fmt.Sprintf("declared universe %d does not match %d labelled compartments", declared, universe),
		}
	}

	excluded := hypergraph.NewExclusionSet(config.Exclude()...)
	correction, err := hypergraph.BuildCorrection(universe, excluded)
	if err != nil {
		return nil, err
	}
	retained := universe - excluded.Len()
	if retained < 1 {
		return nil, hypergraph.ValidationError{
			Field:   "foodweb.exclude",
			Message: fmt.Sprintf("exclusion set drops all %d compartments", universe),
		}
	}

	newLabels := make([]string, 0, retained)
	for old := 1; old <= universe; old++ {
		if !excluded.Contains(old) {
			newLabels = append(newLabels, labels[old-1])
		}
	}

	pairs := make([][]int, 0, len(links))
	motifEdges := make([]motif.Edge, 0, len(links))
	dropped := 0
	for _, link := range links {
		if link.Prey > universe {
			return nil, hypergraph.ValidationError{
				Field:   "links",
				Message: fmt.Sprintf("prey id outside [1, %d]", universe),
				Value:   fmt.Sprintf("%d", link.Prey),
			}
		}
		if link.Predator > universe {
			return nil, hypergraph.ValidationError{
				Field:   "links",
				Message: fmt.Sprintf("predator id outside [1, %d]", universe),
				Value:   fmt.Sprintf("%d", link.Predator),
			}
		}
		if excluded.Contains(link.Prey) || excluded.Contains(link.Predator) {
			dropped++
			continue
		}
		prey := correction[link.Prey]
		predator := correction[link.Predator]
		pairs = append(pairs, []int{prey, predator})
		motifEdges = append(motifEdges, motif.Edge{From: prey, To: predator})
	}
	logger.Debug().
		Int("links_read", len(links)).
		Int("links_kept", len(pairs)).
		Int("links_dropped", dropped).
		Int("retained", retained).
		Msg("Predation records remapped")

	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	default:
	}

	pairwise := &hypergraph.Hypergraph{
		Edges:        pairs,
		VertexLabels: newLabels,
	}

	writer := hypergraph.NewFileWriter()
	if err := writer.WriteAll(pairwise, config.OutputDir(), config.Prefix()); err != nil {
		return nil, fmt.Errorf("failed to write pairwise output: %w", err)
	}

	adjacency, err := motif.BuildAdjacency(retained, motifEdges)
	if err != nil {
		return nil, fmt.Errorf("failed to build adjacency: %w", err)
	}
	builder := motif.NewBuilder(adjacency, motif.Config{Workers: config.Workers()})
	build, err := builder.Enumerate(ctx)
	if err != nil {
		return nil, fmt.Errorf("motif enumeration failed: %w", err)
	}

	motifs := &hypergraph.Hypergraph{
		Edges:        build.Hyperedges(),
		VertexLabels: newLabels,
	}
	if err := writer.WriteAll(motifs, config.OutputDir(), config.Prefix()+"_motifs"); err != nil {
		return nil, fmt.Errorf("failed to write motif output: %w", err)
	}

	graphStats := hypergraph.Summarize(pairwise)

	result := &FoodWebResult{
		Pairwise: pairwise,
		Motifs:   motifs,
		Graph:    graphStats,
		Stats: FoodWebStats{
			LinksRead:      len(links),
			LinksKept:      len(pairs),
			LinksDropped:   dropped,
			Excluded:       excluded.Len(),
			VerticesBefore: universe,
			VerticesAfter:  retained,
			PairwiseEdges:  len(pairs),
			EligiblePairs:  build.Stats.EligiblePairs,
			Motifs:         build.Stats.Motifs,
			Workers:        build.Stats.Workers,
			RuntimeMS:      time.Since(start).Milliseconds(),
		},
	}

	logger.Info().
		Int("vertices", retained).
		Int("pairwise_edges", len(pairs)).
		Int("motifs", build.Stats.Motifs).
		Int("components", graphStats.Components).
		Int64("runtime_ms", result.Stats.RuntimeMS).
		Msg("Food-web conversion complete")

	return result, nil
}
