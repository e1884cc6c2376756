// Package convert wires the dataset readers, hypergraph assembly, and output
// writing into the two end-to-end conversion pipelines: film credits to a
// role-partitioned hypergraph, and food-web predation records to a pairwise
// graph plus its shared-prey motif hypergraph.
package convert

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/gilchrisn/hypergraph-dataset-service/pkg/dataset"
	"github.com/gilchrisn/hypergraph-dataset-service/pkg/hypergraph"
)

// CreditsStats summarizes one credits conversion run
type CreditsStats struct {
	RowsRead        int            `json:"rows_read"`
	RowsKept        int            `json:"rows_kept"`
	Titles          int            `json:"titles"`
	GroupsAssembled int            `json:"groups_assembled"`
	GroupsSkipped   int            `json:"groups_skipped"`
	Vertices        int            `json:"vertices"`
	Hyperedges      int            `json:"hyperedges"`
	RoleCounts      map[string]int `json:"role_counts"`
	RuntimeMS       int64          `json:"runtime_ms"`
}

// CreditsResult contains the converted hypergraph and run statistics
type CreditsResult struct {
	Hypergraph *hypergraph.Hypergraph
	Graph      hypergraph.GraphStats
	Stats      CreditsStats
}

// ConvertCredits runs the film-credits conversion end to end: scan the
// principals table for the configured roles, assemble one hyperedge per
// title with the member cap applied per role, resolve display labels, and
// write the output file family under the configured directory and prefix.
func ConvertCredits(ctx context.Context, config *Config, logger zerolog.Logger) (*CreditsResult, error) {
	start := time.Now()

	roles := config.Roles()
	memberCap := config.MemberCap()

	logger.Info().
		Str("principals", config.PrincipalsFile()).
		Strs("roles", roles).
		Int("member_cap", memberCap).
		Msg("Starting credits conversion")

	if config.PrincipalsFile() == "" {
		return nil, hypergraph.ValidationError{Field: "credits.principals_file", Message: "input path is required"}
	}
	if config.NamesFile() == "" {
		return nil, hypergraph.ValidationError{Field: "credits.names_file", Message: "input path is required"}
	}
	if config.TitlesFile() == "" {
		return nil, hypergraph.ValidationError{Field: "credits.titles_file", Message: "input path is required"}
	}

	table, err := dataset.ReadCredits(config.PrincipalsFile(), roles)
	if err != nil {
		return nil, fmt.Errorf("failed to read principals: %w", err)
	}
	logger.Debug().
		Int("rows_read", table.RowsRead).
		Int("rows_kept", table.RowsKept).
		Int("titles", len(table.Groups)).
		Msg("Principals table scanned")

	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	default:
	}

	names, err := dataset.ReadLabelMap(config.NamesFile(), 0, config.NamesLabelColumn())
	if err != nil {
		return nil, fmt.Errorf("failed to read names: %w", err)
	}
	titles, err := dataset.ReadLabelMap(config.TitlesFile(), 0, config.TitlesLabelColumn())
	if err != nil {
		return nil, fmt.Errorf("failed to read titles: %w", err)
	}

	assembler, err := hypergraph.NewAssembler(roles, memberCap)
	if err != nil {
		return nil, err
	}
	for _, group := range table.Groups {
		if err := assembler.AddGroup(group.Key, group.Members); err != nil {
			return nil, err
		}
	}

	hg := assembler.Build(names, titles)
	if assembler.GroupsSkipped() > 0 {
		logger.Debug().
			Int("skipped", assembler.GroupsSkipped()).
			Msg("Dropped groups with fewer than two members")
	}

	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	default:
	}

	writer := hypergraph.NewFileWriter()
	if err := writer.WriteAll(hg, config.OutputDir(), config.Prefix()); err != nil {
		return nil, fmt.Errorf("failed to write output: %w", err)
	}

	graphStats := hypergraph.Summarize(hg)

	result := &CreditsResult{
		Hypergraph: hg,
		Graph:      graphStats,
		Stats: CreditsStats{
			RowsRead:        table.RowsRead,
			RowsKept:        table.RowsKept,
			Titles:          len(table.Groups),
			GroupsAssembled: hg.EdgeCount(),
			GroupsSkipped:   assembler.GroupsSkipped(),
			Vertices:        hg.VertexCount(),
			Hyperedges:      hg.EdgeCount(),
			RoleCounts:      assembler.MemberCounts(),
			RuntimeMS:       time.Since(start).Milliseconds(),
		},
	}

	logger.Info().
		Int("titles", result.Stats.Titles).
		Int("vertices", result.Stats.Vertices).
		Int("hyperedges", result.Stats.Hyperedges).
		Int("components", graphStats.Components).
		Float64("avg_degree", graphStats.AvgDegree).
		Int64("runtime_ms", result.Stats.RuntimeMS).
		Msg("Credits conversion complete")

	return result, nil
}
