package motif

import (
	"context"
	"time"

	"golang.org/x/sync/errgroup"
)

// Builder enumerates 4-vertex motifs over a built adjacency: every pair of
// source vertices (p1, p2) with p1 < p2 whose out-lists share two targets
// {t1, t2} yields one motif (p1, p2, t1, t2).
//
// Emission order is fixed: p1 ascends over the full vertex range, target
// pairs follow out[p1] position order (i < j), and p2 ascends above p1. The
// p1 < p2 constraint dedups source pairs; target pairs need no further dedup
// because out-lists are deduplicated at insertion.
type Builder struct {
	adj    *Adjacency
	config Config
}

// NewBuilder creates a builder over adj.
func NewBuilder(adj *Adjacency, config Config) *Builder {
	return &Builder{adj: adj, config: config}
}

// Enumerate walks the adjacency and returns every motif exactly once, in
// deterministic order. With Config.Workers > 1 the source range is split
// into contiguous partitions enumerated concurrently over the shared
// read-only adjacency; partitions are concatenated in range order, so the
// result is identical to the serial run. Cancellation is checked once per
// source vertex.
func (b *Builder) Enumerate(ctx context.Context) (*BuildResult, error) {
	if b.adj == nil {
		return nil, BuildError{Stage: "enumerate", Message: "adjacency cannot be nil"}
	}

	start := time.Now()
	universe := b.adj.Universe()

	workers := b.config.Workers
	if workers < 1 {
		workers = 1
	}
	if workers > universe {
		workers = universe
	}

	var motifs []Motif
	if workers == 1 {
		var err error
		motifs, err = b.enumerateRange(ctx, 1, universe)
		if err != nil {
			return nil, err
		}
	} else {
		parts := make([][]Motif, workers)
		chunk := (universe + workers - 1) / workers

		g, gctx := errgroup.WithContext(ctx)
		for w := 0; w < workers; w++ {
			w := w
			lo := w*chunk + 1
			hi := (w + 1) * chunk
			if hi > universe {
				hi = universe
			}
			if lo > hi {
				continue
			}
			g.Go(func() error {
				part, err := b.enumerateRange(gctx, lo, hi)
				if err != nil {
					return err
				}
				parts[w] = part
				return nil
			})
		}
		if err := g.Wait(); err != nil {
			return nil, err
		}

		for _, part := range parts {
			motifs = append(motifs, part...)
		}
	}

	eligible := 0
	for _, targets := range b.adj.out {
		deg := len(targets)
		eligible += deg * (deg - 1) / 2
	}

	return &BuildResult{
		Motifs: motifs,
		Stats: BuildStats{
			Universe:      universe,
			Edges:         b.adj.EdgeCount(),
			Sources:       b.adj.SourceCount(),
			EligiblePairs: eligible,
			Motifs:        len(motifs),
			Workers:       workers,
			RuntimeMS:     time.Since(start).Milliseconds(),
		},
	}, nil
}

// enumerateRange emits motifs for source vertices p1 in [lo, hi]. Sources
// with fewer than two out-edges contribute no pairs. For each target pair
// the scan over p2 covers the full range above p1, not just [lo, hi], so
// partitioned calls see the same candidates as a serial pass.
func (b *Builder) enumerateRange(ctx context.Context, lo, hi int) ([]Motif, error) {
	var motifs []Motif
	for p1 := lo; p1 <= hi; p1++ {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		default:
		}

		targets := b.adj.out[p1]
		if len(targets) < 2 {
			continue
		}
		for i := 0; i < len(targets); i++ {
			for j := i + 1; j < len(targets); j++ {
				t1, t2 := targets[i], targets[j]
				for p2 := p1 + 1; p2 <= b.adj.universe; p2++ {
					if b.adj.HasEdge(p2, t1) && b.adj.HasEdge(p2, t2) {
						motifs = append(motifs, Motif{P1: p1, P2: p2, T1: t1, T2: t2})
					}
				}
			}
		}
	}
	return motifs, nil
}
