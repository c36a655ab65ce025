package dbfs

import (
	"context"
	"fmt"
	"sync/atomic"

	"github.com/katalvlaran/csrbfs/bitmap"
	"github.com/katalvlaran/csrbfs/csr"
	"github.com/katalvlaran/csrbfs/merged"
)

// Engine is a constructed BFS engine bound to one CSR graph, flavor, and
// storage variant. Build one with NewEngine; the zero Engine is not
// usable.
type Engine struct {
	g       csr.Graph
	flavor  Flavor
	variant Variant
	cfg     *Config

	alpha int64
	beta  int64

	mergedFlavor merged.Flavor // only meaningful when variant == VariantMergedCSR

	// Bitmap-variant storage, allocated once and cleared per call.
	bmThis, bmNext, bmVisited *bitmap.Frontier

	// Classic-variant storage, allocated once and cleared per call.
	classicVisited []atomic.Bool
}

// NewEngine validates g, resolves VariantHeuristic if requested, and
// allocates the storage the resolved variant needs. The Engine keeps g
// (its CSR slices are not copied) and reads it on every BFS call; g must
// not be mutated by the caller for the lifetime of the returned Engine.
func NewEngine(g csr.Graph, flavor Flavor, opts ...Option) (*Engine, error) {
	if err := g.Validate(); err != nil {
		return nil, fmt.Errorf("dbfs: invalid graph: %w", err)
	}
	if flavor != Distances && flavor != Parents {
		return nil, fmt.Errorf("dbfs: flavor %d: %w", int(flavor), ErrUnknownFlavor)
	}

	cfg := newConfig(opts...)
	variant := resolveVariant(g, cfg.variant, cfg.degreeThreshold)

	e := &Engine{
		g:       g,
		flavor:  flavor,
		variant: variant,
		cfg:     cfg,
		alpha:   cfg.resolveAlpha(flavor, variant),
		beta:    cfg.resolveBeta(),
	}

	switch variant {
	case VariantMergedCSR:
		e.mergedFlavor = merged.Distances
		if flavor == Parents {
			e.mergedFlavor = merged.Parents
		}
		// Validate capacity up front so a bad graph fails at
		// construction, not on the first BFS call.
		if _, err := merged.Build(g, e.mergedFlavor); err != nil {
			return nil, fmt.Errorf("dbfs: building merged layout: %w", err)
		}
	case VariantBitmap:
		e.bmThis = bitmap.NewFrontier(g.N)
		e.bmNext = bitmap.NewFrontier(g.N)
		e.bmVisited = bitmap.NewFrontier(g.N)
	case VariantClassic:
		e.classicVisited = make([]atomic.Bool, g.N)
	default:
		return nil, fmt.Errorf("dbfs: variant %d: %w", int(variant), ErrUnknownVariant)
	}

	return e, nil
}

// Variant returns the engine's resolved storage variant (never
// VariantHeuristic).
func (e *Engine) Variant() Variant { return e.variant }

// Flavor returns the engine's result flavor.
func (e *Engine) Flavor() Flavor { return e.flavor }

// BFS computes, from source, either distances or parents (per the
// Engine's Flavor) into out, which must have length equal to the graph's
// vertex count. ctx is checked once per BFS level; cancellation stops the
// loop with ctx.Err() but BFS otherwise runs to completion, per the
// engine's no-cancellation-on-the-hot-path design.
func (e *Engine) BFS(ctx context.Context, source uint32, out []int32) error {
	if source >= e.g.N {
		return fmt.Errorf("dbfs: source=%d, N=%d: %w", source, e.g.N, ErrSourceOutOfRange)
	}
	if uint32(len(out)) != e.g.N {
		return fmt.Errorf("dbfs: len(out)=%d, N=%d: %w", len(out), e.g.N, ErrOutLength)
	}

	switch e.variant {
	case VariantMergedCSR:
		return e.bfsMerged(ctx, source, out)
	case VariantBitmap:
		return e.bfsBitmap(ctx, source, out)
	case VariantClassic:
		return e.bfsClassic(ctx, source, out)
	default:
		return fmt.Errorf("dbfs: variant %d: %w", int(e.variant), ErrUnknownVariant)
	}
}

// logLevel emits the per-level diagnostic record WithLogger subscribes
// to; a nil logger (the default) makes this a single branch, no
// allocation.
func (e *Engine) logLevel(level int, dir direction, frontierSize int) {
	if e.cfg.logger == nil {
		return
	}

	dirName := "top-down"
	if dir == bottomUp {
		dirName = "bottom-up"
	}
	e.cfg.logger.Debug("bfs level",
		"level", level,
		"direction", dirName,
		"frontier_size", frontierSize,
		"variant", e.variant.String(),
	)
}
