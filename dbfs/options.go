package dbfs

import (
	"log/slog"
	"runtime"
)

// unset marks Config.alpha/beta as "caller did not override" so NewEngine
// can apply the flavor-dependent default (ALPHA=4 for merged-CSR parents,
// 14 otherwise) only when the caller left it untouched.
const unset int64 = -1

const (
	defaultAlpha                  int64   = 14
	defaultAlphaMergedParents      int64   = 4
	defaultBeta                    int64   = 24
	defaultDegreeThreshold         float64 = 10
	defaultParallelMinVerticesUp   uint32  = 50
	defaultParallelMinVerticesDown uint32  = 150
)

// Config holds Engine construction tunables. The zero Config is not
// usable; build one via newConfig + Option, as NewEngine does internally.
type Config struct {
	alpha int64
	beta  int64

	degreeThreshold float64
	variant         Variant
	workers         int

	parallelMinVerticesBottomUp uint32
	parallelMinVerticesTopDown  uint32

	logger *slog.Logger
}

// Option customizes Engine construction. As a rule, option constructors
// never panic and ignore degenerate inputs (matching the teacher's
// BuilderOption/bfs.Option convention).
type Option func(*Config)

func newConfig(opts ...Option) *Config {
	cfg := &Config{
		alpha:                       unset,
		beta:                        unset,
		degreeThreshold:             defaultDegreeThreshold,
		variant:                     VariantHeuristic,
		workers:                     runtime.GOMAXPROCS(0),
		parallelMinVerticesBottomUp: defaultParallelMinVerticesUp,
		parallelMinVerticesTopDown:  defaultParallelMinVerticesDown,
		logger:                      nil,
	}

	for _, opt := range opts {
		opt(cfg)
	}

	return cfg
}

// resolveAlpha returns the effective ALPHA threshold for flavor/variant:
// the caller's WithAlpha value if set, else 4 for merged-CSR parents, else
// the canonical 14.
func (c *Config) resolveAlpha(flavor Flavor, variant Variant) int64 {
	if c.alpha != unset {
		return c.alpha
	}
	if variant == VariantMergedCSR && flavor == Parents {
		return defaultAlphaMergedParents
	}

	return defaultAlpha
}

func (c *Config) resolveBeta() int64 {
	if c.beta != unset {
		return c.beta
	}

	return defaultBeta
}

// WithAlpha overrides the top-down -> bottom-up switch threshold: a level
// switches direction when edges_frontier > unexplored_edges/alpha.
func WithAlpha(alpha int64) Option {
	return func(cfg *Config) {
		if alpha > 0 {
			cfg.alpha = alpha
		}
	}
}

// WithBeta overrides the bottom-up -> top-down switch threshold: a level
// switches direction when vertices_frontier < N/beta. beta==0 disables
// the switch back to top-down entirely (pure bottom-up after the first
// switch), matching property 6's BETA=0 scenario.
func WithBeta(beta int64) Option {
	return func(cfg *Config) {
		if beta >= 0 {
			cfg.beta = beta
		}
	}
}

// WithDegreeThreshold overrides the M/N ratio below which VariantHeuristic
// resolves to VariantMergedCSR (and at or above which it resolves to
// VariantBitmap). Ignored if threshold <= 0.
func WithDegreeThreshold(threshold float64) Option {
	return func(cfg *Config) {
		if threshold > 0 {
			cfg.degreeThreshold = threshold
		}
	}
}

// WithVariant forces a specific engine variant, bypassing the heuristic.
func WithVariant(v Variant) Option {
	return func(cfg *Config) {
		cfg.variant = v
	}
}

// WithWorkers overrides the worker count used by internal/parallelfor.
// Ignored if n <= 0.
func WithWorkers(n int) Option {
	return func(cfg *Config) {
		if n > 0 {
			cfg.workers = n
		}
	}
}

// WithParallelMinVertices overrides the frontier-size thresholds below
// which a level's kernel runs sequentially rather than forking goroutines:
// topDown for the top-down kernel, bottomUp for the bottom-up kernel.
// Either argument <= 0 leaves the corresponding threshold unchanged.
func WithParallelMinVertices(topDown, bottomUp uint32) Option {
	return func(cfg *Config) {
		if topDown > 0 {
			cfg.parallelMinVerticesTopDown = topDown
		}
		if bottomUp > 0 {
			cfg.parallelMinVerticesBottomUp = bottomUp
		}
	}
}

// WithLogger attaches a *slog.Logger that receives one Debug record per
// BFS level (direction, level number, frontier size). nil (the default)
// disables logging entirely, at zero cost on the hot path.
func WithLogger(logger *slog.Logger) Option {
	return func(cfg *Config) {
		cfg.logger = logger
	}
}
