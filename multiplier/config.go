package multiplier

import (
	"runtime"
	"sync"

	"github.com/meganmergo/piranha/coefficient"
	"github.com/meganmergo/piranha/monomial"
	"github.com/meganmergo/piranha/series"
)

// Filter is an optional predicate on a product term. When it returns
// false the product is discarded before any accumulator contact, which is
// how truncation policies (degree caps, order cuts) plug into the
// multiplier. The filter must be safe for concurrent calls and must be a
// pure function of its arguments.
type Filter func(c coefficient.Coefficient, m monomial.Monomial) bool

// Config carries the multiplier's tuning knobs. The zero value is usable:
// normalize fills every zero field with its default. Config is an explicit
// value threaded through the driver; the process-wide default exists only
// as a convenience snapshot taken once at the top of Multiply, never
// consulted on the hot path.
type Config struct {
	// ThreadCount is the maximum number of worker threads. Zero selects
	// the available parallelism.
	ThreadCount int

	// MinParallelWork is the |A|·|B| pair count below which the driver
	// runs serially. Zero selects DefaultMinParallelWork.
	MinParallelWork int

	// EstimatorSamples is the number of random term pairs sampled to
	// predict the output cardinality. Zero selects
	// DefaultEstimatorSamples.
	EstimatorSamples int

	// EstimatorSeed seeds the estimator's pseudo-random source, making
	// capacity choices reproducible. Zero selects DefaultEstimatorSeed.
	EstimatorSeed int64

	// MaxLoadFactor is the output table's load threshold. Zero selects
	// series.DefaultMaxLoadFactor.
	MaxLoadFactor float64

	// Filter, when non-nil, discards product terms it rejects.
	Filter Filter

	// Progress, when non-nil, receives per-worker completion updates.
	Progress *ProgressSubject
}

// normalize returns a copy of c with defaults filled in for zero fields.
func (c Config) normalize() Config {
	n := c
	if n.ThreadCount <= 0 {
		n.ThreadCount = runtime.GOMAXPROCS(0)
	}
	if n.MinParallelWork <= 0 {
		n.MinParallelWork = DefaultMinParallelWork
	}
	if n.EstimatorSamples <= 0 {
		n.EstimatorSamples = DefaultEstimatorSamples
	}
	if n.EstimatorSeed == 0 {
		n.EstimatorSeed = DefaultEstimatorSeed
	}
	if n.MaxLoadFactor <= 0 || n.MaxLoadFactor >= 1 {
		n.MaxLoadFactor = series.DefaultMaxLoadFactor
	}
	return n
}

// defaultConfig guards the process-wide default configuration. Access goes
// through DefaultConfig and SetDefaultConfig; the driver snapshots it once
// at entry so no shared mutable state is touched during the computation.
var (
	defaultConfigMu sync.RWMutex
	defaultConfig   = configFromEnv(Config{})
)

// DefaultConfig returns the process-wide default configuration. At package
// initialization the default is seeded from PIRANHA_-prefixed environment
// variables (see config_env.go).
func DefaultConfig() Config {
	defaultConfigMu.RLock()
	defer defaultConfigMu.RUnlock()
	return defaultConfig
}

// SetDefaultConfig replaces the process-wide default configuration used by
// Multiply. It does not affect multiplications already in flight.
//
// Parameters:
//   - cfg: The new default configuration.
func SetDefaultConfig(cfg Config) {
	defaultConfigMu.Lock()
	defer defaultConfigMu.Unlock()
	defaultConfig = cfg
}
