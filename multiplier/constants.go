package multiplier

// ─────────────────────────────────────────────────────────────────────────────
// Performance Tuning Constants
// ─────────────────────────────────────────────────────────────────────────────
//
// These constants control the multiplier's scheduling heuristics. The
// defaults were chosen against the dense and sparse polynomial workloads in
// the test suite on commodity multi-core hardware.

const (
	// DefaultMinParallelWork is the default |A|·|B| pair count below which
	// the driver runs serially. Below roughly ten thousand term-pair
	// products, the cost of spawning workers and merging their private
	// accumulators exceeds what parallel classification saves.
	DefaultMinParallelWork = 10_000

	// DefaultEstimatorSamples is the default number of random term pairs
	// the estimator products before scheduling. A few hundred samples keep
	// the relative error of the birthday-collision extrapolation in the
	// tens of percent, which is enough: capacity is only used to size the
	// output table, and both error directions are recoverable
	// (overestimation wastes buckets, underestimation resizes mid-flight).
	DefaultEstimatorSamples = 512

	// DefaultEstimatorSeed seeds the estimator's pseudo-random pair
	// sampling. A fixed default keeps capacity choices, and therefore
	// partition layouts, reproducible between runs; callers that want
	// independent samples per run can override it in Config.
	DefaultEstimatorSeed = 0x5eed5eed

	// DenseStrategyDensity is the predicted output density
	// (N̂ / (|A|·|B|)) at or above which the driver picks the row-band
	// partition. Dense outputs make the hash-band strategy's redundant
	// pair classification (every worker walks the full Cartesian product)
	// expensive relative to the row-band strategy's single walk plus
	// merge. 0.25 is the crossover observed on the dense benchmark
	// polynomials in the test suite.
	DenseStrategyDensity = 0.25

	// CancellationPollRows is the number of outer-loop rows a worker
	// processes between polls of the cancellation flag. Polling per row
	// would put an atomic load in the hot path for wide operands; every 16
	// rows bounds the cancellation latency to a small multiple of a row's
	// work.
	CancellationPollRows = 16
)
