package multiplier

import (
	"context"
	"errors"
	"sync/atomic"
	"time"

	"github.com/rs/zerolog/log"
	"go.opentelemetry.io/otel"
	"golang.org/x/sync/errgroup"

	"github.com/meganmergo/piranha/internal/parallel"
	"github.com/meganmergo/piranha/series"
	"github.com/meganmergo/piranha/symbols"
)

// Multiply computes the product of two series using the process-wide
// default configuration. See MultiplyWithConfig for the full contract.
func Multiply(ctx context.Context, a, b *series.Series) (*series.Series, error) {
	return MultiplyWithConfig(ctx, a, b, DefaultConfig())
}

// MultiplyWithConfig computes the product of two series.
//
// The operands must be defined over equal symbol sets; aligning them is
// the caller's responsibility (symbols.Set.Merge helps). The operands are
// never mutated and may be shared by concurrent multiplications; the call
// is re-entrant.
//
// The driver estimates the output cardinality by random sampling, sizes
// the output table from the estimate, picks a partitioning strategy
// (hash-band for sparse outputs, row-band for dense ones, serial below
// the parallel-work threshold), fans workers out, and merges their
// private accumulators single-threaded. The result is all-or-nothing: any
// worker error aborts its peers and surfaces as the returned error with
// no partial output.
//
// Parameters:
//   - ctx: Cancellation context; workers poll it at a bounded cadence.
//   - a, b: The operand series (read-only).
//   - cfg: Tuning knobs; zero fields take their defaults.
//
// Returns:
//   - *series.Series: The product, over the operands' symbol set.
//   - error: *IncompatibleSymbolsError, ErrCancelled, or a
//     *CoefficientError wrapping the underlying ring failure.
func MultiplyWithConfig(ctx context.Context, a, b *series.Series, cfg Config) (result *series.Series, err error) {
	tracer := otel.Tracer("piranha/multiplier")
	ctx, span := tracer.Start(ctx, "Multiply")
	defer span.End()

	d := &driver{cfg: cfg.normalize()}

	start := time.Now()
	defer func() {
		duration := time.Since(start).Seconds()
		status := "success"
		switch {
		case errors.Is(err, ErrCancelled):
			status = "cancelled"
		case err != nil:
			status = "error"
		}
		label := d.strat.String()
		multiplicationsTotal.WithLabelValues(label, status).Inc()
		multiplicationDuration.WithLabelValues(label).Observe(duration)

		outLen := 0
		if result != nil {
			outLen = result.Len()
		}
		log.Debug().
			Str("strategy", label).
			Int("threads", d.threads).
			Int("left_terms", a.Len()).
			Int("right_terms", b.Len()).
			Int("result_terms", outLen).
			Float64("duration", duration).
			Str("status", status).
			Msg("multiplication completed")
	}()

	result, err = d.run(ctx, a, b)
	return result, err
}

// driver holds the per-multiplication orchestration state. A fresh driver
// is created for every call, so Multiply remains re-entrant.
type driver struct {
	cfg     Config
	m       machine
	strat   strategy
	threads int
}

func (d *driver) run(ctx context.Context, a, b *series.Series) (*series.Series, error) {
	syms := a.Symbols()
	if !syms.Equal(b.Symbols()) {
		d.m.to(StateFailed)
		return nil, &IncompatibleSymbolsError{Left: syms, Right: b.Symbols()}
	}
	if a.Len() == 0 || b.Len() == 0 {
		// The product is empty; walk the machine through its linear
		// states so observers see a complete lifecycle.
		d.m.to(StateEstimating)
		d.m.to(StateScheduling)
		d.m.to(StateRunning)
		d.m.to(StateMerging)
		d.m.to(StateDone)
		d.threads = 1
		return series.NewEmpty(syms, 0), nil
	}

	aTerms, bTerms := a.Terms(), b.Terms()

	d.m.to(StateEstimating)
	est, err := estimateOutput(aTerms, bTerms, d.cfg)
	if err != nil {
		d.m.to(StateFailed)
		return nil, err
	}

	d.m.to(StateScheduling)
	d.threads = d.cfg.ThreadCount
	if est.total < uint64(d.cfg.MinParallelWork) {
		d.threads = 1
	}
	switch {
	case d.threads <= 1:
		d.strat, d.threads = strategySerial, 1
	case est.density >= DenseStrategyDensity:
		d.strat = strategyRowBand
	default:
		d.strat = strategyHashBand
	}

	d.m.to(StateRunning)
	var out *series.Series
	switch d.strat {
	case strategyHashBand:
		out, err = d.runHashBand(ctx, syms, aTerms, bTerms, est)
	case strategyRowBand:
		out, err = d.runRowBand(ctx, syms, aTerms, bTerms, est)
	default:
		out, err = d.runSerial(ctx, syms, aTerms, bTerms, est)
	}
	if err != nil {
		if errors.Is(err, ErrCancelled) && d.m.state == StateRunning {
			d.m.to(StateCancelled)
		}
		d.m.to(StateFailed)
		return nil, err
	}

	d.m.to(StateDone)
	actual := out.Len()
	if actual < 1 {
		actual = 1
	}
	estimatorAccuracy.Set(float64(est.predicted) / float64(actual))
	return out, nil
}

// runSerial executes the whole Cartesian product on the calling goroutine
// with a single unbanded accumulator.
func (d *driver) runSerial(ctx context.Context, syms *symbols.Set, aTerms, bTerms []series.Term, est estimate) (*series.Series, error) {
	acc := NewAccumulator(syms, int(est.predicted), d.cfg.MaxLoadFactor)
	kern := newKernel(acc, d.cfg.Filter, aTerms, bTerms)
	rows := len(aTerms)
	for i, ta := range aTerms {
		if i%CancellationPollRows == 0 {
			if ctx.Err() != nil {
				return nil, ErrCancelled
			}
			notify(d.cfg.Progress, 0, float64(i)/float64(rows))
		}
		for j, tb := range bTerms {
			if err := kern.Multiply(ta, tb); err != nil {
				return nil, &CoefficientError{Worker: 0, PairA: i, PairB: j, Cause: err}
			}
		}
	}
	notify(d.cfg.Progress, 0, 1.0)
	d.m.to(StateMerging)
	return acc.IntoSeries(), nil
}

// runHashBand partitions the output bucket space into one band per worker.
// Every worker walks the full Cartesian product but deposits only products
// hashing into its band, so the per-worker outputs are key-disjoint and
// the final union needs no coefficient operations and no locks.
func (d *driver) runHashBand(ctx context.Context, syms *symbols.Set, aTerms, bTerms []series.Term, est estimate) (*series.Series, error) {
	bands := hashBands(est.capacity, d.threads)
	accs := make([]*Accumulator, len(bands))
	for k := range bands {
		accs[k] = NewBandAccumulator(syms, est.capacity, bands[k], d.cfg.MaxLoadFactor)
	}

	var cancelled atomic.Bool
	var firstErr parallel.FirstError
	g, gctx := errgroup.WithContext(ctx)
	for k := range bands {
		g.Go(func() error {
			kern := newKernel(accs[k], d.cfg.Filter, aTerms, bTerms)
			rows := len(aTerms)
			for i, ta := range aTerms {
				if i%CancellationPollRows == 0 {
					if cancelled.Load() || gctx.Err() != nil {
						cancelled.Store(true)
						return nil
					}
					notify(d.cfg.Progress, k, float64(i)/float64(rows))
				}
				for j, tb := range bTerms {
					if err := kern.Multiply(ta, tb); err != nil {
						firstErr.Set(k, &CoefficientError{Worker: k, PairA: i, PairB: j, Cause: err})
						cancelled.Store(true)
						return nil
					}
				}
			}
			notify(d.cfg.Progress, k, 1.0)
			return nil
		})
	}
	_ = g.Wait()

	if err := firstErr.Err(); err != nil {
		return nil, err
	}
	if ctx.Err() != nil {
		return nil, ErrCancelled
	}

	d.m.to(StateMerging)
	total := 0
	for _, acc := range accs {
		total += acc.Len()
	}
	out := NewAccumulator(syms, total, d.cfg.MaxLoadFactor)
	for _, acc := range accs {
		out.AbsorbDisjoint(acc)
	}
	return out.IntoSeries(), nil
}

// runRowBand slices the left operand's rows across workers. Each worker
// produces a full partial product over its rows; the partials can share
// keys, so the final union folds them with coefficient merging.
func (d *driver) runRowBand(ctx context.Context, syms *symbols.Set, aTerms, bTerms []series.Term, est estimate) (*series.Series, error) {
	slices := rowBands(len(aTerms), d.threads)
	accs := make([]*Accumulator, len(slices))
	perWorker := int(est.predicted)/len(slices) + 1
	for k := range slices {
		accs[k] = NewAccumulator(syms, perWorker, d.cfg.MaxLoadFactor)
	}

	var cancelled atomic.Bool
	var firstErr parallel.FirstError
	g, gctx := errgroup.WithContext(ctx)
	for k := range slices {
		g.Go(func() error {
			kern := newKernel(accs[k], d.cfg.Filter, aTerms, bTerms)
			lo, hi := slices[k][0], slices[k][1]
			for i := lo; i < hi; i++ {
				if (i-lo)%CancellationPollRows == 0 {
					if cancelled.Load() || gctx.Err() != nil {
						cancelled.Store(true)
						return nil
					}
					notify(d.cfg.Progress, k, float64(i-lo)/float64(hi-lo))
				}
				ta := aTerms[i]
				for j, tb := range bTerms {
					if err := kern.Multiply(ta, tb); err != nil {
						firstErr.Set(k, &CoefficientError{Worker: k, PairA: i, PairB: j, Cause: err})
						cancelled.Store(true)
						return nil
					}
				}
			}
			notify(d.cfg.Progress, k, 1.0)
			return nil
		})
	}
	_ = g.Wait()

	if err := firstErr.Err(); err != nil {
		return nil, err
	}
	if ctx.Err() != nil {
		return nil, ErrCancelled
	}

	d.m.to(StateMerging)
	out := accs[0]
	for k := 1; k < len(accs); k++ {
		if err := out.Merge(accs[k]); err != nil {
			return nil, &CoefficientError{Worker: k, PairA: -1, PairB: -1, Cause: err}
		}
	}
	return out.IntoSeries(), nil
}
