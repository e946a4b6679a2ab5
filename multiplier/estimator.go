package multiplier

import (
	"math/rand"
	"sync"
	"sync/atomic"

	"github.com/meganmergo/piranha/internal/parallel"
	"github.com/meganmergo/piranha/series"
)

// estimate is the scheduling pre-pass result: a prediction of the output
// cardinality and the table geometry derived from it.
type estimate struct {
	// total is |A|·|B|, the full Cartesian pair count.
	total uint64
	// predicted is the extrapolated output term count N̂.
	predicted uint64
	// density is predicted/total, the strategy-selection signal.
	density float64
	// capacity is the power-of-two output bucket count chosen from
	// predicted and the configured load factor.
	capacity int
	// sampled is the number of term pairs actually sampled.
	sampled uint64
}

// estimatorShards caps the number of goroutines the sampling pass fans out
// to. Sampling is cheap per pair; a handful of shards hides the monomial
// additions without paying scheduler overhead.
const estimatorShards = 4

// estimateOutput predicts the output cardinality by producting random term
// pairs and counting distinct product monomials, then extrapolating with a
// birthday-collision argument.
//
// The sampling is deterministic for a fixed Config.EstimatorSeed: shard g
// draws its pairs from a PRNG seeded with seed+g, and the distinct-union
// is order-independent. Overestimation is safe (the table is merely
// oversized); underestimation is self-healing (the accumulator resizes,
// band classification keeps using the shared capacity).
//
// Parameters:
//   - aTerms, bTerms: Term snapshots of the operands.
//   - cfg: Normalized configuration (samples, seed, load factor).
//
// Returns:
//   - estimate: The prediction and derived table geometry.
//   - error: A monomial arity error, which the driver's compatibility
//     check makes unreachable in practice.
func estimateOutput(aTerms, bTerms []series.Term, cfg Config) (estimate, error) {
	total := uint64(len(aTerms)) * uint64(len(bTerms))
	est := estimate{total: total}

	samples := uint64(cfg.EstimatorSamples)
	if total <= samples {
		// Few enough pairs to classify exhaustively; the "estimate" is
		// then the exact distinct count under hash identity.
		distinct := make(map[uint64]struct{}, total)
		for _, ta := range aTerms {
			for _, tb := range bTerms {
				m, err := ta.Monomial.Add(tb.Monomial)
				if err != nil {
					return est, err
				}
				distinct[m.Hash()] = struct{}{}
			}
		}
		est.sampled = total
		est.predicted = uint64(len(distinct))
	} else {
		var sampled atomic.Uint64
		shards := estimatorShards
		if cfg.ThreadCount < shards {
			shards = cfg.ThreadCount
		}
		if shards < 1 {
			shards = 1
		}
		per := int(samples) / shards
		sets := make([]map[uint64]struct{}, shards)
		var wg sync.WaitGroup
		var firstErr parallel.FirstError
		for g := 0; g < shards; g++ {
			wg.Add(1)
			go func(g int) {
				defer wg.Done()
				rng := rand.New(rand.NewSource(cfg.EstimatorSeed + int64(g)))
				set := make(map[uint64]struct{}, per)
				for k := 0; k < per; k++ {
					i := rng.Intn(len(aTerms))
					j := rng.Intn(len(bTerms))
					m, err := aTerms[i].Monomial.Add(bTerms[j].Monomial)
					if err != nil {
						firstErr.Set(g, err)
						return
					}
					set[m.Hash()] = struct{}{}
					sampled.Add(1)
				}
				sets[g] = set
			}(g)
		}
		wg.Wait()
		if err := firstErr.Err(); err != nil {
			return est, err
		}
		distinct := make(map[uint64]struct{}, per*shards)
		for _, set := range sets {
			for h := range set {
				distinct[h] = struct{}{}
			}
		}
		est.sampled = sampled.Load()
		est.predicted = extrapolate(est.sampled, uint64(len(distinct)), total)
	}

	if est.predicted < 1 {
		est.predicted = 1
	}
	est.density = float64(est.predicted) / float64(total)
	est.capacity = series.BucketCount(int(est.predicted), cfg.MaxLoadFactor)
	return est, nil
}

// extrapolate turns a sampled distinct count into a full-product
// prediction. With s pairs drawn uniformly from an output space of N
// monomials, the expected number of colliding draws is ≈ s²/2N (birthday
// approximation), so N ≈ s²/(2·(s-u)) when u of the s draws were distinct.
// A collision-free sample carries no upper-bound information, so it
// extrapolates to the cardinality bound |A|·|B|; overestimation is the
// safe direction.
func extrapolate(s, u, total uint64) uint64 {
	if u >= s {
		return total
	}
	n := s * s / (2 * (s - u))
	if n < u {
		n = u
	}
	if n > total {
		n = total
	}
	return n
}
