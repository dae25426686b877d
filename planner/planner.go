// Package planner implements the two interchangeable scheduling
// algorithms — a greedy partitioned planner and a breadth-first-search
// reward planner — that turn a prob.Oracle, a cache state, and a utility
// curve into an ordered list of tile assignments for the next batch of
// cache slots.
package planner

import (
	"gonum.org/v1/gonum/mat"

	"github.com/tilesched/tilesched/timemanager"
)

// UtilityCurve is the marginal utility u[i] of delivering the (i+1)-th
// block of any tile. K = len(UtilityCurve) is the maximum useful block
// count per tile.
type UtilityCurve []float32

// BlocksPerQuery is b[0..Q]: the maximum block count the client will
// ever need for each tile.
type BlocksPerQuery []int

// CacheState is state[0..Q]: how many blocks have already been
// scheduled/present per tile. RunScheduler consumes it and increments
// its entries in place; it does not make a copy.
type CacheState []int

// Oracle is the subset of prob.Oracle the planners depend on. Defined
// here (rather than imported) so planner stays decoupled from the
// concrete probability representation: the oracle is an abstract
// interface the planners own for the round and drop at the end.
type Oracle interface {
	GetProbsAt(q, delta int) float32
	GetLowerBound(delta int) int
	IntegrateOverRange(q, delta0, deltaM, low int) float32
	GetK() []int
}

// Config holds the parameters shared by both planner implementations.
type Config struct {
	CacheSize      int
	Utility        UtilityCurve
	BlocksPerQuery BlocksPerQuery
	TotalQueries   int
	Batch          int
	TM             *timemanager.Shared
	Sampler        Sampler
}

// utilityMatrix builds the Q×K matrix utility_matrix[q,i] = u[i] if
// i < b[q] else 0. Built once at construction and never rebuilt.
func utilityMatrix(cfg Config) *mat.Dense {
	k := len(cfg.Utility)
	q := cfg.TotalQueries
	m := mat.NewDense(q, k, nil)
	for qi := 0; qi < q; qi++ {
		bound := k
		if qi < len(cfg.BlocksPerQuery) {
			bound = min(cfg.BlocksPerQuery[qi], k)
		}
		for i := 0; i < bound; i++ {
			m.Set(qi, i, float64(cfg.Utility[i]))
		}
	}
	return m
}

// isqrt returns the integer square root floor(sqrt(n)).
func isqrt(n int) int {
	r := 0
	for (r+1)*(r+1) <= n {
		r++
	}
	return r
}

// horizon returns min(cachesize - startIdx, batch), the number of slots
// planned this round.
func horizon(cfg Config, startIdx int) int {
	h := cfg.CacheSize - startIdx
	if cfg.Batch < h {
		h = cfg.Batch
	}
	if h < 0 {
		h = 0
	}
	return h
}

// Planner is the common scheduling contract. probs is
// consumed by the call; state is consumed and mutated internally. The
// returned plan is at most h = min(cachesize-startIdx, batch) elements
// long, and every element is a valid tile index in [0, TotalQueries).
type Planner interface {
	RunScheduler(probs Oracle, state CacheState, startIdx int) []int
}
