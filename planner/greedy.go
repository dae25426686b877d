package planner

import (
	"gonum.org/v1/gonum/mat"

	"github.com/tilesched/tilesched/timemanager"
)

// GreedyPlanner integrates per-tile probability across the planning
// horizon, weights by marginal utility, and samples.
type GreedyPlanner struct {
	cfg     Config
	utility *mat.Dense
	metrics *Metrics
}

// NewGreedyPlanner builds a GreedyPlanner. The utility matrix is derived
// once here and reused for every subsequent RunScheduler call.
func NewGreedyPlanner(cfg Config, metrics *Metrics) *GreedyPlanner {
	if cfg.Sampler == nil {
		cfg.Sampler = defaultSampler()
	}
	if metrics == nil {
		metrics = NewMetrics()
	}
	return &GreedyPlanner{cfg: cfg, utility: utilityMatrix(cfg), metrics: metrics}
}

// integrateProbsPartition builds the [len(qInP)+1, h] integrated
// probability matrix and the parallel index array: one row per tile
// with an explicit keyframe-derived representation, plus a final
// "rest" row, integrated at the smallest unlisted tile, that stands in
// for every other tile. If every tile is listed, the rest row is zero.
func (g *GreedyPlanner) integrateProbsPartition(tm timemanager.TimeManager, probs Oracle, h int) (matrix [][]float32, qids []int, hasRest bool) {
	deltas := make([]int, h)
	lows := make([]int, h)
	for t := 0; t < h; t++ {
		deltas[t] = tm.SlotToClientDelta(t)
		lows[t] = probs.GetLowerBound(t)
	}
	horizonDelta := tm.SlotToClientDelta(h)

	qInP := probs.GetK()
	matrix = make([][]float32, len(qInP)+1)
	qids = make([]int, len(qInP)+1)

	restIndex := 0
	for i, qindex := range qInP {
		row := make([]float32, h)
		for t := 0; t < h; t++ {
			row[t] = probs.IntegrateOverRange(qindex, deltas[t], horizonDelta, lows[t])
		}
		matrix[i] = row
		qids[i] = qindex
		if restIndex == qindex {
			restIndex++
		}
	}

	if restIndex < g.cfg.TotalQueries {
		row := make([]float32, h)
		for t := 0; t < h; t++ {
			row[t] = probs.IntegrateOverRange(restIndex, deltas[t], horizonDelta, lows[t])
		}
		matrix[len(qInP)] = row
		qids[len(qInP)] = restIndex
		hasRest = true
	} else {
		matrix[len(qInP)] = make([]float32, h)
	}

	return matrix, qids, hasRest
}

// greedyPartition runs the per-slot sampling loop: build a reward per
// partition row, sample one, then resolve the "rest" row to a concrete
// tile index via a uniform draw over all tiles in [0, TotalQueries).
func (g *GreedyPlanner) greedyPartition(qids []int, h int, matrix [][]float32, hasRest bool, state CacheState) []int {
	plan := make([]int, 0, h)
	rewards := make([]float32, len(qids))

	for t := 0; t < h; t++ {
		for i, qid := range qids {
			nblocks := state[qid]
			if nblocks < g.cfg.BlocksPerQuery[qid] && nblocks < len(g.cfg.Utility) {
				rewards[i] = float32(g.utility.At(qid, nblocks)) * matrix[i][t]
			} else {
				rewards[i] = 0
			}
		}
		g.metrics.RecordRewards(rewards)

		idx, ok := sampleCategorical(rewards, g.cfg.Sampler)
		if !ok {
			g.metrics.RecordDegenerate()
			break
		}

		var qid int
		if hasRest && idx == len(qids)-1 {
			qid = int(g.cfg.Sampler.Float64() * float64(g.cfg.TotalQueries))
			if qid >= g.cfg.TotalQueries {
				qid = g.cfg.TotalQueries - 1
			}
		} else {
			qid = qids[idx]
		}

		if state[qid] < len(g.cfg.Utility) {
			plan = append(plan, qid)
			state[qid]++
		}
	}

	return plan
}

// RunScheduler implements Planner.
func (g *GreedyPlanner) RunScheduler(probs Oracle, state CacheState, startIdx int) []int {
	if g.cfg.TotalQueries == 0 {
		return nil
	}
	h := horizon(g.cfg, startIdx)
	if h == 0 {
		return nil
	}

	tm, unlock := g.cfg.TM.RLock()
	defer unlock()

	matrix, qids, hasRest := g.integrateProbsPartition(tm, probs, h)
	return g.greedyPartition(qids, h, matrix, hasRest, state)
}
