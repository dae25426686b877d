package planner

import (
	"container/heap"

	"gonum.org/v1/gonum/mat"

	"github.com/tilesched/tilesched/timemanager"
)

// defaultNumQueriesSearched is the BFS search-expansion cap used when a
// BFSPlanner is constructed without an explicit override.
const defaultNumQueriesSearched = 100

// bfsSeedTile is the fixed seed tile the BFS search starts from every
// round, regardless of where probability mass actually lives. Kept
// verbatim from the original source; a documented limitation, not a
// bug to silently fix (see RunScheduler).
const bfsSeedTile = 1

// BFSPlanner spatially explores the tile graph from a seed tile, ranks
// candidates by probability×utility, and samples.
type BFSPlanner struct {
	cfg                Config
	utility            *mat.Dense
	metrics            *Metrics
	numQueriesSearched int
	gridSide           int
}

// NewBFSPlanner builds a BFSPlanner. numQueriesSearched <= 0 uses the
// default expansion cap of 100.
func NewBFSPlanner(cfg Config, numQueriesSearched int, metrics *Metrics) *BFSPlanner {
	if cfg.Sampler == nil {
		cfg.Sampler = defaultSampler()
	}
	if metrics == nil {
		metrics = NewMetrics()
	}
	if numQueriesSearched <= 0 {
		numQueriesSearched = defaultNumQueriesSearched
	}
	return &BFSPlanner{
		cfg:                cfg,
		utility:            utilityMatrix(cfg),
		metrics:            metrics,
		numQueriesSearched: numQueriesSearched,
		gridSide:           isqrt(cfg.TotalQueries),
	}
}

// neighbours returns the (up to four) 4-neighbors of tileID on the
// gridSide×gridSide grid, dropping out-of-bounds ones.
func (b *BFSPlanner) neighbours(tileID int) []int {
	n := b.gridSide
	x0, y0 := tileID/n, tileID%n
	deltas := [4][2]int{{1, 0}, {-1, 0}, {0, 1}, {0, -1}}
	out := make([]int, 0, 4)
	for _, d := range deltas {
		x1, y1 := x0+d[0], y0+d[1]
		if x1 >= 0 && x1 < n && y1 >= 0 && y1 < n {
			out = append(out, x1*n+y1)
		}
	}
	return out
}

// bfsByRewards runs one search expansion: seeds the heap at startID,
// pops up to numQueriesSearched nodes in decreasing
// integrated-probability order, expanding unvisited 4-neighbors as it
// goes, then scales each accumulated probability by the tile's current
// marginal utility.
func (b *BFSPlanner) bfsByRewards(probs Oracle, state CacheState, delta, horizonDelta, lowerBound, startID int) (rewards []float32, qids []int) {
	visited := make(map[int]bool)
	h := &rewardHeap{}
	heap.Init(h)

	startProb := probs.IntegrateOverRange(startID, delta, horizonDelta, lowerBound)
	visited[startID] = true
	pushSanitized(h, float64(startProb), startID)

	rewards = make([]float32, 0, b.numQueriesSearched)
	qids = make([]int, 0, b.numQueriesSearched)

	for h.Len() > 0 && len(rewards) < b.numQueriesSearched {
		node := heap.Pop(h).(rewardNode)
		rewards = append(rewards, float32(node.reward))
		qids = append(qids, node.tileID)

		for _, nb := range b.neighbours(node.tileID) {
			if visited[nb] {
				continue
			}
			visited[nb] = true
			p := probs.IntegrateOverRange(nb, delta, horizonDelta, lowerBound)
			pushSanitized(h, float64(p), nb)
		}
	}

	for i, qid := range qids {
		nblocks := state[qid]
		if nblocks < len(b.cfg.Utility) {
			rewards[i] *= float32(b.utility.At(qid, nblocks))
		} else {
			rewards[i] = 0
		}
	}
	return rewards, qids
}

// generateBFSPlan runs one BFS expansion and categorical sample for
// every slot in the horizon.
func (b *BFSPlanner) generateBFSPlan(tm timemanager.TimeManager, probs Oracle, h int, state CacheState) []int {
	deltas := make([]int, h)
	lows := make([]int, h)
	for t := 0; t < h; t++ {
		deltas[t] = tm.SlotToClientDelta(t)
		lows[t] = probs.GetLowerBound(t)
	}
	horizonDelta := tm.SlotToClientDelta(h)

	plan := make([]int, 0, h)
	for t := 0; t < h; t++ {
		rewards, qids := b.bfsByRewards(probs, state, deltas[t], horizonDelta, lows[t], bfsSeedTile)
		b.metrics.RecordRewards(rewards)

		idx, ok := sampleCategorical(rewards, b.cfg.Sampler)
		if !ok {
			b.metrics.RecordDegenerate()
			break
		}

		qid := qids[idx]
		state[qid]++
		plan = append(plan, qid)
	}
	return plan
}

// RunScheduler implements Planner.
//
// The search always seeds from bfsSeedTile: if the point mass or
// Gaussian peak lives outside that tile's 4-neighborhood reachable
// within numQueriesSearched expansions, it is never observed by this
// planner — a known limitation carried over from the original source.
func (b *BFSPlanner) RunScheduler(probs Oracle, state CacheState, startIdx int) []int {
	if b.cfg.TotalQueries == 0 {
		return nil
	}
	h := horizon(b.cfg, startIdx)
	if h == 0 {
		return nil
	}

	tm, unlock := b.cfg.TM.RLock()
	defer unlock()

	return b.generateBFSPlan(tm, probs, h, state)
}
