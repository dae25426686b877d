package planner

import (
	"container/heap"
	"math"
)

// rewardNode is one entry of the BFS planner's max-heap: the integrated
// reward for a tile and the tile's id. Mirrors this codebase's lineage
// event-heap shape (container/heap.Interface over a plain slice with
// deterministic tie-breaking), adapted to order by reward descending.
type rewardNode struct {
	reward float64
	tileID int
}

// rewardHeap is a max-heap of rewardNode ordered by reward, ties broken
// by the lower tile id for determinism. NaN rewards must never be
// pushed — callers sanitize before Push.
type rewardHeap []rewardNode

func (h rewardHeap) Len() int { return len(h) }

func (h rewardHeap) Less(i, j int) bool {
	if h[i].reward != h[j].reward {
		return h[i].reward > h[j].reward
	}
	return h[i].tileID < h[j].tileID
}

func (h rewardHeap) Swap(i, j int) { h[i], h[j] = h[j], h[i] }

func (h *rewardHeap) Push(x any) {
	*h = append(*h, x.(rewardNode))
}

func (h *rewardHeap) Pop() any {
	old := *h
	n := len(old)
	item := old[n-1]
	*h = old[:n-1]
	return item
}

// pushSanitized inserts reward into the heap, rejecting NaN by
// sanitizing it to zero rather than letting it corrupt heap ordering.
func pushSanitized(h *rewardHeap, reward float64, tileID int) {
	if math.IsNaN(reward) {
		reward = 0
	}
	heap.Push(h, rewardNode{reward: reward, tileID: tileID})
}
