package planner

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/tilesched/tilesched/timemanager"
)

func TestGreedyPlanner_RunScheduler_ProducesValidPlan(t *testing.T) {
	cfg := Config{
		CacheSize:      4,
		Batch:          4,
		Utility:        UtilityCurve{1, 1},
		BlocksPerQuery: BlocksPerQuery{2, 2, 2, 2},
		TotalQueries:   4,
		TM:             timemanager.NewShared(&timemanager.Linear{PerSlotMs: 10}),
		Sampler:        NewSeededSampler(7),
	}
	g := NewGreedyPlanner(cfg, nil)
	state := make(CacheState, 4)
	oracle := &fakeOracle{explicit: map[int]bool{1: true}}

	plan := g.RunScheduler(oracle, state, 0)

	assert.LessOrEqual(t, len(plan), 4)
	for _, qid := range plan {
		assert.GreaterOrEqual(t, qid, 0)
		assert.Less(t, qid, 4)
	}
}

func TestGreedyPlanner_RunScheduler_ZeroHorizonReturnsNil(t *testing.T) {
	cfg := Config{
		CacheSize:      4,
		Batch:          4,
		Utility:        UtilityCurve{1},
		BlocksPerQuery: BlocksPerQuery{1, 1, 1, 1},
		TotalQueries:   4,
		TM:             timemanager.NewShared(&timemanager.Linear{PerSlotMs: 10}),
		Sampler:        NewSeededSampler(1),
	}
	g := NewGreedyPlanner(cfg, nil)
	state := make(CacheState, 4)
	oracle := &fakeOracle{}

	plan := g.RunScheduler(oracle, state, 4) // already at cache size
	assert.Nil(t, plan)
}

func TestGreedyPlanner_RunScheduler_StopsOnceStateSaturates(t *testing.T) {
	cfg := Config{
		CacheSize:      4,
		Batch:          4,
		Utility:        UtilityCurve{1},
		BlocksPerQuery: BlocksPerQuery{1, 1, 1, 1},
		TotalQueries:   4,
		TM:             timemanager.NewShared(&timemanager.Linear{PerSlotMs: 10}),
		Sampler:        NewSeededSampler(3),
	}
	g := NewGreedyPlanner(cfg, nil)
	state := CacheState{1, 1, 1, 1} // every tile already at its block budget
	oracle := &fakeOracle{}

	plan := g.RunScheduler(oracle, state, 0)
	assert.Empty(t, plan)
}
