package planner

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tilesched/tilesched/timemanager"
)

func testConfig() Config {
	return Config{
		CacheSize:      4,
		Batch:          4,
		Utility:        UtilityCurve{1, 1},
		BlocksPerQuery: BlocksPerQuery{2, 2, 2, 2},
		TotalQueries:   4,
		TM:             timemanager.NewShared(&timemanager.Linear{PerSlotMs: 10}),
		Sampler:        NewSeededSampler(1),
	}
}

func TestNewPlanner_DefaultsToGreedy(t *testing.T) {
	p, err := NewPlanner("", testConfig(), 0, nil)
	require.NoError(t, err)
	_, ok := p.(*GreedyPlanner)
	assert.True(t, ok)
}

func TestNewPlanner_Greedy(t *testing.T) {
	p, err := NewPlanner("greedy", testConfig(), 0, nil)
	require.NoError(t, err)
	_, ok := p.(*GreedyPlanner)
	assert.True(t, ok)
}

func TestNewPlanner_BFS(t *testing.T) {
	p, err := NewPlanner("bfs", testConfig(), 0, nil)
	require.NoError(t, err)
	_, ok := p.(*BFSPlanner)
	assert.True(t, ok)
}

func TestNewPlanner_UnknownReturnsError(t *testing.T) {
	_, err := NewPlanner("mystery", testConfig(), 0, nil)
	assert.Error(t, err)
}
