package planner

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestUtilityMatrix_RespectsBlocksPerQuery(t *testing.T) {
	cfg := Config{
		Utility:        UtilityCurve{1, 2, 3},
		BlocksPerQuery: BlocksPerQuery{3, 1, 0},
		TotalQueries:   3,
	}
	m := utilityMatrix(cfg)

	assert.Equal(t, []float64{1, 2, 3}, m.RawRowView(0))
	assert.Equal(t, []float64{1, 0, 0}, m.RawRowView(1))
	assert.Equal(t, []float64{0, 0, 0}, m.RawRowView(2))
}

func TestHorizon_ClampsToCacheRemaining(t *testing.T) {
	cfg := Config{CacheSize: 10, Batch: 4}
	assert.Equal(t, 4, horizon(cfg, 0))
	assert.Equal(t, 2, horizon(cfg, 8))
	assert.Equal(t, 0, horizon(cfg, 10))
	assert.Equal(t, 0, horizon(cfg, 12))
}

func TestIsqrt(t *testing.T) {
	assert.Equal(t, 4, isqrt(16))
	assert.Equal(t, 4, isqrt(17))
	assert.Equal(t, 0, isqrt(0))
}
