package planner

import (
	"fmt"
	"sort"
	"sync"

	"gonum.org/v1/gonum/stat"
)

// Metrics accumulates numeric edge-case counters — surfaced for
// observability rather than panicking — plus a lightweight
// reward-distribution diagnostic. Safe for concurrent use across
// planner instances sharing one Metrics.
type Metrics struct {
	mu                sync.Mutex
	NegativeAreaCount int
	DegenerateCount   int
	rewardSamples     []float64
}

// NewMetrics returns an empty counter set.
func NewMetrics() *Metrics {
	return &Metrics{}
}

// RecordNegativeArea increments the negative-area counter (prob/lazyprob.go logs
// the event itself; this tracks it for the calling session).
func (m *Metrics) RecordNegativeArea() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.NegativeAreaCount++
}

// RecordDegenerate increments the degenerate-sampling counter.
func (m *Metrics) RecordDegenerate() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.DegenerateCount++
}

// RecordRewards stacks in a round's reward vector for the median
// diagnostic below.
func (m *Metrics) RecordRewards(rewards []float32) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, r := range rewards {
		m.rewardSamples = append(m.rewardSamples, float64(r))
	}
}

// MedianReward reports the median of every reward value observed so
// far — a cheap sanity signal for the domain owner, not a scheduling
// input. Returns 0 if nothing has been recorded.
func (m *Metrics) MedianReward() float64 {
	m.mu.Lock()
	defer m.mu.Unlock()
	if len(m.rewardSamples) == 0 {
		return 0
	}
	sorted := make([]float64, len(m.rewardSamples))
	copy(sorted, m.rewardSamples)
	sort.Float64s(sorted)
	return stat.Quantile(0.5, stat.Empirical, sorted, nil)
}

// String renders a one-line, log-friendly summary of the counters.
func (m *Metrics) String() string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return fmt.Sprintf("planner metrics: negative_area=%d degenerate=%d samples=%d",
		m.NegativeAreaCount, m.DegenerateCount, len(m.rewardSamples))
}

