package planner

import "math"

// sampleCategorical draws an index from [0, len(weights)) with
// probability proportional to weights[i], using cumulative-sum +
// uniform-draw inversion — the same pattern this codebase's lineage uses
// for empirical-distribution sampling (cumulative CDF + binary search).
// It reports ok=false when the weights are all non-positive, contain a
// negative value, or contain NaN — callers must treat false as "stop
// this round's planning loop, keep the plan built so far," never as a
// valid index. The original source's out-of-range sentinel return is
// deliberately not reproduced here.
func sampleCategorical(weights []float32, sampler Sampler) (int, bool) {
	var total float64
	for _, w := range weights {
		if w < 0 || math.IsNaN(float64(w)) {
			return 0, false
		}
		total += float64(w)
	}
	if total <= 0 {
		return 0, false
	}

	draw := sampler.Float64() * total
	var cum float64
	for i, w := range weights {
		cum += float64(w)
		if draw < cum {
			return i, true
		}
	}
	return len(weights) - 1, true
}
