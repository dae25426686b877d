package planner

// fakeOracle is a deterministic stand-in for prob.LazyProb used by the
// planner end-to-end tests: every tile carries equal probability mass,
// except tiles listed in explicit, which report double.
type fakeOracle struct {
	explicit map[int]bool
}

func (f *fakeOracle) GetProbsAt(q, delta int) float32 {
	if f.explicit[q] {
		return 2
	}
	return 1
}

func (f *fakeOracle) GetLowerBound(delta int) int { return 0 }

func (f *fakeOracle) IntegrateOverRange(q, delta0, deltaM, low int) float32 {
	return f.GetProbsAt(q, delta0)
}

func (f *fakeOracle) GetK() []int {
	out := make([]int, 0, len(f.explicit))
	for q := range f.explicit {
		out = append(out, q)
	}
	return out
}
