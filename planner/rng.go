package planner

import "math/rand"

// Sampler draws pseudo-random floats for categorical sampling. Factored
// behind an interface so tests can supply a seeded source, generalizing
// the per-subsystem RNG-derivation idea used elsewhere in this
// codebase's lineage for deterministic, reproducible runs.
type Sampler interface {
	Float64() float64
}

// SeededSampler wraps a *rand.Rand seeded deterministically, so that
// identical inputs (including seed) produce identical plans.
type SeededSampler struct {
	rng *rand.Rand
}

// NewSeededSampler returns a Sampler seeded with seed.
func NewSeededSampler(seed int64) *SeededSampler {
	return &SeededSampler{rng: rand.New(rand.NewSource(seed))}
}

// Float64 implements Sampler.
func (s *SeededSampler) Float64() float64 {
	return s.rng.Float64()
}

// defaultSampler returns a fresh, non-deterministic Sampler — used only
// when a Config carries no explicit Sampler. The planner constructors
// call it once, so every RunScheduler call on that planner draws from
// the same RNG instance; a new RNG is not created per round.
func defaultSampler() Sampler {
	return NewSeededSampler(rand.Int63())
}
