package prob

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLazyProb_NewLazyProb_DefaultsToUniformFloor(t *testing.T) {
	lp := NewLazyProb(16)
	// No keyframes set, and alpha=1 means the point mass is disabled:
	// every tile reads the uniform floor.
	assert.Equal(t, lp.inf, lp.GetProbsAt(0, 100))
	assert.Equal(t, lp.inf, lp.GetProbsAt(1, 100))
}

func TestLazyProb_SetPointDist_ChangesMixture(t *testing.T) {
	lp := NewLazyProb(16)
	lp.SetPointDist(0, 5) // alpha=0: pure point mass at tile 5
	assert.Equal(t, float32(0), lp.GetProbsAt(0, 100))
	assert.Equal(t, float32(1), lp.GetProbsAt(5, 100))
}

func TestLazyProb_SetProbsAt_KeepsDeltasSorted(t *testing.T) {
	lp := NewLazyProb(16)
	inst := NewLazyProbInstance(2, 2, 1, 1, 4, 4)
	lp.SetProbsAt(inst, 300)
	lp.SetProbsAt(inst, 100)
	lp.SetProbsAt(inst, 200)
	assert.Equal(t, []int{100, 200, 300}, lp.deltas)
}

func TestLazyProb_SetProbsAt_OverwritesExistingDelta(t *testing.T) {
	lp := NewLazyProb(16)
	lp.SetProbsAt(NewLazyProbInstance(1, 1, 1, 1, 4, 4), 100)
	lp.SetProbsAt(NewLazyProbInstance(2, 2, 1, 1, 4, 4), 100)
	assert.Equal(t, []int{100}, lp.deltas, "re-inserting at the same delta must not duplicate the index")
}

func TestLazyProb_GetLowerBound(t *testing.T) {
	lp := NewLazyProb(16)
	lp.SetProbsByParams(100, 2, 2, 1, 1)
	lp.SetProbsByParams(300, 2, 2, 1, 1)

	assert.Equal(t, 50, lp.GetLowerBound(50), "before the first keyframe, returns the query delta itself")
	assert.Equal(t, 100, lp.GetLowerBound(150))
	assert.Equal(t, 300, lp.GetLowerBound(300))
}

func TestLazyProb_GetCenterQueryID_NoKeyframeAtDelta(t *testing.T) {
	lp := NewLazyProb(16)
	lp.SetProbsByParams(100, 2, 2, 1, 1)
	assert.Equal(t, 0, lp.GetCenterQueryID(250))
}

func TestLazyProb_GetCenterQueryID_AtKeyframe(t *testing.T) {
	lp := NewLazyProb(16)
	lp.SetProbsByParams(100, 2, 3, 1, 1)
	assert.Equal(t, 2*4+3, lp.GetCenterQueryID(100))
}

func TestLazyProb_GetK_IncludesPointMassAndKeyframeCenters(t *testing.T) {
	lp := NewLazyProb(64)
	lp.SetPointDist(0.5, 9)
	lp.SetProbsByParams(100, 1, 1, 1, 1) // center = 1*8+1 = 9
	lp.SetProbsByParams(200, 3, 3, 1, 1) // center = 3*8+3 = 27

	k := lp.GetK()
	assert.Contains(t, k, 9)
	assert.Contains(t, k, 27)
}

func TestLazyProb_Get_InterpolatesBetweenKeyframes(t *testing.T) {
	lp := NewLazyProb(16)
	lp.SetProbsByParams(0, 2, 2, 1, 1)
	lp.SetProbsByParams(200, 2, 2, 1, 1)

	at0 := lp.Get(5, 0)
	atMid := lp.Get(5, 100)
	at200 := lp.Get(5, 200)
	assert.InDelta(t, at0, at200, 1e-4, "identical endpoints should yield identical probability")
	assert.InDelta(t, at0, atMid, 1e-3, "a flat interpolation segment should not change midway")
}

func TestLazyProb_IntegrateOverRange_EmptyRangeIsZero(t *testing.T) {
	lp := NewLazyProb(16)
	lp.SetProbsByParams(100, 2, 2, 1, 1)
	assert.Equal(t, float32(0), lp.IntegrateOverRange(5, 100, 100, 0))
	assert.Equal(t, float32(0), lp.IntegrateOverRange(5, 200, 100, 0))
}

func TestLazyProb_IntegrateOverRange_NonNegative(t *testing.T) {
	lp := NewLazyProb(64)
	lp.SetPointDist(0.3, 9)
	lp.SetProbsByParams(0, 1, 1, 1, 1)
	lp.SetProbsByParams(500, 5, 5, 1, 1)

	for q := 0; q < 64; q++ {
		p := lp.IntegrateOverRange(q, 0, 400, 0)
		assert.GreaterOrEqual(t, p, float32(0), "tile %d integrated probability must be non-negative", q)
	}
}

func TestLazyProb_IsqrtHelper(t *testing.T) {
	assert.Equal(t, 8, isqrt(64))
	assert.Equal(t, 7, isqrt(63))
	assert.Equal(t, 0, isqrt(0))
}

func TestLazyProb_OnNegativeAreaHook_NotInvokedByOrdinaryIntegration(t *testing.T) {
	lp := NewLazyProb(16)
	lp.SetProbsByParams(0, 2, 2, 1, 1)
	lp.SetProbsByParams(200, 2, 2, 1, 1)

	var calls int
	lp.OnNegativeArea = func() { calls++ }

	// Once its window guards pass, every term areaUnderCurve multiplies
	// is non-negative, so ordinary input never drives it negative;
	// exercise the hook directly so the wiring itself is covered.
	lp.OnNegativeArea()
	assert.Equal(t, 1, calls)

	// An ordinary IntegrateOverRange call must not invoke the hook.
	_ = lp.IntegrateOverRange(5, 0, 150, 0)
	assert.Equal(t, 1, calls)
}
