package prob

import (
	"sort"
	"time"

	"github.com/sirupsen/logrus"
)

// LazyProb is the probability oracle: it holds an ordered set of
// keyframe deltas, each bound to a LazyProbInstance, a
// background uniform floor, and a point-mass mixture. Constructed fresh
// per scheduling round by gallery.Layout.DecodeDist; consumed by one
// planner run and then dropped.
type LazyProb struct {
	totalQueries int
	probsAt      map[int]LazyProbInstance
	deltas       []int // kept sorted ascending; invariant: every entry is a key in probsAt
	inf          float32
	pointDist    PointDist
	numRow       int
	createdAt    time.Time

	// OnNegativeArea, if set, is called every time areaUnderCurve
	// computes a negative area, in addition to the logrus.Warnf below.
	// Callers (e.g. the planner package) can use this to feed their own
	// observability counters without this package depending on them.
	OnNegativeArea func()
}

// NewLazyProb constructs an oracle over totalQueries tiles with the
// point-mass mixture initially disabled (alpha=1, so Mix always
// resolves to the base distribution) at tile 0, until SetPointDist
// overrides it.
func NewLazyProb(totalQueries int) *LazyProb {
	numRow := 0
	if totalQueries > 0 {
		numRow = int(isqrt(totalQueries))
	}
	inf := float32(0)
	if totalQueries > 0 {
		inf = 1.0 / float32(totalQueries)
	}
	return &LazyProb{
		totalQueries: totalQueries,
		probsAt:      make(map[int]LazyProbInstance),
		inf:          inf,
		pointDist:    PointDist{Alpha: 1.0, QIndex: 0},
		numRow:       numRow,
		createdAt:    time.Now(),
	}
}

func isqrt(n int) int {
	r := 0
	for (r+1)*(r+1) <= n {
		r++
	}
	return r
}

// CreatedAt returns the construction time of this oracle instance.
func (lp *LazyProb) CreatedAt() time.Time { return lp.createdAt }

// SetPointDist sets the mixing coefficient and tile index of the point
// mass.
func (lp *LazyProb) SetPointDist(alpha float32, index int) {
	lp.pointDist.Alpha = alpha
	lp.pointDist.QIndex = index
}

// SetProbsAt inserts a keyframe at millisecond offset delta, overwriting
// any existing keyframe there, and keeps the sorted delta index current.
func (lp *LazyProb) SetProbsAt(instance LazyProbInstance, delta int) {
	if _, exists := lp.probsAt[delta]; !exists {
		idx := sort.SearchInts(lp.deltas, delta)
		lp.deltas = append(lp.deltas, 0)
		copy(lp.deltas[idx+1:], lp.deltas[idx:])
		lp.deltas[idx] = delta
	}
	lp.probsAt[delta] = instance
}

// SetProbsByParams builds and inserts a keyframe from Gaussian params.
func (lp *LazyProb) SetProbsByParams(delta int, xmu, ymu, xsigma, ysigma float64) {
	instance := NewLazyProbInstance(xmu, ymu, xsigma, ysigma, lp.numRow, lp.numRow)
	lp.SetProbsAt(instance, delta)
}

// GetK returns the tiles with an explicit representation: the point-mass
// tile (included whatever its Alpha, so also the default tile 0 before
// SetPointDist is called) plus every keyframe's center tile, deduplicated,
// restricted to [0, totalQueries) and sorted ascending. This set is a
// reconstruction chosen for the greedy planner, which uses it for the
// "explicit" rows of its integration matrix; every tile absent from it
// is covered by the planner's single "rest" row.
func (lp *LazyProb) GetK() []int {
	seen := make(map[int]struct{})
	add := func(q int) {
		if q >= 0 && q < lp.totalQueries {
			seen[q] = struct{}{}
		}
	}
	add(lp.pointDist.QIndex)
	for _, d := range lp.deltas {
		add(lp.probsAt[d].GetCenterQueryID())
	}
	out := make([]int, 0, len(seen))
	for q := range seen {
		out = append(out, q)
	}
	sort.Ints(out)
	return out
}

// getTimeBounds returns the greatest keyframe delta <= delta as low (or
// delta if none exists), and the least keyframe delta > delta as up (or
// delta+1 if none).
func (lp *LazyProb) getTimeBounds(delta int) (low, up int) {
	low = delta
	up = delta + 1
	// deltas is sorted ascending.
	idx := sort.SearchInts(lp.deltas, delta+1) // first index with value > delta
	if idx > 0 {
		low = lp.deltas[idx-1]
	}
	if idx < len(lp.deltas) {
		up = lp.deltas[idx]
	}
	return low, up
}

// GetLowerBound returns the greatest keyframe delta in [0, delta0], else
// delta0.
func (lp *LazyProb) GetLowerBound(delta0 int) int {
	idx := sort.SearchInts(lp.deltas, delta0+1)
	if idx == 0 {
		return delta0
	}
	return lp.deltas[idx-1]
}

// GetProbsAt returns mix(q, base) where base is the keyframe exactly at
// delta if one exists, else the uniform floor.
func (lp *LazyProb) GetProbsAt(q, delta int) float32 {
	base := lp.inf
	if instance, ok := lp.probsAt[delta]; ok {
		base = instance.Get(q)
	}
	return lp.pointDist.Mix(q, base)
}

// Get linearly interpolates GetProbsAt between the two bounding
// keyframes of delta.
func (lp *LazyProb) Get(q, delta int) float32 {
	low, up := lp.getTimeBounds(delta)
	p0 := lp.GetProbsAt(q, low)
	p1 := lp.GetProbsAt(q, up)
	slope := (p1 - p0) / float32(up-low)
	return p0 + float32(delta-low)*slope
}

// GetCenterQueryID returns the center tile of the keyframe exactly at
// delta, or 0 if none exists there.
func (lp *LazyProb) GetCenterQueryID(delta int) int {
	if instance, ok := lp.probsAt[delta]; ok {
		return instance.GetCenterQueryID()
	}
	return 0
}

// areaUnderCurve computes the trapezoidal area over [i, j] (a
// sub-interval of [low, up]) under the straight line through
// (low, GetProbsAt(qid, low)) and (up, GetProbsAt(qid, up)). If the
// endpoint at low is larger than the endpoint at up, the values are
// swapped and the (i, j) window is mirrored within [low, up]
// (x -> low + up - x) to keep the triangular part
// of the trapezoid correctly oriented. Kept verbatim from the original
// source.
func (lp *LazyProb) areaUnderCurve(qid, low, up, i, j int) float32 {
	if i >= j || low > i || j > up || up < low {
		return 0
	}

	p0 := abs32(lp.GetProbsAt(qid, low))
	pm := abs32(lp.GetProbsAt(qid, up))
	if p0 > pm {
		p0, pm = pm, p0
		oldJ := j
		j = up - (i - low)
		i = up - (oldJ - low)
	}
	slope := (pm - p0) / float32(up-low)
	base := float32(j - i)
	area := base * (p0 + slope*(float32(i+j)/2.0-float32(low)))
	if area < 0 {
		logrus.Warnf("prob: negative area %v over [%d,%d] window [%d,%d]", area, low, up, i, j)
		if lp.OnNegativeArea != nil {
			lp.OnNegativeArea()
		}
	}
	return area
}

func abs32(v float32) float32 {
	if v < 0 {
		return -v
	}
	return v
}

// IntegrateOverRange computes the piecewise-linear integral of
// GetProbsAt(q, ·) over (delta0, deltaM], walking the keyframe grid and
// extrapolating 500ms past deltaM if the last keyframe did not reach it.
// Kept verbatim from the original source: when no keyframe falls in
// (delta0, deltaM], lowerDelta/upperDelta stay at their initial values.
func (lp *LazyProb) IntegrateOverRange(q, delta0, deltaM, low int) float32 {
	if delta0 >= deltaM {
		return 0
	}

	const extrapolationMs = 500
	infDelta := deltaM + extrapolationMs

	var p float32
	lowerDelta := delta0
	upperDelta := deltaM
	curLow := low

	for _, up := range lp.deltas {
		if up <= delta0 || up > deltaM {
			continue
		}
		upperDelta = min(up, deltaM)
		lowerDelta = max(delta0, curLow)
		p += lp.areaUnderCurve(q, curLow, up, lowerDelta, upperDelta)
		curLow = up

		if deltaM <= upperDelta {
			break
		}
	}

	if curLow < deltaM {
		p += lp.areaUnderCurve(q, curLow, infDelta, lowerDelta, upperDelta)
	}

	return abs32(p)
}
