// Package prob implements the lazy probability oracle: a time-varying
// distribution over tile indices reconstructed on demand by interpolating
// between Gaussian keyframes, mixed with a point mass. Planners own an
// Oracle for the duration of one scheduling round and drop it afterward.
package prob

// Oracle is the contract planners use to query probability mass over
// tiles at a given millisecond delta. Multiple concrete representations
// (lazy, eager) can satisfy it; only LazyProb is implemented here.
type Oracle interface {
	// Get returns the interpolated probability of tile q at delta,
	// linearly blended between the nearest keyframes.
	Get(q, delta int) float32
	// GetProbsAt returns the probability of tile q using the keyframe
	// exactly at delta if one exists, else the uniform floor — always
	// passed through the point-mass mixture.
	GetProbsAt(q, delta int) float32
	// GetCenterQueryID returns the tile nearest the mean of the keyframe
	// exactly at delta, or 0 if no keyframe sits there.
	GetCenterQueryID(delta int) int
	// GetLowerBound returns the greatest keyframe delta in [0, delta], or
	// delta itself if no keyframe precedes it.
	GetLowerBound(delta int) int
	// IntegrateOverRange returns the piecewise-linear integral of
	// GetProbsAt(q, ·) over (delta0, deltaM], using low as the starting
	// keyframe boundary.
	IntegrateOverRange(q, delta0, deltaM, low int) float32
	// GetK returns the tiles with an explicit (non-uniform-floor)
	// representation in the oracle.
	GetK() []int
}

// PointDist is a degenerate distribution concentrated on a single tile
// index, mixed with a baseline distribution by weight Alpha.
//
//	mixed(k, base) = Alpha*base + (1-Alpha)*PointDist.GetProb(k)
type PointDist struct {
	Alpha  float32 // mixing weight in [0, 1]
	QIndex int     // tile index the point mass concentrates on
}

// GetProb returns 1 if k is the point-mass tile, else 0.
func (p PointDist) GetProb(k int) float32 {
	if k == p.QIndex {
		return 1
	}
	return 0
}

// Mix blends a base probability with the point mass.
func (p PointDist) Mix(k int, base float32) float32 {
	return p.Alpha*base + (1-p.Alpha)*p.GetProb(k)
}
