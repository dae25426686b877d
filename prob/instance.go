package prob

import "math"

// normCDFPivot is the fixed numerical threshold the source pivots on
// between erfc and erf. It is deliberately absolute-x, not z-score: for
// large-magnitude negative x this pivot is numerically inconsistent.
// Do not "fix" this without confirming the intended behavior with the
// domain owner — downstream planners may already compensate for it.
const normCDFPivot = 3.0

// normCDF computes the Gaussian CDF at x for mean mu and stddev sigma,
// switching between erfc and erf around normCDFPivot.
func normCDF(x, mu, sigma float64) float64 {
	z := (x - mu) / sigma
	const sqrt2 = 1.4142135623730951
	y := z / sqrt2
	if x >= normCDFPivot {
		return 0.5 * math.Erfc(-y)
	}
	return 0.5 + 0.5*math.Erf(y)
}

// LazyProbInstance is a single keyframe: a continuous 2-D Gaussian over
// an F×F tile grid (NumRow == NumCol == F).
type LazyProbInstance struct {
	XMu, YMu       float64
	XSigma, YSigma float64
	NumRow, NumCol int
}

// NewLazyProbInstance constructs a keyframe over an F×F grid.
func NewLazyProbInstance(xmu, ymu, xsigma, ysigma float64, numRow, numCol int) LazyProbInstance {
	return LazyProbInstance{XMu: xmu, YMu: ymu, XSigma: xsigma, YSigma: ysigma, NumRow: numRow, NumCol: numCol}
}

// Get returns the Gaussian mass integrated over tile key's unit cell.
func (l LazyProbInstance) Get(key int) float32 {
	x := float64(key / l.NumRow)
	y := float64(key % l.NumRow)
	xpw := normCDF(x, l.XMu, l.XSigma)
	xmw := normCDF(x+1, l.XMu, l.XSigma)
	yph := normCDF(y, l.YMu, l.YSigma)
	ymh := normCDF(y+1, l.YMu, l.YSigma)
	p := xpw*yph - xpw*ymh - xmw*yph + xmw*ymh
	return float32(p)
}

// GetCenterQueryID returns the tile index nearest the keyframe's mean.
func (l LazyProbInstance) GetCenterQueryID() int {
	return int(l.XMu)*l.NumRow + int(l.YMu)
}
