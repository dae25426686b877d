package gallery

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/tilesched/tilesched/prob"
)

// Layout describes tile-space geometry over a dim×dim pixel canvas split
// into factor×factor tiles. Immutable after construction; TileDim is
// always > 0 for a valid Layout.
type Layout struct {
	Dim     uint32
	Factor  uint32
	TileDim float32
}

// NewLayout constructs a Layout. factor must be > 0.
func NewLayout(dim, factor uint32) (Layout, error) {
	if factor == 0 {
		return Layout{}, fmt.Errorf("gallery: factor must be > 0")
	}
	return Layout{
		Dim:     dim,
		Factor:  factor,
		TileDim: float32(dim) / float32(factor),
	}, nil
}

// TotalQueries returns Q = factor*factor.
func (l Layout) TotalQueries() int {
	return int(l.Factor) * int(l.Factor)
}

// PixelToQuery maps a pixel coordinate to its covering tile. Callers are
// responsible for bounds; out-of-range pixels yield tile coordinates
// >= Factor.
func (l Layout) PixelToQuery(x, y float64) Query {
	qx := uint32(x / float64(l.TileDim))
	qy := uint32(y / float64(l.TileDim))
	return Query{X: qx, Y: qy}
}

// BoundingBox is the pixel-space rectangle covered by one tile:
// [XMin, XMax, YMin, YMax].
type BoundingBox struct {
	XMin, XMax, YMin, YMax float32
}

// GetLayout returns the bounding box of each serialized query, in the
// same order. The original source accidentally broadcast the last row's
// box to every row via a "from row to end" slice assignment; this
// returns one box per query, which is what callers actually need.
func (l Layout) GetLayout(queries []string) ([]BoundingBox, error) {
	boxes := make([]BoundingBox, len(queries))
	for i, qs := range queries {
		q, err := ParseQuery(qs)
		if err != nil {
			return nil, fmt.Errorf("gallery: decoding query %d: %w", i, err)
		}
		boxes[i] = BoundingBox{
			XMin: float32(q.X) * l.TileDim,
			XMax: float32(q.X+1) * l.TileDim,
			YMin: float32(q.Y) * l.TileDim,
			YMax: float32(q.Y+1) * l.TileDim,
		}
	}
	return boxes, nil
}

// PointParams is the decoded point-mass component of a prediction
// payload: mixing weight and pixel-space location.
type PointParams struct {
	Alpha float64 `json:"alpha"`
	X     float64 `json:"x"`
	Y     float64 `json:"y"`
}

// GaussianKeyframe is one (delta_ms, Gaussian) entry of a prediction
// payload's keyframe series.
type GaussianKeyframe struct {
	DeltaMs int     `json:"delta_ms"`
	XMu     float64 `json:"xmu"`
	YMu     float64 `json:"ymu"`
	XSigma  float64 `json:"xsigma"`
	YSigma  float64 `json:"ysigma"`
}

// LinearPointGaussian is the "LGP" model payload: a point mass mixed
// with a series of Gaussian keyframes.
type LinearPointGaussian struct {
	P PointParams        `json:"p"`
	G []GaussianKeyframe `json:"g"`
}

// userStateData is the raw shape of the "data" object; its "dist" key is
// deserialized lazily by DecodeDist so a malformed payload surfaces as
// ErrMalformedDist rather than a generic json error at unmarshal time.
type userStateData struct {
	Dist json.RawMessage `json:"dist"`
}

// UserState is the client-reported predicted-viewing-distribution
// payload.
type UserState struct {
	Model string          `json:"model"`
	Data  json.RawMessage `json:"data"`
}

// ErrUnknownModel is returned when UserState.Model is not a recognized
// prediction model tag.
var ErrUnknownModel = fmt.Errorf("gallery: unknown prediction model")

// ErrMalformedDist is returned when the dist payload fails to decode.
var ErrMalformedDist = fmt.Errorf("gallery: malformed dist payload")

// decodePointModel extracts (alpha, x_pixels, y_pixels) from a decoded
// point-mass payload.
func decodePointModel(p PointParams) (alpha, x, y float64) {
	return p.Alpha, p.X, p.Y
}

// DecodeDist synthesizes a prob.Oracle from a client user-state payload.
// Only the "LGP" (Linear Gaussian + Point) model is currently supported;
// any other tag fails with ErrUnknownModel. The index of the point mass
// is derived directly from pixel coordinates and the layout's factor.
func (l Layout) DecodeDist(userState UserState) (*prob.LazyProb, error) {
	switch strings.TrimSpace(userState.Model) {
	case "LGP":
		var data userStateData
		if err := json.Unmarshal(userState.Data, &data); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrMalformedDist, err)
		}
		var dist LinearPointGaussian
		if err := json.Unmarshal(data.Dist, &dist); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrMalformedDist, err)
		}
		alpha, x, y := decodePointModel(dist.P)
		qx := int(x / float64(l.TileDim))
		qy := int(y / float64(l.TileDim))
		index := qx*int(l.Factor) + qy

		oracle := prob.NewLazyProb(l.TotalQueries())
		for _, kf := range dist.G {
			oracle.SetProbsByParams(kf.DeltaMs, kf.XMu, kf.YMu, kf.XSigma, kf.YSigma)
		}
		oracle.SetPointDist(float32(alpha), index)
		return oracle, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownModel, userState.Model)
	}
}

