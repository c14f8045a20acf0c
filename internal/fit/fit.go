package fit

import (
	"errors"
	"math"
	"sort"

	"honnef.co/go/curve"
)

var (
	// ErrTooFewPoints is returned for chains without two distinct points.
	ErrTooFewPoints = errors.New("fit: at least two distinct points required")

	// ErrTooManySegments is returned when the fit needs more cubics than allowed.
	ErrTooManySegments = errors.New("fit: segment limit exceeded")
)

// cuspMargin keeps BreakCusp from reporting a corner on a range end.
const cuspMargin = 1e-9

// Polyline is a point chain parameterized by arc length over [0, 1]. It
// implements curve.FittableCurve.
type Polyline struct {
	pts    []curve.Point
	params []float64 // params[i] is the parameter of pts[i]
	corner []bool

	// Tangents at the start and end of segment k (pts[k] to pts[k+1]).
	// They interpolate across the segment and differ from the chord only
	// next to a smooth vertex, where they follow the bisector.
	startTan []curve.Vec2
	endTan   []curve.Vec2
}

var _ curve.FittableCurve = (*Polyline)(nil)

// NewPolyline builds the source curve for points. Consecutive duplicates are
// dropped. A vertex where the chain turns by more than cornerTolerance
// radians is a corner. A chain whose ends coincide is treated as closed, so
// the seam vertex gets a smooth tangent unless it is sharp itself.
func NewPolyline(points []curve.Point, cornerTolerance float64) (*Polyline, error) {
	pts := dedupe(points)
	if len(pts) < 2 {
		return nil, ErrTooFewPoints
	}
	n := len(pts)
	pl := &Polyline{
		pts:      pts,
		params:   make([]float64, n),
		corner:   make([]bool, n),
		startTan: make([]curve.Vec2, n-1),
		endTan:   make([]curve.Vec2, n-1),
	}

	length := 0.0
	for i := 1; i < n; i++ {
		length += pts[i].Distance(pts[i-1])
		pl.params[i] = length
	}
	for i := range pl.params {
		pl.params[i] /= length
	}
	pl.params[n-1] = 1

	closed := n > 2 && pts[0] == pts[n-1]
	chord := func(k int) curve.Vec2 { return pts[k+1].Sub(pts[k]).Normalize() }
	tangent := make([]curve.Vec2, n)
	smooth := make([]bool, n)
	for i := range pts {
		in, out := i-1, i
		if closed && i == 0 {
			in = n - 2
		}
		if closed && i == n-1 {
			out = 0
		}
		if in < 0 || out > n-2 {
			continue
		}
		a, b := chord(in), chord(out)
		turn := math.Atan2(math.Abs(a.Cross(b)), a.Dot(b))
		sum := a.Add(b)
		if turn > cornerTolerance || sum.Hypot2() == 0 {
			pl.corner[i] = true
			continue
		}
		tangent[i] = sum.Normalize()
		smooth[i] = true
	}
	for k := 0; k < n-1; k++ {
		c := chord(k)
		pl.startTan[k], pl.endTan[k] = c, c
		if smooth[k] {
			pl.startTan[k] = tangent[k]
		}
		if smooth[k+1] {
			pl.endTan[k] = tangent[k+1]
		}
	}
	return pl, nil
}

// Corners returns the parameters of the interior corner vertices.
func (pl *Polyline) Corners() []float64 {
	var ts []float64
	for i := 1; i < len(pl.pts)-1; i++ {
		if pl.corner[i] {
			ts = append(ts, pl.params[i])
		}
	}
	return ts
}

// locate returns the segment holding t and the position within it. When t
// falls on a vertex, sign selects the segment after (sign >= 0) or before it.
func (pl *Polyline) locate(t, sign float64) (k int, s float64) {
	last := len(pl.pts) - 2
	t = min(max(t, 0), 1)
	i := sort.SearchFloat64s(pl.params, t)
	if i < len(pl.params) && pl.params[i] == t {
		if sign >= 0 && i <= last || i == 0 {
			return i, 0
		}
		return i - 1, 1
	}
	k = i - 1
	return k, (t - pl.params[k]) / (pl.params[k+1] - pl.params[k])
}

func (pl *Polyline) point(k int, s float64) curve.Point {
	switch s {
	case 0:
		return pl.pts[k]
	case 1:
		return pl.pts[k+1]
	}
	return pl.pts[k].Lerp(pl.pts[k+1], s)
}

// SamplePtTangent returns the chain point at t and the interpolated tangent.
func (pl *Polyline) SamplePtTangent(t, sign float64) curve.CurveFitSample {
	k, s := pl.locate(t, sign)
	return curve.CurveFitSample{
		Point:   pl.point(k, s),
		Tangent: pl.startTan[k].Lerp(pl.endTan[k], s),
	}
}

// SamplePtDeriv returns the chain point at t and the derivative of the
// arc-length parameterization, constant along each segment.
func (pl *Polyline) SamplePtDeriv(t float64) (curve.Point, curve.Vec2) {
	k, s := pl.locate(t, 1)
	d := pl.pts[k+1].Sub(pl.pts[k]).Mul(1 / (pl.params[k+1] - pl.params[k]))
	return pl.point(k, s), d
}

// BreakCusp reports the first corner strictly inside (start, end).
func (pl *Polyline) BreakCusp(start, end float64) (float64, bool) {
	i := sort.SearchFloat64s(pl.params, start+cuspMargin)
	for ; i < len(pl.pts)-1; i++ {
		t := pl.params[i]
		if t >= end-cuspMargin {
			break
		}
		if pl.corner[i] && t > start+cuspMargin {
			return t, true
		}
	}
	return 0, false
}

// Fit approximates points with a chain of cubics that stays within tolerance
// of the polyline. Corners sharper than cornerTolerance radians end a cubic.
// The first cubic starts at points[0], each cubic starts where the previous
// one ends and the last ends at the final point. A fit that needs more than
// maxSegments cubics fails with ErrTooManySegments; maxSegments <= 0 means
// no limit.
func Fit(points []curve.Point, tolerance, cornerTolerance float64, maxSegments int) ([]curve.CubicBez, error) {
	pl, err := NewPolyline(points, cornerTolerance)
	if err != nil {
		return nil, err
	}

	var out []curve.CubicBez
	pos := pl.pts[0]
	for el := range curve.FitToBezPath(pl, tolerance) {
		if el.Kind != curve.CubicToKind {
			continue
		}
		if maxSegments > 0 && len(out) == maxSegments {
			return nil, ErrTooManySegments
		}
		out = append(out, curve.CubicBez{P0: pos, P1: el.P0, P2: el.P1, P3: el.P2})
		pos = el.P2
	}
	if len(out) == 0 {
		return nil, ErrTooFewPoints
	}
	// The fitter places ends through an affine transform; pin the chain end
	// to the input so closed contours close exactly.
	out[len(out)-1].P3 = pl.pts[len(pl.pts)-1]
	return out, nil
}

func dedupe(points []curve.Point) []curve.Point {
	out := make([]curve.Point, 0, len(points))
	for _, p := range points {
		if len(out) == 0 || out[len(out)-1] != p {
			out = append(out, p)
		}
	}
	return out
}
