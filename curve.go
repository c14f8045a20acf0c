package nib

import "math"

// QuadrantEpsilon is the distance within which a normalized direction is
// snapped onto a quadrant boundary by NormalizeQuadrant.
const QuadrantEpsilon = 1e-9

// QuadBez represents a quadratic Bezier curve with control points P0, P1, P2.
type QuadBez struct {
	P0, P1, P2 Point
}

// Raise elevates the quadratic to a cubic Bezier curve.
// Returns an exact cubic representation of this quadratic.
func (q QuadBez) Raise() CubicBez {
	// C1 = P0 + 2/3 * (P1 - P0), C2 = P2 + 2/3 * (P1 - P2)
	return CubicBez{
		P0: q.P0,
		P1: q.P0.Lerp(q.P1, 2.0/3.0),
		P2: q.P2.Lerp(q.P1, 2.0/3.0),
		P3: q.P2,
	}
}

// CubicBez represents a cubic Bezier curve with control points P0, P1, P2, P3.
// P0 is the start point, P1 and P2 are control points, P3 is the end point.
type CubicBez struct {
	P0, P1, P2, P3 Point
}

// NewCubicBez creates a new cubic Bezier curve.
func NewCubicBez(p0, p1, p2, p3 Point) CubicBez {
	return CubicBez{P0: p0, P1: p1, P2: p2, P3: p3}
}

// Eval evaluates the curve at parameter t (0 to 1).
func (c CubicBez) Eval(t float64) Point {
	mt := 1.0 - t
	mt2 := mt * mt
	mt3 := mt2 * mt
	t2 := t * t
	t3 := t2 * t

	// (1-t)^3 * P0 + 3(1-t)^2*t * P1 + 3(1-t)*t^2 * P2 + t^3 * P3
	return Point{
		X: mt3*c.P0.X + 3*mt2*t*c.P1.X + 3*mt*t2*c.P2.X + t3*c.P3.X,
		Y: mt3*c.P0.Y + 3*mt2*t*c.P1.Y + 3*mt*t2*c.P2.Y + t3*c.P3.Y,
	}
}

// Deriv returns the first derivative of the curve at parameter t.
func (c CubicBez) Deriv(t float64) Point {
	mt := 1.0 - t
	d0 := c.P1.Sub(c.P0)
	d1 := c.P2.Sub(c.P1)
	d2 := c.P3.Sub(c.P2)
	return Point{
		X: 3 * (d0.X*mt*mt + 2*d1.X*mt*t + d2.X*t*t),
		Y: 3 * (d0.Y*mt*mt + 2*d1.Y*mt*t + d2.Y*t*t),
	}
}

// Split divides the curve at parameter t using de Casteljau's algorithm.
func (c CubicBez) Split(t float64) (CubicBez, CubicBez) {
	p01 := c.P0.Lerp(c.P1, t)
	p12 := c.P1.Lerp(c.P2, t)
	p23 := c.P2.Lerp(c.P3, t)
	p012 := p01.Lerp(p12, t)
	p123 := p12.Lerp(p23, t)
	mid := p012.Lerp(p123, t)

	return CubicBez{P0: c.P0, P1: p01, P2: p012, P3: mid},
		CubicBez{P0: mid, P1: p123, P2: p23, P3: c.P3}
}

// SplitAt divides the curve at the given ascending parameters in (0, 1).
// The first piece starts exactly at P0 and the last one ends exactly at P3.
func (c CubicBez) SplitAt(ts ...float64) []CubicBez {
	pieces := make([]CubicBez, 0, len(ts)+1)
	rest := c
	prev := 0.0
	for _, t := range ts {
		local := (t - prev) / (1 - prev)
		head, tail := rest.Split(local)
		pieces = append(pieces, head)
		rest = tail
		prev = t
	}
	return append(pieces, rest)
}

// Transform applies m to all four control points.
func (c CubicBez) Transform(m Matrix) CubicBez {
	return CubicBez{
		P0: m.TransformPoint(c.P0),
		P1: m.TransformPoint(c.P1),
		P2: m.TransformPoint(c.P2),
		P3: m.TransformPoint(c.P3),
	}
}

// IsDegenerate reports whether all control points coincide with the start
// point, leaving the direction of travel undefined.
func (c CubicBez) IsDegenerate() bool {
	return c.P1 == c.P0 && c.P2 == c.P0 && c.P3 == c.P0
}

// ArcLength returns the length of the curve, integrated with adaptive
// Gauss-Legendre quadrature over the speed |B'(t)|.
func (c CubicBez) ArcLength() float64 {
	speed := func(t float64) float64 { return c.Deriv(t).Length() }
	return adaptiveLength(speed, 0, 1, gaussLegendre5(speed, 0, 1), 12)
}

const arcLengthTolerance = 0.005

func adaptiveLength(f func(float64) float64, a, b, whole float64, depth int) float64 {
	mid := 0.5 * (a + b)
	left := gaussLegendre5(f, a, mid)
	right := gaussLegendre5(f, mid, b)
	if depth == 0 || math.Abs(left+right-whole) <= arcLengthTolerance {
		return left + right
	}
	return adaptiveLength(f, a, mid, left, depth-1) + adaptiveLength(f, mid, b, right, depth-1)
}

// gaussLegendre5 integrates f from a to b with five-point Gauss-Legendre quadrature.
func gaussLegendre5(f func(float64) float64, a, b float64) float64 {
	c := (b - a) / 2.0
	d := (a + b) / 2.0
	qd1 := f(-0.9061798459386640*c + d)
	qd2 := f(-0.5384693101056831*c + d)
	qd3 := f(d)
	qd4 := f(0.5384693101056831*c + d)
	qd5 := f(0.9061798459386640*c + d)
	return c * (0.2369268850561891*(qd1+qd5) + 0.4786286704993665*(qd2+qd4) + 0.5688888888888889*qd3)
}

// SampleCubic returns points along c spaced roughly step units of arc length
// apart. Parameters advance uniformly by step/ArcLength starting at t=0; the
// end point P3 is always appended, even when the last step overshoots.
func SampleCubic(c CubicBez, step float64) []Point {
	length := c.ArcLength()
	if length == 0 || step <= 0 {
		return []Point{c.P0, c.P3}
	}
	dt := step / length
	points := make([]Point, 0, int(1/dt)+2)
	for t := 0.0; t < 1; t += dt {
		points = append(points, c.Eval(t))
	}
	return append(points, c.P3)
}

// SplitAtExtrema splits c at the parameters where its derivative, after
// rotating the curve by rotation radians, has a zero x or y component.
//
// The returned pieces are sub-segments of the original, unrotated curve.
// Within each piece the rotated direction of travel stays inside one
// quadrant. A curve without interior extrema is returned unchanged.
func SplitAtExtrema(c CubicBez, rotation float64) []CubicBez {
	r := c.Transform(Rotate(rotation))

	// Power basis: B(t) = a t^3 + b t^2 + cc t + d, B'(t) = 3a t^2 + 2b t + cc.
	cc := r.P1.Sub(r.P0).Mul(3)
	b := r.P2.Sub(r.P1).Mul(3).Sub(cc)
	a := r.P3.Sub(r.P0).Sub(cc).Sub(b)

	roots := SolveQuadratic(3*a.Y, 2*b.Y, cc.Y)
	roots = append(roots, SolveQuadratic(3*a.X, 2*b.X, cc.X)...)
	ts := interiorRoots(roots)
	if len(ts) == 0 {
		return []CubicBez{c}
	}
	return c.SplitAt(ts...)
}

// NormalizeQuadrant snaps q, a direction expressed in units of π, onto the
// nearest multiple of 0.5 when it lies within QuadrantEpsilon of it.
func NormalizeQuadrant(q float64) float64 {
	r := 2 * q
	nearest := math.Round(r)
	if math.Abs(nearest-r) > QuadrantEpsilon {
		return q
	}
	return nearest * 0.5
}
