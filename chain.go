package nib

import "slices"

// Defaults for the sampled curve stroker shared by the oval and superellipse
// models.
const (
	DefaultCurveStep        = 5.0
	DefaultChainTolerance   = 0.3
	DefaultStitchTolerance  = 1.0
	defaultRotationCacheCap = 4096
)

// chainStroker strokes a cubic by sampling it, offsetting every sample by the
// tangent point on both sides of the nib and joining the two chains into one
// closed outline.
type chainStroker struct {
	step      float64
	chainTol  float64
	stitchTol float64
}

func defaultChainStroker() chainStroker {
	return chainStroker{
		step:      DefaultCurveStep,
		chainTol:  DefaultChainTolerance,
		stitchTol: DefaultStitchTolerance,
	}
}

// directions returns the travel direction for every sample in pts. The first
// sample uses the start tangent of c and each later sample the chord from its
// predecessor; a zero-length chord keeps the previous direction.
func (cs chainStroker) directions(c CubicBez, pts []Point) []float64 {
	dirs := make([]float64, len(pts))
	dirs[0] = startDirection(c)
	for i := 1; i < len(pts); i++ {
		if pts[i] == pts[i-1] {
			dirs[i] = dirs[i-1]
			continue
		}
		dirs[i] = AngleBetween(pts[i-1], pts[i])
	}
	return dirs
}

// startDirection is the direction of the first control point that differs
// from the start point.
func startDirection(c CubicBez) float64 {
	for _, p := range []Point{c.P1, c.P2, c.P3} {
		if p != c.P0 {
			return AngleBetween(c.P0, p)
		}
	}
	return 0
}

// endDirection is the direction into the end point from the last control
// point that differs from it.
func endDirection(c CubicBez) float64 {
	for _, p := range []Point{c.P2, c.P1, c.P0} {
		if p != c.P3 {
			return AngleBetween(p, c.P3)
		}
	}
	return 0
}

// curvePatch sweeps the nib described by offset along c.
func (cs chainStroker) curvePatch(c CubicBez, offset func(direction float64) Point) Patch {
	pts := SampleCubic(c, cs.step)
	dirs := cs.directions(c, pts)

	outer := make([]Point, len(pts))
	inner := make([]Point, len(pts))
	for i, p := range pts {
		o := offset(dirs[i])
		outer[i] = p.Add(o)
		inner[i] = p.Sub(o)
	}

	outer = OptimizePointPath(outer, cs.chainTol)
	inner = OptimizePointPath(inner, cs.chainTol)
	slices.Reverse(outer)

	ring := OptimizePointPath(append(outer, inner...), cs.stitchTol)
	p := PolygonPatch(ring...)
	p.Sampled = true
	return p
}
