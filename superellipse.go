package nib

import (
	"math"

	"github.com/gogpu/nib/internal/cache"
)

const (
	superellipseSteps     = 101
	superellipseTolerance = 0.02
)

// superellipseModel approximates the nib outline |x/a|^n + |y/b|^n = 1 by a
// polygon built once per model. Tangent points are found by rotating the
// polygon into the direction of travel and taking its highest vertex.
type superellipseModel struct {
	spec    Spec
	a, b    float64
	poly    []Point
	rotated *cache.Cache[float64, []Point]
	stroker chainStroker
}

func newSuperellipseModel(spec Spec, cs chainStroker) *superellipseModel {
	a, b := spec.semiAxes()
	return &superellipseModel{
		spec:    spec,
		a:       a,
		b:       b,
		poly:    ShapePolygon(a, b, spec.Superness),
		rotated: cache.New[float64, []Point](defaultRotationCacheCap),
		stroker: cs,
	}
}

// ShapePolygon samples one quarter of the superellipse with semi-axes a, b
// and exponent n, simplifies it and mirrors it into the other three
// quadrants. The polygon is point-symmetric about the origin: vertex
// i + len/2 is the negation of vertex i.
func ShapePolygon(a, b, n float64) []Point {
	quarter := make([]Point, superellipseSteps)
	exp := 2 / n
	for i := range quarter {
		t := float64(i) / float64(superellipseSteps-1) * math.Pi / 2
		quarter[i] = Pt(a*math.Pow(math.Cos(t), exp), b*math.Pow(math.Sin(t), exp))
	}
	quarter = OptimizePointPath(quarter, superellipseTolerance)

	half := make([]Point, 0, 2*len(quarter))
	half = append(half, quarter...)
	for i := len(quarter) - 1; i >= 0; i-- {
		half = append(half, Pt(-quarter[i].X, quarter[i].Y))
	}
	poly := make([]Point, 0, 2*len(half))
	poly = append(poly, half...)
	for _, p := range half {
		poly = append(poly, p.Neg())
	}
	return poly
}

func (m *superellipseModel) Spec() Spec { return m.spec }

// Polygon returns the nib outline in the nib frame.
func (m *superellipseModel) Polygon() []Point { return m.poly }

func (m *superellipseModel) TangentOffset(direction float64) Point {
	rel := direction - m.spec.Angle
	rot := m.rotated.GetOrCreate(rel, func() []Point {
		return Rotate(-rel).TransformPoints(m.poly)
	})
	return highestVertex(m.poly, rot, m.a+m.b).Rotate(m.spec.Angle)
}

func (m *superellipseModel) LinePatch(p0, p1 Point) (Patch, error) {
	o := m.TangentOffset(AngleBetween(p0, p1))
	return PolygonPatch(p0.Add(o), p0.Sub(o), p1.Sub(o), p1.Add(o)), nil
}

func (m *superellipseModel) CurvePatches(c CubicBez) ([]Patch, error) {
	return []Patch{m.stroker.curvePatch(c, m.TangentOffset)}, nil
}

func (m *superellipseModel) Face(center Point) Patch {
	p := PolygonPatch(m.poly...).Transform(Translate(center.X, center.Y).Multiply(Rotate(m.spec.Angle)))
	p.Face = true
	return p
}

// supportPoint returns the vertex of poly that lies farthest to the left of
// travel in direction rel, that is the highest vertex once poly is rotated by
// -rel. size scales the tie tolerance.
func supportPoint(poly []Point, rel, size float64) Point {
	return highestVertex(poly, Rotate(-rel).TransformPoints(poly), size)
}

// highestVertex picks the vertex of poly whose rotated counterpart in rot has
// the largest y. Vertices tied within a tolerance relative to size are
// averaged, so a flat edge facing the direction yields its midpoint.
func highestVertex(poly, rot []Point, size float64) Point {
	if len(poly) == 0 {
		return Point{}
	}
	top := math.Inf(-1)
	for _, p := range rot {
		top = max(top, p.Y)
	}
	tol := 1e-9 * max(size, 1)

	var sum Point
	n := 0
	for i, p := range rot {
		if top-p.Y <= tol {
			sum = sum.Add(poly[i])
			n++
		}
	}
	return sum.Mul(1 / float64(n))
}
