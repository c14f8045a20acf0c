package nib

import "math"

// ellipseKappa is the control-point distance for a cubic quarter ellipse.
const ellipseKappa = 0.5522847498307936

// ovalModel is an elliptical nib with semi-axes a (along the nib axis) and b.
type ovalModel struct {
	spec    Spec
	a, b    float64
	stroker chainStroker
}

func newOvalModel(spec Spec, cs chainStroker) *ovalModel {
	a, b := spec.semiAxes()
	return &ovalModel{spec: spec, a: a, b: b, stroker: cs}
}

func (m *ovalModel) Spec() Spec { return m.spec }

// TangentOffset uses the parametric tangent point of the ellipse,
// t = atan2(-b, a·tan(φ-angle)), and orients it to the left of travel so the
// result is continuous in φ and odd under a half turn.
func (m *ovalModel) TangentOffset(direction float64) Point {
	rel := direction - m.spec.Angle
	t := math.Atan2(-m.b, m.a*math.Tan(rel))
	o := Pt(m.a*math.Cos(t), m.b*math.Sin(t))

	// Left normal of travel in the nib frame.
	sin, cos := math.Sincos(rel)
	if o.X*-sin+o.Y*cos < 0 {
		o = o.Neg()
	}
	return o.Rotate(m.spec.Angle)
}

func (m *ovalModel) LinePatch(p0, p1 Point) (Patch, error) {
	o := m.TangentOffset(AngleBetween(p0, p1))
	return PolygonPatch(p0.Add(o), p1.Add(o), p1.Sub(o), p0.Sub(o)), nil
}

func (m *ovalModel) CurvePatches(c CubicBez) ([]Patch, error) {
	return []Patch{m.stroker.curvePatch(c, m.TangentOffset)}, nil
}

// Face returns the ellipse as four cubic quarter arcs.
func (m *ovalModel) Face(center Point) Patch {
	kx, ky := m.a*ellipseKappa, m.b*ellipseKappa
	a, b := m.a, m.b
	p := Patch{
		Vertices: []Vertex{
			LineVertex(Pt(a, 0)),
			CurveVertex(Pt(a, ky), Pt(kx, b), Pt(0, b)),
			CurveVertex(Pt(-kx, b), Pt(-a, ky), Pt(-a, 0)),
			CurveVertex(Pt(-a, -ky), Pt(-kx, -b), Pt(0, -b)),
			CurveVertex(Pt(kx, -b), Pt(a, -ky), Pt(a, 0)),
		},
		Face: true,
	}
	return p.Transform(Translate(center.X, center.Y).Multiply(Rotate(m.spec.Angle)))
}
