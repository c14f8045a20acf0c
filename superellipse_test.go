package nib

import (
	"math"
	"testing"
)

func newTestSuperellipse(t *testing.T, angle, width, height, n float64) *superellipseModel {
	t.Helper()
	m, err := NewModel(Spec{Shape: Superellipse, Angle: angle, Width: width, Height: height, Superness: n})
	if err != nil {
		t.Fatal(err)
	}
	return m.(*superellipseModel)
}

func TestShapePolygonSymmetric(t *testing.T) {
	poly := ShapePolygon(30, 10, 2.5)
	if len(poly)%4 != 0 {
		t.Fatalf("polygon has %d vertices, want a multiple of 4", len(poly))
	}
	half := len(poly) / 2
	for i := range half {
		if poly[i+half] != poly[i].Neg() {
			t.Fatalf("vertex %d = %v, vertex %d = %v", i, poly[i], i+half, poly[i+half])
		}
	}
	if poly[0] != Pt(30, 0) {
		t.Errorf("first vertex = %v, want (30, 0)", poly[0])
	}
	for i, p := range poly {
		if r := math.Pow(math.Abs(p.X/30), 2.5) + math.Pow(math.Abs(p.Y/10), 2.5); !almostEqual(r, 1, 1e-9) {
			t.Errorf("vertex %d at %v is off the outline (%v)", i, p, r)
		}
	}
}

func TestShapePolygonSuperness(t *testing.T) {
	diagonal := func(poly []Point) Point {
		best, score := Point{}, math.Inf(-1)
		for _, p := range poly {
			if s := p.X/30 + p.Y/10; s > score {
				best, score = p, s
			}
		}
		return best
	}
	round := diagonal(ShapePolygon(30, 10, 2))
	square := diagonal(ShapePolygon(30, 10, 10))
	if d := Distance(round, square); d <= 1 {
		t.Errorf("superness 2 and 10 differ by only %.3f at the diagonal", d)
	}
	if square.X <= round.X || square.Y <= round.Y {
		t.Errorf("superness 10 diagonal %v should lie outside superness 2 diagonal %v", square, round)
	}
}

func TestSuperellipseMatchesOval(t *testing.T) {
	const angle = 0.6
	se := newTestSuperellipse(t, angle, 40, 16, 2)
	ov := newTestOval(t, angle, 40, 16)

	poly := se.Polygon()
	var edge float64
	for i := range poly {
		edge = max(edge, Distance(poly[i], poly[(i+1)%len(poly)]))
	}
	for _, phi := range []float64{0, 0.5, 1.3, 2.9, -0.4, -1.9} {
		if d := Distance(se.TangentOffset(phi), ov.TangentOffset(phi)); d > 2*edge {
			t.Errorf("φ=%v: superellipse and oval offsets differ by %.3f (edge %.3f)", phi, d, edge)
		}
	}
}

func TestSuperellipseRotationCache(t *testing.T) {
	m := newTestSuperellipse(t, 0, 30, 10, 3)
	first := m.TangentOffset(0.7)
	second := m.TangentOffset(0.7)
	if first != second {
		t.Errorf("cached offset %v differs from %v", second, first)
	}
	st := m.rotated.Stats()
	if st.Hits != 1 || st.Misses != 1 {
		t.Errorf("cache stats = %+v, want 1 hit and 1 miss", st)
	}
}

func TestSuperellipseLinePatch(t *testing.T) {
	m := newTestSuperellipse(t, 0, 30, 10, 4)
	p, err := m.LinePatch(Pt(0, 0), Pt(100, 0))
	if err != nil {
		t.Fatal(err)
	}
	// Travelling along the nib axis, the flat top edge averages to (0, 5).
	assertPatchPoints(t, p, []Point{Pt(0, 5), Pt(0, -5), Pt(100, -5), Pt(100, 5)})
}

func TestSuperellipseCurvePatches(t *testing.T) {
	m := newTestSuperellipse(t, 0.2, 24, 8, 3)
	c := NewCubicBez(Pt(0, 0), Pt(40, 80), Pt(120, 80), Pt(160, 0))
	patches, err := m.CurvePatches(c)
	if err != nil {
		t.Fatal(err)
	}
	if len(patches) != 1 || !patches[0].Sampled {
		t.Fatalf("got %+v, want one sampled patch", patches)
	}
	b := patches[0].Bounds()
	if b.Min.X > -1 || b.Max.X < 161 || b.Max.Y < 60 {
		t.Errorf("patch bounds %+v do not cover the curve", b)
	}
}

func TestHighestVertex(t *testing.T) {
	square := []Point{Pt(1, 1), Pt(-1, 1), Pt(-1, -1), Pt(1, -1)}
	if got := highestVertex(square, square, 2); got != Pt(0, 1) {
		t.Errorf("tied top edge = %v, want (0, 1)", got)
	}
	tilted := Rotate(-0.1).TransformPoints(square)
	if got := highestVertex(square, tilted, 2); got != Pt(-1, 1) {
		t.Errorf("tilted = %v, want (-1, 1)", got)
	}
	if got := highestVertex(nil, nil, 1); got != (Point{}) {
		t.Errorf("empty = %v, want origin", got)
	}
}
