package nib

import (
	"math"
	"testing"
)

func newTestOval(t *testing.T, angle, width, height float64) *ovalModel {
	t.Helper()
	m, err := NewModel(Spec{Shape: Oval, Angle: angle, Width: width, Height: height})
	if err != nil {
		t.Fatal(err)
	}
	return m.(*ovalModel)
}

func TestOvalTangentOffsetAligned(t *testing.T) {
	m := newTestOval(t, 0, 60, 2)
	o := m.TangentOffset(0)
	if math.Abs(o.X) > 1e-9 || !almostEqual(math.Abs(o.Y), 1, 1e-12) {
		t.Errorf("TangentOffset(0) = %v, want (0, ±1)", o)
	}
}

func TestOvalTangentOffsetTouchesOutline(t *testing.T) {
	const angle = 0.4
	m := newTestOval(t, angle, 30, 10)
	toNib := Rotate(-angle)
	for _, phi := range []float64{0, 0.2, 1.1, math.Pi / 2, 2.5, -0.6, -2} {
		o := toNib.TransformPoint(m.TangentOffset(phi))

		// On the ellipse.
		if r := (o.X/15)*(o.X/15) + (o.Y/5)*(o.Y/5); !almostEqual(r, 1, 1e-9) {
			t.Errorf("φ=%v: offset %v is off the outline (%v)", phi, o, r)
		}

		// Outline tangent parallel to travel.
		tangent := Pt(-o.Y*15/5, o.X*5/15)
		dir := Pt(1, 0).Rotate(phi - angle)
		if cross := tangent.X*dir.Y - tangent.Y*dir.X; math.Abs(cross) > 1e-9*tangent.Length() {
			t.Errorf("φ=%v: tangent %v not parallel to travel", phi, tangent)
		}
	}
}

func TestOvalTangentOffsetContinuous(t *testing.T) {
	m := newTestOval(t, 0.3, 40, 6)
	prev := m.TangentOffset(-math.Pi)
	for i := 1; i <= 720; i++ {
		phi := -math.Pi + float64(i)*math.Pi/360
		o := m.TangentOffset(phi)
		if d := Distance(prev, o); d > 2 {
			t.Fatalf("offset jumps by %.2f at φ=%.4f", d, phi)
		}
		prev = o
	}
}

func TestOvalLinePatch(t *testing.T) {
	m := newTestOval(t, 0, 60, 2)
	p, err := m.LinePatch(Pt(0, 0), Pt(100, 0))
	if err != nil {
		t.Fatal(err)
	}
	assertPatchPoints(t, p, []Point{Pt(0, 1), Pt(100, 1), Pt(100, -1), Pt(0, -1)})
	if p.Sampled {
		t.Error("line patch marked as sampled")
	}
}

func TestOvalCurvePatches(t *testing.T) {
	m := newTestOval(t, 0.5, 20, 4)
	c := NewCubicBez(Pt(0, 0), Pt(0, 50), Pt(50, 100), Pt(100, 100))
	patches, err := m.CurvePatches(c)
	if err != nil {
		t.Fatal(err)
	}
	if len(patches) != 1 {
		t.Fatalf("got %d patches, want 1", len(patches))
	}
	p := patches[0]
	if !p.Sampled {
		t.Error("curve patch not marked as sampled")
	}
	if p.Len() < 6 {
		t.Errorf("curve patch has only %d vertices", p.Len())
	}
	for i, v := range p.Vertices {
		if v.Curve {
			t.Fatalf("vertex %d is a curve", i)
		}
	}

	// Every vertex lies within the nib's reach of the centre line.
	samples := SampleCubic(c, 1)
	for i, v := range p.Vertices {
		nearest := math.Inf(1)
		for _, s := range samples {
			nearest = min(nearest, Distance(v.Pt, s))
		}
		if nearest > 10+1 {
			t.Errorf("vertex %d at %v is %.2f from the path", i, v.Pt, nearest)
		}
	}
}

func TestOvalFace(t *testing.T) {
	m := newTestOval(t, math.Pi/2, 20, 4)
	f := m.Face(Pt(5, 5))
	if f.Len() != 5 {
		t.Fatalf("face has %d vertices, want 5", f.Len())
	}
	if !pointsEqual(f.Vertices[0].Pt, f.Vertices[4].Pt, 1e-9) {
		t.Error("face arcs do not close")
	}
	// Nib axis is vertical, so the first extreme is straight above the centre.
	if !pointsEqual(f.Vertices[0].Pt, Pt(5, 15), 1e-9) {
		t.Errorf("first vertex = %v, want (5, 15)", f.Vertices[0].Pt)
	}
	b := f.Bounds()
	if !almostEqual(b.Width(), 4, 1e-9) || !almostEqual(b.Height(), 20, 1e-9) {
		t.Errorf("face bounds %v x %v, want 4 x 20", b.Width(), b.Height())
	}
}
