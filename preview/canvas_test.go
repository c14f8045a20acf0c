package preview

import (
	"bytes"
	"image/png"
	"math"
	"testing"

	"github.com/gogpu/nib"
	"golang.org/x/image/math/f64"
)

func TestFitView(t *testing.T) {
	bounds := nib.Rect{Min: nib.Pt(0, 0), Max: nib.Pt(100, 50)}
	view := FitView(bounds, 220, 120, 10)

	apply := func(p nib.Point) (float64, float64) {
		return view[0]*p.X + view[1]*p.Y + view[2], view[3]*p.X + view[4]*p.Y + view[5]
	}
	tests := []struct {
		name   string
		in     nib.Point
		wx, wy float64
	}{
		{"top-left", nib.Pt(0, 50), 10, 10},
		{"bottom-right", nib.Pt(100, 0), 210, 110},
		{"centre", nib.Pt(50, 25), 110, 60},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			x, y := apply(tt.in)
			if math.Abs(x-tt.wx) > 1e-9 || math.Abs(y-tt.wy) > 1e-9 {
				t.Errorf("maps %v to (%g, %g), want (%g, %g)", tt.in, x, y, tt.wx, tt.wy)
			}
		})
	}
}

func TestCanvasStrokePatch(t *testing.T) {
	identity := f64.Aff3{1, 0, 0, 0, 1, 0}
	c := NewCanvas(40, 40, identity)
	c.StrokePatch(nib.PolygonPatch(nib.Pt(10, 10), nib.Pt(30, 10), nib.Pt(30, 30), nib.Pt(10, 30)))

	if c.Patches() != 1 {
		t.Fatalf("Patches() = %d, want 1", c.Patches())
	}
	inside := c.Image().RGBAAt(20, 20)
	outside := c.Image().RGBAAt(2, 2)
	if outside.R != 255 || outside.G != 255 || outside.B != 255 {
		t.Errorf("pixel outside the patch = %v, want white", outside)
	}
	if inside.R >= 200 {
		t.Errorf("pixel inside the patch = %v, want darkened", inside)
	}

	// A second overlapping patch darkens further.
	c.StrokePatch(nib.PolygonPatch(nib.Pt(15, 15), nib.Pt(25, 15), nib.Pt(25, 25), nib.Pt(15, 25)))
	if again := c.Image().RGBAAt(20, 20); again.R >= inside.R {
		t.Errorf("overlap = %v, want darker than %v", again, inside)
	}
}

func TestCanvasSkipsEmptyPatch(t *testing.T) {
	c := NewCanvas(10, 10, f64.Aff3{1, 0, 0, 0, 1, 0})
	c.StrokePatch(nib.Patch{})
	if c.Patches() != 0 {
		t.Errorf("Patches() = %d, want 0", c.Patches())
	}
}

func TestCanvasPreviewPass(t *testing.T) {
	spec := nib.Spec{Shape: nib.Oval, Angle: math.Pi / 6, Width: 30, Height: 4}
	bounds := nib.Rect{Min: nib.Pt(-20, -20), Max: nib.Pt(220, 120)}
	c := NewCanvas(240, 140, FitView(bounds, 240, 140, 0))

	pen, err := nib.NewPen(spec, c, nib.WithNibFaces(true))
	if err != nil {
		t.Fatal(err)
	}
	pen.MoveTo(nib.Pt(0, 0))
	if err := pen.CurveTo(nib.Pt(50, 100), nib.Pt(150, 100), nib.Pt(200, 0)); err != nil {
		t.Fatal(err)
	}
	if err := pen.EndPath(); err != nil {
		t.Fatal(err)
	}
	// Start face, curve patch, end face.
	if c.Patches() != 3 {
		t.Errorf("Patches() = %d, want 3", c.Patches())
	}

	var buf bytes.Buffer
	if err := c.EncodePNG(&buf); err != nil {
		t.Fatalf("EncodePNG: %v", err)
	}
	img, err := png.Decode(&buf)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if got := img.Bounds().Size(); got.X != 240 || got.Y != 140 {
		t.Errorf("decoded size = %v, want 240x140", got)
	}
}
