package nib

import (
	"errors"
	"math"
)

// rectModel is a flat broad-edge nib. Geometry is computed in the nib frame,
// where the nib axis is horizontal, and rotated back for output.
//
// Corners of the nib face around a centre P, and the naming used in the
// stitching sequences (1 = segment start, c1/c2 = control points, 2 = end):
//
//	D-------------------------C
//	|            P            |
//	A-------------------------B
type rectModel struct {
	spec    Spec
	a, b    float64
	toNib   Matrix
	fromNib Matrix
}

func newRectModel(spec Spec) *rectModel {
	a, b := spec.semiAxes()
	return &rectModel{
		spec:    spec,
		a:       a,
		b:       b,
		toNib:   Rotate(-spec.Angle),
		fromNib: Rotate(spec.Angle),
	}
}

func (m *rectModel) Spec() Spec { return m.spec }

// corners holds the four nib-face corners around one centre point.
type corners struct {
	A, B, C, D Point
}

func (m *rectModel) corners(p Point) corners {
	return corners{
		A: Pt(p.X-m.a, p.Y-m.b),
		B: Pt(p.X+m.a, p.Y-m.b),
		C: Pt(p.X+m.a, p.Y+m.b),
		D: Pt(p.X-m.a, p.Y+m.b),
	}
}

func (m *rectModel) TangentOffset(direction float64) Point {
	k := m.corners(Point{})
	poly := []Point{k.A, k.B, k.C, k.D}
	return supportPoint(poly, direction-m.spec.Angle, m.a+m.b).Rotate(m.spec.Angle)
}

func (m *rectModel) Face(center Point) Patch {
	k := m.corners(m.toNib.TransformPoint(center))
	p := PolygonPatch(k.A, k.B, k.C, k.D).Transform(m.fromNib)
	p.Face = true
	return p
}

// LinePatch picks the six corners that outline the swept rectangle from the
// direction of travel relative to the nib axis.
func (m *rectModel) LinePatch(p0, p1 Point) (Patch, error) {
	t0 := m.toNib.TransformPoint(p0)
	t1 := m.toNib.TransformPoint(p1)
	k1 := m.corners(t0)
	k2 := m.corners(t1)

	var patch Patch
	switch q := AngleBetween(t0, t1) / math.Pi; {
	case 0 <= q && q < 0.5:
		patch = PolygonPatch(k1.A, k1.B, k2.B, k2.C, k2.D, k1.D)
	case 0.5 <= q && q <= 1:
		patch = PolygonPatch(k1.A, k1.B, k1.C, k2.C, k2.D, k2.A)
	case -1 <= q && q < -0.5:
		patch = PolygonPatch(k2.A, k2.B, k1.B, k1.C, k1.D, k2.D)
	default:
		patch = PolygonPatch(k2.A, k2.B, k2.C, k1.C, k1.D, k1.A)
	}
	return patch.Transform(m.fromNib), nil
}

// CurvePatches splits c where its direction crosses a nib-axis quadrant
// boundary and stitches one patch per piece. Pieces whose turn is not covered
// by the stitching table are skipped; their errors are joined and returned
// alongside the patches that could be built.
func (m *rectModel) CurvePatches(c CubicBez) ([]Patch, error) {
	pieces := SplitAtExtrema(c, -m.spec.Angle)
	patches := make([]Patch, 0, len(pieces))
	var errs []error
	for _, piece := range pieces {
		p, err := m.curvePiece(piece.Transform(m.toNib))
		if err != nil {
			errs = append(errs, err)
			continue
		}
		patches = append(patches, p.Transform(m.fromNib))
	}
	return patches, errors.Join(errs...)
}

// curvePiece stitches one extrema-free piece given in the nib frame. The
// end directions skip control points retracted onto their end point.
func (m *rectModel) curvePiece(c CubicBez) (Patch, error) {
	q1 := NormalizeQuadrant(startDirection(c) / math.Pi)
	q2 := NormalizeQuadrant(endDirection(c) / math.Pi)

	seq := stitchTable[quadrantBin(q1)][quadrantBin(q2)]
	if seq == seqNone {
		return Patch{}, &TurnGeometryError{Q1: q1, Q2: q2}
	}

	k1 := m.corners(c.P0)
	kc1 := m.corners(c.P1)
	kc2 := m.corners(c.P2)
	k2 := m.corners(c.P3)

	var vs []Vertex
	switch seq {
	case seqEndB:
		// B2 C2 ~C1 D1 A1 ~A2
		vs = []Vertex{
			LineVertex(k2.B), LineVertex(k2.C),
			CurveVertex(kc2.C, kc1.C, k1.C),
			LineVertex(k1.D), LineVertex(k1.A),
			CurveVertex(kc1.A, kc2.A, k2.A),
		}
	case seqStartA:
		// A1 B1 ~B2 C2 D2 ~D1
		vs = []Vertex{
			LineVertex(k1.A), LineVertex(k1.B),
			CurveVertex(kc1.B, kc2.B, k2.B),
			LineVertex(k2.C), LineVertex(k2.D),
			CurveVertex(kc2.D, kc1.D, k1.D),
		}
	case seqStartB:
		// B1 C1 ~C2 D2 A2 ~A1
		vs = []Vertex{
			LineVertex(k1.B), LineVertex(k1.C),
			CurveVertex(kc1.C, kc2.C, k2.C),
			LineVertex(k2.D), LineVertex(k2.A),
			CurveVertex(kc2.A, kc1.A, k1.A),
		}
	case seqEndA:
		// A2 B2 ~B1 C1 D1 ~D2
		vs = []Vertex{
			LineVertex(k2.A), LineVertex(k2.B),
			CurveVertex(kc2.B, kc1.B, k1.B),
			LineVertex(k1.C), LineVertex(k1.D),
			CurveVertex(kc1.D, kc2.D, k2.D),
		}
	}
	return Patch{Vertices: vs}, nil
}

// Vertex sequences of the stitching table, named after their first corner.
const (
	seqNone = iota
	seqEndB
	seqStartA
	seqStartB
	seqEndA
)

// quadrantBin classifies a direction in units of π, as produced by
// NormalizeQuadrant, into the nine bins of the stitching table: the five
// quadrant boundaries -1, -0.5, 0, 0.5, 1 and the four open intervals
// between them.
func quadrantBin(q float64) int {
	switch {
	case q <= -1:
		return 0
	case q < -0.5:
		return 1
	case q == -0.5:
		return 2
	case q < 0:
		return 3
	case q == 0:
		return 4
	case q < 0.5:
		return 5
	case q == 0.5:
		return 6
	case q < 1:
		return 7
	default:
		return 8
	}
}

// stitchTable maps (start bin, end bin) to the vertex sequence that walks
// the two corners on the outside of the turn. Rows are the start direction,
// columns the end direction, both indexed by quadrantBin.
//
// Cells marked "--" (seqNone) have no non-crossing sequence among the four;
// they include the turn from (-1, -0.5) into [0, 0.5).
var stitchTable = [9][9]int{
	//        -1        (-1,-.5)   -0.5       (-.5,0)    0          (0,.5)     0.5        (.5,1)     1
	/* -1 */ {seqStartB, seqEndA, seqEndA, seqEndA, seqStartA, seqStartA, seqStartB, seqStartB, seqStartB},
	/* ( ) */ {seqEndA, seqEndA, seqEndA, seqEndA, seqNone, seqNone, seqEndA, seqEndA, seqEndA},
	/* -.5 */ {seqEndA, seqEndA, seqEndA, seqEndB, seqEndB, seqNone, seqNone, seqNone, seqEndA},
	/* ( ) */ {seqEndA, seqEndA, seqEndB, seqEndB, seqEndB, seqEndB, seqEndA, seqEndA, seqEndA},
	/* 0 */ {seqNone, seqNone, seqEndB, seqEndB, seqEndB, seqStartA, seqStartA, seqStartA, seqStartA},
	/* ( ) */ {seqNone, seqNone, seqEndB, seqEndB, seqStartA, seqStartA, seqStartA, seqStartA, seqStartA},
	/* .5 */ {seqStartB, seqNone, seqNone, seqNone, seqStartA, seqStartA, seqStartA, seqStartB, seqStartB},
	/* ( ) */ {seqStartB, seqEndA, seqEndA, seqEndA, seqStartA, seqStartA, seqStartB, seqStartB, seqStartB},
	/* 1 */ {seqStartB, seqEndA, seqEndA, seqEndA, seqStartA, seqStartA, seqStartB, seqStartB, seqStartB},
}
