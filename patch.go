package nib

import "math"

// Vertex is one node of an outline patch: either a straight vertex (Pt only)
// or a cubic vertex reached through the control points C1 and C2.
type Vertex struct {
	Curve  bool
	C1, C2 Point
	Pt     Point
}

// LineVertex returns a straight vertex at p.
func LineVertex(p Point) Vertex {
	return Vertex{Pt: p}
}

// CurveVertex returns a cubic vertex ending at p.
func CurveVertex(c1, c2, p Point) Vertex {
	return Vertex{Curve: true, C1: c1, C2: c2, Pt: p}
}

// Transform applies m to the vertex and its control points.
func (v Vertex) Transform(m Matrix) Vertex {
	v.Pt = m.TransformPoint(v.Pt)
	if v.Curve {
		v.C1 = m.TransformPoint(v.C1)
		v.C2 = m.TransformPoint(v.C2)
	}
	return v
}

// Round rounds the vertex and its control points to integer coordinates.
func (v Vertex) Round() Vertex {
	v.Pt = v.Pt.Round()
	if v.Curve {
		v.C1 = v.C1.Round()
		v.C2 = v.C2.Round()
	}
	return v
}

// Patch is one closed face of a stroke envelope. The first vertex is the
// start point and is always a straight vertex; the patch closes implicitly
// from the last vertex back to the first.
type Patch struct {
	Vertices []Vertex

	// Sampled marks patches built from a sampled point chain (oval and
	// superellipse curves). Reconstruction may refit them with curves.
	Sampled bool

	// Face marks a nib-face outline rather than a swept segment.
	Face bool
}

// PolygonPatch returns a patch of straight vertices through pts.
func PolygonPatch(pts ...Point) Patch {
	vs := make([]Vertex, len(pts))
	for i, p := range pts {
		vs[i] = LineVertex(p)
	}
	return Patch{Vertices: vs}
}

// Len returns the number of vertices.
func (p Patch) Len() int {
	return len(p.Vertices)
}

// Points returns the on-curve points of the patch in order.
func (p Patch) Points() []Point {
	pts := make([]Point, len(p.Vertices))
	for i, v := range p.Vertices {
		pts[i] = v.Pt
	}
	return pts
}

// Transform returns a copy of the patch with m applied to every vertex.
func (p Patch) Transform(m Matrix) Patch {
	out := p
	out.Vertices = make([]Vertex, len(p.Vertices))
	for i, v := range p.Vertices {
		out.Vertices[i] = v.Transform(m)
	}
	return out
}

// Bounds returns the bounding box of all vertices and control points.
// The zero Rect is returned for an empty patch.
func (p Patch) Bounds() Rect {
	if len(p.Vertices) == 0 {
		return Rect{}
	}
	r := Rect{
		Min: Pt(math.Inf(1), math.Inf(1)),
		Max: Pt(math.Inf(-1), math.Inf(-1)),
	}
	for _, v := range p.Vertices {
		r = r.include(v.Pt)
		if v.Curve {
			r = r.include(v.C1).include(v.C2)
		}
	}
	return r
}

// Rect represents an axis-aligned rectangle.
type Rect struct {
	Min, Max Point
}

// Width returns the width of the rectangle.
func (r Rect) Width() float64 {
	return r.Max.X - r.Min.X
}

// Height returns the height of the rectangle.
func (r Rect) Height() float64 {
	return r.Max.Y - r.Min.Y
}

// Union returns the smallest rectangle containing both r and other.
func (r Rect) Union(other Rect) Rect {
	return Rect{
		Min: Point{X: math.Min(r.Min.X, other.Min.X), Y: math.Min(r.Min.Y, other.Min.Y)},
		Max: Point{X: math.Max(r.Max.X, other.Max.X), Y: math.Max(r.Max.Y, other.Max.Y)},
	}
}

func (r Rect) include(p Point) Rect {
	return r.Union(Rect{Min: p, Max: p})
}
