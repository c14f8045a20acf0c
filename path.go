package nib

import (
	"math"

	"honnef.co/go/curve"
)

// Path is a recorded sequence of path events. Reconstruct produces one, and
// because Events returns the same event types a Pen consumes, a path can be
// fed straight back into another stroking pass.
type Path struct {
	events  []PathEvent
	start   Point
	current Point
}

// NewPath creates an empty path.
func NewPath() *Path {
	return &Path{events: make([]PathEvent, 0, 16)}
}

// PathOf records events into a new path.
func PathOf(events []PathEvent) *Path {
	p := NewPath()
	for _, e := range events {
		p.Append(e)
	}
	return p
}

// Append records one event. Component references are dropped.
func (p *Path) Append(e PathEvent) {
	switch e := e.(type) {
	case MoveTo:
		p.MoveTo(e.Point)
	case LineTo:
		p.LineTo(e.Point)
	case QuadTo:
		p.QuadTo(e.Control, e.Point)
	case CurveTo:
		p.CurveTo(e.Control1, e.Control2, e.Point)
	case ClosePath:
		p.Close()
	case EndPath:
		p.End()
	}
}

// MoveTo starts a new subpath at pt.
func (p *Path) MoveTo(pt Point) {
	p.events = append(p.events, MoveTo{Point: pt})
	p.start = pt
	p.current = pt
}

// LineTo adds a straight segment to pt.
func (p *Path) LineTo(pt Point) {
	p.events = append(p.events, LineTo{Point: pt})
	p.current = pt
}

// QuadTo adds a quadratic segment.
func (p *Path) QuadTo(ctrl, pt Point) {
	p.events = append(p.events, QuadTo{Control: ctrl, Point: pt})
	p.current = pt
}

// CurveTo adds a cubic segment.
func (p *Path) CurveTo(c1, c2, pt Point) {
	p.events = append(p.events, CurveTo{Control1: c1, Control2: c2, Point: pt})
	p.current = pt
}

// Close closes the current subpath.
func (p *Path) Close() {
	p.events = append(p.events, ClosePath{})
	p.current = p.start
}

// End ends the current subpath open.
func (p *Path) End() {
	p.events = append(p.events, EndPath{})
}

// Events returns the recorded events.
func (p *Path) Events() []PathEvent {
	return p.events
}

// Len returns the number of recorded events.
func (p *Path) Len() int {
	return len(p.events)
}

// CurrentPoint returns the end point of the last event.
func (p *Path) CurrentPoint() Point {
	return p.current
}

// Contours returns the number of subpaths.
func (p *Path) Contours() int {
	n := 0
	for _, e := range p.events {
		if _, ok := e.(MoveTo); ok {
			n++
		}
	}
	return n
}

// AppendPatch adds p as one closed contour.
func (p *Path) AppendPatch(patch Patch) {
	if len(patch.Vertices) == 0 {
		return
	}
	p.MoveTo(patch.Vertices[0].Pt)
	for _, v := range patch.Vertices[1:] {
		p.appendVertex(v)
	}
	p.Close()
}

func (p *Path) appendVertex(v Vertex) {
	if v.Curve {
		p.CurveTo(v.C1, v.C2, v.Pt)
	} else {
		p.LineTo(v.Pt)
	}
}

// Transform returns a copy of the path with m applied to every point.
func (p *Path) Transform(m Matrix) *Path {
	out := NewPath()
	for _, e := range p.events {
		switch e := e.(type) {
		case MoveTo:
			out.MoveTo(m.TransformPoint(e.Point))
		case LineTo:
			out.LineTo(m.TransformPoint(e.Point))
		case QuadTo:
			out.QuadTo(m.TransformPoint(e.Control), m.TransformPoint(e.Point))
		case CurveTo:
			out.CurveTo(m.TransformPoint(e.Control1), m.TransformPoint(e.Control2), m.TransformPoint(e.Point))
		case ClosePath:
			out.Close()
		case EndPath:
			out.End()
		}
	}
	return out
}

// Bounds returns the bounding box of all points, control points included.
func (p *Path) Bounds() Rect {
	r := Rect{
		Min: Pt(math.Inf(1), math.Inf(1)),
		Max: Pt(math.Inf(-1), math.Inf(-1)),
	}
	seen := false
	add := func(pts ...Point) {
		for _, pt := range pts {
			r = r.include(pt)
		}
		seen = true
	}
	for _, e := range p.events {
		switch e := e.(type) {
		case MoveTo:
			add(e.Point)
		case LineTo:
			add(e.Point)
		case QuadTo:
			add(e.Control, e.Point)
		case CurveTo:
			add(e.Control1, e.Control2, e.Point)
		}
	}
	if !seen {
		return Rect{}
	}
	return r
}

// BezPath converts the path to a curve.BezPath. End markers have no
// counterpart there and are dropped.
func (p *Path) BezPath() curve.BezPath {
	bp := make(curve.BezPath, 0, len(p.events))
	for _, e := range p.events {
		switch e := e.(type) {
		case MoveTo:
			bp.MoveTo(curve.Point(e.Point))
		case LineTo:
			bp.LineTo(curve.Point(e.Point))
		case QuadTo:
			bp.QuadTo(curve.Point(e.Control), curve.Point(e.Point))
		case CurveTo:
			bp.CubicTo(curve.Point(e.Control1), curve.Point(e.Control2), curve.Point(e.Point))
		case ClosePath:
			bp.ClosePath()
		}
	}
	return bp
}

// SVGData returns the path in SVG path-data syntax ("M0,0 L10,0 C... Z").
func (p *Path) SVGData() string {
	return p.BezPath().SVG(curve.SVGOptions{})
}
