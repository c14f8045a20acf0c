package nib

// PathEvent is a single path-construction event delivered by a path source.
// Events of one subpath arrive in order: MoveTo, any number of LineTo,
// QuadTo or CurveTo, then ClosePath or EndPath.
type PathEvent interface {
	isPathEvent()
}

// MoveTo starts a new subpath at Point.
type MoveTo struct {
	Point Point
}

func (MoveTo) isPathEvent() {}

// LineTo draws a straight segment to Point.
type LineTo struct {
	Point Point
}

func (LineTo) isPathEvent() {}

// QuadTo draws a quadratic Bezier segment. Pens stroke it as the equivalent cubic.
type QuadTo struct {
	Control Point
	Point   Point
}

func (QuadTo) isPathEvent() {}

// CurveTo draws a cubic Bezier segment.
type CurveTo struct {
	Control1 Point
	Control2 Point
	Point    Point
}

func (CurveTo) isPathEvent() {}

// ClosePath closes the current subpath with a straight segment back to its start.
type ClosePath struct{}

func (ClosePath) isPathEvent() {}

// EndPath ends the current subpath without a closing segment.
type EndPath struct{}

func (EndPath) isPathEvent() {}

// Component is a reference to another glyph. Pens ignore it.
type Component struct {
	BaseName  string
	Transform Matrix
}

func (Component) isPathEvent() {}
