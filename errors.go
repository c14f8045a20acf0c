package nib

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidNibDimensions is returned when a nib width or height is not positive.
	ErrInvalidNibDimensions = errors.New("nib: nib width and height must be positive")

	// ErrInvalidSuperness is returned when a superellipse nib has superness below 1.
	ErrInvalidSuperness = errors.New("nib: superness must be at least 1")

	// ErrUnknownShape is returned for a shape name or value outside the supported set.
	ErrUnknownShape = errors.New("nib: unknown nib shape")

	// ErrDegenerateSegment marks a segment whose direction of travel is undefined.
	ErrDegenerateSegment = errors.New("nib: degenerate segment")

	// ErrUnsupportedTurnGeometry marks a rectangle-nib curve whose start and
	// end directions fall into a quadrant pair the stitching table does not cover.
	ErrUnsupportedTurnGeometry = errors.New("nib: unsupported turn geometry")

	// ErrEmptyPath marks a subpath that ended without drawing a segment.
	ErrEmptyPath = errors.New("nib: empty subpath")

	// ErrNoCurrentPoint is returned when a drawing event arrives outside a subpath.
	ErrNoCurrentPoint = errors.New("nib: no current point")

	// ErrEmptyTrace is returned when reconstructing a trace without patches.
	ErrEmptyTrace = errors.New("nib: trace has no patches")
)

// TurnGeometryError reports the quadrant pair of a curve the rectangle nib
// cannot stitch. Q1 and Q2 are the start and end directions in units of π,
// relative to the nib axis.
type TurnGeometryError struct {
	Q1, Q2 float64
}

func (e *TurnGeometryError) Error() string {
	return fmt.Sprintf("nib: unsupported turn geometry (Q1=%g, Q2=%g)", e.Q1, e.Q2)
}

// Unwrap returns ErrUnsupportedTurnGeometry.
func (e *TurnGeometryError) Unwrap() error {
	return ErrUnsupportedTurnGeometry
}

// SegmentError is a per-segment diagnostic recorded by a Pen. The segment
// was skipped; stroking continued with the next event.
type SegmentError struct {
	// Index is the position of the offending event in the pass, counting
	// from zero across all subpaths.
	Index int
	// Op names the event kind ("line", "curve", "close", ...).
	Op  string
	Err error
}

func (e *SegmentError) Error() string {
	return fmt.Sprintf("nib: %s segment %d: %v", e.Op, e.Index, e.Err)
}

func (e *SegmentError) Unwrap() error {
	return e.Err
}
