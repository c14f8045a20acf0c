package nib

import (
	"errors"
	"fmt"
)

// Pen turns path events into stroke-envelope patches for one nib. It keeps
// the current point and subpath start, asks the Model for the geometry of
// every segment and hands each resulting Patch to its Sink.
//
// Geometry problems in a single segment do not stop the pass: the segment is
// skipped and a diagnostic is recorded (see Diagnostics). Methods return the
// same diagnostic so callers may react immediately.
//
// A Pen is not safe for concurrent use. Independent pens may run in parallel.
type Pen struct {
	model Model
	sink  Sink
	opts  penOptions

	open    bool
	start   Point
	current Point
	drawn   int // segments drawn in the current subpath
	index   int // events seen in this pass

	patches int
	diags   []error
}

// NewPen creates a pen stroking with the nib described by spec.
// Only an invalid spec fails construction.
func NewPen(spec Spec, sink Sink, opts ...PenOption) (*Pen, error) {
	if sink == nil {
		return nil, errors.New("nib: nil sink")
	}
	o := defaultPenOptions()
	for _, opt := range opts {
		opt(&o)
	}
	m, err := newModel(spec, o.stroker)
	if err != nil {
		return nil, err
	}
	return &Pen{model: m, sink: sink, opts: o}, nil
}

// Model returns the nib model the pen strokes with.
func (p *Pen) Model() Model { return p.model }

// Patches returns the number of patches emitted so far.
func (p *Pen) Patches() int { return p.patches }

// Diagnostics returns the non-fatal problems recorded during the pass, in
// order. Segment problems are *SegmentError values.
func (p *Pen) Diagnostics() []error { return p.diags }

// Err joins all diagnostics, or returns nil when the pass was clean.
func (p *Pen) Err() error { return errors.Join(p.diags...) }

// MoveTo starts a new subpath at pt. An unfinished subpath is dropped.
func (p *Pen) MoveTo(pt Point) {
	p.index++
	p.open = true
	p.start = pt
	p.current = pt
	p.drawn = 0
	p.face(pt)
}

// LineTo strokes a straight segment from the current point to pt.
func (p *Pen) LineTo(pt Point) error {
	p.index++
	if !p.open {
		return p.fail("line", ErrNoCurrentPoint)
	}
	return p.line(pt)
}

// QuadTo strokes a quadratic segment as its equivalent cubic.
func (p *Pen) QuadTo(ctrl, pt Point) error {
	p.index++
	if !p.open {
		return p.fail("quad", ErrNoCurrentPoint)
	}
	return p.curve("quad", QuadBez{P0: p.current, P1: ctrl, P2: pt}.Raise())
}

// CurveTo strokes a cubic segment from the current point.
func (p *Pen) CurveTo(c1, c2, pt Point) error {
	p.index++
	if !p.open {
		return p.fail("curve", ErrNoCurrentPoint)
	}
	return p.curve("curve", CubicBez{P0: p.current, P1: c1, P2: c2, P3: pt})
}

// ClosePath strokes the closing edge back to the subpath start, when the
// current point is elsewhere, and ends the subpath.
func (p *Pen) ClosePath() error {
	p.index++
	if !p.open {
		return p.fail("close", ErrNoCurrentPoint)
	}
	var err error
	if p.current != p.start {
		err = p.line(p.start)
	}
	if e := p.finish("close"); err == nil {
		err = e
	}
	return err
}

// EndPath ends the subpath without a closing edge.
func (p *Pen) EndPath() error {
	p.index++
	if !p.open {
		return p.fail("end", ErrNoCurrentPoint)
	}
	return p.finish("end")
}

// AddComponent ignores component references; only outlines are stroked.
func (p *Pen) AddComponent(baseName string, transform Matrix) {
	p.index++
	Logger().Debug("nib: component ignored", "base", baseName)
}

// Draw dispatches one path event.
func (p *Pen) Draw(e PathEvent) error {
	switch e := e.(type) {
	case MoveTo:
		p.MoveTo(e.Point)
		return nil
	case LineTo:
		return p.LineTo(e.Point)
	case QuadTo:
		return p.QuadTo(e.Control, e.Point)
	case CurveTo:
		return p.CurveTo(e.Control1, e.Control2, e.Point)
	case ClosePath:
		return p.ClosePath()
	case EndPath:
		return p.EndPath()
	case Component:
		p.AddComponent(e.BaseName, e.Transform)
		return nil
	default:
		return fmt.Errorf("nib: unsupported path event %T", e)
	}
}

// Stroke draws every event of a path in order and returns Err.
func (p *Pen) Stroke(events []PathEvent) error {
	for _, e := range events {
		_ = p.Draw(e) // recorded in diagnostics
	}
	Logger().Info("nib: stroke pass finished",
		"shape", p.model.Spec().Shape,
		"events", len(events),
		"patches", p.patches,
		"diagnostics", len(p.diags))
	return p.Err()
}

func (p *Pen) line(pt Point) error {
	p0 := p.current
	if p0 == pt {
		return p.fail("line", ErrDegenerateSegment)
	}
	patch, err := p.model.LinePatch(p0, pt)
	if err != nil {
		return p.fail("line", err)
	}
	p.emit(patch)
	p.advance(pt)
	return nil
}

func (p *Pen) curve(op string, c CubicBez) error {
	if c.IsDegenerate() {
		return p.fail(op, ErrDegenerateSegment)
	}
	patches, err := p.model.CurvePatches(c)
	for _, patch := range patches {
		p.emit(patch)
	}
	p.advance(c.P3)
	if err != nil {
		return p.fail(op, err)
	}
	return nil
}

func (p *Pen) advance(pt Point) {
	p.current = pt
	p.drawn++
	p.face(pt)
}

func (p *Pen) finish(op string) error {
	p.open = false
	if p.drawn == 0 {
		return p.fail(op, ErrEmptyPath)
	}
	return nil
}

func (p *Pen) emit(patch Patch) {
	p.patches++
	p.sink.StrokePatch(patch)
}

func (p *Pen) face(center Point) {
	if p.opts.showFaces {
		p.emit(p.model.Face(center))
	}
}

// fail records a diagnostic for the current event.
func (p *Pen) fail(op string, err error) error {
	segErr := &SegmentError{Index: p.index - 1, Op: op, Err: err}
	p.diags = append(p.diags, segErr)

	var turn *TurnGeometryError
	if errors.As(err, &turn) {
		Logger().Warn("nib: curve piece skipped", "event", segErr.Index, "q1", turn.Q1, "q2", turn.Q2)
	} else {
		Logger().Debug("nib: segment skipped", "event", segErr.Index, "op", op, "err", err)
	}
	return segErr
}
