package nib

import (
	"fmt"
	"math"
	"strings"
)

// Shape identifies a nib model.
type Shape int

const (
	// Rectangle is a flat, broad-edge nib.
	Rectangle Shape = iota
	// Oval is an elliptical nib.
	Oval
	// Superellipse is a nib between an ellipse and a rounded rectangle,
	// controlled by Spec.Superness.
	Superellipse
)

// String returns the shape name as hosts display it.
func (s Shape) String() string {
	switch s {
	case Rectangle:
		return "Rectangle"
	case Oval:
		return "Oval"
	case Superellipse:
		return "Superellipse"
	default:
		return fmt.Sprintf("Shape(%d)", int(s))
	}
}

// ParseShape maps a host shape name (case-insensitive) to a Shape.
func ParseShape(name string) (Shape, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "rectangle", "rect":
		return Rectangle, nil
	case "oval", "ellipse":
		return Oval, nil
	case "superellipse":
		return Superellipse, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownShape, name)
}

// Spec describes a nib for one stroking pass.
type Spec struct {
	Shape Shape
	// Angle is the nib rotation in radians relative to the x axis.
	Angle float64
	// Width and Height are the full nib dimensions along and across the
	// nib axis. Height <= Width is conventional but not required.
	Width, Height float64
	// Superness is the superellipse exponent; 2 is a true ellipse. Only
	// used by the Superellipse shape.
	Superness float64
}

// Validate checks the nib dimensions.
func (s Spec) Validate() error {
	if !(s.Width > 0) || !(s.Height > 0) {
		return fmt.Errorf("%w (width=%g, height=%g)", ErrInvalidNibDimensions, s.Width, s.Height)
	}
	switch s.Shape {
	case Rectangle, Oval:
	case Superellipse:
		if !(s.Superness >= 1) {
			return fmt.Errorf("%w (superness=%g)", ErrInvalidSuperness, s.Superness)
		}
	default:
		return fmt.Errorf("%w: %v", ErrUnknownShape, s.Shape)
	}
	return nil
}

// NormalizeNibAngle folds angle into [-π, π] by steps of π. Nib shapes are
// point-symmetric, so the fold does not change the nib.
func NormalizeNibAngle(angle float64) float64 {
	for angle > math.Pi {
		angle -= math.Pi
	}
	for angle < -math.Pi {
		angle += math.Pi
	}
	return angle
}

// semiAxes returns half the nib width and height.
func (s Spec) semiAxes() (a, b float64) {
	return 0.5 * s.Width, 0.5 * s.Height
}

// Model is the shape-specific half of a stroking engine. The Pen walks the
// path and asks the model for the geometry of each segment.
//
// Models may memoize internal state between calls and are not safe for
// concurrent use.
type Model interface {
	// Spec returns the nib the model was built for, with a normalized angle.
	Spec() Spec

	// TangentOffset returns the vector from the path centre to the nib
	// outline point whose tangent is parallel to the travel direction
	// (radians). The opposite side is the negated vector.
	TangentOffset(direction float64) Point

	// LinePatch returns the envelope of the nib swept from p0 to p1.
	LinePatch(p0, p1 Point) (Patch, error)

	// CurvePatches returns the envelope of the nib swept along c.
	CurvePatches(c CubicBez) ([]Patch, error)

	// Face returns the nib outline centred at center.
	Face(center Point) Patch
}

// NewModel builds the model for spec. The spec is validated and its angle
// normalized; precomputed shape data is built once here.
func NewModel(spec Spec) (Model, error) {
	return newModel(spec, defaultChainStroker())
}

func newModel(spec Spec, cs chainStroker) (Model, error) {
	if err := spec.Validate(); err != nil {
		return nil, err
	}
	spec.Angle = NormalizeNibAngle(spec.Angle)
	switch spec.Shape {
	case Rectangle:
		return newRectModel(spec), nil
	case Oval:
		return newOvalModel(spec, cs), nil
	default:
		return newSuperellipseModel(spec, cs), nil
	}
}
