package nib

import (
	"errors"
	"fmt"

	"honnef.co/go/curve"

	"github.com/gogpu/nib/internal/fit"
)

// Reconstruction defaults.
const (
	DefaultFitError        = 0.5
	DefaultCornerTolerance = 1.0
	DefaultMaxSegments     = 1000
	DefaultFitThreshold    = 4
)

// Fitter approximates a closed point chain with a contour of line and curve
// vertices. The first returned vertex is the contour start.
type Fitter interface {
	Fit(points []Point, errTolerance, cornerTolerance float64, maxSegments int) ([]Vertex, error)
}

// FitterFunc adapts an ordinary function to the Fitter interface.
type FitterFunc func(points []Point, errTolerance, cornerTolerance float64, maxSegments int) ([]Vertex, error)

// Fit calls f.
func (f FitterFunc) Fit(points []Point, errTolerance, cornerTolerance float64, maxSegments int) ([]Vertex, error) {
	return f(points, errTolerance, cornerTolerance, maxSegments)
}

// DefaultFitter returns the cubic fitter of honnef.co/go/curve, run over
// the point chain as a polyline whose sharp vertices are kept as corners.
func DefaultFitter() Fitter {
	return FitterFunc(fitCubics)
}

func fitCubics(points []Point, errTolerance, cornerTolerance float64, maxSegments int) ([]Vertex, error) {
	in := make([]curve.Point, len(points))
	for i, p := range points {
		in[i] = curve.Point(p)
	}
	chain, err := fit.Fit(in, errTolerance, cornerTolerance, maxSegments)
	if err != nil {
		return nil, err
	}
	vs := make([]Vertex, 0, len(chain)+1)
	vs = append(vs, LineVertex(Point(chain[0].P0)))
	for _, c := range chain {
		vs = append(vs, CurveVertex(Point(c.P1), Point(c.P2), Point(c.P3)))
	}
	return vs, nil
}

// ReconstructOptions controls Reconstruct. Zero fields take the defaults.
type ReconstructOptions struct {
	// ErrorTolerance is the largest distance a fitted curve may stray from
	// the sampled chain.
	ErrorTolerance float64
	// CornerTolerance is the turn, in radians, above which the fitter
	// keeps a corner.
	CornerTolerance float64
	// MaxSegments caps the curves per fitted contour.
	MaxSegments int
	// FitThreshold is the vertex count a sampled patch must exceed before
	// it is fitted; smaller patches are copied as polygons.
	FitThreshold int
	// RoundCoords rounds every output coordinate to an integer.
	RoundCoords bool
}

func (o ReconstructOptions) withDefaults() ReconstructOptions {
	if o.ErrorTolerance == 0 {
		o.ErrorTolerance = DefaultFitError
	}
	if o.CornerTolerance == 0 {
		o.CornerTolerance = DefaultCornerTolerance
	}
	if o.MaxSegments == 0 {
		o.MaxSegments = DefaultMaxSegments
	}
	if o.FitThreshold == 0 {
		o.FitThreshold = DefaultFitThreshold
	}
	return o
}

// Reconstruct turns the patches accumulated in tr into a path with one
// closed contour per patch, and empties tr. Sampled patches are refitted
// with f (DefaultFitter when nil).
//
// A patch the fitter rejects is kept as a polygon; the fit errors are
// returned joined, together with the complete path.
func Reconstruct(tr *Trace, f Fitter, opts ReconstructOptions) (*Path, error) {
	if tr == nil || tr.Len() == 0 {
		return nil, ErrEmptyTrace
	}
	if f == nil {
		f = DefaultFitter()
	}
	opts = opts.withDefaults()

	patches := tr.take()
	path := NewPath()
	var errs []error
	fitted := 0
	for i, patch := range patches {
		if patch.Sampled && patch.Len() > opts.FitThreshold {
			vs, err := fitPatch(f, patch, opts)
			if err == nil {
				patch = Patch{Vertices: vs}
				fitted++
			} else {
				errs = append(errs, fmt.Errorf("nib: fit patch %d: %w", i, err))
			}
		}
		if opts.RoundCoords {
			patch = roundPatch(patch)
		}
		path.AppendPatch(patch)
	}

	Logger().Info("nib: trace reconstructed",
		"patches", len(patches),
		"fitted", fitted,
		"events", path.Len())
	return path, errors.Join(errs...)
}

// fitPatch fits the closed chain of patch, returning to its first point.
func fitPatch(f Fitter, patch Patch, opts ReconstructOptions) ([]Vertex, error) {
	pts := patch.Points()
	pts = append(pts, pts[0])
	vs, err := f.Fit(pts, opts.ErrorTolerance, opts.CornerTolerance, opts.MaxSegments)
	if err != nil {
		return nil, err
	}
	if len(vs) == 0 || vs[0].Curve {
		return nil, errors.New("fitter returned no start vertex")
	}
	return vs, nil
}

func roundPatch(p Patch) Patch {
	out := p
	out.Vertices = make([]Vertex, len(p.Vertices))
	for i, v := range p.Vertices {
		out.Vertices[i] = v.Round()
	}
	return out
}
