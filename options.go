package nib

// PenOption configures a Pen during creation.
//
// Example:
//
//	pen, err := nib.NewPen(spec, trace, nib.WithNibFaces(true), nib.WithCurveStep(2))
type PenOption func(*penOptions)

type penOptions struct {
	showFaces bool
	stroker   chainStroker
}

func defaultPenOptions() penOptions {
	return penOptions{stroker: defaultChainStroker()}
}

// WithNibFaces makes the pen emit the nib outline at every node in addition
// to the swept segments.
func WithNibFaces(show bool) PenOption {
	return func(o *penOptions) {
		o.showFaces = show
	}
}

// WithCurveStep sets the arc-length distance between samples when oval and
// superellipse nibs stroke curves. Non-positive values are ignored.
func WithCurveStep(step float64) PenOption {
	return func(o *penOptions) {
		if step > 0 {
			o.stroker.step = step
		}
	}
}

// WithChainTolerance sets the simplification tolerance applied to each side
// of a sampled curve stroke. Negative values are ignored.
func WithChainTolerance(tol float64) PenOption {
	return func(o *penOptions) {
		if tol >= 0 {
			o.stroker.chainTol = tol
		}
	}
}

// WithStitchTolerance sets the simplification tolerance applied to the joined
// outline of a sampled curve stroke. Negative values are ignored.
func WithStitchTolerance(tol float64) PenOption {
	return func(o *penOptions) {
		if tol >= 0 {
			o.stroker.stitchTol = tol
		}
	}
}
