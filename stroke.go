package nib

import (
	"context"
	"errors"
	"fmt"

	"github.com/gogpu/nib/internal/parallel"
)

// StrokeAll strokes independent paths concurrently, each with its own pen
// and model, and returns one trace per path in input order. At most workers
// paths are stroked at once; 0 means GOMAXPROCS.
//
// Per-path diagnostics are returned joined and prefixed with the path index.
// An invalid spec fails before any work starts. When ctx is cancelled,
// paths not yet started are left with empty traces.
func StrokeAll(ctx context.Context, spec Spec, paths [][]PathEvent, workers int, opts ...PenOption) ([]*Trace, error) {
	if err := spec.Validate(); err != nil {
		return nil, err
	}

	traces := make([]*Trace, len(paths))
	errs := make([]error, len(paths))
	jobs := make([]func(), len(paths))
	for i, events := range paths {
		traces[i] = NewTrace()
		jobs[i] = func() {
			if err := ctx.Err(); err != nil {
				errs[i] = err
				return
			}
			pen, err := NewPen(spec, traces[i], opts...)
			if err != nil {
				errs[i] = err
				return
			}
			if err := pen.Stroke(events); err != nil {
				errs[i] = fmt.Errorf("nib: path %d: %w", i, err)
			}
		}
	}

	pool := parallel.NewWorkerPool(min(workers, len(paths)))
	defer pool.Close()
	pool.ExecuteAll(jobs)

	if err := ctx.Err(); err != nil {
		return traces, err
	}
	return traces, errors.Join(errs...)
}
