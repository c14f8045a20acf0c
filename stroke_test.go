package nib

import (
	"context"
	"errors"
	"strings"
	"testing"
)

func testPaths(n int) [][]PathEvent {
	paths := make([][]PathEvent, n)
	for i := range paths {
		x := float64(i * 10)
		paths[i] = []PathEvent{
			MoveTo{Point: Pt(x, 0)},
			LineTo{Point: Pt(x+50, 0)},
			CurveTo{Control1: Pt(x+80, 0), Control2: Pt(x+80, 30), Point: Pt(x+50, 60)},
			ClosePath{},
		}
	}
	return paths
}

func TestStrokeAllMatchesSequential(t *testing.T) {
	spec := Spec{Shape: Superellipse, Angle: 0.4, Width: 20, Height: 6, Superness: 2.5}
	paths := testPaths(12)

	traces, err := StrokeAll(context.Background(), spec, paths, 4)
	if err != nil {
		t.Fatal(err)
	}
	if len(traces) != len(paths) {
		t.Fatalf("got %d traces, want %d", len(traces), len(paths))
	}
	for i, events := range paths {
		want := strokeTrace(t, spec, events)
		got := traces[i]
		if got.Len() != want.Len() {
			t.Errorf("path %d: %d patches, sequential gives %d", i, got.Len(), want.Len())
			continue
		}
		for j := range want.Patches() {
			gp, wp := got.Patches()[j].Points(), want.Patches()[j].Points()
			if len(gp) != len(wp) || gp[0] != wp[0] {
				t.Errorf("path %d patch %d differs from the sequential pass", i, j)
			}
		}
	}
}

func TestStrokeAllDiagnostics(t *testing.T) {
	spec := Spec{Shape: Oval, Width: 10, Height: 2}
	paths := testPaths(3)
	paths[1] = []PathEvent{MoveTo{Point: Pt(0, 0)}, LineTo{Point: Pt(0, 0)}, EndPath{}}

	traces, err := StrokeAll(context.Background(), spec, paths, 0)
	if !errors.Is(err, ErrDegenerateSegment) || !errors.Is(err, ErrEmptyPath) {
		t.Fatalf("err = %v, want degenerate and empty path diagnostics", err)
	}
	if !strings.HasPrefix(err.Error(), "nib: path 1: ") {
		t.Errorf("err = %q, want it to name the path", err)
	}
	if traces[0].Len() == 0 || traces[2].Len() == 0 {
		t.Error("healthy paths were not stroked")
	}
	if traces[1].Len() != 0 {
		t.Error("broken path produced patches")
	}
}

func TestStrokeAllInvalidSpec(t *testing.T) {
	_, err := StrokeAll(context.Background(), Spec{Shape: Rectangle}, testPaths(2), 2)
	if !errors.Is(err, ErrInvalidNibDimensions) {
		t.Errorf("err = %v, want ErrInvalidNibDimensions", err)
	}
}

func TestStrokeAllCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	traces, err := StrokeAll(ctx, Spec{Shape: Oval, Width: 10, Height: 2}, testPaths(5), 2)
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("err = %v, want context.Canceled", err)
	}
	for i, tr := range traces {
		if tr.Len() != 0 {
			t.Errorf("trace %d stroked after cancellation", i)
		}
	}
}

func TestStrokeAllEmpty(t *testing.T) {
	traces, err := StrokeAll(context.Background(), Spec{Shape: Oval, Width: 10, Height: 2}, nil, 4)
	if err != nil || len(traces) != 0 {
		t.Errorf("StrokeAll(nil) = %v, %v", traces, err)
	}
}
