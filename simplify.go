package nib

// DefaultSimplifyTolerance is the deviation OptimizePointPath accepts when
// the caller has no better value.
const DefaultSimplifyTolerance = 0.49

// OptimizePointPath thins out a dense point sequence. A point survives when
// its neighbour chord lies farther than tolerance from the current anchor;
// everything else is dropped. The first and last points are always kept.
//
// This is a greedy single forward pass, not Douglas-Peucker. When a point is
// kept, the anchor moves to the point *before* it (points[i]), not to the
// kept point itself. Existing outlines depend on that exact behaviour, so it
// is reproduced as is. As a consequence the function is not idempotent.
func OptimizePointPath(points []Point, tolerance float64) []Point {
	n := len(points)
	if n < 2 {
		return append([]Point(nil), points...)
	}

	anchor := points[0]
	kept := []Point{anchor}
	for i := 0; i < n-2; i++ {
		p1 := points[i+1]
		p2 := points[i+2]
		if TriangleAltitude(anchor, p2, p1) > tolerance {
			kept = append(kept, p1)
			anchor = points[i]
		}
	}
	return append(kept, points[n-1])
}
