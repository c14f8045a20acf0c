package nib

import (
	"math"
	"sort"
)

// SolveQuadratic finds real roots of the quadratic equation ax^2 + bx + c = 0.
// Returns roots sorted in ascending order.
//
// The function is numerically robust:
//   - If a is zero or nearly zero, treats as linear equation
//   - If all coefficients are zero, returns a single 0.0
//   - Handles edge cases with NaN and Inf gracefully
func SolveQuadratic(a, b, c float64) []float64 {
	// Scale coefficients to avoid overflow in discriminant calculation
	sc0 := c / a
	sc1 := b / a

	if !isFinite(sc0) || !isFinite(sc1) {
		return solveLinear(b, c)
	}

	arg := sc1*sc1 - 4.0*sc0
	if !isFinite(arg) {
		// Discriminant overflow: one root from sc1*x + x^2 = 0, the other
		// from the product of the roots.
		return sortedPair(-sc1, sc0/-sc1)
	}
	if arg < 0.0 {
		return nil
	}
	if arg == 0.0 {
		return []float64{-0.5 * sc1}
	}

	// Numerically stable form, avoids cancellation.
	root1 := -0.5 * (sc1 + math.Copysign(math.Sqrt(arg), sc1))
	return sortedPair(root1, sc0/root1)
}

func sortedPair(root1, root2 float64) []float64 {
	if !isFinite(root2) {
		return []float64{root1}
	}
	if root1 > root2 {
		return []float64{root2, root1}
	}
	return []float64{root1, root2}
}

// solveLinear handles the case when a is zero or very small.
func solveLinear(b, c float64) []float64 {
	root := -c / b
	if isFinite(root) {
		return []float64{root}
	}
	if c == 0.0 && b == 0.0 {
		return []float64{0.0}
	}
	return nil
}

// rootMergeDistance is the parameter distance below which two roots are
// treated as one split point, or a root as lying on a segment end.
const rootMergeDistance = 1e-9

// interiorRoots returns the sorted, de-duplicated roots that lie strictly
// inside (0, 1). Roots at the segment ends, up to rootMergeDistance, never
// cause a split.
func interiorRoots(roots []float64) []float64 {
	var result []float64
	for _, r := range roots {
		if r > rootMergeDistance && r < 1-rootMergeDistance {
			result = append(result, r)
		}
	}
	if len(result) < 2 {
		return result
	}
	sort.Float64s(result)
	uniq := result[:1]
	for _, r := range result[1:] {
		if r-uniq[len(uniq)-1] > rootMergeDistance {
			uniq = append(uniq, r)
		}
	}
	return uniq
}

// isFinite returns true if x is neither infinite nor NaN.
func isFinite(x float64) bool {
	return !math.IsInf(x, 0) && !math.IsNaN(x)
}
