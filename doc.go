// Package nib strokes vector paths with a calligraphic nib.
//
// # Overview
//
// A broad-edge pen leaves a mark whose width depends on the direction of
// travel. nib reproduces that mark: it walks a path built from lines and
// Bezier curves and, for every segment, computes the outline swept by a
// rotated nib of a given shape. The outline of the whole stroke is the union
// of the resulting patches.
//
// # Quick Start
//
//	spec := nib.Spec{Shape: nib.Rectangle, Angle: math.Pi / 6, Width: 60, Height: 2}
//	trace := nib.NewTrace()
//	pen, err := nib.NewPen(spec, trace)
//	if err != nil {
//	    return err
//	}
//	pen.MoveTo(nib.Pt(0, 0))
//	pen.CurveTo(nib.Pt(50, 100), nib.Pt(150, 100), nib.Pt(200, 0))
//	pen.EndPath()
//
//	outline, err := nib.Reconstruct(trace, nil, nib.ReconstructOptions{})
//	fmt.Println(outline.SVGData())
//
// # Nib Shapes
//
//   - Rectangle: a flat edge. Curves are split where their direction crosses
//     a quadrant of the nib axis and each piece is outlined by joining two
//     corners of the nib with offset copies of the curve.
//   - Oval: an ellipse, offset by its exact tangent point.
//   - Superellipse: a shape between ellipse and rounded rectangle, sampled
//     into a polygon once per pen.
//
// Oval and superellipse curves are sampled along their arc length and the
// two offset chains are joined into one closed polygon.
//
// # Output
//
// Patches go to a Sink. A Trace collects them for Reconstruct, which turns
// them into a Path of closed contours, fitting smooth curves through sampled
// patches. The preview sub-package rasterizes patches directly.
//
// # Coordinate System
//
// Coordinates follow font conventions: y increases upward and angles are in
// radians, counter-clockwise from the positive x axis.
package nib
