// Package fit approximates a dense polyline with a short chain of cubic
// Bezier curves.
//
// The fitting itself is done by honnef.co/go/curve. This package supplies
// the source curve it needs: Polyline parameterizes a point chain by arc
// length, smooths the tangent across ordinary vertices and reports sharp
// vertices as cusps, so the fitter keeps them as corners.
package fit
