package nib

import "math"

// Point represents a 2D point or vector.
type Point struct {
	X, Y float64
}

// Pt is a convenience function to create a Point.
func Pt(x, y float64) Point {
	return Point{X: x, Y: y}
}

// Add returns the sum of two points (vector addition).
func (p Point) Add(q Point) Point {
	return Point{X: p.X + q.X, Y: p.Y + q.Y}
}

// Sub returns the difference of two points (vector subtraction).
func (p Point) Sub(q Point) Point {
	return Point{X: p.X - q.X, Y: p.Y - q.Y}
}

// Mul returns the point scaled by a scalar.
func (p Point) Mul(s float64) Point {
	return Point{X: p.X * s, Y: p.Y * s}
}

// Neg returns the point mirrored through the origin.
func (p Point) Neg() Point {
	return Point{X: -p.X, Y: -p.Y}
}

// Length returns the length of the vector.
func (p Point) Length() float64 {
	return math.Hypot(p.X, p.Y)
}

// Distance returns the distance between two points.
func (p Point) Distance(q Point) float64 {
	return Distance(p, q)
}

// Rotate returns the point rotated by angle radians around the origin.
func (p Point) Rotate(angle float64) Point {
	sin, cos := math.Sincos(angle)
	return Point{
		X: p.X*cos - p.Y*sin,
		Y: p.X*sin + p.Y*cos,
	}
}

// Lerp performs linear interpolation between two points.
// t=0 returns p, t=1 returns q, intermediate values interpolate.
func (p Point) Lerp(q Point, t float64) Point {
	return Point{
		X: p.X + (q.X-p.X)*t,
		Y: p.Y + (q.Y-p.Y)*t,
	}
}

// Round returns the point with both coordinates rounded to the nearest integer.
func (p Point) Round() Point {
	return Point{X: math.Round(p.X), Y: math.Round(p.Y)}
}

// AngleBetween returns the direction of travel from p0 to p1 in radians,
// in the range [-π, π].
func AngleBetween(p0, p1 Point) float64 {
	return math.Atan2(p1.Y-p0.Y, p1.X-p0.X)
}

// Distance returns the euclidean distance between two points.
func Distance(p0, p1 Point) float64 {
	return math.Sqrt((p0.X-p1.X)*(p0.X-p1.X) + (p0.Y-p1.Y)*(p0.Y-p1.Y))
}

// Midpoint returns the point halfway between p0 and p1.
func Midpoint(p0, p1 Point) Point {
	return Point{X: 0.5 * (p0.X + p1.X), Y: 0.5 * (p0.Y + p1.Y)}
}

// TriangleAltitude returns the height of triangle ABC over side a (BC),
// i.e. the perpendicular distance from a to the line through b and c.
//
// The height is derived from the side lengths with Heron's formula. It is
// 0 when the points are colinear or when b and c coincide.
func TriangleAltitude(a, b, c Point) float64 {
	sa := Distance(b, c)
	if sa == 0 {
		return 0
	}
	sb := Distance(a, c)
	sc := Distance(a, b)
	s := (sa + sb + sc) / 2
	area2 := s * (s - sa) * (s - sb) * (s - sc)
	if area2 <= 0 {
		return 0
	}
	return 2 * math.Sqrt(area2) / sa
}
