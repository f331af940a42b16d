// Package geom holds the small amount of planar geometry the web needs:
// points, linear interpolation, and the shape descriptors handed to a
// render sink.
//
// Coordinates are continuous (float64). The web is centered at Origin
// unless a caller supplies another center.
package geom

import (
	"fmt"
	"math"
)

// Point is a position on the plane.
type Point struct {
	X float64
	Y float64
}

// Origin is the default web center.
var Origin = Point{}

// Pt is shorthand for Point{X: x, Y: y}.
func Pt(x, y float64) Point { return Point{X: x, Y: y} }

// Add returns p+q.
func (p Point) Add(q Point) Point { return Point{X: p.X + q.X, Y: p.Y + q.Y} }

// Sub returns p-q.
func (p Point) Sub(q Point) Point { return Point{X: p.X - q.X, Y: p.Y - q.Y} }

// Scale returns p·k.
func (p Point) Scale(k float64) Point { return Point{X: p.X * k, Y: p.Y * k} }

// Dist returns the Euclidean distance between p and q.
func (p Point) Dist(q Point) float64 { return math.Hypot(p.X-q.X, p.Y-q.Y) }

// Lerp returns the point at fraction t along the segment a→b.
// t is not clamped; callers validate it when the domain requires [0,1].
func Lerp(a, b Point, t float64) Point {
	return Point{X: a.X + (b.X-a.X)*t, Y: a.Y + (b.Y-a.Y)*t}
}

// Polar returns center + r·(cos θ, sin θ).
func Polar(center Point, r, theta float64) Point {
	return Point{X: center.X + r*math.Cos(theta), Y: center.Y + r*math.Sin(theta)}
}

// Near reports whether p and q are within eps of each other on both axes.
func (p Point) Near(q Point, eps float64) bool {
	return math.Abs(p.X-q.X) <= eps && math.Abs(p.Y-q.Y) <= eps
}

func (p Point) String() string { return fmt.Sprintf("[%.2f, %.2f]", p.X, p.Y) }
