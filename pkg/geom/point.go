package geom

import (
	"math"

	"github.com/chazu/slicecore/pkg/units"
)

// Point is a scaled-integer 2D coordinate.
type Point struct {
	X, Y units.Unit
}

// NewPoint constructs a Point from scaled coordinates.
func NewPoint(x, y units.Unit) Point {
	return Point{X: x, Y: y}
}

// Add returns p+q.
func (p Point) Add(q Point) Point {
	return Point{X: p.X + q.X, Y: p.Y + q.Y}
}

// Sub returns p-q.
func (p Point) Sub(q Point) Point {
	return Point{X: p.X - q.X, Y: p.Y - q.Y}
}

// Scale multiplies both coordinates by f.
func (p Point) Scale(f float64) Point {
	return Point{X: units.Unit(math.Round(float64(p.X) * f)), Y: units.Unit(math.Round(float64(p.Y) * f))}
}

// Dot returns the dot product p·q.
func (p Point) Dot(q Point) float64 {
	return float64(p.X)*float64(q.X) + float64(p.Y)*float64(q.Y)
}

// Cross returns the 2D cross product (z-component) p×q.
func (p Point) Cross(q Point) float64 {
	return float64(p.X)*float64(q.Y) - float64(p.Y)*float64(q.X)
}

// DistanceTo returns the Euclidean distance to q, in scaled units.
func (p Point) DistanceTo(q Point) float64 {
	return math.Sqrt(p.DistanceSqTo(q))
}

// DistanceSqTo returns the squared Euclidean distance to q.
func (p Point) DistanceSqTo(q Point) float64 {
	dx := float64(p.X - q.X)
	dy := float64(p.Y - q.Y)
	return dx*dx + dy*dy
}

// Equal reports whether p and q have identical coordinates.
func (p Point) Equal(q Point) bool {
	return p.X == q.X && p.Y == q.Y
}

// Midpoint returns the midpoint of p and q.
func Midpoint(p, q Point) Point {
	return Point{X: (p.X + q.X) / 2, Y: (p.Y + q.Y) / 2}
}

// Direction returns the angle, in radians, of the vector from p to q.
func Direction(p, q Point) float64 {
	return math.Atan2(float64(q.Y-p.Y), float64(q.X-p.X))
}

// DirectionDegrees returns Direction normalized to [0, 360).
func DirectionDegrees(p, q Point) float64 {
	deg := Direction(p, q) * 180 / math.Pi
	if deg < 0 {
		deg += 360
	}
	return deg
}
