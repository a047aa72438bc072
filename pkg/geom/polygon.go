package geom

import (
	clipper "github.com/ctessum/go.clipper"

	"github.com/chazu/slicecore/pkg/units"
)

// Polygon is an ordered, implicitly-closed sequence of points with no
// duplicate consecutive points. Counter-clockwise winding marks an outer
// contour; clockwise marks a hole (spec.md §3).
type Polygon []Point

// Area returns the signed area in scaled units², positive for CCW
// winding, negative for CW.
func (p Polygon) Area() float64 {
	return clipper.Area(toClipperPath(p))
}

// Length returns the perimeter length in scaled units (the polygon is
// treated as implicitly closed).
func (p Polygon) Length() float64 {
	if len(p) < 2 {
		return 0
	}
	var total float64
	for i := range p {
		j := (i + 1) % len(p)
		total += p[i].DistanceTo(p[j])
	}
	return total
}

// IsCounterClockwise reports whether the polygon winds counter-clockwise.
func (p Polygon) IsCounterClockwise() bool {
	return clipper.Orientation(toClipperPath(p))
}

// Reversed returns a copy of p with its winding order flipped.
func (p Polygon) Reversed() Polygon {
	out := make(Polygon, len(p))
	for i, pt := range p {
		out[len(p)-1-i] = pt
	}
	return out
}

// EnclosesPoint reports whether pt lies inside or on the boundary of p.
func (p Polygon) EnclosesPoint(pt Point) bool {
	ip := &clipper.IntPoint{X: clipper.CInt(pt.X), Y: clipper.CInt(pt.Y)}
	return clipper.PointInPolygon(ip, toClipperPath(p)) != 0
}

// BoundingBox returns the axis-aligned min/max corners of p.
func (p Polygon) BoundingBox() (min, max Point) {
	if len(p) == 0 {
		return Point{}, Point{}
	}
	min, max = p[0], p[0]
	for _, pt := range p[1:] {
		if pt.X < min.X {
			min.X = pt.X
		}
		if pt.Y < min.Y {
			min.Y = pt.Y
		}
		if pt.X > max.X {
			max.X = pt.X
		}
		if pt.Y > max.Y {
			max.Y = pt.Y
		}
	}
	return min, max
}

// IsDegenerate reports whether p has fewer than 3 distinct points
// (spec.md §7, DegenerateLoop).
func (p Polygon) IsDegenerate() bool {
	if len(p) < 3 {
		return true
	}
	seen := make(map[Point]struct{}, len(p))
	for _, pt := range p {
		seen[pt] = struct{}{}
	}
	return len(seen) < 3
}

// Centroid returns the area-weighted centroid of p.
func (p Polygon) Centroid() Point {
	if len(p) == 0 {
		return Point{}
	}
	var cx, cy, area float64
	for i := range p {
		j := (i + 1) % len(p)
		cross := p[i].Cross(p[j])
		cx += (float64(p[i].X) + float64(p[j].X)) * cross
		cy += (float64(p[i].Y) + float64(p[j].Y)) * cross
		area += cross
	}
	if area == 0 {
		return p[0]
	}
	area *= 0.5
	cx /= 6 * area
	cy /= 6 * area
	return Point{X: units.Unit(cx), Y: units.Unit(cy)}
}

// Offset grows (delta > 0) or shrinks (delta < 0) p by delta, returning
// the resulting set of polygons (an offset may split into several
// pieces, or collapse to none — spec.md §7, CollapsedOffset).
func (p Polygon) Offset(delta units.Unit) []Polygon {
	return offsetPolygons([]Polygon{p}, delta)
}
