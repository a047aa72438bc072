package geom

import "github.com/chazu/slicecore/pkg/units"

// ExPolygon is one outer counter-clockwise contour plus zero or more
// clockwise hole contours, all strictly inside the outer contour and
// pairwise non-overlapping (spec.md §3).
type ExPolygon struct {
	Contour Polygon
	Holes   []Polygon
}

// Polygons flattens the ExPolygon into its contour and holes, in the
// form the clipper-backed Boolean/offset kernel consumes: a flat polygon
// set where winding direction alone distinguishes solid from hole.
func (ex ExPolygon) Polygons() []Polygon {
	out := make([]Polygon, 0, 1+len(ex.Holes))
	out = append(out, ex.Contour)
	out = append(out, ex.Holes...)
	return out
}

// Area returns the net area (contour minus holes) in scaled units².
func (ex ExPolygon) Area() float64 {
	area := ex.Contour.Area()
	for _, h := range ex.Holes {
		area += h.Area() // holes are CW, so their signed area is already negative
	}
	return area
}

// IsEmpty reports whether the contour has no usable geometry.
func (ex ExPolygon) IsEmpty() bool {
	return len(ex.Contour) < 3
}

// OffsetEx offsets the contour and holes together as a unit and
// re-unions the result, per spec.md §4.1 ("offsets the ExPolygon as a
// whole, re-unioning the result").
func (ex ExPolygon) OffsetEx(delta units.Unit) []ExPolygon {
	offset := offsetPolygons(ex.Polygons(), delta)
	return UnionEx(offset)
}

// ExPolygonsToPolygons flattens a set of ExPolygons into a flat polygon
// set suitable for feeding back into the Boolean/offset kernel.
func ExPolygonsToPolygons(exs []ExPolygon) []Polygon {
	var out []Polygon
	for _, ex := range exs {
		out = append(out, ex.Polygons()...)
	}
	return out
}

// TotalArea sums Area() over a set of ExPolygons.
func TotalArea(exs []ExPolygon) float64 {
	var total float64
	for _, ex := range exs {
		total += ex.Area()
	}
	return total
}
