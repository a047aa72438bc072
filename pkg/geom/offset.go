package geom

import "github.com/chazu/slicecore/pkg/units"

// DefaultSafetyOffsetEps is the default safety-offset epsilon,
// scale(0.1mm), per spec.md §4.1.
var DefaultSafetyOffsetEps = units.Scale(0.1)

// Offset grows (delta > 0) or shrinks (delta < 0) a flat polygon set by
// delta — a Minkowski sum with a disc of radius |delta| (spec.md §4.1).
// A region that collapses entirely under a negative delta yields an
// empty result (spec.md §7, CollapsedOffset); this is the normal
// termination condition for iterative inward offsetting, not an error.
func Offset(polys []Polygon, delta units.Unit) []Polygon {
	return offsetPolygons(polys, delta)
}

// SafetyOffset grows polys by eps and re-unions the result, stabilizing
// near-coincident edges before a Boolean operation (spec.md §4.1).
func SafetyOffset(polys []Polygon, eps units.Unit) []Polygon {
	grown := offsetPolygons(polys, eps)
	return Union(grown)
}
