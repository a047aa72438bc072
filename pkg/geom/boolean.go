package geom

import clipper "github.com/ctessum/go.clipper"

// UnionEx unions one or more flat polygon sets and returns well-formed
// ExPolygons, with holes re-associated to their owning contour via
// clipper's own PolyTree (spec.md §4.1, union_ex).
func UnionEx(sets ...[]Polygon) []ExPolygon {
	var subject []Polygon
	for _, s := range sets {
		subject = append(subject, s...)
	}
	if len(subject) == 0 {
		return nil
	}
	tree := booleanOpTree(clipper.CtUnion, subject, nil)
	return polyTreeToExPolygons(tree)
}

// DiffEx returns a well-formed ExPolygon set for A minus B. When safety
// is true, A is grown by a small epsilon first (see SafetyOffset) to
// absorb near-coincident edges before the Boolean runs, per spec.md §4.1
// ("diff_ex(A, B, safety=true) applies safety_offset first") — see
// DESIGN.md for why A, specifically, is the operand stabilized.
func DiffEx(a, b []Polygon, safety bool) []ExPolygon {
	if safety {
		a = SafetyOffset(a, DefaultSafetyOffsetEps)
	}
	if len(a) == 0 {
		return nil
	}
	tree := booleanOpTree(clipper.CtDifference, a, b)
	return polyTreeToExPolygons(tree)
}

// IntersectionEx returns a well-formed ExPolygon set for A intersected
// with B.
func IntersectionEx(a, b []Polygon) []ExPolygon {
	if len(a) == 0 || len(b) == 0 {
		return nil
	}
	tree := booleanOpTree(clipper.CtIntersection, a, b)
	return polyTreeToExPolygons(tree)
}

// Union is the flat-polygon variant of UnionEx, for callers (like
// SafetyOffset) that only need the outer contours+holes as a polygon
// set, not contour/hole pairing.
func Union(sets ...[]Polygon) []Polygon {
	return ExPolygonsToPolygons(UnionEx(sets...))
}

// Diff is the flat-polygon variant of DiffEx.
func Diff(a, b []Polygon, safety bool) []Polygon {
	return ExPolygonsToPolygons(DiffEx(a, b, safety))
}

// Intersection is the flat-polygon variant of IntersectionEx.
func Intersection(a, b []Polygon) []Polygon {
	return ExPolygonsToPolygons(IntersectionEx(a, b))
}
