package geom

import (
	clipper "github.com/ctessum/go.clipper"

	"github.com/chazu/slicecore/pkg/units"
)

// toClipperPath converts a Polygon or Polyline into a clipper.Path.
func toClipperPath(pts []Point) clipper.Path {
	path := make(clipper.Path, len(pts))
	for i, p := range pts {
		path[i] = &clipper.IntPoint{X: clipper.CInt(p.X), Y: clipper.CInt(p.Y)}
	}
	return path
}

// fromClipperPath converts a clipper.Path back into a slice of Points.
func fromClipperPath(path clipper.Path) []Point {
	pts := make([]Point, len(path))
	for i, ip := range path {
		pts[i] = Point{X: units.Unit(ip.X), Y: units.Unit(ip.Y)}
	}
	return pts
}

// polygonsToClipperPaths converts a set of Polygons into clipper.Paths.
func polygonsToClipperPaths(polys []Polygon) clipper.Paths {
	paths := make(clipper.Paths, len(polys))
	for i, p := range polys {
		paths[i] = toClipperPath(p)
	}
	return paths
}

// clipperPathsToPolygons converts clipper.Paths into Polygons, dropping
// any degenerate (< 3 point) results — see spec.md §7, DegenerateLoop.
func clipperPathsToPolygons(paths clipper.Paths) []Polygon {
	polys := make([]Polygon, 0, len(paths))
	for _, path := range paths {
		if len(path) < 3 {
			continue
		}
		polys = append(polys, Polygon(fromClipperPath(path)))
	}
	return polys
}

// booleanOp runs a single clipper Boolean pass over subject and clip
// polygon sets using the non-zero winding rule on both sides, which is
// what lets CCW contours and CW holes combine correctly without a
// separate even-odd pass.
func booleanOp(clipType clipper.ClipType, subject, clip []Polygon) []Polygon {
	c := clipper.NewClipper(clipper.IoNone)
	if len(subject) > 0 {
		c.AddPaths(polygonsToClipperPaths(subject), clipper.PtSubject, true)
	}
	if len(clip) > 0 {
		c.AddPaths(polygonsToClipperPaths(clip), clipper.PtClip, true)
	}
	solution, ok := c.Execute1(clipType, clipper.PftNonZero, clipper.PftNonZero)
	if !ok {
		return nil
	}
	return clipperPathsToPolygons(solution)
}

// booleanOpTree is like booleanOp but returns a clipper.PolyTree so
// callers can recover contour/hole nesting directly instead of
// re-deriving it from orientation and point-in-polygon tests.
func booleanOpTree(clipType clipper.ClipType, subject, clip []Polygon) *clipper.PolyTree {
	c := clipper.NewClipper(clipper.IoNone)
	if len(subject) > 0 {
		c.AddPaths(polygonsToClipperPaths(subject), clipper.PtSubject, true)
	}
	if len(clip) > 0 {
		c.AddPaths(polygonsToClipperPaths(clip), clipper.PtClip, true)
	}
	tree, ok := c.Execute2(clipType, clipper.PftNonZero, clipper.PftNonZero)
	if !ok {
		return nil
	}
	return tree
}

// polyTreeToExPolygons walks every node of a clipper.PolyTree, pairing
// each outer contour (including islands nested inside holes) with its
// direct hole children, the same nesting clipper itself already
// computed.
func polyTreeToExPolygons(tree *clipper.PolyTree) []ExPolygon {
	if tree == nil {
		return nil
	}
	var result []ExPolygon
	for node := tree.GetFirst(); node != nil; node = node.GetNext() {
		if node.IsHole() {
			continue
		}
		contour := Polygon(fromClipperPath(node.Contour()))
		if len(contour) < 3 {
			continue
		}
		if !contour.IsCounterClockwise() {
			contour = contour.Reversed()
		}
		ex := ExPolygon{Contour: contour}
		for _, child := range node.Childs() {
			if !child.IsHole() {
				continue
			}
			hole := Polygon(fromClipperPath(child.Contour()))
			if len(hole) < 3 {
				continue
			}
			if hole.IsCounterClockwise() {
				hole = hole.Reversed()
			}
			ex.Holes = append(ex.Holes, hole)
		}
		result = append(result, ex)
	}
	return result
}

// offsetPolygons runs a single ClipperOffset pass with a miter join and
// closed-polygon ends, which is the offset behavior spec.md §4.1 assumes
// throughout (no arc/round joins called for at any offset site).
func offsetPolygons(polys []Polygon, delta units.Unit) []Polygon {
	if len(polys) == 0 {
		return nil
	}
	co := clipper.NewClipperOffset()
	co.AddPaths(polygonsToClipperPaths(polys), clipper.JtMiter, clipper.EtClosedPolygon)
	solution := co.Execute(float64(delta))
	return clipperPathsToPolygons(solution)
}
