package surface

import (
	"github.com/samber/lo"

	"github.com/chazu/slicecore/pkg/flow"
	"github.com/chazu/slicecore/pkg/geom"
	"github.com/chazu/slicecore/pkg/units"
)

// ThinWalls holds the medial-axis output of SurfaceBuilder: open
// branches as polylines, fully closed skeletons as polygons
// (spec.md §4.1, medial_axis's two result shapes).
type ThinWalls struct {
	Polylines []geom.Polyline
	Closed    []geom.Polygon
}

// Build runs make_surfaces (spec.md §4.3): merge the raw slicing loops,
// inset them by the perimeter flow's half-width to produce the printable
// "slices", and separately extract thin walls — features too narrow to
// host even one perimeter loop.
func Build(loops []geom.Polygon, perimeterFlow flow.Flow) (slices []Surface, walls ThinWalls) {
	original := MergeLoops(loops)
	if len(original) == 0 {
		return nil, ThinWalls{}
	}

	d := perimeterFlow.ScaledWidth() / 2

	slices = buildSlices(original, d)
	walls = extractThinWalls(original, slices, perimeterFlow, d)
	return slices, walls
}

// buildSlices applies the double offset (-2d, +d): erase anything
// narrower than 2d, then grow what remains back to an inset of -d from
// the original (spec.md §4.3 step 2).
func buildSlices(original []Surface, d units.Unit) []Surface {
	polys := surfacePolygons(original)
	eroded := geom.Offset(polys, -2*d)
	if len(eroded) == 0 {
		return nil
	}
	regrown := geom.Offset(eroded, d)
	merged := geom.UnionEx(regrown)

	out := make([]Surface, 0, len(merged))
	for _, ex := range merged {
		out = append(out, New(ex, Internal))
	}
	return out
}

// extractThinWalls recovers the features buildSlices erased: grow the
// slices back to original scale, subtract from the original surfaces,
// and trace the medial axis of whatever survives (spec.md §4.3 step 3).
func extractThinWalls(original, slices []Surface, perimeterFlow flow.Flow, d units.Unit) ThinWalls {
	slicePolys := surfacePolygons(slices)
	outgrown := geom.Offset(geom.Union(slicePolys), d)

	diff := geom.DiffEx(surfacePolygons(original), outgrown, true)

	minArea := float64(perimeterFlow.ScaledSpacing()) * float64(perimeterFlow.ScaledSpacing())
	survivors := lo.Filter(diff, func(ex geom.ExPolygon, _ int) bool {
		return ex.Contour.Area() > minArea
	})

	var walls ThinWalls
	for _, ex := range survivors {
		polylines, closed := geom.MedialAxis(ex, perimeterFlow.ScaledWidth())
		walls.Polylines = append(walls.Polylines, polylines...)
		walls.Closed = append(walls.Closed, closed...)
	}
	return walls
}

func surfacePolygons(surfaces []Surface) []geom.Polygon {
	var out []geom.Polygon
	for _, s := range surfaces {
		out = append(out, s.ExPolygon.Polygons()...)
	}
	return out
}
