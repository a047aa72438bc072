// Package perimeter implements PerimeterGenerator, the make_perimeters
// stage (spec.md §4.4): nested inward offsetting per island, gap
// detection and fill, island/hole ordering, and role assignment.
package perimeter

import (
	"github.com/chazu/slicecore/pkg/config"
	"github.com/chazu/slicecore/pkg/extrusion"
	"github.com/chazu/slicecore/pkg/fillpattern"
	"github.com/chazu/slicecore/pkg/flow"
	"github.com/chazu/slicecore/pkg/geom"
	"github.com/chazu/slicecore/pkg/surface"
	"github.com/chazu/slicecore/pkg/units"
)

// Result is everything PerimeterGenerator produces from one region's
// slices: the ordered perimeter sequence (loops and, for thin walls,
// paths), the fill boundary for each island (pre-classification), and
// the gap-fill extrusion paths.
type Result struct {
	Perimeters   []extrusion.Extrusion
	FillSurfaces []surface.Surface
	ThinFills    []extrusion.Path
}

// islandDepths is the per-island trace of offset generations: depth 0
// is the island's own ExPolygon, depth k is the k-th inward offset.
type islandDepths struct {
	offsets [][]geom.ExPolygon
	gaps    []geom.ExPolygon
}

// Generate runs PerimeterGenerator over a region's slices, producing
// perimeter loops, thin-wall routing, gap fill, and the fill boundary
// each island leaves behind for FillClassifier.
func Generate(
	slices []surface.Surface,
	walls surface.ThinWalls,
	perimeterFlow flow.Flow,
	cfg config.Config,
	layerID int,
	height units.Unit,
	pattern fillpattern.Pattern,
) Result {
	var result Result

	order := orderIslands(slices)
	for _, i := range order {
		island := slices[i]
		depths := traceDepths(island.ExPolygon, perimeterFlow, cfg.Perimeters+island.AdditionalInnerPerimeters, cfg.Features)

		for _, loop := range emitIsland(depths, perimeterFlow) {
			result.Perimeters = append(result.Perimeters, loop)
		}

		boundary := fillBoundary(depths, perimeterFlow)
		for _, ex := range boundary {
			result.FillSurfaces = append(result.FillSurfaces, surface.New(ex, surface.Internal))
		}

		if cfg.GapFillEnabled() {
			paths := fillGaps(depths.gaps, perimeterFlow, height, pattern, cfg.Features)
			result.ThinFills = append(result.ThinFills, paths...)
		}
	}

	for _, p := range ThinWallPaths(walls, perimeterFlow, height) {
		result.Perimeters = append(result.Perimeters, p)
	}

	if layerID == 0 && cfg.BrimWidth > 0 {
		reversePerimeters(result.Perimeters)
	}

	return result
}

// orderIslands returns a greedy nearest-neighbor travel order over the
// islands' first contour point, starting from the origin (spec.md §4.4).
func orderIslands(slices []surface.Surface) []int {
	points := make([]geom.Point, len(slices))
	for i, s := range slices {
		if len(s.ExPolygon.Contour) > 0 {
			points[i] = s.ExPolygon.Contour[0]
		}
	}
	return orderByNearestNeighbor(points)
}

// traceDepths runs the nested inward-offset loop of spec.md §4.4 steps
// 1-3: depth 0 is the island itself; depths 1..N-1 are successive -s
// insets (erased-and-regrown to kill sub-spacing bridges), giving N
// emitted loops total; depth N is computed only to run gap detection one
// inset past the last real loop, and is not added to the emitted depths.
//
// With config.Features.ArcCompensation enabled, each inset's spacing is
// widened via arcCompensatedSpacing when the loop being inset from is
// shorter than SmallPerimeterLength.
func traceDepths(start geom.ExPolygon, f flow.Flow, n int, features config.Features) islandDepths {
	s := f.ScaledSpacing()
	widthSq := float64(f.ScaledWidth()) * float64(f.ScaledWidth())

	depths := islandDepths{offsets: [][]geom.ExPolygon{{start}}}
	last := []geom.ExPolygon{start}

	for depth := 1; depth <= n; depth++ {
		var next []geom.ExPolygon
		for _, e := range last {
			effectiveS := arcCompensatedSpacing(features, s, units.Unit(e.Contour.Length()))
			halfS := effectiveS / 2
			threeHalvesS := effectiveS + halfS

			inset := geom.Offset(e.Polygons(), -threeHalvesS)
			regrown := geom.UnionEx(geom.Offset(inset, halfS))

			shrunkOriginal := e.OffsetEx(-halfS)
			grownNext := geom.Offset(geom.ExPolygonsToPolygons(regrown), halfS)
			gap := geom.DiffEx(geom.ExPolygonsToPolygons(shrunkOriginal), grownNext, false)
			for _, g := range gap {
				if g.Contour.Area() >= widthSq {
					depths.gaps = append(depths.gaps, g)
				}
			}

			next = append(next, regrown...)
		}
		if depth < n {
			depths.offsets = append(depths.offsets, next)
		}
		last = next
		if len(next) == 0 || depth == n {
			break
		}
	}
	return depths
}

// fillBoundary computes the final inward pass of spec.md §4.4 step 4:
// one more -s inset (via the same erase/regrow pair), simplified to
// SCALED_RESOLUTION.
func fillBoundary(depths islandDepths, f flow.Flow) []geom.ExPolygon {
	last := depths.offsets[len(depths.offsets)-1]
	if len(last) == 0 {
		return nil
	}
	s := f.ScaledSpacing()
	inset := geom.Offset(geom.ExPolygonsToPolygons(last), -(s + s/2))
	boundary := geom.UnionEx(geom.Offset(inset, s/2))

	out := make([]geom.ExPolygon, 0, len(boundary))
	for _, ex := range boundary {
		simplified := geom.ExPolygon{Contour: geom.SimplifyPolygon(ex.Contour, units.ScaledResolution)}
		for _, h := range ex.Holes {
			simplified.Holes = append(simplified.Holes, geom.SimplifyPolygon(h, units.ScaledResolution))
		}
		out = append(out, simplified)
	}
	return out
}

// emitIsland converts one island's traced depths into the ordered
// ExtrusionLoop sequence: holes innermost-first, then contours
// innermost-first (spec.md §4.4, "Island traversal into extrusion loops").
func emitIsland(depths islandDepths, f flow.Flow) []extrusion.Loop {
	holesByDepth := make([][]geom.Polygon, len(depths.offsets))
	contoursByDepth := make([][]geom.Polygon, len(depths.offsets))
	for d, exs := range depths.offsets {
		for _, ex := range exs {
			contoursByDepth[d] = append(contoursByDepth[d], ex.Contour)
			holesByDepth[d] = append(holesByDepth[d], ex.Holes...)
		}
	}

	chains := buildHoleChains(holesByDepth)
	var out []extrusion.Loop
	out = append(out, emitHoles(chains, f)...)
	out = append(out, emitContours(contoursByDepth, f)...)
	return out
}

// ThinWallPaths converts SurfaceBuilder's thin-wall skeletons into
// EXTERNAL_PERIMETER extrusion paths, routed by shortest path from the
// origin (spec.md §4.4, "Thin walls appended last, as a collection
// routed by shortest-path"). Closed skeletons are split at their first
// point into open paths, per spec.md §3.
func ThinWallPaths(walls surface.ThinWalls, f flow.Flow, height units.Unit) []extrusion.Path {
	n := len(walls.Polylines) + len(walls.Closed)
	points := make([]geom.Point, 0, n)
	for _, pl := range walls.Polylines {
		if len(pl) > 0 {
			points = append(points, pl[0])
		} else {
			points = append(points, geom.Point{})
		}
	}
	for _, c := range walls.Closed {
		if len(c) > 0 {
			points = append(points, c[0])
		} else {
			points = append(points, geom.Point{})
		}
	}

	order := orderByNearestNeighbor(points)
	out := make([]extrusion.Path, 0, n)
	for _, i := range order {
		if i < len(walls.Polylines) {
			out = append(out, extrusion.Path{
				Polyline:    walls.Polylines[i],
				Role:        extrusion.ExternalPerimeter,
				FlowSpacing: f.ScaledSpacing(),
				Height:      height,
			})
			continue
		}
		closed := walls.Closed[i-len(walls.Polylines)]
		loop := extrusion.Loop{Polygon: closed, Role: extrusion.ExternalPerimeter, FlowSpacing: f.ScaledSpacing(), Height: height}
		out = append(out, loop.ToPath())
	}
	return out
}

func reversePerimeters(perimeters []extrusion.Extrusion) {
	for i, j := 0, len(perimeters)-1; i < j; i, j = i+1, j-1 {
		perimeters[i], perimeters[j] = perimeters[j], perimeters[i]
	}
}
