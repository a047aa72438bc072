package fill

import (
	"math"

	"github.com/samber/lo"

	"github.com/chazu/slicecore/pkg/config"
	"github.com/chazu/slicecore/pkg/geom"
	"github.com/chazu/slicecore/pkg/surface"
	"github.com/chazu/slicecore/pkg/units"
)

// bridgeCandidate is a fill surface being evaluated as a bridge (a
// BOTTOM surface on a non-first layer) or reverse bridge (any TOP
// surface), together with its computed geometry and angle.
type bridgeCandidate struct {
	surfaceType surface.Type
	angle       float64
	hasAngle    bool
	geometry    []geom.ExPolygon
}

// DetectBridges runs process_bridges (spec.md §4.6): identify bridge and
// reverse-bridge regions, compute bridge orientation, merge overlapping
// bridges by priority, and reclassify fillSurfaces accordingly.
//
// Skips entirely (returns fillSurfaces unchanged) if bridging is
// disabled (fill_density == 0).
func DetectBridges(fillSurfaces, slices []surface.Surface, flowSpacing units.Unit, layerID int, cfg config.Config) []surface.Surface {
	if !cfg.BridgingEnabled() {
		return fillSurfaces
	}

	support := lo.Filter(slices, func(s surface.Surface, _ int) bool {
		return s.Type == surface.Internal || s.Type == surface.InternalSolid
	})
	if len(support) == 0 {
		return fillSurfaces
	}

	var candidates []bridgeCandidate
	for _, c := range fillSurfaces {
		isBottomBridge := c.Type == surface.Bottom && layerID > 0
		isReverseBridge := c.Type == surface.Top
		if !isBottomBridge && !isReverseBridge {
			continue
		}
		if b, ok := evaluateCandidate(c, support, flowSpacing, isBottomBridge); ok {
			candidates = append(candidates, b)
		}
	}
	if len(candidates) == 0 {
		return fillSurfaces
	}

	merged := mergeBridges(candidates)
	return applyBridges(fillSurfaces, merged)
}

// evaluateCandidate runs spec.md §4.6 steps 1-5 for one candidate
// surface: grow it by a safety offset, find the internal surfaces that
// support it, compute its bridge angle (BOTTOM candidates only), and
// extend its geometry 3mm into each support.
func evaluateCandidate(c surface.Surface, support []surface.Surface, flowSpacing units.Unit, computeAngle bool) (bridgeCandidate, bool) {
	csPolys := geom.SafetyOffset(c.ExPolygon.Polygons(), geom.DefaultSafetyOffsetEps)
	cs := geom.UnionEx(csPolys)
	if len(cs) == 0 {
		return bridgeCandidate{}, false
	}

	contourOffset := geom.Offset([]geom.Polygon{cs[0].Contour}, units.Unit(float64(flowSpacing)*math.Sqrt2))
	if len(contourOffset) == 0 {
		return bridgeCandidate{}, false
	}

	var supporting []surface.Surface
	for _, s := range support {
		if intersects(s.ExPolygon.Polygons(), contourOffset) {
			supporting = append(supporting, s)
		}
	}
	if len(supporting) == 0 {
		return bridgeCandidate{}, false
	}

	angle, hasAngle := 0.0, false
	if computeAngle {
		angle, hasAngle = computeBridgeAngle(supporting, contourOffset)
	}

	bridgeOffset := geom.Offset([]geom.Polygon{cs[0].Contour}, units.Scale(3))
	subjectPolys := append([]geom.Polygon{}, geom.ExPolygonsToPolygons(cs)...)
	for _, s := range supporting {
		subjectPolys = append(subjectPolys, s.ExPolygon.Polygons()...)
	}
	geometry := geom.IntersectionEx(subjectPolys, bridgeOffset)
	if len(geometry) == 0 {
		return bridgeCandidate{}, false
	}

	return bridgeCandidate{
		surfaceType: c.Type,
		angle:       angle,
		hasAngle:    hasAngle,
		geometry:    geometry,
	}, true
}

func intersects(a, b []geom.Polygon) bool {
	return len(geom.Intersection(a, b)) > 0
}

// computeBridgeAngle implements spec.md §4.6 step 4: find the edges of
// each supporting surface clipped to the candidate's expanded contour,
// then derive an orientation from however many edges survive.
func computeBridgeAngle(supporting []surface.Surface, contourOffset []geom.Polygon) (float64, bool) {
	if len(contourOffset) == 0 {
		return 0, false
	}
	clip := contourOffset[0]

	var edges []geom.Polyline
	for _, s := range supporting {
		for _, ring := range s.ExPolygon.Polygons() {
			closed := append(geom.Polyline{}, ring...)
			if len(closed) > 0 {
				closed = append(closed, ring[0])
			}
			for _, e := range geom.ClipByPolygon(closed, clip) {
				if len(e) > 0 {
					edges = append(edges, e)
				}
			}
		}
	}

	switch {
	case len(edges) == 2:
		mid1 := chordMidpoint(edges[0])
		mid2 := chordMidpoint(edges[1])
		return normalizeDeg(geom.DirectionDegrees(mid1, mid2)), true

	case len(edges) == 1:
		e := edges[0]
		if len(e) <= 2 {
			// A plain straight single edge: undefined, spec.md §7
			// AmbiguousBridge — treated as plain overhang downstream.
			return 0, false
		}
		return normalizeDeg(geom.DirectionDegrees(e[0], e[len(e)-1])), true

	case len(edges) >= 3:
		return weightedVectorSumAngle(edges), true

	default:
		return 0, false
	}
}

// chordMidpoint connects an edge's endpoints into a chord and returns
// its midpoint.
func chordMidpoint(e geom.Polyline) geom.Point {
	if len(e) == 0 {
		return geom.Point{}
	}
	return geom.Midpoint(e[0], e[len(e)-1])
}

// weightedVectorSumAngle implements the >=3-edges branch of spec.md
// §4.6 step 4 per the spec's stated intent (spec.md §9, "Bridge-angle
// sum bug"): compute the centroid of all edge vertices, then sum the
// direction vectors from the centroid to each vertex, each weighted by
// its own length.
func weightedVectorSumAngle(edges []geom.Polyline) float64 {
	var allPoints []geom.Point
	for _, e := range edges {
		allPoints = append(allPoints, e...)
	}
	centroid := centroidOf(allPoints)

	var sumX, sumY float64
	for _, e := range edges {
		for _, v := range e {
			dx := float64(v.X - centroid.X)
			dy := float64(v.Y - centroid.Y)
			theta := math.Atan2(dy, dx)
			length := math.Hypot(dx, dy)
			sumX += math.Cos(theta) * length
			sumY += math.Sin(theta) * length
		}
	}
	deg := math.Atan2(sumY, sumX) * 180 / math.Pi
	return normalizeDeg(deg)
}

func centroidOf(points []geom.Point) geom.Point {
	if len(points) == 0 {
		return geom.Point{}
	}
	var sx, sy float64
	for _, p := range points {
		sx += float64(p.X)
		sy += float64(p.Y)
	}
	n := float64(len(points))
	return geom.Point{X: units.Unit(sx / n), Y: units.Unit(sy / n)}
}

func normalizeDeg(deg float64) float64 {
	for deg < 0 {
		deg += 360
	}
	for deg >= 360 {
		deg -= 360
	}
	return deg
}

// mergeBridges implements spec.md §4.6's merge pass: group candidates
// by (surface_type, bridge_angle), then iterate groups in their
// current order as a priority list, subtracting everything already
// accepted from each subsequent group before accepting it.
func mergeBridges(candidates []bridgeCandidate) []bridgeCandidate {
	groups := lo.GroupBy(candidates, func(c bridgeCandidate) bridgeKey {
		return bridgeKey{t: c.surfaceType, angle: c.angle, has: c.hasAngle}
	})

	var order []bridgeKey
	seen := make(map[bridgeKey]bool)
	for _, c := range candidates {
		k := bridgeKey{t: c.surfaceType, angle: c.angle, has: c.hasAngle}
		if !seen[k] {
			seen[k] = true
			order = append(order, k)
		}
	}

	var accepted []geom.Polygon
	var out []bridgeCandidate
	for _, key := range order {
		group := groups[key]
		var groupPolys []geom.Polygon
		for _, c := range group {
			groupPolys = append(groupPolys, geom.ExPolygonsToPolygons(c.geometry)...)
		}
		union := geom.UnionEx(groupPolys)
		pieces := geom.DiffEx(geom.ExPolygonsToPolygons(union), accepted, false)
		if len(pieces) == 0 {
			continue
		}
		out = append(out, bridgeCandidate{
			surfaceType: key.t,
			angle:       key.angle,
			hasAngle:    key.has,
			geometry:    pieces,
		})
		accepted = append(accepted, geom.ExPolygonsToPolygons(pieces)...)
	}
	return out
}

type bridgeKey struct {
	t     surface.Type
	angle float64
	has   bool
}

// applyBridges implements spec.md §4.6's apply pass: carve each
// accepted bridge out of fillSurfaces as a new bridge-typed surface,
// then re-emit the remainder of every other fill surface with the
// union of all bridges subtracted.
func applyBridges(fillSurfaces []surface.Surface, bridges []bridgeCandidate) []surface.Surface {
	if len(bridges) == 0 {
		return fillSurfaces
	}

	var bridgeUnionPolys []geom.Polygon
	for _, b := range bridges {
		bridgeUnionPolys = append(bridgeUnionPolys, geom.ExPolygonsToPolygons(b.geometry)...)
	}
	bridgeUnion := geom.Union(bridgeUnionPolys)

	var out []surface.Surface
	for _, b := range bridges {
		existingPolys := geom.ExPolygonsToPolygons(surface.Polygons(fillSurfaces))
		bridgePolys := geom.ExPolygonsToPolygons(b.geometry)
		for _, ex := range geom.IntersectionEx(existingPolys, bridgePolys) {
			s := surface.New(ex, b.surfaceType)
			if b.hasAngle {
				s = s.WithBridgeAngle(b.angle)
			}
			out = append(out, s)
		}
	}

	for _, s := range fillSurfaces {
		remainder := geom.DiffEx(s.ExPolygon.Polygons(), bridgeUnion, false)
		for _, ex := range remainder {
			out = append(out, surface.New(ex, s.Type))
		}
	}
	return out
}
