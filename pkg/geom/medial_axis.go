package geom

import (
	"math"

	"github.com/chazu/slicecore/pkg/units"
)

// boundarySegment is one edge of an ExPolygon's contour or holes,
// together with the unit normal pointing into the ExPolygon's interior.
type boundarySegment struct {
	a, b   Point
	nx, ny float64 // inward unit normal
}

func segmentsOf(poly Polygon, hole bool) []boundarySegment {
	n := len(poly)
	if n < 2 {
		return nil
	}
	segs := make([]boundarySegment, 0, n)
	for i := 0; i < n; i++ {
		a := poly[i]
		b := poly[(i+1)%n]
		dx := float64(b.X - a.X)
		dy := float64(b.Y - a.Y)
		length := math.Hypot(dx, dy)
		if length == 0 {
			continue
		}
		// Left-normal for a CCW contour points into the interior; a CW
		// hole's interior (from the ExPolygon's point of view) is on the
		// opposite side, so holes use the right-normal instead.
		nx, ny := -dy/length, dx/length
		if hole {
			nx, ny = -nx, -ny
		}
		segs = append(segs, boundarySegment{a: a, b: b, nx: nx, ny: ny})
	}
	return segs
}

// medialSample is a single inward-probe result: a point on the boundary,
// the midpoint of the probe that found the opposite wall, and the local
// width at that point.
type medialSample struct {
	boundary Point
	skeleton Point
	width    float64
}

// MedialAxis computes an approximate medial axis of ex, suitable for a
// single-pass trace of a variable-width region up to maxWidth wide
// (spec.md §4.1). See SPEC_FULL.md §4.1 and DESIGN.md for the scope of
// the approximation: it resolves single-branch corridors (thin walls,
// gaps) exactly, but does not construct a full Voronoi/straight-skeleton
// for branching (Y- or T-shaped) thin regions.
func MedialAxis(ex ExPolygon, maxWidth units.Unit) (polylines []Polyline, closed []Polygon) {
	var allSegs []boundarySegment
	allSegs = append(allSegs, segmentsOf(ex.Contour, false)...)
	for _, h := range ex.Holes {
		allSegs = append(allSegs, segmentsOf(h, true)...)
	}
	if len(allSegs) == 0 {
		return nil, nil
	}

	step := float64(maxWidth) / 4
	if step < 1 {
		step = 1
	}
	maxW := float64(maxWidth)

	var samples []medialSample
	for si, seg := range allSegs {
		segLen := math.Hypot(float64(seg.b.X-seg.a.X), float64(seg.b.Y-seg.a.Y))
		steps := int(segLen / step)
		if steps < 1 {
			steps = 1
		}
		for k := 0; k <= steps; k++ {
			t := float64(k) / float64(steps)
			px := float64(seg.a.X) + t*float64(seg.b.X-seg.a.X)
			py := float64(seg.a.Y) + t*float64(seg.b.Y-seg.a.Y)
			d, ok := nearestOppositeCrossing(px, py, seg.nx, seg.ny, allSegs, si, maxW)
			if !ok {
				continue
			}
			skel := Point{X: units.Unit(px + seg.nx*d/2), Y: units.Unit(py + seg.ny*d/2)}
			// A corridor is probed from both of its walls; keep only the
			// first probe that lands on a given skeleton point so each
			// corridor is traced once rather than out and back.
			duplicate := false
			for _, prev := range samples {
				if prev.skeleton.DistanceTo(skel) < step/2 {
					duplicate = true
					break
				}
			}
			if duplicate {
				continue
			}
			samples = append(samples, medialSample{
				boundary: Point{X: units.Unit(px), Y: units.Unit(py)},
				skeleton: skel,
				width:    d,
			})
		}
	}
	if len(samples) == 0 {
		return nil, nil
	}

	return chainSamples(samples, step)
}

// nearestOppositeCrossing casts a ray from (px,py) along (nx,ny) and
// returns the distance to the nearest boundary segment it hits, other
// than its own originating segment and that segment's two immediate
// neighbors (which always touch the ray's origin).
func nearestOppositeCrossing(px, py, nx, ny float64, segs []boundarySegment, skip int, maxDist float64) (float64, bool) {
	best := maxDist
	found := false
	n := len(segs)
	for i, seg := range segs {
		if i == skip || i == (skip+1)%n || i == (skip-1+n)%n {
			continue
		}
		t, ok := raySegmentIntersect(px, py, nx, ny, seg.a, seg.b)
		if ok && t > 1e-6 && t <= best {
			best = t
			found = true
		}
	}
	if !found {
		return 0, false
	}
	return best, true
}

// raySegmentIntersect solves p + t*(dx,dy) = a + s*(b-a) for t >= 0,
// s in [0,1].
func raySegmentIntersect(px, py, dx, dy float64, a, b Point) (float64, bool) {
	ex := float64(b.X - a.X)
	ey := float64(b.Y - a.Y)
	denom := dx*ey - dy*ex
	if denom == 0 {
		return 0, false
	}
	fx := float64(a.X) - px
	fy := float64(a.Y) - py
	t := (fx*ey - fy*ex) / denom
	s := (fx*dy - fy*dx) / denom
	if t < 0 || s < 0 || s > 1 {
		return 0, false
	}
	return t, true
}

// chainSamples groups medial samples into connected skeleton chains,
// ordered by their originating boundary position, splitting wherever
// consecutive skeleton points are farther apart than a few sampling
// steps (a real gap in coverage, not just sampling granularity).
func chainSamples(samples []medialSample, step float64) (polylines []Polyline, closed []Polygon) {
	gapTolerance := step * 3
	var current Polyline
	flush := func() {
		if len(current) < 2 {
			current = nil
			return
		}
		if current[0].DistanceTo(current[len(current)-1]) < step {
			ring := append(Polygon{}, current[:len(current)-1]...)
			closed = append(closed, ring)
		} else {
			polylines = append(polylines, current)
		}
		current = nil
	}

	for i, s := range samples {
		if i > 0 {
			prev := samples[i-1]
			if prev.skeleton.DistanceTo(s.skeleton) > gapTolerance {
				flush()
			}
		}
		current = append(current, s.skeleton)
	}
	flush()
	return polylines, closed
}
