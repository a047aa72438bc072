package geom

import (
	"math"

	"github.com/chazu/slicecore/pkg/units"
)

// SimplifyPolyline reduces pl to a subset of its points such that no
// removed point deviated from the simplified path by more than
// tolerance, via Douglas-Peucker. Used wherever spec.md calls for
// "simplify with tolerance X" on a generated path.
func SimplifyPolyline(pl Polyline, tolerance units.Unit) Polyline {
	if len(pl) < 3 {
		return pl
	}
	keep := make([]bool, len(pl))
	keep[0] = true
	keep[len(pl)-1] = true
	douglasPeucker(pl, 0, len(pl)-1, float64(tolerance), keep)

	out := make(Polyline, 0, len(pl))
	for i, k := range keep {
		if k {
			out = append(out, pl[i])
		}
	}
	return out
}

// SimplifyPolygon is SimplifyPolyline for a closed contour: it
// temporarily reopens the polygon at its first point, simplifies, and
// re-closes.
func SimplifyPolygon(p Polygon, tolerance units.Unit) Polygon {
	if len(p) < 4 {
		return p
	}
	closed := append(Polyline{}, p...)
	closed = append(closed, p[0])
	simplified := SimplifyPolyline(closed, tolerance)
	if len(simplified) >= 2 && simplified[0].Equal(simplified[len(simplified)-1]) {
		simplified = simplified[:len(simplified)-1]
	}
	return Polygon(simplified)
}

func douglasPeucker(pts []Point, lo, hi int, tolerance float64, keep []bool) {
	if hi <= lo+1 {
		return
	}
	maxDist := -1.0
	maxIdx := -1
	for i := lo + 1; i < hi; i++ {
		d := perpendicularDistance(pts[i], pts[lo], pts[hi])
		if d > maxDist {
			maxDist = d
			maxIdx = i
		}
	}
	if maxDist <= tolerance || maxIdx < 0 {
		return
	}
	keep[maxIdx] = true
	douglasPeucker(pts, lo, maxIdx, tolerance, keep)
	douglasPeucker(pts, maxIdx, hi, tolerance, keep)
}

func perpendicularDistance(p, a, b Point) float64 {
	dx := float64(b.X - a.X)
	dy := float64(b.Y - a.Y)
	if dx == 0 && dy == 0 {
		return p.DistanceTo(a)
	}
	num := dy*float64(p.X-a.X) - dx*float64(p.Y-a.Y)
	if num < 0 {
		num = -num
	}
	den := dx*dx + dy*dy
	return num / math.Sqrt(den)
}
