package geom

import (
	clipper "github.com/ctessum/go.clipper"

	"github.com/chazu/slicecore/pkg/units"
)

// Polyline is an ordered, open sequence of points.
type Polyline []Point

// Length returns the total length of the open polyline.
func (pl Polyline) Length() float64 {
	var total float64
	for i := 0; i+1 < len(pl); i++ {
		total += pl[i].DistanceTo(pl[i+1])
	}
	return total
}

// Direction returns the direction, in radians, from the first to the
// last point.
func (pl Polyline) Direction() float64 {
	if len(pl) < 2 {
		return 0
	}
	return Direction(pl[0], pl[len(pl)-1])
}

// Midpoint returns the point halfway (by path length) along pl.
func (pl Polyline) Midpoint() Point {
	if len(pl) == 0 {
		return Point{}
	}
	if len(pl) == 1 {
		return pl[0]
	}
	target := pl.Length() / 2
	var acc float64
	for i := 0; i+1 < len(pl); i++ {
		seg := pl[i].DistanceTo(pl[i+1])
		if acc+seg >= target {
			t := 0.0
			if seg > 0 {
				t = (target - acc) / seg
			}
			return Point{
				X: pl[i].X + units.Unit(float64(pl[i+1].X-pl[i].X)*t),
				Y: pl[i].Y + units.Unit(float64(pl[i+1].Y-pl[i].Y)*t),
			}
		}
		acc += seg
	}
	return pl[len(pl)-1]
}

// Reversed returns pl with its point order flipped.
func (pl Polyline) Reversed() Polyline {
	out := make(Polyline, len(pl))
	for i, p := range pl {
		out[len(pl)-1-i] = p
	}
	return out
}

// ClipByPolygon intersects the open polyline against a closed polygon,
// returning the surviving sub-segments as open Polylines (spec.md §4.6,
// edge clipping against a candidate's expanded contour). Degenerate
// (single-point) results are dropped.
func ClipByPolygon(pl Polyline, clip Polygon) []Polyline {
	if len(pl) < 2 || len(clip) < 3 {
		return nil
	}
	c := clipper.NewClipper(clipper.IoNone)
	c.AddPath(toClipperPath(pl), clipper.PtSubject, false)
	c.AddPath(toClipperPath(clip), clipper.PtClip, true)
	tree, ok := c.Execute2(clipper.CtIntersection, clipper.PftNonZero, clipper.PftNonZero)
	if !ok || tree == nil {
		return nil
	}
	paths := c.OpenPathsFromPolyTree(tree)
	var out []Polyline
	for _, path := range paths {
		if len(path) < 2 {
			continue
		}
		out = append(out, Polyline(fromClipperPath(path)))
	}
	return out
}
