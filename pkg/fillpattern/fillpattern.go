// Package fillpattern implements the FillPattern external-collaborator
// contract (spec.md §6): given a Surface, a density, and a flow
// spacing, produce a parameter bundle and a sequence of point sequences
// to be traced as fill. PerimeterGenerator's gap fill (spec.md §4.4)
// consumes it through the Pattern interface, so it can be swapped for a
// different generator (honeycomb, gyroid, ...) without touching the
// pipeline. FillClassifier does not generate fill paths.
package fillpattern

import (
	"math"

	"github.com/chazu/slicecore/pkg/geom"
	"github.com/chazu/slicecore/pkg/units"
)

// Params is the parameter bundle returned alongside a pattern's
// generated paths: the line spacing actually used (the requested flow
// spacing divided by the density) and the angle the lines were drawn at.
type Params struct {
	Spacing units.Unit
	AngleDeg float64
}

// Pattern generates fill paths for one Surface-shaped ExPolygon.
type Pattern interface {
	// Generate fills ex at the given density (0..1) using flowSpacing
	// as the nominal line spacing at density 1. It returns the
	// parameters actually used and one Polyline per piece of a scan
	// line that lies inside the surface.
	Generate(ex geom.ExPolygon, density float64, flowSpacing units.Unit) (Params, []geom.Polyline)
}

// Rectilinear is the default fill pattern: parallel scan lines at a
// fixed angle, clipped to the surface, spaced according to density.
// This is the pattern PerimeterGenerator's gap fill uses unless a
// caller substitutes a different Pattern.
type Rectilinear struct {
	// AngleDeg is the scan-line angle; 0 is horizontal. Callers
	// alternate this between layers to avoid printing every layer's
	// infill in the same direction.
	AngleDeg float64
}

var _ Pattern = Rectilinear{}

// Generate implements Pattern.
func (r Rectilinear) Generate(ex geom.ExPolygon, density float64, flowSpacing units.Unit) (Params, []geom.Polyline) {
	if density <= 0 || ex.IsEmpty() || flowSpacing <= 0 {
		return Params{Spacing: flowSpacing, AngleDeg: r.AngleDeg}, nil
	}
	spacing := units.Unit(float64(flowSpacing) / density)
	if spacing < 1 {
		spacing = 1
	}

	rotated, sin, cos := rotateExPolygon(ex, -r.AngleDeg)
	minPt, maxPt := rotated.Contour.BoundingBox()

	var lines []geom.Polyline
	for y := minPt.Y; y <= maxPt.Y; y += spacing {
		seg := geom.Polyline{
			{X: minPt.X - units.Scale(1), Y: y},
			{X: maxPt.X + units.Scale(1), Y: y},
		}
		clipped := geom.ClipByPolygon(seg, rotated.Contour)
		for _, h := range rotated.Holes {
			var next []geom.Polyline
			for _, c := range clipped {
				next = append(next, diffPolylineByHole(c, h)...)
			}
			clipped = next
		}
		for _, c := range clipped {
			if c.Length() <= 0 {
				continue
			}
			lines = append(lines, rotatePolyline(c, sin, cos))
		}
	}
	return Params{Spacing: spacing, AngleDeg: r.AngleDeg}, lines
}

// diffPolylineByHole drops the portion of pl that lies inside hole,
// which (since holes are clockwise) is the inverse of ClipByPolygon.
// The rectilinear scan uses this to avoid drawing fill lines across a
// surface's holes.
func diffPolylineByHole(pl geom.Polyline, hole geom.Polygon) []geom.Polyline {
	outer := hole.Reversed()
	inside := geom.ClipByPolygon(pl, outer)
	if len(inside) == 0 {
		return []geom.Polyline{pl}
	}
	// Anything not inside the hole's reversed (CCW) shape stays; split
	// pl at the boundaries of the inside run.
	var out []geom.Polyline
	insideSet := make(map[[2]units.Unit]bool)
	for _, seg := range inside {
		for _, p := range seg {
			insideSet[[2]units.Unit{p.X, p.Y}] = true
		}
	}
	var current geom.Polyline
	for _, p := range pl {
		if insideSet[[2]units.Unit{p.X, p.Y}] {
			if len(current) >= 2 {
				out = append(out, current)
			}
			current = nil
			continue
		}
		current = append(current, p)
	}
	if len(current) >= 2 {
		out = append(out, current)
	}
	return out
}

func rotateExPolygon(ex geom.ExPolygon, angleDeg float64) (geom.ExPolygon, float64, float64) {
	sin, cos := sinCos(angleDeg)
	out := geom.ExPolygon{Contour: rotatePolygon(ex.Contour, sin, cos)}
	for _, h := range ex.Holes {
		out.Holes = append(out.Holes, rotatePolygon(h, sin, cos))
	}
	return out, sin, cos
}

func rotatePolygon(p geom.Polygon, sin, cos float64) geom.Polygon {
	out := make(geom.Polygon, len(p))
	for i, pt := range p {
		out[i] = rotatePoint(pt, sin, cos)
	}
	return out
}

func rotatePolyline(p geom.Polyline, sin, cos float64) geom.Polyline {
	// Rotating a polyline back uses the inverse (conjugate) rotation.
	out := make(geom.Polyline, len(p))
	for i, pt := range p {
		out[i] = rotatePoint(pt, -sin, cos)
	}
	return out
}

func rotatePoint(p geom.Point, sin, cos float64) geom.Point {
	x := float64(p.X)
	y := float64(p.Y)
	return geom.Point{
		X: units.Unit(x*cos - y*sin),
		Y: units.Unit(x*sin + y*cos),
	}
}

func sinCos(angleDeg float64) (float64, float64) {
	rad := angleDeg * math.Pi / 180
	return math.Sin(rad), math.Cos(rad)
}
