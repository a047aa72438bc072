package perimeter

import (
	"github.com/chazu/slicecore/pkg/config"
	"github.com/chazu/slicecore/pkg/extrusion"
	"github.com/chazu/slicecore/pkg/fillpattern"
	"github.com/chazu/slicecore/pkg/flow"
	"github.com/chazu/slicecore/pkg/geom"
	"github.com/chazu/slicecore/pkg/units"
)

// gapTrialRatios are the trial widths tried against the gap set, widest
// first, as multiples of the perimeter flow's width (spec.md §4.4 step
// 5: "{1.5W, W, 0.5W}").
var gapTrialRatios = []float64{1.5, 1.0, 0.5}

// fillGaps runs spec.md §4.4 step 5. With config.Features.
// DynamicWidthGapFill disabled (the default) it walks the fixed trial
// ladder below. With it enabled, each gap is instead filled at a width
// derived from its own measured size via dynamicGapFillWidth, rather
// than matched against the fixed ladder.
func fillGaps(gaps []geom.ExPolygon, perimeterFlow flow.Flow, height units.Unit, pattern fillpattern.Pattern, features config.Features) []extrusion.Path {
	if len(gaps) == 0 {
		return nil
	}
	if features.DynamicWidthGapFill {
		return fillGapsDynamic(gaps, perimeterFlow, height, pattern, features)
	}
	remaining := geom.ExPolygonsToPolygons(gaps)

	var out []extrusion.Path
	for _, ratio := range gapTrialRatios {
		if len(remaining) == 0 {
			break
		}
		f := perimeterFlow.Clone(perimeterFlow.Width * ratio)
		halfWidth := f.ScaledWidth() / 2

		thisWidth := noncollapsingOffsetEx(remaining, -halfWidth)
		thisWidth = geom.UnionEx(geom.Offset(geom.ExPolygonsToPolygons(thisWidth), halfWidth))
		if len(thisWidth) == 0 {
			continue
		}

		for _, ex := range thisWidth {
			inset := geom.UnionEx(geom.Offset(ex.Polygons(), -halfWidth))
			for _, fillable := range inset {
				_, lines := pattern.Generate(fillable, 1, f.ScaledSpacing())
				for _, line := range lines {
					simplified := geom.SimplifyPolyline(line, f.ScaledWidth()/3)
					if simplified.Length() <= 0 {
						continue
					}
					out = append(out, extrusion.Path{
						Polyline:    simplified,
						Role:        extrusion.GapFill,
						FlowSpacing: f.ScaledSpacing(),
						Height:      height,
					})
				}
			}
		}

		remaining = geom.Diff(remaining, geom.ExPolygonsToPolygons(thisWidth), false)
	}
	return out
}

// fillGapsDynamic implements the DynamicWidthGapFill branch of step 5:
// each gap is filled on its own, at a width proportional to its own
// measured size, instead of being matched against the {1.5W, W, 0.5W}
// ladder.
func fillGapsDynamic(gaps []geom.ExPolygon, perimeterFlow flow.Flow, height units.Unit, pattern fillpattern.Pattern, features config.Features) []extrusion.Path {
	var out []extrusion.Path
	for _, gap := range gaps {
		f := dynamicGapFillWidth(features, perimeterFlow, estimateGapWidth(gap))
		halfWidth := f.ScaledWidth() / 2

		for _, fillable := range geom.UnionEx(geom.Offset(gap.Polygons(), -halfWidth)) {
			_, lines := pattern.Generate(fillable, 1, f.ScaledSpacing())
			for _, line := range lines {
				simplified := geom.SimplifyPolyline(line, f.ScaledWidth()/3)
				if simplified.Length() <= 0 {
					continue
				}
				out = append(out, extrusion.Path{
					Polyline:    simplified,
					Role:        extrusion.GapFill,
					FlowSpacing: f.ScaledSpacing(),
					Height:      height,
				})
			}
		}
	}
	return out
}

// estimateGapWidth approximates a gap's corridor width from its
// contour's area and perimeter length: a thin corridor of length L and
// width W has a contour length of roughly 2L and an area of roughly
// L*W, so W ~= 2*Area/Length.
func estimateGapWidth(gap geom.ExPolygon) units.Unit {
	length := gap.Contour.Length()
	if length <= 0 {
		return 0
	}
	return units.Unit(2 * gap.Contour.Area() / length)
}

// noncollapsingOffsetEx offsets polys by delta but, unlike a plain
// Offset, falls back to the pre-offset geometry when the offset would
// collapse it entirely — preserving topology so a gap doesn't vanish
// outright just because it's slightly narrower than the trial width
// (spec.md §4.4, "noncollapsing variant preserves topology even when
// the offset would collapse parts").
func noncollapsingOffsetEx(polys []geom.Polygon, delta units.Unit) []geom.ExPolygon {
	offset := geom.Offset(polys, delta)
	if len(offset) == 0 {
		return geom.UnionEx(polys)
	}
	return geom.UnionEx(offset)
}
