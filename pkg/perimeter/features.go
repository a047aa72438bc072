package perimeter

import (
	"github.com/chazu/slicecore/pkg/config"
	"github.com/chazu/slicecore/pkg/flow"
	"github.com/chazu/slicecore/pkg/units"
)

// arcCompensatedSpacing widens the spacing used to inset from any loop
// whose perimeter length is at most SmallPerimeterLength, at every
// depth, compensating for a nozzle's tendency to under-extrude tight
// inside corners. Present in the
// teacher system but disabled by default (spec.md §9); gated behind
// config.Features.ArcCompensation and not exercised by the baseline
// pipeline.
func arcCompensatedSpacing(f config.Features, spacing units.Unit, perimeterLength units.Unit) units.Unit {
	if !f.ArcCompensation {
		return spacing
	}
	if perimeterLength > units.SmallPerimeterLength {
		return spacing
	}
	// A loop shorter than SMALL_PERIMETER_LENGTH gets roughly 10% extra
	// spacing to offset corner under-extrusion.
	return spacing + spacing/10
}

// dynamicGapFillWidth picks a gap-fill trial width proportional to the
// gap's own measured width instead of the fixed {1.5W, W, 0.5W} ladder.
// Present in the teacher system but disabled by default (spec.md §9);
// gated behind config.Features.DynamicWidthGapFill.
func dynamicGapFillWidth(f config.Features, nominal flow.Flow, measuredGapWidth units.Unit) flow.Flow {
	if !f.DynamicWidthGapFill {
		return nominal
	}
	w := units.Unscale(measuredGapWidth)
	if w <= 0 {
		return nominal
	}
	return nominal.Clone(w)
}
