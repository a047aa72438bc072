// Package flow implements the Flow external-collaborator contract
// (spec.md §6): nozzle extrusion geometry supplied by the caller.
package flow

import "github.com/chazu/slicecore/pkg/units"

// Flow bundles a deposited bead width with the center-to-center spacing
// used for adjacent beads. Spacing is normally < Width because adjacent
// extrusions overlap; New does not check this, and Clone of a zero-width
// Flow returns Spacing equal to Width. A LayerRegion is handed two: perimeter_flow and
// infill_flow, picked by the caller based on layer index.
type Flow struct {
	Width   float64 // mm
	Spacing float64 // mm, normally < Width
}

// New builds a Flow from an explicit width/spacing pair.
func New(width, spacing float64) Flow {
	return Flow{Width: width, Spacing: spacing}
}

// ScaledWidth is Width converted to scaled integer units.
func (f Flow) ScaledWidth() units.Unit {
	return units.Scale(f.Width)
}

// ScaledSpacing is Spacing converted to scaled integer units.
func (f Flow) ScaledSpacing() units.Unit {
	return units.Scale(f.Spacing)
}

// Clone returns a copy of f with a different width, preserving the
// width/spacing ratio of the original. Used by the gap-fill trial
// widths in PerimeterGenerator (spec.md §4.4), which need a narrower
// flow without losing the overlap proportion of the source flow.
func (f Flow) Clone(width float64) Flow {
	if f.Width == 0 {
		return Flow{Width: width, Spacing: width}
	}
	ratio := f.Spacing / f.Width
	return Flow{Width: width, Spacing: width * ratio}
}
