// Package units defines the scaled-integer coordinate system shared by
// every other package in slicecore. Real-world millimeter values cross
// the module boundary only at ingress/egress; everything in between is
// exact integer arithmetic.
package units

import "math"

// Unit is a scaled coordinate: SCALING_FACTOR units per millimeter.
type Unit = int64

// ScalingFactor is the fixed rational multiplier of millimeters used for
// every coordinate and length in the module. 1 unit = 1/ScalingFactor mm.
const ScalingFactor float64 = 1_000_000

// ScaledResolution is the default simplification tolerance applied to
// generated paths, in scaled units. 0.0125mm matches common FFF nozzle
// resolution.
const ScaledResolution Unit = Unit(0.0125 * ScalingFactor)

// SmallPerimeterLength is the perimeter length, in scaled units, below
// which a loop is considered "small" for print-speed purposes. Carried
// here as a global constant per spec.md §6; consumers decide what to do
// with it.
const SmallPerimeterLength Unit = Unit(6.5 * ScalingFactor)

// Scale converts a millimeter length to scaled units.
func Scale(mm float64) Unit {
	return Unit(math.Round(mm * ScalingFactor))
}

// Unscale converts scaled units back to millimeters.
func Unscale(u Unit) float64 {
	return float64(u) / ScalingFactor
}

// ScaleArea converts a millimeter² area to scaled units². Areas need the
// scaling factor applied twice, once per dimension.
func ScaleArea(mm2 float64) int64 {
	return int64(math.Round(mm2 * ScalingFactor * ScalingFactor))
}

// UnscaleArea converts scaled units² back to millimeter².
func UnscaleArea(u2 int64) float64 {
	return float64(u2) / (ScalingFactor * ScalingFactor)
}
