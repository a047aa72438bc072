// Package config carries the configuration bundle external-collaborator
// contract (spec.md §6). Config is passed explicitly into every call
// rather than read from a process-wide singleton, so the core stays a
// pure function of its inputs and safe to run in parallel across
// LayerRegions (spec.md §9, "Global config singleton").
package config

// Features gates optional behaviors present in the source but disabled
// by default (spec.md §9): arc-compensation and dynamic-width gap fill.
// Neither needs to be enabled for the baseline pipeline to behave per
// spec.md §4.4.
type Features struct {
	ArcCompensation    bool
	DynamicWidthGapFill bool
}

// Debug gates the optional, synchronous debug dumps of pkg/debug. Off
// by default; enabling any of these has no effect on the geometry the
// pipeline produces (spec.md §5).
type Debug struct {
	SVG     bool
	DXF     bool
	Goon    bool
	Dir     string
	Verbose bool
}

// Config is the keys of spec.md §6 plus the global scaling constants
// already fixed in pkg/units, and the Features/Debug additions above.
type Config struct {
	Perimeters           int     // perimeters, >= 0
	SolidInfillBelowArea float64 // mm^2
	TopSolidLayers       int     // >= 0
	BottomSolidLayers    int     // >= 0
	GapFillSpeed         float64 // mm/s; 0 disables gap fill
	FillDensity          float64 // 0..1; 0 disables bridge processing
	BrimWidth            float64 // mm

	Features Features
	Debug    Debug
}

// Default returns a Config matching a typical FFF slicer profile: three
// perimeters, gap fill and bridging enabled, no brim.
func Default() Config {
	return Config{
		Perimeters:           3,
		SolidInfillBelowArea: 70,
		TopSolidLayers:       3,
		BottomSolidLayers:    3,
		GapFillSpeed:         20,
		FillDensity:          0.2,
		BrimWidth:            0,
	}
}

// GapFillEnabled reports whether PerimeterGenerator should run its gap
// fill pass (spec.md §4.4 step 5).
func (c Config) GapFillEnabled() bool {
	return c.GapFillSpeed > 0
}

// BridgingEnabled reports whether BridgeDetector should run at all
// (spec.md §4.6).
func (c Config) BridgingEnabled() bool {
	return c.FillDensity > 0
}
