// Package layerregion wires the pipeline stages together end to end
// (spec.md §3, §5): LoopMerger -> SurfaceBuilder -> PerimeterGenerator
// -> FillClassifier -> BridgeDetector, on behalf of one material region
// on one layer.
package layerregion

import (
	"github.com/pkg/errors"

	"github.com/chazu/slicecore/pkg/config"
	"github.com/chazu/slicecore/pkg/extrusion"
	"github.com/chazu/slicecore/pkg/fill"
	"github.com/chazu/slicecore/pkg/fillpattern"
	"github.com/chazu/slicecore/pkg/flow"
	"github.com/chazu/slicecore/pkg/geom"
	"github.com/chazu/slicecore/pkg/perimeter"
	"github.com/chazu/slicecore/pkg/surface"
	"github.com/chazu/slicecore/pkg/units"
)

// Layer is the non-owning back-reference contract a LayerRegion reads
// id, layer height, and flows from; it carries no z-height. The scheduler that invokes this
// core guarantees a Layer outlives every LayerRegion that points at it
// (spec.md §9, "Weak back-reference to Layer"); LayerRegion must never
// try to extend a Layer's lifetime or mutate it.
type Layer interface {
	ID() int
	Height() units.Unit
	PerimeterFlow() flow.Flow
	InfillFlow() flow.Flow
}

// Region carries the material/config half of a LayerRegion: the config
// bundle and the fill pattern generator to use for gap fill.
type Region struct {
	Config  config.Config
	Pattern fillpattern.Pattern
}

// LayerRegion is the core aggregate (spec.md §3): it owns its lines,
// slices, thin-wall/fill outputs, and perimeters outright, while its
// Layer reference is a non-owning lookup.
//
// A single *LayerRegion must not be called from two goroutines
// concurrently — Process mutates it in place. Distinct *LayerRegion
// values sharing only read-only Layer/Region data may be processed in
// parallel without locks (spec.md §5); that parallelism is the external
// scheduler's responsibility, not this package's.
type LayerRegion struct {
	Layer  Layer
	Region Region

	Lines []geom.Polygon // raw closed slicing loops, as received

	Slices       []surface.Surface
	ThinWalls    surface.ThinWalls
	Perimeters   []extrusion.Extrusion
	FillSurfaces []surface.Surface
	ThinFills    []extrusion.Path
}

// New constructs a LayerRegion ready for Process.
func New(layer Layer, region Region, lines []geom.Polygon) *LayerRegion {
	return &LayerRegion{Layer: layer, Region: region, Lines: lines}
}

// Process runs the full pipeline over lr's input lines and populates
// Slices, Perimeters, FillSurfaces, and ThinFills.
//
// Apart from the optional dumps of pkg/debug, Process is the only
// function in the module that returns a non-nil error: every
// stage-internal branch (spec.md §7 — EmptyInput, DegenerateLoop,
// NonPrintableLoop, CollapsedOffset, AmbiguousBridge) is a clean/silent
// return, not an error. A panic raised inside the pipeline is recovered
// here and returned as an error with a stack trace. A clipper Boolean
// that reports failure without panicking is not surfaced: pkg/geom
// turns it into an empty result.
func (lr *LayerRegion) Process() (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = errors.Errorf("layerregion: kernel panic processing layer %d: %v", lr.Layer.ID(), r)
		}
	}()

	if len(lr.Lines) == 0 {
		// spec.md §7, EmptyInput: clean return with empty outputs.
		return nil
	}

	perimeterFlow := lr.Layer.PerimeterFlow()
	infillFlow := lr.Layer.InfillFlow()
	height := lr.Layer.Height()

	lr.Slices, lr.ThinWalls = surface.Build(lr.Lines, perimeterFlow)
	if len(lr.Slices) == 0 {
		return nil
	}

	perimResult := perimeter.Generate(
		lr.Slices,
		lr.ThinWalls,
		perimeterFlow,
		lr.Region.Config,
		lr.Layer.ID(),
		height,
		lr.Region.Pattern,
	)
	lr.Perimeters = perimResult.Perimeters
	lr.FillSurfaces = perimResult.FillSurfaces
	lr.ThinFills = perimResult.ThinFills

	lr.FillSurfaces = fill.Classify(lr.FillSurfaces, lr.Region.Config)
	lr.FillSurfaces = fill.DetectBridges(lr.FillSurfaces, lr.Slices, infillFlow.ScaledSpacing(), lr.Layer.ID(), lr.Region.Config)

	return nil
}
