// Package surface implements the Surface type together with the
// LoopMerger and SurfaceBuilder pipeline stages (spec.md §4.2, §4.3):
// turning an unordered bag of slicing loops into classified,
// well-formed ExPolygons.
package surface

import (
	"github.com/google/uuid"

	"github.com/chazu/slicecore/pkg/geom"
)

// Type classifies a Surface's role in the fill pipeline (spec.md §3).
type Type int

const (
	Internal Type = iota
	Top
	Bottom
	InternalSolid
)

func (t Type) String() string {
	switch t {
	case Internal:
		return "internal"
	case Top:
		return "top"
	case Bottom:
		return "bottom"
	case InternalSolid:
		return "internal-solid"
	default:
		return "unknown"
	}
}

// Surface is an ExPolygon tagged with a Type and, for bridges, an
// orientation angle. Created by SurfaceBuilder and reclassified by
// FillClassifier and BridgeDetector, which return new Surface values
// rather than modifying their input; consumed by downstream fill and
// perimeter generation.
type Surface struct {
	ID uuid.UUID // debug correlation only, never consulted for geometric logic

	ExPolygon geom.ExPolygon
	Type      Type

	// BridgeAngle is the bridge orientation in degrees, normalized to
	// [0, 360). HasBridgeAngle is false when BridgeDetector left it
	// undefined (spec.md §7, AmbiguousBridge).
	BridgeAngle    float64
	HasBridgeAngle bool

	// AdditionalInnerPerimeters lets a caller widen the perimeter count
	// for this specific surface beyond config.Perimeters (spec.md §4.4
	// step 1, "N = config.perimeters + surface.additional_inner_perimeters").
	AdditionalInnerPerimeters int
}

// New wraps ex as a Surface of the given type with a fresh ID.
func New(ex geom.ExPolygon, t Type) Surface {
	return Surface{ID: uuid.New(), ExPolygon: ex, Type: t}
}

// WithBridgeAngle returns a copy of s carrying the given bridge angle.
func (s Surface) WithBridgeAngle(angleDeg float64) Surface {
	s.BridgeAngle = normalizeAngle(angleDeg)
	s.HasBridgeAngle = true
	return s
}

// WithType returns a copy of s reclassified to t.
func (s Surface) WithType(t Type) Surface {
	s.Type = t
	return s
}

func normalizeAngle(deg float64) float64 {
	for deg < 0 {
		deg += 360
	}
	for deg >= 360 {
		deg -= 360
	}
	return deg
}

// Polygons returns the set of all ExPolygons carried by surfaces, for
// feeding back into the geometry kernel.
func Polygons(surfaces []Surface) []geom.ExPolygon {
	out := make([]geom.ExPolygon, len(surfaces))
	for i, s := range surfaces {
		out[i] = s.ExPolygon
	}
	return out
}

// TotalArea sums the net area of every surface's ExPolygon.
func TotalArea(surfaces []Surface) float64 {
	var total float64
	for _, s := range surfaces {
		total += s.ExPolygon.Area()
	}
	return total
}
