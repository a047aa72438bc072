// Package extrusion defines the extrusion path/loop types emitted by
// PerimeterGenerator and the fill stages (spec.md §3).
package extrusion

import (
	"github.com/chazu/slicecore/pkg/flow"
	"github.com/chazu/slicecore/pkg/geom"
	"github.com/chazu/slicecore/pkg/units"
)

// Role tags what an ExtrusionPath/ExtrusionLoop is for.
type Role int

const (
	ExternalPerimeter Role = iota
	Perimeter
	ContourInternalPerimeter
	SolidFill
	GapFill
)

func (r Role) String() string {
	switch r {
	case ExternalPerimeter:
		return "external-perimeter"
	case Perimeter:
		return "perimeter"
	case ContourInternalPerimeter:
		return "contour-internal-perimeter"
	case SolidFill:
		return "solid-fill"
	case GapFill:
		return "gap-fill"
	default:
		return "unknown"
	}
}

// Extrusion is the marker interface shared by Path and Loop, so that
// "perimeters" (spec.md §6) can be carried as a single ordered
// collection of packed ExtrusionLoops/Paths rather than two parallel
// slices the caller has to interleave by hand.
type Extrusion interface {
	extrusion() // marker method restricting implementations to this package
}

// Path is an open extrusion move: a polyline traced at a given role,
// flow spacing, and layer height.
type Path struct {
	Polyline    geom.Polyline
	Role        Role
	FlowSpacing units.Unit
	Height      units.Unit
}

func (Path) extrusion() {}

// Loop is a closed extrusion move: a polygon traced at a given role and
// flow spacing.
type Loop struct {
	Polygon     geom.Polygon
	Role        Role
	FlowSpacing units.Unit
	Height      units.Unit
}

func (Loop) extrusion() {}

// ToPath converts a closed Loop into an open Path by splitting it at its
// first point (spec.md §3: "can be converted to an ExtrusionPath by
// splitting at its first point"). Used when routing a closed thin-wall
// skeleton as a single open extrusion move.
func (l Loop) ToPath() Path {
	pl := make(geom.Polyline, len(l.Polygon)+1)
	copy(pl, l.Polygon)
	if len(l.Polygon) > 0 {
		pl[len(l.Polygon)] = l.Polygon[0]
	}
	return Path{Polyline: pl, Role: l.Role, FlowSpacing: l.FlowSpacing, Height: l.Height}
}

// IsPrintable reports whether a loop is large enough to be worth
// extruding at the given width (spec.md §7, NonPrintableLoop): it must
// have at least 3 distinct points and a perimeter length of at least
// one flow width, below which a real printer would produce no usable
// bead.
func IsPrintable(p geom.Polygon, f flow.Flow) bool {
	if p.IsDegenerate() {
		return false
	}
	return p.Length() >= float64(f.ScaledWidth())
}
