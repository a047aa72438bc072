// Package fill implements FillClassifier (prepare_fill_surfaces) and
// BridgeDetector (process_bridges), spec.md §4.5-§4.6: the final
// reclassification passes over a region's fill surfaces.
package fill

import (
	"github.com/samber/lo"

	"github.com/chazu/slicecore/pkg/config"
	"github.com/chazu/slicecore/pkg/surface"
	"github.com/chazu/slicecore/pkg/units"
)

// Classify runs prepare_fill_surfaces (spec.md §4.5): demote top/bottom
// surfaces when their solid-layer count is zero, and promote small
// internal surfaces to internal-solid so they print solid rather than
// sparse (a small internal region doesn't have room for a sparse
// lattice to be structurally meaningful).
//
// Running Classify twice on the same input is idempotent (spec.md §8,
// Role idempotence): each branch only ever moves a surface further
// along Top/Bottom -> Internal -> InternalSolid, never back.
func Classify(surfaces []surface.Surface, cfg config.Config) []surface.Surface {
	out := lo.Map(surfaces, func(s surface.Surface, _ int) surface.Surface {
		if cfg.TopSolidLayers == 0 && s.Type == surface.Top {
			s = s.WithType(surface.Internal)
		}
		if cfg.BottomSolidLayers == 0 && s.Type == surface.Bottom {
			s = s.WithType(surface.Internal)
		}
		return s
	})

	threshold := units.ScaleArea(cfg.SolidInfillBelowArea)
	return lo.Map(out, func(s surface.Surface, _ int) surface.Surface {
		if s.Type == surface.Internal && int64(s.ExPolygon.Contour.Area()) <= threshold {
			s = s.WithType(surface.InternalSolid)
		}
		return s
	})
}
