// Package debug implements the optional, synchronous debug dumps
// described in spec.md §5: an SVG visual preview, a DXF dump for
// comparing against other CAD tooling, and a structural dump of a
// LayerRegion's Go values for interactive debugging. All three are
// gated behind config.Debug and off by default; none affects the
// geometry the pipeline produces.
package debug

import (
	"fmt"
	"os"
	"path/filepath"

	svg "github.com/ajstarks/svgo"
	"github.com/pkg/errors"
	"github.com/shurcooL/go-goon"
	"github.com/yofu/dxf"
	"github.com/yofu/dxf/drawing"

	"github.com/chazu/slicecore/pkg/config"
	"github.com/chazu/slicecore/pkg/geom"
	"github.com/chazu/slicecore/pkg/layerregion"
	"github.com/chazu/slicecore/pkg/units"
)

// Dump writes whichever of the SVG/DXF/structural dumps cfg.Debug
// enables for lr, named by layer id and stage into cfg.Debug.Dir. It is a
// no-op (returning nil) if no dump is enabled.
func Dump(lr *layerregion.LayerRegion, stage string, cfg config.Debug) error {
	if !cfg.SVG && !cfg.DXF && !cfg.Goon {
		return nil
	}
	if cfg.Dir == "" {
		cfg.Dir = "."
	}
	if err := os.MkdirAll(cfg.Dir, 0o755); err != nil {
		return errors.Wrap(err, "debug: creating dump directory")
	}

	base := fmt.Sprintf("layer%d-%s", lr.Layer.ID(), stage)

	if cfg.SVG {
		if err := dumpSVG(lr, filepath.Join(cfg.Dir, base+".svg")); err != nil {
			return errors.Wrap(err, "debug: SVG dump")
		}
	}
	if cfg.DXF {
		if err := dumpDXF(lr, filepath.Join(cfg.Dir, base+".dxf")); err != nil {
			return errors.Wrap(err, "debug: DXF dump")
		}
	}
	if cfg.Goon {
		goon.Dump(lr)
	}
	return nil
}

// dumpSVG renders slice contours and holes and fill-surface contours as
// a quick visual preview, stroked by surface type. Perimeters are not
// drawn.
func dumpSVG(lr *layerregion.LayerRegion, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	minPt, maxPt := boundsOf(lr)
	width := int(units.Unscale(maxPt.X-minPt.X)) + 20
	height := int(units.Unscale(maxPt.Y-minPt.Y)) + 20
	if width <= 0 {
		width = 100
	}
	if height <= 0 {
		height = 100
	}

	canvas := svg.New(f)
	canvas.Start(width, height)
	canvas.Gstyle("fill:none;stroke-width:1")

	for _, s := range lr.Slices {
		drawPolygonSVG(canvas, s.ExPolygon.Contour, minPt, "stroke:black")
		for _, h := range s.ExPolygon.Holes {
			drawPolygonSVG(canvas, h, minPt, "stroke:gray")
		}
	}
	for _, s := range lr.FillSurfaces {
		drawPolygonSVG(canvas, s.ExPolygon.Contour, minPt, fillStrokeFor(s.Type))
	}

	canvas.Gend()
	canvas.End()
	return nil
}

func fillStrokeFor(t interface{ String() string }) string {
	switch t.String() {
	case "top":
		return "stroke:red"
	case "bottom":
		return "stroke:blue"
	case "internal-solid":
		return "stroke:orange"
	default:
		return "stroke:green"
	}
}

func drawPolygonSVG(canvas *svg.SVG, p geom.Polygon, origin geom.Point, style string) {
	if len(p) < 2 {
		return
	}
	xs := make([]int, len(p))
	ys := make([]int, len(p))
	for i, pt := range p {
		xs[i] = int(units.Unscale(pt.X-origin.X)) + 10
		ys[i] = int(units.Unscale(pt.Y-origin.Y)) + 10
	}
	canvas.Polygon(xs, ys, style)
}

// dumpDXF writes the same geometry as LINE entities, one per polygon
// edge, for comparison against other CAD tooling.
func dumpDXF(lr *layerregion.LayerRegion, path string) error {
	d := dxf.NewDrawing()
	d.AddLayer("slices", dxf.DefaultColor, dxf.DefaultLineType, true)
	d.AddLayer("fill", dxf.DefaultColor, dxf.DefaultLineType, true)
	d.ChangeLayer("slices")

	for _, s := range lr.Slices {
		addPolylineDXF(d, s.ExPolygon.Contour)
		for _, h := range s.ExPolygon.Holes {
			addPolylineDXF(d, h)
		}
	}
	d.ChangeLayer("fill")
	for _, s := range lr.FillSurfaces {
		addPolylineDXF(d, s.ExPolygon.Contour)
	}

	return d.SaveAs(path)
}

func addPolylineDXF(d *drawing.Drawing, p geom.Polygon) {
	for i := range p {
		a := p[i]
		b := p[(i+1)%len(p)]
		d.Line(units.Unscale(a.X), units.Unscale(a.Y), 0, units.Unscale(b.X), units.Unscale(b.Y), 0)
	}
}

func boundsOf(lr *layerregion.LayerRegion) (min, max geom.Point) {
	first := true
	consider := func(p geom.Point) {
		if first {
			min, max = p, p
			first = false
			return
		}
		if p.X < min.X {
			min.X = p.X
		}
		if p.Y < min.Y {
			min.Y = p.Y
		}
		if p.X > max.X {
			max.X = p.X
		}
		if p.Y > max.Y {
			max.Y = p.Y
		}
	}
	for _, s := range lr.Slices {
		for _, pt := range s.ExPolygon.Contour {
			consider(pt)
		}
	}
	return min, max
}
