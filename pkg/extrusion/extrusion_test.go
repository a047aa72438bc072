package extrusion

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/chazu/slicecore/pkg/flow"
	"github.com/chazu/slicecore/pkg/geom"
	"github.com/chazu/slicecore/pkg/units"
)

func TestLoopToPathSplitsAtFirstPoint(t *testing.T) {
	loop := Loop{
		Polygon: geom.Polygon{{X: 0, Y: 0}, {X: units.Scale(10), Y: 0}, {X: units.Scale(10), Y: units.Scale(10)}},
		Role:    ExternalPerimeter,
	}
	path := loop.ToPath()
	assert.Len(t, path.Polyline, len(loop.Polygon)+1)
	assert.Equal(t, loop.Polygon[0], path.Polyline[0])
	assert.Equal(t, loop.Polygon[0], path.Polyline[len(path.Polyline)-1])
}

func TestIsPrintableRejectsDegenerate(t *testing.T) {
	f := flow.New(0.5, 0.45)
	tiny := geom.Polygon{{X: 0, Y: 0}, {X: 1, Y: 0}}
	assert.False(t, IsPrintable(tiny, f))
}

func TestIsPrintableAcceptsNormalLoop(t *testing.T) {
	f := flow.New(0.5, 0.45)
	sq := geom.Polygon{{X: 0, Y: 0}, {X: units.Scale(10), Y: 0}, {X: units.Scale(10), Y: units.Scale(10)}, {X: 0, Y: units.Scale(10)}}
	assert.True(t, IsPrintable(sq, f))
}

func TestExtrusionMarkerInterface(t *testing.T) {
	var exts []Extrusion
	exts = append(exts, Loop{}, Path{})
	assert.Len(t, exts, 2)
}
