package fillpattern

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chazu/slicecore/pkg/geom"
	"github.com/chazu/slicecore/pkg/units"
)

func TestRectilinearGeneratesLinesAcrossSquare(t *testing.T) {
	sq := geom.Polygon{
		{X: 0, Y: 0},
		{X: units.Scale(20), Y: 0},
		{X: units.Scale(20), Y: units.Scale(20)},
		{X: 0, Y: units.Scale(20)},
	}
	ex := geom.ExPolygon{Contour: sq}

	r := Rectilinear{AngleDeg: 0}
	params, lines := r.Generate(ex, 1, units.Scale(0.5))
	require.NotEmpty(t, lines)
	assert.Greater(t, params.Spacing, units.Unit(0))
	for _, l := range lines {
		assert.Greater(t, l.Length(), 0.0)
	}
}

func TestRectilinearZeroDensityProducesNoLines(t *testing.T) {
	sq := geom.Polygon{{X: 0, Y: 0}, {X: units.Scale(10), Y: 0}, {X: units.Scale(10), Y: units.Scale(10)}, {X: 0, Y: units.Scale(10)}}
	r := Rectilinear{}
	_, lines := r.Generate(geom.ExPolygon{Contour: sq}, 0, units.Scale(0.5))
	assert.Empty(t, lines)
}
