package layerregion

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chazu/slicecore/pkg/config"
	"github.com/chazu/slicecore/pkg/fillpattern"
	"github.com/chazu/slicecore/pkg/flow"
	"github.com/chazu/slicecore/pkg/geom"
	"github.com/chazu/slicecore/pkg/units"
)

type fakeLayer struct {
	id     int
	height units.Unit
	pf, in flow.Flow
}

func (f fakeLayer) ID() int                  { return f.id }
func (f fakeLayer) Height() units.Unit       { return f.height }
func (f fakeLayer) PerimeterFlow() flow.Flow { return f.pf }
func (f fakeLayer) InfillFlow() flow.Flow    { return f.in }

func TestProcessEmptyInputReturnsCleanly(t *testing.T) {
	l := fakeLayer{id: 1, height: units.Scale(0.2), pf: flow.New(0.5, 0.45), in: flow.New(0.5, 0.45)}
	region := Region{Config: config.Default(), Pattern: fillpattern.Rectilinear{}}
	lr := New(l, region, nil)

	err := lr.Process()
	require.NoError(t, err)
	assert.Empty(t, lr.Slices)
	assert.Empty(t, lr.Perimeters)
}

func TestProcessSingleSquareProducesOutput(t *testing.T) {
	l := fakeLayer{id: 1, height: units.Scale(0.2), pf: flow.New(0.5, 0.45), in: flow.New(0.5, 0.45)}
	region := Region{Config: config.Default(), Pattern: fillpattern.Rectilinear{}}
	region.Config.Perimeters = 2

	s := units.Scale(20)
	square := geom.Polygon{{X: 0, Y: 0}, {X: s, Y: 0}, {X: s, Y: s}, {X: 0, Y: s}}
	lr := New(l, region, []geom.Polygon{square})

	err := lr.Process()
	require.NoError(t, err)
	assert.NotEmpty(t, lr.Slices)
	assert.NotEmpty(t, lr.Perimeters)
	assert.NotEmpty(t, lr.FillSurfaces)
}
