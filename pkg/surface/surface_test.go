package surface

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chazu/slicecore/pkg/flow"
	"github.com/chazu/slicecore/pkg/geom"
	"github.com/chazu/slicecore/pkg/units"
)

func outerSquare(size units.Unit) geom.Polygon {
	return geom.Polygon{
		{X: 0, Y: 0},
		{X: size, Y: 0},
		{X: size, Y: size},
		{X: 0, Y: size},
	}
}

func TestMergeLoopsSingleSquareIsInternal(t *testing.T) {
	loops := []geom.Polygon{outerSquare(units.Scale(20))}
	surfaces := MergeLoops(loops)
	require.Len(t, surfaces, 1)
	assert.Equal(t, Internal, surfaces[0].Type)
	assert.InDelta(t, float64(units.Scale(20))*float64(units.Scale(20)), surfaces[0].ExPolygon.Area(), float64(units.Scale(1)))
}

func TestMergeLoopsSquareWithHole(t *testing.T) {
	outer := outerSquare(units.Scale(20))
	hole := geom.Polygon{
		{X: units.Scale(5), Y: units.Scale(5)},
		{X: units.Scale(5), Y: units.Scale(10)},
		{X: units.Scale(10), Y: units.Scale(10)},
		{X: units.Scale(10), Y: units.Scale(5)},
	}
	surfaces := MergeLoops([]geom.Polygon{outer, hole})
	require.Len(t, surfaces, 1)
	assert.Len(t, surfaces[0].ExPolygon.Holes, 1)
}

func TestMergeLoopsDropsDegenerateLoop(t *testing.T) {
	outer := outerSquare(units.Scale(20))
	degenerate := geom.Polygon{{X: 0, Y: 0}, {X: 1, Y: 1}}
	surfaces := MergeLoops([]geom.Polygon{outer, degenerate})
	require.Len(t, surfaces, 1)
}

func TestBuildThinSliverProducesNoSlicesButThinWall(t *testing.T) {
	w := units.Scale(0.3)
	sliver := geom.Polygon{
		{X: 0, Y: 0},
		{X: units.Scale(20), Y: 0},
		{X: units.Scale(20), Y: w},
		{X: 0, Y: w},
	}
	f := flow.New(0.5, 0.45)
	slices, walls := Build([]geom.Polygon{sliver}, f)
	assert.Empty(t, slices)
	assert.NotEmpty(t, walls.Polylines)
}

func TestBuildSquareProducesSlices(t *testing.T) {
	sq := outerSquare(units.Scale(20))
	f := flow.New(0.5, 0.45)
	slices, _ := Build([]geom.Polygon{sq}, f)
	require.NotEmpty(t, slices)
	assert.Less(t, slices[0].ExPolygon.Area(), sq.Area())
}
