package perimeter

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chazu/slicecore/pkg/config"
	"github.com/chazu/slicecore/pkg/extrusion"
	"github.com/chazu/slicecore/pkg/fillpattern"
	"github.com/chazu/slicecore/pkg/flow"
	"github.com/chazu/slicecore/pkg/geom"
	"github.com/chazu/slicecore/pkg/surface"
	"github.com/chazu/slicecore/pkg/units"
)

func square20mm() geom.ExPolygon {
	s := units.Scale(20)
	return geom.ExPolygon{Contour: geom.Polygon{
		{X: 0, Y: 0}, {X: s, Y: 0}, {X: s, Y: s}, {X: 0, Y: s},
	}}
}

func TestGenerateSingleSquareThreePerimeters(t *testing.T) {
	island := surface.New(square20mm(), surface.Internal)
	f := flow.New(0.5, 0.45)
	cfg := config.Default()
	cfg.Perimeters = 3

	result := Generate([]surface.Surface{island}, surface.ThinWalls{}, f, cfg, 1, units.Scale(0.2), fillpattern.Rectilinear{})

	var loopAreas []float64
	for _, p := range result.Perimeters {
		if loop, ok := p.(extrusion.Loop); ok {
			loopAreas = append(loopAreas, loop.Polygon.Area())
		}
	}
	require.Len(t, loopAreas, 3)
	// emitContours emits innermost-first, so areas grow monotonically
	// out to the outermost (external) perimeter.
	for i := 1; i < len(loopAreas); i++ {
		assert.Greater(t, loopAreas[i], loopAreas[i-1], "each successive perimeter must be less inset than the last")
	}
	assert.NotEmpty(t, result.FillSurfaces)
}

func TestGenerateReversesOnBrimFirstLayer(t *testing.T) {
	island := surface.New(square20mm(), surface.Internal)
	f := flow.New(0.5, 0.45)
	cfg := config.Default()
	cfg.BrimWidth = 5

	without := Generate([]surface.Surface{island}, surface.ThinWalls{}, f, cfg, 1, units.Scale(0.2), fillpattern.Rectilinear{})
	withBrim := Generate([]surface.Surface{island}, surface.ThinWalls{}, f, cfg, 0, units.Scale(0.2), fillpattern.Rectilinear{})

	require.Equal(t, len(without.Perimeters), len(withBrim.Perimeters))
	if len(without.Perimeters) > 1 {
		assert.NotEqual(t, without.Perimeters[0], withBrim.Perimeters[0])
	}
}

func TestOrderByNearestNeighborStartsNearOrigin(t *testing.T) {
	points := []geom.Point{
		{X: units.Scale(100), Y: units.Scale(100)},
		{X: units.Scale(1), Y: units.Scale(1)},
		{X: units.Scale(50), Y: units.Scale(50)},
	}
	order := orderByNearestNeighbor(points)
	require.Len(t, order, 3)
	assert.Equal(t, 1, order[0])
}
