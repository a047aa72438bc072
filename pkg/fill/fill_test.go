package fill

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chazu/slicecore/pkg/config"
	"github.com/chazu/slicecore/pkg/geom"
	"github.com/chazu/slicecore/pkg/surface"
	"github.com/chazu/slicecore/pkg/units"
)

func sq(x0, y0, size units.Unit) geom.ExPolygon {
	return geom.ExPolygon{Contour: geom.Polygon{
		{X: x0, Y: y0}, {X: x0 + size, Y: y0}, {X: x0 + size, Y: y0 + size}, {X: x0, Y: y0 + size},
	}}
}

func TestClassifyDemotesTopWhenNoSolidLayers(t *testing.T) {
	cfg := config.Default()
	cfg.TopSolidLayers = 0
	surfaces := []surface.Surface{surface.New(sq(0, 0, units.Scale(10)), surface.Top)}
	out := Classify(surfaces, cfg)
	require.Len(t, out, 1)
	assert.Equal(t, surface.Internal, out[0].Type)
}

func TestClassifyPromotesSmallInternalToSolid(t *testing.T) {
	cfg := config.Default()
	cfg.SolidInfillBelowArea = 1000
	small := surface.New(sq(0, 0, units.Scale(1)), surface.Internal)
	out := Classify([]surface.Surface{small}, cfg)
	require.Len(t, out, 1)
	assert.Equal(t, surface.InternalSolid, out[0].Type)
}

func TestClassifyIsIdempotent(t *testing.T) {
	cfg := config.Default()
	surfaces := []surface.Surface{
		surface.New(sq(0, 0, units.Scale(10)), surface.Top),
		surface.New(sq(units.Scale(20), 0, units.Scale(1)), surface.Internal),
	}
	once := Classify(surfaces, cfg)
	twice := Classify(once, cfg)
	require.Len(t, twice, len(once))
	for i := range once {
		assert.Equal(t, once[i].Type, twice[i].Type)
	}
}

func TestDetectBridgesSkippedWhenFillDensityZero(t *testing.T) {
	cfg := config.Default()
	cfg.FillDensity = 0
	fillSurfaces := []surface.Surface{surface.New(sq(0, 0, units.Scale(10)), surface.Bottom)}
	out := DetectBridges(fillSurfaces, nil, units.Scale(0.45), 1, cfg)
	assert.Equal(t, fillSurfaces, out)
}

func TestDetectBridgesFindsSpanningBottomSurface(t *testing.T) {
	cfg := config.Default()
	bottom := surface.New(sq(0, 0, units.Scale(10)), surface.Bottom)
	supportA := surface.New(sq(units.Scale(-2), 0, units.Scale(2)), surface.Internal)
	supportB := surface.New(sq(units.Scale(10), 0, units.Scale(2)), surface.Internal)

	out := DetectBridges([]surface.Surface{bottom}, []surface.Surface{supportA, supportB}, units.Scale(0.45), 1, cfg)
	assert.NotEmpty(t, out)
	bridged := false
	for _, s := range out {
		if s.Type == surface.Bottom && s.HasBridgeAngle {
			bridged = true
		}
	}
	assert.True(t, bridged, "the bottom surface spanning both supports should come back as an angled bridge")
}
