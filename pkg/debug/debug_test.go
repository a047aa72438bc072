package debug

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chazu/slicecore/pkg/config"
	"github.com/chazu/slicecore/pkg/flow"
	"github.com/chazu/slicecore/pkg/fillpattern"
	"github.com/chazu/slicecore/pkg/geom"
	"github.com/chazu/slicecore/pkg/layerregion"
	"github.com/chazu/slicecore/pkg/units"
)

type fakeLayer struct {
	id int
	pf flow.Flow
}

func (f fakeLayer) ID() int                  { return f.id }
func (f fakeLayer) Height() units.Unit       { return units.Scale(0.2) }
func (f fakeLayer) PerimeterFlow() flow.Flow { return f.pf }
func (f fakeLayer) InfillFlow() flow.Flow    { return f.pf }

func newRegion(t *testing.T) *layerregion.LayerRegion {
	t.Helper()
	s := units.Scale(20)
	square := geom.Polygon{{X: 0, Y: 0}, {X: s, Y: 0}, {X: s, Y: s}, {X: 0, Y: s}}
	l := fakeLayer{id: 7, pf: flow.New(0.5, 0.45)}
	region := layerregion.Region{Config: config.Default(), Pattern: fillpattern.Rectilinear{}}
	lr := layerregion.New(l, region, []geom.Polygon{square})
	require.NoError(t, lr.Process())
	return lr
}

func TestDumpNoFlagsIsNoop(t *testing.T) {
	lr := newRegion(t)
	err := Dump(lr, "test", config.Debug{})
	assert.NoError(t, err)
}

func TestDumpGoonWritesNoFiles(t *testing.T) {
	lr := newRegion(t)
	dir := t.TempDir()
	err := Dump(lr, "test", config.Debug{Goon: true, Dir: dir})
	assert.NoError(t, err)
	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Empty(t, entries)
}
