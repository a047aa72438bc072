package geom

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chazu/slicecore/pkg/units"
)

func square(x0, y0, size units.Unit) Polygon {
	return Polygon{
		{X: x0, Y: y0},
		{X: x0 + size, Y: y0},
		{X: x0 + size, Y: y0 + size},
		{X: x0, Y: y0 + size},
	}
}

func TestPolygonAreaAndOrientation(t *testing.T) {
	sq := square(0, 0, units.Scale(20))
	assert.True(t, sq.IsCounterClockwise())
	assert.InDelta(t, float64(units.Scale(20))*float64(units.Scale(20)), sq.Area(), 1)

	hole := sq.Reversed()
	assert.False(t, hole.IsCounterClockwise())
	assert.Less(t, hole.Area(), 0.0)
}

func TestPolygonEnclosesPoint(t *testing.T) {
	sq := square(0, 0, units.Scale(20))
	assert.True(t, sq.EnclosesPoint(Point{X: units.Scale(10), Y: units.Scale(10)}))
	assert.False(t, sq.EnclosesPoint(Point{X: units.Scale(30), Y: units.Scale(30)}))
}

func TestUnionExSimpleSquare(t *testing.T) {
	sq := square(0, 0, units.Scale(20))
	result := UnionEx([]Polygon{sq})
	require.Len(t, result, 1)
	assert.Empty(t, result[0].Holes)
	assert.InDelta(t, sq.Area(), result[0].Area(), 1)
}

func TestDiffExProducesHole(t *testing.T) {
	outer := square(0, 0, units.Scale(20))
	innerHole := square(units.Scale(5), units.Scale(5), units.Scale(5)).Reversed()
	result := DiffEx([]Polygon{outer}, []Polygon{innerHole.Reversed()}, false)
	require.Len(t, result, 1)
	assert.Len(t, result[0].Holes, 1)
}

func TestOffsetShrinksSquare(t *testing.T) {
	sq := square(0, 0, units.Scale(20))
	delta := -units.Scale(1)
	shrunk := Offset([]Polygon{sq}, delta)
	require.Len(t, shrunk, 1)
	assert.Less(t, shrunk[0].Area(), sq.Area())
}

func TestOffsetCollapseYieldsEmpty(t *testing.T) {
	sq := square(0, 0, units.Scale(1))
	shrunk := Offset([]Polygon{sq}, -units.Scale(5))
	assert.Empty(t, shrunk)
}

func TestRoundTripDiffOfUnion(t *testing.T) {
	a := []Polygon{square(0, 0, units.Scale(20))}
	b := []Polygon{square(units.Scale(30), 0, units.Scale(10))}
	union := Union(a, b)
	diff := Diff(union, b, false)
	// diff_ex(A ∪ B, B) ⊆ A: every point of the result must lie in A.
	for _, poly := range diff {
		for _, p := range poly {
			assert.True(t, a[0].EnclosesPoint(p), "point %v of diff_ex(A ∪ B, B) lies outside A", p)
		}
	}
	assert.NotEmpty(t, diff)
}

func TestIntersectionExSelfIsIdentity(t *testing.T) {
	sq := []Polygon{square(0, 0, units.Scale(20))}
	result := IntersectionEx(sq, sq)
	require.Len(t, result, 1)
	assert.InDelta(t, sq[0].Area(), result[0].Area(), 1)
}

func TestSafetyOffsetGrowsThenShrinksBackClose(t *testing.T) {
	sq := []Polygon{square(0, 0, units.Scale(20))}
	grown := SafetyOffset(sq, DefaultSafetyOffsetEps)
	require.NotEmpty(t, grown)
	shrunk := Offset(grown, -DefaultSafetyOffsetEps)
	require.NotEmpty(t, shrunk)
	assert.InDelta(t, sq[0].Area(), shrunk[0].Area(), float64(units.Scale(0.01)))
}

func TestMedialAxisOfThinSliver(t *testing.T) {
	// Two long edges 0.3mm apart, emulating scenario S3.
	w := units.Scale(0.3)
	sliver := Polygon{
		{X: 0, Y: 0},
		{X: units.Scale(20), Y: 0},
		{X: units.Scale(20), Y: w},
		{X: 0, Y: w},
	}
	polylines, closed := MedialAxis(ExPolygon{Contour: sliver}, units.Scale(0.5))
	assert.Empty(t, closed)
	require.NotEmpty(t, polylines)
	// The skeleton should run roughly along y = w/2.
	for _, pl := range polylines {
		for _, p := range pl {
			assert.InDelta(t, float64(w)/2, float64(p.Y), float64(w))
		}
	}
}

func TestSimplifyPolylineRemovesCollinearPoints(t *testing.T) {
	line := Polyline{{X: 0, Y: 0}, {X: 10, Y: 0}, {X: 20, Y: 0}, {X: 20, Y: 20}}
	simplified := SimplifyPolyline(line, 1)
	assert.Less(t, len(simplified), len(line))
}

func TestClipByPolygonSplitsOutsidePortion(t *testing.T) {
	line := Polyline{{X: -units.Scale(10), Y: units.Scale(5)}, {X: units.Scale(30), Y: units.Scale(5)}}
	clip := square(0, 0, units.Scale(20))
	clipped := ClipByPolygon(line, clip)
	require.Len(t, clipped, 1)
	assert.InDelta(t, float64(units.Scale(20)), clipped[0].Length(), 1)
}
