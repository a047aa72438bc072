package geom

import (
	"math"

	"github.com/dhconnelly/rtreego"
)

// Index is a 2D bounding-box spatial index over caller-assigned integer
// IDs, backed by github.com/dhconnelly/rtreego. It answers the
// nearest-neighbor and bounding-box-intersection queries of
// LoopMerger's containment sort and the PerimeterGenerator's
// island/hole shortest-path traversal. BridgeDetector does not use it:
// it tests every internal surface against a candidate directly.
type Index struct {
	tree  *rtreego.Rtree
	boxes map[int]*indexedBox
}

type indexedBox struct {
	id   int
	rect *rtreego.Rect
}

func (b *indexedBox) Bounds() *rtreego.Rect {
	return b.rect
}

// NewIndex creates an empty spatial index.
func NewIndex() *Index {
	return &Index{
		tree:  rtreego.NewTree(2, 25, 50),
		boxes: make(map[int]*indexedBox),
	}
}

// boundingRect builds an rtreego.Rect from a Polygon's bounding box,
// padding zero-width/height boxes by one unit since rtreego requires a
// strictly positive extent on every dimension.
func boundingRect(poly Polygon) *rtreego.Rect {
	min, max := poly.BoundingBox()
	w := math.Max(float64(max.X-min.X), 1)
	h := math.Max(float64(max.Y-min.Y), 1)
	rect, err := rtreego.NewRect(rtreego.Point{float64(min.X), float64(min.Y)}, []float64{w, h})
	if err != nil {
		// A non-positive-extent rect can only happen if the polygon has
		// a single point; fall back to a 1x1 box there.
		rect, _ = rtreego.NewRect(rtreego.Point{float64(min.X), float64(min.Y)}, []float64{1, 1})
	}
	return rect
}

// Insert adds the polygon under the given ID, using its bounding box as
// the indexed extent.
func (idx *Index) Insert(id int, poly Polygon) {
	box := &indexedBox{id: id, rect: boundingRect(poly)}
	idx.boxes[id] = box
	idx.tree.Insert(box)
}

// IntersectCandidates returns the IDs of every indexed polygon whose
// bounding box intersects poly's bounding box. This is a broad-phase
// filter: callers still need an exact geometric test afterwards.
func (idx *Index) IntersectCandidates(poly Polygon) []int {
	rect := boundingRect(poly)
	hits := idx.tree.SearchIntersect(rect)
	ids := make([]int, 0, len(hits))
	for _, h := range hits {
		ids = append(ids, h.(*indexedBox).id)
	}
	return ids
}

// NearestTo returns the ID of the indexed polygon whose bounding box
// lies closest to pt (distance to the box, zero when pt is inside it),
// or ok=false if the index is empty.
func (idx *Index) NearestTo(pt Point) (id int, ok bool) {
	if len(idx.boxes) == 0 {
		return 0, false
	}
	nearest := idx.tree.NearestNeighbor(rtreego.Point{float64(pt.X), float64(pt.Y)})
	if nearest == nil {
		return 0, false
	}
	return nearest.(*indexedBox).id, true
}

// Remove removes the polygon with the given ID from the index.
func (idx *Index) Remove(id int) {
	box, ok := idx.boxes[id]
	if !ok {
		return
	}
	idx.tree.Delete(box)
	delete(idx.boxes, id)
}
