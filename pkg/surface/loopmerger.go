package surface

import (
	"github.com/chazu/slicecore/pkg/geom"
)

// MergeLoops turns an unordered sequence of closed slicing loops into a
// set of well-formed ExPolygons, tagged Internal (spec.md §4.2). Its
// final classification is decided later by FillClassifier and
// BridgeDetector; LoopMerger only needs to resolve containment.
//
// Degenerate loops (spec.md §7, DegenerateLoop) are silently dropped.
func MergeLoops(loops []geom.Polygon) []Surface {
	loops = dropDegenerate(loops)
	if len(loops) == 0 {
		return nil
	}

	ordered := sortByContainment(loops)
	safe := make([]geom.Polygon, len(ordered))
	for i, l := range ordered {
		grown := geom.SafetyOffset([]geom.Polygon{l}, geom.DefaultSafetyOffsetEps)
		if len(grown) == 0 {
			safe[i] = l
			continue
		}
		safe[i] = grown[0]
	}

	var result []geom.ExPolygon
	for i, l := range safe {
		if ordered[i].IsCounterClockwise() {
			result = geom.UnionEx(geom.ExPolygonsToPolygons(result), []geom.Polygon{l})
		} else {
			result = geom.DiffEx(geom.ExPolygonsToPolygons(result), []geom.Polygon{l}, false)
		}
	}

	out := make([]Surface, 0, len(result))
	for _, ex := range result {
		shrunk := geom.Offset(ex.Polygons(), -geom.DefaultSafetyOffsetEps)
		for _, fixed := range geom.UnionEx(shrunk) {
			out = append(out, New(fixed, Internal))
		}
	}
	return out
}

func dropDegenerate(loops []geom.Polygon) []geom.Polygon {
	out := make([]geom.Polygon, 0, len(loops))
	for _, l := range loops {
		if !l.IsDegenerate() {
			out = append(out, l)
		}
	}
	return out
}

// sortByContainment orders loops so that any loop enclosing another
// precedes it, via a stable topological sort over the containment DAG
// (spec.md §9: "the correct underlying requirement is outer loops
// precede loops they enclose"; the source's non-total comparator is
// resolved here as Kahn's algorithm, which keeps input order among
// non-nested siblings).
//
// A spatial index narrows the O(n²) candidate set before the exact
// EnclosesPoint containment test runs, since containment is only
// possible between loops whose bounding boxes overlap.
func sortByContainment(loops []geom.Polygon) []geom.Polygon {
	n := len(loops)
	idx := geom.NewIndex()
	for i, l := range loops {
		idx.Insert(i, l)
	}

	children := make([][]int, n) // children[i] = loops i encloses
	indegree := make([]int, n)   // indegree[j] = number of loops enclosing j
	for i, l := range loops {
		candidates := idx.IntersectCandidates(l)
		for _, j := range candidates {
			if j == i || len(loops[j]) == 0 {
				continue
			}
			if l.EnclosesPoint(loops[j][0]) {
				children[i] = append(children[i], j)
				indegree[j]++
			}
		}
	}

	queue := make([]int, 0, n)
	for i := 0; i < n; i++ {
		if indegree[i] == 0 {
			queue = append(queue, i)
		}
	}

	order := make([]int, 0, n)
	for len(queue) > 0 {
		i := queue[0]
		queue = queue[1:]
		order = append(order, i)
		for _, c := range children[i] {
			indegree[c]--
			if indegree[c] == 0 {
				queue = append(queue, c)
			}
		}
	}
	// A cycle (shouldn't occur for well-formed input) leaves some nodes
	// un-visited; append them in original order rather than dropping
	// geometry.
	visited := make([]bool, n)
	for _, i := range order {
		visited[i] = true
	}
	for i := 0; i < n; i++ {
		if !visited[i] {
			order = append(order, i)
		}
	}

	out := make([]geom.Polygon, n)
	for pos, i := range order {
		out[pos] = loops[i]
	}
	return out
}
