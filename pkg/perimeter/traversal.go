package perimeter

import (
	"github.com/chazu/slicecore/pkg/extrusion"
	"github.com/chazu/slicecore/pkg/flow"
	"github.com/chazu/slicecore/pkg/geom"
)

// orderByNearestNeighbor returns a permutation of 0..len(points)-1, a
// greedy nearest-neighbor travel order starting from origin. Used both
// for island ordering and for the outermost hole layer's ordering
// (spec.md §4.4).
func orderByNearestNeighbor(points []geom.Point) []int {
	n := len(points)
	if n == 0 {
		return nil
	}
	idx := geom.NewIndex()
	for i, p := range points {
		idx.Insert(i, geom.Polygon{p})
	}
	order := make([]int, 0, n)
	cursor := geom.Point{}
	for len(order) < n {
		id, ok := idx.NearestTo(cursor)
		if !ok {
			break
		}
		order = append(order, id)
		cursor = points[id]
		idx.Remove(id)
	}
	return order
}

// holeChain is one physical hole traced across increasing depths: the
// outermost (depth 0) loop first, increasingly inner loops after it.
type holeChain struct {
	loops []geom.Polygon // index 0 = depth 0 (outermost, flagged external)
}

// buildHoleChains implements the "pop-and-climb" hole-ordering algorithm
// of spec.md §4.4: starting from each depth-0 hole, climb to the depth+1
// hole that uniquely encloses it, for as long as no other unconsumed
// hole at the current depth is also enclosed by that same parent (a
// conflicting sibling ends the chain).
func buildHoleChains(holesByDepth [][]geom.Polygon) []holeChain {
	if len(holesByDepth) == 0 || len(holesByDepth[0]) == 0 {
		return nil
	}

	depth0 := holesByDepth[0]
	seedPoints := make([]geom.Point, len(depth0))
	for i, h := range depth0 {
		seedPoints[i] = h[0]
	}
	order := orderByNearestNeighbor(seedPoints)

	consumed := make([]map[int]bool, len(holesByDepth))
	for d := range holesByDepth {
		consumed[d] = make(map[int]bool)
	}

	var chains []holeChain
	for _, startIdx := range order {
		if consumed[0][startIdx] {
			continue
		}
		chain := holeChain{loops: []geom.Polygon{depth0[startIdx]}}
		consumed[0][startIdx] = true
		curDepth := 0
		curIdx := startIdx
		cur := depth0[startIdx]

		for curDepth+1 < len(holesByDepth) {
			nextDepth := holesByDepth[curDepth+1]
			parent := -1
			for j, cand := range nextDepth {
				if consumed[curDepth+1][j] {
					continue
				}
				if len(cand) == 0 || !cand.EnclosesPoint(cur[0]) {
					continue
				}
				if parent != -1 {
					// Two candidates both enclose cur: ambiguous, stop here.
					parent = -2
					break
				}
				parent = j
			}
			if parent < 0 {
				break
			}
			// A conflicting sibling: some other still-unconsumed depth-d
			// hole is also enclosed by this same parent.
			conflict := false
			for k, other := range holesByDepth[curDepth] {
				if k == curIdx || consumed[curDepth][k] {
					continue
				}
				if len(other) > 0 && nextDepth[parent].EnclosesPoint(other[0]) {
					conflict = true
					break
				}
			}
			if conflict {
				break
			}
			chain.loops = append(chain.loops, nextDepth[parent])
			consumed[curDepth+1][parent] = true
			curDepth++
			curIdx = parent
			cur = nextDepth[parent]
		}
		chains = append(chains, chain)
	}
	return chains
}

// emitHoles converts hole chains into ExtrusionLoops, innermost first,
// with only the depth-0 (outermost) loop of each chain flagged external
// (spec.md §4.4, "Emit holes in reverse order").
func emitHoles(chains []holeChain, f flow.Flow) []extrusion.Loop {
	var out []extrusion.Loop
	for _, chain := range chains {
		for i := len(chain.loops) - 1; i >= 0; i-- {
			loop := chain.loops[i]
			if !extrusion.IsPrintable(loop, f) {
				continue
			}
			role := extrusion.Perimeter
			if i == 0 {
				role = extrusion.ExternalPerimeter
			}
			out = append(out, extrusion.Loop{
				Polygon:     loop,
				Role:        role,
				FlowSpacing: f.ScaledSpacing(),
			})
		}
	}
	return out
}

// emitContours converts the per-depth contour set into ExtrusionLoops,
// innermost depth first (spec.md §4.4, "Emit contours depth by depth
// from innermost to outermost").
func emitContours(contoursByDepth [][]geom.Polygon, f flow.Flow) []extrusion.Loop {
	maxDepth := len(contoursByDepth) - 1
	var out []extrusion.Loop
	for d := maxDepth; d >= 0; d-- {
		for _, c := range contoursByDepth[d] {
			if !extrusion.IsPrintable(c, f) {
				continue
			}
			role := extrusion.Perimeter
			switch {
			case d == maxDepth:
				role = extrusion.ContourInternalPerimeter
			case d == 0:
				role = extrusion.ExternalPerimeter
			}
			out = append(out, extrusion.Loop{
				Polygon:     c,
				Role:        role,
				FlowSpacing: f.ScaledSpacing(),
			})
		}
	}
	return out
}
