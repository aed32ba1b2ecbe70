package wed_test

import (
	"fmt"

	"github.com/golang/geo/r2"
	"github.com/katalvlaran/wingededge/wed"
)

// triangleFixture returns a single triangle A-B-C, CCW from the X axis.
func triangleFixture() (map[wed.NodeID]r2.Vector, []wed.Edge) {
	nodes := map[wed.NodeID]r2.Vector{
		"A": {X: 0, Y: 0},
		"B": {X: 2, Y: 0},
		"C": {X: 1, Y: 2},
	}
	edges := []wed.Edge{
		{U: "A", V: "B"},
		{U: "B", V: "C"},
		{U: "C", V: "A"},
	}
	return nodes, edges
}

// twoTrianglesFixture returns a square A-B-C-D split by diagonal A-C into
// two triangles sharing that diagonal.
func twoTrianglesFixture() (map[wed.NodeID]r2.Vector, []wed.Edge) {
	nodes := map[wed.NodeID]r2.Vector{
		"A": {X: 0, Y: 0},
		"B": {X: 2, Y: 0},
		"C": {X: 2, Y: 2},
		"D": {X: 0, Y: 2},
	}
	edges := []wed.Edge{
		{U: "A", V: "B"},
		{U: "B", V: "C"},
		{U: "C", V: "D"},
		{U: "D", V: "A"},
		{U: "A", V: "C"},
	}
	return nodes, edges
}

// pureFilamentFixture returns a three-node path with no cycle at all.
func pureFilamentFixture() (map[wed.NodeID]r2.Vector, []wed.Edge) {
	nodes := map[wed.NodeID]r2.Vector{
		"A": {X: 0, Y: 0},
		"B": {X: 1, Y: 0},
		"C": {X: 2, Y: 1},
	}
	edges := []wed.Edge{
		{U: "A", V: "B"},
		{U: "B", V: "C"},
	}
	return nodes, edges
}

// triangleWithWhiskerFixture is triangleFixture plus a dangling edge A-D.
func triangleWithWhiskerFixture() (map[wed.NodeID]r2.Vector, []wed.Edge) {
	nodes, edges := triangleFixture()
	nodes["D"] = r2.Vector{X: -2, Y: 0}
	edges = append(edges, wed.Edge{U: "A", V: "D"})
	return nodes, edges
}

// interiorFilamentFixture returns a square A-B-C-D (no diagonal) plus a
// filament A-E where E lies strictly inside the square. Unlike
// triangleWithWhiskerFixture's dangling node (which sits outside the
// triangle and so falls back to the exterior face), E sits inside the
// square's own ring, so the filament's two incident half-edges should
// resolve to the square's own face on both sides rather than the
// exterior.
func interiorFilamentFixture() (map[wed.NodeID]r2.Vector, []wed.Edge) {
	nodes := map[wed.NodeID]r2.Vector{
		"A": {X: 0, Y: 0},
		"B": {X: 2, Y: 0},
		"C": {X: 2, Y: 2},
		"D": {X: 0, Y: 2},
		"E": {X: 1, Y: 1},
	}
	edges := []wed.Edge{
		{U: "A", V: "B"},
		{U: "B", V: "C"},
		{U: "C", V: "D"},
		{U: "D", V: "A"},
		{U: "A", V: "E"},
	}
	return nodes, edges
}

// twoDisjointTrianglesFixture returns two triangles with no shared nodes
// and no containment relationship between them, for exercising the
// exterior stitcher's handling of more than one connected component.
func twoDisjointTrianglesFixture() (map[wed.NodeID]r2.Vector, []wed.Edge) {
	nodes := map[wed.NodeID]r2.Vector{
		"A": {X: 0, Y: 0},
		"B": {X: 2, Y: 0},
		"C": {X: 1, Y: 2},
		"P": {X: 10, Y: 0},
		"Q": {X: 12, Y: 0},
		"R": {X: 11, Y: 2},
	}
	edges := []wed.Edge{
		{U: "A", V: "B"},
		{U: "B", V: "C"},
		{U: "C", V: "A"},
		{U: "P", V: "Q"},
		{U: "Q", V: "R"},
		{U: "R", V: "P"},
	}
	return nodes, edges
}

// nestedCyclesFixture returns a large outer square and a small disjoint
// inner triangle fully contained within it, for hole-detection tests.
func nestedCyclesFixture() (map[wed.NodeID]r2.Vector, []wed.Edge) {
	nodes := map[wed.NodeID]r2.Vector{
		"A": {X: 0, Y: 0},
		"B": {X: 10, Y: 0},
		"C": {X: 10, Y: 10},
		"D": {X: 0, Y: 10},
		"P": {X: 4, Y: 4},
		"Q": {X: 6, Y: 4},
		"R": {X: 5, Y: 6},
	}
	edges := []wed.Edge{
		{U: "A", V: "B"},
		{U: "B", V: "C"},
		{U: "C", V: "D"},
		{U: "D", V: "A"},
		{U: "P", V: "Q"},
		{U: "Q", V: "R"},
		{U: "R", V: "P"},
	}
	return nodes, edges
}

// eberlyReferenceGraphFixture is the 28-vertex example from the
// regions_from_graph docstring in original_source/pysal/network/wed.py:
// two isolated vertices (0 and 17), three filaments, and the remaining
// nodes resolving into 7 minimum cycles. See internal_test.go's
// eberlyReferenceGraph for the package-internal copy used to check
// extract()'s raw output directly; this copy uses the exported
// wed.NodeID/wed.Edge types for the public-API tests in property_test.go.
func eberlyReferenceGraphFixture() (map[wed.NodeID]r2.Vector, []wed.Edge) {
	raw := map[int][2]float64{
		0: {1, 8}, 1: {1, 7}, 2: {4, 7}, 3: {0, 4}, 4: {5, 4}, 5: {3, 5},
		6: {2, 4.5}, 7: {6.5, 9}, 8: {6.2, 5}, 9: {5.5, 3}, 10: {7, 3},
		11: {7.5, 7.25}, 12: {8, 4}, 13: {11.5, 7.25}, 14: {9, 1},
		15: {11, 3}, 16: {12, 2}, 17: {12, 5}, 18: {13.5, 6},
		19: {14, 7.25}, 20: {16, 4}, 21: {18, 8.5}, 22: {16, 1},
		23: {21, 1}, 24: {21, 4}, 25: {18, 3.5}, 26: {17, 2}, 27: {19, 2},
	}
	nodeID := func(i int) wed.NodeID { return wed.NodeID(fmt.Sprintf("%d", i)) }

	nodes := make(map[wed.NodeID]r2.Vector, len(raw))
	for id, xy := range raw {
		nodes[nodeID(id)] = r2.Vector{X: xy[0], Y: xy[1]}
	}

	pairs := [][2]int{
		{1, 2}, {1, 3}, {2, 4}, {2, 7}, {3, 4}, {4, 5}, {5, 6}, {7, 11},
		{8, 9}, {8, 10}, {9, 10}, {11, 12}, {11, 13}, {12, 13}, {12, 20},
		{13, 18}, {14, 15}, {15, 16}, {18, 19}, {19, 20}, {19, 21},
		{20, 21}, {20, 22}, {20, 24}, {22, 23}, {23, 24}, {25, 26},
		{25, 27}, {26, 27},
	}
	edges := make([]wed.Edge, 0, len(pairs))
	for _, p := range pairs {
		edges = append(edges, wed.Edge{U: nodeID(p[0]), V: nodeID(p[1])})
	}
	return nodes, edges
}
