package wed_test

import (
	"errors"
	"testing"

	"github.com/golang/geo/r2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/wingededge/wed"
)

// assertUniversalInvariants checks the properties every built Table must
// satisfy regardless of input topology: Twin symmetry and resolved faces on
// every half-edge returned by EnumLinksNode, and a closed EnumEdgesRegion
// walk per face actually bounded by that face.
func assertUniversalInvariants(t *testing.T, tbl *wed.Table, nodes map[wed.NodeID]r2.Vector) {
	t.Helper()

	for n := range nodes {
		links := tbl.EnumLinksNode(n)
		for _, h := range links {
			assert.Equal(t, n, tbl.StartNode(h), "EnumLinksNode returned a half-edge not starting at n")
			twin := h ^ 1
			assert.Equal(t, tbl.StartNode(h), tbl.EndNode(twin))
			assert.Equal(t, tbl.EndNode(h), tbl.StartNode(twin))
			assert.Equal(t, tbl.RightPolygon(h), tbl.LeftPolygon(twin))
			assert.Equal(t, tbl.LeftPolygon(h), tbl.RightPolygon(twin))
			assert.NotEqual(t, wed.NoFace, tbl.RightPolygon(h))
			assert.NotEqual(t, wed.NoFace, tbl.LeftPolygon(h))
		}
	}

	seenFaces := map[wed.FaceID]bool{}
	for n := range nodes {
		for _, h := range tbl.EnumLinksNode(n) {
			seenFaces[tbl.RightPolygon(h)] = true
		}
	}
	for f := range seenFaces {
		bound := tbl.EnumEdgesRegion(f)
		require.NotEmpty(t, bound, "face %d has no boundary walk", f)
		for _, h := range bound {
			assert.Equal(t, f, tbl.RightPolygon(h), "EnumEdgesRegion returned a half-edge not bounding f")
		}
		// A face can have more than one boundary loop (a disjoint exterior
		// component, or a hole re-homed onto it) but EnumEdgesRegion never
		// interleaves them, so a break in end-to-start continuity always
		// marks a loop closing back to its own start, not a walk defect.
		loopStart := 0
		for i := range bound {
			if i+1 < len(bound) && tbl.EndNode(bound[i]) == tbl.StartNode(bound[i+1]) {
				continue
			}
			assert.Equal(t, tbl.StartNode(bound[loopStart]), tbl.EndNode(bound[i]),
				"boundary loop of face %d does not close", f)
			loopStart = i + 1
		}
	}
}

func TestBuild_Triangle(t *testing.T) {
	nodes, edges := triangleFixture()
	tbl, err := wed.Build(nodes, edges)
	require.NoError(t, err)
	assertUniversalInvariants(t, tbl, nodes)

	assert.Equal(t, 1, tbl.NumCycles())
	assert.Len(t, tbl.EnumLinksNode("A"), 2)
	assert.Len(t, tbl.EnumLinksNode("B"), 2)
	assert.Len(t, tbl.EnumLinksNode("C"), 2)

	links := tbl.EnumLinksNode("A")
	bounded := tbl.RightPolygon(links[0])
	if bounded == tbl.ExteriorFace() {
		bounded = tbl.LeftPolygon(links[0])
	}
	assert.Len(t, tbl.EnumEdgesRegion(bounded), 3)
}

func TestBuild_TwoTrianglesSharingDiagonal(t *testing.T) {
	nodes, edges := twoTrianglesFixture()
	tbl, err := wed.Build(nodes, edges)
	require.NoError(t, err)
	assertUniversalInvariants(t, tbl, nodes)

	assert.Equal(t, 2, tbl.NumCycles())
	assert.Len(t, tbl.EnumLinksNode("A"), 3) // B, D, C
	assert.Len(t, tbl.EnumLinksNode("C"), 3) // B, D, A
	assert.Len(t, tbl.EnumLinksNode("B"), 2)
	assert.Len(t, tbl.EnumLinksNode("D"), 2)
}

func TestBuild_PureFilament(t *testing.T) {
	nodes, edges := pureFilamentFixture()
	tbl, err := wed.Build(nodes, edges)
	require.NoError(t, err)
	assertUniversalInvariants(t, tbl, nodes)

	assert.Equal(t, 0, tbl.NumCycles())
	for n := range nodes {
		for _, h := range tbl.EnumLinksNode(n) {
			assert.Equal(t, tbl.ExteriorFace(), tbl.RightPolygon(h))
		}
	}
}

func TestBuild_IsolatedVertices(t *testing.T) {
	nodes := map[wed.NodeID]r2.Vector{"A": {X: 0, Y: 0}, "B": {X: 5, Y: 5}}
	tbl, err := wed.Build(nodes, nil)
	require.NoError(t, err)

	assert.Equal(t, 0, tbl.NumCycles())
	h, ok := tbl.NodeEdge("A")
	assert.True(t, ok)
	assert.Equal(t, wed.NoHalfEdge, h)
	assert.Empty(t, tbl.EnumLinksNode("A"))
}

func TestBuild_TriangleWithWhisker(t *testing.T) {
	nodes, edges := triangleWithWhiskerFixture()
	tbl, err := wed.Build(nodes, edges)
	require.NoError(t, err)
	assertUniversalInvariants(t, tbl, nodes)

	assert.Equal(t, 1, tbl.NumCycles())
	// D is a filament leaf: exactly one incident half-edge, back to A.
	links := tbl.EnumLinksNode("D")
	require.Len(t, links, 1)
	assert.Equal(t, wed.NodeID("A"), tbl.EndNode(links[0]))
	// A now has 3 incident half-edges: to B, to C (cycle) and to D (filament).
	assert.Len(t, tbl.EnumLinksNode("A"), 3)
}

func TestBuild_InteriorFilament(t *testing.T) {
	nodes, edges := interiorFilamentFixture()
	tbl, err := wed.Build(nodes, edges)
	require.NoError(t, err)
	assertUniversalInvariants(t, tbl, nodes)

	assert.Equal(t, 1, tbl.NumCycles())

	// Find the square's own face id from any of its cycle half-edges.
	links := tbl.EnumLinksNode("B")
	require.NotEmpty(t, links)
	square := tbl.RightPolygon(links[0])
	require.NotEqual(t, tbl.ExteriorFace(), square)

	// The filament A-E sits strictly inside the square: both faces of its
	// half-edge must resolve to the square, not the exterior — the
	// filament does not separate the square into two regions.
	aLinks := tbl.EnumLinksNode("A")
	require.Len(t, aLinks, 3) // to B, to D, to E
	var toE wed.HalfEdgeID = wed.NoHalfEdge
	for _, h := range aLinks {
		if tbl.EndNode(h) == "E" {
			toE = h
		}
	}
	require.NotEqual(t, wed.NoHalfEdge, toE)
	assert.Equal(t, square, tbl.RightPolygon(toE))
	assert.Equal(t, square, tbl.LeftPolygon(toE))
}

func TestBuild_TwoDisjointCycles(t *testing.T) {
	nodes, edges := twoDisjointTrianglesFixture()
	tbl, err := wed.Build(nodes, edges)
	require.NoError(t, err)
	assertUniversalInvariants(t, tbl, nodes)

	assert.Equal(t, 2, tbl.NumCycles())

	// Both triangles' outward-facing half-edges share the single exterior
	// face id, even though the two triangles are disjoint and the
	// exterior stitcher must chain them as two separate closed walks
	// rather than one connected ring.
	exterior := tbl.ExteriorFace()
	bound := tbl.EnumEdgesRegion(exterior)
	assert.Len(t, bound, 6) // 3 outward half-edges per triangle
	for _, h := range bound {
		assert.Equal(t, exterior, tbl.RightPolygon(h))
	}
}

func TestBuild_HoleDetection(t *testing.T) {
	nodes, edges := nestedCyclesFixture()

	// Without the option, the inner triangle's face is not recorded as a hole.
	plain, err := wed.Build(nodes, edges)
	require.NoError(t, err)
	assert.Empty(t, plain.Holes())

	tbl, err := wed.Build(nodes, edges, wed.WithHoleDetection())
	require.NoError(t, err)
	assertUniversalInvariants(t, tbl, nodes)
	assert.Equal(t, 2, tbl.NumCycles())

	holes := tbl.Holes()
	require.Len(t, holes, 1)
	for outer, inners := range holes {
		assert.NotEqual(t, tbl.ExteriorFace(), outer)
		require.Len(t, inners, 1)
		inner := inners[0]

		// The hole's outward-facing half-edges must be re-homed onto the
		// enclosing cycle's face id, not left pointing at the exterior.
		for _, h := range tbl.EnumEdgesRegion(inner) {
			twin := h ^ 1
			assert.Equal(t, outer, tbl.RightPolygon(twin),
				"hole boundary half-edge still points at the exterior instead of its container")
			assert.Equal(t, outer, tbl.LeftPolygon(h))
		}

		// The outer face's own boundary query must now surface the hole's
		// loop alongside its own 4-edge square ring, rather than silently
		// merging the hole into the exterior: 4 (outer's own ring) + 3
		// (the inner triangle's re-homed boundary).
		outerBound := tbl.EnumEdgesRegion(outer)
		assert.Len(t, outerBound, 7)
	}
}

func TestBuild_InvalidInput(t *testing.T) {
	nodes := map[wed.NodeID]r2.Vector{"A": {X: 0, Y: 0}}
	_, err := wed.Build(nodes, []wed.Edge{{U: "A", V: "ghost"}})
	require.Error(t, err)
	assert.True(t, errors.Is(err, wed.ErrInvalidInput))
}

func TestBuild_StrictDegenerateGeometry(t *testing.T) {
	// Three collinear points: the initial clockwise-most pick from the
	// leftmost node is ambiguous between the other two.
	nodes := map[wed.NodeID]r2.Vector{
		"X": {X: 0, Y: 0}, "P": {X: 2, Y: 0}, "Q": {X: 4, Y: 0},
	}
	edges := []wed.Edge{{U: "X", V: "P"}, {U: "X", V: "Q"}, {U: "P", V: "Q"}}

	_, err := wed.Build(nodes, edges, wed.WithStrictDegenerateGeometry())
	require.Error(t, err)
	assert.True(t, errors.Is(err, wed.ErrDegenerateGeometry))
}

func TestEdgeLengthAndWLinks(t *testing.T) {
	nodes, edges := triangleFixture()
	tbl, err := wed.Build(nodes, edges)
	require.NoError(t, err)

	lengths := tbl.EdgeLength()
	assert.Len(t, lengths, 3) // one per undirected edge

	links := tbl.WLinks()
	assert.ElementsMatch(t, []wed.NodeID{"B", "C"}, links["A"])
	assert.ElementsMatch(t, []wed.NodeID{"A", "C"}, links["B"])
	assert.ElementsMatch(t, []wed.NodeID{"A", "B"}, links["C"])
}

func TestAssignPoints(t *testing.T) {
	nodes, edges := triangleFixture()
	tbl, err := wed.Build(nodes, edges)
	require.NoError(t, err)

	nearest := tbl.AssignPointsToNodes([]r2.Vector{{X: 0.1, Y: 0.1}, {X: 1.9, Y: 0.1}})
	assert.Equal(t, wed.NodeID("A"), nearest[0])
	assert.Equal(t, wed.NodeID("B"), nearest[1])

	nearestEdges := tbl.AssignPointsToEdges([]r2.Vector{{X: 1, Y: 0.01}})
	require.Len(t, nearestEdges, 1)
	assert.NotEqual(t, wed.NoHalfEdge, nearestEdges[0])
	u, v := tbl.StartNode(nearestEdges[0]), tbl.EndNode(nearestEdges[0])
	assert.True(t, (u == "A" && v == "B") || (u == "B" && v == "A"))
}
