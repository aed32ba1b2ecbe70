// Package wed builds a Winged-Edge planar subdivision from an embedded
// planar graph: a set of nodes with 2D coordinates and a set of undirected,
// non-crossing edges. The result supports constant-time queries for every
// half-edge incident to a node (clockwise order around that node) and every
// half-edge bounding a face (clockwise order around the face).
//
// What
//
//   - Normalize the input edge list so every undirected edge is present as
//     both directed half-edges (normalize).
//   - Decompose the graph into a minimum cycle basis, filaments (dangling
//     chains), and isolated vertices, following Eberly's sweep (extract).
//   - Assign right-face ids and in-cycle rotational pointers to every
//     cycle's half-edges (assignFaces).
//   - Discover the unbounded exterior face by chaining half-edges with no
//     assigned right face (stitchExterior).
//   - Splice each filament into the rotational structure at its incidence
//     nodes, propagating face ids onto filament half-edges that lie inside
//     a bounded face (insertFilaments).
//   - Optionally detect cycles nested inside other cycles and re-home the
//     inner cycle's boundary onto the enclosing face instead of the global
//     exterior (resolveHoles, opt-in via WithHoleDetection).
//
// Why
//
//   - Downstream consumers (spatial network statistics, corridor/edge
//     assignment, polygon enumeration) need O(1) amortized traversal of
//     "everything touching this node" and "everything bounding this face"
//     without re-deriving topology on every query.
//
// Determinism
//
//	Construction is fully deterministic given (nodes, edges): the Eberly
//	sweep always starts from the leftmost-then-bottommost remaining node,
//	and every clockwise/counter-clockwise choice is made by a fixed
//	cross-product rule (see geom.go), with exactly collinear candidates
//	broken by NodeID (see pickMost in eberly.go). Two calls to Build with the same
//	input produce bit-identical rotational pointers.
//
// Complexity (V = |nodes|, E = |directed half-edges|)
//
//   - Time:   O(V·E) worst case for the Eberly sweep (each sweep step scans
//     remaining adjacency), O(E) for face assignment, stitching, and
//     filament insertion.
//   - Memory: O(E) — every directed half-edge contributes one entry to
//     each of the eight rotational/face maps.
//
// Usage
//
//	tbl, err := wed.Build(nodes, edges)
//	if err != nil {
//	    // ErrInvalidInput, ErrNonPlanarOrSelfIntersecting, ErrDegenerateGeometry
//	}
//	links := tbl.EnumLinksNode("a")   // clockwise half-edges around node "a"
//	bound := tbl.EnumEdgesRegion(tbl.RightPolygon(links[0]))
//
// Errors
//
//   - ErrInvalidInput             edge references an unknown node, or a
//     coordinate is missing for a referenced node.
//   - ErrNonPlanarOrSelfIntersecting  the Eberly sweep reached a state that
//     cannot occur for a genuinely planar, non-self-intersecting graph.
//   - ErrDegenerateGeometry       collinear points made a clockwise-most or
//     counter-clockwise-most neighbor choice ambiguous; see
//     WithStrictDegenerateGeometry.
package wed
