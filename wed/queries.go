// File: queries.go
// Role: the two O(1)-amortized traversal queries the whole structure
// exists to answer — every half-edge touching a node, and every
// half-edge bounding a face — plus the face-boundary walk the other
// components (filament face propagation, hole resolution) build on.
package wed

import "github.com/golang/geo/r2"

// EnumLinksNode returns every half-edge whose start is n, in clockwise
// order around n. Empty if n is unknown or has no incident edge.
func (t *Table) EnumLinksNode(n NodeID) []HalfEdgeID {
	return append([]HalfEdgeID(nil), t.ringMembers(n)...)
}

// EnumEdgesRegion returns every half-edge bounding face f, in clockwise
// order around each of its boundary loops. A face ordinarily has a single
// loop, but one can have more: the exterior face when the input has more
// than one connected component, or any face the hole resolver (holes.go)
// re-homed a nested cycle's outward-facing half-edges onto. Loops are
// never interleaved — each is returned whole before the next begins.
// Empty if f is unknown.
func (t *Table) EnumEdgesRegion(f FaceID) []HalfEdgeID {
	visited := make(map[HalfEdgeID]bool)
	var out []HalfEdgeID

	if primary := t.faceBoundary(f); len(primary) > 0 {
		out = append(out, primary...)
		for _, h := range primary {
			visited[h] = true
		}
	}

	for h := range t.arena {
		he := HalfEdgeID(h)
		if t.arena[h].right != f || visited[he] {
			continue
		}
		loop := t.boundaryLoop(he)
		for _, lh := range loop {
			visited[lh] = true
		}
		out = append(out, loop...)
	}

	return out
}

// faceBoundary walks face f's primary boundary loop only, starting from
// its stored representative edge. Used internally wherever a single ring
// is required (point-in-polygon tests, hole containment) — a face with
// holes still has exactly one ring of its own, the holes are additional,
// disjoint loops.
func (t *Table) faceBoundary(f FaceID) []HalfEdgeID {
	start, ok := t.regionEdge[f]
	if !ok || start == NoHalfEdge {
		return nil
	}
	return t.boundaryLoop(start)
}

// boundaryLoop walks one closed boundary loop starting at start. At each
// step the next boundary half-edge is the one clockwise-next from this
// edge's twin around the shared node — the same recurrence assignFaces
// and stitchExterior used to wire StartC in the first place.
func (t *Table) boundaryLoop(start HalfEdgeID) []HalfEdgeID {
	out := []HalfEdgeID{start}
	for cur := t.arena[t.Twin(start)].startC; cur != start && cur != NoHalfEdge && len(out) <= len(t.arena); cur = t.arena[t.Twin(cur)].startC {
		out = append(out, cur)
	}
	return out
}

// faceRing returns the node coordinates bounding face f, in the same
// clockwise order as faceBoundary, suitable for a PolygonTest.
func (t *Table) faceRing(f FaceID) []r2.Vector {
	bound := t.faceBoundary(f)
	ring := make([]r2.Vector, 0, len(bound))
	for _, h := range bound {
		ring = append(ring, t.nodeCoords[t.arena[h].start])
	}
	return ring
}
