// File: assign.go
// Role: the two lookup operations that route external points onto the
// structure once it is built — nearest-node assignment (via
// NearestNeighborIndex) and nearest-edge assignment (via
// SegmentDistance), both swappable through Build's Option set.
package wed

import "github.com/golang/geo/r2"

// AssignPointsToNodes maps every point in pts to the id of its nearest
// node, using the NearestNeighborIndex supplied to Build (a linear scan
// by default).
func (t *Table) AssignPointsToNodes(pts []r2.Vector) []NodeID {
	out := make([]NodeID, len(pts))
	for i, p := range pts {
		if id, ok := t.nearestNeighbors.Nearest(p); ok {
			out[i] = id
		}
	}
	return out
}

// AssignPointsToEdges maps every point in pts to the id of its nearest
// half-edge (by perpendicular distance to the segment, via the
// SegmentDistance collaborator supplied to Build), considering only one
// half-edge per undirected pair.
func (t *Table) AssignPointsToEdges(pts []r2.Vector) []HalfEdgeID {
	type seg struct {
		id   HalfEdgeID
		a, b r2.Vector
	}
	segs := make([]seg, 0, len(t.arena)/2)
	for h := range t.arena {
		id := HalfEdgeID(h)
		if t.Twin(id) < id {
			continue
		}
		rec := t.arena[h]
		segs = append(segs, seg{id, t.nodeCoords[rec.start], t.nodeCoords[rec.end]})
	}

	out := make([]HalfEdgeID, len(pts))
	for i, p := range pts {
		out[i] = NoHalfEdge
		best := 0.0
		for j, s := range segs {
			d := t.segmentDistance.DistanceToSegment(p, s.a, s.b)
			if j == 0 || d < best {
				best, out[i] = d, s.id
			}
		}
	}
	return out
}
