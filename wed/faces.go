// File: faces.go
// Role: assigns right-face ids and the four in-cycle rotational pointers
// (StartC/StartCC/EndC/EndCC) to every half-edge belonging to a minimum
// cycle found by the Eberly sweep.
//
// Grounded on WED.node_edges / WED.region_edges in
// original_source/pysal/network/wed.py: once a cycle's node sequence is
// known, walking it in order and wiring each half-edge's rotational
// pointers to its immediate neighbors in the same walk is sufficient —
// the only rotational information a simple cycle carries is "the next
// edge around this node inside the cycle", which is exactly the
// predecessor/successor in the walk.
package wed

import "github.com/golang/geo/r2"

// assignFaces turns each region (a counter-clockwise closed walk as
// produced by the Eberly sweep, v0..vk..v0) into one bounded face: a
// forward half-edge for every step of the walk, right face set to the new
// FaceID, and rotational pointers wired from the cycle's own order.
//
// The Eberly sweep discovers cycles in counter-clockwise order (it always
// turns onto the counter-clockwise-most candidate); faces are recorded
// with their boundary walked clockwise, so the stored sequence is
// reversed before wiring.
func assignFaces(tbl *Table, regions [][]NodeID) {
	for _, region := range regions {
		cw := reverseNodeChain(region)
		face := FaceID(tbl.numCycles)
		tbl.numCycles++

		n := len(cw) - 1 // cw[0] == cw[n], the walk closes
		if n < 2 {
			continue
		}

		var firstHalf HalfEdgeID = NoHalfEdge
		for i := 0; i < n; i++ {
			u, v := cw[i], cw[i+1]
			h := tbl.ensurePair(u, v)
			tbl.arena[h].right = face
			tbl.arena[tbl.Twin(h)].left = face
			if firstHalf == NoHalfEdge {
				firstHalf = h
			}
			if _, ok := tbl.nodeEdge[u]; !ok {
				tbl.nodeEdge[u] = h
			}
		}
		tbl.regionEdge[face] = firstHalf

		for i := 0; i < n; i++ {
			prevU, prevV := cw[(i-1+n)%n], cw[i]
			curU, curV := cw[i], cw[i+1]
			prev, _ := tbl.edgeID(prevU, prevV)
			cur, _ := tbl.edgeID(curU, curV)

			// Around the shared node curU (== prevV): cur is the next
			// half-edge clockwise from twin(prev), since the face lies to
			// the right of both as the walk turns at curU.
			tbl.linkClockwise(tbl.Twin(prev), cur)
		}
	}
}

func reverseNodeChain(chain []NodeID) []NodeID {
	out := make([]NodeID, len(chain))
	for i, id := range chain {
		out[len(chain)-1-i] = id
	}
	return out
}

// registerCoords copies every node's coordinates into the table, and
// seeds nodeEdge for nodes that end up with no cycle/filament/exterior
// half-edge touching them at all (fully isolated vertices).
func registerCoords(tbl *Table, coords map[NodeID]r2.Vector, isolated []NodeID) {
	for id, p := range coords {
		tbl.nodeCoords[id] = p
	}
	for _, id := range isolated {
		if _, ok := tbl.nodeEdge[id]; !ok {
			tbl.nodeEdge[id] = NoHalfEdge
		}
	}
}
