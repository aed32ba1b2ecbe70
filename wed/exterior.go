// File: exterior.go
// Role: discovers the unbounded exterior face and wires its rotational
// pointers, by chaining together every half-edge still unassigned a right
// face after the minimum-cycle-basis faces have been built.
//
// Grounded on WED.store_wed's exterior-edge handling in
// original_source/pysal/network/wed.py, which walks the "ext_edges" set
// left over after cycle extraction using the angle between consecutive
// edges to decide the next hop. That code measures the turn with
// math.acos on normalized vectors, which only returns [0, pi] and so
// cannot distinguish a turn from its mirror image (see DESIGN.md,
// "external-face angle rule"); this implementation measures the same
// turn with signedAngle (atan2-based, full [0, 2*pi) range) and always
// takes the candidate with the largest counter-clockwise sweep from the
// reversed incoming direction.
package wed

// stitchExterior assigns the exterior FaceID to every half-edge still
// lacking a right face, chaining each connected run of them into one or
// more closed boundary walks. Returns the exterior FaceID.
func stitchExterior(tbl *Table) FaceID {
	// The exterior gets the next FaceID after every bounded cycle, but
	// does not itself count toward NumCycles.
	exterior := FaceID(tbl.numCycles)

	byStart := make(map[NodeID][]HalfEdgeID)
	for h := range tbl.arena {
		if tbl.arena[h].right == NoFace {
			s := tbl.arena[h].start
			byStart[s] = append(byStart[s], HalfEdgeID(h))
		}
	}

	firstAssigned := NoHalfEdge
	for {
		start := firstUnassigned(tbl)
		if start == NoHalfEdge {
			break
		}
		walk := traceExteriorWalk(tbl, byStart, start, exterior)
		wireWalkPointers(tbl, walk)
		if firstAssigned == NoHalfEdge && len(walk) > 0 {
			firstAssigned = walk[0]
		}
	}

	if firstAssigned != NoHalfEdge {
		tbl.regionEdge[exterior] = firstAssigned
	}
	tbl.exteriorFace = exterior
	return exterior
}

func firstUnassigned(tbl *Table) HalfEdgeID {
	for h := range tbl.arena {
		if tbl.arena[h].right == NoFace {
			return HalfEdgeID(h)
		}
	}
	return NoHalfEdge
}

// traceExteriorWalk follows the largest-CCW-turn rule starting at `start`
// until it returns to `start`, assigning `face` to every half-edge it
// consumes along the way.
func traceExteriorWalk(tbl *Table, byStart map[NodeID][]HalfEdgeID, start HalfEdgeID, face FaceID) []HalfEdgeID {
	var walk []HalfEdgeID
	cur := start
	for {
		tbl.arena[cur].right = face
		tbl.arena[tbl.Twin(cur)].left = face
		walk = append(walk, cur)

		rec := tbl.arena[cur]
		d := tbl.nodeCoords[rec.end].Sub(tbl.nodeCoords[rec.start])
		reverseD := d.Mul(-1)

		next := NoHalfEdge
		var bestAngle float64 = -1
		for _, cand := range byStart[rec.end] {
			// A candidate must still be unassigned, except `start` itself
			// which was just marked above — selecting it is exactly how
			// the walk closes.
			if tbl.arena[cand].right != NoFace && cand != start {
				continue
			}
			candRec := tbl.arena[cand]
			e := tbl.nodeCoords[candRec.end].Sub(tbl.nodeCoords[candRec.start])
			angle := float64(signedAngle(reverseD, e))
			if angle > bestAngle {
				bestAngle, next = angle, cand
			}
		}

		if next == NoHalfEdge {
			break // no candidate at all: degenerate single dangling edge
		}
		cur = next
		if cur == start {
			break
		}
	}
	return walk
}

// wireWalkPointers installs StartC/StartCC/EndC/EndCC for one closed
// boundary walk the same way assignFaces does for a bounded cycle.
func wireWalkPointers(tbl *Table, walk []HalfEdgeID) {
	n := len(walk)
	if n < 2 {
		return
	}
	for i := 0; i < n; i++ {
		prev := walk[(i-1+n)%n]
		cur := walk[i]
		tbl.linkClockwise(tbl.Twin(prev), cur)
	}
}
