// File: filament.go
// Role: splices every filament chain discovered by the Eberly sweep into
// the rotational structure already built for the minimum cycle basis and
// the exterior face, and propagates a face id onto the filament's own
// half-edges.
//
// Grounded on WED.filament_to_wed in original_source/pysal/network/wed.py:
// a filament's endpoint is spliced into an existing node's rotational
// ring by finding which two angularly-consecutive existing half-edges it
// falls between (a polar-angle insert into a circular list), and the
// region it lies within is read off the right faces of the existing
// half-edges at the endpoints of its first segment (see facePropagation).
package wed

import (
	"math"
	"sort"
)

// insertFilaments splices every filament chain into tbl.
func insertFilaments(tbl *Table, filaments [][]NodeID, cfg *config) {
	for _, chain := range filaments {
		insertFilament(tbl, chain, cfg)
	}
}

func insertFilament(tbl *Table, chain []NodeID, cfg *config) {
	if len(chain) < 2 {
		return
	}

	halves := make([]HalfEdgeID, 0, len(chain)-1)
	for i := 0; i+1 < len(chain); i++ {
		u, v := chain[i], chain[i+1]
		h := tbl.ensurePair(u, v)
		halves = append(halves, h)
		spliceAtNode(tbl, u, h)
		spliceAtNode(tbl, v, tbl.Twin(h))
	}

	face := facePropagation(tbl, halves[0], cfg)
	for _, h := range halves {
		tbl.arena[h].left = face
		tbl.arena[h].right = face
		t := tbl.Twin(h)
		tbl.arena[t].left = face
		tbl.arena[t].right = face
	}
	if _, ok := tbl.regionEdge[face]; !ok && face != NoFace {
		tbl.regionEdge[face] = halves[0]
	}
}

// ringMembers returns every half-edge whose start is node, in clockwise
// order, by walking the existing StartC chain. Empty if node has no
// incident half-edge yet.
func (t *Table) ringMembers(node NodeID) []HalfEdgeID {
	start, ok := t.nodeEdge[node]
	if !ok || start == NoHalfEdge {
		return nil
	}
	out := []HalfEdgeID{start}
	for cur := t.arena[start].startC; cur != start && cur != NoHalfEdge; cur = t.arena[cur].startC {
		out = append(out, cur)
	}
	return out
}

func polarAngle(tbl *Table, node NodeID, h HalfEdgeID) float64 {
	from := tbl.nodeCoords[node]
	to := tbl.nodeCoords[tbl.arena[h].end]
	d := to.Sub(from)
	return math.Atan2(d.Y, d.X)
}

// spliceAtNode inserts half-edge h (h.start == node) into node's
// rotational ring at its correct angular position, or seeds a new
// one-element ring if node has no existing incident half-edge.
func spliceAtNode(tbl *Table, node NodeID, h HalfEdgeID) {
	ring := tbl.ringMembers(node)
	if len(ring) == 0 {
		tbl.nodeEdge[node] = h
		tbl.arena[h].startC = h
		tbl.arena[h].startCC = h
		tbl.arena[tbl.Twin(h)].endC = tbl.Twin(h)
		tbl.arena[tbl.Twin(h)].endCC = tbl.Twin(h)
		return
	}

	type ringEntry struct {
		id    HalfEdgeID
		angle float64
	}
	entries := make([]ringEntry, len(ring))
	for i, id := range ring {
		entries[i] = ringEntry{id, polarAngle(tbl, node, id)}
	}
	// Descending angle order == clockwise traversal order.
	sort.Slice(entries, func(i, j int) bool { return entries[i].angle > entries[j].angle })

	newAngle := polarAngle(tbl, node, h)
	idx := 0
	for idx < len(entries) && entries[idx].angle > newAngle {
		idx++
	}
	var a HalfEdgeID
	if idx == 0 {
		a = entries[len(entries)-1].id
	} else {
		a = entries[idx-1].id
	}
	b := tbl.arena[a].startC

	tbl.linkClockwise(a, h)
	tbl.linkClockwise(h, b)
}

// facePropagation decides which face a newly spliced filament (starting
// with half-edge h0) lies within. Every other half-edge in the rotational
// ring at either of h0's two endpoints names its right face as a candidate
// face; when they all agree there is nothing to disambiguate. When a
// node sits on the boundary between two different faces, the candidates
// disagree and the tie is broken with a point-in-polygon test against
// the midpoint of the filament's own first segment. A wholly
// disconnected filament (no incidence node on either end) defaults to
// the exterior face.
func facePropagation(tbl *Table, h0 HalfEdgeID, cfg *config) FaceID {
	candidates := map[FaceID]bool{}
	collect := func(node NodeID, exclude HalfEdgeID) {
		for _, cand := range tbl.ringMembers(node) {
			if cand == exclude {
				continue
			}
			if f := tbl.arena[cand].right; f != NoFace {
				candidates[f] = true
			}
		}
	}
	collect(tbl.arena[h0].start, h0)
	collect(tbl.arena[h0].end, tbl.Twin(h0))

	switch len(candidates) {
	case 0:
		return tbl.exteriorFace
	case 1:
		for f := range candidates {
			return f
		}
	}

	probe := tbl.nodeCoords[tbl.arena[h0].start].Add(tbl.nodeCoords[tbl.arena[h0].end]).Mul(0.5)
	for f := range candidates {
		if f == tbl.exteriorFace {
			continue
		}
		if cfg.polygonTest.PointInPolygon(probe, tbl.faceRing(f)) {
			return f
		}
	}
	return tbl.exteriorFace
}
