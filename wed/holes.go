// File: holes.go
// Role: an opt-in resolver (WithHoleDetection) that detects bounded
// cycles fully nested inside another bounded cycle and re-homes the
// inner cycle's boundary onto the outer cycle's face id, so a query over
// the outer region's half-edges can distinguish "my own boundary" from
// "an island inside me" via Holes().
//
// This component has no direct analogue in
// original_source/pysal/network/wed.py, which leaves nested cycles
// sharing the single exterior face id. It is grounded on the same
// point-in-polygon test already defined in collaborators.go for
// filament face propagation, applied here at the whole-cycle
// granularity instead of a single probe point.
package wed

import "github.com/golang/geo/r2"

// resolveHoles finds every pair of bounded cycles (A, B) where every
// vertex of B's ring lies inside A's ring, and B has no other such
// enclosing cycle nested more tightly around it, then records B as a
// hole of A.
func resolveHoles(tbl *Table, cfg *config) {
	cycles := make([]FaceID, 0, tbl.numCycles)
	for f := FaceID(0); f < FaceID(tbl.numCycles); f++ {
		if f == tbl.exteriorFace {
			continue
		}
		cycles = append(cycles, f)
	}

	containers := make(map[FaceID][]FaceID, len(cycles)) // inner -> all enclosing outers
	for _, inner := range cycles {
		ring := tbl.faceRing(inner)
		if len(ring) == 0 {
			continue
		}
		for _, outer := range cycles {
			if outer == inner {
				continue
			}
			outerRing := tbl.faceRing(outer)
			if ringInsideRing(cfg, ring, outerRing) {
				containers[inner] = append(containers[inner], outer)
			}
		}
	}

	for inner, outers := range containers {
		tightest := tightestContainer(tbl, cfg, outers)
		if tightest == NoFace {
			continue
		}
		tbl.holeOf[inner] = tightest
		reassignHoleBoundary(tbl, inner, tightest)
	}
}

// reassignHoleBoundary re-homes inner's outward-facing half-edges — the
// ones that would otherwise bound the global exterior — onto outer's face
// id, per SPEC_FULL's wording: inner keeps its own right_polygon as the
// minimum-cycle id, but the side of its boundary that used to fall back
// to the exterior now falls back to outer instead, so a query over
// outer's half-edges surfaces the hole as one of its boundary loops
// instead of it being silently absorbed into the exterior.
func reassignHoleBoundary(tbl *Table, inner, outer FaceID) {
	for _, h := range tbl.faceBoundary(inner) {
		twin := tbl.Twin(h)
		if tbl.arena[twin].right == tbl.exteriorFace {
			tbl.arena[twin].right = outer
			tbl.arena[h].left = outer
		}
	}
}

// ringInsideRing reports whether cfg.polygonTest places every vertex of
// ring inside outer. With the default even-odd test, a vertex lying
// exactly on outer's boundary may be reported either way.
func ringInsideRing(cfg *config, ring, outer []r2.Vector) bool {
	for _, p := range ring {
		if !cfg.polygonTest.PointInPolygon(p, outer) {
			return false
		}
	}
	return true
}

// tightestContainer picks, among several enclosing candidates, the one
// whose own ring is itself contained by every other candidate (i.e. the
// innermost of the nested containers) so a hole is attributed to its
// immediate parent rather than some distant ancestor.
func tightestContainer(tbl *Table, cfg *config, candidates []FaceID) FaceID {
	if len(candidates) == 0 {
		return NoFace
	}
	best := candidates[0]
	for _, c := range candidates[1:] {
		if ringInsideRing(cfg, tbl.faceRing(c), tbl.faceRing(best)) {
			best = c
		}
	}
	return best
}
