// File: geom.go
// Role: vector and angle helpers shared by the Eberly extractor, the
// exterior-face stitcher, and the filament splicer. Built on
// github.com/golang/geo's r2.Vector (2D vectors) and s1.Angle (signed
// angles), rather than a bespoke (x,y) struct and hand-rolled trig —
// the same dependency the retrieval pack's blevesearch/geo module pulls
// in for its own planar geometry.
package wed

import (
	"math"

	"github.com/golang/geo/r2"
	"github.com/golang/geo/s1"
)

// cross returns the 2D scalar cross product u.x*v.y - u.y*v.x. Positive
// means v is counter-clockwise from u; negative means clockwise.
func cross(u, v r2.Vector) float64 {
	return u.Cross(v)
}

// signedAngle returns the angle you sweep counter-clockwise from u to v,
// normalized to [0, 2*pi). Used by the exterior stitcher's "largest CCW
// turn" rule, which the original Python implementation approximated with
// math.acos (range-limited to [0, pi] and therefore blind to reflex turns
// — see DESIGN.md's "external-face angle rule" decision).
func signedAngle(u, v r2.Vector) s1.Angle {
	theta := math.Atan2(cross(u, v), u.Dot(v))
	a := s1.Angle(theta)
	if a < 0 {
		a += 2 * math.Pi
	}
	return a
}

// betterClockwise reports whether candidate e (direction vector from the
// current vertex) is a better clockwise choice than the current best
// eBest, given the incoming direction d, using a convexity-aware rule:
//
//	convex(d, eBest) := cross(eBest, d) <= 0
//	convex:     better iff cross(d, e) < 0 || cross(eBest, e) < 0
//	not convex: better iff cross(d, e) < 0 && cross(eBest, e) < 0
func betterClockwise(d, eBest, e r2.Vector) bool {
	convex := cross(eBest, d) <= 0
	if convex {
		return cross(d, e) < 0 || cross(eBest, e) < 0
	}
	return cross(d, e) < 0 && cross(eBest, e) < 0
}

// betterCounterClockwise is the mirror rule of betterClockwise, using
// positive cross-product signs, for selecting the counter-clockwise-most
// neighbor.
func betterCounterClockwise(d, eBest, e r2.Vector) bool {
	convex := cross(eBest, d) <= 0
	if convex {
		return cross(d, e) > 0 && cross(eBest, e) > 0
	}
	return cross(d, e) > 0 || cross(eBest, e) > 0
}

// initialDownward is the reference "incoming direction" (0,-1) used for
// the very first clockwise-most selection from a sweep's start vertex,
// before any edge has actually been traversed.
var initialDownward = r2.Vector{X: 0, Y: -1}

// leftmostBottommost returns the id of the node with the smallest X
// coordinate, breaking ties by the smallest Y coordinate, and breaking any
// further tie by NodeID order — a total order on NodeID is all that is
// required for determinism.
func leftmostBottommost(ids []NodeID, coords map[NodeID]r2.Vector) NodeID {
	best := ids[0]
	bp := coords[best]
	for _, id := range ids[1:] {
		p := coords[id]
		if p.X < bp.X || (p.X == bp.X && p.Y < bp.Y) || (p.X == bp.X && p.Y == bp.Y && id < best) {
			best, bp = id, p
		}
	}
	return best
}
