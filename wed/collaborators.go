// File: collaborators.go
// Role: the required-but-out-of-scope capability set — point-in-polygon,
// point-to-segment distance, and nearest-neighbor lookup. Each ships a
// brute-force default so the package works standalone; every one is
// swappable via Option for callers who bring a production geometry kernel
// or a KD-tree (the capability the defaults here deliberately do NOT
// attempt to replicate).
package wed

import "github.com/golang/geo/r2"

// PolygonTest decides whether p lies inside the closed polygon described
// by ring (a CW or CCW ordered vertex list; the first vertex is not
// repeated at the end).
type PolygonTest interface {
	PointInPolygon(p r2.Vector, ring []r2.Vector) bool
}

// SegmentDistance computes the Euclidean distance from p to the segment a-b.
type SegmentDistance interface {
	DistanceToSegment(p, a, b r2.Vector) float64
}

// NearestNeighborIndex resolves the node nearest to p. Implementations may
// be backed by a KD-tree or any other spatial index; the zero-value
// behavior of this package is a linear scan (see linearNearestNeighbor).
type NearestNeighborIndex interface {
	Nearest(p r2.Vector) (NodeID, bool)
}

// defaultPolygonTest implements PolygonTest with the standard even-odd
// ray-casting rule: a brute-force geometric search, as distinct from the
// KD-tree tier left to callers of NearestNeighborIndex.
type defaultPolygonTest struct{}

func (defaultPolygonTest) PointInPolygon(p r2.Vector, ring []r2.Vector) bool {
	n := len(ring)
	if n < 3 {
		return false
	}
	inside := false
	j := n - 1
	for i := 0; i < n; i++ {
		pi, pj := ring[i], ring[j]
		if (pi.Y > p.Y) != (pj.Y > p.Y) {
			xCross := (pj.X-pi.X)*(p.Y-pi.Y)/(pj.Y-pi.Y) + pi.X
			if p.X < xCross {
				inside = !inside
			}
		}
		j = i
	}
	return inside
}

// defaultSegmentDistance implements SegmentDistance via clamped
// projection onto the segment.
type defaultSegmentDistance struct{}

func (defaultSegmentDistance) DistanceToSegment(p, a, b r2.Vector) float64 {
	ab := b.Sub(a)
	denom := ab.Dot(ab)
	if denom == 0 {
		return p.Sub(a).Norm()
	}
	t := p.Sub(a).Dot(ab) / denom
	if t < 0 {
		t = 0
	} else if t > 1 {
		t = 1
	}
	proj := a.Add(ab.Mul(t))
	return p.Sub(proj).Norm()
}

// linearNearestNeighbor is the default NearestNeighborIndex: an O(n) scan
// over a fixed snapshot of node coordinates.
type linearNearestNeighbor struct {
	ids    []NodeID
	points []r2.Vector
}

func newLinearNearestNeighbor(coords map[NodeID]r2.Vector) *linearNearestNeighbor {
	idx := &linearNearestNeighbor{
		ids:    make([]NodeID, 0, len(coords)),
		points: make([]r2.Vector, 0, len(coords)),
	}
	for id, p := range coords {
		idx.ids = append(idx.ids, id)
		idx.points = append(idx.points, p)
	}
	return idx
}

func (l *linearNearestNeighbor) Nearest(p r2.Vector) (NodeID, bool) {
	if len(l.ids) == 0 {
		return "", false
	}
	best := 0
	bestDist := p.Sub(l.points[0]).Norm2()
	for i := 1; i < len(l.ids); i++ {
		d := p.Sub(l.points[i]).Norm2()
		if d < bestDist {
			best, bestDist = i, d
		}
	}
	return l.ids[best], true
}
