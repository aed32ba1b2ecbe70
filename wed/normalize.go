// File: normalize.go
// Role: the first, leaf-most component — canonicalizes the caller's edge
// list so every distinct unordered pair is present as both directed
// half-edges, and drops self-loops.
//
// Grounded on WED.check_edges in original_source/pysal/network/wed.py,
// which counts how many input pairs already have their reverse present
// and only doubles the ones missing it. This implementation always
// closes every pair over both directions directly (deduping as it
// emits), which is simpler and gives the same output for either of the
// original's two cases.
package wed

import (
	"fmt"

	"github.com/golang/geo/r2"
)

// Edge is an input, undirected-or-directed edge as supplied by the caller.
type Edge struct {
	U, V NodeID
}

// normalize validates edges against nodes and returns a canonical edge
// list in which every distinct unordered pair appears as both (u, v) and
// (v, u) exactly once. Self-loops are discarded. Returns ErrInvalidInput
// if an edge references a node absent from nodes.
func normalize(nodes map[NodeID]r2.Vector, edges []Edge) ([]Edge, error) {
	seen := make(map[nodePair]struct{}, len(edges))
	for _, e := range edges {
		if _, ok := nodes[e.U]; !ok {
			return nil, fmt.Errorf("%w: edge references unknown node %q", ErrInvalidInput, e.U)
		}
		if _, ok := nodes[e.V]; !ok {
			return nil, fmt.Errorf("%w: edge references unknown node %q", ErrInvalidInput, e.V)
		}
		if e.U == e.V {
			continue // self-loops are forbidden; silently dropped
		}
		seen[nodePair{e.U, e.V}] = struct{}{}
	}

	out := make([]Edge, 0, 2*len(seen))
	outSeen := make(map[nodePair]struct{}, 2*len(seen))
	emit := func(u, v NodeID) {
		np := nodePair{u, v}
		if _, ok := outSeen[np]; ok {
			return
		}
		outSeen[np] = struct{}{}
		out = append(out, Edge{u, v})
	}

	for p := range seen {
		emit(p.u, p.v)
		emit(p.v, p.u)
	}

	return out, nil
}
