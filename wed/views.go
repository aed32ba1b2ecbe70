// File: views.go
// Role: small derived views over a built Table that downstream spatial-
// network consumers repeatedly need — per-edge length, and the plain
// node-to-node adjacency dual that wraps EnumLinksNode.
//
// Grounded on lvlath/core.Graph's NeighborIDs-style adjacency views: a
// thin method computed on demand from the authoritative structure, not a
// field maintained alongside it.
package wed

// EdgeLength returns the Euclidean length of every undirected edge,
// keyed by one of its two half-edge ids (whichever the arena happens to
// store first); callers that need "the" canonical id for an undirected
// edge can compare h and Twin(h) and keep the smaller.
func (t *Table) EdgeLength() map[HalfEdgeID]float64 {
	out := make(map[HalfEdgeID]float64, len(t.arena)/2)
	for h := range t.arena {
		id := HalfEdgeID(h)
		twin := t.Twin(id)
		if twin < id {
			continue // emit once per undirected edge
		}
		rec := t.arena[h]
		d := t.nodeCoords[rec.end].Sub(t.nodeCoords[rec.start])
		out[id] = d.Norm()
	}
	return out
}

// WLinks returns the plain adjacency view: for every node, the set of
// nodes directly connected to it. This is the "dual on vertices" of the
// half-edge structure, useful for consumers that want ordinary graph
// algorithms (shortest paths, components) without walking half-edges.
func (t *Table) WLinks() map[NodeID][]NodeID {
	out := make(map[NodeID][]NodeID, len(t.nodeCoords))
	for n := range t.nodeCoords {
		links := t.EnumLinksNode(n)
		neighbors := make([]NodeID, 0, len(links))
		for _, h := range links {
			neighbors = append(neighbors, t.arena[h].end)
		}
		out[n] = neighbors
	}
	return out
}
