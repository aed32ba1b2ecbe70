// File: build.go
// Role: the package's single entry point, wiring the five pipeline
// components together in order: normalize, extract, assign faces, stitch
// the exterior, insert filaments, and (opt-in) resolve holes.
//
// Grounded on WED.complete_geometry in
// original_source/pysal/network/wed.py, which runs exactly this sequence
// from a single public function rather than exposing the stages.
package wed

import (
	"fmt"

	"github.com/golang/geo/r2"
)

// Build constructs a Table from a set of node coordinates and an edge
// list. Edges may be supplied in either direction and need not already be
// doubled; Build normalizes them. Returns ErrInvalidInput if an edge
// references an unknown node, ErrNonPlanarOrSelfIntersecting if the
// Eberly sweep reaches an impossible configuration, or
// ErrDegenerateGeometry if WithStrictDegenerateGeometry is set and a
// collinear tie cannot be broken.
func Build(nodes map[NodeID]r2.Vector, edges []Edge, opts ...Option) (*Table, error) {
	cfg := resolveConfig(opts...)

	normalized, err := normalize(nodes, edges)
	if err != nil {
		return nil, err
	}

	result, err := extract(nodes, normalized, cfg.strictDegenerate)
	if err != nil {
		return nil, fmt.Errorf("wed: build: %w", err)
	}

	tbl := newTable()
	registerCoords(tbl, nodes, result.isolated)
	assignFaces(tbl, result.regions)
	stitchExterior(tbl)
	insertFilaments(tbl, result.filaments, cfg)

	if err := verifyComplete(tbl, nodes); err != nil {
		return nil, err
	}

	if cfg.holeDetection {
		resolveHoles(tbl, cfg)
	}

	if cfg.nearestNeighbors == nil {
		cfg.nearestNeighbors = newLinearNearestNeighbor(nodes)
	}
	tbl.nearestNeighbors = cfg.nearestNeighbors
	tbl.polygonTest = cfg.polygonTest
	tbl.segmentDistance = cfg.segmentDistance

	return tbl, nil
}

// verifyComplete checks the universal invariants every half-edge must
// satisfy once construction finishes: every half-edge has a resolved
// left and right face, and every rotational pointer resolves to a valid
// half-edge. A violation here means the input was not a genuinely
// planar, non-self-intersecting embedding.
func verifyComplete(tbl *Table, nodes map[NodeID]r2.Vector) error {
	for h := range tbl.arena {
		rec := tbl.arena[h]
		if rec.left == NoFace || rec.right == NoFace {
			return fmt.Errorf("wed: build: %w: half-edge %d has no resolved face", ErrNonPlanarOrSelfIntersecting, h)
		}
		if !tbl.valid(rec.startC) || !tbl.valid(rec.startCC) || !tbl.valid(rec.endC) || !tbl.valid(rec.endCC) {
			return fmt.Errorf("wed: build: %w: half-edge %d has an unresolved rotational pointer", ErrNonPlanarOrSelfIntersecting, h)
		}
	}
	for id := range nodes {
		if _, ok := tbl.nodeEdge[id]; !ok {
			return fmt.Errorf("wed: build: %w: node %q was never registered", ErrNonPlanarOrSelfIntersecting, id)
		}
	}
	return nil
}
