// File: options.go
// Role: functional options for Build, resolved the same way lvlath resolves
// GraphOption / BuilderOption / bfs.Option: defaults first, options applied
// left-to-right, later options win.
package wed

// Option configures Build's behavior.
type Option func(*config)

type config struct {
	holeDetection    bool
	strictDegenerate bool
	polygonTest      PolygonTest
	segmentDistance  SegmentDistance
	nearestNeighbors NearestNeighborIndex
}

// defaultConfig mirrors builder.newBuilderConfig's "sensible defaults,
// then apply options" pattern.
func defaultConfig() *config {
	return &config{
		holeDetection:    false,
		strictDegenerate: false,
		polygonTest:      defaultPolygonTest{},
		segmentDistance:  defaultSegmentDistance{},
		nearestNeighbors: nil, // resolved lazily to a linearNearestNeighbor over the built table
	}
}

func resolveConfig(opts ...Option) *config {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(cfg)
	}
	return cfg
}

// WithHoleDetection enables the hole resolver: bounded cycles fully
// contained in another bounded cycle are re-homed onto the enclosing
// cycle's face id instead of the global exterior. Off by default so an
// island cycle shares the exterior face id unless a caller opts in.
func WithHoleDetection() Option {
	return func(c *config) { c.holeDetection = true }
}

// WithStrictDegenerateGeometry makes Build return ErrDegenerateGeometry
// when collinear points make any clockwise-most or counter-clockwise-most
// neighbor selection of the Eberly sweep ambiguous, instead of the default
// deterministic tie-break by NodeID.
func WithStrictDegenerateGeometry() Option {
	return func(c *config) { c.strictDegenerate = true }
}

// WithPolygonTest overrides the default brute-force ray-casting
// point-in-polygon test used internally by the hole resolver and filament
// face-propagation.
func WithPolygonTest(pt PolygonTest) Option {
	return func(c *config) {
		if pt != nil {
			c.polygonTest = pt
		}
	}
}

// WithSegmentDistance overrides the default perpendicular-projection
// point-to-segment distance used by AssignPointsToEdges.
func WithSegmentDistance(sd SegmentDistance) Option {
	return func(c *config) {
		if sd != nil {
			c.segmentDistance = sd
		}
	}
}

// WithNearestNeighborIndex supplies a caller-provided nearest-neighbor
// index (e.g. a KD-tree) for AssignPointsToNodes, replacing the default
// O(n) linear scan.
func WithNearestNeighborIndex(nn NearestNeighborIndex) Option {
	return func(c *config) {
		if nn != nil {
			c.nearestNeighbors = nn
		}
	}
}
