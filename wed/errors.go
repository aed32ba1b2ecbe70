// File: errors.go
// Role: package-level sentinel errors for wed.
//
// Policy (matches the core/matrix/builder packages this library is
// patterned after): only sentinel variables are exposed; callers branch
// with errors.Is, never string comparison. Sentinels are never %w-wrapped
// at the definition site — wrap with fmt.Errorf("context: %w", ErrX) at
// the call site if you need to attach detail.
package wed

import "errors"

var (
	// ErrInvalidInput indicates an edge references a node absent from the
	// coordinates map. Coordinate values themselves are not validated.
	ErrInvalidInput = errors.New("wed: invalid input")

	// ErrNonPlanarOrSelfIntersecting indicates the Eberly sweep reached a
	// configuration that cannot occur for a genuinely planar, non-self-
	// intersecting embedding (e.g. clockwise/counter-clockwise neighbor
	// selection found no candidate where the invariants guarantee one).
	ErrNonPlanarOrSelfIntersecting = errors.New("wed: graph is not planar or self-intersects")

	// ErrDegenerateGeometry indicates collinear points made an angular
	// tie-break ambiguous (e.g. the initial "downward" reference direction
	// at a start node with only collinear neighbors).
	ErrDegenerateGeometry = errors.New("wed: degenerate geometry")

	// errFilamentDegenerate names a degenerate filament splice. No code
	// path returns it: spliceAtNode splices into a ring of any size,
	// seeding a one-element ring when the node has no link yet.
	errFilamentDegenerate = errors.New("wed: degenerate filament splice")
)
