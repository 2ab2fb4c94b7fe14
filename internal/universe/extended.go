package universe

// ExtendedUniverse overlays additional connections on a base graph.
// The base is borrowed, never copied and never mutated; the overlay
// must not outlive it. Overlays are cheap to build (proportional to
// the extra connections only) and are meant to live for one planning
// session, e.g. to carry scouted wormholes or synthesized bridges.
//
// Overlays nest: the base may itself be an ExtendedUniverse, in which
// case connection lookups union transitively.
type ExtendedUniverse struct {
	base     Navigatable
	adjacent AdjacentMap
}

var _ Navigatable = (*ExtendedUniverse)(nil)

// NewExtendedUniverse wraps base with the given extra connections.
func NewExtendedUniverse(base Navigatable, extra AdjacentMap) *ExtendedUniverse {
	return &ExtendedUniverse{base: base, adjacent: extra}
}

// GetSystem delegates to the base. Overlays add connectivity, never
// systems.
func (e *ExtendedUniverse) GetSystem(id SystemID) *System {
	return e.base.GetSystem(id)
}

// GetConnections returns the base connections followed by the overlay
// connections. The order is deterministic and matters for equal-cost
// tie-breaks during pathfinding: base edges are considered first.
func (e *ExtendedUniverse) GetConnections(id SystemID) []Connection {
	base := e.base.GetConnections(id)
	extra := e.adjacent[id]
	switch {
	case len(extra) == 0:
		return base
	case len(base) == 0:
		return extra
	}
	out := make([]Connection, 0, len(base)+len(extra))
	out = append(out, base...)
	out = append(out, extra...)
	return out
}

// GetSystemsInRadius delegates to the base; the overlay holds no
// spatial data.
func (e *ExtendedUniverse) GetSystemsInRadius(origin SystemID, radius Meters) ([]*System, bool) {
	return e.base.GetSystemsInRadius(origin, radius)
}
