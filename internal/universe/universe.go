// Package universe holds the immutable solar system graph: the system
// and adjacency tables, the spatial index over system coordinates, and
// the overlay mechanism for adding transient connections on top of a
// base graph without mutating it.
package universe

// Navigatable is the capability the pathfinder consumes. Universe and
// ExtendedUniverse both implement it, so routes can be computed over a
// bare graph or over any stack of overlays without the pathfinder
// knowing the difference.
type Navigatable interface {
	// GetSystem returns the system with the given ID, or nil if the
	// ID is unknown. An unknown ID is a routine outcome, not an error.
	GetSystem(id SystemID) *System

	// GetConnections returns the outgoing connections of a system in
	// insertion order, or nil if none are recorded. A nil result means
	// no traversal is possible from here; callers must not distinguish
	// "system without edges" from "system not indexed".
	GetConnections(id SystemID) []Connection

	// GetSystemsInRadius returns every system, origin included, within
	// the given straight-line distance of origin. ok is false when the
	// origin ID is unknown. Result order is unspecified.
	GetSystemsInRadius(origin SystemID, radius Meters) (systems []*System, ok bool)
}

// Universe is the base graph. It owns its system and adjacency tables
// and a spatial index built once at construction. It is never mutated
// afterwards and is therefore safe for concurrent readers. To add
// connections, wrap it in an ExtendedUniverse instead.
type Universe struct {
	systems  SystemMap
	adjacent AdjacentMap
	index    *kdTree
}

var _ Navigatable = (*Universe)(nil)

// NewUniverse builds a universe from the loader's two flat tables and
// indexes the system coordinates. The maps are owned by the universe
// from here on. Connections referencing unknown systems are permitted;
// they simply never produce a lookup hit.
func NewUniverse(systems SystemMap, adjacent AdjacentMap) *Universe {
	all := make([]*System, 0, len(systems))
	for _, s := range systems {
		all = append(all, s)
	}
	return &Universe{
		systems:  systems,
		adjacent: adjacent,
		index:    newKDTree(all),
	}
}

func (u *Universe) GetSystem(id SystemID) *System {
	return u.systems[id]
}

func (u *Universe) GetConnections(id SystemID) []Connection {
	return u.adjacent[id]
}

func (u *Universe) GetSystemsInRadius(origin SystemID, radius Meters) ([]*System, bool) {
	from := u.systems[origin]
	if from == nil {
		return nil, false
	}
	return u.index.inRadius(from.Coordinate, radius), true
}

// Len returns the number of systems in the universe.
func (u *Universe) Len() int {
	return len(u.systems)
}

// Extend wraps the universe in an overlay carrying the given extra
// connections. The universe itself is not modified.
func (u *Universe) Extend(extra AdjacentMap) *ExtendedUniverse {
	return NewExtendedUniverse(u, extra)
}
