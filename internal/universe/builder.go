package universe

// UniverseBuilder assembles a universe from individual systems and
// connections. The database loader bypasses it by constructing the
// maps in bulk; the builder is for tests and embedders that assemble
// small universes in code.
type UniverseBuilder struct {
	systems     []System
	connections []Connection
}

func NewUniverseBuilder() *UniverseBuilder {
	return &UniverseBuilder{}
}

// System adds a system. Adding the same ID twice keeps the last one.
func (b *UniverseBuilder) System(s System) *UniverseBuilder {
	b.systems = append(b.systems, s)
	return b
}

// Connection adds a directed connection.
func (b *UniverseBuilder) Connection(c Connection) *UniverseBuilder {
	b.connections = append(b.connections, c)
	return b
}

func (b *UniverseBuilder) Build() *Universe {
	return NewUniverse(NewSystemMap(b.systems), NewAdjacentMap(b.connections))
}

// ExtendedUniverseBuilder assembles an overlay over an existing graph.
type ExtendedUniverseBuilder struct {
	base        Navigatable
	connections []Connection
}

func NewExtendedUniverseBuilder(base Navigatable) *ExtendedUniverseBuilder {
	return &ExtendedUniverseBuilder{base: base}
}

// Connection adds a directed overlay connection.
func (b *ExtendedUniverseBuilder) Connection(c Connection) *ExtendedUniverseBuilder {
	b.connections = append(b.connections, c)
	return b
}

// Bridge synthesizes one directed bridge connection from origin to
// every system within the bridge's effective range, origin included.
// The self-edge is harmless; callers that care can filter it. If the
// origin is unknown to the base graph nothing is added.
func (b *ExtendedUniverseBuilder) Bridge(origin SystemID, bridge BridgeType) *ExtendedUniverseBuilder {
	targets, ok := b.base.GetSystemsInRadius(origin, bridge.Range().Meters())
	if !ok {
		return b
	}
	for _, target := range targets {
		b.connections = append(b.connections, Connection{
			From: origin,
			To:   target.ID,
			Type: bridge,
		})
	}
	return b
}

func (b *ExtendedUniverseBuilder) Build() *ExtendedUniverse {
	return NewExtendedUniverse(b.base, NewAdjacentMap(b.connections))
}
