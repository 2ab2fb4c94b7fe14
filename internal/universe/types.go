package universe

import (
	"fmt"
	"math"
)

// SystemID identifies a solar system. IDs below 31,000,000 are known
// space; IDs in [31,000,000, 32,000,000) are wormhole space.
type SystemID uint32

// Security is the CCP security rating of a system, in [-1.0, 1.0].
type Security float32

// SecurityClass is the three-bucket classification of a security rating.
type SecurityClass int

const (
	Highsec SecurityClass = iota
	Lowsec
	Nullsec
)

// Class buckets the rating after rounding to one decimal, so a system
// at 0.45 classifies as highsec (0.5) instead of lowsec. The buckets
// are: < 0.0 nullsec, < 0.5 lowsec, otherwise highsec.
//
// The scaling happens in float32: 0.45 is stored as 0.44999998…, and
// widening before the multiply would carry that error into 4.4999998…
// and round down. In float32 the product is exactly 4.5.
func (s Security) Class() SecurityClass {
	rounded := math.Round(float64(s*10)) / 10
	switch {
	case rounded < 0.0:
		return Nullsec
	case rounded < 0.5:
		return Lowsec
	default:
		return Highsec
	}
}

func (c SecurityClass) String() string {
	switch c {
	case Highsec:
		return "highsec"
	case Lowsec:
		return "lowsec"
	case Nullsec:
		return "nullsec"
	}
	return "unknown"
}

// Coordinate is a position in space, in meters.
type Coordinate struct {
	X, Y, Z float64
}

// DistanceSquared returns the squared euclidean distance to other.
// Radius queries compare squared distances to avoid the square root.
func (c Coordinate) DistanceSquared(other Coordinate) float64 {
	dx := c.X - other.X
	dy := c.Y - other.Y
	dz := c.Z - other.Z
	return dx*dx + dy*dy + dz*dz
}

// Distance returns the euclidean distance to other.
func (c Coordinate) Distance(other Coordinate) Meters {
	return Meters(math.Sqrt(c.DistanceSquared(other)))
}

// System is a solar system. Identity is the ID alone; name, coordinate
// and security are payload.
type System struct {
	ID         SystemID
	Name       string
	Coordinate Coordinate
	Security   Security
}

// Equal reports whether two systems are the same system. Only the ID
// participates; two records with the same ID but different payloads
// are still equal.
func (s *System) Equal(other *System) bool {
	return s.ID == other.ID
}

func (s *System) String() string {
	return fmt.Sprintf("%s (%.1f)", s.Name, s.Security)
}

// StargateType classifies a static stargate edge by how far it takes
// you: within the constellation, across constellations of one region,
// or across regions.
type StargateType int

const (
	StargateLocal StargateType = iota
	StargateConstellation
	StargateRegional
)

func (t StargateType) String() string {
	switch t {
	case StargateLocal:
		return "local gate"
	case StargateConstellation:
		return "constellation gate"
	case StargateRegional:
		return "regional gate"
	}
	return "gate"
}

// WormholeType is the size class of a wormhole, which constrains what
// ship classes fit through. The routing core records it but does not
// enforce it.
type WormholeType int

const (
	WormholeVeryLarge WormholeType = iota
	WormholeLarge
	WormholeMedium
	WormholeSmall
)

func (t WormholeType) String() string {
	switch t {
	case WormholeVeryLarge:
		return "wormhole (very large)"
	case WormholeLarge:
		return "wormhole (large)"
	case WormholeMedium:
		return "wormhole (medium)"
	case WormholeSmall:
		return "wormhole (small)"
	}
	return "wormhole"
}

// BridgeClass is the archetype of a jump bridge.
type BridgeClass int

const (
	BridgeTitan BridgeClass = iota
	BridgeBlackOps
)

// BridgeType is a jump bridge parameterized by the pilot's skills.
// Calibration extends the range; see Range.
type BridgeType struct {
	Class                BridgeClass
	JumpDriveCalibration int
	JumpFuelConservation int
}

// Range returns the effective bridge range: base range plus 20% of base
// per calibration level. Base range is 3.0 ly for titans and 4.0 ly for
// black ops.
//
// TODO: JumpFuelConservation is carried but never enters the formula.
// It only affects fuel cost in game, but the asymmetry here looks like
// an omission worth revisiting.
func (b BridgeType) Range() Lightyears {
	var base float64
	switch b.Class {
	case BridgeTitan:
		base = 3.0
	case BridgeBlackOps:
		base = 4.0
	}
	return Lightyears(base + base*0.2*float64(b.JumpDriveCalibration))
}

func (b BridgeType) String() string {
	switch b.Class {
	case BridgeTitan:
		return "titan bridge"
	case BridgeBlackOps:
		return "black ops bridge"
	}
	return "bridge"
}

// ConnectionType is the tagged variant over the three edge archetypes.
// Exactly StargateType, BridgeType and WormholeType implement it.
type ConnectionType interface {
	fmt.Stringer
	isConnectionType()
}

func (StargateType) isConnectionType() {}
func (BridgeType) isConnectionType()   {}
func (WormholeType) isConnectionType() {}

// Connection is a directed edge between two systems.
type Connection struct {
	From SystemID
	To   SystemID
	Type ConnectionType
}

// SystemMap maps system IDs to systems. It is exclusively owned by a
// Universe once handed to NewUniverse.
type SystemMap map[SystemID]*System

// NewSystemMap builds a SystemMap from a flat list, deduplicating by
// ID with last write winning.
func NewSystemMap(systems []System) SystemMap {
	m := make(SystemMap, len(systems))
	for i := range systems {
		s := systems[i]
		m[s.ID] = &s
	}
	return m
}

// AdjacentMap maps a system ID to its outgoing connections in
// insertion order. Parallel edges between the same pair are kept
// distinct.
type AdjacentMap map[SystemID][]Connection

// NewAdjacentMap groups a flat connection list by origin, preserving
// input order within each origin.
func NewAdjacentMap(connections []Connection) AdjacentMap {
	m := make(AdjacentMap)
	for _, c := range connections {
		m[c.From] = append(m[c.From], c)
	}
	return m
}
