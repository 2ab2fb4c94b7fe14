package universe

import "fmt"

// SystemClass partitions systems into known space and wormhole space
// by ID range.
type SystemClass int

const (
	KSpace SystemClass = iota
	WSpace
)

const (
	kspaceUpperBound = 31_000_000
	wspaceUpperBound = 32_000_000
)

// ClassOf returns the space class of a system ID. An ID outside both
// ranges cannot be classified; guessing would route paths through
// topology that does not exist, so this is a hard failure.
func ClassOf(id SystemID) SystemClass {
	switch {
	case id < kspaceUpperBound:
		return KSpace
	case id < wspaceUpperBound:
		return WSpace
	default:
		panic(fmt.Sprintf("universe: system id %d outside known and wormhole space", id))
	}
}

// AllowsCynos reports whether a cynosural field can be lit in the
// system. Cynos are forbidden in highsec and everywhere in wormhole
// space.
func AllowsCynos(s *System) bool {
	if ClassOf(s.ID) == WSpace {
		return false
	}
	return s.Security.Class() != Highsec
}
