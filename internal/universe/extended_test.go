package universe

import "testing"

func TestExtendedUniverse_UnionOrder(t *testing.T) {
	u := lineUniverse()
	extended := u.Extend(NewAdjacentMap([]Connection{
		{From: 1, To: 3, Type: WormholeVeryLarge},
	}))

	conns := extended.GetConnections(1)
	if len(conns) != 2 {
		t.Fatalf("GetConnections(1) = %v, want base edge then overlay edge", conns)
	}
	// Base edges come first, then overlay edges.
	if conns[0].Type != StargateLocal || conns[1].Type != WormholeVeryLarge {
		t.Errorf("union order wrong: %v", conns)
	}
}

func TestExtendedUniverse_OnlyOneSide(t *testing.T) {
	u := lineUniverse()
	extended := u.Extend(NewAdjacentMap([]Connection{
		{From: 3, To: 1, Type: WormholeSmall},
	}))

	// Only the base has edges for 2.
	if got := extended.GetConnections(2); len(got) != 1 || got[0].To != 3 {
		t.Errorf("GetConnections(2) = %v, want base edge only", got)
	}
	// Only the overlay has edges for 3.
	if got := extended.GetConnections(3); len(got) != 1 || got[0].To != 1 {
		t.Errorf("GetConnections(3) = %v, want overlay edge only", got)
	}
	// Neither side has edges.
	if got := extended.GetConnections(99); got != nil {
		t.Errorf("GetConnections(99) = %v, want nil", got)
	}
}

func TestExtendedUniverse_Delegation(t *testing.T) {
	u := lineUniverse()
	extended := u.Extend(NewAdjacentMap(nil))

	if extended.GetSystem(2) != u.GetSystem(2) {
		t.Errorf("GetSystem must delegate to the base")
	}
	base, _ := u.GetSystemsInRadius(1, Lightyears(1.5).Meters())
	got, ok := extended.GetSystemsInRadius(1, Lightyears(1.5).Meters())
	if !ok || len(got) != len(base) {
		t.Errorf("GetSystemsInRadius must delegate to the base")
	}
}

func TestExtendedUniverse_DoesNotMutateBase(t *testing.T) {
	u := lineUniverse()
	before := len(u.GetConnections(1))

	extended := u.Extend(NewAdjacentMap([]Connection{
		{From: 1, To: 3, Type: WormholeVeryLarge},
	}))
	_ = extended.GetConnections(1)

	after := u.GetConnections(1)
	if len(after) != before {
		t.Fatalf("base edge set changed: %d -> %d", before, len(after))
	}
	if after[0].Type != StargateLocal {
		t.Errorf("base edge rewritten: %v", after[0])
	}
}

func TestExtendedUniverse_Nesting(t *testing.T) {
	u := lineUniverse()
	inner := u.Extend(NewAdjacentMap([]Connection{
		{From: 1, To: 3, Type: WormholeVeryLarge},
	}))
	outer := NewExtendedUniverse(inner, NewAdjacentMap([]Connection{
		{From: 1, To: 2, Type: BridgeType{Class: BridgeTitan, JumpDriveCalibration: 5}},
	}))

	conns := outer.GetConnections(1)
	if len(conns) != 3 {
		t.Fatalf("nested union = %v, want 3 edges", conns)
	}
	if conns[0].Type != StargateLocal || conns[1].Type != WormholeVeryLarge {
		t.Errorf("nested union order wrong: %v", conns)
	}
	if _, ok := conns[2].Type.(BridgeType); !ok {
		t.Errorf("outermost overlay edge missing: %v", conns)
	}
}

func TestBridgeSynthesis_TitanCalibration5(t *testing.T) {
	ly := float64(Lightyears(1).Meters())
	u := NewUniverseBuilder().
		System(System{ID: 1, Name: "Origin", Coordinate: Coordinate{X: 0}, Security: -0.1}).
		System(System{ID: 2, Name: "Near", Coordinate: Coordinate{X: 5.9 * ly}, Security: -0.2}).
		System(System{ID: 3, Name: "Far", Coordinate: Coordinate{X: 6.1 * ly}, Security: -0.3}).
		System(System{ID: 4, Name: "Close", Coordinate: Coordinate{Y: 2 * ly}, Security: -0.4}).
		Build()

	// Titan, calibration 5: 3.0 + 3.0*0.2*5 = 6.0 ly effective range.
	bridge := BridgeType{Class: BridgeTitan, JumpDriveCalibration: 5, JumpFuelConservation: 1}
	extended := NewExtendedUniverseBuilder(u).Bridge(1, bridge).Build()

	conns := extended.GetConnections(1)
	targets := make(map[SystemID]bool)
	for _, c := range conns {
		if c.From != 1 {
			t.Errorf("bridge edge with wrong origin: %v", c)
		}
		if c.Type != bridge {
			t.Errorf("bridge edge with wrong type: %v", c)
		}
		targets[c.To] = true
	}

	// Everything within 6.0 ly, including the origin itself; nothing
	// beyond.
	for _, want := range []SystemID{1, 2, 4} {
		if !targets[want] {
			t.Errorf("no bridge edge to system %d", want)
		}
	}
	if targets[3] {
		t.Errorf("bridge edge to system 3 beyond 6.0 ly")
	}
	if len(conns) != 3 {
		t.Errorf("synthesized %d edges, want 3", len(conns))
	}
}

func TestBridgeSynthesis_UnknownOrigin(t *testing.T) {
	u := lineUniverse()
	extended := NewExtendedUniverseBuilder(u).
		Bridge(99, BridgeType{Class: BridgeBlackOps}).
		Build()

	if got := extended.GetConnections(99); got != nil {
		t.Fatalf("bridge from unknown origin added edges: %v", got)
	}
}
