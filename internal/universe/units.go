package universe

// Distance units. Coordinates and radius queries work in meters; the
// SDE and bridge mechanics quote kilometers and lightyears, so the
// conversions here are exact scalings with no approximation drift.

const (
	// 9,460,730,472,580.8 km expressed in meters. Folded into one
	// constant so the conversion multiplies and rounds exactly once.
	metersPerLightyear        = 9_460_730_472_580_800.0
	metersPerKilometer        = 1000.0
	metersPerAstronomicalUnit = 149_597_870_700.0
)

type (
	Meters            float64
	Kilometers        float64
	AstronomicalUnits float64
	Lightyears        float64
)

func (k Kilometers) Meters() Meters {
	return Meters(float64(k) * metersPerKilometer)
}

func (a AstronomicalUnits) Meters() Meters {
	return Meters(float64(a) * metersPerAstronomicalUnit)
}

func (l Lightyears) Meters() Meters {
	return Meters(float64(l) * metersPerLightyear)
}
