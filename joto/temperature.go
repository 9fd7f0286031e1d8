package joto

import "fmt"

// TemperatureUnit identifies a unit of thermodynamic temperature.
// Quantities are counts of the base unit, the millirankine, measured up
// from absolute zero; parsed temperatures are therefore never negative.
type TemperatureUnit uint8

const (
	Millirankine TemperatureUnit = iota
	Rankine
	Kelvin
	Celsius
	Fahrenheit
)

// temperatureTable puts all five scales on a common millirankine grid.
// One kelvin is 1.8 rankine, so 0.01 K steps and ninths of a fahrenheit
// degree are both whole millirankine counts. Kelvin, rankine and
// millirankine are absolute and reject signs; celsius and fahrenheit
// measure from origins at 491670 m°R (273.15 K) and 459670 m°R
// (459.67 °R).
var temperatureTable = newDomain("temperature",
	[]unitDesc{
		Millirankine: {name: "millirankine", scale: 1, sym: "m°R", ascii: "mR"},
		Rankine:      {name: "rankine", scale: 1_000, sym: "°R", ascii: "R"},
		Kelvin:       {name: "kelvin", scale: 1_800, sym: "K", ascii: "K"},
		Celsius:      {name: "celsius", scale: 1_800, sym: "°C", ascii: "C", origin: 491_670, relative: true},
		Fahrenheit:   {name: "fahrenheit", scale: 1_000, sym: "°F", ascii: "F", origin: 459_670, relative: true},
	},
	[]suffixEntry{
		{"m°R", uint8(Millirankine)},
		{"mR", uint8(Millirankine)},
		{"°R", uint8(Rankine)},
		{"°C", uint8(Celsius)},
		{"°F", uint8(Fahrenheit)},
		{"K", uint8(Kelvin)},
		{"R", uint8(Rankine)},
		{"C", uint8(Celsius)},
		{"F", uint8(Fahrenheit)},
	},
	true)

// ParseTemperature parses a temperature into millirankine above absolute
// zero. Any input it cannot represent exactly yields false.
func ParseTemperature(s string) (int64, bool) {
	v, err := temperatureTable.parse(s)
	return v, err == nil
}

// ParseTemperatureDiagnostic parses a temperature into millirankine,
// returning a structured error on failure.
func ParseTemperatureDiagnostic(s string) (int64, *ParseError) {
	return temperatureTable.parse(s)
}

// ParseTemperatureAsUnit parses a bare reading of u into millirankine.
// Signs keep their unit semantics: relative units resolve them against
// the unit origin, absolute units reject them.
func ParseTemperatureAsUnit(s string, u TemperatureUnit) (int64, bool) {
	temperatureTable.check(uint8(u))
	v, err := temperatureTable.parseAs(s, uint8(u))
	return v, err == nil
}

// ParseTemperatureAsUnitDiagnostic is ParseTemperatureAsUnit with a
// structured error.
func ParseTemperatureAsUnitDiagnostic(s string, u TemperatureUnit) (int64, *ParseError) {
	temperatureTable.check(uint8(u))
	return temperatureTable.parseAs(s, uint8(u))
}

// MustParseTemperature is like ParseTemperature but panics on failure.
// Use only for static initialization and tests.
func MustParseTemperature(s string) int64 {
	v, err := temperatureTable.parse(s)
	if err != nil {
		panic(fmt.Sprintf("MustParseTemperature(%q): %v", s, err))
	}
	return v
}

// FormatTemperature renders q millirankine as a reading of u.
func FormatTemperature(q int64, u TemperatureUnit, opts FormatOptions) FormatResult {
	return temperatureTable.format(q, uint8(u), opts)
}

// TemperatureUnitFromString resolves a temperature unit from its name,
// canonical or ASCII abbreviation.
func TemperatureUnitFromString(s string) (TemperatureUnit, bool) {
	u, ok := temperatureTable.lookupUnit(s)
	return TemperatureUnit(u), ok
}

// TemperatureUnits lists the temperature units in table order.
func TemperatureUnits() []TemperatureUnit {
	us := make([]TemperatureUnit, len(temperatureTable.units))
	for i := range us {
		us[i] = TemperatureUnit(i)
	}
	return us
}

// String returns the unit name.
func (u TemperatureUnit) String() string {
	if int(u) >= len(temperatureTable.units) {
		return "unknown"
	}
	return temperatureTable.units[u].name
}

// Symbol returns the canonical abbreviation.
func (u TemperatureUnit) Symbol() string {
	temperatureTable.check(uint8(u))
	return temperatureTable.units[u].sym
}

// ASCII returns the ASCII abbreviation.
func (u TemperatureUnit) ASCII() string {
	temperatureTable.check(uint8(u))
	return temperatureTable.units[u].ascii
}

// Scale returns the millirankine in one degree of u.
func (u TemperatureUnit) Scale() int64 {
	temperatureTable.check(uint8(u))
	return temperatureTable.units[u].scale
}

// MaxExactDecimalDigits returns how many decimal fraction digits of u
// convert to millirankine without loss.
func (u TemperatureUnit) MaxExactDecimalDigits() int {
	temperatureTable.check(uint8(u))
	return temperatureTable.units[u].exact
}

// Origin returns the base-unit reading of zero degrees u and whether u
// is a relative scale. Absolute scales return 0, false.
func (u TemperatureUnit) Origin() (int64, bool) {
	temperatureTable.check(uint8(u))
	d := &temperatureTable.units[u]
	return d.origin, d.relative
}

// MarshalText implements encoding.TextMarshaler using the ASCII
// abbreviation.
func (u TemperatureUnit) MarshalText() ([]byte, error) {
	if int(u) >= len(temperatureTable.units) {
		return nil, fmt.Errorf("joto: unknown temperature unit %d", u)
	}
	return []byte(temperatureTable.units[u].ascii), nil
}

// UnmarshalText implements encoding.TextUnmarshaler, accepting a unit
// name or abbreviation.
func (u *TemperatureUnit) UnmarshalText(text []byte) error {
	v, ok := TemperatureUnitFromString(string(text))
	if !ok {
		return fmt.Errorf("joto: unknown temperature unit %q", text)
	}
	*u = v
	return nil
}
