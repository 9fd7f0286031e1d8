package joto

import "fmt"

// LengthUnit identifies a unit of length. Quantities are counts of the
// base unit, the nanometer.
type LengthUnit uint8

const (
	Nanometer LengthUnit = iota
	Micrometer
	Millimeter
	Centimeter
	Meter
	Kilometer
	Inch
	Foot
	Yard
	Mile
)

// lengthTable fixes every length unit to an exact nanometer count. The
// customary units follow the international yard (0.9144 m exactly), which
// makes the inch 25.4 mm and keeps all scales integral, 64ths of an inch
// included.
var lengthTable = newDomain("length",
	[]unitDesc{
		Nanometer:  {name: "nanometer", scale: 1, sym: "nm", ascii: "nm"},
		Micrometer: {name: "micrometer", scale: 1_000, sym: "µm", ascii: "um"},
		Millimeter: {name: "millimeter", scale: 1_000_000, sym: "mm", ascii: "mm"},
		Centimeter: {name: "centimeter", scale: 10_000_000, sym: "cm", ascii: "cm"},
		Meter:      {name: "meter", scale: 1_000_000_000, sym: "m", ascii: "m"},
		Kilometer:  {name: "kilometer", scale: 1_000_000_000_000, sym: "km", ascii: "km"},
		Inch:       {name: "inch", scale: 25_400_000, sym: "″", ascii: "\"", sup: uint8(Foot) + 1, rational: true},
		Foot:       {name: "foot", scale: 304_800_000, sym: "′", ascii: "'", inf: uint8(Inch) + 1},
		Yard:       {name: "yard", scale: 914_400_000, sym: "yd", ascii: "yd"},
		Mile:       {name: "mile", scale: 1_609_344_000_000, sym: "mi", ascii: "mi"},
	},
	[]suffixEntry{
		{"µm", uint8(Micrometer)}, // U+00B5 MICRO SIGN
		{"μm", uint8(Micrometer)}, // U+03BC GREEK SMALL LETTER MU
		{"um", uint8(Micrometer)},
		{"nm", uint8(Nanometer)},
		{"mm", uint8(Millimeter)},
		{"cm", uint8(Centimeter)},
		{"km", uint8(Kilometer)},
		{"mi", uint8(Mile)},
		{"yd", uint8(Yard)},
		{"in", uint8(Inch)},
		{"ft", uint8(Foot)},
		{"m", uint8(Meter)},
		{"″", uint8(Inch)}, // U+2033 DOUBLE PRIME
		{"\"", uint8(Inch)},
		{"′", uint8(Foot)}, // U+2032 PRIME
		{"'", uint8(Foot)},
	},
	false)

// ParseLength parses a length quantity into nanometers. Any input it
// cannot represent exactly yields false.
func ParseLength(s string) (int64, bool) {
	v, err := lengthTable.parse(s)
	return v, err == nil
}

// ParseLengthDiagnostic parses a length quantity into nanometers,
// returning a structured error on failure.
func ParseLengthDiagnostic(s string) (int64, *ParseError) {
	return lengthTable.parse(s)
}

// ParseLengthAsUnit parses a bare count of u into nanometers. No unit
// suffix or compound notation is accepted.
func ParseLengthAsUnit(s string, u LengthUnit) (int64, bool) {
	lengthTable.check(uint8(u))
	v, err := lengthTable.parseAs(s, uint8(u))
	return v, err == nil
}

// ParseLengthAsUnitDiagnostic is ParseLengthAsUnit with a structured
// error.
func ParseLengthAsUnitDiagnostic(s string, u LengthUnit) (int64, *ParseError) {
	lengthTable.check(uint8(u))
	return lengthTable.parseAs(s, uint8(u))
}

// MustParseLength is like ParseLength but panics on failure. Use only
// for static initialization and tests.
func MustParseLength(s string) int64 {
	v, err := lengthTable.parse(s)
	if err != nil {
		panic(fmt.Sprintf("MustParseLength(%q): %v", s, err))
	}
	return v
}

// FormatLength renders q nanometers as a quantity of u.
func FormatLength(q int64, u LengthUnit, opts FormatOptions) FormatResult {
	return lengthTable.format(q, uint8(u), opts)
}

// LengthUnitFromString resolves a length unit from its name, canonical
// or ASCII abbreviation.
func LengthUnitFromString(s string) (LengthUnit, bool) {
	u, ok := lengthTable.lookupUnit(s)
	return LengthUnit(u), ok
}

// LengthUnits lists the length units in table order.
func LengthUnits() []LengthUnit {
	us := make([]LengthUnit, len(lengthTable.units))
	for i := range us {
		us[i] = LengthUnit(i)
	}
	return us
}

// String returns the unit name.
func (u LengthUnit) String() string {
	if int(u) >= len(lengthTable.units) {
		return "unknown"
	}
	return lengthTable.units[u].name
}

// Symbol returns the canonical abbreviation.
func (u LengthUnit) Symbol() string {
	lengthTable.check(uint8(u))
	return lengthTable.units[u].sym
}

// ASCII returns the ASCII abbreviation.
func (u LengthUnit) ASCII() string {
	lengthTable.check(uint8(u))
	return lengthTable.units[u].ascii
}

// Scale returns the nanometers in one u.
func (u LengthUnit) Scale() int64 {
	lengthTable.check(uint8(u))
	return lengthTable.units[u].scale
}

// MaxExactDecimalDigits returns how many decimal fraction digits of u
// convert to nanometers without loss.
func (u LengthUnit) MaxExactDecimalDigits() int {
	lengthTable.check(uint8(u))
	return lengthTable.units[u].exact
}

// Superior returns the unit a compound quantity may continue with, if
// any.
func (u LengthUnit) Superior() (LengthUnit, bool) {
	lengthTable.check(uint8(u))
	s, ok := lengthTable.units[u].superior()
	return LengthUnit(s), ok
}

// Inferior returns the unit a mixed format descends to, if any.
func (u LengthUnit) Inferior() (LengthUnit, bool) {
	lengthTable.check(uint8(u))
	s, ok := lengthTable.units[u].inferior()
	return LengthUnit(s), ok
}

// MarshalText implements encoding.TextMarshaler using the ASCII
// abbreviation.
func (u LengthUnit) MarshalText() ([]byte, error) {
	if int(u) >= len(lengthTable.units) {
		return nil, fmt.Errorf("joto: unknown length unit %d", u)
	}
	return []byte(lengthTable.units[u].ascii), nil
}

// UnmarshalText implements encoding.TextUnmarshaler, accepting a unit
// name or abbreviation.
func (u *LengthUnit) UnmarshalText(text []byte) error {
	v, ok := LengthUnitFromString(string(text))
	if !ok {
		return fmt.Errorf("joto: unknown length unit %q", text)
	}
	*u = v
	return nil
}
