package joto

import "fmt"

// MassUnit identifies a unit of mass. Quantities are counts of the base
// unit, the nanogram.
type MassUnit uint8

const (
	Nanogram MassUnit = iota
	Microgram
	Milligram
	Gram
	Kilogram
	Tonne
	Grain
	Ounce
	TroyOunce
	Pound
	Stone
	Hundredweight
	LongHundredweight
	Ton
	LongTon
)

// massTable fixes every mass unit to an exact nanogram count. The
// customary units follow the international pound (453.59237 g exactly);
// five decimals of a gram means every avoirdupois unit lands on a whole
// nanogram. Ton and hundredweight are the short (US) units; the long
// (imperial) units carry an l. prefix.
var massTable = newDomain("mass",
	[]unitDesc{
		Nanogram:          {name: "nanogram", scale: 1, sym: "ng", ascii: "ng"},
		Microgram:         {name: "microgram", scale: 1_000, sym: "µg", ascii: "ug"},
		Milligram:         {name: "milligram", scale: 1_000_000, sym: "mg", ascii: "mg"},
		Gram:              {name: "gram", scale: 1_000_000_000, sym: "g", ascii: "g"},
		Kilogram:          {name: "kilogram", scale: 1_000_000_000_000, sym: "kg", ascii: "kg"},
		Tonne:             {name: "tonne", scale: 1_000_000_000_000_000, sym: "t", ascii: "t"},
		Grain:             {name: "grain", scale: 64_798_910, sym: "gr", ascii: "gr"},
		Ounce:             {name: "ounce", scale: 28_349_523_125, sym: "oz", ascii: "oz", sup: uint8(Pound) + 1},
		TroyOunce:         {name: "troy ounce", scale: 31_103_476_800, sym: "ozt", ascii: "ozt"},
		Pound:             {name: "pound", scale: 453_592_370_000, sym: "lb", ascii: "lb", inf: uint8(Ounce) + 1},
		Stone:             {name: "stone", scale: 6_350_293_180_000, sym: "st", ascii: "st"},
		Hundredweight:     {name: "hundredweight", scale: 45_359_237_000_000, sym: "cwt", ascii: "cwt"},
		LongHundredweight: {name: "long hundredweight", scale: 50_802_345_440_000, sym: "l.cwt", ascii: "l.cwt"},
		Ton:               {name: "ton", scale: 907_184_740_000_000, sym: "tn", ascii: "tn"},
		LongTon:           {name: "long ton", scale: 1_016_046_908_800_000, sym: "l.tn", ascii: "l.tn"},
	},
	[]suffixEntry{
		{"µg", uint8(Microgram)}, // U+00B5 MICRO SIGN
		{"μg", uint8(Microgram)}, // U+03BC GREEK SMALL LETTER MU
		{"ug", uint8(Microgram)},
		{"ng", uint8(Nanogram)},
		{"mg", uint8(Milligram)},
		{"kg", uint8(Kilogram)},
		{"l.cwt", uint8(LongHundredweight)},
		{"cwt", uint8(Hundredweight)},
		{"ozt", uint8(TroyOunce)},
		{"l.tn", uint8(LongTon)},
		{"tn", uint8(Ton)},
		{"st", uint8(Stone)},
		{"gr", uint8(Grain)},
		{"lb", uint8(Pound)},
		{"oz", uint8(Ounce)},
		{"g", uint8(Gram)},
		{"t", uint8(Tonne)},
	},
	false)

// ParseMass parses a mass quantity into nanograms. Any input it cannot
// represent exactly yields false.
func ParseMass(s string) (int64, bool) {
	v, err := massTable.parse(s)
	return v, err == nil
}

// ParseMassDiagnostic parses a mass quantity into nanograms, returning a
// structured error on failure.
func ParseMassDiagnostic(s string) (int64, *ParseError) {
	return massTable.parse(s)
}

// ParseMassAsUnit parses a bare count of u into nanograms. No unit
// suffix or compound notation is accepted.
func ParseMassAsUnit(s string, u MassUnit) (int64, bool) {
	massTable.check(uint8(u))
	v, err := massTable.parseAs(s, uint8(u))
	return v, err == nil
}

// ParseMassAsUnitDiagnostic is ParseMassAsUnit with a structured error.
func ParseMassAsUnitDiagnostic(s string, u MassUnit) (int64, *ParseError) {
	massTable.check(uint8(u))
	return massTable.parseAs(s, uint8(u))
}

// MustParseMass is like ParseMass but panics on failure. Use only for
// static initialization and tests.
func MustParseMass(s string) int64 {
	v, err := massTable.parse(s)
	if err != nil {
		panic(fmt.Sprintf("MustParseMass(%q): %v", s, err))
	}
	return v
}

// FormatMass renders q nanograms as a quantity of u.
func FormatMass(q int64, u MassUnit, opts FormatOptions) FormatResult {
	return massTable.format(q, uint8(u), opts)
}

// MassUnitFromString resolves a mass unit from its name, canonical or
// ASCII abbreviation.
func MassUnitFromString(s string) (MassUnit, bool) {
	u, ok := massTable.lookupUnit(s)
	return MassUnit(u), ok
}

// MassUnits lists the mass units in table order.
func MassUnits() []MassUnit {
	us := make([]MassUnit, len(massTable.units))
	for i := range us {
		us[i] = MassUnit(i)
	}
	return us
}

// String returns the unit name.
func (u MassUnit) String() string {
	if int(u) >= len(massTable.units) {
		return "unknown"
	}
	return massTable.units[u].name
}

// Symbol returns the canonical abbreviation.
func (u MassUnit) Symbol() string {
	massTable.check(uint8(u))
	return massTable.units[u].sym
}

// ASCII returns the ASCII abbreviation.
func (u MassUnit) ASCII() string {
	massTable.check(uint8(u))
	return massTable.units[u].ascii
}

// Scale returns the nanograms in one u.
func (u MassUnit) Scale() int64 {
	massTable.check(uint8(u))
	return massTable.units[u].scale
}

// MaxExactDecimalDigits returns how many decimal fraction digits of u
// convert to nanograms without loss.
func (u MassUnit) MaxExactDecimalDigits() int {
	massTable.check(uint8(u))
	return massTable.units[u].exact
}

// Superior returns the unit a compound quantity may continue with, if
// any.
func (u MassUnit) Superior() (MassUnit, bool) {
	massTable.check(uint8(u))
	s, ok := massTable.units[u].superior()
	return MassUnit(s), ok
}

// Inferior returns the unit a mixed format descends to, if any.
func (u MassUnit) Inferior() (MassUnit, bool) {
	massTable.check(uint8(u))
	s, ok := massTable.units[u].inferior()
	return MassUnit(s), ok
}

// MarshalText implements encoding.TextMarshaler using the ASCII
// abbreviation.
func (u MassUnit) MarshalText() ([]byte, error) {
	if int(u) >= len(massTable.units) {
		return nil, fmt.Errorf("joto: unknown mass unit %d", u)
	}
	return []byte(massTable.units[u].ascii), nil
}

// UnmarshalText implements encoding.TextUnmarshaler, accepting a unit
// name or abbreviation.
func (u *MassUnit) UnmarshalText(text []byte) error {
	v, ok := MassUnitFromString(string(text))
	if !ok {
		return fmt.Errorf("joto: unknown mass unit %q", text)
	}
	*u = v
	return nil
}
