package joto

import (
	"testing"
)

// ============================================================
// Length Parsing
// ============================================================

func TestParseLength_Suffixes(t *testing.T) {
	tests := []struct {
		input    string
		expected int64
	}{
		{"12nm", 12},
		{"5µm", 5_000},
		{"5μm", 5_000},
		{"5um", 5_000},
		{"25mm", 25_000_000},
		{"3cm", 30_000_000},
		{"1m", 1_000_000_000},
		{"1km", 1_000_000_000_000},
		{"1in", 25_400_000},
		{"1\"", 25_400_000},
		{"1″", 25_400_000},
		{"1ft", 304_800_000},
		{"1'", 304_800_000},
		{"1′", 304_800_000},
		{"100yd", 91_440_000_000},
		{"26.2mi", 42_164_812_800_000},
		{"0.5m", 500_000_000},
		{"1.5mm", 1_500_000},
		{".5m", 500_000_000},
		{"5.m", 5_000_000_000},
		{"5 in", 127_000_000},
		{"000000000000001m", 1_000_000_000},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, ok := ParseLength(tt.input)
			if !ok {
				t.Fatalf("ParseLength failed")
			}
			if got != tt.expected {
				t.Errorf("Expected %d, got %d", tt.expected, got)
			}
		})
	}
}

func TestParseLength_Compound(t *testing.T) {
	tests := []struct {
		input    string
		expected int64
	}{
		{"6'2\"", 1_879_600_000},
		{"6′2″", 1_879_600_000},
		{"6ft2in", 1_879_600_000},
		{"6' 2\"", 1_879_600_000},
		{"37'11\"", 11_557_000_000},
		{"1,234'6\"", 376_275_600_000},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, ok := ParseLength(tt.input)
			if !ok {
				t.Fatalf("ParseLength failed")
			}
			if got != tt.expected {
				t.Errorf("Expected %d, got %d", tt.expected, got)
			}
		})
	}
}

func TestParseLength_Grouping(t *testing.T) {
	// Grouping separators are transparent wherever they sit in a digit
	// run, and U+2008 works exactly like a comma.
	equivalent := [][2]string{
		{"1,234yd", "1234yd"},
		{"1 234yd", "1234yd"},
		{"1,2,3,4yd", "1234yd"},
		{",1234yd", "1234yd"},
		{"12,34,000km", "1234000km"},
	}

	for _, pair := range equivalent {
		t.Run(pair[0], func(t *testing.T) {
			a, ok := ParseLength(pair[0])
			if !ok {
				t.Fatalf("ParseLength(%q) failed", pair[0])
			}
			b, ok := ParseLength(pair[1])
			if !ok {
				t.Fatalf("ParseLength(%q) failed", pair[1])
			}
			if a != b {
				t.Errorf("Expected %d, got %d", b, a)
			}
		})
	}
}

func TestParseLength_Overflow(t *testing.T) {
	// The largest representable nanometer count parses; anything past it
	// fails, but extra leading zeros never hurt.
	max := "9223372036854775807nm"
	got, ok := ParseLength(max)
	if !ok {
		t.Fatalf("ParseLength(%q) failed", max)
	}
	if got != 9_223_372_036_854_775_807 {
		t.Errorf("Expected max int64, got %d", got)
	}

	padded := "0009223372036854775807nm"
	got, ok = ParseLength(padded)
	if !ok || got != 9_223_372_036_854_775_807 {
		t.Errorf("Leading zeros should parse to max, got %d (ok=%v)", got, ok)
	}

	for _, input := range []string{
		"9223372036854775808nm",
		"9,223,372,036,854,775,808nm",
		"10000000000000000000nm",
	} {
		_, err := ParseLengthDiagnostic(input)
		if err == nil || err.Kind != ErrTooBig {
			t.Errorf("ParseLengthDiagnostic(%q): expected too-big, got %v", input, err)
		}
	}
	for _, input := range []string{"9300t", "12345t"} {
		_, err := ParseMassDiagnostic(input)
		if err == nil || err.Kind != ErrTooBig {
			t.Errorf("ParseMassDiagnostic(%q): expected too-big, got %v", input, err)
		}
	}
}

// ============================================================
// Mass Parsing
// ============================================================

func TestParseMass_Suffixes(t *testing.T) {
	tests := []struct {
		input    string
		expected int64
	}{
		{"500mg", 500_000_000},
		{"1g", 1_000_000_000},
		{"1kg", 1_000_000_000_000},
		{"5µg", 5_000},
		{"5ug", 5_000},
		{"12ng", 12},
		{"5t", 5_000_000_000_000_000},
		{"5gr", 323_994_550},
		{"1oz", 28_349_523_125},
		{"5ozt", 155_517_384_000},
		{"1lb", 453_592_370_000},
		{"5st", 31_751_465_900_000},
		{"5cwt", 226_796_185_000_000},
		{"5l.cwt", 254_011_727_200_000},
		{"2tn", 1_814_369_480_000_000},
		{"2l.tn", 2_032_093_817_600_000},
		{"5.0oz", 141_747_615_625},
		{"1.5g", 1_500_000_000},
		{"7.5st", 47_627_198_850_000},
		{"0.123456789kg", 123_456_789_000},
		{"6350.29318g", 6_350_293_180_000},
		{"6.35029318kg", 6_350_293_180_000},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, ok := ParseMass(tt.input)
			if !ok {
				t.Fatalf("ParseMass failed")
			}
			if got != tt.expected {
				t.Errorf("Expected %d, got %d", tt.expected, got)
			}
		})
	}
}

func TestParseMass_Compound(t *testing.T) {
	got, ok := ParseMass("3lb4oz")
	if !ok {
		t.Fatalf("ParseMass failed")
	}
	want := 3*453_592_370_000 + 4*28_349_523_125
	if got != int64(want) {
		t.Errorf("Expected %d, got %d", want, got)
	}
}

// ============================================================
// Failure Modes
// ============================================================

func TestParse_ErrorKinds(t *testing.T) {
	tests := []struct {
		input string
		kind  ErrKind
		index int
	}{
		{"", ErrEmpty, 0},
		{"   ", ErrEmpty, 0},
		{"\u00A0\uFEFF", ErrEmpty, 0},
		{"abc", ErrNoUnit, 3},
		{"5", ErrNoUnit, 1},
		{"m", ErrEmptyQuantity, 0},
		{".m", ErrEmptyQuantity, 0},
		{",m", ErrEmptyQuantity, 0},
		{"5..m", ErrEmptyQuantity, 2},
		{"x5m", ErrNoUnit, 1},
		{"5 5km", ErrNoUnit, 1},
		{"1.0000000001m", ErrTooPrecise, 2},
		{"1/2mm", ErrNoUnit, 2},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			_, err := ParseLengthDiagnostic(tt.input)
			if err == nil {
				t.Fatalf("Expected %s, parse succeeded", tt.kind)
			}
			if err.Kind != tt.kind {
				t.Errorf("Expected kind %s, got %s", tt.kind, err.Kind)
			}
			if err.Index != tt.index {
				t.Errorf("Expected index %d, got %d", tt.index, err.Index)
			}
		})
	}
}

func TestParse_InvalidCompound(t *testing.T) {
	tests := []struct {
		input    string
		found    string
		expected string
	}{
		{"5m2\"", "m", "′"},    // meter is not the inch's superior
		{"3kg4oz", "kg", "lb"}, // kilogram is not the ounce's superior
		{"6'2'", "′", ""},      // foot has no superior at all
		{"2\"6'", "″", ""},     // inverted order
		{"37yd2'11\"", "yd", ""}, // second hop after foot
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			var err *ParseError
			if tt.input == "3kg4oz" {
				_, err = ParseMassDiagnostic(tt.input)
			} else {
				_, err = ParseLengthDiagnostic(tt.input)
			}
			if err == nil {
				t.Fatalf("Expected invalid-compound, parse succeeded")
			}
			if err.Kind != ErrInvalidCompound {
				t.Fatalf("Expected kind invalid-compound, got %s", err.Kind)
			}
			if err.Found != tt.found {
				t.Errorf("Expected found %q, got %q", tt.found, err.Found)
			}
			if err.Expected != tt.expected {
				t.Errorf("Expected expected %q, got %q", tt.expected, err.Expected)
			}
		})
	}
}

func TestParse_CompoundNeedsSuperiorDigits(t *testing.T) {
	_, err := ParseLengthDiagnostic("'2\"")
	if err == nil {
		t.Fatal("Expected empty-quantity, parse succeeded")
	}
	if err.Kind != ErrEmptyQuantity {
		t.Errorf("Expected kind empty-quantity, got %s", err.Kind)
	}
	if err.Unit != "′" {
		t.Errorf("Expected unit ′, got %q", err.Unit)
	}
}

// ============================================================
// Fast vs Diagnostic Agreement
// ============================================================

func TestParse_ShapesAgree(t *testing.T) {
	inputs := []string{
		"25mm", "6'2\"", "11 1⁄64″", "3lb4oz", "-40°C", "273.15K",
		"", "m", "5", "5.3oz", "-1K", "3/5\"", "37yd2'11\"",
	}

	for _, input := range inputs {
		t.Run(input, func(t *testing.T) {
			lv, lok := ParseLength(input)
			ld, lerr := ParseLengthDiagnostic(input)
			if lok != (lerr == nil) {
				t.Errorf("Length shapes disagree: ok=%v err=%v", lok, lerr)
			}
			if lok && lv != ld {
				t.Errorf("Length values disagree: %d vs %d", lv, ld)
			}

			mv, mok := ParseMass(input)
			md, merr := ParseMassDiagnostic(input)
			if mok != (merr == nil) {
				t.Errorf("Mass shapes disagree: ok=%v err=%v", mok, merr)
			}
			if mok && mv != md {
				t.Errorf("Mass values disagree: %d vs %d", mv, md)
			}

			tv, tok := ParseTemperature(input)
			td, terr := ParseTemperatureDiagnostic(input)
			if tok != (terr == nil) {
				t.Errorf("Temperature shapes disagree: ok=%v err=%v", tok, terr)
			}
			if tok && tv != td {
				t.Errorf("Temperature values disagree: %d vs %d", tv, td)
			}
		})
	}
}

// ============================================================
// Unit-Scoped Parsing
// ============================================================

func TestParseAsUnit(t *testing.T) {
	tests := []struct {
		input    string
		unit     LengthUnit
		expected int64
		ok       bool
	}{
		{"25", Millimeter, 25_000_000, true},
		{"1,234", Yard, 1_128_369_600_000, true},
		{"2.5", Centimeter, 25_000_000, true},
		{"11 1⁄64", Inch, 279_796_875, true},
		{"3/8", Inch, 9_525_000, true},
		{"", Meter, 0, false},
		{"5m", Meter, 0, false},  // no suffixes here
		{"6'2", Inch, 0, false},  // no compounds either
		{"1.5", Nanometer, 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, ok := ParseLengthAsUnit(tt.input, tt.unit)
			if ok != tt.ok {
				t.Fatalf("Expected ok=%v, got %v", tt.ok, ok)
			}
			if ok && got != tt.expected {
				t.Errorf("Expected %d, got %d", tt.expected, got)
			}
		})
	}
}

func TestParseAsUnit_TemperatureSigns(t *testing.T) {
	got, ok := ParseTemperatureAsUnit("-40", Celsius)
	if !ok {
		t.Fatal("ParseTemperatureAsUnit failed")
	}
	if got != 419_670 {
		t.Errorf("Expected 419670, got %d", got)
	}

	_, err := ParseTemperatureAsUnitDiagnostic("-40", Kelvin)
	if err == nil {
		t.Fatal("Expected invalid-sign, parse succeeded")
	}
	if err.Kind != ErrInvalidSign {
		t.Errorf("Expected kind invalid-sign, got %s", err.Kind)
	}

	_, err = ParseLengthAsUnitDiagnostic("-5", Meter)
	if err == nil {
		t.Fatal("Expected failure, parse succeeded")
	}
	if err.Kind != ErrNoUnit {
		t.Errorf("Expected kind no-unit, got %s", err.Kind)
	}
}

// ============================================================
// Suffix Priority
// ============================================================

func TestParse_SuffixPriority(t *testing.T) {
	// Longer spellings win over their own tails: 5l.cwt must never read
	// as 5 tonnes with junk in front.
	tests := []struct {
		input    string
		expected int64
		parse    func(string) (int64, bool)
	}{
		{"5l.cwt", 254_011_727_200_000, ParseMass},
		{"5cwt", 226_796_185_000_000, ParseMass},
		{"5ozt", 155_517_384_000, ParseMass},
		{"5st", 31_751_465_900_000, ParseMass},
		{"5t", 5_000_000_000_000_000, ParseMass},
		{"5g", 5_000_000_000, ParseMass},
		{"5kg", 5_000_000_000_000, ParseMass},
		{"5m", 5_000_000_000, ParseLength},
		{"5mm", 5_000_000, ParseLength},
		{"5um", 5_000, ParseLength},
		{"5mi", 8_046_720_000_000, ParseLength},
		{"500mR", 500, ParseTemperature},
		{"500m°R", 500, ParseTemperature},
		{"500R", 500_000, ParseTemperature},
		{"500°R", 500_000, ParseTemperature},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, ok := tt.parse(tt.input)
			if !ok {
				t.Fatalf("parse failed")
			}
			if got != tt.expected {
				t.Errorf("Expected %d, got %d", tt.expected, got)
			}
		})
	}
}
