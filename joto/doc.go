// Package joto parses and formats physical quantities without losing a
// single base unit.
//
// Human-readable measurements of length, mass and temperature, written
// with US customary or SI units in either Unicode or ASCII glyphs, are
// converted to exact int64 counts of a fixed base unit and back:
//   - Length in nanometers: "6′2″", "1.5mm", "26.2mi"
//   - Mass in nanograms: "3lb4oz", "770mg", "5l.cwt"
//   - Temperature in millirankine above absolute zero: "37°C", "98.6F",
//     "273.15K"
//
// Every parse is exact or an error; there is no floating point anywhere.
// Formatting truncates toward zero and reports exactness instead of
// rounding, so text never overstates a stored quantity.
//
// # Recognized Notation
//
// Suffix:     25mm, 3oz, 40K (unit names are suffixes, matched longest
// spelling first: 5l.cwt is long hundredweight, not tonne)
// Compound:   6′2″, 3lb4oz (one hop, from a unit to its fixed superior)
// Fractions:  1.75in (decimal), 11 1⁄64″ (power-of-two, inch only)
// Grouping:   1,234yd and 1 234yd (U+2008) are 1234yd
// Signs:      −40°C, +5C (celsius and fahrenheit only; kelvin, rankine
// and millirankine are absolute and reject signs)
//
// # Two API Shapes
//
// Each domain has a fast shape that collapses failures to false:
//
//	q, ok := joto.ParseLength("37′11″")
//
// and a diagnostic shape that explains them:
//
//	q, err := joto.ParseLengthDiagnostic("37yd2′")
//	// err.Kind == joto.ErrInvalidCompound, err.Found == "yd"
//
// ParseError.Index is a byte offset into the input after trailing
// whitespace has been trimmed, pointing at the rune that stopped the
// parse.
//
// # Formatting
//
//	opts := joto.DefaultFormatOptions()
//	opts.MixedUnits = true
//	joto.FormatLength(q, joto.Foot, opts)
//	// {Text: "37′11″", Exact: true}
//
// FormatResult.Exact is false whenever the requested notation cannot
// carry the full quantity; the emitted text is then a truncation, never
// a rounding.
//
// # Exactness Rules
//
// A unit's scale fixes how many decimal fraction digits convert without
// loss: 1.5mm is exact because half a millimeter is a whole number of
// nanometers, while 5.3oz is rejected as too precise because a tenth of
// an ounce is not a whole number of nanograms. Trailing zeros do not
// count: 5.0oz parses. Inch quantities may instead use power-of-two
// fractions with denominators 2 through 64, which are always exact.
//
// All lookup tables are built once during package initialization and
// never mutated; every function here is safe for concurrent use.
package joto
