package joto

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
)

// Formatted text must read back as the same quantity when Exact, and as
// a truncation toward the unit's zero point otherwise. For lengths and
// masses the zero point is zero; for relative temperature scales it is
// the unit origin, so readings below the origin truncate upward.

func roundTripOptions() []FormatOptions {
	grouped := DefaultFormatOptions()
	grouped.GroupSeparator = ','
	mixed := DefaultFormatOptions()
	mixed.MixedUnits = true
	capped := DefaultFormatOptions()
	capped.MaxFractionDigits = 2
	decimal := DefaultFormatOptions()
	decimal.Style = FractionDecimal
	return []FormatOptions{
		DefaultFormatOptions(),
		ASCIIFormatOptions(),
		grouped,
		mixed,
		capped,
		decimal,
		{}, // zero value: no fraction digits at all
	}
}

// sweepQuantities builds counts of scale with assorted sub-unit
// remainders, dropping combinations that leave int64.
func sweepQuantities(scale int64) []int64 {
	counts := []int64{0, 1, 2, 3, 9, 10, 63, 64, 100, 999, 12_345}
	rems := []int64{0, 1, scale / 64, scale / 10, scale / 2, scale - 1}

	seen := make(map[int64]bool)
	var qs []int64
	for _, c := range counts {
		whole, ok := mulCheck(c, scale)
		if !ok {
			continue
		}
		for _, r := range rems {
			if r < 0 || r >= scale {
				continue
			}
			q, ok := addCheck(whole, r)
			if !ok || seen[q] {
				continue
			}
			seen[q] = true
			qs = append(qs, q)
		}
	}
	return append(qs, math.MaxInt64)
}

func TestRoundTrip_Length(t *testing.T) {
	for _, u := range LengthUnits() {
		for _, opts := range roundTripOptions() {
			for _, q := range sweepQuantities(u.Scale()) {
				res := FormatLength(q, u, opts)
				back, err := ParseLengthDiagnostic(res.Text)
				require.Nilf(t, err, "%s %q from %d: %v", u, res.Text, q, err)
				if res.Exact {
					require.Equalf(t, q, back, "%s %q", u, res.Text)
				} else {
					require.LessOrEqualf(t, back, q, "%s %q", u, res.Text)
				}
			}
		}
	}
}

func TestRoundTrip_Mass(t *testing.T) {
	for _, u := range MassUnits() {
		for _, opts := range roundTripOptions() {
			for _, q := range sweepQuantities(u.Scale()) {
				res := FormatMass(q, u, opts)
				back, err := ParseMassDiagnostic(res.Text)
				require.Nilf(t, err, "%s %q from %d: %v", u, res.Text, q, err)
				if res.Exact {
					require.Equalf(t, q, back, "%s %q", u, res.Text)
				} else {
					require.LessOrEqualf(t, back, q, "%s %q", u, res.Text)
				}
			}
		}
	}
}

func TestRoundTrip_Temperature(t *testing.T) {
	for _, u := range TemperatureUnits() {
		origin, relative := u.Origin()
		for _, opts := range roundTripOptions() {
			for _, q := range sweepQuantities(u.Scale()) {
				res := FormatTemperature(q, u, opts)
				back, err := ParseTemperatureDiagnostic(res.Text)
				require.Nilf(t, err, "%s %q from %d: %v", u, res.Text, q, err)
				switch {
				case res.Exact:
					require.Equalf(t, q, back, "%s %q", u, res.Text)
				case relative && q < origin:
					require.GreaterOrEqualf(t, back, q, "%s %q", u, res.Text)
					require.LessOrEqualf(t, back, origin, "%s %q", u, res.Text)
				default:
					require.LessOrEqualf(t, back, q, "%s %q", u, res.Text)
				}
			}
		}
	}
}

func TestRoundTrip_MixedCompound(t *testing.T) {
	q := MustParseLength("32′11 1⁄64″")
	require.Equal(t, int64(10_033_396_875), q)

	opts := DefaultFormatOptions()
	opts.MixedUnits = true
	res := FormatLength(q, Foot, opts)
	require.True(t, res.Exact)
	require.Equal(t, q, MustParseLength(res.Text))

	ascii := ASCIIFormatOptions()
	ascii.MixedUnits = true
	res = FormatLength(q, Foot, ascii)
	require.Equal(t, "32'11 1/64\"", res.Text)
	require.Equal(t, q, MustParseLength(res.Text))
}

// ============================================================
// Diagnostic Structs
// ============================================================

func TestDiagnostics_FullStructs(t *testing.T) {
	tests := []struct {
		input    string
		expected *ParseError
	}{
		{"5m2\"", &ParseError{Kind: ErrInvalidCompound, Index: 1, Unit: "″", Found: "m", Expected: "′"}},
		{"1/3\"", &ParseError{Kind: ErrBadDenominator, Index: 2, Unit: "″", Den: 3}},
		{"2/2\"", &ParseError{Kind: ErrBadNumerator, Index: 0, Unit: "″", Num: 2, Den: 2}},
		{"'2\"", &ParseError{Kind: ErrEmptyQuantity, Index: 0, Unit: "′"}},
		{"", &ParseError{Kind: ErrEmpty}},
		{"abc", &ParseError{Kind: ErrNoUnit, Index: 3}},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			_, got := ParseLengthDiagnostic(tt.input)
			if diff := cmp.Diff(tt.expected, got); diff != "" {
				t.Errorf("diagnostic mismatch (-expected +got):\n%s", diff)
			}
		})
	}

	_, got := ParseTemperatureDiagnostic("-10K")
	expected := &ParseError{Kind: ErrInvalidSign, Index: 0, Unit: "K"}
	if diff := cmp.Diff(expected, got); diff != "" {
		t.Errorf("diagnostic mismatch (-expected +got):\n%s", diff)
	}

	_, got = ParseMassDiagnostic("9300t")
	expected = &ParseError{Kind: ErrTooBig, Index: 0, Unit: "t"}
	if diff := cmp.Diff(expected, got); diff != "" {
		t.Errorf("diagnostic mismatch (-expected +got):\n%s", diff)
	}
}
