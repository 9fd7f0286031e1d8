package joto

import "fmt"

// ErrKind identifies what went wrong during a parse.
type ErrKind uint8

const (
	ErrEmpty           ErrKind = iota // input empty after trimming
	ErrNoUnit                         // no recognizable unit suffix
	ErrEmptyQuantity                  // unit suffix without any digits
	ErrInvalidCompound                // wrong or extra unit in a compound
	ErrInvalidSign                    // sign on an absolute temperature unit
	ErrTooBig                         // magnitude exceeds the representable range
	ErrTooSmall                       // temperature below absolute zero
	ErrTooPrecise                     // decimal fraction finer than the unit resolves
	ErrBadDenominator                 // fraction denominator not 2, 4, 8, 16, 32 or 64
	ErrBadNumerator                   // fraction numerator outside 1..den-1
)

// String returns the kind name.
func (k ErrKind) String() string {
	switch k {
	case ErrEmpty:
		return "empty"
	case ErrNoUnit:
		return "no-unit"
	case ErrEmptyQuantity:
		return "empty-quantity"
	case ErrInvalidCompound:
		return "invalid-compound"
	case ErrInvalidSign:
		return "invalid-sign"
	case ErrTooBig:
		return "too-big"
	case ErrTooSmall:
		return "too-small"
	case ErrTooPrecise:
		return "too-precise"
	case ErrBadDenominator:
		return "bad-denominator"
	case ErrBadNumerator:
		return "bad-numerator"
	default:
		return "unknown"
	}
}

// ParseError describes a failed parse. Index is a byte offset into the
// input after trailing whitespace has been trimmed; for errors detected
// while scanning backward it points at the rune that stopped the parse.
type ParseError struct {
	Kind  ErrKind
	Index int

	// Unit is the canonical abbreviation of the unit being parsed, when
	// one is known.
	Unit string

	// Found and Expected carry the two suffixes of an invalid compound.
	// Expected is empty when no further unit was admissible.
	Found    string
	Expected string

	// Num and Den carry the offending fraction terms.
	Num int64
	Den int64
}

func (e *ParseError) Error() string {
	switch e.Kind {
	case ErrEmpty:
		return "joto: empty input"
	case ErrNoUnit:
		return fmt.Sprintf("joto: no unit suffix ending at offset %d", e.Index)
	case ErrEmptyQuantity:
		return fmt.Sprintf("joto: no digits for %s at offset %d", e.Unit, e.Index)
	case ErrInvalidCompound:
		if e.Expected == "" {
			return fmt.Sprintf("joto: unexpected %s before %s at offset %d", e.Found, e.Unit, e.Index)
		}
		return fmt.Sprintf("joto: found %s before %s, expected %s, at offset %d", e.Found, e.Unit, e.Expected, e.Index)
	case ErrInvalidSign:
		return fmt.Sprintf("joto: sign not allowed on absolute unit %s at offset %d", e.Unit, e.Index)
	case ErrTooBig:
		return fmt.Sprintf("joto: %s quantity exceeds the representable range at offset %d", e.Unit, e.Index)
	case ErrTooSmall:
		return fmt.Sprintf("joto: %s quantity below absolute zero at offset %d", e.Unit, e.Index)
	case ErrTooPrecise:
		return fmt.Sprintf("joto: fraction finer than %s resolves exactly at offset %d", e.Unit, e.Index)
	case ErrBadDenominator:
		return fmt.Sprintf("joto: invalid fraction denominator %d (want 2, 4, 8, 16, 32 or 64) at offset %d", e.Den, e.Index)
	case ErrBadNumerator:
		return fmt.Sprintf("joto: fraction numerator %d out of range for denominator %d at offset %d", e.Num, e.Den, e.Index)
	default:
		return "joto: invalid input"
	}
}
