package joto

import (
	"strconv"
	"strings"
)

// OutputMode selects the glyph repertoire of formatted text.
type OutputMode uint8

const (
	OutputUnicode OutputMode = iota // canonical abbreviations, U+2212, U+2044, U+2008
	OutputASCII                     // ASCII abbreviations and punctuation only
)

// String returns the mode name.
func (m OutputMode) String() string {
	switch m {
	case OutputUnicode:
		return "unicode"
	case OutputASCII:
		return "ascii"
	default:
		return "unknown"
	}
}

// FractionStyle selects how sub-unit remainders are written.
type FractionStyle uint8

const (
	FractionPositional FractionStyle = iota // power-of-two fractions, 1⁄64 steps
	FractionDecimal
)

// String returns the style name.
func (s FractionStyle) String() string {
	switch s {
	case FractionPositional:
		return "positional"
	case FractionDecimal:
		return "decimal"
	default:
		return "unknown"
	}
}

// Unbounded lets the unit's exact resolution bound the fraction digits.
const Unbounded = -1

// FormatOptions configures the formatter.
type FormatOptions struct {
	// MaxFractionDigits caps decimal fraction digits. Unbounded (or any
	// negative value) means the unit's exact resolution is the cap.
	MaxFractionDigits int

	// GroupSeparator is inserted every three whole digits when nonzero.
	// It is emitted as given; the parser accepts , and U+2008.
	GroupSeparator rune

	// Style picks the fraction notation for units that allow both.
	// Units without positional fractions always use decimal.
	Style FractionStyle

	// FractionFallback switches to the other fraction style when it
	// loses strictly less of the remainder. Ties keep Style.
	FractionFallback bool

	// MixedUnits splits the quantity across a unit and its inferior
	// unit, 32′11″ style, when the unit has one.
	MixedUnits bool

	// Mode selects Unicode or ASCII output glyphs.
	Mode OutputMode
}

// DefaultFormatOptions returns the Unicode defaults.
func DefaultFormatOptions() FormatOptions {
	return FormatOptions{
		MaxFractionDigits: Unbounded,
		Style:             FractionPositional,
		FractionFallback:  true,
		Mode:              OutputUnicode,
	}
}

// ASCIIFormatOptions returns the defaults for pure-ASCII output.
func ASCIIFormatOptions() FormatOptions {
	o := DefaultFormatOptions()
	o.Mode = OutputASCII
	return o
}

// FormatResult is formatted text plus whether the text captures the
// whole quantity. Exact is false when a remainder finer than the chosen
// notation was truncated; output is never rounded up, so the text always
// reads back as a truncation of the original.
type FormatResult struct {
	Text  string
	Exact bool
}

// format renders q base units as a quantity of u.
func (d *domain) format(q int64, u uint8, opts FormatOptions) FormatResult {
	d.check(u)
	if q < 0 {
		panic("joto: negative " + d.name + " quantity")
	}
	unit := &d.units[u]
	e := emitter{d: d, opts: opts}

	mag := q
	if unit.relative {
		if q < unit.origin {
			e.minus()
			mag = unit.origin - q
		} else {
			mag = q - unit.origin
		}
	}

	if inf, ok := unit.inferior(); ok && opts.MixedUnits {
		return e.mixed(mag, u, inf)
	}

	left := e.number(mag/unit.scale, mag%unit.scale, u)
	e.symbol(u)
	return FormatResult{Text: e.sb.String(), Exact: left == 0}
}

type emitter struct {
	sb   strings.Builder
	d    *domain
	opts FormatOptions
}

// mixed writes a quantity as a superior whole count plus an inferior
// remainder. Below one whole unit the quantity formats directly in the
// inferior unit.
func (e *emitter) mixed(mag int64, u, inf uint8) FormatResult {
	scale := e.d.units[u].scale
	infScale := e.d.units[inf].scale

	if mag < scale {
		left := e.number(mag/infScale, mag%infScale, inf)
		e.symbol(inf)
		return FormatResult{Text: e.sb.String(), Exact: left == 0}
	}

	e.grouped(mag / scale)
	e.symbol(u)
	rem := mag % scale
	if rem == 0 {
		return FormatResult{Text: e.sb.String(), Exact: true}
	}
	left := e.number(rem/infScale, rem%infScale, inf)
	e.symbol(inf)
	return FormatResult{Text: e.sb.String(), Exact: left == 0}
}

// number writes a whole count of u plus its sub-unit fraction and
// returns the remainder the text leaves out.
func (e *emitter) number(whole, rem int64, u uint8) int64 {
	unit := &e.d.units[u]
	if rem == 0 {
		e.grouped(whole)
		return 0
	}

	var num, den, positionalLeft int64
	if unit.rational {
		num, den, positionalLeft = planPositional(rem, unit.scale)
	} else {
		positionalLeft = rem
	}
	decimal, decimalLeft := e.planDecimal(rem, unit)

	usePositional := unit.rational && e.opts.Style == FractionPositional
	if unit.rational && e.opts.FractionFallback {
		if usePositional && decimalLeft < positionalLeft {
			usePositional = false
		} else if !usePositional && positionalLeft < decimalLeft {
			usePositional = true
		}
	}

	switch {
	case usePositional && num > 0:
		if whole > 0 {
			e.grouped(whole)
			e.space()
		}
		e.fractionGlyphs(num, den)
		return positionalLeft
	case usePositional:
		e.grouped(whole)
		return positionalLeft
	case decimal != "":
		e.grouped(whole)
		e.sb.WriteByte('.')
		e.sb.WriteString(decimal)
		return decimalLeft
	default:
		e.grouped(whole)
		return decimalLeft
	}
}

// planPositional reduces rem to the coarsest power-of-two fraction on
// the 64ths grid.
func planPositional(rem, scale int64) (num, den, left int64) {
	step := scale / 64
	num = rem / step
	left = rem - num*step
	den = 64
	for num > 0 && num%2 == 0 {
		num /= 2
		den /= 2
	}
	return num, den, left
}

// planDecimal renders the significant fraction digits of rem, bounded by
// the unit resolution and the configured digit cap.
func (e *emitter) planDecimal(rem int64, unit *unitDesc) (string, int64) {
	p := unit.exact
	if mf := e.opts.MaxFractionDigits; mf >= 0 && mf < p {
		p = mf
	}
	if p <= 0 {
		return "", rem
	}
	step := unit.scale / pow10[p]
	frac := rem / step
	left := rem - frac*step
	if frac == 0 {
		return "", rem
	}

	buf := make([]byte, p)
	for i := p - 1; i >= 0; i-- {
		buf[i] = byte('0' + frac%10)
		frac /= 10
	}
	// Trailing zeros carry no value; dropping them loses nothing.
	n := p
	for n > 0 && buf[n-1] == '0' {
		n--
	}
	return string(buf[:n]), left
}

// grouped writes a nonnegative count with optional digit grouping.
func (e *emitter) grouped(n int64) {
	s := strconv.FormatInt(n, 10)
	sep := e.opts.GroupSeparator
	if sep == 0 || len(s) <= 3 {
		e.sb.WriteString(s)
		return
	}
	head := len(s) % 3
	if head > 0 {
		e.sb.WriteString(s[:head])
	}
	for i := head; i < len(s); i += 3 {
		if i > 0 {
			e.sb.WriteRune(sep)
		}
		e.sb.WriteString(s[i : i+3])
	}
}

func (e *emitter) fractionGlyphs(num, den int64) {
	e.sb.WriteString(strconv.FormatInt(num, 10))
	if e.opts.Mode == OutputASCII {
		e.sb.WriteByte('/')
	} else {
		e.sb.WriteRune(fractionSlash)
	}
	e.sb.WriteString(strconv.FormatInt(den, 10))
}

func (e *emitter) symbol(u uint8) {
	if e.opts.Mode == OutputASCII {
		e.sb.WriteString(e.d.units[u].ascii)
	} else {
		e.sb.WriteString(e.d.units[u].sym)
	}
}

func (e *emitter) minus() {
	if e.opts.Mode == OutputASCII {
		e.sb.WriteByte('-')
	} else {
		e.sb.WriteRune(minusSign)
	}
}

func (e *emitter) space() {
	if e.opts.Mode == OutputASCII {
		e.sb.WriteByte(' ')
	} else {
		e.sb.WriteRune(thinSep)
	}
}
