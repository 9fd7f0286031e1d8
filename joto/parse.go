package joto

// The grammar is anchored at the right end of the input: a unit suffix,
// then an optional fraction, then the whole count, then an optional sign.
// Every scanner here therefore walks backward, and each stage either
// consumes definitively or fails; nothing backtracks. A scan value lives
// on the caller's stack for the duration of one parse, so concurrent
// parses share nothing.

type scan struct {
	d      *domain
	src    string
	pos    int   // backward cursor; everything at and beyond pos is consumed
	acc    int64 // accumulated base units
	digits bool  // at least one digit consumed so far
}

// parse reads a suffixed quantity, compounds included.
func (d *domain) parse(s string) (int64, *ParseError) {
	end := trimSpace(s, len(s))
	if end == 0 {
		return 0, &ParseError{Kind: ErrEmpty}
	}
	u, rest, ok := d.matchSuffix(s, end)
	if !ok {
		return 0, &ParseError{Kind: ErrNoUnit, Index: end}
	}
	p := scan{d: d, src: s, pos: rest}
	return p.quantity(u, true)
}

// parseAs reads a bare count of unit u. Suffixes and compounds are not
// recognized; sign handling still follows the unit.
func (d *domain) parseAs(s string, u uint8) (int64, *ParseError) {
	end := trimSpace(s, len(s))
	if end == 0 {
		return 0, &ParseError{Kind: ErrEmpty}
	}
	p := scan{d: d, src: s, pos: end}
	return p.quantity(u, false)
}

func (p *scan) errAt(kind ErrKind, index int, u uint8) *ParseError {
	return &ParseError{Kind: kind, Index: index, Unit: p.d.units[u].sym}
}

func (p *scan) trim() {
	p.pos = trimSpace(p.src, p.pos)
}

// quantity parses the number ending at p.pos as a count of unit u, then
// resolves sign, compound continuation and leftover text.
func (p *scan) quantity(u uint8, compound bool) (int64, *ParseError) {
	unit := &p.d.units[u]
	p.trim()

	if err := p.fraction(u); err != nil {
		return 0, err
	}
	if _, err := p.whole(unit.scale, u); err != nil {
		return 0, err
	}
	if !p.digits {
		return 0, p.errAt(ErrEmptyQuantity, p.pos, u)
	}

	neg := false
	if p.d.signed {
		var err *ParseError
		if neg, err = p.sign(u); err != nil {
			return 0, err
		}
	}

	if compound {
		if err := p.compose(u); err != nil {
			return 0, err
		}
	} else {
		p.trim()
		if p.pos > 0 {
			return 0, p.errAt(ErrNoUnit, p.pos, u)
		}
	}

	return p.resolve(u, neg)
}

// fraction dispatches on the shape of the trailing digit run: a rational
// fraction when a fraction slash precedes it (rational units only), a
// decimal fraction when a dot does. Anything else is left for the whole
// scanner.
func (p *scan) fraction(u uint8) *ParseError {
	unit := &p.d.units[u]

	runEnd := p.pos
	runStart := runEnd
	for runStart > 0 {
		r, size := lastRune(p.src, runStart)
		if !isDigit(r) {
			break
		}
		runStart -= size
	}
	if runStart == 0 {
		// Digits reach the start of the input: whole count only.
		return nil
	}

	r, size := lastRune(p.src, runStart)
	switch {
	case unit.rational && runEnd > runStart && isFractionSlash(r):
		return p.rational(u, runStart, runEnd, runStart-size)
	case r == '.':
		return p.decimal(u, runStart, runEnd, runStart-size)
	}
	return nil
}

// decimal consumes the fraction run [runStart, runEnd) and the dot before
// it. Trailing zeros are insignificant: 5.300 carries one significant
// fraction digit.
func (p *scan) decimal(u uint8, runStart, runEnd, dotIdx int) *ParseError {
	unit := &p.d.units[u]

	sig := runEnd
	for sig > runStart && p.src[sig-1] == '0' {
		sig--
	}
	k := sig - runStart
	if k > unit.exact {
		return p.errAt(ErrTooPrecise, runStart, u)
	}
	if k > 0 {
		frac := int64(0)
		for i := runStart; i < sig; i++ {
			frac = frac*10 + int64(p.src[i]-'0')
		}
		// frac < 10^k and 10^k divides scale, so this cannot overflow.
		p.acc = frac * (unit.scale / pow10[k])
	}
	if runEnd > runStart {
		p.digits = true
	}
	p.pos = dotIdx
	return nil
}

// rational consumes num/den ending at denEnd, den being the digit run
// [denStart, denEnd) and the slash sitting at [slashIdx, denStart). Only
// power-of-two denominators up to 64 exist on the grid, and the
// numerator must be a proper fraction. The numerator run stops at the
// first non-digit: grouping separators do not join it to a preceding
// whole count, only whitespace does.
func (p *scan) rational(u uint8, denStart, denEnd, slashIdx int) *ParseError {
	unit := &p.d.units[u]

	den := digitRunValue(p.src, denStart, denEnd)
	if denEnd-denStart > 2 || !validDenominator(den) {
		return &ParseError{Kind: ErrBadDenominator, Index: denStart, Unit: unit.sym, Den: den}
	}

	numEnd := slashIdx
	numStart := numEnd
	for numStart > 0 {
		r, size := lastRune(p.src, numStart)
		if !isDigit(r) {
			break
		}
		numStart -= size
	}
	num := digitRunValue(p.src, numStart, numEnd)
	if numEnd-numStart > 2 || num < 1 || num >= den {
		return &ParseError{Kind: ErrBadNumerator, Index: numStart, Unit: unit.sym, Num: num, Den: den}
	}

	p.acc = num * (unit.scale / den)
	p.digits = true
	p.pos = numStart
	p.trim()
	return nil
}

func validDenominator(den int64) bool {
	switch den {
	case 2, 4, 8, 16, 32, 64:
		return true
	}
	return false
}

// digitRunValue evaluates an ASCII digit run, reading at most 18 digits
// so the result stays in range; longer runs are invalid everywhere this
// is used and fail on the length check instead.
func digitRunValue(s string, start, end int) int64 {
	if end > start+18 {
		end = start + 18
	}
	v := int64(0)
	for i := start; i < end; i++ {
		v = v*10 + int64(s[i]-'0')
	}
	return v
}

// whole accumulates a backward run of digits and grouping separators into
// acc, the place value starting at scale. Once the place value outgrows
// the representable range a nonzero digit fails, but zeros are still
// consumed: they encode no value, so arbitrarily many leading zeros stay
// legal.
func (p *scan) whole(scale int64, u uint8) (bool, *ParseError) {
	place := scale
	placeOK := true
	saw := false
loop:
	for p.pos > 0 {
		r, size := lastRune(p.src, p.pos)
		switch {
		case isDigit(r):
			if d := int64(r - '0'); d != 0 {
				if !placeOK {
					return saw, p.errAt(ErrTooBig, p.pos-size, u)
				}
				v, ok := mulCheck(place, d)
				if ok {
					v, ok = addCheck(p.acc, v)
				}
				if !ok {
					return saw, p.errAt(ErrTooBig, p.pos-size, u)
				}
				p.acc = v
			}
			saw = true
			p.pos -= size
			if placeOK {
				place, placeOK = mulCheck(place, 10)
			}
		case isGroupSep(r):
			p.pos -= size
		default:
			break loop
		}
	}
	if saw {
		p.digits = true
	}
	return saw, nil
}

// sign consumes a leading sign rune if one directly precedes the number.
// Absolute units reject signs outright.
func (p *scan) sign(u uint8) (bool, *ParseError) {
	if p.pos == 0 {
		return false, nil
	}
	r, size := lastRune(p.src, p.pos)
	if !isSign(r) {
		return false, nil
	}
	idx := p.pos - size
	if !p.d.units[u].relative {
		return false, p.errAt(ErrInvalidSign, idx, u)
	}
	p.pos = idx
	return r == '-' || r == minusSign, nil
}

// compose consumes at most one superior-unit hop before the quantity and
// rejects any further unit-bearing text.
func (p *scan) compose(u uint8) *ParseError {
	p.trim()
	if p.pos == 0 {
		return nil
	}

	found, rest, ok := p.d.matchSuffix(p.src, p.pos)
	if !ok {
		return p.errAt(ErrNoUnit, p.pos, u)
	}
	sup, hasSup := p.d.units[u].superior()
	if !hasSup || found != sup {
		err := p.errAt(ErrInvalidCompound, rest, u)
		err.Found = p.d.units[found].sym
		if hasSup {
			err.Expected = p.d.units[sup].sym
		}
		return err
	}

	// The superior count admits digits and grouping only: no fraction,
	// no sign, no second hop.
	p.pos = rest
	p.trim()
	saw, err := p.whole(p.d.units[sup].scale, sup)
	if err != nil {
		return err
	}
	if !saw {
		return p.errAt(ErrEmptyQuantity, p.pos, sup)
	}

	p.trim()
	if p.pos == 0 {
		return nil
	}
	if f, r, ok := p.d.matchSuffix(p.src, p.pos); ok {
		err := p.errAt(ErrInvalidCompound, r, sup)
		err.Found = p.d.units[f].sym
		return err
	}
	return p.errAt(ErrNoUnit, p.pos, sup)
}

// resolve turns the accumulated magnitude into a base-unit reading,
// applying the origin of relative units.
func (p *scan) resolve(u uint8, neg bool) (int64, *ParseError) {
	unit := &p.d.units[u]
	if !unit.relative {
		return p.acc, nil
	}
	if neg {
		if p.acc > unit.origin {
			return 0, p.errAt(ErrTooSmall, p.pos, u)
		}
		return unit.origin - p.acc, nil
	}
	v, ok := addCheck(unit.origin, p.acc)
	if !ok {
		return 0, p.errAt(ErrTooBig, p.pos, u)
	}
	return v, nil
}
