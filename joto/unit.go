package joto

import "strings"

// unitDesc describes one unit of measure within a domain.
type unitDesc struct {
	name  string // lowercase unit name, e.g. "foot"
	scale int64  // base units per one of this unit
	sym   string // canonical abbreviation, possibly non-ASCII
	ascii string // ASCII abbreviation

	// exact is the number of decimal fraction digits the unit resolves
	// without loss. Derived from scale at table construction.
	exact int

	// sup and inf hold a unit index plus one; zero means no link. sup is
	// the unit a single compound hop may add ("2" in 6'2"), inf the unit
	// a mixed format descends to.
	sup uint8
	inf uint8

	origin   int64 // base-unit value of this unit's zero point
	relative bool  // value = origin ± magnitude, leading sign allowed
	rational bool  // power-of-two fractions up to 64ths allowed
}

func (u *unitDesc) superior() (uint8, bool) {
	return u.sup - 1, u.sup != 0
}

func (u *unitDesc) inferior() (uint8, bool) {
	return u.inf - 1, u.inf != 0
}

// suffixEntry binds one accepted suffix spelling to a unit index.
type suffixEntry struct {
	text string
	unit uint8
}

// domain groups the units of one measurable dimension. All domains are
// package-level values built once before init completes and never
// written afterwards, so concurrent readers need no locking.
type domain struct {
	name     string
	units    []unitDesc
	suffixes []suffixEntry // tried in order; a spelling must precede any spelling it ends with
	signed   bool          // leading signs have meaning (temperature)
}

// newDomain validates a unit table. It panics on any inconsistency so a
// bad table cannot survive package init.
func newDomain(name string, units []unitDesc, suffixes []suffixEntry, signed bool) *domain {
	base := false
	for i := range units {
		u := &units[i]
		if u.scale <= 0 {
			panic("joto: " + name + ": nonpositive scale for " + u.name)
		}
		if u.scale == 1 {
			base = true
		}
		u.exact = exactDigits(u.scale)
		if u.rational && u.scale%64 != 0 {
			panic("joto: " + name + ": " + u.name + " scale not divisible by 64")
		}
		if u.name == "" || u.sym == "" || u.ascii == "" {
			panic("joto: " + name + ": unnamed unit")
		}
		if s, ok := u.superior(); ok {
			if int(s) >= len(units) {
				panic("joto: " + name + ": " + u.name + " superior out of range")
			}
			if inf, ok := units[s].inferior(); !ok || int(inf) != i {
				panic("joto: " + name + ": " + u.name + " superior link not mutual")
			}
			if units[s].scale <= u.scale {
				panic("joto: " + name + ": " + u.name + " superior not larger")
			}
		}
		if in, ok := u.inferior(); ok {
			if int(in) >= len(units) {
				panic("joto: " + name + ": " + u.name + " inferior out of range")
			}
			if s, ok := units[in].superior(); !ok || int(s) != i {
				panic("joto: " + name + ": " + u.name + " inferior link not mutual")
			}
		}
		if !u.relative && u.origin != 0 {
			panic("joto: " + name + ": origin on absolute unit " + u.name)
		}
		if u.relative && u.origin <= 0 {
			panic("joto: " + name + ": nonpositive origin for " + u.name)
		}
	}
	if !base {
		panic("joto: " + name + ": no base unit with scale 1")
	}
	for i, e := range suffixes {
		if e.text == "" || int(e.unit) >= len(units) {
			panic("joto: " + name + ": bad suffix entry")
		}
		// An earlier spelling that ends a later one makes the later one
		// unreachable.
		for j := 0; j < i; j++ {
			if strings.HasSuffix(e.text, suffixes[j].text) {
				panic("joto: " + name + ": suffix " + e.text + " shadowed by " + suffixes[j].text)
			}
		}
	}
	return &domain{name: name, units: units, suffixes: suffixes, signed: signed}
}

// matchSuffix finds the first suffix spelling ending at end. It returns
// the unit index and the end of the text before the suffix. Matching is
// byte-wise; UTF-8 self-synchronization keeps multi-byte spellings from
// matching inside an unrelated rune.
func (d *domain) matchSuffix(s string, end int) (uint8, int, bool) {
	for _, e := range d.suffixes {
		if n := len(e.text); n <= end && s[end-n:end] == e.text {
			return e.unit, end - n, true
		}
	}
	return 0, end, false
}

// lookupUnit resolves a unit index from a name or abbreviation.
func (d *domain) lookupUnit(s string) (uint8, bool) {
	for i := range d.units {
		u := &d.units[i]
		if s == u.name || s == u.sym || s == u.ascii {
			return uint8(i), true
		}
	}
	return 0, false
}

// check panics when u is not a unit of the domain. Public entry points
// call it so a corrupted unit value fails loudly instead of indexing out
// of range.
func (d *domain) check(u uint8) {
	if int(u) >= len(d.units) {
		panic("joto: unknown " + d.name + " unit")
	}
}
