package joto

// Overflow-checked int64 helpers. All quantity arithmetic funnels through
// these so that no intermediate result ever leaves [0, math.MaxInt64].

// pow10 holds the nonnegative powers of ten an int64 can represent.
var pow10 = [19]int64{
	1,
	10,
	100,
	1_000,
	10_000,
	100_000,
	1_000_000,
	10_000_000,
	100_000_000,
	1_000_000_000,
	10_000_000_000,
	100_000_000_000,
	1_000_000_000_000,
	10_000_000_000_000,
	100_000_000_000_000,
	1_000_000_000_000_000,
	10_000_000_000_000_000,
	100_000_000_000_000_000,
	1_000_000_000_000_000_000,
}

// mulCheck returns a*b and whether the product stayed in range. Both
// operands must be nonnegative.
func mulCheck(a, b int64) (int64, bool) {
	if a == 0 || b == 0 {
		return 0, true
	}
	p := a * b
	if p/b != a {
		return 0, false
	}
	return p, true
}

// addCheck returns a+b and whether the sum stayed in range. Both operands
// must be nonnegative.
func addCheck(a, b int64) (int64, bool) {
	s := a + b
	if s < a {
		return 0, false
	}
	return s, true
}

// exactDigits returns the largest n for which 10^n divides scale.
func exactDigits(scale int64) int {
	n := 0
	for n+1 < len(pow10) && scale%pow10[n+1] == 0 {
		n++
	}
	return n
}
