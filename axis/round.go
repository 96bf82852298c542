package axis

import "math"

// fuzz absorbs representation error when splitting a value into digits.
const fuzz = 1e-9

// RoundSignificant returns v truncated to digits significant digits, plus one
// unit in the last kept digit if the truncation discarded anything:
//
//	RoundSignificant(11.58, 2) = 12
//	RoundSignificant(0.4567, 2) = 0.46
//	RoundSignificant(300, 1) = 300
//
// Non-positive and non-finite v return 0. digits < 1 is treated as 1.
func RoundSignificant(v float64, digits int) float64 {
	if !(v > 0) || math.IsInf(v, 1) {
		return 0
	}
	if digits < 1 {
		digits = 1
	}
	exp := int(math.Floor(math.Log10(v)))
	exp = decade(v, exp)
	shift := digits - 1 - exp // scale so the kept digits form an integer

	q := scale(v, shift)
	n := math.Floor(q + fuzz*q)
	if q-n > fuzz*q {
		n++
	}

	return scale(n, -shift)
}

// scale returns v·10^shift, dividing for negative shifts so that results
// such as 3/10 stay exact.
func scale(v float64, shift int) float64 {
	if shift >= 0 {
		return v * math.Pow10(shift)
	}

	return v / math.Pow10(-shift)
}

// decade corrects a floor(log10(v)) estimate so that 10^exp ≤ v < 10^(exp+1).
func decade(v float64, exp int) int {
	switch {
	case math.Pow10(exp+1) <= v:
		return exp + 1
	case math.Pow10(exp) > v:
		return exp - 1
	}

	return exp
}
