// Package axis chooses sample values for sweeps and plot axes.
//
// Range describes "from Start to End", optionally with an explicit
// Interval. Without one, Values picks a readable step whose leading digit is
// 1, 2 or 5 and which gives a number of intervals closest to Count:
//
//	NewRange(10).Values()      → 0 2 4 6 8 10
//	Span(5, 10).Values()       → 5 6 7 8 9 10
//	Parse("0,1,10") …Values()  → 0 1 2 … 10
//
// RoundSignificant keeps a given number of significant digits and rounds up
// when anything was cut off, which is how load resistances are quoted.
package axis
