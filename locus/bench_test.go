package locus_test

import (
	"testing"

	"github.com/katalvlaran/tubecurve/locus"
)

// BenchmarkOneDerivative measures one resolved operating point.
func BenchmarkOneDerivative(b *testing.B) {
	e := newEngine(b, locus.DefaultConfig())
	p := locus.Point{Vg: -4, Ia: childLaw(200, -4), Given: locus.GivenVg}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := e.OneDerivative(p); err != nil {
			b.Fatalf("OneDerivative failed: %v", err)
		}
	}
}

// BenchmarkGetDerivatives_LoadLine measures a default 20-point sweep.
func BenchmarkGetDerivatives_LoadLine(b *testing.B) {
	e := newEngine(b, locus.DefaultConfig())
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := e.GetDerivatives(nil, locus.IaBounds{}); err != nil {
			b.Fatalf("GetDerivatives failed: %v", err)
		}
	}
}
