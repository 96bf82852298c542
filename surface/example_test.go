package surface_test

import (
	"fmt"

	"github.com/katalvlaran/tubecurve/surface"
)

// ExampleConstruct builds a surface from a small triode table and reads it
// back at a measured point and through the inverse.
func ExampleConstruct() {
	va := []float64{0, 100, 200, 300}
	vg := []float64{0, 2, 4} // 0, −2, −4 V
	ia := [][]float64{
		{0, 0, 0},
		{4.1, 1.2, 0.1},
		{10.5, 5.8, 2.2},
		{18, 12.3, 7.4},
	}
	s, err := surface.Construct(va, vg, ia)
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Printf("Ia(200 V, -2 V) = %.1f mA\n", s.Evaluate(200, -2))
	fmt.Printf("Va for 5.8 mA at -2 V = %.1f V\n", s.VaFromIa(-2, 5.8))
	fmt.Println("grid voltages:", s.VgValues())
	// Output:
	// Ia(200 V, -2 V) = 5.8 mA
	// Va for 5.8 mA at -2 V = 200.0 V
	// grid voltages: [0 -2 -4]
}
