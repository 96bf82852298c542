package locus

import "fmt"

// Mode selects how a swept current is turned into an operating point.
// Implemented by LoadLine, FixedVa and FixedVg.
type Mode interface {
	fmt.Stringer
	mode()
}

// LoadLine constrains the anode to Va = Eb − Rl·Ia, with Eb in volts and Rl
// in kΩ (Ia is in mA). Rl == 0 lets the engine choose the load.
type LoadLine struct {
	Eb float64
	Rl float64
}

// FixedVa holds the anode voltage constant.
type FixedVa struct {
	Va float64
}

// FixedVg holds the grid voltage constant (conventional sign, ≤ 0 for a
// biased grid).
type FixedVg struct {
	Vg float64
}

func (LoadLine) mode() {}
func (FixedVa) mode()  {}
func (FixedVg) mode()  {}

func (m LoadLine) String() string { return fmt.Sprintf("Eb = %.0f V Rl=%.1f KΩ", m.Eb, m.Rl) }
func (m FixedVa) String() string  { return fmt.Sprintf("Va = %.0f V", m.Va) }
func (m FixedVg) String() string  { return fmt.Sprintf("Vg = %.2f V", m.Vg) }
