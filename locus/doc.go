// Package locus computes small-signal parameters of a tube along an
// operating locus.
//
// At a single operating point the Engine derives:
//
//   - Gm: transconductance ∂Ia/∂Vg at constant Va (mA/V),
//   - Rp: plate resistance (∂Ia/∂Va)⁻¹ at constant Vg (kΩ), 0 when the
//     slope is not positive,
//   - Mu: amplification factor, measured directly as the anode-voltage
//     change that undoes a small grid step at constant current.
//
// GetDerivatives sweeps anode current over a range and resolves each sample
// to an operating point according to a Mode:
//
//   - LoadLine{Eb, Rl}: Va = Eb − Rl·Ia. Rl == 0 asks the engine to pick a
//     load that keeps the locus above the knee of the characteristic.
//   - FixedVa{Va}:      constant anode voltage.
//   - FixedVg{Vg}:      constant grid voltage.
//
// Config carries every tuning constant; nothing is global. A Locus is
// computed per request and not cached.
package locus
