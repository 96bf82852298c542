package locus

import (
	"encoding/csv"
	"io"
	"strconv"
)

var csvHeader = []string{"Ia", "Gm", "Rp", "mu", "Va", "Vg"}

// WriteCSV writes a header line and one row per sample, each value with
// three decimals.
func (l *Locus) WriteCSV(w io.Writer) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(csvHeader); err != nil {
		return err
	}
	rec := make([]string, len(csvHeader))
	for _, r := range l.Rows() {
		for j, v := range []float64{r.Ia, r.Gm, r.Rp, r.Mu, r.Va, r.Vg} {
			rec[j] = strconv.FormatFloat(v, 'f', 3, 64)
		}
		if err := cw.Write(rec); err != nil {
			return err
		}
	}
	cw.Flush()

	return cw.Error()
}
