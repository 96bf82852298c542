package locus_test

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/tubecurve/locus"
	"github.com/katalvlaran/tubecurve/solve"
)

func sampleLocus() *locus.Locus {
	return &locus.Locus{
		Mode: locus.FixedVg{Vg: -2},
		Ia:   []float64{1, 2.5},
		Gm:   []float64{1.25, 1.5},
		Rp:   []float64{16, 13.3333},
		Mu:   []float64{20, 19.99995},
		Va:   []float64{90.5, 120},
		Vg:   []float64{-2, -2},
	}
}

func TestLocus_Rows(t *testing.T) {
	l := sampleLocus()
	require.Equal(t, 2, l.Len())
	assert.Equal(t, []locus.Row{
		{Ia: 1, Gm: 1.25, Rp: 16, Mu: 20, Va: 90.5, Vg: -2},
		{Ia: 2.5, Gm: 1.5, Rp: 13.3333, Mu: 19.99995, Va: 120, Vg: -2},
	}, l.Rows())
}

func TestLocus_WriteCSV(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, sampleLocus().WriteCSV(&buf))
	want := "Ia,Gm,Rp,mu,Va,Vg\n" +
		"1.000,1.250,16.000,20.000,90.500,-2.000\n" +
		"2.500,1.500,13.333,20.000,120.000,-2.000\n"
	assert.Equal(t, want, buf.String())
}

type failWriter struct{}

func (failWriter) Write([]byte) (int, error) { return 0, errors.New("disk full") }

func TestLocus_WriteCSVError(t *testing.T) {
	assert.EqualError(t, sampleLocus().WriteCSV(failWriter{}), "disk full")
}

func TestMode_String(t *testing.T) {
	tests := []struct {
		mode locus.Mode
		want string
	}{
		{locus.LoadLine{Eb: 300, Rl: 12}, "Eb = 300 V Rl=12.0 KΩ"},
		{locus.FixedVa{Va: 250}, "Va = 250 V"},
		{locus.FixedVg{Vg: -2}, "Vg = -2.00 V"},
	}
	for _, tt := range tests {
		if got := tt.mode.String(); got != tt.want {
			t.Errorf("String() = %q; want %q", got, tt.want)
		}
	}
}

func TestDefaultConfig(t *testing.T) {
	c := locus.DefaultConfig()
	assert.NoError(t, c.Validate())
	assert.Equal(t, 0.85, c.MinDerivVa)
	assert.Equal(t, 0.3, c.MinDerivVg)
	assert.Equal(t, 0.05, c.MinDerivIa)
	assert.Equal(t, 0.95, c.EbRatio)
	assert.Equal(t, 20, c.DerivPoints)
	assert.Equal(t, 0.01, c.DerivDelta)
	assert.Equal(t, solve.DefaultOptions(), c.Solver)
	assert.False(t, c.Smooth)
	assert.NotNil(t, c.Ctx)
}
