package analysis

import (
	"math"
	"math/cmplx"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"toroidz/pkg/material"
	"toroidz/pkg/toroid"
)

func referenceCoil() toroid.Coil {
	return toroid.Coil{
		Core:     toroid.NewCore(61.0, 35.55, 12.7),
		Turns:    12,
		ShuntCap: 0.65e-12,
	}
}

// 43-type permeability across the HF band.
func referenceTable() *material.Table {
	return &material.Table{
		Freq:          []float64{1e6, 2e6, 5e6, 10e6, 15e6, 20e6, 30e6, 50e6},
		MuPrime:       []float64{770, 740, 620, 430, 320, 250, 170, 100},
		MuDoublePrime: []float64{60, 110, 230, 310, 310, 290, 250, 195},
	}
}

func runSweep(t *testing.T, coil toroid.Coil, tbl *material.Table) *ImpedanceSweep {
	t.Helper()
	sweep := NewImpedanceSweep(coil, tbl)
	require.NoError(t, sweep.Setup())
	require.NoError(t, sweep.Execute())
	return sweep
}

func TestCurveLengthMatchesTable(t *testing.T) {
	tbl := referenceTable()
	sweep := runSweep(t, referenceCoil(), tbl)

	assert.Len(t, sweep.Curve(), tbl.Len())
	assert.Len(t, sweep.Frequencies(), tbl.Len())
	for _, series := range []string{SeriesMag, SeriesPhase, SeriesRe, SeriesIm} {
		assert.Len(t, sweep.GetResults()[series], tbl.Len())
	}
}

// The nodal solve must reproduce the admittance-sum identity
// 1/Z_tot = 1/Z_L + jwC at every point.
func TestAdmittanceIdentity(t *testing.T) {
	coil := referenceCoil()
	tbl := referenceTable()
	sweep := runSweep(t, coil, tbl)

	for i, f := range sweep.Frequencies() {
		zl, err := sweep.InductorImpedance(f)
		require.NoError(t, err)

		ySum := 1/zl + complex(0, 2*math.Pi*f*coil.ShuntCap)
		yGot := 1 / sweep.Curve()[i]

		assert.InDelta(t, 0, cmplx.Abs(yGot-ySum), 1e-9*cmplx.Abs(ySum),
			"admittance mismatch at f=%g", f)
	}
}

// The same identity through the closed-form combiner.
func TestParallelWithShuntMatchesSweep(t *testing.T) {
	coil := referenceCoil()
	sweep := runSweep(t, coil, referenceTable())

	for i, f := range sweep.Frequencies() {
		zl, err := sweep.InductorImpedance(f)
		require.NoError(t, err)

		want, err := ParallelWithShunt(zl, f, coil.ShuntCap)
		require.NoError(t, err)

		got := sweep.Curve()[i]
		assert.InDelta(t, 0, cmplx.Abs(got-want), 1e-9*cmplx.Abs(want))
	}
}

func TestZeroShuntEqualsInductorAlone(t *testing.T) {
	coil := referenceCoil()
	coil.ShuntCap = 0
	sweep := runSweep(t, coil, referenceTable())

	for i, f := range sweep.Frequencies() {
		zl, err := sweep.InductorImpedance(f)
		require.NoError(t, err)

		got := sweep.Curve()[i]
		assert.InDelta(t, 0, cmplx.Abs(got-zl), 1e-9*cmplx.Abs(zl),
			"zero shunt must not change the impedance at f=%g", f)
	}
}

// With a lossless ferrite the inductor contributes no resistance, so
// any residual Re(Z_tot) can only come from the shunt interaction in
// the admittance sum. For an ideal L || C that interaction is purely
// reactive too, so the real part must vanish within solver noise.
func TestLosslessDecomposition(t *testing.T) {
	tbl := referenceTable()
	for i := range tbl.MuDoublePrime {
		tbl.MuDoublePrime[i] = 0
	}

	sweep := runSweep(t, referenceCoil(), tbl)

	for i, f := range sweep.Frequencies() {
		zl, err := sweep.InductorImpedance(f)
		require.NoError(t, err)
		assert.Zero(t, real(zl), "lossless inductor resistance at f=%g", f)

		z := sweep.Curve()[i]
		assert.InDelta(t, 0, real(z), 1e-9*cmplx.Abs(z),
			"lossless L||C must stay reactive at f=%g", f)
	}
}

// Reference scenario: at 1 MHz the 0.65 pF shunt is far below
// self-resonance and must barely move the magnitude.
func TestShuntNegligibleAtOneMegahertz(t *testing.T) {
	coil := referenceCoil()
	tbl := &material.Table{
		Freq:          []float64{1e6},
		MuPrime:       []float64{1000},
		MuDoublePrime: []float64{50},
	}
	sweep := runSweep(t, coil, tbl)

	zl, err := sweep.InductorImpedance(1e6)
	require.NoError(t, err)

	magL := cmplx.Abs(zl)
	magTot := cmplx.Abs(sweep.Curve()[0])
	assert.InEpsilon(t, magL, magTot, 0.02, "shunt must be negligible at 1 MHz")
	assert.Greater(t, magL, 100.0)
	assert.Less(t, magL, 10000.0)
}

func TestSetupRejectsBadInputs(t *testing.T) {
	badCore := referenceCoil()
	badCore.Core.IDmm = badCore.Core.ODmm

	sweep := NewImpedanceSweep(badCore, referenceTable())
	assert.ErrorIs(t, sweep.Setup(), toroid.ErrNumericDomain)

	empty := NewImpedanceSweep(referenceCoil(), &material.Table{})
	assert.ErrorIs(t, empty.Setup(), material.ErrDataFormat)
}

func TestExecuteWithoutSetup(t *testing.T) {
	sweep := NewImpedanceSweep(referenceCoil(), referenceTable())
	assert.Error(t, sweep.Execute())
}

func TestParallelWithShuntZeroInductor(t *testing.T) {
	_, err := ParallelWithShunt(0, 1e6, 0.65e-12)
	assert.ErrorIs(t, err, toroid.ErrNumericDomain)
}

func TestSelfResonanceInsideBand(t *testing.T) {
	sweep := runSweep(t, referenceCoil(), referenceTable())

	srf, ok := SelfResonance(sweep.Frequencies(), sweep.Curve())
	require.True(t, ok, "SRF expected inside the swept band for 0.65 pF")
	assert.Greater(t, srf, 10e6)
	assert.Less(t, srf, 30e6)

	// Without the shunt the phase stays inductive across the band.
	coil := referenceCoil()
	coil.ShuntCap = 0
	noShunt := runSweep(t, coil, referenceTable())
	_, ok = SelfResonance(noShunt.Frequencies(), noShunt.Curve())
	assert.False(t, ok)
}
