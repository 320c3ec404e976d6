package analysis

import (
	"math"
	"math/cmplx"
)

// Result series names produced by the impedance sweep.
const (
	SeriesFreq  = "FREQ"
	SeriesMag   = "Z_MAG"
	SeriesPhase = "Z_PHASE"
	SeriesRe    = "Z_RE"
	SeriesIm    = "Z_IM"
)

type Analysis interface {
	Setup() error
	Execute() error
	GetResults() map[string][]float64
}

// BaseAnalysis accumulates named result series, one float per sweep
// point, keyed the way the console printer and renderers consume them.
type BaseAnalysis struct {
	results map[string][]float64
	curve   []complex128
}

func NewBaseAnalysis() *BaseAnalysis {
	return &BaseAnalysis{results: make(map[string][]float64)}
}

// StoreImpedance appends one sweep point, fanned out into magnitude,
// phase (degrees), resistance and reactance series.
func (a *BaseAnalysis) StoreImpedance(freq float64, z complex128) {
	a.results[SeriesFreq] = append(a.results[SeriesFreq], freq)
	a.results[SeriesMag] = append(a.results[SeriesMag], cmplx.Abs(z))
	a.results[SeriesPhase] = append(a.results[SeriesPhase], cmplx.Phase(z)*180.0/math.Pi)
	a.results[SeriesRe] = append(a.results[SeriesRe], real(z))
	a.results[SeriesIm] = append(a.results[SeriesIm], imag(z))
	a.curve = append(a.curve, z)
}

func (a *BaseAnalysis) GetResults() map[string][]float64 {
	return a.results
}

// Curve returns the raw complex impedance, index-aligned with the
// FREQ series.
func (a *BaseAnalysis) Curve() []complex128 {
	return a.curve
}

// Frequencies returns the FREQ series.
func (a *BaseAnalysis) Frequencies() []float64 {
	return a.results[SeriesFreq]
}
