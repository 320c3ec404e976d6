package analysis

import (
	"fmt"
	"math"

	"toroidz/internal/consts"
	"toroidz/pkg/circuit"
	"toroidz/pkg/device"
	"toroidz/pkg/material"
	"toroidz/pkg/toroid"
)

// ImpedanceSweep computes the terminal impedance of a ferrite-cored
// coil in parallel with its shunt capacitance, one solve per material
// sample. The coil and capacitor stamp their admittances on a single
// node driven by a 1 A probe, so the solved node voltage is Z_tot(f).
type ImpedanceSweep struct {
	BaseAnalysis
	coil     toroid.Coil
	mat      *material.Table
	ckt      *circuit.Circuit
	inductor *device.FerriteInductor
}

func NewImpedanceSweep(coil toroid.Coil, mat *material.Table) *ImpedanceSweep {
	return &ImpedanceSweep{
		BaseAnalysis: *NewBaseAnalysis(),
		coil:         coil,
		mat:          mat,
	}
}

// Setup validates inputs and builds the one-node measurement circuit.
func (s *ImpedanceSweep) Setup() error {
	if err := s.coil.Validate(); err != nil {
		return fmt.Errorf("coil parameters: %w", err)
	}
	if err := s.mat.Validate(); err != nil {
		return fmt.Errorf("material table: %w", err)
	}

	ckt := circuit.New("toroid impedance probe")

	s.inductor = device.NewFerriteInductor("Lcore", []string{"z", "0"}, s.coil, s.mat)
	ckt.AddDevice(s.inductor, []string{"z", "0"})

	if s.coil.ShuntCap > 0 {
		shunt := device.NewShuntCapacitor("Cp", []string{"z", "0"}, s.coil.ShuntCap)
		ckt.AddDevice(shunt, []string{"z", "0"})
	}

	probe := device.NewProbeSource("Iprobe", []string{"z", "0"}, consts.ProbeCurrent, 0)
	ckt.AddDevice(probe, []string{"z", "0"})

	if err := ckt.CreateMatrix(); err != nil {
		return err
	}

	s.ckt = ckt
	return nil
}

// Execute runs one stamp-and-solve per tabulated frequency. Any
// failure aborts the sweep; there are no partial results.
func (s *ImpedanceSweep) Execute() error {
	if s.ckt == nil {
		return fmt.Errorf("sweep not set up")
	}

	for i := 0; i < s.mat.Len(); i++ {
		freq := s.mat.Freq[i]
		status := &device.CircuitStatus{Frequency: freq}

		if err := s.ckt.StampAC(status); err != nil {
			return fmt.Errorf("stamping error at f=%g: %w", freq, err)
		}
		if err := s.ckt.Solve(); err != nil {
			return fmt.Errorf("matrix solve error at f=%g: %w", freq, err)
		}

		z, err := s.ckt.NodeVoltage("z")
		if err != nil {
			return err
		}
		s.StoreImpedance(freq, z)
	}

	return nil
}

// InductorImpedance returns the coil impedance alone (no shunt) at a
// tabulated frequency.
func (s *ImpedanceSweep) InductorImpedance(f float64) (complex128, error) {
	return s.inductor.ImpedanceAt(f)
}

// ParallelWithShunt combines an inductor impedance with a shunt
// capacitance in the admittance domain, where parallel elements sum:
//
//	Y_tot = 1/Z_L + jwC,  Z_tot = 1/Y_tot
func ParallelWithShunt(zl complex128, f, c float64) (complex128, error) {
	if zl == 0 {
		return 0, fmt.Errorf("%w: cannot invert zero inductor impedance", toroid.ErrNumericDomain)
	}
	omega := 2 * math.Pi * f
	ytot := 1/zl + complex(0, omega*c)
	if ytot == 0 {
		return 0, fmt.Errorf("%w: total admittance is zero at f=%g", toroid.ErrNumericDomain, f)
	}
	return 1 / ytot, nil
}

// SelfResonance scans the curve for the first phase sign change from
// inductive (+) to capacitive (-) and returns the crossing frequency
// by linear interpolation of the phase. Returns false when the SRF is
// outside the swept band.
func SelfResonance(freqs []float64, curve []complex128) (float64, bool) {
	for i := 1; i < len(curve); i++ {
		p0 := math.Atan2(imag(curve[i-1]), real(curve[i-1]))
		p1 := math.Atan2(imag(curve[i]), real(curve[i]))
		if p0 > 0 && p1 <= 0 {
			t := p0 / (p0 - p1)
			return freqs[i-1] + t*(freqs[i]-freqs[i-1]), true
		}
	}
	return 0, false
}
