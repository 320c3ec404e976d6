package device

import (
	"fmt"
	"math/cmplx"

	"toroidz/pkg/material"
	"toroidz/pkg/matrix"
	"toroidz/pkg/toroid"
)

// FerriteInductor is a winding on a ferrite toroid whose impedance
// follows the material's tabulated complex permeability. It stamps the
// admittance 1/Z_L(f) at each sweep point.
type FerriteInductor struct {
	BaseDevice
	coil toroid.Coil
	mat  *material.Table
}

func NewFerriteInductor(name string, nodeNames []string, coil toroid.Coil, mat *material.Table) *FerriteInductor {
	return &FerriteInductor{
		BaseDevice: BaseDevice{
			Name:  name,
			Nodes: make([]int, len(nodeNames)),
		},
		coil: coil,
		mat:  mat,
	}
}

func (l *FerriteInductor) GetType() string { return "L" }

func (l *FerriteInductor) Coil() toroid.Coil { return l.coil }

// ImpedanceAt returns Z_L at a tabulated frequency. A zero impedance
// cannot be inverted for stamping and is rejected outright.
func (l *FerriteInductor) ImpedanceAt(f float64) (complex128, error) {
	mu, ok := l.mat.Lookup(f)
	if !ok {
		return 0, fmt.Errorf("%s: no material sample at f=%g Hz", l.Name, f)
	}
	z := l.coil.Impedance(f, mu)
	if z == 0 {
		return 0, fmt.Errorf("%w: %s has zero impedance at f=%g Hz", toroid.ErrNumericDomain, l.Name, f)
	}
	return z, nil
}

func (l *FerriteInductor) StampAC(m matrix.DeviceMatrix, status *CircuitStatus) error {
	z, err := l.ImpedanceAt(status.Frequency)
	if err != nil {
		return err
	}
	y := 1 / z
	if cmplx.IsInf(y) || cmplx.IsNaN(y) {
		return fmt.Errorf("%w: %s admittance is not finite at f=%g Hz",
			toroid.ErrNumericDomain, l.Name, status.Frequency)
	}

	n1, n2 := l.Nodes[0], l.Nodes[1]
	stampAdmittance(m, n1, n2, real(y), imag(y))

	return nil
}
