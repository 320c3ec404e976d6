package toroid

import (
	"errors"
	"fmt"
	"math"

	"toroidz/internal/consts"
)

// ErrNumericDomain is wrapped when geometry or inputs would put the
// impedance formula outside its numeric domain (log of a ratio <= 1,
// inversion of a zero impedance).
var ErrNumericDomain = errors.New("numeric domain error")

// Core is the physical geometry of a ferrite toroid, dimensions in mm.
type Core struct {
	ODmm float64 // outer diameter
	IDmm float64 // inner diameter
	HTmm float64 // height
}

func NewCore(od, id, ht float64) Core {
	return Core{ODmm: od, IDmm: id, HTmm: ht}
}

// Validate rejects non-positive dimensions and OD <= ID. OD == ID
// collapses the log10 geometry term to zero, which is treated as a
// configuration error rather than a zero-reactance inductor.
func (c Core) Validate() error {
	if c.ODmm <= 0 || c.IDmm <= 0 || c.HTmm <= 0 {
		return fmt.Errorf("%w: core dimensions must be positive (OD=%g ID=%g HT=%g mm)",
			ErrNumericDomain, c.ODmm, c.IDmm, c.HTmm)
	}
	if c.ODmm <= c.IDmm {
		return fmt.Errorf("%w: outer diameter %g mm must exceed inner diameter %g mm",
			ErrNumericDomain, c.ODmm, c.IDmm)
	}
	return nil
}

// GeometryFactor is height * log10(OD/ID), the shape term of the
// toroid inductance formula.
func (c Core) GeometryFactor() float64 {
	return c.HTmm * math.Log10(c.ODmm/c.IDmm)
}

// Coil is a winding of Turns turns on Core, with an optional parasitic
// shunt capacitance (F) modeling self-resonance. ShuntCap may be zero.
type Coil struct {
	Core     Core
	Turns    int
	ShuntCap float64
}

func (w Coil) Validate() error {
	if err := w.Core.Validate(); err != nil {
		return err
	}
	if w.Turns < 1 {
		return fmt.Errorf("%w: turn count %d must be at least 1", ErrNumericDomain, w.Turns)
	}
	if w.ShuntCap < 0 {
		return fmt.Errorf("%w: shunt capacitance %g F must not be negative", ErrNumericDomain, w.ShuntCap)
	}
	return nil
}

// Impedance is the inductor impedance at frequency f (Hz) for complex
// relative permeability mu = mu' - j*mu'':
//
//	Z_L = j*w * K * N^2 * mu * HT * log10(OD/ID)
//
// The real part is the core loss resistance, the imaginary part the
// reactance.
func (w Coil) Impedance(f float64, mu complex128) complex128 {
	omega := 2 * math.Pi * f
	scale := consts.ToroidFactor * float64(w.Turns*w.Turns) * w.Core.GeometryFactor()
	return complex(0, omega*scale) * mu
}

// Inductance is the low-loss inductance (H) for a purely real mu'.
func (w Coil) Inductance(muPrime float64) float64 {
	return consts.ToroidFactor * float64(w.Turns*w.Turns) * muPrime * w.Core.GeometryFactor()
}
