package material

import (
	"errors"
	"fmt"
	"sort"
)

var (
	// ErrDataFormat is wrapped by loader errors for unreadable or
	// malformed input.
	ErrDataFormat = errors.New("material data format error")

	// ErrMissingColumn is wrapped when the source has fewer columns
	// than (frequency, mu', mu'').
	ErrMissingColumn = errors.New("material column missing")
)

// Table holds tabulated complex relative permeability for a ferrite
// material as three index-aligned slices, sorted by ascending
// frequency. Loaded once, never mutated afterwards.
type Table struct {
	Freq          []float64 // Hz
	MuPrime       []float64 // mu' (dimensionless)
	MuDoublePrime []float64 // mu'' (dimensionless)
}

func (t *Table) Len() int {
	return len(t.Freq)
}

// Mu returns the complex relative permeability mu' - j*mu'' at sample i.
func (t *Table) Mu(i int) complex128 {
	return complex(t.MuPrime[i], -t.MuDoublePrime[i])
}

// Lookup finds the sample taken exactly at frequency f. The sweep
// always runs on the table's own frequencies, so no interpolation is
// done here.
func (t *Table) Lookup(f float64) (complex128, bool) {
	i := sort.SearchFloat64s(t.Freq, f)
	if i >= len(t.Freq) || t.Freq[i] != f {
		return 0, false
	}
	return t.Mu(i), true
}

// Trim returns the sub-table restricted to fmin <= f <= fmax. The
// backing arrays are shared with the receiver.
func (t *Table) Trim(fmin, fmax float64) *Table {
	lo := sort.SearchFloat64s(t.Freq, fmin)
	hi := sort.SearchFloat64s(t.Freq, fmax)
	if hi < len(t.Freq) && t.Freq[hi] == fmax {
		hi++
	}
	if lo > hi { // fmin > fmax: nothing can match
		return &Table{}
	}
	return &Table{
		Freq:          t.Freq[lo:hi],
		MuPrime:       t.MuPrime[lo:hi],
		MuDoublePrime: t.MuDoublePrime[lo:hi],
	}
}

// Validate checks the invariants the sweep and the plots rely on:
// equal-length columns, strictly positive and ascending frequencies,
// non-negative permeability parts.
func (t *Table) Validate() error {
	if len(t.MuPrime) != len(t.Freq) || len(t.MuDoublePrime) != len(t.Freq) {
		return fmt.Errorf("%w: column lengths differ (f=%d mu'=%d mu''=%d)",
			ErrDataFormat, len(t.Freq), len(t.MuPrime), len(t.MuDoublePrime))
	}
	if len(t.Freq) == 0 {
		return fmt.Errorf("%w: table is empty", ErrDataFormat)
	}
	prev := 0.0
	for i, f := range t.Freq {
		if f <= 0 {
			return fmt.Errorf("%w: non-positive frequency %g at row %d", ErrDataFormat, f, i+1)
		}
		if f < prev {
			return fmt.Errorf("%w: frequency %g at row %d breaks ascending order", ErrDataFormat, f, i+1)
		}
		if t.MuPrime[i] < 0 || t.MuDoublePrime[i] < 0 {
			return fmt.Errorf("%w: negative permeability at row %d", ErrDataFormat, i+1)
		}
		prev = f
	}
	return nil
}
