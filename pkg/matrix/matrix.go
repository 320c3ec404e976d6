package matrix

import (
	"fmt"

	"github.com/edp1096/sparse"
)

// Nodal is a complex nodal admittance matrix with its RHS current
// vector, backed by a sparse LU solver. Indices are 1-based; index 0
// is the ground node and is never stored.
type Nodal struct {
	Size     int
	matrix   *sparse.Matrix
	rhs      []float64
	rhsImag  []float64
	solution []float64
	config   *sparse.Configuration
}

func NewNodal(size int) (*Nodal, error) {
	config := &sparse.Configuration{
		Real:                    true,
		Complex:                 true,
		SeparatedComplexVectors: false,
		Expandable:              true,
		// The sweep re-stamps after the first factorization reorders
		// the matrix, so element lookups must go through translation.
		Translate: true,
		ModifiedNodal:           true,
		TiesMultiplier:          5,
		PrinterWidth:            140,
		Annotate:                0,
	}

	mat, err := sparse.Create(int64(size), config)
	if err != nil {
		return nil, fmt.Errorf("creating sparse matrix: %v", err)
	}

	// Interleaved complex vectors, 1-based indexing.
	vectorSize := (size + 1) * 2

	return &Nodal{
		Size:     size,
		matrix:   mat,
		rhs:      make([]float64, vectorSize),
		rhsImag:  make([]float64, 1),
		solution: make([]float64, vectorSize),
		config:   config,
	}, nil
}

// SetupElements touches every position once so the sparse structure is
// allocated before the first factorization.
func (m *Nodal) SetupElements() {
	for i := 1; i <= m.Size; i++ {
		for j := 1; j <= m.Size; j++ {
			m.matrix.GetElement(int64(i), int64(j))
		}
	}
}

func (m *Nodal) AddComplexElement(i, j int, real, imag float64) {
	if i <= 0 || j <= 0 || i > m.Size || j > m.Size {
		return
	}
	element := m.matrix.GetElement(int64(i), int64(j))
	element.Real += real
	element.Imag += imag
}

func (m *Nodal) AddComplexRHS(i int, real, imag float64) {
	if i <= 0 || i > m.Size {
		return
	}
	m.rhs[2*i] += real
	m.rhs[2*i+1] += imag
}

func (m *Nodal) Clear() {
	m.matrix.Clear()
	for i := range m.rhs {
		m.rhs[i] = 0
	}
}

func (m *Nodal) Solve() error {
	if !m.config.Complex {
		return fmt.Errorf("nodal matrix was not created in complex mode")
	}
	if err := m.matrix.Factor(); err != nil {
		return fmt.Errorf("matrix factorization failed: %v", err)
	}

	solution, _, err := m.matrix.SolveComplex(m.rhs, m.rhsImag)
	if err != nil {
		return fmt.Errorf("matrix solve failed: %v", err)
	}
	m.solution = solution

	return nil
}

// ComplexSolution returns the solved node voltage at node i. The
// solver hands back one interleaved vector, (re, im) pairs per node.
func (m *Nodal) ComplexSolution(i int) complex128 {
	if i <= 0 || i > m.Size {
		return 0
	}
	return complex(m.solution[2*i], m.solution[2*i+1])
}
