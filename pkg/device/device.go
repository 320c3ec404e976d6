package device

import (
	"toroidz/pkg/matrix"
)

// Device is a two-terminal element that can stamp its small-signal AC
// contribution into a nodal admittance matrix.
type Device interface {
	GetName() string
	GetType() string
	GetNodes() []int
	SetNodes(nodes []int)
	StampAC(matrix matrix.DeviceMatrix, status *CircuitStatus) error
}

// CircuitStatus carries the per-point sweep state to the devices.
type CircuitStatus struct {
	Frequency float64 // Hz
}

type BaseDevice struct {
	Name  string
	Nodes []int
}

func (d *BaseDevice) GetName() string {
	return d.Name
}

func (d *BaseDevice) GetNodes() []int {
	return d.Nodes
}

func (d *BaseDevice) SetNodes(nodes []int) {
	d.Nodes = nodes
}

// stampAdmittance adds a branch admittance between n1 and n2 in the
// usual two-terminal pattern. Ground (index 0) rows are skipped.
func stampAdmittance(m matrix.DeviceMatrix, n1, n2 int, yReal, yImag float64) {
	if n1 != 0 {
		m.AddComplexElement(n1, n1, yReal, yImag)
		if n2 != 0 {
			m.AddComplexElement(n1, n2, -yReal, -yImag)
		}
	}
	if n2 != 0 {
		m.AddComplexElement(n2, n2, yReal, yImag)
		if n1 != 0 {
			m.AddComplexElement(n2, n1, -yReal, -yImag)
		}
	}
}
