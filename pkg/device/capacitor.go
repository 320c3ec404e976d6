package device

import (
	"math"

	"toroidz/pkg/matrix"
)

// ShuntCapacitor models the winding's parasitic capacitance. A zero
// value stamps nothing, so the self-resonance effect vanishes cleanly.
type ShuntCapacitor struct {
	BaseDevice
	Value float64 // F
}

func NewShuntCapacitor(name string, nodeNames []string, value float64) *ShuntCapacitor {
	return &ShuntCapacitor{
		BaseDevice: BaseDevice{
			Name:  name,
			Nodes: make([]int, len(nodeNames)),
		},
		Value: value,
	}
}

func (c *ShuntCapacitor) GetType() string { return "C" }

func (c *ShuntCapacitor) StampAC(m matrix.DeviceMatrix, status *CircuitStatus) error {
	omega := 2 * math.Pi * status.Frequency
	n1, n2 := c.Nodes[0], c.Nodes[1]

	stampAdmittance(m, n1, n2, 0, omega*c.Value) // Y_C = jwC

	return nil
}
