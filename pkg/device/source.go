package device

import (
	"math"

	"toroidz/pkg/matrix"
)

// ProbeSource is the AC current source driving the measured node. With
// a 1 A magnitude the solved node voltage is numerically the impedance
// seen from that node.
type ProbeSource struct {
	BaseDevice
	acMag   float64 // A
	acPhase float64 // degrees
}

func NewProbeSource(name string, nodeNames []string, acMag, acPhase float64) *ProbeSource {
	return &ProbeSource{
		BaseDevice: BaseDevice{
			Name:  name,
			Nodes: make([]int, len(nodeNames)),
		},
		acMag:   acMag,
		acPhase: acPhase,
	}
}

func (s *ProbeSource) GetType() string { return "I" }

func (s *ProbeSource) StampAC(m matrix.DeviceMatrix, status *CircuitStatus) error {
	phaseRad := s.acPhase * math.Pi / 180.0
	currentReal := s.acMag * math.Cos(phaseRad)
	currentImag := s.acMag * math.Sin(phaseRad)

	// Current flows into Nodes[0] and out of Nodes[1].
	n1, n2 := s.Nodes[0], s.Nodes[1]
	if n1 != 0 {
		m.AddComplexRHS(n1, currentReal, currentImag)
	}
	if n2 != 0 {
		m.AddComplexRHS(n2, -currentReal, -currentImag)
	}

	return nil
}
