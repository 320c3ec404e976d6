package circuit

import (
	"fmt"

	"toroidz/pkg/device"
	"toroidz/pkg/matrix"
)

// Circuit owns a set of AC-stampable devices and the nodal matrix they
// stamp into. Node names map to 1-based matrix indices; "0" and "gnd"
// are the ground node.
type Circuit struct {
	name     string
	nodeMap  map[string]int
	devices  []device.Device
	numNodes int
	matrix   *matrix.Nodal
	Status   *device.CircuitStatus
}

func New(name string) *Circuit {
	return &Circuit{
		name:    name,
		nodeMap: make(map[string]int),
		devices: make([]device.Device, 0),
		Status:  &device.CircuitStatus{},
	}
}

func (c *Circuit) Name() string { return c.name }

func (c *Circuit) GetNumNodes() int { return c.numNodes }

func (c *Circuit) GetNodeMap() map[string]int { return c.nodeMap }

func (c *Circuit) GetDevices() []device.Device { return c.devices }

func (c *Circuit) GetMatrix() *matrix.Nodal { return c.matrix }

// AddDevice registers a device under the given node names, assigning
// fresh matrix indices to nodes seen for the first time.
func (c *Circuit) AddDevice(dev device.Device, nodeNames []string) {
	indices := make([]int, len(nodeNames))
	for i, nodeName := range nodeNames {
		if nodeName == "0" || nodeName == "gnd" {
			indices[i] = 0
			continue
		}
		if _, exists := c.nodeMap[nodeName]; !exists {
			c.nodeMap[nodeName] = len(c.nodeMap) + 1
		}
		indices[i] = c.nodeMap[nodeName]
	}
	dev.SetNodes(indices)
	c.devices = append(c.devices, dev)
	c.numNodes = len(c.nodeMap)
}

// CreateMatrix sizes the nodal matrix for the registered nodes. Call
// after the last AddDevice.
func (c *Circuit) CreateMatrix() error {
	mat, err := matrix.NewNodal(c.numNodes)
	if err != nil {
		return fmt.Errorf("circuit %s: %v", c.name, err)
	}
	c.matrix = mat
	c.matrix.SetupElements()
	return nil
}

// StampAC clears the matrix and stamps every device at the status
// frequency.
func (c *Circuit) StampAC(status *device.CircuitStatus) error {
	c.Status = status
	c.matrix.Clear()
	for _, dev := range c.devices {
		if err := dev.StampAC(c.matrix, status); err != nil {
			return fmt.Errorf("stamping device %s: %w", dev.GetName(), err)
		}
	}
	return nil
}

func (c *Circuit) Solve() error {
	return c.matrix.Solve()
}

// NodeVoltage returns the solved complex voltage at a named node.
func (c *Circuit) NodeVoltage(nodeName string) (complex128, error) {
	idx, ok := c.nodeMap[nodeName]
	if !ok {
		return 0, fmt.Errorf("circuit %s: unknown node %q", c.name, nodeName)
	}
	return c.matrix.ComplexSolution(idx), nil
}
