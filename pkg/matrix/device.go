package matrix

// DeviceMatrix is the stamping surface devices see. 1-based indexing,
// index 0 means ground and is ignored by the implementation.
type DeviceMatrix interface {
	AddComplexElement(i, j int, real, imag float64)
	AddComplexRHS(i int, real, imag float64)
}
