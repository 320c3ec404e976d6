package consts

const (
	// Inductance factor for a toroid with dimensions in mm and the
	// diameter ratio taken as log10. Folds mu0 and the ln -> log10
	// adjustment into one constant: mu0/(2*pi) * ln(10) / 1000.
	ToroidFactor = 4.6052e-10

	ProbeCurrent = 1.0 // AC probe current magnitude (A)
)
