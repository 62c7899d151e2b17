package mathutil

// Decibel conversion constants
const (
	powerDBFactor = 10.0 // 10·log10 for power quantities
	dbBase        = 10.0 // Base of the decibel exponent
)
